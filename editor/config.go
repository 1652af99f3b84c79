package editor

import (
	"log/slog"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/drag"
)

// Config configures the editor Model. A zero KeyMap means DefaultKeyMap.
type Config struct {
	// Initial content, plain text or markup. It is segmented on creation.
	Content string

	// Prompt is rendered before the first row.
	Prompt string
	// Placeholder is shown while the input holds neither text nor tokens.
	Placeholder string

	// Options is the typed base configuration; nil means
	// bubble.DefaultOptions. Raw values and hook names are resolved on top.
	Options *bubble.Options
	Raw     bubble.RawOptions
	Hooks   bubble.HookLookup

	// Notifier callbacks run on the frame that flushes them, in addition to
	// the InputMsg, ChangeMsg and EditMsg the Model returns.
	Notifier bubble.Notifier

	KeyMap       KeyMap
	Style        Style
	ScrollPolicy ScrollPolicy

	// Optional clipboard. When nil, copy/cut/paste are no-ops. Bracketed
	// paste works regardless.
	Clipboard Clipboard

	// Drag enables moving tokens between editors that share it.
	Drag *drag.Coordinator

	Logger *slog.Logger
}

// ScrollPolicy decides whether the wheel may scroll rows away from the
// cursor row.
type ScrollPolicy int

const (
	// ScrollAllowManual lets wheel events scroll the wrapped rows.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the wheel; rows follow the cursor.
	ScrollFollowCursorOnly
)
