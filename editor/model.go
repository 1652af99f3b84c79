package editor

import (
	"log/slog"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/sequence"
)

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// frameState is shared by every copy of a Model.
type frameState struct {
	// pending is set by the bubble set when notifications await a flush.
	pending bool
	// scheduled is set while a frame tick is in flight.
	scheduled bool
	// outbox collects notifications delivered by the last flush.
	outbox []tea.Msg
	set    *bubble.Set
}

// mouseState tracks a left-button gesture.
type mouseState struct {
	down bool
	// token pressed, zero when the press landed elsewhere
	token sequence.ID
	mods  bubble.Modifiers
	// text anchor of a text drag selection
	anchor  sequence.Point
	textSel bool
}

// Model is a Bubble Tea component that renders and interacts with a bubble
// set.
type Model struct {
	id  int
	cfg Config
	set *bubble.Set
	log *slog.Logger

	focused bool

	viewport viewport.Model
	layout   *layoutCache
	frame    *frameState
	mouse    *mouseState

	lastVersion uint64
}

func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		id:       nextID(),
		cfg:      cfg,
		log:      cfg.Logger,
		focused:  true,
		viewport: viewport.New(0, 1),
		layout:   &layoutCache{},
		frame:    &frameState{},
		mouse:    &mouseState{},
	}
	m.set = bubble.New(bubble.Config{
		Options:       cfg.Options,
		Raw:           cfg.Raw,
		Hooks:         cfg.Hooks,
		Notifier:      notifier(m.id, m.frame, cfg.Notifier),
		Request:       func() { m.frame.pending = true },
		DragSupported: cfg.Drag != nil,
		Logger:        cfg.Logger,
	})
	m.frame.set = m.set
	if cfg.Content != "" {
		m.set.SetContent(cfg.Content)
	} else {
		m.set.Focus()
	}
	m.lastVersion = m.set.Container().Version()
	m.rebuildContent()
	return m
}

// ID identifies the editor in the messages it emits.
func (m Model) ID() int { return m.id }

// Set exposes the underlying bubble set.
func (m Model) Set() *bubble.Set { return m.set }

// Value returns the committed token texts.
func (m Model) Value() []string { return m.set.Values() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 1 {
		height = 1
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

// SetStyle replaces the rendering style.
func (m Model) SetStyle(st Style) Model {
	m.cfg.Style = st
	m.rebuildContent()
	return m
}

// Reconfigure replaces the base bubble options. The raw options given at
// construction are applied on top again. Existing tokens keep their classes.
func (m Model) Reconfigure(o bubble.Options) (Model, error) {
	err := m.set.Reconfigure(o, m.cfg.Raw)
	m.rebuildContent()
	return m, err
}

// SetContent replaces the content with text or markup and segments it.
func (m Model) SetContent(s string) Model {
	m.set.SetContent(s)
	if !m.focused {
		m.set.Container().ClearCursor()
	}
	m.rebuildContent()
	return m
}

// Focus restores the text cursor at the end of the input.
func (m Model) Focus() (Model, tea.Cmd) {
	if !m.focused {
		m.focused = true
		m.set.Focus()
		m.rebuildContent()
		m.followCursor()
	}
	return m, m.frameCmd()
}

// Blur deselects tokens and commits pending text.
func (m Model) Blur() (Model, tea.Cmd) {
	if m.focused {
		m.focused = false
		m.set.Blur()
		m.rebuildContent()
	}
	return m, m.frameCmd()
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, m.viewport.Height), nil
	case frameMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.flush()
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	if m.syncFromSet() {
		m.followCursor()
	}
	return m, tea.Batch(cmd, m.frameCmd())
}

func (m Model) View() string { return m.viewport.View() }

// syncFromSet rebuilds the rendered content when the set changed,
// including changes made by the host or by a drop from another editor.
func (m *Model) syncFromSet() bool {
	ver := m.set.Container().Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.lastVersion = m.set.Container().Version()
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	l := m.ensureLayout()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 || l.cursorRow < 0 {
		return
	}
	y := m.viewport.YOffset
	if l.cursorRow < y {
		m.viewport.SetYOffset(l.cursorRow)
		return
	}
	if l.cursorRow >= y+h {
		m.viewport.SetYOffset(l.cursorRow - h + 1)
	}
}
