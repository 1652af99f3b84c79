package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/sequence"
)

// FrameInterval is the delay between a change and the delivery of its
// coalesced notifications.
const FrameInterval = 16 * time.Millisecond

type frameMsg struct{ id int }

// InputMsg reports a new value of the pending text.
type InputMsg struct {
	ID    int
	Value string
}

// ChangeMsg reports that tokens were added, removed or moved. Tokens is
// the token list at flush time.
type ChangeMsg struct {
	ID     int
	Tokens []sequence.Token
}

// EditMsg reports a token about to be turned back into text.
type EditMsg struct {
	ID    int
	Token sequence.Token
}

// notifier queues a message for every notification and forwards it to the
// host callbacks.
func notifier(id int, f *frameState, host bubble.Notifier) bubble.Notifier {
	return bubble.Notifier{
		OnInput: func(v string) {
			f.outbox = append(f.outbox, InputMsg{ID: id, Value: v})
			if host.OnInput != nil {
				host.OnInput(v)
			}
		},
		OnChange: func() {
			var toks []sequence.Token
			if f.set != nil {
				toks = f.set.Tokens()
			}
			f.outbox = append(f.outbox, ChangeMsg{ID: id, Tokens: toks})
			if host.OnChange != nil {
				host.OnChange()
			}
		},
		OnEdit: func(tok sequence.Token) {
			f.outbox = append(f.outbox, EditMsg{ID: id, Token: tok})
			if host.OnEdit != nil {
				host.OnEdit(tok)
			}
		},
	}
}

// frameCmd schedules a frame tick when notifications are pending and no
// tick is in flight.
func (m Model) frameCmd() tea.Cmd {
	if !m.frame.pending || m.frame.scheduled {
		return nil
	}
	m.frame.scheduled = true
	id := m.id
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg { return frameMsg{id: id} })
}

// flush delivers pending notifications and returns them as messages.
func (m Model) flush() tea.Cmd {
	m.frame.scheduled = false
	m.frame.pending = false
	m.set.Flush()
	out := m.frame.outbox
	m.frame.outbox = nil
	if len(out) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(out))
	for _, msg := range out {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Batch(cmds...)
}
