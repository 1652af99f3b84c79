package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/sequence"
)

// now is replaced in tests to drive double clicks.
var now = time.Now

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	in := m.mouseInBounds(msg.X, msg.Y)
	if m.updateDrag(msg, in) {
		return m, cmd
	}
	if !m.focused || m.set == nil {
		return m, cmd
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !in {
			return m, cmd
		}
		m.press(msg)

	case tea.MouseActionMotion:
		if !m.mouse.down || !m.mouse.textSel {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		hit, ok := m.hitTest(x, y)
		if !ok {
			return m, cmd
		}
		if p, ok := hit.textPoint(); ok {
			m.set.Container().SetSelection(sequence.Selection{Anchor: m.mouse.anchor, Focus: p})
		}

	case tea.MouseActionRelease:
		ms := *m.mouse
		*m.mouse = mouseState{}
		if !ms.down || ms.token == 0 || !in {
			return m, cmd
		}
		// A click needs press and release on the same token.
		if hit, ok := m.hitTest(msg.X, msg.Y); ok && hit.Token && hit.ID == ms.token {
			m.set.Click(ms.token, ms.mods, now())
		}
	}
	return m, cmd
}

func (m Model) press(msg tea.MouseMsg) {
	hit, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		hit = Hit{Past: true}
	}
	mods := bubble.Modifiers{Shift: msg.Shift, Meta: msg.Ctrl || msg.Alt}
	*m.mouse = mouseState{down: true, mods: mods}

	if hit.Token {
		m.mouse.token = hit.ID
		if d := m.cfg.Drag; d != nil && !mods.Shift && !mods.Meta {
			d.Press(m.set, hit.ID)
		}
		return
	}

	m.set.Click(hit.ID, mods, now())
	c := m.set.Container()
	p, ok := hit.textPoint()
	if !ok {
		return
	}
	if sel, has := c.Selection(); has && mods.Shift {
		c.SetSelection(sequence.Selection{Anchor: sel.Anchor, Focus: p})
		m.mouse.anchor = sel.Anchor
	} else {
		c.Collapse(p)
		m.mouse.anchor = p
	}
	m.mouse.textSel = true
}

// updateDrag routes pointer events to the shared drag coordinator. Every
// editor sharing the coordinator sees the events, focused or not; hosts
// call Coordinator.Cancel after routing a release so that drops outside
// every editor end the gesture. It reports whether the event was consumed.
func (m Model) updateDrag(msg tea.MouseMsg, in bool) bool {
	d := m.cfg.Drag
	if d == nil || d.Pressed() == nil {
		return false
	}
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		// A press while a gesture is still open means its release was lost.
		if in && msg.Button == tea.MouseButtonLeft && d.Active() {
			d.Cancel()
		}
		return false
	case tea.MouseActionMotion:
		switch {
		case in:
			d.Move(m.set)
		case d.Over() == m.set, !d.Active() && d.Pressed() == m.set:
			d.Move(nil)
		}
		return d.Active()
	case tea.MouseActionRelease:
		if !d.Active() {
			if d.Pressed() == m.set {
				d.Cancel()
			}
			return false
		}
		if !in {
			return false
		}
		d.Release(m.set)
		*m.mouse = mouseState{}
		return true
	}
	return false
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		if x < 0 {
			x = 0
		}
		if x >= m.viewport.Width {
			x = m.viewport.Width - 1
		}
	}
	if m.viewport.Height > 0 {
		if y < 0 {
			y = 0
		}
		if y >= m.viewport.Height {
			y = m.viewport.Height - 1
		}
	}
	return x, y
}
