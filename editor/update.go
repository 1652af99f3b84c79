package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.set == nil {
		return m, nil
	}
	s := m.set

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.ensureCursor()
		s.Paste(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		s.ArrowLeft(false)
	case key.Matches(msg, km.Right):
		s.ArrowRight(false)
	case key.Matches(msg, km.ShiftLeft):
		s.ArrowLeft(true)
	case key.Matches(msg, km.ShiftRight):
		s.ArrowRight(true)
	case key.Matches(msg, km.Up):
		s.ArrowUp()
	case key.Matches(msg, km.Down):
		s.ArrowDown()

	case key.Matches(msg, km.Backspace):
		s.Backspace()
	case key.Matches(msg, km.Delete):
		s.Delete()
	case key.Matches(msg, km.Enter):
		s.Enter()
	case key.Matches(msg, km.Space):
		if !s.Space() {
			s.Type(" ")
		}
	case key.Matches(msg, km.Commit):
		s.Commit()
		m.log.Debug("editor: commit", slog.Int("editor", m.id), slog.Int("tokens", len(s.Tokens())))
	case key.Matches(msg, km.Escape):
		s.Commit()

	case key.Matches(msg, km.SelectAll):
		s.SelectAllKey()
	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			s.Type(string(msg.Runes))
		}
	}
	return m, nil
}

// ensureCursor parks the text cursor at the end when there is none.
func (m Model) ensureCursor() {
	if _, ok := m.set.Container().Selection(); !ok {
		m.set.Focus()
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.set.CopySelected()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Warn("editor: clipboard write", slog.Any("err", err))
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.set.CutSelected()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Warn("editor: clipboard write", slog.Any("err", err))
	}
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("editor: clipboard read", slog.Any("err", err))
		return
	}
	if s == "" {
		return
	}
	m.ensureCursor()
	m.set.Paste(s)
}
