package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Left, Right           key.Binding
	ShiftLeft, ShiftRight key.Binding
	// Up selects the first token, Down returns to the text cursor.
	Up, Down key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Space             key.Binding
	// Commit keys segment the pending text without being typed.
	Commit key.Binding
	Escape key.Binding

	SelectAll        key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("\u2190", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("\u2192", "right")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+\u2190", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+\u2192", "select right")),

		Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("\u2191", "first bubble")),
		Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("\u2193", "back to text")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit/edit")),
		Space:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "edit bubble")),
		Commit:    key.NewBinding(key.WithKeys(",", ";"), key.WithHelp(", ;", "commit")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "commit")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Commit, k.Up, k.Down, k.Backspace}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.ShiftLeft, k.ShiftRight, k.Up, k.Down},
		{k.Enter, k.Space, k.Commit, k.Escape, k.Backspace, k.Delete},
		{k.SelectAll, k.Copy, k.Cut, k.Paste},
	}
}

func (k KeyMap) empty() bool {
	for _, group := range k.FullHelp() {
		for _, b := range group {
			if len(b.Keys()) > 0 {
				return false
			}
		}
	}
	return true
}
