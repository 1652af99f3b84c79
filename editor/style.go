package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/chipset/sequence"
)

// Style controls the editor's rendering. Token chips are padded by one
// cell on each side; token styles must render on a single line.
type Style struct {
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Bubble   lipgloss.Style
	Selected lipgloss.Style
	Readonly lipgloss.Style
	// Classes style tokens carrying the class, layered over Bubble in
	// token class order.
	Classes map[string]lipgloss.Style

	// DropTarget replaces Prompt while a drag hovers over the editor.
	DropTarget lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Bubble: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Readonly:   lipgloss.NewStyle().Italic(true),
		DropTarget: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	}
}

// tokenStyle resolves the chip style of tok.
func (s Style) tokenStyle(tok sequence.Token) lipgloss.Style {
	st := s.Bubble
	for _, c := range tok.Classes {
		if cs, ok := s.Classes[c]; ok {
			st = cs.Inherit(st)
		}
	}
	if tok.Readonly {
		st = s.Readonly.Inherit(st)
	}
	if tok.Selected {
		st = s.Selected.Inherit(st)
	}
	return st
}
