package editor

import (
	"strings"
)

func (m *Model) renderContent() string {
	l := m.ensureLayout()
	st := m.cfg.Style
	prompt := st.Prompt
	if m.dropTarget() {
		prompt = st.DropTarget
	}

	out := make([]string, 0, len(l.rows))
	for _, row := range l.rows {
		var sb strings.Builder
		for _, p := range row {
			switch p.kind {
			case itemPrompt:
				sb.WriteString(prompt.Render(p.text))
			case itemText:
				switch {
				case p.cursor:
					sb.WriteString(st.Cursor.Render(p.text))
				case p.selected:
					sb.WriteString(st.Selection.Render(p.text))
				default:
					sb.WriteString(st.Text.Render(p.text))
				}
			case itemCaret:
				sb.WriteString(st.Cursor.Render(p.text))
			case itemToken:
				sb.WriteString(st.tokenStyle(p.tok).Render(p.text))
			case itemGap:
				sb.WriteString(st.Text.Render(p.text))
			case itemPlaceholder:
				sb.WriteString(st.Placeholder.Render(p.text))
			}
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// dropTarget reports whether a drag from another editor hovers over this
// one.
func (m *Model) dropTarget() bool {
	d := m.cfg.Drag
	return d != nil && d.Active() && d.Over() == m.set && d.Source() != m.set
}
