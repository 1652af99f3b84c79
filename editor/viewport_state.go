package editor

import "github.com/iw2rmb/chipset/sequence"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the wrapped row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// Rows is the total number of wrapped rows.
	Rows int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	top := m.viewport.YOffset
	if top < 0 {
		top = 0
	}
	return ViewportState{
		TopRow:      top,
		VisibleRows: m.visibleRowCount(),
		Rows:        len(m.ensureLayout().rows),
	}
}

// Hit describes what lies under a screen cell.
type Hit struct {
	// ID is the token or text segment under the cell, zero for decoration
	// or empty space.
	ID sequence.ID
	// Offset is the rune offset inside a text segment.
	Offset int
	// Token is set when ID is a token.
	Token bool
	// Past is set when the cell lies beyond the end of its row.
	Past bool
}

// HitTest maps viewport-local screen coordinates to the content under
// them. ok is false outside any rendered row.
func (m Model) HitTest(x, y int) (Hit, bool) {
	return (&m).hitTest(x, y)
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
