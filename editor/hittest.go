package editor

import "github.com/iw2rmb/chipset/sequence"

// hitTest maps viewport-local mouse coordinates to a segment.
//
// Coordinates are in terminal cells and are relative to the editor's viewport:
// (0,0) is the top-left of the visible content region.
//
// Mapping rules:
// - a cell on a chip maps to the token
// - a cell on a text cluster maps to the point before the cluster
// - a cell past the end of a row maps to the point after its last cluster,
//   or to nothing when the row ends in a chip
func (m *Model) hitTest(x, y int) (Hit, bool) {
	p, past, ok := m.itemAt(x, y)
	if !ok {
		return Hit{}, false
	}
	switch p.kind {
	case itemToken:
		if past {
			return Hit{Past: true}, true
		}
		return Hit{ID: p.id, Token: true}, true
	case itemText:
		if past {
			return Hit{ID: p.id, Offset: p.offset + p.runes, Past: true}, true
		}
		return Hit{ID: p.id, Offset: p.offset}, true
	case itemCaret:
		return Hit{ID: p.id, Offset: p.offset, Past: past}, true
	default:
		return Hit{Past: past}, true
	}
}

// textPoint returns the caret position of a hit inside a text segment.
func (h Hit) textPoint() (sequence.Point, bool) {
	if h.ID == 0 || h.Token {
		return sequence.Point{}, false
	}
	return sequence.Point{ID: h.ID, Offset: h.Offset}, true
}
