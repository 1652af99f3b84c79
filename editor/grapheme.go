package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCellWidth returns the terminal cell width of one grapheme
// cluster.
func graphemeCellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// stringCellWidth sums cluster widths of s.
func stringCellWidth(s string) int {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += graphemeCellWidth(g.Str())
	}
	return w
}

// truncateCells cuts s to at most width cells, ending with an ellipsis when
// anything was dropped.
func truncateCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if stringCellWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "\u2026")
}
