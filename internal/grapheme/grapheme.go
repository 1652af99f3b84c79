package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Boundaries returns the rune offsets at which grapheme clusters start,
// followed by the rune length of text. An empty text yields [0].
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the closest cluster boundary strictly before off, or -1 when
// off is at (or before) the start of text.
func Prev(text string, off int) int {
	prev := -1
	for _, b := range Boundaries(text) {
		if b >= off {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the closest cluster boundary strictly after off, or -1 when
// off is at (or past) the end of text.
func Next(text string, off int) int {
	for _, b := range Boundaries(text) {
		if b > off {
			return b
		}
	}
	return -1
}

// Slice returns the runes of text in [start, end), clamped to text bounds.
func Slice(text string, start, end int) string {
	rs := []rune(text)
	if start < 0 {
		start = 0
	}
	if end > len(rs) {
		end = len(rs)
	}
	if start >= end {
		return ""
	}
	return string(rs[start:end])
}
