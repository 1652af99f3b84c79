// Package sequence implements the pure segment-sequence model behind a
// bubble input: an ordered list of text runs and opaque tokens, plus the
// cursor/selection state and the text-level editing primitives over it.
//
// Offsets are 0-based rune offsets inside a single text run. Cursor steps
// move by grapheme cluster and never stop on the zero-width sentinel.
package sequence
