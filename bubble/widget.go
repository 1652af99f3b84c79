package bubble

import (
	"strings"

	"github.com/iw2rmb/chipset/sequence"
)

// AddBubble creates a token from text and puts it in place of the text run
// under the cursor, or at the end. The cursor is restored afterwards.
func (s *Set) AddBubble(text string, attrs map[string]string) bool {
	tok, ok := s.Create(text, attrs)
	if !ok {
		return false
	}
	s.c.TextToBubble(tok)
	s.fireInput()
	s.fireChange()
	s.c.RestoreCursor()
	return true
}

// RemoveBubble deletes a token of this set.
func (s *Set) RemoveBubble(id sequence.ID) bool { return s.Remove(id) }

// EditBubble turns a token of this set back into text.
func (s *Set) EditBubble(id sequence.ID) bool { return s.Edit(id) }

// SetContent replaces the whole content with data (plain text or simple
// markup) and segments it.
func (s *Set) SetContent(data string) {
	s.c.Clear()
	s.c.Append(sequence.TextPiece(sequence.HTMLToText(data)))
	s.Segment()
	s.c.RestoreCursor()
}

// InputValue returns the cleaned text of the run under the cursor.
func (s *Set) InputValue() string {
	run, ok := s.c.LocateTextRun()
	if !ok {
		return ""
	}
	return sequence.Clean(s.c.RunText(run))
}

// Tokens returns a snapshot of every token in document order.
func (s *Set) Tokens() []sequence.Token {
	ids := s.c.Tokens()
	out := make([]sequence.Token, 0, len(ids))
	for _, id := range ids {
		tok, _ := s.c.Token(id)
		out = append(out, tok)
	}
	return out
}

// Values returns the texts of every token in document order.
func (s *Set) Values() []string {
	toks := s.Tokens()
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

// JoinCopy returns a CopyFunc joining token texts with sep.
func JoinCopy(sep string) CopyFunc {
	return func(toks []sequence.Token) string {
		parts := make([]string, len(toks))
		for i, t := range toks {
			parts[i] = t.Text
		}
		return strings.Join(parts, sep)
	}
}
