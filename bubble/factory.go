package bubble

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/iw2rmb/chipset/sequence"
)

// Create builds a token for text without inserting it. It fails when text
// cleans to nothing. Empty attribute values are skipped; the rest are
// stored escaped.
func (s *Set) Create(text string, attrs map[string]string) (sequence.Token, bool) {
	return s.create(text, attrs, s.Options())
}

func (s *Set) create(text string, attrs map[string]string, o Options) (sequence.Token, bool) {
	text = sequence.Clean(text)
	if text == "" {
		return sequence.Token{}, false
	}
	tok := sequence.Token{
		Key:  uuid.NewString(),
		Text: text,
	}
	for k, v := range attrs {
		if v == "" {
			continue
		}
		if tok.Attrs == nil {
			tok.Attrs = make(map[string]string, len(attrs))
		}
		tok.Attrs[k] = sequence.EscapeAttr(v)
	}
	if o.Formation != nil {
		o.Formation(&tok)
	}
	for _, class := range strings.Fields(o.ClassBubble) {
		if !tok.HasClass(class) {
			tok.Classes = append(tok.Classes, class)
		}
	}
	tok.Draggable = s.drag && o.Draggable
	return tok, true
}

// Edit turns a token back into editable text preceded by a sentinel and
// selects the deformation range in it. Readonly tokens are refused.
func (s *Set) Edit(id sequence.ID) bool {
	tok, ok := s.c.Token(id)
	if !ok || tok.Readonly {
		return false
	}
	d, ok := Deformation{}, false
	if fn := s.Options().Deformation; fn != nil {
		d, ok = fn(tok)
	}
	if !ok {
		text := sequence.Clean(tok.Text)
		d = Deformation{Text: text, End: utf8.RuneCountInString(text)}
	}
	n := utf8.RuneCountInString(d.Text)
	d.Start = clamp(d.Start, 0, n)
	d.End = clamp(d.End, d.Start, n)

	s.fireEdit(tok)
	textID := s.c.InsertBefore(id, sequence.TextPiece(d.Text))
	s.c.InsertBefore(textID, sequence.TextPiece(sequence.Sentinel))
	s.c.Remove(id)
	s.c.SetSelection(sequence.Selection{
		Anchor: sequence.Point{ID: textID, Offset: d.Start},
		Focus:  sequence.Point{ID: textID, Offset: d.End},
	})
	s.log.Debug("bubble: edit", slog.String("text", d.Text))
	return true
}

// Segment commits every text run: each run is cleaned, split into
// fragments and replaced by the tokens created from them. Runs that yield
// no token are deleted. It returns the new tokens in document order.
func (s *Set) Segment() []sequence.ID {
	o := s.Options()
	var created []sequence.ID
	for _, run := range s.c.TextRuns() {
		text := sequence.Clean(s.c.RunText(run))
		if text != "" {
			for _, part := range fragments(text, o) {
				tok, ok := s.create(part, nil, o)
				if !ok {
					continue
				}
				created = append(created, s.c.InsertBefore(run.First, sequence.TokenPiece(tok)))
			}
		}
		s.removeRun(run)
	}

	s.fireInput()
	if len(created) > 0 {
		s.fireChange()
		s.log.Debug("bubble: segment", slog.Int("created", len(created)))
	}
	return created
}

func (s *Set) removeRun(run sequence.Run) {
	var ids []sequence.ID
	for id := run.First; id != 0; id = s.c.Next(id) {
		ids = append(ids, id)
		if id == run.Last {
			break
		}
	}
	for _, id := range ids {
		s.c.Remove(id)
	}
}

// Remove deletes a token of this set.
func (s *Set) Remove(id sequence.ID) bool {
	if !s.c.IsToken(id) {
		return false
	}
	s.c.Remove(id)
	s.fireChange()
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
