package bubble

import (
	"strings"
	"time"

	"github.com/iw2rmb/chipset/sequence"
)

// DoubleClickInterval is the longest gap between two token clicks that
// still counts as a double click.
const DoubleClickInterval = 200 * time.Millisecond

// Modifiers describe the keys held during a click.
type Modifiers struct {
	Shift bool
	// Meta is the platform "add to selection" modifier (Ctrl or Cmd).
	Meta bool
}

func (s *Set) textAnchor() bool {
	sel, ok := s.c.Selection()
	return ok && s.c.IsText(sel.Anchor.ID)
}

// Type inserts s at the text cursor, restoring the cursor first when the
// input has none.
func (s *Set) Type(text string) bool {
	if _, ok := s.c.Selection(); !ok {
		s.c.RestoreCursor()
	}
	if !s.c.InsertText(text) {
		return false
	}
	s.fireInput()
	return true
}

// ArrowLeft moves the text cursor left and, once text is exhausted, walks
// the token selection. shift extends instead of moving.
func (s *Set) ArrowLeft(shift bool) bool {
	if s.c.MoveCursor(sequence.Left, shift) {
		return true
	}
	if sel, ok := s.c.Selection(); ok && s.c.IsText(sel.Anchor.ID) {
		if id := s.c.PrevToken(sel.Anchor.ID); id != 0 {
			return s.SelectSingle(id)
		}
		return false
	}

	list := s.c.SelectedTokens()
	if len(list) == 0 {
		return false
	}
	begin := list[0]
	if len(list) > 1 && list[0] == s.anchor {
		begin = list[len(list)-1]
	}
	id := s.c.PrevToken(begin)
	if id == 0 {
		return false
	}
	if shift {
		s.SelectRange(id)
		return true
	}
	return s.SelectSingle(id)
}

// ArrowRight mirrors ArrowLeft. Walking past the last token returns to the
// text cursor.
func (s *Set) ArrowRight(shift bool) bool {
	if s.c.MoveCursor(sequence.Right, shift) {
		return true
	}
	if sel, ok := s.c.Selection(); ok && s.c.IsText(sel.Focus.ID) {
		if id := s.c.NextToken(sel.Focus.ID); id != 0 {
			return s.SelectSingle(id)
		}
		return false
	}

	list := s.c.SelectedTokens()
	if len(list) == 0 {
		return false
	}
	begin := list[len(list)-1]
	if len(list) > 1 && list[len(list)-1] == s.anchor {
		begin = list[0]
	}
	if id := s.c.NextToken(begin); id != 0 {
		if shift {
			s.SelectRange(id)
			return true
		}
		return s.SelectSingle(id)
	}
	if next := s.c.Next(begin); s.c.IsText(next) {
		s.c.ClearTokenSelection()
		return s.c.Collapse(sequence.Point{ID: next})
	}
	s.c.RestoreCursor()
	return true
}

// ArrowUp selects the first token.
func (s *Set) ArrowUp() bool {
	if s.Options().DisableControls {
		return false
	}
	if id := s.c.FirstToken(); id != 0 {
		return s.SelectSingle(id)
	}
	return false
}

// ArrowDown leaves token selection for the text cursor at the end.
func (s *Set) ArrowDown() bool {
	if s.Options().DisableControls || !s.HasSelected() {
		return false
	}
	s.c.RestoreCursor()
	return true
}

// SelectAllKey selects the text run under the cursor or, failing that,
// every token.
func (s *Set) SelectAllKey() {
	if !s.c.SelectAll() {
		s.SelectAllTokens()
	}
}

// Commit segments pending text and parks the cursor at the end.
func (s *Set) Commit() {
	s.Segment()
	s.c.RestoreCursor()
}

// Enter edits the single selected token or commits pending text.
func (s *Set) Enter() bool {
	if s.Options().DisableControls {
		return false
	}
	if !s.editSelected() {
		s.Commit()
	}
	return true
}

// Space edits the single selected token. It reports whether it did, in
// which case the space must not be typed.
func (s *Set) Space() bool { return s.editSelected() }

func (s *Set) editSelected() bool {
	if _, ok := s.c.Selection(); ok {
		return false
	}
	if list := s.c.SelectedTokens(); len(list) == 1 {
		return s.Edit(list[0])
	}
	return false
}

// Backspace deletes text left of the cursor, then selects the token left
// of it, then removes selected tokens.
func (s *Set) Backspace() {
	if sel, ok := s.c.Selection(); ok {
		if !sel.Collapsed() || s.c.MoveCursor(sequence.Left, true) {
			s.c.RemoveSelection()
			s.fireInput()
			return
		}
	}
	if id := s.c.TokenLeftOfSelection(); id != 0 {
		s.SelectSingle(id)
		return
	}
	s.removeSelected(false)
}

// Delete mirrors Backspace towards the right.
func (s *Set) Delete() {
	if sel, ok := s.c.Selection(); ok {
		if !sel.Collapsed() || s.c.MoveCursor(sequence.Right, true) {
			s.c.RemoveSelection()
			s.fireInput()
			return
		}
	}
	if id := s.c.TokenRightOfSelection(); id != 0 {
		s.SelectSingle(id)
		return
	}
	s.removeSelected(true)
}

// removeSelected deletes the selected tokens and selects a neighbour,
// preferring the following one when preferNext is set.
func (s *Set) removeSelected(preferNext bool) bool {
	list := s.c.SelectedTokens()
	if len(list) == 0 {
		return false
	}
	prev := s.c.Prev(list[0])
	next := s.c.Next(list[len(list)-1])
	for _, id := range list {
		s.c.Remove(id)
	}

	first, second := prev, next
	if preferNext {
		first, second = next, prev
	}
	switch {
	case s.c.IsToken(first):
		s.SelectSingle(first)
	case s.c.IsToken(second):
		s.SelectSingle(second)
	default:
		s.c.RestoreCursor()
	}
	s.fireChange()
	return true
}

// CopySelected renders the selected tokens with the copy hook. It returns
// "" while a text cursor is active or when nothing is selected.
func (s *Set) CopySelected() string {
	if s.textAnchor() {
		return ""
	}
	list := s.c.SelectedTokens()
	fn := s.Options().Copy
	if len(list) == 0 || fn == nil {
		return ""
	}
	toks := make([]sequence.Token, 0, len(list))
	for _, id := range list {
		tok, _ := s.c.Token(id)
		toks = append(toks, tok)
	}
	return fn(toks)
}

// CutSelected copies the selected tokens and removes them when the copy
// produced something.
func (s *Set) CutSelected() string {
	v := s.CopySelected()
	if v != "" {
		s.removeSelected(false)
	}
	return v
}

// Paste inserts clipboard text at the cursor. Line breaks become spaces.
// When the input is empty and the paste hook accepts the text it is
// segmented right away.
func (s *Set) Paste(data string) bool {
	data = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(data)
	sel, ok := s.c.Selection()
	if !ok {
		return false
	}
	bubbling := false
	if fn := s.Options().CheckPaste; fn != nil && data != "" && sel.Collapsed() && s.InputValue() == "" {
		bubbling = fn(data)
	}
	if !s.c.ReplaceWithText(data) {
		return false
	}
	if bubbling {
		s.Commit()
	} else {
		s.fireInput()
	}
	return true
}

// Click handles a pointer click on id, which may be a token, a text
// segment or zero for empty space.
func (s *Set) Click(id sequence.ID, mods Modifiers, now time.Time) {
	if !s.c.IsToken(id) {
		s.c.ClearTokenSelection()
		if !s.textAnchor() {
			s.c.RestoreCursor()
		}
		return
	}

	double := !s.lastClick.IsZero() && now.Sub(s.lastClick) < DoubleClickInterval
	s.lastClick = now

	switch {
	case mods.Meta:
		s.AddToggle(id)
	case mods.Shift:
		if !s.c.IsToken(s.anchor) {
			s.SelectSingle(id)
		} else {
			s.SelectRange(id)
		}
	case double:
		s.Edit(id)
	default:
		s.ToggleSingle(id)
	}
}

// Blur deselects tokens, commits pending text and drops the cursor.
func (s *Set) Blur() {
	s.c.ClearTokenSelection()
	s.Segment()
	s.c.ClearCursor()
}

// Focus parks the cursor at the end of the input.
func (s *Set) Focus() { s.c.RestoreCursor() }
