package bubble

import "github.com/iw2rmb/chipset/sequence"

// AddToggle adds id to the token selection and makes it the range anchor.
// Re-adding a selected token succeeds. Pending text is committed.
func (s *Set) AddToggle(id sequence.ID) bool {
	if !s.c.SetSelected(id, true) {
		return false
	}
	s.anchor = id
	s.Segment()
	return true
}

// SelectSingle makes id the only selected token and drops the text cursor.
func (s *Set) SelectSingle(id sequence.ID) bool {
	if !s.c.IsToken(id) {
		return false
	}
	s.c.ClearCursor()
	s.c.ClearTokenSelection()
	return s.AddToggle(id)
}

// ToggleSingle deselects id when it is the sole selected token and selects
// it alone otherwise. It reports whether id is selected afterwards.
func (s *Set) ToggleSingle(id sequence.ID) bool {
	if sel := s.c.SelectedTokens(); len(sel) == 1 && sel[0] == id {
		s.c.SetSelected(id, false)
		return false
	}
	return s.SelectSingle(id)
}

// SelectRange selects the contiguous tokens between the range anchor and
// id. The walk stops silently at the first non-token segment.
func (s *Set) SelectRange(id sequence.ID) {
	if !s.c.IsToken(id) {
		return
	}
	sel := s.c.SelectedTokens()
	if len(sel) == 0 {
		s.SelectSingle(id)
		return
	}
	s.c.ClearTokenSelection()
	if sel[0] == sel[len(sel)-1] || !s.c.IsToken(s.anchor) {
		s.anchor = sel[0]
	}

	from, to := s.anchor, id
	if s.c.Compare(id, s.anchor) < 0 {
		from, to = id, s.anchor
	}
	for n := from; n != 0; n = s.c.Next(n) {
		if !s.c.SetSelected(n, true) || n == to {
			break
		}
	}
	s.Segment()
}

// SelectAllTokens selects every token and drops the text cursor.
func (s *Set) SelectAllTokens() {
	var first sequence.ID
	for _, id := range s.c.Tokens() {
		s.c.SetSelected(id, true)
		if first == 0 {
			first = id
		}
	}
	s.anchor = first
	s.Segment()
	s.c.ClearCursor()
}

// ClearSelection deselects every token. The range anchor is kept.
func (s *Set) ClearSelection() { s.c.ClearTokenSelection() }

func (s *Set) IsSelected(id sequence.ID) bool { return s.c.IsSelected(id) }

// Selected returns the selected tokens in document order.
func (s *Set) Selected() []sequence.ID { return s.c.SelectedTokens() }

func (s *Set) HasSelected() bool { return len(s.c.SelectedTokens()) > 0 }

func (s *Set) Head() sequence.ID {
	if sel := s.c.SelectedTokens(); len(sel) > 0 {
		return sel[0]
	}
	return 0
}

func (s *Set) Last() sequence.ID {
	if sel := s.c.SelectedTokens(); len(sel) > 0 {
		return sel[len(sel)-1]
	}
	return 0
}

// RangeAnchor returns the pivot used by SelectRange, zero when unset or
// stale.
func (s *Set) RangeAnchor() sequence.ID {
	if !s.c.IsToken(s.anchor) {
		return 0
	}
	return s.anchor
}
