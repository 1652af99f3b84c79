package sequence

// Selection returns the current cursor/selection, if any.
func (c *Container) Selection() (Selection, bool) {
	return c.sel, c.hasSel
}

// SetSelection installs s after clamping both points. It fails when either
// point does not refer to a live segment.
func (c *Container) SetSelection(s Selection) bool {
	if !c.Contains(s.Anchor.ID) || !c.Contains(s.Focus.ID) {
		return false
	}
	next := Selection{Anchor: c.clampPoint(s.Anchor), Focus: c.clampPoint(s.Focus)}
	if c.hasSel && c.sel == next {
		return true
	}
	c.sel = next
	c.hasSel = true
	c.version++
	return true
}

// Collapse places a collapsed cursor at p.
func (c *Container) Collapse(p Point) bool {
	return c.SetSelection(Selection{Anchor: p, Focus: p})
}

// ClearCursor removes the cursor/selection entirely.
func (c *Container) ClearCursor() {
	if !c.hasSel {
		return
	}
	c.hasSel = false
	c.sel = Selection{}
	c.version++
}

// Correct normalises the selection into document order. reversed reports
// that the focus precedes the anchor.
func (c *Container) Correct() (start, end Point, reversed, ok bool) {
	if !c.hasSel {
		return Point{}, Point{}, false, false
	}
	a, f := c.sel.Anchor, c.sel.Focus
	if c.ComparePoints(f, a) < 0 {
		return f, a, true, true
	}
	return a, f, false, true
}

func (c *Container) clampPoint(p Point) Point {
	nd := c.get(p.ID)
	if nd == nil {
		return p
	}
	if nd.kind == KindToken || p.Offset < 0 {
		p.Offset = 0
		return p
	}
	if n := runeLen(nd.text); p.Offset > n {
		p.Offset = n
	}
	return p
}

// SetSelected sets the selected flag on a token segment.
func (c *Container) SetSelected(id ID, on bool) bool {
	nd := c.get(id)
	if nd == nil || nd.kind != KindToken {
		return false
	}
	if nd.tok.Selected != on {
		nd.tok.Selected = on
		c.version++
	}
	return true
}

func (c *Container) IsSelected(id ID) bool {
	nd := c.get(id)
	return nd != nil && nd.kind == KindToken && nd.tok.Selected
}

// SelectedTokens returns the selected tokens in document order.
func (c *Container) SelectedTokens() []ID {
	var out []ID
	for id := c.head; id != 0; id = c.Next(id) {
		if c.IsSelected(id) {
			out = append(out, id)
		}
	}
	return out
}

// ClearTokenSelection deselects every token and returns how many were
// selected.
func (c *Container) ClearTokenSelection() int {
	n := 0
	for id := c.head; id != 0; id = c.Next(id) {
		if c.IsSelected(id) {
			c.SetSelected(id, false)
			n++
		}
	}
	return n
}
