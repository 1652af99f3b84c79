package sequence

import (
	"strings"

	"github.com/iw2rmb/chipset/internal/grapheme"
)

// RunAround returns the maximal run of text segments containing id.
func (c *Container) RunAround(id ID) (Run, bool) {
	if !c.IsText(id) {
		return Run{}, false
	}
	r := Run{First: id, Last: id}
	for p := c.Prev(r.First); c.IsText(p); p = c.Prev(p) {
		r.First = p
	}
	for n := c.Next(r.Last); c.IsText(n); n = c.Next(n) {
		r.Last = n
	}
	return r, true
}

// RunText concatenates the content of every segment in r.
func (c *Container) RunText(r Run) string {
	var sb strings.Builder
	for id := r.First; id != 0; id = c.Next(id) {
		sb.WriteString(c.TextOf(id))
		if id == r.Last {
			break
		}
	}
	return sb.String()
}

// TextRuns returns every maximal text run in document order.
func (c *Container) TextRuns() []Run {
	var out []Run
	for id := c.head; id != 0; {
		r, ok := c.RunAround(id)
		if !ok {
			id = c.Next(id)
			continue
		}
		out = append(out, r)
		id = c.Next(r.Last)
	}
	return out
}

// LocateTextRun returns the text run under the focus point, falling back to
// the anchor point.
func (c *Container) LocateTextRun() (Run, bool) {
	if !c.hasSel {
		return Run{}, false
	}
	p := c.sel.Focus
	if !c.IsText(p.ID) {
		p = c.sel.Anchor
	}
	return c.RunAround(p.ID)
}

// MoveCursor moves the cursor one grapheme cluster in dir. A range is
// collapsed to its near edge unless extend is set, in which case the focus
// moves and the anchor stays. Sentinel clusters are skipped. It returns
// false, leaving state untouched, when the walk hits a token or the edge
// of the container.
func (c *Container) MoveCursor(dir Direction, extend bool) bool {
	start, end, _, ok := c.Correct()
	if !ok {
		return false
	}
	if dir == Left && !c.IsText(c.sel.Anchor.ID) {
		return false
	}
	if dir == Right && !c.IsText(c.sel.Focus.ID) {
		return false
	}

	if !c.sel.Collapsed() && !extend {
		if dir == Left {
			return c.Collapse(start)
		}
		return c.Collapse(end)
	}

	var (
		target Point
		found  bool
	)
	if dir == Left {
		target, found = c.stepLeft(c.sel.Focus)
	} else {
		target, found = c.stepRight(c.sel.Focus)
	}
	if !found {
		return false
	}
	if extend {
		return c.SetSelection(Selection{Anchor: c.sel.Anchor, Focus: target})
	}
	return c.Collapse(target)
}

func (c *Container) stepLeft(from Point) (Point, bool) {
	id, off := from.ID, from.Offset
	for {
		if !c.IsText(id) {
			return Point{}, false
		}
		text := c.TextOf(id)
		if off < 0 || off > runeLen(text) {
			off = runeLen(text)
		}
		prev := grapheme.Prev(text, off)
		if prev < 0 {
			id, off = c.Prev(id), -1
			continue
		}
		if IsSentinel(grapheme.Slice(text, prev, off)) {
			off = prev
			continue
		}
		return Point{ID: id, Offset: prev}, true
	}
}

func (c *Container) stepRight(from Point) (Point, bool) {
	id, off := from.ID, from.Offset
	for {
		if !c.IsText(id) {
			return Point{}, false
		}
		text := c.TextOf(id)
		next := grapheme.Next(text, off)
		if next < 0 {
			id, off = c.Next(id), 0
			continue
		}
		if IsSentinel(grapheme.Slice(text, off, next)) {
			off = next
			continue
		}
		return Point{ID: id, Offset: next}, true
	}
}

// cut splits the sequence at p and returns the segments on either side of
// the cut. Either side may be zero at the container edges.
func (c *Container) cut(p Point) (before, after ID) {
	nd := c.get(p.ID)
	if nd == nil {
		return 0, 0
	}
	if nd.kind == KindToken {
		return nd.prev, p.ID
	}
	n := runeLen(nd.text)
	switch {
	case p.Offset <= 0:
		return nd.prev, p.ID
	case p.Offset >= n:
		return p.ID, nd.next
	}
	rs := []rune(nd.text)
	head, tail := string(rs[:p.Offset]), string(rs[p.Offset:])
	nd.text = head
	right := c.InsertAfter(p.ID, TextPiece(tail))
	return p.ID, right
}

// replaceRange removes everything between start and end and inserts the
// pieces in their place. Text segments emptied by the cut are dropped.
func (c *Container) replaceRange(start, end Point, pieces ...Piece) []ID {
	_, ea := c.cut(end)
	sb, sa := c.cut(start)

	for id := sa; id != 0 && id != ea; {
		next := c.Next(id)
		c.Remove(id)
		id = next
	}

	ids := make([]ID, 0, len(pieces))
	for _, p := range pieces {
		ids = append(ids, c.InsertBefore(ea, p))
	}

	for _, id := range []ID{sb, ea} {
		if c.IsText(id) && c.TextOf(id) == "" {
			c.Remove(id)
		}
	}
	c.version++
	return ids
}

// ReplaceSelection replaces the selected range (possibly collapsed) with p
// and collapses the cursor at the start of the inserted segment.
func (c *Container) ReplaceSelection(p Piece) (ID, bool) {
	start, end, _, ok := c.Correct()
	if !ok {
		return 0, false
	}
	ids := c.replaceRange(start, end, p)
	if len(ids) == 0 || ids[0] == 0 {
		return 0, false
	}
	c.Collapse(Point{ID: ids[0]})
	return ids[0], true
}

// ReplaceWithText cleans data and replaces the selection with it, leaving
// the cursor after the inserted text.
func (c *Container) ReplaceWithText(data string) bool {
	data = Clean(data)
	if data == "" {
		return false
	}
	id, ok := c.ReplaceSelection(TextPiece(data))
	if !ok {
		return false
	}
	return c.Collapse(Point{ID: id, Offset: runeLen(data)})
}

// RemoveSelection replaces the selection with a sentinel.
func (c *Container) RemoveSelection() bool {
	_, ok := c.ReplaceSelection(TextPiece(Sentinel))
	return ok
}

// SelectAll selects the text run under the anchor when it has content or
// when the container holds no tokens; an empty run just collapses the
// cursor at its end. An empty container gets a sentinel basis.
func (c *Container) SelectAll() bool {
	if c.n == 0 {
		id := c.Append(TextPiece(Sentinel))
		return c.Collapse(Point{ID: id, Offset: 1})
	}
	if !c.hasSel || !c.IsText(c.sel.Anchor.ID) {
		return false
	}
	run, _ := c.RunAround(c.sel.Anchor.ID)
	text := Clean(c.RunText(run))
	if text == "" && c.HasTokens() {
		return false
	}
	end := Point{ID: run.Last, Offset: runeLen(c.TextOf(run.Last))}
	if text == "" {
		return c.Collapse(end)
	}
	return c.SetSelection(Selection{Anchor: Point{ID: run.First}, Focus: end})
}

// TextToBubble replaces the text run under the cursor with tok, or appends
// tok when there is no such run.
func (c *Container) TextToBubble(tok Token) ID {
	if run, ok := c.LocateTextRun(); ok {
		c.SetSelection(Selection{
			Anchor: Point{ID: run.First},
			Focus:  Point{ID: run.Last, Offset: runeLen(c.TextOf(run.Last))},
		})
		if id, ok := c.ReplaceSelection(TokenPiece(tok)); ok {
			return id
		}
	}
	return c.Append(TokenPiece(tok))
}

// InsertText types s at the cursor, replacing a non-collapsed selection.
func (c *Container) InsertText(s string) bool {
	if s == "" {
		return false
	}
	start, end, _, ok := c.Correct()
	if !ok {
		return false
	}
	if start != end {
		ids := c.replaceRange(start, end, TextPiece(s))
		return c.Collapse(Point{ID: ids[0], Offset: runeLen(s)})
	}
	if c.IsText(start.ID) {
		rs := []rune(c.TextOf(start.ID))
		off := start.Offset
		c.SetText(start.ID, string(rs[:off])+s+string(rs[off:]))
		return c.Collapse(Point{ID: start.ID, Offset: off + runeLen(s)})
	}
	if prev := c.Prev(start.ID); c.IsText(prev) {
		text := c.TextOf(prev)
		c.SetText(prev, text+s)
		return c.Collapse(Point{ID: prev, Offset: runeLen(text) + runeLen(s)})
	}
	id := c.InsertBefore(start.ID, TextPiece(s))
	return c.Collapse(Point{ID: id, Offset: runeLen(s)})
}

// RestoreCursor clears token selection and parks a collapsed cursor after
// a trailing sentinel, appending one when the last segment is not already
// a sentinel.
func (c *Container) RestoreCursor() Point {
	c.ClearTokenSelection()
	basis := c.tail
	if !c.IsText(basis) || !IsSentinel(c.TextOf(basis)) {
		basis = c.Append(TextPiece(Sentinel))
	}
	p := Point{ID: basis, Offset: 1}
	c.Collapse(p)
	return p
}
