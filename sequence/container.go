package sequence

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

// owners numbers containers so their IDs never collide. Zero is skipped.
var owners atomic.Uint32

func nextOwner() uint32 {
	for {
		o := owners.Add(1) & ownerMask
		if o != 0 {
			return o
		}
	}
}

type node struct {
	gen  uint32
	live bool

	kind Kind
	text string
	tok  Token

	prev ID
	next ID
}

// Container is the ordered segment sequence of one bubble input together
// with its cursor/selection state. The zero value is not usable; use New.
type Container struct {
	owner uint32
	nodes []node
	free  []int

	head ID
	tail ID
	n    int

	sel    Selection
	hasSel bool

	version uint64
}

func New() *Container {
	return &Container{owner: nextOwner()}
}

func (c *Container) Version() uint64 { return c.version }

// Len returns the number of live segments.
func (c *Container) Len() int { return c.n }

func (c *Container) get(id ID) *node {
	if id == 0 || id.owner() != c.owner {
		return nil
	}
	s := id.slot()
	if s < 0 || s >= len(c.nodes) {
		return nil
	}
	nd := &c.nodes[s]
	if !nd.live || nd.gen != id.gen() {
		return nil
	}
	return nd
}

// Contains reports whether id refers to a live segment of c.
func (c *Container) Contains(id ID) bool { return c.get(id) != nil }

func (c *Container) Kind(id ID) (Kind, bool) {
	nd := c.get(id)
	if nd == nil {
		return 0, false
	}
	return nd.kind, true
}

func (c *Container) IsText(id ID) bool {
	nd := c.get(id)
	return nd != nil && nd.kind == KindText
}

func (c *Container) IsToken(id ID) bool {
	nd := c.get(id)
	return nd != nil && nd.kind == KindToken
}

// TextOf returns the content of a text run or the display text of a token.
func (c *Container) TextOf(id ID) string {
	nd := c.get(id)
	if nd == nil {
		return ""
	}
	if nd.kind == KindToken {
		return nd.tok.Text
	}
	return nd.text
}

// SetText replaces the content of a text run. Points inside the run are
// clamped to the new length.
func (c *Container) SetText(id ID, s string) bool {
	nd := c.get(id)
	if nd == nil || nd.kind != KindText {
		return false
	}
	if nd.text == s {
		return true
	}
	nd.text = s
	if c.hasSel {
		c.sel.Anchor = c.clampPoint(c.sel.Anchor)
		c.sel.Focus = c.clampPoint(c.sel.Focus)
	}
	c.version++
	return true
}

// Token returns a copy of the token payload stored at id.
func (c *Container) Token(id ID) (Token, bool) {
	nd := c.get(id)
	if nd == nil || nd.kind != KindToken {
		return Token{}, false
	}
	return nd.tok.Clone(), true
}

// UpdateToken mutates the token stored at id in place.
func (c *Container) UpdateToken(id ID, fn func(*Token)) bool {
	nd := c.get(id)
	if nd == nil || nd.kind != KindToken {
		return false
	}
	fn(&nd.tok)
	c.version++
	return true
}

func (c *Container) First() ID { return c.head }
func (c *Container) Last() ID  { return c.tail }

func (c *Container) Next(id ID) ID {
	if nd := c.get(id); nd != nil {
		return nd.next
	}
	return 0
}

func (c *Container) Prev(id ID) ID {
	if nd := c.get(id); nd != nil {
		return nd.prev
	}
	return 0
}

// Segments returns a snapshot of the sequence in document order.
func (c *Container) Segments() []Segment {
	out := make([]Segment, 0, c.n)
	for id := c.head; id != 0; {
		nd := c.get(id)
		seg := Segment{ID: id, Kind: nd.kind, Text: nd.text}
		if nd.kind == KindToken {
			seg.Text = nd.tok.Text
			seg.Token = nd.tok.Clone()
		}
		out = append(out, seg)
		id = nd.next
	}
	return out
}

// Text returns the concatenated content of every segment.
func (c *Container) Text() string {
	var sb strings.Builder
	for id := c.head; id != 0; id = c.Next(id) {
		sb.WriteString(c.TextOf(id))
	}
	return sb.String()
}

// Tokens returns the IDs of all token segments in document order.
func (c *Container) Tokens() []ID {
	var out []ID
	for id := c.head; id != 0; id = c.Next(id) {
		if c.IsToken(id) {
			out = append(out, id)
		}
	}
	return out
}

func (c *Container) alloc(p Piece) ID {
	nd := node{live: true, kind: p.Kind}
	switch p.Kind {
	case KindToken:
		nd.tok = p.Token.Clone()
		if nd.tok.Text == "" {
			nd.tok.Text = p.Text
		}
	default:
		nd.kind = KindText
		nd.text = p.Text
	}
	if k := len(c.free); k > 0 {
		s := c.free[k-1]
		c.free = c.free[:k-1]
		nd.gen = c.nodes[s].gen + 1
		c.nodes[s] = nd
		return makeID(c.owner, s, nd.gen)
	}
	c.nodes = append(c.nodes, nd)
	return makeID(c.owner, len(c.nodes)-1, 0)
}

// Append adds p at the end of the sequence.
func (c *Container) Append(p Piece) ID {
	id := c.alloc(p)
	nd := c.get(id)
	nd.prev = c.tail
	if t := c.get(c.tail); t != nil {
		t.next = id
	} else {
		c.head = id
	}
	c.tail = id
	c.n++
	c.version++
	return id
}

// InsertBefore inserts p right before ref. A zero ref appends.
func (c *Container) InsertBefore(ref ID, p Piece) ID {
	if ref == 0 {
		return c.Append(p)
	}
	r := c.get(ref)
	if r == nil {
		return 0
	}
	id := c.alloc(p)
	nd := c.get(id)
	r = c.get(ref)
	nd.prev = r.prev
	nd.next = ref
	if pr := c.get(r.prev); pr != nil {
		pr.next = id
	} else {
		c.head = id
	}
	r.prev = id
	c.n++
	c.version++
	return id
}

// InsertAfter inserts p right after ref. A zero ref prepends.
func (c *Container) InsertAfter(ref ID, p Piece) ID {
	if ref == 0 {
		return c.InsertBefore(c.head, p)
	}
	if !c.Contains(ref) {
		return 0
	}
	return c.InsertBefore(c.Next(ref), p)
}

// Remove unlinks the segment. IDs of removed segments never resolve again.
func (c *Container) Remove(id ID) bool {
	nd := c.get(id)
	if nd == nil {
		return false
	}
	if pr := c.get(nd.prev); pr != nil {
		pr.next = nd.next
	} else {
		c.head = nd.next
	}
	if nx := c.get(nd.next); nx != nil {
		nx.prev = nd.prev
	} else {
		c.tail = nd.prev
	}
	if c.hasSel && (c.sel.Anchor.ID == id || c.sel.Focus.ID == id) {
		c.hasSel = false
		c.sel = Selection{}
	}
	s := id.slot()
	c.nodes[s] = node{gen: nd.gen}
	if nd.gen < maxGen {
		c.free = append(c.free, s)
	}
	c.n--
	c.version++
	return true
}

// Detach removes a token segment and returns its payload so it can be
// re-inserted into another container.
func (c *Container) Detach(id ID) (Token, bool) {
	tok, ok := c.Token(id)
	if !ok {
		return Token{}, false
	}
	c.Remove(id)
	return tok, true
}

// Clear removes every segment and drops the selection.
func (c *Container) Clear() {
	for c.head != 0 {
		c.Remove(c.head)
	}
	c.hasSel = false
	c.sel = Selection{}
	c.version++
}

// Compare orders two live segments: -1 when a precedes b, 1 when it
// follows, 0 when they are equal or either is not live.
func (c *Container) Compare(a, b ID) int {
	if a == b || !c.Contains(a) || !c.Contains(b) {
		return 0
	}
	for id := c.Next(a); id != 0; id = c.Next(id) {
		if id == b {
			return -1
		}
	}
	return 1
}

// ComparePoints orders two points in document order.
func (c *Container) ComparePoints(a, b Point) int {
	if a.ID == b.ID {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	}
	return c.Compare(a.ID, b.ID)
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
