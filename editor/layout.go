package editor

import (
	"unicode/utf8"

	graphemeutil "github.com/iw2rmb/chipset/internal/grapheme"
	"github.com/iw2rmb/chipset/sequence"
)

type itemKind uint8

const (
	itemPrompt itemKind = iota
	itemText
	itemToken
	itemGap
	// itemCaret is the one-cell cursor placeholder at the end of a text
	// run.
	itemCaret
	itemPlaceholder
)

// item is one atomic layout unit: a grapheme cluster of a text segment, a
// whole token chip, or decoration.
type item struct {
	kind   itemKind
	id     sequence.ID
	offset int // rune offset of a cluster inside its segment
	runes  int
	text   string
	width  int

	tok      sequence.Token
	cursor   bool
	selected bool
}

type placedItem struct {
	item
	startCell int
}

type layoutKey struct {
	version uint64
	focused bool
	width   int
	prompt  string
	holder  string
}

type layoutCache struct {
	valid bool
	key   layoutKey

	rows      [][]placedItem
	cursorRow int
}

func (m *Model) layoutKey() layoutKey {
	return layoutKey{
		version: m.set.Container().Version(),
		focused: m.focused,
		width:   m.viewport.Width,
		prompt:  m.cfg.Prompt,
		holder:  m.cfg.Placeholder,
	}
}

func (m *Model) ensureLayout() *layoutCache {
	key := m.layoutKey()
	if m.layout.valid && m.layout.key == key {
		return m.layout
	}
	rows, cursorRow := wrapItems(m.buildItems(), key.width)
	*m.layout = layoutCache{valid: true, key: key, rows: rows, cursorRow: cursorRow}
	return m.layout
}

func (m *Model) buildItems() []item {
	c := m.set.Container()
	sel, hasSel := c.Selection()
	showCursor := hasSel && m.focused && sel.Collapsed()
	start, end, _, hasRange := c.Correct()
	hasRange = hasRange && m.focused && !sel.Collapsed()

	var items []item
	if m.cfg.Prompt != "" {
		items = append(items, item{kind: itemPrompt, text: m.cfg.Prompt, width: stringCellWidth(m.cfg.Prompt)})
	}
	cursorPlaced := false
	content := false
	for _, seg := range c.Segments() {
		switch seg.Kind {
		case sequence.KindText:
			off := 0
			for _, g := range graphemeutil.Split(seg.Text) {
				n := utf8.RuneCountInString(g)
				if sequence.IsSentinel(g) {
					off += n
					continue
				}
				content = true
				it := item{kind: itemText, id: seg.ID, offset: off, runes: n, text: g, width: graphemeCellWidth(g)}
				p := sequence.Point{ID: seg.ID, Offset: off}
				if hasRange && c.ComparePoints(p, start) >= 0 && c.ComparePoints(p, end) < 0 {
					it.selected = true
				}
				if showCursor && !cursorPlaced && sel.Focus.ID == seg.ID && off >= sel.Focus.Offset {
					it.cursor = true
					cursorPlaced = true
				}
				items = append(items, it)
				off += n
			}
			if showCursor && !cursorPlaced && sel.Focus.ID == seg.ID {
				items = append(items, item{kind: itemCaret, id: seg.ID, offset: off, text: " ", width: 1, cursor: true})
				cursorPlaced = true
			}
		case sequence.KindToken:
			content = true
			chip := " " + seg.Token.Text + " "
			items = append(items,
				item{kind: itemToken, id: seg.ID, text: chip, width: stringCellWidth(chip), tok: seg.Token},
				item{kind: itemGap, text: " ", width: 1},
			)
		}
	}
	if !content && m.cfg.Placeholder != "" {
		items = append(items, item{kind: itemPlaceholder, text: m.cfg.Placeholder, width: stringCellWidth(m.cfg.Placeholder)})
	}
	return items
}

// wrapItems breaks items into rows no wider than width. Items never split;
// an item wider than a row gets a row of its own and is truncated. A width
// of zero or less disables wrapping.
func wrapItems(items []item, width int) (rows [][]placedItem, cursorRow int) {
	cursorRow = -1
	var cur []placedItem
	cell := 0
	for _, it := range items {
		if width > 0 && cell > 0 && cell+it.width > width {
			rows = append(rows, cur)
			cur, cell = nil, 0
			if it.kind == itemGap {
				continue
			}
		}
		if width > 0 && it.width > width {
			it.text = truncateCells(it.text, width)
			it.width = width
		}
		if it.cursor {
			cursorRow = len(rows)
		}
		cur = append(cur, placedItem{item: it, startCell: cell})
		cell += it.width
	}
	rows = append(rows, cur)
	return rows, cursorRow
}

// itemAt returns the item under viewport-local (x, y). past is set when x
// lies beyond the last item of the row, which is then returned.
func (m *Model) itemAt(x, y int) (it placedItem, past, ok bool) {
	l := m.ensureLayout()
	row := m.viewport.YOffset + y
	if row < 0 || row >= len(l.rows) || len(l.rows[row]) == 0 {
		return placedItem{}, false, false
	}
	items := l.rows[row]
	if x < 0 {
		x = 0
	}
	for _, p := range items {
		if x >= p.startCell && x < p.startCell+p.width {
			return p, false, true
		}
	}
	return items[len(items)-1], true, true
}
