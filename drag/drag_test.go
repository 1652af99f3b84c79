package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/sequence"
)

type recorder struct {
	kinds []EventKind
	drops []Event
}

func (r *recorder) observe(ev Event) {
	r.kinds = append(r.kinds, ev.Kind)
	if ev.Kind == Drop {
		r.drops = append(r.drops, ev)
	}
}

func newSet(t *testing.T, content string, changes *int) *bubble.Set {
	t.Helper()
	s := bubble.New(bubble.Config{
		DragSupported: true,
		Notifier:      bubble.Notifier{OnChange: func() { *changes++ }},
	})
	s.SetContent(content)
	return s
}

func tokenID(s *bubble.Set, text string) sequence.ID {
	c := s.Container()
	for _, id := range c.Tokens() {
		if c.TextOf(id) == text {
			return id
		}
	}
	return 0
}

func TestDrop_MovesSelectedTokens(t *testing.T) {
	var srcChanges, dstChanges int
	src := newSet(t, "a,b,c", &srcChanges)
	dst := newSet(t, "x", &dstChanges)
	srcChanges, dstChanges = 0, 0

	rec := &recorder{}
	c := New(Config{Observer: rec.observe})

	require.True(t, src.SelectSingle(tokenID(src, "a")))
	require.True(t, c.Press(src, tokenID(src, "c")))
	assert.False(t, c.Active())

	require.True(t, c.Move(src))
	assert.True(t, c.Active())
	assert.Same(t, src, c.Source())
	require.True(t, c.Move(dst))
	assert.Same(t, dst, c.Over())

	require.True(t, c.Release(dst))
	assert.False(t, c.Active())
	assert.Nil(t, c.Source())

	assert.Equal(t, []string{"b"}, src.Values())
	assert.Equal(t, []string{"x", "a", "c"}, dst.Values())
	assert.Empty(t, dst.Selected())
	assert.Equal(t, 1, srcChanges)
	assert.Equal(t, 1, dstChanges)

	assert.Equal(t, []EventKind{DragStart, DragEnter, DragLeave, DragEnter, Drop, DragEnd}, rec.kinds)
	require.Len(t, rec.drops, 1)
	assert.Len(t, rec.drops[0].Keys, 2)
}

func TestRelease_OnSourceMovesNothing(t *testing.T) {
	var n int
	src := newSet(t, "a,b", &n)
	rec := &recorder{}
	c := New(Config{Observer: rec.observe})

	require.True(t, c.Press(src, tokenID(src, "a")))
	require.True(t, c.Move(src))
	assert.False(t, c.Release(src))
	assert.Equal(t, []string{"a", "b"}, src.Values())
	assert.Equal(t, []EventKind{DragStart, DragEnter, DragEnd}, rec.kinds)
}

func TestPress_RequiresDraggableToken(t *testing.T) {
	s := bubble.New(bubble.Config{})
	s.SetContent("a")
	c := New(Config{})

	assert.False(t, c.Press(s, tokenID(s, "a")))
	assert.False(t, c.Press(nil, 0))
	assert.False(t, c.Move(s))
	assert.False(t, c.Release(s))
}

func TestReentrantCallsRejected(t *testing.T) {
	var n int
	src := newSet(t, "a", &n)
	dst := newSet(t, "", &n)

	var c *Coordinator
	var nested []bool
	c = New(Config{Observer: func(ev Event) {
		if ev.Kind == DragStart {
			nested = append(nested, c.Move(dst), c.Release(dst), c.Press(src, tokenID(src, "a")))
			c.Cancel()
		}
	}})

	require.True(t, c.Press(src, tokenID(src, "a")))
	require.True(t, c.Move(src))
	assert.Equal(t, []bool{false, false, false}, nested)
	assert.True(t, c.Active())
}

func TestCancel(t *testing.T) {
	var n int
	src := newSet(t, "a", &n)
	rec := &recorder{}
	c := New(Config{Observer: rec.observe})

	require.True(t, c.Press(src, tokenID(src, "a")))
	require.True(t, c.Move(nil))
	c.Cancel()
	assert.False(t, c.Active())
	assert.Equal(t, []EventKind{DragStart, DragEnd}, rec.kinds)
	assert.Equal(t, []string{"a"}, src.Values())
}
