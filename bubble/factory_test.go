package bubble

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/chipset/sequence"
)

func TestCreate_CleansEscapesAndDecorates(t *testing.T) {
	formed := 0
	s := New(Config{
		Options: optsPtr(Options{
			ClassBubble: " chip  mail ",
			Draggable:   true,
			Formation: func(tok *sequence.Token) {
				formed++
				tok.Classes = append(tok.Classes, "mail")
			},
		}),
		DragSupported: true,
	})

	tok, ok := s.Create("  bob\u200b ", map[string]string{"email": "<b@x>", "empty": ""})
	if !ok {
		t.Fatalf("create failed")
	}
	if tok.Text != "bob" || tok.Key == "" || !tok.Draggable || formed != 1 {
		t.Fatalf("token=%+v formed=%d", tok, formed)
	}
	if diff := cmp.Diff(map[string]string{"email": "&lt;b@x&gt;"}, tok.Attrs); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"mail", "chip"}, tok.Classes); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}

	if _, ok := s.Create(" \u200b ", nil); ok {
		t.Fatalf("blank text created a token")
	}
}

func TestCreate_DraggableNeedsSupport(t *testing.T) {
	s := New(Config{})
	tok, _ := s.Create("x", nil)
	if tok.Draggable {
		t.Fatalf("token draggable without drag support")
	}
}

func TestEdit_ReadonlyRefused(t *testing.T) {
	s := New(Config{Options: optsPtr(Options{
		Formation: func(tok *sequence.Token) { tok.Readonly = true },
	})})
	s.AddBubble("locked", nil)
	before := layout(s)

	if s.EditBubble(tokenByText(s, "locked")) {
		t.Fatalf("readonly token edited")
	}
	if diff := cmp.Diff(before, layout(s)); diff != "" {
		t.Fatalf("content changed (-before +after):\n%s", diff)
	}
}

func TestEdit_UsesDeformation(t *testing.T) {
	s := New(Config{Options: optsPtr(Options{
		Deformation: func(tok sequence.Token) (Deformation, bool) {
			return Deformation{Text: "Bob <" + tok.Text + ">", Start: 5, End: 14}, true
		},
	})})
	s.AddBubble("bob@x.com", nil)

	if !s.Edit(tokenByText(s, "bob@x.com")) {
		t.Fatalf("edit failed")
	}
	c := s.Container()
	sel, ok := c.Selection()
	if !ok {
		t.Fatalf("no selection after edit")
	}
	if got := c.TextOf(sel.Anchor.ID); got != "Bob <bob@x.com>" {
		t.Fatalf("text=%q", got)
	}
	if sel.Anchor.Offset != 5 || sel.Focus.Offset != 14 {
		t.Fatalf("selection=%+v, want [5,14)", sel)
	}
	if !sequence.IsSentinel(c.TextOf(c.Prev(sel.Anchor.ID))) {
		t.Fatalf("edited text not preceded by a sentinel")
	}
}

func TestEdit_StaleToken(t *testing.T) {
	s := New(Config{})
	s.AddBubble("x", nil)
	id := tokenByText(s, "x")
	s.RemoveBubble(id)
	if s.EditBubble(id) || s.RemoveBubble(id) {
		t.Fatalf("stale token accepted")
	}
}

func TestForeignTokenRejected(t *testing.T) {
	a := New(Config{})
	a.SetContent("alice, bob")
	b := New(Config{})
	b.SetContent("carol, dave")

	foreign := a.Container().Tokens()[0]
	if b.RemoveBubble(foreign) || b.EditBubble(foreign) {
		t.Fatalf("foreign token accepted")
	}
	if b.SelectSingle(foreign) || b.AddToggle(foreign) || b.IsSelected(foreign) {
		t.Fatalf("foreign token selected")
	}
	b.SelectRange(foreign)
	if b.HasSelected() {
		t.Fatalf("range from foreign token selected %v", b.Selected())
	}
	if diff := cmp.Diff([]string{"carol", "dave"}, b.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alice", "bob"}, a.Values()); diff != "" {
		t.Fatalf("source values mismatch (-want +got):\n%s", diff)
	}
}

func TestAddBubble_ReplacesRunUnderCursor(t *testing.T) {
	changes := 0
	s := New(Config{Notifier: Notifier{OnChange: func() { changes++ }}})
	s.SetContent("a")
	s.Type("typed")

	if !s.AddBubble("picked", map[string]string{"id": "7"}) {
		t.Fatalf("add failed")
	}
	if diff := cmp.Diff([]string{"[a]", "[picked]", "~"}, layout(s)); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
	if changes != 2 {
		t.Fatalf("changes=%d, want 2", changes)
	}
	if s.AddBubble("  ", nil) {
		t.Fatalf("blank bubble added")
	}
}

func TestSetContent_NormalisesMarkup(t *testing.T) {
	s := New(Config{})
	s.SetContent("<b>one</b><br>two; three")
	if diff := cmp.Diff([]string{"one two", "three"}, s.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}
