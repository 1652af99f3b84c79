package editor

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/chipset/drag"
	"github.com/iw2rmb/chipset/sequence"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func click(m Model, x, y int) Model {
	m, _ = m.Update(press(x, y))
	m, _ = m.Update(release(x, y))
	return m
}

func withClock(t *testing.T, times ...time.Time) {
	t.Helper()
	prev := now
	i := 0
	now = func() time.Time {
		tm := times[i]
		if i < len(times)-1 {
			i++
		}
		return tm
	}
	t.Cleanup(func() { now = prev })
}

func tokenText(m Model, id sequence.ID) string {
	tok, _ := m.Set().Container().Token(id)
	return tok.Text
}

func TestViewportState_ExposesRows(t *testing.T) {
	m := New(Config{Content: "alpha, beta, gamma"})
	m = m.SetSize(16, 1)

	st := m.ViewportState()
	if st.TopRow != 0 || st.VisibleRows != 1 || st.Rows != 2 {
		t.Fatalf("unexpected viewport state: %+v", st)
	}
}

func TestHitTest_TokensTextAndEmptySpace(t *testing.T) {
	m := New(Config{Content: "alice, bob"})
	m = m.SetSize(40, 2)

	h, ok := m.HitTest(1, 0)
	if !ok || !h.Token || tokenText(m, h.ID) != "alice" {
		t.Fatalf("hit at (1,0): got %+v ok=%v, want token alice", h, ok)
	}
	h, ok = m.HitTest(9, 0)
	if !ok || !h.Token || tokenText(m, h.ID) != "bob" {
		t.Fatalf("hit at (9,0): got %+v ok=%v, want token bob", h, ok)
	}
	h, ok = m.HitTest(7, 0)
	if !ok || h.ID != 0 || h.Past {
		t.Fatalf("hit on gap: got %+v ok=%v", h, ok)
	}
	h, ok = m.HitTest(30, 0)
	if !ok || !h.Past || h.Token {
		t.Fatalf("hit past the end: got %+v ok=%v", h, ok)
	}
	if _, ok := m.HitTest(0, 1); ok {
		t.Fatalf("hit below the last row must fail")
	}
}

func TestMouse_ClickTogglesAndDoubleClickEdits(t *testing.T) {
	t0 := time.Unix(1000, 0)
	withClock(t, t0, t0.Add(50*time.Millisecond))

	m := New(Config{Content: "alice, bob"})
	m = m.SetSize(40, 1)

	m = click(m, 1, 0)
	sel := m.Set().Selected()
	if len(sel) != 1 || tokenText(m, sel[0]) != "alice" {
		t.Fatalf("click must select alice, got %v", sel)
	}

	m = click(m, 1, 0)
	if got := strings.Join(m.Value(), "|"); got != "bob" {
		t.Fatalf("double click must edit alice, tokens: %q", got)
	}
	if got := m.Set().InputValue(); got != "alice" {
		t.Fatalf("input after double click: got %q, want %q", got, "alice")
	}
}

func TestMouse_CtrlClickAddsToSelection(t *testing.T) {
	t0 := time.Unix(1000, 0)
	withClock(t, t0, t0.Add(time.Second))

	m := New(Config{Content: "alice, bob"})
	m = m.SetSize(40, 1)

	m = click(m, 1, 0)
	ctrl := press(9, 0)
	ctrl.Ctrl = true
	m, _ = m.Update(ctrl)
	rel := release(9, 0)
	m, _ = m.Update(rel)

	if got := len(m.Set().Selected()); got != 2 {
		t.Fatalf("selected after ctrl+click: got %d, want 2", got)
	}
}

func TestMouse_ReleaseOnOtherTokenIsNotAClick(t *testing.T) {
	m := New(Config{Content: "alice, bob"})
	m = m.SetSize(40, 1)

	m, _ = m.Update(press(1, 0))
	m, _ = m.Update(release(9, 0))
	if m.Set().HasSelected() {
		t.Fatalf("press and release on different tokens must not select")
	}
}

func TestMouse_TextClickAndDragSelect(t *testing.T) {
	m := New(Config{})
	m = m.SetSize(40, 1)
	m = typeText(m, "xy")

	m, _ = m.Update(press(0, 0))
	sel, ok := m.Set().Container().Selection()
	if !ok || !sel.Collapsed() || sel.Focus.Offset != 1 {
		t.Fatalf("click before x: got %+v ok=%v", sel, ok)
	}

	m, _ = m.Update(motion(2, 0))
	m, _ = m.Update(release(2, 0))
	start, end, _, ok := m.Set().Container().Correct()
	if !ok || start.Offset != 1 || end.Offset != 3 {
		t.Fatalf("drag selection: got %+v..%+v ok=%v", start, end, ok)
	}
}

func TestMouse_DragMovesTokensBetweenEditors(t *testing.T) {
	var kinds []drag.EventKind
	d := drag.New(drag.Config{Observer: func(ev drag.Event) { kinds = append(kinds, ev.Kind) }})

	a := New(Config{Content: "alice, bob", Drag: d})
	b := New(Config{Drag: d})
	a = a.SetSize(40, 1)
	b = b.SetSize(40, 1)
	b, _ = b.Blur()

	a, _ = a.Update(press(1, 0))
	a, _ = a.Update(motion(2, 0))
	b, _ = b.Update(motion(2, 5))
	if !d.Active() || d.Over() != a.Set() {
		t.Fatalf("drag must start over the source")
	}

	// Pointer leaves a (outside its bounds) and enters b.
	a, _ = a.Update(motion(2, 5))
	b, _ = b.Update(motion(2, 0))
	if d.Over() != b.Set() {
		t.Fatalf("drag must hover over the target")
	}
	if !(&b).dropTarget() {
		t.Fatalf("target must render as drop target")
	}

	a, _ = a.Update(release(2, 5))
	b, _ = b.Update(release(2, 0))
	d.Cancel()

	if got := strings.Join(a.Value(), "|"); got != "bob" {
		t.Fatalf("source tokens: got %q, want %q", got, "bob")
	}
	if got := strings.Join(b.Value(), "|"); got != "alice" {
		t.Fatalf("target tokens: got %q, want %q", got, "alice")
	}
	if !strings.Contains(b.View(), "alice") {
		t.Fatalf("target view must show the dropped token: %q", b.View())
	}
	want := []drag.EventKind{drag.DragStart, drag.DragEnter, drag.DragLeave, drag.DragEnter, drag.Drop, drag.DragEnd}
	if len(kinds) != len(want) {
		t.Fatalf("events: got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("events: got %v, want %v", kinds, want)
		}
	}
}

func TestMouse_PressWithoutMotionIsAClick(t *testing.T) {
	d := drag.New(drag.Config{})
	m := New(Config{Content: "alice", Drag: d})
	m = m.SetSize(40, 1)

	m = click(m, 1, 0)
	if d.Active() || d.Pressed() != nil {
		t.Fatalf("coordinator must be idle after a click")
	}
	if got := len(m.Set().Selected()); got != 1 {
		t.Fatalf("click with drag enabled must select, got %d", got)
	}
}

func TestScrollPolicy_Wheel(t *testing.T) {
	wheel := tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}

	m := New(Config{Content: "alpha, beta, gamma"})
	m = m.SetSize(16, 1)
	m, _ = m.Update(wheel)
	if got := m.ViewportState().TopRow; got != 1 {
		t.Fatalf("manual scroll: top row=%d, want 1", got)
	}

	m = New(Config{Content: "alpha, beta, gamma", ScrollPolicy: ScrollFollowCursorOnly})
	m = m.SetSize(16, 1)
	m, _ = m.Update(wheel)
	if got := m.ViewportState().TopRow; got != 0 {
		t.Fatalf("follow-only: top row=%d, want 0", got)
	}
}
