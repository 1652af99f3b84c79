package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/chipset/sequence"
)

func renderRows(m Model) []string {
	rows := strings.Split((&m).renderContent(), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " ")
	}
	return rows
}

func TestRender_ChipsWrapAtWidth(t *testing.T) {
	m := New(Config{Content: "alpha, beta, gamma"})
	m = m.SetSize(16, 3)

	got := renderRows(m)
	want := []string{" alpha   beta", " gamma"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected rows:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_NoWrapWithoutWidth(t *testing.T) {
	m := New(Config{Content: "alpha, beta, gamma"})
	got := renderRows(m)
	if len(got) != 1 {
		t.Fatalf("expected a single row without width, got %q", got)
	}
}

func TestRender_PromptAndPlaceholder(t *testing.T) {
	m := New(Config{Prompt: "To: ", Placeholder: "add people"})
	m, _ = m.Blur()

	got := renderRows(m)
	if len(got) != 1 || got[0] != "To: add people" {
		t.Fatalf("unexpected rows: %q", got)
	}

	m = m.SetContent("eve")
	got = renderRows(m)
	if len(got) != 1 || got[0] != "To:  eve" {
		t.Fatalf("unexpected rows with content: %q", got)
	}
}

func TestRender_OversizedChipIsTruncated(t *testing.T) {
	m := New(Config{Content: "a, averyveryverylongaddress"})
	m = m.SetSize(10, 3)

	got := renderRows(m)
	if len(got) < 2 {
		t.Fatalf("expected the long chip on its own row, got %q", got)
	}
	if w := lipgloss.Width(got[1]); w > 10 {
		t.Fatalf("row width %d exceeds 10: %q", w, got[1])
	}
	if !strings.HasSuffix(got[1], "\u2026") {
		t.Fatalf("truncated chip must end with an ellipsis: %q", got[1])
	}
}

func TestRender_CursorUsesCursorStyle(t *testing.T) {
	st := Style{Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)}
	m := New(Config{Style: st})
	m = typeText(m, "ab")

	// The caret placeholder after the text renders padded.
	got := (&m).renderContent()
	if want := "ab   "; got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	got = (&m).renderContent()
	if want := "a b "; got != want {
		t.Fatalf("unexpected cursor rendering after left:\n got: %q\nwant: %q", got, want)
	}
}

func TestTokenStyle_LayersClassesAndSelection(t *testing.T) {
	st := Style{
		Bubble:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Underline(true),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("3")),
		Classes:  map[string]lipgloss.Style{"vip": lipgloss.NewStyle().Foreground(lipgloss.Color("2"))},
	}

	got := st.tokenStyle(sequence.Token{Classes: []string{"bubble", "vip"}, Selected: true})
	if got.GetForeground() != lipgloss.Color("2") {
		t.Fatalf("foreground: got %v, want class colour", got.GetForeground())
	}
	if got.GetBackground() != lipgloss.Color("3") {
		t.Fatalf("background: got %v, want selected colour", got.GetBackground())
	}
	if !got.GetUnderline() {
		t.Fatalf("bubble attributes must be inherited")
	}

	plain := st.tokenStyle(sequence.Token{})
	if plain.GetForeground() != lipgloss.Color("1") {
		t.Fatalf("plain foreground: got %v, want bubble colour", plain.GetForeground())
	}
}
