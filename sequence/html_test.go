package sequence

import "testing"

func TestHTMLToText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a<br>b", "a b"},
		{"<b>foo</b>\n   \nbar", "foo  bar"},
		{"&amp;x", "&x"},
		{"  one\ntwo  ", "one two"},
		{"Bob <bob@x.com>", "Bob <bob@x.com>"},
	}
	for _, tc := range cases {
		if got := HTMLToText(tc.in); got != tc.want {
			t.Fatalf("HTMLToText(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeAttr_RoundTrip(t *testing.T) {
	in := "<a href=\"x\">'`&amp;"
	esc := EscapeAttr(in)
	if esc != "&lt;a href=&quot;x&quot;&gt;&#39;&#96;&amp;amp;" {
		t.Fatalf("escape=%q", esc)
	}
	if got := UnescapeAttr(esc); got != in {
		t.Fatalf("unescape=%q, want %q", got, in)
	}
}
