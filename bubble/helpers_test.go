package bubble

import (
	"strings"

	"github.com/iw2rmb/chipset/sequence"
)

// layout renders the container as a compact list: tokens as [text] (with a
// trailing * when selected) and text runs with the sentinel shown as ~.
func layout(s *Set) []string {
	var out []string
	for _, seg := range s.Container().Segments() {
		if seg.Kind == sequence.KindToken {
			v := "[" + seg.Text + "]"
			if seg.Token.Selected {
				v += "*"
			}
			out = append(out, v)
			continue
		}
		out = append(out, strings.ReplaceAll(seg.Text, sequence.Sentinel, "~"))
	}
	return out
}

func optsPtr(o Options) *Options { return &o }

func tokenByText(s *Set, text string) sequence.ID {
	c := s.Container()
	for _, id := range c.Tokens() {
		if c.TextOf(id) == text {
			return id
		}
	}
	return 0
}
