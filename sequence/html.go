package sequence

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blankLine = regexp.MustCompile(`(?m)^[\x{0020}\x{00a0}]+$`)

// HTMLToText flattens pasted or assigned markup into a single line of text:
// tags are dropped, entities decoded, whitespace-only lines removed and line
// breaks folded into spaces.
func HTMLToText(value string) string {
	if value == "" {
		return ""
	}
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(value))
	for {
		switch z.Next() {
		case html.ErrorToken:
			out := blankLine.ReplaceAllString(sb.String(), "")
			out = strings.ReplaceAll(out, "\r\n", "\n")
			out = strings.ReplaceAll(out, "\n", " ")
			return strings.TrimSpace(out)
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			raw := append([]byte(nil), z.Raw()...)
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case 0:
				// Not an HTML element: keep "Name <user@host>" intact.
				sb.Write(raw)
			case atom.Br, atom.P, atom.Div, atom.Li, atom.Tr:
				sb.WriteByte('\n')
			}
		}
	}
}
