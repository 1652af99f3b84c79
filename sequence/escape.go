package sequence

import "strings"

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"`", "&#96;",
	)
	attrUnescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&#96;", "`",
		"&amp;", "&",
	)
)

// EscapeAttr escapes a token attribute value for storage.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }

// UnescapeAttr reverses EscapeAttr.
func UnescapeAttr(s string) string { return attrUnescaper.Replace(s) }
