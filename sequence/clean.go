package sequence

import (
	"strings"
	"unicode"
)

// Clean strips non-printable characters (including the sentinel) and then
// trims surrounding whitespace. Clean is idempotent.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	stripped := strings.Map(func(r rune) rune {
		if unicode.Is(nonPrintable, r) {
			return -1
		}
		return r
	}, raw)
	return strings.TrimSpace(stripped)
}

// IsSentinel reports whether s consists of the sentinel only.
func IsSentinel(s string) bool { return s == Sentinel }

// IsBlank reports whether s has no printable content.
func IsBlank(s string) bool { return Clean(s) == "" }
