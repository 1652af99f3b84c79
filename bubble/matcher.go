package bubble

import (
	"fmt"
	"regexp"
	"strings"
)

// maxMatches bounds the number of ending/beginning matches consumed per
// fragment so that a non-advancing matcher cannot stall segmentation.
// Separator splitting is unbounded.
const maxMatches = 999

// Span is a byte range [Start, End) of a match.
type Span struct {
	Start int
	End   int
}

// Matcher finds pattern occurrences in text. Implementations should return
// at most limit spans in ascending order; a negative limit means all.
type Matcher interface {
	FindAll(text string, limit int) []Span
}

// Regexp adapts a compiled regular expression.
type Regexp struct {
	Re *regexp.Regexp
}

func (r Regexp) FindAll(text string, limit int) []Span {
	if r.Re == nil {
		return nil
	}
	idx := r.Re.FindAllStringIndex(text, limit)
	out := make([]Span, 0, len(idx))
	for _, m := range idx {
		out = append(out, Span{Start: m[0], End: m[1]})
	}
	return out
}

func (r Regexp) String() string {
	if r.Re == nil {
		return ""
	}
	return "/" + r.Re.String() + "/"
}

// Literal matches a fixed string.
type Literal string

func (l Literal) FindAll(text string, limit int) []Span {
	if l == "" {
		return nil
	}
	var out []Span
	for off := 0; limit < 0 || len(out) < limit; {
		i := strings.Index(text[off:], string(l))
		if i < 0 {
			break
		}
		start := off + i
		out = append(out, Span{Start: start, End: start + len(l)})
		off = start + len(l)
	}
	return out
}

// MustRegexp compiles expr into a Matcher and panics on error.
func MustRegexp(expr string) Matcher {
	return Regexp{Re: regexp.MustCompile(expr)}
}

// ParsePattern turns an option string into a Matcher. "/source/flags"
// compiles to a regular expression (flags i, m and s are honoured, g, u
// and y are accepted and ignored); anything else matches literally.
func ParsePattern(s string) (Matcher, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) >= 2 && s[0] == '/' {
		if i := strings.LastIndexByte(s, '/'); i > 0 {
			src, flags := s[1:i], s[i+1:]
			if mode, ok := regexpFlags(flags); ok {
				re, err := regexp.Compile(mode + src)
				if err != nil {
					return nil, fmt.Errorf("compile %q: %w", s, err)
				}
				return Regexp{Re: re}, nil
			}
		}
	}
	return Literal(s), nil
}

func regexpFlags(flags string) (string, bool) {
	var mode []byte
	for i := 0; i < len(flags); i++ {
		switch c := flags[i]; c {
		case 'i', 'm', 's':
			mode = append(mode, c)
		case 'g', 'u', 'y':
		default:
			return "", false
		}
	}
	if len(mode) == 0 {
		return "", true
	}
	return "(?" + string(mode) + ")", true
}

// spans returns at most limit well-formed, ordered spans of m in text. A
// negative limit returns them all.
func spans(m Matcher, text string, limit int) []Span {
	found := m.FindAll(text, limit)
	if limit >= 0 && len(found) > limit {
		found = found[:limit]
	}
	out := found[:0:0]
	last := 0
	for _, sp := range found {
		if sp.Start < last || sp.End < sp.Start || sp.End > len(text) {
			continue
		}
		out = append(out, sp)
		last = sp.Start
	}
	return out
}
