package bubble

import "strings"

// fragments splits cleaned run text into token texts according to o.
func fragments(text string, o Options) []string {
	parts := []string{text}
	if o.Separator != nil {
		parts = trimDrop(splitOn(text, o.Separator))
	}
	switch {
	case o.Ending != nil:
		parts = trimDrop(flatMap(parts, func(s string) []string { return splitAfter(s, o.Ending) }))
	case o.Beginning != nil:
		parts = trimDrop(flatMap(parts, func(s string) []string { return splitBefore(s, o.Beginning) }))
	}
	return parts
}

// splitOn drops every match and returns the text between them.
func splitOn(text string, m Matcher) []string {
	var out []string
	last := 0
	for _, sp := range spans(m, text, -1) {
		if sp.Start < last {
			continue
		}
		if sp.End == sp.Start && sp.Start == last {
			continue
		}
		out = append(out, text[last:sp.Start])
		last = sp.End
	}
	return append(out, text[last:])
}

// splitAfter cuts right after every match end. The tail after the last
// match is kept.
func splitAfter(text string, m Matcher) []string {
	var out []string
	last := 0
	for _, sp := range spans(m, text, maxMatches) {
		if sp.End < last {
			continue
		}
		out = append(out, text[last:sp.End])
		last = sp.End
	}
	return append(out, text[last:])
}

// splitBefore cuts right before every match start.
func splitBefore(text string, m Matcher) []string {
	var out []string
	index := 0
	for _, sp := range spans(m, text, maxMatches) {
		if sp.Start > index {
			out = append(out, text[index:sp.Start])
			index = sp.Start
		}
	}
	return append(out, text[index:])
}

func flatMap(in []string, fn func(string) []string) []string {
	var out []string
	for _, s := range in {
		out = append(out, fn(s)...)
	}
	return out
}

func trimDrop(in []string) []string {
	out := in[:0:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
