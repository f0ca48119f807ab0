// Package mathtext splits question text into plain and formula segments.
//
// A doubled marker ($$...$$) delimits a block formula and a single marker
// ($...$) an inline one. An opening marker with no closing partner is kept
// as plain text.
package mathtext

import "strings"

// Kind classifies a segment.
type Kind int

const (
	Plain Kind = iota
	Inline
	Block
)

// Marker is the formula delimiter character.
const Marker = "$"

// Segment is a run of text of a single kind. For Inline and Block the
// markers are stripped.
type Segment struct {
	Kind Kind
	Text string
}

// Split breaks s into segments in order. Adjacent plain runs are merged
// and empty plain runs dropped.
func Split(s string) []Segment {
	var out []Segment
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			out = append(out, Segment{Kind: Plain, Text: plain.String()})
			plain.Reset()
		}
	}

	for len(s) > 0 {
		i := strings.Index(s, Marker)
		if i < 0 {
			plain.WriteString(s)
			break
		}
		plain.WriteString(s[:i])
		s = s[i:]

		if strings.HasPrefix(s, Marker+Marker) {
			if end := strings.Index(s[2:], Marker+Marker); end >= 0 {
				flush()
				out = append(out, Segment{Kind: Block, Text: s[2 : 2+end]})
				s = s[2+end+2:]
				continue
			}
		}
		if end := strings.Index(s[1:], Marker); end >= 0 {
			flush()
			out = append(out, Segment{Kind: Inline, Text: s[1 : 1+end]})
			s = s[1+end+1:]
			continue
		}

		// Unmatched marker.
		plain.WriteString(s[:1])
		s = s[1:]
	}

	flush()
	return out
}

// HasMath returns true if s contains at least one formula segment.
func HasMath(s string) bool {
	for _, seg := range Split(s) {
		if seg.Kind != Plain {
			return true
		}
	}
	return false
}

// Strip returns s with formula markers removed, for contexts that cannot
// style segments (CLI listings).
func Strip(s string) string {
	var b strings.Builder
	for _, seg := range Split(s) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
