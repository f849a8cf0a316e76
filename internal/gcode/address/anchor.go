package address

import (
	"strconv"
	"strings"
)

// Anchor is a parsed identity anchor.
type Anchor struct {
	// UID identifies the owning region. It never contains ',' or '#'.
	UID string

	// N is the 1-based ordinal of the line within its region.
	N int
}

// String formats the anchor as #uid,n#.
func (a Anchor) String() string {
	return "#" + a.UID + "," + strconv.Itoa(a.N) + "#"
}

// IsValid reports whether the anchor can be formatted and parsed back.
func (a Anchor) IsValid() bool {
	return a.UID != "" && a.N > 0 && !strings.ContainsAny(a.UID, ",#")
}

// SplitAnchorBlock splits a leading #...# block off line.
//
// Leading whitespace is ignored. The block must be non-empty, contain a
// comma and no whitespace; this keeps G-code parameter words such as
// "#100=5" from being mistaken for an anchor. The returned block includes
// both '#' delimiters. rest is the text following the block, unmodified.
func SplitAnchorBlock(line string) (block, rest string, ok bool) {
	s := strings.TrimLeft(line, " \t")
	if len(s) < 3 || s[0] != '#' {
		return "", line, false
	}
	end := strings.IndexByte(s[1:], '#')
	if end <= 0 {
		return "", line, false
	}
	inner := s[1 : end+1]
	if !strings.Contains(inner, ",") || strings.ContainsAny(inner, " \t\r\n") {
		return "", line, false
	}
	return s[:end+2], s[end+2:], true
}

// ParseAnchorBlock parses a #uid,n# block as returned by SplitAnchorBlock.
func ParseAnchorBlock(block string) (Anchor, bool) {
	if len(block) < 2 || block[0] != '#' || block[len(block)-1] != '#' {
		return Anchor{}, false
	}
	inner := block[1 : len(block)-1]
	comma := strings.IndexByte(inner, ',')
	if comma <= 0 || strings.IndexByte(inner[comma+1:], ',') >= 0 {
		return Anchor{}, false
	}
	n, err := strconv.Atoi(inner[comma+1:])
	if err != nil || n <= 0 {
		return Anchor{}, false
	}
	return Anchor{UID: inner[:comma], N: n}, true
}

// ParseAnchor parses the leading anchor of line.
// rest is the remainder after the anchor. When line carries no
// well-formed anchor ok is false and rest is line unchanged.
func ParseAnchor(line string) (a Anchor, rest string, ok bool) {
	block, after, found := SplitAnchorBlock(line)
	if !found {
		return Anchor{}, line, false
	}
	a, ok = ParseAnchorBlock(block)
	if !ok {
		return Anchor{}, line, false
	}
	return a, after, true
}
