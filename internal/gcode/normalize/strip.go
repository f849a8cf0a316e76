package normalize

import (
	"strings"

	"github.com/dshills/strokemark/internal/gcode/address"
)

// StripLineNumber removes a leading editor line-number prefix: optional
// whitespace, one or more digits, optional spaces, then a colon.
// Lines without such a prefix are returned unchanged.
func StripLineNumber(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	start := i
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == start {
		return line
	}
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) || line[i] != ':' {
		return line
	}
	return line[i+1:]
}

// StripAnchor removes one leading #...# anchor block, if present.
func StripAnchor(line string) string {
	if _, rest, ok := address.SplitAnchorBlock(line); ok {
		return rest
	}
	return line
}

// StripAddressing removes the line-number prefix and the leading anchor in
// either order, then trims leading whitespace if anything was removed.
func StripAddressing(line string) string {
	s := StripLineNumber(line)
	s = StripAnchor(s)
	s = StripLineNumber(s)
	if len(s) != len(line) {
		s = strings.TrimLeft(s, " \t")
	}
	return s
}

// RemoveComments deletes every parenthesized block from line and returns
// the result with the number of blocks removed. An unterminated block runs
// to the end of the line.
func RemoveComments(line string) (string, int) {
	if strings.IndexByte(line, '(') < 0 {
		return line, 0
	}
	var sb strings.Builder
	sb.Grow(len(line))
	count := 0
	inside := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inside:
			if c == ')' {
				inside = false
			}
		case c == '(':
			inside = true
			count++
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), count
}

// StripComments deletes every parenthesized block from line.
func StripComments(line string) string {
	s, _ := RemoveComments(line)
	return s
}

// StripTrailingComment removes a ';' comment and any parenthesized blocks
// at the end of line, then trims trailing whitespace. A display tag at the
// end of the line is a parenthesized block and is removed too.
func StripTrailingComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimRight(line, " \t")
	for strings.HasSuffix(line, ")") {
		open := strings.LastIndexByte(line, '(')
		if open < 0 {
			break
		}
		line = strings.TrimRight(line[:open], " \t")
	}
	return line
}
