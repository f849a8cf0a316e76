package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/strokemark/internal/gcode/address"
)

// KeyWithTag returns the comparison key of line including its display tag:
// the line-number prefix and one leading anchor are stripped, all
// whitespace is deleted and the result is uppercased.
//
// Only one prefix and one anchor are removed, so the key is stable under a
// second pass unless line stacks several of them: "12:34:G1" keys to
// "34:G1", which keys again to "G1".
func KeyWithTag(line string) string {
	return KeyAsIs(StripAnchor(StripLineNumber(line)))
}

// KeyAsIs deletes all whitespace from line and uppercases it. Addressing is
// left in place.
func KeyAsIs(line string) string {
	return toUpper(deleteSpace(line))
}

// KeyForMatch returns the payload key of line: addressing and every
// parenthesized block (comments and display tags) are removed before the
// whitespace deletion and uppercasing of KeyAsIs.
func KeyForMatch(line string) string {
	return KeyAsIs(StripComments(StripAddressing(line)))
}

// InsertAndAlignTag strips addressing from line and, when the line ends in
// a display tag, pads the text before it so the tag's '(' lands on column
// tagColumn (0-based). If the text already reaches the column, the tag is
// separated by a single space. Lines without a trailing tag are returned
// with only their addressing removed.
func InsertAndAlignTag(line string, tagColumn int) string {
	s := StripAddressing(line)
	_, idx, ok := address.TrailingTag(s)
	if !ok {
		return s
	}
	tag := s[idx:]
	pre := strings.TrimRight(s[:idx], " \t")

	width := utf8.RuneCountInString(pre)
	if width < tagColumn {
		return pre + strings.Repeat(" ", tagColumn-width) + tag
	}
	return pre + " " + tag
}

func deleteSpace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func toUpper(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return cases.Upper(language.Und).String(s)
		}
	}
	return strings.ToUpper(s)
}
