package address

import (
	"fmt"
	"regexp"
)

// TagLen is the length of a formatted display tag, e.g. "(M:A0000)".
const TagLen = 9

// Kind letters used in display tags.
const (
	KindMill  byte = 'M'
	KindTurn  byte = 'T'
	KindDrill byte = 'D'
	KindUser  byte = 'U'
)

// Tag is a parsed display tag.
type Tag struct {
	Kind byte // region kind letter
	Set  byte // set letter of the region within its kind
	Seq  int  // zero-based line sequence within the region
}

// String formats the tag as (K:Lnnnn) with uppercase letters.
// Sequence numbers wrap at 10000 to keep the four-digit width.
func (t Tag) String() string {
	return fmt.Sprintf("(%c:%c%04d)", upper(t.Kind), upper(t.Set), t.Seq%10000)
}

// tagPattern matches the generic tag shape anywhere in a text.
var tagPattern = regexp.MustCompile(`\(([A-Za-z]):([A-Za-z])([0-9]{4})\)`)

// TrailingTag reports whether line ends with a well-formed display tag.
// The closing parenthesis must be the very last character. idx is the
// byte offset of the tag's opening parenthesis.
func TrailingTag(line string) (t Tag, idx int, ok bool) {
	if len(line) < TagLen {
		return Tag{}, -1, false
	}
	idx = len(line) - TagLen
	t, ok = ParseTag(line[idx:])
	if !ok {
		return Tag{}, -1, false
	}
	return t, idx, true
}

// ParseTag parses s, which must be exactly one display tag.
func ParseTag(s string) (Tag, bool) {
	if len(s) != TagLen || s[0] != '(' || s[2] != ':' || s[8] != ')' {
		return Tag{}, false
	}
	if !isLetter(s[1]) || !isLetter(s[3]) {
		return Tag{}, false
	}
	seq := 0
	for i := 4; i < 8; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Tag{}, false
		}
		seq = seq*10 + int(c-'0')
	}
	return Tag{Kind: upper(s[1]), Set: upper(s[3]), Seq: seq}, true
}

// StripTrailingTag removes a trailing display tag from line, if present.
func StripTrailingTag(line string) string {
	if _, idx, ok := TrailingTag(line); ok {
		return line[:idx]
	}
	return line
}

// FindTags returns every display tag found anywhere in text, in order.
func FindTags(text string) []Tag {
	matches := tagPattern.FindAllString(text, -1)
	tags := make([]Tag, 0, len(matches))
	for _, m := range matches {
		if t, ok := ParseTag(m); ok {
			tags = append(tags, t)
		}
	}
	return tags
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
