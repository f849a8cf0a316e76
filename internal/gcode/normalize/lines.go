package normalize

import (
	"strings"

	"github.com/samber/lo"
)

// LineEnding specifies a line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Apply converts every \n in text to the line ending. Text is expected to
// use \n only.
func (le LineEnding) Apply(text string) string {
	if le == LineEndingLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", le.Sequence())
}

// DetectLineEnding returns the most common line ending in text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lfCount, crlfCount, crCount int

	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
			crlfCount++
			i++
		case text[i] == '\r':
			crCount++
		case text[i] == '\n':
			lfCount++
		}
	}

	switch {
	case crlfCount > lfCount && crlfCount >= crCount:
		return LineEndingCRLF
	case crCount > lfCount && crCount > crlfCount:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// CollapseNewlines converts every \r\n and lone \r to \n.
func CollapseNewlines(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Lines splits text on any line ending convention. Lines are returned
// as-is, blank lines included, so indices match the document's rows.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(CollapseNewlines(text), "\n")
}

// SplitLines splits text on any line ending convention, trims every line
// and discards blank ones. This is the input shape every builder analyses.
func SplitLines(text string) []string {
	return lo.FilterMap(Lines(text), func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != ""
	})
}

// IsBlank reports whether line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
