// Package word detects the few G-code words the region builders care
// about. It is not a G-code parser: axis detection is a permissive scan
// that only needs to know whether a letter is followed by something that
// can start a number.
package word

import (
	"strconv"
	"strings"
)

// Motion is a modal motion mode.
type Motion int

const (
	MotionNone   Motion = iota // no motion word seen yet
	MotionRapid                // G0
	MotionFeed                 // G1
	MotionArcCW                // G2
	MotionArcCCW               // G3
)

// String returns the G word for the mode.
func (m Motion) String() string {
	switch m {
	case MotionRapid:
		return "G0"
	case MotionFeed:
		return "G1"
	case MotionArcCW:
		return "G2"
	case MotionArcCCW:
		return "G3"
	default:
		return "none"
	}
}

// IsCut reports whether the mode removes material (feed or arc).
func (m Motion) IsCut() bool {
	return m == MotionFeed || m == MotionArcCW || m == MotionArcCCW
}

// HasAxis reports whether letter (either case) appears in line followed by
// optional spaces or tabs and a character that can start a numeral: a
// digit, '+', '-' or '.'. The numeral itself is not validated.
func HasAxis(line string, letter byte) bool {
	lo, up := lower(letter), upper(letter)
	for i := 0; i < len(line); i++ {
		if line[i] != lo && line[i] != up {
			continue
		}
		j := skipBlanks(line, i+1)
		if j < len(line) && isNumeralStart(line[j]) {
			return true
		}
	}
	return false
}

// HasAnyAxis reports whether line carries any of the given axis letters.
func HasAnyAxis(line string, letters ...byte) bool {
	for _, l := range letters {
		if HasAxis(line, l) {
			return true
		}
	}
	return false
}

// Value returns the first parsable numeric value following letter.
// Occurrences whose numeral does not parse are skipped.
func Value(line string, letter byte) (float64, bool) {
	lo, up := lower(letter), upper(letter)
	for i := 0; i < len(line); i++ {
		if line[i] != lo && line[i] != up {
			continue
		}
		j := skipBlanks(line, i+1)
		num := scanNumeral(line, j)
		if num == "" {
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// Codes returns the integer values of every G word on the line, in order.
// Words with a fractional part (G38.2) are skipped.
func Codes(line string) []int {
	var codes []int
	for i := 0; i < len(line); i++ {
		if line[i] != 'G' && line[i] != 'g' {
			continue
		}
		j := skipBlanks(line, i+1)
		k := j
		for k < len(line) && isDigit(line[k]) {
			k++
		}
		if k == j {
			continue
		}
		if k+1 < len(line) && line[k] == '.' && isDigit(line[k+1]) {
			continue
		}
		n, err := strconv.Atoi(line[j:k])
		if err != nil {
			continue
		}
		codes = append(codes, n)
		i = k - 1
	}
	return codes
}

// MotionOf returns the last motion word on line. Because the whole digit
// run is read, G0 never matches inside G01 or G04, and G1 never matches
// inside G17. Leading zeros are accepted: G01 is a feed.
func MotionOf(line string) (Motion, bool) {
	m, found := MotionNone, false
	for _, c := range Codes(line) {
		if c >= 0 && c <= 3 {
			m, found = Motion(c+1), true
		}
	}
	return m, found
}

// IsCycleStart reports whether line starts a canned drilling cycle
// (G81 through G89). G80 is the cancel code and does not match.
func IsCycleStart(line string) bool {
	for _, c := range Codes(line) {
		if c >= 81 && c <= 89 {
			return true
		}
	}
	return false
}

// IsCycleCancel reports whether line carries G80.
func IsCycleCancel(line string) bool {
	for _, c := range Codes(line) {
		if c == 80 {
			return true
		}
	}
	return false
}

// Format renders a coordinate without trailing zeros.
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// scanNumeral returns the longest run starting at i that looks like
// [+-]digits[.digits].
func scanNumeral(line string, i int) string {
	start := i
	if i < len(line) && (line[i] == '+' || line[i] == '-') {
		i++
	}
	digits := false
	for i < len(line) && isDigit(line[i]) {
		i++
		digits = true
	}
	if i < len(line) && line[i] == '.' {
		i++
		for i < len(line) && isDigit(line[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return ""
	}
	return strings.TrimPrefix(line[start:i], "+")
}

func skipBlanks(line string, i int) int {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

func isNumeralStart(c byte) bool {
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
