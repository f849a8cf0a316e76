// Package locate finds region text inside a rendered document.
//
// Both sides of every comparison go through normalize.KeyWithTag, so
// whitespace, case, line-number prefixes, anchors and tag alignment do not
// affect a match while the display tag itself does.
package locate

import (
	"github.com/samber/lo"

	"github.com/dshills/strokemark/internal/gcode/normalize"
	"github.com/dshills/strokemark/internal/region"
)

// Match is the result of a multi-line search.
type Match struct {
	// Start and End are the inclusive line indices of the first match.
	Start int
	End   int

	// Count is the number of positions where the block matched. A count
	// above one means the block is ambiguous in the haystack.
	Count int
}

// Ambiguous reports whether the block matched more than once.
func (m Match) Ambiguous() bool {
	return m.Count > 1
}

// clampRange returns the inclusive search bounds. A negative end means
// "to the last line".
func clampRange(n, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end < 0 || end > n-1 {
		end = n - 1
	}
	return start, end
}

// FindSingleLine returns the index of the first line in
// haystack[start..end] whose key equals needle's key, scanning backward
// when preferLast is set. An empty needle is never found.
//
// Bounds are inclusive. Pass a negative end to search to the last line;
// end 0 searches line 0 only. An end past the haystack is clamped.
func FindSingleLine(haystack []string, needle string, start, end int, preferLast bool) (int, bool) {
	key := normalize.KeyWithTag(needle)
	if key == "" || len(haystack) == 0 {
		return -1, false
	}
	start, end = clampRange(len(haystack), start, end)

	if preferLast {
		for i := end; i >= start; i-- {
			if normalize.KeyWithTag(haystack[i]) == key {
				return i, true
			}
		}
		return -1, false
	}
	for i := start; i <= end; i++ {
		if normalize.KeyWithTag(haystack[i]) == key {
			return i, true
		}
	}
	return -1, false
}

// FindMultiLine slides block over haystack[start..end] and reports the
// first position where every line matches, together with the total number
// of matching positions. It fails when any block line normalizes to an
// empty key or the block does not fit in the range. Ambiguity is reported,
// not resolved.
//
// start and end follow FindSingleLine: a negative end means the last line,
// and end 0 limits the search to line 0.
func FindMultiLine(haystack, block []string, start, end int) (Match, bool) {
	if len(block) == 0 || len(haystack) == 0 {
		return Match{}, false
	}
	keys := make([]string, len(block))
	for i, line := range block {
		keys[i] = normalize.KeyWithTag(line)
		if keys[i] == "" {
			return Match{}, false
		}
	}

	start, end = clampRange(len(haystack), start, end)
	if end-start+1 < len(keys) {
		return Match{}, false
	}

	hay := make([]string, end-start+1)
	for i := range hay {
		hay[i] = normalize.KeyWithTag(haystack[start+i])
	}

	m := Match{Start: -1, End: -1}
	for pos := 0; pos+len(keys) <= len(hay); pos++ {
		if !matchesAt(hay, keys, pos) {
			continue
		}
		if m.Count == 0 {
			m.Start = start + pos
			m.End = start + pos + len(keys) - 1
		}
		m.Count++
	}
	if m.Count == 0 {
		return Match{}, false
	}
	return m, true
}

func matchesAt(hay, keys []string, pos int) bool {
	for i, k := range keys {
		if hay[pos+i] != k {
			return false
		}
	}
	return true
}

// FindRegion locates r's lines inside document. Blank stored lines are
// skipped; anchors are ignored by the key.
func FindRegion(document string, r *region.Region) (Match, bool) {
	block := lo.Reject(r.Lines, func(line string, _ int) bool {
		return normalize.IsBlank(line)
	})
	return FindMultiLine(normalize.Lines(document), block, 0, -1)
}
