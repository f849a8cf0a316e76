package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/strokemark/internal/region"
)

var haystack = []string{
	"(POCKET (1) ST)",
	"G1 X1 Y1                (M:A0000)",
	"G1 X2 Y2                (M:A0001)",
	"(POCKET (1) END)",
	"",
	"G1 X1 Y1                (M:A0000)",
	"G1 X2 Y2                (M:A0001)",
}

func TestFindSingleLine(t *testing.T) {
	tests := []struct {
		name       string
		needle     string
		start, end int
		preferLast bool
		want       int
		found      bool
	}{
		{"first occurrence", "#u,1#g1x1y1(m:a0000)", 0, -1, false, 1, true},
		{"last occurrence", "G1X1Y1(M:A0000)", 0, -1, true, 5, true},
		{"range start", "G1X1Y1(M:A0000)", 2, -1, false, 5, true},
		{"range end", "G1X1Y1(M:A0000)", 0, 4, true, 1, true},
		{"end beyond length", "G1X2Y2(M:A0001)", -3, 100, true, 6, true},
		{"tag differs", "G1X1Y1(M:B0000)", 0, -1, false, -1, false},
		{"empty needle", "   ", 0, -1, false, -1, false},
		{"out of range", "G1X1Y1(M:A0000)", 2, 4, false, -1, false},
		{"end zero is line zero only", "G1X1Y1(M:A0000)", 0, 0, false, -1, false},
		{"end zero matches line zero", "(pocket (1) st)", 0, 0, false, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindSingleLine(haystack, tt.needle, tt.start, tt.end, tt.preferLast)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindMultiLineCountsDuplicates(t *testing.T) {
	block := []string{"#u,1#G1X1Y1(M:A0000)", "#u,2#G1X2Y2(M:A0001)"}

	m, ok := FindMultiLine(haystack, block, 0, -1)
	require.True(t, ok)
	assert.Equal(t, Match{Start: 1, End: 2, Count: 2}, m)
	assert.True(t, m.Ambiguous())

	m, ok = FindMultiLine(haystack, block, 3, -1)
	require.True(t, ok)
	assert.Equal(t, Match{Start: 5, End: 6, Count: 1}, m)
	assert.False(t, m.Ambiguous())
}

func TestFindMultiLineFailures(t *testing.T) {
	_, ok := FindMultiLine(haystack, []string{"G1X1Y1(M:A0000)", ""}, 0, -1)
	assert.False(t, ok, "blank needle line")

	_, ok = FindMultiLine(haystack, []string{"G1X1Y1(M:A0000)", "G1X2Y2(M:A0001)"}, 6, -1)
	assert.False(t, ok, "block longer than range")

	_, ok = FindMultiLine(haystack, []string{"G1X9Y9(M:A0000)"}, 0, -1)
	assert.False(t, ok, "no match")

	_, ok = FindMultiLine(nil, []string{"G1"}, 0, -1)
	assert.False(t, ok)
}

func TestFindRegion(t *testing.T) {
	r := region.New(region.Mill, "POCKET (1)")
	r.Lines = []string{"#u,1#G1X2Y2(M:A0001)", ""}

	doc := "G0X0\r\nG1 X2 Y2   (M:A0001)\r\n"
	m, ok := FindRegion(doc, r)
	require.True(t, ok)
	assert.Equal(t, 1, m.Start)
	assert.Equal(t, 1, m.Count)
}
