package builder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/strokemark/internal/gcode/address"
	"github.com/dshills/strokemark/internal/region"
)

// payloads returns a block's interior lines without their display tags.
func payloads(b Block) []string {
	var out []string
	for _, line := range b.Interior() {
		out = append(out, strings.TrimSpace(address.StripTrailingTag(line)))
	}
	return out
}

// tags returns the parsed display tags of a block's interior lines.
func tags(t *testing.T, b Block) []address.Tag {
	t.Helper()
	var out []address.Tag
	for _, line := range b.Interior() {
		tag, idx, ok := address.TrailingTag(line)
		require.True(t, ok, "line %q has no tag", line)
		assert.Equal(t, DefaultTagColumn, idx, "tag of %q not aligned", line)
		out = append(out, tag)
	}
	return out
}

func assertLines(t *testing.T, want, got []string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestMillSingleStroke(t *testing.T) {
	sel := "G0Z5\nG0X0Y0\nG1Z-2\nG1X10Y0\nG1X10Y10\nG0X0Y0"

	res, err := New(region.Mill).Build(sel, "", "POCKET")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)

	b := res.Blocks[0]
	assert.Equal(t, "POCKET (1)", b.Name)
	assert.Equal(t, "(POCKET (1) ST)", b.Lines[0])
	assert.Equal(t, "(POCKET (1) END)", b.Lines[len(b.Lines)-1])
	assert.Equal(t, "-2", b.Meta["Plane"])
	assertLines(t, []string{"Z-2", "G0X0Y0", "G1Z-2", "G1X10Y0", "G1X10Y10"}, payloads(b))

	for i, tag := range tags(t, b) {
		assert.Equal(t, address.Tag{Kind: 'M', Set: 'A', Seq: i}, tag)
	}
	assert.Contains(t, res.Message, "created 1 mill region")
}

func TestMillMultipleStrokes(t *testing.T) {
	sel := strings.Join([]string{
		"G0 Z5",
		"G0 X0 Y0",
		"G1 Z-1",
		"G1 X10 Y0 F300 (cut)",
		"g1 x10 y0 f300",
		"G1 X10 Y10",
		"G0 Z5",
		"G0 X20 Y0",
		"G1 Z-1",
		"G2 X30 Y0 I5 J0",
		"G0 Z5",
	}, "\r\n")
	doc := "(OLD (1) ST)\nG1X1 (M:B0003)\n(OLD (1) END)\n" + sel

	res, err := New(region.Mill).Build(sel, doc, "P")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 2)

	assert.Equal(t, "P (1)", res.Blocks[0].Name)
	assert.Equal(t, byte('C'), res.Blocks[0].Set)
	assertLines(t, []string{"Z-1", "G0 X0 Y0", "G1 Z-1", "G1 X10 Y0 F300", "G1 X10 Y10"}, payloads(res.Blocks[0]))

	assert.Equal(t, "P (2)", res.Blocks[1].Name)
	assert.Equal(t, byte('D'), res.Blocks[1].Set)
	assertLines(t, []string{"Z-1", "G0 X20 Y0", "G1 Z-1", "G2 X30 Y0 I5 J0"}, payloads(res.Blocks[1]))
	assert.Equal(t, byte('D'), tags(t, res.Blocks[1])[0].Set)
}

func TestMillIgnoresOffPlaneOpening(t *testing.T) {
	sel := "G0 X0 Y0\nG1 X5 Y5 Z0\nG1 Z-3\nG1 X6 Y6\nG1 X7 Y7 Z-1"

	res, err := New(region.Mill).Build(sel, "", "M")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assertLines(t, []string{"Z-3", "G0 X0 Y0", "G1 Z-3", "G1 X6 Y6", "G1 X7 Y7 Z-1"}, payloads(res.Blocks[0]))
}

func TestMillRapidClearsPlunge(t *testing.T) {
	sel := "G0X0Y0\nG1Z-2\nG0X5Y5\nG1X6Y6"

	res, err := New(region.Mill).Build(sel, "", "R")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assertLines(t, []string{"Z-2", "G0X5Y5", "G1X6Y6"}, payloads(res.Blocks[0]))
}

func TestMillStripsSelectionAddressing(t *testing.T) {
	sel := "1: #u,1#G0X0Y0      (M:A0000)\n2: #u,2#G1Z-1 (M:A0001)\n3: #u,3#G1X1Y1 (M:A0002)"
	doc := sel

	res, err := New(region.Mill).Build(sel, doc, "again")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assertLines(t, []string{"Z-1", "G0X0Y0", "G1Z-1", "G1X1Y1"}, payloads(res.Blocks[0]))
	assert.Equal(t, byte('B'), res.Blocks[0].Set)
}

func TestTurnStrokes(t *testing.T) {
	sel := strings.Join([]string{
		"G0 X20 Z2",
		"G1 Z-10 F0.2",
		"G1 X22",
		"G1 X22 ; repeated",
		"G0 X25 Z2",
		"G0 X18 Z2",
		"G1 Z-5",
		"G0 X30",
	}, "\n")

	res, err := New(region.Turn).Build(sel, "", "FACE")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 2)

	assertLines(t, []string{"G0 X20 Z2", "G1 Z-10 F0.2", "G1 X22"}, payloads(res.Blocks[0]))
	assertLines(t, []string{"G0 X18 Z2", "G1 Z-5"}, payloads(res.Blocks[1]))

	for _, tag := range tags(t, res.Blocks[1]) {
		assert.Equal(t, byte('T'), tag.Kind)
		assert.Equal(t, byte('B'), tag.Set)
	}
}

func TestTurnArcAndEndOfInput(t *testing.T) {
	sel := "G0 X10 Z1\nG1 Z0\nG3 X12 Z-1 R1\nG1 Z-8"

	res, err := New(region.Turn).Build(sel, "", "R")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assertLines(t, []string{"G0 X10 Z1", "G1 Z0", "G3 X12 Z-1 R1", "G1 Z-8"}, payloads(res.Blocks[0]))
}

func TestDrillSingleGroup(t *testing.T) {
	res, err := New(region.Drill).Build("G81Z-10R2\nX0Y0\nX10Y0\nG80", "", "HOLES")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)

	b := res.Blocks[0]
	assertLines(t, []string{"D Z-10", "T Z2", "X0 Y0", "X10 Y0"}, payloads(b))
	assert.Equal(t, "-10", b.Meta["Depth"])
	assert.Equal(t, "2", b.Meta["Top"])
	assert.Equal(t, "2", b.Meta["Points"])
	assert.Equal(t, byte('D'), tags(t, b)[0].Kind)
}

func TestDrillGroups(t *testing.T) {
	sel := strings.Join([]string{
		"G81 Z-1 R0",
		"G80",
		"G0 Z5",
		"G0 X1 Y1",
		"G83 Z-12 Q2",
		"X2",
		"Y3",
		"G80",
		"G81 R1 X7 Y7",
		"X8 Y8",
		"G82 Z-3 R1 P500",
		"G0 X0 Y0",
	}, "\n")

	res, err := New(region.Drill).Build(sel, "", "H")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Blocks, 2)

	assertLines(t, []string{"D Z-12", "T Z5", "X1 Y1", "X2 Y1", "X2 Y3"}, payloads(res.Blocks[0]))
	assertLines(t, []string{"D Z-3", "T Z1", "X8 Y8"}, payloads(res.Blocks[1]))
	assert.Equal(t, "H (2)", res.Blocks[1].Name)
	assert.Contains(t, res.Message, "skipped 2")
}

func TestDrillTopDefaultsToZero(t *testing.T) {
	res, err := New(region.Drill).Build("X5 Y5\nG81 Z-2\nG80", "", "H")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assertLines(t, []string{"D Z-2", "T Z0", "X5 Y5"}, payloads(res.Blocks[0]))
}

func TestBuildLetterWraps(t *testing.T) {
	res, err := New(region.Drill).Build("G81 Z-1 X0 Y0\nX1\nG80", "(T:Z0001)", "W")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, byte('A'), res.Blocks[0].Set)
}

func TestBuildCustomColumn(t *testing.T) {
	res, err := New(region.Turn, WithTagColumn(20)).Build("G0 X1 Z1\nG1 Z-1", "", "C")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
	assert.Equal(t, "G0 X1 Z1            (T:A0000)", res.Blocks[0].Lines[1])
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		kind region.Kind
		sel  string
		base string
		want error
	}{
		{"empty name", region.Mill, "G1 X1", "  ", ErrEmptyName},
		{"empty selection", region.Mill, " \r\n ", "N", ErrEmptySelection},
		{"only addressing", region.Turn, "12:\n13:", "N", ErrNoUsableLines},
		{"mill without Z", region.Mill, "G1 X1 Y1", "N", ErrNoAxisTokens},
		{"mill without XY", region.Mill, "G0 Z5\nG1 Z-1", "N", ErrNoRegions},
		{"turn without X or Z", region.Turn, "G1 Y5", "N", ErrNoAxisTokens},
		{"turn rapids only", region.Turn, "G0 X1 Z1\nG0 X2", "N", ErrNoRegions},
		{"drill without cycle", region.Drill, "G1 X1 Y1 Z-1", "N", ErrNoAxisTokens},
		{"drill without points", region.Drill, "G81 Z-1\nG80", "N", ErrNoRegions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New(tt.kind).Build(tt.sel, "", tt.base)
			require.ErrorIs(t, err, tt.want)
			assert.NotEmpty(t, err.Error())
			assert.Empty(t, res.Blocks)
		})
	}
}

func TestBuildDoesNotModifyInput(t *testing.T) {
	sel := "G0X0Y0\nG1Z-2\nG1X1Y1"
	doc := sel + "\n(M:A0000)"
	orig, origDoc := sel, doc

	_, err := New(region.Mill).Build(sel, doc, "P")
	require.NoError(t, err)
	assert.Equal(t, orig, sel)
	assert.Equal(t, origDoc, doc)
}

func TestResultText(t *testing.T) {
	res, err := New(region.Turn).Build("G0 X1 Z1\nG1 Z-1\nG0 X2\nG1 Z-2", "", "T")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 2)

	text := res.Text()
	assert.Equal(t, 8, strings.Count(text, "\n")+1)
	assert.True(t, strings.HasPrefix(text, "(T (1) ST)\n"))
	assert.True(t, strings.HasSuffix(text, "(T (2) END)"))
}
