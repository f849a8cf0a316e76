package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/strokemark/internal/region"
)

func fixedUID(uid string) Option {
	return WithUIDFunc(func() string { return uid })
}

func TestAddMillFromGcodeOnly(t *testing.T) {
	store := region.NewStore()
	lines := []string{
		"Z-2            (M:A0000)",
		"",
		"G0X0Y0         (M:A0001)",
		"G1 Z-2         (M:A0002)",
		"g1 x10 y0      (M:A0003)",
		"G1X10Y10       (M:A0004)",
	}

	r, err := AddMillFromGcodeOnly(store, "POCKET (1)", lines,
		fixedUID("u1"),
		WithDefaults(map[region.Kind]map[string]string{
			region.Mill: {"ToolDiameter": "6", SnapZPlane: "ignored"},
		}),
		WithVisibility(false, true),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"#u1,1#Z-2(M:A0000)",
		"#u1,2#G0X0Y0(M:A0001)",
		"#u1,3#G1Z-2(M:A0002)",
		"#u1,4#G1X10Y0(M:A0003)",
		"#u1,5#G1X10Y10(M:A0004)",
	}, r.Lines)
	assert.Equal(t, "u1", r.UID())

	assert.Equal(t, map[string]string{
		SnapZPlane:     "#u1,1#Z-2(M:A0000)",
		SnapFirstX:     "#u1,2#G0X0Y0(M:A0001)",
		SnapFirstY:     "#u1,2#G0X0Y0(M:A0001)",
		SnapLastX:      "#u1,5#G1X10Y10(M:A0004)",
		SnapLastY:      "#u1,5#G1X10Y10(M:A0004)",
		"ToolDiameter": "6",
	}, r.Snapshot)

	assert.False(t, r.ShowInViewAll)
	assert.True(t, r.ExportEnabled)

	got, ok := store.Collection(region.Mill).Get("POCKET (1)")
	require.True(t, ok)
	assert.Same(t, r, got)
}

func TestAddTurnFromGcodeOnlyMarkers(t *testing.T) {
	store := region.NewStore()
	r, err := AddTurnFromGcodeOnly(store, "FACE", []string{
		"G0 X20 Z2 (T:A0000)",
		"G1 Z-10 (T:A0001)",
		"G1 X22 (T:A0002)",
	}, fixedUID("t"))
	require.NoError(t, err)

	assert.Equal(t, "#t,1#G0X20Z2(T:A0000)", r.Snapshot[SnapFirstX])
	assert.Equal(t, "#t,3#G1X22(T:A0002)", r.Snapshot[SnapLastX])
	assert.Equal(t, "#t,1#G0X20Z2(T:A0000)", r.Snapshot[SnapFirstZ])
	assert.Equal(t, "#t,2#G1Z-10(T:A0001)", r.Snapshot[SnapLastZ])
	assert.NotContains(t, r.Snapshot, SnapZPlane)
}

func TestAddDrillFromGcodeOnlyMarkers(t *testing.T) {
	store := region.NewStore()
	r, err := AddDrillFromGcodeOnly(store, "HOLES", []string{
		"D Z-10 (D:X0000)",
		"T Z2 (D:X0001)",
		"X0 Y0 (D:X0002)",
		"X10 Y0 (D:X0003)",
	}, fixedUID("d"))
	require.NoError(t, err)

	assert.Equal(t, "#d,1#DZ-10(D:X0000)", r.Snapshot[SnapDepth])
	assert.Equal(t, "#d,2#TZ2(D:X0001)", r.Snapshot[SnapTop])
	assert.Equal(t, "#d,3#X0Y0(D:X0002)", r.Snapshot[SnapFirstX], "tag letters are not axis words")
	assert.Equal(t, "#d,4#X10Y0(D:X0003)", r.Snapshot[SnapLastY])
}

func TestAddFromGcodeOnlyUniqueNames(t *testing.T) {
	store := region.NewStore()
	lines := []string{"G0 X1 Z1", "G1 Z-1"}

	first, err := AddTurnFromGcodeOnly(store, "T", lines)
	require.NoError(t, err)
	second, err := AddTurnFromGcodeOnly(store, "T", lines)
	require.NoError(t, err)

	assert.Equal(t, "T", first.Name)
	assert.Equal(t, "T_2", second.Name)
	assert.NotEqual(t, first.UID(), second.UID())
}

func TestAddFromGcodeOnlyErrors(t *testing.T) {
	store := region.NewStore()

	_, err := AddMillFromGcodeOnly(store, " ", []string{"G1X1"})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = AddMillFromGcodeOnly(store, "M", []string{"", "  "})
	assert.ErrorIs(t, err, ErrNoUsableLines)

	_, err = AddFromGcodeOnly(store, region.Kind(5), "X", []string{"G1X1"})
	assert.ErrorIs(t, err, region.ErrUnknownKind)

	assert.Zero(t, store.Len())
}

func TestRegisterBuildResult(t *testing.T) {
	res, err := New(region.Drill).Build("G81 Z-5 R1 X0 Y0\nX5\nG80\nG81 Z-6 R1 X9 Y9\nG80", "", "H")
	require.NoError(t, err)
	require.Len(t, res.Blocks, 2)

	store := region.NewStore()
	regions, err := Register(store, res, fixedUID("r"))
	require.NoError(t, err)
	require.Len(t, regions, 2)

	assert.Equal(t, []string{"H (1)", "H (2)"}, store.Collection(region.Drill).Names())
	assert.Equal(t, "#r,1#DZ-5(D:A0000)", regions[0].Lines[0])
	assert.Equal(t, "#r,3#X9Y9(D:B0002)", regions[1].Lines[2])
}
