package project

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/strokemark/internal/region"
)

const sample = `mill:
  - name: POCKET (1)
    lines:
      - "#u1,1#Z-2(M:A0000)"
      - "#u1,2#G0X0Y0(M:A0001)"
    snapshot:
      ZPlaneLine: "#u1,1#Z-2(M:A0000)"
      ToolDiameter: "6"
    show_in_view_all: false
turn: []
drill:
  - name: HOLES (1)
    lines:
      - "#d9,1#D Z-5(D:A0000)"
`

func TestDecode(t *testing.T) {
	store, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	pocket, ok := store.Collection(region.Mill).Get("POCKET (1)")
	require.True(t, ok)
	assert.Equal(t, []string{"#u1,1#Z-2(M:A0000)", "#u1,2#G0X0Y0(M:A0001)"}, pocket.Lines)
	assert.Equal(t, "6", pocket.Snapshot["ToolDiameter"])
	assert.False(t, pocket.ShowInViewAll)
	assert.True(t, pocket.ExportEnabled)

	holes, ok := store.Collection(region.Drill).Get("HOLES (1)")
	require.True(t, ok)
	assert.Equal(t, "d9", holes.UID())
	assert.NotNil(t, holes.Snapshot)
}

func TestDecodeEmpty(t *testing.T) {
	store, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("mill:\n  - name: A\n    colour: red\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Decode(strings.NewReader("mill:\n  - name: \"\"\n"))
	assert.ErrorIs(t, err, region.ErrEmptyName)
}

func TestDecodeDuplicateNames(t *testing.T) {
	store, err := Decode(strings.NewReader("turn:\n  - name: FACE\n  - name: FACE\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"FACE", "FACE_2"}, store.Collection(region.Turn).Names())
}

func TestEncodeDecodeKeepsStore(t *testing.T) {
	store, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, store))

	again, err := Decode(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(store.All(), again.All()); diff != "" {
		t.Errorf("store changed through encode/decode (-want +got):\n%s", diff)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")

	store, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())

	r := region.New(region.Turn, "FACE")
	r.Lines = []string{"#t,1#G0X20Z2(T:A0000)"}
	_, err = store.Add(r)
	require.NoError(t, err)
	require.NoError(t, Save(path, store))

	loaded, err := Load(path)
	require.NoError(t, err)
	got, ok := loaded.Collection(region.Turn).Get("FACE")
	require.True(t, ok)
	assert.Equal(t, r.Lines, got.Lines)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}
