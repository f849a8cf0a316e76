package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for input, want := range map[string]Kind{
		"mill":   Mill,
		" Turn ": Turn,
		"D":      Drill,
	} {
		got, err := ParseKind(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseKind("laser")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindLetters(t *testing.T) {
	assert.Equal(t, byte('M'), Mill.Letter())
	assert.Equal(t, byte('T'), Turn.Letter())
	assert.Equal(t, byte('D'), Drill.Letter())
	assert.Equal(t, "drill", Drill.String())
	assert.False(t, Kind(7).Valid())
}

func TestRegionUID(t *testing.T) {
	r := New(Mill, "a")
	assert.Empty(t, r.UID())

	r.Lines = []string{"", "G1X1", "#abc,2#G1X2", "#def,3#G1X3"}
	assert.Equal(t, "abc", r.UID())
}

func TestRegionSnapshot(t *testing.T) {
	r := &Region{Kind: Turn, Name: "t"}
	assert.True(t, r.SeedSnapshot("ToolNoseRadius", "0.4"))
	assert.False(t, r.SeedSnapshot("ToolNoseRadius", "0.8"))
	assert.Equal(t, "0.4", r.Snapshot["ToolNoseRadius"])
}

func TestCollectionUniqueNames(t *testing.T) {
	c := NewCollection(Mill)

	for _, want := range []string{"POCKET (1)", "POCKET (1)_2", "POCKET (1)_3"} {
		name, err := c.Add(New(Mill, "POCKET (1)"))
		require.NoError(t, err)
		assert.Equal(t, want, name)
	}

	assert.Equal(t, []string{"POCKET (1)", "POCKET (1)_2", "POCKET (1)_3"}, c.Names())

	r, ok := c.Get("POCKET (1)_3")
	require.True(t, ok)
	assert.Same(t, r, c.Regions()[2])
	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCollectionAddErrors(t *testing.T) {
	c := NewCollection(Mill)

	_, err := c.Add(New(Turn, "x"))
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = c.Add(New(Mill, "   "))
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Zero(t, c.Len())
}

func TestCollectionRemove(t *testing.T) {
	c := NewCollection(Drill)
	for _, n := range []string{"a", "b", "c"} {
		_, err := c.Add(New(Drill, n))
		require.NoError(t, err)
	}

	assert.True(t, c.Remove("b"))
	assert.False(t, c.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, c.Names())

	name, err := c.Add(New(Drill, "b"))
	require.NoError(t, err)
	assert.Equal(t, "b", name, "removed names become available again")
}

func TestStore(t *testing.T) {
	s := NewStore()
	_, err := s.Add(New(Turn, "t1"))
	require.NoError(t, err)
	_, err = s.Add(New(Mill, "m1"))
	require.NoError(t, err)
	_, err = s.Add(New(Kind(9), "bad"))
	assert.ErrorIs(t, err, ErrUnknownKind)

	assert.Equal(t, 2, s.Len())
	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "m1", all[0].Name, "mill regions come first")
	assert.Equal(t, "t1", all[1].Name)
	assert.Equal(t, 1, s.Collection(Turn).Len())
}
