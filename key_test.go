package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeysCompatibleMatrix(t *testing.T) {
	require.True(t, keysCompatible(KindTable, KindTableLeaf))
	require.True(t, keysCompatible(KindTable, KindTable))
	require.False(t, keysCompatible(KindTable, KindArrayTable))
	require.False(t, keysCompatible(KindKeyLeaf, KindKey))
	require.False(t, keysCompatible(KindTableLeaf, KindTableLeaf))
	require.True(t, keysCompatible(KindArrayTable, KindArrayTable))
	require.True(t, keysCompatible(KindArrayTable, KindTable))
}

func TestAddSubkeyRejectsDuplicateLeaf(t *testing.T) {
	tok := newTokenizer([]byte(""), "", DefaultLimits())
	root := newRoot()

	a := newKey(KindKeyLeaf)
	a.ID = "x"
	_, err := root.addSubkey(a, tok)
	require.NoError(t, err)

	b := newKey(KindKeyLeaf)
	b.ID = "x"
	_, err = root.addSubkey(b, tok)
	require.Error(t, err)
}

func TestAddSubkeyLocksTableOnRedefinition(t *testing.T) {
	tok := newTokenizer([]byte(""), "", DefaultLimits())
	root := newRoot()

	first := newKey(KindTable)
	first.ID = "t"
	placed, err := root.addSubkey(first, tok)
	require.NoError(t, err)
	require.Equal(t, KindTable, placed.Kind)

	second := newKey(KindTableLeaf)
	second.ID = "t"
	placed2, err := root.addSubkey(second, tok)
	require.NoError(t, err)
	require.Equal(t, KindTableLeaf, placed2.Kind)

	third := newKey(KindTableLeaf)
	third.ID = "t"
	_, err = root.addSubkey(third, tok)
	require.Error(t, err)
}

func TestArrayTableEntryCursor(t *testing.T) {
	tok := newTokenizer([]byte(""), "", DefaultLimits())
	root := newRoot()

	at := newKey(KindArrayTable)
	at.ID = "fruit"
	placed, err := root.addSubkey(at, tok)
	require.NoError(t, err)

	require.NoError(t, placed.openArrayTableEntry(tok))
	entry0, err := placed.currentEntry(tok)
	require.NoError(t, err)

	name := newKey(KindKeyLeaf)
	name.ID = "name"
	name.Value = newStringValue("apple")
	_, err = entry0.addSubkey(name, tok)
	require.NoError(t, err)

	require.NoError(t, placed.openArrayTableEntry(tok))
	entry1, err := placed.currentEntry(tok)
	require.NoError(t, err)
	require.NotSame(t, entry0, entry1)

	elems, ok := placed.Value.Array()
	require.True(t, ok)
	require.Len(t, elems, 2)
}
