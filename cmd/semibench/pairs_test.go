package main

import (
	"testing"

	"github.com/npillmayer/bimap/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairMapBothDirections(t *testing.T) {
	pm := newPairMap()
	pm.Insert(1, "one")
	pm.Insert(2, "two")
	v, ok := pm.GetLeft(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	k, ok := pm.GetRight("two")
	require.True(t, ok)
	assert.Equal(t, 2, k)
	assert.Equal(t, 2, pm.Len())
	assert.Equal(t, 2, pm.reverse.Len())
}

func TestPairMapInsertReplacesBothSides(t *testing.T) {
	live := mem.LivePairs()
	pm := newPairMap()
	pm.Insert(1, "a")
	pm.Insert(2, "b")
	pm.Insert(1, "b") // displaces 1->a and 2->b
	assert.Equal(t, 1, pm.Len())
	_, ok := pm.GetRight("a")
	assert.False(t, ok)
	_, ok = pm.GetLeft(2)
	assert.False(t, ok)
	k, ok := pm.GetRight("b")
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, int64(2), mem.LivePairs()-live)
}

func TestPairMapRemoveReunites(t *testing.T) {
	live := mem.LivePairs()
	pm := newPairMap()
	pm.Insert(3, "c")
	v, ok := pm.RemoveLeft(3)
	require.True(t, ok)
	assert.Equal(t, "c", v)
	_, ok = pm.RemoveRight("c")
	assert.False(t, ok)
	pm.Insert(4, "d")
	k, ok := pm.RemoveRight("d")
	require.True(t, ok)
	assert.Equal(t, 4, k)
	assert.Zero(t, pm.Len())
	assert.Equal(t, int64(0), mem.LivePairs()-live)
}

func TestPairMapDrain(t *testing.T) {
	live := mem.LivePairs()
	pm := newPairMap()
	for i := 0; i < 100; i++ {
		pm.Insert(i, valueFor(i))
	}
	assert.Equal(t, 100, pm.Drain())
	assert.Zero(t, pm.Len())
	assert.True(t, pm.reverse.IsEmpty())
	assert.Equal(t, int64(0), mem.LivePairs()-live)
}
