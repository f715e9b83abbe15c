/*
Package backendtest provides a conformance suite for backend maps.

A backend package calls Run from one of its tests with a constructor for empty
maps:

	func TestConformance(t *testing.T) {
	    backendtest.Run(t, func() *Map[int, string] { return New[int, string]() })
	}

Run checks size and membership consistency, lookup and removal fidelity and
the reunification of removed halves with their siblings.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package backendtest

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/npillmayer/bimap/backend"
	"github.com/npillmayer/bimap/mem"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// Run runs the conformance suite against maps created by newMap. Every call of
// newMap has to return a new, empty map.
func Run[M backend.Map[int, string]](t *testing.T, newMap func() M) {
	t.Run("Empty", func(t *testing.T) { testEmpty(t, newMap()) })
	t.Run("Scenario", func(t *testing.T) { testScenario(t, newMap()) })
	t.Run("GetKeepsEntry", func(t *testing.T) { testGetKeepsEntry(t, newMap()) })
	t.Run("RemoveAbsent", func(t *testing.T) { testRemoveAbsent(t, newMap()) })
	t.Run("Replace", func(t *testing.T) { testReplace(t, newMap()) })
	t.Run("RandomizedModel", func(t *testing.T) { testRandomizedModel(t, newMap()) })
}

// siblings holds the halves a backend map does not own.
type siblings struct {
	keys   map[int]mem.KeyRef[int]
	values map[int]mem.ValueRef[string]
}

func newSiblings() *siblings {
	return &siblings{
		keys:   make(map[int]mem.KeyRef[int]),
		values: make(map[int]mem.ValueRef[string]),
	}
}

func (s *siblings) insert(m backend.Map[int, string], k int, v string) {
	k1, k2 := mem.Share(k)
	v1, v2 := mem.Share(v)
	s.keys[k], s.values[k] = k2, v2
	m.Insert(k1, v1)
}

func (s *siblings) reunite(t *testing.T, kh mem.KeyRef[int], vh mem.ValueRef[string]) (int, string) {
	t.Helper()
	k := *kh.Get()
	ksib, ok := s.keys[k]
	require.True(t, ok, "no sibling half for key %d", k)
	require.True(t, mem.SameAllocation(kh, ksib), "key half for %d is not paired with its sibling", k)
	vsib := s.values[k]
	require.True(t, mem.SameAllocation(vh, vsib), "value half for %d is not paired with its sibling", k)
	delete(s.keys, k)
	delete(s.values, k)
	return mem.Reunite(kh, ksib), mem.Reunite(vh, vsib)
}

func testEmpty(t *testing.T, m backend.Map[int, string]) {
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	require.False(t, m.Contains(0))
	_, ok := m.Get(0)
	require.False(t, ok)
	_, _, ok = m.Remove(0)
	require.False(t, ok)
}

func testScenario(t *testing.T, m backend.Map[int, string]) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()
	//
	s := newSiblings()
	s.insert(m, 3, "c")
	s.insert(m, 1, "a")
	s.insert(m, 2, "b")
	require.Equal(t, 3, m.Len())
	for k, want := range map[int]string{1: "a", 2: "b", 3: "c"} {
		require.True(t, m.Contains(k))
		v, ok := m.Get(k)
		require.True(t, ok)
		require.Equal(t, want, *v.Get())
	}
	kh, vh, ok := m.Remove(2)
	require.True(t, ok)
	k, v := s.reunite(t, kh, vh)
	require.Equal(t, 2, k)
	require.Equal(t, "b", v)
	require.False(t, m.Contains(2))
	require.Equal(t, 2, m.Len())
}

func testGetKeepsEntry(t *testing.T, m backend.Map[int, string]) {
	s := newSiblings()
	s.insert(m, 7, "seven")
	v, ok := m.Get(7)
	require.True(t, ok)
	require.True(t, mem.SameAllocation(v, s.values[7]))
	require.Equal(t, 1, m.Len())
	require.True(t, m.Contains(7))
}

func testRemoveAbsent(t *testing.T, m backend.Map[int, string]) {
	s := newSiblings()
	for _, k := range []int{10, 20, 30} {
		s.insert(m, k, strconv.Itoa(k))
	}
	for _, k := range []int{5, 15, 25, 35} {
		_, _, ok := m.Remove(k)
		require.False(t, ok, "removed absent key %d", k)
	}
	require.Equal(t, 3, m.Len())
}

func testReplace(t *testing.T, m backend.Map[int, string]) {
	s := newSiblings()
	s.insert(m, 1, "old")
	k1, k2 := mem.Share(1)
	v1, v2 := mem.Share("new")
	dk, dv, displaced := m.Replace(k1, v1)
	require.True(t, displaced)
	k, v := s.reunite(t, dk, dv)
	require.Equal(t, 1, k)
	require.Equal(t, "old", v)
	s.keys[1], s.values[1] = k2, v2
	got, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "new", *got.Get())
	require.Equal(t, 1, m.Len())
}

func testRandomizedModel(t *testing.T, m backend.Map[int, string]) {
	r := rand.New(rand.NewSource(7))
	s := newSiblings()
	model := make(map[int]string)
	for step := 0; step < 2000; step++ {
		k := r.Intn(300)
		switch op := r.Intn(10); {
		case op < 5:
			if _, present := model[k]; present {
				continue // fresh halves only for absent keys
			}
			v := strconv.Itoa(r.Int())
			s.insert(m, k, v)
			model[k] = v
		case op < 8:
			kh, vh, ok := m.Remove(k)
			want, present := model[k]
			require.Equal(t, present, ok, "step %d: presence of %d", step, k)
			if ok {
				rk, rv := s.reunite(t, kh, vh)
				require.Equal(t, k, rk)
				require.Equal(t, want, rv)
				delete(model, k)
			}
		default:
			v, ok := m.Get(k)
			want, present := model[k]
			require.Equal(t, present, ok, "step %d: presence of %d", step, k)
			if ok {
				require.Equal(t, want, *v.Get())
			}
		}
		require.Equal(t, len(model), m.Len(), "step %d: size", step)
		require.Equal(t, len(model) == 0, m.IsEmpty())
	}
}
