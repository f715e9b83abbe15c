package main

import (
	"github.com/npillmayer/bimap/backend/ordered"
	"github.com/npillmayer/bimap/mem"
)

// pairMap stores every association twice: key to value in forward, value to
// key in reverse. Both maps hold one half of each pair.
type pairMap struct {
	forward *ordered.Map[int, string]
	reverse *ordered.Map[string, int]
}

func newPairMap() *pairMap {
	return &pairMap{
		forward: ordered.New[int, string](),
		reverse: ordered.New[string, int](),
	}
}

func (pm *pairMap) Len() int {
	return pm.forward.Len()
}

// Insert associates k and v. Existing associations of k or v are removed
// first, so no half is ever displaced by an insert.
func (pm *pairMap) Insert(k int, v string) {
	pm.RemoveLeft(k)
	pm.RemoveRight(v)
	kf, kr := mem.Share(k)
	vf, vr := mem.Share(v)
	pm.forward.Insert(kf, vf)
	pm.reverse.Insert(vr, kr)
}

// GetLeft returns the value associated with k.
func (pm *pairMap) GetLeft(k int) (string, bool) {
	v, ok := pm.forward.Get(k)
	if !ok {
		return "", false
	}
	return *v.Get(), true
}

// GetRight returns the key associated with v.
func (pm *pairMap) GetRight(v string) (int, bool) {
	k, ok := pm.reverse.Get(v)
	if !ok {
		return 0, false
	}
	return *k.Get(), true
}

// RemoveLeft removes the association of k from both maps.
func (pm *pairMap) RemoveLeft(k int) (string, bool) {
	kf, vf, ok := pm.forward.Remove(k)
	if !ok {
		return "", false
	}
	vr, kr, ok := pm.reverse.Remove(*vf.Get())
	if !ok {
		tracer().Errorf("semibench: value %v has no reverse entry", vf)
		panic("semibench: maps out of sync")
	}
	mem.Reunite(kf, kr)
	return mem.Reunite(vf, vr), true
}

// RemoveRight removes the association of v from both maps.
func (pm *pairMap) RemoveRight(v string) (int, bool) {
	vr, kr, ok := pm.reverse.Remove(v)
	if !ok {
		return 0, false
	}
	kf, vf, ok := pm.forward.Remove(*kr.Get())
	if !ok {
		tracer().Errorf("semibench: key %v has no forward entry", kr)
		panic("semibench: maps out of sync")
	}
	mem.Reunite(vr, vf)
	return mem.Reunite(kr, kf), true
}

// Drain removes all associations, reuniting every pair. It returns the number
// of associations removed.
func (pm *pairMap) Drain() int {
	n := 0
	it := pm.forward.IntoIter()
	for kf, vf := range it.All() {
		vr, kr, ok := pm.reverse.Remove(*vf.Get())
		if !ok {
			panic("semibench: maps out of sync")
		}
		mem.Reunite(kf, kr)
		mem.Reunite(vf, vr)
		n++
	}
	if !pm.reverse.IsEmpty() {
		panic("semibench: reverse map not empty after drain")
	}
	return n
}
