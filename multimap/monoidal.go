package multimap

import (
	"cmp"

	"github.com/arloliu/monoidmap"
	"github.com/arloliu/monoidmap/monoid"
)

// Monoidal is a MultiMap backed by a monoidmap.Map of sets. The zero value is
// an empty multi-map ready to use.
type Monoidal[K, V cmp.Ordered] struct {
	m monoidmap.Map[K, monoid.Set[V]]
}

var _ MultiMap[string, int] = (*Monoidal[string, int])(nil)

// NewMonoidal returns an empty Monoidal multi-map.
func NewMonoidal[K, V cmp.Ordered]() *Monoidal[K, V] {
	return &Monoidal[K, V]{}
}

// Map returns the underlying monoidmap.Map.
func (mm *Monoidal[K, V]) Map() monoidmap.Map[K, monoid.Set[V]] {
	return mm.m
}

// Get implements MultiMap.
func (mm *Monoidal[K, V]) Get(k K) monoid.Set[V] {
	return mm.m.Get(k)
}

// Has implements MultiMap.
func (mm *Monoidal[K, V]) Has(k K, v V) bool {
	return mm.m.Get(k).Has(v)
}

// Set implements MultiMap.
func (mm *Monoidal[K, V]) Set(k K, vs monoid.Set[V]) {
	mm.m = mm.m.Set(k, vs)
}

// Add implements MultiMap.
func (mm *Monoidal[K, V]) Add(k K, vs ...V) {
	mm.m = mm.m.Adjust(k, func(s monoid.Set[V]) monoid.Set[V] {
		return s.Combine(monoid.SetOf(vs...))
	})
}

// Remove implements MultiMap.
func (mm *Monoidal[K, V]) Remove(k K, vs ...V) {
	mm.m = mm.m.Adjust(k, func(s monoid.Set[V]) monoid.Set[V] {
		return s.Monus(monoid.SetOf(vs...))
	})
}

// Union implements MultiMap.
func (mm *Monoidal[K, V]) Union(o MultiMap[K, V]) {
	mm.m = monoidmap.Union(mm.m, toMonoidal(o).m)
}

// Intersection implements MultiMap.
func (mm *Monoidal[K, V]) Intersection(o MultiMap[K, V]) {
	mm.m = monoidmap.Intersection(mm.m, toMonoidal(o).m)
}

// IsSubmapOf implements MultiMap.
func (mm *Monoidal[K, V]) IsSubmapOf(o MultiMap[K, V]) bool {
	return monoidmap.IsSubmapOf(mm.m, toMonoidal(o).m)
}

// Keys implements MultiMap.
func (mm *Monoidal[K, V]) Keys() []K {
	return mm.m.Keys()
}

// Len implements MultiMap.
func (mm *Monoidal[K, V]) Len() int {
	return mm.m.Len()
}

// Size implements MultiMap.
func (mm *Monoidal[K, V]) Size() int {
	return monoidmap.Fold(mm.m, 0, func(n int, _ K, s monoid.Set[V]) int { return n + s.Len() })
}

// ToList implements MultiMap.
func (mm *Monoidal[K, V]) ToList() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, mm.m.Len())
	for k, s := range mm.m.All() {
		entries = append(entries, Entry[K, V]{Key: k, Values: s})
	}

	return entries
}

// Equal implements MultiMap.
func (mm *Monoidal[K, V]) Equal(o MultiMap[K, V]) bool {
	return mm.m.Equal(toMonoidal(o).m)
}

// toMonoidal returns o as a Monoidal, converting other implementations.
func toMonoidal[K, V cmp.Ordered](o MultiMap[K, V]) *Monoidal[K, V] {
	if mm, ok := o.(*Monoidal[K, V]); ok {
		return mm
	}

	entries := o.ToList()
	list := make([]monoidmap.Entry[K, monoid.Set[V]], len(entries))
	for i, e := range entries {
		list[i] = monoidmap.Entry[K, monoid.Set[V]]{Key: e.Key, Value: e.Values}
	}

	return &Monoidal[K, V]{m: monoidmap.FromList(list)}
}
