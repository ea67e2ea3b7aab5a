package multimap

import (
	"cmp"
	"maps"
	"slices"

	"github.com/arloliu/monoidmap/monoid"
)

// Plain is a MultiMap backed by a Go map. Every operation that can shrink a
// set removes the key when the set becomes empty.
type Plain[K, V cmp.Ordered] struct {
	m map[K]monoid.Set[V]
}

var _ MultiMap[string, int] = (*Plain[string, int])(nil)

// NewPlain returns an empty Plain multi-map.
func NewPlain[K, V cmp.Ordered]() *Plain[K, V] {
	return &Plain[K, V]{m: make(map[K]monoid.Set[V])}
}

// put stores s at k, or deletes k when s is empty.
func (p *Plain[K, V]) put(k K, s monoid.Set[V]) {
	if s.IsEmpty() {
		delete(p.m, k)
		return
	}

	p.m[k] = s
}

// Get implements MultiMap.
func (p *Plain[K, V]) Get(k K) monoid.Set[V] {
	return p.m[k]
}

// Has implements MultiMap.
func (p *Plain[K, V]) Has(k K, v V) bool {
	return p.m[k].Has(v)
}

// Set implements MultiMap.
func (p *Plain[K, V]) Set(k K, vs monoid.Set[V]) {
	p.put(k, vs)
}

// Add implements MultiMap.
func (p *Plain[K, V]) Add(k K, vs ...V) {
	p.put(k, p.m[k].Combine(monoid.SetOf(vs...)))
}

// Remove implements MultiMap.
func (p *Plain[K, V]) Remove(k K, vs ...V) {
	s, ok := p.m[k]
	if !ok {
		return
	}

	p.put(k, s.Monus(monoid.SetOf(vs...)))
}

// Union implements MultiMap.
func (p *Plain[K, V]) Union(o MultiMap[K, V]) {
	for _, e := range o.ToList() {
		p.put(e.Key, p.m[e.Key].Combine(e.Values))
	}
}

// Intersection implements MultiMap.
func (p *Plain[K, V]) Intersection(o MultiMap[K, V]) {
	for k, s := range p.m {
		p.put(k, s.GCD(o.Get(k)))
	}
}

// IsSubmapOf implements MultiMap.
func (p *Plain[K, V]) IsSubmapOf(o MultiMap[K, V]) bool {
	for k, s := range p.m {
		if !s.Leq(o.Get(k)) {
			return false
		}
	}

	return true
}

// Keys implements MultiMap.
func (p *Plain[K, V]) Keys() []K {
	keys := slices.AppendSeq(make([]K, 0, len(p.m)), maps.Keys(p.m))
	slices.Sort(keys)

	return keys
}

// Len implements MultiMap.
func (p *Plain[K, V]) Len() int {
	return len(p.m)
}

// Size implements MultiMap.
func (p *Plain[K, V]) Size() int {
	n := 0
	for _, s := range p.m {
		n += s.Len()
	}

	return n
}

// ToList implements MultiMap.
func (p *Plain[K, V]) ToList() []Entry[K, V] {
	keys := p.Keys()
	entries := make([]Entry[K, V], len(keys))
	for i, k := range keys {
		entries[i] = Entry[K, V]{Key: k, Values: p.m[k]}
	}

	return entries
}

// Equal implements MultiMap.
func (p *Plain[K, V]) Equal(o MultiMap[K, V]) bool {
	if p.Len() != o.Len() {
		return false
	}
	for k, s := range p.m {
		if !s.Equal(o.Get(k)) {
			return false
		}
	}

	return true
}
