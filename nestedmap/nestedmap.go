// Package nestedmap implements a two-level map on top of monoidmap.Map.
//
// The outer map's values are themselves monoid maps, so an inner map that
// becomes empty is the identity of the outer map and disappears with no
// extra bookkeeping.
package nestedmap

import (
	"cmp"

	"github.com/arloliu/monoidmap"
	"github.com/arloliu/monoidmap/monoid"
)

// Map associates pairs of keys with monoidal values. The zero value is the
// empty map.
type Map[K1, K2 cmp.Ordered, V monoid.Monoid[V]] struct {
	outer monoidmap.Map[K1, monoidmap.Map[K2, V]]
}

// Entry is a key pair with its value.
type Entry[K1, K2 cmp.Ordered, V any] struct {
	Outer K1
	Inner K2
	Value V
}

var _ monoid.Monoid[Map[string, int, monoid.Nat]] = Map[string, int, monoid.Nat]{}

// FromList builds a map from entries; later entries for the same key pair
// win.
func FromList[K1, K2 cmp.Ordered, V monoid.Monoid[V]](entries []Entry[K1, K2, V]) Map[K1, K2, V] {
	var m Map[K1, K2, V]
	for _, e := range entries {
		m = m.Set(e.Outer, e.Inner, e.Value)
	}

	return m
}

// Get returns the value under (k1, k2), or the identity.
func (m Map[K1, K2, V]) Get(k1 K1, k2 K2) V {
	return m.outer.Get(k1).Get(k2)
}

// Set returns m with v under (k1, k2). Setting the identity removes the
// pair and, if it was the last one, the whole inner map.
func (m Map[K1, K2, V]) Set(k1 K1, k2 K2, v V) Map[K1, K2, V] {
	return m.Adjust(k1, k2, func(V) V { return v })
}

// Adjust returns m with f applied to the value under (k1, k2).
func (m Map[K1, K2, V]) Adjust(k1 K1, k2 K2, f func(V) V) Map[K1, K2, V] {
	return Map[K1, K2, V]{outer: m.outer.Adjust(k1, func(inner monoidmap.Map[K2, V]) monoidmap.Map[K2, V] {
		return inner.Adjust(k2, f)
	})}
}

// Nullify returns m with the identity under (k1, k2).
func (m Map[K1, K2, V]) Nullify(k1 K1, k2 K2) Map[K1, K2, V] {
	return m.Set(k1, k2, monoid.Identity[V]())
}

// Inner returns the inner map stored under k1.
func (m Map[K1, K2, V]) Inner(k1 K1) monoidmap.Map[K2, V] {
	return m.outer.Get(k1)
}

// Outer returns the underlying map of maps.
func (m Map[K1, K2, V]) Outer() monoidmap.Map[K1, monoidmap.Map[K2, V]] {
	return m.outer
}

// ToList returns every non-identity value in ascending order of the key pair.
func (m Map[K1, K2, V]) ToList() []Entry[K1, K2, V] {
	entries := make([]Entry[K1, K2, V], 0, m.Len())
	for k1, inner := range m.outer.All() {
		for k2, v := range inner.All() {
			entries = append(entries, Entry[K1, K2, V]{Outer: k1, Inner: k2, Value: v})
		}
	}

	return entries
}

// Len returns the number of key pairs with a non-identity value.
func (m Map[K1, K2, V]) Len() int {
	return monoidmap.Fold(m.outer, 0, func(n int, _ K1, inner monoidmap.Map[K2, V]) int {
		return n + inner.Len()
	})
}

// OuterLen returns the number of outer keys with a non-empty inner map.
func (m Map[K1, K2, V]) OuterLen() int {
	return m.outer.Len()
}

// Empty returns the empty nested map.
func (Map[K1, K2, V]) Empty() Map[K1, K2, V] {
	return Map[K1, K2, V]{}
}

// IsEmpty reports whether every value is the identity.
func (m Map[K1, K2, V]) IsEmpty() bool {
	return m.outer.IsEmpty()
}

// Equal reports whether both maps agree at every key pair.
func (m Map[K1, K2, V]) Equal(o Map[K1, K2, V]) bool {
	return m.outer.Equal(o.outer)
}

// Combine is Append.
func (m Map[K1, K2, V]) Combine(o Map[K1, K2, V]) Map[K1, K2, V] {
	return Append(m, o)
}

// String formats m like its map of maps.
func (m Map[K1, K2, V]) String() string {
	return m.outer.String()
}

// Append combines both maps at every key pair.
func Append[K1, K2 cmp.Ordered, V monoid.Monoid[V]](a, b Map[K1, K2, V]) Map[K1, K2, V] {
	return Map[K1, K2, V]{outer: monoidmap.Append(a.outer, b.outer)}
}

// IntersectionWith merges the key pairs present in both maps with f.
func IntersectionWith[K1, K2 cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2], V3 monoid.Monoid[V3]](
	f func(V1, V2) V3, a Map[K1, K2, V1], b Map[K1, K2, V2],
) Map[K1, K2, V3] {
	return Map[K1, K2, V3]{outer: monoidmap.IntersectionWith(
		func(x monoidmap.Map[K2, V1], y monoidmap.Map[K2, V2]) monoidmap.Map[K2, V3] {
			return monoidmap.IntersectionWith(f, x, y)
		},
		a.outer, b.outer,
	)}
}

// Fingerprint returns the fingerprint of the underlying map of maps.
func Fingerprint[K1, K2 cmp.Ordered, V monoid.Monoid[V]](m Map[K1, K2, V], opts ...monoidmap.FingerprintOption) (uint64, error) {
	return monoidmap.Fingerprint(m.outer, opts...)
}
