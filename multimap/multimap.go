// Package multimap implements a multi-map, a map from keys to sets of values,
// in two ways behind a common interface.
//
// Monoidal stores a monoidmap.Map of sets and gets every invariant for free:
// a key whose set becomes empty disappears because the empty set is the
// identity. Plain stores a Go map and has to prune empty sets by hand after
// every operation. Both variants behave identically.
package multimap

import (
	"cmp"

	"github.com/arloliu/monoidmap/monoid"
)

// MultiMap associates each key with a set of values. Keys not present map to
// the empty set.
type MultiMap[K, V cmp.Ordered] interface {
	// Get returns the values associated with k.
	Get(k K) monoid.Set[V]
	// Has reports whether v is associated with k.
	Has(k K, v V) bool
	// Set replaces the values associated with k.
	Set(k K, vs monoid.Set[V])
	// Add associates additional values with k.
	Add(k K, vs ...V)
	// Remove dissociates values from k.
	Remove(k K, vs ...V)
	// Union adds every association of o.
	Union(o MultiMap[K, V])
	// Intersection keeps only the associations also present in o.
	Intersection(o MultiMap[K, V])
	// IsSubmapOf reports whether every association is also present in o.
	IsSubmapOf(o MultiMap[K, V]) bool
	// Keys returns the keys with at least one value, in ascending order.
	Keys() []K
	// Len returns the number of keys with at least one value.
	Len() int
	// Size returns the total number of key-value associations.
	Size() int
	// ToList returns the non-empty associations in ascending key order.
	ToList() []Entry[K, V]
	// Equal reports whether both multi-maps hold the same associations.
	Equal(o MultiMap[K, V]) bool
}

// Entry is a key with its set of values.
type Entry[K, V cmp.Ordered] struct {
	Key    K
	Values monoid.Set[V]
}
