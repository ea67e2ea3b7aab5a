package monoidmap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/monoidmap/internal/tree"
	"github.com/arloliu/monoidmap/monoid"
)

// Map is a total function from K to V in which every key not explicitly
// stored maps to the identity element of V.
//
// Only entries whose value is not the identity are kept, and every operation
// maintains that invariant. The zero value is the empty map, ready to use.
//
// A Map is immutable: methods that look like updates return a new Map and
// leave the receiver untouched. Unchanged parts of the underlying tree are
// shared between the two, so updates cost O(log n). Maps are safe for
// concurrent use by multiple goroutines.
type Map[K cmp.Ordered, V monoid.Monoid[V]] struct {
	root *tree.Node[K, V]
}

// Entry is a key-value pair.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

var _ monoid.Monoid[Map[string, monoid.Nat]] = Map[string, monoid.Nat]{}

func fromRoot[K cmp.Ordered, V monoid.Monoid[V]](root *tree.Node[K, V]) Map[K, V] {
	return Map[K, V]{root: root}
}

// Singleton returns a map with a single binding. It returns the empty map
// when v is the identity.
func Singleton[K cmp.Ordered, V monoid.Monoid[V]](k K, v V) Map[K, V] {
	if v.IsEmpty() {
		return Map[K, V]{}
	}

	return fromRoot(tree.Singleton(k, v))
}

// Get returns the value associated with k, or the identity if k is not
// stored.
func (m Map[K, V]) Get(k K) V {
	if v, ok := tree.Lookup(m.root, k); ok {
		return v
	}

	return monoid.Identity[V]()
}

// Set returns a map in which k is associated with v.
//
// Setting the identity removes the key.
func (m Map[K, V]) Set(k K, v V) Map[K, V] {
	if v.IsEmpty() {
		return fromRoot(tree.Delete(m.root, k))
	}

	return fromRoot(tree.Insert(m.root, k, v))
}

// Adjust returns a map in which the value at k is replaced by f applied to
// it. f receives the identity when k is not stored.
func (m Map[K, V]) Adjust(k K, f func(V) V) Map[K, V] {
	return m.Set(k, f(m.Get(k)))
}

// Nullify returns a map in which k is associated with the identity.
func (m Map[K, V]) Nullify(k K) Map[K, V] {
	return fromRoot(tree.Delete(m.root, k))
}

// Len returns the number of keys with a non-identity value.
func (m Map[K, V]) Len() int {
	return tree.Size(m.root)
}

// NullKey reports whether k maps to the identity.
func (m Map[K, V]) NullKey(k K) bool {
	return !m.NonNullKey(k)
}

// NonNullKey reports whether k maps to a non-identity value.
func (m Map[K, V]) NonNullKey(k K) bool {
	_, ok := tree.Lookup(m.root, k)
	return ok
}

// Keys returns the keys with non-identity values in ascending order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range tree.All(m.root) {
		keys = append(keys, k)
	}

	return keys
}

// All returns an iterator over the non-identity entries in ascending key
// order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return tree.All(m.root)
}

// Backward returns an iterator over the non-identity entries in descending
// key order.
func (m Map[K, V]) Backward() iter.Seq2[K, V] {
	return tree.Backward(m.root)
}

// LookupMin returns the entry with the smallest key.
func (m Map[K, V]) LookupMin() (K, V, bool) {
	return tree.Min(m.root)
}

// LookupMax returns the entry with the largest key.
func (m Map[K, V]) LookupMax() (K, V, bool) {
	return tree.Max(m.root)
}

// Empty returns the empty map. Together with IsEmpty, Equal and Combine it
// makes Map itself a monoid, so maps can be nested as values of other maps.
func (Map[K, V]) Empty() Map[K, V] {
	return Map[K, V]{}
}

// IsEmpty reports whether every key maps to the identity.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Equal reports whether both maps associate every key with equal values.
func (m Map[K, V]) Equal(o Map[K, V]) bool {
	if m.root == o.root {
		return true
	}
	if m.Len() != o.Len() {
		return false
	}

	equal := true
	tree.Zip(m.root, o.root, func(_ K, a V, okA bool, b V, okB bool) bool {
		equal = okA && okB && a.Equal(b)
		return equal
	})

	return equal
}

// Combine is Append as a method.
func (m Map[K, V]) Combine(o Map[K, V]) Map[K, V] {
	return Append(m, o)
}

// String formats the map as {k1: v1, k2: v2}.
func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteByte('}')

	return sb.String()
}
