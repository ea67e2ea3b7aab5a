package monoidmap

import (
	"cmp"

	"github.com/arloliu/monoidmap/internal/tree"
	"github.com/arloliu/monoidmap/monoid"
)

// Take returns the first n entries in ascending key order.
func (m Map[K, V]) Take(n int) Map[K, V] {
	return fromRoot(tree.Take(m.root, n))
}

// Drop returns the map without its first n entries in ascending key order.
func (m Map[K, V]) Drop(n int) Map[K, V] {
	return fromRoot(tree.Drop(m.root, n))
}

// SplitAt returns (m.Take(n), m.Drop(n)).
func (m Map[K, V]) SplitAt(n int) (Map[K, V], Map[K, V]) {
	return m.Take(n), m.Drop(n)
}

// Filter keeps the entries whose value satisfies p. Identity values are never
// offered to p.
func (m Map[K, V]) Filter(p func(V) bool) Map[K, V] {
	return m.FilterWithKey(func(_ K, v V) bool { return p(v) })
}

// FilterKeys keeps the entries whose key satisfies p.
func (m Map[K, V]) FilterKeys(p func(K) bool) Map[K, V] {
	return m.FilterWithKey(func(k K, _ V) bool { return p(k) })
}

// FilterWithKey keeps the entries satisfying p.
func (m Map[K, V]) FilterWithKey(p func(K, V) bool) Map[K, V] {
	return fromRoot(tree.Filter(m.root, p))
}

// Partition splits m into the entries whose value satisfies p and the rest.
func (m Map[K, V]) Partition(p func(V) bool) (Map[K, V], Map[K, V]) {
	return m.PartitionWithKey(func(_ K, v V) bool { return p(v) })
}

// PartitionKeys splits m into the entries whose key satisfies p and the rest.
func (m Map[K, V]) PartitionKeys(p func(K) bool) (Map[K, V], Map[K, V]) {
	return m.PartitionWithKey(func(k K, _ V) bool { return p(k) })
}

// PartitionWithKey splits m into the entries satisfying p and the rest.
func (m Map[K, V]) PartitionWithKey(p func(K, V) bool) (Map[K, V], Map[K, V]) {
	yes, no := tree.Partition(m.root, p)
	return fromRoot(yes), fromRoot(no)
}

// MapValues applies f to every non-identity value. Results equal to the
// identity of V2 are dropped.
//
// f is expected to map the identity of V1 to the identity of V2; keys that
// are not stored are never passed to it.
func MapValues[K cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2]](f func(V1) V2, m Map[K, V1]) Map[K, V2] {
	return MapWithKey(func(_ K, v V1) V2 { return f(v) }, m)
}

// MapWithKey is MapValues with access to the key.
func MapWithKey[K cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2]](f func(K, V1) V2, m Map[K, V1]) Map[K, V2] {
	return fromRoot(tree.MapMaybe(m.root, func(k K, v V1) (V2, bool) {
		return nonEmpty(f(k, v))
	}))
}

// MapKeys renames every key with f. Values whose keys collide are combined
// with Combine in ascending order of their original keys.
func MapKeys[K1, K2 cmp.Ordered, V monoid.Monoid[V]](f func(K1) K2, m Map[K1, V]) Map[K2, V] {
	return MapKeysWith(func(a, b V) V { return a.Combine(b) }, f, m)
}

// MapKeysWith renames every key with f. The renamed entries are folded with
// FromListWith(c, ...) in ascending order of their original keys, so every
// value goes through c, starting from the identity, and a key whose
// accumulated value becomes the identity starts over from the identity.
func MapKeysWith[K1, K2 cmp.Ordered, V monoid.Monoid[V]](c func(V, V) V, f func(K1) K2, m Map[K1, V]) Map[K2, V] {
	renamed := make([]Entry[K2, V], 0, m.Len())
	for k, v := range m.All() {
		renamed = append(renamed, Entry[K2, V]{Key: f(k), Value: v})
	}

	return FromListWith(c, renamed)
}

// Fold reduces the non-identity entries in ascending key order.
func Fold[K cmp.Ordered, V monoid.Monoid[V], A any](m Map[K, V], acc A, f func(A, K, V) A) A {
	for k, v := range m.All() {
		acc = f(acc, k, v)
	}

	return acc
}

// FoldRight reduces the non-identity entries in descending key order.
func FoldRight[K cmp.Ordered, V monoid.Monoid[V], A any](m Map[K, V], acc A, f func(K, V, A) A) A {
	for k, v := range m.Backward() {
		acc = f(k, v, acc)
	}

	return acc
}

// Concat combines all values of m in ascending key order.
func Concat[K cmp.Ordered, V monoid.Monoid[V]](m Map[K, V]) V {
	return Fold(m, monoid.Identity[V](), func(acc V, _ K, v V) V { return acc.Combine(v) })
}

func nonEmpty[V monoid.Null[V]](v V) (V, bool) {
	return v, !v.IsEmpty()
}
