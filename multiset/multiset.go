// Package multiset implements a multiset (bag) as a monoidmap.Map from
// elements to their multiplicities.
//
// Each operation is a thin wrapper: sums of bags are Append, unions and
// intersections are the per-element maximum and minimum (Join and
// Intersection), and difference is the clipped subtraction Monus.
package multiset

import (
	"cmp"

	"github.com/arloliu/monoidmap"
	"github.com/arloliu/monoidmap/monoid"
)

// MultiSet is an immutable bag. The zero value is the empty bag.
type MultiSet[T cmp.Ordered] struct {
	counts monoidmap.Map[T, monoid.Nat]
}

// Of returns the bag of the given elements, counting repeats.
func Of[T cmp.Ordered](elems ...T) MultiSet[T] {
	var s MultiSet[T]
	for _, x := range elems {
		s = s.Insert(x)
	}

	return s
}

// Insert returns s with one more occurrence of x.
func (s MultiSet[T]) Insert(x T) MultiSet[T] {
	return s.InsertN(x, 1)
}

// InsertN returns s with n more occurrences of x.
func (s MultiSet[T]) InsertN(x T, n uint64) MultiSet[T] {
	return MultiSet[T]{counts: s.counts.Adjust(x, func(c monoid.Nat) monoid.Nat { return c + monoid.Nat(n) })}
}

// Delete returns s with one occurrence of x removed, if there is one.
func (s MultiSet[T]) Delete(x T) MultiSet[T] {
	return MultiSet[T]{counts: s.counts.Adjust(x, func(c monoid.Nat) monoid.Nat { return c.Monus(1) })}
}

// DeleteAll returns s without any occurrence of x.
func (s MultiSet[T]) DeleteAll(x T) MultiSet[T] {
	return MultiSet[T]{counts: s.counts.Nullify(x)}
}

// Count returns the number of occurrences of x.
func (s MultiSet[T]) Count(x T) uint64 {
	return uint64(s.counts.Get(x))
}

// Len returns the total number of elements, counting repeats.
func (s MultiSet[T]) Len() uint64 {
	return uint64(monoidmap.Concat(s.counts))
}

// Distinct returns the number of distinct elements.
func (s MultiSet[T]) Distinct() int {
	return s.counts.Len()
}

// IsEmpty reports whether s has no elements.
func (s MultiSet[T]) IsEmpty() bool {
	return s.counts.IsEmpty()
}

// Equal reports whether both bags hold the same elements the same number of
// times.
func (s MultiSet[T]) Equal(o MultiSet[T]) bool {
	return s.counts.Equal(o.counts)
}

// Counts returns the underlying map of multiplicities.
func (s MultiSet[T]) Counts() monoidmap.Map[T, monoid.Nat] {
	return s.counts
}

// ToList returns the elements in ascending order, each repeated by its
// multiplicity.
func (s MultiSet[T]) ToList() []T {
	out := make([]T, 0, s.Len())
	for x, n := range s.counts.All() {
		for range n {
			out = append(out, x)
		}
	}

	return out
}

// String formats s as its map of multiplicities.
func (s MultiSet[T]) String() string {
	return s.counts.String()
}

// Sum adds the multiplicities of a and b.
func Sum[T cmp.Ordered](a, b MultiSet[T]) MultiSet[T] {
	return MultiSet[T]{counts: monoidmap.Append(a.counts, b.counts)}
}

// Union keeps the larger multiplicity of each element.
func Union[T cmp.Ordered](a, b MultiSet[T]) MultiSet[T] {
	return MultiSet[T]{counts: monoidmap.Join(a.counts, b.counts)}
}

// Intersection keeps the smaller multiplicity of each element.
func Intersection[T cmp.Ordered](a, b MultiSet[T]) MultiSet[T] {
	return MultiSet[T]{counts: monoidmap.Intersection(a.counts, b.counts)}
}

// Difference subtracts the multiplicities of b from a, stopping at zero.
func Difference[T cmp.Ordered](a, b MultiSet[T]) MultiSet[T] {
	return MultiSet[T]{counts: monoidmap.Monus(a.counts, b.counts)}
}

// IsSubsetOf reports whether every element occurs in b at least as often as
// in a.
func IsSubsetOf[T cmp.Ordered](a, b MultiSet[T]) bool {
	return monoidmap.IsSubmapOf(a.counts, b.counts)
}

// Disjoint reports whether a and b have no element in common.
func Disjoint[T cmp.Ordered](a, b MultiSet[T]) bool {
	return monoidmap.Disjoint(a.counts, b.counts)
}
