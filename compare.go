package monoidmap

import (
	"cmp"

	"github.com/arloliu/monoidmap/internal/tree"
	"github.com/arloliu/monoidmap/monoid"
)

// IsSubmapOf reports whether m1.Get(k).Leq(m2.Get(k)) holds for every key.
func IsSubmapOf[K cmp.Ordered, V monoid.PartialOrder[V]](m1, m2 Map[K, V]) bool {
	return IsSubmapOfBy(func(a, b V) bool { return a.Leq(b) }, m1, m2)
}

// IsSubmapOfBy reports whether leq(m1.Get(k), m2.Get(k)) holds for every key
// stored in m1. Keys m1 does not store are not consulted.
func IsSubmapOfBy[K cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2]](
	leq func(V1, V2) bool, m1 Map[K, V1], m2 Map[K, V2],
) bool {
	if m1.IsEmpty() {
		return true
	}

	e2 := monoid.Identity[V2]()
	result := true
	tree.Zip(m1.root, m2.root, func(_ K, a V1, okA bool, b V2, okB bool) bool {
		if !okA {
			return true
		}
		if !okB {
			b = e2
		}
		result = leq(a, b)

		return result
	})

	return result
}

// Disjoint reports whether the maps have no common divisor other than the
// identity at any key.
func Disjoint[K cmp.Ordered, V monoid.GCD[V]](m1, m2 Map[K, V]) bool {
	return DisjointBy(func(a, b V) V { return a.GCD(b) }, m1, m2)
}

// DisjointBy reports whether f returns the identity for every key stored in
// both maps.
func DisjointBy[K cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2], V3 monoid.Monoid[V3]](
	f func(V1, V2) V3, m1 Map[K, V1], m2 Map[K, V2],
) bool {
	result := true
	tree.Zip(m1.root, m2.root, func(_ K, a V1, okA bool, b V2, okB bool) bool {
		if okA && okB {
			result = f(a, b).IsEmpty()
		}

		return result
	})

	return result
}
