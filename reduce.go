package monoidmap

import (
	"cmp"

	"github.com/arloliu/monoidmap/internal/tree"
	"github.com/arloliu/monoidmap/monoid"
)

// zipAll walks every key stored in either map and hands f the values from
// both sides, substituting the identity for a missing value.
func zipAll[K cmp.Ordered, V monoid.Monoid[V]](m1, m2 Map[K, V], f func(k K, a, b V) bool) {
	e := monoid.Identity[V]()
	tree.Zip(m1.root, m2.root, func(k K, a V, okA bool, b V, okB bool) bool {
		if !okA {
			a = e
		}
		if !okB {
			b = e
		}

		return f(k, a, b)
	})
}

// stripAll applies a per-key strip over the union of keys. It reports false,
// and returns the empty map, if any key has no result.
func stripAll[K cmp.Ordered, V monoid.Monoid[V]](m1, m2 Map[K, V], strip func(a, b V) (V, bool)) (Map[K, V], bool) {
	var b builder[K, V]
	ok := true
	zipAll(m1, m2, func(k K, x, y V) bool {
		var w V
		w, ok = strip(x, y)
		if ok {
			b.add(k, w)
		}

		return ok
	})
	if !ok {
		return Map[K, V]{}, false
	}

	return b.build(), true
}

// IsPrefixOf reports whether m1 is a prefix of m2 at every key: for each key
// there is some w with m1.Get(k).Combine(w) == m2.Get(k).
func IsPrefixOf[K cmp.Ordered, V monoid.LeftReductive[V]](m1, m2 Map[K, V]) bool {
	_, ok := StripPrefix(m1, m2)
	return ok
}

// StripPrefix removes m1 from the front of m2 at every key. It reports false
// if m1 is not a prefix of m2.
//
// Example:
//
//	m1 := monoidmap.Singleton("x", monoid.Text("ab"))
//	m2 := monoidmap.Singleton("x", monoid.Text("abcd"))
//	r, ok := monoidmap.StripPrefix(m1, m2) // {x: cd}, true
func StripPrefix[K cmp.Ordered, V monoid.LeftReductive[V]](m1, m2 Map[K, V]) (Map[K, V], bool) {
	return stripAll(m1, m2, func(a, b V) (V, bool) { return a.StripPrefix(b) })
}

// IsSuffixOf reports whether m1 is a suffix of m2 at every key.
func IsSuffixOf[K cmp.Ordered, V monoid.RightReductive[V]](m1, m2 Map[K, V]) bool {
	_, ok := StripSuffix(m1, m2)
	return ok
}

// StripSuffix removes m1 from the end of m2 at every key. It reports false if
// m1 is not a suffix of m2.
func StripSuffix[K cmp.Ordered, V monoid.RightReductive[V]](m1, m2 Map[K, V]) (Map[K, V], bool) {
	return stripAll(m1, m2, func(a, b V) (V, bool) { return a.StripSuffix(b) })
}

// CommonPrefix returns the greatest common prefix of the maps at every key.
func CommonPrefix[K cmp.Ordered, V monoid.LeftGCD[V]](m1, m2 Map[K, V]) Map[K, V] {
	return IntersectionWith(func(a, b V) V { return a.CommonPrefix(b) }, m1, m2)
}

// StripCommonPrefix returns the common prefix p of the maps together with
// what remains of each: p.Combine(r1) == m1 and p.Combine(r2) == m2.
func StripCommonPrefix[K cmp.Ordered, V monoid.LeftGCD[V]](m1, m2 Map[K, V]) (p, r1, r2 Map[K, V]) {
	var bp, b1, b2 builder[K, V]
	zipAll(m1, m2, func(k K, a, b V) bool {
		c := a.CommonPrefix(b)
		w1, _ := c.StripPrefix(a)
		w2, _ := c.StripPrefix(b)
		bp.add(k, c)
		b1.add(k, w1)
		b2.add(k, w2)

		return true
	})

	return bp.build(), b1.build(), b2.build()
}

// CommonSuffix returns the greatest common suffix of the maps at every key.
func CommonSuffix[K cmp.Ordered, V monoid.RightGCD[V]](m1, m2 Map[K, V]) Map[K, V] {
	return IntersectionWith(func(a, b V) V { return a.CommonSuffix(b) }, m1, m2)
}

// StripCommonSuffix returns the common suffix s of the maps together with
// what remains of each: r1.Combine(s) == m1 and r2.Combine(s) == m2.
func StripCommonSuffix[K cmp.Ordered, V monoid.RightGCD[V]](m1, m2 Map[K, V]) (r1, r2, s Map[K, V]) {
	var b1, b2, bs builder[K, V]
	zipAll(m1, m2, func(k K, a, b V) bool {
		c := a.CommonSuffix(b)
		w1, _ := c.StripSuffix(a)
		w2, _ := c.StripSuffix(b)
		b1.add(k, w1)
		b2.add(k, w2)
		bs.add(k, c)

		return true
	})

	return b1.build(), b2.build(), bs.build()
}

// Overlap returns, at every key, the largest suffix of m1 that is also a
// prefix of m2.
func Overlap[K cmp.Ordered, V monoid.OverlappingGCD[V]](m1, m2 Map[K, V]) Map[K, V] {
	return IntersectionWith(func(a, b V) V {
		_, o, _ := a.StripOverlap(b)
		return o
	}, m1, m2)
}

// StripPrefixOverlap returns m2 with the overlap removed from its front.
func StripPrefixOverlap[K cmp.Ordered, V monoid.OverlappingGCD[V]](m1, m2 Map[K, V]) Map[K, V] {
	return fromRoot(merge(m1.root, m2.root, tree.Merger[K, V, V, V]{
		Both: pointwise[K](func(a, b V) V {
			_, _, s := a.StripOverlap(b)
			return s
		}),
		Left:  tree.Discard[K, V, V],
		Right: tree.Keep[K, V],
	}))
}

// StripSuffixOverlap returns m1 with the overlap removed from its end.
func StripSuffixOverlap[K cmp.Ordered, V monoid.OverlappingGCD[V]](m1, m2 Map[K, V]) Map[K, V] {
	return fromRoot(merge(m1.root, m2.root, tree.Merger[K, V, V, V]{
		Both: pointwise[K](func(a, b V) V {
			p, _, _ := a.StripOverlap(b)
			return p
		}),
		Left:  tree.Keep[K, V],
		Right: tree.Discard[K, V, V],
	}))
}

// StripOverlap splits the maps around their overlap at every key:
// p.Combine(o) == m1 and o.Combine(s) == m2.
func StripOverlap[K cmp.Ordered, V monoid.OverlappingGCD[V]](m1, m2 Map[K, V]) (p, o, s Map[K, V]) {
	var bp, bo, bs builder[K, V]
	zipAll(m1, m2, func(k K, a, b V) bool {
		x, y, z := a.StripOverlap(b)
		bp.add(k, x)
		bo.add(k, y)
		bs.add(k, z)

		return true
	})

	return bp.build(), bo.build(), bs.build()
}
