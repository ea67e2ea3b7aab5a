package monoidmap

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/arloliu/monoidmap/internal/tree"
	"github.com/arloliu/monoidmap/monoid"
)

// errNotApplicable aborts a merge as soon as one key has no result.
var errNotApplicable = errors.New("monoidmap: not applicable")

// merge runs a merge whose callbacks cannot fail.
func merge[K cmp.Ordered, A, B, C any](t1 *tree.Node[K, A], t2 *tree.Node[K, B], m tree.Merger[K, A, B, C]) *tree.Node[K, C] {
	root, _ := tree.Merge2(t1, t2, m)
	return root
}

// mergeMaybe runs a merge in which any key may report errNotApplicable.
func mergeMaybe[K cmp.Ordered, A, B any, C monoid.Monoid[C]](t1 *tree.Node[K, A], t2 *tree.Node[K, B], m tree.Merger[K, A, B, C]) (Map[K, C], bool) {
	root, err := tree.Merge2(t1, t2, m)
	if err != nil {
		return Map[K, C]{}, false
	}

	return fromRoot(root), true
}

// pointwise returns the Both callback that applies f and strips identities.
func pointwise[K cmp.Ordered, A, B any, C monoid.Monoid[C]](f func(A, B) C) func(K, A, B) (C, bool, error) {
	return func(_ K, a A, b B) (C, bool, error) {
		c, ok := nonEmpty(f(a, b))
		return c, ok, nil
	}
}

// onlyLeft applies f to entries present only in the left map.
func onlyLeft[K cmp.Ordered, A any, C monoid.Monoid[C]](f func(A) C) func(*tree.Node[K, A]) (*tree.Node[K, C], error) {
	return tree.Each(func(_ K, a A) (C, bool, error) {
		c, ok := nonEmpty(f(a))
		return c, ok, nil
	})
}

// Append combines the maps key by key: Get(Append(m1, m2), k) ==
// m1.Get(k).Combine(m2.Get(k)). Keys present in one map only are shared with
// the input, not copied.
func Append[K cmp.Ordered, V monoid.Monoid[V]](m1, m2 Map[K, V]) Map[K, V] {
	return fromRoot(merge(m1.root, m2.root, tree.Merger[K, V, V, V]{
		Both:  pointwise[K](func(a, b V) V { return a.Combine(b) }),
		Left:  tree.Keep[K, V],
		Right: tree.Keep[K, V],
	}))
}

// Union is Append. It exists for symmetry with Intersection.
func Union[K cmp.Ordered, V monoid.Monoid[V]](m1, m2 Map[K, V]) Map[K, V] {
	return Append(m1, m2)
}

// UnionWith merges two maps with an arbitrary per-key function. For keys
// present in one map only, f sees the identity on the other side.
//
// f must map (identity, identity) to the identity; keys absent from both maps
// are never evaluated.
func UnionWith[K cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2], V3 monoid.Monoid[V3]](
	f func(V1, V2) V3, m1 Map[K, V1], m2 Map[K, V2],
) Map[K, V3] {
	e1, e2 := monoid.Identity[V1](), monoid.Identity[V2]()

	return fromRoot(merge(m1.root, m2.root, tree.Merger[K, V1, V2, V3]{
		Both:  pointwise[K](f),
		Left:  onlyLeft[K](func(a V1) V3 { return f(a, e2) }),
		Right: onlyLeft[K](func(b V2) V3 { return f(e1, b) }),
	}))
}

// UnionWithA is UnionWith with a fallible f. f runs once per key in the union
// of both maps, in ascending key order; the first error aborts the merge and
// is returned wrapped with its key.
func UnionWithA[K cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2], V3 monoid.Monoid[V3]](
	f func(V1, V2) (V3, error), m1 Map[K, V1], m2 Map[K, V2],
) (Map[K, V3], error) {
	e1, e2 := monoid.Identity[V1](), monoid.Identity[V2]()
	apply := func(k K, a V1, b V2) (V3, bool, error) {
		c, err := f(a, b)
		if err != nil {
			return c, false, fmt.Errorf("monoidmap: union at key %v: %w", k, err)
		}
		c, ok := nonEmpty(c)

		return c, ok, nil
	}

	root, err := tree.Merge2(m1.root, m2.root, tree.Merger[K, V1, V2, V3]{
		Both:  apply,
		Left:  tree.Each(func(k K, a V1) (V3, bool, error) { return apply(k, a, e2) }),
		Right: tree.Each(func(k K, b V2) (V3, bool, error) { return apply(k, e1, b) }),
	})
	if err != nil {
		return Map[K, V3]{}, err
	}

	return fromRoot(root), nil
}

// Join takes the per-key least common multiple. For Nat this is the maximum,
// for Set the union.
func Join[K cmp.Ordered, V monoid.LCM[V]](m1, m2 Map[K, V]) Map[K, V] {
	return fromRoot(merge(m1.root, m2.root, tree.Merger[K, V, V, V]{
		Both:  pointwise[K](func(a, b V) V { return a.LCM(b) }),
		Left:  tree.Keep[K, V],
		Right: tree.Keep[K, V],
	}))
}

// Intersection takes the per-key greatest common divisor. For Nat this is the
// minimum, for Set the intersection. Only keys present in both maps can
// survive.
func Intersection[K cmp.Ordered, V monoid.GCD[V]](m1, m2 Map[K, V]) Map[K, V] {
	return IntersectionWith(func(a, b V) V { return a.GCD(b) }, m1, m2)
}

// IntersectionWith merges the keys present in both maps with f.
func IntersectionWith[K cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2], V3 monoid.Monoid[V3]](
	f func(V1, V2) V3, m1 Map[K, V1], m2 Map[K, V2],
) Map[K, V3] {
	return fromRoot(merge(m1.root, m2.root, tree.Merger[K, V1, V2, V3]{
		Both:  pointwise[K](f),
		Left:  tree.Discard[K, V1, V3],
		Right: tree.Discard[K, V2, V3],
	}))
}

// IntersectionWithA is IntersectionWith with a fallible f. f runs once per
// shared key in ascending key order; the first error aborts the merge and is
// returned wrapped with its key.
func IntersectionWithA[K cmp.Ordered, V1 monoid.Monoid[V1], V2 monoid.Monoid[V2], V3 monoid.Monoid[V3]](
	f func(V1, V2) (V3, error), m1 Map[K, V1], m2 Map[K, V2],
) (Map[K, V3], error) {
	root, err := tree.Merge2(m1.root, m2.root, tree.Merger[K, V1, V2, V3]{
		Both: func(k K, a V1, b V2) (V3, bool, error) {
			c, err := f(a, b)
			if err != nil {
				return c, false, fmt.Errorf("monoidmap: intersection at key %v: %w", k, err)
			}
			c, ok := nonEmpty(c)

			return c, ok, nil
		},
		Left:  tree.Discard[K, V1, V3],
		Right: tree.Discard[K, V2, V3],
	})
	if err != nil {
		return Map[K, V3]{}, err
	}

	return fromRoot(root), nil
}

// Minus subtracts m2 from m1 key by key: m1.Get(k).Combine(m2.Get(k).Invert()).
func Minus[K cmp.Ordered, V monoid.Group[V]](m1, m2 Map[K, V]) Map[K, V] {
	return fromRoot(merge(m1.root, m2.root, tree.Merger[K, V, V, V]{
		Both:  pointwise[K](func(a, b V) V { return a.Combine(b.Invert()) }),
		Left:  tree.Keep[K, V],
		Right: onlyLeft[K](func(b V) V { return b.Invert() }),
	}))
}

// MinusMaybe subtracts m2 from m1 key by key with Reduce. It reports false,
// and returns the empty map, if any key of m2 cannot be taken from m1.
func MinusMaybe[K cmp.Ordered, V monoid.Reductive[V]](m1, m2 Map[K, V]) (Map[K, V], bool) {
	e := monoid.Identity[V]()
	reduce := func(_ K, a, b V) (V, bool, error) {
		c, ok := a.Reduce(b)
		if !ok {
			return c, false, errNotApplicable
		}
		c, ok = nonEmpty(c)

		return c, ok, nil
	}

	return mergeMaybe(m1.root, m2.root, tree.Merger[K, V, V, V]{
		Both:  reduce,
		Left:  tree.Keep[K, V],
		Right: tree.Each(func(k K, b V) (V, bool, error) { return reduce(k, e, b) }),
	})
}

// Monus subtracts m2 from m1 key by key, clipping at the identity.
func Monus[K cmp.Ordered, V monoid.Monus[V]](m1, m2 Map[K, V]) Map[K, V] {
	return fromRoot(merge(m1.root, m2.root, tree.Merger[K, V, V, V]{
		Both:  pointwise[K](func(a, b V) V { return a.Monus(b) }),
		Left:  tree.Keep[K, V],
		Right: tree.Discard[K, V, V],
	}))
}

// Invert inverts every value.
func Invert[K cmp.Ordered, V monoid.Group[V]](m Map[K, V]) Map[K, V] {
	return MapValues(func(v V) V { return v.Invert() }, m)
}

// Power combines m with itself n times. A negative n inverts m first; n == 0
// yields the empty map.
func Power[K cmp.Ordered, V monoid.Group[V]](m Map[K, V], n int) Map[K, V] {
	if n < 0 {
		return Repeat(Invert(m), uint(-n))
	}

	return Repeat(m, uint(n))
}

// Repeat combines m with itself n times. Each value is raised by repeated
// squaring, so the cost per key is O(log n) combines.
func Repeat[K cmp.Ordered, V monoid.Monoid[V]](m Map[K, V], n uint) Map[K, V] {
	switch n {
	case 0:
		return Map[K, V]{}
	case 1:
		return m
	}

	return MapValues(func(v V) V { return pow(v, n) }, m)
}

func pow[V monoid.Monoid[V]](v V, n uint) V {
	acc := monoid.Identity[V]()
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Combine(v)
		}
		n >>= 1
		if n > 0 {
			v = v.Combine(v)
		}
	}

	return acc
}
