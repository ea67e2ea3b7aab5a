package tree

import (
	"cmp"
	"iter"
)

// Merger describes how Merge2 combines two trees.
//
// Both is called for keys present in both trees; the entry is kept when it
// reports true. Left and Right transform whole subtrees whose keys occur in
// only one of the trees, which lets callers share or drop them wholesale.
type Merger[K cmp.Ordered, A, B, C any] struct {
	Both  func(k K, a A, b B) (C, bool, error)
	Left  func(t *Node[K, A]) (*Node[K, C], error)
	Right func(t *Node[K, B]) (*Node[K, C], error)
}

// Merge2 combines t1 and t2 key by key using m.
//
// Callbacks run in ascending key order and the merge stops at the first
// error. Cost is O(m log(n/m + 1)) splits for trees of sizes m <= n, plus the
// cost of the callbacks.
func Merge2[K cmp.Ordered, A, B, C any](t1 *Node[K, A], t2 *Node[K, B], m Merger[K, A, B, C]) (*Node[K, C], error) {
	if t1 == nil {
		if t2 == nil {
			return nil, nil
		}

		return m.Right(t2)
	}
	if t2 == nil {
		return m.Left(t1)
	}

	l2, b, found, r2 := Split(t2, t1.key)

	l, err := Merge2(t1.left, l2, m)
	if err != nil {
		return nil, err
	}

	var (
		midKey K
		midVal C
		keep   bool
	)
	if found {
		midKey = t1.key
		midVal, keep, err = m.Both(t1.key, t1.value, b)
	} else {
		var only *Node[K, C]
		only, err = m.Left(Singleton(t1.key, t1.value))
		if only != nil {
			midKey, midVal, keep = only.key, only.value, true
		}
	}
	if err != nil {
		return nil, err
	}

	r, err := Merge2(t1.right, r2, m)
	if err != nil {
		return nil, err
	}

	if !keep {
		return concat(l, r), nil
	}

	return link(midKey, midVal, l, r), nil
}

// Keep returns t unchanged. It is the subtree function for entries that
// pass through a merge as they are.
func Keep[K cmp.Ordered, V any](t *Node[K, V]) (*Node[K, V], error) {
	return t, nil
}

// Discard drops a subtree from a merge.
func Discard[K cmp.Ordered, A, C any](*Node[K, A]) (*Node[K, C], error) {
	return nil, nil
}

// Each lifts a per-entry function into a subtree function.
func Each[K cmp.Ordered, A, C any](f func(K, A) (C, bool, error)) func(*Node[K, A]) (*Node[K, C], error) {
	return func(t *Node[K, A]) (*Node[K, C], error) {
		return MapMaybeE(t, f)
	}
}

// Zip walks the union of the keys of t1 and t2 in ascending order. For each
// key it reports the value from each side and whether that side holds the
// key. The walk stops as soon as yield returns false.
func Zip[K cmp.Ordered, A, B any](t1 *Node[K, A], t2 *Node[K, B], yield func(k K, a A, okA bool, b B, okB bool) bool) {
	next1, stop1 := iter.Pull2(All(t1))
	defer stop1()
	next2, stop2 := iter.Pull2(All(t2))
	defer stop2()

	var (
		zeroA A
		zeroB B
	)

	k1, a, ok1 := next1()
	k2, b, ok2 := next2()
	for ok1 || ok2 {
		c := 0
		if ok1 && ok2 {
			c = cmp.Compare(k1, k2)
		}

		switch {
		case !ok2 || (ok1 && c < 0):
			if !yield(k1, a, true, zeroB, false) {
				return
			}
			k1, a, ok1 = next1()
		case !ok1 || c > 0:
			if !yield(k2, zeroA, false, b, true) {
				return
			}
			k2, b, ok2 = next2()
		default:
			if !yield(k1, a, true, b, true) {
				return
			}
			k1, a, ok1 = next1()
			k2, b, ok2 = next2()
		}
	}
}
