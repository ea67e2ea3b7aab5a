package tree

import "cmp"

// Lookup returns the value stored under k.
func Lookup[K cmp.Ordered, V any](t *Node[K, V], k K) (V, bool) {
	for t != nil {
		switch c := cmp.Compare(k, t.key); {
		case c < 0:
			t = t.left
		case c > 0:
			t = t.right
		default:
			return t.value, true
		}
	}

	var zero V

	return zero, false
}

// Insert returns a tree with k bound to v, replacing any previous binding.
func Insert[K cmp.Ordered, V any](t *Node[K, V], k K, v V) *Node[K, V] {
	if t == nil {
		return Singleton(k, v)
	}

	switch c := cmp.Compare(k, t.key); {
	case c < 0:
		return balance(t.key, t.value, Insert(t.left, k, v), t.right)
	case c > 0:
		return balance(t.key, t.value, t.left, Insert(t.right, k, v))
	default:
		return newNode(k, v, t.left, t.right)
	}
}

// Delete returns a tree without k. The original tree is returned unchanged
// when k is absent.
func Delete[K cmp.Ordered, V any](t *Node[K, V], k K) *Node[K, V] {
	if t == nil {
		return nil
	}

	switch c := cmp.Compare(k, t.key); {
	case c < 0:
		l := Delete(t.left, k)
		if l == t.left {
			return t
		}

		return balance(t.key, t.value, l, t.right)
	case c > 0:
		r := Delete(t.right, k)
		if r == t.right {
			return t
		}

		return balance(t.key, t.value, t.left, r)
	default:
		return concat(t.left, t.right)
	}
}

// Split partitions t around k. It returns the entries below k, the value at
// k (if any) and the entries above k.
func Split[K cmp.Ordered, V any](t *Node[K, V], k K) (*Node[K, V], V, bool, *Node[K, V]) {
	if t == nil {
		var zero V
		return nil, zero, false, nil
	}

	switch c := cmp.Compare(k, t.key); {
	case c < 0:
		l, v, ok, r := Split(t.left, k)
		return l, v, ok, link(t.key, t.value, r, t.right)
	case c > 0:
		l, v, ok, r := Split(t.right, k)
		return link(t.key, t.value, t.left, l), v, ok, r
	default:
		return t.left, t.value, true, t.right
	}
}

// Min returns the entry with the smallest key.
func Min[K cmp.Ordered, V any](t *Node[K, V]) (K, V, bool) {
	if t == nil {
		var (
			k K
			v V
		)

		return k, v, false
	}
	for t.left != nil {
		t = t.left
	}

	return t.key, t.value, true
}

// Max returns the entry with the largest key.
func Max[K cmp.Ordered, V any](t *Node[K, V]) (K, V, bool) {
	if t == nil {
		var (
			k K
			v V
		)

		return k, v, false
	}
	for t.right != nil {
		t = t.right
	}

	return t.key, t.value, true
}

// At returns the entry at position i in ascending key order.
func At[K cmp.Ordered, V any](t *Node[K, V], i int) (K, V, bool) {
	if i < 0 || i >= Size(t) {
		var (
			k K
			v V
		)

		return k, v, false
	}

	for {
		sl := Size(t.left)
		switch {
		case i < sl:
			t = t.left
		case i > sl:
			i -= sl + 1
			t = t.right
		default:
			return t.key, t.value, true
		}
	}
}

// Take returns the first n entries in ascending key order.
func Take[K cmp.Ordered, V any](t *Node[K, V], n int) *Node[K, V] {
	switch {
	case n <= 0:
		return nil
	case n >= Size(t):
		return t
	}

	sl := Size(t.left)
	if n <= sl {
		return Take(t.left, n)
	}

	return link(t.key, t.value, t.left, Take(t.right, n-sl-1))
}

// Drop returns the tree without its first n entries.
func Drop[K cmp.Ordered, V any](t *Node[K, V], n int) *Node[K, V] {
	switch {
	case n <= 0:
		return t
	case n >= Size(t):
		return nil
	}

	sl := Size(t.left)
	if n <= sl {
		return link(t.key, t.value, Drop(t.left, n), t.right)
	}

	return Drop(t.right, n-sl-1)
}

// Filter keeps the entries satisfying p. The predicate is called in
// ascending key order. Unchanged subtrees are shared with t.
func Filter[K cmp.Ordered, V any](t *Node[K, V], p func(K, V) bool) *Node[K, V] {
	if t == nil {
		return nil
	}

	l := Filter(t.left, p)
	keep := p(t.key, t.value)
	r := Filter(t.right, p)

	if !keep {
		return concat(l, r)
	}
	if l == t.left && r == t.right {
		return t
	}

	return link(t.key, t.value, l, r)
}

// Partition splits t into the entries satisfying p and the rest.
func Partition[K cmp.Ordered, V any](t *Node[K, V], p func(K, V) bool) (*Node[K, V], *Node[K, V]) {
	if t == nil {
		return nil, nil
	}

	l1, l2 := Partition(t.left, p)
	keep := p(t.key, t.value)
	r1, r2 := Partition(t.right, p)

	if keep {
		return link(t.key, t.value, l1, r1), concat(l2, r2)
	}

	return concat(l1, r1), link(t.key, t.value, l2, r2)
}

// MapMaybe applies f to every entry in ascending key order and keeps the
// results for which f reports true.
func MapMaybe[K cmp.Ordered, A, B any](t *Node[K, A], f func(K, A) (B, bool)) *Node[K, B] {
	if t == nil {
		return nil
	}

	l := MapMaybe(t.left, f)
	b, keep := f(t.key, t.value)
	r := MapMaybe(t.right, f)

	if !keep {
		return concat(l, r)
	}

	return link(t.key, b, l, r)
}

// MapMaybeE is MapMaybe with a fallible f. The walk stops at the first error.
func MapMaybeE[K cmp.Ordered, A, B any](t *Node[K, A], f func(K, A) (B, bool, error)) (*Node[K, B], error) {
	if t == nil {
		return nil, nil
	}

	l, err := MapMaybeE(t.left, f)
	if err != nil {
		return nil, err
	}
	b, keep, err := f(t.key, t.value)
	if err != nil {
		return nil, err
	}
	r, err := MapMaybeE(t.right, f)
	if err != nil {
		return nil, err
	}

	if !keep {
		return concat(l, r), nil
	}

	return link(t.key, b, l, r), nil
}

// FromSorted builds a perfectly balanced tree from n entries whose keys are
// strictly ascending. at returns the i-th entry.
func FromSorted[K cmp.Ordered, V any](n int, at func(i int) (K, V)) *Node[K, V] {
	var build func(lo, hi int) *Node[K, V]
	build = func(lo, hi int) *Node[K, V] {
		if lo >= hi {
			return nil
		}

		mid := int(uint(lo+hi) >> 1)
		k, v := at(mid)

		return newNode(k, v, build(lo, mid), build(mid+1, hi))
	}

	return build(0, n)
}
