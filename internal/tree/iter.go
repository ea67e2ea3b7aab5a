package tree

import (
	"cmp"
	"iter"
)

// All returns an iterator over the entries of t in ascending key order.
func All[K cmp.Ordered, V any](t *Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ascend(yield)
	}
}

// Backward returns an iterator over the entries of t in descending key order.
func Backward[K cmp.Ordered, V any](t *Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.descend(yield)
	}
}

func (n *Node[K, V]) ascend(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return n.left.ascend(yield) && yield(n.key, n.value) && n.right.ascend(yield)
}

func (n *Node[K, V]) descend(yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return n.right.descend(yield) && yield(n.key, n.value) && n.left.descend(yield)
}
