// Package tree implements a persistent weight-balanced binary search tree.
//
// Nodes are never modified once they are reachable from a published root.
// Every update copies the O(log n) nodes on the search path and shares all
// other subtrees with the original, so old roots stay valid and may be read
// concurrently without synchronization.
//
// The balancing scheme is the one by Adams (delta = 3, ratio = 2): for every
// node, neither subtree holds more than delta times the elements of the other
// (small trees with at most one element in total are exempt).
package tree

import "cmp"

const (
	delta = 3
	ratio = 2
)

// Node is a tree node. A nil *Node is the empty tree.
type Node[K cmp.Ordered, V any] struct {
	key   K
	value V
	size  int
	left  *Node[K, V]
	right *Node[K, V]
}

// Size returns the number of entries in the tree rooted at n.
func Size[K cmp.Ordered, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.size
}

// Singleton returns a one-entry tree.
func Singleton[K cmp.Ordered, V any](k K, v V) *Node[K, V] {
	return &Node[K, V]{key: k, value: v, size: 1}
}

func newNode[K cmp.Ordered, V any](k K, v V, l, r *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{key: k, value: v, size: Size(l) + Size(r) + 1, left: l, right: r}
}

// balance rebuilds a node whose subtrees may be out of balance by a small
// amount, as happens after a single insertion or deletion on one side.
func balance[K cmp.Ordered, V any](k K, v V, l, r *Node[K, V]) *Node[K, V] {
	sl, sr := Size(l), Size(r)
	switch {
	case sl+sr <= 1:
		return newNode(k, v, l, r)
	case sr > delta*sl:
		return rotateLeft(k, v, l, r)
	case sl > delta*sr:
		return rotateRight(k, v, l, r)
	default:
		return newNode(k, v, l, r)
	}
}

func rotateLeft[K cmp.Ordered, V any](k K, v V, l, r *Node[K, V]) *Node[K, V] {
	if Size(r.left) < ratio*Size(r.right) {
		return newNode(r.key, r.value, newNode(k, v, l, r.left), r.right)
	}

	rl := r.left

	return newNode(rl.key, rl.value,
		newNode(k, v, l, rl.left),
		newNode(r.key, r.value, rl.right, r.right))
}

func rotateRight[K cmp.Ordered, V any](k K, v V, l, r *Node[K, V]) *Node[K, V] {
	if Size(l.right) < ratio*Size(l.left) {
		return newNode(l.key, l.value, l.left, newNode(k, v, l.right, r))
	}

	lr := l.right

	return newNode(lr.key, lr.value,
		newNode(l.key, l.value, l.left, lr.left),
		newNode(k, v, lr.right, r))
}

// link joins two trees and a middle entry. All keys of l must be smaller
// than k and all keys of r greater.
func link[K cmp.Ordered, V any](k K, v V, l, r *Node[K, V]) *Node[K, V] {
	switch {
	case l == nil:
		return insertMin(k, v, r)
	case r == nil:
		return insertMax(k, v, l)
	case delta*l.size < r.size:
		return balance(r.key, r.value, link(k, v, l, r.left), r.right)
	case delta*r.size < l.size:
		return balance(l.key, l.value, l.left, link(k, v, l.right, r))
	default:
		return newNode(k, v, l, r)
	}
}

func insertMin[K cmp.Ordered, V any](k K, v V, t *Node[K, V]) *Node[K, V] {
	if t == nil {
		return Singleton(k, v)
	}

	return balance(t.key, t.value, insertMin(k, v, t.left), t.right)
}

func insertMax[K cmp.Ordered, V any](k K, v V, t *Node[K, V]) *Node[K, V] {
	if t == nil {
		return Singleton(k, v)
	}

	return balance(t.key, t.value, t.left, insertMax(k, v, t.right))
}

// concat joins two trees where every key of l is smaller than every key of r.
func concat[K cmp.Ordered, V any](l, r *Node[K, V]) *Node[K, V] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case delta*l.size < r.size:
		return balance(r.key, r.value, concat(l, r.left), r.right)
	case delta*r.size < l.size:
		return balance(l.key, l.value, l.left, concat(l.right, r))
	default:
		return glue(l, r)
	}
}

// glue joins two non-empty trees of similar weight.
func glue[K cmp.Ordered, V any](l, r *Node[K, V]) *Node[K, V] {
	if l.size > r.size {
		k, v, rest := deleteMax(l)
		return balance(k, v, rest, r)
	}

	k, v, rest := deleteMin(r)

	return balance(k, v, l, rest)
}

func deleteMin[K cmp.Ordered, V any](t *Node[K, V]) (K, V, *Node[K, V]) {
	if t.left == nil {
		return t.key, t.value, t.right
	}

	k, v, l := deleteMin(t.left)

	return k, v, balance(t.key, t.value, l, t.right)
}

func deleteMax[K cmp.Ordered, V any](t *Node[K, V]) (K, V, *Node[K, V]) {
	if t.right == nil {
		return t.key, t.value, t.left
	}

	k, v, r := deleteMax(t.right)

	return k, v, balance(t.key, t.value, t.left, r)
}
