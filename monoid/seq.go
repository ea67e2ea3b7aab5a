package monoid

import (
	"fmt"
	"slices"
)

// Seq is a sequence under concatenation.
//
// A Seq handed to a map must not be modified afterwards; every method
// returns a freshly allocated or resliced value and never writes to its
// receiver or arguments.
type Seq[T comparable] []T

var (
	_ LeftGCD[Seq[int]]        = Seq[int](nil)
	_ RightGCD[Seq[int]]       = Seq[int](nil)
	_ OverlappingGCD[Seq[int]] = Seq[int](nil)
)

// SeqOf returns a sequence holding a copy of items.
func SeqOf[T comparable](items ...T) Seq[T] {
	if len(items) == 0 {
		return nil
	}

	return slices.Clone(Seq[T](items))
}

// Empty returns the empty sequence.
func (Seq[T]) Empty() Seq[T] { return nil }

// IsEmpty reports whether s has no items.
func (s Seq[T]) IsEmpty() bool { return len(s) == 0 }

// Equal reports whether s and o hold the same items in the same order.
func (s Seq[T]) Equal(o Seq[T]) bool { return slices.Equal(s, o) }

// Combine returns the concatenation of s and o.
func (s Seq[T]) Combine(o Seq[T]) Seq[T] {
	switch {
	case len(s) == 0:
		return o
	case len(o) == 0:
		return s
	}

	return slices.Concat(s, o)
}

// StripPrefix returns o without the leading s.
func (s Seq[T]) StripPrefix(o Seq[T]) (Seq[T], bool) {
	if len(s) > len(o) || !slices.Equal(s, o[:len(s)]) {
		return nil, false
	}

	return clip(o[len(s):]), true
}

// StripSuffix returns o without the trailing s.
func (s Seq[T]) StripSuffix(o Seq[T]) (Seq[T], bool) {
	if len(s) > len(o) || !slices.Equal(s, o[len(o)-len(s):]) {
		return nil, false
	}

	return clip(o[:len(o)-len(s)]), true
}

// CommonPrefix returns the longest common prefix of s and o.
func (s Seq[T]) CommonPrefix(o Seq[T]) Seq[T] {
	n := min(len(s), len(o))
	i := 0
	for i < n && s[i] == o[i] {
		i++
	}

	return clip(s[:i])
}

// CommonSuffix returns the longest common suffix of s and o.
func (s Seq[T]) CommonSuffix(o Seq[T]) Seq[T] {
	n := min(len(s), len(o))
	j := 0
	for j < n && s[len(s)-1-j] == o[len(o)-1-j] {
		j++
	}

	return clip(s[len(s)-j:])
}

// StripOverlap finds the longest suffix of s that is also a prefix of o.
func (s Seq[T]) StripOverlap(o Seq[T]) (Seq[T], Seq[T], Seq[T]) {
	for n := min(len(s), len(o)); n > 0; n-- {
		if slices.Equal(s[len(s)-n:], o[:n]) {
			return clip(s[:len(s)-n]), clip(o[:n]), clip(o[n:])
		}
	}

	return s, nil, o
}

// String formats s like a slice.
func (s Seq[T]) String() string {
	return fmt.Sprint([]T(s))
}

// clip normalizes empty sequences to nil and caps capacity so that appending
// to a returned subslice never writes into shared backing storage.
func clip[T comparable](s Seq[T]) Seq[T] {
	if len(s) == 0 {
		return nil
	}

	return slices.Clip(s)
}
