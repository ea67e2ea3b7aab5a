package monoid

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arloliu/monoidmap/internal/hash"
)

// Set is an immutable finite set under union.
//
// The empty set is the identity. Union is commutative and idempotent;
// intersection is the GCD, union the LCM, difference the Monus and subset
// the partial order. Elements are kept sorted, so iteration order is
// deterministic.
type Set[T cmp.Ordered] struct {
	elems []T
}

var (
	_ Idempotent[Set[int]]     = Set[int]{}
	_ LeftGCD[Set[int]]        = Set[int]{}
	_ RightGCD[Set[int]]       = Set[int]{}
	_ OverlappingGCD[Set[int]] = Set[int]{}
	_ LCM[Set[int]]            = Set[int]{}
	_ Monus[Set[int]]          = Set[int]{}
	_ PartialOrder[Set[int]]   = Set[int]{}
)

// SetOf returns the set of the given elements. Duplicates are collapsed.
func SetOf[T cmp.Ordered](elems ...T) Set[T] {
	if len(elems) == 0 {
		return Set[T]{}
	}

	sorted := slices.Clone(elems)
	slices.Sort(sorted)

	return Set[T]{elems: slices.Clip(slices.Compact(sorted))}
}

// Empty returns the empty set.
func (Set[T]) Empty() Set[T] { return Set[T]{} }

// IsEmpty reports whether s has no elements.
func (s Set[T]) IsEmpty() bool { return len(s.elems) == 0 }

// Equal reports whether s and o hold the same elements.
func (s Set[T]) Equal(o Set[T]) bool {
	return slices.Equal(s.elems, o.elems)
}

// Commutative marks Set as a commutative monoid.
func (Set[T]) Commutative() {}

// Idempotent marks Set as idempotent: s.Combine(s) equals s.
func (Set[T]) Idempotent() {}

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s.elems) }

// Has reports whether x is an element of s.
func (s Set[T]) Has(x T) bool {
	_, found := slices.BinarySearch(s.elems, x)
	return found
}

// Elems returns the elements in ascending order.
func (s Set[T]) Elems() []T { return slices.Clone(s.elems) }

// All returns an iterator over the elements in ascending order.
func (s Set[T]) All() iter.Seq[T] { return slices.Values(s.elems) }

// Combine returns the union of s and o.
func (s Set[T]) Combine(o Set[T]) Set[T] { return s.LCM(o) }

// LCM returns the union of s and o.
func (s Set[T]) LCM(o Set[T]) Set[T] {
	switch {
	case len(s.elems) == 0:
		return o
	case len(o.elems) == 0:
		return s
	}

	return mergeSorted(s.elems, o.elems, true, true, true)
}

// GCD returns the intersection of s and o.
func (s Set[T]) GCD(o Set[T]) Set[T] {
	return mergeSorted(s.elems, o.elems, false, true, false)
}

// Monus returns the elements of s that are not in o.
func (s Set[T]) Monus(o Set[T]) Set[T] {
	if len(o.elems) == 0 {
		return s
	}

	return mergeSorted(s.elems, o.elems, true, false, false)
}

// Leq reports whether s is a subset of o.
func (s Set[T]) Leq(o Set[T]) bool {
	if len(s.elems) > len(o.elems) {
		return false
	}
	for _, x := range s.elems {
		if !o.Has(x) {
			return false
		}
	}

	return true
}

// Reduce returns s without o when o is a subset of s.
func (s Set[T]) Reduce(o Set[T]) (Set[T], bool) {
	if !o.Leq(s) {
		return Set[T]{}, false
	}

	return s.Monus(o), true
}

// StripPrefix returns o \ s when s is a subset of o.
func (s Set[T]) StripPrefix(o Set[T]) (Set[T], bool) { return o.Reduce(s) }

// StripSuffix returns o \ s when s is a subset of o.
func (s Set[T]) StripSuffix(o Set[T]) (Set[T], bool) { return o.Reduce(s) }

// CommonPrefix returns s ∩ o.
func (s Set[T]) CommonPrefix(o Set[T]) Set[T] { return s.GCD(o) }

// CommonSuffix returns s ∩ o.
func (s Set[T]) CommonSuffix(o Set[T]) Set[T] { return s.GCD(o) }

// StripOverlap returns (s \ o, s ∩ o, o \ s).
func (s Set[T]) StripOverlap(o Set[T]) (Set[T], Set[T], Set[T]) {
	return s.Monus(o), s.GCD(o), o.Monus(s)
}

// String formats s as {a, b, c} in ascending order.
func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range s.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte('}')

	return sb.String()
}

// AppendBinary appends the element count followed by every element in
// ascending order.
func (s Set[T]) AppendBinary(dst []byte) ([]byte, error) {
	dst = binary.AppendUvarint(dst, uint64(len(s.elems)))
	for _, x := range s.elems {
		dst = hash.AppendKey(dst, x)
	}

	return dst, nil
}

// mergeSorted walks two ascending slices and keeps elements found only in a,
// in both, or only in b according to the flags.
func mergeSorted[T cmp.Ordered](a, b []T, onlyA, both, onlyB bool) Set[T] {
	out := make([]T, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp.Compare(a[i], b[j]); {
		case c < 0:
			if onlyA {
				out = append(out, a[i])
			}
			i++
		case c > 0:
			if onlyB {
				out = append(out, b[j])
			}
			j++
		default:
			if both {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}
	if onlyA {
		out = append(out, a[i:]...)
	}
	if onlyB {
		out = append(out, b[j:]...)
	}

	if len(out) == 0 {
		return Set[T]{}
	}

	return Set[T]{elems: slices.Clip(out)}
}
