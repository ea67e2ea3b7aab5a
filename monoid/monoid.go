// Package monoid defines the algebraic capabilities a value type can declare
// and ships the standard value types used with monoidmap.
//
// A capability is a Go interface over the value type itself, so a type states
// what it supports simply by having the methods:
//
//	type Nat uint64
//
//	func (Nat) Empty() Nat             { return 0 }
//	func (n Nat) IsEmpty() bool        { return n == 0 }
//	func (n Nat) Equal(o Nat) bool     { return n == o }
//	func (n Nat) Combine(o Nat) Nat    { return n + o }
//	func (n Nat) Monus(o Nat) Nat      { ... }
//
// Generic operations constrain their value parameter with the capability they
// need (for example monoidmap.Monus requires V Monus[V]). Calling an operation
// with a value type that lacks the capability is a compile error, never a
// runtime one.
//
// # Capabilities
//
//   - Null: identity element, exact identity test and structural equality
//   - Monoid: associative Combine
//   - Commutative, Idempotent: marker capabilities
//   - Group: Invert, an exact inverse
//   - LeftReductive, RightReductive, Reductive: undo a Combine when possible
//   - LeftGCD, RightGCD, OverlappingGCD: greatest common prefix/suffix/overlap
//   - GCD, LCM: meet and join
//   - Monus: truncated subtraction clipped at the identity
//   - PartialOrder: a partial order consistent with Combine
//
// # Identity
//
// The identity is obtained by calling Empty on the zero value of the type, so
// types whose identity differs from their Go zero value (Product, for one)
// work as well. IsEmpty must agree exactly with Equal(Empty()).
//
// # Immutability
//
// Values stored in a monoidmap.Map are shared between maps. Every method of
// every capability must treat its receiver and arguments as read-only and
// return fresh values.
package monoid

// Null is the base capability: a value type with an identity element.
type Null[V any] interface {
	// Empty returns the identity element. It is called on the zero value.
	Empty() V
	// IsEmpty reports whether the receiver is the identity element.
	IsEmpty() bool
	// Equal reports structural equality.
	Equal(V) bool
}

// Monoid is a Null type with an associative Combine whose identity is Empty.
type Monoid[V any] interface {
	Null[V]
	// Combine returns the receiver combined with the argument.
	Combine(V) V
}

// Commutative marks a Monoid whose Combine commutes.
type Commutative[V any] interface {
	Monoid[V]
	Commutative()
}

// Idempotent marks a Monoid where a.Combine(a) equals a.
type Idempotent[V any] interface {
	Monoid[V]
	Idempotent()
}

// Group is a Monoid with an exact inverse: a.Combine(a.Invert()) is empty.
type Group[V any] interface {
	Monoid[V]
	Invert() V
}

// LeftReductive is a Monoid whose Combine can be undone from the left.
type LeftReductive[V any] interface {
	Monoid[V]
	// StripPrefix returns w such that a.Combine(w) equals b, where a is the
	// receiver. It reports false when a is not a prefix of b.
	StripPrefix(b V) (V, bool)
}

// RightReductive is a Monoid whose Combine can be undone from the right.
type RightReductive[V any] interface {
	Monoid[V]
	// StripSuffix returns w such that w.Combine(a) equals b, where a is the
	// receiver. It reports false when a is not a suffix of b.
	StripSuffix(b V) (V, bool)
}

// Reductive is a commutative Monoid with partial subtraction.
type Reductive[V any] interface {
	Commutative[V]
	LeftReductive[V]
	RightReductive[V]
	// Reduce returns c such that a equals b.Combine(c), where a is the
	// receiver. It reports false when no such c exists.
	Reduce(b V) (V, bool)
}

// LeftGCD is a LeftReductive Monoid with greatest common prefixes.
type LeftGCD[V any] interface {
	LeftReductive[V]
	// CommonPrefix returns the greatest p that is a prefix of both values.
	CommonPrefix(V) V
}

// RightGCD is a RightReductive Monoid with greatest common suffixes.
type RightGCD[V any] interface {
	RightReductive[V]
	// CommonSuffix returns the greatest s that is a suffix of both values.
	CommonSuffix(V) V
}

// OverlappingGCD is a Monoid in which the largest suffix of one value that is
// also a prefix of another can be found.
type OverlappingGCD[V any] interface {
	LeftReductive[V]
	RightReductive[V]
	// StripOverlap splits a (the receiver) and b into (p, o, s) such that
	// a equals p.Combine(o), b equals o.Combine(s), and o is the greatest
	// value with that property.
	StripOverlap(b V) (p, o, s V)
}

// GCD is a Reductive Monoid with a greatest common divisor (meet).
type GCD[V any] interface {
	Reductive[V]
	GCD(V) V
}

// LCM is a GCD Monoid with a least common multiple (join).
type LCM[V any] interface {
	GCD[V]
	LCM(V) V
}

// Monus is a commutative Monoid with total truncated subtraction.
type Monus[V any] interface {
	Commutative[V]
	// Monus removes as much of the argument from the receiver as possible.
	// The result is never "below" the identity.
	Monus(V) V
}

// PartialOrder is a Monoid with a partial order consistent with Combine:
// Empty().Leq(x) holds for every x and a.Leq(a.Combine(b)) for every a, b.
type PartialOrder[V any] interface {
	Monoid[V]
	Leq(V) bool
}

// Identity returns the identity element of V.
func Identity[V Null[V]]() V {
	var zero V
	return zero.Empty()
}
