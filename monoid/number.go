package monoid

import (
	"encoding/binary"
	"strconv"
)

// Sum is a signed integer under addition. It forms a commutative group.
// Overflow wraps around.
type Sum int64

var (
	_ Commutative[Sum] = Sum(0)
	_ Group[Sum]       = Sum(0)
)

// Empty returns 0.
func (Sum) Empty() Sum { return 0 }

// IsEmpty reports whether s is 0.
func (s Sum) IsEmpty() bool { return s == 0 }

// Equal reports whether s and o are the same number.
func (s Sum) Equal(o Sum) bool { return s == o }

// Combine returns s + o.
func (s Sum) Combine(o Sum) Sum { return s + o }

// Commutative marks Sum as a commutative monoid.
func (Sum) Commutative() {}

// Invert returns -s, so that s.Combine(s.Invert()) is 0.
func (s Sum) Invert() Sum { return -s }

// String formats s in base 10.
func (s Sum) String() string { return strconv.FormatInt(int64(s), 10) }

// AppendBinary appends s as 8 little-endian bytes.
func (s Sum) AppendBinary(dst []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, uint64(s)), nil
}

// Nat is a natural number under addition.
//
// Besides being a commutative monoid it supports truncated subtraction
// (Monus), partial subtraction (Reduce), min as GCD, max as LCM, and the
// usual order. Overflow wraps around.
type Nat uint64

var (
	_ Reductive[Nat]      = Nat(0)
	_ LeftGCD[Nat]        = Nat(0)
	_ RightGCD[Nat]       = Nat(0)
	_ OverlappingGCD[Nat] = Nat(0)
	_ LCM[Nat]            = Nat(0)
	_ Monus[Nat]          = Nat(0)
	_ PartialOrder[Nat]   = Nat(0)
)

// Empty returns 0.
func (Nat) Empty() Nat { return 0 }

// IsEmpty reports whether n is 0.
func (n Nat) IsEmpty() bool { return n == 0 }

// Equal reports whether n and o are the same number.
func (n Nat) Equal(o Nat) bool { return n == o }

// Combine returns n + o.
func (n Nat) Combine(o Nat) Nat { return n + o }

// Commutative marks Nat as a commutative monoid.
func (Nat) Commutative() {}

// Leq reports whether n <= o, which is the case exactly when o = n + d for some d.
func (n Nat) Leq(o Nat) bool { return n <= o }

// GCD returns the largest common part of n and o, their minimum.
func (n Nat) GCD(o Nat) Nat { return min(n, o) }

// LCM returns the smallest number both n and o are part of, their maximum.
func (n Nat) LCM(o Nat) Nat { return max(n, o) }

// Monus returns n - o, or 0 when o exceeds n.
func (n Nat) Monus(o Nat) Nat {
	if o >= n {
		return 0
	}

	return n - o
}

// Reduce returns n - o when o does not exceed n.
func (n Nat) Reduce(o Nat) (Nat, bool) {
	if o > n {
		return 0, false
	}

	return n - o, true
}

// StripPrefix returns o - n when n does not exceed o.
func (n Nat) StripPrefix(o Nat) (Nat, bool) { return o.Reduce(n) }

// StripSuffix returns o - n when n does not exceed o.
func (n Nat) StripSuffix(o Nat) (Nat, bool) { return o.Reduce(n) }

// CommonPrefix returns min(n, o).
func (n Nat) CommonPrefix(o Nat) Nat { return min(n, o) }

// CommonSuffix returns min(n, o).
func (n Nat) CommonSuffix(o Nat) Nat { return min(n, o) }

// StripOverlap splits n and o around their overlap m = min(n, o) and
// returns (n - m, m, o - m).
func (n Nat) StripOverlap(o Nat) (Nat, Nat, Nat) {
	m := min(n, o)
	return n - m, m, o - m
}

// String formats n in base 10.
func (n Nat) String() string { return strconv.FormatUint(uint64(n), 10) }

// AppendBinary appends n as 8 little-endian bytes.
func (n Nat) AppendBinary(dst []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, uint64(n)), nil
}

// Product is a signed integer under multiplication. Its identity is 1, so
// the zero value of Product is not empty.
type Product int64

var _ Commutative[Product] = Product(1)

// Empty returns 1.
func (Product) Empty() Product { return 1 }

// IsEmpty reports whether p is 1.
func (p Product) IsEmpty() bool { return p == 1 }

// Equal reports whether p and o are the same number.
func (p Product) Equal(o Product) bool { return p == o }

// Combine returns p * o.
func (p Product) Combine(o Product) Product { return p * o }

// Commutative marks Product as a commutative monoid.
func (Product) Commutative() {}

// String formats p in base 10.
func (p Product) String() string { return strconv.FormatInt(int64(p), 10) }

// AppendBinary appends p as 8 little-endian bytes.
func (p Product) AppendBinary(dst []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(dst, uint64(p)), nil
}
