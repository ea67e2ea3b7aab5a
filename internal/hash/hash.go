// Package hash provides the xxHash64 digests and the canonical byte encoding
// used to fingerprint map contents.
package hash

import (
	"cmp"
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data using the given seed.
func Sum(data []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(data)
	}

	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(data)

	return d.Sum64()
}

// AppendBytes appends b prefixed with its uvarint length, so that adjacent
// fields cannot run into each other.
func AppendBytes(dst, b []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(b)))
	return append(dst, b...)
}

// AppendKey appends a canonical encoding of an ordered key.
//
// Integers and floats are written as 8 little-endian bytes, strings are
// length-prefixed. Named types are encoded like their underlying kind.
// Floats that cmp.Compare treats as the same key encode identically.
func AppendKey[T cmp.Ordered](dst []byte, k T) []byte {
	rv := reflect.ValueOf(k)

	switch rv.Kind() { //nolint: exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return binary.LittleEndian.AppendUint64(dst, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(canonicalFloat(rv.Float())))
	default:
		return AppendBytes(dst, []byte(rv.String()))
	}
}

// canonicalFloat folds -0 into +0 and every NaN into a single NaN.
func canonicalFloat(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return math.NaN()
	case f == 0:
		return 0
	default:
		return f
	}
}
