// Package monoidmap provides Map, a persistent ordered map that models a total
// function from keys to monoidal values.
//
// Every key that has not been assigned a value maps to the identity element
// of the value type: zero for monoid.Nat, the empty string for monoid.Text,
// the empty set for monoid.Set. Only non-identity values are stored, so two
// maps that agree on every key are always represented the same way and Len
// counts exactly the keys that carry information.
//
// # Core Features
//
//   - Minimal encoding: assigning the identity removes the key
//   - Immutable values with structural sharing; safe for concurrent readers
//   - Pointwise algebra chosen by the capabilities of the value type
//   - Split-based merges that share untouched subtrees between inputs and output
//   - Deterministic xxHash64 fingerprints of map contents
//
// # Basic Usage
//
// Building and updating a map:
//
//	import (
//	    "github.com/arloliu/monoidmap"
//	    "github.com/arloliu/monoidmap/monoid"
//	)
//
//	m := monoidmap.FromList([]monoidmap.Entry[string, monoid.Nat]{
//	    {"a", 3}, {"b", 0}, {"c", 5},
//	})
//	m.Len()      // 2, "b" maps to the identity
//	m.Get("zzz") // 0
//	m = m.Set("a", 0)
//	m.Len()      // 1
//
// Combining maps key by key:
//
//	n := monoidmap.FromList([]monoidmap.Entry[string, monoid.Nat]{{"a", 2}, {"c", 5}})
//	monoidmap.Append(m, n) // {a: 2, c: 10}
//	monoidmap.Monus(m, n)  // {}
//
// # Capabilities
//
// The operations available for a Map depend on what its value type can do.
// Capabilities are interfaces in the monoid package, and each operation
// constrains its value type parameter accordingly: Minus needs a
// monoid.Group, Monus a monoid.Monus, StripPrefix a monoid.LeftReductive and
// so on. Calling an operation the value type does not support is a compile
// error rather than a runtime failure.
//
// Operations that may have no result for a particular pair of maps, such as
// StripPrefix or MinusMaybe, return an extra bool and are all-or-nothing: a
// single key without a result makes the whole operation report false.
//
// # Package Structure
//
// The monoid package defines the capability interfaces and ready-made value
// types. The multimap, nestedmap and multiset packages show how richer
// containers are built as thin layers over Map. The monoidmaptest package
// generates random maps for property tests.
package monoidmap
