package monoidmap

import (
	"cmp"
	"maps"
	"slices"

	"github.com/arloliu/monoidmap/internal/tree"
	"github.com/arloliu/monoidmap/monoid"
)

// FromList builds a map from entries.
//
// Entries are applied left to right with Set, so the last entry for a key
// wins and identity values remove earlier bindings.
func FromList[K cmp.Ordered, V monoid.Monoid[V]](entries []Entry[K, V]) Map[K, V] {
	var m Map[K, V]
	for _, e := range entries {
		m = m.Set(e.Key, e.Value)
	}

	return m
}

// FromListWith builds a map from entries, combining the values of repeated
// keys with f.
//
// Entries are folded strictly left to right: each value is merged into the
// current one as f(current, value), where current is the identity for a key
// seen for the first time or whose accumulated value became the identity.
// Identity results are dropped. MapKeysWith folds collisions the same way.
//
// Example:
//
//	m := monoidmap.FromListWith(monoid.Nat.Combine, []monoidmap.Entry[string, monoid.Nat]{
//	    {"a", 1}, {"b", 2}, {"a", 3},
//	})
//	// m == {a: 4, b: 2}
func FromListWith[K cmp.Ordered, V monoid.Monoid[V]](f func(V, V) V, entries []Entry[K, V]) Map[K, V] {
	var m Map[K, V]
	for _, e := range entries {
		m = m.Set(e.Key, f(m.Get(e.Key), e.Value))
	}

	return m
}

// FromMap builds a map from a Go map. Entries whose value is the identity are
// treated like missing entries.
func FromMap[K cmp.Ordered, V monoid.Monoid[V]](src map[K]V) Map[K, V] {
	keys := make([]K, 0, len(src))
	for k, v := range src {
		if !v.IsEmpty() {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	return fromRoot(tree.FromSorted(len(keys), func(i int) (K, V) {
		return keys[i], src[keys[i]]
	}))
}

// FromKeys builds a map by applying f to each key. Duplicate keys are
// allowed; identity results are dropped.
func FromKeys[K cmp.Ordered, V monoid.Monoid[V]](keys []K, f func(K) V) Map[K, V] {
	sorted := slices.Compact(slices.Sorted(slices.Values(keys)))

	var b builder[K, V]
	for _, k := range sorted {
		b.add(k, f(k))
	}

	return b.build()
}

// ToList returns the non-identity entries in ascending key order.
func (m Map[K, V]) ToList() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}

	return entries
}

// ToMap returns the non-identity entries as a Go map.
func (m Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	maps.Insert(out, m.All())

	return out
}

// RestrictKeys returns the map limited to the given keys.
func (m Map[K, V]) RestrictKeys(keys []K) Map[K, V] {
	set := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}

	return m.FilterKeys(func(k K) bool {
		_, ok := set[k]
		return ok
	})
}

// WithoutKeys returns the map with the given keys set to the identity.
func (m Map[K, V]) WithoutKeys(keys []K) Map[K, V] {
	root := m.root
	for _, k := range keys {
		root = tree.Delete(root, k)
	}

	return fromRoot(root)
}

// builder collects entries with strictly ascending keys and skips identity
// values, then builds a balanced map in one pass.
type builder[K cmp.Ordered, V monoid.Monoid[V]] struct {
	keys []K
	vals []V
}

func (b *builder[K, V]) add(k K, v V) {
	if v.IsEmpty() {
		return
	}

	b.keys = append(b.keys, k)
	b.vals = append(b.vals, v)
}

func (b *builder[K, V]) build() Map[K, V] {
	return fromRoot(tree.FromSorted(len(b.keys), func(i int) (K, V) {
		return b.keys[i], b.vals[i]
	}))
}
