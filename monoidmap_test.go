package monoidmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/monoidmap/monoid"
)

// of builds a map from a Go map literal.
func of[V monoid.Monoid[V]](src map[string]V) Map[string, V] {
	return FromMap(src)
}

func abcde() Map[string, monoid.Nat] {
	return of(map[string]monoid.Nat{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5})
}

func TestZeroValue(t *testing.T) {
	var m Map[string, monoid.Nat]

	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	require.Equal(t, monoid.Nat(0), m.Get("anything"))
	require.Empty(t, m.Keys())
	require.Equal(t, "{}", m.String())

	_, _, ok := m.LookupMin()
	require.False(t, ok)
}

func TestMinimalEncoding(t *testing.T) {
	m := of(map[string]monoid.Nat{"a": 3, "b": 0, "c": 5})

	require.Equal(t, 2, m.Len())
	require.Equal(t, []string{"a", "c"}, m.Keys())
	require.Equal(t, monoid.Nat(0), m.Get("b"))
	require.True(t, m.NullKey("b"))
	require.True(t, m.NonNullKey("a"))

	t.Run("singleton of identity is empty", func(t *testing.T) {
		require.True(t, Singleton("x", monoid.Text("")).IsEmpty())
		require.Equal(t, 1, Singleton("x", monoid.Text("v")).Len())
	})

	t.Run("identity other than the zero value", func(t *testing.T) {
		p := Singleton("x", monoid.Product(1))
		require.True(t, p.IsEmpty())
		require.Equal(t, monoid.Product(1), p.Get("y"))

		p = p.Set("y", 0)
		require.Equal(t, 1, p.Len(), "zero is not the identity of Product")
	})
}

func TestSetAdjustNullify(t *testing.T) {
	m := of(map[string]monoid.Nat{"a": 3, "c": 5})

	m2 := m.Set("a", 0)
	require.Equal(t, []string{"c"}, m2.Keys())
	require.Equal(t, monoid.Nat(3), m.Get("a"), "the original map is unchanged")

	m3 := m.Set("b", 7)
	require.Equal(t, []string{"a", "b", "c"}, m3.Keys())

	inc := func(v monoid.Nat) monoid.Nat { return v + 1 }
	require.Equal(t, monoid.Nat(6), m.Adjust("c", inc).Get("c"))
	require.Equal(t, monoid.Nat(1), m.Adjust("z", inc).Get("z"))
	require.Equal(t, 1, m.Adjust("a", func(monoid.Nat) monoid.Nat { return 0 }).Len())

	require.Equal(t, []string{"a"}, m.Nullify("c").Keys())
	require.Same(t, m.root, m.Nullify("zzz").root, "nullifying an absent key shares the tree")
}

func TestFromList(t *testing.T) {
	t.Run("last entry wins", func(t *testing.T) {
		m := FromList([]Entry[string, monoid.Nat]{{"a", 1}, {"b", 2}, {"a", 3}})
		require.Equal(t, []Entry[string, monoid.Nat]{{"a", 3}, {"b", 2}}, m.ToList())
	})

	t.Run("identity removes an earlier binding", func(t *testing.T) {
		m := FromList([]Entry[string, monoid.Nat]{{"a", 1}, {"a", 0}})
		require.True(t, m.IsEmpty())
	})

	t.Run("with combines left to right", func(t *testing.T) {
		entries := []Entry[string, monoid.Text]{{"x", "a"}, {"y", "q"}, {"x", "b"}, {"x", "c"}}

		m := FromListWith(func(old, v monoid.Text) monoid.Text { return old.Combine(v) }, entries)
		require.Equal(t, monoid.Text("abc"), m.Get("x"))

		m = FromListWith(func(old, v monoid.Text) monoid.Text { return v.Combine(old) }, entries)
		require.Equal(t, monoid.Text("cba"), m.Get("x"))
		require.Equal(t, monoid.Text("q"), m.Get("y"))
	})

	t.Run("with drops identity results", func(t *testing.T) {
		m := FromListWith(func(_, v monoid.Nat) monoid.Nat { return v }, []Entry[string, monoid.Nat]{{"a", 1}, {"a", 0}})
		require.True(t, m.IsEmpty())
	})
}

func TestConversions(t *testing.T) {
	m := of(map[string]monoid.Nat{"b": 2, "a": 1, "z": 0})

	require.Equal(t, map[string]monoid.Nat{"a": 1, "b": 2}, m.ToMap())
	require.Equal(t, []Entry[string, monoid.Nat]{{"a", 1}, {"b", 2}}, m.ToList())

	k := FromKeys([]int{3, 1, 3, 2}, func(k int) monoid.Nat { return monoid.Nat(k - 1) })
	require.Equal(t, []int{2, 3}, k.Keys())
	require.Equal(t, monoid.Nat(2), k.Get(3))

	require.Equal(t, []string{"b", "d"}, abcde().RestrictKeys([]string{"b", "d", "x"}).Keys())
	require.Equal(t, []string{"a", "c", "e"}, abcde().WithoutKeys([]string{"b", "d", "x"}).Keys())
}

func TestOrderedAccess(t *testing.T) {
	m := abcde()

	k, v, ok := m.LookupMin()
	require.True(t, ok)
	require.Equal(t, "a", k)
	require.Equal(t, monoid.Nat(1), v)

	k, v, ok = m.LookupMax()
	require.True(t, ok)
	require.Equal(t, "e", k)
	require.Equal(t, monoid.Nat(5), v)

	var backward []string
	for k := range m.Backward() {
		backward = append(backward, k)
	}
	require.Equal(t, []string{"e", "d", "c", "b", "a"}, backward)

	tests := []struct {
		name        string
		n           int
		take, after []string
	}{
		{"negative", -1, []string{}, []string{"a", "b", "c", "d", "e"}},
		{"zero", 0, []string{}, []string{"a", "b", "c", "d", "e"}},
		{"middle", 2, []string{"a", "b"}, []string{"c", "d", "e"}},
		{"past the end", 10, []string{"a", "b", "c", "d", "e"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := m.SplitAt(tt.n)
			require.Equal(t, tt.take, l.Keys())
			require.Equal(t, tt.after, r.Keys())
			require.Equal(t, tt.take, m.Take(tt.n).Keys())
			require.Equal(t, tt.after, m.Drop(tt.n).Keys())
		})
	}
}

func TestFilterPartition(t *testing.T) {
	m := abcde()
	big := func(v monoid.Nat) bool { return v > 2 }
	vowel := func(k string) bool { return k == "a" || k == "e" }

	require.Equal(t, []string{"c", "d", "e"}, m.Filter(big).Keys())
	require.Equal(t, []string{"a", "e"}, m.FilterKeys(vowel).Keys())
	require.Equal(t, []string{"e"}, m.FilterWithKey(func(k string, v monoid.Nat) bool {
		return vowel(k) && big(v)
	}).Keys())
	require.Same(t, m.root, m.Filter(func(monoid.Nat) bool { return true }).root)

	yes, no := m.Partition(big)
	require.Equal(t, []string{"c", "d", "e"}, yes.Keys())
	require.Equal(t, []string{"a", "b"}, no.Keys())

	yes, no = m.PartitionKeys(vowel)
	require.Equal(t, []string{"a", "e"}, yes.Keys())
	require.Equal(t, []string{"b", "c", "d"}, no.Keys())
}

func TestMapValues(t *testing.T) {
	m := abcde()

	half := MapValues(func(v monoid.Nat) monoid.Nat { return v / 2 }, m)
	require.Equal(t, []string{"b", "c", "d", "e"}, half.Keys(), "identity results are dropped")

	neg := MapValues(func(v monoid.Nat) monoid.Sum { return -monoid.Sum(v) }, m)
	require.Equal(t, monoid.Sum(-3), neg.Get("c"))

	tagged := MapWithKey(func(k string, v monoid.Nat) monoid.Text {
		if v%2 == 0 {
			return ""
		}

		return monoid.Text(k)
	}, m)
	require.Equal(t, map[string]monoid.Text{"a": "a", "c": "c", "e": "e"}, tagged.ToMap())
}

func TestMapKeys(t *testing.T) {
	m := of(map[string]monoid.Text{"a1": "x", "a2": "y", "b1": "z"})
	first := func(k string) string { return k[:1] }

	require.Equal(t, map[string]monoid.Text{"a": "xy", "b": "z"}, MapKeys(first, m).ToMap())

	flipped := MapKeysWith(func(acc, v monoid.Text) monoid.Text { return v.Combine(acc) }, first, m)
	require.Equal(t, monoid.Text("yx"), flipped.Get("a"))

	cancel := of(map[string]monoid.Sum{"p": 2, "q": -2})
	require.True(t, MapKeys(func(string) int { return 0 }, cancel).IsEmpty())

	t.Run("collisions fold like FromListWith", func(t *testing.T) {
		weighted := func(acc, v monoid.Sum) monoid.Sum { return acc + 2*v }
		src := of(map[string]monoid.Sum{"a": 5, "b": -5, "c": 7})
		zero := func(string) int { return 0 }

		want := FromListWith(weighted, []Entry[int, monoid.Sum]{{0, 5}, {0, -5}, {0, 7}})
		got := MapKeysWith(weighted, zero, src)
		require.Equal(t, monoid.Sum(14), want.Get(0))
		require.True(t, got.Equal(want), "got %v, want %v", got, want)

		single := MapKeysWith(weighted, zero, Singleton("a", monoid.Sum(3)))
		require.Equal(t, monoid.Sum(6), single.Get(0), "a lone value is still folded from the identity")
	})
}

func TestFold(t *testing.T) {
	m := abcde()

	keys := Fold(m, "", func(acc string, k string, _ monoid.Nat) string { return acc + k })
	require.Equal(t, "abcde", keys)

	rev := FoldRight(m, "", func(k string, _ monoid.Nat, acc string) string { return acc + k })
	require.Equal(t, "edcba", rev)

	require.Equal(t, monoid.Nat(15), Concat(m))
	require.Equal(t, monoid.Text("xy"), Concat(of(map[string]monoid.Text{"2": "y", "1": "x"})))
}

func TestEqualAndString(t *testing.T) {
	a := FromList([]Entry[string, monoid.Nat]{{"a", 3}, {"c", 5}})
	b := Singleton("c", monoid.Nat(5)).Set("a", 3)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(b.Set("a", 4)))
	require.False(t, a.Equal(b.Set("d", 1)))
	require.Equal(t, "{a: 3, c: 5}", a.String())
}

func TestNestedMaps(t *testing.T) {
	type inner = Map[string, monoid.Nat]

	var outer Map[string, inner]
	outer = outer.Set("x", inner{})
	require.True(t, outer.IsEmpty(), "empty inner maps are identities")

	outer = outer.Set("x", Singleton("a", monoid.Nat(1)))
	other := Singleton("x", Singleton("a", monoid.Nat(2)).Set("b", 1))

	sum := Append(outer, other)
	require.Equal(t, monoid.Nat(3), sum.Get("x").Get("a"))
	require.Equal(t, monoid.Nat(1), sum.Get("x").Get("b"))
	require.Equal(t, "{x: {a: 3, b: 1}}", sum.String())
}
