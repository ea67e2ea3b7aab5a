package nestedmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/monoidmap/monoid"
)

type entry = Entry[string, int, monoid.Nat]

func sample() Map[string, int, monoid.Nat] {
	return FromList([]entry{
		{"x", 1, 2},
		{"x", 2, 3},
		{"y", 1, 1},
		{"z", 9, 0},
	})
}

func TestGetSet(t *testing.T) {
	m := sample()

	require.Equal(t, monoid.Nat(3), m.Get("x", 2))
	require.Equal(t, monoid.Nat(0), m.Get("z", 9))
	require.Equal(t, monoid.Nat(0), m.Get("nope", 1))
	require.Equal(t, 3, m.Len())
	require.Equal(t, 2, m.OuterLen())
	require.Equal(t, []int{1, 2}, m.Inner("x").Keys())

	m = m.Adjust("y", 1, func(v monoid.Nat) monoid.Nat { return v + 4 })
	require.Equal(t, monoid.Nat(5), m.Get("y", 1))

	t.Run("emptied inner maps disappear", func(t *testing.T) {
		n := m.Nullify("y", 1)
		require.Equal(t, 1, n.OuterLen())
		require.True(t, n.Inner("y").IsEmpty())

		n = n.Nullify("x", 1).Nullify("x", 2)
		require.True(t, n.IsEmpty())
		require.True(t, n.Equal(Map[string, int, monoid.Nat]{}))
	})
}

func TestToList(t *testing.T) {
	require.Equal(t, []entry{{"x", 1, 2}, {"x", 2, 3}, {"y", 1, 1}}, sample().ToList())
}

func TestAppend(t *testing.T) {
	a := sample()
	b := FromList([]entry{{"x", 1, 1}, {"w", 5, 5}})

	sum := Append(a, b)
	require.Equal(t, monoid.Nat(3), sum.Get("x", 1))
	require.Equal(t, monoid.Nat(5), sum.Get("w", 5))
	require.True(t, sum.Equal(a.Combine(b)))
	require.Equal(t, "{w: {5: 5}, x: {1: 3, 2: 3}, y: {1: 1}}", sum.String())
}

func TestIntersectionWith(t *testing.T) {
	counts := sample()
	words := FromList([]Entry[string, int, monoid.Text]{{"x", 2, "ab"}, {"y", 7, "c"}})

	got := IntersectionWith(func(n monoid.Nat, s monoid.Text) monoid.Nat {
		return n * monoid.Nat(len(s))
	}, counts, words)

	require.Equal(t, []entry{{"x", 2, 6}}, got.ToList())
	require.Equal(t, 1, got.OuterLen(), "outer keys whose inner intersection is empty are dropped")
}

func TestFingerprint(t *testing.T) {
	a := sample()
	b := FromList([]entry{{"y", 1, 1}, {"x", 2, 3}, {"x", 1, 2}})

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	require.Equal(t, fa, fb)
}
