package monoidmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/monoidmap/errs"
	"github.com/arloliu/monoidmap/monoid"
)

func TestFingerprint(t *testing.T) {
	a := FromList([]Entry[string, monoid.Nat]{{"x", 1}, {"y", 2}, {"z", 0}})
	b := Singleton("y", monoid.Nat(2)).Set("x", 1)

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	require.Equal(t, fa, fb, "equal maps have equal fingerprints")

	fc, err := Fingerprint(b.Set("y", 3))
	require.NoError(t, err)
	require.NotEqual(t, fa, fc)

	seeded, err := Fingerprint(a, WithSeed(42))
	require.NoError(t, err)
	require.NotEqual(t, fa, seeded)

	again, err := Fingerprint(b, WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, seeded, again)

	t.Run("empty map", func(t *testing.T) {
		f1, err := Fingerprint(Map[string, monoid.Text]{})
		require.NoError(t, err)
		f2, err := Fingerprint(Map[string, monoid.Text]{}.Set("k", ""))
		require.NoError(t, err)
		require.Equal(t, f1, f2)
	})

	t.Run("key and value boundaries", func(t *testing.T) {
		m1 := Singleton("ab", monoid.Text("c"))
		m2 := Singleton("a", monoid.Text("bc"))
		f1, err := Fingerprint(m1)
		require.NoError(t, err)
		f2, err := Fingerprint(m2)
		require.NoError(t, err)
		require.NotEqual(t, f1, f2)
	})

	t.Run("signed zero keys", func(t *testing.T) {
		pos := Singleton(0.0, monoid.Nat(1))
		neg := Singleton(math.Copysign(0, -1), monoid.Nat(1))
		require.True(t, pos.Equal(neg))

		fp, err := Fingerprint(pos)
		require.NoError(t, err)
		fn, err := Fingerprint(neg)
		require.NoError(t, err)
		require.Equal(t, fp, fn)
	})

	t.Run("nested maps", func(t *testing.T) {
		inner := Singleton(1, monoid.SetOf("a", "b"))
		outer := Singleton("k", inner)
		f, err := Fingerprint(outer)
		require.NoError(t, err)
		require.NotZero(t, f)

		other := Singleton("k", Singleton(1, monoid.SetOf("b")).Set(1, monoid.SetOf("b", "a")))
		g, err := Fingerprint(other.Set("j", Singleton(2, monoid.SetOf("c"))).Nullify("j"))
		require.NoError(t, err)
		require.Equal(t, f, g)
	})

	t.Run("values without an encoding", func(t *testing.T) {
		_, err := Fingerprint(Singleton("k", monoid.SeqOf(1, 2)))
		require.ErrorIs(t, err, errs.ErrNotEncodable)

		_, err = Fingerprint(Map[string, monoid.Seq[int]]{})
		require.NoError(t, err, "an empty map encodes regardless of its value type")
	})
}

func TestAppendBinary(t *testing.T) {
	m := FromList([]Entry[int, monoid.Sum]{{2, -1}, {1, 7}})

	b1, err := m.AppendBinary(nil)
	require.NoError(t, err)
	b2, err := m.Set(3, 0).AppendBinary([]byte{})
	require.NoError(t, err)
	require.Equal(t, b1, b2)

	nested := Singleton("outer", m).Set("more", Singleton(9, monoid.Sum(4)))
	n1, err := nested.AppendBinary(nil)
	require.NoError(t, err)
	n2, err := nested.AppendBinary(nil)
	require.NoError(t, err)
	require.Equal(t, n1, n2, "nested encodings do not share scratch space")
	require.Contains(t, string(n1), string(b1))

	prefixed, err := m.AppendBinary([]byte("hdr"))
	require.NoError(t, err)
	require.Equal(t, append([]byte("hdr"), b1...), prefixed)
}
