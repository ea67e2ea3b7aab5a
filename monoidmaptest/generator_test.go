package monoidmaptest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/monoidmap/errs"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		g, err := New()
		require.NoError(t, err)
		require.Equal(t, uint64(DefaultSeed), g.Seed())
	})

	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"negative size", WithMaxSize(-1), errs.ErrInvalidSize},
		{"inverted key range", WithKeyRange(5, 5), errs.ErrInvalidKeyRange},
		{"ratio above one", WithEmptyRatio(1.5), errs.ErrInvalidRatio},
		{"negative ratio", WithEmptyRatio(-0.1), errs.ErrInvalidRatio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	g1, err := New(WithSeed(7))
	require.NoError(t, err)
	g2, err := New(WithSeed(7))
	require.NoError(t, err)

	for range 20 {
		require.True(t, Map(g1, Nat).Equal(Map(g2, Nat)))
	}
}

func TestEntries(t *testing.T) {
	g, err := New(WithMaxSize(5), WithKeyRange(10, 13), WithEmptyRatio(1))
	require.NoError(t, err)

	for range 50 {
		entries := Entries(g, Text)
		require.LessOrEqual(t, len(entries), 5)
		for _, e := range entries {
			require.GreaterOrEqual(t, e.Key, 10)
			require.Less(t, e.Key, 13)
			require.True(t, e.Value.IsEmpty(), "empty ratio 1 draws only identities")
		}
	}
}

func TestValueGenerators(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	r := g.Rand()

	for range 100 {
		require.Less(t, uint64(Nat(r)), uint64(10))
		s := Sum(r)
		require.True(t, s >= -5 && s <= 5)
		require.LessOrEqual(t, len(Text(r)), 4)
		for x := range Set(r).All() {
			require.True(t, x >= 0 && x < 6)
		}
	}
}
