// Package monoidmaptest generates random maps for property-based tests.
//
// A Generator is seeded, so a failing case can be reproduced by reusing the
// seed it was created with. Keys are drawn from a small integer range to
// make collisions between independently generated maps common.
package monoidmaptest

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/arloliu/monoidmap"
	"github.com/arloliu/monoidmap/errs"
	"github.com/arloliu/monoidmap/internal/options"
	"github.com/arloliu/monoidmap/monoid"
)

// Default generator settings.
const (
	DefaultSeed       = 1
	DefaultMaxSize    = 16
	DefaultKeyLow     = 0
	DefaultKeyHigh    = 24
	DefaultEmptyRatio = 0.2
)

// Generator produces random entry lists and maps. It is not safe for
// concurrent use.
type Generator struct {
	seed       uint64
	maxSize    int
	keyLow     int
	keyHigh    int
	emptyRatio float64
	rng        *rand.Rand
}

// Option configures a Generator.
type Option = options.Option[*Generator]

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return options.NoError(func(g *Generator) {
		g.seed = seed
	})
}

// WithMaxSize sets the maximum number of entries drawn per map.
func WithMaxSize(n int) Option {
	return options.New(func(g *Generator) error {
		if n < 0 {
			return fmt.Errorf("max size %d: %w", n, errs.ErrInvalidSize)
		}
		g.maxSize = n

		return nil
	})
}

// WithKeyRange sets the half-open range [low, high) keys are drawn from.
func WithKeyRange(low, high int) Option {
	return options.NoError(func(g *Generator) {
		g.keyLow, g.keyHigh = low, high
	})
}

// WithEmptyRatio sets the probability that a drawn entry carries the
// identity, which exercises identity stripping on construction.
func WithEmptyRatio(ratio float64) Option {
	return options.New(func(g *Generator) error {
		if ratio < 0 || ratio > 1 {
			return fmt.Errorf("empty ratio %v: %w", ratio, errs.ErrInvalidRatio)
		}
		g.emptyRatio = ratio

		return nil
	})
}

// New creates a Generator.
//
// Example:
//
//	g, err := monoidmaptest.New(
//	    monoidmaptest.WithSeed(42),
//	    monoidmaptest.WithKeyRange(0, 8),
//	)
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		seed:       DefaultSeed,
		maxSize:    DefaultMaxSize,
		keyLow:     DefaultKeyLow,
		keyHigh:    DefaultKeyHigh,
		emptyRatio: DefaultEmptyRatio,
	}
	if err := options.ApplyAndValidate(g, validate, opts...); err != nil {
		return nil, err
	}
	g.rng = rand.New(rand.NewPCG(g.seed, g.seed^0x9e3779b97f4a7c15))

	return g, nil
}

func validate(g *Generator) error {
	if g.keyHigh <= g.keyLow {
		return fmt.Errorf("key range [%d, %d): %w", g.keyLow, g.keyHigh, errs.ErrInvalidKeyRange)
	}

	return nil
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Rand returns the generator's source of randomness.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// Key draws a key from the configured range.
func (g *Generator) Key() int {
	return g.keyLow + g.rng.IntN(g.keyHigh-g.keyLow)
}

// Entries draws up to the configured maximum number of entries. Keys may
// repeat and values may be the identity.
func Entries[V monoid.Monoid[V]](g *Generator, value func(*rand.Rand) V) []monoidmap.Entry[int, V] {
	n := g.rng.IntN(g.maxSize + 1)
	entries := make([]monoidmap.Entry[int, V], n)
	for i := range entries {
		v := monoid.Identity[V]()
		if g.rng.Float64() >= g.emptyRatio {
			v = value(g.rng)
		}
		entries[i] = monoidmap.Entry[int, V]{Key: g.Key(), Value: v}
	}

	return entries
}

// Map draws a random map.
func Map[V monoid.Monoid[V]](g *Generator, value func(*rand.Rand) V) monoidmap.Map[int, V] {
	return monoidmap.FromList(Entries(g, value))
}

// Nat draws a small natural number, zero included.
func Nat(r *rand.Rand) monoid.Nat {
	return monoid.Nat(r.IntN(10))
}

// Sum draws a small signed integer, zero included.
func Sum(r *rand.Rand) monoid.Sum {
	return monoid.Sum(r.IntN(11) - 5)
}

// Text draws a short string over a two-letter alphabet, so that prefixes,
// suffixes and overlaps between independent draws are common.
func Text(r *rand.Rand) monoid.Text {
	var sb strings.Builder
	for range r.IntN(5) {
		sb.WriteByte("ab"[r.IntN(2)])
	}

	return monoid.Text(sb.String())
}

// Set draws a subset of [0, 6).
func Set(r *rand.Rand) monoid.Set[int] {
	var elems []int
	for x := range 6 {
		if r.IntN(2) == 0 {
			elems = append(elems, x)
		}
	}

	return monoid.SetOf(elems...)
}
