package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	size     int
	lo, hi   int
	lastCall string
}

var errNegative = errors.New("size cannot be negative")

func withSize(n int) Option[*sampleConfig] {
	return New(func(c *sampleConfig) error {
		if n < 0 {
			return errNegative
		}
		c.size = n
		c.lastCall = "withSize"

		return nil
	})
}

func withRange(lo, hi int) Option[*sampleConfig] {
	return NoError(func(c *sampleConfig) {
		c.lo, c.hi = lo, hi
		c.lastCall = "withRange"
	})
}

func validRange(c *sampleConfig) error {
	if c.lo >= c.hi {
		return errors.New("empty range")
	}

	return nil
}

func TestNew(t *testing.T) {
	t.Run("applies", func(t *testing.T) {
		c := &sampleConfig{}
		require.NoError(t, withSize(42).apply(c))
		require.Equal(t, 42, c.size)
	})

	t.Run("propagates errors", func(t *testing.T) {
		c := &sampleConfig{}
		require.ErrorIs(t, withSize(-1).apply(c), errNegative)
		require.Zero(t, c.size)
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		c := &sampleConfig{}
		err := Apply(c, withSize(10), withRange(0, 5), withSize(20))
		require.NoError(t, err)
		require.Equal(t, 20, c.size)
		require.Equal(t, 5, c.hi)
		require.Equal(t, "withSize", c.lastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		c := &sampleConfig{}
		err := Apply(c, withSize(5), withSize(-1), withRange(1, 2))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 5, c.size)
		require.Zero(t, c.hi, "options after the failing one are not applied")
	})

	t.Run("skips nil options", func(t *testing.T) {
		c := &sampleConfig{}
		require.NoError(t, Apply(c, nil, withSize(3)))
		require.Equal(t, 3, c.size)
	})

	t.Run("no options", func(t *testing.T) {
		c := &sampleConfig{}
		require.NoError(t, Apply(c))
		require.Equal(t, sampleConfig{}, *c)
	})
}

func TestApplyAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option[*sampleConfig]
		wantErr bool
	}{
		{"valid", []Option[*sampleConfig]{withRange(0, 10)}, false},
		{"invalid combination", []Option[*sampleConfig]{withRange(10, 0)}, true},
		{"option error wins", []Option[*sampleConfig]{withSize(-1), withRange(0, 10)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyAndValidate(&sampleConfig{}, validRange, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}

	require.NoError(t, ApplyAndValidate(&sampleConfig{}, nil, withSize(1)))
}

func TestNoError_WorksWithPrimitives(t *testing.T) {
	var num int
	opt := NoError(func(n *int) { *n = 42 })

	require.NoError(t, opt.apply(&num))
	require.Equal(t, 42, num)
}
