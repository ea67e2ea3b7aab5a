package monoidmap

import (
	"cmp"
	"encoding"
	"encoding/binary"
	"fmt"

	"github.com/arloliu/monoidmap/errs"
	"github.com/arloliu/monoidmap/internal/hash"
	"github.com/arloliu/monoidmap/internal/options"
	"github.com/arloliu/monoidmap/internal/pool"
	"github.com/arloliu/monoidmap/monoid"
)

type fingerprintConfig struct {
	seed uint64
}

// FingerprintOption configures Fingerprint.
type FingerprintOption = options.Option[*fingerprintConfig]

// WithSeed seeds the fingerprint hash. Fingerprints computed with different
// seeds are unrelated.
func WithSeed(seed uint64) FingerprintOption {
	return options.NoError(func(c *fingerprintConfig) {
		c.seed = seed
	})
}

// AppendBinary appends the canonical encoding of m to dst: the entry count
// followed by every entry in ascending key order, the key in its canonical
// encoding and the value length-prefixed.
//
// Values must implement encoding.BinaryAppender; otherwise the error wraps
// errs.ErrNotEncodable. Since Map implements it too, nested maps encode as
// long as their innermost values do.
func (m Map[K, V]) AppendBinary(dst []byte) ([]byte, error) {
	dst = binary.AppendUvarint(dst, uint64(m.Len()))

	scratch := pool.GetFingerprintBuffer()
	defer pool.PutFingerprintBuffer(scratch)

	for k, v := range m.All() {
		enc, ok := any(v).(encoding.BinaryAppender)
		if !ok {
			return dst, fmt.Errorf("monoidmap: %T: %w", v, errs.ErrNotEncodable)
		}

		scratch.Reset()
		var err error
		scratch.B, err = enc.AppendBinary(scratch.B)
		if err != nil {
			return dst, fmt.Errorf("monoidmap: encode value at key %v: %w", k, err)
		}

		dst = hash.AppendKey(dst, k)
		dst = hash.AppendBytes(dst, scratch.Bytes())
	}

	return dst, nil
}

// Fingerprint returns a 64-bit xxHash digest of the canonical encoding of m.
//
// Equal maps have equal fingerprints no matter how they were built. The
// digest is intended for change detection and deduplication, not for
// security purposes.
//
// Example:
//
//	a := monoidmap.FromList([]monoidmap.Entry[string, monoid.Nat]{{"x", 1}, {"y", 2}})
//	b := monoidmap.Singleton("y", monoid.Nat(2)).Set("x", 1)
//	fa, _ := monoidmap.Fingerprint(a)
//	fb, _ := monoidmap.Fingerprint(b)
//	// fa == fb
func Fingerprint[K cmp.Ordered, V monoid.Monoid[V]](m Map[K, V], opts ...FingerprintOption) (uint64, error) {
	cfg := &fingerprintConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return 0, err
	}

	buf := pool.GetFingerprintBuffer()
	defer pool.PutFingerprintBuffer(buf)

	var err error
	buf.B, err = m.AppendBinary(buf.B)
	if err != nil {
		return 0, err
	}

	return hash.Sum(buf.Bytes(), cfg.seed), nil
}
