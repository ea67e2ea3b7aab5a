// Package errs defines the sentinel errors returned by monoidmap packages.
//
// Callers match them with errors.Is; returned errors may wrap them with
// additional context.
package errs

import "errors"

var (
	// ErrInvalidSize is returned when a size or count option is negative.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidKeyRange is returned when a key range is empty or inverted.
	ErrInvalidKeyRange = errors.New("invalid key range")
	// ErrInvalidRatio is returned when a ratio option is outside [0, 1].
	ErrInvalidRatio = errors.New("invalid ratio")
	// ErrNotEncodable is returned when a value type cannot be encoded for
	// fingerprinting.
	ErrNotEncodable = errors.New("value type is not encodable")
)
