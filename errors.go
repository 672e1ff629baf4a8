package swrast

import "errors"

// Sentinel errors for programming-error failures: mismatched target sizes
// or invalid configuration discovered at render setup. The library panics
// with these (directly or wrapped), never from the per-fragment hot path;
// callers can match a recovered value with errors.Is.
var (
	// ErrSizeMismatch is the panic value (wrapped with the two sizes) when a
	// pixel target and a depth target passed to the same render call have
	// different dimensions.
	ErrSizeMismatch = errors.New("swrast: pixel and depth target sizes differ")

	// ErrZeroSize is the panic value when a Buffer is constructed with a
	// zero or negative extent along some axis.
	ErrZeroSize = errors.New("swrast: buffer size must be positive in every dimension")

	// ErrEmptyTexture is the panic value of Read on an Empty texture or
	// target.
	ErrEmptyTexture = errors.New("swrast: cannot read from an empty texture")
)
