// Package simulate: sentinel error set.
// Every message is prefixed with "simulate: ..."; callers match via
// errors.Is. Generators never panic on user-supplied configuration.

package simulate

import "errors"

var (
	// ErrBadConfig indicates an unusable Config: N < 1, an empty Beta,
	// or fewer observations than coefficients.
	ErrBadConfig = errors.New("simulate: invalid configuration")

	// ErrNegativeSigma indicates a negative noise standard deviation.
	ErrNegativeSigma = errors.New("simulate: noise sigma must be non-negative")

	// ErrNilMatrix indicates a nil design matrix argument.
	ErrNilMatrix = errors.New("simulate: nil design matrix")

	// ErrColumnOutOfRange indicates a column index outside the matrix extent.
	ErrColumnOutOfRange = errors.New("simulate: column index out of range")
)
