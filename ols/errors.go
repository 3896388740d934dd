// SPDX-License-Identifier: MIT
// Package ols: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the ols
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package ols

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ols: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned directly when no extra
// context exists; otherwise they are wrapped once with
// fmt.Errorf("ctx: %w", ErrX) at the operation boundary — callers still
// match via errors.Is.

var (
	// ErrNilInput indicates a nil design matrix or response vector.
	ErrNilInput = errors.New("ols: nil design matrix or response vector")

	// ErrBadShape is returned when the design matrix has zero rows or columns.
	ErrBadShape = errors.New("ols: design matrix has invalid shape")

	// ErrDimensionMismatch indicates that the design matrix and the response
	// vector disagree on the number of observations.
	ErrDimensionMismatch = errors.New("ols: dimension mismatch")

	// ErrTooFewObservations signals n < k (fewer observations than
	// predictors), or n == k under VarianceUnbiased where the n−k divisor
	// degenerates to zero.
	ErrTooFewObservations = errors.New("ols: too few observations for the number of predictors")

	// ErrSingular is returned when XᵀX is singular or near-singular.
	// The solve is never silently approximated; rank-deficient designs
	// must be fixed by the caller.
	ErrSingular = errors.New("ols: singular design matrix")

	// ErrIndexOutOfRange indicates a coefficient index outside [0, k).
	ErrIndexOutOfRange = errors.New("ols: coefficient index out of range")

	// ErrInvalidZ signals a non-positive or non-finite z multiplier.
	ErrInvalidZ = errors.New("ols: z multiplier must be positive and finite")

	// ErrInvalidLevel signals a confidence level outside the open (0, 1).
	ErrInvalidLevel = errors.New("ols: confidence level must lie in (0, 1)")

	// ErrUnknownSolver marks an unrecognized Solver value in Options.
	ErrUnknownSolver = errors.New("ols: unknown solver")

	// ErrUnknownVarianceMode marks an unrecognized VarianceMode in Options.
	ErrUnknownVarianceMode = errors.New("ols: unknown variance mode")
)
