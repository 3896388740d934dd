// Package ols: result types of a single estimation.
package ols

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Model is the immutable result of one OLS fit. All fields are freshly
// allocated by Fit; the caller's design matrix and response vector are
// never referenced afterwards. A Model is not mutated once returned.
type Model struct {
	// Coefficients is β̂, length K.
	Coefficients *mat.VecDense

	// Residuals is ε = Y − Xβ̂, length N, owned by this Model.
	Residuals *mat.VecDense

	// Cov is the estimated covariance of β̂, (XᵀX)⁻¹·σ̂² (K×K).
	// This assumes homoscedastic, uncorrelated errors; it is not a
	// robust/heteroscedasticity-consistent estimator.
	Cov *mat.SymDense

	// Sigma2 is the residual variance σ̂², with the divisor chosen by
	// Options.Variance (n−k by default, n under VariancePopulation).
	Sigma2 float64

	// RSquared is the coefficient of determination (1.0 = perfect fit).
	RSquared float64

	// N and K are the observation and predictor counts of the fit.
	N, K int
}

// Coefficient returns β̂ⱼ.
// Returns ErrIndexOutOfRange when j ∉ [0, K).
func (m *Model) Coefficient(j int) (float64, error) {
	if j < 0 || j >= m.K {
		return 0, fmt.Errorf("coefficient %d of %d: %w", j, m.K, ErrIndexOutOfRange)
	}

	return m.Coefficients.AtVec(j), nil
}

// StandardError returns the standard error of β̂ⱼ: the square root of
// the (j, j) diagonal entry of Cov.
// Returns ErrIndexOutOfRange when j ∉ [0, K).
func (m *Model) StandardError(j int) (float64, error) {
	if j < 0 || j >= m.K {
		return 0, fmt.Errorf("coefficient %d of %d: %w", j, m.K, ErrIndexOutOfRange)
	}

	return math.Sqrt(m.Cov.At(j, j)), nil
}

// ConfidenceInterval returns the Wald interval [β̂ⱼ − z·SE, β̂ⱼ + z·SE]
// for coefficient j. The interval always brackets the point estimate.
//
// Stage 1 (Validate): j ∈ [0, K), z positive and finite.
// Stage 2 (Execute): look up β̂ⱼ and SEⱼ, expand by z.
//
// Returns ErrIndexOutOfRange or ErrInvalidZ on bad input.
func (m *Model) ConfidenceInterval(j int, z float64) (lower, upper float64, err error) {
	// Validate the multiplier first: a bad z is a configuration error
	// regardless of the index.
	if z <= 0 || math.IsInf(z, 0) || math.IsNaN(z) {
		return 0, 0, fmt.Errorf("z=%g: %w", z, ErrInvalidZ)
	}

	se, err := m.StandardError(j)
	if err != nil {
		return 0, 0, err
	}

	point := m.Coefficients.AtVec(j)

	return point - z*se, point + z*se, nil
}
