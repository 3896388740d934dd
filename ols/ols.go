// SPDX-License-Identifier: MIT
// Package ols: estimation kernels.
//
// OLS — Ordinary Least Squares
//
// Description:
//
//	Given a design matrix X (n×k, first column conventionally all ones)
//	and a response vector Y (length n), OLS finds the coefficient vector
//	β̂ minimizing ‖Y − Xβ‖². From β̂ the package derives residuals,
//	residual variance, the coefficient covariance (XᵀX)⁻¹·σ̂², and Wald
//	confidence intervals β̂ⱼ ± z·SEⱼ.
//
// Algorithm Outline:
//  1. Validate: non-nil inputs, n ≥ 1 and k ≥ 1, len(Y) == n, n ≥ k,
//     recognized Options values.
//  2. Solve for β̂:
//     SolverQR              — QR factorization of X (stable, default)
//     SolverNormalEquations — β̂ = (XᵀX)⁻¹ XᵀY (textbook form)
//  3. Invert XᵀX for the covariance; any mat.Condition signal from the
//     solve or the inversion is surfaced as ErrSingular, never
//     approximated.
//  4. Finalize: ε = Y − Xβ̂, σ̂² = εᵀε / (n−k) (or /n), Cov = (XᵀX)⁻¹·σ̂²,
//     R² from fitted vs observed values.
//
// Complexity:
//
//	Time   = O(n·k²)
//	Memory = O(n·k)
//
// Errors:
//   - ErrNilInput / ErrBadShape / ErrDimensionMismatch / ErrTooFewObservations
//   - ErrSingular — rank-deficient or near-singular design.
package ols

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fit estimates the linear model Y = Xβ + ε and returns the full Model.
// A nil opts selects DefaultOptions. Neither x nor y is mutated; every
// field of the returned Model is freshly allocated.
//
// Example:
//
//	model, err := ols.Fit(x, y, nil)
//	if errors.Is(err, ols.ErrSingular) {
//	  // drop or merge collinear predictors and retry
//	}
func Fit(x mat.Matrix, y mat.Vector, opts *Options) (*Model, error) {
	// Stage 1 (Options): nil means defaults; reject unknown enum values.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Stage 1 (Validate): shapes before any allocation.
	if x == nil || y == nil {
		return nil, ErrNilInput
	}
	n, k := x.Dims()
	if n < 1 || k < 1 {
		return nil, fmt.Errorf("%dx%d design: %w", n, k, ErrBadShape)
	}
	if y.Len() != n {
		return nil, fmt.Errorf("X has %d rows, Y has %d: %w", n, y.Len(), ErrDimensionMismatch)
	}
	if n < k {
		return nil, fmt.Errorf("n=%d < k=%d: %w", n, k, ErrTooFewObservations)
	}
	if cfg.Variance == VarianceUnbiased && n == k {
		return nil, fmt.Errorf("n=%d == k=%d leaves zero degrees of freedom: %w", n, k, ErrTooFewObservations)
	}

	// Stage 2 (Prepare): XᵀX and its inverse are needed for the covariance
	// in both solver paths, and for β̂ under SolverNormalEquations.
	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, asSingular(err)
	}

	// Stage 3 (Solve): coefficient vector by the selected method.
	var (
		beta *mat.VecDense
		err  error
	)
	switch cfg.Solver {
	case SolverQR:
		beta, err = solveQR(x, y, k)
	case SolverNormalEquations:
		beta, err = solveNormal(&xtxInv, x, y, k)
	}
	if err != nil {
		return nil, err
	}

	// Stage 4 (Residuals): ε = Y − Xβ̂.
	var fitted mat.VecDense
	fitted.MulVec(x, beta)

	var resid mat.VecDense
	resid.SubVec(y, &fitted)

	// Stage 4 (Variance): εᵀε over the configured divisor. Residuals of a
	// model with an intercept are mean-zero, so no extra centering is done.
	ssr := mat.Dot(&resid, &resid)
	div := float64(n - k)
	if cfg.Variance == VariancePopulation {
		div = float64(n)
	}
	sigma2 := ssr / div

	// Stage 4 (Covariance): Cov = (XᵀX)⁻¹·σ̂², symmetrized to absorb
	// floating-point asymmetry in the computed inverse.
	covData := make([]float64, k*k)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			v := 0.5 * (xtxInv.At(i, j) + xtxInv.At(j, i)) * sigma2
			covData[i*k+j] = v
			covData[j*k+i] = v
		}
	}

	// Stage 4 (Goodness of fit): R² from fitted vs observed.
	est := make([]float64, n)
	obs := make([]float64, n)
	for i := 0; i < n; i++ {
		est[i] = fitted.AtVec(i)
		obs[i] = y.AtVec(i)
	}

	return &Model{
		Coefficients: beta,
		Residuals:    mat.VecDenseCopyOf(&resid),
		Cov:          mat.NewSymDense(k, covData),
		Sigma2:       sigma2,
		RSquared:     stat.RSquaredFrom(est, obs, nil),
		N:            n,
		K:            k,
	}, nil
}

// Estimate solves the normal-equations problem and returns only β̂.
// Thin convenience over Fit with default options.
func Estimate(x mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	model, err := Fit(x, y, nil)
	if err != nil {
		return nil, err
	}

	return model.Coefficients, nil
}

// ConfidenceInterval fits the model and returns the Wald interval
// [β̂ⱼ − z·SE, β̂ⱼ + z·SE] for coefficient j. Use DefaultZ for the fixed
// 95% multiplier, or ZForLevel for other levels.
func ConfidenceInterval(x mat.Matrix, y mat.Vector, j int, z float64) (lower, upper float64, err error) {
	model, err := Fit(x, y, nil)
	if err != nil {
		return 0, 0, err
	}

	return model.ConfidenceInterval(j, z)
}

// ZForLevel converts a two-sided confidence level (e.g. 0.95) into the
// matching standard-normal multiplier via the unit-normal quantile.
// Returns ErrInvalidLevel unless level ∈ (0, 1).
func ZForLevel(level float64) (float64, error) {
	if !(level > 0 && level < 1) {
		return 0, fmt.Errorf("level=%g: %w", level, ErrInvalidLevel)
	}

	return distuv.UnitNormal.Quantile(0.5 + level/2), nil
}

// solveQR computes β̂ through a QR factorization of X.
// Rank deficiency surfaces from SolveTo as a mat.Condition error.
func solveQR(x mat.Matrix, y mat.Vector, k int) (*mat.VecDense, error) {
	var qr mat.QR
	qr.Factorize(x)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, y); err != nil {
		return nil, asSingular(err)
	}

	beta := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		beta.SetVec(i, sol.At(i, 0))
	}

	return beta, nil
}

// solveNormal computes β̂ = (XᵀX)⁻¹ XᵀY from the precomputed inverse.
func solveNormal(xtxInv mat.Matrix, x mat.Matrix, y mat.Vector, k int) (*mat.VecDense, error) {
	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	beta := mat.NewVecDense(k, nil)
	beta.MulVec(xtxInv, &xty)

	return beta, nil
}

// asSingular maps gonum's mat.Condition signals onto ErrSingular while
// preserving the reported condition number; any other error passes
// through unchanged.
func asSingular(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return fmt.Errorf("condition number %.4g: %w", float64(cond), ErrSingular)
	}

	return err
}
