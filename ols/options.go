// Package ols defines options and modes for ordinary least squares.
package ols

// Solver selects how the coefficient vector β̂ is computed.
//
//   - SolverQR — solve the least-squares problem through a QR
//     factorization of X. Numerically stable even when XᵀX is
//     ill-conditioned; this is the default.
//
//   - SolverNormalEquations — solve (XᵀX)β = XᵀY by inverting XᵀX.
//     The textbook form; squares the condition number of X, so prefer
//     SolverQR unless you specifically want the classic construction.
type Solver int

const (
	// SolverQR mode: QR-based least squares, stable, default.
	SolverQR Solver = iota

	// SolverNormalEquations mode: explicit (XᵀX)⁻¹XᵀY, textbook form.
	SolverNormalEquations
)

// VarianceMode selects the divisor of the residual variance σ̂².
//
//   - VarianceUnbiased — σ̂² = εᵀε / (n−k), the degrees-of-freedom
//     corrected estimator; this is the default. Requires n > k.
//
//   - VariancePopulation — σ̂² = εᵀε / n, the population-style variance
//     of the residual vector. The two differ by the factor n/(n−k).
type VarianceMode int

const (
	// VarianceUnbiased mode: divisor n−k, default.
	VarianceUnbiased VarianceMode = iota

	// VariancePopulation mode: divisor n.
	VariancePopulation
)

// DefaultZ is the fixed 95% normal-approximation multiplier used by the
// package-level ConfidenceInterval convenience. Use ZForLevel for other
// confidence levels.
const DefaultZ = 1.96

// Options configures a single Fit call.
//
// Fields:
//   - Solver   — SolverQR (default) or SolverNormalEquations.
//   - Variance — VarianceUnbiased (default, divisor n−k) or
//     VariancePopulation (divisor n).
//
// Example:
//
//	opts := ols.DefaultOptions()
//	opts.Variance = ols.VariancePopulation // match a plain variance-of-residuals
//
//	model, err := ols.Fit(x, y, &opts)
//	if err != nil {
//	  // handle ErrSingular, ErrDimensionMismatch, ...
//	}
type Options struct {
	Solver   Solver
	Variance VarianceMode
}

// DefaultOptions returns the canonical configuration: QR solver and the
// unbiased (n−k) residual variance.
func DefaultOptions() Options {
	return Options{
		Solver:   SolverQR,
		Variance: VarianceUnbiased,
	}
}

// validate rejects unrecognized enum values before any computation.
func (o Options) validate() error {
	if o.Solver != SolverQR && o.Solver != SolverNormalEquations {
		return ErrUnknownSolver
	}
	if o.Variance != VarianceUnbiased && o.Variance != VariancePopulation {
		return ErrUnknownVarianceMode
	}

	return nil
}
