// Package ols estimates linear models by ordinary least squares and
// brackets individual coefficients with Wald confidence intervals.
//
// 🚀 What is ols?
//
//	Given X (n×k, full column rank, n ≥ k) and Y (length n), the package
//	computes in one shot:
//	  • β̂ — the coefficient vector minimizing ‖Y − Xβ‖²
//	  • ε  — residuals Y − Xβ̂, owned by the returned Model
//	  • σ̂² — residual variance, divisor n−k (default) or n
//	  • Cov — (XᵀX)⁻¹·σ̂², the homoscedastic coefficient covariance
//	  • R²  — goodness of fit
//
// ✨ Key features:
//   - QR-based solve by default; the textbook normal-equations form is
//     one option away (choose via Options.Solver)
//   - singular or near-singular designs fail loudly with ErrSingular —
//     the solve is never silently approximated
//   - inputs are read-only: Fit allocates fresh outputs and keeps no
//     reference to X or Y
//   - one-shot and synchronous: no goroutines, no shared state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linreg/ols"
//
//	model, err := ols.Fit(x, y, nil) // nil → DefaultOptions
//	if err != nil {
//	  // errors.Is: ErrSingular, ErrDimensionMismatch,
//	  // ErrTooFewObservations, ErrIndexOutOfRange, ...
//	}
//	lo, hi, err := model.ConfidenceInterval(1, ols.DefaultZ)
//
// Performance:
//
//   - Time:   O(n·k²)
//   - Memory: O(n·k)
//
// See examples in example_test.go for complete walkthroughs, including
// the measurement-error attenuation experiment driven by the simulate
// package.
package ols
