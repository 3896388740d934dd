// Package linreg is a compact toolkit for ordinary least squares:
// estimate a linear model, inspect its residuals, and bracket any
// coefficient with a Wald confidence interval.
//
// 🚀 What is linreg?
//
//	A small, deterministic library built on gonum that brings together:
//		• OLS estimation: QR-based solve (stable) or classic normal equations
//		• Residuals, residual variance (n−k or n divisor) and R²
//		• Coefficient covariance (XᵀX)⁻¹·σ̂² and Wald confidence intervals
//		• Seeded simulation of linear-model data, including the
//		  measurement-error (attenuation bias) experiment
//
// ✨ Why choose linreg?
//
//   - Immutable inputs – every transformation returns a fresh matrix;
//     your design matrix is never perturbed in place
//   - Loud failures – singular designs, shape mismatches and bad indexes
//     surface as sentinel errors matched via errors.Is, never approximated
//   - Pure Go on gonum – no cgo, no global state, reproducible with a seed
//
// Everything is organized under two subpackages:
//
//	ols/      — the estimator: Fit, Estimate, ConfidenceInterval
//	simulate/ — seeded synthetic datasets & measurement-error perturbation
//
// Quick example:
//
//	ds, _ := simulate.Generate(simulate.DefaultConfig())
//	model, err := ols.Fit(ds.X, ds.Y, nil)
//	if err != nil {
//	    // ErrSingular, ErrDimensionMismatch, ...
//	}
//	lo, hi, _ := model.ConfidenceInterval(1, ols.DefaultZ)
//
// See each package's doc.go and example_test.go for full walkthroughs.
package linreg
