// Package simulate generates reproducible synthetic data for linear
// models: a design matrix of an intercept plus uniform(0, 1) predictors,
// a response built from known coefficients and Gaussian noise, and a
// measurement-error perturbation applied to an explicit copy.
//
// 🚀 Why simulate?
//
//	Known generating coefficients turn estimator properties into exact
//	tests: zero noise must be recovered perfectly, and noise injected
//	into a predictor must attenuate its coefficient toward zero.
//
// ✨ Key guarantees:
//   - deterministic – one seeded rand.Source per call; same seed, same bits
//   - non-mutating – WithMeasurementError copies before perturbing, so
//     the original design matrix is never corrupted
//   - validated – bad configuration fails with sentinel errors instead
//     of producing nonsense data
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linreg/simulate"
//
//	ds, err := simulate.Generate(simulate.Config{
//	  N:          100,
//	  Beta:       []float64{5, 2},
//	  NoiseSigma: 1,
//	  Seed:       42,
//	})
//
//	// attenuation-bias experiment: perturb predictor column 1 of a copy
//	noisy, err := simulate.WithMeasurementError(ds.X, 1, 1.0, 7)
//
// See example_test.go in the ols package for the full round trip.
package simulate
