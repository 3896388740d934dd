package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linreg/simulate"
)

// TestGenerate_Shapes verifies dimensions and the intercept column.
func TestGenerate_Shapes(t *testing.T) {
	ds, err := simulate.Generate(simulate.Config{N: 25, Beta: []float64{5, 2, -1}, NoiseSigma: 1, Seed: 1})
	assert.NoError(t, err, "valid config must not error")

	n, k := ds.X.Dims()
	assert.Equal(t, 25, n, "rows must equal N")
	assert.Equal(t, 3, k, "columns must equal len(Beta)")
	assert.Equal(t, 25, ds.Y.Len(), "response length must equal N")

	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, ds.X.At(i, 0), "column 0 must be the intercept (row %d)", i)
		for j := 1; j < k; j++ {
			v := ds.X.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0, "predictors are uniform(0,1)")
			assert.Less(t, v, 1.0, "predictors are uniform(0,1)")
		}
	}
}

// TestGenerate_Deterministic verifies that identical seeds reproduce the
// dataset bit-for-bit.
func TestGenerate_Deterministic(t *testing.T) {
	cfg := simulate.Config{N: 40, Beta: []float64{5, 2}, NoiseSigma: 1, Seed: 123}

	a, err := simulate.Generate(cfg)
	assert.NoError(t, err)
	b, err := simulate.Generate(cfg)
	assert.NoError(t, err)

	assert.True(t, mat.Equal(a.X, b.X), "same seed must reproduce X")
	assert.True(t, mat.Equal(a.Y, b.Y), "same seed must reproduce Y")

	cfg.Seed = 124
	c, err := simulate.Generate(cfg)
	assert.NoError(t, err)
	assert.False(t, mat.Equal(a.X, c.X), "different seeds must differ")
}

// TestGenerate_ZeroNoiseIsExact verifies that NoiseSigma = 0 puts every
// response exactly on the generating hyperplane.
func TestGenerate_ZeroNoiseIsExact(t *testing.T) {
	ds, err := simulate.Generate(simulate.Config{N: 10, Beta: []float64{5, 2}, NoiseSigma: 0, Seed: 1})
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		want := 5*ds.X.At(i, 0) + 2*ds.X.At(i, 1)
		assert.Equal(t, want, ds.Y.AtVec(i), "row %d must lie on the hyperplane", i)
	}
}

// TestGenerate_BadConfig covers the configuration sentinels.
func TestGenerate_BadConfig(t *testing.T) {
	_, err := simulate.Generate(simulate.Config{N: 0, Beta: []float64{1}, Seed: 1})
	assert.ErrorIs(t, err, simulate.ErrBadConfig, "N < 1 must error")

	_, err = simulate.Generate(simulate.Config{N: 10, Beta: nil, Seed: 1})
	assert.ErrorIs(t, err, simulate.ErrBadConfig, "empty Beta must error")

	_, err = simulate.Generate(simulate.Config{N: 1, Beta: []float64{1, 2}, Seed: 1})
	assert.ErrorIs(t, err, simulate.ErrBadConfig, "N < len(Beta) must error")

	_, err = simulate.Generate(simulate.Config{N: 10, Beta: []float64{1}, NoiseSigma: -1, Seed: 1})
	assert.ErrorIs(t, err, simulate.ErrNegativeSigma, "negative sigma must error")
}

// TestGenerate_BetaIsCopied ensures the Dataset does not alias the
// caller's coefficient slice.
func TestGenerate_BetaIsCopied(t *testing.T) {
	beta := []float64{5, 2}
	ds, err := simulate.Generate(simulate.Config{N: 10, Beta: beta, NoiseSigma: 0, Seed: 1})
	assert.NoError(t, err)

	beta[1] = 99
	assert.Equal(t, 2.0, ds.Beta[1], "Dataset.Beta must be a private copy")
}

// TestWithMeasurementError_CopiesInput verifies the defensive-copy
// contract: the input matrix stays untouched, only the target column of
// the returned copy changes.
func TestWithMeasurementError_CopiesInput(t *testing.T) {
	ds, err := simulate.Generate(simulate.Config{N: 30, Beta: []float64{5, 2}, NoiseSigma: 0, Seed: 1})
	assert.NoError(t, err)

	pristine := mat.DenseCopyOf(ds.X)

	noisy, err := simulate.WithMeasurementError(ds.X, 1, 0.5, 7)
	assert.NoError(t, err)
	assert.True(t, mat.Equal(pristine, ds.X), "input matrix must not be mutated")
	assert.False(t, mat.Equal(ds.X, noisy), "returned copy must be perturbed")

	n, _ := ds.X.Dims()
	for i := 0; i < n; i++ {
		assert.Equal(t, ds.X.At(i, 0), noisy.At(i, 0), "untouched column must match (row %d)", i)
		assert.NotEqual(t, ds.X.At(i, 1), noisy.At(i, 1), "target column must change (row %d)", i)
	}
}

// TestWithMeasurementError_Deterministic verifies seed reproducibility.
func TestWithMeasurementError_Deterministic(t *testing.T) {
	ds, err := simulate.Generate(simulate.Config{N: 20, Beta: []float64{5, 2}, NoiseSigma: 0, Seed: 1})
	assert.NoError(t, err)

	a, err := simulate.WithMeasurementError(ds.X, 1, 1.0, 7)
	assert.NoError(t, err)
	b, err := simulate.WithMeasurementError(ds.X, 1, 1.0, 7)
	assert.NoError(t, err)

	assert.True(t, mat.Equal(a, b), "same seed must reproduce the perturbation")
}

// TestWithMeasurementError_BadInput covers nil, index and sigma checks.
func TestWithMeasurementError_BadInput(t *testing.T) {
	_, err := simulate.WithMeasurementError(nil, 0, 1, 1)
	assert.ErrorIs(t, err, simulate.ErrNilMatrix, "nil matrix must error")

	x := mat.NewDense(3, 2, nil)

	_, err = simulate.WithMeasurementError(x, 2, 1, 1)
	assert.ErrorIs(t, err, simulate.ErrColumnOutOfRange, "column == k must error")

	_, err = simulate.WithMeasurementError(x, -1, 1, 1)
	assert.ErrorIs(t, err, simulate.ErrColumnOutOfRange, "negative column must error")

	_, err = simulate.WithMeasurementError(x, 0, -0.1, 1)
	assert.ErrorIs(t, err, simulate.ErrNegativeSigma, "negative sigma must error")
}
