package adaline

import (
	"fmt"
	"math"

	"github.com/born-ml/adaline/internal/linalg"
)

// InitWeightsRandom replaces the weights with a rows x cols matrix drawn
// uniformly from [-maxVal, maxVal].
//
// rows and cols below 1 are raised to 1, so the result is never empty.
// cols counts the bias column.
func (u *Unit) InitWeightsRandom(rows, cols int, maxVal float64) {
	u.weights = u.uniform(rows, cols, maxVal)
}

// InitWeightsXavier replaces the weights with a rows x cols matrix drawn from
// the Xavier/Glorot uniform distribution:
//
//	U(-sqrt(6/(rows + cols)), sqrt(6/(rows + cols)))
//
// rows and cols below 1 are raised to 1.
func (u *Unit) InitWeightsXavier(rows, cols int) {
	rows, cols = max(rows, 1), max(cols, 1)
	bound := math.Sqrt(6.0 / float64(rows+cols))
	u.weights = u.uniform(rows, cols, bound)
}

func (u *Unit) uniform(rows, cols int, bound float64) [][]float64 {
	rows, cols = max(rows, 1), max(cols, 1)

	rng := u.random()
	w := make([][]float64, rows)
	for j := range w {
		w[j] = make([]float64, cols)
		for i := range w[j] {
			w[j][i] = (rng.Float64()*2.0 - 1.0) * bound
		}
	}
	return w
}

// SetWeights replaces the weights with a copy of w, e.g. a matrix loaded from
// a trained model.
//
// w must have at least one row and its first row at least one column;
// otherwise the weights are left unchanged and the error wraps
// linalg.ErrEmptyOperand. Rows are not checked for equal length.
func (u *Unit) SetWeights(w [][]float64) error {
	if len(w) == 0 || len(w[0]) == 0 {
		return fmt.Errorf("adaline: set weights: %w", linalg.ErrEmptyOperand)
	}
	u.weights = linalg.Clone(w)
	return nil
}

// Weights returns a copy of the weight matrix.
func (u *Unit) Weights() [][]float64 {
	return linalg.Clone(u.weights)
}

// NumWeights returns the row and column counts of the weight matrix.
// cols is taken from the first row; both are 0 when no weights are set.
func (u *Unit) NumWeights() (rows, cols int) {
	if len(u.weights) == 0 {
		return 0, 0
	}
	return len(u.weights), len(u.weights[0])
}
