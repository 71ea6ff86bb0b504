// Package linalg provides the small set of dense vector and matrix helpers
// needed by an adaptive linear unit.
//
// Matrices are row-major [][]float64. Products validate every operand before
// producing any output, so a failed call never returns a partial result. The
// arithmetic itself is done by gonum's floats package once sizes are known to
// agree.
package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MatVec multiplies the rectangular matrix w by the vector p.
//
// The result has one element per row of w:
//
//	out[j] = Σ_i w[j][i] * p[i]
//
// Errors:
//   - ErrEmptyOperand if p is empty or w has no rows
//   - *DimensionError (wraps ErrDimensionMismatch) if any row length differs from len(p)
func MatVec(w [][]float64, p []float64) ([]float64, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("matvec: zero-length vector: %w", ErrEmptyOperand)
	}
	if len(w) == 0 {
		return nil, fmt.Errorf("matvec: matrix has no rows: %w", ErrEmptyOperand)
	}
	for j, row := range w {
		if len(row) != len(p) {
			return nil, &DimensionError{Op: "matvec", Index: j, Got: len(row), Want: len(p)}
		}
	}

	out := make([]float64, len(w))
	for j, row := range w {
		out[j] = floats.Dot(row, p)
	}
	return out, nil
}

// Dot returns the inner product of w and p.
//
// Two empty vectors have a product of zero. Vectors of different length
// return a *DimensionError.
func Dot(w, p []float64) (float64, error) {
	if len(w) != len(p) {
		return 0, &DimensionError{Op: "dot", Index: -1, Got: len(p), Want: len(w)}
	}
	return floats.Dot(w, p), nil
}

// Clone returns a deep copy of m.
func Clone(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for j, row := range m {
		out[j] = append([]float64(nil), row...)
	}
	return out
}
