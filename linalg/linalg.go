// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the vector and matrix helpers used by adaptive
// units: checked products and in-place scaling utilities.
package linalg

import "github.com/born-ml/adaline/internal/linalg"

// Float is the set of element types accepted by the angle helpers.
type Float = linalg.Float

// DimensionError describes a size mismatch.
type DimensionError = linalg.DimensionError

// Errors.
var (
	ErrDimensionMismatch = linalg.ErrDimensionMismatch
	ErrEmptyOperand      = linalg.ErrEmptyOperand
)

// MatVec multiplies the rectangular matrix w by the vector p.
func MatVec(w [][]float64, p []float64) ([]float64, error) {
	return linalg.MatVec(w, p)
}

// Dot returns the inner product of w and p.
func Dot(w, p []float64) (float64, error) {
	return linalg.Dot(w, p)
}

// Scale multiplies every element of v by s in place.
func Scale(v []float64, s float64) {
	linalg.Scale(v, s)
}

// Normalize divides v in place by its largest absolute value.
func Normalize(v []float64) {
	linalg.Normalize(v)
}

// MaxAbsVal returns the largest absolute value in v.
func MaxAbsVal(v []float64) float64 {
	return linalg.MaxAbsVal(v)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[T Float](deg T) T {
	return linalg.Deg2Rad(deg)
}

// Rad2Deg converts radians to degrees.
func Rad2Deg[T Float](rad T) T {
	return linalg.Rad2Deg(rad)
}
