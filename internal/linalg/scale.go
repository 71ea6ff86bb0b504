package linalg

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Float is the set of element types the generic helpers accept.
type Float interface {
	~float32 | ~float64
}

// Scale multiplies every element of v by s in place.
func Scale(v []float64, s float64) {
	floats.Scale(s, v)
}

// MaxAbsVal returns the largest absolute value in v, or 0 for an empty vector.
func MaxAbsVal(v []float64) float64 {
	return floats.Norm(v, math.Inf(1))
}

// Normalize divides v in place by its largest absolute value, mapping it into
// [-1, 1]. An all-zero vector is left as is.
func Normalize(v []float64) {
	maxAbs := MaxAbsVal(v)
	if maxAbs <= 0 {
		maxAbs = 1
	}
	floats.Scale(1/maxAbs, v)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[T Float](deg T) T {
	return T(float64(deg) * math.Pi / 180.0)
}

// Rad2Deg converts radians to degrees.
func Rad2Deg[T Float](rad T) T {
	return T(float64(rad) * 180.0 / math.Pi)
}
