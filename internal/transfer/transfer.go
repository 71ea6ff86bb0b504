// Package transfer implements the transfer (activation) functions used by an
// adaptive linear unit, a registry to look them up by name, and a numeric
// derivative estimator that works for any of them.
package transfer

import "math"

// Func maps a weighted-sum vector to an output vector of the same length.
//
// Implementations must be pure: the result depends only on the argument and
// the argument is never modified. A Func may couple components (e.g. a
// softmax) but the reference functions below are all element-wise.
type Func func(net []float64) []float64

// HardLimit outputs 1 where net >= 0 and 0 elsewhere.
//
// Not differentiable: the numeric derivative is 0 away from the threshold.
func HardLimit(net []float64) []float64 {
	out := make([]float64, len(net))
	for i, x := range net {
		if x >= 0 {
			out[i] = 1
		}
	}
	return out
}

// SymHardLimit outputs 1 where net >= 0 and -1 elsewhere.
func SymHardLimit(net []float64) []float64 {
	out := make([]float64, len(net))
	for i, x := range net {
		if x >= 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// PureLin is the identity: f(x) = x.
func PureLin(net []float64) []float64 {
	return append([]float64(nil), net...)
}

// PosLin is the rectified linear function: f(x) = max(0, x).
func PosLin(net []float64) []float64 {
	out := make([]float64, len(net))
	for i, x := range net {
		if x > 0 {
			out[i] = x
		}
	}
	return out
}

// SatLin clamps x to [-1, 1].
func SatLin(net []float64) []float64 {
	out := make([]float64, len(net))
	for i, x := range net {
		out[i] = math.Max(-1, math.Min(1, x))
	}
	return out
}

// LogSig is the logistic sigmoid: σ(x) = 1 / (1 + exp(-x)).
//
// Output range is (0, 1); σ'(0) = 0.25.
func LogSig(net []float64) []float64 {
	out := make([]float64, len(net))
	for i, x := range net {
		out[i] = 1.0 / (1.0 + math.Exp(-x))
	}
	return out
}

// symLogSigBound is how far past ±1 rounding may push SymLogSig before the
// value is pulled back inside.
const symLogSigBound = 1.000001

// SymLogSig is the logistic sigmoid stretched to (-1, 1): 2σ(x) - 1.
//
// Values that land outside ±1.000001 have 0.002 subtracted.
func SymLogSig(net []float64) []float64 {
	out := make([]float64, len(net))
	for i, x := range net {
		y := 2.0/(1.0+math.Exp(-x)) - 1.0
		if y > symLogSigBound || y < -symLogSigBound {
			y -= 0.002
		}
		out[i] = y
	}
	return out
}
