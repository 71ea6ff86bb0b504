package transfer

import "math"

// DerivativeStep is the half-width h of the symmetric difference used by the
// adaptive unit.
const DerivativeStep = 0.0005

// Derivative estimates df/dnet component-wise with a symmetric finite
// difference:
//
//	d[i] = (f(net+h)[i] - f(net-h)[i]) / (2h)
//
// f is evaluated twice on whole shifted vectors, so functions that couple
// components still see a consistent argument. The result is treated as a
// diagonal: cross terms are not estimated.
//
// The truncation error is O(h²) for smooth f. For functions with a jump
// (HardLimit, SymHardLimit) the estimate is 0 away from the jump and 1/(2h)
// times the jump size within h of it.
//
// h must be positive; zero, negative, NaN or infinite values select
// DerivativeStep.
func Derivative(f Func, net []float64, h float64) []float64 {
	if !(h > 0) || math.IsInf(h, 1) {
		h = DerivativeStep
	}

	lo := make([]float64, len(net))
	hi := make([]float64, len(net))
	for i, x := range net {
		lo[i] = x - h
		hi[i] = x + h
	}

	loOut := f(lo)
	hiOut := f(hi)

	inv := 1.0 / (2.0 * h)
	d := make([]float64, len(net))
	for i := range d {
		d[i] = (hiOut[i] - loOut[i]) * inv
	}
	return d
}
