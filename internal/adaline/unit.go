// Package adaline implements a Widrow-Hoff adaptive linear unit trained online
// with the least-mean-squares (LMS) rule.
//
// The bias is folded into the weight matrix: every row carries one extra
// column, and callers append a constant input (conventionally 1.0) before
// calling Run.
package adaline

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/adaline/internal/linalg"
	"github.com/born-ml/adaline/internal/transfer"
)

// Unit is a single adaptive linear layer: a weight matrix followed by a
// transfer function.
//
// Each Run pushes the input and the transfer-function derivative onto two
// history stacks; each Adapt pops one pair. This lets a unit be run several
// times before the error is known (e.g. over a time sequence) and then be
// adapted once per step, most recent step first.
//
// Update rule:
//
//	δ[j]    = f'(net[j]) * err[j]
//	W[j][i] = W[j][i] + mu * δ[j] * input[i]
//	out[i]  = Σ_j W[j][i] * δ[j]
//
// A Unit is not safe for concurrent use. Build one with New; a zero Unit
// works too and falls back to DefaultMu, LogSig and a time-seeded source.
//
// Example:
//
//	u := adaline.New(adaline.Config{Mu: 0.1, Transfer: transfer.PureLin})
//	u.InitWeightsRandom(1, 3, adaline.DefaultInitMagnitude)
//
//	out, err := u.Run([]float64{x0, x1, 1.0}) // 1.0 is the bias input
//	...
//	back, err := u.Adapt([]float64{target - out[0]}, true)
type Unit struct {
	weights     [][]float64 // [rows][cols], bias in the last column by convention
	mu          float64
	xfer        transfer.Func
	rng         *rand.Rand
	inputs      Stack[[]float64]
	derivatives Stack[[]float64]
}

// New creates a Unit with no weights.
//
// Call InitWeightsRandom, InitWeightsXavier or SetWeights before Run.
func New(config Config) *Unit {
	if config.Transfer == nil {
		config.Transfer = transfer.LogSig
	}
	if config.Rand == nil {
		config.Rand = newSource()
	}

	return &Unit{
		mu:   clampMu(config.Mu),
		xfer: config.Transfer,
		rng:  config.Rand,
	}
}

// Run computes the output for input and records what Adapt will need.
//
// input must already include the bias term, so len(input) equals the number
// of weight columns. The returned output has one element per weight row.
//
// On success the input and the derivative of the transfer function at the
// weighted sum are pushed onto the history stacks. On failure nothing is
// pushed; the error wraps linalg.ErrEmptyOperand or
// linalg.ErrDimensionMismatch.
func (u *Unit) Run(input []float64) ([]float64, error) {
	net, err := linalg.MatVec(u.weights, input)
	if err != nil {
		return nil, fmt.Errorf("adaline: run: %w", err)
	}

	f := u.Transfer()
	output := f(net)

	u.inputs.Push(append([]float64(nil), input...))
	u.derivatives.Push(transfer.Derivative(f, net, transfer.DerivativeStep))

	return output, nil
}

// Adapt applies one LMS step for the most recent un-adapted Run and returns
// the error propagated to that Run's inputs.
//
// errIn holds one value per output row. The returned slice holds one value per
// weight column, including the bias column; drop its last element before
// feeding it to an upstream unit. errIn is not modified.
//
// When adapt is false the weights are left untouched and the unit only
// propagates error, e.g. back through an already trained emulator.
//
// All checks run before anything is popped or written, so a failed call
// leaves the unit exactly as it was. Errors wrap:
//   - linalg.ErrDimensionMismatch if len(errIn) differs from the row count, or
//     the recorded pass no longer fits the current weights
//   - ErrStackUnderflow if there is no recorded pass
func (u *Unit) Adapt(errIn []float64, adapt bool) ([]float64, error) {
	if err := u.checkAdapt(errIn); err != nil {
		return nil, fmt.Errorf("adaline: adapt: %w", err)
	}

	derivative, _ := u.derivatives.Pop()
	input, _ := u.inputs.Pop()

	mu := u.Mu()
	errOut := make([]float64, len(input))
	for j, row := range u.weights {
		delta := derivative[j] * errIn[j]

		if adapt {
			floats.AddScaled(row, mu*delta, input)
		}
		// Propagate through the row as it stands after the update.
		floats.AddScaled(errOut, delta, row)
	}

	return errOut, nil
}

// AdaptInPlace is Adapt with the error vector passed by reference: on success
// *errp is replaced by the propagated error, on failure it is left alone.
// A nil errp is rejected with linalg.ErrEmptyOperand.
func (u *Unit) AdaptInPlace(errp *[]float64, adapt bool) error {
	if errp == nil {
		return fmt.Errorf("adaline: adapt: nil error vector: %w", linalg.ErrEmptyOperand)
	}
	errOut, err := u.Adapt(*errp, adapt)
	if err != nil {
		return err
	}
	*errp = errOut
	return nil
}

// checkAdapt validates everything Adapt depends on without mutating state.
func (u *Unit) checkAdapt(errIn []float64) error {
	if len(errIn) != len(u.weights) {
		return &linalg.DimensionError{Op: "error vector", Index: -1, Got: len(errIn), Want: len(u.weights)}
	}

	if u.inputs.Len() == 0 || u.derivatives.Len() == 0 {
		return ErrStackUnderflow
	}
	if u.inputs.Len() != u.derivatives.Len() {
		return fmt.Errorf("%w: %d inputs, %d derivatives", ErrStackUnderflow, u.inputs.Len(), u.derivatives.Len())
	}

	derivative, _ := u.derivatives.Peek()
	if len(derivative) != len(u.weights) {
		return &linalg.DimensionError{Op: "derivative history", Index: -1, Got: len(derivative), Want: len(u.weights)}
	}
	input, _ := u.inputs.Peek()
	for j, row := range u.weights {
		if len(row) != len(input) {
			return &linalg.DimensionError{Op: "input history", Index: j, Got: len(input), Want: len(row)}
		}
	}
	return nil
}

// SetTransfer replaces the transfer function. A nil f restores LogSig.
//
// Derivatives already on the history stack keep the value they were
// computed with.
func (u *Unit) SetTransfer(f transfer.Func) {
	if f == nil {
		f = transfer.LogSig
	}
	u.xfer = f
}

// Transfer returns the current transfer function.
func (u *Unit) Transfer() transfer.Func {
	if u.xfer == nil {
		return transfer.LogSig
	}
	return u.xfer
}

// SetMu sets the adaptation rate. Values outside (0, 1] select DefaultMu.
func (u *Unit) SetMu(mu float64) {
	u.mu = clampMu(mu)
}

// Mu returns the adaptation rate.
func (u *Unit) Mu() float64 {
	return clampMu(u.mu)
}

// random returns the unit's source, creating a time-seeded one on first use.
func (u *Unit) random() *rand.Rand {
	if u.rng == nil {
		u.rng = newSource()
	}
	return u.rng
}
