package adaline

import (
	"errors"
	"math/rand"
	"time"

	"github.com/born-ml/adaline/internal/transfer"
)

// ErrStackUnderflow is returned by Adapt when no forward pass is waiting to be
// adapted, or when the two history stacks disagree in depth.
var ErrStackUnderflow = errors.New("history stack underflow")

// Defaults applied by New and the setters.
const (
	DefaultMu            = 0.02 // Adaptation rate used when mu is outside (0, 1]
	DefaultInitMagnitude = 0.02 // Bound for InitWeightsRandom in the CLI and examples
)

// Config holds configuration for a Unit.
type Config struct {
	Mu       float64       // Adaptation rate (default: 0.02, range: (0, 1])
	Transfer transfer.Func // Transfer function (default: transfer.LogSig)
	Rand     *rand.Rand    // Source for random initialization (default: time-seeded)
}

// clampMu returns u if it lies in (0, 1] and DefaultMu otherwise.
func clampMu(u float64) float64 {
	if u > 0 && u <= 1 {
		return u
	}
	return DefaultMu
}

func newSource() *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
