package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/born-ml/adaline/adaline"
	"github.com/born-ml/adaline/transfer"
)

// fitConfig holds the options of the fit command.
type fitConfig struct {
	Transfer string
	Steps    int
	Mu       float64
	Seed     int64
}

func parseFitArgs(args []string) (fitConfig, error) {
	cfg := fitConfig{
		Transfer: transfer.NamePureLin,
		Steps:    2000,
		Mu:       0.05,
		Seed:     1,
	}

	if len(args) > 0 {
		cfg.Transfer = args[0]
	}
	if len(args) > 1 {
		steps, err := strconv.Atoi(args[1])
		if err != nil || steps < 1 {
			return cfg, fmt.Errorf("fit: invalid step count %q", args[1])
		}
		cfg.Steps = steps
	}
	if len(args) > 2 {
		mu, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return cfg, fmt.Errorf("fit: invalid mu %q: %w", args[2], err)
		}
		cfg.Mu = mu
	}
	if len(args) > 3 {
		return cfg, errors.New("fit: too many arguments")
	}
	return cfg, nil
}

// target is the line the fit command learns.
func target(x float64) float64 {
	return 0.8*x - 0.3
}

// fit trains a single-output unit online and prints the learned weights and
// the RMS error over a fixed evaluation grid.
func fit(args []string, w io.Writer) error {
	cfg, err := parseFitArgs(args)
	if err != nil {
		return err
	}

	f, err := transfer.Lookup(cfg.Transfer)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	//nolint:gosec // Using math/rand for sampling (not security-critical)
	rng := rand.New(rand.NewSource(cfg.Seed))
	u := adaline.New(adaline.Config{Mu: cfg.Mu, Transfer: f, Rand: rng})
	u.InitWeightsRandom(1, 2, adaline.DefaultInitMagnitude)

	for step := 0; step < cfg.Steps; step++ {
		x := rng.Float64()*2 - 1
		out, err := u.Run([]float64{x, 1})
		if err != nil {
			return fmt.Errorf("fit: step %d: %w", step, err)
		}
		if _, err := u.Adapt([]float64{target(x) - out[0]}, true); err != nil {
			return fmt.Errorf("fit: step %d: %w", step, err)
		}
	}

	rms, err := evaluate(u)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	weights := u.Weights()
	fmt.Fprintf(w, "transfer: %s  steps: %d  mu: %g\n", cfg.Transfer, cfg.Steps, u.Mu())
	fmt.Fprintf(w, "weights:  slope=%.4f bias=%.4f\n", weights[0][0], weights[0][1])
	fmt.Fprintf(w, "rms:      %.6f\n", rms)
	return nil
}

// evaluate returns the RMS error on 101 evenly spaced points in [-1, 1].
// Evaluation runs are drained from the history so the unit stays clean.
func evaluate(u *adaline.Unit) (float64, error) {
	const points = 101
	defer u.Reset()

	var sum float64
	for k := 0; k < points; k++ {
		x := -1 + 2*float64(k)/float64(points-1)
		out, err := u.Run([]float64{x, 1})
		if err != nil {
			return 0, err
		}
		d := target(x) - out[0]
		sum += d * d
	}
	return math.Sqrt(sum / points), nil
}
