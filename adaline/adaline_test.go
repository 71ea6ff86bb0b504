// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package adaline_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/born-ml/adaline/adaline"
	"github.com/born-ml/adaline/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStackedUnits tests a caller-composed two-stage chain: the upstream
// unit learns while error is routed back through a frozen downstream unit.
func TestStackedUnits(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	// Downstream "emulator": fixed y = 0.5*h + 0.25.
	emulator := adaline.New(adaline.Config{Transfer: transfer.PureLin})
	require.NoError(t, emulator.SetWeights([][]float64{{0.5, 0.25}}))

	// Upstream controller learns h so that the chain output tracks 2x.
	ctrl := adaline.New(adaline.Config{Mu: 0.05, Transfer: transfer.PureLin, Rand: rng})
	ctrl.InitWeightsRandom(1, 2, adaline.DefaultInitMagnitude)

	for step := 0; step < 20000; step++ {
		x := rng.Float64()*2 - 1

		h, err := ctrl.Run([]float64{x, 1})
		require.NoError(t, err)
		y, err := emulator.Run([]float64{h[0], 1})
		require.NoError(t, err)

		back, err := emulator.Adapt([]float64{2*x - y[0]}, false)
		require.NoError(t, err)
		require.Len(t, back, 2)

		// Drop the bias component before passing error upstream.
		_, err = ctrl.Adapt(back[:1], true)
		require.NoError(t, err)
	}

	// h = 4x - 0.5 gives y = 2x.
	w := ctrl.Weights()
	assert.InDelta(t, 4.0, w[0][0], 1e-2)
	assert.InDelta(t, -0.5, w[0][1], 1e-2)
	assert.Equal(t, [][]float64{{0.5, 0.25}}, emulator.Weights())
	assert.Zero(t, ctrl.InputDepth())
	assert.Zero(t, emulator.InputDepth())
}

// TestDeferredSequence tests running a sequence before any error is known.
func TestDeferredSequence(t *testing.T) {
	u := adaline.New(adaline.Config{Mu: 0.1, Transfer: transfer.PureLin})
	require.NoError(t, u.SetWeights([][]float64{{0, 0}}))

	seq := [][]float64{{1, 1}, {2, 1}, {3, 1}}
	for _, x := range seq {
		_, err := u.Run(x)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, u.InputDepth())

	for range seq {
		_, err := u.Adapt([]float64{1}, true)
		require.NoError(t, err)
	}

	// Every step contributed 0.1 * x.
	w := u.Weights()
	assert.InDelta(t, 0.6, w[0][0], 1e-9)
	assert.InDelta(t, 0.3, w[0][1], 1e-9)

	_, err := u.Adapt([]float64{1}, true)
	assert.True(t, errors.Is(err, adaline.ErrStackUnderflow))
}

// TestErrorsAreExported tests that callers can match errors through the facade.
func TestErrorsAreExported(t *testing.T) {
	u := adaline.New(adaline.Config{})
	u.InitWeightsRandom(2, 3, adaline.DefaultInitMagnitude)

	_, err := u.Run([]float64{1, 1})
	assert.ErrorIs(t, err, adaline.ErrDimensionMismatch)

	var dimErr *adaline.DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Got)
	assert.Equal(t, 2, dimErr.Want)

	_, err = u.Run(nil)
	assert.ErrorIs(t, err, adaline.ErrEmptyOperand)
}

func ExampleNew() {
	u := adaline.New(adaline.Config{Mu: 0.1, Transfer: transfer.PureLin})
	if err := u.SetWeights([][]float64{{0, 0}}); err != nil {
		panic(err)
	}

	out, _ := u.Run([]float64{2.0, 1.0})
	back, _ := u.Adapt([]float64{1.0}, true)

	w := u.Weights()
	fmt.Printf("output: %.2f\n", out[0])
	fmt.Printf("weights: [%.2f %.2f]\n", w[0][0], w[0][1])
	fmt.Printf("error out: [%.2f %.2f]\n", back[0], back[1])
	// Output:
	// output: 0.00
	// weights: [0.20 0.10]
	// error out: [0.20 0.10]
}
