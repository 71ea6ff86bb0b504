// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package adaline provides a Widrow-Hoff adaptive linear unit trained online
// with the least-mean-squares (LMS) rule.
//
// # Overview
//
// A Unit is a weight matrix followed by a transfer function. The bias is part
// of the weight matrix: append a constant 1.0 to every input vector.
//
// Run computes an output and records the input and the transfer-function
// derivative on two history stacks. Adapt consumes the most recent record,
// updates the weights and returns the error seen by that Run's inputs. Because
// the records are stacked, a unit can be run for several steps before the
// error is known and then adapted once per step, newest first.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/adaline/adaline"
//	    "github.com/born-ml/adaline/transfer"
//	)
//
//	func main() {
//	    u := adaline.New(adaline.Config{Mu: 0.05, Transfer: transfer.PureLin})
//	    u.InitWeightsRandom(1, 2, adaline.DefaultInitMagnitude) // 1 input + bias
//
//	    for _, s := range samples {
//	        out, err := u.Run([]float64{s.X, 1.0})
//	        if err != nil {
//	            return err
//	        }
//	        if _, err := u.Adapt([]float64{s.Y - out[0]}, true); err != nil {
//	            return err
//	        }
//	    }
//	}
//
// # Deferred Training
//
// Run several steps, then adapt in reverse order:
//
//	for _, x := range sequence {
//	    u.Run(x)
//	}
//	for k := len(sequence) - 1; k >= 0; k-- {
//	    back, err := u.Adapt(errs[k], true)
//	    ...
//	}
//
// Pass adapt=false to push error through a trained unit without changing it.
// Use Reset to drop unconsumed records between episodes.
//
// # Errors
//
// Size problems wrap ErrDimensionMismatch or ErrEmptyOperand; Adapt without a
// matching Run wraps ErrStackUnderflow. A failed call never changes the unit.
// Test with errors.Is.
package adaline
