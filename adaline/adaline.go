// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package adaline

import (
	"github.com/born-ml/adaline/internal/adaline"
	"github.com/born-ml/adaline/internal/linalg"
)

// Unit is an adaptive linear unit with LMS training.
type Unit = adaline.Unit

// Config contains configuration for a Unit.
type Config = adaline.Config

// Stack is the last-in-first-out container behind the unit's histories.
type Stack[T any] = adaline.Stack[T]

// Defaults.
const (
	DefaultMu            = adaline.DefaultMu
	DefaultInitMagnitude = adaline.DefaultInitMagnitude
)

// Errors.
var (
	ErrDimensionMismatch = linalg.ErrDimensionMismatch
	ErrEmptyOperand      = linalg.ErrEmptyOperand
	ErrStackUnderflow    = adaline.ErrStackUnderflow
)

// DimensionError describes a size mismatch.
type DimensionError = linalg.DimensionError

// New creates a Unit with no weights.
//
// Example:
//
//	u := adaline.New(adaline.Config{Mu: 0.1, Transfer: transfer.LogSig})
//	u.InitWeightsRandom(outputs, inputs+1, adaline.DefaultInitMagnitude)
func New(config Config) *Unit {
	return adaline.New(config)
}
