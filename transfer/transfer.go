// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transfer provides transfer (activation) functions for adaptive
// units, a registry of them by name, and a numeric derivative estimator.
//
// Registered names:
//
//	hardlim   HardLimit     1 if x >= 0, else 0
//	hardlims  SymHardLimit  1 if x >= 0, else -1
//	purelin   PureLin       x
//	poslin    PosLin        max(0, x)
//	satlin    SatLin        clamp(x, -1, 1)
//	logsig    LogSig        1 / (1 + exp(-x))
//	tansig    SymLogSig     2 / (1 + exp(-x)) - 1
//
// Example:
//
//	f, err := transfer.Lookup("logsig")
//	if err != nil {
//	    return err
//	}
//	unit.SetTransfer(f)
package transfer

import "github.com/born-ml/adaline/internal/transfer"

// Func maps a weighted-sum vector to an output vector of the same length.
type Func = transfer.Func

// ErrUnknownTransfer is returned by Lookup for unregistered names.
var ErrUnknownTransfer = transfer.ErrUnknownTransfer

// DerivativeStep is the half-width used by adaptive units for the numeric
// derivative.
const DerivativeStep = transfer.DerivativeStep

// Registered names of the reference functions.
const (
	NameHardLimit    = transfer.NameHardLimit
	NameSymHardLimit = transfer.NameSymHardLimit
	NamePureLin      = transfer.NamePureLin
	NamePosLin       = transfer.NamePosLin
	NameSatLin       = transfer.NameSatLin
	NameLogSig       = transfer.NameLogSig
	NameSymLogSig    = transfer.NameSymLogSig
)

// Reference functions.
var (
	HardLimit    Func = transfer.HardLimit
	SymHardLimit Func = transfer.SymHardLimit
	PureLin      Func = transfer.PureLin
	PosLin       Func = transfer.PosLin
	SatLin       Func = transfer.SatLin
	LogSig       Func = transfer.LogSig
	SymLogSig    Func = transfer.SymLogSig
)

// Lookup returns the function registered under name.
func Lookup(name string) (Func, error) {
	return transfer.Lookup(name)
}

// Register adds f under name, replacing any previous entry.
func Register(name string, f Func) error {
	return transfer.Register(name, f)
}

// Names returns every registered name in sorted order.
func Names() []string {
	return transfer.Names()
}

// Derivative estimates df/dnet component-wise with a symmetric difference of
// half-width h. A non-positive or non-finite h selects DerivativeStep.
func Derivative(f Func, net []float64, h float64) []float64 {
	return transfer.Derivative(f, net, h)
}
