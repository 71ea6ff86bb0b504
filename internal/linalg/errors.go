package linalg

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrEmptyOperand      = errors.New("empty operand")
)

// DimensionError provides detailed information about a size mismatch.
type DimensionError struct {
	Op    string // Operation that failed (e.g., "matvec", "dot")
	Index int    // Offending row, or -1 when the whole operand is at fault
	Got   int    // Length found
	Want  int    // Length required
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: row %d: %v: got %d, want %d", e.Op, e.Index, ErrDimensionMismatch, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: %v: got %d, want %d", e.Op, ErrDimensionMismatch, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}
