package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrAllocation covers any buffer or slot allocation that was rejected.
	// Recoverable: the failed generation rolls back fully and the caller may
	// retry with a smaller request.
	ErrAllocation = errors.New("allocation rejected")

	// ErrInvalidWeightTotal means a bag's aggregated weight total came out
	// NaN, infinite, or non-positive. The bag is discarded; nothing partial
	// is ever surfaced.
	ErrInvalidWeightTotal = errors.New("invalid weight total")

	// Determinism errors
	ErrNonDeterministic = errors.New("non-deterministic result")
	ErrSeedMismatch     = errors.New("seed mismatch")
)

// Error constructors with context
func NewAllocationError(what string, elems int) error {
	return fmt.Errorf("%w: %s (%d elements)", ErrAllocation, what, elems)
}

func NewWeightTotalError(total float64) error {
	return fmt.Errorf("%w: %g", ErrInvalidWeightTotal, total)
}

// Error checking helpers
func IsAllocationError(err error) bool {
	return errors.Is(err, ErrAllocation)
}

func IsWeightTotalError(err error) bool {
	return errors.Is(err, ErrInvalidWeightTotal)
}

// IsRecoverable reports whether err belongs to the recoverable generation
// taxonomy, as opposed to a caller contract violation.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrAllocation) || errors.Is(err, ErrInvalidWeightTotal)
}
