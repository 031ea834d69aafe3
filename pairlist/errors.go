package pairlist

import "fmt"

// ErrNegativeCutoff indicates a cutoff radius below zero.
type ErrNegativeCutoff struct {
	Value float64
}

func (e *ErrNegativeCutoff) Error() string {
	return fmt.Sprintf("negative cutoff radius: %g", e.Value)
}

// ErrCutoffCountMismatch indicates a per-particle cutoff slice whose length
// does not match the number of particles.
type ErrCutoffCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrCutoffCountMismatch) Error() string {
	return fmt.Sprintf("wrong number of cutoff radii: expected %d, got %d", e.Expected, e.Actual)
}

// ErrNumbersCountMismatch indicates that per-pair cutoffs were supplied but
// the species numbers slice does not cover every particle.
type ErrNumbersCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrNumbersCountMismatch) Error() string {
	return fmt.Sprintf("wrong number of species numbers: expected %d, got %d", e.Expected, e.Actual)
}

// ErrDegenerateCell indicates a periodic axis whose lattice vector is zero or
// linearly dependent, leaving the bin spacing undefined.
type ErrDegenerateCell struct {
	Axis int
}

func (e *ErrDegenerateCell) Error() string {
	return fmt.Sprintf("degenerate cell: periodic axis %d has no usable face distance", e.Axis)
}

// ErrUnknownQuantity indicates a quantity character outside the recognized
// set "ijdDS". This is a contract error, not a runtime condition.
type ErrUnknownQuantity struct {
	Quantity byte
}

func (e *ErrUnknownQuantity) Error() string {
	return fmt.Sprintf("unsupported quantity: %q", string(e.Quantity))
}
