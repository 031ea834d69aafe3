package neighborgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuilt is returned by GetNeighbors before the first successful
	// Build or Update call.
	ErrNotBuilt = errors.New("neighbor list has not been built yet")
)

// ErrParticleOutOfRange indicates a particle index outside the configuration
// the list was last built for.
type ErrParticleOutOfRange struct {
	Index int
	Count int
}

func (e *ErrParticleOutOfRange) Error() string {
	return fmt.Sprintf("particle index out of range: %d (have %d particles)", e.Index, e.Count)
}
