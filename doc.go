// Package neighborgo finds all particle pairs within a cutoff distance in a
// possibly periodic simulation cell, and caches the result across time steps.
//
// The low-level enumerator lives in the pairlist subpackage; this package
// wraps it in a stateful cache with a skin-distance rebuild policy.
//
// # Quick Start
//
//	nl := neighborgo.New([]float64{2.3, 1.7})
//	rebuilt, err := nl.Update(positions, cell, pbc)
//	if err != nil {
//	    return err
//	}
//	indices, offsets, err := nl.GetNeighbors(0)
//
// Each particle carries a cutoff radius; two particles are neighbors when
// their interaction spheres overlap. GetNeighbors returns neighbor indices
// together with integer shift vectors recording how many cell boundaries
// each bond crosses, so neighbor positions reconstruct exactly even across
// periodic boundaries:
//
//	for k, j := range indices {
//	    r := add(positions[j], cell.CartesianShift(offsets[k]))
//	    // r is the actual neighbor image of particle 0
//	}
//
// Repeated Update calls reuse the cached list until some particle has moved
// farther than the skin margin, the cell changed, or the periodicity flags
// changed. The extra skin is added to every radius, so cached lists may
// contain pairs slightly beyond the nominal cutoff; callers that need the
// exact cutoff filter by distance.
//
// # One-shot enumeration
//
// For a single configuration, use the pairlist package directly:
//
//	lst, err := pairlist.Neighbors("ijdDS", pairlist.Config{
//	    Positions: positions,
//	    Cell:      c,
//	    PBC:       cell.PBC{true, true, true},
//	}, pairlist.Scalar(5.0))
//
// The quantities string selects which of the parallel output slices are
// populated: first index, second index, distance, displacement vector and
// shift vector.
package neighborgo
