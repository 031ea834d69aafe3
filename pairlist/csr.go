package pairlist

// FirstNeighbors converts a first-index slice sorted in non-decreasing order
// into a compressed-row index of length n+1: the neighbors of particle k
// occupy first[s[k]:s[k+1]] in the pair list. Particles without neighbors
// resolve to an empty range. An empty pair list yields an all-zero index.
//
// The input must be sorted, as guaranteed by Neighbors; the result is
// undefined otherwise.
func FirstNeighbors(n int, first []int) []int {
	s := make([]int, n+1)
	if len(first) == 0 {
		return s
	}

	const unset = -1
	for k := range s {
		s[k] = unset
	}
	s[n] = len(first)

	// Run boundaries: the position of the first pair belonging to each
	// particle that has at least one neighbor.
	s[first[0]] = 0
	for p := 1; p < len(first); p++ {
		if first[p] != first[p-1] {
			s[first[p]] = p
		}
	}

	// Backward fill so particles without neighbors point at the start of
	// the next occupied run (empty slice).
	for k := n - 1; k >= 0; k-- {
		if s[k] == unset {
			s[k] = s[k+1]
		}
	}
	return s
}
