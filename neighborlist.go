package neighborgo

import (
	"sort"
	"sync"
	"time"

	"github.com/hupe1980/neighborgo/cell"
	"github.com/hupe1980/neighborgo/pairlist"
)

// NeighborList caches a neighbor pair list across configuration updates.
//
// Each particle carries a cutoff radius; two particles are neighbors when
// their spheres overlap. A skin margin is added to every radius so the list
// stays valid while particles drift: Update only rebuilds once some particle
// has moved farther than the skin since the last build, or the cell or
// periodicity changed.
//
// Build and Update serialize behind a write lock; GetNeighbors and the stats
// getters may run concurrently between rebuilds.
type NeighborList struct {
	mu sync.RWMutex

	cutoffs         []float64 // nominal radii plus skin
	skin            float64
	sorted          bool
	selfInteraction bool
	bothways        bool
	workers         int
	logger          *Logger
	metrics         MetricsCollector

	built     bool
	positions [][3]float64
	cell      cell.Cell
	pbc       cell.PBC

	pairFirst  []int
	pairSecond []int
	offsets    [][3]int
	firstNeigh []int

	nUpdates      int
	nNeighbors    int
	nPBCNeighbors int
}

// New creates a lazy NeighborList for the given per-particle cutoff radii.
// Nothing is computed until the first Update or Build call.
func New(cutoffs []float64, optFns ...Option) *NeighborList {
	o := applyOptions(optFns)

	radii := make([]float64, len(cutoffs))
	for i, r := range cutoffs {
		radii[i] = r + o.skin
	}

	return &NeighborList{
		cutoffs:         radii,
		skin:            o.skin,
		sorted:          o.sorted,
		selfInteraction: o.selfInteraction,
		bothways:        o.bothways,
		workers:         o.workers,
		logger:          o.logger,
		metrics:         o.metrics,
	}
}

// Update makes sure the list is up to date for the given configuration and
// reports whether a rebuild happened. The first call always builds; later
// calls rebuild only when the cell or periodicity changed, the particle
// count changed, or some particle moved farther than the skin.
func (nl *NeighborList) Update(positions [][3]float64, c cell.Cell, pbc cell.PBC) (bool, error) {
	start := time.Now()

	nl.mu.Lock()
	defer nl.mu.Unlock()

	if nl.built &&
		nl.pbc == pbc &&
		nl.cell.Equal(c) &&
		len(positions) == len(nl.positions) &&
		nl.maxDisplacementSq(positions) <= nl.skin*nl.skin {
		nl.metrics.RecordUpdate(false, time.Since(start))
		nl.logger.LogUpdate(false, nil)
		return false, nil
	}

	if err := nl.build(positions, c, pbc); err != nil {
		nl.metrics.RecordUpdate(false, time.Since(start))
		nl.logger.LogUpdate(false, err)
		return false, err
	}
	nl.metrics.RecordUpdate(true, time.Since(start))
	nl.logger.LogUpdate(true, nil)
	return true, nil
}

// Build rebuilds the list unconditionally.
func (nl *NeighborList) Build(positions [][3]float64, c cell.Cell, pbc cell.PBC) error {
	nl.mu.Lock()
	defer nl.mu.Unlock()
	return nl.build(positions, c, pbc)
}

func (nl *NeighborList) build(positions [][3]float64, c cell.Cell, pbc cell.PBC) error {
	start := time.Now()

	cfg := pairlist.Config{Positions: positions, Cell: c, PBC: pbc}
	lst, err := pairlist.Neighbors("ijS", cfg, pairlist.PerAtom(nl.cutoffs),
		func(o *pairlist.Options) {
			o.SelfInteraction = nl.selfInteraction
			o.Workers = nl.workers
		})
	if err != nil {
		nl.metrics.RecordBuild(time.Since(start), 0, err)
		nl.logger.LogBuild(len(positions), 0, err)
		return err
	}

	pairFirst, pairSecond, offsets := lst.First, lst.Second, lst.Shifts

	if !nl.bothways {
		// Half list: keep one direction of every mirror pair. Zero-shift
		// pairs keep i <= j; for nonzero shifts the pair whose first
		// nonzero shift component is positive survives.
		w := 0
		for k := range pairFirst {
			if keepHalf(pairFirst[k], pairSecond[k], offsets[k]) {
				pairFirst[w] = pairFirst[k]
				pairSecond[w] = pairSecond[k]
				offsets[w] = offsets[k]
				w++
			}
		}
		pairFirst = pairFirst[:w]
		pairSecond = pairSecond[:w]
		offsets = offsets[:w]
	}

	if nl.sorted {
		perm := make([]int, len(pairFirst))
		for k := range perm {
			perm[k] = k
		}
		sort.SliceStable(perm, func(a, b int) bool {
			ka, kb := perm[a], perm[b]
			if pairFirst[ka] != pairFirst[kb] {
				return pairFirst[ka] < pairFirst[kb]
			}
			return pairSecond[ka] < pairSecond[kb]
		})
		pairFirst = permuteInts(pairFirst, perm)
		pairSecond = permuteInts(pairSecond, perm)
		offsets = permuteShifts(offsets, perm)
	}

	nl.pairFirst = pairFirst
	nl.pairSecond = pairSecond
	nl.offsets = offsets
	nl.firstNeigh = pairlist.FirstNeighbors(len(positions), pairFirst)

	nl.positions = append([][3]float64(nil), positions...)
	nl.cell = c
	nl.pbc = pbc
	nl.built = true

	nl.nUpdates++
	nl.nNeighbors += len(pairFirst)
	for _, s := range offsets {
		if s != [3]int{} {
			nl.nPBCNeighbors++
		}
	}

	nl.metrics.RecordBuild(time.Since(start), len(pairFirst), nil)
	nl.logger.LogBuild(len(positions), len(pairFirst), nil)
	return nil
}

// GetNeighbors returns the neighbor indices and shift offsets of particle a.
// The position of neighbor k is positions[indices[k]] + offsets[k] . cell.
//
// If the list was built without bothways, particle b appearing in a's list
// does not imply a appears in b's list; callers symmetrize manually.
//
// WARNING: the returned slices alias internal memory and are invalidated by
// the next rebuild. Callers must treat them as read-only.
func (nl *NeighborList) GetNeighbors(a int) (indices []int, offsets [][3]int, err error) {
	nl.mu.RLock()
	defer nl.mu.RUnlock()

	if !nl.built {
		return nil, nil, ErrNotBuilt
	}
	if a < 0 || a >= len(nl.firstNeigh)-1 {
		return nil, nil, &ErrParticleOutOfRange{Index: a, Count: len(nl.firstNeigh) - 1}
	}
	lo, hi := nl.firstNeigh[a], nl.firstNeigh[a+1]
	return nl.pairSecond[lo:hi], nl.offsets[lo:hi], nil
}

// NUpdates returns the number of full builds performed so far.
func (nl *NeighborList) NUpdates() int {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	return nl.nUpdates
}

// NNeighbors returns the accumulated neighbor count over all builds.
func (nl *NeighborList) NNeighbors() int {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	return nl.nNeighbors
}

// NPBCNeighbors returns the accumulated count of periodic-image neighbors
// (pairs with a nonzero shift) over all builds.
func (nl *NeighborList) NPBCNeighbors() int {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	return nl.nPBCNeighbors
}

func (nl *NeighborList) maxDisplacementSq(positions [][3]float64) float64 {
	max := 0.0
	for i := range positions {
		dx := positions[i][0] - nl.positions[i][0]
		dy := positions[i][1] - nl.positions[i][1]
		dz := positions[i][2] - nl.positions[i][2]
		d2 := dx*dx + dy*dy + dz*dz
		if d2 > max {
			max = d2
		}
	}
	return max
}

func keepHalf(i, j int, s [3]int) bool {
	if s == [3]int{} {
		return i <= j
	}
	for _, c := range s {
		if c > 0 {
			return true
		}
		if c < 0 {
			return false
		}
	}
	return false
}

func permuteInts(s []int, perm []int) []int {
	out := make([]int, len(s))
	for k, p := range perm {
		out[k] = s[p]
	}
	return out
}

func permuteShifts(s [][3]int, perm []int) [][3]int {
	out := make([][3]int, len(s))
	for k, p := range perm {
		out[k] = s[p]
	}
	return out
}
