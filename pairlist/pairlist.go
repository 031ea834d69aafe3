// Package pairlist enumerates all particle pairs closer than a cutoff in a
// possibly periodic simulation cell.
//
// The search bins particles into a spatial grid sized from the cell face
// distances, walks neighboring bins including periodic replicas, and records
// for every emitted pair the integer shift vector S counting how many cell
// boundaries the bond crosses. Positions can then be reconstructed exactly:
//
//	D = positions[j] - positions[i] + S . cell
//
// The pair list is sorted by first index; FirstNeighbors turns it into a
// compressed-row index for O(1) per-particle lookup.
package pairlist

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/neighborgo/cell"
)

// Config describes the particle configuration handed to the enumerator.
// All fields are read-only inputs; the enumerator never mutates them.
type Config struct {
	// Positions are Cartesian particle coordinates. Particles outside the
	// cell are allowed; on periodic axes they are wrapped into the grid
	// with the wrap recorded in the pair shifts.
	Positions [][3]float64

	// Cell holds the lattice vectors as rows. Rows may be zero on
	// non-periodic axes.
	Cell cell.Cell

	// PBC flags periodicity per lattice direction.
	PBC cell.PBC

	// Numbers are species identifiers (atomic numbers), one per particle.
	// Required only when a PerPair cutoff is used.
	Numbers []int
}

// Options configures a single enumeration run.
type Options struct {
	// SelfInteraction keeps the zero-shift self pair (i, i, 0). Periodic
	// self images are legitimate pairs and always included regardless.
	SelfInteraction bool

	// Workers sets the number of goroutines for the bin-offset loop.
	// The result is identical for any value; 1 runs sequentially.
	Workers int
}

// DefaultOptions contains the default configuration options for Neighbors.
var DefaultOptions = Options{
	SelfInteraction: false,
	Workers:         1,
}

// List holds the enumerated pairs as parallel slices, sorted by First.
// Only the slices named in the quantities string passed to Neighbors are
// populated; the rest stay nil.
type List struct {
	First     []int        // 'i': first particle index
	Second    []int        // 'j': second particle index
	Distances []float64    // 'd': Euclidean pair distance
	Vectors   [][3]float64 // 'D': displacement vector from i to j
	Shifts    [][3]int     // 'S': periodic shift vector
}

// Len returns the number of pairs.
func (l *List) Len() int {
	switch {
	case l.First != nil:
		return len(l.First)
	case l.Second != nil:
		return len(l.Second)
	case l.Distances != nil:
		return len(l.Distances)
	case l.Vectors != nil:
		return len(l.Vectors)
	case l.Shifts != nil:
		return len(l.Shifts)
	}
	return 0
}

// Neighbors computes the neighbor pair list for a particle configuration.
//
// quantities selects the output columns, one character per column:
//
//	'i'  first particle index
//	'j'  second particle index
//	'd'  absolute distance
//	'D'  displacement vector
//	'S'  shift vector
//
// Every returned pair satisfies the cutoff policy strictly (distance below
// the radius, never equal). Pairs are sorted by first index. Characters
// outside the recognized set, invalid cutoffs and degenerate periodic axes
// fail fast before any geometric work.
func Neighbors(quantities string, cfg Config, cut Cutoff, optFns ...func(o *Options)) (*List, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	for k := 0; k < len(quantities); k++ {
		switch quantities[k] {
		case 'i', 'j', 'd', 'D', 'S':
		default:
			return nil, &ErrUnknownQuantity{Quantity: quantities[k]}
		}
	}

	if err := cut.validate(cfg); err != nil {
		return nil, err
	}

	face := cfg.Cell.FaceDistances()
	for axis := 0; axis < 3; axis++ {
		if cfg.PBC[axis] && (math.IsInf(face[axis], 1) || math.IsNaN(face[axis]) || face[axis] <= 0) {
			return nil, &ErrDegenerateCell{Axis: axis}
		}
	}

	n := len(cfg.Positions)
	maxCutoff := cut.coarseRadius()
	if n == 0 || maxCutoff <= 0 {
		return selectQuantities(quantities, nil, nil, nil, nil, nil), nil
	}

	// Bins per axis: the widest grid whose bin width still covers the
	// coarse cutoff, so an interaction sphere spans at most two adjacent
	// bins. Free axes collapse to a single bin.
	var nbins [3]int
	for c := 0; c < 3; c++ {
		if math.IsInf(face[c], 1) {
			nbins[c] = 1
			continue
		}
		nb := int(face[c] / maxCutoff)
		if nb < 1 {
			nb = 1
		}
		nbins[c] = nb
	}
	// Cap the grid so a tiny cutoff in a huge cell cannot exhaust memory.
	// Wider bins stay correct; the search just scans more particles per bin.
	for totalBins(nbins) > maxTotalBins(n) {
		l := 0
		if nbins[1] > nbins[l] {
			l = 1
		}
		if nbins[2] > nbins[l] {
			l = 2
		}
		if nbins[l] == 1 {
			break
		}
		nbins[l] = (nbins[l] + 1) / 2
	}

	// Loop radii: how many bin offsets to search per axis so a sphere
	// anchored anywhere in the source bin reaches every partner bin.
	var nd [3]int
	for c := 0; c < 3; c++ {
		if math.IsInf(face[c], 1) {
			nd[c] = 0
			continue
		}
		nd[c] = int(math.Ceil(maxCutoff * float64(nbins[c]) / face[c]))
	}

	grid := buildGrid(cfg, nbins)

	offsets := make([][3]int, 0, (2*nd[0]+1)*(2*nd[1]+1)*(2*nd[2]+1))
	for dz := -nd[2]; dz <= nd[2]; dz++ {
		for dy := -nd[1]; dy <= nd[1]; dy++ {
			for dx := -nd[0]; dx <= nd[0]; dx++ {
				offsets = append(offsets, [3]int{dx, dy, dz})
			}
		}
	}

	cands, err := collectAll(grid, cfg, offsets, opts)
	if err != nil {
		return nil, err
	}

	// Sort by first index; the stable sort together with the fixed offset
	// order keeps output deterministic for any worker count.
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].i < cands[b].i })

	first := make([]int, 0, len(cands))
	second := make([]int, 0, len(cands))
	dists := make([]float64, 0, len(cands))
	vecs := make([][3]float64, 0, len(cands))
	shifts := make([][3]int, 0, len(cands))

	for _, c := range cands {
		sh := cfg.Cell.CartesianShift(c.s)
		pi, pj := cfg.Positions[c.i], cfg.Positions[c.j]
		v := [3]float64{
			pj[0] - pi[0] + sh[0],
			pj[1] - pi[1] + sh[1],
			pj[2] - pi[2] + sh[2],
		}
		d := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if d >= maxCutoff {
			continue
		}
		if !cut.within(cfg, c.i, c.j, d) {
			continue
		}
		first = append(first, c.i)
		second = append(second, c.j)
		dists = append(dists, d)
		vecs = append(vecs, v)
		shifts = append(shifts, c.s)
	}

	return selectQuantities(quantities, first, second, dists, vecs, shifts), nil
}

// collectAll runs the offset loop, fanning out over workers when requested.
// Chunks are merged in offset order, so the concatenation matches the
// sequential result exactly.
func collectAll(grid *binGrid, cfg Config, offsets [][3]int, opts Options) ([]candidate, error) {
	if opts.Workers == 1 || len(offsets) < 2 {
		return grid.collect(cfg, offsets, opts.SelfInteraction), nil
	}

	workers := opts.Workers
	if workers > len(offsets) {
		workers = len(offsets)
	}
	chunk := (len(offsets) + workers - 1) / workers

	parts := make([][]candidate, workers)
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(offsets) {
			hi = len(offsets)
		}
		if lo >= hi {
			break
		}
		w, lo, hi := w, lo, hi
		eg.Go(func() error {
			parts[w] = grid.collect(cfg, offsets[lo:hi], opts.SelfInteraction)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	cands := make([]candidate, 0, total)
	for _, p := range parts {
		cands = append(cands, p...)
	}
	return cands, nil
}

func maxTotalBins(n int) int {
	if n < 16 {
		return 64
	}
	return 4 * n
}

// totalBins multiplies the per-axis bin counts, saturating at MaxInt so an
// extreme face-to-cutoff ratio cannot wrap the product negative and slip past
// the grid cap.
func totalBins(nbins [3]int) int {
	t := 1
	for _, nb := range nbins {
		if t > math.MaxInt/nb {
			return math.MaxInt
		}
		t *= nb
	}
	return t
}

func selectQuantities(quantities string, first, second []int, dists []float64, vecs [][3]float64, shifts [][3]int) *List {
	out := &List{}
	for k := 0; k < len(quantities); k++ {
		switch quantities[k] {
		case 'i':
			out.First = emptyNotNil(first)
		case 'j':
			out.Second = emptyNotNil(second)
		case 'd':
			if dists == nil {
				dists = []float64{}
			}
			out.Distances = dists
		case 'D':
			if vecs == nil {
				vecs = [][3]float64{}
			}
			out.Vectors = vecs
		case 'S':
			if shifts == nil {
				shifts = [][3]int{}
			}
			out.Shifts = shifts
		}
	}
	return out
}

func emptyNotNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
