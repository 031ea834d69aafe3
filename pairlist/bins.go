package pairlist

import (
	"math"

	"github.com/hupe1980/neighborgo/cell"
)

// floorDiv is integer division rounding toward negative infinity, matching
// the divmod semantics the wrap bookkeeping is defined in terms of.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// binGrid groups particle indices by spatial bin. The particles of one bin
// occupy a contiguous run of order, addressed through the start offsets, so
// no sentinel slots need filtering in the pair loop.
type binGrid struct {
	nbins [3]int
	start []int    // length nbins[0]*nbins[1]*nbins[2]+1
	order []int    // particle indices grouped by scalar bin id
	shift [][3]int // integer cell shift implied by wrapping each particle
}

// buildGrid assigns every particle to a bin. On periodic axes the bin index
// wraps modulo the bin count and the implied cell shift is recorded; on free
// axes it clamps to the valid range.
func buildGrid(cfg Config, nbins [3]int) *binGrid {
	rec := cfg.Cell.Reciprocal()
	n := len(cfg.Positions)
	total := nbins[0] * nbins[1] * nbins[2]

	g := &binGrid{
		nbins: nbins,
		start: make([]int, total+1),
		order: make([]int, n),
		shift: make([][3]int, n),
	}

	binOf := make([]int, n)
	for i, r := range cfg.Positions {
		s := cell.Scaled(r, rec)
		var b [3]int
		for c := 0; c < 3; c++ {
			bi := int(math.Floor(s[c] * float64(nbins[c])))
			if cfg.PBC[c] {
				sh := floorDiv(bi, nbins[c])
				bi -= sh * nbins[c]
				g.shift[i][c] = sh
			} else {
				if bi < 0 {
					bi = 0
				}
				if bi >= nbins[c] {
					bi = nbins[c] - 1
				}
			}
			b[c] = bi
		}
		binOf[i] = b[0] + nbins[0]*(b[1]+nbins[1]*b[2])
	}

	// Counting sort keeps particle order inside each bin ascending, which
	// makes the final first-index sort stable and deterministic.
	for _, b := range binOf {
		g.start[b+1]++
	}
	for k := 1; k <= total; k++ {
		g.start[k] += g.start[k-1]
	}
	cursor := make([]int, total)
	copy(cursor, g.start[:total])
	for i := 0; i < n; i++ {
		b := binOf[i]
		g.order[cursor[b]] = i
		cursor[b]++
	}
	return g
}

// atoms returns the particle indices in bin (bx, by, bz).
func (g *binGrid) atoms(bx, by, bz int) []int {
	b := bx + g.nbins[0]*(by+g.nbins[1]*bz)
	return g.order[g.start[b]:g.start[b+1]]
}

// wrapBin resolves a bin offset along one axis. Periodic axes wrap and
// report how many cell repeats the wrap crossed; on free axes an offset that
// leaves the grid has no image and is skipped.
func (g *binGrid) wrapBin(b, d, axis int, periodic bool) (tb, shift int, ok bool) {
	tb = b + d
	if periodic {
		shift = floorDiv(tb, g.nbins[axis])
		tb -= shift * g.nbins[axis]
		return tb, shift, true
	}
	if tb < 0 || tb >= g.nbins[axis] {
		return 0, 0, false
	}
	return tb, 0, true
}

// candidate is a pair surviving the coarse bin search, before the exact
// distance filter.
type candidate struct {
	i, j int
	s    [3]int
}

// collect walks the given bin offsets and emits every candidate pair between
// a source bin and the (possibly wrapped) target bin. The emitted shift is
// the final one: inter-bin wrap plus both particles' own wrap shifts.
func (g *binGrid) collect(cfg Config, offsets [][3]int, selfInteraction bool) []candidate {
	var cands []candidate
	for _, d := range offsets {
		for bz := 0; bz < g.nbins[2]; bz++ {
			tz, sz, ok := g.wrapBin(bz, d[2], 2, cfg.PBC[2])
			if !ok {
				continue
			}
			for by := 0; by < g.nbins[1]; by++ {
				ty, sy, ok := g.wrapBin(by, d[1], 1, cfg.PBC[1])
				if !ok {
					continue
				}
				for bx := 0; bx < g.nbins[0]; bx++ {
					tx, sx, ok := g.wrapBin(bx, d[0], 0, cfg.PBC[0])
					if !ok {
						continue
					}
					src := g.atoms(bx, by, bz)
					if len(src) == 0 {
						continue
					}
					tgt := g.atoms(tx, ty, tz)
					if len(tgt) == 0 {
						continue
					}
					for _, ai := range src {
						for _, aj := range tgt {
							s := [3]int{
								sx + g.shift[ai][0] - g.shift[aj][0],
								sy + g.shift[ai][1] - g.shift[aj][1],
								sz + g.shift[ai][2] - g.shift[aj][2],
							}
							if ai == aj && !selfInteraction && s == [3]int{} {
								continue
							}
							cands = append(cands, candidate{i: ai, j: aj, s: s})
						}
					}
				}
			}
		}
	}
	return cands
}
