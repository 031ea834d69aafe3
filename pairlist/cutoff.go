package pairlist

import (
	"github.com/hupe1980/neighborgo/species"
)

// Cutoff selects which candidate pairs count as neighbors. Three variants
// exist: a single global radius (Scalar), one radius per unordered species
// pair (PerPair) and one radius per particle (PerAtom).
type Cutoff interface {
	// coarseRadius is the radius used for bin sizing; the exact per-pair
	// test is applied afterwards by within.
	coarseRadius() float64

	// validate fails fast on configuration errors before any geometric work.
	validate(cfg Config) error

	// within reports whether a pair at the given distance is a neighbor.
	within(cfg Config, i, j int, dist float64) bool
}

// Scalar is a single global cutoff radius applied to every pair.
type Scalar float64

func (s Scalar) coarseRadius() float64 { return float64(s) }

func (s Scalar) validate(Config) error {
	if s < 0 {
		return &ErrNegativeCutoff{Value: float64(s)}
	}
	return nil
}

func (s Scalar) within(_ Config, _, _ int, dist float64) bool {
	return dist < float64(s)
}

// PerAtom assigns an interaction-sphere radius to each particle. Two
// particles are neighbors when their spheres overlap, i.e. when the distance
// is below the sum of the two radii.
type PerAtom []float64

func (p PerAtom) coarseRadius() float64 {
	max := 0.0
	for _, r := range p {
		if r > max {
			max = r
		}
	}
	return 2 * max
}

func (p PerAtom) validate(cfg Config) error {
	if len(p) != len(cfg.Positions) {
		return &ErrCutoffCountMismatch{Expected: len(cfg.Positions), Actual: len(p)}
	}
	for _, r := range p {
		if r < 0 {
			return &ErrNegativeCutoff{Value: r}
		}
	}
	return nil
}

func (p PerAtom) within(_ Config, i, j int, dist float64) bool {
	return dist < p[i]+p[j]
}

type pairKey struct{ lo, hi int }

func makePairKey(z1, z2 int) pairKey {
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	return pairKey{lo: z1, hi: z2}
}

// PerPair holds cutoff radii keyed by unordered pairs of species. Pairs of
// species without an entry are never neighbors. The coarse search uses the
// maximum radius over all entries.
type PerPair struct {
	max   float64
	radii map[pairKey]float64
}

// NewPerPair builds a PerPair cutoff from chemical-symbol keys. Key order is
// irrelevant: {"C","H"} and {"H","C"} address the same entry.
func NewPerPair(cutoffs map[[2]string]float64) (*PerPair, error) {
	radii := make(map[pairKey]float64, len(cutoffs))
	max := 0.0
	for pair, r := range cutoffs {
		if r < 0 {
			return nil, &ErrNegativeCutoff{Value: r}
		}
		z1, err := species.AtomicNumber(pair[0])
		if err != nil {
			return nil, err
		}
		z2, err := species.AtomicNumber(pair[1])
		if err != nil {
			return nil, err
		}
		radii[makePairKey(z1, z2)] = r
		if r > max {
			max = r
		}
	}
	return &PerPair{max: max, radii: radii}, nil
}

// NewPerPairNumbers builds a PerPair cutoff from atomic-number keys.
func NewPerPairNumbers(cutoffs map[[2]int]float64) (*PerPair, error) {
	radii := make(map[pairKey]float64, len(cutoffs))
	max := 0.0
	for pair, r := range cutoffs {
		if r < 0 {
			return nil, &ErrNegativeCutoff{Value: r}
		}
		radii[makePairKey(pair[0], pair[1])] = r
		if r > max {
			max = r
		}
	}
	return &PerPair{max: max, radii: radii}, nil
}

func (p *PerPair) coarseRadius() float64 { return p.max }

func (p *PerPair) validate(cfg Config) error {
	if len(cfg.Numbers) != len(cfg.Positions) {
		return &ErrNumbersCountMismatch{Expected: len(cfg.Positions), Actual: len(cfg.Numbers)}
	}
	return nil
}

func (p *PerPair) within(cfg Config, i, j int, dist float64) bool {
	r, ok := p.radii[makePairKey(cfg.Numbers[i], cfg.Numbers[j])]
	return ok && dist < r
}
