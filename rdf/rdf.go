// Package rdf computes radial distribution functions from the neighbor-pair
// distance stream.
//
// The rdf follows the standard solid-state definition, which normalizes by
// the cell volume. The cell must be large enough to enclose a sphere of
// radius rmax along every periodic direction; CheckCell validates this and
// RecommendedRMax suggests a safe radius.
package rdf

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/neighborgo/cell"
	"github.com/hupe1980/neighborgo/pairlist"
)

// ErrZeroVolume is returned by Compute when the cell has no volume, leaving
// the density normalization undefined.
var ErrZeroVolume = errors.New("cell volume is zero")

// ErrInvalidBinCount indicates a non-positive histogram bin count.
type ErrInvalidBinCount struct {
	NBins int
}

func (e *ErrInvalidBinCount) Error() string {
	return fmt.Sprintf("bin count must be positive, got %d", e.NBins)
}

// ErrCellTooSmall indicates a periodic axis whose face spacing cannot
// enclose a sphere of radius rmax.
type ErrCellTooSmall struct {
	Axis   int
	Height float64
	RMax   float64
}

func (e *ErrCellTooSmall) Error() string {
	return fmt.Sprintf("cell not large enough in direction %d: %.3f < 2*rmax=%.3f",
		e.Axis, e.Height, 2*e.RMax)
}

// CheckCell verifies that every periodic axis has a face spacing of at
// least 2*rmax.
func CheckCell(c cell.Cell, pbc cell.PBC, rmax float64) error {
	face := c.FaceDistances()
	for axis := 0; axis < 3; axis++ {
		if pbc[axis] && face[axis] < 2*rmax {
			return &ErrCellTooSmall{Axis: axis, Height: face[axis], RMax: rmax}
		}
	}
	return nil
}

// RecommendedRMax returns the largest safe rmax for the given cell, capped
// at 5.0 like common practice for liquids and glasses.
func RecommendedRMax(c cell.Cell, pbc cell.PBC) float64 {
	rmax := 5.0
	face := c.FaceDistances()
	for axis := 0; axis < 3; axis++ {
		if pbc[axis] && face[axis]/2*0.99 < rmax {
			rmax = face[axis] / 2 * 0.99
		}
	}
	return rmax
}

// Compute returns the radial distribution function g(r) of the configuration
// and the bin-center distances, both of length nbins. The pair distances come
// from the full (both-direction) neighbor enumeration with a Scalar cutoff of
// rmax.
func Compute(cfg pairlist.Config, rmax float64, nbins int) (g, r []float64, err error) {
	if nbins < 1 {
		return nil, nil, &ErrInvalidBinCount{NBins: nbins}
	}
	if err := CheckCell(cfg.Cell, cfg.PBC, rmax); err != nil {
		return nil, nil, err
	}

	lst, err := pairlist.Neighbors("d", cfg, pairlist.Scalar(rmax))
	if err != nil {
		return nil, nil, err
	}

	dr := rmax / float64(nbins)
	hist := make([]float64, nbins+1)
	for _, d := range lst.Distances {
		idx := int(math.Ceil(d / dr))
		if idx <= nbins {
			hist[idx]++
		}
	}

	n := len(cfg.Positions)
	vol := cfg.Cell.Volume()
	if vol == 0 {
		return nil, nil, ErrZeroVolume
	}

	// Both directions of every pair are counted, matching the 4*pi shell
	// normalization.
	phi := float64(n) / vol
	norm := 4 * math.Pi * dr * phi * float64(n)

	r = make([]float64, nbins)
	if nbins == 1 {
		r[0] = dr / 2
	} else {
		floats.Span(r, dr/2, rmax-dr/2)
	}

	g = make([]float64, nbins)
	for k := 0; k < nbins; k++ {
		rr := r[k]
		g[k] = hist[k+1] / (norm * (rr*rr + dr*dr/12))
	}
	return g, r, nil
}
