// Package cell provides lattice-cell geometry for periodic particle systems.
//
// A Cell is a 3x3 matrix whose rows are the lattice vectors a, b and c.
// Rows may be zero along non-periodic directions; all derived quantities are
// computed through the Moore-Penrose pseudo-inverse so that free axes simply
// drop out instead of producing singular-matrix failures.
package cell

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cell is a simulation cell. Rows are the lattice vectors.
type Cell [3][3]float64

// PBC holds the per-axis periodicity flags.
type PBC [3]bool

// Any returns true if at least one axis is periodic.
func (p PBC) Any() bool { return p[0] || p[1] || p[2] }

// Reciprocal returns the pseudo-inverse of the cell matrix. Its columns are
// the reciprocal lattice vectors. For a singular cell (zero rows on free
// axes) the corresponding columns are zero.
func (c Cell) Reciprocal() Cell {
	a := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.Set(i, j, c[i][j])
		}
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		// SVD of a finite 3x3 matrix cannot fail to converge in practice;
		// fall back to the zero matrix rather than panic.
		return Cell{}
	}

	rank := 0
	values := svd.Values(nil)
	tol := 3 * math.SmallestNonzeroFloat64
	if len(values) > 0 {
		tol = float64(3) * values[0] * 1e-15
	}
	for _, s := range values {
		if s > tol {
			rank++
		}
	}
	if rank == 0 {
		return Cell{}
	}

	// SolveTo returns per-column residuals, which are irrelevant here; the
	// least-squares solution against the identity is the pseudo-inverse.
	var pinv mat.Dense
	eye := mat.NewDiagDense(3, []float64{1, 1, 1})
	svd.SolveTo(&pinv, eye, rank)

	var rec Cell
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rec[i][j] = pinv.At(i, j)
		}
	}
	return rec
}

// FaceDistances returns the perpendicular spacing between opposite cell faces
// for each axis, computed as 1/|b_i| from the reciprocal vectors. Axes whose
// reciprocal vector vanishes (free axes of a singular cell) report +Inf.
func (c Cell) FaceDistances() [3]float64 {
	rec := c.Reciprocal()
	var dist [3]float64
	for i := 0; i < 3; i++ {
		n := math.Sqrt(rec[0][i]*rec[0][i] + rec[1][i]*rec[1][i] + rec[2][i]*rec[2][i])
		if n == 0 {
			dist[i] = math.Inf(1)
		} else {
			dist[i] = 1 / n
		}
	}
	return dist
}

// Scaled maps a Cartesian position to fractional (scaled) coordinates using
// the given reciprocal matrix, s = r . pinv(cell).
func Scaled(r [3]float64, rec Cell) [3]float64 {
	var s [3]float64
	for j := 0; j < 3; j++ {
		s[j] = r[0]*rec[0][j] + r[1]*rec[1][j] + r[2]*rec[2][j]
	}
	return s
}

// CartesianShift returns S . cell for an integer lattice shift S.
func (c Cell) CartesianShift(s [3]int) [3]float64 {
	var out [3]float64
	for j := 0; j < 3; j++ {
		out[j] = float64(s[0])*c[0][j] + float64(s[1])*c[1][j] + float64(s[2])*c[2][j]
	}
	return out
}

// Volume returns the absolute value of the cell determinant.
func (c Cell) Volume() float64 {
	det := c[0][0]*(c[1][1]*c[2][2]-c[1][2]*c[2][1]) -
		c[0][1]*(c[1][0]*c[2][2]-c[1][2]*c[2][0]) +
		c[0][2]*(c[1][0]*c[2][1]-c[1][1]*c[2][0])
	return math.Abs(det)
}

// Equal reports exact element-wise equality with other.
func (c Cell) Equal(other Cell) bool { return c == other }

// MinimumImage wraps a batch of displacement vectors according to the minimum
// image convention: each vector is reduced by the lattice translation closest
// to it along the periodic directions. The result is only the true minimum
// image when the relevant cutoff is below half the cell height on every
// periodic axis; callers are responsible for that precondition.
func MinimumImage(drs [][3]float64, c Cell, pbc PBC) [][3]float64 {
	rec := c.Reciprocal()
	// Mask out non-periodic axes so their scaled component never rounds.
	for i := 0; i < 3; i++ {
		if !pbc[i] {
			rec[i] = [3]float64{}
		}
	}

	out := make([][3]float64, len(drs))
	for n, dr := range drs {
		s := Scaled(dr, rec)
		shift := [3]int{
			int(math.Round(s[0])),
			int(math.Round(s[1])),
			int(math.Round(s[2])),
		}
		d := c.CartesianShift(shift)
		out[n] = [3]float64{dr[0] - d[0], dr[1] - d[1], dr[2] - d[2]}
	}
	return out
}
