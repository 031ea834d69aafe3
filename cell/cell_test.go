package cell

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestReciprocalCubic(t *testing.T) {
	c := Cell{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}
	rec := c.Reciprocal()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 0.25
			}
			if !almostEqual(rec[i][j], want, 1e-12) {
				t.Fatalf("rec[%d][%d] = %g, want %g", i, j, rec[i][j], want)
			}
		}
	}
}

func TestReciprocalInverseProperty(t *testing.T) {
	// For a full-rank cell the pseudo-inverse is the true inverse:
	// cell . rec must be the identity.
	c := Cell{{4, 0, 0}, {1, 5, 0}, {0, 2, 6}}
	rec := c.Reciprocal()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got := c[i][0]*rec[0][j] + c[i][1]*rec[1][j] + c[i][2]*rec[2][j]
			want := 0.0
			if i == j {
				want = 1
			}
			if !almostEqual(got, want, 1e-12) {
				t.Fatalf("(cell . rec)[%d][%d] = %g, want %g", i, j, got, want)
			}
		}
	}
}

func TestReciprocalSingular(t *testing.T) {
	// Zero row on a free axis: the pseudo-inverse has a zero column there
	// instead of failing.
	c := Cell{{4, 0, 0}, {0, 4, 0}, {0, 0, 0}}
	rec := c.Reciprocal()
	if !almostEqual(rec[0][0], 0.25, 1e-12) || !almostEqual(rec[1][1], 0.25, 1e-12) {
		t.Fatalf("finite axes wrong: %v", rec)
	}
	for i := 0; i < 3; i++ {
		if rec[i][2] != 0 || rec[2][i] != 0 {
			t.Fatalf("singular axis not zeroed: %v", rec)
		}
	}
}

func TestFaceDistances(t *testing.T) {
	c := Cell{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
	d := c.FaceDistances()
	want := [3]float64{2, 3, 4}
	for i := 0; i < 3; i++ {
		if !almostEqual(d[i], want[i], 1e-12) {
			t.Fatalf("face distance %d = %g, want %g", i, d[i], want[i])
		}
	}

	free := Cell{{2, 0, 0}, {0, 3, 0}, {0, 0, 0}}
	d = free.FaceDistances()
	if !math.IsInf(d[2], 1) {
		t.Fatalf("free axis face distance = %g, want +Inf", d[2])
	}
}

func TestFaceDistancesSheared(t *testing.T) {
	// Shearing b along a must not change the spacing of the a-faces.
	c := Cell{{2, 0, 0}, {1, 3, 0}, {0, 0, 4}}
	d := c.FaceDistances()
	if !almostEqual(d[0], 2, 1e-12) {
		t.Fatalf("sheared a-face distance = %g, want 2", d[0])
	}
	if !almostEqual(d[1], 3, 1e-12) {
		t.Fatalf("sheared b-face distance = %g, want 3", d[1])
	}
}

func TestScaledRoundTrip(t *testing.T) {
	c := Cell{{2, 0, 0}, {1, 3, 0}, {0, 1, 4}}
	rec := c.Reciprocal()
	r := [3]float64{1.7, 2.9, -0.4}
	s := Scaled(r, rec)
	// r = s . cell
	var back [3]float64
	for j := 0; j < 3; j++ {
		back[j] = s[0]*c[0][j] + s[1]*c[1][j] + s[2]*c[2][j]
	}
	for j := 0; j < 3; j++ {
		if !almostEqual(back[j], r[j], 1e-10) {
			t.Fatalf("round trip component %d: %g != %g", j, back[j], r[j])
		}
	}
}

func TestVolume(t *testing.T) {
	c := Cell{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
	if v := c.Volume(); !almostEqual(v, 24, 1e-12) {
		t.Fatalf("volume = %g, want 24", v)
	}
	singular := Cell{{2, 0, 0}, {2, 0, 0}, {0, 0, 4}}
	if v := singular.Volume(); v != 0 {
		t.Fatalf("singular volume = %g, want 0", v)
	}
}

func TestCartesianShift(t *testing.T) {
	c := Cell{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
	got := c.CartesianShift([3]int{1, -1, 2})
	want := [3]float64{2, -3, 8}
	if got != want {
		t.Fatalf("shift = %v, want %v", got, want)
	}
}

func TestMinimumImage(t *testing.T) {
	c := Cell{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}
	drs := [][3]float64{
		{9, 0, 0},   // wraps to -1
		{-6, 0, 0},  // wraps to +4
		{4, 0, 0},   // stays
		{0, 5.1, 0}, // wraps to -4.9
	}
	got := MinimumImage(drs, c, PBC{true, true, true})
	want := [][3]float64{{-1, 0, 0}, {4, 0, 0}, {4, 0, 0}, {0, -4.9, 0}}
	for n := range want {
		for j := 0; j < 3; j++ {
			if !almostEqual(got[n][j], want[n][j], 1e-10) {
				t.Fatalf("mic[%d] = %v, want %v", n, got[n], want[n])
			}
		}
	}
}

func TestMinimumImageMatchesImageSearch(t *testing.T) {
	// Cross-check against brute force: for displacements shorter than half
	// the cell, mic must pick the shortest image over all 27 neighbor shifts.
	c := Cell{{8, 0, 0}, {0, 9, 0}, {0, 0, 10}}
	pbc := PBC{true, true, true}

	drs := [][3]float64{
		{7, 1, 0}, {-5, -5, 2}, {3.9, 4.4, 4.9}, {0.1, -0.2, 0.3},
	}
	got := MinimumImage(drs, c, pbc)
	for n, dr := range drs {
		best := math.Inf(1)
		var want [3]float64
		for sx := -1; sx <= 1; sx++ {
			for sy := -1; sy <= 1; sy++ {
				for sz := -1; sz <= 1; sz++ {
					sh := c.CartesianShift([3]int{sx, sy, sz})
					v := [3]float64{dr[0] + sh[0], dr[1] + sh[1], dr[2] + sh[2]}
					d := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
					if d < best {
						best = d
						want = v
					}
				}
			}
		}
		for j := 0; j < 3; j++ {
			if !almostEqual(got[n][j], want[j], 1e-10) {
				t.Fatalf("mic[%d] = %v, brute force %v", n, got[n], want)
			}
		}
	}
}

func TestMinimumImageRespectsPBC(t *testing.T) {
	c := Cell{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}
	drs := [][3]float64{{9, 9, 9}}
	got := MinimumImage(drs, c, PBC{true, false, true})
	want := [3]float64{-1, 9, -1}
	for j := 0; j < 3; j++ {
		if !almostEqual(got[0][j], want[j], 1e-10) {
			t.Fatalf("mic = %v, want %v", got[0], want)
		}
	}
}
