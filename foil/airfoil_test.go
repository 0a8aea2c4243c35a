// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package foil

import (
	"math"
	"testing"

	"github.com/GodotMisogi/AeroMDAO/geom"
)

// naca00xx builds a symmetric 4-digit NACA airfoil (thickness t, e.g. 0.12
// for NACA 0012) as a Selig-ordered point set with n points per surface.
func naca00xx(t float64, n int) Airfoil {
	xs := geom.Cosine(0, 1, n)
	thickness := func(x float64) float64 {
		return 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1015*x*x*x*x)
	}
	pts := make([]geom.Point2D, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- { // upper TE -> LE
		pts = append(pts, geom.Point2D{xs[i], thickness(xs[i])})
	}
	for i := 1; i < n; i++ { // lower LE -> TE
		pts = append(pts, geom.Point2D{xs[i], -thickness(xs[i])})
	}
	a, err := New(pts)
	if err != nil {
		panic(err)
	}
	return a
}

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestSplitRecoversLeadingEdge(t *testing.T) {
	a := naca00xx(0.12, 20)
	upper, lower := a.Split()
	if upper[0] != lower[0] {
		t.Fatalf("upper and lower surfaces must share the leading-edge point: %v vs %v", upper[0], lower[0])
	}
	if !almostEqual(upper[0][0], 0, 1e-12) {
		t.Fatalf("leading edge should be at x=0, got %v", upper[0][0])
	}
}

func TestCamberOfSymmetricAirfoilIsZero(t *testing.T) {
	a := naca00xx(0.12, 40)
	_, camber, halfThickness := a.CamberThickness(30)
	for i, c := range camber {
		if !almostEqual(c, 0, 1e-9) {
			t.Fatalf("symmetric airfoil camber should be ~0 at station %d, got %v", i, c)
		}
	}
	for i, ht := range halfThickness {
		if ht < -1e-12 {
			t.Fatalf("half-thickness should be non-negative for a symmetric airfoil, station %d = %v", i, ht)
		}
	}
}

func TestCosineResampleIdempotent(t *testing.T) {
	a := naca00xx(0.12, 50)
	b, err := a.CosineResample(25)
	if err != nil {
		t.Fatalf("CosineResample failed: %v", err)
	}
	c, err := b.CosineResample(25)
	if err != nil {
		t.Fatalf("second CosineResample failed: %v", err)
	}
	if len(b.Points) != len(c.Points) {
		t.Fatalf("resampling at the same count should preserve point count: %d vs %d", len(b.Points), len(c.Points))
	}
	for i := range b.Points {
		if !almostEqual(b.Points[i][0], c.Points[i][0], 1e-6) || !almostEqual(b.Points[i][1], c.Points[i][1], 1e-6) {
			t.Fatalf("resampling at the same count should be idempotent at point %d: %v vs %v", i, b.Points[i], c.Points[i])
		}
	}
}

func TestChord(t *testing.T) {
	a := naca00xx(0.12, 20)
	if !almostEqual(a.Chord(), 1.0, 1e-9) {
		t.Fatalf("unit-chord NACA airfoil should report chord 1.0, got %v", a.Chord())
	}
}

func TestNewRejectsTooFewPoints(t *testing.T) {
	if _, err := New([]geom.Point2D{{0, 0}, {1, 0}}); err == nil {
		t.Fatalf("expected error for a degenerate 2-point airfoil")
	}
}
