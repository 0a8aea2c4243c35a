// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestWeighted(t *testing.T) {
	if w := Weighted(0, 10, 0.25); !almostEqual(w, 2.5, 1e-12) {
		t.Fatalf("Weighted(0,10,0.25) = %v, want 2.5", w)
	}
	if w := Weighted(1, 1, 0.7); !almostEqual(w, 1, 1e-12) {
		t.Fatalf("Weighted with equal endpoints should return that value, got %v", w)
	}
}

func TestWeightedPointPreservesSpan(t *testing.T) {
	p1 := Point3D{0, 1, 0}
	p2 := Point3D{1, 1, 0.2}
	q := WeightedPoint(p1, p2, 0.25, 0, 0.25)
	if q[1] != 1 {
		t.Fatalf("y (span) component must be preserved with weight 0, got %v", q[1])
	}
	if !almostEqual(q[0], 0.25, 1e-12) {
		t.Fatalf("x quarter-chord offset wrong: got %v want 0.25", q[0])
	}
}

func TestForwardDiff(t *testing.T) {
	xs := []float64{0, 5, 5.5}
	d := ForwardDiff(xs)
	want := []float64{5, 0.5}
	for i := range want {
		if !almostEqual(d[i], want[i], 1e-12) {
			t.Fatalf("ForwardDiff[%d] = %v, want %v", i, d[i], want[i])
		}
	}
}

func TestRotate2DRoundTrip(t *testing.T) {
	p := Point2D{1.3, -0.7}
	theta := 0.37
	q := Rotate2D(p, theta)
	back := Rotate2D(q, -theta)
	if !almostEqual(back[0], p[0], 1e-10) || !almostEqual(back[1], p[1], 1e-10) {
		t.Fatalf("rotation round trip failed: got %v want %v", back, p)
	}
}

func TestRotate2DPreservesNorm(t *testing.T) {
	p := Point2D{2, 3}
	q := Rotate2D(p, 1.234)
	n0 := math.Hypot(p[0], p[1])
	n1 := math.Hypot(q[0], q[1])
	if !almostEqual(n0, n1, 1e-12) {
		t.Fatalf("rotation changed norm: %v -> %v", n0, n1)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{Position: Point3D{1, 2, 3}, Axis: Point3D{0, 0, 1}, Angle: 0.6}
	p := Point3D{0.5, -1.2, 3.4}
	q := tr.Apply(p)
	back := tr.Inverse().Apply(q)
	for i := 0; i < 3; i++ {
		if !almostEqual(back[i], p[i], 1e-9) {
			t.Fatalf("transform round trip failed at %d: got %v want %v", i, back[i], p[i])
		}
	}
}

func TestCrossAndDot(t *testing.T) {
	a := Point3D{1, 0, 0}
	b := Point3D{0, 1, 0}
	c := a.Cross(b)
	if c != (Point3D{0, 0, 1}) {
		t.Fatalf("cross product wrong: %v", c)
	}
	if a.Dot(b) != 0 {
		t.Fatalf("orthogonal dot product should be zero")
	}
}
