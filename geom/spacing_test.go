// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"
)

func TestUniformSpacing(t *testing.T) {
	xs := Uniform(0, 10, 6)
	want := []float64{0, 2, 4, 6, 8, 10}
	for i := range want {
		if !almostEqual(xs[i], want[i], 1e-12) {
			t.Fatalf("Uniform[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestCosineSpacingEndpoints(t *testing.T) {
	xs := Cosine(0, 1, 9)
	if !almostEqual(xs[0], 0, 1e-12) || !almostEqual(xs[len(xs)-1], 1, 1e-12) {
		t.Fatalf("cosine spacing must hit both endpoints exactly, got %v .. %v", xs[0], xs[len(xs)-1])
	}
	// clustering: the first interval must be smaller than a uniform spacing
	// would produce, since cosine spacing clusters points at the ends.
	uniformStep := 1.0 / 8
	if xs[1]-xs[0] >= uniformStep {
		t.Fatalf("cosine spacing should cluster near the endpoint, got first step %v >= uniform step %v", xs[1]-xs[0], uniformStep)
	}
}

func TestCosineSpacingSymmetric(t *testing.T) {
	xs := Cosine(-1, 1, 11)
	mid := len(xs) / 2
	if !almostEqual(xs[mid], 0, 1e-12) {
		t.Fatalf("midpoint of symmetric cosine spacing should be 0, got %v", xs[mid])
	}
	for i := 0; i < mid; i++ {
		if !almostEqual(xs[i], -xs[len(xs)-1-i], 1e-9) {
			t.Fatalf("cosine spacing should be symmetric about the midpoint")
		}
	}
}

func TestCosineInterpIdempotent(t *testing.T) {
	xs := Cosine(0, 1, 21)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(2 * math.Pi * x)
	}
	x2, y2 := CosineInterp(xs, ys, 21)
	for i := range x2 {
		if !almostEqual(x2[i], xs[i], 1e-9) {
			t.Fatalf("resampling at the same count should reproduce the same x grid, got %v want %v", x2[i], xs[i])
		}
		if !almostEqual(y2[i], ys[i], 1e-6) {
			t.Fatalf("resampling at the same count should be idempotent at node %d: got %v want %v", i, y2[i], ys[i])
		}
	}
}

func TestNewDistributionUnknown(t *testing.T) {
	if _, err := NewDistribution("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown spacing distribution")
	}
}

func TestNewDistributionKnown(t *testing.T) {
	for _, name := range []string{"uniform", "cosine", "sine"} {
		d, err := NewDistribution(name)
		if err != nil {
			t.Fatalf("NewDistribution(%q) failed: %v", name, err)
		}
		xs := d(0, 1, 5)
		if len(xs) != 5 {
			t.Fatalf("%s: expected 5 samples, got %d", name, len(xs))
		}
	}
}
