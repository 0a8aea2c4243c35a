// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wing

import (
	"math"
	"testing"

	"github.com/GodotMisogi/AeroMDAO/foil"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// buildS2 constructs the two-section trapezoidal half-wing used in the
// literature scenario: chords [1.0, 0.6, 0.2], twists [2, 0, -0.2] degrees,
// spans [5.0, 0.5], dihedrals [5, 5] degrees, sweeps [5, 5] degrees.
func buildS2(t *testing.T) HalfWing {
	t.Helper()
	blank := foil.Airfoil{}
	hw, err := New(
		[]foil.Airfoil{blank, blank, blank},
		[]float64{1.0, 0.6, 0.2},
		[]float64{deg(2), deg(0), deg(-0.2)},
		[]float64{5.0, 0.5},
		[]float64{deg(5), deg(5)},
		[]float64{deg(5), deg(5)},
	)
	if err != nil {
		t.Fatalf("buildS2: %v", err)
	}
	return hw
}

func TestS2Span(t *testing.T) {
	hw := buildS2(t)
	if got, want := hw.Span(), 5.5; !almostEqual(got, want, 1e-6) {
		t.Fatalf("span = %.8f, want %.8f", got, want)
	}
}

func TestS2Area(t *testing.T) {
	hw := buildS2(t)
	if got, want := hw.Area(), 4.19939047; !almostEqual(got, want, 1e-6) {
		t.Fatalf("area = %.8f, want %.8f", got, want)
	}
}

func TestS2MAC(t *testing.T) {
	hw := buildS2(t)
	if got, want := hw.MAC(), 0.79841269; !almostEqual(got, want, 1e-6) {
		t.Fatalf("MAC = %.8f, want %.8f", got, want)
	}
}

func TestS2AspectRatio(t *testing.T) {
	hw := buildS2(t)
	if got, want := hw.AspectRatio(), 7.20342634; !almostEqual(got, want, 1e-6) {
		t.Fatalf("AR = %.8f, want %.8f", got, want)
	}
}

func TestS2OverallTaper(t *testing.T) {
	hw := buildS2(t)
	if got, want := hw.TipToRootTaper(), 0.2; !almostEqual(got, want, 1e-9) {
		t.Fatalf("overall taper = %v, want %v", got, want)
	}
}

// TestMACLocationAgainstPublishedScenario pins MACLocation's actual output
// for the S2 scenario (a regression check on the raw-area-weighted-centroid
// formula implemented in wing/halfwing.go) and explicitly logs the
// comparison against the published literature value for the same scenario,
// rather than only asserting a loose within-span bound. x lands within about
// 2% of the published value; y does not (see the doc comment on
// MACLocation and DESIGN.md Open Question 4 for why this is not resolved).
func TestMACLocationAgainstPublishedScenario(t *testing.T) {
	hw := buildS2(t)
	loc := hw.MACLocation(false)

	if loc[1] < 0 || loc[1] > hw.Span() {
		t.Fatalf("MAC y-location %v must lie within [0, span=%v]", loc[1], hw.Span())
	}
	if loc[0] <= 0 {
		t.Fatalf("MAC x-location should be positive downstream of the apex for a swept-back wing, got %v", loc[0])
	}
	if loc[2] != 0 {
		t.Fatalf("MAC z-location should be reported as 0 (a planform quantity, like Area/Span), got %v", loc[2])
	}

	wantX, wantY := 0.412249, 2.430556
	if !almostEqual(loc[0], wantX, 1e-3) {
		t.Fatalf("MAC x-location = %v, want %v (regression on the implemented raw-area-weighted formula)", loc[0], wantX)
	}
	if !almostEqual(loc[1], wantY, 1e-6) {
		t.Fatalf("MAC y-location = %v, want %v (regression on the implemented raw-area-weighted formula)", loc[1], wantY)
	}

	const litX, litY = 0.42092866, 1.33432539
	t.Logf("published literature MAC location (x=%v, y=%v); this implementation computes (x=%v, y=%v), a delta of (%v, %v) -- documented, unresolved discrepancy, see DESIGN.md Open Question 4", litX, litY, loc[0], loc[1], loc[0]-litX, loc[1]-litY)
}

func TestAreaScalesLinearlyWithChord(t *testing.T) {
	hw := buildS2(t)
	scaled, err := New(
		[]foil.Airfoil{{}, {}, {}},
		[]float64{2.0, 1.2, 0.4}, // chords doubled
		[]float64{deg(2), deg(0), deg(-0.2)},
		[]float64{5.0, 0.5}, // spans unchanged
		[]float64{deg(5), deg(5)},
		[]float64{deg(5), deg(5)},
	)
	if err != nil {
		t.Fatalf("scaled wing: %v", err)
	}
	ratio := scaled.Area() / hw.Area()
	if !almostEqual(ratio, 2.0, 1e-9) {
		t.Fatalf("doubling chord at fixed span should double area (linear in chord), got ratio %v", ratio)
	}
}

func TestSpanInvariantUnderChordScaling(t *testing.T) {
	hw := buildS2(t)
	scaled, err := New(
		[]foil.Airfoil{{}, {}, {}},
		[]float64{2.0, 1.2, 0.4},
		[]float64{deg(2), deg(0), deg(-0.2)},
		[]float64{5.0, 0.5},
		[]float64{deg(5), deg(5)},
		[]float64{deg(5), deg(5)},
	)
	if err != nil {
		t.Fatalf("scaled wing: %v", err)
	}
	if !almostEqual(scaled.Span(), hw.Span(), 1e-12) {
		t.Fatalf("span must not change when only chords are scaled: %v vs %v", scaled.Span(), hw.Span())
	}
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	_, err := New([]foil.Airfoil{{}, {}}, []float64{1.0, 0.5}, []float64{0, 0}, []float64{5.0, 1.0}, []float64{0}, []float64{0})
	if err == nil {
		t.Fatalf("expected an error for mismatched inter-section array lengths")
	}
}

func TestNewRejectsTooFewSections(t *testing.T) {
	_, err := New([]foil.Airfoil{{}}, []float64{1.0}, []float64{0}, nil, nil, nil)
	if err == nil {
		t.Fatalf("expected an error for a single-section half-wing")
	}
}

func TestNewRejectsNonPositiveChord(t *testing.T) {
	_, err := New([]foil.Airfoil{{}, {}}, []float64{1.0, 0}, []float64{0, 0}, []float64{5.0}, []float64{0}, []float64{0})
	if err == nil {
		t.Fatalf("expected an error for a zero chord")
	}
}

func TestTwistStoredNegated(t *testing.T) {
	hw, err := New([]foil.Airfoil{{}, {}}, []float64{1, 1}, []float64{deg(3), deg(3)}, []float64{1}, []float64{0}, []float64{0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !almostEqual(hw.Sections[0].Twist, -deg(3), 1e-12) {
		t.Fatalf("twist should be stored negated relative to the nose-up input, got %v want %v", hw.Sections[0].Twist, -deg(3))
	}
}
