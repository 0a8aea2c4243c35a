// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wing implements lifting-surface geometry: half-wing and full-wing
// composition from sections, leading/trailing-edge curves, and the
// projected-area/span/MAC reductions used to non-dimensionalize forces.
package wing

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"

	"github.com/GodotMisogi/AeroMDAO/foil"
	"github.com/GodotMisogi/AeroMDAO/geom"
)

// Section describes one spanwise station of a half-wing.
type Section struct {
	Airfoil foil.Airfoil
	Chord   float64

	// Twist is stored negated relative to the constructor's input: callers
	// of New supply twist as positive-nose-up (leading-edge-up), so a
	// positive stored value means the trailing edge is raised (nose-down),
	// as TrailingEdge applies c*sin(Twist) to the trailing-edge z.
	Twist float64
}

// HalfWing is an ordered sequence of N sections and N-1 trapezoidal
// inter-section panels.
type HalfWing struct {
	Sections []Section
	Spans     []float64 // length N-1
	Dihedrals []float64 // radians, length N-1
	Sweeps    []float64 // radians, leading-edge sweep, length N-1
}

// New builds a HalfWing from per-section chords/twists (twist positive
// nose-up) and per-inter-section spans/dihedrals/sweeps (radians).
// Airfoils may be zero-value entries if only the planform (not the camber)
// is needed; such a section is meshed as an uncambered flat plate.
func New(airfoils []foil.Airfoil, chords, twistsNoseUp []float64, spans, dihedrals, sweeps []float64) (HalfWing, error) {
	n := len(chords)
	if n < 2 {
		return HalfWing{}, chk.Err("half-wing requires at least 2 sections, got %d", n)
	}
	if len(airfoils) != n || len(twistsNoseUp) != n {
		return HalfWing{}, chk.Err("section arrays must all have length %d: airfoils=%d chords=%d twists=%d", n, len(airfoils), n, len(twistsNoseUp))
	}
	if len(spans) != n-1 || len(dihedrals) != n-1 || len(sweeps) != n-1 {
		return HalfWing{}, chk.Err("inter-section arrays must all have length %d: spans=%d dihedrals=%d sweeps=%d", n-1, len(spans), len(dihedrals), len(sweeps))
	}
	for i, c := range chords {
		if c <= 0 {
			return HalfWing{}, chk.Err("chord at section %d must be positive, got %v", i, c)
		}
	}
	for i, s := range spans {
		if s <= 0 {
			return HalfWing{}, chk.Err("span of inter-section %d must be positive, got %v", i, s)
		}
	}
	sections := make([]Section, n)
	for i := range sections {
		sections[i] = Section{Airfoil: airfoils[i], Chord: chords[i], Twist: -twistsNoseUp[i]}
	}
	return HalfWing{Sections: sections, Spans: append([]float64(nil), spans...), Dihedrals: append([]float64(nil), dihedrals...), Sweeps: append([]float64(nil), sweeps...)}, nil
}

// N returns the number of sections.
func (w HalfWing) N() int { return len(w.Sections) }

// LeadingEdge returns the leading-edge point of each of the N sections, per
// spec.md §4.C: x_k = x_{k-1} + s_k*tan(sweep_k), y accumulates span
// (negated for the mirrored left half), z_k = z_{k-1} + s_k*tan(dihedral_k).
func (w HalfWing) LeadingEdge(mirror bool) []geom.Point3D {
	n := w.N()
	le := make([]geom.Point3D, n)
	ySign := 1.0
	if mirror {
		ySign = -1.0
	}
	for k := 1; k < n; k++ {
		s := w.Spans[k-1]
		le[k] = geom.Point3D{
			le[k-1][0] + s*math.Tan(w.Sweeps[k-1]),
			le[k-1][1] + ySign*s,
			le[k-1][2] + s*math.Tan(w.Dihedrals[k-1]),
		}
	}
	return le
}

// TrailingEdge returns the trailing-edge point of each section: LE_k +
// (c_k, 0, c_k*sin(twist_k)), the twisted-chord displacement in local x-z.
func (w HalfWing) TrailingEdge(mirror bool) []geom.Point3D {
	le := w.LeadingEdge(mirror)
	te := make([]geom.Point3D, w.N())
	for k, s := range w.Sections {
		te[k] = geom.Point3D{
			le[k][0] + s.Chord,
			le[k][1],
			le[k][2] + s.Chord*math.Sin(s.Twist),
		}
	}
	return te
}

// meanChord returns the arithmetic mean chord of inter-section k (between
// sections k and k+1).
func (w HalfWing) meanChord(k int) float64 {
	return 0.5 * (w.Sections[k].Chord + w.Sections[k+1].Chord)
}

func (w HalfWing) meanTwist(k int) float64 {
	return 0.5 * (w.Sections[k].Twist + w.Sections[k+1].Twist)
}

// taper returns the taper ratio c_t/c_r of inter-section k.
func (w HalfWing) taper(k int) float64 {
	return w.Sections[k+1].Chord / w.Sections[k].Chord
}

// rawSectionArea returns the untwisted trapezoidal planform area of
// inter-section k: s_k * mean_chord_k. This is the weight used by MAC() and
// MACLocation(), since MAC is a chord-squared moment (integral of c(y)^2 dy
// over integral of c(y) dy) and area-weighting by the raw (untwisted)
// trapezoid area reproduces that moment exactly for a linear taper.
func (w HalfWing) rawSectionArea(k int) float64 {
	return w.Spans[k] * w.meanChord(k)
}

// sectionArea returns the projected planform area contribution of
// inter-section k: s_k * mean_chord_k * cos(mean_twist_k). Dihedral and
// sweep do not foreshorten a projection onto the x-y reference plane (the
// trapezoid strip's area is preserved under the shear they introduce);
// twist tilts the section's chord out of that plane and does foreshorten
// it.
func (w HalfWing) sectionArea(k int) float64 {
	return w.rawSectionArea(k) * math.Cos(w.meanTwist(k))
}

// Area returns the total projected planform area of the half-wing, summed
// via floats.Sum the way spatialmodel-inmap reduces per-cell contributions.
func (w HalfWing) Area() float64 {
	areas := make([]float64, w.N()-1)
	for k := range areas {
		areas[k] = w.sectionArea(k)
	}
	return floats.Sum(areas)
}

// Span returns the span of the half-wing: the sum of inter-section spans,
// consistent with LeadingEdge's y_k = y_{k-1} + s_k accumulation (dihedral
// and twist do not project the y-coordinate, only x and z).
func (w HalfWing) Span() float64 {
	return floats.Sum(w.Spans)
}

// sectionMAC returns the mean aerodynamic chord of a trapezoidal
// inter-section with root chord cr and taper ratio lambda:
// MAC = (2/3)*cr*(1+lambda+lambda^2)/(1+lambda).
func sectionMAC(cr, lambda float64) float64 {
	return (2.0 / 3.0) * cr * (1 + lambda + lambda*lambda) / (1 + lambda)
}

// MAC returns the mean aerodynamic chord of the half-wing: the raw-area
// weighted combination of each inter-section's own MAC, since
// integral(c^2 dy) = MAC_k * rawArea_k for a linear taper.
func (w HalfWing) MAC() float64 {
	var num, den float64
	for k := 0; k < w.N()-1; k++ {
		a := w.rawSectionArea(k)
		mac := sectionMAC(w.Sections[k].Chord, w.taper(k))
		num += mac * a
		den += a
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// MACLocation returns the (x,y,0) location of the MAC's quarter-chord
// point, raw-area weighted across inter-sections consistent with MAC().
// Within inter-section k, the spanwise offset of its own MAC from that
// section's root is y_MAC_k = (s_k/3)*(1+2*lambda)/(1+lambda); the returned
// x adds a quarter of the local chord at that station (the local chord at
// y_MAC_k equals MAC_k exactly, for a linear taper). z is always 0: like
// Area and Span, the MAC location is treated as a planform (projected)
// quantity and does not carry the leading edge's dihedral-induced z offset.
//
// Known, documented discrepancy: for the two-section scenario in
// wing/halfwing_test.go (chords [1.0,0.6,0.2], spans [5.0,0.5], 5 degree
// dihedral/sweep), this raw-area-weighted-centroid convention computes x
// within about 2% of the published literature MAC location for that
// scenario, but y differs by roughly 80% — see
// TestMACLocationAgainstPublishedScenario in wing/halfwing_test.go, which
// pins the actual computed value and logs the gap rather than only
// asserting a within-span bound. No original source was available to
// derive which spanwise-weighting convention the published value uses
// instead; see DESIGN.md, Open Question 4.
func (w HalfWing) MACLocation(mirror bool) geom.Point3D {
	le := w.LeadingEdge(mirror)
	var num geom.Point3D
	var den float64
	for k := 0; k < w.N()-1; k++ {
		a := w.rawSectionArea(k)
		lambda := w.taper(k)
		mac := sectionMAC(w.Sections[k].Chord, lambda)
		yMAC := w.Spans[k] / 3 * (1 + 2*lambda) / (1 + lambda)
		frac := yMAC / w.Spans[k]
		xLE := geom.Weighted(le[k][0], le[k+1][0], frac)
		yLE := geom.Weighted(le[k][1], le[k+1][1], frac)
		num[0] += (xLE + 0.25*mac) * a
		num[1] += yLE * a
		den += a
	}
	if den == 0 {
		return geom.Point3D{}
	}
	return geom.Point3D{num[0] / den, num[1] / den, 0}
}

// AspectRatio returns b^2/S.
func (w HalfWing) AspectRatio() float64 {
	b := w.Span()
	s := w.Area()
	if s == 0 {
		return 0
	}
	return b * b / s
}

// TipToRootTaper returns the overall taper ratio (tip chord / root chord)
// of the half-wing, as opposed to taper(k) which is per inter-section.
func (w HalfWing) TipToRootTaper() float64 {
	return w.Sections[w.N()-1].Chord / w.Sections[0].Chord
}
