// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/GodotMisogi/AeroMDAO/geom"
	"github.com/GodotMisogi/AeroMDAO/wing"
)

// camberSamples is the number of stations used to resolve a section's
// camber line when interpolating the camber offset at an arbitrary
// chordwise fraction.
const camberSamples = 50

// Config holds the paneller's spanwise/chordwise subdivision options, the
// programmatic analog of spec.md §6's configuration struct.
type Config struct {
	SpanwisePanels  []int  // per inter-section, length K
	ChordwisePanels int    // shared across the whole half-wing
	Spacing         string // "uniform", "cosine" or "sine"
}

// Bound generates the bound-leg mesh of a half-wing: straight-line chords
// (no camber), used to place horseshoe bound legs at the quarter-chord and
// collocation points at the three-quarter-chord of each panel.
func Bound(hw wing.HalfWing, cfg Config, mirror bool) ([]Panel3D, error) {
	return buildMesh(hw, cfg, mirror, false)
}

// Camber generates the camber mesh: the same spanwise/chordwise grid but
// following each section's camber line, used only to compute panel normals
// so cambered airfoils are represented without modeling camber
// geometrically in the bound mesh.
func Camber(hw wing.HalfWing, cfg Config, mirror bool) ([]Panel3D, error) {
	return buildMesh(hw, cfg, mirror, true)
}

func buildMesh(hw wing.HalfWing, cfg Config, mirror, camber bool) ([]Panel3D, error) {
	k := hw.N() - 1
	if len(cfg.SpanwisePanels) != k {
		return nil, chk.Err("spanwise panel counts must have length %d (one per inter-section), got %d", k, len(cfg.SpanwisePanels))
	}
	if cfg.ChordwisePanels < 1 {
		return nil, chk.Err("chordwise panel count must be >= 1, got %d", cfg.ChordwisePanels)
	}
	dist, err := geom.NewDistribution(cfg.Spacing)
	if err != nil {
		return nil, err
	}

	le := hw.LeadingEdge(mirror)
	te := hw.TrailingEdge(mirror)

	chordFracs := dist(0, 1, cfg.ChordwisePanels+1)

	var panels []Panel3D
	for seg := 0; seg < k; seg++ {
		nSpan := cfg.SpanwisePanels[seg]
		if nSpan < 1 {
			return nil, chk.Err("spanwise panel count at inter-section %d must be >= 1, got %d", seg, nSpan)
		}
		spanFracs := dist(0, 1, nSpan+1)

		rootRow := chordRow(hw.Sections[seg], le[seg], te[seg], chordFracs, camber)
		tipRow := chordRow(hw.Sections[seg+1], le[seg+1], te[seg+1], chordFracs, camber)

		grid := make([][]geom.Point3D, nSpan+1)
		for s, mu := range spanFracs {
			row := make([]geom.Point3D, len(chordFracs))
			for c := range chordFracs {
				row[c] = geom.WeightedPoint(rootRow[c], tipRow[c], mu, mu, mu)
			}
			grid[s] = row
		}

		for s := 0; s < nSpan; s++ {
			for c := 0; c < cfg.ChordwisePanels; c++ {
				panels = append(panels, Panel3D{
					P1: grid[s][c],
					P2: grid[s][c+1],
					P3: grid[s+1][c+1],
					P4: grid[s+1][c],
				})
			}
		}
	}
	return panels, nil
}

// chordRow returns the nc+1 points along section's chord line at the given
// chordwise fractions, offset by the section's camber line when camber is
// true.
func chordRow(s wing.Section, le, te geom.Point3D, fracs []float64, camber bool) []geom.Point3D {
	row := make([]geom.Point3D, len(fracs))
	for i, f := range fracs {
		p := geom.WeightedPoint(le, te, f, f, f)
		if camber {
			p[2] += s.Airfoil.CamberAt(f, camberSamples) * s.Chord
		}
		row[i] = p
	}
	return row
}

// Place applies a rigid-body transform to an entire component mesh (bound
// and camber panels together), for offsetting a secondary surface (e.g. a
// horizontal or vertical tail) from a wing's origin.
func Place(bound, camber []Panel3D, t geom.Transform) (boundOut, camberOut []Panel3D) {
	return TransformAll(bound, t), TransformAll(camber, t)
}
