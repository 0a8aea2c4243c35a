// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the paneller: spanwise/chordwise subdivision of a
// lifting surface into quadrilateral panels, bound-leg and collocation
// placement, and rigid-body placement of component meshes. Generalised from
// the teacher repository's shape-function package (shp), which played the
// analogous "turn geometry into discretized element corners" role for
// finite elements.
package mesh

import "github.com/GodotMisogi/AeroMDAO/geom"

// Panel3D is an ordered quadrilateral: p1 forward-inboard, p2 aft-inboard,
// p3 aft-outboard, p4 forward-outboard, with the local normal pointing
// upward for a standard wing in level flight.
type Panel3D struct {
	P1, P2, P3, P4 geom.Point3D
}

// Centroid returns the average of the four corners.
func (p Panel3D) Centroid() geom.Point3D {
	return geom.Point3D{
		(p.P1[0] + p.P2[0] + p.P3[0] + p.P4[0]) / 4,
		(p.P1[1] + p.P2[1] + p.P3[1] + p.P4[1]) / 4,
		(p.P1[2] + p.P2[2] + p.P3[2] + p.P4[2]) / 4,
	}
}

// Normal returns the unit outward (upward) normal, from the cross product
// of the two diagonals (p3-p1) x (p4-p2), which for a planar or
// near-planar quad in the expected winding gives an upward-pointing vector
// for a standard wing in level flight.
func (p Panel3D) Normal() geom.Point3D {
	d1 := p.P3.Sub(p.P1)
	d2 := p.P4.Sub(p.P2)
	n := d1.Cross(d2)
	norm := n.Norm()
	if norm == 0 {
		return geom.Point3D{}
	}
	return n.Scale(1 / norm)
}

// Area returns the panel's area, computed as half the magnitude of the
// cross product of its diagonals (exact for a planar quadrilateral).
func (p Panel3D) Area() float64 {
	d1 := p.P3.Sub(p.P1)
	d2 := p.P4.Sub(p.P2)
	return 0.5 * d1.Cross(d2).Norm()
}

// BoundLeg returns the forward-quarter-chord bound-leg endpoints
// (v_fwd_inboard, v_fwd_outboard), per spec: weighted_point(p1,p2,1/4,0,1/4)
// and weighted_point(p4,p3,1/4,0,1/4).
func (p Panel3D) BoundLeg() (inboard, outboard geom.Point3D) {
	inboard = geom.WeightedPoint(p.P1, p.P2, 0.25, 0, 0.25)
	outboard = geom.WeightedPoint(p.P4, p.P3, 0.25, 0, 0.25)
	return
}

// Collocation returns the 3/4-chord collocation point (Pistolesi's
// theorem), the midpoint of the inboard and outboard 3/4-chord offsets.
func (p Panel3D) Collocation() geom.Point3D {
	inboard := geom.WeightedPoint(p.P1, p.P2, 0.75, 0, 0.75)
	outboard := geom.WeightedPoint(p.P4, p.P3, 0.75, 0, 0.75)
	return geom.Mid(inboard, outboard)
}

// Transform applies a rigid-body transform to all four corners, used to
// place an entire panel set (e.g. a tail surface offset from the wing
// origin).
func (p Panel3D) Transform(t geom.Transform) Panel3D {
	return Panel3D{t.Apply(p.P1), t.Apply(p.P2), t.Apply(p.P3), t.Apply(p.P4)}
}

// TransformAll applies t to every panel in panels, returning a new slice.
func TransformAll(panels []Panel3D, t geom.Transform) []Panel3D {
	out := make([]Panel3D, len(panels))
	for i, p := range panels {
		out[i] = p.Transform(t)
	}
	return out
}
