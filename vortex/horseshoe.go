// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vortex

import "github.com/GodotMisogi/AeroMDAO/geom"

// Horseshoe is a single bound Line with two implicit semi-infinite
// trailing legs. The trailing direction (unit, pointing downstream) is
// supplied at velocity-evaluation time rather than stored, since it is
// shared by every horseshoe in a solve and derived from the freestream.
type Horseshoe struct {
	Bound Line
}

// NewHorseshoe builds a horseshoe from its bound-leg endpoints.
func NewHorseshoe(r1, r2 geom.Point3D) Horseshoe {
	return Horseshoe{Bound: Line{R1: r1, R2: r2}}
}

// Velocity returns the unit-strength velocity induced by the horseshoe
// (bound leg plus both semi-infinite trailing legs parallel to d) at p.
func (h Horseshoe) Velocity(p geom.Point3D, d geom.Point3D) geom.Point3D {
	vBound := h.Bound.Velocity(p)
	vTrail := trailingVelocity(p, h.Bound.R1, h.Bound.R2, d)
	return vBound.Add(vTrail)
}

// trailingVelocity returns the unit-strength velocity induced by the two
// semi-infinite trailing legs leaving r1 and r2 in direction d (pointing
// downstream), evaluated at p:
//
//	v = (a×d)/(|a|(|a|-a·d)) - (b×d)/(|b|(|b|-b·d))
func trailingVelocity(p, r1, r2, d geom.Point3D) geom.Point3D {
	a := p.Sub(r1)
	b := p.Sub(r2)
	na, nb := a.Norm(), b.Norm()

	var leg1, leg2 geom.Point3D
	if da := na * (na - a.Dot(d)); da >= singularityGuard {
		leg1 = a.Cross(d).Scale(1 / da)
	}
	if db := nb * (nb - b.Dot(d)); db >= singularityGuard {
		leg2 = b.Cross(d).Scale(1 / db)
	}
	return leg1.Sub(leg2).Scale(invFourPi)
}

// Transform applies a rigid-body transform to the bound leg.
func (h Horseshoe) Transform(t geom.Transform) Horseshoe {
	return Horseshoe{Bound: Line{R1: t.Apply(h.Bound.R1), R2: t.Apply(h.Bound.R2)}}
}
