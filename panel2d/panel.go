// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panel2d implements the two-dimensional constant-strength
// doublet-source panel method for airfoils: a Dirichlet boundary-value
// problem solved with the Morino formulation, generalised from the
// teacher repository's ele/diffusion package, which plays the analogous
// "two coefficient matrices plus one constraint row" assembly role for a
// scalar diffusion element.
package panel2d

import (
	"math"

	"github.com/GodotMisogi/AeroMDAO/geom"
)

// Panel is a straight boundary segment from P1 to P2 (Selig order, so the
// outward normal points away from the airfoil interior).
type Panel struct {
	P1, P2 geom.Point2D
}

// Length returns the panel's length.
func (p Panel) Length() float64 {
	d := sub(p.P2, p.P1)
	return math.Hypot(d[0], d[1])
}

// Midpoint returns the panel's collocation point (constant-strength
// panels collocate at the midpoint).
func (p Panel) Midpoint() geom.Point2D {
	return geom.Point2D{0.5 * (p.P1[0] + p.P2[0]), 0.5 * (p.P1[1] + p.P2[1])}
}

// Tangent returns the unit tangent from P1 to P2.
func (p Panel) Tangent() geom.Point2D {
	d := sub(p.P2, p.P1)
	n := math.Hypot(d[0], d[1])
	return geom.Point2D{d[0] / n, d[1] / n}
}

// Normal returns the outward unit normal (tangent rotated -90 degrees, so
// that for a Selig-ordered closed loop traversed upper-TE-to-LE-to-lower-TE
// it points away from the airfoil interior).
func (p Panel) Normal() geom.Point2D {
	t := p.Tangent()
	return geom.Point2D{t[1], -t[0]}
}

// sub returns p-q for 2D points (local helper; geom.Point2D has no Sub
// method of its own since 2D arithmetic is only needed here and in foil
// resampling, which works on separate x/y slices instead).
func sub(p, q geom.Point2D) geom.Point2D {
	return geom.Point2D{p[0] - q[0], p[1] - q[1]}
}

// toLocal expresses global point g in panel p's local frame: origin at
// P1, x-axis along the panel tangent, z the local normal direction.
func (p Panel) toLocal(g geom.Point2D) (x, z float64) {
	d := sub(g, p.P1)
	t := p.Tangent()
	n := p.Normal()
	x = d[0]*t[0] + d[1]*t[1]
	z = d[0]*n[0] + d[1]*n[1]
	return
}

// sourcePotential returns the unit-strength source-panel potential at
// local coordinates (x,z) for a panel of length l lying along the local
// x-axis from 0 to l (the standard closed-form constant-strength source
// panel potential).
func sourcePotential(x, z, l float64) float64 {
	r1sq := x*x + z*z
	r2sq := (x-l)*(x-l) + z*z
	theta1 := math.Atan2(z, x)
	theta2 := math.Atan2(z, x-l)
	term := x*halfLog(r1sq) - (x-l)*halfLog(r2sq) + 2*z*(theta2-theta1) - 2*l
	return term / (4 * math.Pi)
}

// doubletPotential returns the unit-strength doublet-panel potential at
// local coordinates (x,z) for a panel of length l: the angle subtended by
// the panel as seen from (x,z).
func doubletPotential(x, z, l float64) float64 {
	theta1 := math.Atan2(z, x)
	theta2 := math.Atan2(z, x-l)
	return -(theta2 - theta1) / (2 * math.Pi)
}

func halfLog(rsq float64) float64 {
	if rsq <= 0 {
		return 0
	}
	return math.Log(rsq)
}
