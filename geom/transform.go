// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Transform is a rigid-body transform: rotate by Angle (radians) about the
// unit Axis, then translate by Position. Used to place component meshes
// (e.g. a horizontal or vertical tail) relative to a wing's origin.
type Transform struct {
	Position Point3D
	Axis     Point3D // must be unit length; zero vector means no rotation
	Angle    float64 // radians
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{Axis: Point3D{0, 0, 1}, Angle: 0}
}

// Apply rotates p about Axis by Angle (Rodrigues' rotation formula) then
// translates by Position.
func (t Transform) Apply(p Point3D) Point3D {
	r := p
	if t.Angle != 0 {
		k := t.Axis
		kn := k.Norm()
		if kn > 0 {
			k = k.Scale(1 / kn)
			c, s := math.Cos(t.Angle), math.Sin(t.Angle)
			r = p.Scale(c).
				Add(k.Cross(p).Scale(s)).
				Add(k.Scale(k.Dot(p) * (1 - c)))
		}
	}
	return r.Add(t.Position)
}

// Inverse returns the transform that undoes t: rotate back by -Angle about
// the same axis after removing the translation.
func (t Transform) Inverse() Transform {
	return Transform{
		Position: Point3D{}, // inverse translation is folded into Apply below
		Axis:     t.Axis,
		Angle:    -t.Angle,
	}.withUndoTranslation(t.Position)
}

// withUndoTranslation bakes "subtract the forward translation before
// rotating back" into an inverse transform by pre-rotating -Position.
func (t Transform) withUndoTranslation(fwdPosition Point3D) Transform {
	// Apply computes rotate(p) + Position, so the true inverse is
	// rotate_inv(p - fwdPosition). Since Apply always rotates first then
	// translates, express this as rotate_inv(p) + rotate_inv(-fwdPosition).
	inv := Transform{Axis: t.Axis, Angle: t.Angle, Position: Point3D{}}
	neg := Point3D{-fwdPosition[0], -fwdPosition[1], -fwdPosition[2]}
	inv.Position = inv.Apply(neg)
	return inv
}
