// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wing

import "github.com/GodotMisogi/AeroMDAO/geom"

// Wing is a pair of half-wings, possibly of different geometry; the Left
// half is mirrored about the x-z plane during meshing/geometry evaluation.
type Wing struct {
	Left  HalfWing
	Right HalfWing
}

// NewSymmetric builds a Wing whose left half is a mirror image of the
// right, the common case for a planar symmetric aircraft wing.
func NewSymmetric(half HalfWing) Wing {
	return Wing{Left: half, Right: half}
}

// Area returns the combined projected area of both halves.
func (w Wing) Area() float64 {
	return w.Left.Area() + w.Right.Area()
}

// Span returns the full span (both halves, tip to tip).
func (w Wing) Span() float64 {
	return w.Left.Span() + w.Right.Span()
}

// MAC returns the area-weighted mean aerodynamic chord across both halves.
func (w Wing) MAC() float64 {
	aL, aR := w.Left.Area(), w.Right.Area()
	total := aL + aR
	if total == 0 {
		return 0
	}
	return (w.Left.MAC()*aL + w.Right.MAC()*aR) / total
}

// MACLocation returns the area-weighted MAC quarter-chord point across both
// halves, with the left half's location mirrored onto -y before averaging.
func (w Wing) MACLocation() geom.Point3D {
	aL, aR := w.Left.Area(), w.Right.Area()
	total := aL + aR
	if total == 0 {
		return geom.Point3D{}
	}
	l := w.Left.MACLocation(true)
	r := w.Right.MACLocation(false)
	return geom.Point3D{
		(l[0]*aL + r[0]*aR) / total,
		(l[1]*aL + r[1]*aR) / total,
		(l[2]*aL + r[2]*aR) / total,
	}
}

// AspectRatio returns b^2/S for the combined wing.
func (w Wing) AspectRatio() float64 {
	b, s := w.Span(), w.Area()
	if s == 0 {
		return 0
	}
	return b * b / s
}
