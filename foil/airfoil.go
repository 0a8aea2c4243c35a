// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package foil implements the airfoil representation: an ordered
// Selig-format coordinate set, cosine resampling, and camber/thickness
// decomposition. File parsing and Kulfan-CST parametrization are external
// collaborators (spec §1) and are not implemented here; callers supply the
// 2D coordinate array directly via New.
package foil

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/GodotMisogi/AeroMDAO/geom"
)

// Airfoil is an ordered sequence of 2D points in Selig order: upper surface
// from trailing edge to leading edge, then lower surface back to trailing
// edge. The first and last points coincide (closed trailing edge) or define
// a sharp/open trailing edge gap.
type Airfoil struct {
	Points []geom.Point2D
}

// New validates and wraps a Selig-ordered coordinate set.
func New(points []geom.Point2D) (Airfoil, error) {
	if len(points) < 3 {
		return Airfoil{}, chk.Err("airfoil requires at least 3 points, got %d", len(points))
	}
	return Airfoil{Points: points}, nil
}

// minXIndex returns the index of the point with smallest x (the leading edge).
func (a Airfoil) minXIndex() int {
	idx := 0
	for i, p := range a.Points {
		if p[0] < a.Points[idx][0] {
			idx = i
		}
	}
	return idx
}

// Split separates the Selig-ordered outline into upper and lower surfaces at
// the leading-edge (minimum-x) point. Both are returned in order of
// increasing x (trailing edge to leading edge reversed for the upper
// surface so both run LE->TE).
func (a Airfoil) Split() (upper, lower []geom.Point2D) {
	le := a.minXIndex()
	upperRev := a.Points[:le+1] // TE -> LE
	lower = a.Points[le:]       // LE -> TE
	upper = make([]geom.Point2D, len(upperRev))
	for i, p := range upperRev {
		upper[len(upperRev)-1-i] = p // reversed to LE -> TE
	}
	return upper, lower
}

// CosineResample resamples the airfoil to n points per surface (2n-1 total,
// sharing the leading-edge point), clustering samples near the leading and
// trailing edges for accurate panel-method pressure recovery.
func (a Airfoil) CosineResample(n int) (Airfoil, error) {
	upper, lower := a.Split()
	ux, uy := splitXY(upper)
	lx, ly := splitXY(lower)

	uxOut, uyOut := geom.CosineInterp(ux, uy, n)
	lxOut, lyOut := geom.CosineInterp(lx, ly, n)

	pts := make([]geom.Point2D, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- { // TE -> LE
		pts = append(pts, geom.Point2D{uxOut[i], uyOut[i]})
	}
	for i := 1; i < n; i++ { // LE -> TE, skipping duplicated LE point
		pts = append(pts, geom.Point2D{lxOut[i], lyOut[i]})
	}
	return New(pts)
}

// CamberThickness returns, at n common x-stations spanning the chord, the
// camber line (average of matched upper/lower y) and the half-thickness
// (half the upper-lower y difference). The camber line is the surface VLM
// panel normals are derived from; the full outline (Points) is used by the
// 2D panel method.
func (a Airfoil) CamberThickness(n int) (x, camber, halfThickness []float64) {
	upper, lower := a.Split()
	ux, uy := splitXY(upper)
	lx, ly := splitXY(lower)

	xOut, uyOut := geom.CosineInterp(ux, uy, n)
	_, lyOut := geom.CosineInterp(lx, ly, n)

	camber = make([]float64, n)
	halfThickness = make([]float64, n)
	for i := 0; i < n; i++ {
		camber[i] = 0.5 * (uyOut[i] + lyOut[i])
		halfThickness[i] = 0.5 * (uyOut[i] - lyOut[i])
	}
	return xOut, camber, halfThickness
}

// CamberAt interpolates the normalized camber ordinate (camber/chord) at a
// chordwise fraction x in [0,1], sampling the airfoil's camber line at n
// stations. Returns 0 for a zero-value (uninitialized) Airfoil, so a
// section with no assigned airfoil degenerates to an uncambered flat plate.
func (a Airfoil) CamberAt(xFrac float64, n int) float64 {
	if len(a.Points) == 0 {
		return 0
	}
	x, camber, _ := a.CamberThickness(n)
	c := a.Chord()
	if c == 0 {
		return 0
	}
	xNorm := make([]float64, len(x))
	camberNorm := make([]float64, len(camber))
	for i := range x {
		xNorm[i] = (x[i] - x[0]) / c
		camberNorm[i] = camber[i] / c
	}
	return geom.Lerp(xNorm, camberNorm, xFrac)
}

// Chord returns the chord length (max x minus min x).
func (a Airfoil) Chord() float64 {
	xs := make([]float64, len(a.Points))
	for i, p := range a.Points {
		xs[i] = p[0]
	}
	sort.Float64s(xs)
	return xs[len(xs)-1] - xs[0]
}

func splitXY(pts []geom.Point2D) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p[0]
		ys[i] = p[1]
	}
	return
}
