// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vortex implements the Biot-Savart velocity kernels shared by
// both potential-flow methods: a finite straight filament (Line) and a
// horseshoe vortex assembled from one bound Line and two semi-infinite
// trailing legs. Generalised from the teacher repository's ele package,
// which plays the analogous "smallest computational primitive with an
// influence kernel" role for finite elements.
package vortex

import (
	"math"

	"github.com/GodotMisogi/AeroMDAO/geom"
)

// singularityGuard is the distance below which a filament's induced
// velocity is clamped to zero, avoiding the 1/0 singularity on the
// filament itself.
const singularityGuard = 1e-8

// invFourPi is 1/(4*pi), the Biot-Savart normalization constant.
const invFourPi = 1 / (4 * math.Pi)

// Line is a straight vortex filament of unit strength from R1 to R2.
type Line struct {
	R1, R2 geom.Point3D
}

// Velocity returns the unit-strength velocity induced by the line at p,
// using the numerically stable "Moran" form: it is zero both on the
// segment itself and on its collinear extension outside the segment,
// matching the physical interpretation used in panel-method influence
// coefficients.
func (l Line) Velocity(p geom.Point3D) geom.Point3D {
	a := p.Sub(l.R1)
	b := p.Sub(l.R2)
	na, nb := a.Norm(), b.Norm()
	axb := a.Cross(b)
	naxb := axb.Norm()
	if min3(na, nb, naxb) < singularityGuard {
		return geom.Point3D{}
	}
	denom := na*nb + a.Dot(b)
	return axb.Scale(invFourPi * (1/na + 1/nb) / denom)
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
