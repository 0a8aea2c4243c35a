// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aero implements the influence-matrix assembly and solve, force
// and moment post-processing, stability-derivative sweeps, and streamline
// integration that drive the vortex-lattice method. Generalised from the
// teacher repository's fem package, which plays the analogous "own the
// solve, own the post-processing, expose one driver entry point" role for
// a finite-element analysis.
package aero

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/GodotMisogi/AeroMDAO/geom"
)

// Freestream is a 3D uniform flow: speed magnitude, angle of attack and
// sideslip (radians), body-axis angular rate, and the fluid density used
// to dimensionalize Kutta-Joukowski forces.
type Freestream struct {
	Speed   float64
	Alpha   float64
	Beta    float64
	Omega   geom.Point3D // body rates (p, q, r), rad/s
	Density float64
}

// NewFreestream builds a Freestream, defaulting density to sea-level
// standard air (1.225 kg/m^3) if zero is passed.
func NewFreestream(speed, alpha, beta float64, omega geom.Point3D, density float64) (Freestream, error) {
	if speed <= 0 {
		return Freestream{}, chk.Err("freestream speed must be positive, got %v", speed)
	}
	if density == 0 {
		density = 1.225
	}
	return Freestream{Speed: speed, Alpha: alpha, Beta: beta, Omega: omega, Density: density}, nil
}

// Velocity returns the Cartesian freestream velocity vector in body axes:
// (V*cos(a)*cos(b), -V*sin(b), V*sin(a)*cos(b)).
func (f Freestream) Velocity() geom.Point3D {
	ca, sa := math.Cos(f.Alpha), math.Sin(f.Alpha)
	cb, sb := math.Cos(f.Beta), math.Sin(f.Beta)
	return geom.Point3D{f.Speed * ca * cb, -f.Speed * sb, f.Speed * sa * cb}
}

// UHat returns the unit freestream direction.
func (f Freestream) UHat() geom.Point3D {
	v := f.Velocity()
	return v.Scale(1 / v.Norm())
}

// DynamicPressure returns q = 0.5*rho*V^2.
func (f Freestream) DynamicPressure() float64 {
	return 0.5 * f.Density * f.Speed * f.Speed
}

// Uniform2D is a 2D uniform flow for the airfoil panel method: speed and
// angle of attack (radians).
type Uniform2D struct {
	Speed float64
	Alpha float64
}
