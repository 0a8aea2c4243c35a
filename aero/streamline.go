// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"github.com/GodotMisogi/AeroMDAO/geom"
	"github.com/GodotMisogi/AeroMDAO/vortex"
)

// Streamline traces a single forward-Euler streamline from seed through
// the induced velocity field of horseshoes (weighted by gamma) plus the
// freestream and rotational velocity, for total length L in numSteps
// equal steps. There is no collision detection against panels.
func Streamline(seed geom.Point3D, fs Freestream, horseshoes []vortex.Horseshoe, gamma []float64, length float64, numSteps int) []geom.Point3D {
	trailDir := fs.UHat().Scale(-1)
	U := fs.Velocity()
	step := length / float64(numSteps)

	pts := make([]geom.Point3D, numSteps+1)
	pts[0] = seed
	r := seed
	for k := 0; k < numSteps; k++ {
		var v geom.Point3D
		for j, h := range horseshoes {
			v = v.Add(h.Velocity(r, trailDir).Scale(gamma[j]))
		}
		v = v.Add(U).Add(fs.Omega.Cross(r))
		n := v.Norm()
		if n == 0 {
			pts[k+1] = r
			continue
		}
		r = r.Add(v.Scale(step / n))
		pts[k+1] = r
	}
	return pts
}

// Streamlines traces one streamline per seed point.
func Streamlines(seeds []geom.Point3D, fs Freestream, horseshoes []vortex.Horseshoe, gamma []float64, length float64, numSteps int) [][]geom.Point3D {
	out := make([][]geom.Point3D, len(seeds))
	for i, s := range seeds {
		out[i] = Streamline(s, fs, horseshoes, gamma, length, numSteps)
	}
	return out
}
