// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import "github.com/cpmech/gosl/io"

// String renders the near-field/far-field coefficients and total
// force/moment for human inspection, in the teacher's io.Sf-built
// String() idiom.
func (r Result) String() string {
	nf := r.NearField
	ff := r.FarField
	l := io.Sf("nearfield: CD=%g CY=%g CL=%g Cl=%g Cm=%g Cn=%g pbar=%g qbar=%g rbar=%g\n",
		nf[0], nf[1], nf[2], nf[3], nf[4], nf[5], nf[6], nf[7], nf[8])
	l += io.Sf("farfield:  CDi=%g CY=%g CL=%g\n", ff[0], ff[1], ff[2])
	l += io.Sf("force (body) = [%g, %g, %g], moment (body) = [%g, %g, %g]\n",
		r.ForceBody[0], r.ForceBody[1], r.ForceBody[2],
		r.MomentBody[0], r.MomentBody[1], r.MomentBody[2])
	return l
}

// WindForce returns the total force rotated into wind axes.
func (r Result) WindForce(alpha, beta float64) [3]float64 {
	v := bodyToWind(r.ForceBody, alpha, beta)
	return [3]float64{v[0], v[1], v[2]}
}

// StabilityForce returns the total force rotated into stability axes.
func (r Result) StabilityForce(alpha float64) [3]float64 {
	v := bodyToStability(r.ForceBody, alpha)
	return [3]float64{v[0], v[1], v[2]}
}
