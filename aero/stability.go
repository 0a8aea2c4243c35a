// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
)

// stabilityDelta is the default perturbation size for the central-difference
// stability-derivative sweep: small enough to stay in the VLM's linear
// regime for both angles (radians) and non-dimensional rates.
const stabilityDelta = 1e-3

// stabilityPrms names and sizes the step of each of the five freestream
// variables perturbed by the sweep, mirrored from mconduct.Model.GetPrms's
// named-parameter-list idiom: a canonical, named list drives the loop below
// instead of a bare positional slice of strings.
var stabilityPrms = fun.Prms{
	&fun.Prm{N: "alpha", V: stabilityDelta},
	&fun.Prm{N: "beta", V: stabilityDelta},
	&fun.Prm{N: "pbar", V: stabilityDelta},
	&fun.Prm{N: "qbar", V: stabilityDelta},
	&fun.Prm{N: "rbar", V: stabilityDelta},
}

// StabilityResult holds a base-case solve plus the 6x5 matrix of
// stability derivatives (rows CD, CY, CL, Cl, Cm, Cn; columns alpha,
// beta, pbar, qbar, rbar).
type StabilityResult struct {
	Base        Result
	Derivatives [6][5]float64
}

// stabilityVariable pairs a named, sized perturbation (stabilityPrms) with
// the base value it's centered on and the Freestream it produces at a given
// absolute value t.
type stabilityVariable struct {
	x   float64
	set func(t float64) Freestream
}

// SolveStability wraps Solve in a central-difference sweep over the five
// freestream variables named by stabilityPrms, generalised from the teacher
// repository's msolid driver's perturb-and-resolve loop shape (Driver.Run
// stepping a loading path and re-evaluating the constitutive model at each
// step), here re-solving the whole VLM at each perturbed freestream instead
// of updating one material point's state. The central difference itself is
// num.DerivCentral, the same routine gofem uses in msolid/driver.go and
// ele/diffusion/phi.go to verify/compute tangents by finite differences.
func SolveStability(g Geometry, fs Freestream, ref Reference) (StabilityResult, error) {
	base, err := Solve(g, fs, ref)
	if err != nil {
		return StabilityResult{}, err
	}

	pbar0, qbar0, rbar0 := 0.0, 0.0, 0.0
	if fs.Speed > 0 && ref.Bref > 0 {
		pbar0 = fs.Omega[0] * ref.Bref / (2 * fs.Speed)
		rbar0 = fs.Omega[2] * ref.Bref / (2 * fs.Speed)
	}
	if fs.Speed > 0 && ref.Cref > 0 {
		qbar0 = fs.Omega[1] * ref.Cref / (2 * fs.Speed)
	}

	vars := [5]stabilityVariable{
		{fs.Alpha, func(t float64) Freestream { p := fs; p.Alpha = t; return p }},
		{fs.Beta, func(t float64) Freestream { p := fs; p.Beta = t; return p }},
		{pbar0, func(t float64) Freestream { p := fs; p.Omega[0] = t * 2 * fs.Speed / ref.Bref; return p }},
		{qbar0, func(t float64) Freestream { p := fs; p.Omega[1] = t * 2 * fs.Speed / ref.Cref; return p }},
		{rbar0, func(t float64) Freestream { p := fs; p.Omega[2] = t * 2 * fs.Speed / ref.Bref; return p }},
	}

	var derivs [6][5]float64
	for col, v := range vars {
		prm := stabilityPrms[col]

		// Each num.DerivCentral call only needs Solve run at t+h and t-h,
		// but the routine's scalar-function signature otherwise implies
		// one Solve per (row,column) instead of one Solve-pair per column;
		// cache the two perturbed solves so all 6 rows of a column share
		// them.
		cache := map[float64]Result{}
		var solveErr error
		f := func(t float64, args ...interface{}) float64 {
			row := args[0].(int)
			res, ok := cache[t]
			if !ok {
				var err error
				res, err = Solve(g, v.set(t), ref)
				if err != nil {
					if solveErr == nil {
						solveErr = err
					}
					return 0
				}
				cache[t] = res
			}
			return res.NearField[row]
		}

		for row := 0; row < 6; row++ {
			d, derr := num.DerivCentral(f, v.x, prm.V, row)
			if solveErr != nil {
				return StabilityResult{}, solveErr
			}
			if derr != nil {
				return StabilityResult{}, chk.Err("stability derivative d(row %d)/d(%s): %v", row, prm.N, derr)
			}
			derivs[row][col] = d
		}
	}

	return StabilityResult{Base: base, Derivatives: derivs}, nil
}
