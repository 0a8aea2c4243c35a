// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/GodotMisogi/AeroMDAO/geom"
	"github.com/GodotMisogi/AeroMDAO/vortex"
)

// singularCondTol is the LU condition-number threshold above which the
// AIC system is reported as numerically singular.
const singularCondTol = 1e14

// Result is the outcome of a single solve_case invocation.
type Result struct {
	Gamma []float64 // circulation per panel

	NearField [9]float64 // [CD, CY, CL, Cl, Cm, Cn, pbar, qbar, rbar]
	FarField  [3]float64 // [CD_i, CY, CL]

	ForceBody, MomentBody geom.Point3D
	PanelForces           []geom.Point3D

	// PanelCp, PanelCF and PanelCM supplement the whole-aircraft
	// NearField/FarField coefficients with per-panel non-dimensional
	// output: PanelCp is the panel's pressure coefficient (the near-field
	// panel force resolved onto the camber-mesh normal, divided by dynamic
	// pressure and panel area); PanelCF/PanelCM are the panel force and
	// moment (about ref.Point) non-dimensionalized the same way as the
	// whole-aircraft coefficients above.
	PanelCp []float64
	PanelCF []geom.Point3D
	PanelCM []geom.Point3D

	Horseshoes []vortex.Horseshoe
	Normals    []geom.Point3D
}

// Solve assembles the AIC matrix and RHS for geometry g at freestream fs
// and reference ref, solves for circulations, and computes near-field and
// far-field forces, moments and coefficients in body axes.
func Solve(g Geometry, fs Freestream, ref Reference) (Result, error) {
	if err := ValidateFreestream(fs); err != nil {
		return Result{}, err
	}
	if err := ValidateReference(ref); err != nil {
		return Result{}, err
	}
	n := g.N()
	if n == 0 {
		return Result{}, chk.Err("geometry has no panels")
	}

	U := fs.Velocity()
	uHat := fs.UHat()
	trailDir := uHat.Scale(-1)

	horseshoes := make([]vortex.Horseshoe, n)
	colloc := make([]geom.Point3D, n)
	normals := make([]geom.Point3D, n)
	boundVec := make([]geom.Point3D, n)
	boundMid := make([]geom.Point3D, n)
	for i := range g.Bound {
		inb, outb := g.Bound[i].BoundLeg()
		horseshoes[i] = vortex.NewHorseshoe(inb, outb)
		colloc[i] = g.Bound[i].Collocation()
		normals[i] = g.Camber[i].Normal()
		boundVec[i] = outb.Sub(inb)
		boundMid[i] = geom.Mid(inb, outb)
	}

	A := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		omegaCrossC := fs.Omega.Cross(colloc[i])
		b.SetVec(i, -(U.Add(omegaCrossC)).Dot(normals[i]))
		for j := 0; j < n; j++ {
			v := horseshoes[j].Velocity(colloc[i], trailDir)
			A.Set(i, j, v.Dot(normals[i]))
		}
	}

	var lu mat.LU
	lu.Factorize(A)
	if cond := lu.Cond(); math.IsInf(cond, 1) || cond > singularCondTol {
		return Result{}, chk.Err("AIC matrix is numerically singular (condition number %.3e); check for degenerate or overlapping panels", cond)
	}
	var x mat.Dense
	if err := lu.SolveTo(&x, false, b); err != nil {
		return Result{}, chk.Err("LU solve failed: %v", err)
	}
	gamma := make([]float64, n)
	for i := range gamma {
		gamma[i] = x.At(i, 0)
	}

	// induced velocity at each panel's bound-leg midpoint
	vInd := make([]geom.Point3D, n)
	for i := 0; i < n; i++ {
		var acc geom.Point3D
		for j := 0; j < n; j++ {
			acc = acc.Add(horseshoes[j].Velocity(boundMid[i], trailDir).Scale(gamma[j]))
		}
		vInd[i] = acc
	}

	panelForces := make([]geom.Point3D, n)
	panelMoments := make([]geom.Point3D, n)
	fx, fy, fz := make([]float64, n), make([]float64, n), make([]float64, n)
	mx, my, mz := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		vTotal := vInd[i].Sub(U).Sub(fs.Omega.Cross(boundMid[i]))
		f := vTotal.Cross(boundVec[i]).Scale(fs.Density * gamma[i])
		panelForces[i] = f
		fx[i], fy[i], fz[i] = f[0], f[1], f[2]
		m := boundMid[i].Sub(ref.Point).Cross(f)
		panelMoments[i] = m
		mx[i], my[i], mz[i] = m[0], m[1], m[2]
	}
	// Total force/moment are reductions over the per-panel contributions
	// above; summed via floats.Sum the way spatialmodel-inmap reduces
	// per-cell contributions, rather than an accumulating loop.
	totalForce := geom.Point3D{floats.Sum(fx), floats.Sum(fy), floats.Sum(fz)}
	totalMoment := geom.Point3D{floats.Sum(mx), floats.Sum(my), floats.Sum(mz)}

	q := fs.DynamicPressure()
	cRef := geom.Point3D{totalForce[0] / (q * ref.Sref), totalForce[1] / (q * ref.Sref), totalForce[2] / (q * ref.Sref)}
	cMoment := geom.Point3D{
		totalMoment[0] / (q * ref.Sref * ref.Bref),
		totalMoment[1] / (q * ref.Sref * ref.Cref),
		totalMoment[2] / (q * ref.Sref * ref.Bref),
	}

	windForce := bodyToWind(cRef, fs.Alpha, fs.Beta)
	// wind axes: x=drag, y=side, z=-lift (negative body z is up)
	cd, cy, cl := windForce[0], windForce[1], -windForce[2]

	V := fs.Speed
	pbar, qbar, rbar := 0.0, 0.0, 0.0
	if V > 0 && ref.Bref > 0 {
		pbar = fs.Omega[0] * ref.Bref / (2 * V)
		rbar = fs.Omega[2] * ref.Bref / (2 * V)
	}
	if V > 0 && ref.Cref > 0 {
		qbar = fs.Omega[1] * ref.Cref / (2 * V)
	}

	nearField := [9]float64{cd, cy, cl, cMoment[0], cMoment[1], cMoment[2], pbar, qbar, rbar}

	// Far-field drag is the near-field force projected onto the freestream
	// direction; no separate Trefftz-plane integral is computed, so CY and
	// CL are repeated unchanged.
	ffDrag := totalForce.Dot(uHat) / (q * ref.Sref)
	farField := [3]float64{ffDrag, cy, cl}

	panelCp := make([]float64, n)
	panelCF := make([]geom.Point3D, n)
	panelCM := make([]geom.Point3D, n)
	for i := 0; i < n; i++ {
		if area := g.Camber[i].Area(); area > 0 {
			panelCp[i] = panelForces[i].Dot(normals[i]) / (q * area)
		}
		panelCF[i] = geom.Point3D{
			panelForces[i][0] / (q * ref.Sref),
			panelForces[i][1] / (q * ref.Sref),
			panelForces[i][2] / (q * ref.Sref),
		}
		panelCM[i] = geom.Point3D{
			panelMoments[i][0] / (q * ref.Sref * ref.Bref),
			panelMoments[i][1] / (q * ref.Sref * ref.Cref),
			panelMoments[i][2] / (q * ref.Sref * ref.Bref),
		}
	}

	return Result{
		Gamma:       gamma,
		NearField:   nearField,
		FarField:    farField,
		ForceBody:   totalForce,
		MomentBody:  totalMoment,
		PanelForces: panelForces,
		PanelCp:     panelCp,
		PanelCF:     panelCF,
		PanelCM:     panelCM,
		Horseshoes:  horseshoes,
		Normals:     normals,
	}, nil
}

// bodyToWind rotates a body-axis vector into wind axes: the rotation
// R_z(beta)*R_y(alpha), i.e. alpha about y is applied to the vector first and
// beta about z second, which maps the freestream direction onto the wind x-axis.
func bodyToWind(v geom.Point3D, alpha, beta float64) geom.Point3D {
	yaw := geom.Transform{Axis: geom.Point3D{0, 0, 1}, Angle: beta}
	pitch := geom.Transform{Axis: geom.Point3D{0, 1, 0}, Angle: alpha}
	return yaw.Apply(pitch.Apply(v))
}

// bodyToStability rotates a body-axis vector into stability axes: rotate
// by alpha about y.
func bodyToStability(v geom.Point3D, alpha float64) geom.Point3D {
	pitch := geom.Transform{Axis: geom.Point3D{0, 1, 0}, Angle: alpha}
	return pitch.Apply(v)
}
