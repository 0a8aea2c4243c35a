// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel2d

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/GodotMisogi/AeroMDAO/foil"
	"github.com/GodotMisogi/AeroMDAO/geom"
)

// wakeLengthFactor sets the (numerically "infinite") wake panel's length
// as a multiple of the airfoil chord, long enough that its near-field
// doublet influence on the airfoil surface is insensitive to further
// lengthening.
const wakeLengthFactor = 1e4

// Result holds a solved panel-method case.
type Result struct {
	Panels  []Panel
	Mu      []float64 // doublet strengths
	MuWake  float64
	Sigma   []float64 // source strengths (Dirichlet BC)
	Cp      []float64
	Vtan    []float64
	Cl, Cm  float64
	AlphaDeg float64
}

// Solve builds and solves the constant-strength doublet-source panel
// method for airfoil a at freestream speed V and angle of attack alpha
// (radians), resampled to n points per surface.
func Solve(a foil.Airfoil, V, alpha float64, n int) (Result, error) {
	if V <= 0 {
		return Result{}, chk.Err("freestream speed must be positive, got %v", V)
	}
	resampled, err := a.CosineResample(n)
	if err != nil {
		return Result{}, err
	}
	panels := makePanels(resampled.Points)
	N := len(panels)
	if N < 3 {
		return Result{}, chk.Err("airfoil must resolve to at least 3 panels, got %d", N)
	}

	uHat := geom.Point2D{math.Cos(alpha), math.Sin(alpha)}

	sigma := make([]float64, N)
	for i, p := range panels {
		nrm := p.Normal()
		sigma[i] = uHat[0]*nrm[0] + uHat[1]*nrm[1]
	}

	D := mat.NewDense(N, N, nil)
	S := mat.NewDense(N, N, nil)
	for i, pi := range panels {
		ci := pi.Midpoint()
		for j, pj := range panels {
			if i == j {
				D.Set(i, j, 0.5)
			} else {
				x, z := pj.toLocal(ci)
				D.Set(i, j, doubletPotential(x, z, pj.Length()))
			}
			x, z := pj.toLocal(ci)
			S.Set(i, j, sourcePotential(x, z, pj.Length()))
		}
	}

	wake := wakePanel(panels[N-1].P2, panels[0].P1, uHat, wakeLengthFactor*airfoilChord(panels))
	w := make([]float64, N)
	for i, pi := range panels {
		ci := pi.Midpoint()
		x, z := wake.toLocal(ci)
		w[i] = doubletPotential(x, z, wake.Length())
	}

	rhs := mat.NewVecDense(N, nil)
	for i := range panels {
		var acc float64
		for j := range panels {
			acc += S.At(i, j) * sigma[j]
		}
		rhs.SetVec(i, -acc)
	}

	A := mat.NewDense(N+1, N+1, nil)
	b := mat.NewVecDense(N+1, nil)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			A.Set(i, j, D.At(i, j))
		}
		A.Set(i, N, w[i])
		b.SetVec(i, rhs.AtVec(i))
	}
	// Kutta condition row: mu_1 - mu_2 + mu_{N-1} - mu_N = 0, zero
	// coefficient on the wake unknown.
	A.Set(N, 0, 1)
	A.Set(N, 1, -1)
	A.Set(N, N-2, 1)
	A.Set(N, N-1, -1)
	b.SetVec(N, 0)

	var lu mat.LU
	lu.Factorize(A)
	if cond := lu.Cond(); math.IsInf(cond, 1) || cond > 1e14 {
		return Result{}, chk.Err("AIC system is numerically singular (condition number %.3e); check for degenerate or overlapping panels", cond)
	}
	var x mat.Dense
	if err := lu.SolveTo(&x, false, b); err != nil {
		return Result{}, chk.Err("LU solve failed: %v", err)
	}

	mu := make([]float64, N)
	for i := range mu {
		mu[i] = x.At(i, 0)
	}
	muWake := x.At(N, 0)

	vtan, cp := recoverPressures(panels, mu, V)
	cl, cm := integrateLoads(panels, cp, alpha)

	return Result{
		Panels: panels, Mu: mu, MuWake: muWake, Sigma: sigma,
		Cp: cp, Vtan: vtan, Cl: cl, Cm: cm, AlphaDeg: alpha * 180 / math.Pi,
	}, nil
}

func makePanels(pts []geom.Point2D) []Panel {
	n := len(pts)
	panels := make([]Panel, n-1)
	for i := 0; i < n-1; i++ {
		panels[i] = Panel{P1: pts[i], P2: pts[i+1]}
	}
	return panels
}

func airfoilChord(panels []Panel) float64 {
	xmin, xmax := panels[0].P1[0], panels[0].P1[0]
	for _, p := range panels {
		for _, x := range []float64{p.P1[0], p.P2[0]} {
			if x < xmin {
				xmin = x
			}
			if x > xmax {
				xmax = x
			}
		}
	}
	return xmax - xmin
}

// wakePanel returns a single long doublet panel running from the
// trailing edge (the midpoint of the TE gap between the last and first
// surface points) downstream in the freestream direction, for a
// numerically long distance.
func wakePanel(teUpper, teLower geom.Point2D, uHat geom.Point2D, length float64) Panel {
	te := geom.Point2D{0.5 * (teUpper[0] + teLower[0]), 0.5 * (teUpper[1] + teLower[1])}
	far := geom.Point2D{te[0] + uHat[0]*length, te[1] + uHat[1]*length}
	return Panel{P1: te, P2: far}
}

// recoverPressures computes the surface tangential velocity by central
// finite differences of the doublet strength along the surface
// (v_tan = -dmu/ds, the Morino relation between doublet strength and
// perturbation potential derivative) and the corresponding pressure
// coefficient Cp = 1 - (v_tan/V)^2.
func recoverPressures(panels []Panel, mu []float64, V float64) (vtan, cp []float64) {
	N := len(panels)
	vtan = make([]float64, N)
	cp = make([]float64, N)
	for i := 0; i < N; i++ {
		im1 := (i - 1 + N) % N
		ip1 := (i + 1) % N
		ds := 0.5*panels[im1].Length() + panels[i].Length() + 0.5*panels[ip1].Length()
		v := -(mu[ip1] - mu[im1]) / ds
		vtan[i] = v
		cp[i] = 1 - (v/V)*(v/V)
	}
	return
}

// integrateLoads integrates Cp around the surface to get lift and
// moment coefficients (about the quarter-chord, chord-normalized),
// rotated into wind axes by alpha.
func integrateLoads(panels []Panel, cp []float64, alpha float64) (cl, cm float64) {
	chord := airfoilChord(panels)
	quarter := geom.Point2D{}
	xmin := panels[0].P1[0]
	for _, p := range panels {
		if p.P1[0] < xmin {
			xmin = p.P1[0]
		}
	}
	quarter = geom.Point2D{xmin + 0.25*chord, 0}

	var fx, fz, m float64
	for i, p := range panels {
		n := p.Normal()
		l := p.Length()
		dfx := -cp[i] * n[0] * l
		dfz := -cp[i] * n[1] * l
		fx += dfx
		fz += dfz
		r := sub(p.Midpoint(), quarter)
		m += r[0]*dfz - r[1]*dfx
	}
	fx, fz = fx/chord, fz/chord
	m /= chord * chord

	cosA, sinA := math.Cos(alpha), math.Sin(alpha)
	cl = fz*cosA - fx*sinA
	cm = m
	return
}
