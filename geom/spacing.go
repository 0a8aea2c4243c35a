// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Distribution generates n samples over [a,b] according to some clustering
// rule. The allocator-map dispatch below mirrors mconduct's named-model
// registry (mconduct.New), generalised from conductivity models to spacing
// rules.
type Distribution func(a, b float64, n int) []float64

// allocators holds all available spacing distributions by name.
var allocators = map[string]Distribution{
	"uniform": Uniform,
	"cosine":  Cosine,
	"sine":    Sine,
}

// NewDistribution looks up a spacing rule by name ("uniform", "cosine" or
// "sine"), matching the paneller's spanwise/chordwise spacing configuration
// option.
func NewDistribution(name string) (Distribution, error) {
	d, ok := allocators[name]
	if !ok {
		return nil, chk.Err("spacing distribution %q is not available; options are \"uniform\", \"cosine\", \"sine\"", name)
	}
	return d, nil
}

// Uniform returns n arithmetically spaced samples over [a,b], delegating to
// utl.LinSpace the way ele/auxiliary.go builds coordinate ranges.
func Uniform(a, b float64, n int) []float64 {
	if n == 1 {
		return []float64{a}
	}
	return utl.LinSpace(a, b, n)
}

// Cosine returns n cosine-spaced samples over [a,b], clustering at both
// endpoints: x_i = (a+b)/2 + (b-a)/2 * cos(pi*(n-1-i)/(n-1)).
//
// This clustering is what recovers accurate panel-method pressures near
// leading/trailing edges.
func Cosine(a, b float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = a
		return xs
	}
	mid, half := (a+b)/2, (b-a)/2
	for i := range xs {
		xs[i] = mid + half*math.Cos(math.Pi*float64(n-1-i)/float64(n-1))
	}
	return xs
}

// Sine returns n sine-spaced samples over [a,b], clustering at the b end
// only (single-sided clustering, e.g. for wingtip-only refinement).
func Sine(a, b float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = a
		return xs
	}
	for i := range xs {
		t := float64(i) / float64(n-1)
		xs[i] = a + (b-a)*math.Sin(t*math.Pi/2)
	}
	return xs
}

// CosineInterp resamples y (given at xs, ascending) onto n cosine-spaced
// x-coordinates over [xs[0], xs[len(xs)-1]] via piecewise-linear
// interpolation. Used to cosine-resample an airfoil surface.
func CosineInterp(xs, ys []float64, n int) (xout, yout []float64) {
	xout = Cosine(xs[0], xs[len(xs)-1], n)
	yout = make([]float64, n)
	for i, x := range xout {
		yout[i] = Lerp(xs, ys, x)
	}
	return
}

// Lerp performs piecewise-linear interpolation of (xs,ys) at x, assuming xs
// is sorted ascending, exported for reuse outside cosine resampling.
func Lerp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	// binary search for the bracketing interval
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	mu := (x - xs[lo]) / (xs[hi] - xs[lo])
	return Weighted(ys[lo], ys[hi], mu)
}
