// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the math and geometry primitives shared by the
// airfoil, wing, paneller and vortex packages: points, weighted
// interpolation, forward differences, rotations, spacing distributions and
// rigid-body transforms.
package geom

import "math"

// Point2D is a fixed-size 2D point in double precision.
type Point2D [2]float64

// Point3D is a fixed-size 3D point in double precision.
type Point3D [3]float64

// Add returns p+q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Sub returns p-q.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// Scale returns p scaled by s.
func (p Point3D) Scale(s float64) Point3D {
	return Point3D{p[0] * s, p[1] * s, p[2] * s}
}

// Dot returns the dot product p·q.
func (p Point3D) Dot(q Point3D) float64 {
	return p[0]*q[0] + p[1]*q[1] + p[2]*q[2]
}

// Cross returns the cross product p×q.
func (p Point3D) Cross(q Point3D) Point3D {
	return Point3D{
		p[1]*q[2] - p[2]*q[1],
		p[2]*q[0] - p[0]*q[2],
		p[0]*q[1] - p[1]*q[0],
	}
}

// Norm returns the Euclidean length of p.
func (p Point3D) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Mid returns the midpoint of p and q.
func Mid(p, q Point3D) Point3D {
	return Point3D{(p[0] + q[0]) / 2, (p[1] + q[1]) / 2, (p[2] + q[2]) / 2}
}

// Weighted computes w(x1,x2,mu) = (1-mu)*x1 + mu*x2 componentwise.
func Weighted(x1, x2, mu float64) float64 {
	return (1-mu)*x1 + mu*x2
}

// WeightedPoint applies independent weights mux, muy, muz to the x, y, z
// components of p1->p2, as used for bound-leg/collocation placement on a
// panel: only the in-plane chordwise offset shifts while the spanwise
// coordinate (weight 0) is preserved.
func WeightedPoint(p1, p2 Point3D, mux, muy, muz float64) Point3D {
	return Point3D{
		Weighted(p1[0], p2[0], mux),
		Weighted(p1[1], p2[1], muy),
		Weighted(p1[2], p2[2], muz),
	}
}

// ForwardDiff returns the first-order forward difference of an ordered
// sequence: length N input produces length N-1 output, out[i] = in[i+1]-in[i].
func ForwardDiff(xs []float64) []float64 {
	if len(xs) < 2 {
		return nil
	}
	out := make([]float64, len(xs)-1)
	for i := range out {
		out[i] = xs[i+1] - xs[i]
	}
	return out
}

// ForwardSum returns the pairwise forward sum: out[i] = in[i+1]+in[i].
func ForwardSum(xs []float64) []float64 {
	if len(xs) < 2 {
		return nil
	}
	out := make([]float64, len(xs)-1)
	for i := range out {
		out[i] = xs[i+1] + xs[i]
	}
	return out
}

// ForwardRatio returns the pairwise forward ratio: out[i] = in[i+1]/in[i].
func ForwardRatio(xs []float64) []float64 {
	if len(xs) < 2 {
		return nil
	}
	out := make([]float64, len(xs)-1)
	for i := range out {
		out[i] = xs[i+1] / xs[i]
	}
	return out
}

// Rotate2D rotates p about the origin by angle theta (radians), counter-clockwise.
func Rotate2D(p Point2D, theta float64) Point2D {
	c, s := math.Cos(theta), math.Sin(theta)
	return Point2D{c*p[0] - s*p[1], s*p[0] + c*p[1]}
}
