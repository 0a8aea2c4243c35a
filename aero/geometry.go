// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"github.com/cpmech/gosl/chk"

	"github.com/GodotMisogi/AeroMDAO/mesh"
	"github.com/GodotMisogi/AeroMDAO/wing"
)

// Geometry is a paneled lifting surface ready to solve: a bound-leg mesh
// (straight chords, supplies horseshoe bound legs and collocation points)
// paired index-for-index with a camber mesh (supplies panel normals).
type Geometry struct {
	Bound  []mesh.Panel3D
	Camber []mesh.Panel3D
}

// N returns the panel count.
func (g Geometry) N() int { return len(g.Bound) }

// NewWingGeometry meshes a full wing (both halves) with the given
// per-half-wing paneller configuration, producing one Geometry for the
// whole wing (left half mirrored and concatenated with the right).
func NewWingGeometry(w wing.Wing, cfg mesh.Config) (Geometry, error) {
	rightBound, err := mesh.Bound(w.Right, cfg, false)
	if err != nil {
		return Geometry{}, err
	}
	rightCamber, err := mesh.Camber(w.Right, cfg, false)
	if err != nil {
		return Geometry{}, err
	}
	leftBound, err := mesh.Bound(w.Left, cfg, true)
	if err != nil {
		return Geometry{}, err
	}
	leftCamber, err := mesh.Camber(w.Left, cfg, true)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{
		Bound:  append(leftBound, rightBound...),
		Camber: append(leftCamber, rightCamber...),
	}, nil
}

// Concat combines multiple geometries (e.g. wing, horizontal tail,
// vertical tail) into a single solve unit, preserving each component's
// panel order so the caller can later slice the result back out per
// component by tracking cumulative panel counts.
func Concat(parts ...Geometry) (Geometry, error) {
	var out Geometry
	for i, p := range parts {
		if len(p.Bound) != len(p.Camber) {
			return Geometry{}, chk.Err("component %d: bound/camber panel count mismatch (%d vs %d)", i, len(p.Bound), len(p.Camber))
		}
		out.Bound = append(out.Bound, p.Bound...)
		out.Camber = append(out.Camber, p.Camber...)
	}
	return out, nil
}
