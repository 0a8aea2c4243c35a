// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aircraft treats an aircraft as an ordered mapping from
// component name to panel set (spec's preferred re-expression of the
// source's polymorphic Aircraft supertype), generalised from the teacher
// repository's fem.Domain, which owns the ordered list of active
// elements composing one finite-element model.
package aircraft

import (
	"github.com/cpmech/gosl/chk"

	"github.com/GodotMisogi/AeroMDAO/aero"
	"github.com/GodotMisogi/AeroMDAO/geom"
	"github.com/GodotMisogi/AeroMDAO/mesh"
)

// placeGeometry applies a rigid-body transform to every panel of a
// component's bound and camber meshes.
func placeGeometry(g aero.Geometry, t geom.Transform) aero.Geometry {
	return aero.Geometry{
		Bound:  mesh.TransformAll(g.Bound, t),
		Camber: mesh.TransformAll(g.Camber, t),
	}
}

// Aircraft names the "Aircraft" aggregate entry reserved for the
// combined solve result.
const Aircraft = "Aircraft"

// Assembly is an ordered mapping from component name (e.g. "Wing",
// "HorizontalTail", "VerticalTail") to its paneled geometry, preserving
// insertion order so per-component results and the aggregate solve are
// reported in a stable, caller-chosen order.
type Assembly struct {
	names []string
	parts map[string]aero.Geometry
}

// New returns an empty Assembly.
func New() *Assembly {
	return &Assembly{parts: make(map[string]aero.Geometry)}
}

// Add registers a named component's geometry, optionally placed by a
// rigid-body transform (e.g. offsetting a tail from the wing origin).
// It is an error to reuse a name or to register under the reserved
// "Aircraft" aggregate name.
func (a *Assembly) Add(name string, g aero.Geometry, place geom.Transform) error {
	if name == Aircraft {
		return chk.Err("component name %q is reserved for the aggregate entry", Aircraft)
	}
	if _, exists := a.parts[name]; exists {
		return chk.Err("component %q already registered", name)
	}
	placed := placeGeometry(g, place)
	a.names = append(a.names, name)
	a.parts[name] = placed
	return nil
}

// Names returns the registered component names in insertion order.
func (a *Assembly) Names() []string {
	return append([]string(nil), a.names...)
}

// Geometry returns the named component's placed geometry.
func (a *Assembly) Geometry(name string) (aero.Geometry, bool) {
	g, ok := a.parts[name]
	return g, ok
}

// Combined concatenates all registered components, in insertion order,
// into one solve unit for the aggregate "Aircraft" entry.
func (a *Assembly) Combined() (aero.Geometry, error) {
	parts := make([]aero.Geometry, len(a.names))
	for i, name := range a.names {
		parts[i] = a.parts[name]
	}
	return aero.Concat(parts...)
}

// Bounds returns, for each component in insertion order, the half-open
// panel index range [start,end) it occupies within Combined()'s result,
// so a caller can slice the aggregate solve's per-panel outputs back out
// by component.
func (a *Assembly) Bounds() map[string][2]int {
	bounds := make(map[string][2]int, len(a.names))
	start := 0
	for _, name := range a.names {
		n := a.parts[name].N()
		bounds[name] = [2]int{start, start + n}
		start += n
	}
	return bounds
}
