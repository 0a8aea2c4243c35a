// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vortex

import (
	"github.com/cpmech/gosl/chk"

	"github.com/GodotMisogi/AeroMDAO/geom"
)

// Kind tags a vortex primitive variant, mirroring the teacher repository's
// element-type tag registry (ele.New/ele.SetAllocator dispatching on a
// string type name) generalised from FEM element kinds to vortex kinds.
type Kind string

const (
	// KindHorseshoe is a bound leg plus two semi-infinite trailing legs,
	// the only kind the VLM path requires.
	KindHorseshoe Kind = "horseshoe"

	// KindVortexRing is reserved for a future closed-loop wake-rollup
	// extension. It is not implemented: the core VLM only needs
	// horseshoes, and neither the aero nor the mesh package uses this kind.
	KindVortexRing Kind = "vortex-ring"
)

// kinds holds the set of vortex kinds this module can allocate. Only
// KindHorseshoe has a working allocator; KindVortexRing is named but
// deliberately absent so that NewByKind reports a clear error rather than
// silently returning a zero-value primitive.
var kinds = map[Kind]bool{
	KindHorseshoe: true,
}

// Supported reports whether kind has a working allocator in this module.
func Supported(kind Kind) bool {
	return kinds[kind]
}

// NewByKind allocates a vortex primitive of the given kind from bound-leg
// endpoints. Only KindHorseshoe is implemented.
func NewByKind(kind Kind, r1, r2 geom.Point3D) (Horseshoe, error) {
	if !Supported(kind) {
		return Horseshoe{}, chk.Err("vortex kind %q is not available in this build; only %q is implemented", kind, KindHorseshoe)
	}
	return NewHorseshoe(r1, r2), nil
}
