// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vortex

import (
	"testing"

	"github.com/GodotMisogi/AeroMDAO/geom"
)

func TestHorseshoeVelocityDecaysFarDownstream(t *testing.T) {
	h := NewHorseshoe(geom.Point3D{0, -1, 0}, geom.Point3D{0, 1, 0})
	d := geom.Point3D{-1, 0, 0} // trailing downstream in -x

	near := h.Velocity(geom.Point3D{0, 0, 1}, d)
	far := h.Velocity(geom.Point3D{0, 0, 50}, d)
	if far.Norm() >= near.Norm() {
		t.Fatalf("horseshoe-induced velocity should decay far from the bound leg: near=%v far=%v", near.Norm(), far.Norm())
	}
}

func TestHorseshoeTransformTranslatesBoundLeg(t *testing.T) {
	h := NewHorseshoe(geom.Point3D{0, -1, 0}, geom.Point3D{0, 1, 0})
	tr := geom.Transform{Position: geom.Point3D{5, 0, 0}, Axis: geom.Point3D{0, 0, 1}, Angle: 0}
	got := h.Transform(tr)
	if !almostEqual(got.Bound.R1[0], 5, 1e-12) || !almostEqual(got.Bound.R2[0], 5, 1e-12) {
		t.Fatalf("translated bound leg x should be 5, got %v and %v", got.Bound.R1[0], got.Bound.R2[0])
	}
}

func TestNewByKindSupportsHorseshoe(t *testing.T) {
	if _, err := NewByKind(KindHorseshoe, geom.Point3D{0, -1, 0}, geom.Point3D{0, 1, 0}); err != nil {
		t.Fatalf("NewByKind(horseshoe): %v", err)
	}
}

func TestNewByKindRejectsVortexRing(t *testing.T) {
	if _, err := NewByKind(KindVortexRing, geom.Point3D{}, geom.Point3D{}); err == nil {
		t.Fatalf("expected an error: vortex rings are not implemented")
	}
}
