// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import "github.com/cpmech/gosl/chk"

// ValidateFreestream checks the freestream's validity before a solve is
// attempted: all other validation (geometry) happens where the geometry
// is constructed (wing.New, foil.New, mesh.Bound/Camber), so that every
// error surfaces at the earliest possible construction step rather than
// deep inside the solve.
func ValidateFreestream(fs Freestream) error {
	if fs.Speed <= 0 {
		return chk.Err("invalid freestream: speed must be positive, got %v", fs.Speed)
	}
	return nil
}

// ValidateReference checks that the reference quantities used for
// non-dimensionalization are usable.
func ValidateReference(ref Reference) error {
	if ref.Sref <= 0 {
		return chk.Err("invalid reference: Sref must be positive, got %v", ref.Sref)
	}
	if ref.Bref <= 0 {
		return chk.Err("invalid reference: Bref must be positive, got %v", ref.Bref)
	}
	if ref.Cref <= 0 {
		return chk.Err("invalid reference: Cref must be positive, got %v", ref.Cref)
	}
	return nil
}
