// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import "github.com/GodotMisogi/AeroMDAO/geom"

// Reference holds the geometric quantities used to non-dimensionalize
// forces and moments: reference area, span and mean aerodynamic chord,
// and the moment reference point.
type Reference struct {
	Sref  float64
	Bref  float64 // span, used for roll/yaw moment coefficients
	Cref  float64 // MAC, used for pitch moment coefficient
	Point geom.Point3D
}
