// Copyright 2026 The AeroMDAO Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import "github.com/GodotMisogi/AeroMDAO/geom"

// Plotter is the minimal seam for an external visualization adapter:
// rendering and plotting live outside the core. No implementation is
// provided here.
type Plotter interface {
	PlotPanels(bound []geom.Point3D) error
	PlotStreamlines(lines [][]geom.Point3D) error
	PlotPressure(collocation []geom.Point3D, cp []float64) error
}
