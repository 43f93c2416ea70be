// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarview

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/solarium3d/solarium/solar"
)

// orbitSegments is the number of line segments per orbit circle.
const orbitSegments = 96

// OrbitPoints returns the closed circle of points for an orbit of the
// given radius, in the XZ plane around the origin.
func OrbitPoints(radius float32) []math32.Vector3 {
	pts := make([]math32.Vector3, orbitSegments)
	for i := range pts {
		ang := 2 * math32.Pi * float32(i) / orbitSegments
		pts[i] = math32.Vec3(math32.Sin(ang)*radius, 0, math32.Cos(ang)*radius)
	}
	return pts
}

// configOrbits builds one reference circle per planet under a shared
// group; the circles are static and only toggled visible or not.
func (vw *View) configOrbits() {
	vw.orbits = xyz.NewGroup(vw.Root)
	vw.orbits.SetName("orbits")
	for _, bd := range vw.Sys.Bodies {
		p := bd.Planet
		lm := xyz.NewLines(vw.Scene, p.Name+"-orbit-line", OrbitPoints(p.Distance),
			math32.Vec2(0.05, 0.05), xyz.CloseLines)
		sld := xyz.NewSolid(vw.orbits).SetMesh(lm)
		sld.SetName(p.Name + "-orbit")
		sld.Material.Color = orbitColor
	}
}

func (vw *View) updateOrbits(st solar.Settings) {
	vw.orbits.Invisible = !st.ShowOrbits
}
