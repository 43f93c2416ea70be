// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarview

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/solarium3d/solarium/solar"
)

// spinGroup is a group carrying a whole instance field: a fixed tilt
// quaternion composed each frame with the field's accumulated spin.
type spinGroup struct {

	// Group is the scene group holding the instances.
	Group *xyz.Group

	// Tilt is the constant group tilt, set once at construction.
	Tilt math32.Quat
}

// configRing builds the rock ring under the planet's tilt frame, so the
// ring inherits the planet's orbital and axial transforms automatically.
func (vw *View) configRing(bd *solar.Body, tilt *xyz.Group) {
	rf := bd.Ring
	gp := xyz.NewGroup(tilt)
	gp.SetName(bd.Planet.Name + "-ring")
	sg := &spinGroup{Group: gp}
	sg.Tilt = math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(rf.Config.TiltDeg))
	gp.Pose.Quat = sg.Tilt
	for i := range rf.Instances {
		in := &rf.Instances[i]
		sld := xyz.NewSolid(gp).SetMesh(vw.rockMesh)
		sld.Pose.Pos = in.Pos
		sld.Pose.Scale.SetScalar(in.Scale)
		vw.applyRockMaterial(sld)
	}
	vw.rings[bd] = sg
}

// configBelt builds the asteroid belt as a top-level group of rock
// solids sharing one low-poly mesh.
func (vw *View) configBelt() {
	bf := vw.Sys.Belt
	gp := xyz.NewGroup(vw.Root)
	gp.SetName("belt")
	sg := &spinGroup{Group: gp}
	sg.Tilt = math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(bf.Config.TiltDeg))
	gp.Pose.Quat = sg.Tilt
	for i := range bf.Instances {
		in := &bf.Instances[i]
		sld := xyz.NewSolid(gp).SetMesh(vw.rockMesh)
		sld.Pose.Pos = in.Pos
		sld.Pose.Scale.SetScalar(in.Scale)
		sld.Pose.SetEulerRotation(in.Rot.X, in.Rot.Y, in.Rot.Z)
		vw.applyRockMaterial(sld)
	}
	vw.belt = sg
}

func (vw *View) applyRockMaterial(sld *xyz.Solid) {
	sld.Material.Color = rockColor
	sld.Material.Shiny = 5
	if tx, has := vw.textures["rock"]; has {
		sld.Material.SetTexture(tx)
	}
}

// configDust builds the dust solids under a group parented to the
// camera-tracking group, so the swarm surrounds the observer rather
// than the scene origin. Safe to call with no dust field built yet.
func (vw *View) configDust() {
	tcg := xyz.NewGroup(vw.Scene)
	tcg.SetName(xyz.TrackCameraName)
	vw.dustGroup = xyz.NewGroup(tcg)
	vw.dustGroup.SetName("dust")
	vw.buildDustSolids()
}

func (vw *View) buildDustSolids() {
	vw.dust = nil
	df := vw.Sys.Dust
	if df == nil {
		return
	}
	vw.dust = make([]*xyz.Solid, len(df.Instances))
	for i := range df.Instances {
		in := &df.Instances[i]
		sld := xyz.NewSolid(vw.dustGroup).SetMesh(vw.dustMesh)
		sld.Pose.Pos = in.Pos
		sld.Pose.Scale.SetScalar(in.Scale)
		sld.Material.Color = dustColor
		sld.Material.Shiny = 2
		vw.dust[i] = sld
	}
}

// RebuildDust discards all dust solids and regenerates them from the
// simulation's current dust field. Called when a configuration change
// made the simulation rebuild its field; the disposal and reallocation
// happen synchronously within the frame callback, which is safe because
// nothing else references the old solids.
func (vw *View) RebuildDust() {
	vw.dustGroup.DeleteChildren()
	vw.buildDustSolids()
	vw.Scene.SetNeedsUpdate()
}

// updateDustPose applies instance positions and tumble each frame.
// The group visibility follows the enabled toggle; tumble state keeps
// advancing in the simulation regardless.
func (vw *View) updateDustPose(st solar.Settings) {
	vw.dustGroup.Invisible = !st.DustEnabled
	df := vw.Sys.Dust
	if df == nil || !st.DustEnabled {
		return
	}
	for i := range df.Instances {
		in := &df.Instances[i]
		sld := vw.dust[i]
		sld.Pose.Pos = in.Pos
		sld.Pose.Quat = math32.NewQuatAxisAngle(in.Axis, in.RotPhase)
	}
}
