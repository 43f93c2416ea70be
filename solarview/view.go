// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solarview mirrors a solar.System into a xyz scene for
// rendering. The simulation tree owns all motion state; the view only
// maps that state onto node poses once per frame, so the two stay
// strictly separated in the manner of xyz/physics and its world view.
package solarview

//go:generate core generate -add-types

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/solarium3d/solarium/solar"
)

// View connects a [solar.System] with a [xyz.Scene] that visualizes it.
// Each simulated element maps to its scene node through typed registries
// keyed by the simulation record, never through tag data stashed on
// generic nodes.
type View struct {

	// Sys is the simulation being visualized.
	Sys *solar.System

	// Scene is the scene being rendered into.
	Scene *xyz.Scene

	// Root is the top group holding the whole system.
	Root *xyz.Group

	// sun is the star solid, spun in place each frame.
	sun *xyz.Solid

	// anchors maps each body to its orbit anchor: the group rotated
	// every frame to carry the body around the origin.
	anchors map[*solar.Body]*xyz.Group

	// tilts maps each body to its tilt frame: rotated once at
	// construction, never mutated afterwards.
	tilts map[*solar.Body]*xyz.Group

	// spins maps each body to its visible solid, which self-rotates.
	spins map[*solar.Body]*xyz.Solid

	// moons maps each moon orbital-state record to its solid.
	moons map[*solar.MoonState]*xyz.Solid

	// rings maps each ringed body to its spinning ring group.
	rings map[*solar.Body]*spinGroup

	// belt is the asteroid belt group.
	belt *spinGroup

	// dustGroup holds the dust solids, under the camera-tracking group.
	dustGroup *xyz.Group

	// dust holds one solid per dust instance, index-aligned with
	// Sys.Dust.Instances.
	dust []*xyz.Solid

	// orbits is the group of orbit reference curves.
	orbits *xyz.Group

	// labels maps body names to their billboard text nodes.
	labels map[string]*xyz.Text2D

	// labelsGroup holds all labels, at the scene top so billboarding
	// is not entangled with the rotating body frames.
	labelsGroup *xyz.Group

	// lastLabelSize is the label size applied at the last sync;
	// glyphs are only regenerated when the configured size changes.
	lastLabelSize float32

	// textures is the loaded texture set, by name. Bodies whose
	// texture failed to load simply keep their fallback color.
	textures map[string]xyz.Texture

	// shared meshes: one unit sphere per kind of element, with the
	// per-solid pose scale providing the size.
	bodyMesh, rockMesh, dustMesh, starsMesh xyz.Mesh
}

// NewView returns a new View linking the given simulation and scene.
// Call [View.Config] to build the scene tree.
func NewView(sys *solar.System, sc *xyz.Scene) *View {
	return &View{Sys: sys, Scene: sc}
}

// Config builds the entire scene tree from the simulation: starfield,
// sun, planets with moons and ring, asteroid belt, dust swarm, orbit
// curves and labels. It is called once at startup; a second call on a
// fresh scene yields an identical hierarchy for the same catalog.
func (vw *View) Config() {
	sc := vw.Scene
	vw.loadTextures()

	vw.bodyMesh = xyz.NewSphere(sc, "body-sphere", 1, 32)
	vw.rockMesh = xyz.NewSphere(sc, "rock-sphere", 1, 8)
	vw.dustMesh = xyz.NewSphere(sc, "dust-sphere", 1, 6)
	vw.starsMesh = xyz.NewSphere(sc, "stars-sphere", 1, 48)

	vw.Root = xyz.NewGroup(sc)
	vw.Root.SetName("solar-system")

	vw.configStars()
	vw.configSun()

	vw.anchors = make(map[*solar.Body]*xyz.Group)
	vw.tilts = make(map[*solar.Body]*xyz.Group)
	vw.spins = make(map[*solar.Body]*xyz.Solid)
	vw.moons = make(map[*solar.MoonState]*xyz.Solid)
	vw.rings = make(map[*solar.Body]*spinGroup)
	for _, bd := range vw.Sys.Bodies {
		vw.configBody(bd)
	}

	vw.configBelt()
	vw.configDust()
	vw.configOrbits()
	vw.configLabels()
}

// configStars builds the sky sphere: the cheap stand-in for a cubemap
// skybox, rendered from the inside by culling front faces instead.
func (vw *View) configStars() {
	stars := xyz.NewSolid(vw.Root).SetMesh(vw.starsMesh)
	stars.SetName("stars")
	stars.Pose.Scale.SetScalar(400)
	stars.Material.Color = colors.White
	stars.Material.Bright = 2
	stars.Material.CullBack = false
	stars.Material.CullFront = true
	if tx, has := vw.textures["stars"]; has {
		stars.Material.SetTexture(tx)
	}
}

func (vw *View) configSun() {
	sun := vw.Sys.Sun
	sld := xyz.NewSolid(vw.Root).SetMesh(vw.bodyMesh)
	sld.SetName(sun.Name)
	sld.Pose.Scale.SetScalar(sun.Radius)
	vw.applyAppearance(sld, sun.Appear)
	vw.sun = sld
}

// configBody builds the three-level placement hierarchy for one planet:
// orbit anchor (rotated per frame), tilt frame (fixed), visible body
// (scaled, self-rotating), plus moons and ring under the tilt frame so
// they share the planet's orbit and lean but not its spin.
func (vw *View) configBody(bd *solar.Body) {
	p := bd.Planet

	anchor := xyz.NewGroup(vw.Root)
	anchor.SetName(p.Name + "-orbit")
	vw.anchors[bd] = anchor

	tilt := xyz.NewGroup(anchor)
	tilt.SetName(p.Name + "-tilt")
	tilt.Pose.Pos.Set(0, 0, p.Distance)
	tilt.Pose.SetAxisRotation(0, 0, 1, p.TiltDeg)
	vw.tilts[bd] = tilt

	sld := xyz.NewSolid(tilt).SetMesh(vw.bodyMesh)
	sld.SetName(p.Name)
	sld.Pose.Scale.SetScalar(p.Radius)
	vw.applyAppearance(sld, p.Appear)
	vw.spins[bd] = sld

	for _, ms := range bd.Moons {
		msld := xyz.NewSolid(tilt).SetMesh(vw.bodyMesh)
		msld.SetName(ms.Moon.Name)
		msld.Pose.Scale.SetScalar(ms.Moon.Radius)
		msld.Pose.Pos = ms.Pos
		vw.applyAppearance(msld, ms.Moon.Appear)
		vw.moons[ms] = msld
	}

	if bd.Ring != nil {
		vw.configRing(bd, tilt)
	}
}

// applyAppearance sets a solid's material from an appearance record:
// fallback color first, then the texture when it loaded.
func (vw *View) applyAppearance(sld *xyz.Solid, ap *solar.Appearance) {
	if ap.Color != "" {
		sld.Material.Color = errors.Log1(colors.FromString(ap.Color))
	}
	if ap.Emissive {
		sld.Material.Emissive = sld.Material.Color
		sld.Material.Bright = 2
	}
	if tx, has := vw.textures[ap.Texture]; has {
		sld.Material.SetTexture(tx)
	}
}

// UpdatePose maps the current simulation state onto every node pose and
// applies the visibility toggles. It is called once per rendered frame,
// after [solar.System.Step]; nothing in here can fail, and absent
// substructures are skipped.
func (vw *View) UpdatePose(st solar.Settings) {
	yAxis := math32.Vec3(0, 1, 0)
	vw.sun.Pose.SetAxisRotationRad(0, 1, 0, vw.Sys.SunSpin)

	for _, bd := range vw.Sys.Bodies {
		vw.anchors[bd].Pose.SetAxisRotationRad(0, 1, 0, bd.OrbitAngle)
		vw.spins[bd].Pose.SetAxisRotationRad(0, 1, 0, bd.SpinAngle)
		for _, ms := range bd.Moons {
			vw.moons[ms].Pose.Pos = ms.Pos
		}
		if rg, has := vw.rings[bd]; has {
			rg.Group.Pose.Quat = rg.Tilt.Mul(math32.NewQuatAxisAngle(yAxis, bd.Ring.Angle))
		}
	}

	vw.belt.Group.Pose.Quat = vw.belt.Tilt.Mul(math32.NewQuatAxisAngle(yAxis, vw.Sys.Belt.Angle))

	vw.updateDustPose(st)
	vw.updateOrbits(st)
	vw.updateLabels(st)

	vw.Scene.SetNeedsUpdate()
}
