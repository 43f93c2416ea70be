// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solar implements the simulation state for an animated solar
// system: a star, planets on circular orbits with axial tilt and
// self-rotation, moons, a rock ring, an asteroid belt and a near-camera
// dust swarm. It is purely computational and carries no rendering state;
// the solarview package mirrors a [System] into an xyz scene.
//
// The motion model is cosmetic, not physical: every update is a
// closed-form angle increment, and moon positions are recomputed from
// phase each frame rather than integrated, so nothing drifts.
package solar

//go:generate core generate -add-types

// System is the complete simulation state, created once at startup from
// static configuration and advanced by [System.Step] once per rendered
// frame. All state is owned by the single frame callback; nothing here
// is safe for concurrent use.
type System struct {

	// Sun is the central star configuration.
	Sun *Star

	// SunSpin is the accumulated self-rotation of the star, in radians.
	SunSpin float32

	// Bodies is the runtime state for every planet, in catalog order.
	Bodies []*Body

	// Belt is the asteroid belt field.
	Belt *BeltField

	// Dust is the near-camera dust field; nil until built by
	// [System.ConfigureDust].
	Dust *DustField
}

// NewSystem constructs the full simulation from the given star and planet
// catalog. Moon phases are freshly randomized; everything else derived
// from the catalog (distances, tilts, ring placement bands) is identical
// across constructions from the same configuration.
func NewSystem(sun *Star, catalog []*Planet) *System {
	sys := &System{Sun: sun}
	for _, p := range catalog {
		sys.Bodies = append(sys.Bodies, NewBody(p))
	}
	var bcfg BeltConfig
	bcfg.Defaults()
	sys.Belt = NewBeltField(bcfg)
	return sys
}

// NewDefaultSystem constructs the simulation from [DefaultSun] and
// [DefaultCatalog].
func NewDefaultSystem() *System {
	return NewSystem(DefaultSun(), DefaultCatalog())
}

// Body returns the runtime body with the given planet name, or nil.
func (sys *System) Body(name string) *Body {
	for _, bd := range sys.Bodies {
		if bd.Planet.Name == name {
			return bd
		}
	}
	return nil
}

// Step advances the whole simulation by dt seconds under the given
// settings snapshot. For every planet the self-rotation advances by
// speed*dt*TimeScale and the orbit by one fifth of that; moon phases
// advance by their own speeds and positions are recomputed from phase.
// Nothing in here can fail: absent substructures (no moons, no ring,
// dust not yet built) are skipped by presence checks.
func (sys *System) Step(dt float32, st Settings) {
	m := st.TimeScale
	sys.SunSpin += sys.Sun.Speed * dt * m
	for _, bd := range sys.Bodies {
		sp := bd.Planet.Speed
		bd.SpinAngle += sp * dt * m
		bd.OrbitAngle += sp * dt * 0.2 * m
		for _, ms := range bd.Moons {
			ms.Phase += ms.Moon.Speed * dt * m
			ms.UpdatePos()
		}
		if bd.Ring != nil {
			bd.Ring.Step(dt, m)
		}
	}
	sys.Belt.Step(dt, m)
	if sys.Dust != nil {
		sys.Dust.Step(dt, st.DustEnabled, st.DustSpeed, m)
	}
}

// ConfigureDust builds or rebuilds the dust field so it matches the
// given settings, returning true if a (re)build happened. A change to
// count, spread or size discards the whole field and generates a new one:
// the cost is paid at most once per user interaction, never per frame.
func (sys *System) ConfigureDust(st Settings) bool {
	var cfg DustConfig
	cfg.Defaults()
	cfg.Count = st.DustCount
	cfg.Spread = st.DustSpread
	cfg.SizeScale = st.DustSize
	if sys.Dust != nil && sys.Dust.Config == cfg {
		return false
	}
	sys.Dust = NewDustField(cfg)
	return true
}
