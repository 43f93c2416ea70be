// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// Appearance describes how a body surface is rendered: a texture name
// resolved against the view's texture set, and a color used as the fallback
// when the texture is missing or fails to load. Appearances are immutable
// after construction and may be shared across bodies (all small moons use
// one shared Appearance).
type Appearance struct {

	// Texture is the name of the surface texture; empty = untextured.
	Texture string

	// Color is the plain surface color, also used as the fallback
	// when the texture cannot be loaded.
	Color string

	// Emissive makes the surface glow independent of lighting (the sun).
	Emissive bool
}

// Moon is the static configuration for a moon orbiting a planet.
// Distances are in the parent planet's local frame.
type Moon struct {

	// Name of the moon.
	Name string

	// Radius is the visual radius.
	Radius float32

	// Distance from the center of the parent planet.
	Distance float32

	// Speed is the orbital angular speed in radians per second.
	Speed float32

	// Appear is the surface appearance, shared across moons.
	Appear *Appearance
}

// RingConfig configures the rock ring around a planet.
// Inner and Outer are factors multiplying the planet's visual radius.
type RingConfig struct {

	// Count is the number of ring rock instances.
	Count int

	// Inner is the inner band radius as a factor of the planet radius.
	Inner float32

	// Outer is the outer band radius as a factor of the planet radius.
	Outer float32

	// Thickness is the vertical jitter half-extent.
	Thickness float32

	// MinScale and MaxScale bound the per-rock random scale.
	MinScale, MaxScale float32

	// TiltDeg is a constant extra tilt applied to the whole ring group,
	// for visual asymmetry.
	TiltDeg float32

	// Speed is the ring group spin rate in radians per second.
	Speed float32
}

// Planet is the static configuration record for one planet.
// Radius and Distance must be > 0. Speed may be any real number:
// the sign encodes rotation direction. TiltDeg is not normalized;
// it is consumed directly as degrees.
type Planet struct {

	// Name of the planet; unique within a catalog.
	Name string

	// Radius is the visual radius.
	Radius float32

	// Distance is the orbital distance from the origin; constant.
	Distance float32

	// Speed is the self-rotation angular speed in radians per second.
	// The orbital rate is always one fifth of this.
	Speed float32

	// TiltDeg is the axial tilt in degrees, applied once at construction.
	TiltDeg float32

	// Appear is the surface appearance.
	Appear *Appearance

	// Moons orbiting this planet; may be empty.
	Moons []*Moon

	// Ring is non-nil for a planet carrying a rock ring.
	Ring *RingConfig
}

// Star is the static configuration for the central star,
// which only self-rotates.
type Star struct {

	// Name of the star.
	Name string

	// Radius is the visual radius.
	Radius float32

	// Speed is the self-rotation angular speed in radians per second.
	Speed float32

	// Appear is the surface appearance.
	Appear *Appearance
}

// MoonState is the mutable orbital state for one moon instance.
// Position is fully recomputed from Phase every frame, never integrated,
// so no positional drift accumulates. Phase grows without bound;
// the trigonometric recomputation makes wrapping unnecessary.
type MoonState struct {

	// Moon is the static configuration.
	Moon *Moon

	// Phase is the orbital phase angle in radians. It is initialized
	// to a uniform random value in [0, 2π) so moons do not start
	// colinear, and accumulates every frame.
	Phase float32

	// Pos is the current position in the parent planet's local frame,
	// recomputed from Phase.
	Pos math32.Vector3
}

// Body is the runtime state for one planet: the accumulated orbital and
// self-rotation angles plus per-moon orbital state. Angles accumulate
// every frame and are never reset except by a full rebuild.
type Body struct {

	// Planet is the static configuration.
	Planet *Planet

	// OrbitAngle is the accumulated angle carrying the body around
	// the origin, in radians.
	OrbitAngle float32

	// SpinAngle is the accumulated self-rotation angle, in radians.
	SpinAngle float32

	// Moons holds the per-moon orbital state, in catalog order.
	Moons []*MoonState

	// Ring is the rock ring field, nil for planets without one.
	Ring *RingField
}

// NewBody returns a new runtime body for the given planet configuration,
// with freshly randomized moon phases. A planet with no moons yields a
// body with no moon states.
func NewBody(p *Planet) *Body {
	bd := &Body{Planet: p}
	for _, mn := range p.Moons {
		ms := &MoonState{Moon: mn, Phase: rand.Float32() * 2 * math32.Pi}
		ms.UpdatePos()
		bd.Moons = append(bd.Moons, ms)
	}
	if p.Ring != nil {
		bd.Ring = NewRingField(p)
	}
	return bd
}

// Pos returns the body's current position in world space,
// computed from the orbital angle and distance.
func (bd *Body) Pos() math32.Vector3 {
	d := bd.Planet.Distance
	return math32.Vec3(math32.Sin(bd.OrbitAngle)*d, 0, math32.Cos(bd.OrbitAngle)*d)
}

// UpdatePos recomputes the moon's local position from its current phase.
func (ms *MoonState) UpdatePos() {
	d := ms.Moon.Distance
	ms.Pos = math32.Vec3(math32.Sin(ms.Phase)*d, 0, math32.Cos(ms.Phase)*d)
}
