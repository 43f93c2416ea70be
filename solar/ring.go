// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// RingInstance is one rock in a planet ring. Instances are placed once at
// construction and are immutable thereafter; only the field-wide Angle of
// the owning [RingField] advances.
type RingInstance struct {

	// Pos is the position in the parent planet's local frame.
	Pos math32.Vector3

	// Scale is the uniform scale of the rock.
	Scale float32
}

// RingField is the rock ring around one planet. It lives under the
// planet's tilt frame, so it inherits the planet's orbital and tilt
// transforms automatically; the extra TiltDeg of the config leans the
// ring group off the equatorial plane for visual asymmetry.
type RingField struct {

	// Config is the generating configuration.
	Config *RingConfig

	// Instances are the placed rocks.
	Instances []RingInstance

	// Angle is the accumulated spin of the whole ring group, in radians.
	Angle float32
}

// NewRingField generates the ring for the given planet, placing Count
// rocks at uniformly random angle and radius within the inner/outer band
// scaled by the planet's visual radius, with small vertical jitter and
// random scale.
func NewRingField(p *Planet) *RingField {
	cfg := p.Ring
	rf := &RingField{Config: cfg}
	inner := cfg.Inner * p.Radius
	outer := cfg.Outer * p.Radius
	rf.Instances = make([]RingInstance, cfg.Count)
	for i := range rf.Instances {
		ang := rand.Float32() * 2 * math32.Pi
		rad := inner + rand.Float32()*(outer-inner)
		rf.Instances[i] = RingInstance{
			Pos: math32.Vec3(
				math32.Sin(ang)*rad,
				(rand.Float32()-0.5)*2*cfg.Thickness,
				math32.Cos(ang)*rad,
			),
			Scale: cfg.MinScale + rand.Float32()*(cfg.MaxScale-cfg.MinScale),
		}
	}
	return rf
}

// Step advances the ring group spin. The whole group rotates; individual
// rocks never move relative to each other.
func (rf *RingField) Step(dt, timeScale float32) {
	rf.Angle += rf.Config.Speed * dt * timeScale
}
