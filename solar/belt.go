// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// BeltConfig configures the asteroid belt field.
type BeltConfig struct {

	// Count is the number of asteroid instances.
	Count int

	// Inner and Outer bound the belt radius.
	Inner, Outer float32

	// Eccentricity is the radial jitter applied per instance.
	Eccentricity float32

	// Thickness is the vertical jitter half-extent.
	Thickness float32

	// MinScale and MaxScale bound the per-instance random scale.
	MinScale, MaxScale float32

	// TiltDeg is the constant tilt of the whole belt group.
	TiltDeg float32

	// Speed is the belt group spin rate in radians per second.
	Speed float32
}

// Defaults sets the standard belt parameters: between Mars and Jupiter,
// 2000 instances.
func (cfg *BeltConfig) Defaults() {
	cfg.Count = 2000
	cfg.Inner = 28
	cfg.Outer = 33
	cfg.Eccentricity = 0.4
	cfg.Thickness = 0.5
	cfg.MinScale = 0.05
	cfg.MaxScale = 0.22
	cfg.TiltDeg = 3
	cfg.Speed = 0.02
}

// BeltInstance is one asteroid. Instances are placed once and never move
// independently; the whole belt group rotates slowly.
type BeltInstance struct {

	// Pos is the position in the belt group frame.
	Pos math32.Vector3

	// Scale is the uniform scale.
	Scale float32

	// Rot is the fully random orientation, as XYZ euler angles in degrees.
	Rot math32.Vector3
}

// BeltField is the instanced asteroid belt around the whole system.
type BeltField struct {

	// Config is the generating configuration.
	Config BeltConfig

	// Instances are the placed asteroids.
	Instances []BeltInstance

	// Angle is the accumulated spin of the whole belt group, in radians.
	Angle float32
}

// BeltRadius samples an orbital radius between inner and outer such that
// areal density is uniform: r = sqrt(u*(outer²−inner²) + inner²) for u
// uniform in [0,1). Linear interpolation would cluster instances toward
// the inner edge, since an annulus of fixed radial width covers more
// area the farther out it sits.
func BeltRadius(u, inner, outer float32) float32 {
	return math32.Sqrt(u*(outer*outer-inner*inner) + inner*inner)
}

// NewBeltField generates the asteroid belt from the given configuration.
func NewBeltField(cfg BeltConfig) *BeltField {
	bf := &BeltField{Config: cfg}
	bf.Instances = make([]BeltInstance, cfg.Count)
	for i := range bf.Instances {
		ang := rand.Float32() * 2 * math32.Pi
		rad := BeltRadius(rand.Float32(), cfg.Inner, cfg.Outer)
		ecc := (rand.Float32() - 0.5) * 2 * cfg.Eccentricity
		bf.Instances[i] = BeltInstance{
			Pos: math32.Vec3(
				math32.Sin(ang)*(rad+ecc),
				(rand.Float32()-0.5)*2*cfg.Thickness,
				math32.Cos(ang)*(rad+ecc),
			),
			Scale: cfg.MinScale + rand.Float32()*(cfg.MaxScale-cfg.MinScale),
			Rot: math32.Vec3(
				rand.Float32()*360,
				rand.Float32()*360,
				rand.Float32()*360,
			),
		}
	}
	return bf
}

// Step advances the belt group spin, scaled by delta time and the global
// time multiplier.
func (bf *BeltField) Step(dt, timeScale float32) {
	bf.Angle += bf.Config.Speed * dt * timeScale
}
