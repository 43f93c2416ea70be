// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"math/rand"

	"cogentcore.org/core/math32"
)

// DustConfig configures the near-camera dust field. Positions are in
// viewer-local space: -Z is forward, so instance depth lies in
// [-Far, -Near] and advances toward 0.
type DustConfig struct {

	// Count is the number of dust instances.
	Count int

	// Spread is the lateral extent of the placement volume: instances
	// are placed within a square cross-section of half-extent Spread/2.
	Spread float32

	// Near and Far bound the depth range in front of the viewer.
	Near, Far float32

	// MinScale and MaxScale bound the per-instance base scale.
	MinScale, MaxScale float32

	// SizeScale is the user size multiplier applied to instance scale.
	SizeScale float32

	// MinRotSpeed and MaxRotSpeed bound the per-instance tumble rate,
	// in radians per second.
	MinRotSpeed, MaxRotSpeed float32
}

// Defaults sets the standard dust parameters.
func (cfg *DustConfig) Defaults() {
	cfg.Count = 500
	cfg.Spread = 40
	cfg.Near = 2
	cfg.Far = 60
	cfg.MinScale = 0.02
	cfg.MaxScale = 0.07
	cfg.SizeScale = 1
	cfg.MinRotSpeed = 0.2
	cfg.MaxRotSpeed = 1.4
}

// DustInstance is one piece of floating debris near the camera.
// Unlike ring and belt rocks, dust instances are continuously mutated:
// the position advances toward the viewer every frame and wraps back to
// the far boundary when it crosses the near one.
type DustInstance struct {

	// Pos is the position in viewer-local space.
	Pos math32.Vector3

	// Scale is the uniform scale, already including the size multiplier.
	Scale float32

	// Axis is the unit tumble axis.
	Axis math32.Vector3

	// RotSpeed is the tumble rate in radians per second.
	RotSpeed float32

	// RotPhase is the accumulated tumble angle, in radians.
	RotPhase float32
}

// DustField is the near-camera debris swarm, parented to the viewpoint so
// it surrounds the observer rather than the scene origin. If the
// configured count, spread or size change at runtime the whole field is
// discarded and rebuilt rather than patched incrementally.
type DustField struct {

	// Config is the generating configuration.
	Config DustConfig

	// Instances are the dust particles.
	Instances []DustInstance
}

// NewDustField generates a dust field from the given configuration.
func NewDustField(cfg DustConfig) *DustField {
	df := &DustField{Config: cfg}
	df.Instances = make([]DustInstance, cfg.Count)
	for i := range df.Instances {
		in := &df.Instances[i]
		in.Pos = math32.Vec3(
			(rand.Float32()-0.5)*cfg.Spread,
			(rand.Float32()-0.5)*cfg.Spread,
			-(cfg.Near + rand.Float32()*(cfg.Far-cfg.Near)),
		)
		in.Scale = (cfg.MinScale + rand.Float32()*(cfg.MaxScale-cfg.MinScale)) * cfg.SizeScale
		in.Axis = RandomAxis()
		in.RotSpeed = cfg.MinRotSpeed + rand.Float32()*(cfg.MaxRotSpeed-cfg.MinRotSpeed)
		in.RotPhase = rand.Float32() * 2 * math32.Pi
	}
	return df
}

// RandomAxis returns a uniformly random unit vector.
func RandomAxis() math32.Vector3 {
	for {
		v := math32.Vec3(
			rand.Float32()*2-1,
			rand.Float32()*2-1,
			rand.Float32()*2-1,
		)
		l := v.Length()
		if l > 0.001 && l <= 1 {
			return v.DivScalar(l)
		}
	}
}

// Step advances the dust field by one frame. Tumble phases always advance,
// independent of the visibility toggle; depth motion only runs when the
// field is enabled. An instance crossing the near bound respawns at the
// far bound with a freshly randomized lateral position, so wrapped
// particles do not retrace visible streaks.
func (df *DustField) Step(dt float32, enabled bool, dustSpeed, timeScale float32) {
	cfg := &df.Config
	adv := timeScale * dustSpeed * dt
	for i := range df.Instances {
		in := &df.Instances[i]
		in.RotPhase += in.RotSpeed * dt
		if !enabled {
			continue
		}
		in.Pos.Z += adv
		if in.Pos.Z > -cfg.Near {
			in.Pos.Z = -cfg.Far
			in.Pos.X = (rand.Float32() - 0.5) * cfg.Spread
			in.Pos.Y = (rand.Float32() - 0.5) * cfg.Spread
		}
	}
}
