// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestDustPlacement(t *testing.T) {
	var cfg DustConfig
	cfg.Defaults()
	cfg.Count = 1000
	df := NewDustField(cfg)
	assert.Equal(t, cfg.Count, len(df.Instances))
	half := cfg.Spread / 2
	for i := range df.Instances {
		in := &df.Instances[i]
		assert.LessOrEqual(t, math32.Abs(in.Pos.X), half)
		assert.LessOrEqual(t, math32.Abs(in.Pos.Y), half)
		assert.GreaterOrEqual(t, -in.Pos.Z, cfg.Near)
		assert.LessOrEqual(t, -in.Pos.Z, cfg.Far)
		tolassert.EqualTol(t, 1, in.Axis.Length(), 1.0e-4)
		assert.GreaterOrEqual(t, in.RotSpeed, cfg.MinRotSpeed)
		assert.LessOrEqual(t, in.RotSpeed, cfg.MaxRotSpeed)
	}
}

// an instance already past the near bound respawns at the far bound with
// a fresh lateral position inside the spread.
func TestDustRespawn(t *testing.T) {
	var cfg DustConfig
	cfg.Defaults()
	cfg.Count = 1
	df := NewDustField(cfg)
	in := &df.Instances[0]
	in.Pos = math32.Vec3(3, -3, -1.5) // near = 2: -1.5 is already across
	df.Step(1, true, 1, 1)
	assert.Equal(t, -cfg.Far, in.Pos.Z)
	half := cfg.Spread / 2
	assert.LessOrEqual(t, math32.Abs(in.Pos.X), half)
	assert.LessOrEqual(t, math32.Abs(in.Pos.Y), half)
}

func TestDustAdvance(t *testing.T) {
	var cfg DustConfig
	cfg.Defaults()
	cfg.Count = 1
	df := NewDustField(cfg)
	in := &df.Instances[0]
	in.Pos = math32.Vec3(1, 2, -10)
	df.Step(0.5, true, 2, 3) // dz = timeScale * dustSpeed * dt = 3
	tolassert.EqualTol(t, -7, in.Pos.Z, standardTol)
	assert.Equal(t, float32(1), in.Pos.X) // lateral untouched without respawn
	assert.Equal(t, float32(2), in.Pos.Y)
}

// tumble phases advance every frame even while the swarm is toggled off;
// positions only move when enabled.
func TestDustDisabledStillTumbles(t *testing.T) {
	var cfg DustConfig
	cfg.Defaults()
	cfg.Count = 4
	df := NewDustField(cfg)
	pos := make([]math32.Vector3, len(df.Instances))
	phase := make([]float32, len(df.Instances))
	for i := range df.Instances {
		pos[i] = df.Instances[i].Pos
		phase[i] = df.Instances[i].RotPhase
	}
	df.Step(1, false, 1, 1)
	for i := range df.Instances {
		assert.Equal(t, pos[i], df.Instances[i].Pos)
		tolassert.EqualTol(t, phase[i]+df.Instances[i].RotSpeed, df.Instances[i].RotPhase, standardTol)
	}
}

func TestDustSizeScale(t *testing.T) {
	var cfg DustConfig
	cfg.Defaults()
	cfg.Count = 200
	cfg.SizeScale = 4
	df := NewDustField(cfg)
	for i := range df.Instances {
		s := df.Instances[i].Scale
		assert.GreaterOrEqual(t, s, cfg.MinScale*4)
		assert.LessOrEqual(t, s, cfg.MaxScale*4)
	}
}
