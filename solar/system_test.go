// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"math/rand"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func testSettings() Settings {
	var st Settings
	st.Defaults()
	return st
}

func TestStepAngles(t *testing.T) {
	sys := NewDefaultSystem()
	st := testSettings()
	st.TimeScale = 2.5
	dt := float32(0.7)
	sys.Step(dt, st)
	for _, bd := range sys.Bodies {
		sp := bd.Planet.Speed
		tolassert.EqualTol(t, sp*dt*st.TimeScale, bd.SpinAngle, standardTol)
		tolassert.EqualTol(t, sp*dt*0.2*st.TimeScale, bd.OrbitAngle, standardTol)
	}
	tolassert.EqualTol(t, sys.Sun.Speed*dt*st.TimeScale, sys.SunSpin, standardTol)
}

func TestStepEarth(t *testing.T) {
	sys := NewDefaultSystem()
	earth := sys.Body("Earth")
	assert.NotNil(t, earth)
	assert.Equal(t, float32(18), earth.Planet.Distance)
	assert.Equal(t, float32(0.005), earth.Planet.Speed)
	sys.Step(1, testSettings())
	tolassert.EqualTol(t, 0.001, earth.OrbitAngle, standardTol)
	tolassert.EqualTol(t, 0.005, earth.SpinAngle, standardTol)
}

func TestStepPhobos(t *testing.T) {
	sys := NewDefaultSystem()
	mars := sys.Body("Mars")
	assert.NotNil(t, mars)
	phobos := mars.Moons[0]
	assert.Equal(t, "Phobos", phobos.Moon.Name)
	phobos.Phase = 0
	sys.Step(1, testSettings())
	tolassert.EqualTol(t, 1.28473354, phobos.Phase, standardTol)
	tolassert.EqualTol(t, math32.Sin(1.28473354)*1.1, phobos.Pos.X, standardTol)
	tolassert.EqualTol(t, 0, phobos.Pos.Y, standardTol)
	tolassert.EqualTol(t, math32.Cos(1.28473354)*1.1, phobos.Pos.Z, standardTol)
}

// moon positions are recomputed from phase, so the orbital radius must
// hold exactly no matter how many frames have accumulated.
func TestMoonRadiusInvariant(t *testing.T) {
	sys := NewDefaultSystem()
	st := testSettings()
	st.TimeScale = 7
	for range 500 {
		sys.Step(rand.Float32()*0.1, st)
	}
	for _, bd := range sys.Bodies {
		for _, ms := range bd.Moons {
			d := ms.Moon.Distance
			r2 := ms.Pos.X*ms.Pos.X + ms.Pos.Z*ms.Pos.Z
			tolassert.EqualTol(t, d*d, r2, 1.0e-3)
		}
	}
}

func TestZeroMoons(t *testing.T) {
	sys := NewDefaultSystem()
	merc := sys.Body("Mercury")
	assert.NotNil(t, merc)
	assert.Empty(t, merc.Moons)
	sys.Step(1, testSettings()) // no-op over zero moons must not panic
}

// two systems from one catalog must have identical derived placement;
// only the randomized moon phases differ.
func TestConstructionIdempotent(t *testing.T) {
	a := NewDefaultSystem()
	b := NewDefaultSystem()
	assert.Equal(t, len(a.Bodies), len(b.Bodies))
	for i, ab := range a.Bodies {
		bb := b.Bodies[i]
		assert.Equal(t, ab.Planet.Name, bb.Planet.Name)
		assert.Equal(t, ab.Planet.Distance, bb.Planet.Distance)
		assert.Equal(t, ab.Planet.TiltDeg, bb.Planet.TiltDeg)
		assert.Equal(t, len(ab.Moons), len(bb.Moons))
		if ab.Ring != nil {
			assert.NotNil(t, bb.Ring)
			assert.Equal(t, ab.Ring.Config, bb.Ring.Config)
			assert.Equal(t, len(ab.Ring.Instances), len(bb.Ring.Instances))
		}
	}
	assert.Equal(t, a.Belt.Config, b.Belt.Config)
}

// the multiplier is unclamped by design: values beyond the panel range
// must pass straight through.
func TestTimeScaleUnclamped(t *testing.T) {
	sys := NewDefaultSystem()
	st := testSettings()
	st.TimeScale = 250
	earth := sys.Body("Earth")
	sys.Step(1, st)
	tolassert.EqualTol(t, 0.005*250, earth.SpinAngle, 1.0e-3)
}

func TestConfigureDust(t *testing.T) {
	sys := NewDefaultSystem()
	st := testSettings()
	assert.True(t, sys.ConfigureDust(st))
	assert.NotNil(t, sys.Dust)
	assert.Equal(t, st.DustCount, len(sys.Dust.Instances))

	// identical settings: no rebuild
	assert.False(t, sys.ConfigureDust(st))

	st.DustCount = 1200
	assert.True(t, sys.ConfigureDust(st))
	assert.Equal(t, 1200, len(sys.Dust.Instances))

	st.DustSpread = 80
	assert.True(t, sys.ConfigureDust(st))
	assert.Equal(t, float32(80), sys.Dust.Config.Spread)
}
