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

func ringedPlanet(t *testing.T) *Planet {
	for _, p := range DefaultCatalog() {
		if p.Ring != nil {
			return p
		}
	}
	t.Fatal("no ringed planet in default catalog")
	return nil
}

func TestRingPlacement(t *testing.T) {
	p := ringedPlanet(t)
	rf := NewRingField(p)
	cfg := p.Ring
	assert.Equal(t, cfg.Count, len(rf.Instances))
	inner := cfg.Inner * p.Radius
	outer := cfg.Outer * p.Radius
	for i := range rf.Instances {
		in := &rf.Instances[i]
		r := math32.Sqrt(in.Pos.X*in.Pos.X + in.Pos.Z*in.Pos.Z)
		assert.GreaterOrEqual(t, r, inner)
		assert.LessOrEqual(t, r, outer)
		assert.LessOrEqual(t, math32.Abs(in.Pos.Y), cfg.Thickness)
		assert.GreaterOrEqual(t, in.Scale, cfg.MinScale)
		assert.LessOrEqual(t, in.Scale, cfg.MaxScale)
	}
}

// ring spin is scaled by delta time like every other rotation.
func TestRingStep(t *testing.T) {
	p := ringedPlanet(t)
	rf := NewRingField(p)
	rf.Step(0.25, 2)
	tolassert.EqualTol(t, p.Ring.Speed*0.25*2, rf.Angle, standardTol)
	before := rf.Instances[3].Pos
	rf.Step(0.25, 2)
	assert.Equal(t, before, rf.Instances[3].Pos)
}
