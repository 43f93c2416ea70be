// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarview

import (
	"io/fs"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"github.com/solarium3d/solarium/solar"
	"github.com/solarium3d/solarium/solarview/assets"
)

func TestOrbitPoints(t *testing.T) {
	pts := OrbitPoints(18)
	assert.Equal(t, orbitSegments, len(pts))
	for _, p := range pts {
		tolassert.EqualTol(t, 18, math32.Sqrt(p.X*p.X+p.Z*p.Z), 1.0e-4)
		assert.Equal(t, float32(0), p.Y)
	}
}

func TestLabelPos(t *testing.T) {
	p := labelPos(math32.Vec3(3, 0, 4), 2)
	assert.Equal(t, math32.Vec3(3, 3.8, 4), p)
}

// every texture the catalog references must resolve to an embedded
// asset; otherwise bodies silently fall back to flat colors.
func TestCatalogTexturesEmbedded(t *testing.T) {
	have := make(map[string]bool)
	ents, err := fs.ReadDir(assets.Content, ".")
	assert.NoError(t, err)
	for _, e := range ents {
		have[e.Name()] = true
	}
	for _, nm := range TextureNames {
		assert.True(t, have[nm+".png"], "missing embedded texture %q", nm)
	}
	check := func(ap *solar.Appearance) {
		found := false
		for _, nm := range TextureNames {
			if nm == ap.Texture {
				found = true
				break
			}
		}
		assert.True(t, found, "appearance texture %q not in texture set", ap.Texture)
	}
	check(solar.DefaultSun().Appear)
	for _, p := range solar.DefaultCatalog() {
		check(p.Appear)
		for _, mn := range p.Moons {
			check(mn.Appear)
		}
	}
}
