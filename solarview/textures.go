// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarview

import (
	"io/fs"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/xyz"

	"github.com/solarium3d/solarium/solarview/assets"
)

// TextureNames lists the texture set resolved against the embedded
// assets: one per body appearance plus the rock and sky textures.
var TextureNames = []string{
	"sun", "mercury", "venus", "earth", "mars",
	"jupiter", "saturn", "uranus", "neptune",
	"moon", "rock", "stars",
}

var (
	rockColor  = colors.FromRGB(139, 125, 107)
	dustColor  = colors.FromRGB(190, 190, 200)
	orbitColor = colors.FromRGB(90, 90, 110)
)

// loadTextures loads the texture set from the embedded assets.
// A missing or unloadable texture is logged and skipped: the affected
// bodies render with their plain fallback color instead. There is no
// retry; textures are purely cosmetic.
func (vw *View) loadTextures() {
	vw.textures = make(map[string]xyz.Texture, len(TextureNames))
	for _, nm := range TextureNames {
		fn := nm + ".png"
		if _, err := fs.Stat(assets.Content, fn); err != nil {
			slog.Error("solarview: texture asset not found", "name", nm, "err", err)
			continue
		}
		vw.textures[nm] = xyz.NewTextureFileFS(assets.Content, vw.Scene, nm, fn)
	}
}
