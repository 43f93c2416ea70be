// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets holds the embedded surface textures for the solar
// system bodies.
package assets

import "embed"

//go:embed *.png
var Content embed.FS
