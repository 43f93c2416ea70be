// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

// MoonAppear is the one shared appearance used by all moons.
// Sharing is safe because appearances are immutable after construction.
var MoonAppear = &Appearance{Texture: "moon", Color: "darkgrey"}

// DefaultSun returns the standard sun configuration.
func DefaultSun() *Star {
	return &Star{
		Name:   "Sun",
		Radius: 5,
		Speed:  0.001,
		Appear: &Appearance{Texture: "sun", Color: "gold", Emissive: true},
	}
}

// DefaultCatalog returns the standard eight-planet catalog.
// Distances, radii and speeds are artistic, not to scale; tilts are the
// real axial tilts in degrees. Venus spins retrograde, so its speed is
// negative. Saturn carries the rock ring.
func DefaultCatalog() []*Planet {
	return []*Planet{
		{Name: "Mercury", Radius: 0.8, Distance: 10, Speed: 0.004, TiltDeg: 0.03,
			Appear: &Appearance{Texture: "mercury", Color: "#b5a7a7"}},
		{Name: "Venus", Radius: 1.4, Distance: 14, Speed: -0.002, TiltDeg: 177.4,
			Appear: &Appearance{Texture: "venus", Color: "#e0c47f"}},
		{Name: "Earth", Radius: 1.5, Distance: 18, Speed: 0.005, TiltDeg: 23.4,
			Appear: &Appearance{Texture: "earth", Color: "#3a6fb5"},
			Moons: []*Moon{
				{Name: "Luna", Radius: 0.4, Distance: 2.4, Speed: 0.53, Appear: MoonAppear},
			}},
		{Name: "Mars", Radius: 1.2, Distance: 23, Speed: 0.0048, TiltDeg: 25.2,
			Appear: &Appearance{Texture: "mars", Color: "#c1593c"},
			Moons: []*Moon{
				{Name: "Phobos", Radius: 0.18, Distance: 1.1, Speed: 1.28473354, Appear: MoonAppear},
				{Name: "Deimos", Radius: 0.12, Distance: 1.7, Speed: 0.32, Appear: MoonAppear},
			}},
		{Name: "Jupiter", Radius: 3.5, Distance: 38, Speed: 0.012, TiltDeg: 3.1,
			Appear: &Appearance{Texture: "jupiter", Color: "#c8a97e"},
			Moons: []*Moon{
				{Name: "Io", Radius: 0.3, Distance: 4.4, Speed: 0.9, Appear: MoonAppear},
				{Name: "Europa", Radius: 0.25, Distance: 5.0, Speed: 0.5, Appear: MoonAppear},
				{Name: "Ganymede", Radius: 0.4, Distance: 5.8, Speed: 0.35, Appear: MoonAppear},
				{Name: "Callisto", Radius: 0.35, Distance: 6.7, Speed: 0.2, Appear: MoonAppear},
			}},
		{Name: "Saturn", Radius: 3.0, Distance: 48, Speed: 0.0095, TiltDeg: 26.7,
			Appear: &Appearance{Texture: "saturn", Color: "#d9c08a"},
			Moons: []*Moon{
				{Name: "Titan", Radius: 0.4, Distance: 5.4, Speed: 0.3, Appear: MoonAppear},
			},
			Ring: &RingConfig{Count: 700, Inner: 1.4, Outer: 2.3, Thickness: 0.08,
				MinScale: 0.04, MaxScale: 0.14, TiltDeg: -8, Speed: 0.06}},
		{Name: "Uranus", Radius: 2.2, Distance: 58, Speed: 0.008, TiltDeg: 97.8,
			Appear: &Appearance{Texture: "uranus", Color: "#9fd3d8"}},
		{Name: "Neptune", Radius: 2.1, Distance: 66, Speed: 0.0075, TiltDeg: 28.3,
			Appear: &Appearance{Texture: "neptune", Color: "#4f6fc0"}},
	}
}
