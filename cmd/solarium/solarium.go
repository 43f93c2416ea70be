// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Solarium is an animated, interactive 3D solar system: textured
// planets on circular orbits with axial tilt and self-rotation, moons,
// a rock ring, an asteroid belt, near-camera space dust, and billboard
// name labels, with a control panel for the visual toggles.
package main

//go:generate core generate

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"

	"github.com/solarium3d/solarium/solar"
	"github.com/solarium3d/solarium/solarview"
)

func main() {
	app := &App{}
	app.Defaults()
	b := app.ConfigGUI()
	b.RunMainWindow()
}

// App holds the whole application: the settings snapshot bound to the
// control panel, the simulation, and its 3D view.
type App struct { //types:add

	// Settings are the control-panel parameters. The frame callback
	// reads a copy of this value each frame, so panel edits apply as a
	// whole snapshot at the next frame boundary.
	Settings solar.Settings

	// Paused stops all simulation stepping while still rendering.
	Paused bool

	// Sys is the simulation state.
	Sys *solar.System `display:"-"`

	// View mirrors Sys into the 3D scene.
	View *solarview.View `display:"-"`

	// SceneEditor is the 3D viewer widget.
	SceneEditor *xyzcore.SceneEditor `display:"-"`
}

func (app *App) Defaults() {
	app.Settings.Defaults()
}

// Init rebuilds the simulation and the scene wholesale from the default
// configuration, resetting all accumulated angles.
func (app *App) Init() { //types:add
	sc := app.SceneEditor.SceneXYZ()
	sc.DeleteChildren()
	app.makeScene(sc)
	app.SceneEditor.NeedsRender()
}

// ResetCamera restores the default saved camera view.
func (app *App) ResetCamera() { //types:add
	sc := app.SceneEditor.SceneXYZ()
	errors.Log(sc.SetCamera("default"))
	app.SceneEditor.NeedsRender()
}

// makeScene sets up lights, camera and background, then builds the
// system view into the given scene.
func (app *App) makeScene(sc *xyz.Scene) {
	sc.Background = colors.Uniform(colors.Black)
	xyz.NewAmbient(sc, "ambient", 0.2, xyz.DirectSun)
	sun := xyz.NewPoint(sc, "sun-light", 2, xyz.DirectSun)
	sun.Pos.Set(0, 0, 0)

	app.Sys = solar.NewDefaultSystem()
	app.Sys.ConfigureDust(app.Settings)
	app.View = solarview.NewView(app.Sys, sc)
	app.View.Config()
	app.View.UpdatePose(app.Settings)

	sc.Camera.Far = 1000
	sc.Camera.Pose.Pos = math32.Vec3(0, 140, 0.1)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("2")

	sc.Camera.Pose.Pos = math32.Vec3(0, 35, 95)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("1")
	sc.SaveCamera("default")
}

func (app *App) ConfigGUI() *core.Body {
	b := core.NewBody("solarium").SetTitle("Solarium")

	split := core.NewSplits(b)
	sv := core.NewForm(split).SetStruct(&app.Settings)
	app.SceneEditor = xyzcore.NewSceneEditor(split)
	app.SceneEditor.UpdateWidget()
	split.SetSplits(.2, .8)

	sc := app.SceneEditor.SceneXYZ()
	app.makeScene(sc)

	sv.OnChange(func(e events.Event) {
		// the frame callback picks up the new snapshot next frame;
		// render now so toggles apply immediately even while paused
		app.View.UpdatePose(app.Settings)
		app.SceneEditor.NeedsRender()
	})

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(app.MakeToolbar)
	})

	sw := app.SceneEditor.SceneWidget()
	sw.Animate(func(a *core.Animation) {
		if app.Paused {
			return
		}
		dt := a.Dt / 1000
		st := app.Settings // snapshot for this frame
		if app.Sys.ConfigureDust(st) {
			app.View.RebuildDust()
		}
		app.Sys.Step(dt, st)
		app.View.UpdatePose(st)
		sw.NeedsRender()
	})
	return b
}

func (app *App) MakeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(app.Init).SetText("Init").SetIcon(icons.Update)
	})
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(app.ResetCamera).SetText("Camera").SetIcon(icons.Videocam)
	})
	tree.Add(p, func(w *core.Separator) {})
	tree.Add(p, func(w *core.Switch) {
		w.SetText("Pause").SetTooltip("stop the simulation clock; rendering continues")
		w.OnChange(func(e events.Event) {
			app.Paused = w.IsChecked()
		})
	})
}
