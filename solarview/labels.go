// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarview

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"

	"github.com/solarium3d/solarium/solar"
)

// baseLabelPt is the label font size in points at size factor 1.
// Rendering at a generous point size keeps the texture glyphs crisp.
const baseLabelPt = 36

// configLabels builds one billboard text node per body, in a top-level
// group with identity transform: label positions are computed from the
// simulation each frame instead of nesting the text in the rotating
// body frames, which keeps exact camera-facing orientation a matter of
// copying one quaternion.
func (vw *View) configLabels() {
	vw.labelsGroup = xyz.NewGroup(vw.Root)
	vw.labelsGroup.SetName("labels")
	vw.labels = make(map[string]*xyz.Text2D)
	vw.lastLabelSize = 1

	add := func(name string) {
		txt := xyz.NewText2D(vw.labelsGroup).SetText(name)
		txt.SetName(name + "-label")
		txt.Styles.Color = colors.Uniform(colors.White)
		txt.Styles.Font.Size.Pt(baseLabelPt)
		vw.labels[name] = txt
	}
	add(vw.Sys.Sun.Name)
	for _, bd := range vw.Sys.Bodies {
		add(bd.Planet.Name)
	}
}

// labelPos returns the label position above a body of the given radius.
func labelPos(bodyPos math32.Vector3, radius float32) math32.Vector3 {
	return bodyPos.Add(math32.Vec3(0, radius*1.5+0.8, 0))
}

// updateLabels billboards every label to the camera each frame and lazily
// resyncs glyph geometry when the configured size changed since last sync.
func (vw *View) updateLabels(st solar.Settings) {
	vw.labelsGroup.Invisible = !st.LabelsEnabled
	if !st.LabelsEnabled {
		return
	}
	resize := st.LabelSize != vw.lastLabelSize
	if resize {
		vw.lastLabelSize = st.LabelSize
	}
	camQuat := vw.Scene.Camera.Pose.Quat

	sync := func(txt *xyz.Text2D, pos math32.Vector3) {
		txt.Pose.Pos = pos
		txt.Pose.Quat = camQuat
		if resize {
			txt.Styles.Font.Size.Pt(baseLabelPt * st.LabelSize)
			txt.RenderText()
		}
	}
	sync(vw.labels[vw.Sys.Sun.Name], labelPos(math32.Vector3{}, vw.Sys.Sun.Radius))
	for _, bd := range vw.Sys.Bodies {
		sync(vw.labels[bd.Planet.Name], labelPos(bd.Pos(), bd.Planet.Radius))
	}
}
