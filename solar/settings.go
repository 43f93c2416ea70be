// Copyright (c) 2026, Solarium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

// Settings is the snapshot of all user-adjustable parameters, passed by
// value into [System.Step] each frame. UI changes produce a new snapshot
// rather than mutating shared state, so ownership between the panel and
// the frame callback stays explicit. The min/max tags bound the control
// panel ranges; Step itself applies no clamping.
type Settings struct { //types:add

	// ShowOrbits toggles visibility of the orbit reference curves.
	ShowOrbits bool `default:"true"`

	// TimeScale is the global multiplier applied to all angular advancement.
	TimeScale float32 `default:"1" min:"0" max:"100" step:"0.5"`

	// DustEnabled toggles visibility and motion of the near-camera dust field.
	DustEnabled bool `default:"true"`

	// DustCount is the target instance count for the dust field;
	// changing it rebuilds the field.
	DustCount int `default:"500" min:"100" max:"2000" step:"50"`

	// DustSpeed is the approach speed multiplier for dust.
	DustSpeed float32 `default:"1" min:"0" max:"5" step:"0.1"`

	// DustSize scales the dust instance size; changing it rebuilds the field.
	DustSize float32 `default:"1" min:"0.1" max:"6" step:"0.1"`

	// DustSpread is the lateral half-extent of the dust placement volume;
	// changing it rebuilds the field.
	DustSpread float32 `default:"40" min:"5" max:"120" step:"1"`

	// LabelsEnabled toggles the billboard name labels.
	LabelsEnabled bool `default:"true"`

	// LabelSize is the font size factor applied to all labels;
	// changing it triggers a lazy label resync.
	LabelSize float32 `default:"1" min:"0.2" max:"3" step:"0.1"`
}

// Defaults sets the default settings values.
func (st *Settings) Defaults() {
	st.ShowOrbits = true
	st.TimeScale = 1
	st.DustEnabled = true
	st.DustCount = 500
	st.DustSpeed = 1
	st.DustSize = 1
	st.DustSpread = 40
	st.LabelsEnabled = true
	st.LabelSize = 1
}
