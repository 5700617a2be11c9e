// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/gowave/ana"
)

// Overlay draws extra content on top of the items of one axes. Render is
// called once per frame, after the items, with the complete frame data
type Overlay interface {
	Render(f *Frame)
}

// TrueSolution overlays the analytical solution evaluated on the frame
// grid at the frame time
type TrueSolution struct {
	Sol   *ana.RadialWave // initialised solution
	Style plt.A           // curve style
	Label string          // legend label
}

// NewTrueSolution returns an overlay with the standard style
func NewTrueSolution(sol *ana.RadialWave) *TrueSolution {
	return &TrueSolution{Sol: sol, Style: DefaultTrueStyle(), Label: "true solution"}
}

// Render draws the analytical solution
func (o *TrueSolution) Render(f *Frame) {
	sty := o.Style
	if sty.L == "" {
		sty.L = o.Label
	}
	plt.Plot(f.X, o.Sol.CalcArray(f.X, f.T), &sty)
}
