// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the post-processing of simulator output: reading
// frames and driving the declarative plotting tree
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gowave/inp"
)

// Item selects one solution component to be drawn
type Item struct {
	Label   string // legend label; empty means none
	PlotVar int    // index of the solution component (row of Frame.Q)
	Style   plt.A  // line and marker style
}

// Axes gathers items and overlays sharing one pair of axes
type Axes struct {
	Title    string    // axes title; drawn as the vertical axis label
	Xlbl     string    // horizontal axis label
	LegLoc   string    // legend location; empty means default
	Xrange   []float64 // {min,max}; nil means automatic
	Yrange   []float64 // {min,max}; nil means automatic
	Items    []*Item   // curves of solution components
	Overlays []Overlay // extra content drawn after the items
}

// AddItem appends a curve for one solution component
func (o *Axes) AddItem(label string, plotVar int, style plt.A) (itm *Item) {
	itm = &Item{Label: label, PlotVar: plotVar, Style: style}
	o.Items = append(o.Items, itm)
	return
}

// AddOverlay appends an overlay
func (o *Axes) AddOverlay(ov Overlay) {
	o.Overlays = append(o.Overlays, ov)
}

// Fig is one printable figure holding one or more axes
type Fig struct {
	Name string  // descriptive name
	Num  int     // number used in image file names
	Axes []*Axes // axes sets, arranged as subplots
}

// NewAxes appends a new axes set to this figure
func (o *Fig) NewAxes(title string) (ax *Axes) {
	ax = &Axes{Title: title, Xlbl: GetTexLabel("x", "")}
	o.Axes = append(o.Axes, ax)
	return
}

// PlotData is the root of the declarative plotting tree. The tree stays
// inert until PrintFrames is called; hardcopy settings only take effect
// at that point
type PlotData struct {
	// figures
	Figs []*Fig

	// hardcopy
	PrintFigs bool   // generate image files
	Format    string // image format: png or eps
	FrameNos  []int  // frame indices to print; empty means all
	FigNos    []int  // figure numbers to print; empty means all
	DirPlots  string // directory receiving images and galleries

	// galleries
	HTML          bool   // write html gallery
	HomeLink      string // link back from the html index
	Latex         bool   // write latex gallery
	FigsPerLine   int    // figures per latex line
	FramesPerLine int    // frame rows per latex page block
	MakePDF       bool   // hint that a pdf should be compiled
}

// NewPlotData returns an empty tree configured from the visualization
// settings
func NewPlotData(vd *inp.VizData) *PlotData {
	return &PlotData{
		PrintFigs:     vd.PrintFigs,
		Format:        vd.Format,
		FrameNos:      vd.FrameNos,
		FigNos:        vd.FigNos,
		DirPlots:      vd.PlotDir,
		HTML:          vd.HTML,
		HomeLink:      vd.HomeLink,
		Latex:         vd.Latex,
		FigsPerLine:   vd.FigsPerLine,
		FramesPerLine: vd.FramesPerLine,
		MakePDF:       vd.MakePDF,
	}
}

// ClearFigs empties the figure list
func (o *PlotData) ClearFigs() {
	o.Figs = nil
}

// NewFig appends a new figure
func (o *PlotData) NewFig(name string, num int) (fig *Fig) {
	fig = &Fig{Name: name, Num: num}
	o.Figs = append(o.Figs, fig)
	return
}

// DrawFrame draws all axes of one figure with the data of one frame.
// The caller is responsible for plt.Reset and for saving the figure
func (o *PlotData) DrawFrame(fig *Fig, f *Frame) {
	nplots := len(fig.Axes)
	nr, nc := utl.BestSquare(nplots)
	for k, ax := range fig.Axes {
		if nplots > 1 {
			plt.Subplot(nr, nc, k+1)
		}
		for _, itm := range ax.Items {
			if itm.PlotVar < 0 || itm.PlotVar >= f.Meqn {
				chk.Panic("plot variable %d is out of range. frame %d has meqn=%d", itm.PlotVar, f.Index, f.Meqn)
			}
			sty := itm.Style
			if sty.L == "" {
				sty.L = itm.Label
			}
			plt.Plot(f.X, f.Q[itm.PlotVar], &sty)
		}
		for _, ov := range ax.Overlays {
			ov.Render(f)
		}
		ylbl := ax.Title
		if ylbl == "" {
			ylbl = GetTexLabel("q", "")
		}
		var gllArgs *plt.A
		if ax.LegLoc != "" {
			gllArgs = &plt.A{LegLoc: ax.LegLoc}
		}
		plt.Gll(ax.Xlbl, ylbl, gllArgs)
		if len(ax.Xrange) == 2 {
			plt.AxisXrange(ax.Xrange[0], ax.Xrange[1])
		}
		if len(ax.Yrange) == 2 {
			plt.AxisYrange(ax.Yrange[0], ax.Yrange[1])
		}
	}
}

// PrintFrames draws and saves the selected figures for the selected
// frames, then writes the enabled galleries
func (o *PlotData) PrintFrames(frames []*Frame) (err error) {
	sel := o.selectedFrames(frames)
	figs := o.selectedFigs()
	if o.PrintFigs {
		for _, f := range sel {
			for _, fig := range figs {
				plt.Reset(false, nil)
				o.DrawFrame(fig, f)
				plt.SaveD(o.DirPlots, FrameFilename(f.Index, fig.Num, o.Format))
			}
		}
	}
	if o.HTML {
		if err = o.WriteHTML(sel, figs); err != nil {
			return
		}
	}
	if o.Latex {
		err = o.WriteLatex(sel, figs)
	}
	return
}

// FrameFilename returns the image file name of one frame and figure
func FrameFilename(frameIdx, figNum int, format string) string {
	return io.Sf("frame%04dfig%d.%s", frameIdx, figNum, format)
}

// selectedFrames filters frames by the FrameNos selection
func (o *PlotData) selectedFrames(frames []*Frame) []*Frame {
	if len(o.FrameNos) == 0 {
		return frames
	}
	var sel []*Frame
	for _, f := range frames {
		for _, no := range o.FrameNos {
			if f.Index == no {
				sel = append(sel, f)
				break
			}
		}
	}
	return sel
}

// selectedFigs filters figures by the FigNos selection
func (o *PlotData) selectedFigs() []*Fig {
	if len(o.FigNos) == 0 {
		return o.Figs
	}
	var sel []*Fig
	for _, fig := range o.Figs {
		for _, no := range o.FigNos {
			if fig.Num == no {
				sel = append(sel, fig)
				break
			}
		}
	}
	return sel
}
