// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// VizData holds the visualization run settings (viz.yaml)
type VizData struct {
	// directories
	OutDir  string `yaml:"outdir"`  // directory with simulator output: fort files and setprob.data
	PlotDir string `yaml:"plotdir"` // directory receiving images and galleries

	// hardcopy
	PrintFigs bool   `yaml:"printfigs"` // generate image files
	Format    string `yaml:"format"`    // image format: png or eps
	FrameNos  []int  `yaml:"framenos"`  // frames to print; empty means all
	FigNos    []int  `yaml:"fignos"`    // figures to print; empty means all

	// galleries
	HTML          bool   `yaml:"html"`          // write html gallery
	HomeLink      string `yaml:"homelink"`      // link back from the html index
	Latex         bool   `yaml:"latex"`         // write latex gallery
	FigsPerLine   int    `yaml:"figsperline"`   // figures per latex line
	FramesPerLine int    `yaml:"framesperline"` // frame rows per latex page block
	MakePDF       bool   `yaml:"makepdf"`       // hint that a pdf should be compiled from the latex gallery

	// terminal preview
	Preview       bool `yaml:"preview"`       // draw frames in the terminal
	PreviewWidth  int  `yaml:"previewwidth"`  // preview width in characters
	PreviewHeight int  `yaml:"previewheight"` // preview height in characters
}

// DefaultViz returns the settings of the standard post-processing run
func DefaultViz() *VizData {
	return &VizData{
		OutDir:        "_output",
		PlotDir:       "_plots",
		PrintFigs:     true,
		Format:        "png",
		HTML:          true,
		HomeLink:      "../README.html",
		Latex:         true,
		FigsPerLine:   2,
		FramesPerLine: 1,
		PreviewWidth:  72,
		PreviewHeight: 14,
	}
}

// Parse reads settings from a yaml document on top of the current values
func (o *VizData) Parse(b []byte) (err error) {
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return chk.Err("cannot parse visualization settings: %v", err)
	}
	return o.Validate()
}

// Validate checks the settings
func (o *VizData) Validate() (err error) {
	if o.Format != "png" && o.Format != "eps" {
		return chk.Err("image format must be \"png\" or \"eps\". %q is invalid", o.Format)
	}
	if o.FigsPerLine < 1 || o.FramesPerLine < 1 {
		return chk.Err("latex layout counts must be positive. figsperline=%d and framesperline=%d are invalid", o.FigsPerLine, o.FramesPerLine)
	}
	if o.PreviewWidth < 1 || o.PreviewHeight < 1 {
		return chk.Err("preview size must be positive. width=%d and height=%d are invalid", o.PreviewWidth, o.PreviewHeight)
	}
	return
}

// ReadViz reads the settings file. A missing file yields the defaults
func ReadViz(dir, fn string) (o *VizData, err error) {
	o = DefaultViz()
	path := filepath.Join(dir, fn)
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return
	}
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = o.Parse(b)
	if err != nil {
		return nil, err
	}
	return
}

// String returns a yaml rendition of the settings
func (o VizData) String() string {
	b, err := yaml.Marshal(&o)
	if err != nil {
		chk.Panic("cannot marshal visualization settings: %v", err)
	}
	return string(b)
}
