// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_viz01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viz01. default settings")

	vd := DefaultViz()
	if err := vd.Validate(); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.StrAssert(vd.OutDir, "_output")
	chk.StrAssert(vd.PlotDir, "_plots")
	chk.StrAssert(vd.Format, "png")
	chk.StrAssert(vd.HomeLink, "../README.html")
	chk.IntAssert(vd.FigsPerLine, 2)
	chk.IntAssert(vd.FramesPerLine, 1)
	chk.IntAssert(len(vd.FrameNos), 0)
	if !vd.PrintFigs || !vd.HTML || !vd.Latex {
		tst.Errorf("hardcopy must be fully enabled by default")
		return
	}
	if vd.Preview || vd.MakePDF {
		tst.Errorf("preview and makepdf must be disabled by default")
		return
	}
}

func Test_viz02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viz02. settings file")

	vd, err := ReadViz("data", "viz.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pfblue2("settings:\n%v", vd)
	chk.StrAssert(vd.OutDir, "_output")
	chk.StrAssert(vd.Format, "png")
	chk.Ints(tst, "framenos", vd.FrameNos, []int{0, 2})
	chk.IntAssert(vd.PreviewWidth, 60)
	chk.IntAssert(vd.PreviewHeight, 12)
	if vd.Latex {
		tst.Errorf("latex must be disabled by the settings file")
		return
	}
	if !vd.Preview {
		tst.Errorf("preview must be enabled by the settings file")
		return
	}
}

func Test_viz03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("viz03. missing and invalid settings files")

	// missing file yields defaults
	vd, err := ReadViz("data", "nonexistent.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.StrAssert(vd.Format, "png")
	chk.IntAssert(vd.FigsPerLine, 2)

	// invalid format is rejected
	if _, err := ReadViz("data", "viz-bad.yaml"); err == nil {
		tst.Errorf("error expected for invalid image format")
		return
	}
	io.Pf("invalid settings were rejected\n")
}
