// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gowave/ana"
)

func Test_frames01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frames01. single frame")

	f, err := ReadFrame("data", 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("t  = %v\n", f.T)
	io.Pforan("mx = %v\n", f.Mx)
	chk.Float64(tst, "t", 1e-17, f.T, 0.0)
	chk.IntAssert(f.Meqn, 1)
	chk.IntAssert(f.Ngrids, 1)
	chk.IntAssert(f.Ndim, 1)
	chk.IntAssert(f.GridNo, 1)
	chk.IntAssert(f.Level, 1)
	chk.IntAssert(f.Mx, 10)
	chk.Float64(tst, "xlow", 1e-17, f.Xlow, 0.0)
	chk.Float64(tst, "dx", 1e-17, f.Dx, 0.1)

	chk.Vector(tst, "x", 1e-15, f.X, []float64{0.05, 0.15, 0.25, 0.35, 0.45, 0.55, 0.65, 0.75, 0.85, 0.95})
	chk.Vector(tst, "q", 1e-17, f.Q[0], []float64{0, 1, 1, 1, 0, 0, 0, 0, 0, 0})
}

func Test_frames02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frames02. frame sequence and time selection")

	frames, err := ReadFrames("data")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(frames), 3)
	T := []float64{frames[0].T, frames[1].T, frames[2].T}
	io.Pforan("T = %v\n", T)
	chk.Vector(tst, "T", 1e-17, T, []float64{0, 0.25, 0.5})

	I := SelectTimes(frames, []float64{0, 0.5}, 1e-3)
	chk.Ints(tst, "selection", I, []int{0, 2})
}

func Test_frames03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frames03. frames against the analytical solution")

	frames, err := ReadFrames("data")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	var sol ana.RadialWave
	sol.Init(nil, false)
	for _, f := range frames {
		chk.Vector(tst, io.Sf("q @ t=%g", f.T), 1e-6, f.Q[0], sol.CalcArray(f.X, f.T))
	}
}

func Test_frames04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frames04. invalid output")

	if _, err := ReadFrame("data/bad", 0); err == nil {
		tst.Errorf("error expected for multi-grid output")
		return
	}
	if _, err := ReadFrame("data", 99); err == nil {
		tst.Errorf("error expected for missing frame files")
		return
	}
	if _, err := ReadFrames("."); err == nil {
		tst.Errorf("error expected for a directory without frames")
		return
	}
	io.Pf("all invalid inputs were rejected\n")
}
