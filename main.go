// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gowave reads the output of a one-dimensional wave-propagation simulation,
// overlays the exact solution of the outgoing pulse problem on each frame,
// and writes image files plus html and latex galleries
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gowave/ana"
	"github.com/cpmech/gowave/inp"
	"github.com/cpmech/gowave/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// input arguments
	viznamepath, _ := io.ArgToFilename(0, "viz", ".yaml", false)
	verbose := io.ArgToBool(1, true)
	preview := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGowave -- post-processing for 1D wave simulations\n")
		io.Pf("Copyright 2018 The Gowave Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"settings file", "viznamepath", viznamepath,
			"show messages", "verbose", verbose,
			"force terminal preview", "preview", preview,
		))
	}

	// visualization settings
	vd, err := inp.ReadViz(".", viznamepath)
	if err != nil {
		chk.Panic("cannot read visualization settings:\n%v", err)
	}

	// problem parameters
	pd, err := inp.ReadProb(vd.OutDir, "setprob.data")
	if err != nil {
		chk.Panic("cannot read problem parameters:\n%v", err)
	}
	if verbose {
		io.Pf("Parameters: u = %g, beta = %g\n", pd.U, pd.Beta)
	}

	// exact solution
	var sol ana.RadialWave
	sol.Init(pd.Params(), false)

	// plotting tree
	plotdata := out.NewPlotData(vd)
	fig := plotdata.NewFig("Pressure and Velocity", 1)
	ax := fig.NewAxes("$q$")
	ax.Yrange = []float64{-0.5, 1.3}
	ax.AddItem("computed solution", 0, out.DefaultItemStyle())
	ax.AddOverlay(out.NewTrueSolution(&sol))

	// output frames
	frames, err := out.ReadFrames(vd.OutDir)
	if err != nil {
		chk.Panic("cannot read output frames:\n%v", err)
	}
	if verbose {
		io.Pf("Read %d frames from %q\n", len(frames), vd.OutDir)
	}

	// hardcopy
	err = plotdata.PrintFrames(frames)
	if err != nil {
		chk.Panic("cannot print frames:\n%v", err)
	}
	if verbose && vd.PrintFigs {
		io.Pfblue2("Figures saved in %q\n", vd.PlotDir)
	}

	// terminal preview
	if vd.Preview || preview {
		for _, f := range frames {
			io.Pf("\n%s\n", out.Preview(f, 0, vd.PreviewWidth, vd.PreviewHeight))
		}
	}
}
