// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Frame holds one simulator snapshot read from a pair of output files
// (fort.tNNNN with the time header and fort.qNNNN with the grid data)
type Frame struct {
	// time header
	Index  int     // frame index
	T      float64 // simulation time
	Meqn   int     // number of solution components
	Ngrids int     // number of grids; only single-grid output is supported
	Naux   int     // number of auxiliary components
	Ndim   int     // number of spatial dimensions

	// grid header
	GridNo int     // grid number
	Level  int     // refinement level
	Mx     int     // number of cells
	Xlow   float64 // left edge of the domain
	Dx     float64 // cell size

	// derived
	X []float64   // cell centres
	Q [][]float64 // solution rows: Q[ieq][i] holds component ieq at cell i
}

// ReadFrame reads the pair of output files of one frame
func ReadFrame(dir string, idx int) (o *Frame, err error) {

	// time header
	o = &Frame{Index: idx}
	tn := io.Sf("fort.t%04d", idx)
	b, err := io.ReadFile(filepath.Join(dir, tn))
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		val, name, ok := headerLine(line)
		if !ok {
			continue
		}
		switch name {
		case "time":
			o.T, err = strconv.ParseFloat(val, 64)
		case "meqn":
			o.Meqn, err = strconv.Atoi(val)
		case "ngrids":
			o.Ngrids, err = strconv.Atoi(val)
		case "naux":
			o.Naux, err = strconv.Atoi(val)
		case "ndim":
			o.Ndim, err = strconv.Atoi(val)
		}
		if err != nil {
			return nil, chk.Err("%q has an invalid %s entry: %v", tn, name, err)
		}
	}
	if o.Meqn < 1 {
		return nil, chk.Err("%q must define meqn", tn)
	}
	if o.Ngrids != 1 {
		return nil, chk.Err("only single-grid output is supported. %q has ngrids=%d", tn, o.Ngrids)
	}
	if o.Ndim != 1 {
		return nil, chk.Err("only one-dimensional output is supported. %q has ndim=%d", tn, o.Ndim)
	}

	// grid data
	qn := io.Sf("fort.q%04d", idx)
	b, err = io.ReadFile(filepath.Join(dir, qn))
	if err != nil {
		return nil, err
	}
	icell := 0
	for _, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		// header entries carry their name after the value
		if val, name, ok := headerLine(line); ok {
			switch name {
			case "grid_number":
				o.GridNo, err = strconv.Atoi(val)
			case "AMR_level":
				o.Level, err = strconv.Atoi(val)
			case "mx":
				o.Mx, err = strconv.Atoi(val)
			case "xlow":
				o.Xlow, err = strconv.ParseFloat(val, 64)
			case "dx":
				o.Dx, err = strconv.ParseFloat(val, 64)
			}
			if err != nil {
				return nil, chk.Err("%q has an invalid %s entry: %v", qn, name, err)
			}
			continue
		}

		// data row
		if o.Q == nil {
			if o.Mx < 1 || o.Dx <= 0 {
				return nil, chk.Err("%q must define mx and dx before the data rows", qn)
			}
			o.Q = la.MatAlloc(o.Meqn, o.Mx)
		}
		if icell >= o.Mx {
			return nil, chk.Err("%q has more than mx=%d data rows", qn, o.Mx)
		}
		if len(fields) != o.Meqn {
			return nil, chk.Err("data row %d of %q must have meqn=%d values. %d is incorrect", icell+1, qn, o.Meqn, len(fields))
		}
		for j, f := range fields {
			o.Q[j][icell], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, chk.Err("data row %d of %q has an invalid value: %v", icell+1, qn, err)
			}
		}
		icell++
	}
	if icell != o.Mx {
		return nil, chk.Err("%q has %d data rows but mx=%d", qn, icell, o.Mx)
	}

	// cell centres
	o.X = make([]float64, o.Mx)
	for i := 0; i < o.Mx; i++ {
		o.X[i] = o.Xlow + (float64(i)+0.5)*o.Dx
	}
	return
}

// ReadFrames reads all consecutive frames available in dir, starting from
// index zero
func ReadFrames(dir string) (frames []*Frame, err error) {
	for idx := 0; ; idx++ {
		if _, e := os.Stat(filepath.Join(dir, io.Sf("fort.t%04d", idx))); os.IsNotExist(e) {
			break
		}
		f, e := ReadFrame(dir, idx)
		if e != nil {
			return nil, e
		}
		frames = append(frames, f)
	}
	if len(frames) == 0 {
		err = chk.Err("no output frames found in %q", dir)
	}
	return
}

// SelectTimes returns the indices of the frames nearest the given output times
func SelectTimes(frames []*Frame, times []float64, tol float64) (I []int) {
	all := make([]float64, len(frames))
	for i, f := range frames {
		all[i] = f.T
	}
	I, _ = utl.GetITout(all, times, tol)
	return
}

// headerLine splits a "value name" header line; ok is false for data rows
// and blank lines
func headerLine(line string) (val, name string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return
	}
	if fields[1][0] >= '0' && fields[1][0] <= '9' {
		return
	}
	if fields[1][0] == '-' || fields[1][0] == '+' || fields[1][0] == '.' {
		return
	}
	return fields[0], fields[1], true
}
