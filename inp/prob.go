// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from the simulator output
// directory and from the visualization settings file
package inp

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// ProbData holds the problem parameters written by the simulator
// (setprob.data). Data is loaded once and never mutated afterwards
type ProbData struct {
	// input
	U    float64 // advection scale
	Beta float64 // Gaussian decay coefficient

	// derived
	names []string           // all parameter names, in file order
	vals  map[string]float64 // all name => value pairs
}

// ReadProb reads the problem parameters file. Every data line carries one
// "value =: name" pair and text after # is a comment. The u and beta
// parameters are required; other pairs are kept and may be retrieved
// with Val
func ReadProb(dir, fn string) (o *ProbData, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	o = new(ProbData)
	o.vals = make(map[string]float64)
	for i, line := range strings.Split(string(b), "\n") {
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "=:")
		if len(parts) != 2 {
			return nil, chk.Err("cannot parse line %d of %q: %q", i+1, fn, strings.TrimSpace(line))
		}
		name := strings.TrimSpace(parts[1])
		if name == "" {
			return nil, chk.Err("line %d of %q misses the parameter name", i+1, fn)
		}
		val, e := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if e != nil {
			return nil, chk.Err("parameter %q in %q has an invalid value: %v", name, fn, e)
		}
		if _, repeated := o.vals[name]; !repeated {
			o.names = append(o.names, name)
		}
		o.vals[name] = val
	}

	// required parameters
	var ok bool
	if o.U, ok = o.vals["u"]; !ok {
		return nil, chk.Err("%q does not define the u parameter", fn)
	}
	if o.Beta, ok = o.vals["beta"]; !ok {
		return nil, chk.Err("%q does not define the beta parameter", fn)
	}
	return
}

// Val returns the value of any loaded parameter
func (o ProbData) Val(name string) (val float64, ok bool) {
	val, ok = o.vals[name]
	return
}

// Params returns all loaded parameters as a list for solution initialisation
func (o ProbData) Params() (prms fun.Prms) {
	for _, name := range o.names {
		prms = append(prms, &fun.P{N: name, V: o.vals[name]})
	}
	return
}

// String returns the file rendition of this data set
func (o ProbData) String() (l string) {
	for _, name := range o.names {
		l += io.Sf("%23.15e =: %s\n", o.vals[name], name)
	}
	return
}
