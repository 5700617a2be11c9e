// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// RadialWave computes the exact solution of the outgoing pulse problem
//
//    q_t + (c(x)・q)_x = 0    with   c(x) = 2・sqrt(x)   and   x ≥ 0
//
// The substitution r = sqrt(x) turns the flux into a unit-speed transport
// of w = r・q; tracing the characteristic through (x,t) back to its foot
// xm = (sqrt(x) - t)² gives
//
//    q(x,t) = q0(xm)・sqrt(xm) / sqrt(x)
//
// where q0 is the initial profile: a unit box on the open interval
// (xa, xb), plus an optional Gaussian bump of weight γ (off by default)
type RadialWave struct {
	// input
	u  float64 // advection scale recorded by the simulator; the formula above does not depend on it
	β  float64 // Gaussian decay coefficient
	x0 float64 // Gaussian centre
	γ  float64 // Gaussian weight; zero means pure box profile
	xa float64 // box left boundary (excluded)
	xb float64 // box right boundary (excluded)

	// derived
	sol ode.Solver // ODE solver for the characteristic cross-check
}

// Init initialises this structure with given parameters
func (o *RadialWave) Init(prms fun.Prms, withNum bool) {

	// default values
	o.u = 1.0
	o.β = 100.0
	o.x0 = 0.75
	o.γ = 0.0
	o.xa = 0.1
	o.xb = 0.4

	// parameters
	for _, p := range prms {
		switch p.N {
		case "u":
			o.u = p.V
		case "beta":
			o.β = p.V
		case "x0":
			o.x0 = p.V
		case "gamma":
			o.γ = p.V
		case "xa":
			o.xa = p.V
		case "xb":
			o.xb = p.V
		}
	}

	// numerical solver with ξ := {x, q} along the characteristic
	if withNum {
		silent := true
		o.sol.Init("Radau5", 2, func(f []float64, dT, T float64, ξ []float64, args ...interface{}) error {
			t := args[0].(float64)
			r := math.Sqrt(ξ[0])
			f[0] = t * 2.0 * r   // dx/dT
			f[1] = -t * ξ[1] / r // dq/dT
			return nil
		}, nil, nil, nil, silent)
		o.sol.Distr = false // serial run
	}
}

// Profile computes the initial profile q0 at one point. The box boundaries
// xa and xb themselves map to zero
func (o RadialWave) Profile(x float64) (q0 float64) {
	if x > o.xa && x < o.xb {
		q0 = 1.0
	}
	if o.γ != 0 {
		d := x - o.x0
		q0 += o.γ * math.Exp(-o.β*d*d)
	}
	return
}

// ProfileArray computes the initial profile at many points.
// The result is newly allocated with the same length as X
func (o RadialWave) ProfileArray(X []float64) (Q []float64) {
	Q = make([]float64, len(X))
	for i, x := range X {
		Q[i] = o.Profile(x)
	}
	return
}

// Calc computes the solution value at one point and time.
// x == 0 is the centre of symmetry where the value vanishes for all times
func (o RadialWave) Calc(x, t float64) float64 {
	if x == 0 {
		return 0
	}
	rx := math.Sqrt(x)
	d := rx - t
	xm := d * d
	return o.Profile(xm) * math.Sqrt(xm) / rx
}

// CalcArray computes the solution at many points and one time.
// The result is newly allocated with the same length as X
func (o RadialWave) CalcArray(X []float64, t float64) (Q []float64) {
	Q = make([]float64, len(X))
	for i, x := range X {
		Q[i] = o.Calc(x, t)
	}
	return
}

// CalcNum computes the solution value by integrating the characteristic
// equations with an implicit ODE solver, starting from the foot of the
// characteristic through (x,t). Valid where sqrt(x) > t, i.e. for feet
// on the positive side of the origin
func (o RadialWave) CalcNum(x, t float64) float64 {
	if x == 0 {
		return 0
	}
	rx := math.Sqrt(x)
	if rx <= t {
		chk.Panic("CalcNum requires sqrt(x) > t. x=%g and t=%g are incompatible", x, t)
	}
	d := rx - t
	xm := d * d
	ξ := []float64{xm, o.Profile(xm)}
	err := o.sol.Solve(ξ, 0, 1, 1, false, t)
	if err != nil {
		chk.Panic("RadialWave failed when calculating solution value using ODE solver: %v", err)
	}
	return ξ[1]
}

// Front returns the support interval of the pulse at time t; i.e. the
// images of the box boundaries under the characteristic map
func (o RadialWave) Front(t float64) (xl, xr float64) {
	ra := math.Sqrt(o.xa) + t
	rb := math.Sqrt(o.xb) + t
	return ra * ra, rb * rb
}

// Plot draws the solution profile at the given times
func (o RadialWave) Plot(dirout, fnkey string, np int, times []float64) {
	xmax := 0.0
	for _, t := range times {
		if _, xr := o.Front(t); xr > xmax {
			xmax = xr
		}
	}
	X := utl.LinSpace(0, 1.05*xmax, np)
	for _, t := range times {
		plt.Plot(X, o.CalcArray(X, t), &plt.A{L: io.Sf("$t=%g$", t)})
	}
	plt.Gll("$x$", "$q$", nil)
	plt.SetTicksNormal()
	plt.SaveD(dirout, fnkey+".eps")
}
