// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// Harmonic implements the time-harmonic solution of the 1D wave equation in a
// tube driven by a speaker u(t,L0) = cos(ω·t) at the left end with a
// transparent right end:
//
//	u(t,x) = Re{ e^(−iωt)·B·e^(ikx) },  B = e^(−ikL0),  k = ω/c
//
// i.e. a right-travelling plane wave of unit amplitude
type Harmonic struct {

	// input
	L0 float64 // position of speaker
	C  float64 // wave propagation speed
	ω  float64 // angular frequency of speaker

	// derived
	k float64 // wave number ω/c
}

// Init initialises the solution
func (o *Harmonic) Init(l0, c, ω float64) (err error) {
	if c <= 0 {
		return chk.Err("propagation speed must be positive. c=%g is invalid", c)
	}
	if ω <= 0 {
		return chk.Err("angular frequency must be positive. ω=%g is invalid", ω)
	}
	o.L0 = l0
	o.C = c
	o.ω = ω
	o.k = ω / c
	return
}

// U computes the displacement @ time t and position x
func (o *Harmonic) U(t, x float64) float64 {
	return real(cmplx.Exp(complex(0, o.k*(x-o.L0)-o.ω*t)))
}

// V computes the velocity du/dt @ time t and position x
func (o *Harmonic) V(t, x float64) float64 {
	return o.ω * math.Sin(o.k*(x-o.L0)-o.ω*t)
}
