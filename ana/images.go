// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
)

// BdryKind labels the behaviour of one end of the tube in the method of images
type BdryKind int

const (
	// Rigid ends reflect the incoming wave with a sign flip
	Rigid BdryKind = iota

	// Transparent ends absorb the incoming wave
	Transparent
)

// Images implements the d'Alembert solution of the 1D wave equation with a
// compactly supported initial displacement u0 and zero initial velocity,
// by the method of images with up to one reflection per end:
//
//	u(t,x) = ½·[u0(x+ct) + u0(x−ct)]                    free propagation
//	       − ½·u0(2L0−x+ct)                             if the left end is rigid
//	       − ½·u0(2L1−x−ct)                             if the right end is rigid
//	       + ½·[u0(x−ct+2L) + u0(x+ct−2L)],  L = L1−L0  if both ends are rigid
//
// valid while each wave front has crossed each end at most once
type Images struct {

	// input
	L0, L1      float64               // limits of tube
	C           float64               // wave propagation speed
	Left, Right BdryKind              // end kinds
	U0          func(x float64) float64 // initial displacement profile
}

// Init initialises the solution
func (o *Images) Init(left, right BdryKind, l0, l1, c float64, u0 func(x float64) float64) (err error) {
	if l1 <= l0 {
		return chk.Err("tube limits are invalid: L0=%g must be smaller than L1=%g", l0, l1)
	}
	if c <= 0 {
		return chk.Err("propagation speed must be positive. c=%g is invalid", c)
	}
	if u0 == nil {
		return chk.Err("initial profile u0 must be given")
	}
	o.L0, o.L1 = l0, l1
	o.C = c
	o.Left, o.Right = left, right
	o.U0 = u0
	return
}

// U computes the displacement @ time t and position x
func (o *Images) U(t, x float64) float64 {
	ct := o.C * t
	u := o.U0(x+ct) + o.U0(x-ct)
	if o.Left == Rigid {
		u -= o.U0(2.0*o.L0 - x + ct)
	}
	if o.Right == Rigid {
		u -= o.U0(2.0*o.L1 - x - ct)
	}
	if o.Left == Rigid && o.Right == Rigid {
		span := 2.0 * (o.L1 - o.L0)
		u += o.U0(x-ct+span) + o.U0(x+ct-span)
	}
	return u / 2.0
}
