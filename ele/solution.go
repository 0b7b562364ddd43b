// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/la"
)

// Solution holds the solution state at nodes
type Solution struct {

	// current state
	T      float64   // current time
	Dt     float64   // current time step size
	Y      []float64 // primary variables (acoustic displacement) @ nodes
	Dydt   []float64 // dy/dt (velocity)
	D2ydt2 []float64 // d²y/dt² (acceleration)

	// auxiliary
	Zet []float64 // star vars; ζ* = α1·y + α2·v + α3·a
	Chi []float64 // star vars; χ* = α4·y + α5·v + α6·a

	// constants
	DynCfs *DynCoefs // coefficients for the time integration
}

// Allocate allocates all vectors with ny equations
func (o *Solution) Allocate(ny int) {
	o.Y = make([]float64, ny)
	o.Dydt = make([]float64, ny)
	o.D2ydt2 = make([]float64, ny)
	o.Zet = make([]float64, ny)
	o.Chi = make([]float64, ny)
}

// Reset clears the state, keeping allocated memory
func (o *Solution) Reset() {
	o.T = 0
	la.VecFill(o.Y, 0)
	la.VecFill(o.Dydt, 0)
	la.VecFill(o.D2ydt2, 0)
	la.VecFill(o.Zet, 0)
	la.VecFill(o.Chi, 0)
}
