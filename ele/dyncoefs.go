// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele implements the element level: the acoustic element, the solution
// state at nodes and the coefficients for the Newmark time integration
package ele

import (
	"github.com/cpmech/gosl/chk"
)

// DynCoefs calculates the coefficients for the Newmark method
type DynCoefs struct {

	// input
	β, γ, Δt float64

	// derived
	α1, α2, α3, α4, α5, α6 float64
}

// Init initialises the coefficients from Newmark's parameters and the step size.
// The effective matrix of the scheme is A = K + α1·M + α4·C
func (o *DynCoefs) Init(β, γ, Δt float64) (err error) {

	// check input
	if β <= 0 || β > 0.5 {
		return chk.Err("β must be within (0, 0.5]. β=%g is invalid", β)
	}
	if γ < 0.5 || γ > 1 {
		return chk.Err("γ must be within [0.5, 1]. γ=%g is invalid", γ)
	}
	if Δt <= 0 {
		return chk.Err("Δt must be positive. Δt=%g is invalid", Δt)
	}
	o.β, o.γ, o.Δt = β, γ, Δt

	// coefficients
	o.α1 = 1.0 / (β * Δt * Δt)
	o.α2 = 1.0 / (β * Δt)
	o.α3 = 1.0/(2.0*β) - 1.0
	o.α4 = γ / (β * Δt)
	o.α5 = γ/β - 1.0
	o.α6 = Δt * (γ/(2.0*β) - 1.0)
	return
}

// GetAlp1 returns α1 = 1/(β·Δt²)
func (o *DynCoefs) GetAlp1() float64 { return o.α1 }

// GetAlp2 returns α2 = 1/(β·Δt)
func (o *DynCoefs) GetAlp2() float64 { return o.α2 }

// GetAlp3 returns α3 = 1/(2β) − 1
func (o *DynCoefs) GetAlp3() float64 { return o.α3 }

// GetAlp4 returns α4 = γ/(β·Δt)
func (o *DynCoefs) GetAlp4() float64 { return o.α4 }

// GetAlp5 returns α5 = γ/β − 1
func (o *DynCoefs) GetAlp5() float64 { return o.α5 }

// GetAlp6 returns α6 = Δt·(γ/(2β) − 1)
func (o *DynCoefs) GetAlp6() float64 { return o.α6 }

// GetDt returns the step size Δt
func (o *DynCoefs) GetDt() float64 { return o.Δt }
