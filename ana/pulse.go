// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana implements analytical solutions and initial profiles for the
// verification of the acoustic wave solver
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Pulse implements compactly supported initial displacement profiles centred
// at a = (L0+L1)/2. Kinds:
//
//	1 -- parabolic cap:      amp − s²/b²           for s < b,  b = (L1−L0)/20
//	2 -- C∞ bump (narrow):   exp(−1/(1−(s/b)²))/e⁻¹ for s < b−tol,  b = (L1−L0)/20
//	3 -- triangle:           amp·(1 − s/b)          for s < b,  b = (L1−L0)/5
//	4 -- exp bump (wide):    exp(2·e^(−b/s)/(s/b−1)) for s < b−tol,  b = (L1−L0)/5
//
// with s = |x − a|. All profiles vanish outside their support
type Pulse struct {
	Kind int     // profile kind
	A    float64 // centre
	B    float64 // half-width of support
	Amp  float64 // amplitude
	Tol  float64 // support shrinking tolerance for kinds 2 and 4
}

// Init initialises the pulse for the interval [l0, l1]. prms may override the
// derived parameters: "a", "b", "amp", "tol"
func (o *Pulse) Init(kind int, l0, l1 float64, prms fun.Prms) (err error) {
	o.Kind = kind
	o.A = (l0 + l1) / 2.0
	o.Amp = 1.0
	o.Tol = 1e-3
	switch kind {
	case 1, 2:
		o.B = (l1 - l0) / 20.0
	case 3, 4:
		o.B = (l1 - l0) / 5.0
	default:
		return chk.Err("pulse kind %d is invalid. options are 1, 2, 3 and 4", kind)
	}
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "amp":
			o.Amp = p.V
		case "tol":
			o.Tol = p.V
		}
	}
	return
}

// F computes the profile @ x
func (o *Pulse) F(x float64) float64 {
	s := math.Abs(x - o.A)
	switch o.Kind {
	case 1:
		if s < o.B {
			return o.Amp - s*s/(o.B*o.B)
		}
	case 2:
		if s < o.B-o.Tol {
			ξ := s / o.B
			return math.Exp(-1.0/(1.0-ξ*ξ)) / math.Exp(-1.0)
		}
	case 3:
		if s < o.B {
			return o.Amp * (1.0 - s/o.B)
		}
	case 4:
		if s < o.B-o.Tol {
			ξ := s / o.B
			return math.Exp(2.0 * math.Exp(-1.0/ξ) / (ξ - 1.0))
		}
	}
	return 0
}
