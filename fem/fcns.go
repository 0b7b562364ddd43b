// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements the assembly of the acoustic wave problem over a 1D
// mesh and its solution in time by the implicit Newmark method
package fem

import (
	"github.com/maprieto/gowave/ele"
)

// Fcn defines a scalar field sampled in time and space. It is the shape of
// forcing terms, prescribed boundary values, initial profiles and reference
// solutions
type Fcn func(t, x float64) float64

// Zero implements Fcn ≡ 0
func Zero(t, x float64) float64 { return 0 }

// OutFcn defines a callback to perform output. It is called once with step=0
// for the initial state and then once per completed time step
type OutFcn func(step int, sol *ele.Solution) error
