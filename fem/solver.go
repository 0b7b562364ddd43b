// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/maprieto/gowave/ele"
)

// Solver defines the interface of time integration solvers
type Solver interface {

	// Run performs the time loop, calling outF (if non-nil) for the initial
	// state and after each completed step
	Run(outF OutFcn, verbose bool) (err error)
}

// SolverAllocator produces a solver bound to a domain
type SolverAllocator func(dom *Domain, dc *ele.DynCoefs) Solver

// allocators holds the factory of solvers
var allocators = map[string]SolverAllocator{}
