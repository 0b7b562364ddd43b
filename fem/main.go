// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/maprieto/gowave/ana"
	"github.com/maprieto/gowave/ele"
	"github.com/maprieto/gowave/inp"
)

// Main holds all data for a simulation run
type Main struct {

	// data
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // domain
	DynCfs  *ele.DynCoefs   // coefficients for the time integration
	Solver  Solver          // time integration solver
	Ref     Fcn             // reference solution; may be nil
	Verbose bool            // show messages during run
}

// NewMain reads a simulation file and returns a ready-to-run analysis
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	sim := inp.ReadSim(simfilepath)
	return NewMainFromSim(sim, verbose)
}

// NewMainFromSim returns a ready-to-run analysis from in-memory data
func NewMainFromSim(sim *inp.Simulation, verbose bool) (o *Main, err error) {

	// check input
	if err = sim.Check(); err != nil {
		return nil, chk.Err("simulation data is inconsistent:\n%v", err)
	}

	// initial profiles and reference solution
	u0, v0, ref, err := iniAndRef(sim)
	if err != nil {
		return nil, chk.Err("cannot build initial profiles:\n%v", err)
	}

	// domain
	o = new(Main)
	o.Sim = sim
	o.Ref = ref
	o.Verbose = verbose
	o.Dom, err = NewDomain(sim, u0, v0, nil)
	if err != nil {
		return nil, err
	}

	// coefficients for the time integration
	o.DynCfs = new(ele.DynCoefs)
	if err = o.DynCfs.Init(sim.Solver.Beta, sim.Solver.Gamma, sim.Time.Dt); err != nil {
		return nil, err
	}
	o.Dom.Sol.DynCfs = o.DynCfs

	// allocate solver
	alloc, ok := allocators[sim.Solver.Type]
	if !ok {
		return nil, chk.Err("cannot find solver type %q", sim.Solver.Type)
	}
	o.Solver = alloc(o.Dom, o.DynCfs)
	return
}

// Run runs the analysis
func (o *Main) Run(outF OutFcn) (err error) {
	if o.Verbose {
		io.Pf("%s: %s\n", o.Sim.Key, o.Sim.Data.Desc)
	}
	err = o.Solver.Run(outF, o.Verbose)
	if err != nil {
		return chk.Err("solver failed:\n%v", err)
	}
	return
}

// FinalError returns the percentual error of the final state against the
// reference solution; −1 when no reference solution exists
func (o *Main) FinalError() float64 {
	if o.Ref == nil {
		return -1
	}
	return ComputeError(o.Dom, o.Ref, o.Dom.Sol.T)
}

// iniAndRef builds the initial displacement and velocity profiles and the
// reference solution for the given scenario. Pulse runs start at rest and are
// compared against the method of images; harmonic runs (ini type 6) start on
// the travelling wave and are compared against it. For the images solution a
// speaker behaves as a rigid end
func iniAndRef(sim *inp.Simulation) (u0, v0, ref Fcn, err error) {

	// harmonic standing wave
	if sim.Ini.Type == 6 {
		har := new(ana.Harmonic)
		if err = har.Init(sim.Dom.L0, sim.Fluid.Vel, sim.Bcs.Omega); err != nil {
			return
		}
		u0, v0, ref = har.U, har.V, har.U
		return
	}

	// pulse at rest
	pul := new(ana.Pulse)
	if err = pul.Init(sim.Ini.Type, sim.Dom.L0, sim.Dom.L1, nil); err != nil {
		return
	}
	u0 = func(t, x float64) float64 { return pul.F(x) }
	img := new(ana.Images)
	err = img.Init(bdryKind(sim.Bcs.Left), bdryKind(sim.Bcs.Right), sim.Dom.L0, sim.Dom.L1, sim.Fluid.Vel, pul.F)
	if err != nil {
		return
	}
	ref = img.U
	return
}

// bdryKind maps the input boundary kind to the method-of-images kind
func bdryKind(kind string) ana.BdryKind {
	if kind == "transparent" {
		return ana.Transparent
	}
	return ana.Rigid
}
