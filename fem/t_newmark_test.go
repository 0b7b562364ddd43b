// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/maprieto/gowave/ele"
	"github.com/maprieto/gowave/inp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newTestSim returns in-memory simulation data. dt=0 activates the CFL line
// dt = h/vel
func newTestSim(nele int, left, right string, ini int, tf, dt float64) *inp.Simulation {
	sim := new(inp.Simulation)
	sim.SetDefault()
	sim.Data.Desc = "test"
	sim.Dom = inp.DomData{L0: 0, L1: 1, Nele: nele}
	sim.Bcs.Left, sim.Bcs.Right = left, right
	sim.Ini.Type = ini
	sim.Time = inp.TimeData{Tini: 0, Tf: tf, Dt: dt}
	sim.PostProcess()
	return sim
}

func Test_newmark01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newmark01. step count and final time overshoot")

	// Tf/Δt = 145.77..., thus Nt = 145 and the loop performs 146 updates,
	// leaving the solution one Δt beyond Tf
	sim := newTestSim(20, "rigid", "rigid", 2, 0.5/343.0, 1e-5)
	m, err := NewMainFromSim(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMainFromSim failed:\n%v", err)
		return
	}
	defer m.Dom.Clean()

	nrecords := 0
	err = m.Run(func(step int, sol *ele.Solution) error {
		nrecords++
		return nil
	})
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	sv := m.Solver.(*SolverNewmark)
	io.Pforan("records=%d steps=%d fact=%d solves=%d T=%g\n", nrecords, sv.NumSteps, sv.NumFact, sv.NumSolves, m.Dom.Sol.T)
	if nrecords != 147 {
		tst.Errorf("number of recorded states is incorrect: %d != 147", nrecords)
		return
	}
	if sv.NumSteps != 146 {
		tst.Errorf("number of steps is incorrect: %d != 146", sv.NumSteps)
		return
	}
	if sv.NumFact != 1 {
		tst.Errorf("effective matrix must be factorised exactly once. NumFact=%d", sv.NumFact)
		return
	}
	if sv.NumSolves != 146 {
		tst.Errorf("number of solves is incorrect: %d != 146", sv.NumSolves)
		return
	}
	chk.Scalar(tst, "final T", 1e-12, m.Dom.Sol.T, 146e-5)
}

func Test_newmark02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newmark02. initial acceleration consistency")

	// porous medium with damping and transparent end: C is non-trivial
	sim := newTestSim(50, "rigid", "transparent", 2, 0.5/343.0, 0)
	sim.Porous = inp.PorousData{Active: true, Phi: 0.1, GamP: 1.4, Sig: 1000}
	m, err := NewMainFromSim(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMainFromSim failed:\n%v", err)
		return
	}
	defer m.Dom.Clean()

	sv := m.Solver.(*SolverNewmark)
	if err = sv.Assemble(); err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}

	// residual of M·a + C·v + K·y = f(0)
	d := m.Dom
	r := make([]float64, d.Ny)
	la.SpMatVecMul(r, 1, d.Mm, d.Sol.D2ydt2)
	la.SpMatVecMulAdd(r, 1, d.Cm, d.Sol.Dydt)
	la.SpMatVecMulAdd(r, 1, d.Km, d.Sol.Y)
	d.SampleForce(0)
	ref := la.VecNorm(d.Fext)
	for i := 0; i < d.Ny; i++ {
		r[i] -= d.Fext[i]
	}
	rnorm := la.VecNorm(r)
	io.Pforan("‖r‖ = %g\n", rnorm)
	if rnorm > 1e-8*(1.0+ref) {
		tst.Errorf("initial acceleration is inconsistent. ‖r‖=%g", rnorm)
	}
}

func Test_newmark03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newmark03. single step determinism")

	run := func() *Main {
		sim := newTestSim(50, "rigid", "transparent", 3, 0.5/343.0, 0)
		m, err := NewMainFromSim(sim, false)
		if err != nil {
			tst.Fatalf("NewMainFromSim failed:\n%v", err)
		}
		sv := m.Solver.(*SolverNewmark)
		if err = sv.Assemble(); err != nil {
			tst.Fatalf("Assemble failed:\n%v", err)
		}
		if err = sv.Step(sim.Time.Dt); err != nil {
			tst.Fatalf("Step failed:\n%v", err)
		}
		return m
	}
	ma := run()
	defer ma.Dom.Clean()
	mb := run()
	defer mb.Dom.Clean()

	// bit-identical state triples
	chk.Vector(tst, "y", 1e-17, ma.Dom.Sol.Y, mb.Dom.Sol.Y)
	chk.Vector(tst, "v", 1e-17, ma.Dom.Sol.Dydt, mb.Dom.Sol.Dydt)
	chk.Vector(tst, "a", 1e-17, ma.Dom.Sol.D2ydt2, mb.Dom.Sol.D2ydt2)
}

func Test_newmark04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newmark04. triplets may be wiped after assembly")

	run := func(wipe bool) *Main {
		sim := newTestSim(40, "rigid", "rigid", 1, 0.5/343.0, 0)
		m, err := NewMainFromSim(sim, false)
		if err != nil {
			tst.Fatalf("NewMainFromSim failed:\n%v", err)
		}
		sv := m.Solver.(*SolverNewmark)
		if err = sv.Assemble(); err != nil {
			tst.Fatalf("Assemble failed:\n%v", err)
		}
		if wipe {
			// stepping is driven by the captured compressed-column matrices
			m.Dom.Mt.Start()
			m.Dom.Ct.Start()
			m.Dom.Kt.Start()
		}
		for i := 0; i < 10; i++ {
			if err = sv.Step(sim.Time.Dt * float64(i+1)); err != nil {
				tst.Fatalf("Step failed:\n%v", err)
			}
		}
		return m
	}
	ma := run(false)
	defer ma.Dom.Clean()
	mb := run(true)
	defer mb.Dom.Clean()

	chk.Vector(tst, "y", 1e-17, ma.Dom.Sol.Y, mb.Dom.Sol.Y)
	chk.Vector(tst, "v", 1e-17, ma.Dom.Sol.Dydt, mb.Dom.Sol.Dydt)
	chk.Vector(tst, "a", 1e-17, ma.Dom.Sol.D2ydt2, mb.Dom.Sol.D2ydt2)
}

func Test_newmark05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newmark05. undefined error metric sentinel")

	sim := newTestSim(10, "rigid", "rigid", 2, 0.5/343.0, 1e-4)
	m, err := NewMainFromSim(sim, false)
	if err != nil {
		tst.Errorf("NewMainFromSim failed:\n%v", err)
		return
	}
	defer m.Dom.Clean()

	// vanishing reference norm must give −1, not NaN
	e := ComputeError(m.Dom, Zero, 0)
	chk.Scalar(tst, "sentinel", 1e-15, e, -1)
}

func Test_newmark06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("newmark06. configuration errors")

	// unknown solver type
	sim := newTestSim(10, "rigid", "rigid", 2, 0.5/343.0, 1e-4)
	sim.Solver.Type = "leapfrog"
	if _, err := NewMainFromSim(sim, false); err == nil {
		tst.Errorf("NewMainFromSim should have failed for an unknown solver type")
		return
	} else {
		io.Pforan("OK. error = %v\n", err)
	}

	// invalid Newmark parameters
	sim = newTestSim(10, "rigid", "rigid", 2, 0.5/343.0, 1e-4)
	sim.Solver.Beta = 0.7
	if _, err := NewMainFromSim(sim, false); err == nil {
		tst.Errorf("NewMainFromSim should have failed for β out of range")
		return
	} else {
		io.Pforan("OK. error = %v\n", err)
	}
}
