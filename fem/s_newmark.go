// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/maprieto/gowave/ele"
)

// SolverNewmark integrates the semi-discrete acoustic wave problem
//
//	M·a + C·v + K·y = f(t)
//
// in time with the implicit Newmark method. The problem is linear and the
// step size is constant, thus the effective matrix A = K + α1·M + α4·C is
// assembled and factorised exactly once and the factorisation is reused by
// every step
type SolverNewmark struct {
	dom *Domain
	dc  *ele.DynCoefs

	// statistics
	NumFact   int // number of factorisations of A (must stay 1)
	NumSolves int // number of solves with the factorised A
	NumSteps  int // number of completed steps

	assembled bool
}

// set factory of solvers
func init() {
	allocators["newmark"] = func(dom *Domain, dc *ele.DynCoefs) Solver {
		solver := new(SolverNewmark)
		solver.dom = dom
		solver.dc = dc
		return solver
	}
}

// Assemble builds and factorises the effective matrix and computes the
// initial acceleration from
//
//	M·a = f(0) − K·y0 − C·v0
//
// with a plain mass matrix solve (no boundary condition application)
func (o *SolverNewmark) Assemble() (err error) {
	d := o.dom

	// effective matrix
	d.BuildEffective(o.dc)
	if d.InitLSol {
		err = d.LinSol.InitR(d.At, d.Sim.LinSol.Symmetric, d.Sim.LinSol.Verbose, d.Sim.LinSol.Timing)
		if err != nil {
			return chk.Err("cannot initialise linear solver:\n%v", err)
		}
		d.InitLSol = false
	}
	err = d.LinSol.Fact()
	if err != nil {
		return chk.Err("factorisation of effective matrix failed:\n%v", err)
	}
	o.NumFact++

	// initial acceleration
	sol := d.Sol
	d.SampleForce(sol.T)
	la.SpMatVecMul(d.Wb, 1, d.Km, sol.Y)
	la.SpMatVecMulAdd(d.Wb, 1, d.Cm, sol.Dydt)
	for i := 0; i < d.Ny; i++ {
		d.Fb[i] = d.Fext[i] - d.Wb[i]
	}
	mls := la.GetSolver(d.Sim.LinSol.Name)
	defer mls.Free()
	err = mls.InitR(d.Mt, d.Sim.LinSol.Symmetric, false, false)
	if err != nil {
		return chk.Err("cannot initialise mass matrix solver:\n%v", err)
	}
	err = mls.Fact()
	if err != nil {
		return chk.Err("factorisation of mass matrix failed:\n%v", err)
	}
	err = mls.SolveR(sol.D2ydt2, d.Fb, false)
	if err != nil {
		return chk.Err("initial acceleration solve failed:\n%v", err)
	}
	o.assembled = true
	return
}

// Step advances the solution to time t1 reusing the factorisation of A:
//
//	ζ* = α1·y + α2·v + α3·a
//	χ* = α4·y + α5·v + α6·a
//	A·y1 = f(t1) + M·ζ* + C·χ*   (with boundary conditions applied to rhs)
//	v1 = α4·y1 − χ*
//	a1 = α1·y1 − ζ*
func (o *SolverNewmark) Step(t1 float64) (err error) {
	d, dc := o.dom, o.dc
	sol := d.Sol
	α1, α2, α3 := dc.GetAlp1(), dc.GetAlp2(), dc.GetAlp3()
	α4, α5, α6 := dc.GetAlp4(), dc.GetAlp5(), dc.GetAlp6()

	// star variables
	for i := 0; i < d.Ny; i++ {
		sol.Zet[i] = α1*sol.Y[i] + α2*sol.Dydt[i] + α3*sol.D2ydt2[i]
		sol.Chi[i] = α4*sol.Y[i] + α5*sol.Dydt[i] + α6*sol.D2ydt2[i]
	}

	// right-hand side
	d.SampleForce(t1)
	copy(d.Fb, d.Fext)
	la.SpMatVecMulAdd(d.Fb, 1, d.Mm, sol.Zet)
	la.SpMatVecMulAdd(d.Fb, 1, d.Cm, sol.Chi)

	// essential boundary conditions
	d.EssenBcs.ApplyToRhs(d.Fb, t1)

	// solve for the new displacement
	err = d.LinSol.SolveR(sol.Y, d.Fb, false)
	if err != nil {
		return chk.Err("solve failed:\n%v", err)
	}
	o.NumSolves++

	// update velocity and acceleration
	for i := 0; i < d.Ny; i++ {
		sol.Dydt[i] = α4*sol.Y[i] - sol.Chi[i]
		sol.D2ydt2[i] = α1*sol.Y[i] - sol.Zet[i]
	}
	sol.T = t1
	o.NumSteps++
	return
}

// Run performs the time loop with Nt+1 = ⌊(tf−tini)/Δt⌋+1 updates. Note that
// the last update lands one Δt beyond tf; kept on purpose so that recorded
// series line up one to one with previously published results
func (o *SolverNewmark) Run(outF OutFcn, verbose bool) (err error) {
	d := o.dom
	if !o.assembled {
		if err = o.Assemble(); err != nil {
			return
		}
	}

	// control
	tini := d.Sim.Time.Tini
	Δt := d.Sim.Time.Dt
	Nt := int((d.Sim.Time.Tf - tini) / Δt)
	d.Sol.Dt = Δt

	// first output
	if outF != nil {
		if err = outF(0, d.Sol); err != nil {
			return chk.Err("cannot save results:\n%v", err)
		}
	}

	// time loop
	for jt := 0; jt <= Nt; jt++ {
		t1 := tini + Δt*float64(jt+1)
		if err = o.Step(t1); err != nil {
			return chk.Err("step %d failed:\n%v", jt, err)
		}
		if verbose {
			n := 50 * (jt + 1) / (Nt + 1)
			io.PfWhite("[%-50s] %d/%d\r", strings.Repeat("=", n), jt+1, Nt+1)
		}
		if outF != nil {
			if err = outF(jt+1, d.Sol); err != nil {
				return chk.Err("cannot save results:\n%v", err)
			}
		}
	}
	if verbose {
		io.Pf("\n")
	}
	return
}
