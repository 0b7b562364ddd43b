// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ConvStudy runs convergence studies for the rigid-rigid tube with the wide
// smooth pulse: fixed mesh with Δt halvings, fixed Δt with mesh refinement,
// and combined refinement along the CFL line Δt = h/c. Error logs are saved
// as CSV files and, optionally, log-log plots
package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/maprieto/gowave/fem"
	"github.com/maprieto/gowave/inp"
	"github.com/maprieto/gowave/out"
)

// newSim returns the study scenario. dt=0 activates the CFL line dt = h/vel
func newSim(nele int, dt float64) *inp.Simulation {
	sim := new(inp.Simulation)
	sim.SetDefault()
	sim.Data.Desc = "convergence study: rigid-rigid tube, wide smooth pulse"
	sim.Dom = inp.DomData{L0: 0, L1: 1, Nele: nele}
	sim.Ini.Type = 4
	sim.Time = inp.TimeData{Tini: 0, Tf: 0.5 / 343.0, Dt: dt}
	sim.PostProcess()
	return sim
}

// runOne runs one case and returns the final error
func runOne(nele int, dt float64) (h, dtUsed, e float64) {
	sim := newSim(nele, dt)
	m, err := fem.NewMainFromSim(sim, false)
	if err != nil {
		chk.Panic("cannot allocate analysis:\n%v", err)
	}
	defer m.Dom.Clean()
	if err = m.Run(nil); err != nil {
		chk.Panic("run failed:\n%v", err)
	}
	return m.Dom.Msh.H, sim.Time.Dt, m.FinalError()
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// input parameters
	dirout := "/tmp/gowave/convstudy"
	doplot := io.ArgToBool(0, false)

	io.PfWhite("\nconvergence studies -- rigid-rigid tube, wide smooth pulse\n\n")

	// fixed mesh, Δt halvings
	var logT out.ErrorLog
	for _, dt := range []float64{8e-5, 4e-5, 2e-5, 1e-5} {
		h, dtu, e := runOne(500, dt)
		io.Pf("nele=500  dt=%12g  error=%g %%\n", dtu, e)
		logT.Add(h, dtu, e)
	}
	if err := logT.Save(dirout, "time"); err != nil {
		chk.Panic("cannot save error log:\n%v", err)
	}

	// fixed Δt, mesh refinement
	var logH out.ErrorLog
	for _, nele := range []int{25, 50, 100, 200} {
		h, dtu, e := runOne(nele, 1e-5)
		io.Pf("nele=%3d  h=%8g  dt=%12g  error=%g %%\n", nele, h, dtu, e)
		logH.Add(h, dtu, e)
	}
	if err := logH.Save(dirout, "space"); err != nil {
		chk.Panic("cannot save error log:\n%v", err)
	}

	// combined refinement along the CFL line
	var logC out.ErrorLog
	for _, nele := range []int{25, 50, 100, 200} {
		h, dtu, e := runOne(nele, 0)
		io.Pf("nele=%3d  h=%8g  dt=%12g  error=%g %%\n", nele, h, dtu, e)
		logC.Add(h, dtu, e)
	}
	if err := logC.Save(dirout, "cfl"); err != nil {
		chk.Panic("cannot save error log:\n%v", err)
	}
	io.Pf("\nerror logs saved in %s\n", dirout)

	// log-log plot of the CFL-line study
	if doplot {
		lh := make([]float64, len(logC.H))
		le := make([]float64, len(logC.Err))
		for i := range logC.H {
			lh[i] = math.Log10(logC.H[i])
			le[i] = math.Log10(logC.Err[i])
		}
		plt.Plot(lh, le, "'bo-', label='dt=h/c', clip_on=0")
		plt.Gll("$\\log_{10} h$", "$\\log_{10}$ error [%]", "")
		plt.SaveD(dirout, "cfl.png")
	}
}
