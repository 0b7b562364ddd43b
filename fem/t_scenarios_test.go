// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/maprieto/gowave/ele"
	"github.com/maprieto/gowave/inp"
)

func Test_scen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen01. porous layer dissipates energy")

	// rigid porous layer with strong flux resistivity and a transparent end:
	// both mechanisms drain energy from the pulse
	sim := newTestSim(50, "rigid", "transparent", 2, 0.5/343.0, 0)
	sim.Porous = inp.PorousData{Active: true, Phi: 0.1, GamP: 1.4, Sig: 1000}
	m, err := NewMainFromSim(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMainFromSim failed:\n%v", err)
		return
	}
	defer m.Dom.Clean()

	E0 := m.Dom.Energy()
	if E0 <= 0 {
		tst.Errorf("initial energy must be positive. E0=%g", E0)
		return
	}
	if err = m.Run(nil); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	Ef := m.Dom.Energy()
	io.Pforan("E0=%g  Ef=%g  Ef/E0=%g\n", E0, Ef, Ef/E0)
	if Ef < 0 || Ef > 0.6*E0 {
		tst.Errorf("energy should have decayed. Ef/E0=%g", Ef/E0)
	}
}

func Test_scen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen02. speaker driven travelling wave")

	// speaker at the left end, transparent right end, started on the exact
	// travelling wave; the solution must stay close to it
	sim := newTestSim(200, "speaker", "transparent", 6, 0.5/343.0, 0)
	m, err := NewMainFromSim(sim, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMainFromSim failed:\n%v", err)
		return
	}
	defer m.Dom.Clean()

	if err = m.Run(nil); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	e := m.FinalError()
	io.Pforan("final error = %g %%\n", e)
	if e < 0 || e > 5.0 {
		tst.Errorf("final error is too large. e=%g %%", e)
	}
}

func Test_scen03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen03. pulse against the method of images")

	// rigid-rigid fluid with the triangle pulse; moderate accuracy because
	// of the kink in the profile
	sim := newTestSim(200, "rigid", "rigid", 3, 0.5/343.0, 0)
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
	if nrecords != sv.NumSteps+1 {
		tst.Errorf("records and steps are inconsistent: %d != %d", nrecords, sv.NumSteps+1)
		return
	}
	e := m.FinalError()
	io.Pforan("final error = %g %%\n", e)
	if e < 0 || e > 15.0 {
		tst.Errorf("final error is too large. e=%g %%", e)
	}
}
