// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gowave solves the 1D acoustic wave equation with linear finite elements and
// the implicit Newmark method
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/maprieto/gowave/fem"
	"github.com/maprieto/gowave/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGowave -- 1D acoustic wave equation with implicit Newmark time integration\n")
		io.Pf("Copyright 2018 The Gowave Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot results", "doplot", doplot,
		))
	}

	// allocate analysis
	analysis, err := fem.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("cannot allocate analysis:\n%v", err)
	}
	defer analysis.Dom.Clean()

	// run
	series := new(out.Series)
	err = analysis.Run(series.Collect())
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}

	// report
	sim := analysis.Sim
	if verbose {
		io.Pf("final time     = %g\n", analysis.Dom.Sol.T)
		io.Pf("recorded states = %d\n", series.Nrecords())
		if e := analysis.FinalError(); e >= 0 {
			io.Pf("final error    = %g %%\n", e)
		}
	}
	err = out.SaveFinal(analysis.Dom, series, analysis.Ref, sim.DirOut, fnkey)
	if err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}
	if verbose {
		io.Pf("results saved in %s\n", sim.DirOut)
	}

	// plot
	if doplot {
		out.PlotFinal(analysis.Dom, series, analysis.Ref, sim.DirOut, fnkey)
		out.PlotSnapshots(analysis.Dom, series, 6, sim.DirOut, fnkey)
	}
}
