// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/maprieto/gowave/fem"
)

// SaveFinal writes the final recorded state to dirout/fnkey.csv with one row
// per node and columns x, u, v, a and, when a reference solution is given,
// uref sampled @ the final time
func SaveFinal(dom *fem.Domain, series *Series, ref fem.Fcn, dirout, fnkey string) (err error) {
	n := series.Nrecords()
	if n < 1 {
		return chk.Err("there are no recorded states to save")
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory %q: %v", dirout, err)
	}
	f, err := os.Create(filepath.Join(dirout, fnkey+".csv"))
	if err != nil {
		return chk.Err("cannot create results file: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	header := []string{"x", "u", "v", "a"}
	if ref != nil {
		header = append(header, "uref")
	}
	if err = w.Write(header); err != nil {
		return chk.Err("cannot write results file: %v", err)
	}
	t := series.Times[n-1]
	for i, v := range dom.Msh.Verts {
		row := []string{
			io.Sf("%23.15e", v.X),
			io.Sf("%23.15e", series.Y[n-1][i]),
			io.Sf("%23.15e", series.V[n-1][i]),
			io.Sf("%23.15e", series.A[n-1][i]),
		}
		if ref != nil {
			row = append(row, io.Sf("%23.15e", ref(t, v.X)))
		}
		if err = w.Write(row); err != nil {
			return chk.Err("cannot write results file: %v", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ErrorLog accumulates the results of convergence studies
type ErrorLog struct {
	H   []float64 // cell sizes
	Dt  []float64 // step sizes
	Err []float64 // percentual errors
}

// Add appends one result
func (o *ErrorLog) Add(h, dt, e float64) {
	o.H = append(o.H, h)
	o.Dt = append(o.Dt, dt)
	o.Err = append(o.Err, e)
}

// Save writes the log to dirout/fnkey_errorLog.csv with columns h, dt, error
func (o *ErrorLog) Save(dirout, fnkey string) (err error) {
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory %q: %v", dirout, err)
	}
	f, err := os.Create(filepath.Join(dirout, fnkey+"_errorLog.csv"))
	if err != nil {
		return chk.Err("cannot create error log file: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write([]string{"h", "dt", "error"}); err != nil {
		return chk.Err("cannot write error log file: %v", err)
	}
	for i := range o.Err {
		row := []string{
			io.Sf("%g", o.H[i]),
			io.Sf("%g", o.Dt[i]),
			io.Sf("%g", o.Err[i]),
		}
		if err = w.Write(row); err != nil {
			return chk.Err("cannot write error log file: %v", err)
		}
	}
	w.Flush()
	return w.Error()
}
