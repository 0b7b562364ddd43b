// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements the collection and saving of results
package out

import (
	"github.com/maprieto/gowave/ele"
	"github.com/maprieto/gowave/fem"
)

// Series holds the time series of solution states produced by the solver
type Series struct {
	Times []float64   // recorded times; Times[0] is the initial time
	Y     [][]float64 // displacement snapshots
	V     [][]float64 // velocity snapshots
	A     [][]float64 // acceleration snapshots
}

// Collect returns an output callback appending one snapshot per record
func (o *Series) Collect() fem.OutFcn {
	return func(step int, sol *ele.Solution) error {
		o.Times = append(o.Times, sol.T)
		o.Y = append(o.Y, cloneVec(sol.Y))
		o.V = append(o.V, cloneVec(sol.Dydt))
		o.A = append(o.A, cloneVec(sol.D2ydt2))
		return nil
	}
}

// Nrecords returns the number of recorded states
func (o *Series) Nrecords() int {
	return len(o.Times)
}

func cloneVec(v []float64) []float64 {
	w := make([]float64, len(v))
	copy(w, v)
	return w
}
