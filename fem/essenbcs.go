// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// EssenBcs handles essential (Dirichlet) boundary conditions by symmetric
// elimination: constrained rows and columns are removed from the effective
// matrix, an identity entry is set on the diagonal, and the column couplings
// A[i,p] are captured in a separate matrix to correct the right-hand side:
//
//	b[i] -= A[i,p]·g[p](t)   for unconstrained i
//	b[p]  = g[p](t)          for constrained p
type EssenBcs struct {

	// input
	Ny    int       // number of equations
	Eqs   []int     // constrained equations
	Xs    []float64 // coordinates of constrained nodes
	Fcns  []Fcn     // prescribed value functions g(t,x)
	Flags []bool    // [Ny] equation is constrained

	// column couplings
	Cb *la.Triplet  // A[i,p] entries, filled during assembly of A
	cm *la.CCMatrix // captured couplings

	// workspace
	gvec []float64 // prescribed values scattered over all equations
	wvec []float64 // Cb·gvec
}

// Init initialises the structure for ny equations
func (o *EssenBcs) Init(ny int) {
	o.Ny = ny
	o.Flags = make([]bool, ny)
	o.gvec = make([]float64, ny)
	o.wvec = make([]float64, ny)
}

// Set adds one constraint: y[eq] = f(t, x)
func (o *EssenBcs) Set(eq int, x float64, f Fcn) (err error) {
	if eq < 0 || eq >= o.Ny {
		return chk.Err("equation number %d is out of range [0, %d)", eq, o.Ny)
	}
	if o.Flags[eq] {
		return chk.Err("equation %d is already constrained", eq)
	}
	o.Flags[eq] = true
	o.Eqs = append(o.Eqs, eq)
	o.Xs = append(o.Xs, x)
	o.Fcns = append(o.Fcns, f)
	return
}

// StartCb (re)starts the couplings triplet, prior to the assembly of A
func (o *EssenBcs) StartCb(nnz int) {
	if o.Cb == nil {
		o.Cb = new(la.Triplet)
		o.Cb.Init(o.Ny, o.Ny, nnz)
		return
	}
	o.Cb.Start()
}

// Build captures the couplings matrix after the assembly of A is complete
func (o *EssenBcs) Build() {
	if len(o.Eqs) == 0 {
		return
	}
	o.cm = o.Cb.ToMatrix(nil)
}

// ApplyToRhs modifies the right-hand side vector b with the prescribed values
// @ time t
func (o *EssenBcs) ApplyToRhs(b []float64, t float64) {
	if len(o.Eqs) == 0 {
		return
	}
	la.VecFill(o.gvec, 0)
	for k, eq := range o.Eqs {
		o.gvec[eq] = o.Fcns[k](t, o.Xs[k])
	}
	la.SpMatVecMul(o.wvec, 1, o.cm, o.gvec)
	for i := 0; i < o.Ny; i++ {
		b[i] -= o.wvec[i]
	}
	for _, eq := range o.Eqs {
		b[eq] = o.gvec[eq]
	}
}
