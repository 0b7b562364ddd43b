// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Vert holds a mesh vertex
type Vert struct {
	Id int     // vertex id == equation number (one pressure dof per node)
	X  float64 // coordinate
}

// Cell holds a 1D linear (P1) cell defined by two vertices
type Cell struct {
	Id    int    // cell id
	Verts [2]int // ids of vertices; Verts[0] < Verts[1]
}

// Mesh holds a 1D interval mesh with uniform spacing
type Mesh struct {
	L0, L1 float64 // limits of interval
	H      float64 // spacing = (L1-L0)/ncells
	Verts  []*Vert // vertices, sorted by coordinate
	Cells  []*Cell // cells
}

// NewIntervalMesh generates a uniform mesh of nele linear cells in [l0, l1]
func NewIntervalMesh(nele int, l0, l1 float64) (o *Mesh, err error) {
	if nele < 1 {
		err = chk.Err("number of cells must be at least 1. nele=%d is invalid", nele)
		return
	}
	if l1 <= l0 {
		err = chk.Err("interval limits are invalid: L0=%g must be smaller than L1=%g", l0, l1)
		return
	}
	o = new(Mesh)
	o.L0, o.L1 = l0, l1
	o.H = (l1 - l0) / float64(nele)
	xx := utl.LinSpace(l0, l1, nele+1)
	o.Verts = make([]*Vert, nele+1)
	for i, x := range xx {
		o.Verts[i] = &Vert{Id: i, X: x}
	}
	o.Cells = make([]*Cell, nele)
	for i := 0; i < nele; i++ {
		o.Cells[i] = &Cell{Id: i, Verts: [2]int{i, i + 1}}
	}
	return
}

// Nverts returns the number of vertices == number of equations
func (o *Mesh) Nverts() int {
	return len(o.Verts)
}

// Coords returns the vertex coordinates as a new slice
func (o *Mesh) Coords() (xx []float64) {
	xx = make([]float64, len(o.Verts))
	for i, v := range o.Verts {
		xx[i] = v.X
	}
	return
}
