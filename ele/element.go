// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/la"
)

// Elem defines what all element types must implement
type Elem interface {

	// information
	Id() int    // returns the cell id
	Eqs() []int // returns the global equation numbers of the element nodes

	// adding to global matrices
	AddToM(m *la.Triplet) // adds local mass matrix to global M
	AddToC(c *la.Triplet) // adds local damping matrix to global C
	AddToK(k *la.Triplet) // adds local stiffness matrix to global K

	// AddToA adds the local effective matrix k + α1·m + α4·c to the global A.
	// Entries in rows of constrained equations are skipped (identity rows are
	// set elsewhere) and entries in columns of constrained equations go to the
	// couplings triplet cb instead, for later correction of the rhs
	AddToA(a, cb *la.Triplet, α1, α4 float64, constrained []bool)
}
