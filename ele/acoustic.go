// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// AcousticP1 implements a 1D linear (P1) element for the acoustic wave equation
//
//	ρ·ü − (ρc²/(φγp))·u″ + σ·u̇ = f
//
// over one cell [x0, x0+h]. The local matrices are
//
//	m = ρ·(h/6)·[2 1; 1 2]              mass
//	k = (ρc²/(φγp))·(1/h)·[1 -1; -1 1]  stiffness
//	c = σ·(h/6)·[2 1; 1 2]              volumetric damping (porous layer)
//
// A fluid cell is the particular case φ=1, γp=1, σ=0
type AcousticP1 struct {

	// input
	cid int    // cell id
	eqs [2]int // global equation numbers of the two nodes

	// local matrices
	mm, cc, kk [2][2]float64
}

// NewAcousticP1 returns a new element given the cell id, the equation numbers
// of its two nodes, the cell size h and the medium properties
func NewAcousticP1(cid int, eqs [2]int, h, ρ, vel, φ, γp, σ float64) (o *AcousticP1, err error) {
	if h <= 0 {
		err = chk.Err("cell size must be positive. h=%g is invalid", h)
		return
	}
	if ρ <= 0 || vel <= 0 || φ <= 0 || γp <= 0 {
		err = chk.Err("medium properties must be positive. ρ=%g, vel=%g, φ=%g, γp=%g", ρ, vel, φ, γp)
		return
	}
	o = new(AcousticP1)
	o.cid = cid
	o.eqs = eqs
	κ := ρ * vel * vel / (φ * γp)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			fac := 1.0 // consistent mass: 2 on diagonal, 1 off
			if i == j {
				fac = 2.0
			}
			o.mm[i][j] = ρ * h / 6.0 * fac
			o.cc[i][j] = σ * h / 6.0 * fac
		}
	}
	o.kk[0][0], o.kk[0][1] = κ/h, -κ/h
	o.kk[1][0], o.kk[1][1] = -κ/h, κ/h
	return
}

// Id returns the cell id
func (o *AcousticP1) Id() int { return o.cid }

// Eqs returns the global equation numbers
func (o *AcousticP1) Eqs() []int { return o.eqs[:] }

// AddToM adds the local mass matrix to the global M triplet
func (o *AcousticP1) AddToM(m *la.Triplet) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m.Put(o.eqs[i], o.eqs[j], o.mm[i][j])
		}
	}
}

// AddToC adds the local damping matrix to the global C triplet
func (o *AcousticP1) AddToC(c *la.Triplet) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			c.Put(o.eqs[i], o.eqs[j], o.cc[i][j])
		}
	}
}

// AddToK adds the local stiffness matrix to the global K triplet
func (o *AcousticP1) AddToK(k *la.Triplet) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			k.Put(o.eqs[i], o.eqs[j], o.kk[i][j])
		}
	}
}

// AddToA adds the local effective matrix to the global A triplet; see Elem
func (o *AcousticP1) AddToA(a, cb *la.Triplet, α1, α4 float64, constrained []bool) {
	for i := 0; i < 2; i++ {
		I := o.eqs[i]
		if constrained[I] {
			continue
		}
		for j := 0; j < 2; j++ {
			J := o.eqs[j]
			v := o.kk[i][j] + α1*o.mm[i][j] + α4*o.cc[i][j]
			if constrained[J] {
				cb.Put(I, J, v)
				continue
			}
			a.Put(I, J, v)
		}
	}
}
