// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_dyncoefs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dyncoefs01. Newmark coefficients")

	var dc DynCoefs
	err := dc.Init(0.25, 0.6, 0.1)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "α1", 1e-15, dc.GetAlp1(), 400.0)
	chk.Scalar(tst, "α2", 1e-15, dc.GetAlp2(), 40.0)
	chk.Scalar(tst, "α3", 1e-15, dc.GetAlp3(), 1.0)
	chk.Scalar(tst, "α4", 1e-15, dc.GetAlp4(), 24.0)
	chk.Scalar(tst, "α5", 1e-15, dc.GetAlp5(), 1.4)
	chk.Scalar(tst, "α6", 1e-15, dc.GetAlp6(), 0.02)
	chk.Scalar(tst, "Δt", 1e-15, dc.GetDt(), 0.1)
}

func Test_dyncoefs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dyncoefs02. invalid input")

	var dc DynCoefs
	for _, in := range [][]float64{
		{0, 0.5, 0.1},    // β too small
		{0.6, 0.5, 0.1},  // β too large
		{0.25, 0.4, 0.1}, // γ too small
		{0.25, 1.1, 0.1}, // γ too large
		{0.25, 0.5, 0},   // Δt not positive
	} {
		if err := dc.Init(in[0], in[1], in[2]); err == nil {
			tst.Errorf("Init(%v) should have failed", in)
			return
		} else {
			io.Pforan("OK. error = %v\n", err)
		}
	}
}

func Test_solution01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solution01. allocate and reset")

	var sol Solution
	sol.Allocate(3)
	sol.T = 1.5
	sol.Y[1] = 2
	sol.Dydt[2] = 3
	sol.D2ydt2[0] = 4
	sol.Zet[0] = 5
	sol.Chi[1] = 6
	sol.Reset()
	chk.Scalar(tst, "T", 1e-15, sol.T, 0)
	chk.Vector(tst, "Y", 1e-15, sol.Y, []float64{0, 0, 0})
	chk.Vector(tst, "Dydt", 1e-15, sol.Dydt, []float64{0, 0, 0})
	chk.Vector(tst, "D2ydt2", 1e-15, sol.D2ydt2, []float64{0, 0, 0})
	chk.Vector(tst, "Zet", 1e-15, sol.Zet, []float64{0, 0, 0})
	chk.Vector(tst, "Chi", 1e-15, sol.Chi, []float64{0, 0, 0})
}

func Test_acoustic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("acoustic01. local matrices of one P1 cell")

	// one cell: h=0.5, ρ=2, c=3, fluid with volumetric damping σ=0.5
	e, err := NewAcousticP1(0, [2]int{0, 1}, 0.5, 2.0, 3.0, 1.0, 1.0, 0.5)
	if err != nil {
		tst.Errorf("NewAcousticP1 failed:\n%v", err)
		return
	}

	// assemble 2x2 globals
	var mt, ct, kt la.Triplet
	mt.Init(2, 2, 4)
	ct.Init(2, 2, 4)
	kt.Init(2, 2, 4)
	e.AddToM(&mt)
	e.AddToC(&ct)
	e.AddToK(&kt)
	mm := mt.ToMatrix(nil)
	cm := ct.ToMatrix(nil)
	km := kt.ToMatrix(nil)

	// M·[1 1] must give ρ·h/2 per node
	ones := []float64{1, 1}
	res := make([]float64, 2)
	la.SpMatVecMul(res, 1, mm, ones)
	chk.Vector(tst, "M·1", 1e-15, res, []float64{0.5, 0.5})

	// C·[1 1] must give σ·h/2 per node
	la.SpMatVecMul(res, 1, cm, ones)
	chk.Vector(tst, "C·1", 1e-15, res, []float64{0.125, 0.125})

	// K annihilates constants and maps coordinates to ∓κ at the ends
	la.SpMatVecMul(res, 1, km, ones)
	chk.Vector(tst, "K·1", 1e-15, res, []float64{0, 0})
	xx := []float64{0, 0.5}
	la.SpMatVecMul(res, 1, km, xx)
	κ := 2.0 * 3.0 * 3.0
	chk.Vector(tst, "K·x", 1e-13, res, []float64{-κ, κ})
}

func Test_acoustic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("acoustic02. effective matrix with constrained column")

	e, err := NewAcousticP1(0, [2]int{0, 1}, 0.5, 2.0, 3.0, 1.0, 1.0, 0.0)
	if err != nil {
		tst.Errorf("NewAcousticP1 failed:\n%v", err)
		return
	}

	// node 0 constrained: row 0 skipped, entry (1,0) goes to couplings
	var at, cb la.Triplet
	at.Init(2, 2, 4)
	cb.Init(2, 2, 4)
	α1, α4 := 400.0, 20.0
	e.AddToA(&at, &cb, α1, α4, []bool{true, false})
	if at.Len() != 1 {
		tst.Errorf("A must have exactly 1 entry. Len=%d", at.Len())
		return
	}
	if cb.Len() != 1 {
		tst.Errorf("couplings must have exactly 1 entry. Len=%d", cb.Len())
		return
	}

	// value at (1,1): k11 + α1·m11 = κ/h + α1·ρ·h·2/6
	am := at.ToMatrix(nil)
	res := make([]float64, 2)
	la.SpMatVecMul(res, 1, am, []float64{0, 1})
	chk.Scalar(tst, "A11", 1e-13, res[1], 18.0/0.5+400.0*2.0*0.5/3.0)
}
