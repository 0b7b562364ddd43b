// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gowave
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `json:"name"`      // "mumps" or "umfpack"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Timing    bool   `json:"timing"`    // show timing statistics
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
}

// SolverData holds time integration solver data
type SolverData struct {
	Type  string  `json:"type"`  // time integration solver type; e.g. "newmark"
	Beta  float64 `json:"beta"`  // Newmark's β coefficient
	Gamma float64 `json:"gamma"` // Newmark's γ coefficient
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "newmark"
	o.Beta = 0.25
	o.Gamma = 0.5
}

// FluidData holds the propagation medium data
type FluidData struct {
	Rho float64 `json:"rho"` // mass density of fluid; e.g. air: 1.21 kg/m³
	Vel float64 `json:"vel"` // speed of sound in fluid; e.g. air: 343 m/s
}

// SetDefault sets default values (air at 20°C)
func (o *FluidData) SetDefault() {
	o.Rho = 1.21
	o.Vel = 343.0
}

// PorousData holds the rigid porous layer data. When Active, the stiffness is
// scaled by 1/(φ·γp) and a volumetric damping σ·(mass matrix) is added
type PorousData struct {
	Active bool    `json:"active"` // porous layer is active
	Phi    float64 `json:"phi"`    // porosity φ
	GamP   float64 `json:"gamp"`   // specific heat ratio γp
	Sig    float64 `json:"sig"`    // flux resistivity σ
}

// SetDefault sets default values
func (o *PorousData) SetDefault() {
	o.Phi = 1.0
	o.GamP = 1.0
}

// DomData holds the spatial domain data
type DomData struct {
	L0   float64 `json:"l0"`   // left limit
	L1   float64 `json:"l1"`   // right limit
	Nele int     `json:"nele"` // number of cells
}

// BcsData holds the boundary condition kinds at both ends.
// Valid kinds are "rigid", "transparent" and "speaker" (non-homogeneous
// Dirichlet u = cos(ω·t); left end only)
type BcsData struct {
	Left  string  `json:"left"`  // kind at x=L0
	Right string  `json:"right"` // kind at x=L1
	Omega float64 `json:"omega"` // speaker frequency ω; 0 => 6.5·π·Vel
}

// SetDefault sets default values
func (o *BcsData) SetDefault() {
	o.Left = "rigid"
	o.Right = "rigid"
}

// IniData selects the initial displacement profile:
//
//	1 -- parabolic cap (narrow)
//	2 -- C∞ bump (narrow)
//	3 -- triangle (wide)
//	4 -- exponential bump (wide)
//	6 -- harmonic standing wave (for speaker-driven runs)
type IniData struct {
	Type int `json:"type"` // profile type
}

// TimeData holds the time loop data
type TimeData struct {
	Tini float64 `json:"tini"` // initial time
	Tf   float64 `json:"tf"`   // final time
	Dt   float64 `json:"dt"`   // time step size; 0 => h/Vel (CFL line)
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // global data
	Fluid  FluidData  `json:"fluid"`  // fluid data
	Porous PorousData `json:"porous"` // porous layer data
	Dom    DomData    `json:"dom"`    // spatial domain
	Bcs    BcsData    `json:"bcs"`    // boundary conditions
	Ini    IniData    `json:"ini"`    // initial condition
	Time   TimeData   `json:"time"`   // time loop
	LinSol LinSolData `json:"linsol"` // linear solver data
	Solver SolverData `json:"solver"` // time integration solver data

	// derived
	DirOut string // directory to save results
	Key    string // simulation key; e.g. mysim01.sim => mysim01
}

// SetDefault sets default values on all sub-structures
func (o *Simulation) SetDefault() {
	o.Fluid.SetDefault()
	o.Porous.SetDefault()
	o.Bcs.SetDefault()
	o.LinSol.SetDefault()
	o.Solver.SetDefault()
	o.Ini.Type = 2
}

// PostProcess computes derived quantities after reading/building a Simulation
func (o *Simulation) PostProcess() {
	if o.Bcs.Omega == 0 {
		o.Bcs.Omega = 6.5 * math.Pi * o.Fluid.Vel
	}
	if o.Time.Dt == 0 && o.Dom.Nele > 0 {
		h := (o.Dom.L1 - o.Dom.L0) / float64(o.Dom.Nele)
		o.Time.Dt = h / o.Fluid.Vel
	}
}

// Check returns an error if the input data is inconsistent
func (o *Simulation) Check() (err error) {
	if o.Fluid.Rho <= 0 || o.Fluid.Vel <= 0 {
		return chk.Err("fluid data is invalid: rho=%g and vel=%g must be positive", o.Fluid.Rho, o.Fluid.Vel)
	}
	if o.Porous.Active {
		if o.Porous.Phi <= 0 || o.Porous.Phi > 1 {
			return chk.Err("porosity must be within (0,1]. phi=%g is invalid", o.Porous.Phi)
		}
		if o.Porous.GamP <= 0 {
			return chk.Err("specific heat ratio must be positive. gamp=%g is invalid", o.Porous.GamP)
		}
		if o.Porous.Sig < 0 {
			return chk.Err("flux resistivity cannot be negative. sig=%g is invalid", o.Porous.Sig)
		}
	}
	if o.Dom.Nele < 1 {
		return chk.Err("number of cells must be at least 1. nele=%d is invalid", o.Dom.Nele)
	}
	if o.Dom.L1 <= o.Dom.L0 {
		return chk.Err("domain limits are invalid: L0=%g must be smaller than L1=%g", o.Dom.L0, o.Dom.L1)
	}
	for _, kind := range []string{o.Bcs.Left, o.Bcs.Right} {
		switch kind {
		case "rigid", "transparent", "speaker":
		default:
			return chk.Err("boundary condition kind %q is invalid. options are \"rigid\", \"transparent\" and \"speaker\"", kind)
		}
	}
	if o.Bcs.Right == "speaker" {
		return chk.Err("speaker boundary condition is only available at the left end (x=L0)")
	}
	switch o.Ini.Type {
	case 1, 2, 3, 4, 6:
	default:
		return chk.Err("initial condition type %d is invalid. options are 1, 2, 3, 4 and 6", o.Ini.Type)
	}
	if o.Ini.Type == 6 && o.Bcs.Left != "speaker" {
		return chk.Err("initial condition type 6 (harmonic) requires the speaker boundary condition at the left end")
	}
	if o.Time.Dt <= 0 {
		return chk.Err("time step size must be positive. dt=%g is invalid", o.Time.Dt)
	}
	if o.Time.Tf <= o.Time.Tini {
		return chk.Err("final time tf=%g must be greater than initial time tini=%g", o.Time.Tf, o.Time.Tini)
	}
	if o.Solver.Beta <= 0 || o.Solver.Beta > 0.5 {
		return chk.Err("Newmark's β coefficient must be within (0, 0.5]. beta=%g is invalid", o.Solver.Beta)
	}
	if o.Solver.Gamma < 0.5 || o.Solver.Gamma > 1 {
		return chk.Err("Newmark's γ coefficient must be within [0.5, 1]. gamma=%g is invalid", o.Solver.Gamma)
	}
	return
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gowave/" + o.Key
	}

	// derived quantities and consistency check
	o.PostProcess()
	if err = o.Check(); err != nil {
		chk.Panic("ReadSim: simulation file %q has inconsistent data:\n%v", simfilepath, err)
	}

	// create directory for output
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}
	return &o
}
