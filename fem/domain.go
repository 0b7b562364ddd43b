// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/maprieto/gowave/ele"
	"github.com/maprieto/gowave/inp"
)

// damper holds one point damper (transparent boundary) added to C
type damper struct {
	eq  int     // equation number of end node
	val float64 // damping value ρ·c/√(φ·γp)
}

// Domain holds the mesh, the elements, the global matrices and the solution
// state of one simulation
type Domain struct {

	// init
	Sim    *inp.Simulation // input data
	Msh    *inp.Mesh       // mesh data
	LinSol la.LinSol       // linear solver holding the factorised effective matrix
	Force  Fcn             // external forcing f(t,x); may be nil

	// elements and constraints
	Elems    []ele.Elem // all elements
	EssenBcs EssenBcs   // essential boundary conditions
	dampers  []damper   // point dampers at transparent ends

	// dimensions
	Ny int // total number of equations (one per vertex)

	// global matrices. The triplets are assembly scratch; after AssembleMCK
	// the compressed-column forms Mm, Cm and Km drive all stepping, thus
	// mutating the triplets does not affect subsequent steps
	Mt, Ct, Kt, At *la.Triplet
	Mm, Cm, Km     *la.CCMatrix

	// solution and workspace
	Sol      *ele.Solution // solution state
	Fext     []float64     // sampled external force
	Fb       []float64     // right-hand side vector
	Wb       []float64     // workspace
	InitLSol bool          // linear solver needs initialisation prior to factorisation

	// statistics
	NnzA int // number of nonzeros reserved for the effective matrix
}

// NewDomain builds the domain: mesh, elements, boundary conditions, M, C and K
// matrices and the initial state {y0, v0}. u0 and v0 sample the initial
// displacement and velocity profiles (nil means zero); force is the external
// forcing (nil means zero)
func NewDomain(sim *inp.Simulation, u0, v0, force Fcn) (o *Domain, err error) {

	// check input
	if err = sim.Check(); err != nil {
		return nil, chk.Err("cannot create domain:\n%v", err)
	}

	// mesh
	o = new(Domain)
	o.Sim = sim
	o.Force = force
	o.Msh, err = inp.NewIntervalMesh(sim.Dom.Nele, sim.Dom.L0, sim.Dom.L1)
	if err != nil {
		return nil, chk.Err("cannot generate mesh:\n%v", err)
	}
	o.Ny = o.Msh.Nverts()

	// medium properties. A plain fluid is the porous particular case with
	// φ=1, γp=1 and σ=0
	ρ, vel := sim.Fluid.Rho, sim.Fluid.Vel
	φ, γp, σ := 1.0, 1.0, 0.0
	if sim.Porous.Active {
		φ, γp, σ = sim.Porous.Phi, sim.Porous.GamP, sim.Porous.Sig
	}

	// elements
	o.Elems = make([]ele.Elem, len(o.Msh.Cells))
	for i, c := range o.Msh.Cells {
		o.Elems[i], err = ele.NewAcousticP1(c.Id, c.Verts, o.Msh.H, ρ, vel, φ, γp, σ)
		if err != nil {
			return nil, chk.Err("cannot allocate element %d:\n%v", c.Id, err)
		}
	}

	// boundary conditions
	o.EssenBcs.Init(o.Ny)
	cdamp := ρ * vel / math.Sqrt(φ*γp)
	ω := sim.Bcs.Omega
	switch sim.Bcs.Left {
	case "rigid":
		err = o.EssenBcs.Set(0, sim.Dom.L0, Zero)
	case "speaker":
		err = o.EssenBcs.Set(0, sim.Dom.L0, func(t, x float64) float64 { return math.Cos(ω * t) })
	case "transparent":
		o.dampers = append(o.dampers, damper{0, cdamp})
	}
	if err != nil {
		return nil, err
	}
	switch sim.Bcs.Right {
	case "rigid":
		err = o.EssenBcs.Set(o.Ny-1, sim.Dom.L1, Zero)
	case "transparent":
		o.dampers = append(o.dampers, damper{o.Ny - 1, cdamp})
	}
	if err != nil {
		return nil, err
	}

	// solution and workspace
	o.Sol = new(ele.Solution)
	o.Sol.Allocate(o.Ny)
	o.Sol.T = sim.Time.Tini
	for i, v := range o.Msh.Verts {
		if u0 != nil {
			o.Sol.Y[i] = u0(sim.Time.Tini, v.X)
		}
		if v0 != nil {
			o.Sol.Dydt[i] = v0(sim.Time.Tini, v.X)
		}
	}
	o.Fext = make([]float64, o.Ny)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)

	// global matrices
	o.AssembleMCK()

	// linear solver
	o.LinSol = la.GetSolver(sim.LinSol.Name)
	o.InitLSol = true
	return
}

// AssembleMCK assembles the global mass, damping and stiffness matrices and
// captures their compressed-column forms
func (o *Domain) AssembleMCK() {
	nnz := 4 * len(o.Elems)
	o.Mt, o.Ct, o.Kt = new(la.Triplet), new(la.Triplet), new(la.Triplet)
	o.Mt.Init(o.Ny, o.Ny, nnz)
	o.Ct.Init(o.Ny, o.Ny, nnz+2)
	o.Kt.Init(o.Ny, o.Ny, nnz)
	for _, e := range o.Elems {
		e.AddToM(o.Mt)
		e.AddToC(o.Ct)
		e.AddToK(o.Kt)
	}
	for _, d := range o.dampers {
		o.Ct.Put(d.eq, d.eq, d.val)
	}
	o.Mm = o.Mt.ToMatrix(nil)
	o.Cm = o.Ct.ToMatrix(nil)
	o.Km = o.Kt.ToMatrix(nil)
}

// BuildEffective assembles the Dirichlet-eliminated effective matrix
//
//	A = K + α1·M + α4·C
//
// into the At triplet and captures the column couplings of the constrained
// equations. It does not factorise; see SolverNewmark.Assemble
func (o *Domain) BuildEffective(dc *ele.DynCoefs) {
	α1, α4 := dc.GetAlp1(), dc.GetAlp4()
	nbc := len(o.EssenBcs.Eqs)
	o.NnzA = 4*len(o.Elems) + 2 + nbc
	if o.At == nil {
		o.At = new(la.Triplet)
		o.At.Init(o.Ny, o.Ny, o.NnzA)
	} else {
		o.At.Start()
	}
	o.EssenBcs.StartCb(2*nbc + 2)
	for _, e := range o.Elems {
		e.AddToA(o.At, o.EssenBcs.Cb, α1, α4, o.EssenBcs.Flags)
	}
	for _, d := range o.dampers {
		o.At.Put(d.eq, d.eq, α4*d.val)
	}
	for _, eq := range o.EssenBcs.Eqs {
		o.At.Put(eq, eq, 1)
	}
	o.EssenBcs.Build()
}

// SampleForce evaluates the external forcing @ time t over all nodes
func (o *Domain) SampleForce(t float64) {
	if o.Force == nil {
		la.VecFill(o.Fext, 0)
		return
	}
	for i, v := range o.Msh.Verts {
		o.Fext[i] = o.Force(t, v.X)
	}
}

// Energy returns the discrete mechanical energy of the current state
//
//	E = ½·(vᵀ·M·v + yᵀ·K·y)
func (o *Domain) Energy() (E float64) {
	la.SpMatVecMul(o.Wb, 1, o.Mm, o.Sol.Dydt)
	la.SpMatVecMul(o.Fb, 1, o.Km, o.Sol.Y)
	for i := 0; i < o.Ny; i++ {
		E += 0.5 * (o.Sol.Dydt[i]*o.Wb[i] + o.Sol.Y[i]*o.Fb[i])
	}
	return
}

// Clean releases the memory held by the linear solver
func (o *Domain) Clean() {
	o.LinSol.Free()
}
