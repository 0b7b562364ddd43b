// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/maprieto/gowave/fem"
)

// PlotFinal plots the final recorded displacement and, when a reference
// solution is given, the reference profile. The figure is saved to
// dirout/fnkey.png
func PlotFinal(dom *fem.Domain, series *Series, ref fem.Fcn, dirout, fnkey string) {
	n := series.Nrecords()
	if n < 1 {
		return
	}
	xx := dom.Msh.Coords()
	t := series.Times[n-1]
	plt.Plot(xx, series.Y[n-1], io.Sf("'b-', label='u @ t=%g', clip_on=0", t))
	if ref != nil {
		uref := make([]float64, len(xx))
		for i, x := range xx {
			uref[i] = ref(t, x)
		}
		plt.Plot(xx, uref, "'r--', label='reference', clip_on=0")
	}
	plt.Gll("$x$", "$u$", "")
	plt.SaveD(dirout, fnkey+".png")
}

// PlotSnapshots plots nsel equally spaced recorded displacement snapshots.
// The figure is saved to dirout/fnkey_snaps.png
func PlotSnapshots(dom *fem.Domain, series *Series, nsel int, dirout, fnkey string) {
	n := series.Nrecords()
	if n < 1 || nsel < 1 {
		return
	}
	if nsel > n {
		nsel = n
	}
	xx := dom.Msh.Coords()
	for k := 0; k < nsel; k++ {
		idx := k * (n - 1) / nsel
		if k == nsel-1 {
			idx = n - 1
		}
		plt.Plot(xx, series.Y[idx], io.Sf("label='t=%.5f', clip_on=0", series.Times[idx]))
	}
	plt.Gll("$x$", "$u$", "")
	plt.SaveD(dirout, fnkey+"_snaps.png")
}
