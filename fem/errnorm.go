// Copyright 2018 The Gowave Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// ComputeError returns the percentual nodal error of the current solution
// against a reference solution sampled @ time t:
//
//	e = 100·‖y − yref‖ / ‖yref‖
//
// When the reference norm is exactly zero the metric is undefined and the
// sentinel −1 is returned instead
func ComputeError(dom *Domain, ref Fcn, t float64) (e float64) {
	yref := make([]float64, dom.Ny)
	for i, v := range dom.Msh.Verts {
		yref[i] = ref(t, v.X)
	}
	den := la.VecNorm(yref)
	if den == 0 {
		return -1
	}
	for i := 0; i < dom.Ny; i++ {
		yref[i] -= dom.Sol.Y[i]
	}
	return 100.0 * la.VecNorm(yref) / den
}
