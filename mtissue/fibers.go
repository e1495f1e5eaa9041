// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ChangeOfBasis builds the change-of-basis tensor of a fiber architecture.
// Its rows are the fiber direction f, the sheet direction s and the normal
// n = f×s/‖f×s‖. An error is returned when f and s are parallel
func ChangeOfBasis(vf, vs []float64) (Q [][]float64, err error) {
	vn := []float64{
		vf[1]*vs[2] - vf[2]*vs[1],
		vf[2]*vs[0] - vf[0]*vs[2],
		vf[0]*vs[1] - vf[1]*vs[0],
	}
	nrm := math.Sqrt(vn[0]*vn[0] + vn[1]*vn[1] + vn[2]*vn[2])
	if nrm <= 0 {
		err = chk.Err("mtissue: cross product of fiber and sheet directions is zero")
		return
	}
	Q = la.MatAlloc(3, 3)
	for j := 0; j < 3; j++ {
		Q[0][j] = vf[j]
		Q[1][j] = vs[j]
		Q[2][j] = vn[j] / nrm
	}
	return
}

// rotateIn maps a tensor to the material (fiber) frame: Am = Q·A·Qᵀ
func rotateIn(Am, Q, A [][]float64) {
	for i := 0; i < 3; i++ {
		for l := 0; l < 3; l++ {
			Am[i][l] = 0
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					Am[i][l] += Q[i][j] * A[j][k] * Q[l][k]
				}
			}
		}
	}
}

// rotateOut maps a tensor back to the reference frame: A = Qᵀ·Am·Q
func rotateOut(A, Q, Am [][]float64) {
	for i := 0; i < 3; i++ {
		for l := 0; l < 3; l++ {
			A[i][l] = 0
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					A[i][l] += Q[j][i] * Am[j][k] * Q[k][l]
				}
			}
		}
	}
}
