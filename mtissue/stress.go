// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/willwiz/nordsletten-summer-school/kin"
)

// Pk1FromPk2 computes the first Piola-Kirchhoff stress P = F·S
func Pk1FromPk2(P, F, S [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			P[i][j] = F[i][0]*S[0][j] + F[i][1]*S[1][j] + F[i][2]*S[2][j]
		}
	}
}

// CauchyFromPk2 computes the Cauchy stress σ = F·S·Fᵀ/J
func CauchyFromPk2(σ, F, S [][]float64) (err error) {
	J := kin.Det(F)
	if J <= 0 {
		return chk.Err("mtissue: deformation gradient must have positive determinant. J=%g", J)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σ[i][j] = 0
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					σ[i][j] += F[i][k] * S[k][l] * F[j][l]
				}
			}
			σ[i][j] /= J
		}
	}
	return
}

// CauchyFromPk1 computes the Cauchy stress σ = P·Fᵀ/J
func CauchyFromPk1(σ, F, P [][]float64) (err error) {
	J := kin.Det(F)
	if J <= 0 {
		return chk.Err("mtissue: deformation gradient must have positive determinant. J=%g", J)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σ[i][j] = (P[i][0]*F[j][0] + P[i][1]*F[j][1] + P[i][2]*F[j][2]) / J
		}
	}
	return
}

// AddHydrostaticPressure adds the hydrostatic-pressure contribution to a
// second Piola-Kirchhoff stress:
//  S ← S - p·J·C⁻¹
// which corresponds to -p·I in the Cauchy stress (compression for p > 0)
func AddHydrostaticPressure(S [][]float64, p float64, F [][]float64) (err error) {
	c := la.MatAlloc(3, 3)
	ci := la.MatAlloc(3, 3)
	kin.RightCauchyGreen(c, F)
	_, err = kin.Inv(ci, c)
	if err != nil {
		return
	}
	J := kin.Det(F)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			S[i][j] -= p * J * ci[i][j]
		}
	}
	return
}
