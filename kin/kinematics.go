// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kin implements kinematics of finite deformations: construction of
// deformation-gradient tensors from stretch/shear data and the strain
// measures derived from them
package kin

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// UniaxialF builds the deformation gradient of an isochoric uniaxial
// extension with stretch λ along the first axis:
//  F = diag(λ, 1/√λ, 1/√λ)
func UniaxialF(λ float64) (F [][]float64, err error) {
	if λ <= 0 {
		err = chk.Err("kin: uniaxial stretch must be positive. λ=%g is invalid", λ)
		return
	}
	F = la.MatAlloc(3, 3)
	F[0][0] = λ
	F[1][1] = 1.0 / math.Sqrt(λ)
	F[2][2] = F[1][1]
	return
}

// BiaxialF builds the deformation gradient of an isochoric biaxial (planar)
// deformation with given in-plane components. The out-of-plane stretch is
// computed so that det(F) = 1. The in-plane determinant must be positive:
// a zero determinant leaves no out-of-plane stretch satisfying det(F) = 1,
// and a negative one would describe an orientation-reversing deformation
func BiaxialF(f11, f12, f21, f22 float64) (F [][]float64, err error) {
	det := f11*f22 - f12*f21
	if det <= 0 {
		err = chk.Err("kin: in-plane determinant must be positive. F11*F22-F12*F21=%g is invalid", det)
		return
	}
	F = la.MatAlloc(3, 3)
	F[0][0], F[0][1] = f11, f12
	F[1][0], F[1][1] = f21, f22
	F[2][2] = 1.0 / det
	return
}

// ShearF builds the deformation gradient of a simple shear with amount γ in
// the 1-2 plane:
//  F = I + γ e1⊗e2
func ShearF(γ float64) (F [][]float64) {
	F = la.MatAlloc(3, 3)
	F[0][0], F[1][1], F[2][2] = 1, 1, 1
	F[0][1] = γ
	return
}

// UniaxialHist builds a deformation-gradient history from a series of
// uniaxial stretches
func UniaxialHist(λ []float64) (F [][][]float64, err error) {
	F = make([][][]float64, len(λ))
	for i, l := range λ {
		F[i], err = UniaxialF(l)
		if err != nil {
			return
		}
	}
	return
}

// BiaxialHist builds a deformation-gradient history from series of in-plane
// components. All series must have the same length
func BiaxialHist(f11, f12, f21, f22 []float64) (F [][][]float64, err error) {
	n := len(f11)
	if len(f12) != n || len(f21) != n || len(f22) != n {
		err = chk.Err("kin: component series must have equal lengths. %d, %d, %d, %d are invalid", n, len(f12), len(f21), len(f22))
		return
	}
	F = make([][][]float64, n)
	for i := 0; i < n; i++ {
		F[i], err = BiaxialF(f11[i], f12[i], f21[i], f22[i])
		if err != nil {
			return
		}
	}
	return
}

// ShearHist builds a deformation-gradient history from a series of shear
// amounts
func ShearHist(γ []float64) (F [][][]float64) {
	F = make([][][]float64, len(γ))
	for i, g := range γ {
		F[i] = ShearF(g)
	}
	return
}

// RightCauchyGreen computes the right Cauchy-Green tensor C = Fᵀ·F
func RightCauchyGreen(C, F [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = F[0][i]*F[0][j] + F[1][i]*F[1][j] + F[2][i]*F[2][j]
		}
	}
}

// LeftCauchyGreen computes the left Cauchy-Green tensor b = F·Fᵀ
func LeftCauchyGreen(B, F [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B[i][j] = F[i][0]*F[j][0] + F[i][1]*F[j][1] + F[i][2]*F[j][2]
		}
	}
}

// GreenLagrange computes the Green-Lagrange strain tensor E = (C - I)/2
func GreenLagrange(E, F [][]float64) {
	RightCauchyGreen(E, F)
	E[0][0] -= 1
	E[1][1] -= 1
	E[2][2] -= 1
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			E[i][j] *= 0.5
		}
	}
}

// Det computes the determinant of a 3x3 tensor
func Det(A [][]float64) float64 {
	return A[0][0]*(A[1][1]*A[2][2]-A[1][2]*A[2][1]) -
		A[0][1]*(A[1][0]*A[2][2]-A[1][2]*A[2][0]) +
		A[0][2]*(A[1][0]*A[2][1]-A[1][1]*A[2][0])
}

// Inv computes the inverse of a 3x3 tensor and returns its determinant.
// Singularity is detected relative to the magnitude of the entries, so
// uniformly scaled tensors invert at any scale
func Inv(Ai, A [][]float64) (det float64, err error) {
	det = Det(A)
	var amax float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a := math.Abs(A[i][j]); a > amax {
				amax = a
			}
		}
	}
	if math.Abs(det) <= 1e-14*amax*amax*amax {
		err = chk.Err("kin: cannot invert singular tensor. det=%g", det)
		return
	}
	Ai[0][0] = (A[1][1]*A[2][2] - A[1][2]*A[2][1]) / det
	Ai[0][1] = (A[0][2]*A[2][1] - A[0][1]*A[2][2]) / det
	Ai[0][2] = (A[0][1]*A[1][2] - A[0][2]*A[1][1]) / det
	Ai[1][0] = (A[1][2]*A[2][0] - A[1][0]*A[2][2]) / det
	Ai[1][1] = (A[0][0]*A[2][2] - A[0][2]*A[2][0]) / det
	Ai[1][2] = (A[0][2]*A[1][0] - A[0][0]*A[1][2]) / det
	Ai[2][0] = (A[1][0]*A[2][1] - A[1][1]*A[2][0]) / det
	Ai[2][1] = (A[0][1]*A[2][0] - A[0][0]*A[2][1]) / det
	Ai[2][2] = (A[0][0]*A[1][1] - A[0][1]*A[1][0]) / det
	return
}
