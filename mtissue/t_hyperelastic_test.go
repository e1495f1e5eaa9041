// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"

	"github.com/willwiz/nordsletten-summer-school/kin"
)

func verbose() {
	chk.Verbose = true
}

// eye returns the 3x3 identity
func eye() (I [][]float64) {
	I = la.MatAlloc(3, 3)
	I[0][0], I[1][1], I[2][2] = 1, 1, 1
	return
}

// rotz returns a rotation about the third axis
func rotz(θ float64) (R [][]float64) {
	co, si := math.Cos(θ), math.Sin(θ)
	return [][]float64{
		{co, -si, 0},
		{si, co, 0},
		{0, 0, 1},
	}
}

// mmul computes A·B
func mmul(A, B [][]float64) (C [][]float64) {
	C = la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				C[i][j] += A[i][k] * B[k][j]
			}
		}
	}
	return
}

// tr returns the transpose of A
func tr(A [][]float64) (At [][]float64) {
	At = la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			At[i][j] = A[j][i]
		}
	}
	return
}

func Test_nh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nh01. neo-Hookean")

	m, err := New("nh")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = m.Init([]*dbf.P{
		&dbf.P{N: "mu", V: 10},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// S = μ·I regardless of F
	F, _ := kin.UniaxialF(1.4)
	S := la.MatAlloc(3, 3)
	err = m.Pk2(S, F)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Matrix(tst, "S", 1e-15, S, [][]float64{
		{10, 0, 0},
		{0, 10, 0},
		{0, 0, 10},
	})

	// unknown model and parameter names
	if _, err := New("bogus"); err == nil {
		tst.Errorf("test failed: error expected for unknown model\n")
		return
	}
	if err := m.Init([]*dbf.P{&dbf.P{N: "kappa", V: 1}}); err == nil {
		tst.Errorf("test failed: error expected for unknown parameter\n")
		return
	}
}

func Test_hyper01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyper01. stress at the reference configuration")

	I := eye()
	S := la.MatAlloc(3, 3)

	// Guccione: S(I) = μ·I
	gu, _ := New("guccione")
	err := gu.Init(gu.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	gu.Pk2(S, I)
	μ := 0.88
	chk.Matrix(tst, "guccione S(I)", 1e-14, S, [][]float64{
		{μ, 0, 0},
		{0, μ, 0},
		{0, 0, μ},
	})

	// Costa: S(I) = 0
	co, _ := New("costa")
	err = co.Init(co.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	co.Pk2(S, I)
	chk.Matrix(tst, "costa S(I)", 1e-15, S, la.MatAlloc(3, 3))

	// Holzapfel-Ogden: S(I) = kiso·I
	ho, _ := New("ho")
	err = ho.Init(ho.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ho.Pk2(S, I)
	chk.Matrix(tst, "ho S(I)", 1e-15, S, [][]float64{
		{0.4, 0, 0},
		{0, 0.4, 0},
		{0, 0, 0.4},
	})

	// Nordsletten: S(I) = 0
	no, _ := New("nordsletten")
	err = no.Init(no.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	no.Pk2(S, I)
	chk.Matrix(tst, "nordsletten S(I)", 1e-15, S, la.MatAlloc(3, 3))
}

func Test_hyper02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyper02. symmetry and rotation consistency")

	F := [][]float64{
		{1.2, 0.1, 0},
		{0.05, 0.9, 0},
		{0, 0, 1.02},
	}
	R := rotz(0.5)
	Fr := mmul(mmul(R, F), tr(R))
	vf := []float64{R[0][0], R[1][0], R[2][0]}
	vs := []float64{R[0][1], R[1][1], R[2][1]}

	S := la.MatAlloc(3, 3)
	Sr := la.MatAlloc(3, 3)

	for _, name := range []string{"guccione", "costa", "ho", "nordsletten"} {

		// reference fibers along the global axes
		m, err := New(name)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		err = m.Init(m.GetPrms())
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		err = m.Pk2(S, F)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				chk.Scalar(tst, name+" symmetry", 1e-13, S[i][j], S[j][i])
			}
		}

		// rotated fibers with rotated deformation: S' = R·S·Rᵀ
		mr, _ := New(name)
		mr.Init(mr.GetPrms())
		type fibered interface {
			SetFibers(vf, vs []float64) error
		}
		err = mr.(fibered).SetFibers(vf, vs)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		err = mr.Pk2(Sr, Fr)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Matrix(tst, name+" rotation", 1e-12, Sr, mmul(mmul(R, S), tr(R)))
	}

	// parallel fiber and sheet directions
	gu, _ := New("guccione")
	gu.Init(gu.GetPrms())
	err := gu.(*Guccione).SetFibers([]float64{1, 0, 0}, []float64{2, 0, 0})
	if err == nil {
		tst.Errorf("test failed: error expected for parallel fibers\n")
		return
	}
}

func Test_hyper03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyper03. composite superposition")

	nh1, _ := New("nh")
	nh1.Init([]*dbf.P{&dbf.P{N: "mu", V: 3}})
	gu, _ := New("guccione")
	gu.Init(gu.GetPrms())
	cp := NewComposite(nh1, gu)

	F, _ := kin.UniaxialF(1.25)
	S := la.MatAlloc(3, 3)
	Sa := la.MatAlloc(3, 3)
	Sb := la.MatAlloc(3, 3)
	err := cp.Pk2(S, F)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	nh1.Pk2(Sa, F)
	gu.Pk2(Sb, F)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "S comp", 1e-14, S[i][j], Sa[i][j]+Sb[i][j])
		}
	}
}
