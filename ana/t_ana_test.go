// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	chk.Verbose = true
}

func Test_poly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly01. polynomial evaluation")

	time := utl.LinSpace(0, 2, 5)
	f := Polynomial([]float64{1, 0.5}, time) // t + t²/2
	for i, t := range time {
		chk.Scalar(tst, "f", 1e-14, f[i], t+t*t/2.0)
	}
}

func Test_poly02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly02. analytical Caputo derivative")

	α := 0.5
	time := utl.LinSpace(0, 2, 5)

	// D^0.5 of t: Γ(2)/Γ(1.5)·t^0.5 = 2·√(t/π)
	d, err := PolynomialCaputo(α, []float64{1}, time)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for i, t := range time {
		chk.Scalar(tst, "D^α t", 1e-14, d[i], 2.0*math.Sqrt(t/math.Pi))
	}

	// invalid order
	_, err = PolynomialCaputo(1.0, []float64{1}, time)
	if err == nil {
		tst.Errorf("test failed: error expected for α=1\n")
		return
	}
}
