// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	chk.Verbose = true
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. subplot accumulation")

	Reset()
	x := utl.LinSpace(0, 1, 11)
	y := utl.LinSpace(0, 2, 11)

	Splot("first")
	Plot(x, y, "a", &plt.A{C: "b"})
	Plot(x, x, "b", &plt.A{C: "r", Ls: "--"})
	SplotConfig("$t$", "$\\lambda$")

	Splot("second")
	Plot(x, y, "c", &plt.A{C: "k"})

	chk.IntAssert(len(Splots), 2)
	chk.IntAssert(len(Splots[0].Data), 2)
	chk.IntAssert(len(Splots[1].Data), 1)
	chk.StrAssert(Splots[0].Xlbl, "$t$")
	chk.StrAssert(Splots[0].Data[1].Label, "b")

	// tensor history
	n := 11
	A := make([][][]float64, n)
	for i := 0; i < n; i++ {
		A[i] = [][]float64{
			{float64(i), 0.1, 0},
			{0.1, 2, 0},
			{0, 0, 3},
		}
	}
	Splot("tensor")
	Tensor(x, A, "S", true)
	chk.IntAssert(len(Csplot.Data), 6)
	chk.Scalar(tst, "S11 series", 1e-15, Csplot.Data[0].Y[10], 10)
	chk.Scalar(tst, "S12 series", 1e-15, Csplot.Data[3].Y[0], 0.1)

	// drawing is skipped unless verbose
	if chk.Verbose {
		plt.Reset(true, &plt.A{Eps: true, Prop: 1.2, WidthPt: 455})
		err := Draw("/tmp/summerschool", "test_plot01", false, nil)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
	}
	Reset()
}
