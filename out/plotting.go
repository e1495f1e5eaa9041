// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting facilities for quick inspection of
// stress/strain curves
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Label string    // curve label
	Style *plt.A    // style arguments; may be nil
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title string       // title of subplot
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Data  []*PltEntity // data and styles to be plotted
}

// global subplot collection
var (
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Reset clears all subplots
func Reset() {
	Splots = nil
	Csplot = nil
}

// Splot activates a new subplot window
func Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig sets the axes labels of the current subplot
func SplotConfig(xlbl, ylbl string) {
	if Csplot != nil {
		Csplot.Xlbl = xlbl
		Csplot.Ylbl = ylbl
	}
}

// Plot adds one curve to the current subplot
func Plot(x, y []float64, label string, args *plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if Csplot == nil {
		Splot("")
	}
	Csplot.Data = append(Csplot.Data, &PltEntity{X: x, Y: y, Label: label, Style: args})
}

// Tensor adds the six independent components of a symmetric-tensor history
// to the current subplot
//  x -- common horizontal values (e.g. time) [n]
//  A -- tensor history [n][3][3]
//  withShear -- include the off-diagonal components
func Tensor(x []float64, A [][][]float64, name string, withShear bool) {
	n := len(A)
	if len(x) != n {
		chk.Panic("lengths of x-series and tensor history are different. len(x)=%d, len(A)=%d", len(x), n)
	}
	comps := [][]int{{0, 0}, {1, 1}, {2, 2}}
	clrs := []string{"b", "g", "r", "c", "m", "y"}
	if withShear {
		comps = append(comps, []int{0, 1}, []int{0, 2}, []int{1, 2})
	}
	for c, ij := range comps {
		y := make([]float64, n)
		for m := 0; m < n; m++ {
			y[m] = A[m][ij[0]][ij[1]]
		}
		lbl := io.Sf("$%s_{%d%d}$", name, ij[0]+1, ij[1]+1)
		Plot(x, y, lbl, &plt.A{C: clrs[c]})
	}
}

// ExtraPlt defines a callback function for extra plt commands
//  Note: i and j are indices as in Subplot
type ExtraPlt func(i, j, nplots int)

// Draw draws or saves the collected subplots
//  dirout -- directory to save figure
//  fnkey  -- file name key, without extension. Use "" to skip saving
//  show   -- shows figure
//  extra  -- is called just after Subplot command and before any plotting
func Draw(dirout, fnkey string, show bool, extra ExtraPlt) (err error) {
	nplots := len(Splots)
	nr, nc := utl.BestSquare(nplots)
	var k int
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if k >= nplots {
				break
			}
			plt.Subplot(nr, nc, k+1)
			if extra != nil {
				extra(i+1, j+1, nplots)
			}
			if Splots[k].Title != "" {
				plt.Title(Splots[k].Title, nil)
			}
			for _, d := range Splots[k].Data {
				a := d.Style
				if a == nil {
					a = new(plt.A)
				}
				a.L = d.Label
				a.NoClip = true
				plt.Plot(d.X, d.Y, a)
			}
			plt.Gll(Splots[k].Xlbl, Splots[k].Ylbl, nil)
			k += 1
		}
	}
	if fnkey != "" {
		err = plt.Save(dirout, fnkey)
		if err != nil {
			return
		}
	}
	if show {
		err = plt.Show()
	}
	return
}
