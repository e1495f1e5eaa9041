// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Driver runs a constitutive law along a deformation-gradient history and
// records all three stress measures per time station
type Driver struct {

	// model
	model Model     // hyperelastic law (nil if hist is set)
	hist  HistModel // viscoelastic law (nil if model is set)

	// results
	S   [][][]float64 // second Piola-Kirchhoff stress history
	P   [][][]float64 // first Piola-Kirchhoff stress history
	Sig [][][]float64 // Cauchy stress history
}

// Init initialises driver with a hyperelastic model from the factory
func (o *Driver) Init(mdlname string, prms dbf.Params) (err error) {
	o.model, err = New(mdlname)
	if err != nil {
		return
	}
	return o.model.Init(prms)
}

// InitHist initialises driver with a viscoelastic model from the factory
func (o *Driver) InitHist(mdlname string, prms dbf.Params) (err error) {
	o.hist, err = NewHist(mdlname)
	if err != nil {
		return
	}
	return o.hist.Init(prms)
}

// SetModel sets a pre-built hyperelastic model (e.g. a Composite or a law
// with fibers already set)
func (o *Driver) SetModel(m Model) {
	o.model = m
	o.hist = nil
}

// SetHistModel sets a pre-built viscoelastic model
func (o *Driver) SetHistModel(m HistModel) {
	o.hist = m
	o.model = nil
}

// Model returns the underlying hyperelastic model (possibly nil)
func (o *Driver) Model() Model { return o.model }

// HistModel returns the underlying viscoelastic model (possibly nil)
func (o *Driver) HistModel() HistModel { return o.hist }

// Run computes the stress measures along the given history
//  F  -- deformation-gradient history [n][3][3]
//  dt -- time increments [n]; only used by viscoelastic models
func (o *Driver) Run(F [][][]float64, dt []float64) (err error) {
	if o.model == nil && o.hist == nil {
		return chk.Err("driver: a model must be set before Run")
	}
	n := len(F)
	o.S = allocHist(n)
	o.P = allocHist(n)
	o.Sig = allocHist(n)
	if o.hist != nil {
		err = o.hist.Pk2Hist(o.S, F, dt)
		if err != nil {
			return
		}
	} else {
		for i := 0; i < n; i++ {
			err = o.model.Pk2(o.S[i], F[i])
			if err != nil {
				return
			}
		}
	}
	for i := 0; i < n; i++ {
		Pk1FromPk2(o.P[i], F[i], o.S[i])
		err = CauchyFromPk2(o.Sig[i], F[i], o.S[i])
		if err != nil {
			return
		}
	}
	return
}

// GetSeries extracts one component of a recorded stress history
//  measure -- "S", "P" or "sig"
func (o *Driver) GetSeries(measure string, i, j int) (res []float64, err error) {
	var src [][][]float64
	switch measure {
	case "S":
		src = o.S
	case "P":
		src = o.P
	case "sig":
		src = o.Sig
	default:
		err = chk.Err("driver: unknown stress measure %q", measure)
		return
	}
	res = make([]float64, len(src))
	for m := range src {
		res[m] = src[m][i][j]
	}
	return
}
