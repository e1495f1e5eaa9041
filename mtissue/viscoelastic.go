// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"

	"github.com/willwiz/nordsletten-summer-school/frac"
)

// Elastic lifts a hyperelastic law into the history interface, evaluating
// it independently at every time station
type Elastic struct {
	M Model
}

// Init initialises the wrapped model
func (o *Elastic) Init(prms dbf.Params) (err error) {
	if o.M == nil {
		return chk.Err("elastic: a hyperelastic law must be set before Init")
	}
	return o.M.Init(prms)
}

// GetPrms gets (an example) of parameters
func (o Elastic) GetPrms() dbf.Params {
	if o.M == nil {
		return nil
	}
	return o.M.GetPrms()
}

// Pk2Hist computes the stress history
func (o *Elastic) Pk2Hist(S, F [][][]float64, dt []float64) (err error) {
	if len(S) != len(F) {
		return chk.Err("elastic: histories must have equal lengths. len(S)=%d len(F)=%d", len(S), len(F))
	}
	for i := range F {
		err = o.M.Pk2(S[i], F[i])
		if err != nil {
			return
		}
	}
	return
}

// FracKelvinVoigt implements the fractional Kelvin-Voigt law
//  S(t) = Se(t) + δ·D^α[Se](t)
// where Se is the stress of the elastic backbone and D^α the Caputo
// fractional derivative of order α
type FracKelvinVoigt struct {

	// parameters
	α  float64 // fractional order
	tf float64 // time window for the Prony approximation
	np int     // number of Prony terms
	δ  float64 // weight of the fractional term

	// elastic backbone
	base Model

	// derived
	cap *frac.Caputo
}

// add model to factory
func init() {
	histAllocators["frac-kv"] = func() HistModel { return new(FracKelvinVoigt) }
}

// SetBase sets the elastic backbone (must be initialised separately)
func (o *FracKelvinVoigt) SetBase(m Model) {
	o.base = m
}

// Init initialises model
func (o *FracKelvinVoigt) Init(prms dbf.Params) (err error) {
	o.np = 9
	for _, p := range prms {
		switch p.N {
		case "alpha":
			o.α = p.V
		case "tf":
			o.tf = p.V
		case "np":
			o.np = int(p.V)
		case "delta":
			o.δ = p.V
		default:
			return chk.Err("frac-kv: parameter named %q is incorrect", p.N)
		}
	}
	o.cap, err = frac.NewCaputo(o.α, o.tf, o.np)
	return
}

// GetPrms gets (an example) of parameters
func (o FracKelvinVoigt) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "alpha", V: 0.2},
		&dbf.P{N: "tf", V: 5},
		&dbf.P{N: "np", V: 9},
		&dbf.P{N: "delta", V: 0.5},
	}
}

// Pk2Hist computes the stress history
func (o *FracKelvinVoigt) Pk2Hist(S, F [][][]float64, dt []float64) (err error) {
	if o.base == nil {
		return chk.Err("frac-kv: an elastic backbone must be set with SetBase")
	}
	n := len(F)
	if len(S) != n || len(dt) != n {
		return chk.Err("frac-kv: histories must have equal lengths. len(S)=%d len(F)=%d len(dt)=%d", len(S), n, len(dt))
	}
	se := allocHist(n)
	ds := allocHist(n)
	for i := 0; i < n; i++ {
		err = o.base.Pk2(se[i], F[i])
		if err != nil {
			return
		}
	}
	err = o.cap.DerivTensor(ds, se, dt)
	if err != nil {
		return
	}
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				S[i][j][k] = se[i][j][k] + o.δ*ds[i][j][k]
			}
		}
	}
	return
}

// FracZener implements the fractional Zener law
//  δa·D^α[S](t) + S(t) = Se(t) + δb·D^α[Se](t)
// solved component by component with the implicit Prony update
type FracZener struct {

	// parameters
	α  float64 // fractional order
	tf float64 // time window for the Prony approximation
	np int     // number of Prony terms
	δa float64 // relaxation weight (left-hand side)
	δb float64 // creep weight (right-hand side)

	// elastic backbone
	base Model

	// derived
	cap *frac.Caputo
}

// add model to factory
func init() {
	histAllocators["frac-zener"] = func() HistModel { return new(FracZener) }
}

// SetBase sets the elastic backbone (must be initialised separately)
func (o *FracZener) SetBase(m Model) {
	o.base = m
}

// Init initialises model
func (o *FracZener) Init(prms dbf.Params) (err error) {
	o.np = 9
	for _, p := range prms {
		switch p.N {
		case "alpha":
			o.α = p.V
		case "tf":
			o.tf = p.V
		case "np":
			o.np = int(p.V)
		case "deltaa":
			o.δa = p.V
		case "deltab":
			o.δb = p.V
		default:
			return chk.Err("frac-zener: parameter named %q is incorrect", p.N)
		}
	}
	o.cap, err = frac.NewCaputo(o.α, o.tf, o.np)
	return
}

// GetPrms gets (an example) of parameters
func (o FracZener) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "alpha", V: 0.2},
		&dbf.P{N: "tf", V: 5},
		&dbf.P{N: "np", V: 9},
		&dbf.P{N: "deltaa", V: 0.1},
		&dbf.P{N: "deltab", V: 0.5},
	}
}

// Pk2Hist computes the stress history
func (o *FracZener) Pk2Hist(S, F [][][]float64, dt []float64) (err error) {
	if o.base == nil {
		return chk.Err("frac-zener: an elastic backbone must be set with SetBase")
	}
	n := len(F)
	if len(S) != n || len(dt) != n {
		return chk.Err("frac-zener: histories must have equal lengths. len(S)=%d len(F)=%d len(dt)=%d", len(S), n, len(dt))
	}

	// right-hand side: Se + δb·D^α[Se]
	se := allocHist(n)
	ds := allocHist(n)
	for i := 0; i < n; i++ {
		err = o.base.Pk2(se[i], F[i])
		if err != nil {
			return
		}
	}
	err = o.cap.DerivTensor(ds, se, dt)
	if err != nil {
		return
	}

	// solve the fractional differential equation per component
	f := make([]float64, n)
	y := make([]float64, n)
	for j := 0; j < 3; j++ {
		for k := 0; k < 3; k++ {
			for i := 0; i < n; i++ {
				f[i] = se[i][j][k] + o.δb*ds[i][j][k]
			}
			err = o.cap.DiffEq(y, f, dt, o.δa)
			if err != nil {
				return
			}
			for i := 0; i < n; i++ {
				S[i][j][k] = y[i]
			}
		}
	}
	return
}

// HistComposite superposes viscoelastic laws: S(t) = Σ S_i(t)
type HistComposite struct {
	Models []HistModel
}

// NewHistComposite allocates a composite law from initialised sub-models
func NewHistComposite(models ...HistModel) *HistComposite {
	return &HistComposite{Models: models}
}

// Init initialises model. Sub-models are initialised individually
func (o *HistComposite) Init(prms dbf.Params) (err error) { return }

// GetPrms gets (an example) of parameters
func (o HistComposite) GetPrms() dbf.Params { return nil }

// Pk2Hist computes the stress history
func (o *HistComposite) Pk2Hist(S, F [][][]float64, dt []float64) (err error) {
	n := len(F)
	if len(S) != n {
		return chk.Err("composite: histories must have equal lengths. len(S)=%d len(F)=%d", len(S), n)
	}
	for i := 0; i < n; i++ {
		la.MatFill(S[i], 0)
	}
	aux := allocHist(n)
	for _, m := range o.Models {
		err = m.Pk2Hist(aux, F, dt)
		if err != nil {
			return
		}
		for i := 0; i < n; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 3; k++ {
					S[i][j][k] += aux[i][j][k]
				}
			}
		}
	}
	return
}

// allocHist allocates a tensor history [n][3][3]
func allocHist(n int) (A [][][]float64) {
	A = make([][][]float64, n)
	for i := 0; i < n; i++ {
		A[i] = la.MatAlloc(3, 3)
	}
	return
}
