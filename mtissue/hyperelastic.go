// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtissue

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"

	"github.com/willwiz/nordsletten-summer-school/kin"
)

// NeoHookean implements the simplest hyperelastic law
//  W = μ/2·(tr(C) - 3)   =>   S = μ·I
type NeoHookean struct {
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["nh"] = func() Model { return new(NeoHookean) }
}

// Init initialises model
func (o *NeoHookean) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.μ = p.V
		default:
			return chk.Err("nh: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o NeoHookean) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "mu", V: 10},
	}
}

// Pk2 computes the second Piola-Kirchhoff stress
func (o *NeoHookean) Pk2(S, F [][]float64) (err error) {
	la.MatFill(S, 0)
	S[0][0], S[1][1], S[2][2] = o.μ, o.μ, o.μ
	return
}

// Guccione implements the transversely-isotropic Fung-type exponential law
// of Guccione et al. for passive myocardium
type Guccione struct {
	μ  float64     // μ/2: scaled shear modulus
	b1 float64     // 2·b1: scaled isotropic exponent
	b  [][]float64 // fiber exponents in the material frame
	q  [][]float64 // change-of-basis tensor

	// auxiliary
	e, em, sm [][]float64
}

// add model to factory
func init() {
	allocators["guccione"] = func() Model { return new(Guccione) }
}

// Init initialises model
func (o *Guccione) Init(prms dbf.Params) (err error) {
	var mu, b1, bff, bfs, bsn float64
	for _, p := range prms {
		switch p.N {
		case "mu":
			mu = p.V
		case "b1":
			b1 = p.V
		case "bff":
			bff = p.V
		case "bfs":
			bfs = p.V
		case "bsn":
			bsn = p.V
		default:
			return chk.Err("guccione: parameter named %q is incorrect", p.N)
		}
	}
	o.μ = mu / 2.0
	o.b1 = 2.0 * b1
	o.b = [][]float64{
		{bff, 0.5 * bfs, 0.5 * bfs},
		{0.5 * bfs, bsn, 0.5 * bsn},
		{0.5 * bfs, 0.5 * bsn, bsn},
	}
	o.q = la.MatAlloc(3, 3)
	o.q[0][0], o.q[1][1], o.q[2][2] = 1, 1, 1
	o.e = la.MatAlloc(3, 3)
	o.em = la.MatAlloc(3, 3)
	o.sm = la.MatAlloc(3, 3)
	return
}

// SetFibers sets the fiber and sheet directions
func (o *Guccione) SetFibers(vf, vs []float64) (err error) {
	o.q, err = ChangeOfBasis(vf, vs)
	return
}

// GetPrms gets (an example) of parameters
func (o Guccione) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "mu", V: 0.88},
		&dbf.P{N: "b1", V: 0},
		&dbf.P{N: "bff", V: 18.5},
		&dbf.P{N: "bfs", V: 3.6},
		&dbf.P{N: "bsn", V: 3.58},
	}
}

// Pk2 computes the second Piola-Kirchhoff stress
func (o *Guccione) Pk2(S, F [][]float64) (err error) {
	kin.GreenLagrange(o.e, F)
	rotateIn(o.em, o.q, o.e)
	biso := o.b1 * (o.em[0][0] + o.em[1][1] + o.em[2][2])
	bfib := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			bfib += o.b[i][j] * o.em[i][j] * o.em[i][j]
		}
	}
	w := o.μ * math.Exp(biso+bfib)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.sm[i][j] = w * o.b[i][j] * o.em[i][j]
		}
		o.sm[i][i] += 2.0 * w
	}
	rotateOut(S, o.q, o.sm)
	return
}

// Costa implements the orthotropic Fung-type exponential law of Costa et al.
type Costa struct {
	μ float64     // μ/2: scaled shear modulus
	b [][]float64 // fiber exponents in the material frame
	q [][]float64 // change-of-basis tensor

	// auxiliary
	e, em, sm [][]float64
}

// add model to factory
func init() {
	allocators["costa"] = func() Model { return new(Costa) }
}

// Init initialises model
func (o *Costa) Init(prms dbf.Params) (err error) {
	var mu, bff, bss, bnn, bfs, bfn, bsn float64
	for _, p := range prms {
		switch p.N {
		case "mu":
			mu = p.V
		case "bff":
			bff = p.V
		case "bss":
			bss = p.V
		case "bnn":
			bnn = p.V
		case "bfs":
			bfs = p.V
		case "bfn":
			bfn = p.V
		case "bsn":
			bsn = p.V
		default:
			return chk.Err("costa: parameter named %q is incorrect", p.N)
		}
	}
	o.μ = mu / 2.0
	o.b = [][]float64{
		{bff, 0.5 * bfs, 0.5 * bfn},
		{0.5 * bfs, bss, 0.5 * bsn},
		{0.5 * bfn, 0.5 * bsn, bnn},
	}
	o.q = la.MatAlloc(3, 3)
	o.q[0][0], o.q[1][1], o.q[2][2] = 1, 1, 1
	o.e = la.MatAlloc(3, 3)
	o.em = la.MatAlloc(3, 3)
	o.sm = la.MatAlloc(3, 3)
	return
}

// SetFibers sets the fiber and sheet directions
func (o *Costa) SetFibers(vf, vs []float64) (err error) {
	o.q, err = ChangeOfBasis(vf, vs)
	return
}

// GetPrms gets (an example) of parameters
func (o Costa) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "mu", V: 1.1},
		&dbf.P{N: "bff", V: 9.2},
		&dbf.P{N: "bss", V: 2.0},
		&dbf.P{N: "bnn", V: 2.0},
		&dbf.P{N: "bfs", V: 3.7},
		&dbf.P{N: "bfn", V: 3.7},
		&dbf.P{N: "bsn", V: 2.0},
	}
}

// Pk2 computes the second Piola-Kirchhoff stress
func (o *Costa) Pk2(S, F [][]float64) (err error) {
	kin.GreenLagrange(o.e, F)
	rotateIn(o.em, o.q, o.e)
	bfib := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			bfib += o.b[i][j] * o.em[i][j] * o.em[i][j]
		}
	}
	w := o.μ * math.Exp(bfib)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.sm[i][j] = w * o.b[i][j] * o.em[i][j]
		}
	}
	rotateOut(S, o.q, o.sm)
	return
}

// HolzapfelOgden implements a Holzapfel-Ogden-type law with an isotropic
// exponential matrix term plus fiber/sheet exponential terms
type HolzapfelOgden struct {
	kiso float64     // isotropic stiffness
	biso float64     // isotropic exponent
	k    [][]float64 // fiber stiffnesses in the material frame
	b    [][]float64 // fiber exponents in the material frame
	q    [][]float64 // change-of-basis tensor

	// auxiliary
	e, em, sm [][]float64
}

// add model to factory
func init() {
	allocators["ho"] = func() Model { return new(HolzapfelOgden) }
}

// Init initialises model
func (o *HolzapfelOgden) Init(prms dbf.Params) (err error) {
	var kff, bff, kfs, bfs, kss, bss float64
	for _, p := range prms {
		switch p.N {
		case "kiso":
			o.kiso = p.V
		case "biso":
			o.biso = p.V
		case "kff":
			kff = p.V
		case "bff":
			bff = p.V
		case "kfs":
			kfs = p.V
		case "bfs":
			bfs = p.V
		case "kss":
			kss = p.V
		case "bss":
			bss = p.V
		default:
			return chk.Err("ho: parameter named %q is incorrect", p.N)
		}
	}
	o.k = [][]float64{
		{kff, 0.5 * kfs, 0},
		{0.5 * kfs, kss, 0},
		{0, 0, 0},
	}
	o.b = [][]float64{
		{bff, 0.5 * bfs, 0},
		{0.5 * bfs, bss, 0},
		{0, 0, 0},
	}
	o.q = la.MatAlloc(3, 3)
	o.q[0][0], o.q[1][1], o.q[2][2] = 1, 1, 1
	o.e = la.MatAlloc(3, 3)
	o.em = la.MatAlloc(3, 3)
	o.sm = la.MatAlloc(3, 3)
	return
}

// SetFibers sets the fiber and sheet directions
func (o *HolzapfelOgden) SetFibers(vf, vs []float64) (err error) {
	o.q, err = ChangeOfBasis(vf, vs)
	return
}

// GetPrms gets (an example) of parameters
func (o HolzapfelOgden) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "kiso", V: 0.4},
		&dbf.P{N: "biso", V: 7.2},
		&dbf.P{N: "kff", V: 3.05},
		&dbf.P{N: "bff", V: 29.7},
		&dbf.P{N: "kfs", V: 0.55},
		&dbf.P{N: "bfs", V: 9.8},
		&dbf.P{N: "kss", V: 1.25},
		&dbf.P{N: "bss", V: 36.6},
	}
}

// Pk2 computes the second Piola-Kirchhoff stress
func (o *HolzapfelOgden) Pk2(S, F [][]float64) (err error) {
	kin.GreenLagrange(o.e, F)
	rotateIn(o.em, o.q, o.e)
	iiso := o.e[0][0] + o.e[1][1] + o.e[2][2]
	wiso := o.kiso * math.Exp(o.biso*iiso)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.sm[i][j] = o.k[i][j] * math.Exp(o.b[i][j]*o.em[i][j]*o.em[i][j]) * o.em[i][j]
		}
	}
	rotateOut(S, o.q, o.sm)
	S[0][0] += wiso
	S[1][1] += wiso
	S[2][2] += wiso
	return
}

// Nordsletten implements the orthotropic law of Nordsletten et al. written
// on the right Cauchy-Green tensor, with an isotropic exponential term and
// an exponential shear term
type Nordsletten struct {
	b1     float64     // isotropic exponent
	b2     float64     // shear exponent
	kiso   [][]float64 // orthotropic stiffnesses (diagonal, material frame)
	kshear [][]float64 // shear stiffnesses (off-diagonal, material frame)
	q      [][]float64 // change-of-basis tensor

	// auxiliary
	c, cm, sm [][]float64
}

// add model to factory
func init() {
	allocators["nordsletten"] = func() Model { return new(Nordsletten) }
}

// Init initialises model
func (o *Nordsletten) Init(prms dbf.Params) (err error) {
	var kff, kss, knn, kfs, kfn, ksn float64
	for _, p := range prms {
		switch p.N {
		case "b1":
			o.b1 = p.V
		case "b2":
			o.b2 = p.V
		case "kff":
			kff = p.V
		case "kss":
			kss = p.V
		case "knn":
			knn = p.V
		case "kfs":
			kfs = p.V
		case "kfn":
			kfn = p.V
		case "ksn":
			ksn = p.V
		default:
			return chk.Err("nordsletten: parameter named %q is incorrect", p.N)
		}
	}
	o.kiso = [][]float64{
		{kff, 0, 0},
		{0, kss, 0},
		{0, 0, knn},
	}
	o.kshear = [][]float64{
		{0, 0.5 * kfs, 0.5 * kfn},
		{0.5 * kfs, 0, 0.5 * ksn},
		{0.5 * kfn, 0.5 * ksn, 0},
	}
	o.q = la.MatAlloc(3, 3)
	o.q[0][0], o.q[1][1], o.q[2][2] = 1, 1, 1
	o.c = la.MatAlloc(3, 3)
	o.cm = la.MatAlloc(3, 3)
	o.sm = la.MatAlloc(3, 3)
	return
}

// SetFibers sets the fiber and sheet directions
func (o *Nordsletten) SetFibers(vf, vs []float64) (err error) {
	o.q, err = ChangeOfBasis(vf, vs)
	return
}

// GetPrms gets (an example) of parameters
func (o Nordsletten) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "b1", V: 2.75},
		&dbf.P{N: "b2", V: 1.16},
		&dbf.P{N: "kff", V: 0.35},
		&dbf.P{N: "kss", V: 0.19},
		&dbf.P{N: "knn", V: 0.19},
		&dbf.P{N: "kfs", V: 0.27},
		&dbf.P{N: "kfn", V: 0.27},
		&dbf.P{N: "ksn", V: 0.17},
	}
}

// Pk2 computes the second Piola-Kirchhoff stress
func (o *Nordsletten) Pk2(S, F [][]float64) (err error) {
	kin.RightCauchyGreen(o.c, F)
	rotateIn(o.cm, o.q, o.c)
	iiso := o.c[0][0] + o.c[1][1] + o.c[2][2] - 3.0
	ishear := o.cm[0][1]*o.cm[0][1] + o.cm[0][2]*o.cm[0][2] + o.cm[1][2]*o.cm[1][2]
	w1 := math.Exp(o.b1 * iiso)
	w2 := math.Exp(o.b2 * ishear)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.sm[i][j] = o.kiso[i][j]*(w1*o.cm[i][j]-1.0) + w2*o.kshear[i][j]*o.cm[i][j]
		}
	}
	rotateOut(S, o.q, o.sm)
	return
}

// Composite superposes hyperelastic laws: S = Σ S_i
type Composite struct {
	Models []Model

	// auxiliary
	aux [][]float64
}

// NewComposite allocates a composite law from initialised sub-models
func NewComposite(models ...Model) *Composite {
	return &Composite{Models: models, aux: la.MatAlloc(3, 3)}
}

// Init initialises model. Sub-models are initialised individually
func (o *Composite) Init(prms dbf.Params) (err error) {
	if o.aux == nil {
		o.aux = la.MatAlloc(3, 3)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Composite) GetPrms() dbf.Params { return nil }

// Pk2 computes the second Piola-Kirchhoff stress
func (o *Composite) Pk2(S, F [][]float64) (err error) {
	la.MatFill(S, 0)
	for _, m := range o.Models {
		err = m.Pk2(o.aux, F)
		if err != nil {
			return
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				S[i][j] += o.aux[i][j]
			}
		}
	}
	return
}
