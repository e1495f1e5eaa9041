// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mtissue implements constitutive models for soft biological tissue.
// Hyperelastic laws map one deformation gradient to the second
// Piola-Kirchhoff stress; viscoelastic laws map a deformation-gradient time
// history to the corresponding stress history
package mtissue

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines hyperelastic constitutive laws
type Model interface {
	Init(prms dbf.Params) error           // initialises model with parameters
	GetPrms() dbf.Params                  // gets (an example) of parameters
	Pk2(S, F [][]float64) (err error)   // computes S(F): second Piola-Kirchhoff stress
}

// HistModel defines viscoelastic (memory-dependent) constitutive laws
type HistModel interface {
	Init(prms dbf.Params) error                             // initialises model with parameters
	GetPrms() dbf.Params                                    // gets (an example) of parameters
	Pk2Hist(S, F [][][]float64, dt []float64) (err error) // computes S(t) along an F history
}

// allocators maps model names to allocators
var allocators = map[string]func() Model{}

// histAllocators maps history-model names to allocators
var histAllocators = map[string]func() HistModel{}

// New allocates a new hyperelastic model of given name
func New(name string) (Model, error) {
	if a, ok := allocators[name]; ok {
		return a(), nil
	}
	return nil, chk.Err("mtissue: cannot find hyperelastic model named %q", name)
}

// NewHist allocates a new viscoelastic model of given name
func NewHist(name string) (HistModel, error) {
	if a, ok := histAllocators[name]; ok {
		return a(), nil
	}
	return nil, chk.Err("mtissue: cannot find viscoelastic model named %q", name)
}
