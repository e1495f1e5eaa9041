// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Polynomial evaluates
//  f(t) = Σ_i pars[i]·t^(i+1)
// at the given time stations; i.e. the first coefficient scales the linear
// term, the second the quadratic term, and so on
func Polynomial(pars, time []float64) (f []float64) {
	f = make([]float64, len(time))
	for j, t := range time {
		for i, c := range pars {
			f[j] += c * math.Pow(t, float64(i+1))
		}
	}
	return
}

// PolynomialCaputo evaluates the exact Caputo fractional derivative of order
// α of the polynomial defined by pars, using
//  D^α[t^n] = Γ(n+1)/Γ(n+1-α)·t^(n-α)
func PolynomialCaputo(α float64, pars, time []float64) (d []float64, err error) {
	if α <= 0 || α >= 1 {
		err = chk.Err("ana: fractional order must be within (0,1). α=%g is invalid", α)
		return
	}
	d = make([]float64, len(time))
	for j, t := range time {
		for i, c := range pars {
			n := float64(i + 1)
			d[j] += c * math.Gamma(n+1.0) / math.Gamma(n+1.0-α) * math.Pow(t, n-α)
		}
	}
	return
}
