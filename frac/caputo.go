// Copyright 2026 The Nordsletten Summer School Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frac approximates the Caputo fractional derivative with a Prony
// series. The kernel t^(-α)/Γ(1-α) is represented through its diffusive
// (spectral) form
//  t^(-α)/Γ(1-α) = (sin(απ)/π) ∫ λ^(α-1) exp(-λ·t) dλ
// discretized on a log-spaced grid of relaxation rates λ_k = 1/τ_k scaled
// by the window length Tf. The truncated tails of the integral are carried
// by two closed-form terms: the low-rate tail acts on f(t)-f(0) and the
// high-rate tail on df/dt
package frac

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// decades of relaxation rates kept below and above 1/Tf
const (
	lodec = 3.0
	hidec = 5.0
)

// Caputo holds the Prony-series data approximating the Caputo derivative of
// order α over a time window [0, Tf]
type Caputo struct {

	// input
	Alpha float64 // α: fractional order
	Tf    float64 // Tf: length of time window
	Np    int     // number of Prony terms

	// derived
	Taus  []float64 // τ_k: relaxation times [Np]
	Betas []float64 // β_k: Prony weights [Np]
	Blo   float64   // low-rate tail weight; multiplies f(t)-f(0)
	Bhi   float64   // high-rate tail weight; multiplies df/dt
}

// NewCaputo allocates and initialises the Prony approximation
//  alpha -- fractional order, 0 < α < 1
//  tf    -- length of the time window of interest
//  np    -- number of Prony terms; more terms resolve more decades
func NewCaputo(alpha, tf float64, np int) (o *Caputo, err error) {
	if alpha <= 0 || alpha >= 1 {
		err = chk.Err("frac: fractional order must be within (0,1). α=%g is invalid", alpha)
		return
	}
	if tf <= 0 {
		err = chk.Err("frac: time window must be positive. tf=%g is invalid", tf)
		return
	}
	if np < 2 {
		err = chk.Err("frac: at least two Prony terms are required. np=%d is invalid", np)
		return
	}
	o = &Caputo{Alpha: alpha, Tf: tf, Np: np}
	o.Taus = make([]float64, np)
	o.Betas = make([]float64, np)

	// midpoint rule on the log-rate axis
	s := math.Sin(alpha*math.Pi) / math.Pi
	umin := math.Log(math.Pow(10, -lodec) / tf)
	umax := math.Log(math.Pow(10, hidec) / tf)
	du := (umax - umin) / float64(np)
	for k := 0; k < np; k++ {
		λ := math.Exp(umin + (float64(k)+0.5)*du)
		o.Taus[k] = 1.0 / λ
		o.Betas[k] = s * du * math.Pow(λ, alpha)
	}

	// tail corrections
	λmin := math.Exp(umin)
	λmax := math.Exp(umax)
	o.Blo = s * math.Pow(λmin, alpha) / alpha
	o.Bhi = s * math.Pow(λmax, alpha-1.0) / (1.0 - alpha)
	return
}

// DerivScalar computes the Caputo derivative of a sampled scalar history,
// assuming f varies linearly within each time increment
//  d  -- results [n]; d[0] = 0
//  f  -- sampled function [n]
//  dt -- time increments [n]; dt[0] is not used
func (o *Caputo) DerivScalar(d, f, dt []float64) (err error) {
	n := len(f)
	if len(d) != n || len(dt) != n {
		return chk.Err("frac: histories must have equal lengths. len(d)=%d len(f)=%d len(dt)=%d", len(d), n, len(dt))
	}
	q := make([]float64, o.Np)
	if n > 0 {
		d[0] = 0
	}
	for i := 1; i < n; i++ {
		Δt := dt[i]
		if Δt <= 0 {
			return chk.Err("frac: time increments must be positive. dt[%d]=%g is invalid", i, Δt)
		}
		r := (f[i] - f[i-1]) / Δt
		v := o.Blo*(f[i]-f[0]) + o.Bhi*r
		for k := 0; k < o.Np; k++ {
			e := math.Exp(-Δt / o.Taus[k])
			q[k] = e*q[k] + r*o.Taus[k]*(1.0-e)
			v += o.Betas[k] * q[k]
		}
		d[i] = v
	}
	return
}

// DerivTensor computes the componentwise Caputo derivative of a 3x3 tensor
// history
//  D  -- results [n][3][3]
//  A  -- sampled tensor history [n][3][3]
//  dt -- time increments [n]; dt[0] is not used
func (o *Caputo) DerivTensor(D, A [][][]float64, dt []float64) (err error) {
	n := len(A)
	if len(D) != n || len(dt) != n {
		return chk.Err("frac: histories must have equal lengths. len(D)=%d len(A)=%d len(dt)=%d", len(D), n, len(dt))
	}
	f := make([]float64, n)
	d := make([]float64, n)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for m := 0; m < n; m++ {
				f[m] = A[m][i][j]
			}
			err = o.DerivScalar(d, f, dt)
			if err != nil {
				return
			}
			for m := 0; m < n; m++ {
				D[m][i][j] = d[m]
			}
		}
	}
	return
}

// DiffEq solves the scalar fractional differential equation
//  δ·D^α[y](t) + y(t) = f(t)
// for a sampled forcing history, with y(0) = f(0). Each step is implicit
// and has a closed-form update because D^α[y] is linear in y at the new
// station
//  y     -- results [n]
//  f     -- sampled forcing [n]
//  dt    -- time increments [n]; dt[0] is not used
//  delta -- δ: relaxation weight
func (o *Caputo) DiffEq(y, f, dt []float64, delta float64) (err error) {
	n := len(f)
	if len(y) != n || len(dt) != n {
		return chk.Err("frac: histories must have equal lengths. len(y)=%d len(f)=%d len(dt)=%d", len(y), n, len(dt))
	}
	if n == 0 {
		return
	}
	q := make([]float64, o.Np)
	e := make([]float64, o.Np)
	a := make([]float64, o.Np)
	y[0] = f[0]
	for i := 1; i < n; i++ {
		Δt := dt[i]
		if Δt <= 0 {
			return chk.Err("frac: time increments must be positive. dt[%d]=%g is invalid", i, Δt)
		}

		// D^α[y] at the new station = A + G·y_new
		A := -o.Blo*y[0] - o.Bhi*y[i-1]/Δt
		G := o.Blo + o.Bhi/Δt
		for k := 0; k < o.Np; k++ {
			e[k] = math.Exp(-Δt / o.Taus[k])
			a[k] = o.Taus[k] * (1.0 - e[k]) / Δt
			A += o.Betas[k] * (e[k]*q[k] - a[k]*y[i-1])
			G += o.Betas[k] * a[k]
		}
		y[i] = (f[i] - delta*A) / (1.0 + delta*G)

		// update internal variables
		r := (y[i] - y[i-1]) / Δt
		for k := 0; k < o.Np; k++ {
			q[k] = e[k]*q[k] + r*o.Taus[k]*(1.0-e[k])
		}
	}
	return
}
