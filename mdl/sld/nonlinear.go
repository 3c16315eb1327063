// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/mat"
)

// Nonlinear implements plasticity of beams in the space of stress resultants
//
//   F = Fold + Rᵀ·(ks ∘ Δu)     ks = {E, G, G}
//   M = Mold + Rᵀ·(kf ∘ Δθ)     kf = {G, E, E}
//
//   φ = ((Fx-αFx)/(Fy+qFx))² + Σ_i ((Mi-αMi)/(My_i+qMi))² - 1
//
//  where α are back stresses (kinematic hardening) and q are isotropic hardening variables.
//  The hardening constant c mixes isotropic (c=1) and kinematic (c=0) hardening.
//  Note: shear forces do not enter the yield function and remain elastic
type Nonlinear struct {

	// parameters
	Ks [3]float64 // material stiffness relating displacement strains to forces
	Kf [3]float64 // material flexure relating rotational strains to moments
	Fy float64    // axial yield force
	My [3]float64 // yield moments about x, y and z
	Hk float64    // kinematic hardening coefficient
	Hi float64    // isotropic hardening coefficient
	C  float64    // hardening constant ∈ [0,1]

	// tolerances
	Conv ConvergenceCriteria
}

// Init initialises model
//  Note: the hardening slopes sk and si are converted to coefficients h = s/(1-s)
func (o *Nonlinear) Init(prms dbf.Params) (err error) {

	// required parameters
	for _, key := range []string{"E", "G", "fy", "mx", "my", "mz"} {
		if prms.Find(key) == nil {
			return chk.Err("nonlinear beam model: parameter %q is required", key)
		}
	}
	E, G := prms.Find("E").V, prms.Find("G").V
	if E <= 0 || G <= 0 {
		return chk.Err("nonlinear beam model: E and G must be positive. E=%g, G=%g are invalid", E, G)
	}
	o.Ks = [3]float64{E, G, G}
	o.Kf = [3]float64{G, E, E}
	o.Fy = prms.Find("fy").V
	o.My = [3]float64{prms.Find("mx").V, prms.Find("my").V, prms.Find("mz").V}
	if o.Fy <= 0 || o.My[0] <= 0 || o.My[1] <= 0 || o.My[2] <= 0 {
		return chk.Err("nonlinear beam model: yield force and moments must be positive. fy=%g, m=%v are invalid", o.Fy, o.My)
	}

	// hardening
	o.Hk, err = hardeningCoef(prms, "hk", "sk")
	if err != nil {
		return
	}
	o.Hi, err = hardeningCoef(prms, "hi", "si")
	if err != nil {
		return
	}
	o.C = 1
	if p := prms.Find("c"); p != nil {
		o.C = p.V
	}
	if o.C < 0 || o.C > 1 {
		return chk.Err("nonlinear beam model: hardening constant must be in [0,1]. c=%g is invalid", o.C)
	}

	// tolerances
	return o.Conv.Init(prms)
}

// GetPrms gets (an example) of parameters
func (o Nonlinear) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 2e5},
		&dbf.P{N: "G", V: 8e4},
		&dbf.P{N: "fy", V: 4000},
		&dbf.P{N: "mx", V: 0.08},
		&dbf.P{N: "my", V: 0.2},
		&dbf.P{N: "mz", V: 0.1},
		&dbf.P{N: "hi", V: 0},
		&dbf.P{N: "hk", V: 0},
		&dbf.P{N: "c", V: 1},
	}
}

// Update updates forces, moments and internal variables
//  Input:
//   s  -- state
//   R  -- global-to-local rotation tensor
//   Δu -- mechanical displacement strain increment (local)
//   Δθ -- mechanical rotational strain increment (local)
//  Output:
//   nit -- number of iterations of the return mapping
//  Note: the previous step values in s are not modified
func (o Nonlinear) Update(s *ResultantState, R mat.Matrix, Δu, Δθ [3]float64) (nit int, err error) {

	// trial
	var df, dm [3]float64
	for i := 0; i < 3; i++ {
		df[i] = o.Ks[i] * Δu[i]
		dm[i] = o.Kf[i] * Δθ[i]
	}
	s.ResultantVars = s.Old
	s.Loading = false
	df, dm = trMul(R, df), trMul(R, dm)
	for i := 0; i < 3; i++ {
		s.F[i] += df[i]
		s.M[i] += dm[i]
	}

	// generalised components: axial force and moments
	k := [4]float64{o.Ks[0], o.Kf[0], o.Kf[1], o.Kf[2]}
	y0 := [4]float64{o.Fy, o.My[0], o.My[1], o.My[2]}
	neg := [4]bool{Δu[0] < 0, Δθ[0] < 0, Δθ[1] < 0, Δθ[2] < 0}
	σtr := [4]float64{s.F[0], s.M[0], s.M[1], s.M[2]}
	αold := [4]float64{s.Old.Af[0], s.Old.Am[0], s.Old.Am[1], s.Old.Am[2]}
	qold := [4]float64{s.Old.Qf[0], s.Old.Qm[0], s.Old.Qm[1], s.Old.Qm[2]}

	// elastic
	φtr := yieldFunc(σtr, αold, qold, y0)
	if φtr <= 0 {
		return
	}

	// gradients: n = ∂φ/∂σ, ny = ∂φ/∂y (signed by the increment), na = ∂φ/∂α
	grad := func(σ, α, q [4]float64) (n, ny, na [4]float64) {
		for j := 0; j < 4; j++ {
			y := y0[j] + q[j]
			n[j] = 2.0 * (σ[j] - α[j]) / (y * y)
			ny[j] = -2.0 * (σ[j] - α[j]) * (σ[j] - α[j]) / (y * y * y)
			if neg[j] {
				ny[j] = -ny[j]
			}
			na[j] = -n[j]
		}
		return
	}

	// hardening
	ci, ck := o.C*o.Hi, (1.0-o.C)*o.Hk
	var α, q [4]float64
	harden := func(λ float64, n [4]float64) {
		for j := 0; j < 4; j++ {
			q[j] = qold[j] + ci*k[j]*math.Abs(λ*n[j])
			α[j] = αold[j] + ck*k[j]*λ*n[j]
		}
	}

	// first estimate
	n, ny, na := grad(σtr, αold, qold)
	var den, ai, ak float64
	for j := 0; j < 4; j++ {
		den += n[j] * k[j] * n[j]
		ai += ny[j] * k[j] * n[j]
		ak += n[j] * k[j] * na[j]
	}
	λ := φtr / (den - ci*ai - ck*ak)
	harden(λ, n)
	var σ [4]float64
	for j := 0; j < 4; j++ {
		σ[j] = σtr[j] - λ*k[j]*n[j]
	}
	φ := yieldFunc(σ, α, q, y0)

	// Newton's method
	var r, Q [4]float64
	for nit = 0; math.Abs(φ) > o.Conv.AbsTol; nit++ {
		if nit == o.Conv.MaxIt {
			return nit, &ConvergenceError{-1, nit, φ, φtr}
		}
		n, ny, na = grad(σ, α, q)
		var num, den, bi, bk float64
		for j := 0; j < 4; j++ {
			y := y0[j] + q[j]
			r[j] = σ[j] - σtr[j] + λ*k[j]*n[j]
			Q[j] = 1.0 + λ*k[j]*2.0/(y*y)
			num += n[j] * r[j] / Q[j]
			den += n[j] * k[j] * n[j] / Q[j]
			bi += n[j] * k[j] * ny[j]
			bk += n[j] * k[j] * na[j]
		}
		δλ := (φ - num) / (den - ci*bi - ck*bk)
		for j := 0; j < 4; j++ {
			σ[j] -= (r[j] + δλ*k[j]*n[j]) / Q[j]
		}
		λ += δλ
		harden(λ, n)
		φ = yieldFunc(σ, α, q, y0)
	}

	// plastic update
	n, _, _ = grad(σ, α, q)
	s.F[0] = σ[0]
	s.Af[0], s.Qf[0] = α[0], q[0]
	s.Epf[0] = s.Old.Epf[0] + λ*n[0]
	for i := 0; i < 3; i++ {
		s.M[i] = σ[1+i]
		s.Am[i], s.Qm[i] = α[1+i], q[1+i]
		s.Epm[i] = s.Old.Epm[i] + λ*n[1+i]
	}
	s.Loading = true
	return
}

// Yield evaluates the yield function at the current state
func (o Nonlinear) Yield(s *ResultantState) float64 {
	σ := [4]float64{s.F[0], s.M[0], s.M[1], s.M[2]}
	α := [4]float64{s.Af[0], s.Am[0], s.Am[1], s.Am[2]}
	q := [4]float64{s.Qf[0], s.Qm[0], s.Qm[1], s.Qm[2]}
	return yieldFunc(σ, α, q, [4]float64{o.Fy, o.My[0], o.My[1], o.My[2]})
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////

// yieldFunc computes φ = Σ ((σ-α)/(y0+q))² - 1
func yieldFunc(σ, α, q, y0 [4]float64) (φ float64) {
	for j := 0; j < 4; j++ {
		x := (σ[j] - α[j]) / (y0[j] + q[j])
		φ += x * x
	}
	return φ - 1.0
}

// hardeningCoef returns the hardening coefficient given directly or by the slope
func hardeningCoef(prms dbf.Params, coef, slope string) (h float64, err error) {
	pc, ps := prms.Find(coef), prms.Find(slope)
	switch {
	case pc != nil && ps != nil:
		return 0, chk.Err("nonlinear beam model: only one of %q and %q can be given", coef, slope)
	case pc != nil:
		h = pc.V
	case ps != nil:
		if ps.V < 0 || ps.V >= 1 {
			return 0, chk.Err("nonlinear beam model: hardening slope must be in [0,1). %s=%g is invalid", slope, ps.V)
		}
		h = ps.V / (1.0 - ps.V)
	}
	if h < 0 {
		return 0, chk.Err("nonlinear beam model: hardening coefficient must be non-negative. %s=%g is invalid", coef, h)
	}
	return
}

// trMul returns Rᵀ·v
func trMul(R mat.Matrix, v [3]float64) (res [3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i] += R.At(j, i) * v[j]
		}
	}
	return
}
