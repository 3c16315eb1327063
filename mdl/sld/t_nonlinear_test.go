// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// newNonlinear allocates a resultant model with fy=300 and unit yield moments
func newNonlinear(tst *testing.T, extra ...*dbf.P) *Nonlinear {
	prms := dbf.Params{
		&dbf.P{N: "E", V: 2e5},
		&dbf.P{N: "G", V: 8e4},
		&dbf.P{N: "fy", V: 300},
		&dbf.P{N: "mx", V: 1},
		&dbf.P{N: "my", V: 1},
		&dbf.P{N: "mz", V: 1},
	}
	var mdl Nonlinear
	err := mdl.Init(append(prms, extra...))
	if err != nil {
		tst.Fatalf("cannot initialise nonlinear model: %v\n", err)
	}
	return &mdl
}

// identity returns the 3x3 identity tensor
func identity() mat.Matrix {
	return mat.NewDiagDense(3, []float64{1, 1, 1})
}

func Test_nonlinear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear01. elastic resultants")

	mdl := newNonlinear(tst)
	chk.Array(tst, "ks", 1e-17, mdl.Ks[:], []float64{2e5, 8e4, 8e4})
	chk.Array(tst, "kf", 1e-17, mdl.Kf[:], []float64{8e4, 2e5, 2e5})
	chk.Float64(tst, "c", 1e-17, mdl.C, 1)

	// local = global
	s := NewResultantState()
	nit, err := mdl.Update(s, identity(), [3]float64{1e-3, 2e-4, 0}, [3]float64{0, 1e-6, 2e-6})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("F = %v  M = %v\n", s.F, s.M)
	chk.Int(tst, "nit", nit, 0)
	chk.Array(tst, "F", 1e-12, s.F[:], []float64{200, 16, 0})
	chk.Array(tst, "M", 1e-12, s.M[:], []float64{0, 0.2, 0.4})
	if s.Loading {
		tst.Errorf("state should be elastic\n")
	}
	chk.Float64(tst, "φ", 1e-12, mdl.Yield(s), 4.0/9.0+0.04+0.16-1.0)

	// repeated update within one step
	_, err = mdl.Update(s, identity(), [3]float64{1e-3, 2e-4, 0}, [3]float64{0, 1e-6, 2e-6})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "F again", 1e-12, s.F[:], []float64{200, 16, 0})

	// commit and restore
	s.Commit()
	_, err = mdl.Update(s, identity(), [3]float64{1e-4, 0, 0}, [3]float64{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Fx", 1e-12, s.F[0], 220)
	cpy := s.GetCopy()
	s.Restore()
	chk.Array(tst, "F restored", 1e-12, s.F[:], []float64{200, 16, 0})
	chk.Float64(tst, "Fx copy", 1e-12, cpy.F[0], 220)

	// local x̂ = global y
	R := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		-1, 0, 0,
		0, 0, 1,
	})
	s = NewResultantState()
	_, err = mdl.Update(s, R, [3]float64{1e-3, 2e-4, 0}, [3]float64{0, 0, 2e-6})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "F rotated", 1e-12, s.F[:], []float64{-16, 200, 0})
	chk.Array(tst, "M rotated", 1e-12, s.M[:], []float64{0, 0, 0.4})
}

func Test_nonlinear02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear02. perfect plasticity")

	mdl := newNonlinear(tst)
	E := mdl.Ks[0]

	// axial force
	s := NewResultantState()
	Δu := 2e-3
	nit, err := mdl.Update(s, identity(), [3]float64{Δu, 0, 0}, [3]float64{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("nit = %d  F = %v  εp = %v\n", nit, s.F, s.Epf)
	if !s.Loading {
		tst.Errorf("state should be plastic\n")
	}
	chk.Float64(tst, "Fx = fy", 1e-7, s.F[0], 300)
	chk.Float64(tst, "εp", 1e-10, s.Epf[0], Δu-300/E)
	chk.Float64(tst, "φ", 1e-10, mdl.Yield(s), 0)

	// compression
	s = NewResultantState()
	_, err = mdl.Update(s, identity(), [3]float64{-Δu, 0, 0}, [3]float64{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Fx = -fy", 1e-7, s.F[0], -300)
	chk.Float64(tst, "εp", 1e-10, s.Epf[0], -Δu+300/E)

	// biaxial bending: radial return
	s = NewResultantState()
	_, err = mdl.Update(s, identity(), [3]float64{}, [3]float64{0, 6e-6, 8e-6})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("M = %v  εp = %v\n", s.M, s.Epm)
	chk.Array(tst, "M", 1e-8, s.M[:], []float64{0, 0.6, 0.8})
	chk.Array(tst, "εp", 1e-12, s.Epm[:], []float64{0, 0.6 / E, 0.8 / E})

	// shear forces remain elastic
	s = NewResultantState()
	_, err = mdl.Update(s, identity(), [3]float64{Δu, 1e-2, -1e-2}, [3]float64{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "F", 1e-7, s.F[:], []float64{300, 800, -800})
}

func Test_nonlinear03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear03. isotropic and kinematic hardening")

	h := 0.1
	iso := newNonlinear(tst, &dbf.P{N: "hi", V: h})
	kin := newNonlinear(tst, &dbf.P{N: "hk", V: h}, &dbf.P{N: "c", V: 0})
	E, fy := iso.Ks[0], iso.Fy

	// monotonic: both give the same force
	Δu := 2e-3
	εp := (E*Δu - fy) / (E * (1.0 + h))
	F := fy + h*E*εp
	si, sk := NewResultantState(), NewResultantState()
	for _, c := range []struct {
		mdl *Nonlinear
		s   *ResultantState
	}{{iso, si}, {kin, sk}} {
		_, err := c.mdl.Update(c.s, identity(), [3]float64{Δu, 0, 0}, [3]float64{})
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, "Fx", 1e-6, c.s.F[0], F)
		chk.Float64(tst, "εp", 1e-10, c.s.Epf[0], εp)
		c.s.Commit()
	}
	chk.Float64(tst, "q (iso)", 1e-6, si.Qf[0], h*E*εp)
	chk.Float64(tst, "α (iso)", 1e-17, si.Af[0], 0)
	chk.Float64(tst, "α (kin)", 1e-6, sk.Af[0], h*E*εp)
	chk.Float64(tst, "q (kin)", 1e-17, sk.Qf[0], 0)

	// reversal to -fy: elastic with isotropic hardening
	Δr := (-fy - F) / E
	_, err := iso.Update(si, identity(), [3]float64{Δr, 0, 0}, [3]float64{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if si.Loading {
		tst.Errorf("isotropic hardening: reversal to -fy should be elastic\n")
	}
	chk.Float64(tst, "Fx (iso)", 1e-6, si.F[0], -fy)

	// reversal to -fy: plastic with kinematic hardening (Bauschinger effect)
	_, err = kin.Update(sk, identity(), [3]float64{Δr, 0, 0}, [3]float64{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !sk.Loading {
		tst.Errorf("kinematic hardening: reversal to -fy should be plastic\n")
	}
	α := h * E * εp
	δεp := (F + E*Δr - α + fy) / (E * (1.0 + h))
	io.Pforan("kin: F = %v  α = %v  δεp = %v\n", sk.F[0], sk.Af[0], δεp)
	chk.Float64(tst, "Fx (kin)", 1e-6, sk.F[0], F+E*Δr-E*δεp)
	chk.Float64(tst, "α (kin)", 1e-6, sk.Af[0], α+h*E*δεp)
	chk.Float64(tst, "Fx - α", 1e-6, sk.F[0]-sk.Af[0], -fy)
}

func Test_nonlinear04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nonlinear04. parameters and convergence")

	// slopes
	mdl := newNonlinear(tst, &dbf.P{N: "si", V: 0.5}, &dbf.P{N: "sk", V: 0.2})
	chk.Float64(tst, "hi", 1e-15, mdl.Hi, 1)
	chk.Float64(tst, "hk", 1e-15, mdl.Hk, 0.25)

	// invalid
	prms := mdl.GetPrms()
	cases := map[string]dbf.Params{
		"missing fy": {&dbf.P{N: "E", V: 2e5}, &dbf.P{N: "G", V: 8e4}, &dbf.P{N: "mx", V: 1}, &dbf.P{N: "my", V: 1}, &dbf.P{N: "mz", V: 1}},
		"slope+coef": append(prms, &dbf.P{N: "si", V: 0.1}),
		"slope":      append(prms[:6:6], &dbf.P{N: "sk", V: 1}),
		"c":          append(prms[:6:6], &dbf.P{N: "c", V: 2}),
		"fy":         {&dbf.P{N: "E", V: 2e5}, &dbf.P{N: "G", V: 8e4}, &dbf.P{N: "fy", V: -1}, &dbf.P{N: "mx", V: 1}, &dbf.P{N: "my", V: 1}, &dbf.P{N: "mz", V: 1}},
	}
	for key, p := range cases {
		var m Nonlinear
		err := m.Init(p)
		if err == nil {
			tst.Errorf("%s: should have failed\n", key)
			continue
		}
		io.Pforan("%-10s: %v\n", key, err)
	}

	// example parameters
	var m Nonlinear
	if err := m.Init(prms); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// not enough iterations
	mdl = newNonlinear(tst, &dbf.P{N: "maxit", V: 1})
	s := NewResultantState()
	_, err := mdl.Update(s, identity(), [3]float64{1.5e-2, 0, 0}, [3]float64{})
	var cerr *ConvergenceError
	if !errors.As(err, &cerr) {
		tst.Errorf("return mapping should fail with ConvergenceError. err = %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Int(tst, "nit", cerr.Nit, 1)
}
