// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Layered implements a layered elastoplastic section for beams
//  Each layer is a 1D elastoplastic material point with isotropic hardening
type Layered struct {

	// parameters
	E  float64 // Young's modulus (also used as bending modulus of layers)
	G  float64 // shear modulus
	Sy float64 // yield stress
	B  float64 // width of section
	D  float64 // depth of section
	Nl int     // number of layers

	// sub-models
	Hard HardeningLaw        // hardening law
	Conv ConvergenceCriteria // tolerances of return mapping

	// options
	Verbose bool // print layer information during integration
}

// Resultant holds stress resultants of one section
type Resultant struct {
	M   float64 // bending moment
	N   float64 // axial force
	Dm  float64 // consistent bending tangent dM/dκ
	Nit int     // maximum number of iterations of all layers
}

// Init initialises model
//  Note: if hard == nil, linear hardening is allocated and initialised with prms
func (o *Layered) Init(prms dbf.Params, hard HardeningLaw) (err error) {

	// required parameters
	for _, key := range []string{"E", "G", "sy", "b", "d", "nl"} {
		if prms.Find(key) == nil {
			return chk.Err("layered model: parameter %q is required", key)
		}
	}
	o.E = prms.Find("E").V
	o.G = prms.Find("G").V
	o.Sy = prms.Find("sy").V
	o.B = prms.Find("b").V
	o.D = prms.Find("d").V
	o.Nl = int(prms.Find("nl").V)

	// check
	if o.E <= 0 || o.G <= 0 {
		return chk.Err("layered model: E and G must be positive. E=%g, G=%g are invalid", o.E, o.G)
	}
	if o.Sy < 0 {
		return chk.Err("layered model: yield stress must be non-negative. sy=%g is invalid", o.Sy)
	}
	if o.B <= 0 || o.D <= 0 {
		return chk.Err("layered model: width and depth must be positive. b=%g, d=%g are invalid", o.B, o.D)
	}
	if o.Nl < 1 {
		return chk.Err("layered model: number of layers must be at least 1. nl=%d is invalid", o.Nl)
	}

	// hardening
	if hard == nil {
		hard = new(LinearHardening)
	}
	err = hard.Init(prms)
	if err != nil {
		return
	}
	if fh, ok := hard.(*FuncHardening); ok && fh.Fcn == nil {
		return chk.Err("layered model: function hardening requires a stress-strain function")
	}
	o.Hard = hard

	// tolerances
	return o.Conv.Init(prms)
}

// GetPrms gets (an example) of parameters
func (o Layered) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 2e5},
		&dbf.P{N: "G", V: 8e4},
		&dbf.P{N: "sy", V: 200},
		&dbf.P{N: "H", V: 1e3},
		&dbf.P{N: "b", V: 0.1},
		&dbf.P{N: "d", V: 0.2},
		&dbf.P{N: "nl", V: 10},
	}
}

// NewState allocates a zero state with the number of layers of this model
func (o Layered) NewState() *LayerState {
	return NewLayerState(o.Nl)
}

// Thickness returns the thickness of layers
func (o Layered) Thickness() float64 {
	return o.D / float64(o.Nl)
}

// Zmid returns the offset of the centroid of layer i w.r.t the neutral axis
func (o Layered) Zmid(i int) float64 {
	t := o.Thickness()
	return -0.5*o.D + (float64(i)+0.5)*t
}

// Integrate updates all layers for the curvature increment Δκ and computes resultants
//  Note: layers are visited from the bottom (z=-d/2) to the top (z=+d/2)
func (o Layered) Integrate(s *LayerState, Δκ float64) (res Resultant, err error) {
	if s.Nlayers() != o.Nl {
		return res, chk.Err("state has %d layers but model requires %d", s.Nlayers(), o.Nl)
	}
	t := o.Thickness()
	var nit int
	var D float64
	for i := 0; i < o.Nl; i++ {
		z := o.Zmid(i)
		nit, err = o.UpdateLayer(s, i, Δκ*z)
		if err != nil {
			return
		}
		if nit > res.Nit {
			res.Nit = nit
		}
		D = o.CalcD(s, i)
		res.M += s.Sig[i] * o.B * z * t
		res.N += s.Sig[i] * o.B * t
		res.Dm += D * o.B * z * z * t
		if o.Verbose {
			io.Pf("layer %3d: z=%10.6f σ=%13.6e εp=%13.6e h=%13.6e plastic=%v\n", i, z, s.Sig[i], s.Epp[i], s.Hv[i], s.Loading[i])
		}
	}
	if o.Verbose {
		io.Pforan("M = %v  N = %v  dM/dκ = %v\n", res.M, res.N, res.Dm)
	}
	return
}

// UpdateLayer updates stress, plastic strain and hardening of layer i for the strain increment Δε
func (o Layered) UpdateLayer(s *LayerState, i int, Δε float64) (nit int, err error) {

	// trial stress
	σtr := s.SigOld[i] + o.E*Δε

	// elastic update
	if math.Abs(σtr)-s.HvOld[i]-o.Sy <= 0 {
		s.Sig[i] = σtr
		s.Epp[i] = s.EppOld[i]
		s.Hv[i] = s.HvOld[i]
		s.Loading[i] = false
		return
	}

	// return mapping
	Δεp, h, nit, err := o.ReturnMap(σtr, s.EppOld[i], s.HvOld[i])
	if err != nil {
		if e, ok := err.(*ConvergenceError); ok {
			e.Layer = i
		}
		return
	}

	// plastic update
	Δεp *= fun.Sign(σtr)
	s.Epp[i] = s.EppOld[i] + Δεp
	s.Sig[i] = s.SigOld[i] + o.E*(Δε-Δεp)
	s.Hv[i] = h
	s.Loading[i] = true
	return
}

// ReturnMap solves the yield condition for the (unsigned) plastic strain increment
//  Input:
//   σtr   -- trial stress
//   εpOld -- previous accumulated plastic strain
//   hOld  -- previous hardening variable
//  Output:
//   Δεp -- plastic strain increment (zero if elastic)
//   h   -- new hardening variable
//   nit -- number of iterations
func (o Layered) ReturnMap(σtr, εpOld, hOld float64) (Δεp, h float64, nit int, err error) {

	// elastic
	f := math.Abs(σtr) - hOld - o.Sy
	if f <= 0 {
		return 0, hOld, 0, nil
	}

	// Newton's method
	h = o.Hard.Value(0, εpOld, hOld)
	res := math.Abs(σtr) - h - o.Sy
	for nit = 0; !o.Conv.Converged(res, math.Abs(σtr)-o.E*Δεp); nit++ {
		if nit == o.Conv.MaxIt {
			return Δεp, h, nit, &ConvergenceError{-1, nit, res, σtr}
		}
		Δεp += res / (o.E + o.Hard.Deriv(Δεp, εpOld))
		h = o.Hard.Value(Δεp, εpOld, hOld)
		res = math.Abs(σtr) - h - o.Sy - o.E*Δεp
	}
	return
}

// CalcD computes the consistent modulus dσ/dε of layer i
func (o Layered) CalcD(s *LayerState, i int) float64 {
	if !s.Loading[i] {
		return o.E
	}
	εpOld := s.EppOld[i]
	Δεp := math.Abs(s.Epp[i] - εpOld)
	hp := o.Hard.Deriv(Δεp, εpOld)
	return o.E * hp / (o.E + hp)
}
