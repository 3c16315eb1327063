// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Curve defines a stress versus accumulated plastic strain curve σ = f(εp)
//  Note: any dbf.T function can be used; the abscissa is passed as 't'
type Curve interface {
	F(t float64, x []float64) float64 // value
	G(t float64, x []float64) float64 // derivative
}

// LinearHardening implements H = H_old + h·Δεp
type LinearHardening struct {
	H float64 // hardening slope
}

// add law to factory
func init() {
	allocators["linear"] = func() HardeningLaw { return new(LinearHardening) }
	allocators["function"] = func() HardeningLaw { return new(FuncHardening) }
}

// Name returns the name of this law
func (o LinearHardening) Name() string { return "linear" }

// Init initialises law
func (o *LinearHardening) Init(prms dbf.Params) (err error) {
	if p := prms.Find("H"); p != nil {
		o.H = p.V
	}
	if o.H < 0 {
		return chk.Err("linear hardening: slope H must be non-negative. H = %g is invalid", o.H)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinearHardening) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "H", V: 1e3},
	}
}

// Value returns the hardening stress
func (o LinearHardening) Value(Δεp, εpOld, hOld float64) float64 {
	return hOld + o.H*Δεp
}

// Deriv returns dH/dΔεp
func (o LinearHardening) Deriv(Δεp, εpOld float64) float64 {
	return o.H
}

// FuncHardening implements H = f(|εp_old| + Δεp) - σy
//  Note: the derivative is evaluated at |εp_old| and kept constant during the iterations
type FuncHardening struct {
	Sy  float64 // yield stress
	Fcn Curve   // engineering stress as a function of plastic strain
}

// Name returns the name of this law
func (o FuncHardening) Name() string { return "function" }

// Init initialises law
func (o *FuncHardening) Init(prms dbf.Params) (err error) {
	p := prms.Find("sy")
	if p == nil {
		return chk.Err("function hardening: parameter \"sy\" is required")
	}
	o.Sy = p.V
	return
}

// GetPrms gets (an example) of parameters
func (o FuncHardening) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "sy", V: 200},
	}
}

// Value returns the hardening stress
func (o FuncHardening) Value(Δεp, εpOld, hOld float64) float64 {
	return o.Fcn.F(math.Abs(εpOld)+Δεp, nil) - o.Sy
}

// Deriv returns dH/dΔεp
func (o FuncHardening) Deriv(Δεp, εpOld float64) float64 {
	return o.Fcn.G(math.Abs(εpOld), nil)
}
