// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ConvergenceCriteria holds the tolerances of the local Newton iterations
type ConvergenceCriteria struct {
	AbsTol float64 // absolute tolerance on residual
	RelTol float64 // relative tolerance on residual/reference
	MaxIt  int     // maximum number of iterations
	MinRef float64 // the relative test is skipped if |reference| <= MinRef
}

// SetDefault sets default values
func (o *ConvergenceCriteria) SetDefault() {
	o.AbsTol = 1e-10
	o.RelTol = 1e-8
	o.MaxIt = 1000
	o.MinRef = 1e-14
}

// Init sets default values and reads optional parameters: atol, rtol, maxit, minref
func (o *ConvergenceCriteria) Init(prms dbf.Params) (err error) {
	o.SetDefault()
	for _, p := range prms {
		switch p.N {
		case "atol":
			o.AbsTol = p.V
		case "rtol":
			o.RelTol = p.V
		case "maxit":
			o.MaxIt = int(p.V)
		case "minref":
			o.MinRef = p.V
		}
	}
	return o.Check()
}

// Check checks values
func (o ConvergenceCriteria) Check() (err error) {
	if o.AbsTol <= 0 || o.RelTol <= 0 {
		return chk.Err("tolerances must be positive. atol=%g, rtol=%g are invalid", o.AbsTol, o.RelTol)
	}
	if o.MaxIt < 1 {
		return chk.Err("maximum number of iterations must be at least 1. maxit=%d is invalid", o.MaxIt)
	}
	if o.MinRef < 0 {
		return chk.Err("minref must be non-negative. minref=%g is invalid", o.MinRef)
	}
	return
}

// Converged checks whether residual is small enough
//  Note: converged if |res| ≤ atol or |res/ref| ≤ rtol
func (o ConvergenceCriteria) Converged(res, ref float64) bool {
	if math.Abs(res) <= o.AbsTol {
		return true
	}
	if math.Abs(ref) <= o.MinRef {
		return false
	}
	return math.Abs(res/ref) <= o.RelTol
}
