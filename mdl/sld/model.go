// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sld implements one-dimensional elastoplastic models for the layers of beam sections
/*
 *           z ^       layer i: zmid_i = -d/2 + (i+½)·t,  t = d/N
 *             |
 *        +---------+  ---
 *        |  N-1    |   |
 *        +---------+   |        trial:   σtr = σold + E·κ·zmid
 *        |   ...   |   d        yield:   f = |σtr| - H - σy
 *        +---------+   |        update:  σ = σold + E·(κ·zmid - Δεp)
 *        |    0    |   |
 *        +---------+  ---       resultant: M = Σ σ_i·b·zmid_i·t
 *        |<-- b -->|
 */
package sld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// HardeningLaw defines the interface for isotropic hardening laws of layers
//  Note: Δεp is the (unsigned) plastic strain increment of the current step
type HardeningLaw interface {
	Init(prms dbf.Params) error             // initialises law
	GetPrms() dbf.Params                    // gets (an example) of parameters
	Value(Δεp, εpOld, hOld float64) float64 // hardening stress H for given increment
	Deriv(Δεp, εpOld float64) float64       // derivative dH/dΔεp
	Name() string                           // name of law in database
}

// New returns new hardening law
func New(name string) (model HardeningLaw, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("hardening law %q is not available in 'sld' database", name)
	}
	return allocator(), nil
}

// allocators holds all available hardening laws; name => allocator
var allocators = map[string]func() HardeningLaw{}
