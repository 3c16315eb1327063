// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import "github.com/cpmech/gosl/chk"

// LayerState holds the state of all layers of one section (integration point)
//  Note: the 'Old' slices are the converged values of the previous step and are
//        only modified by Commit
type LayerState struct {

	// current
	Sig     []float64 // [nl] direct stress
	Epp     []float64 // [nl] accumulated plastic strain (signed)
	Hv      []float64 // [nl] hardening variable
	Loading []bool    // [nl] plastic loading flags

	// previous step
	SigOld []float64 // [nl] direct stress
	EppOld []float64 // [nl] accumulated plastic strain
	HvOld  []float64 // [nl] hardening variable
}

// NewLayerState allocates state for nl layers
func NewLayerState(nl int) *LayerState {
	if nl < 1 {
		chk.Panic("number of layers must be at least 1. nl=%d is invalid", nl)
	}
	return &LayerState{
		make([]float64, nl), make([]float64, nl), make([]float64, nl), make([]bool, nl),
		make([]float64, nl), make([]float64, nl), make([]float64, nl),
	}
}

// Nlayers returns the number of layers
func (o *LayerState) Nlayers() int { return len(o.Sig) }

// Commit copies current values into previous step values
func (o *LayerState) Commit() {
	copy(o.SigOld, o.Sig)
	copy(o.EppOld, o.Epp)
	copy(o.HvOld, o.Hv)
}

// Restore copies previous step values into current values
func (o *LayerState) Restore() {
	copy(o.Sig, o.SigOld)
	copy(o.Epp, o.EppOld)
	copy(o.Hv, o.HvOld)
	for i := range o.Loading {
		o.Loading[i] = false
	}
}

// Set copies state
//  Note: other and o must have the same number of layers
func (o *LayerState) Set(other *LayerState) {
	copy(o.Sig, other.Sig)
	copy(o.Epp, other.Epp)
	copy(o.Hv, other.Hv)
	copy(o.Loading, other.Loading)
	copy(o.SigOld, other.SigOld)
	copy(o.EppOld, other.EppOld)
	copy(o.HvOld, other.HvOld)
}

// GetCopy returns a copy of this state
func (o *LayerState) GetCopy() *LayerState {
	other := NewLayerState(o.Nlayers())
	other.Set(o)
	return other
}

// Nplastic returns the number of layers currently loading plastically
func (o *LayerState) Nplastic() (n int) {
	for _, l := range o.Loading {
		if l {
			n++
		}
	}
	return
}

// ResultantVars holds the stress resultants and internal variables of resultant-space plasticity
type ResultantVars struct {
	F   [3]float64 // forces (global)
	M   [3]float64 // moments (global)
	Af  [3]float64 // back forces (kinematic hardening)
	Am  [3]float64 // back moments (kinematic hardening)
	Qf  [3]float64 // isotropic hardening variables of forces
	Qm  [3]float64 // isotropic hardening variables of moments
	Epf [3]float64 // translational plastic strains
	Epm [3]float64 // rotational plastic strains
}

// ResultantState holds the state of resultant-space plasticity at one integration point
type ResultantState struct {
	ResultantVars               // current
	Old           ResultantVars // previous step
	Loading       bool          // plastic loading flag
}

// NewResultantState allocates a zero state
func NewResultantState() *ResultantState {
	return new(ResultantState)
}

// Commit copies current values into previous step values
func (o *ResultantState) Commit() { o.Old = o.ResultantVars }

// Restore copies previous step values into current values
func (o *ResultantState) Restore() {
	o.ResultantVars = o.Old
	o.Loading = false
}

// GetCopy returns a copy of this state
func (o *ResultantState) GetCopy() *ResultantState {
	other := *o
	return &other
}
