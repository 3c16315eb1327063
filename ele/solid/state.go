// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/layeredbeam/mdl/sld"

	"gonum.org/v1/gonum/spatial/r3"
)

// State holds the state of one layered beam element
//  Note: all slices are indexed by integration point
type State struct {

	// frame
	Frame Frame // current global-to-local rotation; nil until set by LayeredBeam.NewState

	// layers
	Layers []*sld.LayerState // layer stresses, plastic strains and hardening variables
	Res    []sld.Resultant   // stress resultants of the current step

	// resultant-space plasticity
	Forces []*sld.ResultantState // forces, moments and internal variables; nil if LayeredBeam.Nonlin is nil

	// total strains (global)
	TotalDisp    []r3.Vec
	TotalRot     []r3.Vec
	TotalDispOld []r3.Vec
	TotalRotOld  []r3.Vec

	// mechanical strain increments of the current step (local)
	MechDisp []r3.Vec
	MechRot  []r3.Vec
	Kappa    []float64 // curvature increment driving the layers

	// diagnostics
	EffStiff []float64 // effective stiffness

	// tangent
	Blocks *Blocks // stiffness blocks (global); only computed when requested
}

// NewState allocates a new state for nqp integration points with nl layers each
func NewState(nqp, nl int) *State {
	o := &State{
		Layers:       make([]*sld.LayerState, nqp),
		Res:          make([]sld.Resultant, nqp),
		TotalDisp:    make([]r3.Vec, nqp),
		TotalRot:     make([]r3.Vec, nqp),
		TotalDispOld: make([]r3.Vec, nqp),
		TotalRotOld:  make([]r3.Vec, nqp),
		MechDisp:     make([]r3.Vec, nqp),
		MechRot:      make([]r3.Vec, nqp),
		Kappa:        make([]float64, nqp),
		EffStiff:     make([]float64, nqp),
		Blocks:       NewBlocks(),
	}
	for i := 0; i < nqp; i++ {
		o.Layers[i] = sld.NewLayerState(nl)
	}
	return o
}

// Nqp returns the number of integration points
func (o *State) Nqp() int { return len(o.Layers) }

// Commit accepts the current step
func (o *State) Commit() {
	if o.Frame != nil {
		o.Frame.Commit()
	}
	for _, f := range o.Forces {
		f.Commit()
	}
	for i, l := range o.Layers {
		l.Commit()
		o.TotalDispOld[i] = o.TotalDisp[i]
		o.TotalRotOld[i] = o.TotalRot[i]
	}
}

// Restore discards the current step
func (o *State) Restore() {
	if o.Frame != nil {
		o.Frame.Restore()
	}
	for _, f := range o.Forces {
		f.Restore()
	}
	for i, l := range o.Layers {
		l.Restore()
		o.TotalDisp[i] = o.TotalDispOld[i]
		o.TotalRot[i] = o.TotalRotOld[i]
		o.MechDisp[i] = r3.Vec{}
		o.MechRot[i] = r3.Vec{}
		o.Kappa[i] = 0
	}
}
