// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/layeredbeam/mdl/sld"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Step holds the total DOF values of both nodes at the end of one step
type Step struct {
	U [2][]float64 // displacements at nodes 0 and 1
	R [2][]float64 // rotations at nodes 0 and 1
}

// StepResult holds the results of one step
type StepResult struct {
	Res      []sld.Resultant     // resultants at each integration point
	Nplastic []int               // number of plastic layers at each integration point
	EffStiff []float64           // effective stiffness at each integration point
	K22      [][]float64         // rotations => moments block (global)
	Forces   []sld.ResultantVars // resultant-space plasticity at each integration point; nil if not used
}

// Driver runs a sequence of steps with one layered beam element
type Driver struct {

	// input
	Elem *LayeredBeam // element

	// settings
	TolD float64 // tolerance to check Dm
	StpD float64 // step size for numerical derivative
	VerD bool    // verbose check of Dm

	// check Dm
	TstD *testing.T // if != nil, do check consistent modulus

	// results
	Res   []*StepResult // results
	State *State        // last state
}

// Init initialises driver
func (o *Driver) Init(elem *LayeredBeam) (err error) {
	o.Elem = elem
	o.TolD = 1e-5
	o.StpD = 1e-7
	o.VerD = chk.Verbose
	return
}

// Run runs simulation
//  Note: the DOF values before the first step are zero
func (o *Driver) Run(steps []Step) (err error) {

	// allocate results arrays
	o.Res = make([]*StepResult, len(steps))
	o.State = o.Elem.NewState()

	// previous DOF values
	nu, nr := len(o.Elem.DispKeys), len(o.Elem.RotKeys)
	var prev Step
	for m := 0; m < 2; m++ {
		prev.U[m] = make([]float64, nu)
		prev.R[m] = make([]float64, nr)
	}

	// update states
	var du, dθ [2][]float64
	for i, stp := range steps {

		// increments
		for m := 0; m < 2; m++ {
			du[m], err = diff(stp.U[m], prev.U[m])
			if err != nil {
				return chk.Err("step %d: %v", i, err)
			}
			dθ[m], err = diff(stp.R[m], prev.R[m])
			if err != nil {
				return chk.Err("step %d: %v", i, err)
			}
		}
		inc, e := o.Elem.MakeIncrements(du, dθ)
		if e != nil {
			return chk.Err("step %d: %v", i, e)
		}

		// update
		err = o.Elem.Update(o.State, inc, float64(i+1), nil, true)
		if err != nil {
			o.Elem.Restore(o.State)
			return
		}

		// results
		o.Res[i] = o.results()

		// check consistent modulus
		if o.TstD != nil {
			o.checkD(i)
		}
		o.Elem.Commit(o.State)
		prev = stp
	}
	return
}

// checkD compares the consistent modulus Dm with the numerical derivative dM/dκ
func (o *Driver) checkD(step int) {
	mdl := o.Elem.Mdl
	for idx, ls := range o.State.Layers {
		msg := io.Sf("Dm @ step %d qp %d", step, idx)
		chk.DerivScaSca(o.TstD, msg, o.TolD, o.State.Res[idx].Dm, o.State.Kappa[idx], o.StpD, o.VerD, func(x float64) float64 {
			res, err := mdl.Integrate(ls.GetCopy(), x)
			if err != nil {
				o.TstD.Errorf("%s: integration failed:\n%v", msg, err)
			}
			return res.M
		})
	}
}

// results collects the results of the current step
func (o *Driver) results() *StepResult {
	nqp := o.State.Nqp()
	r := &StepResult{
		Res:      make([]sld.Resultant, nqp),
		Nplastic: make([]int, nqp),
		EffStiff: make([]float64, nqp),
		K22:      tensorToSlice(o.State.Blocks.K22),
	}
	copy(r.Res, o.State.Res)
	copy(r.EffStiff, o.State.EffStiff)
	for idx, ls := range o.State.Layers {
		r.Nplastic[idx] = ls.Nplastic()
	}
	if len(o.State.Forces) > 0 {
		r.Forces = make([]sld.ResultantVars, nqp)
		for idx, f := range o.State.Forces {
			r.Forces[idx] = f.ResultantVars
		}
	}
	return r
}

// diff returns a - b
func diff(a, b []float64) (res []float64, err error) {
	if len(a) != len(b) {
		return nil, chk.Err("number of DOF values must be %d. %d is invalid", len(b), len(a))
	}
	res = make([]float64, len(a))
	for i := range a {
		res[i] = a[i] - b[i]
	}
	return
}
