// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/layeredbeam/mdl/sld"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

// LayeredBeam implements the constitutive core of a 3D Timoshenko beam with a layered section
//
//                     ,ŷ
//      X0           ,'                    X1
//      (0)--------o-----------------------(1)----> x̂
//       Sec[0]    |  qp at ξ ∈ [0,1]       Sec[1]
//                 ẑ
//
//  The section is divided into Nl layers along the local z-direction; each layer is
//  a 1D elastoplastic material point driven by the curvature increment
//
type LayeredBeam struct {

	// geometry
	X0, X1  r3.Vec     // coordinates of nodes 0 and 1
	Sec     [2]Section // sections at nodes 0 and 1
	YOrient r3.Vec     // orientation of local y-axis

	// options
	Large     bool      // large strain terms in kinematics and stiffness
	DispKeys  []string  // displacement DOF keys, e.g. {"ux","uy","uz"}
	RotKeys   []string  // rotation DOF keys, e.g. {"rx","ry","rz"}
	Qps       []float64 // coordinates of integration points along the beam ∈ [0,1]; default = {0.5}
	FrameKind string    // "fixed" or "updated"
	Eigen     []string  // names of eigenstrains to subtract; empty means all given to Update
	Prefactor Func      // elasticity prefactor for the effective stiffness; may be nil
	Verbose   bool      // show messages

	// models
	Mdl    *sld.Layered   // layered material
	Nonlin *sld.Nonlinear // resultant-space plasticity driven by the mechanical strains; may be nil

	// derived
	L     float64 // original length
	frame Frame   // original frame; each State holds its own copy
}

// Init checks input data and computes derived values
func (o *LayeredBeam) Init() (err error) {

	// model
	if o.Mdl == nil {
		return newConfigError("material model must be given")
	}
	if o.Mdl.Nl < 1 {
		return newConfigError("number of layers must be at least 1. nl=%d is invalid", o.Mdl.Nl)
	}
	if o.Mdl.E <= 0 || o.Mdl.G <= 0 {
		return newConfigError("moduli must be positive. E=%g, G=%g", o.Mdl.E, o.Mdl.G)
	}

	// DOFs
	nu, nr := len(o.DispKeys), len(o.RotKeys)
	if nu != nr {
		return newConfigError("number of displacement DOFs (%d) must be equal to the number of rotation DOFs (%d)", nu, nr)
	}
	if nu < 1 || nu > 3 {
		return newConfigError("number of displacement DOFs must be 1, 2 or 3. %d is invalid", nu)
	}

	// sections
	for m, s := range o.Sec {
		if s.A <= 0 || s.Iy <= 0 || s.Iz <= 0 {
			return newConfigError("section at node %d must have positive A, Iy and Iz. %+v is invalid", m, s)
		}
		if o.Large && !s.Symmetric() {
			return newConfigError("large strain requires zero first moments of area. node %d has Ay=%g, Az=%g", m, s.Ay, s.Az)
		}
	}

	// integration points
	if len(o.Qps) == 0 {
		o.Qps = []float64{0.5}
	}
	for _, ξ := range o.Qps {
		if ξ < 0 || ξ > 1 {
			return newConfigError("integration point coordinates must be in [0,1]. %g is invalid", ξ)
		}
	}

	// frame
	frm, err := NewFrame(o.FrameKind)
	if err != nil {
		return
	}
	err = frm.Init(o.X0, o.X1, o.YOrient)
	if err != nil {
		return
	}
	o.frame = frm
	o.L = r3.Norm(r3.Sub(o.X1, o.X0))
	return
}

// NewState allocates a new state with a copy of the original frame
//  Note: Init must be called first
func (o *LayeredBeam) NewState() *State {
	st := NewState(len(o.Qps), o.Mdl.Nl)
	st.Frame = o.frame.GetCopy()
	if o.Nonlin != nil {
		st.Forces = make([]*sld.ResultantState, len(o.Qps))
		for i := range st.Forces {
			st.Forces[i] = sld.NewResultantState()
		}
	}
	return st
}

// MakeIncrements builds increments from the DOF increments of both nodes
//  du[m] and dθ[m] -- increments at node m with len(DispKeys) and len(RotKeys) components
//  Note: missing components are zero
func (o *LayeredBeam) MakeIncrements(du, dθ [2][]float64) (inc Increments, err error) {
	var v [4]r3.Vec
	for m := 0; m < 2; m++ {
		if len(du[m]) != len(o.DispKeys) || len(dθ[m]) != len(o.RotKeys) {
			return inc, chk.Err("node %d: number of increments (%d,%d) must be equal to number of DOFs (%d,%d)", m, len(du[m]), len(dθ[m]), len(o.DispKeys), len(o.RotKeys))
		}
		v[m] = toVec(du[m])
		v[2+m] = toVec(dθ[m])
	}
	return Increments{v[0], v[1], v[2], v[3]}, nil
}

// Update computes stresses, resultants and, optionally, the tangent blocks of the current step
//  Input:
//   st      -- element state
//   inc     -- nodal increments of the current step (global)
//   t       -- current time
//   eig     -- eigenstrains
//   tangent -- compute stiffness blocks
//  Note: the previous step values in st are not modified; repeated calls within one step are allowed
func (o *LayeredBeam) Update(st *State, inc Increments, t float64, eig []Eigenstrain, tangent bool) (err error) {

	// frame
	if st.Frame == nil {
		return chk.Err("state has no frame; it must be allocated by LayeredBeam.NewState")
	}
	if o.Nonlin != nil && len(st.Forces) != len(o.Qps) {
		return chk.Err("state has no resultant variables; it must be allocated by LayeredBeam.NewState")
	}
	st.Frame.Update(inc.AvgRotation())
	R := st.Frame.Rotation()
	avg := AvgSection(o.Sec[0], o.Sec[1])
	eigen := o.selectEigen(eig)

	// loop over integration points
	var kin Kinematics
	E, G := o.Mdl.E, o.Mdl.G
	for idx, ξ := range o.Qps {

		// strain increments
		sec := SectionAt(o.Sec[0], o.Sec[1], ξ)
		kin.Compute(inc, R, o.L, sec, o.Large)
		st.TotalDisp[idx] = r3.Add(trMulVec(R, kin.Eu), st.TotalDispOld[idx])
		st.TotalRot[idx] = r3.Add(trMulVec(R, kin.Eθ), st.TotalRotOld[idx])
		kin.RemoveEigenstrains(R, sec.A, eigen)
		st.MechDisp[idx] = kin.Eu
		st.MechRot[idx] = kin.Eθ
		st.Kappa[idx] = kin.Kappa

		// stresses
		st.Res[idx], err = o.Mdl.Integrate(st.Layers[idx], kin.Kappa)
		if err != nil {
			return
		}

		// forces and moments
		if o.Nonlin != nil {
			_, err = o.Nonlin.Update(st.Forces[idx], R, comps(st.MechDisp[idx]), comps(st.MechRot[idx]))
			if err != nil {
				return chk.Err("qp %d: resultant model failed:\n%v", idx, err)
			}
		}

		// effective stiffness
		x := r3.Add(o.X0, r3.Scale(ξ, r3.Sub(o.X1, o.X0)))
		st.EffStiff[idx] = ScaledEffectiveStiffness(E, G, o.L, avg.A, avg.Iz, o.Prefactor, t, []float64{x.X, x.Y, x.Z})

		if o.Verbose {
			io.Pf("qp=%d ξ=%g κ=%13.6e M=%13.6e nplastic=%d\n", idx, ξ, kin.Kappa, st.Res[idx].M, st.Layers[idx].Nplastic())
		}
	}

	// tangent
	if tangent {
		st.Blocks.Assemble(E, G, avg, o.L, R, &kin, o.Large)
	}
	return
}

// Commit accepts the current step
func (o *LayeredBeam) Commit(st *State) { st.Commit() }

// Restore discards the current step
func (o *LayeredBeam) Restore(st *State) { st.Restore() }

// auxiliary ///////////////////////////////////////////////////////////////////////////////////

// selectEigen returns the eigenstrains with names in o.Eigen
func (o *LayeredBeam) selectEigen(eig []Eigenstrain) []Eigenstrain {
	if len(o.Eigen) == 0 {
		return eig
	}
	var res []Eigenstrain
	for _, e := range eig {
		for _, name := range o.Eigen {
			if e.Name == name {
				res = append(res, e)
				break
			}
		}
	}
	return res
}

// toVec converts up to 3 components into a vector
func toVec(v []float64) (res r3.Vec) {
	var c [3]float64
	copy(c[:], v)
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}
