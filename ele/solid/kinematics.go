// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Increments holds the (global) nodal increments of the current step
type Increments struct {
	Du0, Du1 r3.Vec // displacement increments at nodes 0 and 1
	Dθ0, Dθ1 r3.Vec // rotation increments at nodes 0 and 1
}

// AvgRotation returns the average rotation increment
func (o Increments) AvgRotation() r3.Vec {
	return r3.Scale(0.5, r3.Add(o.Dθ0, o.Dθ1))
}

// Eigenstrain holds the (global) displacement and rotational eigenstrains of the current and previous steps
type Eigenstrain struct {
	Name    string
	Disp    r3.Vec
	Rot     r3.Vec
	DispOld r3.Vec
	RotOld  r3.Vec
}

// Kinematics holds the local strain increments of one integration point
//
//  displacements at (y,z) in the local system:
//   u1 = un1 - θ3·y + θ2·z
//   u2 = un2 - θ1·z
//   u3 = un3 + θ1·y
//
//  strains:
//   ε11 = un1,1 - θ3,1·y + θ2,1·z
//   γ12 = -θ3 + un2,1 - θ1,1·z
//   γ13 =  θ2 + un3,1 + θ1,1·y
//
//  integrated over the section:
//   Eu = ∫{ε11, γ12, γ13} dA
//   Eθ = ∫{γ13·y - γ12·z, ε11·z, -ε11·y} dA
//
type Kinematics struct {
	Gd    r3.Vec  // local gradient of displacement increments
	Gr    r3.Vec  // local gradient of rotation increments
	Ar    r3.Vec  // local average of rotation increments
	Eu    r3.Vec  // mechanical displacement strain increment (local)
	Eθ    r3.Vec  // mechanical rotational strain increment (local)
	Kappa float64 // curvature increment driving the layers (Gr.Z)
}

// Compute computes local gradients and strain increments
//  Input:
//   inc   -- global nodal increments
//   R     -- global-to-local rotation tensor
//   L     -- original length
//   sec   -- section at integration point
//   large -- add quadratic large strain terms
func (o *Kinematics) Compute(inc Increments, R mat.Matrix, L float64, sec Section, large bool) {

	// local gradients
	o.Gd = mulVec(R, r3.Scale(1.0/L, r3.Sub(inc.Du1, inc.Du0)))
	o.Gr = mulVec(R, r3.Scale(1.0/L, r3.Sub(inc.Dθ1, inc.Dθ0)))
	o.Ar = mulVec(R, inc.AvgRotation())
	o.Kappa = o.Gr.Z

	// small strain
	g, r, a := comps(o.Gd), comps(o.Gr), comps(o.Ar)
	A, Ay, Az, Iy, Iz, Ix := sec.A, sec.Ay, sec.Az, sec.Iy, sec.Iz, sec.GetIx()
	eu := [3]float64{
		g[0]*A - r[2]*Ay + r[1]*Az,
		-a[2]*A + g[1]*A - r[0]*Az,
		a[1]*A + g[2]*A + r[0]*Ay,
	}
	eθ := [3]float64{
		a[1]*Ay + g[2]*Ay + r[0]*Ix + a[2]*Az - g[1]*Az,
		g[0]*Az + r[1]*Iz,
		-g[0]*Ay + r[2]*Iy,
	}

	// large strain
	if large {
		eu[0] += 0.5 * ((g[0]*g[0]+g[1]*g[1]+g[2]*g[2])*A + r[2]*r[2]*Iy + r[1]*r[1]*Iz + r[0]*r[0]*Ix)
		eu[1] += (-a[2]*g[0] + a[0]*g[2]) * A
		eu[2] += (a[1]*g[0] - a[0]*g[1]) * A
		eθ[0] += -a[1]*r[2]*Iy + a[2]*r[1]*Iz
		eθ[1] += (g[0]*r[1] - g[1]*r[0]) * Iz
		eθ[2] += -(g[2]*r[0] - g[0]*r[2]) * Iy
	}
	o.Eu = r3.Vec{X: eu[0], Y: eu[1], Z: eu[2]}
	o.Eθ = r3.Vec{X: eθ[0], Y: eθ[1], Z: eθ[2]}
}

// RemoveEigenstrains subtracts eigenstrain increments from the mechanical strain increments
func (o *Kinematics) RemoveEigenstrains(R mat.Matrix, A float64, eig []Eigenstrain) {
	for _, e := range eig {
		o.Eu = r3.Sub(o.Eu, r3.Scale(A, mulVec(R, r3.Sub(e.Disp, e.DispOld))))
		o.Eθ = r3.Sub(o.Eθ, mulVec(R, r3.Sub(e.Rot, e.RotOld)))
	}
}
