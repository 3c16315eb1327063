// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"gonum.org/v1/gonum/mat"
)

// Blocks holds the 3x3 blocks of the tangent stiffness matrix in the global system
//
//  K = | K11  K12 |   1: displacements
//      | K21  K22 |   2: rotations
//
//  K21x : displacements at node 0 => moments at node 1
//  K22x : rotations at node 0 => moments at node 1
//
type Blocks struct {
	K11  *mat.Dense // displacements => forces
	K21  *mat.Dense // displacements => moments
	K21x *mat.Dense // displacements => moments (cross)
	K22  *mat.Dense // rotations => moments
	K22x *mat.Dense // rotations => moments (cross)
}

// NewBlocks allocates zero blocks
func NewBlocks() *Blocks {
	return &Blocks{newTensor(), newTensor(), newTensor(), newTensor(), newTensor()}
}

// SmallBlocks computes the small strain blocks in the local system
//  Input:
//   E, G -- Young's and shear moduli
//   sec  -- averaged section
//   L    -- original length
//  Output: local blocks. K21x = -K21
func SmallBlocks(E, G float64, sec Section, L float64) (kl *Blocks) {
	A, Iy, Iz, Ix := sec.A, sec.Iy, sec.Iz, sec.GetIx()
	kl = NewBlocks()

	// displacements at node 0 => forces at node 0
	kl.K11.Set(0, 0, E*A/L)
	kl.K11.Set(1, 1, G*A/L)
	kl.K11.Set(2, 2, G*A/L)

	// displacements at node 0 => moments at node 0
	kl.K21.Set(2, 1, G*A*0.5)
	kl.K21.Set(1, 2, -G*A*0.5)
	kl.K21x.Scale(-1, kl.K21)

	// rotations at node 0 => moments at node 0
	kl.K22.Set(0, 0, G*Ix/L)
	kl.K22.Set(1, 1, E*Iz/L+G*A*L/4.0)
	kl.K22.Set(2, 2, E*Iy/L+G*A*L/4.0)

	// rotations at node 0 => moments at node 1
	kl.K22x.Scale(-1, kl.K22)
	kl.K22x.Set(1, 1, kl.K22x.At(1, 1)+2.0*G*A*L/4.0)
	kl.K22x.Set(2, 2, kl.K22x.At(2, 2)+2.0*G*A*L/4.0)
	return
}

// Assemble computes all blocks in the global system
//  Input:
//   E, G  -- Young's and shear moduli
//   sec   -- averaged section
//   L     -- original length
//   R     -- global-to-local rotation
//   kin   -- kinematics of the current step; used if large == true
//   large -- add large strain corrections
func (o *Blocks) Assemble(E, G float64, sec Section, L float64, R mat.Matrix, kin *Kinematics, large bool) {

	// small strain
	kl := SmallBlocks(E, G, sec, L)
	o.K11.Copy(trMul3(R, kl.K11))
	o.K21.Copy(trMul3(R, kl.K21))
	o.K22.Copy(trMul3(R, kl.K22))
	o.K22x.Copy(trMul3(R, kl.K22x))
	o.K21x.Scale(-1, o.K21)
	if !large {
		return
	}

	// large strain
	lb := LargeBlocks(kin, sec, L)
	var t mat.Dense
	t.Add(lb.K1_11, lb.K2_11)
	o.K11.Add(o.K11, trMul3(R, &t))

	t.Add(lb.K1_22, lb.K2_22)
	t.Add(&t, lb.K3_22)
	o.K22.Add(o.K22, trMul3(R, &t))

	t.Add(lb.K1_21, lb.K3_21)
	o.K21.Add(o.K21, trMul3(R, &t))

	t.Sub(lb.K3_21, lb.K1_21)
	o.K21x.Add(o.K21x, trMul3(R, &t))

	t.Sub(lb.K3_22, lb.K1_22)
	t.Sub(&t, lb.K2_22)
	o.K22x.Add(o.K22x, trMul3(R, &t))
}
