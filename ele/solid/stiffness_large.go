// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"gonum.org/v1/gonum/mat"
)

// LargeCorrections holds the local large strain corrections of the stiffness blocks
//  k1: from σxx·δεxx
//  k2: from τxy·δγxy and τxz·δγxz (node 1 is the negative of node 0)
//  k3: from τxy·δγxy and τxz·δγxz (node 1 equals node 0)
type LargeCorrections struct {
	K1_11, K1_21, K1_22 *mat.Dense
	K2_11, K2_22        *mat.Dense
	K3_21, K3_22        *mat.Dense
}

// LargeBlocks computes the large strain corrections in the local system
//  Input:
//   kin -- local gradients (Gd, Gr) and average rotation (Ar)
//   sec -- averaged section
//   L   -- original length
func LargeBlocks(kin *Kinematics, sec Section, L float64) (lb *LargeCorrections) {

	g, r, a := comps(kin.Gd), comps(kin.Gr), comps(kin.Ar)
	Iy, Iz, Ix := sec.Iy, sec.Iz, sec.GetIx()
	c4L2 := 1.0 / (4.0 * L * L)
	c8L := 1.0 / (8.0 * L)
	c3 := 1.0 / 3.0
	c6 := 1.0 / 6.0
	sq := func(x float64) float64 { return x * x }

	lb = new(LargeCorrections)

	// k1_11
	k := newTensor()
	k.Set(0, 0, sq(g[0])+1.5*sq(r[2])*Iy+1.5*sq(r[1])*Iz+0.5*sq(g[1])+0.5*sq(g[2])+0.5*sq(r[0])*Ix)
	k.Set(0, 1, 0.5*g[0]*g[1]-c3*r[0]*r[1]*Iz)
	k.Set(0, 2, 0.5*g[0]*g[2]-c3*r[0]*r[2]*Iy)
	k.Set(1, 1, sq(g[1])+1.5*sq(r[0])*Iz+0.5*sq(g[0])+0.5*sq(g[2])+0.5*sq(r[2])*Iy+0.5*sq(r[1])*Iz+0.5*sq(r[0])*Iy)
	k.Set(1, 2, 0.5*g[1]*g[2])
	k.Set(2, 2, sq(g[2])+1.5*sq(r[0])*Iy+0.5*sq(g[0])+0.5*sq(g[1])+0.5*sq(r[0])*Iz+0.5*sq(r[2])*Iy+0.5*sq(r[2])*Iz)
	symmetrise(k)
	k.Scale(c4L2, k)
	lb.K1_11 = k

	// k1_21
	k = newTensor()
	k.Set(0, 0, 0.5*g[0]*r[0]*Ix-c3*g[1]*r[1]*Iz-c3*g[2]*r[2]*Iy)
	k.Set(0, 1, 1.5*g[0]*r[1]*Iz-c3*g[1]*r[0]*Iz)
	k.Set(0, 2, 1.5*g[0]*r[2]*Iy-c3*g[2]*r[0]*Iy)
	k.Set(1, 1, 0.5*g[1]*r[1]*Iz-c3*g[0]*r[0]*Iz)
	k.Set(1, 2, 0.5*g[1]*r[2]*Iy)
	k.Set(2, 2, 0.5*g[2]*r[2]*Iy-c3*g[0]*r[0]*Iy)
	symmetrise(k)
	k.Scale(c4L2, k)
	lb.K1_21 = k

	// k1_22
	k = newTensor()
	k.Set(0, 0, sq(r[0])*sq(Ix)+1.5*sq(g[1])*Iz+1.5*sq(g[2])*Iy+0.5*sq(g[0])*Ix+0.5*sq(g[2])*Iz+0.5*sq(g[1])*Iy+0.5*sq(r[2])*Iy*Ix+0.5*sq(r[1])*Iz*Ix)
	k.Set(0, 1, 0.5*r[0]*r[1]*Iz*Ix-c3*g[0]*g[1]*Iz)
	k.Set(0, 2, 0.5*r[0]*r[2]*Iy*Ix-c3*g[0]*g[2]*Iy)
	k.Set(1, 1, sq(r[1])*Iz*Iz+1.5*sq(g[0])*Iz+1.5*sq(r[2])*Iy*Iz+0.5*sq(g[1])*Iz+0.5*sq(g[2])*Iz+0.5*sq(r[0])*Iz*Ix)
	k.Set(1, 2, 1.5*r[1]*r[2]*Iy*Iz)
	k.Set(2, 2, sq(r[2])*Iy*Iy+1.5*sq(g[0])*Iy+1.5*sq(r[1])*Iy*Iz+0.5*sq(g[1])*Iy+0.5*sq(g[2])*Iy+0.5*sq(r[0])*Iz*Ix)
	symmetrise(k)
	k.Scale(c4L2, k)
	lb.K1_22 = k

	// k2_11
	k = newTensor()
	k.Set(0, 0, 0.25*sq(a[2])+0.25*sq(a[1]))
	k.Set(0, 1, -c6*a[0]*a[1])
	k.Set(0, 2, -c6*a[0]*a[2])
	k.Set(1, 1, 0.25*sq(a[0]))
	k.Set(2, 2, 0.25*sq(a[0]))
	symmetrise(k)
	k.Scale(c4L2, k)
	lb.K2_11 = k

	// k2_22
	k = newTensor()
	k.Set(0, 0, 0.25*sq(a[0])*Ix)
	k.Set(0, 1, c6*a[0]*a[1]*Iz)
	k.Set(0, 2, c6*a[0]*a[2]*Iy)
	k.Set(1, 1, 0.25*sq(a[2])*Iz+0.25*sq(a[1])*Iz)
	k.Set(2, 2, 0.25*sq(a[2])*Iy+0.25*sq(a[1])*Iy)
	symmetrise(k)
	k.Scale(c4L2, k)
	lb.K2_22 = k

	// k3_22
	k = newTensor()
	k.Set(0, 0, 0.25*sq(g[2])+0.25*sq(r[0])*Ix+0.25*sq(g[1]))
	k.Set(0, 1, -c6*g[0]*g[1]+c6*r[0]*r[1]*Iz)
	k.Set(0, 2, -c6*g[0]*g[2]+c6*r[0]*r[2]*Iy)
	k.Set(1, 1, 0.25*sq(g[0])+0.25*sq(r[2])*Iy+0.25*sq(r[1])*Iz)
	k.Set(2, 2, 0.25*sq(g[0])+0.25*sq(r[2])*Iy+0.25*sq(r[1])*Iz)
	symmetrise(k)
	k.Scale(1.0/16.0, k)

	// k4_22 (rotation gradients times average rotations)
	k4 := newTensor()
	k4.Set(0, 0, 0.25*r[0]*a[0]*Ix+c6*r[2]*a[2]*Iy+c6*r[1]*a[1]*Iz)
	k4.Set(1, 0, c6*r[1]*a[0]*Iz)
	k4.Set(2, 0, c6*r[2]*a[0]*Iy)
	k4.Set(0, 1, c6*r[0]*a[1]*Iz)
	k4.Set(1, 1, 0.25*r[1]*a[1]*Iz+c6*r[0]*a[0]*Iz)
	k4.Set(2, 1, 0.25*r[1]*a[2]*Iz)
	k4.Set(0, 2, c6*r[0]*a[2]*Iy)
	k4.Set(1, 2, 0.25*r[2]*a[1]*Iy)
	k4.Set(2, 2, 0.25*r[2]*a[2]*Iy+c6*r[0]*a[0]*Iy)
	var k4s mat.Dense
	k4s.Add(k4, k4.T())
	k4s.Scale(c8L, &k4s)
	k.Add(k, &k4s)
	lb.K3_22 = k

	// k3_21
	k = newTensor()
	k.Set(0, 0, -c6*(g[2]*a[2]+g[1]*a[1]))
	k.Set(1, 0, 0.25*g[0]*a[1]-c6*g[1]*a[0])
	k.Set(2, 0, 0.25*g[0]*a[2]-c6*g[2]*a[0])
	k.Set(0, 1, 0.25*g[1]*a[0]-c6*g[0]*a[1])
	k.Set(1, 1, -c6*g[0]*a[0])
	k.Set(0, 2, 0.25*g[2]*a[0]-c6*g[0]*a[2])
	k.Set(2, 2, -c6*g[0]*a[0])
	k.Scale(c8L, k)
	lb.K3_21 = k
	return
}
