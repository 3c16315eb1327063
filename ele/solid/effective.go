// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "math"

// Func defines a scalar function of time and position
//  Note: dbf.T satisfies this interface
type Func interface {
	F(t float64, x []float64) float64
}

// EffectiveStiffness computes the stiffness estimate used by time step heuristics
//  Input:
//   E, G -- Young's and shear moduli
//   L    -- original length
//   A    -- averaged area
//   Iz   -- averaged second moment of area about z
//  Output:
//   k = max(max(√E, √G), L / (2/(√G·√(A/Iz))))
func EffectiveStiffness(E, G, L, A, Iz float64) float64 {
	c1 := math.Sqrt(E)
	c2 := math.Sqrt(G)
	return math.Max(math.Max(c1, c2), L/(2.0/(c2*math.Sqrt(A/Iz))))
}

// ScaledEffectiveStiffness multiplies EffectiveStiffness by √prefactor(t,x)
//  Note: prefactor may be nil
func ScaledEffectiveStiffness(E, G, L, A, Iz float64, prefactor Func, t float64, x []float64) float64 {
	k := EffectiveStiffness(E, G, L, A, Iz)
	if prefactor != nil {
		k *= math.Sqrt(prefactor.F(t, x))
	}
	return k
}
