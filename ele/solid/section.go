// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

// Section holds the properties of the cross-section at one node
//  Note: Iyz is taken as zero
type Section struct {
	A  float64 // area
	Ay float64 // first moment of area about y
	Az float64 // first moment of area about z
	Iy float64 // second moment of area about y
	Iz float64 // second moment of area about z
	Ix float64 // torsional moment; zero means Iy+Iz
}

// GetIx returns the torsional moment
func (o Section) GetIx() float64 {
	if o.Ix > 0 {
		return o.Ix
	}
	return o.Iy + o.Iz
}

// Symmetric tells whether the first moments of area are zero
func (o Section) Symmetric() bool {
	return o.Ay == 0 && o.Az == 0
}

// SectionAt interpolates sections of nodes 0 and 1 at ξ ∈ [0,1]
func SectionAt(s0, s1 Section, ξ float64) Section {
	a, b := 1.0-ξ, ξ
	return Section{
		A:  a*s0.A + b*s1.A,
		Ay: a*s0.Ay + b*s1.Ay,
		Az: a*s0.Az + b*s1.Az,
		Iy: a*s0.Iy + b*s1.Iy,
		Iz: a*s0.Iz + b*s1.Iz,
		Ix: a*s0.GetIx() + b*s1.GetIx(),
	}
}

// AvgSection returns the average of the sections of nodes 0 and 1
func AvgSection(s0, s1 Section) Section {
	return SectionAt(s0, s1, 0.5)
}
