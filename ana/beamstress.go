// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Forces holds the stress resultants at one point along a beam (local system)
type Forces struct {
	Fx, Fy, Fz float64 // axial and shear forces
	My, Mz     float64 // bending moments
}

// BeamStress recovers the stress components σ11, σ12 and σ13 from the stress resultants
type BeamStress struct {
	Sec *CrossSection // rectangle, circle or pipe
}

// Rectangle computes the stresses at a point of a rectangular section
//  Input:
//   y, z -- normalised coordinates ∈ [0,1] along width and depth
func (o BeamStress) Rectangle(f Forces, y, z float64) (σ11, σ12, σ13 float64, err error) {
	if o.Sec.Type != "rectangle" {
		return 0, 0, 0, chk.Err("section must be rectangle. %q is invalid", o.Sec.Type)
	}
	wy, hz := o.Sec.Wid, o.Sec.Hei // extents along y and z
	wy3, hz3 := wy*wy*wy, hz*hz*hz
	σ11 = f.Fx/(wy*hz) + 12.0*f.Mz*(y-0.5)*wy/(hz*wy3) + 12.0*f.My*(z-0.5)*hz/(wy*hz3)
	σ12 = 6.0 * f.Fy * wy * wy * (0.25 - (y-0.5)*(y-0.5)) / (hz * wy3)
	σ13 = 6.0 * f.Fz * hz * hz * (0.25 - (z-0.5)*(z-0.5)) / (wy * hz3)
	return
}

// Circle computes the stresses at a point of a circular section
//  Input:
//   ρ -- normalised radial coordinate ∈ [0,1]
//   θ -- angle in degrees measured from the z-axis
func (o BeamStress) Circle(f Forces, ρ, θ float64) (σ11, σ12, σ13 float64, err error) {
	if o.Sec.Type != "circle" {
		return 0, 0, 0, chk.Err("section must be circle. %q is invalid", o.Sec.Type)
	}
	r := o.Sec.R
	r4 := r * r * r * r
	y, z := polar(ρ*r, θ)
	σ11 = f.Fx/(math.Pi*r*r) + 4.0*f.Mz*y/(math.Pi*r4) + 4.0*f.My*z/(math.Pi*r4)
	σ12 = 4.0 * f.Fy * (r*r - y*y) / (3.0 * math.Pi * r4)
	σ13 = 4.0 * f.Fz * (r*r - z*z) / (3.0 * math.Pi * r4)
	return
}

// Pipe computes the stresses at a point of a pipe section
//  Input:
//   ρ -- normalised coordinate through the wall ∈ [0,1]; 0 is the inner surface
//   θ -- angle in degrees measured from the z-axis
func (o BeamStress) Pipe(f Forces, ρ, θ float64) (σ11, σ12, σ13 float64, err error) {
	if o.Sec.Type != "pipe" {
		return 0, 0, 0, chk.Err("section must be pipe. %q is invalid", o.Sec.Type)
	}
	ro, t := o.Sec.R, o.Sec.Tw
	ri := ro - t
	I := math.Pi * (math.Pow(ro, 4) - math.Pow(ri, 4)) / 4.0
	y, z := polar(ρ*t+ri, θ)
	σ11 = f.Fx/o.Sec.A + f.Mz*y/I + f.My*z/I
	σ12 = pipeTau(f.Fy, I, ro, ri, y)
	σ13 = pipeTau(f.Fz, I, ro, ri, z)
	return
}

// pipeTau returns the shear stress F·Q/(I·b) at the chord c
//  Note: the shear stress is zero at the outer fibre where b = 0
func pipeTau(F, I, ro, ri, c float64) float64 {
	Q, b := pipeShear(ro, ri, c)
	if b <= 0 {
		return 0
	}
	return F * Q / (I * b)
}

// pipeShear returns the first moment Q of the area beyond the chord at c and the chord width b
func pipeShear(ro, ri, c float64) (Q, b float64) {
	c2 := c * c
	if math.Abs(c) < ri {
		Q = 2.0 * (math.Pow(ro*ro-c2, 1.5) - math.Pow(ri*ri-c2, 1.5)) / 3.0
		b = 2.0 * (math.Sqrt(ro*ro-c2) - math.Sqrt(ri*ri-c2))
		return
	}
	h := math.Max(ro*ro-c2, 0)
	Q = 2.0 * math.Pow(h, 1.5) / 3.0
	b = 2.0 * math.Sqrt(h)
	return
}

// polar returns y = r·sin(θ) and z = r·cos(θ) with θ in degrees
func polar(r, θ float64) (y, z float64) {
	α := θ * math.Pi / 180.0
	return r * math.Sin(α), r * math.Cos(α)
}
