// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Frame maintains the global-to-local transformation of a beam element
//
//                  ,ŷ (y_orientation)
//                ,'
//      (0)-----o------------------(1)-----> x̂
//              |
//              |
//              ẑ = x̂ × ŷ
//
//   R = [x̂ ŷ ẑ]ᵀ  =>  v_local = R · v_global
//
type Frame interface {
	Init(x0, x1, yOrient r3.Vec) error // computes original frame
	Original() *mat.Dense              // original (undeformed) rotation tensor
	Rotation() *mat.Dense              // current rotation tensor
	Update(Δθ r3.Vec)                  // updates current rotation with the (global) rotation increment of this step
	Commit()                           // accepts current rotation
	Restore()                          // restores rotation of last accepted step
	Kind() string                      // kind of frame
	GetCopy() Frame                    // returns a deep copy
}

// NewFrame returns a new frame
//  kind -- "fixed" or "updated"
func NewFrame(kind string) (Frame, error) {
	switch kind {
	case "", "fixed":
		return new(FixedFrame), nil
	case "updated":
		return new(UpdatedFrame), nil
	}
	return nil, newConfigError("frame kind %q is not available; options are \"fixed\" and \"updated\"", kind)
}

// OrthoTol is the tolerance to check the perpendicularity of x̂ and ŷ
var OrthoTol = 1e-4

// FixedFrame implements a frame that never rotates (small rotations)
type FixedFrame struct {
	R0 *mat.Dense // original rotation tensor
}

// Init computes original frame
func (o *FixedFrame) Init(x0, x1, yOrient r3.Vec) (err error) {
	o.R0, err = originalFrame(x0, x1, yOrient)
	return
}

// Original returns the original rotation tensor
func (o *FixedFrame) Original() *mat.Dense { return o.R0 }

// Rotation returns the current rotation tensor
func (o *FixedFrame) Rotation() *mat.Dense { return o.R0 }

// Update does nothing
func (o *FixedFrame) Update(Δθ r3.Vec) {}

// Commit does nothing
func (o *FixedFrame) Commit() {}

// Restore does nothing
func (o *FixedFrame) Restore() {}

// Kind returns "fixed"
func (o *FixedFrame) Kind() string { return "fixed" }

// GetCopy returns a deep copy
func (o *FixedFrame) GetCopy() Frame {
	return &FixedFrame{copyOf(o.R0)}
}

// UpdatedFrame implements a frame that follows the average rotation of the element
//  R = Rc · Q(Δθ)ᵀ where Rc is the last accepted rotation and Q is given by Rodrigues' formula
type UpdatedFrame struct {
	FixedFrame
	Rc *mat.Dense // last accepted rotation
	R  *mat.Dense // current rotation
}

// Init computes original frame
func (o *UpdatedFrame) Init(x0, x1, yOrient r3.Vec) (err error) {
	err = o.FixedFrame.Init(x0, x1, yOrient)
	if err != nil {
		return
	}
	o.Rc = mat.DenseCopyOf(o.R0)
	o.R = mat.DenseCopyOf(o.R0)
	return
}

// Rotation returns the current rotation tensor
func (o *UpdatedFrame) Rotation() *mat.Dense { return o.R }

// Update updates current rotation
func (o *UpdatedFrame) Update(Δθ r3.Vec) {
	Q := rodrigues(Δθ)
	o.R.Mul(o.Rc, Q.T())
}

// Commit accepts current rotation
func (o *UpdatedFrame) Commit() { o.Rc.Copy(o.R) }

// Restore restores rotation of last accepted step
func (o *UpdatedFrame) Restore() { o.R.Copy(o.Rc) }

// Kind returns "updated"
func (o *UpdatedFrame) Kind() string { return "updated" }

// GetCopy returns a deep copy
func (o *UpdatedFrame) GetCopy() Frame {
	return &UpdatedFrame{FixedFrame{copyOf(o.R0)}, copyOf(o.Rc), copyOf(o.R)}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////

// copyOf returns a copy of a; nil if a is nil
func copyOf(a *mat.Dense) *mat.Dense {
	if a == nil {
		return nil
	}
	return mat.DenseCopyOf(a)
}

// originalFrame computes R = [x̂ ŷ ẑ]ᵀ
//  Note: ŷ is made exactly perpendicular to x̂ after the tolerance check
func originalFrame(x0, x1, yOrient r3.Vec) (R *mat.Dense, err error) {
	ϵ := 1e-14
	dx := r3.Sub(x1, x0)
	if r3.Norm(dx) < ϵ {
		return nil, newConfigError("beam has zero length: x0=%v x1=%v", x0, x1)
	}
	if r3.Norm(yOrient) < ϵ {
		return nil, newConfigError("y_orientation must be non-zero")
	}
	ex := r3.Unit(dx)
	ey := r3.Unit(yOrient)
	if math.Abs(r3.Dot(ex, ey)) > OrthoTol {
		return nil, newConfigError("y_orientation %v should be perpendicular to the axis of the beam %v", yOrient, ex)
	}
	ey = r3.Unit(r3.Sub(ey, r3.Scale(r3.Dot(ex, ey), ex)))
	ez := r3.Cross(ex, ey)
	R = mat.NewDense(3, 3, []float64{
		ex.X, ex.Y, ex.Z,
		ey.X, ey.Y, ey.Z,
		ez.X, ez.Y, ez.Z,
	})
	return
}

// rodrigues computes the rotation tensor for the rotation vector θ
func rodrigues(θ r3.Vec) *mat.Dense {
	α := r3.Norm(θ)
	Q := eye()
	if α < 1e-15 {
		return Q
	}
	k := r3.Scale(1.0/α, θ)
	K := mat.NewDense(3, 3, []float64{
		0, -k.Z, k.Y,
		k.Z, 0, -k.X,
		-k.Y, k.X, 0,
	})
	var K2 mat.Dense
	K2.Mul(K, K)
	s, c := math.Sin(α), 1.0-math.Cos(α)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Q.Set(i, j, Q.At(i, j)+s*K.At(i, j)+c*K2.At(i, j))
		}
	}
	return Q
}
