// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// auxiliary functions for 3x3 tensors and 3-vectors ////////////////////////////////////////////

// newTensor allocates a zero 3x3 tensor
func newTensor() *mat.Dense {
	return mat.NewDense(3, 3, nil)
}

// eye returns the 3x3 identity tensor
func eye() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// mulVec returns R·v
func mulVec(R mat.Matrix, v r3.Vec) r3.Vec {
	return r3.Vec{
		X: R.At(0, 0)*v.X + R.At(0, 1)*v.Y + R.At(0, 2)*v.Z,
		Y: R.At(1, 0)*v.X + R.At(1, 1)*v.Y + R.At(1, 2)*v.Z,
		Z: R.At(2, 0)*v.X + R.At(2, 1)*v.Y + R.At(2, 2)*v.Z,
	}
}

// trMulVec returns Rᵀ·v
func trMulVec(R mat.Matrix, v r3.Vec) r3.Vec {
	return mulVec(R.T(), v)
}

// trMul3 returns Rᵀ·B·R
func trMul3(R, B mat.Matrix) *mat.Dense {
	var tmp, res mat.Dense
	tmp.Mul(R.T(), B)
	res.Mul(&tmp, R)
	return &res
}

// comps returns the components of v as an array
func comps(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// symmetrise sets the lower triangle of a from its upper triangle
func symmetrise(a *mat.Dense) {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			a.Set(j, i, a.At(i, j))
		}
	}
}

// tensorToSlice returns the components of a 3x3 tensor as [3][3] slice
func tensorToSlice(a mat.Matrix) [][]float64 {
	res := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		res[i] = make([]float64, 3)
		for j := 0; j < 3; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return res
}
