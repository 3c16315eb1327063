// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import "github.com/cpmech/gosl/io"

// ConvergenceError is returned when the return mapping of a layer does not converge
//  Note: the caller may restore the state and retry with a smaller increment
type ConvergenceError struct {
	Layer int     // index of layer; -1 if unknown
	Nit   int     // number of iterations performed
	Res   float64 // last residual
	Trial float64 // trial stress
}

// Error returns the error message
func (o *ConvergenceError) Error() string {
	return io.Sf("return mapping did not converge: layer=%d nit=%d residual=%g trial=%g", o.Layer, o.Nit, o.Res, o.Trial)
}
