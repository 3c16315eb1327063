// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/cpmech/layeredbeam/ana"
	"github.com/cpmech/layeredbeam/ele/solid"
	"github.com/cpmech/layeredbeam/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// toSection converts section data into element section properties
//  Note: if sd.Type is given, properties are computed by ana.CrossSection
func toSection(sd inp.SectionData) (sec solid.Section, err error) {
	if sd.Type == "" {
		sec = solid.Section{A: sd.A, Ay: sd.Ay, Az: sd.Az, Iy: sd.Iy, Iz: sd.Iz, Ix: sd.Ix}
		return
	}
	var cs ana.CrossSection
	err = cs.Init(sd.Type, "m", sd.Wid, sd.Hei, sd.Tf, sd.Tw, sd.R)
	if err != nil {
		return
	}
	sec = solid.Section{A: cs.A, Iy: cs.Iy, Iz: cs.Iz, Ix: cs.Ix}
	return
}

// toSteps converts load path steps into driver steps
func toSteps(lp *inp.LoadPath) (steps []solid.Step) {
	steps = make([]solid.Step, len(lp.Steps))
	for i, s := range lp.Steps {
		steps[i] = solid.Step{
			U: [2][]float64{s.U0, s.U1},
			R: [2][]float64{s.R0, s.R1},
		}
	}
	return
}

// newBeam allocates and initialises a layered beam element
func newBeam(m *inp.Material, lp *inp.LoadPath) (o *solid.LayeredBeam, err error) {
	if m == nil || m.Layered == nil {
		return nil, chk.Err("layered beam material must be given")
	}
	o = &solid.LayeredBeam{
		X0:        vec(lp.X0),
		X1:        vec(lp.X1),
		YOrient:   vec(lp.YOrient),
		Large:     lp.Large,
		DispKeys:  lp.DispKeys,
		RotKeys:   lp.RotKeys,
		Qps:       lp.Qps,
		FrameKind: lp.Frame,
		Mdl:       m.Layered,
		Nonlin:    m.Nonlin,
	}
	if m.Pref != nil {
		o.Prefactor = m.Pref
	}
	for i := 0; i < 2; i++ {
		o.Sec[i], err = toSection(lp.Sections[i])
		if err != nil {
			return nil, chk.Err("section %d: %v", i, err)
		}
	}
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return
}

// vec converts a slice with 3 components to a vector
func vec(v []float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
