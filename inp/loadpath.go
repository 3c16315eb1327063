// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// SectionData holds the definition of a cross-section
//  Note: if Type is empty, the properties A, Ay, Az, Iy, Iz and Ix are used directly
type SectionData struct {
	Type string  `yaml:"type"` // "rectangle", "I-beam", "circle" or "pipe"
	Wid  float64 `yaml:"wid"`  // width
	Hei  float64 `yaml:"hei"`  // height
	Tf   float64 `yaml:"tf"`   // flange thickness
	Tw   float64 `yaml:"tw"`   // web or wall thickness
	R    float64 `yaml:"r"`    // radius

	// properties
	A  float64 `yaml:"a"`
	Ay float64 `yaml:"ay"`
	Az float64 `yaml:"az"`
	Iy float64 `yaml:"iy"`
	Iz float64 `yaml:"iz"`
	Ix float64 `yaml:"ix"`
}

// StepData holds the total DOF values at the end of one step
type StepData struct {
	U0 []float64 `yaml:"u0"` // displacements at node 0
	U1 []float64 `yaml:"u1"` // displacements at node 1
	R0 []float64 `yaml:"r0"` // rotations at node 0
	R1 []float64 `yaml:"r1"` // rotations at node 1
}

// RampData defines steps by linear interpolation from zero to the final values
type RampData struct {
	Nsteps int      `yaml:"nsteps"` // number of steps
	Final  StepData `yaml:"final"`  // values at the last step
}

// LoadPath holds the data to run one element along a sequence of steps
type LoadPath struct {
	Desc     string        `yaml:"desc"`     // description
	X0       []float64     `yaml:"x0"`       // coordinates of node 0
	X1       []float64     `yaml:"x1"`       // coordinates of node 1
	YOrient  []float64     `yaml:"yorient"`  // orientation of local y-axis
	Sections []SectionData `yaml:"sections"` // sections at nodes 0 and 1; one means both
	Large    bool          `yaml:"large"`    // large strain
	Frame    string        `yaml:"frame"`    // "fixed" or "updated"
	Qps      []float64     `yaml:"qps"`      // integration points
	DispKeys []string      `yaml:"dispkeys"` // displacement DOF keys; default = ux, uy, uz
	RotKeys  []string      `yaml:"rotkeys"`  // rotation DOF keys; default = rx, ry, rz
	Steps    []StepData    `yaml:"steps"`    // steps
	Ramp     *RampData     `yaml:"ramp"`     // ramp; used if steps is empty
}

// ReadLoadPath reads a load path from a YAML file
func ReadLoadPath(dir, fn string) (o *LoadPath, err error) {
	b, err := readFile(dir, fn)
	if err != nil {
		return nil, err
	}
	return ParseLoadPath(b)
}

// ParseLoadPath decodes and checks a load path
func ParseLoadPath(b []byte) (o *LoadPath, err error) {
	o = new(LoadPath)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode load path:\n%v", err)
	}

	// defaults
	if len(o.DispKeys) == 0 {
		o.DispKeys = []string{"ux", "uy", "uz"}
	}
	if len(o.RotKeys) == 0 {
		o.RotKeys = []string{"rx", "ry", "rz"}
	}
	if len(o.YOrient) == 0 {
		o.YOrient = []float64{0, 1, 0}
	}

	// check
	for key, v := range map[string][]float64{"x0": o.X0, "x1": o.X1, "yorient": o.YOrient} {
		if len(v) != 3 {
			return nil, chk.Err("%q must have 3 components. %v is invalid", key, v)
		}
	}
	if len(o.Sections) < 1 || len(o.Sections) > 2 {
		return nil, chk.Err("one or two sections must be given. %d is invalid", len(o.Sections))
	}
	if len(o.Sections) == 1 {
		o.Sections = append(o.Sections, o.Sections[0])
	}

	// steps
	if len(o.Steps) == 0 {
		if o.Ramp == nil || o.Ramp.Nsteps < 1 {
			return nil, chk.Err("either steps or ramp with nsteps > 0 must be given")
		}
		o.Steps = o.Ramp.Generate()
	}
	for i := range o.Steps {
		err = o.Steps[i].fill(len(o.DispKeys), len(o.RotKeys))
		if err != nil {
			return nil, chk.Err("step %d: %v", i, err)
		}
	}
	return
}

// Generate generates steps
func (o RampData) Generate() (steps []StepData) {
	steps = make([]StepData, o.Nsteps)
	for i := 0; i < o.Nsteps; i++ {
		α := float64(i+1) / float64(o.Nsteps)
		steps[i] = StepData{
			U0: scaled(α, o.Final.U0),
			U1: scaled(α, o.Final.U1),
			R0: scaled(α, o.Final.R0),
			R1: scaled(α, o.Final.R1),
		}
	}
	return
}

// fill sets missing values to zero
func (o *StepData) fill(nu, nr int) (err error) {
	if o.U0, err = resized("u0", o.U0, nu); err != nil {
		return
	}
	if o.U1, err = resized("u1", o.U1, nu); err != nil {
		return
	}
	if o.R0, err = resized("r0", o.R0, nr); err != nil {
		return
	}
	o.R1, err = resized("r1", o.R1, nr)
	return
}

// scaled returns α·v
func scaled(α float64, v []float64) []float64 {
	res := make([]float64, len(v))
	for i, x := range v {
		res[i] = α * x
	}
	return res
}

// resized returns a copy of v with n components
//  Note: missing components are zero
func resized(key string, v []float64, n int) (res []float64, err error) {
	if len(v) > n {
		return nil, chk.Err("%q must have at most %d components. %v is invalid", key, n, v)
	}
	res = make([]float64, n)
	copy(res, v)
	return
}
