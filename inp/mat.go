// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.mat) JSON and load path YAML files
package inp

import (
	"encoding/json"

	"github.com/cpmech/layeredbeam/mdl/sld"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name      string     `json:"name"`      // name of material
	Type      string     `json:"type"`      // type of material; e.g. "beam"
	Model     string     `json:"model"`     // name of model; e.g. "layered"
	Hardening string     `json:"hardening"` // hardening law: "linear" (default) or "function"
	Hfunc     string     `json:"hfunc"`     // name of stress-strain function if hardening == "function"
	Prefactor string     `json:"prefactor"` // name of elasticity prefactor function; may be empty
	Resultant bool       `json:"resultant"` // also run resultant-space plasticity with the same parameters
	Extra     string     `json:"extra"`     // extra information about this material
	Prms      dbf.Params `json:"prms"`      // prms holds all model parameters for this material

	// derived
	Layered *sld.Layered   // pointer to actual layered model
	Nonlin  *sld.Nonlinear // resultant-space plasticity model; nil if not requested
	Pref    dbf.T          // prefactor function; nil if not given
}

// Mats holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData `json:"functions"` // all functions
	Materials MatsData  `json:"materials"` // all materials

	// derived
	Beams map[string]*Material // subset with materials/models: beams
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := readFile(dir, fn)
	if err != nil {
		return nil, err
	}
	return ParseMat(b)
}

// ParseMat decodes and initialises all materials from the contents of a .mat file
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials database:\n%v", err)
	}

	// subsets
	mdb.Beams = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "beam":
			mdb.Beams[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; the only option is \"beam\"", m.Type)
		}
	}

	// alloc/init: beams
	for _, m := range mdb.Beams {
		err = mdb.initBeam(m)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
	}
	return
}

// initBeam allocates and initialises the model of a beam material
func (o *MatDb) initBeam(m *Material) (err error) {
	if m.Model != "layered" {
		return chk.Err("beam model %q is unavailable; the only option is \"layered\"", m.Model)
	}

	// hardening
	name := m.Hardening
	if name == "" {
		name = "linear"
	}
	hard, err := sld.New(name)
	if err != nil {
		return
	}
	if fh, ok := hard.(*sld.FuncHardening); ok {
		if m.Hfunc == "" {
			return chk.Err("function hardening requires \"hfunc\"")
		}
		fh.Fcn, err = o.Functions.Get(m.Hfunc)
		if err != nil {
			return
		}
	}

	// model
	m.Layered = new(sld.Layered)
	err = m.Layered.Init(m.Prms, hard)
	if err != nil {
		return
	}

	// resultant-space plasticity
	if m.Resultant {
		m.Nonlin = new(sld.Nonlinear)
		err = m.Nonlin.Init(m.Prms)
		if err != nil {
			return
		}
	}

	// prefactor
	if m.Prefactor != "" {
		m.Pref, err = o.Functions.Get(m.Prefactor)
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n", o.Name, o.Type, o.Model)
	if o.Hardening != "" {
		l += io.Sf("      \"hardening\" : %q,\n", o.Hardening)
	}
	if o.Hfunc != "" {
		l += io.Sf("      \"hfunc\" : %q,\n", o.Hfunc)
	}
	if o.Prefactor != "" {
		l += io.Sf("      \"prefactor\" : %q,\n", o.Prefactor)
	}
	if o.Resultant {
		l += "      \"resultant\" : true,\n"
	}
	l += io.Sf("      \"extra\" : %q,\n      \"prms\"  : [\n%v\n      ]\n    }", o.Extra, prmsString(o.Prms, "        "))
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v\n}", o.Functions, o.Materials)
}
