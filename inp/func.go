// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: curve, prefactor, myfunction1, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp, lin
	Prms dbf.Params `json:"prms"` // parameters
}

// Funcs holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// newFunc allocates and initialises a function from the dbf database
//  Note: dbf.New panics on unknown types or invalid parameters; the panic is returned as error
func newFunc(typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("function type %q with parameters %v is invalid:\n%v", typ, prms, r)
		}
	}()
	fcn = dbf.New(typ, prms)
	return
}

// readFile reads the contents of a file
//  Note: io.ReadFile panics if the file cannot be read; the panic is returned as error
func readFile(dir, fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file %q:\n%v", filepath.Join(dir, fn), r)
		}
	}()
	b = io.ReadFile(filepath.Join(dir, fn))
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\n      \"name\":%q, \"type\":%q, \"prms\" : [\n%v\n      ]\n    }", o.Name, o.Type, prmsString(o.Prms, "        "))
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}

// prmsString prints parameters in the format of .mat files
func prmsString(prms dbf.Params, indent string) (l string) {
	for i, p := range prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%s{\"n\":%q, \"v\":%g}", indent, p.N, p.V)
	}
	return
}
