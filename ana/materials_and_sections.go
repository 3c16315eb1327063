// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions and section properties
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes cross-sectional moments of inertia and other properties
//
//                  ^ z (depth direction; layers are stacked along z)
//                  |
//            +-----|-----+  ---
//            |     |     |   |
//            |     +-----|---|----> y
//            |           |   | h = hei
//            |           |   |
//            +-----------+  ---
//              b = wid
//
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//         pipe                       ___    | |     ___
//                                  tf |   ########   |
//          .-'''-.  ro = rad         ---  ########   |
//         /  .-.  \                          ##      |
//         | |   | |  t = tw                  ##      | h = hei
//         \  '-'  /                          ##      |
//          '-...-'                   ---  ########   |
//                                  tf_|_  ########  ---
//                                         b = wid
//
//  Note: all sections are doubly symmetric; i.e. the first moments of area are zero
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam", "circle" or "pipe"
	Unit string  // unit of length
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam or wall thickness if pipe
	R    float64 // (outer) radius if circular or pipe

	// derived
	A  float64 // cross-sectional area
	Iy float64 // second moment of area ∫y² dA
	Iz float64 // second moment of area ∫z² dA
	Ix float64 // torsional constant
}

// Init initialises structure and computes moment of inertia
func (o *CrossSection) Init(typ, unitLen string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Unit, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, unitLen, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		if b <= 0 || h <= 0 {
			return chk.Err("rectangle: width and height must be positive. b=%g, h=%g is invalid", b, h)
		}
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.Iz = b * h3 / 12.0
		o.Iy = b3 * h / 12.0
		if b == h {
			o.Ix = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.Ix = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}

	case "I-beam":
		b, h := wid, hei
		if b <= 0 || h <= 2.0*tf || tf <= 0 || tw <= 0 || tw > b {
			return chk.Err("I-beam: dimensions are invalid. b=%g, h=%g, tf=%g, tw=%g", b, h, tf, tw)
		}
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.Iz = b*h3/12.0 - (b-tw)*l3/12.0
		o.Iy = l*tw3/12.0 + tf*b3/6.0
		o.Ix = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0

	case "circle":
		if rad <= 0 {
			return chk.Err("circle: radius must be positive. r=%g is invalid", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Iz = math.Pi * r2 * r2 / 4.0
		o.Iy = o.Iz
		o.Ix = o.Iz + o.Iy

	case "pipe":
		ro, ri := rad, rad-tw
		if ro <= 0 || tw <= 0 || ri < 0 {
			return chk.Err("pipe: radius and thickness are invalid. r=%g, t=%g", ro, tw)
		}
		o.A = math.Pi * (ro*ro - ri*ri)
		o.Iz = math.Pi * (math.Pow(ro, 4) - math.Pow(ri, 4)) / 4.0
		o.Iy = o.Iz
		o.Ix = o.Iz + o.Iy

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// Depth returns the extent of the section along z
func (o *CrossSection) Depth() float64 {
	switch o.Type {
	case "circle", "pipe":
		return 2.0 * o.R
	}
	return o.Hei
}

// Width returns the width of the equivalent layered section with the same depth and area
func (o *CrossSection) Width() float64 {
	if o.Type == "rectangle" {
		return o.Wid
	}
	return o.A / o.Depth()
}

// GetMatString returns string representation of cross-section for .mat file
func (o *CrossSection) GetMatString(numfmt string) string {
	l := io.Sf("        {\"n\":\"A\",  \"v\":"+numfmt+", \"u\":\""+o.Unit+"²\"},\n", o.A)
	l += io.Sf("        {\"n\":\"Iy\", \"v\":"+numfmt+", \"u\":\""+o.Unit+"⁴\"},\n", o.Iy)
	l += io.Sf("        {\"n\":\"Iz\", \"v\":"+numfmt+", \"u\":\""+o.Unit+"⁴\"},\n", o.Iz)
	l += io.Sf("        {\"n\":\"Ix\", \"v\":"+numfmt+", \"u\":\""+o.Unit+"⁴\"}", o.Ix)
	return l
}

// Material holds parameters of some reference materials
type Material struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	Desc string  // description
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	G    float64 // shear modulus
	Sy   float64 // yield stress
	H    float64 // hardening modulus
}

// Init initialises material paramters
//  Input:
//   unitPres:  "kPa", "MPa" or "GPa"
func (o *Material) Init(typ, unitPres string) (err error) {

	// material data
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0 // [MPa]
		o.Nu = 0.32    // [-]
		o.Sy = 250.0   // [MPa]
		o.H = 1000.0   // [MPa]
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E = 73100.0 // [MPa]
		o.Nu = 0.35   // [-]
		o.Sy = 414.0  // [MPa]
		o.H = 700.0   // [MPa]
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E = 13100.0 // [MPa]
		o.Nu = 0.29   // [-]
		o.Sy = 50.0   // [MPa]
		o.H = 0.0     // [MPa]
	default:
		return chk.Err("material type %q is unavailable", typ)
	}

	// set unit
	o.Type = typ
	o.UnitPres = unitPres
	MPa_to_unitPres := 1.0 // convert from MPa to unitPress (e.g. kPa)
	switch unitPres {
	case "kPa":
		MPa_to_unitPres = 1e3
	case "MPa":
	case "GPa":
		MPa_to_unitPres = 1e-3
	default:
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}

	// convert values to requested units
	o.E *= MPa_to_unitPres
	o.Sy *= MPa_to_unitPres
	o.H *= MPa_to_unitPres

	// derived quantity
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// GetMatString returns string representation of a layered beam material for a .mat file
//  Note: width and depth of the layered section are taken from section
func (o *Material) GetMatString(name, numfmt string, nl int, section *CrossSection) string {
	l := io.Sf("    {\n      \"name\" : %q,\n", name)
	l += io.Sf("      \"type\" : \"beam\",\n")
	l += io.Sf("      \"model\" : \"layered\",\n")
	l += io.Sf("      \"hardening\" : \"linear\",\n")
	l += "      \"prms\" : [\n"
	l += io.Sf("        {\"n\":\"E\",  \"v\":"+numfmt+", \"u\":%q},\n", o.E, o.UnitPres)
	l += io.Sf("        {\"n\":\"G\",  \"v\":"+numfmt+", \"u\":%q},\n", o.G, o.UnitPres)
	l += io.Sf("        {\"n\":\"sy\", \"v\":"+numfmt+", \"u\":%q},\n", o.Sy, o.UnitPres)
	l += io.Sf("        {\"n\":\"H\",  \"v\":"+numfmt+", \"u\":%q},\n", o.H, o.UnitPres)
	l += io.Sf("        {\"n\":\"nl\", \"v\":%d}", nl)
	if section != nil {
		l += io.Sf(",\n        {\"n\":\"b\",  \"v\":"+numfmt+", \"u\":%q},\n", section.Width(), section.Unit)
		l += io.Sf("        {\"n\":\"d\",  \"v\":"+numfmt+", \"u\":%q},\n", section.Depth(), section.Unit)
		l += section.GetMatString(numfmt)
	}
	l += io.Sf("\n      ]\n    }")
	return l
}
