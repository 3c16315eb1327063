// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/cpmech/layeredbeam/ana"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// sectionArgs holds the arguments of the section command
type sectionArgs struct {
	Type, Unit          string
	Wid, Hei, Tf, Tw, R float64
	Mat, Pres, Name     string
	Nl                  int
	Numfmt              string
}

func sectionCmd() *cobra.Command {
	var a sectionArgs

	cmd := &cobra.Command{
		Use:   "section",
		Short: "Print a layered beam material with section properties in .mat format",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.matFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l)
			return nil
		},
	}

	cmd.Flags().StringVar(&a.Type, "type", "rectangle", "section type: rectangle, I-beam, circle or pipe")
	cmd.Flags().StringVar(&a.Unit, "unit", "m", "unit of length")
	cmd.Flags().Float64Var(&a.Wid, "wid", 0.1, "width")
	cmd.Flags().Float64Var(&a.Hei, "hei", 0.2, "height")
	cmd.Flags().Float64Var(&a.Tf, "tf", 0, "flange thickness (I-beam)")
	cmd.Flags().Float64Var(&a.Tw, "tw", 0, "web thickness (I-beam) or wall thickness (pipe)")
	cmd.Flags().Float64Var(&a.R, "r", 0, "radius (circle or pipe)")
	cmd.Flags().StringVar(&a.Mat, "mat", "steel", "reference material: steel, aluminum or wood-douglas-fir")
	cmd.Flags().StringVar(&a.Pres, "pres", "MPa", "unit of pressure: kPa, MPa or GPa")
	cmd.Flags().StringVar(&a.Name, "name", "", "name of material; default = reference material")
	cmd.Flags().IntVar(&a.Nl, "nl", 10, "number of layers")
	cmd.Flags().StringVar(&a.Numfmt, "numfmt", "%g", "number format")
	return cmd
}

// matFile returns the contents of a .mat file with one layered beam material
func (o sectionArgs) matFile() (l string, err error) {
	var sec ana.CrossSection
	err = sec.Init(o.Type, o.Unit, o.Wid, o.Hei, o.Tf, o.Tw, o.R)
	if err != nil {
		return
	}
	var mat ana.Material
	err = mat.Init(o.Mat, o.Pres)
	if err != nil {
		return
	}
	name := o.Name
	if name == "" {
		name = o.Mat
	}
	l = io.Sf("{\n  \"functions\" : [],\n  \"materials\" : [\n%s\n  ]\n}", mat.GetMatString(name, o.Numfmt, o.Nl, &sec))
	return
}
