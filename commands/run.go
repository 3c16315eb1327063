// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	goio "io"
	"path/filepath"

	"github.com/cpmech/layeredbeam/ele/solid"
	"github.com/cpmech/layeredbeam/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var matFile string
	var matName string
	var pathFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a load path with one layered beam element",
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := runPath(matFile, matName, pathFile)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), drv)
			return nil
		},
	}

	cmd.Flags().StringVarP(&matFile, "mat", "m", "", "materials database (.mat) file (required)")
	cmd.Flags().StringVarP(&matName, "name", "n", "", "name of beam material (required)")
	cmd.Flags().StringVarP(&pathFile, "path", "p", "", "load path (.yaml) file (required)")

	_ = cmd.MarkFlagRequired("mat")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

// runPath reads input files and runs all steps
func runPath(matFile, matName, pathFile string) (drv *solid.Driver, err error) {

	// input data
	mdb, err := inp.ReadMat(filepath.Split(matFile))
	if err != nil {
		return nil, chk.Err("cannot read materials:\n%v", err)
	}
	m := mdb.Get(matName)
	if m == nil {
		return nil, chk.Err("cannot find material %q in %q", matName, matFile)
	}
	lp, err := inp.ReadLoadPath(filepath.Split(pathFile))
	if err != nil {
		return nil, chk.Err("cannot read load path:\n%v", err)
	}

	// element
	elem, err := newBeam(m, lp)
	if err != nil {
		return nil, err
	}
	elem.Verbose = io.Verbose

	// run
	drv = new(solid.Driver)
	err = drv.Init(elem)
	if err != nil {
		return
	}
	err = drv.Run(toSteps(lp))
	if err != nil {
		return nil, chk.Err("load path %q failed:\n%v", pathFile, err)
	}
	return
}

// printResults prints one line per step and integration point
//  Note: the forces and moments of the resultant model are printed if available
func printResults(w goio.Writer, drv *solid.Driver) {
	l := io.Sf("%5s%4s%15s%15s%15s%5s%5s%15s", "step", "qp", "M", "N", "Dm", "nit", "npl", "keff")
	withForces := len(drv.Res) > 0 && drv.Res[0].Forces != nil
	if withForces {
		l += io.Sf("%15s%15s", "Fx(res)", "Mz(res)")
	}
	l += "\n"
	for i, r := range drv.Res {
		for idx, res := range r.Res {
			l += io.Sf("%5d%4d%15.6e%15.6e%15.6e%5d%5d%15.6e", i, idx, res.M, res.N, res.Dm, res.Nit, r.Nplastic[idx], r.EffStiff[idx])
			if withForces {
				l += io.Sf("%15.6e%15.6e", r.Forces[idx].F[0], r.Forces[idx].M[2])
			}
			l += "\n"
		}
	}
	if n := len(drv.Res); n > 0 {
		l += "\nK22 @ last step:\n"
		for _, row := range drv.Res[n-1].K22 {
			for _, v := range row {
				l += io.Sf("%15.6e", v)
			}
			l += "\n"
		}
	}
	fmt.Fprint(w, l)
}
