// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package commands implements the command line interface of layeredbeam
package commands

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd().Execute()
}

// rootCmd assembles all commands
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "layeredbeam",
		Short:         "Layered 3D Timoshenko beam: stresses, consistent moduli and stiffness",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			io.Verbose = verbose
			chk.Verbose = verbose
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	root.AddCommand(runCmd(), sectionCmd())
	return root
}
