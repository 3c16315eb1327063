// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/layeredbeam/commands"

	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Verbose = true
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// run
	if err := commands.Execute(); err != nil {
		io.Verbose = true
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
