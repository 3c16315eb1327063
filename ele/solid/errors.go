// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/io"

// ConfigError reports invalid input data detected before any stress computation
type ConfigError struct {
	Msg string
}

// Error returns the error message
func (o *ConfigError) Error() string {
	return "layered beam: " + o.Msg
}

// newConfigError returns a new ConfigError
func newConfigError(msg string, prm ...interface{}) error {
	return &ConfigError{io.Sf(msg, prm...)}
}
