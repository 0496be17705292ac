// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// ErrInvalidParameter is the kind of every ParamError
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError reports a missing or malformed parameter
type ParamError struct {
	Name   string // key in the parameter document
	Reason string // what is wrong
}

// NewParamError returns a ParamError with a formatted reason
func NewParamError(name, reason string, prm ...interface{}) *ParamError {
	return &ParamError{Name: name, Reason: io.Sf(reason, prm...)}
}

func (o *ParamError) Error() string {
	return io.Sf("%v %q: %s", ErrInvalidParameter, o.Name, o.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidParameter)
func (o *ParamError) Unwrap() error { return ErrInvalidParameter }
