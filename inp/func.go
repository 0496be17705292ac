// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// PrmData holds one parameter of a function
type PrmData struct {
	N string  `json:"n" yaml:"n" validate:"required"` // name
	V float64 `json:"v" yaml:"v"`                     // value
}

// FuncData holds the definition of a time function
type FuncData struct {
	Type string    `json:"type" yaml:"type" validate:"required"` // type of function. ex: cte, lin, rmp
	Prms []PrmData `json:"prms" yaml:"prms" validate:"dive"`     // parameters
}

// Params converts the parameters to the gosl format
func (o *FuncData) Params() (prms dbf.Params) {
	for _, p := range o.Prms {
		prms = append(prms, &dbf.P{N: p.N, V: p.V})
	}
	return
}

// New allocates the time function
func (o *FuncData) New() (dbf.T, error) {
	return NewFunc("loadfcn", o.Type, o.Params())
}

// NewFunc allocates a gosl function; allocation failures are returned as an
// invalid parameter named key instead of panicking
func NewFunc(key, typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, NewParamError(key, "cannot allocate function %q: %v", typ, r)
		}
	}()
	return dbf.New(typ, prms), nil
}

// readFile reads a whole file; gosl panics are returned as errors
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read parameter file %q: %v", fn, r)
		}
	}()
	return io.ReadFile(fn), nil
}
