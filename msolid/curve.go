// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/CrystalPlasticityLab/solid-state-model/inp"
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/fun/dbf"
)

// Curve implements a piecewise-linear flow curve y(x)
type Curve struct {
	X   []float64 // abscissae; increasing
	Y   []float64 // ordinates
	fcn dbf.T     // linear interpolation over the points
}

// NewCurve returns a new curve from a table of [x, y] pairs
func NewCurve(points [][]float64) (o *Curve, err error) {
	if len(points) < 2 {
		return nil, inp.NewParamError("curve", "at least 2 points are required; got %d", len(points))
	}
	o = new(Curve)
	o.X = make([]float64, len(points))
	o.Y = make([]float64, len(points))
	var prms dbf.Params
	for i, p := range points {
		if len(p) != 2 {
			return nil, inp.NewParamError("curve", "point %d must have 2 coordinates; got %d", i, len(p))
		}
		o.X[i], o.Y[i] = p[0], p[1]
		if i > 0 && o.X[i] <= o.X[i-1] {
			return nil, inp.NewParamError("curve", "x must be increasing; x[%d] = %g <= x[%d] = %g", i, o.X[i], i-1, o.X[i-1])
		}
		prms = append(prms, &dbf.P{N: "t", V: p[0]}, &dbf.P{N: "y", V: p[1]})
	}
	if o.fcn, err = inp.NewFunc("curve", "pts", prms); err != nil {
		return nil, err
	}
	return
}

// check fails when x is outside [X[0], X[n-1]]
func (o *Curve) check(x float64) error {
	n := len(o.X)
	if x < o.X[0] || x > o.X[n-1] {
		return tens.Errf(tens.ErrOutOfRange, "x = %g is outside the flow curve [%g, %g]", x, o.X[0], o.X[n-1])
	}
	return nil
}

// Value returns y(x)
func (o *Curve) Value(x float64) (float64, error) {
	if err := o.check(x); err != nil {
		return 0, err
	}
	return o.fcn.F(x, nil), nil
}

// Deriv returns dy/dx(x); at nodes the slope of the segment on the left is used
func (o *Curve) Deriv(x float64) (float64, error) {
	if err := o.check(x); err != nil {
		return 0, err
	}
	return o.fcn.G(x, nil), nil
}
