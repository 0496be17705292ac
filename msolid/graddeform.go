// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/fun/dbf"
)

// Loading implements a loading program L(t) = f(t)·L0
type Loading struct {
	L0  tens.Tensor // reference velocity gradient
	Fcn dbf.T       // multiplier; nil means 1
}

// NewLoading returns a loading program with L0 given in the global frame
func NewLoading(l0 [3][3]float64, fcn dbf.T) *Loading {
	return &Loading{L0: tens.NewMatrix(l0, tens.Global), Fcn: fcn}
}

// At returns L(t)
func (o *Loading) At(t float64) tens.Tensor {
	if o.Fcn == nil {
		return o.L0
	}
	return o.L0.Scale(o.Fcn.F(t, nil))
}

// GradDeform implements the total deformation gradient F driven by a loading program
type GradDeform struct {
	DefGrad
	Load *Loading
}

// NewGradDeform returns a new total deformation gradient named "F"
func NewGradDeform(load *Loading, frame *tens.Frame) (o *GradDeform) {
	o = &GradDeform{Load: load}
	o.Init("F", frame)
	return
}

// RateEquation stages L(t+dt)
func (o *GradDeform) RateEquation(t, dt float64) error {
	return o.StageRate(o.Load.At(t + dt))
}

// FiniteEquation stages (I - L(t+dt)·dt)⁻¹ · F
func (o *GradDeform) FiniteEquation(t, dt float64) error {
	F, err := implicitUpdate(o.Value, o.Load.At(t+dt), dt)
	if err != nil {
		return err
	}
	return o.StageValue(F)
}
