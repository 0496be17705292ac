// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/CrystalPlasticityLab/solid-state-model/mstate"
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
)

// DefGrad implements a deformation gradient measure; the rate is the velocity gradient
type DefGrad struct {
	mstate.Measure
}

// Init initialises the deformation gradient with the identity
func (o *DefGrad) Init(name string, frame *tens.Frame) {
	o.Measure.Init(name, tens.Identity(frame))
}

// implicitUpdate returns (I - L·dt)⁻¹ · F
func implicitUpdate(F, L tens.Tensor, dt float64) (res tens.Tensor, err error) {
	A := tens.Identity(F.Frame())
	if err = A.SubIn(L.Scale(dt)); err != nil {
		return
	}
	Ai, err := A.Inverse()
	if err != nil {
		return
	}
	return Ai.Dot(F)
}

// IntegrateValue stages (I - L·dt)⁻¹ · F
func (o *DefGrad) IntegrateValue(dt float64) error {
	F, err := implicitUpdate(o.Value, o.Rate, dt)
	if err != nil {
		return err
	}
	return o.StageValue(F)
}

// VelocityGradient returns L
func (o *DefGrad) VelocityGradient() tens.Tensor { return o.Rate }

// RightCauchyGreen returns C = Fᵀ·F
func (o *DefGrad) RightCauchyGreen() tens.Tensor {
	Ft, _ := o.Value.Transpose()
	C, _ := Ft.Dot(o.Value)
	return C
}

// LeftCauchyGreen returns B = F·Fᵀ
func (o *DefGrad) LeftCauchyGreen() tens.Tensor {
	Ft, _ := o.Value.Transpose()
	B, _ := o.Value.Dot(Ft)
	return B
}

// RightStretch returns U = sqrt(C)
func (o *DefGrad) RightStretch() (tens.Tensor, error) {
	return tens.FuncT(o.RightCauchyGreen(), math.Sqrt)
}

// LeftStretch returns V = sqrt(B)
func (o *DefGrad) LeftStretch() (tens.Tensor, error) {
	return tens.FuncT(o.LeftCauchyGreen(), math.Sqrt)
}

// RightHencky returns ½·log(C)
func (o *DefGrad) RightHencky() (H tens.Tensor, err error) {
	H, err = tens.FuncT(o.RightCauchyGreen(), math.Log)
	return H.Scale(0.5), err
}

// LeftHencky returns ½·log(B)
func (o *DefGrad) LeftHencky() (H tens.Tensor, err error) {
	H, err = tens.FuncT(o.LeftCauchyGreen(), math.Log)
	return H.Scale(0.5), err
}

// PolarDecomposition returns V and R such that F = V·R = R·U, with R = F·U⁻¹
func (o *DefGrad) PolarDecomposition() (V, R tens.Tensor, err error) {
	U, err := o.RightStretch()
	if err != nil {
		return
	}
	Ui, err := U.Inverse()
	if err != nil {
		return
	}
	if R, err = o.Value.Dot(Ui); err != nil {
		return
	}
	V, err = o.LeftStretch()
	return
}

// Lagrangian returns E = (Fᵀ·F - I)/2
func (o *DefGrad) Lagrangian() tens.Tensor {
	E := o.RightCauchyGreen()
	E.SubIn(tens.Identity(E.Frame()))
	return E.Scale(0.5)
}

// RateIntensity returns the intensity of the strain rate sym(L)
func (o *DefGrad) RateIntensity() float64 {
	D, _ := o.Rate.Symmetrize()
	return D.Intensity()
}

// ValueIntensity returns the intensity of the Lagrangian strain
func (o *DefGrad) ValueIntensity() float64 {
	return o.Lagrangian().Intensity()
}
