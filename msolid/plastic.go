// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/CrystalPlasticityLab/solid-state-model/inp"
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
)

// PlasticRelation implements the inelastic deformation gradient F_in.
//
//  The flow factor k depends on the stress intensity σi of the previous step:
//   σi ≤ threshold: k = σi / threshold
//   σi > threshold: k = curve(εi), εi being the intensity of the total strain
//  rate:   L_in = k·L
//  finite: F_in = I + k·(F - I)
type PlasticRelation struct {
	DefGrad
	S         *ElasticRelation // stress; read before it is updated
	F         *GradDeform      // total deformation gradient
	Curve     *Curve           // flow curve
	Threshold float64          // stress intensity at the onset of flow
}

// NewPlasticRelation returns a new inelastic deformation gradient named "F_in"
func NewPlasticRelation(S *ElasticRelation, F *GradDeform, curve *Curve, threshold float64, frame *tens.Frame) (o *PlasticRelation, err error) {
	if threshold <= 0 {
		return nil, inp.NewParamError("flow_threshold", "threshold must be positive; got %g", threshold)
	}
	o = &PlasticRelation{S: S, F: F, Curve: curve, Threshold: threshold}
	o.Init("F_in", frame)
	return
}

// Dependencies returns the name of the total deformation gradient
func (o *PlasticRelation) Dependencies() []string { return []string{o.F.Name} }

// Factor returns the flow factor k
func (o *PlasticRelation) Factor() (k float64, err error) {
	σi := o.S.ValueIntensity()
	if σi <= o.Threshold {
		return σi / o.Threshold, nil
	}
	return o.Curve.Value(o.F.ValueIntensity())
}

// RateEquation stages k·L
func (o *PlasticRelation) RateEquation(t, dt float64) error {
	k, err := o.Factor()
	if err != nil {
		return err
	}
	return o.StageRate(o.F.Rate.Scale(k))
}

// FiniteEquation stages I + k·(F - I)
func (o *PlasticRelation) FiniteEquation(t, dt float64) error {
	k, err := o.Factor()
	if err != nil {
		return err
	}
	I := tens.Identity(o.Frame())
	d, err := o.F.Value.Sub(I)
	if err != nil {
		return err
	}
	if err = I.AddIn(d.Scale(k)); err != nil {
		return err
	}
	return o.StageValue(I)
}

// StrainDecomposition implements the elastic deformation gradient F_e = F · F_in⁻¹
//  rate: L_e = L - F_e·L_in·F_e⁻¹
type StrainDecomposition struct {
	DefGrad
	F   *GradDeform      // total deformation gradient
	Fin *PlasticRelation // inelastic deformation gradient
}

// NewStrainDecomposition returns a new elastic deformation gradient named "F_e"
func NewStrainDecomposition(F *GradDeform, Fin *PlasticRelation, frame *tens.Frame) (o *StrainDecomposition) {
	o = &StrainDecomposition{F: F, Fin: Fin}
	o.Init("F_e", frame)
	return
}

// Dependencies returns the names of the total and inelastic deformation gradients
func (o *StrainDecomposition) Dependencies() []string {
	return []string{o.F.Name, o.Fin.Name}
}

// RateEquation stages L - F_e·L_in·F_e⁻¹
func (o *StrainDecomposition) RateEquation(t, dt float64) (err error) {
	Fei, err := o.Value.Inverse()
	if err != nil {
		return
	}
	p, err := o.Value.Dot(o.Fin.Rate)
	if err != nil {
		return
	}
	if err = p.DotIn(Fei); err != nil {
		return
	}
	Le, err := o.F.Rate.Sub(p)
	if err != nil {
		return
	}
	return o.StageRate(Le)
}

// FiniteEquation stages F · F_in⁻¹
func (o *StrainDecomposition) FiniteEquation(t, dt float64) (err error) {
	Fini, err := o.Fin.Value.Inverse()
	if err != nil {
		return
	}
	Fe, err := o.F.Value.Dot(Fini)
	if err != nil {
		return
	}
	return o.StageValue(Fe)
}
