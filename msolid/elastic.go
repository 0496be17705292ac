// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/CrystalPlasticityLab/solid-state-model/mstate"
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
)

// ElasticRelation implements the Cauchy stress S as a function of an elastic strain source
//  rate:   dS/dt = C : sym(L_e)     (hypoelastic)
//  finite: S     = C : ½·log(B_e)   (hyperelastic, left Hencky strain)
type ElasticRelation struct {
	mstate.Measure
	C   Modulus  // stiffness
	src *DefGrad // elastic strain source
}

// NewElasticRelation returns a new stress measure named "S" with zero initial value
func NewElasticRelation(C Modulus, src *DefGrad, frame *tens.Frame) (o *ElasticRelation) {
	o = &ElasticRelation{C: C, src: src}
	o.Init("S", tens.New(tens.Zero(), frame))
	return
}

// ResetElasticStrainMeasure re-points the relation to another strain source
func (o *ElasticRelation) ResetElasticStrainMeasure(src *DefGrad) { o.src = src }

// Source returns the elastic strain source
func (o *ElasticRelation) Source() *DefGrad { return o.src }

// Dependencies returns the name of the strain source
func (o *ElasticRelation) Dependencies() []string { return []string{o.src.Name} }

// RateEquation stages C : sym(L_e)
func (o *ElasticRelation) RateEquation(t, dt float64) error {
	r, err := o.C.Apply(o.src.VelocityGradient())
	if err != nil {
		return err
	}
	return o.StageRate(r)
}

// FiniteEquation stages C : H_e
func (o *ElasticRelation) FiniteEquation(t, dt float64) error {
	H, err := o.src.LeftHencky()
	if err != nil {
		return err
	}
	S, err := o.C.Apply(H)
	if err != nil {
		return err
	}
	return o.StageValue(S)
}
