// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/CrystalPlasticityLab/solid-state-model/inp"
	"github.com/CrystalPlasticityLab/solid-state-model/mstate"
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/fun/dbf"
)

// Elasticity implements an elastic material point with measures F and S(F)
type Elasticity struct {
	Modulus Modulus          // stiffness
	F       *GradDeform      // total deformation gradient
	S       *ElasticRelation // Cauchy stress
	st      *mstate.State
}

// add model to factory
func init() {
	allocators["elasticity"] = func() Model { return new(Elasticity) }
}

// Init initialises model
func (o *Elasticity) Init(mat *inp.Material, typ mstate.Type, frame *tens.Frame) (err error) {
	if err = mat.Validate(); err != nil {
		return
	}
	var fcn dbf.T
	if mat.LoadFcn != nil {
		if fcn, err = mat.LoadFcn.New(); err != nil {
			return
		}
	}
	o.st = mstate.NewState(frame)
	o.Modulus = NewModulus(mat.ElastModulus[0], mat.ElastModulus[1])
	o.F = NewGradDeform(NewLoading(mat.L(), fcn), o.st.Frame)
	o.S = NewElasticRelation(o.Modulus, &o.F.DefGrad, o.st.Frame)
	if err = o.st.Register(typ, o.F); err != nil {
		return
	}
	return o.st.Register(typ, o.S)
}

// State returns the material point state
func (o *Elasticity) State() *mstate.State { return o.st }

// Step advances the material point by dt
func (o *Elasticity) Step(dt float64) error { return o.st.Step(dt) }

// Measures returns F and S
func (o *Elasticity) Measures() ([]mstate.Quantity, error) { return measures(o.st) }
