// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/CrystalPlasticityLab/solid-state-model/inp"
	"github.com/CrystalPlasticityLab/solid-state-model/mstate"
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
)

// Plasticity implements an elasto-plastic material point with measures F, F_in, F_e and S(F_e)
type Plasticity struct {
	Elasticity
	Fin *PlasticRelation     // inelastic deformation gradient
	Fe  *StrainDecomposition // elastic deformation gradient
}

// add model to factory
func init() {
	allocators["plasticity"] = func() Model { return new(Plasticity) }
}

// Init initialises model
func (o *Plasticity) Init(mat *inp.Material, typ mstate.Type, frame *tens.Frame) (err error) {
	if err = o.Elasticity.Init(mat, typ, frame); err != nil {
		return
	}
	curve, err := NewCurve(mat.Curve)
	if err != nil {
		return
	}
	o.Fin, err = NewPlasticRelation(o.S, o.F, curve, mat.FlowThreshold, o.st.Frame)
	if err != nil {
		return
	}
	o.Fe = NewStrainDecomposition(o.F, o.Fin, o.st.Frame)
	if err = o.st.Register(typ, o.Fin); err != nil {
		return
	}
	if err = o.st.Register(typ, o.Fe); err != nil {
		return
	}

	// S(F) → S(F_e)
	o.S.ResetElasticStrainMeasure(&o.Fe.DefGrad)
	return
}
