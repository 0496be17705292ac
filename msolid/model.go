// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive relations and material point models for solids
/*
 *            |    RATE_CALCULATE           |    FINITE_CALCULATE
 *  ==========================================================================
 *     F      | L(t)                        | F = (I - L·dt)⁻¹ · F
 *            | F = (I - L·dt)⁻¹ · F        | L = (F - F_prev) / dt
 *  --------------------------------------------------------------------------
 *     F_in   | L_in = k · L                | F_in = I + k · (F - I)
 *  --------------------------------------------------------------------------
 *     F_e    | L_e = L - F_e·L_in·F_e⁻¹    | F_e = F · F_in⁻¹
 *  --------------------------------------------------------------------------
 *     S      | dS/dt = C : sym(L_e)        | S = C : ½·log(F_e·F_eᵀ)
 */
package msolid

import (
	"github.com/CrystalPlasticityLab/solid-state-model/inp"
	"github.com/CrystalPlasticityLab/solid-state-model/mstate"
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/chk"
)

// Model defines the interface for material point models
type Model interface {
	Init(mat *inp.Material, typ mstate.Type, frame *tens.Frame) error // initialises model and registers its measures
	State() *mstate.State                                             // the material point state
	Step(dt float64) error                                            // advances every measure by dt
	Measures() ([]mstate.Quantity, error)                             // measures in evaluation order
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}

// measures returns the quantities of a state in evaluation order
func measures(st *mstate.State) (res []mstate.Quantity, err error) {
	order, err := st.Order()
	if err != nil {
		return
	}
	for _, name := range order {
		s, _ := st.Get(name)
		res = append(res, s.Q)
	}
	return
}
