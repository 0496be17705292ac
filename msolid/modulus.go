// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/CrystalPlasticityLab/solid-state-model/tens"

// Modulus holds an isotropic stiffness in the form
//  C = [c00 c01 c02; c10 c11 c12; c20 c21 c22] acting on the normal components
//  with shear components scaled by c00 - c01 = 2μ
type Modulus struct {
	C [9]float64
}

// NewModulus returns the stiffness for the Lamé constants λ and μ
func NewModulus(λ, μ float64) (o Modulus) {
	a, b := λ+2*μ, λ
	o.C = [9]float64{
		a, b, b,
		b, a, b,
		b, b, a,
	}
	return
}

// Lame returns λ and μ
func (o Modulus) Lame() (λ, μ float64) {
	return o.C[1], (o.C[0] - o.C[1]) / 2
}

// Apply returns C : sym(e) keeping the frame of e
func (o Modulus) Apply(e tens.Tensor) (s tens.Tensor, err error) {
	es, err := e.Symmetrize()
	if err != nil {
		return
	}
	ec := es.Comp()
	res := tens.Zero()
	for i := 0; i < 3; i++ {
		v := 0.0
		for j := 0; j < 3; j++ {
			v += o.C[3*i+j] * ec.Get(j, j)
		}
		res.Set(i, i, v)
	}
	g := o.C[0] - o.C[1]
	for k := tens.I12; k <= tens.I10; k++ {
		res.V[k] = g * ec.V[k]
	}
	return tens.New(res, e.Frame()), nil
}
