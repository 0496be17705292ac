// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tens

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eigen computes the eigenvalues of m and the frame whose rows are the corresponding
// eigenvectors
//  m   -- symmetric rank-2 container; ‖m - mᵀ‖ must be below EqualTol·max(1, ‖m‖)
//  vals -- eigenvalues in ascending order
//  fr  -- eigen frame; m expressed in fr is diag(vals)
func Eigen(m Comp) (vals [3]float64, fr *Frame, err error) {
	if m.rank != 2 {
		err = Errf(ErrNoImplementationYet, "eigendecomposition of rank %d", m.rank)
		return
	}
	mt, _ := m.Transpose()
	asym, _ := m.Sub(mt)
	if a := asym.Norm(); a > EqualTol*math.Max(1, m.Norm()) {
		err = Errf(ErrNoImplementationYet, "eigendecomposition of non-symmetric %v (‖m - mᵀ‖ = %g)", m, a)
		return
	}
	s, _ := m.Symmetrize()
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, s.Get(i, j))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		err = Errf(ErrNoConvergence, "symmetric eigendecomposition failed for %v", m)
		return
	}
	es.Values(vals[:])
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// eigenvectors are the columns of vecs; the frame stores them as rows
	q := Comp{rank: 2}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			q.V[idx2[i][j]] = vecs.At(j, i)
		}
	}
	fr, err = NewFrameComp(q)
	return
}

// Func returns the tensor function V·diag(f(λ))·Vᵀ of a symmetric m
//  Example: Func(C, math.Sqrt) gives the stretch tensor of the Cauchy-Green tensor C
func Func(m Comp, f func(float64) float64) (res Comp, err error) {
	vals, fr, err := Eigen(m)
	if err != nil {
		return
	}
	var fv [3]float64
	for k, λ := range vals {
		fv[k] = f(λ)
		if math.IsNaN(fv[k]) || math.IsInf(fv[k], 0) {
			return res, Errf(ErrOutOfRange, "f(%g) = %g", λ, fv[k])
		}
	}
	return fr.express(Diag(fv[0], fv[1], fv[2]), Global), nil
}

// FuncT applies Func to a tensor, keeping its frame
func FuncT(t Tensor, f func(float64) float64) (res Tensor, err error) {
	c, err := Func(t.comp, f)
	return Tensor{comp: c, frame: t.frame}, err
}
