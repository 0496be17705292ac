// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tens

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_spectral01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectral01. eigenvalues and eigen frame")

	m := Diag(3, 1, 2)
	vals, fr, err := Eigen(m)
	if err != nil {
		tst.Errorf("eigen failed: %v\n", err)
		return
	}
	io.Pforan("λ = %v\n", vals)
	chk.Array(tst, "λ", 1e-14, vals[:], []float64{1, 2, 3})
	d := Global.express(m, fr)
	chk.Deep2(tst, "m in eigen frame", 1e-14, deep2(d.Array()), [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}})

	a := Mat([3][3]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 4}})
	vals, fr, err = Eigen(a)
	if err != nil {
		tst.Errorf("eigen failed: %v\n", err)
		return
	}
	tr, _ := a.Trace()
	det, _ := a.Det()
	chk.Float64(tst, "Σλ", 1e-13, vals[0]+vals[1]+vals[2], tr)
	chk.Float64(tst, "Πλ", 1e-12, vals[0]*vals[1]*vals[2], det)
	d = Global.express(a, fr)
	chk.Deep2(tst, "a in eigen frame", 1e-13, deep2(d.Array()), deep2(Diag(vals[0], vals[1], vals[2]).Array()))
}

func Test_spectral02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectral02. tensor functions")

	a := Mat([3][3]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 4}})
	cube := func(x float64) float64 { return x * x * x }
	a3, err := Func(a, cube)
	if err != nil {
		tst.Errorf("func failed: %v\n", err)
		return
	}
	aa, _ := a.Dot(a)
	aaa, _ := aa.Dot(a)
	chk.Array(tst, "a³", 1e-11, a3.Slice(), aaa.Slice())

	back, err := Func(a3, math.Cbrt)
	if err != nil {
		tst.Errorf("func failed: %v\n", err)
		return
	}
	chk.Array(tst, "cbrt(a³)", 1e-12, back.Slice(), a.Slice())

	sq, _ := Func(Ident(), math.Sqrt)
	chk.Array(tst, "sqrt(I)", 1e-15, sq.Slice(), Ident().Slice())

	_, err = Func(Diag(-1, 1, 1), math.Log)
	if !errors.Is(err, ErrOutOfRange) {
		tst.Errorf("log of negative eigenvalue should fail. err = %v\n", err)
		return
	}
	io.Pfyel("%v\n", err)

	if _, _, err = Eigen(Vec([3]float64{1, 2, 3})); !errors.Is(err, ErrNoImplementationYet) {
		tst.Errorf("eigen of vector should fail. err = %v\n", err)
	}

	// non-symmetric tensors are not decomposed
	ns := Mat([3][3]float64{{1, 1, 0}, {0, 2, 0}, {0, 0, 3}})
	if _, err = Func(ns, cube); !errors.Is(err, ErrNoImplementationYet) {
		tst.Errorf("func of non-symmetric tensor should fail. err = %v\n", err)
		return
	}
	io.Pfyel("%v\n", err)
	if _, _, err = Eigen(ns); !errors.Is(err, ErrNoImplementationYet) {
		tst.Errorf("eigen of non-symmetric tensor should fail. err = %v\n", err)
		return
	}

	// functions commute with the change of frame
	fr := RandomFrame(rand.New(rand.NewSource(5)))
	t := New(Global.express(a, fr), fr)
	t3, err := FuncT(t, cube)
	if err != nil {
		tst.Errorf("func failed: %v\n", err)
		return
	}
	chk.Array(tst, "a³ in global", 1e-11, t3.At(Global).Slice(), aaa.Slice())
}
