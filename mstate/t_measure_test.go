// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstate

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// constRate grows with a constant rate
type constRate struct {
	Measure
	rate tens.Tensor
	deps []string
	log  *[]string
}

func newConstRate(name string, value, rate tens.Tensor, deps ...string) *constRate {
	o := &constRate{rate: rate, deps: deps}
	o.Init(name, value)
	return o
}

func (o *constRate) record() {
	if o.log != nil {
		*o.log = append(*o.log, o.Name)
	}
}

func (o *constRate) RateEquation(t, dt float64) error {
	o.record()
	return o.StageRate(o.rate)
}

func (o *constRate) FiniteEquation(t, dt float64) error {
	o.record()
	v, err := o.Value.Add(o.rate.Scale(dt))
	if err != nil {
		return err
	}
	return o.StageValue(v)
}

func (o *constRate) Dependencies() []string { return o.deps }

func Test_measure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("measure01. staging and commit")

	m := NewMeasure("x", tens.New(tens.Scalar(1), nil))
	chk.String(tst, m.String(), "x: value = { 1 }, rate = { 0 }")
	if m.Msr() != m {
		tst.Errorf("Msr must return the measure itself\n")
		return
	}

	err := m.UpdateValue()
	if !errors.Is(err, ErrPhase) {
		tst.Errorf("committing an unstaged value should fail. err = %v\n", err)
		return
	}
	io.Pfyel("%v\n", err)
	if err = m.UpdateRate(); !errors.Is(err, ErrPhase) {
		tst.Errorf("committing an unstaged rate should fail. err = %v\n", err)
		return
	}
	if err = m.StageRate(tens.Identity(nil)); !errors.Is(err, tens.ErrShapeMismatch) {
		tst.Errorf("staging a rank-2 rate into a scalar should fail. err = %v\n", err)
		return
	}

	// Euler: value = I, rate = 2I, dt = 0.5 ⇒ value = 2I
	f := NewMeasure("F", tens.Identity(nil))
	if err = f.StageRate(tens.Identity(nil).Scale(2)); err != nil {
		tst.Errorf("stage rate failed: %v\n", err)
		return
	}
	if err = f.UpdateRate(); err != nil {
		tst.Errorf("update rate failed: %v\n", err)
		return
	}
	if err = f.IntegrateValue(0.5); err != nil {
		tst.Errorf("integrate failed: %v\n", err)
		return
	}
	if err = f.UpdateValue(); err != nil {
		tst.Errorf("update value failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", f)
	chk.Array(tst, "F", 1e-15, f.Value.Comp().Slice(), tens.Ident().Scale(2).Slice())
	chk.Array(tst, "Fprev", 1e-15, f.ValuePrev.Comp().Slice(), tens.Ident().Slice())
	chk.Float64(tst, "rate intensity", 1e-15, f.RateIntensity(), 2*1.4142135623730951)
	chk.Float64(tst, "value intensity", 1e-15, f.ValueIntensity(), 2*1.4142135623730951)

	// backward difference
	if err = f.CalcRate(0.5); err != nil {
		tst.Errorf("calc rate failed: %v\n", err)
		return
	}
	f.UpdateRate()
	chk.Array(tst, "rate", 1e-15, f.Rate.Comp().Slice(), tens.Ident().Scale(2).Slice())
	if err = f.CalcRate(0); !errors.Is(err, tens.ErrDivisionByZero) {
		tst.Errorf("dt = 0 should fail with division by zero. err = %v\n", err)
	}
}

func Test_measure02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("measure02. change of frame")

	fr := tens.RandomFrame(rand.New(rand.NewSource(11)))
	a := tens.NewMatrix([3][3]float64{{1, 2, 0}, {0, 1, 0}, {0, 0, 1}}, nil)
	m := NewMeasure("F", a)
	m.StageRate(tens.Identity(nil))
	m.UpdateRate()
	m.ChangeFrame(fr)
	if m.Frame() != fr || m.Rate.Frame() != fr || m.ValuePrev.Frame() != fr {
		tst.Errorf("every slot must be re-expressed\n")
		return
	}
	if !m.Value.Equal(a) {
		tst.Errorf("physical value changed\n")
		return
	}

	// staged values coming from another frame are re-expressed
	b := tens.NewMatrix([3][3]float64{{3, 0, 0}, {0, 1, 0}, {1, 0, 1}}, nil)
	m.StageValue(b)
	m.UpdateValue()
	if m.Value.Frame() != fr || !m.Value.Equal(b) {
		tst.Errorf("staged value must be expressed in the frame of the measure\n")
	}
}
