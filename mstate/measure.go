// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mstate implements measures (named quantities tracked through time), the
// numerical schemas that advance them and the material point state holding them
package mstate

import (
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/io"
)

// Measure holds a named quantity with its current and previous value and rate.
//
//  New values and rates are first staged and then committed with UpdateValue and
//  UpdateRate; committing moves the current slot to the previous one.
type Measure struct {
	Name      string      // name; unique within a State
	Value     tens.Tensor // current value
	ValuePrev tens.Tensor // value before the last commit
	Rate      tens.Tensor // current rate
	RatePrev  tens.Tensor // rate before the last commit

	// staging
	value    tens.Tensor
	rate     tens.Tensor
	hasValue bool
	hasRate  bool
}

// NewMeasure returns a new measure; the rate starts at zero with the rank and frame of value
func NewMeasure(name string, value tens.Tensor) *Measure {
	o := new(Measure)
	o.Init(name, value)
	return o
}

// Init initialises a measure in place (used by types embedding Measure)
func (o *Measure) Init(name string, value tens.Tensor) {
	zero, _ := tens.ZeroTensor(value.Rank(), value.Frame())
	o.Name = name
	o.Value, o.ValuePrev = value, value
	o.Rate, o.RatePrev = zero, zero
	o.hasValue, o.hasRate = false, false
}

// Msr returns the measure itself; types embedding Measure inherit it
func (o *Measure) Msr() *Measure { return o }

// Frame returns the frame of the stored components
func (o *Measure) Frame() *tens.Frame { return o.Value.Frame() }

// StageValue stages a new value, re-expressed in the frame of the measure
func (o *Measure) StageValue(v tens.Tensor) error {
	if v.Rank() != o.Value.Rank() {
		return tens.Errf(tens.ErrShapeMismatch, "%s: cannot stage rank-%d value into rank-%d measure", o.Name, v.Rank(), o.Value.Rank())
	}
	v.ChangeFrame(o.Frame())
	o.value, o.hasValue = v, true
	return nil
}

// StageRate stages a new rate, re-expressed in the frame of the measure
func (o *Measure) StageRate(r tens.Tensor) error {
	if r.Rank() != o.Rate.Rank() {
		return tens.Errf(tens.ErrShapeMismatch, "%s: cannot stage rank-%d rate into rank-%d measure", o.Name, r.Rank(), o.Rate.Rank())
	}
	r.ChangeFrame(o.Frame())
	o.rate, o.hasRate = r, true
	return nil
}

// UpdateValue commits the staged value
func (o *Measure) UpdateValue() error {
	if !o.hasValue {
		return tens.Errf(ErrPhase, "%s: value has not been staged", o.Name)
	}
	o.ValuePrev, o.Value = o.Value, o.value
	o.hasValue = false
	return nil
}

// UpdateRate commits the staged rate
func (o *Measure) UpdateRate() error {
	if !o.hasRate {
		return tens.Errf(ErrPhase, "%s: rate has not been staged", o.Name)
	}
	o.RatePrev, o.Rate = o.Rate, o.rate
	o.hasRate = false
	return nil
}

// IntegrateValue stages value + rate·dt (explicit Euler)
func (o *Measure) IntegrateValue(dt float64) error {
	v, err := o.Value.Add(o.Rate.Scale(dt))
	if err != nil {
		return err
	}
	return o.StageValue(v)
}

// CalcRate stages (value - value_prev)/dt (backward difference)
func (o *Measure) CalcRate(dt float64) error {
	d, err := o.Value.Sub(o.ValuePrev)
	if err != nil {
		return err
	}
	r, err := d.Div(dt)
	if err != nil {
		return tens.Errf(tens.ErrDivisionByZero, "%s: cannot compute rate with dt = %g", o.Name, dt)
	}
	return o.StageRate(r)
}

// RateIntensity returns sqrt(2/3 · rate:rate)
func (o *Measure) RateIntensity() float64 { return o.Rate.Intensity() }

// ValueIntensity returns sqrt(2/3 · value:value)
func (o *Measure) ValueIntensity() float64 { return o.Value.Intensity() }

// ChangeFrame re-expresses every slot in frame
func (o *Measure) ChangeFrame(frame *tens.Frame) {
	for _, t := range []*tens.Tensor{&o.Value, &o.ValuePrev, &o.Rate, &o.RatePrev, &o.value, &o.rate} {
		if t.Frame() != nil {
			t.ChangeFrame(frame)
		}
	}
}

// String returns "name: value = {...}, rate = {...}"
func (o *Measure) String() string {
	return io.Sf("%s: value = %v, rate = %v", o.Name, o.Value, o.Rate)
}
