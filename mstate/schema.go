// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstate

import (
	"strings"

	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/io"
)

// Quantity defines a measure that knows how to compute its own rate or value
type Quantity interface {
	Msr() *Measure                      // the underlying measure
	RateEquation(t, dt float64) error   // stages the rate at t+dt
	FiniteEquation(t, dt float64) error // stages the value at t+dt
	RateIntensity() float64             // intensity of the rate
	ValueIntensity() float64            // intensity of the value
}

// ValueIntegrator overrides the explicit Euler integration of the rate
type ValueIntegrator interface {
	IntegrateValue(dt float64) error
}

// RateCalculator overrides the backward difference used to recover the rate
type RateCalculator interface {
	CalcRate(dt float64) error
}

// Dependent lists the names of measures whose updated values must be available when
// the equations are evaluated. Reads of previous-step values are not dependencies.
type Dependent interface {
	Dependencies() []string
}

// Type defines how a measure is advanced in time
type Type int

const (
	RateCalculate   Type = iota // rate equation, then integration of the value
	FiniteCalculate             // finite equation, then calculation of the rate
)

// String returns the name of the numerical schema
func (o Type) String() string {
	switch o {
	case RateCalculate:
		return "RATE_CALCULATE"
	case FiniteCalculate:
		return "FINITE_CALCULATE"
	}
	return io.Sf("UNDEFINED(%d)", int(o))
}

// ParseType converts a tag such as "rate" or "FINITE_CALCULATE" into a Type
func ParseType(tag string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "RATE", "RATE_CALCULATE":
		return RateCalculate, nil
	case "FINITE", "FINITE_CALCULATE":
		return FiniteCalculate, nil
	}
	return 0, tens.Errf(ErrUndefinedNumericalSchema, "%q is not a numerical schema; use rate or finite", tag)
}

// Phase indicates how far a measure has progressed within the current step
type Phase int

const (
	Idle           Phase = iota // not yet stepped
	RateComputed                // rate staged
	RateCommitted               // rate committed
	ValueComputed               // value staged
	ValueCommitted              // value committed
	Ready                       // value and rate consistent
)

var phaseNames = []string{"Idle", "RateComputed", "RateCommitted", "ValueComputed", "ValueCommitted", "Ready"}

// String returns the name of the phase
func (o Phase) String() string {
	if o < 0 || int(o) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[o]
}

// Schema advances one quantity through a fixed update sequence per step
//  RateCalculate:   RateEquation → UpdateRate → IntegrateValue → UpdateValue
//  FiniteCalculate: FiniteEquation → UpdateValue → CalcRate → UpdateRate
type Schema struct {
	Type  Type     // numerical schema
	T     float64  // time at the start of the next step
	Q     Quantity // the quantity; exclusively owned
	phase Phase
}

// NewSchema returns a new schema
func NewSchema(typ Type, q Quantity) (o *Schema, err error) {
	if typ != RateCalculate && typ != FiniteCalculate {
		return nil, tens.Errf(ErrUndefinedNumericalSchema, "type %d", int(typ))
	}
	return &Schema{Type: typ, Q: q}, nil
}

// Name returns the name of the measure
func (o *Schema) Name() string { return o.Q.Msr().Name }

// Phase returns the current phase
func (o *Schema) Phase() Phase { return o.phase }

// Step advances the quantity from T to T+dt
func (o *Schema) Step(dt float64) (err error) {
	if o.phase != Idle && o.phase != Ready {
		return tens.Errf(ErrPhase, "%s: cannot start a step from phase %v", o.Name(), o.phase)
	}
	m := o.Q.Msr()
	switch o.Type {
	case RateCalculate:
		if err = o.Q.RateEquation(o.T, dt); err != nil {
			return
		}
		o.phase = RateComputed
		if err = m.UpdateRate(); err != nil {
			return
		}
		o.phase = RateCommitted
		if err = o.integrate(dt); err != nil {
			return
		}
		o.phase = ValueComputed
		if err = m.UpdateValue(); err != nil {
			return
		}
		o.phase = ValueCommitted
	case FiniteCalculate:
		if err = o.Q.FiniteEquation(o.T, dt); err != nil {
			return
		}
		o.phase = ValueComputed
		if err = m.UpdateValue(); err != nil {
			return
		}
		o.phase = ValueCommitted
		if err = o.calcRate(dt); err != nil {
			return
		}
		o.phase = RateComputed
		if err = m.UpdateRate(); err != nil {
			return
		}
		o.phase = RateCommitted
	default:
		return tens.Errf(ErrUndefinedNumericalSchema, "type %d", int(o.Type))
	}
	o.phase = Ready
	o.T += dt
	return
}

func (o *Schema) integrate(dt float64) error {
	if vi, ok := o.Q.(ValueIntegrator); ok {
		return vi.IntegrateValue(dt)
	}
	return o.Q.Msr().IntegrateValue(dt)
}

func (o *Schema) calcRate(dt float64) error {
	if rc, ok := o.Q.(RateCalculator); ok {
		return rc.CalcRate(dt)
	}
	return o.Q.Msr().CalcRate(dt)
}
