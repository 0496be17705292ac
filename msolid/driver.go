// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"bytes"
	"math/rand"
	"time"

	"github.com/CrystalPlasticityLab/solid-state-model/inp"
	"github.com/CrystalPlasticityLab/solid-state-model/mstate"
	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Snapshot holds the measures of a material point at one instant
type Snapshot struct {
	Step           int                  // step number; 0 is the initial state
	T              float64              // time
	Values         map[string]tens.Comp // components in the frame of the state
	ValueIntensity map[string]float64   // intensity of values
	RateIntensity  map[string]float64   // intensity of rates
}

// Driver runs one model for a fixed number of steps and records the history
type Driver struct {
	Mat     *inp.Material // parameters
	Type    mstate.Type   // numerical schema
	Frame   *tens.Frame   // frame of the material point
	Model   Model         // model
	Verbose bool          // print state before and after running
	History []*Snapshot   // snapshots; initial state first

	order []mstate.Quantity // measures in evaluation order
}

// NewFrame returns the frame of a material point
//  kind -- "identity" (or empty) or "random"
//  seed -- seed of the random frame; 0 means time based
func NewFrame(kind string, seed int64) (*tens.Frame, error) {
	switch kind {
	case "", "identity":
		return tens.IdentFrame(), nil
	case "random":
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return tens.RandomFrame(rand.New(rand.NewSource(seed))), nil
	}
	return nil, inp.NewParamError("frame", "frame %q is not available; use identity or random", kind)
}

// NewDriver allocates and initialises the model described by mat
func NewDriver(mat *inp.Material) (*Driver, error) {
	typ, err := mstate.ParseType(mat.Schema)
	if err != nil {
		return nil, err
	}
	frame, err := NewFrame(mat.Frame, mat.Seed)
	if err != nil {
		return nil, err
	}
	mdl, err := New(mat.Model)
	if err != nil {
		return nil, err
	}
	if err = mdl.Init(mat, typ, frame); err != nil {
		return nil, chk.Err("cannot initialise model %q:\n%w", mat.Model, err)
	}
	order, err := mdl.Measures()
	if err != nil {
		return nil, err
	}
	return &Driver{Mat: mat, Type: typ, Frame: frame, Model: mdl, order: order}, nil
}

// Run performs Nsteps steps of size Dt
func (o *Driver) Run() (err error) {
	st := o.Model.State()
	if o.Verbose {
		io.Pfyel("%s (%v)\n", o.Mat.Model, o.Type)
		io.Pf("before:\n%v", st)
	}
	o.History = []*Snapshot{o.snapshot(0)}
	for i := 1; i <= o.Mat.Nsteps; i++ {
		if err = o.Model.Step(o.Mat.Dt); err != nil {
			return chk.Err("step %d failed (t = %g):\n%v", i, st.T, err)
		}
		o.History = append(o.History, o.snapshot(i))
	}
	if o.Verbose {
		io.Pfgreen("after:\n%v", st)
	}
	return
}

// snapshot records the current state
func (o *Driver) snapshot(step int) *Snapshot {
	s := &Snapshot{
		Step:           step,
		T:              o.Model.State().T,
		Values:         make(map[string]tens.Comp),
		ValueIntensity: make(map[string]float64),
		RateIntensity:  make(map[string]float64),
	}
	for _, q := range o.order {
		m := q.Msr()
		s.Values[m.Name] = m.Value.Comp()
		s.ValueIntensity[m.Name] = q.ValueIntensity()
		s.RateIntensity[m.Name] = q.RateIntensity()
	}
	return s
}

// Names returns the names of measures in evaluation order
func (o *Driver) Names() (names []string) {
	for _, q := range o.order {
		names = append(names, q.Msr().Name)
	}
	return
}

// Table returns the history as a text table with one row per snapshot
//  comps -- also write the components of every measure
func (o *Driver) Table(comps bool) *bytes.Buffer {
	var b bytes.Buffer
	names := o.Names()
	labels := []string{"00", "11", "22", "12", "02", "01", "21", "20", "10"}
	io.Ff(&b, "%6s%23s", "step", "t")
	for _, name := range names {
		io.Ff(&b, "%23s%23s", name+"_vi", name+"_ri")
		if comps {
			for _, l := range labels {
				io.Ff(&b, "%23s", name+"_"+l)
			}
		}
	}
	io.Ff(&b, "\n")
	for _, s := range o.History {
		io.Ff(&b, "%6d%23.15e", s.Step, s.T)
		for _, name := range names {
			io.Ff(&b, "%23.15e%23.15e", s.ValueIntensity[name], s.RateIntensity[name])
			if comps {
				for _, v := range s.Values[name].V {
					io.Ff(&b, "%23.15e", v)
				}
			}
		}
		io.Ff(&b, "\n")
	}
	return &b
}
