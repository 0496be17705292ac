// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstate

import (
	"bytes"

	"github.com/CrystalPlasticityLab/solid-state-model/tens"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// State holds the measures of one material point. All measures share one frame and
// one clock.
type State struct {
	Frame   *tens.Frame // frame of every measure
	Dt      float64     // last time increment
	T       float64     // current time
	Verbose bool        // print each measure after it is stepped

	names   []string           // registration order
	schemas map[string]*Schema // name => schema
}

// NewState returns a new state expressed in frame (nil means the global frame)
func NewState(frame *tens.Frame) *State {
	if frame == nil {
		frame = tens.Global
	}
	return &State{Frame: frame, schemas: make(map[string]*Schema)}
}

// Add inserts a schema; its measure is re-expressed in the frame of the state
func (o *State) Add(s *Schema) error {
	name := s.Name()
	if _, ok := o.schemas[name]; ok {
		return tens.Errf(ErrAlreadyExists, "measure %q is already registered", name)
	}
	s.Q.Msr().ChangeFrame(o.Frame)
	s.T = o.T
	o.schemas[name] = s
	o.names = append(o.names, name)
	return nil
}

// Register wraps q into a schema of the given type and adds it
func (o *State) Register(typ Type, q Quantity) error {
	s, err := NewSchema(typ, q)
	if err != nil {
		return err
	}
	return o.Add(s)
}

// Get returns the schema of a measure
func (o *State) Get(name string) (*Schema, error) {
	s, ok := o.schemas[name]
	if !ok {
		return nil, tens.Errf(ErrNotFound, "measure %q is not registered", name)
	}
	return s, nil
}

// Measure returns a measure by name
func (o *State) Measure(name string) (*Measure, error) {
	s, err := o.Get(name)
	if err != nil {
		return nil, err
	}
	return s.Q.Msr(), nil
}

// Names returns the names of measures in registration order
func (o *State) Names() []string {
	return append([]string(nil), o.names...)
}

// Order returns the names of measures in evaluation order: every measure comes after
// the measures it depends on; independent measures keep their registration order
func (o *State) Order() (order []string, err error) {
	g := simple.NewDirectedGraph()
	for id := range o.names {
		g.AddNode(simple.Node(id))
	}
	index := make(map[string]int, len(o.names))
	for id, name := range o.names {
		index[name] = id
	}
	for id, name := range o.names {
		dep, ok := o.schemas[name].Q.(Dependent)
		if !ok {
			continue
		}
		for _, d := range dep.Dependencies() {
			from, found := index[d]
			if !found {
				return nil, tens.Errf(ErrNotFound, "measure %q depends on %q, which is not registered", name, d)
			}
			if from == id {
				return nil, tens.Errf(ErrCyclicDependency, "measure %q depends on itself", name)
			}
			g.SetEdge(g.NewEdge(simple.Node(from), simple.Node(id)))
		}
	}

	// Kahn's algorithm; among ready measures the first registered runs first
	indeg := make([]int, len(o.names))
	for id := range o.names {
		indeg[id] = g.To(int64(id)).Len()
	}
	done := make([]bool, len(o.names))
	for len(order) < len(o.names) {
		next := -1
		for id := range o.names {
			if !done[id] && indeg[id] == 0 {
				next = id
				break
			}
		}
		if next < 0 {
			return nil, tens.Errf(ErrCyclicDependency, "cannot order measures %v", o.cycles(g))
		}
		done[next] = true
		order = append(order, o.names[next])
		to := g.From(int64(next))
		for to.Next() {
			indeg[to.Node().ID()]--
		}
	}
	return
}

// cycles returns the names of measures in dependency cycles
func (o *State) cycles(g graph.Directed) (names []string) {
	for _, scc := range topo.TarjanSCC(g) {
		if len(scc) < 2 {
			continue
		}
		for _, n := range scc {
			names = append(names, o.names[n.ID()])
		}
	}
	return
}

// Step advances every measure by dt in evaluation order
func (o *State) Step(dt float64) (err error) {
	order, err := o.Order()
	if err != nil {
		return
	}
	for _, name := range order {
		s := o.schemas[name]
		if err = s.Step(dt); err != nil {
			return
		}
		if o.Verbose {
			io.Pf("%8.4f %v\n", s.T, s.Q.Msr())
		}
	}
	o.Dt = dt
	o.T += dt
	return
}

// String renders the frame and one line per measure in registration order
func (o *State) String() string {
	var b bytes.Buffer
	io.Ff(&b, "t = %g, frame = %v\n", o.T, o.Frame)
	for _, name := range o.names {
		io.Ff(&b, "  %v\n", o.schemas[name].Q.Msr())
	}
	return b.String()
}
