// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

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

const plasticityJSON = `{
  "desc": "shear",
  "model": "plasticity",
  "schema": "finite",
  "frame": "random",
  "seed": 42,
  "elast_modulus": [1.5, 1.0],
  "curve": [[0, 1], [10, 1]],
  "flow_threshold": 0.014,
  "velocity_gradient": [[0, 0.1, 0], [0, 0, 0], [0, 0, 0]],
  "loadfcn": {"type": "lin", "prms": [{"n": "m", "v": 2}]},
  "dt": 0.05,
  "nsteps": 20
}`

const elasticityYAML = `
desc: tension
model: elasticity
elast_modulus: [2, 0.5]
velocity_gradient:
  - [0.01, 0, 0]
  - [0, -0.005, 0]
  - [0, 0, -0.005]
`

func Test_material01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01. json and yaml documents")

	mat, err := ParseMaterial([]byte(plasticityJSON), "json")
	if err != nil {
		tst.Errorf("parse json failed: %v\n", err)
		return
	}
	io.Pforan("mat = %+v\n", mat)
	chk.String(tst, mat.Model, "plasticity")
	chk.String(tst, mat.Schema, "finite")
	chk.String(tst, mat.Frame, "random")
	chk.Int(tst, "nsteps", mat.Nsteps, 20)
	chk.Float64(tst, "dt", 1e-17, mat.Dt, 0.05)
	chk.Float64(tst, "threshold", 1e-17, mat.FlowThreshold, 0.014)
	chk.Array(tst, "elast_modulus", 1e-17, mat.ElastModulus, []float64{1.5, 1.0})
	chk.Deep2(tst, "curve", 1e-17, mat.Curve, [][]float64{{0, 1}, {10, 1}})
	l := mat.L()
	chk.Float64(tst, "L01", 1e-17, l[0][1], 0.1)

	fcn, err := mat.LoadFcn.New()
	if err != nil {
		tst.Errorf("cannot allocate load function: %v\n", err)
		return
	}
	chk.Float64(tst, "f(1.5)", 1e-15, fcn.F(1.5, nil), 3)

	mat, err = ParseMaterial([]byte(elasticityYAML), ".yaml")
	if err != nil {
		tst.Errorf("parse yaml failed: %v\n", err)
		return
	}
	io.Pforan("mat = %+v\n", mat)
	chk.String(tst, mat.Model, "elasticity")
	chk.String(tst, mat.Schema, "rate")
	chk.String(tst, mat.Frame, "identity")
	chk.Int(tst, "nsteps", mat.Nsteps, 100)
	chk.Deep2(tst, "L", 1e-17, mat.VelocityGradient, [][]float64{{0.01, 0, 0}, {0, -0.005, 0}, {0, 0, -0.005}})
	if mat.LoadFcn != nil {
		tst.Errorf("load function should be nil\n")
	}
}

func Test_material02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material02. invalid parameters")

	check := func(doc, key string) {
		_, err := ParseMaterial([]byte(doc), "yaml")
		if !errors.Is(err, ErrInvalidParameter) {
			tst.Errorf("%s: error should be an invalid parameter. err = %v\n", key, err)
			return
		}
		var perr *ParamError
		if !errors.As(err, &perr) {
			tst.Errorf("%s: error should be a ParamError\n", key)
			return
		}
		io.Pfyel("%v\n", err)
		chk.String(tst, perr.Name, key)
	}

	base := "model: elasticity\nvelocity_gradient: [[0,0,0],[0,0,0],[0,0,0]]\n"
	check(base, "elast_modulus")
	check(base+"elast_modulus: [1]\n", "elast_modulus")
	check(base+"elast_modulus: [1, 0]\n", "elast_modulus")
	check("model: elasticity\nelast_modulus: [1, 1]\n", "velocity_gradient")
	check("model: elasticity\nelast_modulus: [1, 1]\nvelocity_gradient: [[0,0,0],[0,0],[0,0,0]]\n", "velocity_gradient[1]")
	check("model: viscosity\nelast_modulus: [1, 1]\nvelocity_gradient: [[0,0,0],[0,0,0],[0,0,0]]\n", "model")

	plastic := "model: plasticity\nelast_modulus: [1, 1]\nvelocity_gradient: [[0,0,0],[0,0,0],[0,0,0]]\n"
	check(plastic+"flow_threshold: 0.1\n", "curve")
	check(plastic+"curve: [[0, 1], [1, 1]]\n", "flow_threshold")
	check(plastic+"flow_threshold: 0.1\ncurve: [[0, 1], [1]]\n", "curve[1]")
	check(base+"elast_modulus: [1, 1]\ndt: -1\n", "dt")
	check(base+"elast_modulus: [1, 1]\nloadfcn: {type: unknown}\n", "loadfcn")

	_, err := ParseMaterial([]byte(base+"unknown_key: 1\n"), "yaml")
	if err == nil {
		tst.Errorf("unknown keys should be rejected\n")
	}
	_, err = ParseMaterial([]byte(plasticityJSON), "toml")
	if err == nil {
		tst.Errorf("unknown formats should be rejected\n")
	}
}

func Test_material03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material03. samples and files")

	dir := tst.TempDir()
	for _, model := range []string{"elasticity", "plasticity"} {
		mat, err := Sample(model)
		if err != nil {
			tst.Errorf("sample failed: %v\n", err)
			return
		}
		if err = mat.Validate(); err != nil {
			tst.Errorf("sample %q is invalid: %v\n", model, err)
			return
		}
		for _, ext := range []string{".json", ".yml"} {
			b, err := mat.Encode(ext)
			if err != nil {
				tst.Errorf("encode failed: %v\n", err)
				return
			}
			fn := filepath.Join(dir, model+ext)
			if err = os.WriteFile(fn, b, 0644); err != nil {
				tst.Errorf("cannot write %q: %v\n", fn, err)
				return
			}
			res, err := ReadMaterial(fn)
			if err != nil {
				tst.Errorf("cannot read %q: %v\n", fn, err)
				return
			}
			chk.String(tst, res.Model, model)
			chk.Deep2(tst, "curve", 1e-17, res.Curve, mat.Curve)
			chk.Float64(tst, "threshold", 1e-17, res.FlowThreshold, mat.FlowThreshold)
		}
	}

	_, err := Sample("viscosity")
	if !errors.Is(err, ErrInvalidParameter) {
		tst.Errorf("unknown model should fail. err = %v\n", err)
	}
	if _, err = ReadMaterial(filepath.Join(dir, "missing.json")); err == nil {
		tst.Errorf("missing file should fail\n")
	}
}

func Test_material04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material04. example documents")

	fns, err := filepath.Glob(filepath.Join("..", "examples", "*.*"))
	if err != nil {
		tst.Errorf("glob failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of examples", len(fns), 3)
	for _, fn := range fns {
		mat, err := ReadMaterial(fn)
		if err != nil {
			tst.Errorf("cannot read %q: %v\n", fn, err)
			return
		}
		io.Pforan("%-40s %-12s %-8s %v\n", filepath.Base(fn), mat.Model, mat.Schema, mat.Desc)
		if mat.LoadFcn == nil {
			tst.Errorf("%q: examples define a load function\n", fn)
		}
	}
}

func Test_material05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material05. time functions")

	fcn, err := (&FuncData{Type: "cte", Prms: []PrmData{{N: "c", V: 2.5}}}).New()
	if err != nil {
		tst.Errorf("cte failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cte", 1e-17, fcn.F(7, nil), 2.5)

	for _, fd := range []*FuncData{
		{Type: "unknown"},
		{Type: "cte", Prms: []PrmData{{N: "m", V: 1}}},
		{Type: "lin"},
	} {
		fcn, err = fd.New()
		if !errors.Is(err, ErrInvalidParameter) {
			tst.Errorf("%q should fail with an invalid parameter. err = %v\n", fd.Type, err)
			return
		}
		if fcn != nil {
			tst.Errorf("%q: function must be nil on failure\n", fd.Type)
			return
		}
		io.Pfyel("%v\n", err)
	}

	_, err = NewFunc("curve", "pts", nil)
	var perr *ParamError
	if !errors.As(err, &perr) {
		tst.Errorf("pts without points should fail. err = %v\n", err)
		return
	}
	chk.String(tst, perr.Name, "curve")

	mat := new(Material)
	mat.SetDefault()
	mat.Model = "elasticity"
	mat.ElastModulus = []float64{1, 1}
	mat.VelocityGradient = [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	mat.LoadFcn = &FuncData{Type: "unknown"}
	if err = mat.Validate(); !errors.Is(err, ErrInvalidParameter) {
		tst.Errorf("unknown load function should be invalid. err = %v\n", err)
	}
}
