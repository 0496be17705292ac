// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from JSON or YAML parameter documents
package inp

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Material holds the parameters of one material point simulation
type Material struct {

	// model
	Desc   string `json:"desc" yaml:"desc"`                                                     // description
	Model  string `json:"model" yaml:"model" validate:"required,oneof=elasticity plasticity"`   // model name
	Schema string `json:"schema" yaml:"schema" validate:"required"`                             // numerical schema: rate or finite
	Frame  string `json:"frame" yaml:"frame" validate:"omitempty,oneof=identity random"`        // frame of the material point
	Seed   int64  `json:"seed" yaml:"seed"`                                                     // seed of the random frame; 0 means time based

	// parameters
	ElastModulus  []float64   `json:"elast_modulus" yaml:"elast_modulus" validate:"required,len=2"`                      // [λ, μ]
	Curve         [][]float64 `json:"curve" yaml:"curve" validate:"required_if=Model plasticity,dive,len=2"`             // flow curve [[x, y], ...]
	FlowThreshold float64     `json:"flow_threshold" yaml:"flow_threshold" validate:"required_if=Model plasticity,gte=0"` // stress intensity at the onset of flow

	// loading
	VelocityGradient [][]float64 `json:"velocity_gradient" yaml:"velocity_gradient" validate:"required,len=3,dive,len=3"` // L in the global frame
	LoadFcn          *FuncData   `json:"loadfcn" yaml:"loadfcn"`                                                          // multiplier of L; nil means constant
	Dt               float64     `json:"dt" yaml:"dt" validate:"gt=0"`                                                    // time increment
	Nsteps           int         `json:"nsteps" yaml:"nsteps" validate:"gte=1"`                                           // number of increments
}

// SetDefault sets default values
func (o *Material) SetDefault() {
	o.Schema = "rate"
	o.Frame = "identity"
	o.Dt = 0.01
	o.Nsteps = 100
}

// L returns the velocity gradient as an array
func (o *Material) L() (l [3][3]float64) {
	for i := 0; i < len(o.VelocityGradient) && i < 3; i++ {
		copy(l[i][:], o.VelocityGradient[i])
	}
	return
}

// Validate checks the parameters
func (o *Material) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		if o.ElastModulus[1] <= 0 {
			return NewParamError("elast_modulus", "shear modulus μ = %g must be positive", o.ElastModulus[1])
		}
		if o.LoadFcn != nil {
			_, err = o.LoadFcn.New()
		}
		return err
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		name := fe.Namespace()
		if i := strings.Index(name, "."); i >= 0 {
			name = name[i+1:]
		}
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		return NewParamError(name, "failed on %q with value %v", reason, fe.Value())
	}
	return chk.Err("cannot validate material: %v", err)
}

// ReadMaterial reads and validates a parameter document; the format follows the
// extension: .json, .yaml or .yml
func ReadMaterial(fn string) (o *Material, err error) {
	b, err := readFile(fn)
	if err != nil {
		return nil, err
	}
	return ParseMaterial(b, filepath.Ext(fn))
}

// ParseMaterial decodes and validates a parameter document
//  format -- "json", "yaml" or "yml" (with or without leading dot)
func ParseMaterial(b []byte, format string) (o *Material, err error) {
	o = new(Material)
	o.SetDefault()
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(o)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(o)
	default:
		return nil, chk.Err("format %q is not available; use json or yaml", format)
	}
	if err != nil {
		return nil, chk.Err("cannot decode %s parameter document: %v", format, err)
	}
	if err = o.Validate(); err != nil {
		return nil, err
	}
	return
}

// Sample returns an example of parameters for a model
func Sample(model string) (o *Material, err error) {
	o = new(Material)
	o.SetDefault()
	o.Model = model
	o.ElastModulus = []float64{1.5, 1.0}
	o.VelocityGradient = [][]float64{
		{0, 0.05, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	o.LoadFcn = &FuncData{Type: "cte", Prms: []PrmData{{N: "c", V: 1}}}
	switch model {
	case "elasticity":
		o.Desc = "simple shear of an elastic material point"
	case "plasticity":
		o.Desc = "simple shear of an elasto-plastic material point"
		o.Curve = [][]float64{{0, 0.2}, {0.5, 0.8}, {10, 1}}
		o.FlowThreshold = 0.014
	default:
		return nil, NewParamError("model", "model %q is not available; use elasticity or plasticity", model)
	}
	return
}

// Encode writes the parameters in the given format
func (o *Material) Encode(format string) (b []byte, err error) {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "json":
		return json.MarshalIndent(o, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(o)
	}
	return nil, chk.Err("format %q is not available; use json or yaml", format)
}

// validate uses the document keys in error messages
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
