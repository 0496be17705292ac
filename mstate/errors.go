// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstate

import "errors"

// error kinds returned by measures, schemas and states
var (
	ErrAlreadyExists            = errors.New("already exists")
	ErrNotFound                 = errors.New("not found")
	ErrUndefinedNumericalSchema = errors.New("undefined numerical schema")
	ErrPhase                    = errors.New("update protocol violated")
	ErrCyclicDependency         = errors.New("cyclic dependency")
)
