// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tens

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// error kinds returned by tensor operations; test with errors.Is
var (
	ErrShapeMismatch       = errors.New("shape mismatch")
	ErrSingularMatrix      = errors.New("singular matrix")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidFrame        = errors.New("invalid frame")
	ErrNoImplementationYet = errors.New("no implementation yet")
	ErrOutOfRange          = errors.New("out of range")
	ErrNoConvergence       = errors.New("no convergence")
)

// Errf returns an error of the given kind with a formatted message
func Errf(kind error, msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, io.Sf(msg, prm...))
}
