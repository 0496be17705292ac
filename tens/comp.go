// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tens implements 3D tensors of rank 0, 1 and 2 whose components are
// expressed in an explicit orthogonal frame
package tens

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/io"
)

// tolerances
var (
	SmallTol = 1e-13 // values below this are treated as zero (divisions, determinants)
	EqualTol = 1e-12 // tolerance on the norm of differences for equality
	FrameTol = 1e-10 // tolerance on ‖Q·Qᵀ - I‖ for frames
)

// Comp holds the raw components of a rank-0, rank-1 or rank-2 tensor in 3D
//  rank 0: V[0]
//  rank 1: V[0:3]
//  rank 2: V[0:9] using the compact layout {00, 11, 22, 12, 02, 01, 21, 20, 10}
type Comp struct {
	rank int
	V    [9]float64
}

// NewComp returns a zeroed container with the given rank
func NewComp(rank int) (o Comp, err error) {
	if rank < 0 || rank > 2 {
		return o, Errf(ErrNoImplementationYet, "rank %d is not available; only 0, 1 and 2", rank)
	}
	o.rank = rank
	return
}

// Scalar returns a rank-0 container
func Scalar(a float64) (o Comp) {
	o.V[0] = a
	return
}

// Vec returns a rank-1 container
func Vec(a [3]float64) (o Comp) {
	o.rank = 1
	copy(o.V[:3], a[:])
	return
}

// Mat returns a rank-2 container from a 3×3 array
func Mat(m [3][3]float64) (o Comp) {
	o.rank = 2
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.V[idx2[i][j]] = m[i][j]
		}
	}
	return
}

// Ident returns the rank-2 identity
func Ident() (o Comp) {
	o.rank = 2
	o.V[I00], o.V[I11], o.V[I22] = 1, 1, 1
	return
}

// Zero returns a zeroed rank-2 container
func Zero() Comp {
	return Comp{rank: 2}
}

// Diag returns a rank-2 diagonal container
func Diag(a, b, c float64) (o Comp) {
	o.rank = 2
	o.V[I00], o.V[I11], o.V[I22] = a, b, c
	return
}

// Rank returns the rank
func (o Comp) Rank() int { return o.rank }

// Size returns the number of stored components (3^rank)
func (o Comp) Size() int {
	switch o.rank {
	case 1:
		return 3
	case 2:
		return 9
	}
	return 1
}

// Get returns component (i,j) of a rank-2 container
func (o Comp) Get(i, j int) float64 { return o.V[idx2[i][j]] }

// Set sets component (i,j) of a rank-2 container
func (o *Comp) Set(i, j int, v float64) { o.V[idx2[i][j]] = v }

// Array returns the 3×3 array of a rank-2 container
func (o Comp) Array() (m [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = o.V[idx2[i][j]]
		}
	}
	return
}

// Vector returns the 3 components of a rank-1 container
func (o Comp) Vector() (a [3]float64) {
	copy(a[:], o.V[:3])
	return
}

// Slice returns a copy of the stored components
func (o Comp) Slice() []float64 {
	res := make([]float64, o.Size())
	copy(res, o.V[:o.Size()])
	return res
}

// Float returns the value of a rank-0 container
func (o Comp) Float() (float64, error) {
	if o.rank != 0 {
		return 0, Errf(ErrShapeMismatch, "cannot cast rank-%d container to scalar", o.rank)
	}
	return o.V[0], nil
}

// arithmetic ////////////////////////////////////////////////////////////////////////////////////

func (o Comp) same(b Comp, op string) error {
	if o.rank != b.rank {
		return Errf(ErrShapeMismatch, "%s: rank %d and rank %d", op, o.rank, b.rank)
	}
	return nil
}

// Add returns o + b
func (o Comp) Add(b Comp) (Comp, error) {
	err := o.AddIn(b)
	return o, err
}

// Sub returns o - b
func (o Comp) Sub(b Comp) (Comp, error) {
	err := o.SubIn(b)
	return o, err
}

// Scale returns a·o
func (o Comp) Scale(a float64) Comp {
	o.ScaleIn(a)
	return o
}

// Div returns o/a
func (o Comp) Div(a float64) (Comp, error) {
	err := o.DivIn(a)
	return o, err
}

// AddIn performs o += b
func (o *Comp) AddIn(b Comp) error {
	if err := o.same(b, "add"); err != nil {
		return err
	}
	for k := 0; k < o.Size(); k++ {
		o.V[k] += b.V[k]
	}
	return nil
}

// SubIn performs o -= b
func (o *Comp) SubIn(b Comp) error {
	if err := o.same(b, "sub"); err != nil {
		return err
	}
	for k := 0; k < o.Size(); k++ {
		o.V[k] -= b.V[k]
	}
	return nil
}

// ScaleIn performs o *= a
func (o *Comp) ScaleIn(a float64) {
	for k := 0; k < o.Size(); k++ {
		o.V[k] *= a
	}
}

// DivIn performs o /= a
func (o *Comp) DivIn(a float64) error {
	if math.Abs(a) < SmallTol {
		return Errf(ErrDivisionByZero, "divisor %g", a)
	}
	o.ScaleIn(1.0 / a)
	return nil
}

// Dot returns the single contraction o · b
//  rank2·rank2 → rank 2
//  rank1·rank2 → rank 1 (row vector)
//  rank2·rank1 → rank 1
//  rank1·rank1 → rank 0 (inner product)
func (o Comp) Dot(b Comp) (res Comp, err error) {
	switch {
	case o.rank == 2 && b.rank == 2:
		res.rank = 2
		matmul(&res.V, &o.V, &b.V)
	case o.rank == 1 && b.rank == 2:
		res.rank = 1
		vecmat(&res.V, &o.V, &b.V)
	case o.rank == 2 && b.rank == 1:
		res.rank = 1
		matvec(&res.V, &o.V, &b.V)
	case o.rank == 1 && b.rank == 1:
		res.V[0] = vecdot(&o.V, &b.V)
	default:
		err = Errf(ErrNoImplementationYet, "product of rank %d and rank %d", o.rank, b.rank)
	}
	return
}

// MulT returns o · bᵀ for rank-2 containers
func (o Comp) MulT(b Comp) (res Comp, err error) {
	if o.rank != 2 || b.rank != 2 {
		return res, Errf(ErrNoImplementationYet, "a·bᵀ requires rank 2; got %d and %d", o.rank, b.rank)
	}
	res.rank = 2
	matmulT(&res.V, &o.V, &b.V)
	return
}

// Conv returns the double contraction o : b
func (o Comp) Conv(b Comp) (float64, error) {
	if err := o.same(b, "convolution"); err != nil {
		return 0, err
	}
	if o.rank != 2 {
		return 0, Errf(ErrNoImplementationYet, "convolution requires rank 2; got %d", o.rank)
	}
	return matconv(&o.V, &b.V), nil
}

// ConvT returns o : bᵀ
func (o Comp) ConvT(b Comp) (float64, error) {
	if err := o.same(b, "convolution"); err != nil {
		return 0, err
	}
	if o.rank != 2 {
		return 0, Errf(ErrNoImplementationYet, "convolution requires rank 2; got %d", o.rank)
	}
	return matconvT(&o.V, &b.V), nil
}

// algebra ///////////////////////////////////////////////////////////////////////////////////////

// Transpose returns oᵀ; rank-1 containers are returned unchanged
func (o Comp) Transpose() (Comp, error) {
	switch o.rank {
	case 1:
		return o, nil
	case 2:
		o.V[I12], o.V[I21] = o.V[I21], o.V[I12]
		o.V[I02], o.V[I20] = o.V[I20], o.V[I02]
		o.V[I01], o.V[I10] = o.V[I10], o.V[I01]
		return o, nil
	}
	return o, Errf(ErrNoImplementationYet, "transpose of rank %d", o.rank)
}

// Symmetrize returns (o + oᵀ)/2
func (o Comp) Symmetrize() (Comp, error) {
	switch o.rank {
	case 1:
		return o, nil
	case 2:
		for k := 3; k < 6; k++ {
			o.V[k] = (o.V[k] + o.V[k+3]) * 0.5
			o.V[k+3] = o.V[k]
		}
		return o, nil
	}
	return o, Errf(ErrNoImplementationYet, "symmetrize of rank %d", o.rank)
}

// Trace returns tr(o); the value itself for rank 0
func (o Comp) Trace() (float64, error) {
	switch o.rank {
	case 0:
		return o.V[0], nil
	case 2:
		return o.V[I00] + o.V[I11] + o.V[I22], nil
	}
	return 0, Errf(ErrNoImplementationYet, "trace of rank %d", o.rank)
}

// Det returns det(o)
func (o Comp) Det() (float64, error) {
	if o.rank != 2 {
		return 0, Errf(ErrShapeMismatch, "determinant of rank %d", o.rank)
	}
	return matdet(&o.V), nil
}

// Inverse returns o⁻¹
func (o Comp) Inverse() (res Comp, err error) {
	if o.rank != 2 {
		return res, Errf(ErrNoImplementationYet, "inverse of rank %d", o.rank)
	}
	det := matdet(&o.V)
	if math.Abs(det) < SmallTol {
		return res, Errf(ErrSingularMatrix, "det = %g", det)
	}
	res.rank = 2
	matinv(&res.V, &o.V, det)
	return
}

// Norm returns the square root of the sum of squares of all stored components.
// For rank 2 each off-diagonal pair contributes both halves.
func (o Comp) Norm() float64 {
	sum := 0.0
	for k := 0; k < o.Size(); k++ {
		sum += o.V[k] * o.V[k]
	}
	return math.Sqrt(sum)
}

// Normalize returns o/‖o‖ for rank-1 containers
func (o Comp) Normalize() (Comp, error) {
	if o.rank != 1 {
		return o, Errf(ErrNoImplementationYet, "normalize of rank %d", o.rank)
	}
	return o.Div(o.Norm())
}

// Equal compares containers within EqualTol
func (o Comp) Equal(b Comp) bool {
	d, err := o.Sub(b)
	if err != nil {
		return false
	}
	return d.Norm() < EqualTol
}

// String renders { c0, c1, ..., cN }
func (o Comp) String() string {
	var b bytes.Buffer
	io.Ff(&b, "{ ")
	n := o.Size()
	for k := 0; k < n-1; k++ {
		io.Ff(&b, "%g, ", o.V[k])
	}
	io.Ff(&b, "%g }", o.V[n-1])
	return b.String()
}
