// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tens

import (
	"math/rand"

	"gonum.org/v1/gonum/num/quat"
)

// Frame holds an orthogonal 3×3 matrix whose rows are the basis vectors expressed in
// global coordinates. Frames are immutable and shared by pointer; two tensors are in
// the same frame iff they hold the same *Frame.
type Frame struct {
	q Comp
}

// Global is the identity frame
var Global = &Frame{q: Ident()}

// NewFrame returns a new frame after checking orthogonality
func NewFrame(m [3][3]float64) (*Frame, error) {
	return NewFrameComp(Mat(m))
}

// NewFrameComp returns a new frame from a rank-2 container after checking orthogonality
func NewFrameComp(q Comp) (*Frame, error) {
	if q.rank != 2 {
		return nil, Errf(ErrInvalidFrame, "frame must have rank 2; got %d", q.rank)
	}
	var qqt [9]float64
	matmulT(&qqt, &q.V, &q.V)
	qqt[I00] -= 1
	qqt[I11] -= 1
	qqt[I22] -= 1
	res := Comp{rank: 2, V: qqt}
	if res.Norm() > FrameTol {
		return nil, Errf(ErrInvalidFrame, "‖Q·Qᵀ - I‖ = %g", res.Norm())
	}
	return &Frame{q: q}, nil
}

// IdentFrame returns the global (identity) frame
func IdentFrame() *Frame { return Global }

// RandomFrame returns a uniformly distributed rotation built from a random unit quaternion
func RandomFrame(rnd *rand.Rand) *Frame {
	var q quat.Number
	for {
		q = quat.Number{Real: rnd.NormFloat64(), Imag: rnd.NormFloat64(), Jmag: rnd.NormFloat64(), Kmag: rnd.NormFloat64()}
		if n := quat.Abs(q); n > SmallTol {
			q = quat.Scale(1.0/n, q)
			break
		}
	}
	return &Frame{q: QuatMatrix(q)}
}

// QuatMatrix returns the rotation matrix of a unit quaternion
func QuatMatrix(q quat.Number) (m Comp) {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	xx, xy, xz := 2*x*x, 2*x*y, 2*x*z
	yy, yz, zz := 2*y*y, 2*y*z, 2*z*z
	wx, wy, wz := 2*w*x, 2*w*y, 2*w*z
	return Mat([3][3]float64{
		{1 - (yy + zz), xy - wz, xz + wy},
		{xy + wz, 1 - (xx + zz), yz - wx},
		{xz - wy, yz + wx, 1 - (xx + yy)},
	})
}

// Comp returns a copy of the frame matrix
func (o *Frame) Comp() Comp { return o.q }

// transform returns op = A·Bᵀ taking components from frame A (o) to frame B (target)
//  rank 2: c' = opᵀ·c·op
//  rank 1: c' = c·op
func (o *Frame) transform(target *Frame) (op Comp) {
	op.rank = 2
	matmulT(&op.V, &o.q.V, &target.q.V)
	return
}

// express returns the components c (given in o) expressed in target
func (o *Frame) express(c Comp, target *Frame) Comp {
	if o == target || c.rank == 0 {
		return c
	}
	op := o.transform(target)
	res := Comp{rank: c.rank}
	if c.rank == 1 {
		vecmat(&res.V, &c.V, &op.V)
		return res
	}
	var tmp [9]float64
	matTmul(&tmp, &op.V, &c.V)
	matmul(&res.V, &tmp, &op.V)
	return res
}

// String renders the frame matrix
func (o *Frame) String() string { return o.q.String() }
