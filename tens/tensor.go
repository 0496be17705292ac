// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tens

import "math"

// Tensor pairs raw components with the frame they are expressed in.
//
//  Binary operations between tensors in different frames re-express the right-hand
//  operand in the frame of the left-hand one; the result is in the left frame.
type Tensor struct {
	comp  Comp
	frame *Frame
}

// New returns a tensor with components c expressed in frame (nil means Global)
func New(c Comp, frame *Frame) Tensor {
	if frame == nil {
		frame = Global
	}
	return Tensor{comp: c, frame: frame}
}

// NewVector returns a rank-1 tensor
func NewVector(a [3]float64, frame *Frame) Tensor { return New(Vec(a), frame) }

// NewMatrix returns a rank-2 tensor
func NewMatrix(m [3][3]float64, frame *Frame) Tensor { return New(Mat(m), frame) }

// Identity returns the rank-2 identity in frame
func Identity(frame *Frame) Tensor { return New(Ident(), frame) }

// ZeroTensor returns a zero tensor of the given rank in frame
func ZeroTensor(rank int, frame *Frame) (Tensor, error) {
	c, err := NewComp(rank)
	return New(c, frame), err
}

// Frame returns the frame
func (o Tensor) Frame() *Frame { return o.frame }

// Comp returns the stored components
func (o Tensor) Comp() Comp { return o.comp }

// Rank returns the rank
func (o Tensor) Rank() int { return o.comp.rank }

// At returns the components expressed in target; o is not modified
func (o Tensor) At(target *Frame) Comp {
	return o.frame.express(o.comp, target)
}

// ChangeFrame re-expresses o in target; the physical value is unchanged
func (o *Tensor) ChangeFrame(target *Frame) {
	if target == nil {
		target = Global
	}
	o.comp = o.At(target)
	o.frame = target
}

// arithmetic ////////////////////////////////////////////////////////////////////////////////////

// Add returns o + b in o's frame
func (o Tensor) Add(b Tensor) (Tensor, error) {
	err := o.AddIn(b)
	return o, err
}

// Sub returns o - b in o's frame
func (o Tensor) Sub(b Tensor) (Tensor, error) {
	err := o.SubIn(b)
	return o, err
}

// Scale returns a·o
func (o Tensor) Scale(a float64) Tensor {
	o.comp.ScaleIn(a)
	return o
}

// Div returns o/a
func (o Tensor) Div(a float64) (Tensor, error) {
	err := o.comp.DivIn(a)
	return o, err
}

// Dot returns the single contraction o · b in o's frame
func (o Tensor) Dot(b Tensor) (res Tensor, err error) {
	c, err := o.comp.Dot(b.At(o.frame))
	return Tensor{comp: c, frame: o.frame}, err
}

// Inner returns the scalar product of two vectors
func (o Tensor) Inner(b Tensor) (float64, error) {
	if o.comp.rank != 1 || b.comp.rank != 1 {
		return 0, Errf(ErrShapeMismatch, "inner product of rank %d and rank %d", o.comp.rank, b.comp.rank)
	}
	bc := b.At(o.frame)
	return vecdot(&o.comp.V, &bc.V), nil
}

// Conv returns the double contraction o : b
func (o Tensor) Conv(b Tensor) (float64, error) {
	return o.comp.Conv(b.At(o.frame))
}

// AddIn performs o += b
func (o *Tensor) AddIn(b Tensor) error { return o.comp.AddIn(b.At(o.frame)) }

// SubIn performs o -= b
func (o *Tensor) SubIn(b Tensor) error { return o.comp.SubIn(b.At(o.frame)) }

// ScaleIn performs o *= a
func (o *Tensor) ScaleIn(a float64) { o.comp.ScaleIn(a) }

// DivIn performs o /= a
func (o *Tensor) DivIn(a float64) error { return o.comp.DivIn(a) }

// DotIn performs o = o · b
func (o *Tensor) DotIn(b Tensor) (err error) {
	c, err := o.comp.Dot(b.At(o.frame))
	if err != nil {
		return
	}
	o.comp = c
	return
}

// algebra ///////////////////////////////////////////////////////////////////////////////////////

func (o Tensor) rank2(op string) error {
	if o.comp.rank != 2 {
		return Errf(ErrNoImplementationYet, "%s of rank-%d tensor", op, o.comp.rank)
	}
	return nil
}

// Transpose returns oᵀ in o's frame
func (o Tensor) Transpose() (Tensor, error) {
	if err := o.rank2("transpose"); err != nil {
		return o, err
	}
	o.comp, _ = o.comp.Transpose()
	return o, nil
}

// Inverse returns o⁻¹ in o's frame
func (o Tensor) Inverse() (Tensor, error) {
	if err := o.rank2("inverse"); err != nil {
		return o, err
	}
	c, err := o.comp.Inverse()
	if err != nil {
		return o, err
	}
	o.comp = c
	return o, nil
}

// Symmetrize returns (o + oᵀ)/2 in o's frame
func (o Tensor) Symmetrize() (Tensor, error) {
	if err := o.rank2("symmetrize"); err != nil {
		return o, err
	}
	o.comp, _ = o.comp.Symmetrize()
	return o, nil
}

// Trace returns tr(o)
func (o Tensor) Trace() (float64, error) { return o.comp.Trace() }

// Det returns det(o)
func (o Tensor) Det() (float64, error) { return o.comp.Det() }

// Norm returns ‖o‖
func (o Tensor) Norm() float64 { return o.comp.Norm() }

// Intensity returns sqrt(2/3 · o:o) for rank-2 tensors and ‖o‖ otherwise
func (o Tensor) Intensity() float64 {
	if o.comp.rank != 2 {
		return o.comp.Norm()
	}
	return math.Sqrt(2.0 / 3.0 * matconv(&o.comp.V, &o.comp.V))
}

// Equal compares the physical values of two tensors, regardless of their frames
func (o Tensor) Equal(b Tensor) bool {
	return o.comp.Equal(b.At(o.frame))
}

// String renders the components in the tensor's own frame
func (o Tensor) String() string { return o.comp.String() }
