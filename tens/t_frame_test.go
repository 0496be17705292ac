// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tens

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/num/quat"
)

// rotz returns the frame rotated by θ about the z axis
func rotz(θ float64) *Frame {
	c, s := math.Cos(θ), math.Sin(θ)
	fr, err := NewFrame([3][3]float64{{c, s, 0}, {-s, c, 0}, {0, 0, 1}})
	if err != nil {
		panic(err)
	}
	return fr
}

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. construction")

	_, err := NewFrame([3][3]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 1}})
	if !errors.Is(err, ErrInvalidFrame) {
		tst.Errorf("non-orthogonal frame should fail. err = %v\n", err)
		return
	}
	io.Pfyel("%v\n", err)

	_, err = NewFrameComp(Vec([3]float64{1, 0, 0}))
	if !errors.Is(err, ErrInvalidFrame) {
		tst.Errorf("rank-1 frame should fail. err = %v\n", err)
		return
	}

	if IdentFrame() != Global {
		tst.Errorf("identity frame must be the global frame\n")
		return
	}

	rnd := rand.New(rand.NewSource(1234))
	for i := 0; i < 5; i++ {
		fr := RandomFrame(rnd)
		io.Pforan("fr = %v\n", fr)
		if _, err = NewFrameComp(fr.Comp()); err != nil {
			tst.Errorf("random frame is not orthogonal: %v\n", err)
			return
		}
		det, _ := fr.Comp().Det()
		chk.Float64(tst, "det(Q)", 1e-13, det, 1)
	}

	q := quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)}
	m := QuatMatrix(q)
	chk.Deep2(tst, "Q(90° about z)", 1e-15, deep2(m.Array()), [][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}})
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. expressing components")

	fr := rotz(math.Pi / 2)

	// global x axis seen from a frame rotated by 90° about z
	v := Vec([3]float64{1, 0, 0})
	vb := Global.express(v, fr)
	chk.Array(tst, "v in B", 1e-15, vb.Slice(), []float64{0, -1, 0})
	chk.Array(tst, "back", 1e-15, fr.express(vb, Global).Slice(), []float64{1, 0, 0})

	// uniaxial tension along global x becomes tension along local y
	s := Diag(1, 0, 0)
	sb := Global.express(s, fr)
	chk.Deep2(tst, "s in B", 1e-15, deep2(sb.Array()), [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})

	// composition through a third frame
	fc := rotz(math.Pi / 6)
	sc := fr.express(sb, fc)
	if !Global.express(s, fc).Equal(sc) {
		tst.Errorf("A→B→C differs from A→C\n")
		return
	}

	// scalars are frame independent
	chk.Float64(tst, "scalar", 1e-17, Global.express(Scalar(3), fr).V[0], 3)
}
