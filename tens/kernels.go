// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tens

// compact rank-2 layout: {00, 11, 22, 12, 02, 01, 21, 20, 10}
//  diagonal first, then the upper and lower halves ordered so that
//  slot k and slot k+3 (k = 3,4,5) hold a transposed pair
const (
	I00 = 0
	I11 = 1
	I22 = 2
	I12 = 3
	I02 = 4
	I01 = 5
	I21 = 6
	I20 = 7
	I10 = 8
)

// idx2 maps (i,j) to the compact slot
var idx2 = [3][3]int{
	{I00, I01, I02},
	{I10, I11, I12},
	{I20, I21, I22},
}

// Idx returns the compact slot of component (i,j)
func Idx(i, j int) int { return idx2[i][j] }

// matmul computes c = a · b
func matmul(c, a, b *[9]float64) {
	var r [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[idx2[i][j]] = a[idx2[i][0]]*b[idx2[0][j]] + a[idx2[i][1]]*b[idx2[1][j]] + a[idx2[i][2]]*b[idx2[2][j]]
		}
	}
	*c = r
}

// matmulT computes c = a · bᵀ
func matmulT(c, a, b *[9]float64) {
	var r [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[idx2[i][j]] = a[idx2[i][0]]*b[idx2[j][0]] + a[idx2[i][1]]*b[idx2[j][1]] + a[idx2[i][2]]*b[idx2[j][2]]
		}
	}
	*c = r
}

// matTmul computes c = aᵀ · b
func matTmul(c, a, b *[9]float64) {
	var r [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[idx2[i][j]] = a[idx2[0][i]]*b[idx2[0][j]] + a[idx2[1][i]]*b[idx2[1][j]] + a[idx2[2][i]]*b[idx2[2][j]]
		}
	}
	*c = r
}

// matvec computes u = m · v
func matvec(u, m, v *[9]float64) {
	var r [9]float64
	for i := 0; i < 3; i++ {
		r[i] = m[idx2[i][0]]*v[0] + m[idx2[i][1]]*v[1] + m[idx2[i][2]]*v[2]
	}
	*u = r
}

// vecmat computes u = v · m (row vector times matrix)
func vecmat(u, v, m *[9]float64) {
	var r [9]float64
	for j := 0; j < 3; j++ {
		r[j] = v[0]*m[idx2[0][j]] + v[1]*m[idx2[1][j]] + v[2]*m[idx2[2][j]]
	}
	*u = r
}

// vecdot returns a · b
func vecdot(a, b *[9]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// matconv returns a : b
func matconv(a, b *[9]float64) (res float64) {
	for k := 0; k < 9; k++ {
		res += a[k] * b[k]
	}
	return
}

// matconvT returns a : bᵀ
func matconvT(a, b *[9]float64) float64 {
	return a[I00]*b[I00] + a[I11]*b[I11] + a[I22]*b[I22] +
		a[I12]*b[I21] + a[I02]*b[I20] + a[I01]*b[I10] +
		a[I21]*b[I12] + a[I20]*b[I02] + a[I10]*b[I01]
}

// matdet returns det(m) by cofactor expansion along the first row
func matdet(m *[9]float64) float64 {
	return m[I00]*(m[I11]*m[I22]-m[I12]*m[I21]) -
		m[I01]*(m[I10]*m[I22]-m[I12]*m[I20]) +
		m[I02]*(m[I10]*m[I21]-m[I11]*m[I20])
}

// matinv computes mi = m⁻¹ given det(m) ≠ 0
func matinv(mi, m *[9]float64, det float64) {
	var r [9]float64
	d := 1.0 / det
	r[I00] = (m[I11]*m[I22] - m[I12]*m[I21]) * d
	r[I01] = (m[I02]*m[I21] - m[I01]*m[I22]) * d
	r[I02] = (m[I01]*m[I12] - m[I02]*m[I11]) * d
	r[I10] = (m[I12]*m[I20] - m[I10]*m[I22]) * d
	r[I11] = (m[I00]*m[I22] - m[I02]*m[I20]) * d
	r[I12] = (m[I02]*m[I10] - m[I00]*m[I12]) * d
	r[I20] = (m[I10]*m[I21] - m[I11]*m[I20]) * d
	r[I21] = (m[I01]*m[I20] - m[I00]*m[I21]) * d
	r[I22] = (m[I00]*m[I11] - m[I01]*m[I10]) * d
	*mi = r
}
