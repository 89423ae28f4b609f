package cmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/modekit/modekit/cmat"
)

// TestFromRealRoundTrip verifies that promoting a real matrix and taking the
// real part again is the identity, and that the imaginary part is zero.
func TestFromRealRoundTrip(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	c := cmat.FromReal(a)
	assert.True(t, mat.Equal(a, cmat.Real(c)), "real part must round-trip")
	assert.True(t, mat.Equal(mat.NewDense(2, 3, nil), cmat.Imag(c)), "imaginary part must be zero")
}

// TestMulRealCmplx checks a mixed real×complex product against a hand
// computed result.
func TestMulRealCmplx(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewCDense(2, 1, []complex128{1 + 1i, 2 - 1i})

	got := cmat.MulRealCmplx(a, b)

	assert.Equal(t, 5+(-1i), got.At(0, 0), "row 0: 1·(1+i) + 2·(2−i)")
	assert.Equal(t, 11+(-1i), got.At(1, 0), "row 1: 3·(1+i) + 4·(2−i)")
}

// TestMulRealCmplx_ShapePanic ensures incompatible shapes panic the same
// way gonum's Mul does.
func TestMulRealCmplx_ShapePanic(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	b := mat.NewCDense(2, 2, nil)

	assert.Panics(t, func() { cmat.MulRealCmplx(a, b) })
}

// TestMulCmplx checks a fully complex product against a hand computed
// result, including the cross terms between real and imaginary parts.
func TestMulCmplx(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{1 + 1i, 2, 0, 3 - 1i})
	b := mat.NewCDense(2, 2, []complex128{1i, 1, 2 - 2i, 0})

	got := cmat.MulCmplx(a, b)

	assert.Equal(t, complex128(3+(-3i)), got.At(0, 0), "(1+i)·i + 2·(2−2i)")
	assert.Equal(t, complex128(1+1i), got.At(0, 1), "(1+i)·1 + 2·0")
	assert.Equal(t, complex128(4+(-8i)), got.At(1, 0), "0·i + (3−i)·(2−2i)")
	assert.Equal(t, complex128(0), got.At(1, 1))
}

// TestMulCmplx_ShapePanic ensures incompatible shapes panic the same way
// gonum's Mul does.
func TestMulCmplx_ShapePanic(t *testing.T) {
	a := mat.NewCDense(2, 3, nil)
	b := mat.NewCDense(2, 2, nil)

	assert.Panics(t, func() { cmat.MulCmplx(a, b) })
}

// TestSliceRows verifies row-range extraction and its bounds checks.
func TestSliceRows(t *testing.T) {
	a := mat.NewCDense(3, 2, []complex128{1, 2, 3, 4, 5, 6})

	top := cmat.SliceRows(a, 0, 2)
	r, c := top.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, complex128(3), top.At(1, 0))

	assert.Panics(t, func() { cmat.SliceRows(a, 2, 2) }, "empty range must panic")
	assert.Panics(t, func() { cmat.SliceRows(a, 0, 4) }, "out-of-bounds range must panic")
}

// TestVandermonde checks entries of a small Vandermonde matrix.
func TestVandermonde(t *testing.T) {
	v := cmat.Vandermonde([]complex128{2, 1i}, 4)

	assert.Equal(t, complex128(1), v.At(0, 0))
	assert.Equal(t, complex128(8), v.At(0, 3))
	assert.Equal(t, complex128(-1), v.At(1, 2), "i² = −1")
	assert.Equal(t, -1i, v.At(1, 3), "i³ = −i")
}

// TestLstSq solves an exactly determined complex system and checks the
// residual is numerically zero.
func TestLstSq(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{1, 1i, -1i, 2})
	want := []complex128{3 - 1i, 0.5 + 2i}
	b := []complex128{
		a.At(0, 0)*want[0] + a.At(0, 1)*want[1],
		a.At(1, 0)*want[0] + a.At(1, 1)*want[1],
	}

	got, err := cmat.LstSq(a, b)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-12)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-12)
	}
}

// TestLstSq_Overdetermined fits an overdetermined consistent system; the
// least-squares solution must match the generating coefficients.
func TestLstSq_Overdetermined(t *testing.T) {
	// Three equations, one unknown: x = 2+i exactly.
	a := mat.NewCDense(3, 1, []complex128{1, 2, 1i})
	x := 2 + 1i
	b := []complex128{x, 2 * x, 1i * x}

	got, err := cmat.LstSq(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 2, real(got[0]), 1e-12)
	assert.InDelta(t, 1, imag(got[0]), 1e-12)
}

// TestLstSq_BadRHS ensures a wrong-length right-hand side is rejected.
func TestLstSq_BadRHS(t *testing.T) {
	a := mat.NewCDense(2, 2, nil)

	_, err := cmat.LstSq(a, []complex128{1})
	assert.ErrorIs(t, err, cmat.ErrDimensionMismatch)
}

// TestVandermonde_UnitModulus confirms powers of a unit-modulus node keep
// modulus one over a long horizon (reconstruction stability).
func TestVandermonde_UnitModulus(t *testing.T) {
	lambda := complex(math.Cos(0.3), math.Sin(0.3))
	v := cmat.Vandermonde([]complex128{lambda}, 64)

	for j := 0; j < 64; j++ {
		m := real(v.At(0, j))*real(v.At(0, j)) + imag(v.At(0, j))*imag(v.At(0, j))
		assert.InDelta(t, 1.0, m, 1e-12, "|λ^%d| must stay 1", j)
	}
}
