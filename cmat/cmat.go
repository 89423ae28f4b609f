package cmat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch indicates an incompatible right-hand side in LstSq.
// Shape violations in the pure matrix helpers panic with mat.ErrShape, the
// same contract gonum's own kernels follow.
var ErrDimensionMismatch = errors.New("cmat: dimension mismatch")

// ErrSolveFailed is returned when the underlying least-squares solve fails,
// typically because the system is rank deficient.
var ErrSolveFailed = errors.New("cmat: least-squares solve failed")

// FromReal promotes a real dense matrix to a complex one with zero
// imaginary part.
func FromReal(a *mat.Dense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, complex(a.At(i, j), 0))
		}
	}

	return out
}

// Real extracts the real part of a complex dense matrix.
func Real(a *mat.CDense) *mat.Dense {
	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, real(a.At(i, j)))
		}
	}

	return out
}

// Imag extracts the imaginary part of a complex dense matrix.
func Imag(a *mat.CDense) *mat.Dense {
	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, imag(a.At(i, j)))
		}
	}

	return out
}

// MulRealCmplx computes a·b where a is real (m×k) and b is complex (k×n).
// The product is formed as a·Re(b) + i·a·Im(b), keeping both multiplications
// inside gonum's real BLAS path. Panics with mat.ErrShape on incompatible
// dimensions, as gonum's Mul does.
func MulRealCmplx(a *mat.Dense, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic(mat.ErrShape)
	}

	var re, im mat.Dense
	re.Mul(a, Real(b))
	im.Mul(a, Imag(b))

	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			out.Set(i, j, complex(re.At(i, j), im.At(i, j)))
		}
	}

	return out
}

// MulCmplx computes the complex product a·b. gonum's CDense carries no
// arithmetic methods, so the product is decomposed into four real ones:
// Re = Ar·Br − Ai·Bi and Im = Ar·Bi + Ai·Br, all inside the real BLAS
// path. Panics with mat.ErrShape on incompatible dimensions, as gonum's
// Dense.Mul does.
func MulCmplx(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic(mat.ErrShape)
	}

	are, aim := Real(a), Imag(a)
	bre, bim := Real(b), Imag(b)

	var re, im, t mat.Dense
	re.Mul(are, bre)
	t.Mul(aim, bim)
	re.Sub(&re, &t)
	im.Mul(are, bim)
	t.Mul(aim, bre)
	im.Add(&im, &t)

	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			out.Set(i, j, complex(re.At(i, j), im.At(i, j)))
		}
	}

	return out
}

// SliceRows returns a copy of rows [from, to) of a. Panics with
// mat.ErrIndexOutOfRange on an invalid range.
func SliceRows(a *mat.CDense, from, to int) *mat.CDense {
	r, c := a.Dims()
	if from < 0 || to > r || from >= to {
		panic(mat.ErrIndexOutOfRange)
	}

	out := mat.NewCDense(to-from, c, nil)
	for i := from; i < to; i++ {
		for j := 0; j < c; j++ {
			out.Set(i-from, j, a.At(i, j))
		}
	}

	return out
}

// Vandermonde builds the k×cols matrix V with V[i][j] = nodes[i]^j.
// Powers are accumulated by repeated multiplication, which keeps the result
// exact for unit-modulus nodes over short horizons.
func Vandermonde(nodes []complex128, cols int) *mat.CDense {
	k := len(nodes)
	out := mat.NewCDense(k, cols, nil)
	for i := 0; i < k; i++ {
		p := complex(1, 0)
		for j := 0; j < cols; j++ {
			out.Set(i, j, p)
			p *= nodes[i]
		}
	}

	return out
}

// LstSq solves the complex least-squares problem min ‖a·x − b‖₂ for x,
// where a is m×n with m ≥ n and b has length m. The system is mapped onto
// its real augmented form and solved with gonum's QR least squares.
func LstSq(a *mat.CDense, b []complex128) ([]complex128, error) {
	m, n := a.Dims()
	if len(b) != m {
		return nil, fmt.Errorf("%w: matrix is %d×%d, rhs has length %d", ErrDimensionMismatch, m, n, len(b))
	}

	// Augmented real system: 2m×2n matrix, 2m rhs.
	aug := mat.NewDense(2*m, 2*n, nil)
	rhs := mat.NewVecDense(2*m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			re, im := real(a.At(i, j)), imag(a.At(i, j))
			aug.Set(i, j, re)
			aug.Set(i, n+j, -im)
			aug.Set(m+i, j, im)
			aug.Set(m+i, n+j, re)
		}
		rhs.SetVec(i, real(b[i]))
		rhs.SetVec(m+i, imag(b[i]))
	}

	var sol mat.VecDense
	if err := sol.SolveVec(aug, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolveFailed, err)
	}

	x := make([]complex128, n)
	for j := 0; j < n; j++ {
		x[j] = complex(sol.AtVec(j), sol.AtVec(n+j))
	}

	return x, nil
}
