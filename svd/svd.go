package svd

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyMatrix is returned when the input matrix is nil or has a
	// zero dimension.
	ErrEmptyMatrix = errors.New("svd: input matrix is nil or empty")

	// ErrSVDFailed indicates that the backend factorization did not
	// converge. It is propagated unchanged; retrying with identical input
	// is meaningless.
	ErrSVDFailed = errors.New("svd: factorization failed to converge")

	// ErrRankOutOfRange is returned when a requested rank lies outside
	// [1, min(rows, cols)].
	ErrRankOutOfRange = errors.New("svd: rank out of range")
)

// SVD holds a truncated economy singular value decomposition. Values are
// computed once by New and immutable afterwards; accessors return copies so
// callers cannot corrupt the factorization.
type SVD struct {
	u    *mat.Dense // rows × rank, orthonormal columns
	v    *mat.Dense // cols × rank
	s    []float64  // full spectrum, descending; len = min(rows, cols)
	rank int
}

// New factorizes dm and truncates to either the rank set via WithRank or,
// by default, the rank selected by the optimal hard threshold (see package
// documentation). The factorization happens exactly once, here.
func New(dm *mat.Dense, opts ...Option) (*SVD, error) {
	if dm == nil {
		return nil, ErrEmptyMatrix
	}
	rows, cols := dm.Dims()
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyMatrix, rows, cols)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var fact mat.SVD
	if ok := fact.Factorize(dm, mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}

	s := fact.Values(nil)
	rank := optimalRank(s, rows, cols)
	if o.rank > 0 {
		if o.rank > len(s) {
			return nil, fmt.Errorf("%w: requested %d, min dimension is %d", ErrRankOutOfRange, o.rank, len(s))
		}
		rank = o.rank
	}

	var u, v mat.Dense
	fact.UTo(&u)
	fact.VTo(&v)

	ut := mat.DenseCopyOf(u.Slice(0, rows, 0, rank))
	vt := mat.DenseCopyOf(v.Slice(0, cols, 0, rank))

	return &SVD{u: ut, v: vt, s: s, rank: rank}, nil
}

// optimalRank implements the Gavish–Donoho optimal hard threshold for
// unknown noise level. The spectrum s must be sorted descending, which is
// what the backend produces.
func optimalRank(s []float64, rows, cols int) int {
	beta := float64(rows) / float64(cols)
	if beta > 1 {
		beta = 1 / beta
	}
	omega := 0.56*beta*beta*beta - 0.95*beta*beta + 1.82*beta + 1.43
	tau := omega * median(s)

	rank := 0
	for _, sv := range s {
		if sv > tau {
			rank++
		}
	}
	if rank < 1 {
		rank = 1
	}

	return rank
}

// median of a descending-sorted slice.
func median(s []float64) float64 {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return 0.5 * (s[n/2-1] + s[n/2])
}

// Rank returns the effective rank of the truncation.
func (d *SVD) Rank() int { return d.rank }

// U returns a copy of the truncated left singular basis (rows × rank).
func (d *SVD) U() *mat.Dense { return mat.DenseCopyOf(d.u) }

// V returns a copy of the truncated right singular basis (cols × rank).
func (d *SVD) V() *mat.Dense { return mat.DenseCopyOf(d.v) }

// S returns a copy of the retained singular values (length Rank).
func (d *SVD) S() []float64 {
	out := make([]float64, d.rank)
	copy(out, d.s[:d.rank])

	return out
}

// Spectrum returns a copy of the full singular spectrum, including the
// values dropped by the truncation.
func (d *SVD) Spectrum() []float64 {
	out := make([]float64, len(d.s))
	copy(out, d.s)

	return out
}

// RelativeContribution returns each singular value's share of the total
// spectral sum, in percent, over the full spectrum.
func (d *SVD) RelativeContribution() []float64 {
	total := floats.Sum(d.s)
	out := make([]float64, len(d.s))
	for i, sv := range d.s {
		out[i] = sv / total * 100
	}

	return out
}

// CumulativeContribution returns the running sum of RelativeContribution;
// the last entry is 100 (up to rounding).
func (d *SVD) CumulativeContribution() []float64 {
	out := d.RelativeContribution()
	for i := 1; i < len(out); i++ {
		out[i] += out[i-1]
	}

	return out
}

// Reconstruct returns the rank-r approximation U·diag(σ)·Vᵀ using the first
// r retained components. r must lie in [1, Rank].
func (d *SVD) Reconstruct(r int) (*mat.Dense, error) {
	if r < 1 || r > d.rank {
		return nil, fmt.Errorf("%w: requested %d, retained %d", ErrRankOutOfRange, r, d.rank)
	}

	rows, _ := d.u.Dims()
	cols, _ := d.v.Dims()

	// Scale the first r columns of U by σ, then multiply by Vᵀ.
	us := mat.NewDense(rows, r, nil)
	for j := 0; j < r; j++ {
		for i := 0; i < rows; i++ {
			us.Set(i, j, d.u.At(i, j)*d.s[j])
		}
	}

	out := mat.NewDense(rows, cols, nil)
	out.Mul(us, d.v.Slice(0, cols, 0, r).T())

	return out, nil
}
