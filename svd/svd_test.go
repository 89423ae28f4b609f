package svd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/modekit/modekit/svd"
)

// lowRankMatrix builds a rows×cols matrix of exact rank k from random
// factors, optionally perturbed by uniform noise of the given amplitude.
func lowRankMatrix(rng *rand.Rand, rows, cols, k int, noise float64) *mat.Dense {
	a := mat.NewDense(rows, k, nil)
	b := mat.NewDense(k, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			a.Set(i, j, rng.NormFloat64())
		}
	}
	for i := 0; i < k; i++ {
		for j := 0; j < cols; j++ {
			b.Set(i, j, rng.NormFloat64())
		}
	}

	out := mat.NewDense(rows, cols, nil)
	out.Mul(a, b)
	if noise > 0 {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.Set(i, j, out.At(i, j)+noise*(rng.Float64()-0.5))
			}
		}
	}

	return out
}

// TestNew_EmptyMatrix verifies nil input is rejected with ErrEmptyMatrix.
func TestNew_EmptyMatrix(t *testing.T) {
	_, err := svd.New(nil)
	assert.ErrorIs(t, err, svd.ErrEmptyMatrix)
}

// TestNew_RankCap checks that WithRank fixes the truncation exactly and
// that an impossible rank errors with ErrRankOutOfRange.
func TestNew_RankCap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dm := lowRankMatrix(rng, 12, 8, 6, 0)

	s, err := svd.New(dm, svd.WithRank(3))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Rank())

	r, c := s.U().Dims()
	assert.Equal(t, 12, r, "U rows must match the input rows")
	assert.Equal(t, 3, c, "U cols must match the rank")

	_, err = svd.New(dm, svd.WithRank(9))
	assert.ErrorIs(t, err, svd.ErrRankOutOfRange, "rank beyond min(m,n) must error")
}

// TestWithRank_PanicsOnNonPositive documents the programmer-error contract
// of the option constructor.
func TestWithRank_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { svd.WithRank(0) })
}

// TestU_Orthonormal verifies the columns of the truncated basis are
// orthonormal: UᵀU = I within tolerance.
func TestU_Orthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	dm := lowRankMatrix(rng, 20, 10, 10, 0)

	s, err := svd.New(dm, svd.WithRank(5))
	require.NoError(t, err)

	u := s.U()
	var gram mat.Dense
	gram.Mul(u.T(), u)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, gram.At(i, j), 1e-10, "UᵀU[%d,%d]", i, j)
		}
	}
}

// TestAutoRank_NoisyLowRank checks the optimal hard threshold recovers the
// true rank of a low-rank matrix buried in small noise.
func TestAutoRank_NoisyLowRank(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	dm := lowRankMatrix(rng, 60, 40, 4, 1e-6)

	s, err := svd.New(dm)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Rank(), "threshold must separate signal from noise")
}

// TestReconstruct_RoundTrip checks that a full-rank reconstruction of an
// exactly low-rank matrix reproduces it, and that rank bounds are enforced.
func TestReconstruct_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	dm := lowRankMatrix(rng, 15, 9, 3, 0)

	s, err := svd.New(dm, svd.WithRank(3))
	require.NoError(t, err)

	rec, err := s.Reconstruct(3)
	require.NoError(t, err)

	var diff mat.Dense
	diff.Sub(dm, rec)
	assert.Less(t, mat.Norm(&diff, 2)/mat.Norm(dm, 2), 1e-10, "rank-3 reconstruction of a rank-3 matrix must be exact")

	_, err = s.Reconstruct(0)
	assert.ErrorIs(t, err, svd.ErrRankOutOfRange)
	_, err = s.Reconstruct(4)
	assert.ErrorIs(t, err, svd.ErrRankOutOfRange)
}

// TestContributions verifies the relative contributions sum to 100 percent
// and the cumulative curve is monotone ending at 100.
func TestContributions(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	dm := lowRankMatrix(rng, 10, 10, 10, 0)

	s, err := svd.New(dm, svd.WithRank(10))
	require.NoError(t, err)

	rel := s.RelativeContribution()
	sum := 0.0
	for _, v := range rel {
		sum += v
	}
	assert.InDelta(t, 100, sum, 1e-9)

	cum := s.CumulativeContribution()
	for i := 1; i < len(cum); i++ {
		assert.GreaterOrEqual(t, cum[i], cum[i-1], "cumulative contribution must be monotone")
	}
	assert.InDelta(t, 100, cum[len(cum)-1], 1e-9)
}

// TestAccessorsReturnCopies ensures mutating an accessor result does not
// corrupt the factorization.
func TestAccessorsReturnCopies(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	dm := lowRankMatrix(rng, 8, 6, 3, 0)

	s, err := svd.New(dm, svd.WithRank(3))
	require.NoError(t, err)

	u := s.U()
	u.Set(0, 0, math.Inf(1))
	assert.False(t, math.IsInf(s.U().At(0, 0), 1), "U must return a copy")

	vals := s.S()
	vals[0] = -1
	assert.NotEqual(t, -1.0, s.S()[0], "S must return a copy")
}
