package hodmd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/modekit/modekit/cmat"
	"github.com/modekit/modekit/dmd"
	"github.com/modekit/modekit/svd"
)

// HODMD is a higher-order dynamic mode decomposition. It owns its
// reduction factorization and base decomposition exclusively and borrows
// the original data matrix: the caller must not mutate it while the
// decomposition is alive, since reconstruction errors read it lazily.
type HODMD struct {
	dm      *mat.Dense // borrowed original data
	rowsOrg int
	colsOrg int
	delay   int

	red  *svd.SVD
	u    *mat.Dense // truncated basis of the reduction, rowsOrg × rank
	base *dmd.DMD   // fitted over the delay-embedded reduced matrix
}

// New builds a HODMD from a data matrix (columns = snapshots) and the time
// step between snapshots. The construction sequence is fixed: validate →
// reduce → delay-embed → fit the base decomposition; the object is
// immutable afterwards.
func New(dm *mat.Dense, dt float64, opts ...Option) (*HODMD, error) {
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

	delay := o.delay
	if !o.delaySet {
		delay = cols / DefaultDelayDivisor
	}
	if delay < 1 {
		return nil, fmt.Errorf("%w. Got %d", ErrDelayNotPositive, delay)
	}
	if cols-delay < 1 {
		return nil, fmt.Errorf("%w: the number of snapshots (%d) must be larger than the number of time delays (%d)",
			ErrTooFewSnapshots, cols, delay)
	}

	red := o.pre
	if red == nil {
		var sopts []svd.Option
		if o.rank > 0 {
			sopts = append(sopts, svd.WithRank(o.rank))
		}
		var err error
		if red, err = svd.New(dm, sopts...); err != nil {
			return nil, err
		}
	}

	u := red.U()
	if ur, _ := u.Dims(); ur != rows {
		return nil, fmt.Errorf("%w: basis has %d rows, data matrix has %d", ErrSVDMismatch, ur, rows)
	}

	// Project onto the reduced coordinates and enrich with time delays.
	var reduced mat.Dense
	reduced.Mul(u.T(), dm) // rank × colsOrg
	embedded := timeDelayEmbedding(&reduced, delay)

	base, err := dmd.New(embedded, dt, o.dmdOpts...)
	if err != nil {
		return nil, err
	}

	return &HODMD{
		dm:      dm,
		rowsOrg: rows,
		colsOrg: cols,
		delay:   delay,
		red:     red,
		u:       u,
		base:    base,
	}, nil
}

// timeDelayEmbedding stacks delay column-shifted windows of the reduced
// matrix vertically (Hankel structure). Block i holds columns
// [i, cols−delay+i] of the input, so the result has shape
// (delay·rank) × (cols − delay + 1).
func timeDelayEmbedding(reduced *mat.Dense, delay int) *mat.Dense {
	r, cols := reduced.Dims()
	width := cols - delay + 1

	out := mat.NewDense(delay*r, width, nil)
	for i := 0; i < delay; i++ {
		out.Slice(i*r, (i+1)*r, 0, width).(*mat.Dense).Copy(
			reduced.Slice(0, r, i, i+width))
	}

	return out
}

// Delay returns the number of stacked time levels.
func (h *HODMD) Delay() int { return h.delay }

// Rank returns the rank of the initial dimensionality reduction.
func (h *HODMD) Rank() int { return h.red.Rank() }

// SVD returns the factorization used for the dimensionality reduction; it
// can be passed back into New via WithSVD to skip recomputing it.
func (h *HODMD) SVD() *svd.SVD { return h.red }

// Base returns the owned base decomposition fitted over the delay-embedded
// reduced matrix. Its accessors speak the embedded space.
func (h *HODMD) Base() *dmd.DMD { return h.base }

// Eigenvalues returns the discrete-time eigenvalues of the fitted model.
// The temporal parameters are invariant under the space mapping, so they
// delegate to the base decomposition, as do Amplitudes, Frequencies and
// GrowthRates.
func (h *HODMD) Eigenvalues() []complex128 { return h.base.Eigenvalues() }

// Amplitudes returns the fitted mode amplitudes.
func (h *HODMD) Amplitudes() []complex128 { return h.base.Amplitudes() }

// Frequencies returns each mode's frequency in cycles per time unit.
func (h *HODMD) Frequencies() []float64 { return h.base.Frequencies() }

// GrowthRates returns each mode's continuous-time growth rate.
func (h *HODMD) GrowthRates() []float64 { return h.base.GrowthRates() }

// TopModes returns the indices of the n most important modes; importance
// is judged by the base decomposition's amplitudes.
func (h *HODMD) TopModes(n int, integral bool) []int { return h.base.TopModes(n, integral) }

// Modes returns the modes mapped into the original row space: only the
// first rank rows of the embedded-space modes are kept — the block
// corresponding to time-shift zero; the higher-shift blocks are redundant
// copies — and the result is left-multiplied by the reduction basis U.
// Shape: rowsOrg × (number of modes of the base fit).
func (h *HODMD) Modes() *mat.CDense {
	zeroShift := cmat.SliceRows(h.base.Modes(), 0, h.red.Rank())

	return cmat.MulRealCmplx(h.u, zeroShift)
}

// Reconstruction returns the model's approximation of the reconstructed
// snapshots in the original row space. It reuses the generic
// dmd.Reconstruct over this decomposition's own Modes, so the space
// mapping of Modes carries over with no dedicated remapping code. Columns:
// colsOrg − delay + 1 (the delay embedding shortens the horizon).
func (h *HODMD) Reconstruction() *mat.Dense {
	steps := h.colsOrg - h.delay + 1

	return dmd.Reconstruct(h.Modes(), h.Eigenvalues(), h.Amplitudes(), steps)
}

// ReconstructionError returns the point-wise difference between the
// reconstruction and the matching leading columns of the original,
// un-reduced, un-embedded data matrix. Only the snapshots actually
// reconstructed are compared: the delay embedding leaves fewer columns
// than the input.
func (h *HODMD) ReconstructionError() *mat.Dense {
	rec := h.Reconstruction()
	_, steps := rec.Dims()

	var out mat.Dense
	out.Sub(rec, h.dm.Slice(0, h.rowsOrg, 0, steps))

	return &out
}

// ProjectionError returns the base fit's one-step prediction mismatch
// mapped into the original row space: the zero-shift block of the
// embedded-space error, left-multiplied by U.
func (h *HODMD) ProjectionError() *mat.Dense {
	return h.mapToOriginal(h.base.ProjectionError())
}

// TLSQError returns the noise stripped from the two embedded snapshot
// sets by total-least-squares de-noising, each mapped into the original
// row space like the modes. Both are zero when the base fit ran without
// TLSQ.
func (h *HODMD) TLSQError() (dx, dy *mat.Dense) {
	bx, by := h.base.TLSQError()

	return h.mapToOriginal(bx), h.mapToOriginal(by)
}

// mapToOriginal restricts an embedded-space matrix to its zero-shift block
// and maps it through the reduction basis into the original row space.
func (h *HODMD) mapToOriginal(emb *mat.Dense) *mat.Dense {
	_, c := emb.Dims()

	var out mat.Dense
	out.Mul(h.u, emb.Slice(0, h.red.Rank(), 0, c))

	return &out
}
