package dmd

import "errors"

// Sentinel error set. Algorithms return these sentinels (possibly wrapped
// with offending values via fmt.Errorf("%w ...")) and tests match them with
// errors.Is. None of them is ever recovered internally: a failed
// linear-algebra operation with identical inputs fails identically, so
// there is no retry logic anywhere in this package.
var (
	// ErrEmptyMatrix is returned when the data matrix is nil.
	ErrEmptyMatrix = errors.New("dmd: data matrix is nil")

	// ErrTooFewSnapshots is returned when the data matrix has fewer than
	// two columns, so no shifted snapshot pair can be formed.
	ErrTooFewSnapshots = errors.New("dmd: at least two snapshots are required")

	// ErrInvalidTimeStep is returned when dt is not strictly positive.
	ErrInvalidTimeStep = errors.New("dmd: time step must be positive")

	// ErrTLSQRank is returned when the total-least-squares rank exceeds
	// the number of snapshot pairs.
	ErrTLSQRank = errors.New("dmd: tlsq rank out of range")

	// ErrIllConditioned is returned when the retained singular spectrum
	// spans more orders of magnitude than double precision supports, so
	// the reduced operator Ã would be dominated by round-off. Set a
	// smaller rank explicitly to proceed.
	ErrIllConditioned = errors.New("dmd: retained singular values are ill-conditioned")

	// ErrEigFailed indicates that the eigendecomposition of the reduced
	// operator did not converge.
	ErrEigFailed = errors.New("dmd: eigendecomposition failed to converge")

	// ErrAmplitudesFailed indicates that the least-squares fit of the
	// mode amplitudes failed.
	ErrAmplitudesFailed = errors.New("dmd: amplitude fit failed")
)
