package hodmd

import "errors"

// Sentinel error set. Construction-time validation wraps these with the
// offending values; the message text is part of the package contract and
// callers match the sentinel with errors.Is. Failures inside the svd or
// dmd collaborators propagate unchanged.
var (
	// ErrEmptyMatrix is returned when the data matrix is nil or has a
	// zero dimension.
	ErrEmptyMatrix = errors.New("hodmd: data matrix is nil or empty")

	// ErrDelayNotPositive is returned when the requested delay is < 1.
	ErrDelayNotPositive = errors.New("hodmd: the 'delay' parameter must be a positive integer")

	// ErrTooFewSnapshots is returned when fewer than two embedded columns
	// would remain after the delay embedding (cols − delay < 1).
	ErrTooFewSnapshots = errors.New("hodmd: not enough snapshots for the requested delay")

	// ErrSVDMismatch is returned when a precomputed factorization passed
	// via WithSVD has a basis row count different from the data matrix.
	// Deeper consistency (that it was actually computed from this matrix)
	// is the caller's responsibility and is not verified.
	ErrSVDMismatch = errors.New("hodmd: precomputed SVD does not match the data matrix")
)
