package dataset

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel error set shared by Dataloader implementations.
var (
	// ErrNoSnapshots is returned when discovery finds no snapshot files.
	ErrNoSnapshots = errors.New("dataset: no snapshot files found")

	// ErrUnknownTime is returned when a requested write time is not among
	// the discovered ones.
	ErrUnknownTime = errors.New("dataset: unknown write time")

	// ErrUnknownField is returned when a requested field name is not
	// present in a snapshot.
	ErrUnknownField = errors.New("dataset: unknown field name")

	// ErrInconsistentRows is returned when snapshots of the same series
	// disagree on the number of spatial points.
	ErrInconsistentRows = errors.New("dataset: inconsistent number of points between snapshots")

	// ErrBadValue is returned when a snapshot entry cannot be parsed as a
	// floating-point number.
	ErrBadValue = errors.New("dataset: malformed numeric value")

	// ErrNoDataRows is returned when a snapshot file holds a header but no
	// data rows, so no matrix can be assembled from it.
	ErrNoDataRows = errors.New("dataset: snapshot has no data rows")

	// ErrNotImplemented marks an accessor a loader intentionally does not
	// serve. It is propagated verbatim and never substituted with a
	// default value.
	ErrNotImplemented = errors.New("dataset: not implemented")
)

// Dataloader produces dense snapshot matrices from stored time series.
// WriteTimes and FieldNames describe what is available; LoadSnapshot
// assembles one matrix with a column per requested time, all in the order
// given.
type Dataloader interface {
	// WriteTimes returns the available time labels, sorted ascending
	// (numerically where the labels parse as numbers).
	WriteTimes() []string

	// FieldNames maps each write time to the fields available at it.
	FieldNames() map[string][]string

	// LoadSnapshot assembles the named field at the given write times
	// into a points × len(times) matrix.
	LoadSnapshot(field string, times []string) (*mat.Dense, error)

	// Vertices returns the spatial coordinates of the points, one row per
	// point.
	Vertices() (*mat.Dense, error)

	// Weights returns per-point quadrature weights. Loaders without a
	// meaningful notion of weights return ErrNotImplemented.
	Weights() (*mat.Dense, error)
}
