package hodmd

import (
	"github.com/modekit/modekit/dmd"
	"github.com/modekit/modekit/svd"
)

// DefaultDelayDivisor sets the default number of time delays to
// ⌊cols/3⌋, the value suggested by Le Clainche & Vega.
const DefaultDelayDivisor = 3

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); everything data-dependent is validated by New
// before any computation.
type Option func(*options)

type options struct {
	delay    int          // meaningful only when delaySet
	delaySet bool         // unset ⇒ ⌊cols/DefaultDelayDivisor⌋
	rank     int          // 0 ⇒ automatic, forwarded to the reduction SVD
	pre      *svd.SVD     // precomputed reduction, reused instead of recomputing
	dmdOpts  []dmd.Option // forwarded verbatim to the base decomposition
}

func defaultOptions() options {
	return options{}
}

// WithDelay sets the number of stacked time levels explicitly. A delay of
// 1 reduces the embedding to the identity. Data-dependent bounds (delay
// must leave at least two embedded columns) are checked by New, and a
// non-positive delay is reported by New with ErrDelayNotPositive rather
// than here, since the default is also derived from the data.
func WithDelay(d int) Option {
	return func(o *options) {
		o.delay = d
		o.delaySet = true
	}
}

// WithRank caps the rank of the initial dimensionality reduction. Without
// it the rank is selected automatically by the svd package's optimal hard
// threshold.
func WithRank(r int) Option {
	if r < 1 {
		panic("hodmd: WithRank: rank must be a positive integer")
	}

	return func(o *options) { o.rank = r }
}

// WithSVD reuses a precomputed reduction factorization instead of
// computing one, e.g. when several delay values are explored over the same
// data. New verifies the basis row count against the data matrix; that the
// factorization was computed from this exact matrix is the caller's
// responsibility.
func WithSVD(s *svd.SVD) Option {
	if s == nil {
		panic("hodmd: WithSVD: factorization must be non-nil")
	}

	return func(o *options) { o.pre = s }
}

// WithDMDOptions forwards options verbatim to the owned base
// decomposition (rank of the embedded fit, TLSQ de-noising, optimal
// amplitudes).
func WithDMDOptions(opts ...dmd.Option) Option {
	return func(o *options) { o.dmdOpts = append(o.dmdOpts, opts...) }
}
