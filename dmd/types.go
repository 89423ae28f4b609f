package dmd

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultRank lets the reduction pick its rank automatically via the
	// svd package's optimal hard threshold.
	DefaultRank = 0

	// DefaultTLSQ disables total-least-squares de-noising.
	DefaultTLSQ = 0
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); data-dependent validation happens in New.
type Option func(*options)

type options struct {
	rank    int  // SVD truncation rank; DefaultRank ⇒ automatic
	tlsq    int  // de-noising projection rank; DefaultTLSQ ⇒ off
	optimal bool // fit amplitudes over all snapshots
}

func defaultOptions() options {
	return options{rank: DefaultRank, tlsq: DefaultTLSQ}
}

// WithRank fixes the SVD truncation rank of the fit instead of the
// automatic threshold. r must be positive; whether it fits the data is
// checked by New.
func WithRank(r int) Option {
	if r < 1 {
		panic("dmd: WithRank: rank must be a positive integer")
	}

	return func(o *options) { o.rank = r }
}

// WithTLSQ enables total-least-squares de-noising: both snapshot sets are
// projected onto the leading r right singular vectors of the stacked
// matrix [X; Y] before the fit, stripping a consistent noise estimate from
// each (retrievable via TLSQError).
func WithTLSQ(r int) Option {
	if r < 1 {
		panic("dmd: WithTLSQ: rank must be a positive integer")
	}

	return func(o *options) { o.tlsq = r }
}

// WithOptimalAmplitudes fits the mode amplitudes against every snapshot
// instead of only the first one, minimizing the full reconstruction
// residual ‖D − Φ·diag(b)·V(λ)‖ in the least-squares sense.
func WithOptimalAmplitudes() Option {
	return func(o *options) { o.optimal = true }
}
