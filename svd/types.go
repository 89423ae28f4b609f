package svd

// DefaultRank is the zero value meaning "select the rank automatically"
// via the optimal hard threshold.
const DefaultRank = 0

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); data-dependent validation happens in New.
type Option func(*options)

type options struct {
	rank int // DefaultRank ⇒ automatic selection
}

func defaultOptions() options {
	return options{rank: DefaultRank}
}

// WithRank caps the truncation at exactly r components instead of the
// automatic threshold. r must be positive; whether it fits the matrix is
// checked by New against min(rows, cols).
func WithRank(r int) Option {
	if r < 1 {
		panic("svd: WithRank: rank must be a positive integer")
	}

	return func(o *options) { o.rank = r }
}
