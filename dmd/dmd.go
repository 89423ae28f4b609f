package dmd

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/modekit/modekit/cmat"
	"github.com/modekit/modekit/svd"
)

// condTol bounds the spread of the retained singular spectrum: Ã divides by
// every retained σ, so σ_min/σ_max below this leaves only round-off.
const condTol = 1e-13

// DMD is an exact dynamic mode decomposition of a snapshot matrix. The fit
// (reduction, reduced operator, eigenpairs, amplitudes) happens once in
// New; all derived accessors recompute from that state on every call.
type DMD struct {
	dm   *mat.Dense // borrowed original data, rows × cols
	dt   float64
	rows int
	cols int

	x, y *mat.Dense // fitted snapshot pair, de-noised when TLSQ is on

	red     *svd.SVD
	atilde  *mat.Dense
	eigvals []complex128
	eigvecs *mat.CDense
	amps    []complex128
}

// New fits an exact DMD to dm with time step dt. dm is borrowed for the
// lifetime of the decomposition and must not be mutated by the caller.
func New(dm *mat.Dense, dt float64, opts ...Option) (*DMD, error) {
	if dm == nil {
		return nil, ErrEmptyMatrix
	}
	rows, cols := dm.Dims()
	if cols < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSnapshots, cols)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidTimeStep, dt)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	x := dm.Slice(0, rows, 0, cols-1).(*mat.Dense)
	y := dm.Slice(0, rows, 1, cols).(*mat.Dense)
	if o.tlsq > 0 {
		if o.tlsq > cols-1 {
			return nil, fmt.Errorf("%w: got %d with %d snapshot pairs", ErrTLSQRank, o.tlsq, cols-1)
		}
		var err error
		if x, y, err = denoise(x, y, o.tlsq); err != nil {
			return nil, err
		}
	}

	var sopts []svd.Option
	if o.rank > 0 {
		sopts = append(sopts, svd.WithRank(o.rank))
	}
	red, err := svd.New(x, sopts...)
	if err != nil {
		return nil, err
	}

	s := red.S()
	if s[red.Rank()-1] <= condTol*s[0] {
		return nil, fmt.Errorf("%w: σ_min/σ_max = %.3e with rank %d", ErrIllConditioned, s[red.Rank()-1]/s[0], red.Rank())
	}

	d := &DMD{
		dm:   dm,
		dt:   dt,
		rows: rows,
		cols: cols,
		x:    x,
		y:    y,
		red:  red,
	}
	d.atilde = d.reducedOperator()

	var eig mat.Eigen
	if ok := eig.Factorize(d.atilde, mat.EigenRight); !ok {
		return nil, ErrEigFailed
	}
	d.eigvals = eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)
	d.eigvecs = &vecs

	if d.amps, err = d.fitAmplitudes(o.optimal); err != nil {
		return nil, err
	}

	return d, nil
}

// denoise projects x and y onto the leading right singular subspace of the
// stacked matrix [x; y], removing the component orthogonal to it from both
// snapshot sets consistently.
func denoise(x, y *mat.Dense, rank int) (*mat.Dense, *mat.Dense, error) {
	m, n := x.Dims()
	comb := mat.NewDense(2*m, n, nil)
	comb.Slice(0, m, 0, n).(*mat.Dense).Copy(x)
	comb.Slice(m, 2*m, 0, n).(*mat.Dense).Copy(y)

	red, err := svd.New(comb, svd.WithRank(rank))
	if err != nil {
		return nil, nil, err
	}

	v := red.V() // n × rank
	var proj mat.Dense
	proj.Mul(v, v.T())

	var xc, yc mat.Dense
	xc.Mul(x, &proj)
	yc.Mul(y, &proj)

	return &xc, &yc, nil
}

// reducedOperator forms Ã = Uᵀ·Y·V·diag(1/σ), the evolution operator
// expressed in the truncated left singular basis of X.
func (d *DMD) reducedOperator() *mat.Dense {
	u, v, s := d.red.U(), d.red.V(), d.red.S()
	r := d.red.Rank()

	var uty mat.Dense
	uty.Mul(u.T(), d.y) // r × (cols−1)
	var utyv mat.Dense
	utyv.Mul(&uty, v) // r × r
	for j := 0; j < r; j++ {
		for i := 0; i < r; i++ {
			utyv.Set(i, j, utyv.At(i, j)/s[j])
		}
	}

	return &utyv
}

// fitAmplitudes solves the complex least-squares problem for the mode
// amplitudes b: against the first snapshot only, or — when optimal — against
// the whole sequence, stacking one block Φ·diag(λᵏ) per snapshot.
func (d *DMD) fitAmplitudes(optimal bool) ([]complex128, error) {
	phi := d.RawModes()
	m, r := phi.Dims()

	if !optimal {
		b := make([]complex128, m)
		for i := 0; i < m; i++ {
			b[i] = complex(d.x.At(i, 0), 0)
		}
		amps, err := cmat.LstSq(phi, b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAmplitudesFailed, err)
		}

		return amps, nil
	}

	stacked := mat.NewCDense(m*d.cols, r, nil)
	rhs := make([]complex128, m*d.cols)
	pow := make([]complex128, r)
	for j := range pow {
		pow[j] = 1
	}
	for k := 0; k < d.cols; k++ {
		for i := 0; i < m; i++ {
			for j := 0; j < r; j++ {
				stacked.Set(k*m+i, j, phi.At(i, j)*pow[j])
			}
			rhs[k*m+i] = complex(d.dm.At(i, k), 0)
		}
		for j := range pow {
			pow[j] *= d.eigvals[j]
		}
	}

	amps, err := cmat.LstSq(stacked, rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAmplitudesFailed, err)
	}

	return amps, nil
}

// Rank returns the truncation rank of the fit.
func (d *DMD) Rank() int { return d.red.Rank() }

// TimeStep returns the snapshot spacing dt.
func (d *DMD) TimeStep() float64 { return d.dt }

// SVD returns the truncated factorization of the first snapshot set.
func (d *DMD) SVD() *svd.SVD { return d.red }

// Eigenvalues returns a copy of the discrete-time eigenvalues λ of the
// fitted evolution operator.
func (d *DMD) Eigenvalues() []complex128 {
	out := make([]complex128, len(d.eigvals))
	copy(out, d.eigvals)

	return out
}

// Eigenvectors returns a copy of the eigenvectors of the reduced operator,
// one per column.
func (d *DMD) Eigenvectors() *mat.CDense {
	r, _ := d.eigvecs.Dims()

	return cmat.SliceRows(d.eigvecs, 0, r)
}

// Amplitudes returns a copy of the fitted mode amplitudes b.
func (d *DMD) Amplitudes() []complex128 {
	out := make([]complex128, len(d.amps))
	copy(out, d.amps)

	return out
}

// RawModes returns the exact DMD modes Φ = Y·V·diag(1/σ)·W in the space of
// the data matrix. This is the internal, never-overridden view; derived
// quantities must go through Modes instead.
func (d *DMD) RawModes() *mat.CDense {
	v, s := d.red.V(), d.red.S()
	r := d.red.Rank()

	var yv mat.Dense
	yv.Mul(d.y, v) // rows × r
	for j := 0; j < r; j++ {
		for i := 0; i < d.rows; i++ {
			yv.Set(i, j, yv.At(i, j)/s[j])
		}
	}

	return cmat.MulRealCmplx(&yv, d.eigvecs)
}

// Modes returns the public view of the mode matrix. For the base
// decomposition it equals RawModes; composing decompositions substitute a
// remapped matrix here and inherit every Modes-derived quantity.
func (d *DMD) Modes() *mat.CDense { return d.RawModes() }

// Frequencies returns the continuous-time frequency of each mode in cycles
// per time unit: Im(ln λ)/(2π·dt).
func (d *DMD) Frequencies() []float64 {
	out := make([]float64, len(d.eigvals))
	for i, ev := range d.eigvals {
		out[i] = imag(cmplx.Log(ev)) / (2 * math.Pi * d.dt)
	}

	return out
}

// GrowthRates returns the continuous-time growth rate of each mode:
// Re(ln λ)/dt. Negative values decay, positive values grow.
func (d *DMD) GrowthRates() []float64 {
	out := make([]float64, len(d.eigvals))
	for i, ev := range d.eigvals {
		out[i] = real(cmplx.Log(ev)) / d.dt
	}

	return out
}

// Dynamics returns diag(b)·Vandermonde(λ, cols): row i holds the temporal
// evolution bᵢ·λᵢᵏ of mode i over the snapshot horizon.
func (d *DMD) Dynamics() *mat.CDense {
	return dynamics(d.eigvals, d.amps, d.cols)
}

// Reconstruction returns the model's approximation of the snapshot
// sequence, Re(Modes·diag(b)·V(λ)), with as many columns as the data
// matrix. It is computed by Reconstruct from public accessor values only.
func (d *DMD) Reconstruction() *mat.Dense {
	return Reconstruct(d.Modes(), d.Eigenvalues(), d.Amplitudes(), d.cols)
}

// ReconstructionError returns the point-wise difference between the
// reconstruction and the original data.
func (d *DMD) ReconstructionError() *mat.Dense {
	rec := d.Reconstruction()
	var out mat.Dense
	out.Sub(rec, d.dm)

	return &out
}

// ProjectionError returns Y − U·Ã·Uᵀ·X: the mismatch between the fitted
// linear operator's one-step prediction and the actual shifted snapshots,
// in the space of the data matrix.
func (d *DMD) ProjectionError() *mat.Dense {
	u := d.red.U()

	var utx mat.Dense
	utx.Mul(u.T(), d.x)
	var autx mat.Dense
	autx.Mul(d.atilde, &utx)
	var pred mat.Dense
	pred.Mul(u, &autx)

	var out mat.Dense
	out.Sub(d.y, &pred)

	return &out
}

// TLSQError returns the noise stripped from the two snapshot sets by the
// total-least-squares projection: (X_raw − X, Y_raw − Y). Both are zero
// matrices when TLSQ was not enabled.
func (d *DMD) TLSQError() (dx, dy *mat.Dense) {
	xraw := d.dm.Slice(0, d.rows, 0, d.cols-1)
	yraw := d.dm.Slice(0, d.rows, 1, d.cols)

	dx, dy = &mat.Dense{}, &mat.Dense{}
	dx.Sub(xraw, d.x)
	dy.Sub(yraw, d.y)

	return dx, dy
}

// TopModes returns the indices of the n most important modes, sorted by
// descending importance: |bᵢ| when integral is false, or the integral
// contribution Σₖ|bᵢ|·|λᵢ|ᵏ over the snapshot horizon when true.
func (d *DMD) TopModes(n int, integral bool) []int {
	r := len(d.amps)
	if n > r {
		n = r
	}

	importance := make([]float64, r)
	for i := range importance {
		importance[i] = cmplx.Abs(d.amps[i])
		if integral {
			sum, p := 0.0, 1.0
			lam := cmplx.Abs(d.eigvals[i])
			for k := 0; k < d.cols; k++ {
				sum += p
				p *= lam
			}
			importance[i] *= sum
		}
	}

	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return importance[idx[a]] > importance[idx[b]] })

	return idx[:n]
}

// Reconstruct computes Re(modes·diag(amplitudes)·Vandermonde(eigvals,
// steps)). It is the generic reconstruction shared by every decomposition:
// it sees only public accessor values, so a decomposition that remaps its
// modes into another space obtains a reconstruction in that space without
// any reimplementation. Panics with mat.ErrShape on inconsistent lengths.
func Reconstruct(modes *mat.CDense, eigvals, amplitudes []complex128, steps int) *mat.Dense {
	_, k := modes.Dims()
	if k != len(eigvals) || k != len(amplitudes) {
		panic(mat.ErrShape)
	}

	return cmat.Real(cmat.MulCmplx(modes, dynamics(eigvals, amplitudes, steps)))
}

// dynamics forms diag(amplitudes)·Vandermonde(eigvals, steps).
func dynamics(eigvals, amplitudes []complex128, steps int) *mat.CDense {
	if len(eigvals) != len(amplitudes) {
		panic(mat.ErrShape)
	}

	out := cmat.Vandermonde(eigvals, steps)
	for i, b := range amplitudes {
		for j := 0; j < steps; j++ {
			out.Set(i, j, b*out.At(i, j))
		}
	}

	return out
}
