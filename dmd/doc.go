// Package dmd implements exact dynamic mode decomposition (DMD) of
// time-resolved snapshot data.
//
// 🚀 What is DMD?
//
//	Given a data matrix D whose columns are snapshots separated by a fixed
//	time step dt, DMD fits the best linear evolution model Y ≈ A·X between
//	the shifted snapshot sets X = D[:, :n−1] and Y = D[:, 1:], and
//	diagonalizes it. Each eigenpair yields a mode: a spatial pattern with a
//	single complex frequency (growth/decay rate plus oscillation).
//
// Pipeline (Tu et al., exact DMD):
//  1. optional total-least-squares de-noising of (X, Y) via a joint
//     projection of [X; Y] onto its leading right singular subspace
//  2. truncated SVD of X (rank from svd's automatic threshold, or WithRank)
//  3. reduced operator Ã = Uᵀ·Y·V·diag(1/σ), eigendecomposition via
//     gonum's mat.Eigen
//  4. exact modes Φ = Y·V·diag(1/σ)·W and amplitudes b from a complex
//     least-squares fit (first snapshot, or all snapshots with
//     WithOptimalAmplitudes)
//
// ✨ Accessor contract:
//
//	Modes is the public, overridable view of the mode matrix; RawModes is
//	the explicit internal accessor in the space of the data matrix. Every
//	derived quantity that must follow a remapped mode space — most
//	importantly the reconstruction — is computed by the package-level
//	Reconstruct function from public accessor values only, never from
//	internal state. A composing decomposition (see package hodmd) remaps
//	Modes and reuses Reconstruct unchanged.
//
// The object is immutable after New; derived accessors recompute their
// result on every call from the cached factorization (idempotent, not
// memoized). The data matrix is borrowed, not copied: callers must not
// mutate it while the decomposition is alive.
package dmd
