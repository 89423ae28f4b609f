// Package hodmd implements higher-order dynamic mode decomposition
// (HODMD, Le Clainche & Vega, SIAM J. Appl. Dyn. Syst. 2017).
//
// 🚀 What does it add over plain DMD?
//
//	HODMD wraps the base decomposition from package dmd with two extra
//	steps that expose higher-order temporal structure to the first-order
//	linear model:
//
//	 1. an initial dimensionality reduction of the raw snapshot matrix
//	    through a truncated SVD (package svd): reduced = Uᵀ·D
//	 2. a delay embedding: `delay` column-shifted copies of the reduced
//	    matrix are stacked vertically into a Hankel-structured matrix of
//	    shape (delay·rank) × (cols − delay + 1), which the base DMD fits
//
// Every derived quantity is then mapped back into the original,
// un-reduced, un-delayed space: modes keep only the zero-shift block of
// the delay-stacked mode matrix (the higher-shift blocks are redundant
// copies used only to fit the dynamics) and are left-multiplied by U;
// errors and noise estimates follow the same path.
//
// Four coordinate spaces stay consistent throughout: the original row
// space, the reduced space, the delay-embedded space the base fit sees,
// and the base algorithm's internal reduced space. The reconstruction is
// NOT remapped by hand: it is produced by dmd.Reconstruct from this
// package's own (already remapped) Modes, so it lands in the original
// space automatically — the accessor-override contract of package dmd.
//
// ⚙️ Usage:
//
//	h, err := hodmd.New(dataMatrix, dt)                     // delay = cols/3
//	h, err := hodmd.New(dataMatrix, dt, hodmd.WithDelay(5))
//	h, err := hodmd.New(dataMatrix, dt,
//	        hodmd.WithDelay(5), hodmd.WithRank(100),
//	        hodmd.WithDMDOptions(dmd.WithOptimalAmplitudes()))
//
// The object is immutable after construction; it borrows the data matrix
// (reconstruction errors are computed against it lazily), owns its SVD and
// base decomposition exclusively, and is safe for concurrent read-only use.
package hodmd
