// Package modekit is your in-memory toolbox for modal decomposition of
// time-resolved data — from plain singular value decomposition to
// higher-order dynamic mode decomposition.
//
// 🚀 What is modekit?
//
//	A small, focused library that brings together:
//		• SVD reduction: thin factorization with optimal automatic rank cut-off
//		• Exact DMD: eigenvalues, modes, amplitudes, dynamics and reconstruction
//		• Noise handling: total least-squares de-noising and optimal amplitudes
//		• Higher-order DMD: time-delay embedding for rank-starved measurements
//		• Complex glue: mixed real/complex products and complex least squares
//		• Snapshot loading: CSV time series assembled into data matrices
//
// ✨ Why choose modekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable failures – sentinel errors with the offending values in the message
//   - Dense-matrix core – built on gonum, no cgo
//   - Composable – every stage (SVD, DMD, embedding) is usable on its own
//
// Under the hood, everything is organized under five subpackages:
//
//	svd/     — truncated singular value decomposition & rank selection
//	dmd/     — exact dynamic mode decomposition (Tu et al.)
//	hodmd/   — higher-order DMD via time-delay embedding (Le Clainche & Vega)
//	cmat/    — complex/real matrix helpers shared by the decompositions
//	dataset/ — snapshot loaders producing points × times data matrices
//
// Quick pipeline sketch:
//
//	data ──► svd (reduce) ──► delay embedding ──► dmd ──► modes back in
//	                                                      original space
//
//	go get github.com/modekit/modekit
package modekit
