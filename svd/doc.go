// Package svd computes truncated singular value decompositions of dense
// snapshot matrices, the dimensionality-reduction step in front of modal
// decompositions.
//
// 🚀 What does it do?
//
//	Given a matrix A (rows = degrees of freedom, columns = snapshots),
//	New factorizes A ≈ U·diag(σ)·Vᵀ once, truncated either to a caller-
//	supplied rank or to a rank selected automatically by the optimal hard
//	threshold of Gavish & Donoho (2014):
//
//	  β = min(m,n)/max(m,n)
//	  ω(β) = 0.56β³ − 0.95β² + 1.82β + 1.43
//	  τ = ω(β)·median(σ)
//	  rank = max(#{σᵢ > τ}, 1)
//
//	which suppresses singular values dominated by white noise without any
//	tuning parameter.
//
// ✨ Key properties:
//   - U has orthonormal columns spanning the dominant left subspace
//   - the decomposition is computed exactly once, at construction
//   - accessors return copies; the SVD value is immutable afterwards
//   - RelativeContribution/CumulativeContribution grade the truncation
//
// ⚙️ Usage:
//
//	s, err := svd.New(dataMatrix)            // automatic rank
//	s, err := svd.New(dataMatrix, svd.WithRank(20))
//	basis := s.U()                           // rows × rank
//
// All heavy lifting is delegated to gonum's mat.SVD.
package svd
