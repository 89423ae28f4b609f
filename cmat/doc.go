// Package cmat provides the small set of complex↔real dense-matrix helpers
// that gonum's mat package does not cover: promoting real matrices to
// complex, extracting real parts, mixed real×complex products, Vandermonde
// matrices over complex nodes, and complex least squares.
//
// gonum exposes SVD, eigendecomposition and least-squares solvers for real
// matrices only. A dynamic-mode decomposition, however, produces complex
// eigenpairs and complex mode amplitudes, so the glue between the real
// backend and the complex model lives here. Complex least squares is solved
// through the real augmented system
//
//	⎡Re(A) −Im(A)⎤ ⎡Re(x)⎤   ⎡Re(b)⎤
//	⎢           ⎥ ⎢     ⎥ = ⎢     ⎥
//	⎣Im(A)  Re(A)⎦ ⎣Im(x)⎦   ⎣Im(b)⎦
//
// handed to gonum's QR-based mat.Dense.Solve, so the numerical work stays
// inside the backend.
//
// All functions are pure; none mutate their arguments.
package cmat
