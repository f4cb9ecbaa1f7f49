// SPDX-License-Identifier: MIT

// Package schrodinger solves the 1-D time-independent Schrödinger
// equation on a uniform grid by finite differences and symmetric
// eigendecomposition.
//
// 🚀 What does it solve?
//
//	Hψ = Eψ with H = −½·d²/dx² + V(x) in natural units (ħ = m = 1),
//	discretized on gridPoints samples spaced dx apart.  The kinetic
//	term becomes the three-point stencil (1/(2dx²) on the diagonal
//	pattern), the optional potential sits on the diagonal, and both
//	boundary diagonal entries are overwritten with a large penalty
//	constant, an infinite well confining the particle to [0, L] with
//	L = gridPoints·dx.
//
// ✨ Key features:
//   - any potential sampled on the grid (WithPotential), or the bare
//     infinite well by default
//   - one Solve yields the full spectrum: ascending energies plus
//     orthonormal eigenvectors, wrapped in a Spectrum for many cheap
//     reads
//   - wave functions renormalized to the grid quadrature Σψ²·dx = 1,
//     so probability densities integrate to one over the box
//   - observables: probability density and the position expectation ⟨x⟩
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quanta/schrodinger"
//
//	s, err := schrodinger.New(600, 0.01)   // box of length L = 6
//	sp, err := s.Solve()
//	e0, _ := sp.Energy(0)                  // ≈ π²/(2L²)
//	psi, _ := sp.WaveFunction(0)           // ground state, Σψ²·dx = 1
//	density := s.ProbabilityDensity(psi)
//	center := s.ExpectationPosition(psi)   // ≈ L/2
//
// This package shares no data structures with the gate-level circuit
// engine: it is a different algorithmic family (a dense eigenvalue
// problem rather than state-vector rewriting) behind its own small
// surface.
//
// Performance: Solve is O(n²) memory and O(n³) time in the grid size:
// the symmetric eigendecomposition dominates everything else. Grids up
// to a few thousand points are comfortable; beyond that, solve once
// and keep the Spectrum.
package schrodinger
