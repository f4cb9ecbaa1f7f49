// SPDX-License-Identifier: MIT

// Package schrodinger: Solver holds the grid geometry and potential,
// builds the finite-difference Hamiltonian, and evaluates grid-level
// observables.
package schrodinger

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Internal panic message (no magic strings). Observable helpers are fed
// wave functions produced on this solver's grid; any other length is a
// programmer error, not user input.
const panicPsiLength = "schrodinger: wave function length must equal grid points"

// Solver discretizes the 1-D time-independent Schrödinger equation on
// a uniform grid of gridPoints samples spaced dx apart. The box length
// is L = gridPoints·dx; positions run x_i = i·dx.
type Solver struct {
	gridPoints int
	dx         float64
	potential  []float64 // nil ⇒ zero potential between the walls
	length     float64   // gridPoints·dx
}

// New validates the grid geometry and gathers options.
// Stage 1 (Validate): gridPoints ≥ 2, dx > 0.
// Stage 2 (Options): resolve functional options, check the potential
// length against the grid.
// Stage 3 (Finalize): derive the box length.
//
// Errors: ErrGridSize, ErrStepSize, ErrPotentialLength.
//
// Complexity: O(gridPoints) for the potential copy, O(1) otherwise.
func New(gridPoints int, dx float64, opts ...Option) (*Solver, error) {
	if gridPoints < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, gridPoints)
	}
	if dx <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrStepSize, dx)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Potential != nil && len(o.Potential) != gridPoints {
		return nil, fmt.Errorf("%w: got %d samples for %d points", ErrPotentialLength, len(o.Potential), gridPoints)
	}

	return &Solver{
		gridPoints: gridPoints,
		dx:         dx,
		potential:  o.Potential,
		length:     float64(gridPoints) * dx,
	}, nil
}

// GridPoints returns the number of grid samples.
func (s *Solver) GridPoints() int { return s.gridPoints }

// Dx returns the grid spacing.
func (s *Solver) Dx() float64 { return s.dx }

// Length returns the box length L = gridPoints·dx.
func (s *Solver) Length() float64 { return s.length }

// Positions returns the grid coordinates x_i = i·dx, i ∈ [0, gridPoints).
// Complexity: O(gridPoints).
func (s *Solver) Positions() []float64 {
	return floats.Span(make([]float64, s.gridPoints), 0, float64(s.gridPoints-1)*s.dx)
}

// Solve builds the Hamiltonian and diagonalizes it.
//
// The matrix is symmetric tridiagonal: diagonal entries 2·k + V[i]
// with k = 1/(2·dx²), off-diagonal entries −k, the three-point
// second-derivative stencil in units ħ = m = 1. Both boundary diagonal
// entries are then overwritten with BoundaryPenalty, walling the
// particle into the box.
//
// Eigenvalues come back ascending with orthonormal eigenvectors (the
// symmetric eigendecomposition contract), so no post-sorting is
// needed; the result is wrapped in a Spectrum for repeated reads.
//
// Errors: ErrEigenFailure when the decomposition does not converge.
//
// Complexity: O(n²) memory for the dense symmetric matrix, O(n³) time
// for the decomposition, n = gridPoints.
func (s *Solver) Solve() (*Spectrum, error) {
	n := s.gridPoints
	k := 1 / (2 * s.dx * s.dx)

	// Assemble the symmetric finite-difference Hamiltonian.
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		diag := 2 * k
		if s.potential != nil {
			diag += s.potential[i]
		}
		h.SetSym(i, i, diag)
		if i+1 < n {
			h.SetSym(i, i+1, -k)
		}
	}
	// Infinite-well walls replace whatever the potential put there.
	h.SetSym(0, 0, BoundaryPenalty)
	h.SetSym(n-1, n-1, BoundaryPenalty)

	var eig mat.EigenSym
	if !eig.Factorize(h, true) {
		return nil, ErrEigenFailure
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	return &Spectrum{
		energies: eig.Values(nil),
		vectors:  &vectors,
		dx:       s.dx,
	}, nil
}

// ProbabilityDensity returns |ψ|² elementwise for a real wave
// function. The result has the same length as the input.
// Complexity: O(len(psi)).
func (s *Solver) ProbabilityDensity(psi []float64) []float64 {
	density := make([]float64, len(psi))
	for i, v := range psi {
		density[i] = v * v
	}

	return density
}

// ExpectationPosition returns ⟨x⟩ = Σ x_i·ψ_i²·dx for a wave function
// sampled on this solver's grid. psi must hold exactly GridPoints
// samples; any other length panics (engine defect, not user input).
// Complexity: O(gridPoints).
func (s *Solver) ExpectationPosition(psi []float64) float64 {
	if len(psi) != s.gridPoints {
		panic(panicPsiLength)
	}

	return floats.Dot(s.Positions(), s.ProbabilityDensity(psi)) * s.dx
}
