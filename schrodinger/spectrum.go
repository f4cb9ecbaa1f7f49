// SPDX-License-Identifier: MIT

// Package schrodinger: Spectrum is the reusable result of one
// diagonalization: solve once, read energies and wave functions many
// times.
package schrodinger

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Spectrum holds every energy level of the discretized Hamiltonian in
// ascending order together with the orthonormal eigenvectors needed to
// reconstruct wave functions on the grid.
type Spectrum struct {
	energies []float64  // ascending; length == grid points
	vectors  *mat.Dense // column j ↔ energies[j], unit Euclidean norm
	dx       float64    // grid spacing, for quadrature normalization
}

// Levels returns the number of energy levels (equal to the grid size).
func (sp *Spectrum) Levels() int { return len(sp.energies) }

// Energies returns a copy of all energy levels, ascending. Level 0 is
// the ground state.
// Complexity: O(levels).
func (sp *Spectrum) Energies() []float64 {
	out := make([]float64, len(sp.energies))
	copy(out, sp.energies)

	return out
}

// Energy returns the energy of one level, or ErrLevel outside
// [0, Levels).
// Complexity: O(1).
func (sp *Spectrum) Energy(level int) (float64, error) {
	if level < 0 || level >= len(sp.energies) {
		return 0, fmt.Errorf("%w: level %d of %d", ErrLevel, level, len(sp.energies))
	}

	return sp.energies[level], nil
}

// WaveFunction returns the level-th eigenstate rescaled to the grid
// quadrature Σψ²·dx = 1, so its probability density integrates to one
// over the box. The overall sign is whatever the eigensolver produced;
// observables built from ψ² do not see it.
//
// Errors: ErrLevel outside [0, Levels).
//
// Complexity: O(gridPoints) per call.
func (sp *Spectrum) WaveFunction(level int) ([]float64, error) {
	if level < 0 || level >= len(sp.energies) {
		return nil, fmt.Errorf("%w: level %d of %d", ErrLevel, level, len(sp.energies))
	}

	n, _ := sp.vectors.Dims()
	psi := make([]float64, n)
	mat.Col(psi, level, sp.vectors)

	// Eigenvectors arrive with unit Euclidean norm; rescale to the
	// quadrature norm √(dx·ψᵀψ).
	norm := math.Sqrt(sp.dx * floats.Dot(psi, psi))
	floats.Scale(1/norm, psi)

	return psi, nil
}
