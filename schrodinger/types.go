// SPDX-License-Identifier: MIT

// Package schrodinger: sentinel errors and functional options for the
// 1-D solver.
package schrodinger

import "errors"

// BoundaryPenalty is the diagonal constant overwriting both ends of the
// Hamiltonian. It stands in for infinite potential walls: any state
// with appreciable boundary weight is pushed far above the physical
// part of the spectrum, leaving the low-lying levels those of a
// particle confined to [0, L].
const BoundaryPenalty = 1.0e6

// Sentinel errors for solver construction and spectrum queries.
var (
	// ErrGridSize is returned by New when fewer than 2 grid points are
	// requested.
	ErrGridSize = errors.New("schrodinger: grid needs at least 2 points")

	// ErrStepSize is returned by New when the grid step is not
	// strictly positive.
	ErrStepSize = errors.New("schrodinger: grid step must be > 0")

	// ErrPotentialLength is returned by New when WithPotential supplied
	// a sample count different from the grid size.
	ErrPotentialLength = errors.New("schrodinger: potential sample count must equal grid points")

	// ErrLevel is returned by Spectrum queries for an energy level
	// outside [0, Levels).
	ErrLevel = errors.New("schrodinger: energy level out of range")

	// ErrEigenFailure is returned by Solve when the symmetric
	// eigendecomposition does not converge.
	ErrEigenFailure = errors.New("schrodinger: symmetric eigendecomposition failed to converge")
)

// Option configures solver construction via functional arguments.
type Option func(*Options)

// Options holds the parameters gathered before validation in New.
type Options struct {
	// Potential holds V(x) sampled at every grid point; nil keeps the
	// bare infinite well.
	Potential []float64
}

// DefaultOptions returns an Options with no custom potential.
func DefaultOptions() Options {
	return Options{Potential: nil}
}

// WithPotential samples a custom potential on the grid. The slice is
// copied in, never aliased; its length must equal the solver's grid
// size, which New enforces with ErrPotentialLength.
func WithPotential(v []float64) Option {
	return func(o *Options) {
		if v == nil {
			return
		}
		o.Potential = make([]float64, len(v))
		copy(o.Potential, v)
	}
}
