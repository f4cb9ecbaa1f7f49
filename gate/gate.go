// Package gate: matrix semantics and in-place application for the gate
// catalog declared in types.go.
package gate

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix returns the gate's fixed 2×2 complex unitary.
// Row r maps the amplitude pair (a0, a1) to m[r][0]·a0 + m[r][1]·a1.
// Calling Matrix on the zero Gate panics: it is a programmer error,
// not a user-triggerable condition.
func (g Gate) Matrix() [2][2]complex128 {
	switch g.k {
	case pauliX:
		return [2][2]complex128{
			{0, 1},
			{1, 0},
		}
	case pauliY:
		return [2][2]complex128{
			{0, complex(0, -1)},
			{complex(0, 1), 0},
		}
	case pauliZ:
		return [2][2]complex128{
			{1, 0},
			{0, -1},
		}
	case hadamard:
		h := complex(1/math.Sqrt2, 0)
		return [2][2]complex128{
			{h, h},
			{h, -h},
		}
	case phaseS:
		return [2][2]complex128{
			{1, 0},
			{0, complex(0, 1)},
		}
	case phaseT:
		return [2][2]complex128{
			{1, 0},
			{0, cmplx.Exp(complex(0, math.Pi/4))},
		}
	case rotation:
		c := complex(math.Cos(g.theta), 0)
		s := complex(math.Sin(g.theta), 0)
		return [2][2]complex128{
			{c, -s},
			{s, c},
		}
	default:
		panic("gate: zero Gate used as a transform")
	}
}

// Apply multiplies the gate matrix by pair and overwrites pair in place.
// pair must hold exactly the two amplitudes of one qubit subspace
// (coefficients of the qubit's 0 and 1 component, in that order).
// Any other length signals a defect in the calling engine and panics.
//
// Complexity: O(1), allocation-free.
func (g Gate) Apply(pair []complex128) {
	if len(pair) != 2 {
		panic(fmt.Sprintf("gate: amplitude pair must hold exactly 2 elements, got %d", len(pair)))
	}

	m := g.Matrix()
	a0, a1 := pair[0], pair[1]
	pair[0] = m[0][0]*a0 + m[0][1]*a1
	pair[1] = m[1][0]*a0 + m[1][1]*a1
}

// Name returns the gate's fixed human-readable label.
func (g Gate) Name() string {
	switch g.k {
	case pauliX:
		return "Pauli-X"
	case pauliY:
		return "Pauli-Y"
	case pauliZ:
		return "Pauli-Z"
	case hadamard:
		return "Hadamard"
	case phaseS:
		return "Phase"
	case phaseT:
		return "T"
	case rotation:
		return "Rotation"
	default:
		panic("gate: zero Gate has no name")
	}
}

// String implements fmt.Stringer.
func (g Gate) String() string { return g.Name() }

// Theta returns the rotation angle in radians. It is 0 for every
// stateless gate; only values built by Rotation carry an angle.
func (g Gate) Theta() float64 { return g.theta }
