// Package gate: type declarations for the closed gate catalog. This
// file defines the Gate value itself, the stateless singletons and the
// one parameterized constructor; matrix semantics live in gate.go.
package gate

// kind enumerates the closed gate set. The zero kind is deliberately
// unused so that a zero Gate is detectably invalid.
type kind uint8

const (
	invalidKind kind = iota
	pauliX
	pauliY
	pauliZ
	hadamard
	phaseS
	phaseT
	rotation
)

// Gate is an immutable description of a 2×2 unitary transform.
// Stateless gates are the package singletons X, Y, Z, H, S and T;
// Rotation(theta) carries its angle. Gates are plain comparable values
// and safe to copy, store and share.
type Gate struct {
	k     kind
	theta float64 // radians; meaningful only for rotation
}

// The stateless catalog. Each value is a pure descriptor; applying it
// mutates only the amplitude pair it is given.
var (
	// X is the Pauli-X (NOT) gate: swaps the |0⟩ and |1⟩ amplitudes.
	X = Gate{k: pauliX}

	// Y is the Pauli-Y gate: bit flip combined with a ±i phase.
	Y = Gate{k: pauliY}

	// Z is the Pauli-Z gate: negates the |1⟩ amplitude.
	Z = Gate{k: pauliZ}

	// H is the Hadamard gate: maps basis states to equal superpositions.
	H = Gate{k: hadamard}

	// S is the Phase gate: multiplies the |1⟩ amplitude by i.
	S = Gate{k: phaseS}

	// T is the π/8 gate: multiplies the |1⟩ amplitude by e^{iπ/4}.
	T = Gate{k: phaseT}
)

// Rotation returns the real rotation gate
// [[cos θ, −sin θ], [sin θ, cos θ]] for the given angle in radians.
// Rotation(π/2) maps |0⟩ to |1⟩ exactly like X up to sign convention.
func Rotation(theta float64) Gate {
	return Gate{k: rotation, theta: theta}
}
