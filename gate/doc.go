// Package gate provides the closed catalog of single-qubit unitary
// transforms consumed by the circuit engine.
//
// 🚀 What is a gate?
//
//	A 2×2 complex unitary matrix acting on the two amplitudes of one
//	qubit's subspace.  The catalog covers the standard set:
//	  • Pauli-X / Y / Z — bit flip, bit+phase flip, phase flip
//	  • Hadamard        — maps |0⟩ to the equal superposition
//	  • Phase (S) / T   — quarter- and eighth-turn phase rotations
//	  • Rotation(θ)     — real rotation by θ radians
//
// ✨ Key properties:
//   - closed value type: the gate set is a fixed enumeration, not an
//     interface, so there is no indirect dispatch inside O(2ⁿ) engine loops
//   - stateless gates are package singletons (gate.X, gate.H, …);
//     Rotation carries its angle and nothing else
//   - pure: Matrix() always returns the same matrix for the same value,
//     Apply never allocates
//   - the zero Gate is invalid and panics on use, so a forgotten
//     assignment cannot silently act as the identity
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quanta/gate"
//
//	pair := []complex128{1, 0}   // amplitudes of |0⟩, |1⟩
//	gate.H.Apply(pair)           // pair == {1/√2, 1/√2}
//	gate.Rotation(math.Pi / 2).Name() // "Rotation"
//
// Apply panics if the pair does not hold exactly 2 amplitudes: that is
// an engine defect, not user input, so it is not a recoverable error.
//
// Performance: Matrix() is a constant switch, Apply is four complex
// multiplies and two adds: O(1), allocation-free.
package gate
