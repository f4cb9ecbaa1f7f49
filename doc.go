// Package quanta is an in-memory quantum playground: build a register,
// push gates through it, sample measurements, and diagonalize 1-D
// Hamiltonians.
//
// 🚀 What is quanta?
//
//	A compact state-vector simulator that brings together:
//		• Gate catalog: Pauli X/Y/Z, Hadamard, Phase, T and a real Rotation
//		• Circuit engine: plain and controlled application over 2ⁿ amplitudes
//		• Measurement: Born-rule sampling with in-place collapse
//		• Diagnostics: amplitudes, probabilities, normalization checks
//		• Schrödinger solver: finite-difference spectra on a 1-D grid
//
// ✨ Why choose quanta?
//
//   - Deterministic replay – seeded RNG, no global state
//   - Explicit failure modes – sentinel errors on every input boundary
//   - Pure observation – hooks (OnGate, OnMeasure…) instead of logging
//   - Honest costs – every O(2ⁿ) touch documented as such
//
// Under the hood, everything is organized under three subpackages:
//
//	gate/        — the 2×2 unitary catalog (value types, zero allocation)
//	circuit/     — StateVector, Circuit, measurement and collapse
//	schrodinger/ — finite-difference eigensolver for 1-D potentials
//
// Quick ASCII example:
//
//	|0⟩ ──H──●──
//	         │
//	|0⟩ ─────X──
//
//	prepares the Bell pair (|00⟩ + |11⟩)/√2.
//
// Next up: multi-control gates, sparse registers and beyond.
// Dive into the examples/ directory for runnable scenarios.
//
//	go get github.com/katalvlaran/quanta
package quanta
