// Package circuit simulates quantum computation on a classical machine:
// an n-qubit register held as a flat vector of 2ⁿ complex amplitudes,
// mutated by unitary gates from the gate catalog and by probabilistic
// measurement with state collapse.
//
// 🚀 What is a circuit?
//
//	A fixed-size quantum register plus the operations that drive it.
//	Basis states are indexed by n-bit integers: bit k of index i is the
//	classical value of qubit k, so the amplitude at i is the coefficient
//	of that joint assignment.  Gates rewrite amplitudes in 2-dimensional
//	subspaces selected purely by bit masks; no explicit tensor products
//	are ever materialized.
//
// ✨ Key features:
//   - single-qubit gate application via the bit-indexed pairing update
//     (exactly the effect of I⊗…⊗G⊗…⊗I on the full state)
//   - controlled two-qubit gates for any register size (gate.X here is
//     the textbook CNOT)
//   - Born-rule measurement with numerically guarded collapse
//   - deterministic by default: the measurement random source is
//     injected, seed-stable, never global
//   - diagnostic surface: amplitudes, per-basis probabilities, and an
//     on-demand normalization check (VerifyState)
//   - observation hooks (OnGate, OnMeasure) instead of logging
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/quanta/circuit"
//	  "github.com/katalvlaran/quanta/gate"
//	)
//
//	c, err := circuit.New(2, circuit.WithSeed(42))
//	if err != nil { ... }
//	_ = c.ApplyGate(gate.H, 0)              // |00⟩ → (|00⟩+|01⟩)/√2
//	_ = c.ApplyControlledGate(gate.X, 0, 1) // → Bell pair
//	outcome, err := c.Measure(0)            // collapses both qubits
//
// Concurrency: a Circuit has exactly one owner. Operations are
// synchronous, complete before returning, and must not be invoked
// concurrently on the same instance (the embedded *rand.Rand alone is
// not goroutine-safe).
//
// Capacity: the register costs 16·2ⁿ bytes. New rejects counts above
// MaxQubits (26, ≈1 GiB) with ErrTooManyQubits instead of degrading
// silently.
//
// Performance: every gate application and measurement is O(2ⁿ) time;
// ApplyGate additionally allocates one fresh 2ⁿ array per call.
package circuit
