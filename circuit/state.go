// Package circuit: StateVector is the flat amplitude storage backing a
// Circuit, kept as its own type so the storage layer can be tested and
// reused independently of the engine. Amplitudes live in a single flat
// slice for performance and cache friendliness.
package circuit

import "fmt"

// stateErrorf wraps an underlying error with StateVector method context.
func stateErrorf(method string, index int, err error) error {
	return fmt.Errorf("StateVector.%s(%d): %w", method, index, err)
}

// StateVector is an ordered sequence of 2ⁿ complex amplitudes, one per
// n-bit basis index. Bit k of an index carries the classical value of
// qubit k. The engine owns exactly one StateVector and never aliases
// it: every read accessor hands out copies or scalars.
type StateVector struct {
	nQubits int          // number of qubits, fixed at construction
	amps    []complex128 // flat amplitude storage, length == 1<<nQubits
}

// NewStateVector creates the amplitude storage for an n-qubit register
// initialized to the basis state |0…0⟩.
// Stage 1 (Validate): ensure 1 ≤ nQubits ≤ MaxQubits.
// Stage 2 (Prepare): allocate the flat 2ⁿ slice.
// Stage 3 (Finalize): set amplitude 0 to 1+0i.
// Complexity: O(2ⁿ) time and memory.
func NewStateVector(nQubits int) (*StateVector, error) {
	// Validate qubit count
	if nQubits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrQubitCount, nQubits)
	}
	if nQubits > MaxQubits {
		return nil, fmt.Errorf("%w: got %d, cap %d", ErrTooManyQubits, nQubits, MaxQubits)
	}
	// Allocate flat slice and pin the ground state
	amps := make([]complex128, 1<<nQubits)
	amps[0] = 1

	// Return initialized StateVector
	return &StateVector{nQubits: nQubits, amps: amps}, nil
}

// NumQubits returns the number of qubits the storage was sized for.
// Complexity: O(1).
func (v *StateVector) NumQubits() int {
	return v.nQubits // return stored qubit count
}

// Len returns the number of amplitudes, always 1<<NumQubits().
// Complexity: O(1).
func (v *StateVector) Len() int {
	return len(v.amps) // return backing length
}

// At retrieves the amplitude of basis state i.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (v *StateVector) At(i int) (complex128, error) {
	// Validate basis index
	if i < 0 || i >= len(v.amps) {
		return 0, stateErrorf("At", i, ErrBasisIndex)
	}

	// Return stored amplitude
	return v.amps[i], nil
}

// Set assigns amplitude a to basis state i.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): write into the flat slice.
// Complexity: O(1).
func (v *StateVector) Set(i int, a complex128) error {
	// Validate basis index
	if i < 0 || i >= len(v.amps) {
		return stateErrorf("Set", i, ErrBasisIndex)
	}
	// Assign amplitude
	v.amps[i] = a

	return nil
}

// Replace overwrites the whole register with the given amplitudes.
// The input is copied in, never aliased; its length must equal Len().
// Complexity: O(2ⁿ).
func (v *StateVector) Replace(amps []complex128) error {
	// Validate replacement length
	if len(amps) != len(v.amps) {
		return fmt.Errorf("StateVector.Replace: length %d, want %d: %w", len(amps), len(v.amps), ErrBasisIndex)
	}
	// Copy all amplitudes into the backing slice
	copy(v.amps, amps)

	return nil
}

// Amplitudes returns a copy of the full amplitude array.
// Complexity: O(2ⁿ) time and memory.
func (v *StateVector) Amplitudes() []complex128 {
	// Allocate and fill the copy
	out := make([]complex128, len(v.amps))
	copy(out, v.amps)

	return out
}

// Clone returns a deep copy of the StateVector.
// Complexity: O(2ⁿ) time and memory.
func (v *StateVector) Clone() *StateVector {
	return &StateVector{nQubits: v.nQubits, amps: v.Amplitudes()}
}

// Reset restores the basis state |0…0⟩ in place.
// Complexity: O(2ⁿ).
func (v *StateVector) Reset() {
	// Zero every amplitude, then pin the ground state
	for i := range v.amps {
		v.amps[i] = 0
	}
	v.amps[0] = 1
}

// NormSquared returns Σ|amp_i|², the quantity VerifyState checks
// against 1.
// Complexity: O(2ⁿ).
func (v *StateVector) NormSquared() float64 {
	var sum float64
	for _, a := range v.amps {
		sum += absSq(a)
	}

	return sum
}

// Probability returns |amp_i|², the Born-rule probability of reading
// basis state i.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): square the amplitude magnitude.
// Complexity: O(1).
func (v *StateVector) Probability(i int) (float64, error) {
	// Validate basis index
	if i < 0 || i >= len(v.amps) {
		return 0, stateErrorf("Probability", i, ErrBasisIndex)
	}

	// Return squared magnitude
	return absSq(v.amps[i]), nil
}

// absSq returns |a|² without the square root a cmplx.Abs round trip
// would cost.
// Complexity: O(1).
func absSq(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}
