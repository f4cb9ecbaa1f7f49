package circuit

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/quanta/gate"
)

// Circuit — n-qubit state-vector engine
//
// Description:
//
//	A Circuit owns one StateVector and the random source that samples
//	measurement outcomes. All mutation goes through ApplyGate,
//	ApplyControlledGate, Measure and Reset; each operation validates its
//	qubit indices first and then performs one complete, atomic rewrite
//	of the register, so a failed call never leaves a half-updated state.
//
// The normalization invariant Σ|amp_i|² ≈ 1 holds after every
// successful operation but is only ever checked on demand, by
// VerifyState.
//
// A Circuit is not safe for concurrent use; it has exactly one owner.
type Circuit struct {
	state     *StateVector
	rng       *rand.Rand
	onGate    func(name string, control, target int)
	onMeasure func(target int, outcome bool, probOne float64)
}

// New creates an n-qubit circuit initialized to |0…0⟩ (amplitude 1 at
// basis index 0, 0 elsewhere). Options configure the measurement random
// source and the observation hooks; absent any, measurement outcomes
// are reproducible under the library's fixed default seed.
//
// Returns ErrQubitCount for nQubits < 1, ErrTooManyQubits above
// MaxQubits (the register would cost 16·2ⁿ bytes), or the error
// recorded by an invalid Option. Never panics on user input.
//
// Complexity: O(2ⁿ) time and memory.
func New(nQubits int, opts ...Option) (*Circuit, error) {
	// Resolve options; last-writer-wins, errors surface here.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sv, err := NewStateVector(nQubits)
	if err != nil {
		return nil, err
	}

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	return &Circuit{
		state:     sv,
		rng:       rng,
		onGate:    o.OnGate,
		onMeasure: o.OnMeasure,
	}, nil
}

// NumQubits returns the register size fixed at construction.
// Complexity: O(1).
func (c *Circuit) NumQubits() int {
	return c.state.nQubits
}

// ApplyGate applies a single-qubit gate to the target qubit.
//
// Algorithm (bit-indexed tensor-product update):
//  1. Allocate a fresh amplitude array of the same 2ⁿ size.
//  2. For every basis index i whose target bit is 0, form its partner
//     i1 = i | 1<<target, identical to i in every other bit.
//  3. Run the gate's 2×2 transform on (amp[i], amp[i1]) and write the
//     results at i and i1 in the fresh array.
//  4. Swap the fresh array in.
//
// Pairing on the target bit while holding all other bits fixed
// enumerates exactly the 2-dimensional subspaces the gate acts on, so
// the update reproduces the effect of the tensor product I⊗…⊗G⊗…⊗I on
// the full state without ever materializing a 2ⁿ×2ⁿ matrix.
//
// Errors:
//   - ErrQubitIndex — target outside [0, NumQubits); state untouched.
//
// Complexity: O(2ⁿ) time, O(2ⁿ) extra memory per call.
func (c *Circuit) ApplyGate(g gate.Gate, target int) error {
	if target < 0 || target >= c.state.nQubits {
		return fmt.Errorf("%w: target %d, circuit has %d qubits", ErrQubitIndex, target, c.state.nQubits)
	}

	var (
		old  = c.state.amps
		next = make([]complex128, len(old))
		mask = 1 << target
		pair [2]complex128
	)
	for i := 0; i < len(old); i++ {
		if i&mask != 0 {
			continue
		}
		i1 := i | mask

		// Transform the two amplitudes of this qubit subspace.
		pair[0], pair[1] = old[i], old[i1]
		g.Apply(pair[:])
		next[i], next[i1] = pair[0], pair[1]
	}
	c.state.amps = next

	c.onGate(g.Name(), -1, target)

	return nil
}

// ApplyControlledGate applies the gate to the target qubit of every
// basis state whose control bit is 1; components with control bit 0
// pass through untouched. With gate.X this is the textbook CNOT, and
// the bit-masking form generalizes to any register size n ≥ 2.
//
// Enumerating only indices with control bit 1 and target bit 0 visits
// each affected 2-dimensional subspace exactly once (the partner index
// differs solely in the target bit and shares the set control bit), so
// the rewrite is safe in place: no pair ever reads what another pair
// wrote.
//
// Errors:
//   - ErrQubitIndex — control or target outside [0, NumQubits).
//   - ErrControlEqualsTarget — control == target.
//
// The state is untouched on error.
//
// Complexity: O(2ⁿ) time, O(1) extra memory.
func (c *Circuit) ApplyControlledGate(g gate.Gate, control, target int) error {
	n := c.state.nQubits
	if control < 0 || control >= n || target < 0 || target >= n {
		return fmt.Errorf("%w: control %d, target %d, circuit has %d qubits", ErrQubitIndex, control, target, n)
	}
	if control == target {
		return fmt.Errorf("%w: qubit %d", ErrControlEqualsTarget, control)
	}

	var (
		amps  = c.state.amps
		cMask = 1 << control
		tMask = 1 << target
		pair  [2]complex128
	)
	for i := 0; i < len(amps); i++ {
		if i&cMask == 0 || i&tMask != 0 {
			continue
		}
		i1 := i | tMask

		pair[0], pair[1] = amps[i], amps[i1]
		g.Apply(pair[:])
		amps[i], amps[i1] = pair[0], pair[1]
	}

	c.onGate(g.Name(), control, target)

	return nil
}

// Measure samples the target qubit and collapses the register onto the
// observed outcome.
//
// Algorithm (Born rule):
//  1. p1 = Σ|amp_i|² over indices whose target bit is set (the
//     marginal probability of reading 1), clamped to 1 against
//     accumulated float drift.
//  2. Draw one uniform r ∈ [0,1) from the circuit's random source;
//     outcome = r < p1.
//  3. Zero every amplitude inconsistent with the outcome and divide
//     the survivors by √p, where p is the probability of the observed
//     outcome, restoring Σ|amp_i|² = 1.
//
// The collapse divides by √p, so p must be strictly positive: when it
// is not (only reachable through a corrupted register, since a
// zero-probability outcome is never sampled from a normalized state),
// Measure returns ErrDegenerateOutcome with the state untouched rather
// than propagate NaN/Inf. The !(p > 0) form of the guard also traps a
// NaN marginal.
//
// Errors:
//   - ErrQubitIndex — target outside [0, NumQubits); state untouched.
//   - ErrDegenerateOutcome — observed-outcome probability not > 0.
//
// Complexity: O(2ⁿ) time, O(1) extra memory.
func (c *Circuit) Measure(target int) (bool, error) {
	if target < 0 || target >= c.state.nQubits {
		return false, fmt.Errorf("%w: target %d, circuit has %d qubits", ErrQubitIndex, target, c.state.nQubits)
	}

	var (
		amps = c.state.amps
		mask = 1 << target
	)

	// Born-rule marginal of outcome 1.
	var probOne float64
	for i := 0; i < len(amps); i++ {
		if i&mask != 0 {
			probOne += absSq(amps[i])
		}
	}
	if probOne > 1 {
		probOne = 1
	}

	outcome := c.rng.Float64() < probOne

	// Probability of the outcome actually observed.
	p := probOne
	if !outcome {
		p = 1 - probOne
	}
	if !(p > 0) {
		return false, fmt.Errorf("%w: qubit %d, outcome %t", ErrDegenerateOutcome, target, outcome)
	}

	// Collapse: keep matching amplitudes renormalized, zero the rest.
	inv := complex(1/math.Sqrt(p), 0)
	for i := 0; i < len(amps); i++ {
		if (i&mask != 0) == outcome {
			amps[i] *= inv
		} else {
			amps[i] = 0
		}
	}

	c.onMeasure(target, outcome, probOne)

	return outcome, nil
}

// State returns a copy of the full amplitude array. The register is
// never aliased: mutating the returned slice cannot affect the circuit.
// Complexity: O(2ⁿ) time and memory.
func (c *Circuit) State() []complex128 {
	return c.state.Amplitudes()
}

// Amplitude returns the amplitude of one basis state, or ErrBasisIndex
// when basis lies outside [0, 2ⁿ).
// Complexity: O(1).
func (c *Circuit) Amplitude(basis int) (complex128, error) {
	return c.state.At(basis)
}

// Probability returns |amp[basis]|², the Born-rule probability of
// reading the given basis state, or ErrBasisIndex when basis lies
// outside [0, 2ⁿ).
// Complexity: O(1).
func (c *Circuit) Probability(basis int) (float64, error) {
	return c.state.Probability(basis)
}

// Probabilities returns the full probability vector |amp_i|² for
// i ∈ [0, 2ⁿ). For any reachable state the entries sum to 1 within
// float tolerance.
// Complexity: O(2ⁿ) time and memory.
func (c *Circuit) Probabilities() []float64 {
	probs := make([]float64, len(c.state.amps))
	for i, a := range c.state.amps {
		probs[i] = absSq(a)
	}

	return probs
}

// VerifyState reports whether the register satisfies the normalization
// invariant |Σ|amp_i|² − 1| < NormTolerance. Diagnostic only: no
// operation calls it automatically, and intermediate buffers inside an
// update are allowed to violate it transiently.
// Complexity: O(2ⁿ).
func (c *Circuit) VerifyState() bool {
	return math.Abs(c.state.NormSquared()-1) < NormTolerance
}

// Reset restores the basis state |0…0⟩, keeping the qubit count and
// the random source.
// Complexity: O(2ⁿ).
func (c *Circuit) Reset() {
	c.state.Reset()
}
