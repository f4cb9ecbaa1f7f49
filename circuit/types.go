// Package circuit provides tunable options and error definitions
// for the quantum register engine.
package circuit

import (
	"errors"
	"math/rand"
)

// MaxQubits caps the register size accepted by New and NewStateVector.
// The state vector costs 16·2ⁿ bytes (two float64 per amplitude), so
// 26 qubits already occupy ≈1 GiB, the practical single-machine bound.
// Larger requests fail with ErrTooManyQubits instead of thrashing.
const MaxQubits = 26

// NormTolerance is the tolerance used by VerifyState on the global
// normalization invariant |Σ|amp_i|² − 1|.
const NormTolerance = 1e-10

// Sentinel errors for circuit construction and operations.
var (
	// ErrQubitCount is returned by New when the qubit count is below 1.
	ErrQubitCount = errors.New("circuit: qubit count must be ≥ 1")

	// ErrTooManyQubits is returned by New when the qubit count exceeds
	// MaxQubits and the register would not fit on one machine.
	ErrTooManyQubits = errors.New("circuit: qubit count exceeds MaxQubits")

	// ErrQubitIndex is returned when a target or control qubit lies
	// outside [0, NumQubits).
	ErrQubitIndex = errors.New("circuit: qubit index out of range")

	// ErrControlEqualsTarget is returned by ApplyControlledGate when the
	// control and target name the same qubit.
	ErrControlEqualsTarget = errors.New("circuit: control and target qubits must differ")

	// ErrBasisIndex is returned when a basis-state index lies outside
	// [0, 2ⁿ), or a bulk replace has the wrong length.
	ErrBasisIndex = errors.New("circuit: basis state out of range")

	// ErrDegenerateOutcome is returned by Measure when the sampled
	// outcome has no strictly positive probability and the collapse
	// would divide by zero.
	ErrDegenerateOutcome = errors.New("circuit: measured outcome has zero probability")

	// ErrNilRand is returned when WithRand was handed a nil source.
	ErrNilRand = errors.New("circuit: random source must not be nil")
)

// Option configures circuit construction via functional arguments.
// If an Option is invalid (e.g. a nil random source), it is recorded
// internally and surfaced as an error when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Circuit.
type Options struct {
	// Seed feeds the deterministic default random source when Rand is
	// nil. Seed == 0 selects the fixed library default (see rng.go),
	// so the zero value stays reproducible.
	Seed int64

	// Rand, when non-nil, is the caller-owned random source consumed by
	// Measure. It overrides Seed entirely.
	Rand *rand.Rand

	// OnGate is called after every successful gate application with the
	// gate's name and the qubits acted on. control is -1 for
	// single-qubit gates.
	OnGate func(name string, control, target int)

	// OnMeasure is called after every successful measurement with the
	// measured qubit, the sampled outcome, and the pre-collapse
	// probability of outcome 1.
	OnMeasure func(target int, outcome bool, probOne float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Seed 0 (fixed default seed → reproducible runs out of the box)
//   - no caller-owned random source
//   - no-op hooks (OnGate, OnMeasure)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Seed:      0,
		Rand:      nil,
		OnGate:    func(string, int, int) {},
		OnMeasure: func(int, bool, float64) {},
		err:       nil,
	}
}

// WithSeed selects the deterministic random source derived from seed.
//
//	seed != 0: use the seed verbatim
//	seed == 0: explicit library default seed
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand installs a caller-owned random source, overriding WithSeed.
// A nil source is an invalid option → ErrNilRand from New.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = ErrNilRand

			return
		}
		o.Rand = r
	}
}

// WithOnGate registers a callback observing successful gate
// applications. Failed applications never fire it.
func WithOnGate(fn func(name string, control, target int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGate = fn
		}
	}
}

// WithOnMeasure registers a callback observing successful measurements.
func WithOnMeasure(fn func(target int, outcome bool, probOne float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMeasure = fn
		}
	}
}
