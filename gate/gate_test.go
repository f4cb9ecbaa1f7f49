package gate_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quanta/gate"
)

const eps = 1e-10

// assertAmp checks both components of a complex amplitude.
func assertAmp(t *testing.T, want, got complex128, msg string) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), eps, "%s: real part", msg)
	assert.InDelta(t, imag(want), imag(got), eps, "%s: imag part", msg)
}

// mul2 multiplies two 2×2 complex matrices.
func mul2(a, b [2][2]complex128) [2][2]complex128 {
	var p [2][2]complex128
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			p[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c]
		}
	}
	return p
}

// dagger returns the conjugate transpose of a 2×2 complex matrix.
func dagger(m [2][2]complex128) [2][2]complex128 {
	return [2][2]complex128{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// TestMatrixUnitarity verifies M·M† == I for every catalog gate,
// including a spread of rotation angles.
func TestMatrixUnitarity(t *testing.T) {
	gates := []gate.Gate{
		gate.X, gate.Y, gate.Z, gate.H, gate.S, gate.T,
		gate.Rotation(0),
		gate.Rotation(math.Pi / 3),
		gate.Rotation(math.Pi / 2),
		gate.Rotation(-1.234),
	}
	for _, g := range gates {
		m := g.Matrix()
		p := mul2(m, dagger(m))
		assertAmp(t, 1, p[0][0], g.Name())
		assertAmp(t, 0, p[0][1], g.Name())
		assertAmp(t, 0, p[1][0], g.Name())
		assertAmp(t, 1, p[1][1], g.Name())
	}
}

// TestXFlipsBasis verifies Pauli-X swaps the |0⟩ and |1⟩ amplitudes.
func TestXFlipsBasis(t *testing.T) {
	pair := []complex128{1, 0}
	gate.X.Apply(pair)
	assert.Equal(t, complex128(0), pair[0], "|0⟩ amplitude must vanish")
	assert.Equal(t, complex128(1), pair[1], "|1⟩ amplitude must become 1")
}

// TestYAddsPhaseOnFlip verifies Pauli-Y maps |0⟩ to i|1⟩.
func TestYAddsPhaseOnFlip(t *testing.T) {
	pair := []complex128{1, 0}
	gate.Y.Apply(pair)
	assertAmp(t, 0, pair[0], "Pauli-Y |0⟩ component")
	assertAmp(t, complex(0, 1), pair[1], "Pauli-Y |1⟩ component")
}

// TestZNegatesOne verifies Pauli-Z leaves |0⟩ alone and negates |1⟩.
func TestZNegatesOne(t *testing.T) {
	pair := []complex128{complex(0.6, 0), complex(0.8, 0)}
	gate.Z.Apply(pair)
	assertAmp(t, complex(0.6, 0), pair[0], "Pauli-Z |0⟩ component")
	assertAmp(t, complex(-0.8, 0), pair[1], "Pauli-Z |1⟩ component")
}

// TestHadamardSuperposition verifies H maps |0⟩ to (1/√2, 1/√2).
func TestHadamardSuperposition(t *testing.T) {
	pair := []complex128{1, 0}
	gate.H.Apply(pair)

	invSqrt2 := 1 / math.Sqrt2
	assertAmp(t, complex(invSqrt2, 0), pair[0], "Hadamard |0⟩ component")
	assertAmp(t, complex(invSqrt2, 0), pair[1], "Hadamard |1⟩ component")
}

// TestPhaseQuarterTurn verifies S rotates the |1⟩ amplitude onto the
// imaginary axis while leaving |0⟩ untouched.
func TestPhaseQuarterTurn(t *testing.T) {
	invSqrt2 := 1 / math.Sqrt2
	pair := []complex128{complex(invSqrt2, 0), complex(invSqrt2, 0)}
	gate.S.Apply(pair)

	assertAmp(t, complex(invSqrt2, 0), pair[0], "Phase |0⟩ component")
	assertAmp(t, complex(0, invSqrt2), pair[1], "Phase |1⟩ component")
}

// TestTEighthTurn verifies T multiplies the |1⟩ amplitude by e^{iπ/4}.
func TestTEighthTurn(t *testing.T) {
	pair := []complex128{0, 1}
	gate.T.Apply(pair)

	want := cmplx.Exp(complex(0, math.Pi/4))
	assertAmp(t, 0, pair[0], "T |0⟩ component")
	assertAmp(t, want, pair[1], "T |1⟩ component")
}

// TestRotationHalfPi verifies Rotation(π/2) carries |0⟩ onto |1⟩.
func TestRotationHalfPi(t *testing.T) {
	pair := []complex128{1, 0}
	gate.Rotation(math.Pi / 2).Apply(pair)

	assertAmp(t, 0, pair[0], "Rotation(π/2) |0⟩ component")
	assertAmp(t, 1, pair[1], "Rotation(π/2) |1⟩ component")
}

// TestSelfInverse verifies X, Z and H each undo themselves on an
// arbitrary normalized pair.
func TestSelfInverse(t *testing.T) {
	orig := []complex128{complex(0.6, 0.1), complex(0.3, -0.2)}
	for _, g := range []gate.Gate{gate.X, gate.Z, gate.H} {
		pair := []complex128{orig[0], orig[1]}
		g.Apply(pair)
		g.Apply(pair)
		assertAmp(t, orig[0], pair[0], g.Name()+" twice, |0⟩")
		assertAmp(t, orig[1], pair[1], g.Name()+" twice, |1⟩")
	}
}

// TestNames pins the catalog's human-readable labels.
func TestNames(t *testing.T) {
	want := map[string]gate.Gate{
		"Pauli-X":  gate.X,
		"Pauli-Y":  gate.Y,
		"Pauli-Z":  gate.Z,
		"Hadamard": gate.H,
		"Phase":    gate.S,
		"T":        gate.T,
		"Rotation": gate.Rotation(1.5),
	}
	for name, g := range want {
		assert.Equal(t, name, g.Name())
		assert.Equal(t, name, g.String(), "String must alias Name")
	}
}

// TestTheta verifies only Rotation carries an angle.
func TestTheta(t *testing.T) {
	assert.Equal(t, 1.5, gate.Rotation(1.5).Theta())
	assert.Zero(t, gate.H.Theta())
}

// TestApplyPanicsOnBadPair verifies the length-2 contract is fatal.
func TestApplyPanicsOnBadPair(t *testing.T) {
	require.Panics(t, func() { gate.X.Apply([]complex128{1}) },
		"1-element pair must panic")
	require.Panics(t, func() { gate.X.Apply(make([]complex128, 3)) },
		"3-element pair must panic")
	require.Panics(t, func() { gate.X.Apply(nil) },
		"nil pair must panic")
}

// TestZeroGatePanics verifies the zero Gate cannot be used as a
// transform.
func TestZeroGatePanics(t *testing.T) {
	var g gate.Gate
	require.Panics(t, func() { g.Matrix() }, "zero Gate Matrix must panic")
	require.Panics(t, func() { g.Name() }, "zero Gate Name must panic")
	require.Panics(t, func() { g.Apply([]complex128{1, 0}) },
		"zero Gate Apply must panic")
}
