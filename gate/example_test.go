package gate_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quanta/gate"
)

// ExampleGate_Apply puts one qubit into the equal superposition.
func ExampleGate_Apply() {
	pair := []complex128{1, 0} // |0⟩

	gate.H.Apply(pair)

	fmt.Printf("%.4f %.4f\n", real(pair[0]), real(pair[1]))
	// Output: 0.7071 0.7071
}

// ExampleRotation shows a quarter-turn carrying |0⟩ onto |1⟩.
func ExampleRotation() {
	g := gate.Rotation(math.Pi / 2)

	pair := []complex128{1, 0}
	g.Apply(pair)

	fmt.Printf("%s: |1⟩ amplitude %.0f\n", g, real(pair[1]))
	// Output: Rotation: |1⟩ amplitude 1
}
