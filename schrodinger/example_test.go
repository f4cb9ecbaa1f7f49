// SPDX-License-Identifier: MIT

package schrodinger_test

import (
	"fmt"

	"github.com/katalvlaran/quanta/schrodinger"
)

// ExampleSolver_Solve diagonalizes a bare infinite well and prints the
// textbook ratio between the first two levels.
func ExampleSolver_Solve() {
	s, err := schrodinger.New(60, 0.1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sp, err := s.Solve()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	e0, _ := sp.Energy(0)
	e1, _ := sp.Energy(1)
	fmt.Printf("levels=%d E1/E0=%.1f\n", sp.Levels(), e1/e0)
	// Output: levels=60 E1/E0=4.0
}

// ExampleSpectrum_WaveFunction reads back the ground state and checks
// its quadrature norm on the grid.
func ExampleSpectrum_WaveFunction() {
	s, _ := schrodinger.New(50, 0.1)
	sp, _ := s.Solve()

	psi, _ := sp.WaveFunction(0)

	norm := 0.0
	for _, w := range psi {
		norm += w * w * s.Dx()
	}
	fmt.Printf("norm=%.2f\n", norm)
	// Output: norm=1.00
}

// ExampleSolver_ExpectationPosition shows the ground state sitting in
// the middle of the box.
func ExampleSolver_ExpectationPosition() {
	s, _ := schrodinger.New(50, 0.1)
	sp, _ := s.Solve()

	psi, _ := sp.WaveFunction(0)
	fmt.Printf("<x>=%.2f\n", s.ExpectationPosition(psi))
	// Output: <x>=2.45
}
