// File: newton_test.go
// Title: Newton Solver Unit Tests
// Description: Tests convergence on linear and quadratic equations,
//              equation splitting, the implicit right-hand side, the
//              periodic wrap heuristic and the NaN no-solution sentinel.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package solver

import (
	"math"
	"testing"
)

func TestSolve_Linear(t *testing.T) {
	got := Solve("y=x", 3, 0)

	if !IsSolution(got) {
		t.Fatalf("Solve(y=x, 3, 0) did not converge, got %g", got)
	}
	if math.Abs(got-3) > 1e-9 {
		t.Errorf("Solve(y=x, 3, 0) = %g, expected 3 within 1e-9", got)
	}
}

func TestSolve_Quadratic(t *testing.T) {
	// y = x^2 has exactly one y per x; every converging guess must land
	// on the same root (duplicate convergence is acceptable)
	guesses := []float64{-5, -2.5, 0, 2.5, 5}

	for _, guess := range guesses {
		got := Solve("y=x^2", 2, guess)
		if !IsSolution(got) {
			t.Errorf("guess %g did not converge", guess)
			continue
		}
		if math.Abs(got-4) > 1e-8 {
			t.Errorf("guess %g converged to %g, expected 4", guess, got)
		}
	}
}

func TestSolve_ImplicitRightSide(t *testing.T) {
	// Without '=' the right side defaults to 0: "y-2" means y-2=0
	got := Solve("y-2", 0, 0)

	if !IsSolution(got) || math.Abs(got-2) > 1e-9 {
		t.Errorf("Solve(y-2, 0, 0) = %g, expected 2", got)
	}
}

func TestSolve_PeriodicWrap(t *testing.T) {
	got := Solve("y=sin(x)", 0, 0.5)

	if !IsSolution(got) {
		t.Fatalf("Solve(y=sin(x), 0, 0.5) did not converge, got %g", got)
	}
	if math.Abs(got) > 1e-8 {
		t.Errorf("Solve(y=sin(x), 0, 0.5) = %g, expected 0", got)
	}
	if got <= -math.Pi || got > math.Pi {
		t.Errorf("result %g outside the wrap interval (-π, π]", got)
	}
}

func TestSolve_NoSolution(t *testing.T) {
	// x=5 does not involve y: at x=0, f is the constant -5 and the
	// clamped derivative makes the iteration diverge to the cap
	got := Solve("x=5", 0, 0)

	if !math.IsNaN(got) {
		t.Errorf("Solve(x=5, 0, 0) = %g, expected NaN sentinel", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		leftCount  int
		rightCount int
	}{
		{name: "Explicit equation", input: "y=x+1", leftCount: 1, rightCount: 3},
		{name: "No equals sign", input: "y-x", leftCount: 3, rightCount: 1},
		{name: "Empty left side", input: "=x", leftCount: 0, rightCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := Parse(tt.input)
			if len(eq.left) != tt.leftCount {
				t.Errorf("left side: expected %d tokens, got %d", tt.leftCount, len(eq.left))
			}
			if len(eq.right) != tt.rightCount {
				t.Errorf("right side: expected %d tokens, got %d", tt.rightCount, len(eq.right))
			}
			if eq.Source() != tt.input {
				t.Errorf("Source() = %q, expected %q", eq.Source(), tt.input)
			}
		})
	}
}

func TestIsSolution(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{name: "Finite value", value: 1.5, expected: true},
		{name: "Zero", value: 0, expected: true},
		{name: "NaN sentinel", value: math.NaN(), expected: false},
		{name: "Positive infinity", value: math.Inf(1), expected: false},
		{name: "Negative infinity", value: math.Inf(-1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSolution(tt.value); got != tt.expected {
				t.Errorf("IsSolution(%g) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}
