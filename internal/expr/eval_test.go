// File: eval_test.go
// Title: Expression Evaluator Unit Tests
// Description: Tests the precedence-scan evaluator: operator precedence,
//              parentheses, function application, variable resolution,
//              sentinel values for division by zero, and the documented
//              left-associative '^' behavior.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package expr

import (
	"math"
	"testing"
)

const evalTolerance = 1e-12

func evalString(t *testing.T, input string, x, y float64) float64 {
	t.Helper()
	return Evaluate(Tokenize(input), x, y)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		x, y     float64
		expected float64
	}{
		{name: "Precedence respected", input: "2+3*4", expected: 14},
		{name: "Parentheses respected", input: "(2+3)*4", expected: 20},
		{name: "Left associative subtraction", input: "10-4-3", expected: 3},
		{name: "Left associative division", input: "24/4/2", expected: 3},
		{name: "Single number", input: "42", expected: 42},
		{name: "Variable x", input: "x", x: 7, expected: 7},
		{name: "Variable y", input: "y", y: -2.5, expected: -2.5},
		{name: "Unknown variable is zero", input: "foo", x: 1, y: 2, expected: 0},
		{name: "Mixed variables", input: "x*y+1", x: 3, y: 4, expected: 13},
		{name: "Nested parentheses", input: "((2))", expected: 2},
		{name: "Power", input: "2^10", expected: 1024},
		{name: "Sine of zero", input: "sin(0)", expected: 0},
		{name: "Cosine of zero", input: "cos(0)", expected: 1},
		{name: "Base ten logarithm", input: "log(100)", expected: 2},
		{name: "Natural logarithm", input: "ln(1)", expected: 0},
		{name: "Exponential", input: "exp(0)", expected: 1},
		{name: "Function of expression", input: "sin(x*0)", x: 5, expected: 0},
		{name: "Dangling operator falls back", input: "1+", expected: 1},
		{name: "Empty input", input: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalString(t, tt.input, tt.x, tt.y)
			if math.Abs(got-tt.expected) > evalTolerance {
				t.Errorf("Evaluate(%q, %g, %g) = %g, expected %g",
					tt.input, tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	got := evalString(t, "10/0", 0, 0)

	if !math.IsInf(got, 1) {
		t.Errorf("10/0 = %g, expected +Inf", got)
	}
}

// The leftmost-lowest-precedence split makes '^' left-associative:
// 2^3^2 is (2^3)^2 = 64, not the conventional 2^(3^2) = 512.
func TestEvaluate_PowerIsLeftAssociative(t *testing.T) {
	got := evalString(t, "2^3^2", 0, 0)

	if got != 64 {
		t.Errorf("2^3^2 = %g, expected 64 (left-associative split)", got)
	}
}

func TestEvaluate_IsPure(t *testing.T) {
	tokens := Tokenize("x+y*2")

	first := Evaluate(tokens, 1, 2)
	second := Evaluate(tokens, 1, 2)

	if first != second {
		t.Errorf("repeated evaluation differs: %g vs %g", first, second)
	}
	if Evaluate(tokens, 3, 1) != 5 {
		t.Errorf("token sequence was mutated by evaluation")
	}
}
