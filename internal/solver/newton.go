// File: newton.go
// Title: Damped Newton Equation Solver
// Description: Finds y for a given x in an implicit equation of x and y
//              by damped Newton-Raphson iteration over the difference of
//              the two equation sides. The derivative is a forward
//              difference; near-zero derivatives are clamped; solutions
//              of periodic equations are wrapped into (-π, π].
//              Non-convergence is signaled through NaN, never an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial solver implementation

package solver

import (
	"math"
	"strings"

	"github.com/msto63/mGW/internal/expr"
)

const (
	// MaxIterations caps the Newton iteration count
	MaxIterations = 100

	// Epsilon is both the convergence threshold and the minimum
	// derivative magnitude
	Epsilon = 1e-10

	// DerivativeStep is the forward-difference step width
	DerivativeStep = 1e-7

	// Damping scales every Newton step to reduce overshoot
	Damping = 0.5
)

// Equation is a pre-tokenized implicit equation. Both sides are kept as
// token sequences; the raw source text is retained for the periodic-wrap
// heuristic.
type Equation struct {
	source string
	left   []expr.Token
	right  []expr.Token
}

// Parse splits an equation at its first '=' and tokenizes both sides.
// Without an equals sign the right side defaults to the literal "0".
func Parse(equation string) Equation {
	leftText := equation
	rightText := "0"
	if i := strings.IndexByte(equation, '='); i >= 0 {
		leftText = equation[:i]
		rightText = equation[i+1:]
	}

	return Equation{
		source: equation,
		left:   expr.Tokenize(leftText),
		right:  expr.Tokenize(rightText),
	}
}

// Source returns the raw equation text
func (e Equation) Source() string {
	return e.source
}

// periodic reports whether the wrap heuristic applies. This is a literal
// substring search on the source text: "sin" inside an unrelated
// identifier triggers it too. Kept as-is for behavioral fidelity.
func (e Equation) periodic() bool {
	return strings.Contains(e.source, "sin") ||
		strings.Contains(e.source, "cos") ||
		strings.Contains(e.source, "tan")
}

// f computes left(x, y) - right(x, y)
func (e Equation) f(x, y float64) float64 {
	return expr.Evaluate(e.left, x, y) - expr.Evaluate(e.right, x, y)
}

// SolveEquation runs the damped Newton iteration on a pre-parsed
// equation, returning the converged y or NaN after MaxIterations
// without convergence.
func SolveEquation(eq Equation, x, initialY float64) float64 {
	periodic := eq.periodic()
	y := initialY
	iter := 0

	for {
		prev := y

		f := eq.f(x, y)
		fh := eq.f(x, y+DerivativeStep)
		df := (fh - f) / DerivativeStep

		// Clamp near-zero derivatives, preserving sign
		if math.Abs(df) < Epsilon {
			if df < 0 {
				df = -Epsilon
			} else {
				df = Epsilon
			}
		}

		y -= Damping * (f / df)

		if periodic {
			y = math.Mod(y+math.Pi, 2*math.Pi) - math.Pi
		}

		iter++
		if math.Abs(y-prev) <= Epsilon || iter >= MaxIterations {
			break
		}
	}

	if iter < MaxIterations {
		return y
	}
	return math.NaN()
}

// Solve parses equation and solves it for y at the given x, starting
// from initialY. Callers must check the result with IsSolution before
// using it.
func Solve(equation string, x, initialY float64) float64 {
	return SolveEquation(Parse(equation), x, initialY)
}

// IsSolution reports whether v is a usable solver result, filtering the
// NaN no-solution sentinel and infinities.
func IsSolution(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
