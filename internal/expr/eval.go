// File: eval.go
// Title: Precedence-Scan Expression Evaluator
// Description: Evaluates a token sequence for concrete (x, y) without
//              building a parse tree. Each level scans the top-level
//              tokens right-to-left for the lowest-precedence operator
//              and recurses on both sides of the split. Degenerate
//              shapes evaluate to 0 instead of failing; division by
//              zero yields +Inf.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial evaluator implementation

package expr

import "math"

// Operator precedence: ^ binds tightest, then * and /, then + and -.
// Because the right-to-left scan accepts ties (prec <= current minimum),
// the split always lands on the LEFTMOST lowest-precedence operator,
// which makes every operator left-associative. That includes '^':
// 2^3^2 evaluates as (2^3)^2 = 64, deviating from the mathematical
// right-associative convention.
func precedence(op byte) int {
	switch op {
	case '^':
		return 3
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// Evaluate computes the value of the token sequence for the given x and y.
// It is a pure function of its inputs. NaN and Inf are valid outputs and
// propagate arithmetically; there is no error channel.
func Evaluate(tokens []Token, x, y float64) float64 {
	if len(tokens) == 0 {
		return 0
	}

	if len(tokens) == 1 {
		tok := tokens[0]
		switch tok.Type {
		case TokenNumber:
			return tok.Value
		case TokenVariable:
			switch tok.Text {
			case "x":
				return x
			case "y":
				return y
			}
		}
		// Any other single token, including unknown variables
		return 0
	}

	// Find the leftmost lowest-precedence operator outside parentheses.
	// Scanning right-to-left, ')' opens a nesting level and '(' closes it.
	splitAt := -1
	minPrec := 999
	depth := 0

	for i := len(tokens) - 1; i >= 0; i-- {
		switch tokens[i].Type {
		case TokenRParen:
			depth++
		case TokenLParen:
			depth--
		case TokenOperator:
			if depth == 0 {
				if prec := precedence(tokens[i].Text[0]); prec <= minPrec {
					minPrec = prec
					splitAt = i
				}
			}
		}
	}

	if splitAt == -1 {
		// Function call: FUNCTION '(' interior ')'
		if tokens[0].Type == TokenFunction && len(tokens) >= 3 {
			arg := Evaluate(tokens[2:len(tokens)-1], x, y)
			switch tokens[0].Text {
			case "sin":
				return math.Sin(arg)
			case "cos":
				return math.Cos(arg)
			case "tan":
				return math.Tan(arg)
			case "log":
				return math.Log10(arg)
			case "ln":
				return math.Log(arg)
			case "exp":
				return math.Exp(arg)
			}
		}
		// Fully parenthesized: strip one layer and recurse
		if tokens[0].Type == TokenLParen && tokens[len(tokens)-1].Type == TokenRParen {
			return Evaluate(tokens[1:len(tokens)-1], x, y)
		}
		// Unparseable shape
		return 0
	}

	left := Evaluate(tokens[:splitAt], x, y)
	right := Evaluate(tokens[splitAt+1:], x, y)

	switch tokens[splitAt].Text[0] {
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	case '/':
		if right == 0 {
			return math.Inf(1)
		}
		return left / right
	case '^':
		return math.Pow(left, right)
	default:
		return 0
	}
}
