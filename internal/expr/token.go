// File: token.go
// Title: Equation Token Definitions
// Description: Defines the token types produced by the equation tokenizer.
//              Tokens are the flat lexical units an equation string is
//              broken into before evaluation: numbers, the variables x/y,
//              binary operators, function names, parentheses and the
//              equals sign.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial token definitions

package expr

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenNumber   TokenType = iota // 3, 3.5
	TokenVariable                  // x, y (other identifiers evaluate to 0)
	TokenOperator                  // + - * / ^
	TokenFunction                  // sin, cos, tan, log, ln, exp
	TokenLParen                    // (
	TokenRParen                    // )
	TokenEquals                    // =
)

// Buffer maxima, kept as explicit constants rather than hidden limits
const (
	// MaxEquationLength is the longest equation string accepted by callers
	MaxEquationLength = 256

	// MaxTokens bounds the token sequence produced for one expression
	MaxTokens = 100
)

// Token represents one lexical unit of an equation. Text holds the source
// spelling; Value is only meaningful for TokenNumber.
type Token struct {
	Type  TokenType
	Text  string
	Value float64
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenNumber {
		return fmt.Sprintf("%s(%g)", t.Type.String(), t.Value)
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Text)
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenNumber:
		return "NUMBER"
	case TokenVariable:
		return "VARIABLE"
	case TokenOperator:
		return "OPERATOR"
	case TokenFunction:
		return "FUNCTION"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenEquals:
		return "EQUALS"
	default:
		return "UNKNOWN"
	}
}

// functions is the set of recognized function names
var functions = map[string]bool{
	"sin": true,
	"cos": true,
	"tan": true,
	"log": true,
	"ln":  true,
	"exp": true,
}

// IsFunction reports whether name is one of the recognized function names
func IsFunction(name string) bool {
	return functions[name]
}

// isOperator checks if the character is a binary operator
func isOperator(ch byte) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '^'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isAlpha checks if the character is an ASCII letter
func isAlpha(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isSpace checks if the character is whitespace
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
