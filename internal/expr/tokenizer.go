// File: tokenizer.go
// Title: Equation Tokenizer
// Description: Converts an equation string into a flat token sequence with
//              a single left-to-right scan. Classification order is
//              digit > letter > symbol, each class consuming its maximal
//              run. Unrecognized characters are dropped silently; the
//              tokenizer never fails.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial tokenizer implementation

package expr

import "strconv"

// Tokenize scans input and returns its token sequence. The result is
// truncated at MaxTokens. A leading '-' is emitted as an operator token,
// never folded into a number (no unary minus).
func Tokenize(input string) []Token {
	tokens := make([]Token, 0, 16)
	i := 0

	for i < len(input) && len(tokens) < MaxTokens {
		ch := input[i]

		switch {
		case isSpace(ch):
			i++

		case isDigit(ch) || ch == '.':
			// Maximal run of digits and dots; the value is a best-effort
			// decimal parse of that run (malformed tails are ignored)
			start := i
			for i < len(input) && (isDigit(input[i]) || input[i] == '.') {
				i++
			}
			text := input[start:i]
			tokens = append(tokens, Token{
				Type:  TokenNumber,
				Text:  text,
				Value: parseNumber(text),
			})

		case isAlpha(ch):
			// Maximal run of letters: a known function name or a variable
			start := i
			for i < len(input) && isAlpha(input[i]) {
				i++
			}
			text := input[start:i]
			tt := TokenVariable
			if IsFunction(text) {
				tt = TokenFunction
			}
			tokens = append(tokens, Token{Type: tt, Text: text})

		case ch == '=':
			tokens = append(tokens, Token{Type: TokenEquals, Text: "="})
			i++

		case ch == '(':
			tokens = append(tokens, Token{Type: TokenLParen, Text: "("})
			i++

		case ch == ')':
			tokens = append(tokens, Token{Type: TokenRParen, Text: ")"})
			i++

		case isOperator(ch):
			tokens = append(tokens, Token{Type: TokenOperator, Text: string(ch)})
			i++

		default:
			// Unrecognized characters are skipped, not reported
			i++
		}
	}

	return tokens
}

// parseNumber parses the longest prefix of text that forms a valid
// decimal number. Runs like "3.5." or "1.2.3" yield the leading value,
// matching C atof behavior.
func parseNumber(text string) float64 {
	for end := len(text); end > 0; end-- {
		if v, err := strconv.ParseFloat(text[:end], 64); err == nil {
			return v
		}
	}
	return 0
}
