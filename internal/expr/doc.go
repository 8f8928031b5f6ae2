// File: doc.go
// Title: Package Documentation for expr
// Description: Package overview for the equation tokenizer and evaluator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial package documentation

// Package expr tokenizes and evaluates infix arithmetic expressions in
// the variables x and y.
//
// An equation side is turned into a flat token sequence by Tokenize and
// computed for concrete values by Evaluate. Evaluation works directly on
// the token sequence: each level finds the leftmost lowest-precedence
// operator outside parentheses and recurses on both halves, so no parse
// tree is ever built. Malformed input degrades to the value 0 instead of
// producing errors; division by zero yields +Inf. Both behaviors are
// contracts the solver above relies on.
package expr
