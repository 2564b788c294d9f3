// Package jsonval provides lexing and bracket validation for a simplified
// JSON dialect. It includes a positional rule-table lexer and a stack-based
// bracket matcher.
package jsonval

import (
	"github.com/Protocol-Lattice/jsonval/lexer"
	"github.com/Protocol-Lattice/jsonval/token"
	"github.com/Protocol-Lattice/jsonval/validator"
)

// ===========================
// Re-exported Types
// ===========================

// Token types
type (
	Kind  = token.Kind
	Token = token.Token
)

// Token kinds
const (
	STRING       = token.STRING
	BOOLEAN      = token.BOOLEAN
	ASSIGNMENT   = token.ASSIGNMENT
	OPEN_SQUARE  = token.OPEN_SQUARE
	OPEN_CURLY   = token.OPEN_CURLY
	CLOSE_SQUARE = token.CLOSE_SQUARE
	CLOSE_CURLY  = token.CLOSE_CURLY
	SEPARATOR    = token.SEPARATOR
	NUMBER       = token.NUMBER
)

// Error types
type (
	LexError   = lexer.Error
	MatchError = validator.Error
)

// Lexer type
type Lexer = lexer.Lexer

// TokenSource is any pull-based producer of tokens.
type TokenSource = validator.TokenSource

// ===========================
// Convenience Functions
// ===========================

// NewLexer creates a new lexer for the given source document.
func NewLexer(src string) *Lexer {
	return lexer.New(src)
}

// Validate checks bracket nesting over an already-lexed token stream.
func Validate(src TokenSource) error {
	return validator.Validate(src)
}

// Check lexes the document and validates its bracket nesting in a single
// pass. It returns nil for well-formed documents, a *LexError when the
// document cannot be tokenized, and a *MatchError when brackets are
// unbalanced.
func Check(src string) error {
	return validator.Validate(lexer.New(src))
}
