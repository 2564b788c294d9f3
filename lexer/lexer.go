package lexer

import (
	"fmt"
	"io"
	"strings"

	"github.com/Protocol-Lattice/jsonval/token"
)

// Error reports input that matches none of the lexical rules.
type Error struct {
	Pos int // Byte offset of the unrecognized input
}

func (e *Error) Error() string {
	return fmt.Sprintf("unrecognized token starting at position %d", e.Pos)
}

// A rule pairs a token kind with a matcher tried against the unconsumed
// suffix of the source. A matcher returns the length of the raw match and
// the text to emit; length zero means no match. A rule with an empty kind
// is consumed without emitting a token.
type rule struct {
	kind  token.Kind
	match func(s string) (length int, text string)
}

// rules is ordered; at each cursor position the first matching rule wins.
var rules = []rule{
	{token.STRING, matchString},
	{token.BOOLEAN, matchBoolean},
	{token.ASSIGNMENT, matchLiteral(':')},
	{token.OPEN_SQUARE, matchLiteral('[')},
	{token.OPEN_CURLY, matchLiteral('{')},
	{token.CLOSE_SQUARE, matchLiteral(']')},
	{token.CLOSE_CURLY, matchLiteral('}')},
	{token.SEPARATOR, matchLiteral(',')},
	{token.NUMBER, matchNumber},
	{"", matchWhitespace},
}

// Lexer tokenizes a source document left to right, one token per call to
// Next. It is single-pass; create a new Lexer to rescan the same source.
type Lexer struct {
	src string // The input document
	pos int    // Byte offset of the next unconsumed input
}

// New creates a new Lexer for the given source document.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token from the source. It returns io.EOF once the
// whole source has been consumed, and a *Error when the input at the
// cursor matches no lexical rule.
func (l *Lexer) Next() (token.Token, error) {
scan:
	for l.pos < len(l.src) {
		rest := l.src[l.pos:]
		for _, r := range rules {
			n, text := r.match(rest)
			if n == 0 {
				continue
			}
			start := l.pos
			l.pos += n
			if r.kind == "" {
				continue scan // whitespace: consumed, never emitted
			}
			return token.Token{Kind: r.kind, Text: text, Pos: start}, nil
		}
		return token.Token{}, &Error{Pos: l.pos}
	}
	return token.Token{}, io.EOF
}

// matchString matches a quoted string ending at the next quote. The raw
// match spans both quotes; the emitted text excludes them. An unterminated
// quote is no match at all.
func matchString(s string) (int, string) {
	if len(s) < 2 || s[0] != '"' {
		return 0, ""
	}
	end := strings.IndexByte(s[1:], '"')
	if end < 0 {
		return 0, ""
	}
	return end + 2, s[1 : end+1]
}

// matchBoolean matches the literals true and false.
func matchBoolean(s string) (int, string) {
	for _, lit := range [...]string{"true", "false"} {
		if strings.HasPrefix(s, lit) {
			return len(lit), lit
		}
	}
	return 0, ""
}

// matchLiteral builds a matcher for one fixed single-byte token.
func matchLiteral(lit byte) func(string) (int, string) {
	return func(s string) (int, string) {
		if len(s) > 0 && s[0] == lit {
			return 1, string(lit)
		}
		return 0, ""
	}
}

// matchNumber matches an optional leading minus followed by one or more
// digits or dots. Stricter numeric grammar is not the lexer's concern:
// 1.2.3 is a single number token here.
func matchNumber(s string) (int, string) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && (s[i] == '.' || isDigit(s[i])) {
		i++
	}
	if i == start {
		return 0, ""
	}
	return i, s[:i]
}

// matchWhitespace matches a run of whitespace characters.
func matchWhitespace(s string) (int, string) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i, ""
}

// isDigit checks if a byte is a digit.
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isSpace checks if a byte is a whitespace character.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
