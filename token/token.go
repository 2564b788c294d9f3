package token

import (
	"fmt"
	"strings"
)

// Kind classifies a lexical unit of the JSON dialect.
type Kind string

const (
	STRING       Kind = "string"       // quoted text, quotes stripped
	BOOLEAN      Kind = "boolean"      // true or false
	ASSIGNMENT   Kind = "assignment"   // :
	OPEN_SQUARE  Kind = "open_square"  // [
	OPEN_CURLY   Kind = "open_curly"   // {
	CLOSE_SQUARE Kind = "close_square" // ]
	CLOSE_CURLY  Kind = "close_curly"  // }
	SEPARATOR    Kind = "separator"    // ,
	NUMBER       Kind = "number"       // digits and dots, optional leading minus
)

// Token represents a single lexical unit and where it begins in the source.
type Token struct {
	Kind Kind   // The classification of the matched text
	Text string // The semantic text; for strings, the content between the quotes
	Pos  int    // Zero-based byte offset where the match began
}

// IsOpening reports whether the token is an opening bracket.
func (t Token) IsOpening() bool {
	return strings.HasPrefix(string(t.Kind), "open")
}

// IsClosing reports whether the token is a closing bracket.
func (t Token) IsClosing() bool {
	return strings.HasPrefix(string(t.Kind), "close")
}

// Family returns the bracket family ("square" or "curly") for bracket
// tokens, and the empty string for every other kind.
func (t Token) Family() string {
	if !t.IsOpening() && !t.IsClosing() {
		return ""
	}
	_, family, _ := strings.Cut(string(t.Kind), "_")
	return family
}

// String renders the token in its diagnostic tuple form,
// e.g. ('open_square', '[', 0).
func (t Token) String() string {
	return fmt.Sprintf("('%s', '%s', %d)", t.Kind, t.Text, t.Pos)
}
