package validator

import (
	"errors"
	"fmt"
	"io"

	"github.com/Protocol-Lattice/jsonval/token"
)

// TokenSource yields tokens one at a time and returns io.EOF once the
// stream is exhausted. *lexer.Lexer satisfies it.
type TokenSource interface {
	Next() (token.Token, error)
}

// Error reports a bracket token with no partner in the stream.
type Error struct {
	Token       token.Token // The offending bracket token
	MissingOpen bool        // True: Token is a closer with no opener; false: Token was never closed
}

func (e *Error) Error() string {
	if e.MissingOpen {
		return fmt.Sprintf("no opening token for %s", e.Token)
	}
	return fmt.Sprintf("no closing token for %s", e.Token)
}

// Validate checks that brackets in the token stream are matched and
// correctly nested. Opening brackets are pushed on a stack, each closing
// bracket must pop an opener of the same family, and every opener must be
// popped by the end of the stream. Any non-EOF error from the source
// aborts validation and is returned as is.
func Validate(src TokenSource) error {
	var stack []token.Token
	for {
		tok, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		switch {
		case tok.IsOpening():
			stack = append(stack, tok)
		case tok.IsClosing():
			if len(stack) == 0 || stack[len(stack)-1].Family() != tok.Family() {
				return &Error{Token: tok, MissingOpen: true}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		// Report the outermost opener that was never closed.
		return &Error{Token: stack[0]}
	}
	return nil
}
