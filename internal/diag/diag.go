// Package diag implements the pluggable diagnostic sink through which
// the scanner, parser and interpreter report failures. It is the single
// collaborator every stage calls into when it aborts: a replaceable
// function receiving a token and a formatted message.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/bolthur/bosl-go/internal/token"
)

// Sink receives a formatted diagnostic for the given token. The token's
// Kind determines whether the location is rendered as "at end", "at
// '<lexeme>'", or omitted (for scanner ILLEGAL tokens, whose lexeme is
// itself the message).
type Sink func(tok token.Token, message string)

// New returns the default sink: it writes
// "[line L] Error[ at '<lexeme>' | at end]: <message>\r\n" to w.
func New(w io.Writer) Sink {
	return func(tok token.Token, message string) {
		fmt.Fprintf(w, "[line %d] Error", tok.Line)
		switch tok.Kind {
		case token.EOF:
			fmt.Fprint(w, " at end")
		case token.ILLEGAL:
			// the lexeme already is a diagnostic message; no location suffix
		default:
			fmt.Fprintf(w, " at '%s'", tok.Lexeme)
		}
		fmt.Fprintf(w, ": %s\r\n", message)
	}
}

// Default is the sink used when no other is configured: stderr, via New.
func Default() Sink { return New(os.Stderr) }

// Discard silently drops every diagnostic; useful for tests that only
// care about the resulting error flag, not the formatted text.
func Discard() Sink { return func(token.Token, string) {} }
