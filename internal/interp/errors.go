package interp

import (
	"fmt"

	"github.com/bolthur/bosl-go/internal/token"
)

// runtimeError carries the failing token alongside the message so the
// Interpreter can report it through its diag.Sink at the point it is
// first observed, then unwind.
type runtimeError struct {
	tok token.Token
	msg string
}

func (e *runtimeError) Error() string { return e.msg }

func newRuntimeError(tok token.Token, format string, args ...interface{}) *runtimeError {
	return &runtimeError{tok: tok, msg: fmt.Sprintf(format, args...)}
}
