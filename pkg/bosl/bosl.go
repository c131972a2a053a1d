// Package bosl is the embedder-facing facade over the internal
// interpreter packages: a single Engine that owns a Registry of native
// bindings across repeated Run/RunFile calls, so a host program can
// bind native callbacks once and execute several scripts against them.
package bosl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bolthur/bosl-go/internal/diag"
	"github.com/bolthur/bosl-go/internal/interp"
	"github.com/bolthur/bosl-go/internal/lexer"
	"github.com/bolthur/bosl-go/internal/parser"
)

// Value is the runtime value a native callback receives and returns.
// Re-exported so embedders never import internal/interp directly.
type Value = interp.Value

// Kind is the payload kind of a Value, re-exported for ExtractParameter
// callers that need to name an expected kind.
type Kind = interp.Kind

// The Kind constants, re-exported for convenience.
const (
	KindInt      = interp.KindInt
	KindUint     = interp.KindUint
	KindFloat    = interp.KindFloat
	KindString   = interp.KindString
	KindBool     = interp.KindBool
	KindNull     = interp.KindNull
	KindCallable = interp.KindCallable
)

// NativeFunc is the embedder-facing native callable contract: given the
// Value naming the callable and its evaluated, duplicated arguments
// (not converted to the declared parameter types), it returns a result
// Value or an error that aborts interpretation.
type NativeFunc = interp.NativeFunc

// Type re-exports the declared-type tag a Value carries, for embedders
// that build return values through the BuildReturn* helpers below.
type Type = interp.Type

// The declared-type constants, re-exported for convenience.
const (
	U8     = interp.U8
	U16    = interp.U16
	U32    = interp.U32
	U64    = interp.U64
	I8     = interp.I8
	I16    = interp.I16
	I32    = interp.I32
	I64    = interp.I64
	Float  = interp.Float
	String = interp.String
	Bool   = interp.Bool
)

// BuildReturnUint, BuildReturnInt, BuildReturnFloat, BuildReturnString
// and BuildReturnBool build a Value of the given declared Type holding
// data, for a native function to return. They mirror the original
// runtime's bosl_binding_build_return_* helpers.
func BuildReturnUint(t Type, data uint64) *Value { return interp.BuildReturnUint(t, data) }
func BuildReturnInt(t Type, data int64) *Value   { return interp.BuildReturnInt(t, data) }
func BuildReturnFloat(data float64) *Value       { return interp.BuildReturnFloat(data) }
func BuildReturnString(data string) *Value       { return interp.BuildReturnString(data) }
func BuildReturnBool(data bool) *Value           { return interp.BuildReturnBool(data) }

// ExtractParameter validates that args has at least idx+1 entries and,
// when kinds is non-empty, that args[idx] carries one of the given
// kinds, returning it or an error a native function can return
// unmodified. This mirrors the original runtime's parameter-extraction
// helpers in binding.c, which abort the call on an out-of-range index
// or a kind mismatch rather than letting the callback read a zero
// value silently.
func ExtractParameter(args []*Value, idx int, kinds ...Kind) (*Value, error) {
	if idx < 0 || idx >= len(args) {
		return nil, fmt.Errorf("parameter %d out of range (got %d arguments)", idx, len(args))
	}
	arg := args[idx]
	if len(kinds) == 0 {
		return arg, nil
	}
	for _, k := range kinds {
		if arg.Kind == k {
			return arg, nil
		}
	}
	return nil, fmt.Errorf("parameter %d has unexpected kind", idx)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithStdout redirects print() output to w instead of os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// Engine is the embedder-facing interpreter instance: a Registry of
// native bindings, reused across calls to Run and RunFile. Each call
// parses and interprets its source against a fresh global Environment,
// so scripts do not see state left over from a previous Run call, but
// native bindings persist across calls.
type Engine struct {
	registry *interp.Registry
	out      io.Writer
}

// New creates an Engine with an empty binding registry, printing
// script output to os.Stdout unless overridden by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: interp.NewRegistry(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Bind registers fn under name so scripts can call it through a
// `fn NAME(...) : TYPE {} = load name;` declaration. Rebinding an
// already-bound name is rejected.
func (e *Engine) Bind(name string, fn NativeFunc) error {
	return e.registry.Bind(name, fn)
}

// Unbind removes name from the registry.
func (e *Engine) Unbind(name string) {
	e.registry.Unbind(name)
}

// Run parses and interprets source, returning an error describing the
// first scan, parse or runtime diagnostic, if any.
func (e *Engine) Run(source string) error {
	var diagBuf bytes.Buffer
	sink := diag.New(&diagBuf)

	p := parser.New(lexer.New(source), sink)
	prog := p.ParseProgram()
	if p.HadError() {
		return fmt.Errorf("%s", strings.TrimRight(diagBuf.String(), "\r\n"))
	}

	it := interp.New(e.out, e.registry, sink)
	it.Run(prog)
	if it.HadError() {
		return fmt.Errorf("%s", strings.TrimRight(diagBuf.String(), "\r\n"))
	}
	return nil
}

// RunFile reads path and runs its contents, wrapping read failures in
// an error that names the file.
func (e *Engine) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return e.Run(string(data))
}
