package builtins_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bolthur/bosl-go/internal/diag"
	"github.com/bolthur/bosl-go/internal/interp"
	"github.com/bolthur/bosl-go/internal/interp/builtins"
	"github.com/bolthur/bosl-go/internal/lexer"
	"github.com/bolthur/bosl-go/internal/parser"
)

func TestBuiltinsRegisterAndRun(t *testing.T) {
	registry := interp.NewRegistry()
	if err := builtins.Register(registry); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	src := `
		fn sqrt(x: float): float {} = load bosl_sqrt;
		fn abs(x: int64): int64 {} = load bosl_abs;
		fn strlen(s: string): uint64 {} = load bosl_strlen;
		print(sqrt(9.0));
		print(abs(-5));
		print(strlen("hello"));
	`
	var diagBuf bytes.Buffer
	p := parser.New(lexer.New(src), diag.New(&diagBuf))
	prog := p.ParseProgram()
	if p.HadError() {
		t.Fatalf("unexpected parse error: %s", diagBuf.String())
	}

	var out bytes.Buffer
	it := interp.New(&out, registry, diag.New(&diagBuf))
	it.Run(prog)
	if it.HadError() {
		t.Fatalf("unexpected runtime error: %s", diagBuf.String())
	}

	want := "3.000000\r\n5\r\n5"
	if strings.TrimSpace(out.String()) != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestRegisterRejectsConflictWithExistingBinding(t *testing.T) {
	registry := interp.NewRegistry()
	if err := registry.Bind("bosl_sqrt", func(*interp.Value, []*interp.Value) (*interp.Value, error) {
		return interp.NewNull(), nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := builtins.Register(registry); err == nil {
		t.Fatalf("expected Register to fail when bosl_sqrt is already bound")
	}
}
