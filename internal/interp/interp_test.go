package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bolthur/bosl-go/internal/diag"
	"github.com/bolthur/bosl-go/internal/lexer"
	"github.com/bolthur/bosl-go/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// run lexes, parses and interprets src against a fresh Interpreter,
// returning its stdout and the first diagnostic message (if any).
func run(t *testing.T, src string, registry *Registry) (string, string) {
	t.Helper()
	var diagBuf bytes.Buffer
	p := parser.New(lexer.New(src), diag.New(&diagBuf))
	prog := p.ParseProgram()
	if p.HadError() {
		return "", diagBuf.String()
	}
	if registry == nil {
		registry = NewRegistry()
	}
	var out bytes.Buffer
	interp := New(&out, registry, diag.New(&diagBuf))
	interp.Run(prog)
	return out.String(), diagBuf.String()
}

func TestArithmeticAndPrint(t *testing.T) {
	out, errOut := run(t, `
		let a : int32 = 2;
		let b : int32 = 3;
		print(a + b * 2);
	`, nil)
	if errOut != "" {
		t.Fatalf("unexpected error: %s", errOut)
	}
	if strings.TrimSpace(out) != "8" {
		t.Errorf("got %q, want \"8\"", out)
	}
}

func TestConstantProtection(t *testing.T) {
	_, errOut := run(t, `
		const PI : float = 3.0;
		PI = 4.0;
	`, nil)
	if !strings.Contains(errOut, "Change a constant is not allowed.") {
		t.Errorf("expected constant-protection error, got %q", errOut)
	}
}

func TestLoopWithBreak(t *testing.T) {
	out, errOut := run(t, `
		let i : int32 = 0;
		while (true) {
			print(i);
			i = i + 1;
			if (i == 3) {
				break;
			}
		}
	`, nil)
	if errOut != "" {
		t.Fatalf("unexpected error: %s", errOut)
	}
	want := "0\r\n1\r\n2\r\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestFunctionCallAndClosure(t *testing.T) {
	out, errOut := run(t, `
		fn makeAdder(x: int32): int32 {
			return x;
		}
		let result : int32 = makeAdder(5) + makeAdder(7);
		print(result);
	`, nil)
	if errOut != "" {
		t.Fatalf("unexpected error: %s", errOut)
	}
	if strings.TrimSpace(out) != "12" {
		t.Errorf("got %q, want \"12\"", out)
	}
}

func TestNativeBinding(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Bind("double_it", func(callee *Value, args []*Value) (*Value, error) {
		return BuildReturnInt(I64, args[0].Int*2), nil
	}); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	out, errOut := run(t, `
		fn doubleIt(x: int64): int64 {} = load double_it;
		print(doubleIt(21));
	`, registry)
	if errOut != "" {
		t.Fatalf("unexpected error: %s", errOut)
	}
	if strings.TrimSpace(out) != "42" {
		t.Errorf("got %q, want \"42\"", out)
	}
}

func TestRangeError(t *testing.T) {
	_, errOut := run(t, `
		let a : uint8 = 300;
	`, nil)
	if !strings.Contains(errOut, "Range error") {
		t.Errorf("expected range error, got %q", errOut)
	}
}

func TestUndefinedVariable(t *testing.T) {
	_, errOut := run(t, `print(missing);`, nil)
	if !strings.Contains(errOut, "Undefined variable.") {
		t.Errorf("expected undefined-variable error, got %q", errOut)
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	out, errOut := run(t, `
		let a : bool = false;
		let b : bool = true;
		print(a && b);
		print(a || b);
	`, nil)
	if errOut != "" {
		t.Fatalf("unexpected error: %s", errOut)
	}
	want := "false\r\ntrue\r\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestShiftOutOfRange(t *testing.T) {
	_, errOut := run(t, `
		let a : uint8 = 1;
		let b : uint8 = 9;
		print(a << b);
	`, nil)
	if !strings.Contains(errOut, "Bit amount to shift") {
		t.Errorf("expected shift-range error, got %q", errOut)
	}
}

// TestFibonacciProgramSnapshot golden-files the stdout of a
// representative recursive program.
func TestFibonacciProgramSnapshot(t *testing.T) {
	out, errOut := run(t, `
		fn fib(n: int32): int32 {
			if (n < 2) {
				return n;
			}
			return fib(n - 1) + fib(n - 2);
		}

		let i : int32 = 0;
		while (i < 10) {
			print(fib(i));
			i = i + 1;
		}
	`, nil)
	if errOut != "" {
		t.Fatalf("unexpected error: %s", errOut)
	}
	snaps.MatchSnapshot(t, out)
}
