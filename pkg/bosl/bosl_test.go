package bosl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bolthur/bosl-go/pkg/bosl"
)

func TestEngineRunPrintsToConfiguredWriter(t *testing.T) {
	var out bytes.Buffer
	engine := bosl.New(bosl.WithStdout(&out))

	if err := engine.Run(`
		let a : int32 = 2;
		let b : int32 = 3;
		print(a + b);
	`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "5" {
		t.Errorf("got %q, want \"5\"", out.String())
	}
}

func TestEngineRunReportsParseError(t *testing.T) {
	engine := bosl.New()
	err := engine.Run(`let a :;`)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestEngineRunReportsRuntimeError(t *testing.T) {
	engine := bosl.New()
	err := engine.Run(`print(missing);`)
	if err == nil || !strings.Contains(err.Error(), "Undefined variable") {
		t.Fatalf("expected undefined-variable error, got %v", err)
	}
}

func TestEngineBindAndCallNativeFunction(t *testing.T) {
	var out bytes.Buffer
	engine := bosl.New(bosl.WithStdout(&out))

	err := engine.Bind("double_it", func(callee *bosl.Value, args []*bosl.Value) (*bosl.Value, error) {
		arg, err := bosl.ExtractParameter(args, 0, bosl.KindInt)
		if err != nil {
			return nil, err
		}
		return bosl.BuildReturnInt(bosl.I64, arg.Int*2), nil
	})
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	if err := engine.Run(`
		fn doubleIt(x: int64): int64 {} = load double_it;
		print(doubleIt(21));
	`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "42" {
		t.Errorf("got %q, want \"42\"", out.String())
	}
}

func TestEngineRebindingRejected(t *testing.T) {
	engine := bosl.New()
	noop := func(callee *bosl.Value, args []*bosl.Value) (*bosl.Value, error) {
		return bosl.BuildReturnBool(true), nil
	}
	if err := engine.Bind("dup", noop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := engine.Bind("dup", noop); err == nil {
		t.Fatalf("expected error rebinding an already-bound name")
	}
}

func TestEngineBindingsPersistAcrossRunCalls(t *testing.T) {
	var out bytes.Buffer
	engine := bosl.New(bosl.WithStdout(&out))

	if err := engine.Bind("answer", func(callee *bosl.Value, args []*bosl.Value) (*bosl.Value, error) {
		return bosl.BuildReturnInt(bosl.I64, 42), nil
	}); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	script := `
		fn answer(): int64 {} = load answer;
		print(answer());
	`
	if err := engine.Run(script); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := engine.Run(script); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != "42\r\n42" {
		t.Errorf("got %q, want two runs of \"42\"", out.String())
	}
}
