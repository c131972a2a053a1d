package parser

import (
	"testing"

	"github.com/bolthur/bosl-go/internal/ast"
	"github.com/bolthur/bosl-go/internal/diag"
	"github.com/bolthur/bosl-go/internal/lexer"
)

func parse(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	p := New(lexer.New(src), diag.Discard())
	prog := p.ParseProgram()
	return prog, p
}

func TestParseVarDecl(t *testing.T) {
	prog, p := parse(t, `let a : uint32 = 3;`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	v, ok := prog.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.VarDecl", prog.Statements[0])
	}
	if v.Name.Lexeme != "a" || v.TypeTok.Lexeme != "uint32" {
		t.Errorf("got %+v", v)
	}
}

func TestParseConstRequiresInitializer(t *testing.T) {
	_, p := parse(t, `const PI : float;`)
	if !p.HadError() {
		t.Fatalf("expected parse error for missing initializer")
	}
}

func TestParseFunctionDecl(t *testing.T) {
	prog, p := parse(t, `fn adder(x: int32): int32 { return x + 1; }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	fn, ok := prog.Statements[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDecl", prog.Statements[0])
	}
	if fn.Body == nil || fn.LoadID.Lexeme != "" {
		t.Errorf("expected body-only function, got %+v", fn)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name.Lexeme != "x" {
		t.Errorf("got params %+v", fn.Params)
	}
}

func TestParseNativeBoundFunction(t *testing.T) {
	prog, p := parse(t, `fn c_foo2(): int8 {} = load c_foo2;`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	fn := prog.Statements[0].(*ast.FunctionDecl)
	if fn.Body != nil {
		t.Errorf("expected no body for native-bound function")
	}
	if fn.LoadID.Lexeme != "c_foo2" {
		t.Errorf("got load id %q", fn.LoadID.Lexeme)
	}
}

func TestParseNestedFunctionRejected(t *testing.T) {
	_, p := parse(t, `fn a(): void { fn b(): void {} }`)
	if !p.HadError() {
		t.Fatalf("expected error for nested function declaration")
	}
}

func TestParseReturnOutsideFunctionRejected(t *testing.T) {
	_, p := parse(t, `return 1;`)
	if !p.HadError() {
		t.Fatalf("expected error for return outside function")
	}
}

func TestParsePrecedence(t *testing.T) {
	prog, p := parse(t, `let a : bool = 1 + 2 * 3 == 7 && true;`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	v := prog.Statements[0].(*ast.VarDecl)
	logical, ok := v.Initializer.(*ast.Logical)
	if !ok {
		t.Fatalf("expected top-level Logical, got %T", v.Initializer)
	}
	if logical.Op.Lexeme != "&&" {
		t.Errorf("got op %q", logical.Op.Lexeme)
	}
	eq, ok := logical.Left.(*ast.Binary)
	if !ok || eq.Op.Lexeme != "==" {
		t.Fatalf("expected == on the left of &&, got %#v", logical.Left)
	}
}

func TestParseNumberClassification(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.LiteralKind
	}{
		{`let a : int32 = 42;`, ast.LitInt},
		{`let a : int32 = 0x2A;`, ast.LitHex},
		{`let a : float = 4.2;`, ast.LitFloat},
	}
	for _, tt := range tests {
		prog, p := parse(t, tt.src)
		if p.HadError() {
			t.Fatalf("%s: unexpected parse error", tt.src)
		}
		lit := prog.Statements[0].(*ast.VarDecl).Initializer.(*ast.Literal)
		if lit.Kind != tt.kind {
			t.Errorf("%s: got kind %v, want %v", tt.src, lit.Kind, tt.kind)
		}
	}
}

func TestParsePointerAndLoadExpressionsParse(t *testing.T) {
	_, p := parse(t, `let a : int32 = pointer b;`)
	if p.HadError() {
		t.Fatalf("pointer expression should parse: unexpected error")
	}
	_, p = parse(t, `let a : int32 = load b;`)
	if p.HadError() {
		t.Fatalf("load expression should parse: unexpected error")
	}
}

func TestParseFirstErrorAbortsParse(t *testing.T) {
	_, p := parse(t, `let a int32 = 1;`) // missing ':'
	if !p.HadError() {
		t.Fatalf("expected parse error")
	}
}
