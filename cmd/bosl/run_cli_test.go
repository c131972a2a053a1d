package main_test

import (
	"os/exec"
	"strings"
	"testing"
)

// buildBinary compiles the bosl CLI once per test run.
func buildBinary(t *testing.T) string {
	t.Helper()
	binary := t.TempDir() + "/bosl"
	build := exec.Command("go", "build", "-o", binary, ".")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build bosl: %v\n%s", err, out)
	}
	return binary
}

func TestRunInlineExpression(t *testing.T) {
	binary := buildBinary(t)
	out, err := exec.Command(binary, "run", "-e", "print(1 + 2 * 3);").CombinedOutput()
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if strings.TrimSpace(string(out)) != "7" {
		t.Errorf("got %q, want \"7\"", out)
	}
}

func TestRunReportsNonZeroExitOnRuntimeError(t *testing.T) {
	binary := buildBinary(t)
	cmd := exec.Command(binary, "run", "-e", "print(missing);")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected a non-zero exit code, output: %s", out)
	}
	if !strings.Contains(string(out), "Undefined variable") {
		t.Errorf("expected undefined-variable diagnostic, got %q", out)
	}
}

func TestParseDumpAST(t *testing.T) {
	binary := buildBinary(t)
	out, err := exec.Command(binary, "parse", "-e", "let a : int32 = 1;").CombinedOutput()
	if err != nil {
		t.Fatalf("parse failed: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "VarDecl a : int32") {
		t.Errorf("expected AST dump to mention the declared variable, got %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	binary := buildBinary(t)
	out, err := exec.Command(binary, "version").CombinedOutput()
	if err != nil {
		t.Fatalf("version failed: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "bosl version") {
		t.Errorf("expected version banner, got %q", out)
	}
}
