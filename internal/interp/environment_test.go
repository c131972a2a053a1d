package interp

import (
	"testing"

	"github.com/bolthur/bosl-go/internal/token"
)

func nameTok(name string) token.Token {
	return token.Token{Kind: token.IDENT, Lexeme: name}
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NewInt(42, I64))

	got, err := env.Get(nameTok("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Int != 42 {
		t.Errorf("got %d, want 42", got.Int)
	}
	if !got.Environment {
		t.Errorf("expected Environment flag to be set after Define")
	}
}

func TestEnvironmentGetUndefined(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(nameTok("missing"))
	if err == nil {
		t.Fatalf("expected error for undefined variable")
	}
}

func TestEnvironmentWalksEnclosingChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", NewInt(1, I64))
	inner := NewEnvironment(outer)

	got, err := inner.Get(nameTok("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Int != 1 {
		t.Errorf("got %d, want 1", got.Int)
	}
}

func TestEnvironmentAssignRebindsDefiningScope(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", NewInt(1, I64))
	inner := NewEnvironment(outer)

	if err := inner.Assign(nameTok("x"), NewInt(2, I64)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := outer.Get(nameTok("x"))
	if got.Int != 2 {
		t.Errorf("got %d, want 2 (assignment should rebind the defining scope)", got.Int)
	}
}

func TestEnvironmentAssignUndefinedFails(t *testing.T) {
	env := NewEnvironment(nil)
	if err := env.Assign(nameTok("missing"), NewInt(1, I64)); err == nil {
		t.Fatalf("expected error assigning to undefined variable")
	}
}

func TestDuplicateOnlyCopiesEnvironmentOwned(t *testing.T) {
	fresh := NewInt(5, I64)
	if Duplicate(fresh) != fresh {
		t.Errorf("expected a non-environment value to be returned unchanged")
	}

	env := NewEnvironment(nil)
	env.Define("x", NewInt(5, I64))
	owned, _ := env.Get(nameTok("x"))
	dup := Duplicate(owned)
	if dup == owned {
		t.Errorf("expected an environment-owned value to be copied")
	}
	if dup.Environment {
		t.Errorf("expected the duplicate to have Environment cleared")
	}
	if dup.Int != owned.Int {
		t.Errorf("expected the duplicate to preserve the payload")
	}
}
