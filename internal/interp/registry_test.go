package interp

import "testing"

func TestRegistryBindAndLookup(t *testing.T) {
	r := NewRegistry()
	called := false
	err := r.Bind("hello", func(callee *Value, args []*Value) (*Value, error) {
		called = true
		return NewNull(), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn, ok := r.Lookup("hello")
	if !ok {
		t.Fatalf("expected binding to be found")
	}
	if _, err := fn(nil, nil); err != nil {
		t.Fatalf("unexpected error calling bound function: %v", err)
	}
	if !called {
		t.Errorf("expected bound function to run")
	}
}

func TestRegistryRejectsDuplicateBind(t *testing.T) {
	r := NewRegistry()
	noop := func(callee *Value, args []*Value) (*Value, error) { return NewNull(), nil }
	if err := r.Bind("dup", noop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Bind("dup", noop); err == nil {
		t.Fatalf("expected error rebinding an already-bound name")
	}
}

func TestRegistryUnbindThenLookupFails(t *testing.T) {
	r := NewRegistry()
	noop := func(callee *Value, args []*Value) (*Value, error) { return NewNull(), nil }
	_ = r.Bind("x", noop)
	r.Unbind("x")
	if _, ok := r.Lookup("x"); ok {
		t.Errorf("expected lookup to fail after unbind")
	}
}

func TestRegistryUnbindMissingIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Unbind("never-bound")
}
