package interp

import (
	"fmt"

	"github.com/bolthur/bosl-go/internal/token"
)

// Environment is a lexical scope: a flat name table plus a link to
// the enclosing scope it falls back to, mirroring the enclosing-chain
// walk of the original environment.c.
type Environment struct {
	values    map[string]*Value
	enclosing *Environment
}

// NewEnvironment creates a scope chained to enclosing, or a root scope
// when enclosing is nil.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]*Value), enclosing: enclosing}
}

// Define binds name to v in this scope, marking v as environment-owned.
// A redefinition in the same scope silently replaces the prior slot.
func (e *Environment) Define(name string, v *Value) {
	v.Environment = true
	e.values[name] = v
}

// Get resolves name by walking the enclosing chain outward, returning
// "Undefined variable." if no scope defines it.
func (e *Environment) Get(name token.Token) (*Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable.")
}

// Assign rebinds name in whichever scope in the chain already defines
// it, walking outward; "Undefined variable." if none does.
func (e *Environment) Assign(name token.Token, v *Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.Define(name.Lexeme, v)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return fmt.Errorf("Undefined variable.")
}
