// Package builtins holds illustrative example native bindings
// exercising the Registry contract of internal/interp: they are not
// part of the language itself, only a demonstration of the kind of
// callback an embedder registers through Bind.
package builtins

import (
	"fmt"
	"math"

	"github.com/bolthur/bosl-go/internal/interp"
)

// Binder is the minimal surface Register needs: anything that can bind
// a name to a NativeFunc, satisfied by both *interp.Registry and
// pkg/bosl.Engine.
type Binder interface {
	Bind(name string, fn interp.NativeFunc) error
}

// Register binds a handful of example math/string functions into b.
// A script wires one up with, e.g.:
//
//	fn sqrt(x: float): float {} = load bosl_sqrt;
func Register(b Binder) error {
	for name, fn := range map[string]interp.NativeFunc{
		"bosl_sqrt":   sqrtFunc,
		"bosl_pow":    powFunc,
		"bosl_abs":    absFunc,
		"bosl_strlen": strlenFunc,
	} {
		if err := b.Bind(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func sqrtFunc(callee *interp.Value, args []*interp.Value) (*interp.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("bosl_sqrt expects 1 argument, got %d", len(args))
	}
	_, _, f, ok := args[0].ExtractNumber()
	if !ok {
		return nil, fmt.Errorf("bosl_sqrt expects a numeric argument")
	}
	return interp.BuildReturnFloat(math.Sqrt(f)), nil
}

func powFunc(callee *interp.Value, args []*interp.Value) (*interp.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("bosl_pow expects 2 arguments, got %d", len(args))
	}
	_, _, base, ok := args[0].ExtractNumber()
	if !ok {
		return nil, fmt.Errorf("bosl_pow expects numeric arguments")
	}
	_, _, exp, ok := args[1].ExtractNumber()
	if !ok {
		return nil, fmt.Errorf("bosl_pow expects numeric arguments")
	}
	return interp.BuildReturnFloat(math.Pow(base, exp)), nil
}

func absFunc(callee *interp.Value, args []*interp.Value) (*interp.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("bosl_abs expects 1 argument, got %d", len(args))
	}
	signed, _, f, ok := args[0].ExtractNumber()
	if !ok {
		return nil, fmt.Errorf("bosl_abs expects a numeric argument")
	}
	if args[0].Kind == interp.KindFloat {
		return interp.BuildReturnFloat(math.Abs(f)), nil
	}
	if signed < 0 {
		signed = -signed
	}
	return interp.BuildReturnInt(interp.I64, signed), nil
}

func strlenFunc(callee *interp.Value, args []*interp.Value) (*interp.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("bosl_strlen expects 1 argument, got %d", len(args))
	}
	if args[0].Kind != interp.KindString {
		return nil, fmt.Errorf("bosl_strlen expects a string argument")
	}
	return interp.BuildReturnUint(interp.U64, uint64(len(args[0].Str))), nil
}
