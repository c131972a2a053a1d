// Package interp implements the tree-walking evaluator: the runtime
// Value representation, lexical Environment, the native Binding
// Registry, and the Interpreter that drives evaluation of an
// internal/ast.Program.
package interp

import (
	"fmt"
	"strconv"

	"github.com/bolthur/bosl-go/internal/ast"
	"github.com/bolthur/bosl-go/internal/token"
)

// Type is the declared type of a Value: the width/signedness tag
// carried alongside the widened runtime payload.
type Type int

const (
	Undefined Type = iota
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	Float
	String
	Bool
)

var typeNames = map[Type]string{
	Undefined: "undefined",
	U8:        "uint8", U16: "uint16", U32: "uint32", U64: "uint64",
	I8: "int8", I16: "int16", I32: "int32", I64: "int64",
	Float: "float", String: "string", Bool: "bool",
}

func (t Type) String() string { return typeNames[t] }

// TypeFromToken maps a TYPE_IDENT lexeme to its Type, or Undefined if
// unknown.
func TypeFromToken(tok token.Token) Type {
	switch tok.Lexeme {
	case "uint8":
		return U8
	case "uint16":
		return U16
	case "uint32":
		return U32
	case "uint64":
		return U64
	case "int8":
		return I8
	case "int16":
		return I16
	case "int32":
		return I32
	case "int64":
		return I64
	case "float":
		return Float
	case "string":
		return String
	case "bool":
		return Bool
	case "void":
		return Undefined
	default:
		return Undefined
	}
}

// widthOf returns the bit width of an integer Type, used by shift
// evaluation to bound the shift amount.
func widthOf(t Type) (bits int, ok bool) {
	switch t {
	case U8, I8:
		return 8, true
	case U16, I16:
		return 16, true
	case U32, I32:
		return 32, true
	case U64, I64:
		return 64, true
	default:
		return 0, false
	}
}

func isSigned(t Type) bool {
	switch t {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

func isUnsigned(t Type) bool {
	switch t {
	case U8, U16, U32, U64:
		return true
	default:
		return false
	}
}

func isInteger(t Type) bool { return isSigned(t) || isUnsigned(t) }

// Kind distinguishes the payload actually stored, orthogonal to the
// declared Type: a signed-int-kind value may be declared I8 or I64,
// but its payload always lives in the Int field.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindFloat
	KindString
	KindBool
	KindNull
	KindCallable
)

// Callable is either a script function (Body set on Decl, Closure
// non-nil) or a native binding, resolved through the Registry by
// Decl.LoadID at call time.
type Callable struct {
	Decl    *ast.FunctionDecl
	Closure *Environment
}

// Value is the single runtime representation for every bosl value:
// a tagged union of payload (Kind) plus a declared Type, plus the
// control-flow and ownership flags that ride along with it through
// statement execution.
//
// Environment is set by Environment.Define when a value is bound into
// scope, and Constant by a const declaration; Environment marks "this
// *Value is owned by a scope slot" and must be copied (Duplicate) before an
// evaluator hands it somewhere a later mutation of the scope slot
// must not retroactively affect.
type Value struct {
	Kind Kind
	Type Type

	Int   int64
	Uint  uint64
	Float float64
	Str   string
	Bool  bool
	Fn    *Callable

	Constant    bool
	Environment bool
	IsReturn    bool
	IsBreak     bool
	IsContinue  bool
}

func NewInt(v int64, t Type) *Value    { return &Value{Kind: KindInt, Type: t, Int: v} }
func NewUint(v uint64, t Type) *Value  { return &Value{Kind: KindUint, Type: t, Uint: v} }
func NewFloat(v float64) *Value        { return &Value{Kind: KindFloat, Type: Float, Float: v} }
func NewString(v string) *Value        { return &Value{Kind: KindString, Type: String, Str: v} }
func NewBool(v bool) *Value            { return &Value{Kind: KindBool, Type: Bool, Bool: v} }
func NewNull() *Value                  { return &Value{Kind: KindNull, Type: Undefined} }
func NewCallable(c *Callable) *Value   { return &Value{Kind: KindCallable, Type: Undefined, Fn: c} }

// Duplicate returns v unchanged if it is not environment-owned, or a
// shallow copy with Environment cleared otherwise. Every other flag
// (Constant, IsReturn, IsBreak, IsContinue) is preserved across the
// copy, matching the duplicate-if-environment contract.
func Duplicate(v *Value) *Value {
	if v == nil || !v.Environment {
		return v
	}
	dup := *v
	dup.Environment = false
	return &dup
}

// Truthy reports whether v counts as true in a condition: null (and a
// nil *Value) is false, a Bool is its own value, and every other value
// is true.
func (v *Value) Truthy() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNull:
		return false
	default:
		return true
	}
}

// ExtractNumber reads v's numeric payload as all three widened forms,
// mirroring how the binary-op and assignment machinery need a signed,
// unsigned and floating view of the same value regardless of which
// one is actually stored. ok is false for non-numeric values.
func (v *Value) ExtractNumber() (signed int64, unsigned uint64, f float64, ok bool) {
	switch v.Kind {
	case KindInt:
		return v.Int, uint64(v.Int), float64(v.Int), true
	case KindUint:
		return int64(v.Uint), v.Uint, float64(v.Uint), true
	case KindFloat:
		return int64(v.Float), uint64(v.Float), v.Float, true
	default:
		return 0, 0, 0, false
	}
}

// maskInt clips a signed payload to the bit width of t, sign-extending
// the result, matching the C runtime's cast-to-declared-width before
// formatting.
func maskInt(n int64, t Type) int64 {
	switch t {
	case I8:
		return int64(int8(n))
	case I16:
		return int64(int16(n))
	case I32:
		return int64(int32(n))
	default:
		return n
	}
}

func maskUint(n uint64, t Type) uint64 {
	switch t {
	case U8:
		return uint64(uint8(n))
	case U16:
		return uint64(uint16(n))
	case U32:
		return uint64(uint32(n))
	default:
		return n
	}
}

// Stringify renders v the way print() and narrowing-assignment range
// checks do: per declared Type, width-clipped for fixed-size
// integers, "true"/"false" for bool, "null" for the null value and
// "<fn NAME>" for callables.
func (v *Value) Stringify() string {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(maskInt(v.Int, v.Type), 10)
	case KindUint:
		return strconv.FormatUint(maskUint(v.Uint, v.Type), 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', 6, 64)
	case KindString:
		return v.Str
	case KindNull:
		return "null"
	case KindCallable:
		name := "?"
		if v.Fn != nil && v.Fn.Decl != nil {
			name = v.Fn.Decl.Name.Lexeme
		}
		return fmt.Sprintf("<fn %s>", name)
	default:
		return ""
	}
}
