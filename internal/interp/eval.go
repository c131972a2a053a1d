package interp

import (
	"math"
	"strconv"
	"strings"

	"github.com/bolthur/bosl-go/internal/ast"
	"github.com/bolthur/bosl-go/internal/token"
)

// eval evaluates an expression to a Value, or returns nil after
// raising a runtime error. Callers must check HadError, not just a
// nil result, since a Grouping around a well-formed null literal also
// yields a non-nil Value of Kind Null.
func (i *Interpreter) eval(e ast.Expression) *Value {
	if i.hadError || e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ast.Literal:
		return i.evalLiteral(n)
	case *ast.Grouping:
		return i.eval(n.Inner)
	case *ast.Variable:
		v, err := i.env.Get(n.Name)
		if err != nil {
			i.raise(n.Name, "%s", err.Error())
			return nil
		}
		return v
	case *ast.Assign:
		return i.evalAssign(n)
	case *ast.Unary:
		return i.evalUnary(n)
	case *ast.Binary:
		return i.evalBinary(n)
	case *ast.Logical:
		return i.evalLogical(n)
	case *ast.Call:
		return i.evalCall(n)
	case *ast.Load:
		i.raise(n.Keyword, "Not implemented statement")
		return nil
	case *ast.Pointer:
		i.raise(n.Keyword, "Not implemented statement")
		return nil
	default:
		i.raise(token.Token{}, "Unknown expression.")
		return nil
	}
}

func (i *Interpreter) evalLiteral(n *ast.Literal) *Value {
	switch n.Kind {
	case ast.LitBool:
		return NewBool(n.Bytes == "true")
	case ast.LitNull:
		return NewNull()
	case ast.LitString:
		return NewString(n.Bytes)
	case ast.LitInt:
		v, err := strconv.ParseInt(n.Bytes, 10, 64)
		if err != nil {
			i.raise(n.Token, "Unable to extract value number.")
			return nil
		}
		return NewInt(v, I64)
	case ast.LitHex:
		lexeme := strings.TrimPrefix(strings.TrimPrefix(n.Bytes, "0x"), "0X")
		v, err := strconv.ParseUint(lexeme, 16, 64)
		if err != nil {
			i.raise(n.Token, "Unable to extract value number.")
			return nil
		}
		return NewUint(v, U64)
	case ast.LitFloat:
		v, err := strconv.ParseFloat(n.Bytes, 64)
		if err != nil {
			i.raise(n.Token, "Unable to extract value number.")
			return nil
		}
		return NewFloat(v)
	default:
		i.raise(n.Token, "Unsupported object type in literal.")
		return nil
	}
}

func (i *Interpreter) evalAssign(n *ast.Assign) *Value {
	v := i.eval(n.Value)
	if i.hadError {
		return nil
	}
	v = Duplicate(v)
	existing, err := i.env.Get(n.Target)
	if err != nil {
		i.raise(n.Target, "%s", err.Error())
		return nil
	}
	if existing.Constant {
		i.raise(n.Target, "Change a constant is not allowed.")
		return nil
	}
	if !i.coerce(n.Target, existing.Type, v) {
		return nil
	}
	i.env.Assign(n.Target, v)
	return v
}

func (i *Interpreter) evalLogical(n *ast.Logical) *Value {
	left := i.eval(n.Left)
	if i.hadError {
		return nil
	}
	if n.Op.Lexeme == "||" {
		if left.Truthy() {
			return left
		}
	} else {
		if !left.Truthy() {
			return left
		}
	}
	return i.eval(n.Right)
}

func (i *Interpreter) evalUnary(n *ast.Unary) *Value {
	right := i.eval(n.Right)
	if i.hadError {
		return nil
	}
	switch n.Op.Lexeme {
	case "!":
		return NewBool(!right.Truthy())
	case "-":
		return i.evalNegate(n.Op, right)
	case "+":
		if right.Kind != KindInt && right.Kind != KindUint && right.Kind != KindFloat {
			i.raise(n.Op, "Expect numeric")
			return nil
		}
		return right
	case "~":
		if right.Kind != KindInt && right.Kind != KindUint {
			i.raise(n.Op, "Expect numeric integer")
			return nil
		}
		if right.Kind == KindUint {
			return NewUint(^right.Uint, U64)
		}
		return NewInt(^right.Int, I64)
	default:
		i.raise(n.Op, "Unknown unary token.")
		return nil
	}
}

func (i *Interpreter) evalNegate(op token.Token, right *Value) *Value {
	if right.Kind != KindInt && right.Kind != KindUint && right.Kind != KindFloat {
		i.raise(op, "Expect numeric")
		return nil
	}
	if right.Kind == KindUint {
		if right.Environment && !isSigned(right.Type) {
			i.raise(op, "Expected signed variable.")
			return nil
		}
		right = NewInt(int64(right.Uint), I64)
	}
	if right.Kind == KindFloat {
		return NewFloat(-right.Float)
	}
	return NewInt(-right.Int, I64)
}

func (i *Interpreter) evalCall(n *ast.Call) *Value {
	callee := i.eval(n.Callee)
	if i.hadError {
		return nil
	}
	if callee.Kind != KindCallable {
		i.raise(n.Paren, "Not a callable function.")
		return nil
	}
	args := make([]*Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		arg := i.eval(argExpr)
		if i.hadError {
			return nil
		}
		args = append(args, Duplicate(arg))
	}
	decl := callee.Fn.Decl
	if len(args) != len(decl.Params) {
		i.raise(n.Paren, "Argument mismatch, to less or much parameters passed.")
		return nil
	}

	if decl.Body == nil {
		fn, ok := i.registry.Lookup(decl.LoadID.Lexeme)
		if !ok {
			i.raise(n.Paren, "Undefined variable.")
			return nil
		}
		result, err := fn(callee, args)
		if err != nil {
			i.raise(n.Paren, "%s", err.Error())
			return nil
		}
		if result == nil {
			result = NewNull()
		}
		return result
	}

	callEnv := NewEnvironment(callee.Fn.Closure)
	for idx, param := range decl.Params {
		arg := args[idx]
		if !i.coerce(param.Name, TypeFromToken(param.TypeTok), arg) {
			return nil
		}
		callEnv.Define(param.Name.Lexeme, arg)
	}
	ctrl := i.execBlock(decl.Body, callEnv)
	if i.hadError {
		return nil
	}
	if ctrl != nil && ctrl.IsReturn {
		ctrl.IsReturn = false
		if !i.coerce(decl.ReturnType, TypeFromToken(decl.ReturnType), ctrl) {
			return nil
		}
		return ctrl
	}
	return NewNull()
}

func (i *Interpreter) evalBinary(n *ast.Binary) *Value {
	left := i.eval(n.Left)
	if i.hadError {
		return nil
	}
	right := i.eval(n.Right)
	if i.hadError {
		return nil
	}

	switch n.Op.Lexeme {
	case "==":
		return objectEqual(left, right, false)
	case "!=":
		return objectEqual(left, right, true)
	case "<<", ">>":
		return i.evalShift(n.Op, left, right)
	}

	kind := left.Kind
	if left.Kind != right.Kind {
		switch {
		case left.Kind == KindInt:
			kind = KindInt
		case right.Kind == KindInt:
			kind = KindInt
		default:
			i.raise(n.Op, "Different types for binary.")
			return nil
		}
	}

	ls, lu, lf, lok := left.ExtractNumber()
	rs, ru, rf, rok := right.ExtractNumber()
	if !lok || !rok {
		i.raise(n.Op, "Number extraction failed.")
		return nil
	}

	switch n.Op.Lexeme {
	case "+", "-", "*", "/", "%":
		return i.evalArith(n.Op, kind, ls, lu, lf, rs, ru, rf)
	case ">", ">=", "<", "<=":
		return i.evalCompare(n.Op, kind, ls, lu, lf, rs, ru, rf)
	default:
		i.raise(n.Op, "Unknown binary token.")
		return nil
	}
}

func (i *Interpreter) evalArith(op token.Token, kind Kind, ls int64, lu uint64, lf float64, rs int64, ru uint64, rf float64) *Value {
	switch kind {
	case KindFloat:
		switch op.Lexeme {
		case "+":
			return NewFloat(lf + rf)
		case "-":
			return NewFloat(lf - rf)
		case "*":
			return NewFloat(lf * rf)
		case "/":
			return NewFloat(lf / rf)
		case "%":
			return NewFloat(math.Mod(lf, rf))
		}
	case KindUint:
		switch op.Lexeme {
		case "+":
			return NewUint(lu+ru, U64)
		case "-":
			return NewUint(lu-ru, U64)
		case "*":
			return NewUint(lu*ru, U64)
		case "/":
			if ru == 0 {
				i.raise(op, "Division by zero.")
				return nil
			}
			return NewUint(lu/ru, U64)
		case "%":
			if ru == 0 {
				i.raise(op, "Division by zero.")
				return nil
			}
			return NewUint(lu%ru, U64)
		}
	case KindInt:
		switch op.Lexeme {
		case "+":
			return NewInt(ls+rs, I64)
		case "-":
			return NewInt(ls-rs, I64)
		case "*":
			return NewInt(ls*rs, I64)
		case "/":
			if rs == 0 {
				i.raise(op, "Division by zero.")
				return nil
			}
			return NewInt(ls/rs, I64)
		case "%":
			if rs == 0 {
				i.raise(op, "Division by zero.")
				return nil
			}
			return NewInt(ls%rs, I64)
		}
	}
	i.raise(op, "Unknown error")
	return nil
}

func (i *Interpreter) evalCompare(op token.Token, kind Kind, ls int64, lu uint64, lf float64, rs int64, ru uint64, rf float64) *Value {
	switch kind {
	case KindFloat:
		switch op.Lexeme {
		case ">":
			return NewBool(lf > rf)
		case ">=":
			return NewBool(lf >= rf)
		case "<":
			return NewBool(lf < rf)
		case "<=":
			return NewBool(lf <= rf)
		}
	case KindUint:
		switch op.Lexeme {
		case ">":
			return NewBool(lu > ru)
		case ">=":
			return NewBool(lu >= ru)
		case "<":
			return NewBool(lu < ru)
		case "<=":
			return NewBool(lu <= ru)
		}
	case KindInt:
		switch op.Lexeme {
		case ">":
			return NewBool(ls > rs)
		case ">=":
			return NewBool(ls >= rs)
		case "<":
			return NewBool(ls < rs)
		case "<=":
			return NewBool(ls <= rs)
		}
	}
	i.raise(op, "Unknown error")
	return nil
}

func (i *Interpreter) evalShift(op token.Token, left, right *Value) *Value {
	if !isInteger(left.Type) || !isInteger(right.Type) {
		i.raise(op, "Shifting is restricted to integers.")
		return nil
	}
	maxBit, ok := widthOf(left.Type)
	if !ok {
		i.raise(op, "Unknown left type")
		return nil
	}
	ls, lu, _, _ := left.ExtractNumber()
	rs, ru, _, _ := right.ExtractNumber()

	if left.Kind == KindUint {
		if uint64(maxBit) <= ru {
			i.raise(op, "Bit amount to shift has to be positive and smaller than %d.", maxBit)
			return nil
		}
		if op.Lexeme == "<<" {
			return NewUint(lu<<ru, U64)
		}
		return NewUint(lu>>ru, U64)
	}
	if int64(maxBit) <= rs || rs < 0 {
		i.raise(op, "Bit amount to shift has to be positive and smaller than %d.", maxBit)
		return nil
	}
	if op.Lexeme == "<<" {
		return NewInt(ls<<uint(rs), I64)
	}
	return NewInt(ls>>uint(rs), I64)
}

// objectEqual implements equality: null equals null, otherwise the
// two sides must share the same Kind, compared by that Kind's
// payload. Mismatched kinds are simply unequal, never an error —
// equality is the one operator exempt from the "Different types for
// binary" rule.
func objectEqual(left, right *Value, negate bool) *Value {
	flag := false
	switch {
	case left.Kind == KindNull && right.Kind == KindNull:
		flag = true
	case left.Kind == right.Kind:
		switch left.Kind {
		case KindBool:
			flag = left.Bool == right.Bool
		case KindString:
			flag = left.Str == right.Str
		case KindInt:
			flag = left.Int == right.Int
		case KindUint:
			flag = left.Uint == right.Uint
		case KindFloat:
			flag = left.Float == right.Float
		}
	}
	if negate {
		flag = !flag
	}
	return NewBool(flag)
}
