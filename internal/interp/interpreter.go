package interp

import (
	"io"

	"github.com/bolthur/bosl-go/internal/ast"
	"github.com/bolthur/bosl-go/internal/diag"
	"github.com/bolthur/bosl-go/internal/token"
)

// Interpreter walks a Program and executes it directly against a
// lexical Environment chain, dispatching load-bound functions through
// a Registry. The first runtime error reported through Sink aborts
// execution; there is no recovery.
type Interpreter struct {
	global   *Environment
	env      *Environment
	registry *Registry
	sink     diag.Sink
	out      io.Writer

	hadError  bool
	loopDepth int
}

// New creates an Interpreter writing print() output to out, resolving
// native bindings through registry, and reporting runtime errors
// through sink.
func New(out io.Writer, registry *Registry, sink diag.Sink) *Interpreter {
	global := NewEnvironment(nil)
	return &Interpreter{global: global, env: global, registry: registry, sink: sink, out: out}
}

// HadError reports whether any runtime error was raised.
func (i *Interpreter) HadError() bool { return i.hadError }

func (i *Interpreter) raise(tok token.Token, format string, args ...interface{}) {
	if i.hadError {
		return
	}
	i.hadError = true
	i.sink(tok, newRuntimeError(tok, format, args...).Error())
}

// Run executes every top-level statement of prog in the global scope.
// It returns once the program completes or the first runtime error is
// raised.
func (i *Interpreter) Run(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		if i.hadError {
			return
		}
		i.exec(stmt)
	}
}

// exec executes a single statement and returns a non-nil Value only
// when a return/break/continue must propagate to an enclosing
// handler; ordinary statements return nil. Callers must still check
// HadError after a nil result since an error also yields nil.
func (i *Interpreter) exec(s ast.Statement) *Value {
	if i.hadError || s == nil {
		return nil
	}
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		i.eval(n.Expr)
		return nil
	case *ast.Print:
		v := i.eval(n.Expr)
		if i.hadError {
			return nil
		}
		io.WriteString(i.out, v.Stringify()+"\r\n")
		return nil
	case *ast.VarDecl:
		return i.execVarDecl(n)
	case *ast.ConstDecl:
		return i.execConstDecl(n)
	case *ast.FunctionDecl:
		return i.execFunctionDecl(n)
	case *ast.Block:
		return i.execBlock(n, NewEnvironment(i.env))
	case *ast.If:
		return i.execIf(n)
	case *ast.While:
		return i.execWhile(n)
	case *ast.Return:
		return i.execReturn(n)
	case *ast.Break:
		return i.execBreak(n)
	case *ast.Continue:
		return i.execContinue(n)
	case *ast.PointerStmt:
		i.raise(n.Keyword, "Not implemented statement")
		return nil
	default:
		i.raise(token.Token{}, "Not implemented statement")
		return nil
	}
}

func (i *Interpreter) execVarDecl(n *ast.VarDecl) *Value {
	declType := TypeFromToken(n.TypeTok)
	var v *Value
	if n.Initializer != nil {
		v = i.eval(n.Initializer)
		if i.hadError {
			return nil
		}
		v = Duplicate(v)
		if !i.coerce(n.Name, declType, v) {
			return nil
		}
	} else {
		v = zeroValue(declType)
	}
	i.env.Define(n.Name.Lexeme, v)
	return nil
}

func (i *Interpreter) execConstDecl(n *ast.ConstDecl) *Value {
	declType := TypeFromToken(n.TypeTok)
	v := i.eval(n.Initializer)
	if i.hadError {
		return nil
	}
	v = Duplicate(v)
	if !i.coerce(n.Name, declType, v) {
		return nil
	}
	v.Constant = true
	i.env.Define(n.Name.Lexeme, v)
	return nil
}

func (i *Interpreter) execFunctionDecl(n *ast.FunctionDecl) *Value {
	callable := NewCallable(&Callable{Decl: n, Closure: i.env})
	i.env.Define(n.Name.Lexeme, callable)
	return nil
}

func (i *Interpreter) execBlock(b *ast.Block, env *Environment) *Value {
	prev := i.env
	i.env = env
	defer func() { i.env = prev }()
	for _, stmt := range b.Stmts {
		if i.hadError {
			return nil
		}
		if ctrl := i.exec(stmt); ctrl != nil {
			return ctrl
		}
	}
	return nil
}

func (i *Interpreter) execIf(n *ast.If) *Value {
	cond := i.eval(n.Cond)
	if i.hadError {
		return nil
	}
	if cond.Truthy() {
		return i.exec(n.Then)
	}
	if n.Else != nil {
		return i.exec(n.Else)
	}
	return nil
}

func (i *Interpreter) execWhile(n *ast.While) *Value {
	i.loopDepth++
	defer func() { i.loopDepth-- }()
	for {
		cond := i.eval(n.Cond)
		if i.hadError {
			return nil
		}
		if !cond.Truthy() {
			return nil
		}
		ctrl := i.exec(n.Body)
		if i.hadError {
			return nil
		}
		if ctrl == nil {
			continue
		}
		if ctrl.IsReturn {
			return ctrl
		}
		if ctrl.IsBreak {
			if ctrl.Int > 1 {
				ctrl.Int--
				return ctrl
			}
			return nil
		}
		if ctrl.IsContinue {
			if ctrl.Int > 1 {
				ctrl.Int--
				return ctrl
			}
			continue
		}
	}
}

func (i *Interpreter) execReturn(n *ast.Return) *Value {
	var v *Value
	if n.Value != nil {
		v = i.eval(n.Value)
		if i.hadError {
			return nil
		}
		v = Duplicate(v)
	} else {
		v = NewNull()
	}
	v.IsReturn = true
	return v
}

// execBreak and execContinue carry their nesting level in Value.Int:
// an omitted level defaults to 1 (the innermost loop); level N means
// "unwind N enclosing loops", decremented by one at each loop boundary
// until it reaches 1, where it takes effect.
func (i *Interpreter) execBreak(n *ast.Break) *Value {
	level, ok := i.resolveLoopLevel(n.Keyword, n.Level, "break")
	if !ok {
		return nil
	}
	return &Value{Kind: KindNull, IsBreak: true, Int: level}
}

func (i *Interpreter) execContinue(n *ast.Continue) *Value {
	level, ok := i.resolveLoopLevel(n.Keyword, n.Level, "continue")
	if !ok {
		return nil
	}
	return &Value{Kind: KindNull, IsContinue: true, Int: level}
}

// resolveLoopLevel evaluates a break/continue level expression (or the
// default of 1 when omitted) and validates it against the interpreter's
// current loop nesting depth, matching the original runtime's rejection
// of negative levels and of levels deeper than any enclosing loop.
func (i *Interpreter) resolveLoopLevel(kw token.Token, expr ast.Expression, kind string) (int64, bool) {
	level := int64(1)
	if expr != nil {
		v := i.eval(expr)
		if i.hadError {
			return 0, false
		}
		if v.Kind != KindInt && v.Kind != KindUint {
			i.raise(kw, "%s level must be an integer.", capitalize(kind))
			return 0, false
		}
		if v.Kind == KindUint {
			level = int64(v.Uint)
		} else {
			level = v.Int
		}
	}
	if level < 0 {
		i.raise(kw, "Negative %s level is not allowed.", kind)
		return 0, false
	}
	if level > int64(i.loopDepth) {
		i.raise(kw, "%s statement to high.", capitalize(kind))
		return 0, false
	}
	return level, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// zeroValue is the default payload for a declared variable with no
// initializer.
func zeroValue(t Type) *Value {
	switch {
	case t == Float:
		return NewFloat(0)
	case t == String:
		return NewString("")
	case t == Bool:
		return NewBool(false)
	case isSigned(t):
		return NewInt(0, t)
	case isUnsigned(t):
		return NewUint(0, t)
	default:
		return NewNull()
	}
}
