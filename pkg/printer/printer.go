// Package printer renders a parsed program as an indented textual tree,
// one node per line, backing the `parse` subcommand of cmd/bosl. It is
// deliberately a structural dump rather than a source-reproducing
// formatter: bosl has no round-trip "fmt" feature, only the ability to
// show a reader what the parser built.
package printer

import (
	"bytes"
	"fmt"

	"github.com/bolthur/bosl-go/internal/ast"
)

// Style selects how much detail each node line carries.
type Style int

const (
	// StyleCompact prints a FunctionDecl with its name only and a Call
	// without its argument count. Program and Block lines carry their
	// statement counts in both styles.
	StyleCompact Style = iota
	// StyleDetailed additionally prints the parameter count and return
	// type of a FunctionDecl and the argument count of a Call.
	StyleDetailed
)

// Options configures a Printer. IndentWidth is the number of columns
// (spaces, or tab-stops when UseTabs is set) added per nesting level.
type Options struct {
	Style       Style
	IndentWidth int
	UseTabs     bool
}

// DefaultOptions is StyleDetailed, two spaces per level.
func DefaultOptions() Options {
	return Options{Style: StyleDetailed, IndentWidth: 2}
}

// Printer walks an *ast.Program and renders it per Options.
type Printer struct {
	opts Options
}

// New creates a Printer configured by opts.
func New(opts Options) *Printer {
	return &Printer{opts: opts}
}

func (p *Printer) pad(depth int) string {
	unit := " "
	if p.opts.UseTabs {
		unit = "\t"
	}
	width := p.opts.IndentWidth
	if width <= 0 {
		width = 1
	}
	n := depth * width
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = unit[0]
	}
	return string(buf)
}

// Print renders prog as a deterministic, indented tree. The output is
// total over any successfully parsed program: every node in prog is
// reachable from the root line.
func (p *Printer) Print(prog *ast.Program) string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "Program (%d statements)\n", len(prog.Statements))
	for _, stmt := range prog.Statements {
		p.printStatement(&out, stmt, 1)
	}
	return out.String()
}

func (p *Printer) line(out *bytes.Buffer, depth int, format string, args ...interface{}) {
	out.WriteString(p.pad(depth))
	fmt.Fprintf(out, format, args...)
	out.WriteByte('\n')
}

func (p *Printer) printStatement(out *bytes.Buffer, s ast.Statement, depth int) {
	switch n := s.(type) {
	case *ast.Block:
		p.line(out, depth, "Block (%d statements)", len(n.Stmts))
		for _, child := range n.Stmts {
			p.printStatement(out, child, depth+1)
		}
	case *ast.ExpressionStmt:
		p.line(out, depth, "ExpressionStmt")
		p.printExpression(out, n.Expr, depth+1)
	case *ast.If:
		p.line(out, depth, "If")
		p.printExpression(out, n.Cond, depth+1)
		p.printStatement(out, n.Then, depth+1)
		if n.Else != nil {
			p.printStatement(out, n.Else, depth+1)
		}
	case *ast.While:
		p.line(out, depth, "While")
		p.printExpression(out, n.Cond, depth+1)
		p.printStatement(out, n.Body, depth+1)
	case *ast.Print:
		p.line(out, depth, "Print")
		p.printExpression(out, n.Expr, depth+1)
	case *ast.Return:
		p.line(out, depth, "Return")
		if n.Value != nil {
			p.printExpression(out, n.Value, depth+1)
		}
	case *ast.VarDecl:
		p.line(out, depth, "VarDecl %s : %s", n.Name.Lexeme, n.TypeTok.Lexeme)
		if n.Initializer != nil {
			p.printExpression(out, n.Initializer, depth+1)
		}
	case *ast.ConstDecl:
		p.line(out, depth, "ConstDecl %s : %s", n.Name.Lexeme, n.TypeTok.Lexeme)
		p.printExpression(out, n.Initializer, depth+1)
	case *ast.FunctionDecl:
		if p.opts.Style == StyleDetailed {
			p.line(out, depth, "FunctionDecl %s (%d params) : %s", n.Name.Lexeme, len(n.Params), n.ReturnType.Lexeme)
		} else {
			p.line(out, depth, "FunctionDecl %s", n.Name.Lexeme)
		}
		for _, param := range n.Params {
			p.line(out, depth+1, "Param %s : %s", param.Name.Lexeme, param.TypeTok.Lexeme)
		}
		if n.Body != nil {
			p.printStatement(out, n.Body, depth+1)
		} else {
			p.line(out, depth+1, "load %s", n.LoadID.Lexeme)
		}
	case *ast.Break:
		p.line(out, depth, "Break")
		if n.Level != nil {
			p.printExpression(out, n.Level, depth+1)
		}
	case *ast.Continue:
		p.line(out, depth, "Continue")
		if n.Level != nil {
			p.printExpression(out, n.Level, depth+1)
		}
	case *ast.PointerStmt:
		p.line(out, depth, "PointerStmt %s", n.Name.Lexeme)
		p.printStatement(out, n.Stmt, depth+1)
	case nil:
		p.line(out, depth, "<nil statement>")
	default:
		p.line(out, depth, "<unknown statement %T>", n)
	}
}

func (p *Printer) printExpression(out *bytes.Buffer, e ast.Expression, depth int) {
	switch n := e.(type) {
	case *ast.Assign:
		p.line(out, depth, "Assign %s", n.Target.Lexeme)
		p.printExpression(out, n.Value, depth+1)
	case *ast.Binary:
		p.line(out, depth, "Binary %s", n.Op.Lexeme)
		p.printExpression(out, n.Left, depth+1)
		p.printExpression(out, n.Right, depth+1)
	case *ast.Logical:
		p.line(out, depth, "Logical %s", n.Op.Lexeme)
		p.printExpression(out, n.Left, depth+1)
		p.printExpression(out, n.Right, depth+1)
	case *ast.Unary:
		p.line(out, depth, "Unary %s", n.Op.Lexeme)
		p.printExpression(out, n.Right, depth+1)
	case *ast.Grouping:
		p.line(out, depth, "Grouping")
		p.printExpression(out, n.Inner, depth+1)
	case *ast.Literal:
		p.line(out, depth, "Literal %s", n.Token.Lexeme)
	case *ast.Variable:
		p.line(out, depth, "Variable %s", n.Name.Lexeme)
	case *ast.Call:
		if p.opts.Style == StyleDetailed {
			p.line(out, depth, "Call (%d args)", len(n.Args))
		} else {
			p.line(out, depth, "Call")
		}
		p.printExpression(out, n.Callee, depth+1)
		for _, arg := range n.Args {
			p.printExpression(out, arg, depth+1)
		}
	case *ast.Load:
		p.line(out, depth, "Load %s", n.Name.Lexeme)
	case *ast.Pointer:
		p.line(out, depth, "Pointer %s", n.Name.Lexeme)
	case nil:
		p.line(out, depth, "<nil expression>")
	default:
		p.line(out, depth, "<unknown expression %T>", n)
	}
}
