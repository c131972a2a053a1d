package ast

import (
	"bytes"
	"fmt"

	"github.com/bolthur/bosl-go/internal/token"
)

// LiteralKind distinguishes the payload shape of a Literal expression.
type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitInt
	LitHex
	LitFloat
	LitString
	LitBool
)

// Assign is `target = value`.
type Assign struct {
	Target token.Token // identifier token being assigned
	Value  Expression
}

func (*Assign) expressionNode()      {}
func (a *Assign) TokenLiteral() string { return a.Target.Lexeme }
func (a *Assign) String() string {
	return fmt.Sprintf("(%s = %s)", a.Target.Lexeme, a.Value.String())
}

// Binary is `left op right` for arithmetic, comparison, equality,
// bitwise (`& | ^`) and shift operators.
type Binary struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (*Binary) expressionNode()      {}
func (b *Binary) TokenLiteral() string { return b.Op.Lexeme }
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.Lexeme, b.Right.String())
}

// Logical is `left op right` for the short-circuiting `&&`/`||` operators.
type Logical struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (*Logical) expressionNode()      {}
func (l *Logical) TokenLiteral() string { return l.Op.Lexeme }
func (l *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left.String(), l.Op.Lexeme, l.Right.String())
}

// Unary is a prefix operator applied to a single operand: `! - + ~`.
type Unary struct {
	Op    token.Token
	Right Expression
}

func (*Unary) expressionNode()      {}
func (u *Unary) TokenLiteral() string { return u.Op.Lexeme }
func (u *Unary) String() string {
	return fmt.Sprintf("(%s%s)", u.Op.Lexeme, u.Right.String())
}

// Grouping is a parenthesised expression, kept as its own node so the
// printer can reproduce the source parentheses.
type Grouping struct {
	Inner Expression
}

func (*Grouping) expressionNode()      {}
func (g *Grouping) TokenLiteral() string { return "(" }
func (g *Grouping) String() string {
	return fmt.Sprintf("(%s)", g.Inner.String())
}

// Literal is a constant value fixed at parse time.
type Literal struct {
	Token token.Token
	Kind  LiteralKind
	Bytes string // the literal's lexeme, interpreted per Kind
}

func (*Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) String() string       { return l.Token.Lexeme }

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

func (*Variable) expressionNode()      {}
func (v *Variable) TokenLiteral() string { return v.Name.Lexeme }
func (v *Variable) String() string       { return v.Name.Lexeme }

// Call is `callee(args...)`.
type Call struct {
	Callee Expression
	Paren  token.Token // the closing ')' token, for error locations
	Args   []Expression
}

func (*Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Paren.Lexeme }
func (c *Call) String() string {
	var out bytes.Buffer
	out.WriteString(c.Callee.String())
	out.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}

// Load is the reserved `load IDENT` expression form; parsed but
// rejected at evaluation, see DESIGN.md.
type Load struct {
	Keyword token.Token
	Name    token.Token
}

func (*Load) expressionNode()      {}
func (l *Load) TokenLiteral() string { return l.Keyword.Lexeme }
func (l *Load) String() string       { return fmt.Sprintf("load %s", l.Name.Lexeme) }

// Pointer is the reserved `pointer IDENT` expression form; parsed but
// rejected at evaluation.
type Pointer struct {
	Keyword token.Token
	Name    token.Token
}

func (*Pointer) expressionNode()      {}
func (p *Pointer) TokenLiteral() string { return p.Keyword.Lexeme }
func (p *Pointer) String() string       { return fmt.Sprintf("pointer %s", p.Name.Lexeme) }
