package ast

import (
	"bytes"
	"fmt"

	"github.com/bolthur/bosl-go/internal/token"
)

// Block is `{ stmts... }`.
type Block struct {
	LBrace token.Token
	Stmts  []Statement
}

func (*Block) statementNode()      {}
func (b *Block) TokenLiteral() string { return b.LBrace.Lexeme }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range b.Stmts {
		out.WriteString(s.String())
	}
	out.WriteString(" }")
	return out.String()
}

// ExpressionStmt wraps an expression evaluated for its side effects.
type ExpressionStmt struct {
	Expr Expression
}

func (*ExpressionStmt) statementNode()      {}
func (e *ExpressionStmt) TokenLiteral() string { return e.Expr.TokenLiteral() }
func (e *ExpressionStmt) String() string       { return e.Expr.String() + ";" }

// If is `if (cond) then (else else)?`.
type If struct {
	Keyword token.Token
	Cond    Expression
	Then    Statement
	Else    Statement // nil if absent
}

func (*If) statementNode()      {}
func (i *If) TokenLiteral() string { return i.Keyword.Lexeme }
func (i *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(i.Cond.String())
	out.WriteString(") ")
	out.WriteString(i.Then.String())
	if i.Else != nil {
		out.WriteString(" else ")
		out.WriteString(i.Else.String())
	}
	return out.String()
}

// While is `while (cond) body`.
type While struct {
	Keyword token.Token
	Cond    Expression
	Body    Statement
}

func (*While) statementNode()      {}
func (w *While) TokenLiteral() string { return w.Keyword.Lexeme }
func (w *While) String() string {
	return fmt.Sprintf("while (%s) %s", w.Cond.String(), w.Body.String())
}

// Print is `print(expr);`.
type Print struct {
	Keyword token.Token
	Expr    Expression
}

func (*Print) statementNode()      {}
func (p *Print) TokenLiteral() string { return p.Keyword.Lexeme }
func (p *Print) String() string       { return fmt.Sprintf("print(%s);", p.Expr.String()) }

// Return is `return expr?;`, legal only inside a function body.
type Return struct {
	Keyword token.Token
	Value   Expression // nil if omitted
}

func (*Return) statementNode()      {}
func (r *Return) TokenLiteral() string { return r.Keyword.Lexeme }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value.String())
}

// VarDecl is `let NAME : TYPE (= initializer)?;`.
type VarDecl struct {
	Keyword     token.Token
	Name        token.Token
	TypeTok     token.Token
	Initializer Expression // nil if absent
}

func (*VarDecl) statementNode()      {}
func (v *VarDecl) TokenLiteral() string { return v.Keyword.Lexeme }
func (v *VarDecl) String() string {
	if v.Initializer == nil {
		return fmt.Sprintf("let %s : %s;", v.Name.Lexeme, v.TypeTok.Lexeme)
	}
	return fmt.Sprintf("let %s : %s = %s;", v.Name.Lexeme, v.TypeTok.Lexeme, v.Initializer.String())
}

// ConstDecl is `const NAME : TYPE = initializer;`. Unlike VarDecl, the
// initializer is mandatory (enforced by the parser).
type ConstDecl struct {
	Keyword     token.Token
	Name        token.Token
	TypeTok     token.Token
	Initializer Expression
}

func (*ConstDecl) statementNode()      {}
func (c *ConstDecl) TokenLiteral() string { return c.Keyword.Lexeme }
func (c *ConstDecl) String() string {
	return fmt.Sprintf("const %s : %s = %s;", c.Name.Lexeme, c.TypeTok.Lexeme, c.Initializer.String())
}

// FunctionDecl is a function declaration. It holds exactly one of Body
// or LoadID, enforced by the parser: a native-bound function parses as
// `fn NAME(params) : TYPE {} = load IDENT;` and carries LoadID; an
// ordinary function carries Body.
type FunctionDecl struct {
	Keyword    token.Token
	Name       token.Token
	Params     []Param
	ReturnType token.Token
	Body       *Block
	LoadID     token.Token // valid only when Body == nil
}

func (*FunctionDecl) statementNode()      {}
func (f *FunctionDecl) TokenLiteral() string { return f.Keyword.Lexeme }
func (f *FunctionDecl) String() string {
	var out bytes.Buffer
	out.WriteString("fn ")
	out.WriteString(f.Name.Lexeme)
	out.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.Name.Lexeme)
		out.WriteString(" : ")
		out.WriteString(p.TypeTok.Lexeme)
	}
	out.WriteString(") : ")
	out.WriteString(f.ReturnType.Lexeme)
	out.WriteString(" ")
	if f.Body != nil {
		out.WriteString(f.Body.String())
	} else {
		out.WriteString("{} = load ")
		out.WriteString(f.LoadID.Lexeme)
		out.WriteString(";")
	}
	return out.String()
}

// Break is `break N?;`. Level is nil when the integer level expression
// was omitted (default level 1 is applied by the interpreter).
type Break struct {
	Keyword token.Token
	Level   Expression
}

func (*Break) statementNode()      {}
func (b *Break) TokenLiteral() string { return b.Keyword.Lexeme }
func (b *Break) String() string {
	if b.Level == nil {
		return "break;"
	}
	return fmt.Sprintf("break %s;", b.Level.String())
}

// Continue is `continue N?;`.
type Continue struct {
	Keyword token.Token
	Level   Expression
}

func (*Continue) statementNode()      {}
func (c *Continue) TokenLiteral() string { return c.Keyword.Lexeme }
func (c *Continue) String() string {
	if c.Level == nil {
		return "continue;"
	}
	return fmt.Sprintf("continue %s;", c.Level.String())
}

// PointerStmt is the reserved `pointer IDENT stmt` form; parsed but
// rejected at evaluation.
type PointerStmt struct {
	Keyword token.Token
	Name    token.Token
	Stmt    Statement
}

func (*PointerStmt) statementNode()      {}
func (p *PointerStmt) TokenLiteral() string { return p.Keyword.Lexeme }
func (p *PointerStmt) String() string {
	return fmt.Sprintf("pointer %s %s", p.Name.Lexeme, p.Stmt.String())
}
