// Package parser implements a single-pass recursive-descent translator
// from the token stream produced by internal/lexer into the AST defined
// by internal/ast.
//
// Precedence, lowest to highest: assignment, logical-or, logical-and,
// bitwise-or, bitwise-xor, bitwise-and, equality, comparison, term,
// factor, unary, call, primary. Each level is one parsing method that
// calls the next-higher level for its operands, the classic recursive-
// descent cascade.
package parser

import (
	"fmt"

	"github.com/bolthur/bosl-go/internal/ast"
	"github.com/bolthur/bosl-go/internal/diag"
	"github.com/bolthur/bosl-go/internal/lexer"
	"github.com/bolthur/bosl-go/internal/token"
)

// Parser translates a token stream into a Program. The first error
// encountered reports through Sink and aborts the parse; there is no
// panic-mode recovery.
type Parser struct {
	l    *lexer.Lexer
	sink diag.Sink

	cur  token.Token
	peek token.Token

	inFunction bool
	hadError   bool
}

// New creates a Parser reading from l, reporting through sink.
func New(l *lexer.Lexer, sink diag.Sink) *Parser {
	p := &Parser{l: l, sink: sink}
	p.advance()
	p.advance()
	return p
}

// HadError reports whether any parse error was emitted.
func (p *Parser) HadError() bool { return p.hadError }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) check(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has kind k, else reports msg
// and marks the parse as failed.
func (p *Parser) expect(k token.Kind, msg string) (token.Token, bool) {
	if p.check(k) {
		tok := p.cur
		p.advance()
		return tok, true
	}
	p.error(p.cur, msg)
	return token.Token{}, false
}

func (p *Parser) error(tok token.Token, format string, args ...interface{}) {
	if p.hadError {
		return
	}
	p.hadError = true
	if tok.Kind == token.ILLEGAL {
		p.sink(tok, tok.Lexeme)
		return
	}
	p.sink(tok, fmt.Sprintf(format, args...))
}

// ParseProgram parses the whole token stream. On the first error it
// returns the partially built program and leaves HadError() true; the
// caller should discard the program in that case.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.check(token.EOF) && !p.hadError {
		if p.check(token.ILLEGAL) {
			p.error(p.cur, p.cur.Lexeme)
			break
		}
		stmt := p.declaration()
		if p.hadError {
			break
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog
}
