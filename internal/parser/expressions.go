package parser

import (
	"strings"

	"github.com/bolthur/bosl-go/internal/ast"
	"github.com/bolthur/bosl-go/internal/token"
)

// expression is the entry point of the precedence cascade.
func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

// assignment is the lowest-precedence level: `target = value`. The
// left-hand side is parsed as a full logical-or expression and then
// narrowed to a Variable if an '=' follows: a parse-then-check-
// assignability approach rather than a dedicated lvalue grammar
// production.
func (p *Parser) assignment() ast.Expression {
	left := p.or()
	if p.hadError {
		return nil
	}
	if p.check(token.ASSIGN) {
		eq := p.cur
		variable, ok := left.(*ast.Variable)
		if !ok {
			p.error(eq, "Invalid assignment target.")
			return nil
		}
		p.advance() // '='
		value := p.assignment()
		if p.hadError {
			return nil
		}
		return &ast.Assign{Target: variable.Name, Value: value}
	}
	return left
}

func (p *Parser) or() ast.Expression {
	left := p.and()
	for !p.hadError && p.check(token.OR_OR) {
		op := p.cur
		p.advance()
		right := p.and()
		if p.hadError {
			return nil
		}
		left = &ast.Logical{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) and() ast.Expression {
	left := p.bitOr()
	for !p.hadError && p.check(token.AND_AND) {
		op := p.cur
		p.advance()
		right := p.bitOr()
		if p.hadError {
			return nil
		}
		left = &ast.Logical{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) bitOr() ast.Expression {
	left := p.bitXor()
	for !p.hadError && p.check(token.PIPE) {
		op := p.cur
		p.advance()
		right := p.bitXor()
		if p.hadError {
			return nil
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) bitXor() ast.Expression {
	left := p.bitAnd()
	for !p.hadError && p.check(token.CARET) {
		op := p.cur
		p.advance()
		right := p.bitAnd()
		if p.hadError {
			return nil
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) bitAnd() ast.Expression {
	left := p.equality()
	for !p.hadError && p.check(token.AMP) {
		op := p.cur
		p.advance()
		right := p.equality()
		if p.hadError {
			return nil
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) equality() ast.Expression {
	left := p.comparison()
	for !p.hadError && (p.check(token.EQ) || p.check(token.NOT_EQ)) {
		op := p.cur
		p.advance()
		right := p.comparison()
		if p.hadError {
			return nil
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) comparison() ast.Expression {
	left := p.term()
	for !p.hadError && (p.check(token.LT) || p.check(token.LT_EQ) ||
		p.check(token.GT) || p.check(token.GT_EQ) ||
		p.check(token.SHL) || p.check(token.SHR)) {
		op := p.cur
		p.advance()
		right := p.term()
		if p.hadError {
			return nil
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) term() ast.Expression {
	left := p.factor()
	for !p.hadError && (p.check(token.PLUS) || p.check(token.MINUS)) {
		op := p.cur
		p.advance()
		right := p.factor()
		if p.hadError {
			return nil
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) factor() ast.Expression {
	left := p.unary()
	for !p.hadError && (p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT)) {
		op := p.cur
		p.advance()
		right := p.unary()
		if p.hadError {
			return nil
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) unary() ast.Expression {
	switch {
	case p.check(token.BANG), p.check(token.MINUS), p.check(token.PLUS), p.check(token.TILDE):
		op := p.cur
		p.advance()
		right := p.unary()
		if p.hadError {
			return nil
		}
		return &ast.Unary{Op: op, Right: right}
	case p.check(token.LOAD):
		kw := p.cur
		p.advance()
		name, ok := p.expect(token.IDENT, "Expect identifier after 'load'.")
		if !ok {
			return nil
		}
		return &ast.Load{Keyword: kw, Name: name}
	case p.check(token.POINTER):
		kw := p.cur
		p.advance()
		name, ok := p.expect(token.IDENT, "Expect identifier after 'pointer'.")
		if !ok {
			return nil
		}
		return &ast.Pointer{Keyword: kw, Name: name}
	default:
		return p.call()
	}
}

func (p *Parser) call() ast.Expression {
	expr := p.primary()
	for !p.hadError && p.check(token.LPAREN) {
		p.advance() // '('
		var args []ast.Expression
		if !p.check(token.RPAREN) {
			for {
				args = append(args, p.expression())
				if p.hadError {
					return nil
				}
				if !p.match(token.COMMA) {
					break
				}
			}
		}
		paren, ok := p.expect(token.RPAREN, "Expect ')' after arguments.")
		if !ok {
			return nil
		}
		expr = &ast.Call{Callee: expr, Paren: paren, Args: args}
	}
	return expr
}

func (p *Parser) primary() ast.Expression {
	switch {
	case p.check(token.TRUE):
		tok := p.cur
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.LitBool, Bytes: "true"}
	case p.check(token.FALSE):
		tok := p.cur
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.LitBool, Bytes: "false"}
	case p.check(token.NULL):
		tok := p.cur
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.LitNull}
	case p.check(token.STRING):
		tok := p.cur
		p.advance()
		return &ast.Literal{Token: tok, Kind: ast.LitString, Bytes: tok.Lexeme}
	case p.check(token.NUMBER):
		return p.numberLiteral()
	case p.check(token.IDENT):
		tok := p.cur
		p.advance()
		return &ast.Variable{Name: tok}
	case p.check(token.LPAREN):
		p.advance() // '('
		inner := p.expression()
		if p.hadError {
			return nil
		}
		if _, ok := p.expect(token.RPAREN, "Expect ')' after expression."); !ok {
			return nil
		}
		return &ast.Grouping{Inner: inner}
	default:
		p.error(p.cur, "Expect expression.")
		return nil
	}
}

// numberLiteral classifies the lexeme produced by the scanner: hex if
// it contains 'x'/'X', float if it contains '.', otherwise integer.
// Float and hex are mutually exclusive by construction — the scanner
// never emits an 'x' lexeme with a '.' in it.
func (p *Parser) numberLiteral() ast.Expression {
	tok := p.cur
	p.advance()
	lexeme := tok.Lexeme
	switch {
	case strings.ContainsAny(lexeme, "xX"):
		return &ast.Literal{Token: tok, Kind: ast.LitHex, Bytes: lexeme}
	case strings.Contains(lexeme, "."):
		return &ast.Literal{Token: tok, Kind: ast.LitFloat, Bytes: lexeme}
	default:
		return &ast.Literal{Token: tok, Kind: ast.LitInt, Bytes: lexeme}
	}
}
