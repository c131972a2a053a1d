package parser

import (
	"github.com/bolthur/bosl-go/internal/ast"
	"github.com/bolthur/bosl-go/internal/token"
)

// declaration dispatches to the declaration forms (let/const/fn) or
// falls through to an ordinary statement.
func (p *Parser) declaration() ast.Statement {
	switch {
	case p.check(token.LET):
		return p.varDecl()
	case p.check(token.CONST):
		return p.constDecl()
	case p.check(token.FN):
		return p.functionDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) varDecl() ast.Statement {
	kw := p.cur
	p.advance() // 'let'
	name, ok := p.expect(token.IDENT, "Expect variable name.")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.COLON, "Expect ':' after variable name."); !ok {
		return nil
	}
	typeTok, ok := p.expect(token.TYPE_IDENT, "Expect type after ':'.")
	if !ok {
		return nil
	}
	var initializer ast.Expression
	if p.match(token.ASSIGN) {
		initializer = p.expression()
		if p.hadError {
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after variable declaration."); !ok {
		return nil
	}
	return &ast.VarDecl{Keyword: kw, Name: name, TypeTok: typeTok, Initializer: initializer}
}

func (p *Parser) constDecl() ast.Statement {
	kw := p.cur
	p.advance() // 'const'
	name, ok := p.expect(token.IDENT, "Expect constant name.")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.COLON, "Expect ':' after constant name."); !ok {
		return nil
	}
	typeTok, ok := p.expect(token.TYPE_IDENT, "Expect type after ':'.")
	if !ok {
		return nil
	}
	if !p.match(token.ASSIGN) {
		p.error(p.cur, "Constants need an initializer.")
		return nil
	}
	initializer := p.expression()
	if p.hadError {
		return nil
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after constant declaration."); !ok {
		return nil
	}
	return &ast.ConstDecl{Keyword: kw, Name: name, TypeTok: typeTok, Initializer: initializer}
}

func (p *Parser) functionDecl() ast.Statement {
	kw := p.cur
	if p.inFunction {
		p.error(p.cur, "Function in function is not allowed")
		return nil
	}
	p.advance() // 'fn'
	name, ok := p.expect(token.IDENT, "Expect function name.")
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.LPAREN, "Expect '(' after function name."); !ok {
		return nil
	}
	var params []ast.Param
	if !p.check(token.RPAREN) {
		for {
			pname, ok := p.expect(token.IDENT, "Expect parameter name.")
			if !ok {
				return nil
			}
			if _, ok := p.expect(token.COLON, "Expect ':' after parameter name."); !ok {
				return nil
			}
			ptype, ok := p.expect(token.TYPE_IDENT, "Expect parameter type.")
			if !ok {
				return nil
			}
			params = append(params, ast.Param{Name: pname, TypeTok: ptype})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, ok := p.expect(token.RPAREN, "Expect ')' after parameters."); !ok {
		return nil
	}
	if _, ok := p.expect(token.COLON, "Expect ':' after parameter list."); !ok {
		return nil
	}
	returnType, ok := p.expect(token.TYPE_IDENT, "Expect return type.")
	if !ok {
		return nil
	}
	lbrace, ok := p.expect(token.LBRACE, "Expect '{' before function body.")
	if !ok {
		return nil
	}

	// `fn NAME(...) : T {} = load IDENT;` — native binding: an empty
	// body immediately followed by '}' then '= load IDENT;'.
	if p.check(token.RBRACE) {
		p.advance() // '}'
		if p.match(token.ASSIGN) {
			if _, ok := p.expect(token.LOAD, "Expect 'load' after '='."); !ok {
				return nil
			}
			loadID, ok := p.expect(token.IDENT, "Expect native binding name after 'load'.")
			if !ok {
				return nil
			}
			if _, ok := p.expect(token.SEMICOLON, "Expect ';' after load binding."); !ok {
				return nil
			}
			return &ast.FunctionDecl{
				Keyword: kw, Name: name, Params: params,
				ReturnType: returnType, LoadID: loadID,
			}
		}
		return &ast.FunctionDecl{
			Keyword: kw, Name: name, Params: params,
			ReturnType: returnType, Body: &ast.Block{LBrace: lbrace},
		}
	}

	p.inFunction = true
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.hadError {
		stmts = append(stmts, p.declaration())
	}
	p.inFunction = false
	if p.hadError {
		return nil
	}
	if _, ok := p.expect(token.RBRACE, "Expect '}' after function body."); !ok {
		return nil
	}
	return &ast.FunctionDecl{
		Keyword: kw, Name: name, Params: params, ReturnType: returnType,
		Body: &ast.Block{LBrace: lbrace, Stmts: stmts},
	}
}

func (p *Parser) statement() ast.Statement {
	switch {
	case p.check(token.IF):
		return p.ifStmt()
	case p.check(token.WHILE):
		return p.whileStmt()
	case p.check(token.PRINT):
		return p.printStmt()
	case p.check(token.RETURN):
		return p.returnStmt()
	case p.check(token.BREAK):
		return p.breakStmt()
	case p.check(token.CONTINUE):
		return p.continueStmt()
	case p.check(token.LBRACE):
		return p.block()
	case p.check(token.POINTER):
		return p.pointerStmt()
	default:
		return p.expressionStmt()
	}
}

func (p *Parser) block() *ast.Block {
	lbrace := p.cur
	p.advance() // '{'
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) && !p.hadError {
		stmts = append(stmts, p.declaration())
	}
	if p.hadError {
		return nil
	}
	if _, ok := p.expect(token.RBRACE, "Expect '}' after block."); !ok {
		return nil
	}
	return &ast.Block{LBrace: lbrace, Stmts: stmts}
}

func (p *Parser) ifStmt() ast.Statement {
	kw := p.cur
	p.advance() // 'if'
	if _, ok := p.expect(token.LPAREN, "Expect '(' after 'if'."); !ok {
		return nil
	}
	cond := p.expression()
	if p.hadError {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "Expect ')' after if condition."); !ok {
		return nil
	}
	then := p.statement()
	if p.hadError {
		return nil
	}
	var elseStmt ast.Statement
	if p.match(token.ELSE) {
		elseStmt = p.statement()
		if p.hadError {
			return nil
		}
	}
	return &ast.If{Keyword: kw, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) whileStmt() ast.Statement {
	kw := p.cur
	p.advance() // 'while'
	if _, ok := p.expect(token.LPAREN, "Expect '(' after 'while'."); !ok {
		return nil
	}
	cond := p.expression()
	if p.hadError {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "Expect ')' after while condition."); !ok {
		return nil
	}
	body := p.statement()
	if p.hadError {
		return nil
	}
	return &ast.While{Keyword: kw, Cond: cond, Body: body}
}

func (p *Parser) printStmt() ast.Statement {
	kw := p.cur
	p.advance() // 'print'
	if _, ok := p.expect(token.LPAREN, "Expect '(' after 'print'."); !ok {
		return nil
	}
	expr := p.expression()
	if p.hadError {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "Expect ')' after print expression."); !ok {
		return nil
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after print statement."); !ok {
		return nil
	}
	return &ast.Print{Keyword: kw, Expr: expr}
}

func (p *Parser) returnStmt() ast.Statement {
	kw := p.cur
	if !p.inFunction {
		p.error(kw, "Return is only in functions allowed")
		return nil
	}
	p.advance() // 'return'
	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.expression()
		if p.hadError {
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after return value."); !ok {
		return nil
	}
	return &ast.Return{Keyword: kw, Value: value}
}

func (p *Parser) breakStmt() ast.Statement {
	kw := p.cur
	p.advance() // 'break'
	var level ast.Expression
	if !p.check(token.SEMICOLON) {
		level = p.expression()
		if p.hadError {
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after break statement."); !ok {
		return nil
	}
	return &ast.Break{Keyword: kw, Level: level}
}

func (p *Parser) continueStmt() ast.Statement {
	kw := p.cur
	p.advance() // 'continue'
	var level ast.Expression
	if !p.check(token.SEMICOLON) {
		level = p.expression()
		if p.hadError {
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after continue statement."); !ok {
		return nil
	}
	return &ast.Continue{Keyword: kw, Level: level}
}

// pointerStmt parses the reserved `pointer IDENT stmt` form. The
// interpreter rejects it at runtime; see DESIGN.md for the reasoning.
func (p *Parser) pointerStmt() ast.Statement {
	kw := p.cur
	p.advance() // 'pointer'
	name, ok := p.expect(token.IDENT, "Expect identifier after 'pointer'.")
	if !ok {
		return nil
	}
	stmt := p.statement()
	if p.hadError {
		return nil
	}
	return &ast.PointerStmt{Keyword: kw, Name: name, Stmt: stmt}
}

func (p *Parser) expressionStmt() ast.Statement {
	expr := p.expression()
	if p.hadError {
		return nil
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after expression."); !ok {
		return nil
	}
	return &ast.ExpressionStmt{Expr: expr}
}
