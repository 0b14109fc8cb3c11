package parser

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
)

// parseLet parses `"var" IDENT ( "=" expr )?`.
func (p *Parser) parseLet() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'var'
	name, err := p.expect(lexer.IDENT, "variable name")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(lexer.EQUAL) {
		init, err = p.parseComparison()
		if err != nil {
			return nil, err
		}
	}
	return &ast.Let{Base: ast.NewBase(line), Name: name.Lexeme, Init: init}, nil
}

// parseFunction parses `"fun" IDENT "(" params? ")" block`. The `async`
// keyword is consumed by the caller before calling this with isAsync.
func (p *Parser) parseFunction(isAsync bool) (ast.Expr, error) {
	line := p.line()
	p.advance() // 'fun'
	name, err := p.expect(lexer.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if isAsync {
		return &ast.AsyncFunctionLit{Base: ast.NewBase(line), Name: name.Lexeme, Params: params, Body: body}, nil
	}
	return &ast.FunctionLit{Base: ast.NewBase(line), Name: name.Lexeme, Params: params, Body: body}, nil
}

// parseAsyncFunction parses `"async" "fun" IDENT "(" params? ")" block`.
func (p *Parser) parseAsyncFunction() (ast.Expr, error) {
	p.advance() // 'async'
	if !p.check(lexer.FUN) {
		return nil, p.errorf("expected 'fun' after 'async' but found %q", p.curr.Lexeme)
	}
	return p.parseFunction(true)
}

// parseClass parses `"class" IDENT "{" method* "}"`. Unlike top-level
// functions, method bodies in a class are declared bare (`name(params)
// block`, no leading `fun`).
func (p *Parser) parseClass() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'class'
	name, err := p.expect(lexer.IDENT, "class name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	var methods []*ast.FunctionLit
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		methodLine := p.line()
		methodName, err := p.expect(lexer.IDENT, "method name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
			return nil, err
		}
		params, err := p.parseParams()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		methods = append(methods, &ast.FunctionLit{
			Base: ast.NewBase(methodLine), Name: methodName.Lexeme, Params: params, Body: body,
		})
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &ast.ClassLit{Base: ast.NewBase(line), Name: name.Lexeme, Methods: methods}, nil
}

// parseNew parses `"new" IDENT "(" args? ")"` as a plain Call whose callee
// is a Variable — dispatch on the callee's runtime kind happens in the
// evaluator.
func (p *Parser) parseNew() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'new'
	name, err := p.expect(lexer.IDENT, "class name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	callee := &ast.Variable{Base: ast.NewBase(line), Name: name.Lexeme}
	return &ast.Call{Base: ast.NewBase(line), Callee: callee, Args: args}, nil
}

// parseReturn parses `"return" expr?`.
func (p *Parser) parseReturn() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'return'
	if p.check(lexer.SEMICOLON) || p.check(lexer.RBRACE) || p.check(lexer.EOF) {
		return &ast.Return{Base: ast.NewBase(line)}, nil
	}
	val, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Base: ast.NewBase(line), Value: val}, nil
}

// parseImport parses `"import" STRING`.
func (p *Parser) parseImport() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'import'
	tok, err := p.expect(lexer.STRING, "module path string")
	if err != nil {
		return nil, err
	}
	path := &ast.Literal{Base: ast.NewBase(line), Value: tok.Literal}
	return &ast.Import{Base: ast.NewBase(line), Path: path}, nil
}

// parseAwait parses `"await" primary` — the operand binds as tightly as a
// primary, not a full expression.
func (p *Parser) parseAwait() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'await'
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &ast.Await{Base: ast.NewBase(line), Operand: operand}, nil
}
