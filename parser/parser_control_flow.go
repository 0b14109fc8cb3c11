package parser

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
)

// parseIf parses `"if" "(" expr ")" expr ( "else" expr )?`, with chained
// `else if` falling naturally out of recursion (the else-branch parse is
// just another call into parsePrimary/parseExpression territory starting
// at the `if` token).
func (p *Parser) parseIf() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'if'
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var elseExpr ast.Expr
	if p.match(lexer.ELSE) {
		elseExpr, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Base: ast.NewBase(line), Cond: cond, Then: then, Else: elseExpr}, nil
}

// parseWhile parses `"while" "(" expr ")" expr`.
func (p *Parser) parseWhile() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'while'
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.While{Base: ast.NewBase(line), Cond: cond, Body: body}, nil
}

// parseFor parses `"for" "(" init? ";" cond? ";" inc? ")" expr`. A missing
// condition defaults to literal `true` at evaluation time (left nil here,
// resolved by the evaluator).
func (p *Parser) parseFor() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'for'
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}

	var init ast.Expr
	if !p.check(lexer.SEMICOLON) {
		var err error
		if p.check(lexer.VAR) {
			init, err = p.parseLet()
		} else {
			init, err = p.parseComparison()
		}
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMICOLON, "';'"); err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(lexer.SEMICOLON) {
		var err error
		cond, err = p.parseComparison()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMICOLON, "';'"); err != nil {
		return nil, err
	}

	var inc ast.Expr
	if !p.check(lexer.RPAREN) {
		var err error
		inc, err = p.parseComparison()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.For{Base: ast.NewBase(line), Init: init, Cond: cond, Inc: inc, Body: body}, nil
}

// parseTryCatch parses `"try" block "catch" "(" IDENT ")" block`.
func (p *Parser) parseTryCatch() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'try'
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CATCH, "'catch'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	param, err := p.expect(lexer.IDENT, "catch parameter name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	catchBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.TryCatch{
		Base: ast.NewBase(line), Try: tryBlock, CatchParam: param.Lexeme, Catch: catchBlock,
	}, nil
}
