package parser

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
)

// parseIdentifierForm implements the `identifierForm` production
//: starting from a bare identifier, lookahead decides
// between index access/assignment, a call, a dotted get/set/method-call
// chain, a plain assignment, or a bare variable reference.
func (p *Parser) parseIdentifierForm() (ast.Expr, error) {
	line := p.line()
	tok := p.advance() // IDENT or 'super'
	var expr ast.Expr = &ast.Variable{Base: ast.NewBase(line), Name: tok.Lexeme}

	// `name [ expr ]`, optionally `= rhs`.
	if p.check(lexer.LBRACKET) {
		p.advance()
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		if p.match(lexer.EQUAL) {
			rhs, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			return &ast.Set{Base: ast.NewBase(line), Object: expr, Key: key, Value: rhs}, nil
		}
		return &ast.Get{Base: ast.NewBase(line), Object: expr, Key: key}, nil
	}

	// `name ( args )` — a plain, receiver-less call.
	if p.check(lexer.LPAREN) {
		return p.finishCall(nil, expr)
	}

	// `name . field`, chainable into Get/Set/receiver-call.
	for p.check(lexer.DOT) {
		p.advance()
		field, err := p.expect(lexer.IDENT, "field or method name")
		if err != nil {
			return nil, err
		}
		key := &ast.Literal{Base: ast.NewBase(field.Line), Value: field.Lexeme}

		if p.check(lexer.LPAREN) {
			callee := &ast.Variable{Base: ast.NewBase(field.Line), Name: field.Lexeme}
			call, err := p.finishCall(expr, callee)
			if err != nil {
				return nil, err
			}
			expr = call
			continue
		}
		if p.match(lexer.EQUAL) {
			rhs, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			return &ast.Set{Base: ast.NewBase(line), Object: expr, Key: key, Value: rhs}, nil
		}
		expr = &ast.Get{Base: ast.NewBase(line), Object: expr, Key: key}
	}

	// `name = rhs` — only a plain variable (no postfix yet) is a valid
	// assignment target.
	if v, ok := expr.(*ast.Variable); ok && p.match(lexer.EQUAL) {
		rhs, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Base: ast.NewBase(line), Name: v.Name, Value: rhs}, nil
	}

	return expr, nil
}

// finishCall parses `"(" args? ")"` and builds the Call node; receiver is
// nil for a plain `name(args)` call, or the already-parsed object
// expression for `object.method(args)`.
func (p *Parser) finishCall(receiver ast.Expr, callee ast.Expr) (ast.Expr, error) {
	line := p.line()
	p.advance() // '('
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.Call{Base: ast.NewBase(line), Receiver: receiver, Callee: callee, Args: args}, nil
}
