package parser

import (
	"strconv"

	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
)

// parseNormalisedFloat parses the lexer's "integer.fraction" literal
// payload into a float64.
func parseNormalisedFloat(literal string) (float64, error) {
	return strconv.ParseFloat(literal, 64)
}

// parseArrayLit parses `"[" args? "]"`.
func (p *Parser) parseArrayLit() (ast.Expr, error) {
	line := p.line()
	p.advance() // '['
	var elems []ast.Expr
	if !p.check(lexer.RBRACKET) {
		for {
			el, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return &ast.ArrayLit{Base: ast.NewBase(line), Elements: elems}, nil
}

// parseDictLit parses `"dict" "{" (expr ":" expr ("," expr ":" expr)*)? "}"`.
func (p *Parser) parseDictLit() (ast.Expr, error) {
	line := p.line()
	p.advance() // 'dict'
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	var entries []ast.DictEntry
	if !p.check(lexer.RBRACE) {
		for {
			key, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.COLON, "':'"); err != nil {
				return nil, err
			}
			val, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.DictEntry{Key: key, Value: val})
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &ast.DictLit{Base: ast.NewBase(line), Entries: entries}, nil
}

// parseBlock parses `"{" expression* "}"`.
func (p *Parser) parseBlock() (*ast.Block, error) {
	line := p.line()
	p.advance() // '{'
	var exprs []ast.Expr
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &ast.Block{Base: ast.NewBase(line), Exprs: exprs}, nil
}

// parseParams parses a comma-separated parameter list, enforcing a
// 255-entry ceiling.
func (p *Parser) parseParams() ([]string, error) {
	var params []string
	if !p.check(lexer.RPAREN) {
		for {
			name, err := p.expect(lexer.IDENT, "parameter name")
			if err != nil {
				return nil, err
			}
			if len(params) >= maxParams {
				return nil, p.errorf("too many parameters (max %d)", maxParams)
			}
			params = append(params, name.Lexeme)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	return params, nil
}

// parseArgs parses a comma-separated argument list with the same ceiling.
func (p *Parser) parseArgs() ([]ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.RPAREN) {
		for {
			arg, err := p.parseComparison()
			if err != nil {
				return nil, err
			}
			if len(args) >= maxParams {
				return nil, p.errorf("too many arguments (max %d)", maxParams)
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	return args, nil
}

// maxParams mirrors values.MaxParams without importing package values from parser, which otherwise
// has no reason to depend on the value representation.
const maxParams = 255
