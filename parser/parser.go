/*
File    : lumen/parser/parser.go

Package parser implements a recursive-descent parser for Lumen. Rather
than a Pratt/operator-precedence table keyed by token type, this parser
is plain recursive descent over a fixed ladder, because the grammar fixes
a specific, non-standard precedence order — comparison/equality binds
*looser* than `and`/`or`, which inverts the usual C-family ordering —
that a generic operator table would have to special-case anyway. The
Parser struct keeps a current/next token pair for lookahead; unlike the
lexer it does not accumulate errors, it returns the first one.
*/
package parser

import (
	"fmt"

	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
)

// Error is a parser error: an unexpected token where a specific
// construct's grammar required something else. Unlike the lexer, parsing
// stops at the first Error.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parser holds the token stream and a two-token lookahead window.
type Parser struct {
	tokens []lexer.Token
	pos    int

	curr lexer.Token
	next lexer.Token
}

// New creates a Parser over a finished token stream (as returned by
// lexer.Lexer.Scan).
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	if len(tokens) > 0 {
		p.curr = tokens[0]
	}
	if len(tokens) > 1 {
		p.next = tokens[1]
	}
	return p
}

// Parse consumes the whole token stream and returns the program as a
// slice of top-level expressions,
// or the first parser Error encountered.
func (p *Parser) Parse() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for !p.check(lexer.EOF) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// --- token cursor helpers ---

func (p *Parser) advance() lexer.Token {
	tok := p.curr
	if !p.check(lexer.EOF) {
		p.pos++
		p.curr = p.next
		if p.pos+1 < len(p.tokens) {
			p.next = p.tokens[p.pos+1]
		} else {
			p.next = lexer.Token{Kind: lexer.EOF, Line: p.curr.Line}
		}
	}
	return tok
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.curr.Kind == kind
}

func (p *Parser) checkNext(kind lexer.TokenKind) bool {
	return p.next.Kind == kind
}

func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes curr if it matches kind, else returns an Error naming
// the offending lexeme and line.
func (p *Parser) expect(kind lexer.TokenKind, what string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorf("expected %s but found %q", what, p.curr.Lexeme)
}

func (p *Parser) errorf(format string, a ...interface{}) error {
	return &Error{Line: p.curr.Line, Message: fmt.Sprintf(format, a...)}
}

func (p *Parser) line() int { return p.curr.Line }
