/*
File    : lumen/ast/ast.go

Package ast defines the expression tree: the single sum type every
syntactic form in Lumen compiles down to. There is no separate statement
category — every node is an Expr and every Expr yields a value when
evaluated.
*/
package ast

// Expr is implemented by every node kind. Line reports the 1-based source
// line the node originated on, preserved for error reporting all the way
// from the lexer through to runtime error messages.
type Expr interface {
	Line() int
	exprNode()
}

// Base is embedded by every concrete node to supply Line() and the
// exprNode() marker without repeating both on every struct.
type Base struct {
	line int
}

func (b Base) Line() int { return b.line }
func (b Base) exprNode()  {}

// NewBase is used by the parser to stamp a node with its source line.
func NewBase(line int) Base { return Base{line: line} }
