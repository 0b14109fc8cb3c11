package ast

// Literal is a Number, String, or Boolean literal. Number is carried as
// float64; String and Boolean carry their native Go value directly.
type Literal struct {
	Base
	Value interface{} // float64 | string | bool
}

// Nil is the `nil` literal, kept distinct from Literal so evaluators don't
// need a sentinel inside interface{} to recognise it.
type Nil struct {
	Base
}

// Variable is a bare identifier reference, resolved against the
// environment chain at evaluation time.
type Variable struct {
	Base
	Name string
}

// Grouping is a parenthesised sub-expression, kept as its own node (rather
// than collapsed away by the parser) purely so error messages can still
// point at the line the parens opened on.
type Grouping struct {
	Base
	Inner Expr
}

// ArrayLit is an array literal `[ e1, e2, ... ]`.
type ArrayLit struct {
	Base
	Elements []Expr
}

// DictEntry is one `key : value` pair inside a DictLit.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictLit is a dictionary literal `dict { k1: v1, k2: v2 }`.
type DictLit struct {
	Base
	Entries []DictEntry
}
