package ast

// FunctionLit is a function expression: `fun name ( params ) block`. The
// parser always sets Name (a class method carries its method name); Name
// is used for recursive self-reference and for diagnostics.
type FunctionLit struct {
	Base
	Name   string
	Params []string
	Body   *Block
}

// AsyncFunctionLit is `async fun name ( params ) block`. Calling it
// produces a Promise instead of running synchronously.
type AsyncFunctionLit struct {
	Base
	Name   string
	Params []string
	Body   *Block
}

// ClassLit is `class Name { method* }`. Methods include the constructor
// under the conventional name `_construct` if the class declares one.
type ClassLit struct {
	Base
	Name    string
	Methods []*FunctionLit
}

// Call is a function/method/class invocation. Receiver is non-nil for
// `receiver.method(args)` method calls; for a bare call, Receiver is nil
// and Callee is evaluated directly. `new Class(args)` parses down to a
// plain Call whose Callee is a Variable naming the class — dispatch on
// the callee's runtime kind (function/async function/native/class)
// happens in the evaluator.
type Call struct {
	Base
	Receiver Expr // may be nil
	Callee   Expr
	Args     []Expr
}
