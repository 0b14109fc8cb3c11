/*
File    : lumen/eval/eval.go

Package eval is the recursive tree-walking evaluator. Dispatch is a
single big type switch spread across several files grouped by concern
(eval_operators.go, eval_bindings.go, eval_control_flow.go,
eval_functions.go, eval_async.go, eval_module.go) rather than a Visitor
interface requiring an Accept/Visit pair on every node kind.

The module loader lives in this package rather than a separate `module`
package: importing asks the evaluator to parse-and-evaluate a file in a
fresh sub-interpreter, which is exactly what an eval-internal helper does
without needing eval and module to import each other.
*/
package eval

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/asyncrt"
	"github.com/lumenscript/lumen/std"
	"github.com/lumenscript/lumen/values"
)

const defaultWorkers = 4

// Interpreter walks an Expr tree against a live Environment. env is the
// interpreter's "current environment" cursor: Block and receiver Call
// swap it for the duration of a nested evaluation and restore it on every
// exit path.
type Interpreter struct {
	env     *values.Environment
	runtime *asyncrt.Runtime
}

// New creates a root interpreter: a fresh root environment with every
// native intrinsic installed (std.Install) and a dedicated async runtime
// sized to workers.
func New(baseDir string, workers int) *Interpreter {
	env := values.NewRootEnvironment(baseDir)
	std.Install(env)
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Interpreter{env: env, runtime: asyncrt.New(workers)}
}

// Shutdown stops the interpreter's async runtime. Module sub-interpreters
// must call this once loading completes to avoid
// leaking worker goroutines.
func (in *Interpreter) Shutdown() { in.runtime.Shutdown() }

// Env exposes the interpreter's root environment, e.g. so a CLI can
// Define pre-seeded globals before running a program.
func (in *Interpreter) Env() *values.Environment { return in.env }

// Run evaluates a whole parsed program: each top-level expression in
// order, returning the last one's value.
func (in *Interpreter) Run(program []ast.Expr) (values.Value, error) {
	var result values.Value = values.NilValue
	for _, expr := range program {
		v, err := in.Eval(expr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// Eval is the central dispatcher: every Expr variant maps to exactly one
// case.
func (in *Interpreter) Eval(expr ast.Expr) (values.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return in.evalLiteral(n)
	case *ast.Nil:
		return values.NilValue, nil
	case *ast.Variable:
		return in.evalVariable(n)
	case *ast.Grouping:
		return in.Eval(n.Inner)
	case *ast.ArrayLit:
		return in.evalArrayLit(n)
	case *ast.DictLit:
		return in.evalDictLit(n)

	case *ast.Unary:
		return in.evalUnary(n)
	case *ast.Binary:
		return in.evalBinary(n)
	case *ast.Logical:
		return in.evalLogical(n)

	case *ast.Let:
		return in.evalLet(n)
	case *ast.Assign:
		return in.evalAssign(n)
	case *ast.Get:
		return in.evalGet(n)
	case *ast.Set:
		return in.evalSet(n)

	case *ast.Block:
		return in.evalBlock(n)
	case *ast.If:
		return in.evalIf(n)
	case *ast.While:
		return in.evalWhile(n)
	case *ast.For:
		return in.evalFor(n)
	case *ast.TryCatch:
		return in.evalTryCatch(n)
	case *ast.Return:
		return in.evalReturn(n)

	case *ast.FunctionLit:
		return in.evalFunctionLit(n)
	case *ast.AsyncFunctionLit:
		return in.evalAsyncFunctionLit(n)
	case *ast.ClassLit:
		return in.evalClassLit(n)
	case *ast.Call:
		return in.evalCall(n)
	case *ast.Await:
		return in.evalAwait(n)

	case *ast.Import:
		return in.evalImport(n)
	}
	return nil, values.NewRuntimeError(values.ErrInvalidCall, expr.Line(), "unhandled expression node %T", expr)
}

func (in *Interpreter) evalLiteral(n *ast.Literal) (values.Value, error) {
	switch v := n.Value.(type) {
	case float64:
		return values.Number{V: v}, nil
	case string:
		return values.String{V: v}, nil
	case bool:
		return values.Boolean{V: v}, nil
	}
	return values.NilValue, nil
}

func (in *Interpreter) evalVariable(n *ast.Variable) (values.Value, error) {
	v, ok := in.env.Get(n.Name)
	if !ok {
		return nil, values.NewRuntimeError(values.ErrUndefinedVariable, n.Line(), "undefined variable %q", n.Name)
	}
	return v, nil
}

func (in *Interpreter) evalArrayLit(n *ast.ArrayLit) (values.Value, error) {
	elems := make([]values.Value, 0, len(n.Elements))
	for _, e := range n.Elements {
		v, err := in.Eval(e)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return &values.Array{Elements: elems}, nil
}

func (in *Interpreter) evalDictLit(n *ast.DictLit) (values.Value, error) {
	dict := values.NewDictionary()
	for _, entry := range n.Entries {
		k, err := in.Eval(entry.Key)
		if err != nil {
			return nil, err
		}
		key, ok := k.(values.String)
		if !ok {
			return nil, values.NewRuntimeError(values.ErrInvalidDictKey, n.Line(),
				"dictionary keys must be strings, got %s", k.Kind())
		}
		v, err := in.Eval(entry.Value)
		if err != nil {
			return nil, err
		}
		dict.Entries[key.V] = v
	}
	return dict, nil
}
