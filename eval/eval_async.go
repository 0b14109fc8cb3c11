package eval

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/values"
)

// evalAwait blocks until operand's Promise settles: a
// fulfilled promise yields its value, a rejected one surfaces its error
// unchanged if it is already a *values.RuntimeError, wrapped as
// ErrPromiseRejected otherwise.
func (in *Interpreter) evalAwait(n *ast.Await) (values.Value, error) {
	v, err := in.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	promise, ok := v.(*values.Promise)
	if !ok {
		return nil, values.NewRuntimeError(values.ErrInvalidCall, n.Line(), "await requires a promise, got %s", v.Kind())
	}
	result, err := promise.Resolve()
	if err != nil {
		if _, ok := err.(*values.RuntimeError); ok {
			return nil, err
		}
		return nil, values.NewRuntimeError(values.ErrPromiseRejected, n.Line(), "%s", err)
	}
	return result, nil
}

// CallFunction implements values.Runtime for native functions that need to
// invoke a Lumen-level callable (e.g. a callback argument). args are
// already-evaluated values rather than AST nodes.
func (in *Interpreter) CallFunction(fn values.Value, args []values.Value) (values.Value, error) {
	switch f := fn.(type) {
	case *values.Function:
		return in.callFunction(f, args, 0)
	case *values.AsyncFunction:
		return in.callAsyncFunction(f, args)
	case *values.NativeFunction:
		return in.callNative(f, args, 0)
	default:
		return nil, values.NewRuntimeError(values.ErrInvalidCall, 0, "%s is not callable", fn.Kind())
	}
}

// SubmitTask implements values.Runtime for natives that perform blocking
// I/O off the evaluator goroutine.
func (in *Interpreter) SubmitTask(body func() (values.Value, error)) *values.Promise {
	task := in.runtime.Submit(func() (interface{}, error) { return body() })
	return values.NewPromise(task)
}

// BaseDir implements values.Runtime, reporting the interpreter's current
// base directory. The file natives (readFile and the others) do not call
// it; they pass their path to the host unchanged.
func (in *Interpreter) BaseDir() string { return in.env.BaseDir() }
