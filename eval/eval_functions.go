package eval

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/values"
)

func (in *Interpreter) evalFunctionLit(n *ast.FunctionLit) (values.Value, error) {
	fn := &values.Function{Name: n.Name, Params: n.Params, Body: n.Body, Closure: in.env}
	if n.Name != "" {
		in.env.Define(n.Name, fn)
	}
	return fn, nil
}

func (in *Interpreter) evalAsyncFunctionLit(n *ast.AsyncFunctionLit) (values.Value, error) {
	fn := &values.AsyncFunction{Name: n.Name, Params: n.Params, Body: n.Body, Closure: in.env}
	if n.Name != "" {
		in.env.Define(n.Name, fn)
	}
	return fn, nil
}

// evalClassLit builds a method table of plain Functions closed over the
// environment the class declaration was evaluated in; `new`
// installs each into a fresh Instance environment at construction time.
func (in *Interpreter) evalClassLit(n *ast.ClassLit) (values.Value, error) {
	methods := make(map[string]*values.Function, len(n.Methods))
	for _, m := range n.Methods {
		methods[m.Name] = &values.Function{Name: m.Name, Params: m.Params, Body: m.Body, Closure: in.env}
	}
	class := &values.Class{Name: n.Name, Methods: methods, Closure: in.env}
	in.env.Define(n.Name, class)
	return class, nil
}

// evalCall dispatches a call by the callee's runtime kind: a class callee
// constructs an Instance and runs its constructor if one is declared; a
// receiver call runs the method body in a fresh child of the receiver
// Instance's own Env with `this` bound to the Instance, so sibling members
// resolve without qualification and `this.field` reads/writes land on the
// right Instance; a plain Function/AsyncFunction call runs in a fresh
// child of its Closure; a NativeFunction call invokes its Go handler
// directly with already-evaluated arguments.
func (in *Interpreter) evalCall(n *ast.Call) (values.Value, error) {
	args, err := in.evalArgs(n.Args)
	if err != nil {
		return nil, err
	}

	if n.Receiver != nil {
		return in.evalReceiverCall(n, args)
	}

	callee, err := in.Eval(n.Callee)
	if err != nil {
		return nil, err
	}

	switch fn := callee.(type) {
	case *values.Class:
		return in.construct(fn, args, n.Line())
	case *values.Function:
		return in.callFunction(fn, args, n.Line())
	case *values.AsyncFunction:
		return in.callAsyncFunction(fn, args)
	case *values.NativeFunction:
		return in.callNative(fn, args, n.Line())
	default:
		return nil, values.NewRuntimeError(values.ErrInvalidCall, n.Line(), "%s is not callable", callee.Kind())
	}
}

func (in *Interpreter) evalArgs(exprs []ast.Expr) ([]values.Value, error) {
	args := make([]values.Value, 0, len(exprs))
	for _, e := range exprs {
		v, err := in.Eval(e)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// evalReceiverCall evaluates the receiver, looks the method up on the
// receiver Instance's class-installed bindings, then runs it via
// callMethod so `this` and sibling members resolve against that Instance.
func (in *Interpreter) evalReceiverCall(n *ast.Call, args []values.Value) (values.Value, error) {
	receiver, err := in.Eval(n.Receiver)
	if err != nil {
		return nil, err
	}
	instance, ok := receiver.(*values.Instance)
	if !ok {
		return nil, values.NewRuntimeError(values.ErrInvalidCall, n.Line(),
			"cannot call a method on %s", receiver.Kind())
	}

	variable, ok := n.Callee.(*ast.Variable)
	if !ok {
		return nil, values.NewRuntimeError(values.ErrInvalidCall, n.Line(), "invalid method call target")
	}
	methodVal, ok := instance.Env.GetOwn(variable.Name)
	if !ok {
		return nil, values.NewRuntimeError(values.ErrInvalidCall, n.Line(), "instance has no method %q", variable.Name)
	}
	fn, ok := methodVal.(*values.Function)
	if !ok {
		return nil, values.NewRuntimeError(values.ErrInvalidCall, n.Line(), "%q is not a method", variable.Name)
	}

	return in.callMethod(instance, fn, args, n.Line())
}

// construct builds a fresh Instance, installs every class method bound to
// its own Env, then runs the constructor if the class
// declares one under the conventional name.
func (in *Interpreter) construct(class *values.Class, args []values.Value, line int) (values.Value, error) {
	instEnv := values.NewChild(class.Closure)
	instance := &values.Instance{ClassName: class.Name, Env: instEnv}
	for name, method := range class.Methods {
		instEnv.Define(name, method)
	}

	ctor, ok := class.Methods[values.ConstructorName]
	if !ok {
		return instance, nil
	}

	if _, err := in.callMethod(instance, ctor, args, line); err != nil {
		return nil, err
	}
	return instance, nil
}

// callFunction runs fn's body in a fresh child of its Closure with
// parameters bound positionally, catching the returnUnwind sentinel at
// this boundary.
func (in *Interpreter) callFunction(fn *values.Function, args []values.Value, line int) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, values.NewRuntimeError(values.ErrExpectedArgument, line,
			"%s expects %d argument(s), got %d", fn.String(), len(fn.Params), len(args))
	}

	prev := in.env
	in.env = values.NewChild(fn.Closure)
	defer func() { in.env = prev }()

	for i, p := range fn.Params {
		in.env.Define(p, args[i])
	}

	v, err := in.Eval(fn.Body)
	if err != nil {
		if ret, ok := err.(*returnUnwind); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return v, nil
}

// callMethod runs fn's body (a method or constructor) in a fresh child of
// instance's own Env, with `this` defined there alongside the positional
// parameters. Running off instance.Env rather than fn.Closure puts sibling
// fields and methods one lookup away with no qualification, while
// instance.Env's own parent (the class's declaration scope) stays reachable
// for any free variable the method body closes over.
func (in *Interpreter) callMethod(instance *values.Instance, fn *values.Function, args []values.Value, line int) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, values.NewRuntimeError(values.ErrExpectedArgument, line,
			"%s expects %d argument(s), got %d", fn.String(), len(fn.Params), len(args))
	}

	prev := in.env
	in.env = values.NewChild(instance.Env)
	defer func() { in.env = prev }()

	in.env.Define("this", instance)
	for i, p := range fn.Params {
		in.env.Define(p, args[i])
	}

	v, err := in.Eval(fn.Body)
	if err != nil {
		if ret, ok := err.(*returnUnwind); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return v, nil
}

// callAsyncFunction submits the body to the async runtime and returns a
// Promise immediately instead of running synchronously.
// The task runs the call against a private Interpreter sharing this one's
// root environment and runtime, so concurrent async calls don't race on
// in.env.
func (in *Interpreter) callAsyncFunction(fn *values.AsyncFunction, args []values.Value) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, values.NewRuntimeError(values.ErrExpectedArgument, fn.Body.Line(),
			"%s expects %d argument(s), got %d", fn.String(), len(fn.Params), len(args))
	}
	task := in.runtime.Submit(func() (interface{}, error) {
		call := &Interpreter{env: values.NewChild(fn.Closure), runtime: in.runtime}
		for i, p := range fn.Params {
			call.env.Define(p, args[i])
		}
		v, err := call.Eval(fn.Body)
		if err != nil {
			if ret, ok := err.(*returnUnwind); ok {
				return ret.value, nil
			}
			return nil, err
		}
		return v, nil
	})
	return values.NewPromise(task), nil
}

func (in *Interpreter) callNative(fn *values.NativeFunction, args []values.Value, line int) (values.Value, error) {
	if fn.Arity >= 0 && len(args) != fn.Arity {
		return nil, values.NewRuntimeError(values.ErrExpectedArgument, line,
			"%s expects %d argument(s), got %d", fn.String(), fn.Arity, len(args))
	}
	return fn.Fn(in, args)
}
