package eval

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/values"
)

// evalBlock creates a child environment for the block's lifetime, evaluates each entry in order, and yields the last one's value (or
// Nil for an empty block). The previous environment is restored on every
// exit path, including an error or a return unwinding through it.
func (in *Interpreter) evalBlock(n *ast.Block) (values.Value, error) {
	prev := in.env
	in.env = values.NewChild(prev)
	defer func() { in.env = prev }()

	var result values.Value = values.NilValue
	for _, e := range n.Exprs {
		v, err := in.Eval(e)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (in *Interpreter) evalIf(n *ast.If) (values.Value, error) {
	cond, err := in.Eval(n.Cond)
	if err != nil {
		return nil, err
	}
	if values.Truthy(cond) {
		return in.Eval(n.Then)
	}
	if n.Else != nil {
		return in.Eval(n.Else)
	}
	return values.NilValue, nil
}

func (in *Interpreter) evalWhile(n *ast.While) (values.Value, error) {
	var result values.Value = values.NilValue
	for {
		cond, err := in.Eval(n.Cond)
		if err != nil {
			return nil, err
		}
		if !values.Truthy(cond) {
			return result, nil
		}
		result, err = in.Eval(n.Body)
		if err != nil {
			return nil, err
		}
	}
}

// evalFor gives the loop its own child environment so an Init binding
// (typically a *ast.Let) doesn't leak into the enclosing scope, the same
// isolation Block gives its own bindings.
func (in *Interpreter) evalFor(n *ast.For) (values.Value, error) {
	prev := in.env
	in.env = values.NewChild(prev)
	defer func() { in.env = prev }()

	if n.Init != nil {
		if _, err := in.Eval(n.Init); err != nil {
			return nil, err
		}
	}

	var result values.Value = values.NilValue
	for {
		if n.Cond != nil {
			cond, err := in.Eval(n.Cond)
			if err != nil {
				return nil, err
			}
			if !values.Truthy(cond) {
				return result, nil
			}
		}

		var err error
		result, err = in.Eval(n.Body)
		if err != nil {
			return nil, err
		}

		if n.Inc != nil {
			if _, err := in.Eval(n.Inc); err != nil {
				return nil, err
			}
		}
	}
}

// evalTryCatch runs Try, and on any error other than a return unwinding
// through it, binds CatchParam to the error's message in a child
// environment and evaluates Catch.
func (in *Interpreter) evalTryCatch(n *ast.TryCatch) (values.Value, error) {
	v, err := in.Eval(n.Try)
	if err == nil {
		return v, nil
	}
	if _, isReturn := err.(*returnUnwind); isReturn {
		return nil, err
	}

	prev := in.env
	in.env = values.NewChild(prev)
	defer func() { in.env = prev }()

	in.env.Define(n.CatchParam, values.String{V: err.Error()})
	return in.Eval(n.Catch)
}

func (in *Interpreter) evalReturn(n *ast.Return) (values.Value, error) {
	var v values.Value = values.NilValue
	if n.Value != nil {
		var err error
		v, err = in.Eval(n.Value)
		if err != nil {
			return nil, err
		}
	}
	return nil, &returnUnwind{value: v}
}
