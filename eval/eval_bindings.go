package eval

import (
	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/values"
)

func (in *Interpreter) evalLet(n *ast.Let) (values.Value, error) {
	var v values.Value = values.NilValue
	if n.Init != nil {
		var err error
		v, err = in.Eval(n.Init)
		if err != nil {
			return nil, err
		}
	}
	in.env.Define(n.Name, v)
	return v, nil
}

func (in *Interpreter) evalAssign(n *ast.Assign) (values.Value, error) {
	v, err := in.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	if !in.env.Assign(n.Name, v) {
		return nil, values.NewRuntimeError(values.ErrUndefinedVariable, n.Line(), "undefined variable %q", n.Name)
	}
	return v, nil
}

// evalGet implements the three receiver shapes: instance field (string
// key read from the dotted form), array (numeric, bounds-checked index),
// dictionary (string key).
func (in *Interpreter) evalGet(n *ast.Get) (values.Value, error) {
	obj, err := in.Eval(n.Object)
	if err != nil {
		return nil, err
	}
	switch receiver := obj.(type) {
	case *values.Instance:
		field, err := in.evalFieldKey(n.Key)
		if err != nil {
			return nil, err
		}
		v, ok := receiver.Env.GetOwn(field)
		if !ok {
			return nil, values.NewRuntimeError(values.ErrInvalidGet, n.Line(), "instance has no field %q", field)
		}
		return v, nil
	case *values.Array:
		idx, err := in.evalIndex(n.Key)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(receiver.Elements) {
			return nil, values.NewRuntimeError(values.ErrInvalidGet, n.Line(),
				"array index %d out of bounds (length %d)", idx, len(receiver.Elements))
		}
		return receiver.Elements[idx], nil
	case *values.Dictionary:
		key, err := in.evalDictKey(n.Key)
		if err != nil {
			return nil, err
		}
		v, ok := receiver.Entries[key]
		if !ok {
			return values.NilValue, nil
		}
		return v, nil
	}
	return nil, values.NewRuntimeError(values.ErrInvalidGet, n.Line(),
		"cannot read a member of %s", obj.Kind())
}

func (in *Interpreter) evalSet(n *ast.Set) (values.Value, error) {
	obj, err := in.Eval(n.Object)
	if err != nil {
		return nil, err
	}
	val, err := in.Eval(n.Value)
	if err != nil {
		return nil, err
	}
	switch receiver := obj.(type) {
	case *values.Instance:
		field, err := in.evalFieldKey(n.Key)
		if err != nil {
			return nil, err
		}
		receiver.Env.SetOwn(field, val)
		return val, nil
	case *values.Array:
		idx, err := in.evalIndex(n.Key)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(receiver.Elements) {
			return nil, values.NewRuntimeError(values.ErrInvalidSet, n.Line(),
				"array index %d out of bounds (length %d)", idx, len(receiver.Elements))
		}
		receiver.Elements[idx] = val
		return val, nil
	case *values.Dictionary:
		key, err := in.evalDictKey(n.Key)
		if err != nil {
			return nil, err
		}
		receiver.Entries[key] = val
		return val, nil
	}
	return nil, values.NewRuntimeError(values.ErrInvalidSet, n.Line(),
		"cannot write a member of %s", obj.Kind())
}

// evalFieldKey reads the string literal key the parser built for dotted
// `object.field` access (parser_identifier.go always builds a Literal
// here; evalGet/evalSet are only reached via Get/Set nodes that might, in
// principle, carry any Expr, so this still evaluates rather than asserts).
func (in *Interpreter) evalFieldKey(key ast.Expr) (string, error) {
	v, err := in.Eval(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(values.String)
	if !ok {
		return "", values.NewRuntimeError(values.ErrInvalidGet, key.Line(), "field name must be a string, got %s", v.Kind())
	}
	return s.V, nil
}

func (in *Interpreter) evalIndex(key ast.Expr) (int, error) {
	v, err := in.Eval(key)
	if err != nil {
		return 0, err
	}
	n, ok := v.(values.Number)
	if !ok {
		return 0, values.NewRuntimeError(values.ErrInvalidGet, key.Line(), "array index must be a number, got %s", v.Kind())
	}
	return int(n.V), nil
}

func (in *Interpreter) evalDictKey(key ast.Expr) (string, error) {
	v, err := in.Eval(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(values.String)
	if !ok {
		return "", values.NewRuntimeError(values.ErrInvalidDictKey, key.Line(), "dictionary key must be a string, got %s", v.Kind())
	}
	return s.V, nil
}
