package std

import (
	"strconv"

	"github.com/lumenscript/lumen/values"
)

func init() {
	register(
		&values.NativeFunction{Name: "toString", Arity: 1, Fn: nativeToString},
		&values.NativeFunction{Name: "toNumber", Arity: 1, Fn: nativeToNumber},
		&values.NativeFunction{Name: "toBool", Arity: 1, Fn: nativeToBool},
	)
}

func nativeToString(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("toString", args, 1); err != nil {
		return nil, err
	}
	return values.String{V: args[0].String()}, nil
}

func nativeToNumber(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("toNumber", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case values.Number:
		return v, nil
	case values.String:
		f, err := strconv.ParseFloat(v.V, 64)
		if err != nil {
			return nil, values.NewRuntimeError(values.ErrTypeMismatch, 0,
				"toNumber: %q is not a valid number", v.V)
		}
		return values.Number{V: f}, nil
	case values.Boolean:
		if v.V {
			return values.Number{V: 1}, nil
		}
		return values.Number{V: 0}, nil
	default:
		return nil, values.NewRuntimeError(values.ErrTypeMismatch, 0,
			"toNumber: cannot convert %s", args[0].Kind())
	}
}

func nativeToBool(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("toBool", args, 1); err != nil {
		return nil, err
	}
	return values.Boolean{V: values.Truthy(args[0])}, nil
}
