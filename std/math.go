package std

import (
	"math"

	"github.com/lumenscript/lumen/values"
)

func init() {
	register(
		&values.NativeFunction{Name: "sqrt", Arity: 1, Fn: nativeSqrt},
		&values.NativeFunction{Name: "pow", Arity: 2, Fn: nativePow},
		&values.NativeFunction{Name: "abs", Arity: 1, Fn: nativeAbs},
		&values.NativeFunction{Name: "round", Arity: 1, Fn: nativeRound},
		&values.NativeFunction{Name: "floor", Arity: 1, Fn: nativeFloor},
		&values.NativeFunction{Name: "ceil", Arity: 1, Fn: nativeCeil},
		&values.NativeFunction{Name: "len", Arity: 1, Fn: nativeLen},
		&values.NativeFunction{Name: "concat", Arity: 2, Fn: nativeConcat},
		&values.NativeFunction{Name: "substring", Arity: 3, Fn: nativeSubstring},
	)
}

func nativeSqrt(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("sqrt", args, 1); err != nil {
		return nil, err
	}
	n, err := number("sqrt", args, 0)
	if err != nil {
		return nil, err
	}
	return values.Number{V: math.Sqrt(n)}, nil
}

func nativePow(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("pow", args, 2); err != nil {
		return nil, err
	}
	base, err := number("pow", args, 0)
	if err != nil {
		return nil, err
	}
	exp, err := number("pow", args, 1)
	if err != nil {
		return nil, err
	}
	return values.Number{V: math.Pow(base, exp)}, nil
}

func nativeAbs(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("abs", args, 1); err != nil {
		return nil, err
	}
	n, err := number("abs", args, 0)
	if err != nil {
		return nil, err
	}
	return values.Number{V: math.Abs(n)}, nil
}

func nativeRound(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("round", args, 1); err != nil {
		return nil, err
	}
	n, err := number("round", args, 0)
	if err != nil {
		return nil, err
	}
	return values.Number{V: math.Round(n)}, nil
}

func nativeFloor(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("floor", args, 1); err != nil {
		return nil, err
	}
	n, err := number("floor", args, 0)
	if err != nil {
		return nil, err
	}
	return values.Number{V: math.Floor(n)}, nil
}

func nativeCeil(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("ceil", args, 1); err != nil {
		return nil, err
	}
	n, err := number("ceil", args, 0)
	if err != nil {
		return nil, err
	}
	return values.Number{V: math.Ceil(n)}, nil
}

// nativeLen accepts a string, array, or dictionary, collapsing what would
// otherwise be three separate per-type length builtins into one
// polymorphic native.
func nativeLen(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("len", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case values.String:
		return values.Number{V: float64(len(v.V))}, nil
	case *values.Array:
		return values.Number{V: float64(len(v.Elements))}, nil
	case *values.Dictionary:
		return values.Number{V: float64(len(v.Entries))}, nil
	default:
		return nil, values.NewRuntimeError(values.ErrTypeMismatch, 0,
			"len: unsupported operand %s", args[0].Kind())
	}
}

func nativeConcat(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("concat", args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case values.String:
		b, err := str("concat", args, 1)
		if err != nil {
			return nil, err
		}
		return values.String{V: a.V + b}, nil
	case *values.Array:
		b, ok := args[1].(*values.Array)
		if !ok {
			return nil, values.NewRuntimeError(values.ErrTypeMismatch, 0,
				"concat: both operands must be arrays")
		}
		merged := make([]values.Value, 0, len(a.Elements)+len(b.Elements))
		merged = append(merged, a.Elements...)
		merged = append(merged, b.Elements...)
		return &values.Array{Elements: merged}, nil
	default:
		return nil, values.NewRuntimeError(values.ErrTypeMismatch, 0,
			"concat: unsupported operand %s", args[0].Kind())
	}
}

func nativeSubstring(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("substring", args, 3); err != nil {
		return nil, err
	}
	s, err := str("substring", args, 0)
	if err != nil {
		return nil, err
	}
	startF, err := number("substring", args, 1)
	if err != nil {
		return nil, err
	}
	endF, err := number("substring", args, 2)
	if err != nil {
		return nil, err
	}
	start, end := int(startF), int(endF)
	if start < 0 || end > len(s) || start > end {
		return nil, values.NewRuntimeError(values.ErrInvalidCall, 0,
			"substring: range [%d,%d) out of bounds for length %d", start, end, len(s))
	}
	return values.String{V: s[start:end]}, nil
}
