package std

import "github.com/lumenscript/lumen/values"

// arity checks an exact argument count for a native function, raising a
// RuntimeError rather than a sentinel error value on mismatch.
func arity(name string, args []values.Value, want int) error {
	if len(args) != want {
		return values.NewRuntimeError(values.ErrExpectedArgument, 0,
			"%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func arityRange(name string, args []values.Value, min, max int) error {
	if len(args) < min || len(args) > max {
		return values.NewRuntimeError(values.ErrExpectedArgument, 0,
			"%s expects between %d and %d argument(s), got %d", name, min, max, len(args))
	}
	return nil
}

func number(name string, args []values.Value, i int) (float64, error) {
	n, ok := args[i].(values.Number)
	if !ok {
		return 0, values.NewRuntimeError(values.ErrTypeMismatch, 0,
			"%s expects a number for argument %d, got %s", name, i+1, args[i].Kind())
	}
	return n.V, nil
}

func str(name string, args []values.Value, i int) (string, error) {
	s, ok := args[i].(values.String)
	if !ok {
		return "", values.NewRuntimeError(values.ErrTypeMismatch, 0,
			"%s expects a string for argument %d, got %s", name, i+1, args[i].Kind())
	}
	return s.V, nil
}
