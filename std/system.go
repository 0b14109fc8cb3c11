package std

import (
	"math/rand"
	"os"
	"time"

	"github.com/lumenscript/lumen/values"
)

func init() {
	register(
		&values.NativeFunction{Name: "exit", Arity: 1, Fn: nativeExit},
		&values.NativeFunction{Name: "random", Arity: 0, Fn: nativeRandom},
		&values.NativeFunction{Name: "clock", Arity: 0, Fn: nativeClock},
		&values.NativeFunction{Name: "typeOf", Arity: 1, Fn: nativeTypeOf},
		&values.NativeFunction{Name: "assert", Arity: 2, Fn: nativeAssert},
	)
}

// nativeExit terminates the process with the given numeric status code
// through os.Exit rather than unwinding Go's call stack.
func nativeExit(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("exit", args, 1); err != nil {
		return nil, err
	}
	code, err := number("exit", args, 0)
	if err != nil {
		return nil, err
	}
	os.Exit(int(code))
	return values.NilValue, nil // unreachable
}

func nativeRandom(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("random", args, 0); err != nil {
		return nil, err
	}
	return values.Number{V: rand.Float64()}, nil
}

func nativeClock(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("clock", args, 0); err != nil {
		return nil, err
	}
	return values.Number{V: float64(time.Now().UnixNano()) / 1e9}, nil
}

func nativeTypeOf(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("typeOf", args, 1); err != nil {
		return nil, err
	}
	return values.String{V: string(args[0].Kind())}, nil
}

// nativeAssert raises AssertionFailed when its two arguments are not equal
// under values.Equal's rules.
func nativeAssert(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("assert", args, 2); err != nil {
		return nil, err
	}
	if !values.Equal(args[0], args[1]) {
		return nil, values.NewRuntimeError(values.ErrAssertionFailed, 0,
			"assert failed: %s != %s", args[0].String(), args[1].String())
	}
	return values.NilValue, nil
}
