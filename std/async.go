package std

import (
	"time"

	"github.com/lumenscript/lumen/values"
)

func init() {
	register(
		&values.NativeFunction{Name: "delay", Arity: 1, Fn: nativeDelay},
	)
}

// nativeDelay submits a task that sleeps for the given number of seconds
// and resolves to nil, returning the pending Promise immediately without
// blocking the calling goroutine.
func nativeDelay(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("delay", args, 1); err != nil {
		return nil, err
	}
	seconds, err := number("delay", args, 0)
	if err != nil {
		return nil, err
	}
	promise := rt.SubmitTask(func() (values.Value, error) {
		time.Sleep(time.Duration(seconds * float64(time.Second)))
		return values.NilValue, nil
	})
	return promise, nil
}
