package eval

import "github.com/lumenscript/lumen/values"

// returnUnwind tunnels a `return` value up to the nearest function-call
// frame. It implements error so it can travel through the
// ordinary error-returning Eval chain; only the call boundaries
// (callFunction, callMethod, and the task body in callAsyncFunction)
// catch it, everything else must let it pass through unchanged.
type returnUnwind struct {
	value values.Value
}

func (r *returnUnwind) Error() string { return "return outside of a function call" }
