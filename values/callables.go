package values

import (
	"fmt"
	"strings"

	"github.com/lumenscript/lumen/ast"
)

// MaxParams is the parameter-count ceiling enforced for both Function and
// AsyncFunction declarations and for call argument lists.
const MaxParams = 255

// Function is a user-defined, synchronous function value. Closure is the
// environment captured at the point the `fun` expression was evaluated —
// this repository resolves closure scoping in favour of correct lexical
// closures (a snapshot handle, not the caller's later environment); see
// DESIGN.md.
type Function struct {
	Name    string
	Params  []string
	Body    *ast.Block
	Closure *Environment
}

func (*Function) Kind() Kind { return KindFunction }

func (f *Function) String() string {
	return fmt.Sprintf("<fun %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}

// AsyncFunction is a user-defined function declared with `async fun`.
// Calling it submits its body to the async runtime and returns a Promise
// immediately instead of running synchronously.
type AsyncFunction struct {
	Name    string
	Params  []string
	Body    *ast.Block
	Closure *Environment
}

func (*AsyncFunction) Kind() Kind { return KindAsyncFunction }

func (f *AsyncFunction) String() string {
	return fmt.Sprintf("<async fun %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}

// Runtime is the callback surface a native function body needs back into
// the evaluator: invoking a Lumen-level callable, submitting work to the
// async runtime, and resolving relative paths. Defined in this package
// (rather than package std) so std can depend on values without values
// needing to depend on std or eval — eval satisfies this interface.
type Runtime interface {
	CallFunction(fn Value, args []Value) (Value, error)
	SubmitTask(body func() (Value, error)) *Promise
	BaseDir() string
}

// NativeHandler is the Go function backing a host-provided intrinsic.
// Defined here (rather than in package std) so Value itself can embed
// one without std importing values in both directions.
type NativeHandler func(rt Runtime, args []Value) (Value, error)

// NativeFunction wraps a host intrinsic registered into the root
// Environment's native table. An Arity of -1 marks a variadic native,
// for which the evaluator skips the argument-count check; every native
// package std registers has a fixed arity.
type NativeFunction struct {
	Name  string
	Arity int
	Fn    NativeHandler
}

func (*NativeFunction) Kind() Kind { return KindNativeFunction }

func (n *NativeFunction) String() string {
	return fmt.Sprintf("<native %s>", n.Name)
}
