/*
File    : lumen/std/std.go

Package std holds every native intrinsic installed into the root
environment: system, I/O, conversion, math, async, and net. Each concern
file builds its own slice of *values.NativeFunction and registers it
here, one file per grouping (system/io/conversion/math/async/net) rather than one
flat file, so each native family can be read and tested in isolation.

*/
package std

import "github.com/lumenscript/lumen/values"

// natives accumulates every concern file's contribution via init().
var natives []*values.NativeFunction

func register(fns ...*values.NativeFunction) {
	natives = append(natives, fns...)
}

// Install defines every native intrinsic on the given root environment.
func Install(env *values.Environment) {
	for _, fn := range natives {
		env.DefineNative(fn)
	}
}
