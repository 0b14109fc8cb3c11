package std

import (
	"bufio"
	"fmt"
	"os"

	"github.com/lumenscript/lumen/values"
)

var stdinReader = bufio.NewReader(os.Stdin)

func init() {
	register(
		&values.NativeFunction{Name: "print", Arity: 1, Fn: nativePrint},
		&values.NativeFunction{Name: "input", Arity: 0, Fn: nativeInput},
		&values.NativeFunction{Name: "einput", Arity: 1, Fn: nativeEinput},
		&values.NativeFunction{Name: "readFile", Arity: 1, Fn: nativeReadFile},
		&values.NativeFunction{Name: "writeFile", Arity: 2, Fn: nativeWriteFile},
		&values.NativeFunction{Name: "appendFile", Arity: 2, Fn: nativeAppendFile},
	)
}

// nativePrint is blocking and synchronous, unlike the
// net/async intrinsics which submit a task.
func nativePrint(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("print", args, 1); err != nil {
		return nil, err
	}
	fmt.Println(args[0].String())
	return values.NilValue, nil
}

func nativeInput(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("input", args, 0); err != nil {
		return nil, err
	}
	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return nil, values.NewRuntimeError(values.ErrIO, 0, "input: %s", err)
	}
	return values.String{V: trimNewline(line)}, nil
}

// nativeEinput prints a prompt to stderr before blocking on stdin, the way
// an "e"-prefixed input often denotes "echo prompt" in line-oriented
// interpreters.
func nativeEinput(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("einput", args, 1); err != nil {
		return nil, err
	}
	prompt, err := str("einput", args, 0)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(os.Stderr, prompt)
	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return nil, values.NewRuntimeError(values.ErrIO, 0, "einput: %s", err)
	}
	return values.String{V: trimNewline(line)}, nil
}

func nativeReadFile(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("readFile", args, 1); err != nil {
		return nil, err
	}
	path, err := str("readFile", args, 0)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, values.NewRuntimeError(values.ErrIO, 0, "readFile: %s", err)
	}
	return values.String{V: string(data)}, nil
}

func nativeWriteFile(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("writeFile", args, 2); err != nil {
		return nil, err
	}
	path, err := str("writeFile", args, 0)
	if err != nil {
		return nil, err
	}
	contents, err := str("writeFile", args, 1)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return nil, values.NewRuntimeError(values.ErrIO, 0, "writeFile: %s", err)
	}
	return values.NilValue, nil
}

func nativeAppendFile(rt values.Runtime, args []values.Value) (values.Value, error) {
	if err := arity("appendFile", args, 2); err != nil {
		return nil, err
	}
	path, err := str("appendFile", args, 0)
	if err != nil {
		return nil, err
	}
	contents, err := str("appendFile", args, 1)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, values.NewRuntimeError(values.ErrIO, 0, "appendFile: %s", err)
	}
	defer f.Close()
	if _, err := f.WriteString(contents); err != nil {
		return nil, values.NewRuntimeError(values.ErrIO, 0, "appendFile: %s", err)
	}
	return values.NilValue, nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
