package eval

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
	"github.com/lumenscript/lumen/parser"
	"github.com/lumenscript/lumen/values"
)

// evalImport resolves the path against the current environment's base
// directory, succeeds silently if that module name is already
// registered, otherwise parses and evaluates the file in a fresh
// sub-interpreter and registers its top-level environment under the
// file's stem.
func (in *Interpreter) evalImport(n *ast.Import) (values.Value, error) {
	pathVal, err := in.Eval(n.Path)
	if err != nil {
		return nil, err
	}
	pathStr, ok := pathVal.(values.String)
	if !ok {
		return nil, values.NewRuntimeError(values.ErrInvalidImport, n.Line(), "import path must be a string, got %s", pathVal.Kind())
	}

	resolved := pathStr.V
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(in.env.BaseDir(), resolved)
	}
	name := strings.TrimSuffix(filepath.Base(resolved), filepath.Ext(resolved))

	root := in.env.Root()
	if root.HasModule(name) {
		return values.NilValue, nil
	}

	src, err := os.ReadFile(resolved)
	if err != nil {
		return nil, values.NewRuntimeError(values.ErrInvalidImport, n.Line(), "import %q: %s", pathStr.V, err)
	}

	l := lexer.New(string(src))
	tokens := l.Scan()
	if errs := l.Errors(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, values.NewRuntimeError(values.ErrInvalidImport, n.Line(),
			"import %q: %s", pathStr.V, strings.Join(msgs, "; "))
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, values.NewRuntimeError(values.ErrInvalidImport, n.Line(), "import %q: %s", pathStr.V, err)
	}

	sub := New(filepath.Dir(resolved), 0)
	defer sub.Shutdown()
	if _, err := sub.Run(program); err != nil {
		return nil, values.NewRuntimeError(values.ErrInvalidImport, n.Line(), "import %q: %s", pathStr.V, err)
	}

	root.DefineModule(&values.Module{Name: name, Path: resolved, Env: sub.env})
	return values.NilValue, nil
}
