package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
	"github.com/lumenscript/lumen/parser"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Dump the expression tree for a Lumen script (developer tool)",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		tokens := lexer.New(string(src)).Scan()
		program, err := parser.New(tokens).Parse()
		if err != nil {
			fail("[PARSE ERROR] %s", err)
			os.Exit(65)
		}
		for _, e := range program {
			dumpExpr(os.Stdout, e, 0)
		}
		return nil
	},
}

// dumpExpr prints a shallow, indented tree view of an expression node —
// a developer aid for inspecting the parse tree, not a full pretty-printer.
func dumpExpr(w io.Writer, e ast.Expr, depth int) {
	pad := strings.Repeat("  ", depth)
	switch n := e.(type) {
	case *ast.Binary:
		fmt.Fprintf(w, "%sBinary %q (line %d)\n", pad, n.Op, n.Line())
		dumpExpr(w, n.Left, depth+1)
		dumpExpr(w, n.Right, depth+1)
	case *ast.Logical:
		fmt.Fprintf(w, "%sLogical %q (line %d)\n", pad, n.Op, n.Line())
		dumpExpr(w, n.Left, depth+1)
		dumpExpr(w, n.Right, depth+1)
	case *ast.Unary:
		fmt.Fprintf(w, "%sUnary %q (line %d)\n", pad, n.Op, n.Line())
		dumpExpr(w, n.Operand, depth+1)
	case *ast.Grouping:
		fmt.Fprintf(w, "%sGrouping (line %d)\n", pad, n.Line())
		dumpExpr(w, n.Inner, depth+1)
	case *ast.Literal:
		fmt.Fprintf(w, "%sLiteral %v (line %d)\n", pad, n.Value, n.Line())
	case *ast.Nil:
		fmt.Fprintf(w, "%sNil (line %d)\n", pad, n.Line())
	case *ast.Variable:
		fmt.Fprintf(w, "%sVariable %s (line %d)\n", pad, n.Name, n.Line())
	case *ast.Let:
		fmt.Fprintf(w, "%sLet %s (line %d)\n", pad, n.Name, n.Line())
		if n.Init != nil {
			dumpExpr(w, n.Init, depth+1)
		}
	case *ast.Assign:
		fmt.Fprintf(w, "%sAssign %s (line %d)\n", pad, n.Name, n.Line())
		dumpExpr(w, n.Value, depth+1)
	case *ast.Block:
		fmt.Fprintf(w, "%sBlock (line %d)\n", pad, n.Line())
		for _, sub := range n.Exprs {
			dumpExpr(w, sub, depth+1)
		}
	case *ast.If:
		fmt.Fprintf(w, "%sIf (line %d)\n", pad, n.Line())
		dumpExpr(w, n.Cond, depth+1)
		dumpExpr(w, n.Then, depth+1)
		if n.Else != nil {
			dumpExpr(w, n.Else, depth+1)
		}
	case *ast.Call:
		fmt.Fprintf(w, "%sCall (line %d)\n", pad, n.Line())
		if n.Receiver != nil {
			dumpExpr(w, n.Receiver, depth+1)
		}
		dumpExpr(w, n.Callee, depth+1)
		for _, a := range n.Args {
			dumpExpr(w, a, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s%T (line %d)\n", pad, e, e.Line())
	}
}
