package cmd

import (
	"os"
	"path/filepath"

	"github.com/lumenscript/lumen/eval"
	"github.com/lumenscript/lumen/lexer"
	"github.com/lumenscript/lumen/parser"
	"github.com/lumenscript/lumen/values"
	"github.com/spf13/cobra"
)

func dirOf(path string) string { return filepath.Dir(path) }

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Lex, parse, and evaluate a Lumen script",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		runScriptOrExit(args[0])
		return nil
	},
}

// runScript backs the bare `lumen <file>` invocation.
func runScript(args []string) error {
	if len(args) == 0 {
		return rootCmd.Usage()
	}
	runScriptOrExit(args[0])
	return nil
}

// runScriptOrExit implements the CLI's process-exit contract exactly:
// exit 65 on lex/parse failure, 70 on runtime failure, 0 on success.
func runScriptOrExit(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fail("[FILE ERROR] %s", err)
		os.Exit(65)
	}

	l := lexer.New(string(src))
	tokens := l.Scan()
	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fail("[LEX ERROR] %s", e)
		}
		os.Exit(65)
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		fail("[PARSE ERROR] %s", err)
		os.Exit(65)
	}

	cfg := loadConfig(path)
	in := eval.New(dirOf(path), cfg.Workers)
	defer in.Shutdown()

	result, err := in.Run(program)
	if err != nil {
		fail("[RUNTIME ERROR] %s", err)
		os.Exit(70)
	}
	if result != nil && result.Kind() != values.KindNil {
		printResult(result.String())
	}
}
