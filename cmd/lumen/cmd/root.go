/*
Package cmd is the `lumen` command tree: run/lex/parse/version
subcommands over the lexer → parser → evaluator pipeline, grounded on
CWBudde-go-dws's `cmd/dwscript/cmd` package layout.
*/
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; defaults to a development marker.
	Version = "0.1.0-dev"

	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:     "lumen [script]",
	Short:   "Lumen interpreter",
	Version: Version,
	Long: `Lumen is a tree-walking interpreter for a small dynamically typed
scripting language with classes, modules, aggregate literals, try/catch,
and cooperative async/await over a worker-pool runtime.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(c *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	RunE: func(c *cobra.Command, args []string) error {
		return runScript(args)
	},
}

// Execute runs the root command; main() just calls this and exits
// non-zero on error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colourized diagnostics")
}

var noColor bool

func fail(format string, a ...interface{}) {
	redColor.Fprintf(os.Stderr, format+"\n", a...)
}

func info(format string, a ...interface{}) {
	cyanColor.Fprintf(os.Stdout, format+"\n", a...)
}

func printResult(s string) {
	yellowColor.Fprintln(os.Stdout, s)
}
