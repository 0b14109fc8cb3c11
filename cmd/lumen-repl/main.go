/*
File    : lumen/cmd/lumen-repl/main.go

An interactive Lumen REPL: a readline-driven read-eval-print loop with
colourized output, running each line through the same lexer / parser /
eval.Interpreter pipeline the `lumen run` subcommand uses.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/lumenscript/lumen/eval"
	"github.com/lumenscript/lumen/lexer"
	"github.com/lumenscript/lumen/parser"
	"github.com/lumenscript/lumen/values"
)

const (
	version = "0.1.0-dev"
	prompt  = "lumen >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
  _
 | |   _   _ _ __ ___   ___ _ __
 | |  | | | | '_ ` + "`" + ` _ \ / _ \ '_ \
 | |__| |_| | | | | | |  __/ | | |
 |_____\__,_|_| |_| |_|\___|_| |_|
`

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	out := colorable.NewColorableStdout()

	printBanner(out)

	rl, err := readline.New(prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %s\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	in := eval.New(".", 0)
	defer in.Shutdown()

	for {
		input, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "Good Bye!")
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			fmt.Fprintln(out, "Good Bye!")
			return
		}
		rl.SaveHistory(input)
		evalLine(out, in, input)
	}
}

func printBanner(out io.Writer) {
	blueColor.Fprintf(out, "%s\n", line)
	greenColor.Fprintf(out, "%s\n", banner)
	blueColor.Fprintf(out, "%s\n", line)
	yellowColor.Fprintln(out, "Lumen "+version)
	blueColor.Fprintf(out, "%s\n", line)
	cyanColor.Fprintln(out, "Type your code and press enter. Type '.exit' to quit.")
	blueColor.Fprintf(out, "%s\n", line)
}

func evalLine(out io.Writer, in *eval.Interpreter, src string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(out, "[RUNTIME ERROR] %v\n", r)
		}
	}()

	l := lexer.New(src)
	tokens := l.Scan()
	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(out, "[LEX ERROR] %s\n", e)
		}
		return
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		redColor.Fprintf(out, "[PARSE ERROR] %s\n", err)
		return
	}

	result, err := in.Run(program)
	if err != nil {
		redColor.Fprintf(out, "%s\n", err)
		return
	}
	if result != nil && result.Kind() != values.KindNil {
		yellowColor.Fprintf(out, "%s\n", result.String())
	}
}
