/*
File    : lumen/cmd/lumen/main.go

The lumen CLI entry point: lex/parse/run a script, or print version info.
*/
package main

import (
	"os"

	"github.com/lumenscript/lumen/cmd/lumen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
