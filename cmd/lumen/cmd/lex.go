package cmd

import (
	"fmt"
	"os"

	"github.com/lumenscript/lumen/lexer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lexCmd)
}

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Dump the token stream for a Lumen script (developer tool)",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		l := lexer.New(string(src))
		tokens := l.Scan()
		if errs := l.Errors(); len(errs) > 0 {
			for _, e := range errs {
				fail("[LEX ERROR] %s", e)
			}
			os.Exit(65)
		}
		fmt.Print(lexer.Dump(tokens))
		return nil
	},
}
