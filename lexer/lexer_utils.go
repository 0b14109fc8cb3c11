package lexer

import (
	"fmt"
	"strings"
)

// Dump renders a token stream one-per-line, used by the `lumen lex`
// developer command to inspect the scanner's output.
func Dump(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Literal != "" {
			fmt.Fprintf(&b, "%-4d %-12s %-20q %q\n", t.Line, t.Kind, t.Lexeme, t.Literal)
		} else {
			fmt.Fprintf(&b, "%-4d %-12s %-20q\n", t.Line, t.Kind, t.Lexeme)
		}
	}
	return b.String()
}
