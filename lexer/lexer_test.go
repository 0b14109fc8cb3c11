package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	l := New("(){}[]:,.-+;*/% != == <= >= ! = < >")
	tokens := l.Scan()
	require.Empty(t, l.Errors())
	want := []TokenKind{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COLON, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, SLASH, PERCENT,
		BANG_EQUAL, EQUAL_EQUAL, LESS_EQUAL, GREATER_EQUAL, BANG, EQUAL, LESS, GREATER, EOF,
	}
	assert.Equal(t, want, kinds(tokens))
}

func TestScanLineComment(t *testing.T) {
	l := New("1 // comment to end\n2")
	tokens := l.Scan()
	require.Empty(t, l.Errors())
	require.Len(t, tokens, 3)
	assert.Equal(t, "1.0", tokens[0].Literal)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanKeywords(t *testing.T) {
	l := New("and class new else false for fun dict if nil or return try catch super true var while import async await")
	tokens := l.Scan()
	require.Empty(t, l.Errors())
	want := []TokenKind{
		AND, CLASS, NEW, ELSE, FALSE, FOR, FUN, DICT, IF, NIL, OR, RETURN,
		TRY, CATCH, SUPER, TRUE, VAR, WHILE, IMPORT, ASYNC, AWAIT, EOF,
	}
	assert.Equal(t, want, kinds(tokens))
}

func TestScanIdentifierAllowsHyphen(t *testing.T) {
	l := New("catch_param my-var _x9")
	tokens := l.Scan()
	require.Empty(t, l.Errors())
	require.Len(t, tokens, 4)
	assert.Equal(t, "catch_param", tokens[0].Lexeme)
	assert.Equal(t, "my-var", tokens[1].Lexeme)
	assert.Equal(t, "_x9", tokens[2].Lexeme)
}

func TestNumberNormalisation(t *testing.T) {
	cases := map[string]string{
		"42":      "42.0",
		"3.140":   "3.14",
		"3.100":   "3.1",
		"0.0":     "0.0",
		"7.0":     "7.0",
		"1.2300":  "1.23",
	}
	for lexeme, want := range cases {
		l := New(lexeme)
		tokens := l.Scan()
		require.Empty(t, l.Errors())
		require.Equal(t, want, tokens[0].Literal, "lexeme %q", lexeme)
	}
}

func TestScanString(t *testing.T) {
	l := New(`"hello world"`)
	tokens := l.Scan()
	require.Empty(t, l.Errors())
	assert.Equal(t, STRING, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	l.Scan()
	require.Len(t, l.Errors(), 1)
	assert.Contains(t, l.Errors()[0].Error(), "unterminated string")
}

func TestUnknownCharacterContinues(t *testing.T) {
	l := New("1 @ 2")
	tokens := l.Scan()
	require.Len(t, l.Errors(), 1)
	// lexing continues past the bad character so the whole error list can be reported together
	require.Len(t, tokens, 4) // 1, INVALID, 2, EOF
	assert.Equal(t, "1.0", tokens[0].Literal)
	assert.Equal(t, "2.0", tokens[2].Literal)
}

func TestLineTracking(t *testing.T) {
	l := New("1\n2\n3")
	tokens := l.Scan()
	require.Empty(t, l.Errors())
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}
