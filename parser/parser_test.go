package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
)

func parse(t *testing.T, src string) []ast.Expr {
	t.Helper()
	toks := lexer.New(src).Scan()
	exprs, err := New(toks).Parse()
	require.NoError(t, err)
	return exprs
}

func TestParsePrecedenceLadder(t *testing.T) {
	// comparison binds looser than logical, which binds looser than
	// additive, which binds looser than multiplicative, so
	// `==` sits outermost and its right operand still absorbs the `and`.
	exprs := parse(t, "1 + 2 * 3 == 7 and true;")
	require.Len(t, exprs, 1)
	bin, ok := exprs[0].(*ast.Binary)
	require.True(t, ok, "top level should be the == comparison")
	assert.Equal(t, "==", bin.Op)
	_, ok = bin.Left.(*ast.Binary)
	assert.True(t, ok, "left of == is the additive chain 1 + 2 * 3")
	logical, ok := bin.Right.(*ast.Logical)
	require.True(t, ok, "right of == absorbs `and true`")
	assert.Equal(t, "and", logical.Op)
}

func TestParseAndOrLooserThanAdditive(t *testing.T) {
	exprs := parse(t, "1 and 2 + 3;")
	require.Len(t, exprs, 1)
	l, ok := exprs[0].(*ast.Logical)
	require.True(t, ok)
	assert.Equal(t, "and", l.Op)
	_, ok = l.Right.(*ast.Binary)
	assert.True(t, ok, "2 + 3 should parse as the Logical's right operand")
}

func TestParseNumberNormalisation(t *testing.T) {
	exprs := parse(t, "42;")
	lit := exprs[0].(*ast.Literal)
	assert.Equal(t, float64(42), lit.Value)
}

func TestParseVarAndAssign(t *testing.T) {
	exprs := parse(t, "var x = 1; x = 2;")
	require.Len(t, exprs, 2)
	let, ok := exprs[0].(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	assign, ok := exprs[1].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParseIfElse(t *testing.T) {
	exprs := parse(t, `if (x < 2) return x; else return 0;`)
	ifExpr, ok := exprs[0].(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, ifExpr.Else)
}

func TestParseFunctionAndCall(t *testing.T) {
	exprs := parse(t, `fun f(n) { return n; } f(1);`)
	require.Len(t, exprs, 2)
	fn, ok := exprs[0].(*ast.FunctionLit)
	require.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, []string{"n"}, fn.Params)
	call, ok := exprs[1].(*ast.Call)
	require.True(t, ok)
	assert.Nil(t, call.Receiver)
}

func TestParseClassWithBareMethods(t *testing.T) {
	exprs := parse(t, `class C { _construct(x){ this.x = x; } get(){ return this.x; } }`)
	class, ok := exprs[0].(*ast.ClassLit)
	require.True(t, ok)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "_construct", class.Methods[0].Name)
	assert.Equal(t, "get", class.Methods[1].Name)
}

func TestParseNewIsPlainCall(t *testing.T) {
	exprs := parse(t, `var o = new C(7);`)
	let := exprs[0].(*ast.Let)
	call, ok := let.Init.(*ast.Call)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "C", callee.Name)
}

func TestParseMethodCallCarriesReceiver(t *testing.T) {
	exprs := parse(t, `o.get();`)
	call, ok := exprs[0].(*ast.Call)
	require.True(t, ok)
	require.NotNil(t, call.Receiver)
	recv, ok := call.Receiver.(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "o", recv.Name)
}

func TestParseArrayIndexAssign(t *testing.T) {
	exprs := parse(t, `a[1] = 9;`)
	set, ok := exprs[0].(*ast.Set)
	require.True(t, ok)
	_, ok = set.Key.(*ast.Literal)
	require.True(t, ok)
}

func TestParseDictLiteral(t *testing.T) {
	exprs := parse(t, `dict { "a": 1, "b": 2 };`)
	dict, ok := exprs[0].(*ast.DictLit)
	require.True(t, ok)
	assert.Len(t, dict.Entries, 2)
}

func TestParseTryCatch(t *testing.T) {
	exprs := parse(t, `try { var x = 1/0; } catch (e) { print("caught"); }`)
	tc, ok := exprs[0].(*ast.TryCatch)
	require.True(t, ok)
	assert.Equal(t, "e", tc.CatchParam)
}

func TestParseForLoop(t *testing.T) {
	exprs := parse(t, `for (var i = 0; i < 3; i = i + 1) print(i);`)
	forExpr, ok := exprs[0].(*ast.For)
	require.True(t, ok)
	assert.NotNil(t, forExpr.Init)
	assert.NotNil(t, forExpr.Cond)
	assert.NotNil(t, forExpr.Inc)
}

func TestParseAsyncAwait(t *testing.T) {
	exprs := parse(t, `async fun g(){ await delay(0); return 42; } print(await g());`)
	fn, ok := exprs[0].(*ast.AsyncFunctionLit)
	require.True(t, ok)
	assert.Equal(t, "g", fn.Name)
}

func TestParseMissingParenIsFatal(t *testing.T) {
	toks := lexer.New("fun f(n { return n; }").Scan()
	_, err := New(toks).Parse()
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
}

func TestParseTooManyArgsRejected(t *testing.T) {
	var src string
	src = "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"
	toks := lexer.New(src).Scan()
	_, err := New(toks).Parse()
	require.Error(t, err)
}
