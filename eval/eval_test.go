package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenscript/lumen/ast"
	"github.com/lumenscript/lumen/lexer"
	"github.com/lumenscript/lumen/parser"
	"github.com/lumenscript/lumen/values"
)

func run(t *testing.T, src string) (values.Value, *Interpreter) {
	t.Helper()
	tokens := lexer.New(src).Scan()
	program, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	in := New(".", 2)
	t.Cleanup(in.Shutdown)
	v, err := in.Run(program)
	require.NoError(t, err)
	return v, in
}

// Scenario A: print(1 + 2 * 3);
func TestArithmeticPrecedence(t *testing.T) {
	v, _ := run(t, `1 + 2 * 3;`)
	assert.Equal(t, values.Number{V: 7}, v)
}

// Scenario B: string concatenation.
func TestStringConcat(t *testing.T) {
	v, _ := run(t, `var s = "a" + "b"; s;`)
	assert.Equal(t, values.String{V: "ab"}, v)
}

// Scenario C: recursive fibonacci via if/return.
func TestRecursiveFunction(t *testing.T) {
	v, _ := run(t, `fun f(n){ if (n < 2) return n; return f(n-1)+f(n-2); } f(10);`)
	assert.Equal(t, values.Number{V: 55}, v)
}

// Scenario D: class construction, field write via constructor, method read.
func TestClassConstructAndGet(t *testing.T) {
	v, _ := run(t, `class C { _construct(x){ this.x = x; } get(){ return this.x; } } var o = new C(7); o.get();`)
	assert.Equal(t, values.Number{V: 7}, v)
}

// Scenario E: array mutation through index assignment.
func TestArrayIndexAssign(t *testing.T) {
	v, _ := run(t, `var a = [1,2,3]; a[1] = 9; a[1];`)
	assert.Equal(t, values.Number{V: 9}, v)
}

// Scenario F: async/await with delay.
func TestAsyncAwaitDelay(t *testing.T) {
	v, _ := run(t, `async fun g(){ await delay(0); return 42; } await g();`)
	assert.Equal(t, values.Number{V: 42}, v)
}

// Scenario G: division by zero caught by try/catch.
func TestTryCatchDivisionByZero(t *testing.T) {
	v, _ := run(t, `var result = "none"; try { var x = 1/0; } catch (e) { result = "caught"; } result;`)
	assert.Equal(t, values.String{V: "caught"}, v)
}

// Invariant 4: scope isolation — a block-local shadow does not leak out.
func TestScopeIsolation(t *testing.T) {
	v, _ := run(t, `var x = 1; { var x = 2; } x;`)
	assert.Equal(t, values.Number{V: 1}, v)
}

// Invariant 5: short-circuit evaluation of `and`/`or`.
func TestShortCircuitOr(t *testing.T) {
	v, _ := run(t, `var calls = 0; fun bump(){ calls = calls + 1; return true; } true or bump(); calls;`)
	assert.Equal(t, values.Number{V: 0}, v)
}

func TestShortCircuitAnd(t *testing.T) {
	v, _ := run(t, `var calls = 0; fun bump(){ calls = calls + 1; return true; } false and bump(); calls;`)
	assert.Equal(t, values.Number{V: 0}, v)
}

// Invariant 6: return unwinds only to the enclosing function, not past it
// through nested blocks and a while loop.
func TestReturnUnwindsOnlyToEnclosingFunction(t *testing.T) {
	v, _ := run(t, `
		fun f(){
			var i = 0;
			while (i < 5) {
				{
					if (i == 2) { return i; }
				}
				i = i + 1;
			}
			return -1;
		}
		f();
	`)
	assert.Equal(t, values.Number{V: 2}, v)
}

// Invariant 9: instance aliasing — mutation through one reference is
// visible through another.
func TestInstanceAliasing(t *testing.T) {
	v, _ := run(t, `
		class Box { _construct(v){ this.v = v; } set(v){ this.v = v; } get(){ return this.v; } }
		var a = new Box(1);
		var b = a;
		a.set(9);
		b.get();
	`)
	assert.Equal(t, values.Number{V: 9}, v)
}

func TestUndefinedVariableError(t *testing.T) {
	tokens := lexer.New(`missing;`).Scan()
	program, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	in := New(".", 1)
	defer in.Shutdown()
	_, err = in.Run(program)
	require.Error(t, err)
	rerr, ok := err.(*values.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, values.ErrUndefinedVariable, rerr.ErrKind)
}

func TestDivisionByZeroRaisesWithoutCatch(t *testing.T) {
	tokens := lexer.New(`1/0;`).Scan()
	program, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	in := New(".", 1)
	defer in.Shutdown()
	_, err = in.Run(program)
	require.Error(t, err)
	rerr, ok := err.(*values.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, values.ErrDivisionByZero, rerr.ErrKind)
}

func TestEvalLiteralDispatch(t *testing.T) {
	in := New(".", 1)
	defer in.Shutdown()
	v, err := in.Eval(&ast.Literal{Value: 3.5})
	require.NoError(t, err)
	assert.Equal(t, values.Number{V: 3.5}, v)
}
