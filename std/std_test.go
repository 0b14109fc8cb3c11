package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenscript/lumen/asyncrt"
	"github.com/lumenscript/lumen/values"
)

// fakeRuntime is a minimal values.Runtime for exercising natives that need
// to submit async work, without pulling in package eval (which would
// create an import cycle back into std's own tests).
type fakeRuntime struct {
	rt *asyncrt.Runtime
}

func (f *fakeRuntime) CallFunction(fn values.Value, args []values.Value) (values.Value, error) {
	return nil, nil
}

func (f *fakeRuntime) SubmitTask(body func() (values.Value, error)) *values.Promise {
	task := f.rt.Submit(func() (interface{}, error) { return body() })
	return values.NewPromise(task)
}

func (f *fakeRuntime) BaseDir() string { return "." }

func TestInstallRegistersEveryNative(t *testing.T) {
	env := values.NewRootEnvironment(".")
	Install(env)
	for _, name := range []string{
		"exit", "random", "clock", "typeOf", "assert",
		"print", "input", "einput", "readFile", "writeFile", "appendFile",
		"toString", "toNumber", "toBool",
		"sqrt", "pow", "abs", "round", "floor", "ceil", "len", "concat", "substring",
		"delay",
		"listen", "connect", "connectTLS", "accept", "read", "write",
	} {
		v, ok := env.Get(name)
		require.Truef(t, ok, "native %q not registered", name)
		assert.Equal(t, values.KindNativeFunction, v.Kind())
	}
}

func TestTypeOf(t *testing.T) {
	v, err := nativeTypeOf(nil, []values.Value{values.Number{V: 1}})
	require.NoError(t, err)
	assert.Equal(t, values.String{V: "number"}, v)
}

func TestAssertPassesOnEqualValues(t *testing.T) {
	_, err := nativeAssert(nil, []values.Value{values.Number{V: 1}, values.Number{V: 1}})
	assert.NoError(t, err)
}

func TestAssertFailsOnMismatch(t *testing.T) {
	_, err := nativeAssert(nil, []values.Value{values.Number{V: 1}, values.Number{V: 2}})
	require.Error(t, err)
	rerr, ok := err.(*values.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, values.ErrAssertionFailed, rerr.ErrKind)
}

func TestToNumberFromString(t *testing.T) {
	v, err := nativeToNumber(nil, []values.Value{values.String{V: "3.5"}})
	require.NoError(t, err)
	assert.Equal(t, values.Number{V: 3.5}, v)
}

func TestSubstringBounds(t *testing.T) {
	_, err := nativeSubstring(nil, []values.Value{values.String{V: "hello"}, values.Number{V: 1}, values.Number{V: 9}})
	require.Error(t, err)

	v, err := nativeSubstring(nil, []values.Value{values.String{V: "hello"}, values.Number{V: 1}, values.Number{V: 4}})
	require.NoError(t, err)
	assert.Equal(t, values.String{V: "ell"}, v)
}

func TestLenPolymorphic(t *testing.T) {
	v, err := nativeLen(nil, []values.Value{&values.Array{Elements: []values.Value{values.Number{V: 1}, values.Number{V: 2}}}})
	require.NoError(t, err)
	assert.Equal(t, values.Number{V: 2}, v)
}

func TestDelayResolvesToNil(t *testing.T) {
	runtime := asyncrt.New(2)
	defer runtime.Shutdown()
	fr := &fakeRuntime{rt: runtime}

	v, err := nativeDelay(fr, []values.Value{values.Number{V: 0}})
	require.NoError(t, err)
	promise, ok := v.(*values.Promise)
	require.True(t, ok)

	result, err := promise.Resolve()
	require.NoError(t, err)
	assert.Equal(t, values.NilValue, result)
}

func TestUnescapeNewlines(t *testing.T) {
	assert.Equal(t, "a\r\nb\nc\r", unescapeNewlines(`a\r\nb\nc\r`))
}
