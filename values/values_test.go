package values

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthiness(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Boolean{V: false}))
	assert.True(t, Truthy(Boolean{V: true}))
	assert.False(t, Truthy(Number{V: 0}))
	assert.True(t, Truthy(Number{V: -1}))
	assert.True(t, Truthy(String{V: ""})) // empty string is still truthy
	assert.True(t, Truthy(&Array{}))
}

func TestEnvironmentDefineGetAssign(t *testing.T) {
	root := NewRootEnvironment(".")
	root.Define("x", Number{V: 1})

	child := NewChild(root)
	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, Number{V: 1}, v)

	ok = child.Assign("x", Number{V: 2})
	require.True(t, ok)
	v, _ = root.Get("x")
	assert.Equal(t, Number{V: 2}, v)

	child.Define("x", Number{V: 99})
	v, _ = child.Get("x")
	assert.Equal(t, Number{V: 99}, v, "child definition shadows parent")
	v, _ = root.Get("x")
	assert.Equal(t, Number{V: 2}, v, "parent untouched by shadowing child define")
}

func TestAssignUndefinedFails(t *testing.T) {
	root := NewRootEnvironment(".")
	ok := root.Assign("missing", Number{V: 1})
	assert.False(t, ok)
}

func TestNativeLookupAtRootOnly(t *testing.T) {
	root := NewRootEnvironment(".")
	root.DefineNative(&NativeFunction{Name: "len", Arity: 1})
	child := NewChild(root)
	v, ok := child.Get("len")
	require.True(t, ok)
	assert.Equal(t, KindNativeFunction, v.Kind())
}

func TestModuleFallbackLookup(t *testing.T) {
	importer := NewRootEnvironment(".")
	moduleEnv := NewRootEnvironment("./lib")
	moduleEnv.Define("helper", String{V: "hi"})
	importer.DefineModule(&Module{Name: "lib", Path: "./lib.lum", Env: moduleEnv})

	v, ok := importer.Get("helper")
	require.True(t, ok)
	assert.Equal(t, String{V: "hi"}, v)
}

func TestModuleIdempotence(t *testing.T) {
	importer := NewRootEnvironment(".")
	assert.False(t, importer.HasModule("lib"))
	importer.DefineModule(&Module{Name: "lib", Path: "x", Env: NewRootEnvironment(".")})
	assert.True(t, importer.HasModule("lib"))
}

func TestEqualArraysAndDicts(t *testing.T) {
	a := &Array{Elements: []Value{Number{V: 1}, String{V: "x"}}}
	b := &Array{Elements: []Value{Number{V: 1}, String{V: "x"}}}
	assert.True(t, Equal(a, b))

	d1 := NewDictionary()
	d1.Entries["k"] = Number{V: 1}
	d2 := NewDictionary()
	d2.Entries["k"] = Number{V: 1}
	assert.True(t, Equal(d1, d2))

	if diff := cmp.Diff(a.Elements, b.Elements, cmp.Comparer(func(x, y Value) bool { return Equal(x, y) })); diff != "" {
		t.Fatalf("unexpected diff (-a +b):\n%s", diff)
	}
}

func TestEqualInstancesByNameAndFields(t *testing.T) {
	mkInstance := func() *Instance {
		env := NewChild(NewRootEnvironment("."))
		env.Define("x", Number{V: 7})
		return &Instance{ClassName: "Point", Env: env}
	}
	a, b := mkInstance(), mkInstance()
	assert.True(t, Equal(a, b))

	b.Env.Define("x", Number{V: 8})
	assert.False(t, Equal(a, b))
}

func TestEqualHandlesAreIdentityNotValue(t *testing.T) {
	s1 := &Server{}
	s2 := &Server{}
	assert.False(t, Equal(s1, s2))
	assert.True(t, Equal(s1, s1))
}
