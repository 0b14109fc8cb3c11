package values

import "fmt"

// Class is a class value: a name and a method table mapping method name
// to its Function. Methods are plain Functions closed over
// the environment the class declaration was evaluated in; `new` installs
// each into a fresh Instance environment at construction time.
type Class struct {
	Name    string
	Methods map[string]*Function
	Closure *Environment
}

func (*Class) Kind() Kind { return KindClass }

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }

// ConstructorName is the conventional method name `new Class(...)`
// invokes on construction, if the class declares one.
const ConstructorName = "_construct"

// Instance is a constructed object: a class name and a shared handle to
// its member environment. Env is where `this.field` reads/writes land and
// where each method is installed at construction time; a method or
// constructor call runs in a fresh child of Env with `this` bound to the
// Instance. Two Instance values can share the same Env only if they are
// the same instance (Env is created fresh per `new`), so structural field
// mutation through one reference is visible through every other.
type Instance struct {
	ClassName string
	Env       *Environment
}

func (*Instance) Kind() Kind { return KindInstance }

func (i *Instance) String() string { return fmt.Sprintf("<instance %s>", i.ClassName) }
