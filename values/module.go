package values

// Module is a (name, base-path, environment) triple representing a
// loaded `import`. Name is the file stem of the resolved
// path; Env is the environment the imported file was evaluated in, whose
// top-level bindings become visible to the importer through
// Environment.Get's fallback module search. The evaluator's Get case does
// not resolve a qualified `module.member` expression: a module name is
// not itself a bound variable.
type Module struct {
	Name string
	Path string
	Env  *Environment
}

// HasModule reports whether name is already registered in this (root)
// environment's module registry, so a repeated import of the same file
// can succeed silently instead of re-evaluating it.
func (e *Environment) HasModule(name string) bool {
	root := e.Root()
	root.mu.RLock()
	defer root.mu.RUnlock()
	_, ok := root.modules[name]
	return ok
}

// Module looks up a registered module by name in the root environment's
// module registry.
func (e *Environment) Module(name string) (*Module, bool) {
	root := e.Root()
	root.mu.RLock()
	defer root.mu.RUnlock()
	m, ok := root.modules[name]
	return m, ok
}

// DefineModule registers m into this (root) environment's module
// registry. A module is evaluated exactly once per importing
// environment — callers must check HasModule first.
func (e *Environment) DefineModule(m *Module) {
	root := e.Root()
	root.mu.Lock()
	defer root.mu.Unlock()
	root.modules[m.Name] = m
	root.moduleOrder = append(root.moduleOrder, m.Name)
}
