package values

// Equal implements the language's equality rules: structural identity for
// primitives, by-name for classes, by-name-plus-per-key-value-equality
// for instances (reading the instance's environment bindings), elementwise
// for arrays and dictionaries, and by handle identity for sockets/servers.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Number:
		return x.V == b.(Number).V
	case String:
		return x.V == b.(String).V
	case Boolean:
		return x.V == b.(Boolean).V
	case Nil:
		return true
	case *Array:
		y := b.(*Array)
		if len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Dictionary:
		y := b.(*Dictionary)
		if len(x.Entries) != len(y.Entries) {
			return false
		}
		for k, v := range x.Entries {
			ov, ok := y.Entries[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}
		return true
	case *Class:
		return x.Name == b.(*Class).Name
	case *Instance:
		y := b.(*Instance)
		if x.ClassName != y.ClassName {
			return false
		}
		return instanceFieldsEqual(x, y)
	case *Socket:
		return x == b.(*Socket)
	case *TlsSocket:
		return x == b.(*TlsSocket)
	case *Server:
		return x == b.(*Server)
	case *Promise:
		return x == b.(*Promise)
	case *Function:
		return x == b.(*Function)
	case *AsyncFunction:
		return x == b.(*AsyncFunction)
	case *NativeFunction:
		return x == b.(*NativeFunction)
	default:
		return false
	}
}

// instanceFieldsEqual compares two same-class instances' member
// environments field-by-field. Methods live in the same environment as
// fields, so Function-kind bindings compare by identity like any
// other value; construction installs the class's own *Function for each
// method into every instance, so two instances of the same class hold
// identical method bindings and their equality rests on the fields.
func instanceFieldsEqual(a, b *Instance) bool {
	a.Env.mu.RLock()
	fields := make(map[string]Value, len(a.Env.vars))
	for k, v := range a.Env.vars {
		fields[k] = v
	}
	a.Env.mu.RUnlock()

	b.Env.mu.RLock()
	defer b.Env.mu.RUnlock()
	if len(b.Env.vars) != len(fields) {
		return false
	}
	for k, v := range fields {
		ov, ok := b.Env.vars[k]
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}
