package values

import (
	"sort"
	"strings"
)

// Array is an ordered, mutable sequence of Values, shared by reference —
// indexing/assignment through one alias is visible through every other.
type Array struct {
	Elements []Value
}

func (*Array) Kind() Kind { return KindArray }

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Dictionary maps string keys to Values. Insertion order need not be
// preserved; this is a plain Go map for exactly that reason.
// Attempting to insert a non-string key is a runtime error raised by the
// evaluator before Set is ever called, so Dictionary itself only ever
// holds string keys.
type Dictionary struct {
	Entries map[string]Value
}

func NewDictionary() *Dictionary {
	return &Dictionary{Entries: make(map[string]Value)}
}

func (*Dictionary) Kind() Kind { return KindDictionary }

func (d *Dictionary) String() string {
	keys := make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic only for display; language semantics never depend on order
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + d.Entries[k].String()
	}
	return "dict{" + strings.Join(parts, ", ") + "}"
}
