/*
Package scope implements the Environment: a linked chain of frames
mapping names to values, the lexical-scoping backbone the evaluator walks
for every identifier lookup and assignment.
*/
package scope

import "github.com/voltlang/volt/objects"

// Environment is one frame in the chain. A frame holds its own bindings
// and an optional parent; `Get` walks parents until found, `Assign` walks
// parents and updates the innermost binding that already holds the name
// (introducing a fresh one in the current frame if none exists), and
// `Define` always introduces/overwrites in the current frame.
//
// Function calls create a new frame whose parent is the function's
// captured closure, not the caller's frame -- this is what gives the
// language lexical rather than dynamic scoping. Blocks do not create a
// new frame except try/catch, which introduces one to hold the caught
// value's binding.
type Environment struct {
	vars   map[string]objects.Value
	parent *Environment
}

// New creates a root environment with no parent (the global scope).
func New() *Environment {
	return &Environment{vars: make(map[string]objects.Value)}
}

// NewChild creates a new frame whose parent is this environment.
func (e *Environment) NewChild() *Environment {
	return &Environment{vars: make(map[string]objects.Value), parent: e}
}

// Get walks the chain from this frame outward looking for name.
func (e *Environment) Get(name string) (objects.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define introduces or overwrites name in this frame specifically,
// regardless of whether an outer frame already binds it.
func (e *Environment) Define(name string, val objects.Value) {
	e.vars[name] = val
}

// Assign walks the chain looking for the innermost frame that already
// binds name and updates it there. If no frame binds it, a fresh binding
// is introduced in this (the current) frame -- Volt's `set` is
// introduce-or-assign, not assign-only.
func (e *Environment) Assign(name string, val objects.Value) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = val
			return
		}
	}
	e.vars[name] = val
}

// Parent exposes the parent link read-only; it is immutable once the
// frame is created.
func (e *Environment) Parent() *Environment { return e.parent }

// Snapshot returns a shallow copy of this frame's own bindings (not
// ancestors), used by the module loader to expose a user module's
// top-level names as a module value's properties.
func (e *Environment) Snapshot() map[string]objects.Value {
	out := make(map[string]objects.Value, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}
