package objects

// Class is a user-declared type: a name, an optional parent for single
// inheritance, its own method table, and the environment in which the
// class declaration was evaluated (methods close over it just as
// functions do). Methods are stored as Value rather than a concrete
// function type to avoid an import cycle between this package and the
// package that defines callable function values; callers type-assert to
// the concrete function type when invoking.
// Env is opaque at this layer (it is the declaring *scope.Environment,
// stored as an interface{} so this package need not import scope and
// create a cycle with the package that defines callable functions).
type Class struct {
	Name    string
	Parent  *Class
	Methods map[string]Value
	Env     interface{}
}

func NewClass(name string, parent *Class, env interface{}) *Class {
	return &Class{Name: name, Parent: parent, Methods: make(map[string]Value), Env: env}
}

func (c *Class) Type() Type     { return ClassType }
func (c *Class) String() string { return "<class " + c.Name + ">" }

// FindMethod walks the class chain (this class, then parent, then
// grandparent, ...) looking for a method by name, returning the owning
// class alongside the method so callers can rebind `__class__` for
// `super` dispatch.
func (c *Class) FindMethod(name string) (Value, *Class, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if m, ok := cls.Methods[name]; ok {
			return m, cls, true
		}
	}
	return nil, nil, false
}

// IsOrInherits reports whether c is other or inherits from it, for
// isinstance() checks against the class chain.
func (c *Class) IsOrInherits(other *Class) bool {
	for cls := c; cls != nil; cls = cls.Parent {
		if cls == other {
			return true
		}
	}
	return false
}

// Instance is a live object: a reference to its class and a mutable
// property map. Instance property mutation never affects other instances
// of the same class because each Instance owns its own Properties map.
type Instance struct {
	Class      *Class
	Properties map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Properties: make(map[string]Value)}
}

func (i *Instance) Type() Type { return InstanceType }

// String renders the default `<Name instance>` form; the evaluator
// consults the class chain for a toString method before falling back to
// this, since doing so requires invoking a method and this package does
// not perform dispatch.
func (i *Instance) String() string {
	return "<" + i.Class.Name + " instance>"
}

// Module is a loaded module value: either the evaluated bindings of a
// user .volt file snapshotted into properties/methods, or a native
// factory's hand-built property/method tables.
type Module struct {
	Name       string
	Properties map[string]Value
	// Methods holds native or user-defined callables exposed on the
	// module. User-module function bindings use the module's own
	// environment as their closure; native modules populate this with
	// NativeFunc wrappers.
	Methods map[string]Value
}

func NewModule(name string) *Module {
	return &Module{Name: name, Properties: make(map[string]Value), Methods: make(map[string]Value)}
}

func (m *Module) Type() Type     { return ModuleType }
func (m *Module) String() string { return "<module '" + m.Name + "'>" }

func (m *Module) Get(name string) (Value, bool) {
	if v, ok := m.Properties[name]; ok {
		return v, true
	}
	if v, ok := m.Methods[name]; ok {
		return v, true
	}
	return nil, false
}

// NativeFunc wraps a Go function as a callable Value so native modules
// and global builtins share the same calling convention as user-defined
// Volt functions at the call site.
type NativeFunc struct {
	Name string
	Fn   func(args []Value) Value
}

func (*NativeFunc) Type() Type     { return FunctionType }
func (n *NativeFunc) String() string { return "<builtin " + n.Name + ">" }
