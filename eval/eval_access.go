package eval

import (
	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/parser"
	"github.com/voltlang/volt/scope"
)

func asIndex(v objects.Value) (int, bool) {
	switch x := v.(type) {
	case *objects.Integer:
		return int(x.Value), true
	case *objects.Float:
		return int(x.Value), true
	}
	return 0, false
}

func (e *Evaluator) evalIndexAccess(n *parser.IndexAccess, env *scope.Environment) objects.Value {
	obj := e.Eval(n.Object, env)
	if isSignalOrError(obj) {
		return obj
	}
	idxVal := e.Eval(n.Index, env)
	if isSignalOrError(idxVal) {
		return idxVal
	}

	switch o := obj.(type) {
	case *objects.List:
		idx, ok := asIndex(idxVal)
		if !ok {
			return objects.NewError("Index must be a number")
		}
		n := len(o.Elements)
		real := idx
		if real < 0 {
			real += n
		}
		if real < 0 || real >= n {
			return objects.NewError("Index %d out of range (length %d)", idx, n)
		}
		return o.Elements[real]
	case *objects.String:
		runes := []rune(o.Value)
		idx, ok := asIndex(idxVal)
		if !ok {
			return objects.NewError("Index must be a number")
		}
		n := len(runes)
		real := idx
		if real < 0 {
			real += n
		}
		if real < 0 || real >= n {
			return objects.NewError("Index %d out of range (length %d)", idx, n)
		}
		return &objects.String{Value: string(runes[real])}
	case *objects.Dict:
		key := e.Stringify(idxVal)
		val, ok := o.Pairs[key]
		if !ok {
			return objects.NewError("Key '%s' not found in dict", key)
		}
		return val
	}
	return objects.NewError("Cannot index a value of type %s", TypeName(obj))
}

func (e *Evaluator) evalMemberAccess(n *parser.MemberAccess, env *scope.Environment) objects.Value {
	obj := e.Eval(n.Object, env)
	if isSignalOrError(obj) {
		return obj
	}
	return e.getProperty(obj, n.Property)
}

// getProperty implements bare dot-access (no call parens): instances
// expose properties then methods, modules expose their bindings, classes
// expose methods, dicts expose a `size` pseudo-property plus direct key
// lookup, and strings/lists expose only a `length` pseudo-property.
func (e *Evaluator) getProperty(obj objects.Value, prop string) objects.Value {
	switch v := obj.(type) {
	case *objects.Instance:
		if pv, ok := v.Properties[prop]; ok {
			return pv
		}
		if m, _, found := v.Class.FindMethod(prop); found {
			return m
		}
		return objects.NewError("'%s' has no property or method '%s'", v.Class.Name, prop)
	case *objects.Module:
		if mv, ok := v.Get(prop); ok {
			return mv
		}
		return objects.NewError("Module '%s' has no property '%s'", v.Name, prop)
	case *objects.Class:
		if m, _, found := v.FindMethod(prop); found {
			return m
		}
		return objects.NewError("Class '%s' has no method '%s'", v.Name, prop)
	case *objects.Dict:
		if prop == "size" {
			return &objects.Integer{Value: int64(len(v.Keys))}
		}
		if val, ok := v.Pairs[prop]; ok {
			return val
		}
		return objects.NewError("Key '%s' not found in dict", prop)
	case *objects.String:
		if prop == "length" {
			return &objects.Integer{Value: int64(len([]rune(v.Value)))}
		}
		return objects.NewError("String has no property '%s'. Use .%s() for methods", prop, prop)
	case *objects.List:
		if prop == "length" {
			return &objects.Integer{Value: int64(len(v.Elements))}
		}
		return objects.NewError("List has no property '%s'. Use .%s() for methods", prop, prop)
	default:
		return objects.NewError("Cannot access property '%s' on %s", prop, TypeName(obj))
	}
}

// callMethodOn dispatches a call whose callee was a member access, based
// purely on the evaluated object's runtime type.
func (e *Evaluator) callMethodOn(obj objects.Value, method string, args []objects.Value, callerEnv *scope.Environment) objects.Value {
	switch v := obj.(type) {
	case *objects.Instance:
		return e.callInstanceMethod(v, method, args, callerEnv)
	case *objects.Module:
		mv, ok := v.Get(method)
		if !ok {
			return objects.NewError("Module '%s' has no method '%s'", v.Name, method)
		}
		return e.callFunction(mv, args, callerEnv)
	case *objects.Class:
		m, _, found := v.FindMethod(method)
		if !found {
			return objects.NewError("Class '%s' has no method '%s'", v.Name, method)
		}
		return e.callFunction(m, args, callerEnv)
	case *objects.String:
		return e.callStringMethod(v, method, args)
	case *objects.List:
		return e.callListMethod(v, method, args, callerEnv)
	case *objects.Dict:
		return e.callDictMethod(v, method, args, callerEnv)
	case *objects.Integer, *objects.Float:
		return e.callNumberMethod(v, method, args)
	}
	return objects.NewError("Cannot call method '%s' on %s", method, TypeName(obj))
}

func (e *Evaluator) evalSuperMethodCall(n *parser.SuperMethodCall, env *scope.Environment) objects.Value {
	thisVal, ok := env.Get("this")
	if !ok {
		return objects.NewError("'super' used outside of a subclass method")
	}
	inst, ok := thisVal.(*objects.Instance)
	if !ok {
		return objects.NewError("'super' used outside of a subclass method")
	}
	classVal, ok := env.Get("__class__")
	if !ok {
		return objects.NewError("'super' used outside of a subclass method")
	}
	currentClass, ok := classVal.(*objects.Class)
	if !ok || currentClass.Parent == nil {
		return objects.NewError("'super' used outside of a subclass method")
	}
	parent := currentClass.Parent
	methodVal, _, found := parent.FindMethod(n.Method)
	if !found {
		return objects.NewError("Parent class has no method '%s'", n.Method)
	}
	args, sig := e.evalArgs(n.Args, env)
	if sig != nil {
		return sig
	}
	return e.invokeMethod(inst, parent, methodVal, args, env)
}

// assignTo writes value to an assignment target. Bare identifiers use
// introduce-or-update-in-place semantics (Environment.Assign); member and
// index targets write through to the evaluated object.
func (e *Evaluator) assignTo(target parser.Node, value objects.Value, env *scope.Environment) objects.Value {
	switch t := target.(type) {
	case *parser.Identifier:
		env.Assign(t.Name, value)
		return value
	case *parser.ThisExpr:
		return objects.NewError("Cannot assign directly to 'this'. Use 'set this.property = value'")
	case *parser.MemberAccess:
		obj := e.Eval(t.Object, env)
		if isSignalOrError(obj) {
			return obj
		}
		switch o := obj.(type) {
		case *objects.Instance:
			o.Properties[t.Property] = value
		case *objects.Dict:
			o.Set(t.Property, value)
		default:
			return objects.NewError("Cannot set property '%s' on %s", t.Property, TypeName(obj))
		}
		return value
	case *parser.IndexAccess:
		obj := e.Eval(t.Object, env)
		if isSignalOrError(obj) {
			return obj
		}
		idxVal := e.Eval(t.Index, env)
		if isSignalOrError(idxVal) {
			return idxVal
		}
		switch o := obj.(type) {
		case *objects.List:
			idx, ok := asIndex(idxVal)
			if !ok {
				return objects.NewError("Index must be a number")
			}
			n := len(o.Elements)
			real := idx
			if real < 0 {
				real += n
			}
			if real < 0 || real >= n {
				return objects.NewError("Index %d out of range (length %d)", idx, n)
			}
			o.Elements[real] = value
		case *objects.Dict:
			o.Set(e.Stringify(idxVal), value)
		default:
			return objects.NewError("Cannot index-assign on %s", TypeName(obj))
		}
		return value
	}
	return objects.NewError("Invalid assignment target")
}
