package eval

import (
	"github.com/voltlang/volt/function"
	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/parser"
	"github.com/voltlang/volt/scope"
)

func (e *Evaluator) isCallableFunction(v objects.Value) bool {
	switch v.(type) {
	case *function.Function, *objects.NativeFunc:
		return true
	}
	return false
}

// bindParams binds fn's parameters in frame from args, evaluating any
// missing argument's default expression in callerEnv -- defaults always
// evaluate in the caller's environment, never the function's closure.
func (e *Evaluator) bindParams(fn *function.Function, args []objects.Value, frame, callerEnv *scope.Environment) objects.Value {
	for i, p := range fn.Params {
		if i < len(args) {
			frame.Define(p.Name, args[i])
			continue
		}
		if p.Default != nil {
			val := e.Eval(p.Default, callerEnv)
			if isSignalOrError(val) {
				return val
			}
			frame.Define(p.Name, val)
			continue
		}
		name := fn.Name
		if name == "" {
			name = "<lambda>"
		}
		return objects.NewError("Missing argument '%s' in call to %s()", p.Name, name)
	}
	return nil
}

// unwrapCall turns a function body's evaluation result into the value the
// call expression itself produces: an explicit `return` unwraps to its
// value, a break/continue/throw/error propagates untouched (the reference
// interpreter never catches those at a call boundary, only return), and
// falling off the end of the body without a `return` yields null.
func unwrapCall(result objects.Value) objects.Value {
	if ret, ok := result.(*objects.ReturnSignal); ok {
		return ret.Value
	}
	if isSignalOrError(result) {
		return result
	}
	return objects.NullValue
}

// callFunction calls a plain function or native function value with no
// `this` binding.
func (e *Evaluator) callFunction(val objects.Value, args []objects.Value, callerEnv *scope.Environment) objects.Value {
	switch fn := val.(type) {
	case *function.Function:
		frame := fn.Closure.NewChild()
		if sig := e.bindParams(fn, args, frame, callerEnv); sig != nil {
			return sig
		}
		if fn.ExprBody != nil {
			return e.Eval(fn.ExprBody, frame)
		}
		return unwrapCall(e.evalBlock(fn.Body, frame))
	case *objects.NativeFunc:
		return fn.Fn(args)
	}
	return objects.NewError("'%s' is not callable", val.String())
}

// invokeMethod calls a method with `this` bound to instance and
// `__class__` bound to classForDunder -- the most-derived class for
// ordinary dispatch, or the searched-from class's parent for `super`
// calls, never the class that happens to own the method body.
func (e *Evaluator) invokeMethod(this *objects.Instance, classForDunder *objects.Class, methodVal objects.Value, args []objects.Value, callerEnv *scope.Environment) objects.Value {
	fn, ok := methodVal.(*function.Function)
	if !ok {
		return objects.NewError("'%s' is not callable", methodVal.String())
	}
	frame := fn.Closure.NewChild()
	frame.Define("this", this)
	frame.Define("__class__", classForDunder)
	if sig := e.bindParams(fn, args, frame, callerEnv); sig != nil {
		return sig
	}
	if fn.ExprBody != nil {
		return e.Eval(fn.ExprBody, frame)
	}
	return unwrapCall(e.evalBlock(fn.Body, frame))
}

// callInstanceMethod implements `instance.name(...)`. A property that
// happens to hold a function value is called as a plain function -- no
// `this`/`__class__` binding -- before the class method table is even
// consulted.
func (e *Evaluator) callInstanceMethod(inst *objects.Instance, name string, args []objects.Value, callerEnv *scope.Environment) objects.Value {
	if val, ok := inst.Properties[name]; ok {
		if e.isCallableFunction(val) {
			return e.callFunction(val, args, callerEnv)
		}
		return objects.NewError("'%s' is not a method", name)
	}
	method, _, found := inst.Class.FindMethod(name)
	if !found {
		return objects.NewError("'%s' has no method '%s'", inst.Class.Name, name)
	}
	return e.invokeMethod(inst, inst.Class, method, args, callerEnv)
}

// instantiate constructs a new instance: if the class (or an ancestor)
// defines `init`, it runs with `this`/`__class__` bound to the new
// instance and the instance's own class, and any thrown error propagates;
// its return value is otherwise discarded, matching the reference
// interpreter exactly.
func (e *Evaluator) instantiate(class *objects.Class, args []objects.Value, callerEnv *scope.Environment) objects.Value {
	inst := objects.NewInstance(class)
	initVal, _, found := class.FindMethod("init")
	if !found {
		if len(args) > 0 {
			return objects.NewError("Class '%s' has no constructor but was called with arguments", class.Name)
		}
		return inst
	}
	result := e.invokeMethod(inst, class, initVal, args, callerEnv)
	if isSignalOrError(result) {
		return result
	}
	return inst
}

// evalClassDeclaration binds every method's closure to the class's own
// declaration-site environment (shared across all methods of the class,
// matching the reference interpreter), and introduces the class itself in
// the current frame only -- never walking outward like `set` does.
func (e *Evaluator) evalClassDeclaration(n *parser.ClassDeclaration, env *scope.Environment) objects.Value {
	var parent *objects.Class
	if n.Parent != "" {
		pv, ok := env.Get(n.Parent)
		if !ok {
			return objects.NewError("Undefined variable: '%s'", n.Parent)
		}
		p, ok := pv.(*objects.Class)
		if !ok {
			return objects.NewError("'%s' is not a class", n.Parent)
		}
		parent = p
	}
	class := objects.NewClass(n.Name, parent, env)
	for _, m := range n.Methods {
		class.Methods[m.Name] = &function.Function{
			Name:    m.Name,
			Params:  convertParams(m.Params),
			Body:    m.Body,
			Closure: env,
		}
	}
	env.Define(n.Name, class)
	return class
}
