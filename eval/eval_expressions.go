package eval

import (
	"math"
	"strings"

	"github.com/voltlang/volt/lexer"
	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/parser"
	"github.com/voltlang/volt/scope"
)

func (e *Evaluator) evalListLiteral(n *parser.ListLiteral, env *scope.Environment) objects.Value {
	elems := make([]objects.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		v := e.Eval(el, env)
		if isSignalOrError(v) {
			return v
		}
		elems = append(elems, v)
	}
	return &objects.List{Elements: elems}
}

func (e *Evaluator) evalDictLiteral(n *parser.DictLiteral, env *scope.Environment) objects.Value {
	d := objects.NewDict()
	for _, entry := range n.Entries {
		keyVal := e.Eval(entry.Key, env)
		if isSignalOrError(keyVal) {
			return keyVal
		}
		val := e.Eval(entry.Value, env)
		if isSignalOrError(val) {
			return val
		}
		d.Set(e.Stringify(keyVal), val)
	}
	return d
}

func (e *Evaluator) evalInterpolatedString(n *parser.InterpolatedString, env *scope.Environment) objects.Value {
	var b strings.Builder
	for _, part := range n.Parts {
		if lit, ok := part.(*parser.StringLiteral); ok {
			b.WriteString(lit.Value)
			continue
		}
		v := e.Eval(part, env)
		if isSignalOrError(v) {
			return v
		}
		b.WriteString(e.Stringify(v))
	}
	return &objects.String{Value: b.String()}
}

func (e *Evaluator) evalBinaryOp(n *parser.BinaryOp, env *scope.Environment) objects.Value {
	if n.Op == lexer.AND {
		left := e.Eval(n.Left, env)
		if isSignalOrError(left) {
			return left
		}
		if !objects.Truthy(left) {
			return left
		}
		return e.Eval(n.Right, env)
	}
	if n.Op == lexer.OR {
		left := e.Eval(n.Left, env)
		if isSignalOrError(left) {
			return left
		}
		if objects.Truthy(left) {
			return left
		}
		return e.Eval(n.Right, env)
	}

	left := e.Eval(n.Left, env)
	if isSignalOrError(left) {
		return left
	}
	right := e.Eval(n.Right, env)
	if isSignalOrError(right) {
		return right
	}

	switch n.Op {
	case lexer.PLUS:
		return e.evalAdd(left, right)
	case lexer.MINUS:
		return e.numericBinary(left, right, "-")
	case lexer.STAR:
		return e.evalMul(left, right)
	case lexer.SLASH:
		return e.evalDiv(left, right)
	case lexer.PERCENT:
		return e.evalMod(left, right)
	case lexer.EQ:
		return objects.BoolValue(e.valuesEqual(left, right))
	case lexer.NEQ:
		return objects.BoolValue(!e.valuesEqual(left, right))
	case lexer.LT:
		return e.compare(left, right, n.Op)
	case lexer.GT:
		return e.compare(left, right, n.Op)
	case lexer.LTE:
		return e.compare(left, right, n.Op)
	case lexer.GTE:
		return e.compare(left, right, n.Op)
	}
	return objects.NewError("Unknown binary operator")
}

// evalAdd implements `+`: string coercion wins if either side is a
// string, list+list concatenates into a new list, dict+dict merges into a
// new dict (right overwrites left), otherwise plain numeric addition.
func (e *Evaluator) evalAdd(left, right objects.Value) objects.Value {
	if _, ok := left.(*objects.String); ok {
		return &objects.String{Value: e.Stringify(left) + e.Stringify(right)}
	}
	if _, ok := right.(*objects.String); ok {
		return &objects.String{Value: e.Stringify(left) + e.Stringify(right)}
	}
	if l, ok := left.(*objects.List); ok {
		if r, ok2 := right.(*objects.List); ok2 {
			out := make([]objects.Value, 0, len(l.Elements)+len(r.Elements))
			out = append(out, l.Elements...)
			out = append(out, r.Elements...)
			return &objects.List{Elements: out}
		}
	}
	if l, ok := left.(*objects.Dict); ok {
		if r, ok2 := right.(*objects.Dict); ok2 {
			out := l.Copy()
			for _, k := range r.Keys {
				out.Set(k, r.Pairs[k])
			}
			return out
		}
	}
	return e.numericBinary(left, right, "+")
}

// evalMul implements `*`: string repetition in either operand order,
// otherwise plain numeric multiplication.
func (e *Evaluator) evalMul(left, right objects.Value) objects.Value {
	if s, ok := left.(*objects.String); ok {
		if n, ok2 := asRepeatCount(right); ok2 {
			return &objects.String{Value: strings.Repeat(s.Value, n)}
		}
	}
	if s, ok := right.(*objects.String); ok {
		if n, ok2 := asRepeatCount(left); ok2 {
			return &objects.String{Value: strings.Repeat(s.Value, n)}
		}
	}
	return e.numericBinary(left, right, "*")
}

func asRepeatCount(v objects.Value) (int, bool) {
	switch x := v.(type) {
	case *objects.Integer:
		return int(x.Value), true
	case *objects.Float:
		return int(x.Value), true
	}
	return 0, false
}

// evalDiv implements `/` as true division: the result is always a Float,
// even when both operands are integers and divide evenly.
func (e *Evaluator) evalDiv(left, right objects.Value) objects.Value {
	lf, lok := objects.AsFloat(left)
	rf, rok := objects.AsFloat(right)
	if !lok || !rok {
		return objects.NewError("Unsupported operand types for /: %s and %s", TypeName(left), TypeName(right))
	}
	if rf == 0 {
		return objects.NewError("Division by zero")
	}
	return &objects.Float{Value: lf / rf}
}

// evalMod implements `%`: integer modulo when both operands are integers,
// else floating modulo.
func (e *Evaluator) evalMod(left, right objects.Value) objects.Value {
	li, lIsInt := left.(*objects.Integer)
	ri, rIsInt := right.(*objects.Integer)
	if lIsInt && rIsInt {
		if ri.Value == 0 {
			return objects.NewError("Modulo by zero")
		}
		return &objects.Integer{Value: li.Value % ri.Value}
	}
	lf, lok := objects.AsFloat(left)
	rf, rok := objects.AsFloat(right)
	if !lok || !rok {
		return objects.NewError("Unsupported operand types for %%: %s and %s", TypeName(left), TypeName(right))
	}
	if rf == 0 {
		return objects.NewError("Modulo by zero")
	}
	return &objects.Float{Value: math.Mod(lf, rf)}
}

// numericBinary handles +, -, * for two numeric operands: integer result
// only when both operands are Integer, else promoted to Float.
func (e *Evaluator) numericBinary(left, right objects.Value, op string) objects.Value {
	li, lIsInt := left.(*objects.Integer)
	ri, rIsInt := right.(*objects.Integer)
	lf, lok := objects.AsFloat(left)
	rf, rok := objects.AsFloat(right)
	if !lok || !rok {
		return objects.NewError("Unsupported operand types for %s: %s and %s", op, TypeName(left), TypeName(right))
	}
	if lIsInt && rIsInt {
		switch op {
		case "+":
			return &objects.Integer{Value: li.Value + ri.Value}
		case "-":
			return &objects.Integer{Value: li.Value - ri.Value}
		case "*":
			return &objects.Integer{Value: li.Value * ri.Value}
		}
	}
	switch op {
	case "+":
		return &objects.Float{Value: lf + rf}
	case "-":
		return &objects.Float{Value: lf - rf}
	case "*":
		return &objects.Float{Value: lf * rf}
	}
	return objects.NewError("unknown numeric operator %s", op)
}

func (e *Evaluator) compare(left, right objects.Value, op lexer.TokenType) objects.Value {
	if lf, lok := objects.AsFloat(left); lok {
		if rf, rok := objects.AsFloat(right); rok {
			return objects.BoolValue(compareOrdered(lf, rf, op))
		}
	}
	if ls, ok := left.(*objects.String); ok {
		if rs, ok2 := right.(*objects.String); ok2 {
			return objects.BoolValue(compareStrings(ls.Value, rs.Value, op))
		}
	}
	return objects.NewError("Unsupported comparison between %s and %s", TypeName(left), TypeName(right))
}

func compareOrdered[T int | float64 | string](a, b T, op lexer.TokenType) bool {
	switch op {
	case lexer.LT:
		return a < b
	case lexer.GT:
		return a > b
	case lexer.LTE:
		return a <= b
	case lexer.GTE:
		return a >= b
	}
	return false
}

func compareStrings(a, b string, op lexer.TokenType) bool {
	return compareOrdered(a, b, op)
}

// valuesEqual is structural equality: numbers compare across int/float,
// strings/booleans/null compare by value, lists/dicts compare
// element-wise, and everything else (function/class/instance/module)
// compares by identity.
func (e *Evaluator) valuesEqual(a, b objects.Value) bool {
	if af, aok := objects.AsFloat(a); aok {
		bf, bok := objects.AsFloat(b)
		return bok && af == bf
	}
	switch av := a.(type) {
	case *objects.Null:
		_, ok := b.(*objects.Null)
		return ok
	case *objects.Boolean:
		bv, ok := b.(*objects.Boolean)
		return ok && av.Value == bv.Value
	case *objects.String:
		bv, ok := b.(*objects.String)
		return ok && av.Value == bv.Value
	case *objects.List:
		bv, ok := b.(*objects.List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !e.valuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *objects.Dict:
		bv, ok := b.(*objects.Dict)
		if !ok || len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, k := range av.Keys {
			bval, ok := bv.Pairs[k]
			if !ok || !e.valuesEqual(av.Pairs[k], bval) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func (e *Evaluator) evalUnaryOp(n *parser.UnaryOp, env *scope.Environment) objects.Value {
	operand := e.Eval(n.Operand, env)
	if isSignalOrError(operand) {
		return operand
	}
	switch n.Op {
	case lexer.MINUS:
		switch v := operand.(type) {
		case *objects.Integer:
			return &objects.Integer{Value: -v.Value}
		case *objects.Float:
			return &objects.Float{Value: -v.Value}
		}
		return objects.NewError("Unsupported operand type for unary -: %s", TypeName(operand))
	case lexer.NOT:
		return objects.BoolValue(!objects.Truthy(operand))
	}
	return objects.NewError("Unknown unary operator")
}

// evalCallExpr collapses the three call-site shapes the reference
// interpreter dispatches separately (plain function call, class-or-
// function call on an arbitrary expression, and method call on a member
// access) into Go's single CallExpr node.
func (e *Evaluator) evalCallExpr(n *parser.CallExpr, env *scope.Environment) objects.Value {
	if member, ok := n.Callee.(*parser.MemberAccess); ok {
		obj := e.Eval(member.Object, env)
		if isSignalOrError(obj) {
			return obj
		}
		args, sig := e.evalArgs(n.Args, env)
		if sig != nil {
			return sig
		}
		return e.callMethodOn(obj, member.Property, args, env)
	}

	if ident, ok := n.Callee.(*parser.Identifier); ok {
		if fn, ok := globalBuiltins[ident.Name]; ok {
			args, sig := e.evalArgs(n.Args, env)
			if sig != nil {
				return sig
			}
			return fn(e, args)
		}
		val, found := env.Get(ident.Name)
		if !found {
			return objects.NewError("Undefined variable: '%s'", ident.Name)
		}
		args, sig := e.evalArgs(n.Args, env)
		if sig != nil {
			return sig
		}
		return e.applyCallable(val, args, env)
	}

	callee := e.Eval(n.Callee, env)
	if isSignalOrError(callee) {
		return callee
	}
	args, sig := e.evalArgs(n.Args, env)
	if sig != nil {
		return sig
	}
	return e.applyCallable(callee, args, env)
}

func (e *Evaluator) applyCallable(val objects.Value, args []objects.Value, callerEnv *scope.Environment) objects.Value {
	switch val.(type) {
	case *objects.Class:
		return e.instantiate(val.(*objects.Class), args, callerEnv)
	default:
		if e.isCallableFunction(val) {
			return e.callFunction(val, args, callerEnv)
		}
		return objects.NewError("'%s' is not callable", val.String())
	}
}

func (e *Evaluator) evalNewExpr(n *parser.NewExpr, env *scope.Environment) objects.Value {
	val, found := env.Get(n.ClassName)
	if !found {
		return objects.NewError("Undefined class: '%s'", n.ClassName)
	}
	class, ok := val.(*objects.Class)
	if !ok {
		return objects.NewError("'%s' is not a class", n.ClassName)
	}
	args, sig := e.evalArgs(n.Args, env)
	if sig != nil {
		return sig
	}
	return e.instantiate(class, args, env)
}
