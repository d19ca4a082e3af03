package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/parser"
	"github.com/voltlang/volt/scope"
)

func (e *Evaluator) evalAssignment(n *parser.Assignment, env *scope.Environment) objects.Value {
	val := e.Eval(n.Value, env)
	if isSignalOrError(val) {
		return val
	}
	return e.assignTo(n.Target, val, env)
}

func (e *Evaluator) evalDestructureList(n *parser.DestructureList, env *scope.Environment) objects.Value {
	val := e.Eval(n.Value, env)
	if isSignalOrError(val) {
		return val
	}
	list, ok := val.(*objects.List)
	if !ok {
		return objects.NewError("Cannot destructure a %s into a list pattern", TypeName(val))
	}
	if len(n.Names) > len(list.Elements) {
		return objects.NewError("Not enough values to destructure: expected %d, got %d", len(n.Names), len(list.Elements))
	}
	for i, name := range n.Names {
		env.Define(name, list.Elements[i])
	}
	return objects.NullValue
}

func (e *Evaluator) evalDestructureDict(n *parser.DestructureDict, env *scope.Environment) objects.Value {
	val := e.Eval(n.Value, env)
	if isSignalOrError(val) {
		return val
	}
	switch v := val.(type) {
	case *objects.Instance:
		for _, name := range n.Names {
			pv, ok := v.Properties[name]
			if !ok {
				return objects.NewError("'%s' has no property '%s'", v.Class.Name, name)
			}
			env.Define(name, pv)
		}
	case *objects.Dict:
		for _, name := range n.Names {
			pv, ok := v.Pairs[name]
			if !ok {
				return objects.NewError("Key '%s' not found in dict", name)
			}
			env.Define(name, pv)
		}
	default:
		return objects.NewError("Cannot destructure a %s into a dict pattern", TypeName(val))
	}
	return objects.NullValue
}

func (e *Evaluator) evalShowStatement(n *parser.ShowStatement, env *scope.Environment) objects.Value {
	val := e.Eval(n.Expr, env)
	if isSignalOrError(val) {
		return val
	}
	fmt.Fprintln(e.Writer, e.Stringify(val))
	return objects.NullValue
}

func (e *Evaluator) evalAskStatement(n *parser.AskStatement, env *scope.Environment) objects.Value {
	prompt := e.Eval(n.Prompt, env)
	if isSignalOrError(prompt) {
		return prompt
	}
	fmt.Fprint(e.Writer, e.Stringify(prompt))
	line, _ := e.Reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	val := autoCoerce(line)
	env.Define(n.Variable, val)
	return val
}

// autoCoerce implements `ask`'s input coercion: a literal '.' in the raw
// text tries a float parse, its absence tries an int parse; either parse
// failure falls through to a case-insensitive true/false check, and
// finally the raw string itself.
func autoCoerce(line string) objects.Value {
	if objects.NumericStringHasDot(line) {
		if f, err := strconv.ParseFloat(line, 64); err == nil {
			return &objects.Float{Value: f}
		}
	} else {
		if i, err := strconv.ParseInt(line, 10, 64); err == nil {
			return &objects.Integer{Value: i}
		}
	}
	switch strings.ToLower(line) {
	case "true":
		return objects.True
	case "false":
		return objects.False
	}
	return &objects.String{Value: line}
}

func (e *Evaluator) evalIfStatement(n *parser.IfStatement, env *scope.Environment) objects.Value {
	cond := e.Eval(n.Condition, env)
	if isSignalOrError(cond) {
		return cond
	}
	if objects.Truthy(cond) {
		return e.evalBlock(n.Body, env)
	}
	for _, elif := range n.Elifs {
		c := e.Eval(elif.Condition, env)
		if isSignalOrError(c) {
			return c
		}
		if objects.Truthy(c) {
			return e.evalBlock(elif.Body, env)
		}
	}
	if n.Else != nil {
		return e.evalBlock(n.Else, env)
	}
	return objects.NullValue
}

func (e *Evaluator) evalWhileStatement(n *parser.WhileStatement, env *scope.Environment) objects.Value {
	var result objects.Value = objects.NullValue
	for {
		cond := e.Eval(n.Condition, env)
		if isSignalOrError(cond) {
			return cond
		}
		if !objects.Truthy(cond) {
			break
		}
		r := e.evalBlock(n.Body, env)
		if _, ok := r.(*objects.BreakSignal); ok {
			break
		}
		if _, ok := r.(*objects.ContinueSignal); ok {
			continue
		}
		if isSignalOrError(r) {
			return r
		}
		result = r
	}
	return result
}

func (e *Evaluator) evalLoopTimesStatement(n *parser.LoopTimesStatement, env *scope.Environment) objects.Value {
	countVal := e.Eval(n.Count, env)
	if isSignalOrError(countVal) {
		return countVal
	}
	count, ok := asIndex(countVal)
	if !ok {
		return objects.NewError("loop count must be a number")
	}
	var result objects.Value = objects.NullValue
	for i := 0; i < count; i++ {
		r := e.evalBlock(n.Body, env)
		if _, ok := r.(*objects.BreakSignal); ok {
			break
		}
		if _, ok := r.(*objects.ContinueSignal); ok {
			continue
		}
		if isSignalOrError(r) {
			return r
		}
		result = r
	}
	return result
}

func (e *Evaluator) evalLoopRangeStatement(n *parser.LoopRangeStatement, env *scope.Environment) objects.Value {
	startVal := e.Eval(n.Start, env)
	if isSignalOrError(startVal) {
		return startVal
	}
	endVal := e.Eval(n.End, env)
	if isSignalOrError(endVal) {
		return endVal
	}
	start, ok1 := asIndex(startVal)
	end, ok2 := asIndex(endVal)
	if !ok1 || !ok2 {
		return objects.NewError("loop range bounds must be numbers")
	}
	var result objects.Value = objects.NullValue
	for i := start; i <= end; i++ {
		env.Define(n.Variable, &objects.Integer{Value: int64(i)})
		r := e.evalBlock(n.Body, env)
		if _, ok := r.(*objects.BreakSignal); ok {
			break
		}
		if _, ok := r.(*objects.ContinueSignal); ok {
			continue
		}
		if isSignalOrError(r) {
			return r
		}
		result = r
	}
	return result
}

func (e *Evaluator) evalForInStatement(n *parser.ForInStatement, env *scope.Environment) objects.Value {
	iterVal := e.Eval(n.Iterable, env)
	if isSignalOrError(iterVal) {
		return iterVal
	}
	var result objects.Value = objects.NullValue

	step := func(bind func()) (stop bool, propagate objects.Value) {
		bind()
		r := e.evalBlock(n.Body, env)
		if _, ok := r.(*objects.BreakSignal); ok {
			return true, nil
		}
		if _, ok := r.(*objects.ContinueSignal); ok {
			return false, nil
		}
		if isSignalOrError(r) {
			return true, r
		}
		result = r
		return false, nil
	}

	switch it := iterVal.(type) {
	case *objects.List:
		for i, el := range it.Elements {
			el, i := el, i
			stop, prop := step(func() {
				if n.Variable2 != "" {
					env.Define(n.Variable, &objects.Integer{Value: int64(i)})
					env.Define(n.Variable2, el)
				} else {
					env.Define(n.Variable, el)
				}
			})
			if prop != nil {
				return prop
			}
			if stop {
				break
			}
		}
	case *objects.String:
		idx := 0
		for _, r := range it.Value {
			r, i := r, idx
			idx++
			stop, prop := step(func() {
				if n.Variable2 != "" {
					env.Define(n.Variable, &objects.Integer{Value: int64(i)})
					env.Define(n.Variable2, &objects.String{Value: string(r)})
				} else {
					env.Define(n.Variable, &objects.String{Value: string(r)})
				}
			})
			if prop != nil {
				return prop
			}
			if stop {
				break
			}
		}
	case *objects.Dict:
		for _, k := range it.Keys {
			k := k
			stop, prop := step(func() {
				env.Define(n.Variable, &objects.String{Value: k})
				if n.Variable2 != "" {
					env.Define(n.Variable2, it.Pairs[k])
				}
			})
			if prop != nil {
				return prop
			}
			if stop {
				break
			}
		}
	default:
		return objects.NewError("Cannot iterate over a %s", TypeName(iterVal))
	}
	return result
}

func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatement, env *scope.Environment) objects.Value {
	if n.Value == nil {
		return &objects.ReturnSignal{Value: objects.NullValue}
	}
	val := e.Eval(n.Value, env)
	if isSignalOrError(val) {
		return val
	}
	return &objects.ReturnSignal{Value: val}
}

func (e *Evaluator) evalPushStatement(n *parser.PushStatement, env *scope.Environment) objects.Value {
	listVal := e.Eval(n.ListExpr, env)
	if isSignalOrError(listVal) {
		return listVal
	}
	val := e.Eval(n.Value, env)
	if isSignalOrError(val) {
		return val
	}
	list, ok := listVal.(*objects.List)
	if !ok {
		return objects.NewError("push requires a list, got %s", TypeName(listVal))
	}
	list.Elements = append(list.Elements, val)
	return objects.NullValue
}

func (e *Evaluator) evalPopStatement(n *parser.PopStatement, env *scope.Environment) objects.Value {
	listVal := e.Eval(n.ListExpr, env)
	if isSignalOrError(listVal) {
		return listVal
	}
	list, ok := listVal.(*objects.List)
	if !ok {
		return objects.NewError("pop requires a list, got %s", TypeName(listVal))
	}
	if len(list.Elements) == 0 {
		return objects.NewError("Cannot pop from an empty list")
	}
	last := list.Elements[len(list.Elements)-1]
	list.Elements = list.Elements[:len(list.Elements)-1]
	return last
}

func (e *Evaluator) evalMatchStatement(n *parser.MatchStatement, env *scope.Environment) objects.Value {
	val := e.Eval(n.Value, env)
	if isSignalOrError(val) {
		return val
	}
	for _, c := range n.Cases {
		caseVal := e.Eval(c.Value, env)
		if isSignalOrError(caseVal) {
			return caseVal
		}
		if e.valuesEqual(val, caseVal) {
			return e.evalBlock(c.Body, env)
		}
	}
	if n.Default != nil {
		return e.evalBlock(n.Default, env)
	}
	return objects.NullValue
}

func (e *Evaluator) evalThrowStatement(n *parser.ThrowStatement, env *scope.Environment) objects.Value {
	val := e.Eval(n.Value, env)
	if isSignalOrError(val) {
		return val
	}
	return &objects.ThrowSignal{Value: val}
}

// evalTryCatchStatement: a catch clause intercepts a thrown value (raw)
// or a runtime error (its message, as a string); return/break/continue
// are never caught here, passing through untouched. The finally clause
// always runs in the outer environment, and if it itself produces a
// signal or error, that supersedes whatever was about to propagate.
func (e *Evaluator) evalTryCatchStatement(n *parser.TryCatchStatement, env *scope.Environment) objects.Value {
	result := e.evalBlock(n.TryBody, env)

	if n.HasCatch {
		var caughtValue objects.Value
		caught := false
		if throwSig, ok := result.(*objects.ThrowSignal); ok {
			caught = true
			caughtValue = throwSig.Value
		} else if objects.IsError(result) {
			caught = true
			caughtValue = &objects.String{Value: result.String()}
		}
		if caught {
			catchEnv := env.NewChild()
			catchEnv.Define(n.CatchVar, caughtValue)
			result = e.evalBlock(n.CatchBody, catchEnv)
		}
	}

	if n.HasFinally {
		finallyResult := e.evalBlock(n.FinallyBody, env)
		if isSignalOrError(finallyResult) {
			return finallyResult
		}
	}
	return result
}
