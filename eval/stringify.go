package eval

import (
	"strconv"
	"strings"

	"github.com/voltlang/volt/function"
	"github.com/voltlang/volt/objects"
)

// Stringify is the single canonical stringifier: `show`, string()/str(),
// interpolation, and string-coercing `+` all funnel through here so an
// instance with a toString method renders consistently everywhere.
// Lists and dicts render their elements with the same rule, recursively,
// and without quoting nested strings -- [a, b], not ["a", "b"].
func (e *Evaluator) Stringify(v objects.Value) string {
	switch x := v.(type) {
	case *objects.Null:
		return "null"
	case *objects.Boolean:
		if x.Value {
			return "true"
		}
		return "false"
	case *objects.Integer:
		return strconv.FormatInt(x.Value, 10)
	case *objects.Float:
		if x.Value == float64(int64(x.Value)) {
			return strconv.FormatInt(int64(x.Value), 10)
		}
		return strconv.FormatFloat(x.Value, 'g', -1, 64)
	case *objects.String:
		return x.Value
	case *objects.List:
		parts := make([]string, len(x.Elements))
		for i, el := range x.Elements {
			parts[i] = e.Stringify(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *objects.Dict:
		parts := make([]string, 0, len(x.Keys))
		for _, k := range x.Keys {
			parts = append(parts, k+": "+e.Stringify(x.Pairs[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *objects.Instance:
		return e.instanceToString(x)
	default:
		return v.String()
	}
}

// instanceToString looks for a toString method on the instance's class
// chain and, if it exists and actually executes a `return`, renders the
// returned value instead of the default `<Name instance>` form. A
// toString body that falls through without an explicit return yields the
// default form too, matching the reference interpreter exactly: only a
// genuine ReturnSignal counts.
func (e *Evaluator) instanceToString(inst *objects.Instance) string {
	methodVal, _, found := inst.Class.FindMethod("toString")
	if !found {
		return inst.String()
	}
	fn, ok := methodVal.(*function.Function)
	if !ok {
		return inst.String()
	}
	frame := fn.Closure.NewChild()
	frame.Define("this", inst)
	frame.Define("__class__", inst.Class)
	result := e.evalBlock(fn.Body, frame)
	if ret, ok := result.(*objects.ReturnSignal); ok {
		return e.Stringify(ret.Value)
	}
	return inst.String()
}
