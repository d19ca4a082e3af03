package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/voltlang/volt/objects"
)

// builtin is a global function reachable by bare name, with no surrounding
// module or receiver -- the same flat namespace the reference interpreter
// hangs directly off the Interpreter instance rather than off a separate
// stdlib module.
type builtin func(e *Evaluator, args []objects.Value) objects.Value

func arityError(name string, want, got int) objects.Value {
	return objects.NewError("%s() takes %d argument(s), got %d", name, want, got)
}

var globalBuiltins = map[string]builtin{
	"len": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("len", 1, len(args))
		}
		switch v := args[0].(type) {
		case *objects.String:
			return &objects.Integer{Value: int64(len([]rune(v.Value)))}
		case *objects.List:
			return &objects.Integer{Value: int64(len(v.Elements))}
		case *objects.Dict:
			return &objects.Integer{Value: int64(len(v.Keys))}
		}
		return objects.NewError("len() unsupported for %s", TypeName(args[0]))
	},
	"str": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("str", 1, len(args))
		}
		return &objects.String{Value: e.Stringify(args[0])}
	},
	"string": func(e *Evaluator, args []objects.Value) objects.Value {
		return globalBuiltins["str"](e, args)
	},
	"int": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("int", 1, len(args))
		}
		switch v := args[0].(type) {
		case *objects.Integer:
			return v
		case *objects.Float:
			return &objects.Integer{Value: int64(v.Value)}
		case *objects.Boolean:
			if v.Value {
				return &objects.Integer{Value: 1}
			}
			return &objects.Integer{Value: 0}
		case *objects.String:
			n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
			if err != nil {
				return objects.NewError("Cannot convert %q to int", v.Value)
			}
			return &objects.Integer{Value: n}
		}
		return objects.NewError("Cannot convert %s to int", TypeName(args[0]))
	},
	"float": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("float", 1, len(args))
		}
		switch v := args[0].(type) {
		case *objects.Float:
			return v
		case *objects.Integer:
			return &objects.Float{Value: float64(v.Value)}
		case *objects.String:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
			if err != nil {
				return objects.NewError("Cannot convert %q to float", v.Value)
			}
			return &objects.Float{Value: f}
		}
		return objects.NewError("Cannot convert %s to float", TypeName(args[0]))
	},
	"number": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("number", 1, len(args))
		}
		s, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("number() requires a string argument")
		}
		trimmed := strings.TrimSpace(s.Value)
		if objects.NumericStringHasDot(trimmed) {
			f, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return objects.NewError("Cannot convert %q to a number", s.Value)
			}
			return &objects.Float{Value: f}
		}
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return objects.NewError("Cannot convert %q to a number", s.Value)
		}
		return &objects.Integer{Value: n}
	},
	"bool": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("bool", 1, len(args))
		}
		return objects.BoolValue(objects.Truthy(args[0]))
	},
	"type": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("type", 1, len(args))
		}
		return &objects.String{Value: TypeName(args[0])}
	},
	"isinstance": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 2 {
			return arityError("isinstance", 2, len(args))
		}
		inst, ok := args[0].(*objects.Instance)
		if !ok {
			return objects.False
		}
		class, ok := args[1].(*objects.Class)
		if !ok {
			return objects.NewError("isinstance() second argument must be a class")
		}
		return objects.BoolValue(inst.Class.IsOrInherits(class))
	},
	"range": func(e *Evaluator, args []objects.Value) objects.Value {
		var start, end, step int64
		step = 1
		switch len(args) {
		case 1:
			end = int64(intArg(args[0]))
		case 2:
			start = int64(intArg(args[0]))
			end = int64(intArg(args[1]))
		case 3:
			start = int64(intArg(args[0]))
			end = int64(intArg(args[1]))
			step = int64(intArg(args[2]))
		default:
			return objects.NewError("range() takes 1 to 3 arguments, got %d", len(args))
		}
		if step == 0 {
			return objects.NewError("range() step must not be zero")
		}
		var out []objects.Value
		if step > 0 {
			for i := start; i < end; i += step {
				out = append(out, &objects.Integer{Value: i})
			}
		} else {
			for i := start; i > end; i += step {
				out = append(out, &objects.Integer{Value: i})
			}
		}
		return &objects.List{Elements: out}
	},
	"abs": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("abs", 1, len(args))
		}
		return e.callNumberMethod(args[0], "abs", nil)
	},
	"min": func(e *Evaluator, args []objects.Value) objects.Value {
		vals := args
		if len(vals) == 1 {
			if l, ok := vals[0].(*objects.List); ok {
				vals = l.Elements
			}
		}
		if len(vals) == 0 {
			return objects.NewError("min() needs at least 1 argument")
		}
		return minMaxValues(vals, true)
	},
	"max": func(e *Evaluator, args []objects.Value) objects.Value {
		vals := args
		if len(vals) == 1 {
			if l, ok := vals[0].(*objects.List); ok {
				vals = l.Elements
			}
		}
		if len(vals) == 0 {
			return objects.NewError("max() needs at least 1 argument")
		}
		return minMaxValues(vals, false)
	},
	"round": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) == 0 {
			return arityError("round", 1, len(args))
		}
		f, ok := objects.AsFloat(args[0])
		if !ok {
			return objects.NewError("round() requires a number")
		}
		digits := 0
		if len(args) > 1 {
			digits = intArg(args[1])
		}
		mult := math.Pow(10, float64(digits))
		rounded := math.Round(f*mult) / mult
		if digits <= 0 {
			return &objects.Integer{Value: int64(rounded)}
		}
		return &objects.Float{Value: rounded}
	},
	"upper": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("upper", 1, len(args))
		}
		s, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("upper() requires a string")
		}
		return e.callStringMethod(s, "upper", nil)
	},
	"lower": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("lower", 1, len(args))
		}
		s, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("lower() requires a string")
		}
		return e.callStringMethod(s, "lower", nil)
	},
	"split": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) == 0 {
			return arityError("split", 1, len(args))
		}
		s, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("split() requires a string")
		}
		return e.callStringMethod(s, "split", args[1:])
	},
	"join": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 2 {
			return arityError("join", 2, len(args))
		}
		sep, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("join() first argument must be a string separator")
		}
		return e.callStringMethod(sep, "join", []objects.Value{args[1]})
	},
	"contains": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 2 {
			return arityError("contains", 2, len(args))
		}
		switch v := args[0].(type) {
		case *objects.String:
			return e.callStringMethod(v, "contains", []objects.Value{args[1]})
		case *objects.List:
			return e.callListMethod(v, "contains", []objects.Value{args[1]}, e.Global)
		case *objects.Dict:
			return e.callDictMethod(v, "contains", []objects.Value{args[1]}, e.Global)
		}
		return objects.NewError("contains() unsupported for %s", TypeName(args[0]))
	},
	"reverse": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("reverse", 1, len(args))
		}
		switch v := args[0].(type) {
		case *objects.String:
			return e.callStringMethod(v, "reverse", nil)
		case *objects.List:
			return e.callListMethod(v, "reverse", nil, e.Global)
		}
		return objects.NewError("reverse() unsupported for %s", TypeName(args[0]))
	},
	"sort": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("sort", 1, len(args))
		}
		l, ok := args[0].(*objects.List)
		if !ok {
			return objects.NewError("sort() requires a list")
		}
		return e.callListMethod(l, "sort", nil, e.Global)
	},
	"keys": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("keys", 1, len(args))
		}
		d, ok := args[0].(*objects.Dict)
		if !ok {
			return objects.NewError("keys() requires a dict")
		}
		return e.callDictMethod(d, "keys", nil, e.Global)
	},
	"values": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("values", 1, len(args))
		}
		d, ok := args[0].(*objects.Dict)
		if !ok {
			return objects.NewError("values() requires a dict")
		}
		return e.callDictMethod(d, "values", nil, e.Global)
	},
	"print": func(e *Evaluator, args []objects.Value) objects.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = e.Stringify(a)
		}
		fmt.Fprintln(e.Writer, strings.Join(parts, " "))
		return objects.NullValue
	},
	"input": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) > 0 {
			fmt.Fprint(e.Writer, e.Stringify(args[0]))
		}
		line, _ := e.Reader.ReadString('\n')
		return &objects.String{Value: strings.TrimRight(line, "\r\n")}
	},
	"char": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("char", 1, len(args))
		}
		n := intArg(args[0])
		return &objects.String{Value: string(rune(n))}
	},
	"ord": func(e *Evaluator, args []objects.Value) objects.Value {
		if len(args) != 1 {
			return arityError("ord", 1, len(args))
		}
		s, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("ord() requires a single-character string")
		}
		runes := []rune(s.Value)
		if len(runes) != 1 {
			return objects.NewError("ord() requires a single-character string")
		}
		return &objects.Integer{Value: int64(runes[0])}
	},
}
