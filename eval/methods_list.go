package eval

import (
	"sort"
	"strings"

	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/scope"
)

func lessValues(a, b objects.Value) bool {
	if af, ok := objects.AsFloat(a); ok {
		if bf, ok2 := objects.AsFloat(b); ok2 {
			return af < bf
		}
	}
	if as, ok := a.(*objects.String); ok {
		if bs, ok2 := b.(*objects.String); ok2 {
			return as.Value < bs.Value
		}
	}
	return false
}

func sortValues(vals []objects.Value) {
	sort.SliceStable(vals, func(i, j int) bool { return lessValues(vals[i], vals[j]) })
}

func minMaxValues(vals []objects.Value, wantMin bool) objects.Value {
	best := vals[0]
	for _, v := range vals[1:] {
		if wantMin && lessValues(v, best) {
			best = v
		}
		if !wantMin && lessValues(best, v) {
			best = v
		}
	}
	return best
}

// callListMethod implements the list method table. push/append/unshift/
// insert/remove/fill/clear mutate in place and return the same list;
// pop/shift mutate and return the removed element; sort/reverse/slice/
// flat/copy/unique/map/filter return new lists without mutating the
// receiver. map/filter/find/findIndex/forEach/every/some/reduce call back
// into a user function using callerEnv as the caller's environment.
func (e *Evaluator) callListMethod(list *objects.List, method string, args []objects.Value, callerEnv *scope.Environment) objects.Value {
	switch method {
	case "push", "append":
		if len(args) == 0 {
			return objects.NewError("%s() needs 1 argument", method)
		}
		list.Elements = append(list.Elements, args[0])
		return list
	case "pop":
		if len(list.Elements) == 0 {
			return objects.NewError("Cannot pop from an empty list")
		}
		idx := len(list.Elements) - 1
		if len(args) > 0 {
			idx = intArg(args[0])
			if idx < 0 {
				idx += len(list.Elements)
			}
		}
		if idx < 0 || idx >= len(list.Elements) {
			return objects.NewError("Index %d out of range (length %d)", idx, len(list.Elements))
		}
		val := list.Elements[idx]
		list.Elements = append(list.Elements[:idx], list.Elements[idx+1:]...)
		return val
	case "shift":
		if len(list.Elements) == 0 {
			return objects.NewError("Cannot shift from an empty list")
		}
		val := list.Elements[0]
		list.Elements = list.Elements[1:]
		return val
	case "unshift":
		if len(args) == 0 {
			return objects.NewError("unshift() needs 1 argument")
		}
		list.Elements = append([]objects.Value{args[0]}, list.Elements...)
		return list
	case "insert":
		if len(args) < 2 {
			return objects.NewError("insert() needs 2 arguments")
		}
		idx := intArg(args[0])
		if idx < 0 {
			idx = 0
		}
		if idx > len(list.Elements) {
			idx = len(list.Elements)
		}
		tail := append([]objects.Value{args[1]}, list.Elements[idx:]...)
		list.Elements = append(list.Elements[:idx], tail...)
		return list
	case "remove":
		if len(args) == 0 {
			return objects.NewError("remove() needs 1 argument")
		}
		for i, el := range list.Elements {
			if e.valuesEqual(el, args[0]) {
				list.Elements = append(list.Elements[:i], list.Elements[i+1:]...)
				return list
			}
		}
		return objects.NewError("value not found in list")
	case "length":
		return &objects.Integer{Value: int64(len(list.Elements))}
	case "indexOf":
		if len(args) == 0 {
			return objects.NewError("indexOf() needs 1 argument")
		}
		for i, el := range list.Elements {
			if e.valuesEqual(el, args[0]) {
				return &objects.Integer{Value: int64(i)}
			}
		}
		return &objects.Integer{Value: -1}
	case "lastIndexOf":
		if len(args) == 0 {
			return objects.NewError("lastIndexOf() needs 1 argument")
		}
		for i := len(list.Elements) - 1; i >= 0; i-- {
			if e.valuesEqual(list.Elements[i], args[0]) {
				return &objects.Integer{Value: int64(i)}
			}
		}
		return &objects.Integer{Value: -1}
	case "includes", "contains":
		if len(args) == 0 {
			return objects.NewError("%s() needs 1 argument", method)
		}
		for _, el := range list.Elements {
			if e.valuesEqual(el, args[0]) {
				return objects.True
			}
		}
		return objects.False
	case "join":
		sep := ","
		if len(args) > 0 {
			sep = e.Stringify(args[0])
		}
		parts := make([]string, len(list.Elements))
		for i, el := range list.Elements {
			parts[i] = e.Stringify(el)
		}
		return &objects.String{Value: strings.Join(parts, sep)}
	case "slice":
		n := len(list.Elements)
		switch len(args) {
		case 0:
			return &objects.List{Elements: append([]objects.Value{}, list.Elements...)}
		case 1:
			start := clampIndex(intArg(args[0]), n)
			return &objects.List{Elements: append([]objects.Value{}, list.Elements[start:]...)}
		default:
			start := clampIndex(intArg(args[0]), n)
			end := clampIndex(intArg(args[1]), n)
			if end < start {
				end = start
			}
			return &objects.List{Elements: append([]objects.Value{}, list.Elements[start:end]...)}
		}
	case "sort":
		out := append([]objects.Value{}, list.Elements...)
		sortValues(out)
		return &objects.List{Elements: out}
	case "reverse":
		out := make([]objects.Value, len(list.Elements))
		for i, el := range list.Elements {
			out[len(list.Elements)-1-i] = el
		}
		return &objects.List{Elements: out}
	case "flat":
		var out []objects.Value
		for _, el := range list.Elements {
			if sub, ok := el.(*objects.List); ok {
				out = append(out, sub.Elements...)
			} else {
				out = append(out, el)
			}
		}
		return &objects.List{Elements: out}
	case "fill":
		if len(args) == 0 {
			return objects.NewError("fill() needs 1 argument")
		}
		start, end := 0, len(list.Elements)
		if len(args) > 1 {
			start = intArg(args[1])
		}
		if len(args) > 2 {
			end = intArg(args[2])
		}
		if end > len(list.Elements) {
			end = len(list.Elements)
		}
		for i := start; i < end; i++ {
			list.Elements[i] = args[0]
		}
		return list
	case "clear":
		list.Elements = nil
		return list
	case "copy":
		return &objects.List{Elements: append([]objects.Value{}, list.Elements...)}
	case "count":
		if len(args) == 0 {
			return objects.NewError("count() needs 1 argument")
		}
		n := 0
		for _, el := range list.Elements {
			if e.valuesEqual(el, args[0]) {
				n++
			}
		}
		return &objects.Integer{Value: int64(n)}
	case "isEmpty":
		return objects.BoolValue(len(list.Elements) == 0)
	case "first":
		if len(list.Elements) == 0 {
			return objects.NewError("Cannot get first of an empty list")
		}
		return list.Elements[0]
	case "last":
		if len(list.Elements) == 0 {
			return objects.NewError("Cannot get last of an empty list")
		}
		return list.Elements[len(list.Elements)-1]
	case "unique":
		var out []objects.Value
		for _, el := range list.Elements {
			found := false
			for _, seen := range out {
				if e.valuesEqual(seen, el) {
					found = true
					break
				}
			}
			if !found {
				out = append(out, el)
			}
		}
		return &objects.List{Elements: out}
	case "sum":
		var sum float64
		allInt := true
		for _, el := range list.Elements {
			f, ok := objects.AsFloat(el)
			if !ok {
				return objects.NewError("sum() requires a list of numbers")
			}
			if _, isInt := el.(*objects.Integer); !isInt {
				allInt = false
			}
			sum += f
		}
		if allInt {
			return &objects.Integer{Value: int64(sum)}
		}
		return &objects.Float{Value: sum}
	case "min":
		if len(list.Elements) == 0 {
			return objects.NewError("min() of an empty list")
		}
		return minMaxValues(list.Elements, true)
	case "max":
		if len(list.Elements) == 0 {
			return objects.NewError("max() of an empty list")
		}
		return minMaxValues(list.Elements, false)
	case "map":
		if len(args) == 0 {
			return objects.NewError("map() needs a function argument")
		}
		out := make([]objects.Value, len(list.Elements))
		for i, el := range list.Elements {
			r := e.callFunction(args[0], []objects.Value{el}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			out[i] = r
		}
		return &objects.List{Elements: out}
	case "filter":
		if len(args) == 0 {
			return objects.NewError("filter() needs a function argument")
		}
		var out []objects.Value
		for _, el := range list.Elements {
			r := e.callFunction(args[0], []objects.Value{el}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			if objects.Truthy(r) {
				out = append(out, el)
			}
		}
		return &objects.List{Elements: out}
	case "find":
		if len(args) == 0 {
			return objects.NewError("find() needs a function argument")
		}
		for _, el := range list.Elements {
			r := e.callFunction(args[0], []objects.Value{el}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			if objects.Truthy(r) {
				return el
			}
		}
		return objects.NullValue
	case "findIndex":
		if len(args) == 0 {
			return objects.NewError("findIndex() needs a function argument")
		}
		for i, el := range list.Elements {
			r := e.callFunction(args[0], []objects.Value{el}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			if objects.Truthy(r) {
				return &objects.Integer{Value: int64(i)}
			}
		}
		return &objects.Integer{Value: -1}
	case "forEach":
		if len(args) == 0 {
			return objects.NewError("forEach() needs a function argument")
		}
		for _, el := range list.Elements {
			r := e.callFunction(args[0], []objects.Value{el}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
		}
		return objects.NullValue
	case "every":
		if len(args) == 0 {
			return objects.NewError("every() needs a function argument")
		}
		for _, el := range list.Elements {
			r := e.callFunction(args[0], []objects.Value{el}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			if !objects.Truthy(r) {
				return objects.False
			}
		}
		return objects.True
	case "some":
		if len(args) == 0 {
			return objects.NewError("some() needs a function argument")
		}
		for _, el := range list.Elements {
			r := e.callFunction(args[0], []objects.Value{el}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			if objects.Truthy(r) {
				return objects.True
			}
		}
		return objects.False
	case "reduce":
		if len(args) == 0 {
			return objects.NewError("reduce() needs a function argument")
		}
		if len(list.Elements) == 0 && len(args) < 2 {
			return objects.NewError("reduce() of an empty list with no initial value")
		}
		var acc objects.Value
		start := 0
		if len(args) > 1 {
			acc = args[1]
		} else {
			acc = list.Elements[0]
			start = 1
		}
		for i := start; i < len(list.Elements); i++ {
			r := e.callFunction(args[0], []objects.Value{acc, list.Elements[i]}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			acc = r
		}
		return acc
	case "zip":
		if len(args) == 0 {
			return objects.NewError("zip() needs a list argument")
		}
		other, ok := args[0].(*objects.List)
		if !ok {
			return objects.NewError("zip() needs a list argument")
		}
		n := len(list.Elements)
		if len(other.Elements) < n {
			n = len(other.Elements)
		}
		out := make([]objects.Value, n)
		for i := 0; i < n; i++ {
			out[i] = &objects.List{Elements: []objects.Value{list.Elements[i], other.Elements[i]}}
		}
		return &objects.List{Elements: out}
	case "enumerate":
		out := make([]objects.Value, len(list.Elements))
		for i, el := range list.Elements {
			out[i] = &objects.List{Elements: []objects.Value{&objects.Integer{Value: int64(i)}, el}}
		}
		return &objects.List{Elements: out}
	}
	return objects.NewError("List has no method '%s'", method)
}
