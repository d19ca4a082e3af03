package eval

import (
	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/scope"
)

// callDictMethod implements the dict method table. keys/values/entries/
// toList return snapshots; get/has/remove operate by key; merge/copy
// return a new dict; map/filter/forEach call back into a user function.
func (e *Evaluator) callDictMethod(d *objects.Dict, method string, args []objects.Value, callerEnv *scope.Environment) objects.Value {
	switch method {
	case "keys":
		out := make([]objects.Value, len(d.Keys))
		for i, k := range d.Keys {
			out[i] = &objects.String{Value: k}
		}
		return &objects.List{Elements: out}
	case "values":
		out := make([]objects.Value, len(d.Keys))
		for i, k := range d.Keys {
			out[i] = d.Pairs[k]
		}
		return &objects.List{Elements: out}
	case "entries":
		out := make([]objects.Value, len(d.Keys))
		for i, k := range d.Keys {
			out[i] = &objects.List{Elements: []objects.Value{&objects.String{Value: k}, d.Pairs[k]}}
		}
		return &objects.List{Elements: out}
	case "has", "contains":
		if len(args) == 0 {
			return objects.NewError("%s() needs 1 argument", method)
		}
		_, ok := d.Pairs[e.Stringify(args[0])]
		return objects.BoolValue(ok)
	case "get":
		if len(args) == 0 {
			return objects.NewError("get() needs 1 argument")
		}
		key := e.Stringify(args[0])
		if v, ok := d.Pairs[key]; ok {
			return v
		}
		if len(args) > 1 {
			return args[1]
		}
		return objects.NullValue
	case "remove", "delete":
		if len(args) == 0 {
			return objects.NewError("%s() needs 1 argument", method)
		}
		key := e.Stringify(args[0])
		val, ok := d.Pairs[key]
		if !ok {
			return objects.NewError("Key '%s' not found in dict", key)
		}
		d.Delete(key)
		return val
	case "size", "length":
		return &objects.Integer{Value: int64(len(d.Keys))}
	case "merge":
		if len(args) == 0 {
			return objects.NewError("merge() needs a dict argument")
		}
		other, ok := args[0].(*objects.Dict)
		if !ok {
			return objects.NewError("merge() needs a dict argument")
		}
		out := d.Copy()
		for _, k := range other.Keys {
			out.Set(k, other.Pairs[k])
		}
		return out
	case "clear":
		d.Pairs = make(map[string]objects.Value)
		d.Keys = nil
		return d
	case "copy":
		return d.Copy()
	case "isEmpty":
		return objects.BoolValue(len(d.Keys) == 0)
	case "toList":
		out := make([]objects.Value, len(d.Keys))
		for i, k := range d.Keys {
			out[i] = &objects.List{Elements: []objects.Value{&objects.String{Value: k}, d.Pairs[k]}}
		}
		return &objects.List{Elements: out}
	case "forEach":
		if len(args) == 0 {
			return objects.NewError("forEach() needs a function argument")
		}
		for _, k := range d.Keys {
			r := e.callFunction(args[0], []objects.Value{&objects.String{Value: k}, d.Pairs[k]}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
		}
		return objects.NullValue
	case "map":
		if len(args) == 0 {
			return objects.NewError("map() needs a function argument")
		}
		out := objects.NewDict()
		for _, k := range d.Keys {
			r := e.callFunction(args[0], []objects.Value{&objects.String{Value: k}, d.Pairs[k]}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			out.Set(k, r)
		}
		return out
	case "filter":
		if len(args) == 0 {
			return objects.NewError("filter() needs a function argument")
		}
		out := objects.NewDict()
		for _, k := range d.Keys {
			r := e.callFunction(args[0], []objects.Value{&objects.String{Value: k}, d.Pairs[k]}, callerEnv)
			if isSignalOrError(r) {
				return r
			}
			if objects.Truthy(r) {
				out.Set(k, d.Pairs[k])
			}
		}
		return out
	}
	return objects.NewError("Dict has no method '%s'", method)
}
