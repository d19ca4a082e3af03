package std

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/voltlang/volt/objects"
	"gopkg.in/yaml.v3"
)

// NewFileModule builds the `file` built-in: plain read/write/append/exists
// operations over the host filesystem, plus YAML and JSON structured I/O
// that round-trips through toGoValue/fromGoValue so a dict/list value can
// be serialized and read back without the caller touching raw text.
func NewFileModule(ctx *Context) *objects.Module {
	m := objects.NewModule("file")

	reg := func(name string, fn Func) {
		m.Methods[name] = &objects.NativeFunc{Name: name, Fn: func(args []objects.Value) objects.Value {
			return fn(ctx, args)
		}}
	}

	pathArg := func(name string, args []objects.Value) (string, objects.Value) {
		if sig := checkArity(name, args, 1, 2); sig != nil {
			return "", sig
		}
		s, ok := args[0].(*objects.String)
		if !ok {
			return "", objects.NewError("%s() requires a path string", name)
		}
		return s.Value, nil
	}

	reg("read", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("read", args)
		if errv != nil {
			return errv
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return objects.NewError("Cannot read file '%s': %s", path, err.Error())
		}
		return &objects.String{Value: string(data)}
	})

	reg("write", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("write", args, 2, 2); sig != nil {
			return sig
		}
		path, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("write() requires a path string")
		}
		content, ok := args[1].(*objects.String)
		if !ok {
			return objects.NewError("write() requires string content")
		}
		if err := os.WriteFile(path.Value, []byte(content.Value), 0644); err != nil {
			return objects.NewError("Cannot write file '%s': %s", path.Value, err.Error())
		}
		return objects.NullValue
	})

	reg("append", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("append", args, 2, 2); sig != nil {
			return sig
		}
		path, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("append() requires a path string")
		}
		content, ok := args[1].(*objects.String)
		if !ok {
			return objects.NewError("append() requires string content")
		}
		f, err := os.OpenFile(path.Value, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return objects.NewError("Cannot open file '%s': %s", path.Value, err.Error())
		}
		defer f.Close()
		if _, err := f.WriteString(content.Value); err != nil {
			return objects.NewError("Cannot append to file '%s': %s", path.Value, err.Error())
		}
		return objects.NullValue
	})

	reg("exists", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("exists", args)
		if errv != nil {
			return errv
		}
		_, err := os.Stat(path)
		return objects.BoolValue(err == nil)
	})

	reg("delete", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("delete", args)
		if errv != nil {
			return errv
		}
		if err := os.Remove(path); err != nil {
			return objects.NewError("Cannot delete '%s': %s", path, err.Error())
		}
		return objects.NullValue
	})

	reg("list", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("list", args)
		if errv != nil {
			return errv
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return objects.NewError("Cannot list directory '%s': %s", path, err.Error())
		}
		out := make([]objects.Value, len(entries))
		for i, ent := range entries {
			out[i] = &objects.String{Value: ent.Name()}
		}
		return &objects.List{Elements: out}
	})

	reg("readlines", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("readlines", args)
		if errv != nil {
			return errv
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return objects.NewError("Cannot read file '%s': %s", path, err.Error())
		}
		return stringsToList(splitLines(string(data)))
	})

	reg("size", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("size", args)
		if errv != nil {
			return errv
		}
		info, err := os.Stat(path)
		if err != nil {
			return objects.NewError("Cannot stat '%s': %s", path, err.Error())
		}
		return &objects.Integer{Value: info.Size()}
	})

	reg("isdir", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("isdir", args)
		if errv != nil {
			return errv
		}
		info, err := os.Stat(path)
		return objects.BoolValue(err == nil && info.IsDir())
	})

	reg("isfile", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("isfile", args)
		if errv != nil {
			return errv
		}
		info, err := os.Stat(path)
		return objects.BoolValue(err == nil && !info.IsDir())
	})

	reg("mkdir", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("mkdir", args)
		if errv != nil {
			return errv
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return objects.NewError("Cannot create directory '%s': %s", path, err.Error())
		}
		return objects.NullValue
	})

	reg("copy", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("copy", args, 2, 2); sig != nil {
			return sig
		}
		src, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("copy() requires path strings")
		}
		dst, ok := args[1].(*objects.String)
		if !ok {
			return objects.NewError("copy() requires path strings")
		}
		data, err := os.ReadFile(src.Value)
		if err != nil {
			return objects.NewError("Cannot read file '%s': %s", src.Value, err.Error())
		}
		if err := os.WriteFile(dst.Value, data, 0644); err != nil {
			return objects.NewError("Cannot write file '%s': %s", dst.Value, err.Error())
		}
		return objects.NullValue
	})

	reg("rename", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("rename", args, 2, 2); sig != nil {
			return sig
		}
		src, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("rename() requires path strings")
		}
		dst, ok := args[1].(*objects.String)
		if !ok {
			return objects.NewError("rename() requires path strings")
		}
		if err := os.Rename(src.Value, dst.Value); err != nil {
			return objects.NewError("Cannot rename '%s' to '%s': %s", src.Value, dst.Value, err.Error())
		}
		return objects.NullValue
	})

	reg("readYAML", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("readYAML", args)
		if errv != nil {
			return errv
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return objects.NewError("Cannot read file '%s': %s", path, err.Error())
		}
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return objects.NewError("Cannot parse YAML in '%s': %s", path, err.Error())
		}
		return fromGoValue(raw)
	})

	reg("writeYAML", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("writeYAML", args, 2, 2); sig != nil {
			return sig
		}
		path, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("writeYAML() requires a path string")
		}
		out, err := yaml.Marshal(toGoValue(args[1]))
		if err != nil {
			return objects.NewError("Cannot encode YAML: %s", err.Error())
		}
		if err := os.WriteFile(path.Value, out, 0644); err != nil {
			return objects.NewError("Cannot write file '%s': %s", path.Value, err.Error())
		}
		return objects.NullValue
	})

	reg("readJSON", func(ctx *Context, args []objects.Value) objects.Value {
		path, errv := pathArg("readJSON", args)
		if errv != nil {
			return errv
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return objects.NewError("Cannot read file '%s': %s", path, err.Error())
		}
		var raw interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return objects.NewError("Cannot parse JSON in '%s': %s", path, err.Error())
		}
		return fromGoValue(raw)
	})

	reg("writeJSON", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("writeJSON", args, 2, 2); sig != nil {
			return sig
		}
		path, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("writeJSON() requires a path string")
		}
		out, err := json.MarshalIndent(toGoValue(args[1]), "", "  ")
		if err != nil {
			return objects.NewError("Cannot encode JSON: %s", err.Error())
		}
		if err := os.WriteFile(path.Value, out, 0644); err != nil {
			return objects.NewError("Cannot write file '%s': %s", path.Value, err.Error())
		}
		return objects.NullValue
	})

	return m
}

func stringsToList(parts []string) *objects.List {
	out := make([]objects.Value, len(parts))
	for i, s := range parts {
		out[i] = &objects.String{Value: s}
	}
	return &objects.List{Elements: out}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// toGoValue converts a Volt value into a plain Go value suitable for
// encoding/json and yaml.v3 to marshal.
func toGoValue(v objects.Value) interface{} {
	switch x := v.(type) {
	case *objects.Null:
		return nil
	case *objects.Boolean:
		return x.Value
	case *objects.Integer:
		return x.Value
	case *objects.Float:
		return x.Value
	case *objects.String:
		return x.Value
	case *objects.List:
		out := make([]interface{}, len(x.Elements))
		for i, el := range x.Elements {
			out[i] = toGoValue(el)
		}
		return out
	case *objects.Dict:
		out := make(map[string]interface{}, len(x.Keys))
		for _, k := range x.Keys {
			out[k] = toGoValue(x.Pairs[k])
		}
		return out
	}
	return nil
}

// fromGoValue converts a decoded JSON/YAML value back into a Volt value.
func fromGoValue(v interface{}) objects.Value {
	switch x := v.(type) {
	case nil:
		return objects.NullValue
	case bool:
		return objects.BoolValue(x)
	case int:
		return &objects.Integer{Value: int64(x)}
	case int64:
		return &objects.Integer{Value: x}
	case float64:
		if x == float64(int64(x)) {
			return &objects.Integer{Value: int64(x)}
		}
		return &objects.Float{Value: x}
	case string:
		return &objects.String{Value: x}
	case []interface{}:
		out := make([]objects.Value, len(x))
		for i, el := range x {
			out[i] = fromGoValue(el)
		}
		return &objects.List{Elements: out}
	case map[string]interface{}:
		d := objects.NewDict()
		for k, val := range x {
			d.Set(k, fromGoValue(val))
		}
		return d
	case map[interface{}]interface{}:
		d := objects.NewDict()
		for k, val := range x {
			d.Set(toStringKey(k), fromGoValue(val))
		}
		return d
	}
	return objects.NullValue
}

func toStringKey(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}
