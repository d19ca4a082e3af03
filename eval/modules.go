package eval

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/voltlang/volt/function"
	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/parser"
	"github.com/voltlang/volt/scope"
)

// evalUseStatement implements `use`. A built-in module name binds under
// the literal argument verbatim; a file path has `.volt` appended if
// missing, is parsed and evaluated in a fresh environment parented on the
// global scope (not the use-site's environment), and its top-level
// bindings are snapshotted into a module value bound under the path's
// base name (directory and extension stripped), in the use-evaluating
// environment.
func (e *Evaluator) evalUseStatement(n *parser.UseStatement, env *scope.Environment) objects.Value {
	name := n.ModuleName

	if factory, ok := e.Modules[name]; ok {
		module := factory(e.ctx())
		env.Define(name, module)
		return module
	}

	path := name
	if !strings.HasSuffix(path, ".volt") {
		path += ".volt"
	}
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(e.BaseDir, path)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return objects.NewError("Module not found: '%s'", name)
	}

	p := parser.New(string(data))
	prog := p.Parse()
	if p.HasErrors() {
		return objects.NewError("Module '%s' failed to parse: %s", name, p.Errors()[0].Error())
	}

	moduleEnv := e.Global.NewChild()
	for _, stmt := range prog.Statements {
		r := e.Eval(stmt, moduleEnv)
		if isSignalOrError(r) {
			return objects.NewError("Error loading module '%s': %s", name, r.String())
		}
	}

	baseName := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	module := objects.NewModule(baseName)
	bindings := moduleEnv.Snapshot()
	for k, v := range bindings {
		module.Properties[k] = v
		if fn, ok := v.(*function.Function); ok {
			capturedFn, capturedEnv := fn, moduleEnv
			module.Methods[k] = &objects.NativeFunc{Name: k, Fn: func(args []objects.Value) objects.Value {
				return e.callFunction(capturedFn, args, capturedEnv)
			}}
		}
	}

	env.Define(baseName, module)
	return module
}
