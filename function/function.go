/*
Package function defines the callable function value. It is kept apart
from objects so that objects.Class can store methods as objects.Value
without this package's dependency on scope.Environment creating an import
cycle back into objects.
*/
package function

import (
	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/parser"
	"github.com/voltlang/volt/scope"
)

// Param is a function parameter with an optional default expression.
// Defaults are evaluated in the caller's environment when an argument is
// omitted, not in the function's closure -- a deliberate, pinned choice
// (see SPEC_FULL.md §5).
type Param struct {
	Name    string
	Default parser.Node
}

// Function is a first-class function value: a parameter list, a body of
// statements, and the environment captured at its declaration site. The
// Closure pointer is immutable once the value is created; only the
// bindings inside that frame may later change, which is how a closure
// observes later assignments to its defining scope.
type Function struct {
	Name string // "" for lambdas

	Params []Param

	// Body holds the statement list for a `func` declaration; ExprBody
	// holds the single expression for a lambda. ExprBody is non-nil only
	// for a lambda; a `func` with an empty block leaves both nil.
	Body     []parser.Node
	ExprBody parser.Node

	Closure *scope.Environment
}

func (*Function) Type() objects.Type { return objects.FunctionType }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "lambda"
	}
	return "<function " + name + ">"
}
