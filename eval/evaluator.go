/*
Package eval implements the tree-walking evaluator: one dispatcher per AST
variant, operating on the environment chain defined by package scope. It is
single-threaded and synchronous, matching the reference interpreter's own
execution model.
*/
package eval

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/voltlang/volt/function"
	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/parser"
	"github.com/voltlang/volt/scope"
	"github.com/voltlang/volt/std"
)

// ModuleFactory builds a built-in module instance; it is called fresh each
// time `use` names a built-in, so e.g. two `use "random"` in two files each
// get their own *rand.Rand.
type ModuleFactory func(ctx *std.Context) *objects.Module

// Evaluator holds everything the evaluation of a Volt program needs beyond
// the AST itself: the global scope, host I/O, the directory relative module
// paths resolve against, and the registry of built-in modules.
type Evaluator struct {
	Global  *scope.Environment
	Writer  io.Writer
	Reader  *bufio.Reader
	BaseDir string

	Modules map[string]ModuleFactory
}

// New creates an Evaluator wired to the standard library's four built-in
// modules, writing to stdout and reading from stdin by default.
func New() *Evaluator {
	return &Evaluator{
		Global:  scope.New(),
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
		BaseDir: ".",
		Modules: map[string]ModuleFactory{
			"math":   std.NewMathModule,
			"random": std.NewRandomModule,
			"time":   std.NewTimeModule,
			"file":   std.NewFileModule,
		},
	}
}

func (e *Evaluator) ctx() *std.Context {
	return &std.Context{Writer: e.Writer, Reader: e.Reader}
}

// RunSource lexes, parses, and evaluates source in the global environment,
// returning the parser's errors (if any) separately from a runtime error
// value, the two failure kinds the CLI reports differently.
func (e *Evaluator) RunSource(source string) ([]error, objects.Value) {
	p := parser.New(source)
	prog := p.Parse()
	if p.HasErrors() {
		return p.Errors(), nil
	}
	return nil, e.RunProgram(prog)
}

// RunFile resolves path relative to BaseDir (unless absolute), then behaves
// like RunSource.
func (e *Evaluator) RunFile(path string) ([]error, objects.Value) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(e.BaseDir, path)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, objects.NewError("File not found: '%s'", path)
	}
	return e.RunSource(string(data))
}

// RunProgram evaluates every top-level statement in the global environment.
// A control signal escaping every statement is a programming error at this
// level: bare return/break/continue are rejected, and an uncaught throw is
// turned into a reportable runtime error carrying the thrown value's text.
func (e *Evaluator) RunProgram(prog *parser.Program) objects.Value {
	var result objects.Value = objects.NullValue
	for _, stmt := range prog.Statements {
		result = e.Eval(stmt, e.Global)
		switch v := result.(type) {
		case *objects.ReturnSignal:
			return objects.NewError("'return' outside of a function")
		case *objects.BreakSignal:
			return objects.NewError("'break' outside of a loop")
		case *objects.ContinueSignal:
			return objects.NewError("'continue' outside of a loop")
		case *objects.ThrowSignal:
			return objects.NewError("Uncaught exception: %s", e.Stringify(v.Value))
		case *objects.RuntimeError:
			return v
		}
	}
	return result
}

// isSignalOrError reports whether v is a non-local control transfer or a
// runtime error, the condition every block/statement dispatcher checks to
// decide whether to keep evaluating or propagate upward immediately.
func isSignalOrError(v objects.Value) bool {
	return objects.IsControlSignal(v) || objects.IsError(v)
}

// evalBlock runs a statement list in env, stopping early and propagating
// the very first signal or error any statement produces. Blocks never
// introduce a new frame (only try/catch's catch clause does), matching the
// language's scoping rule.
func (e *Evaluator) evalBlock(stmts []parser.Node, env *scope.Environment) objects.Value {
	var result objects.Value = objects.NullValue
	for _, stmt := range stmts {
		result = e.Eval(stmt, env)
		if isSignalOrError(result) {
			return result
		}
	}
	return result
}

// evalArgs evaluates an argument expression list left to right, stopping
// and surfacing the first signal/error encountered.
func (e *Evaluator) evalArgs(nodes []parser.Node, env *scope.Environment) ([]objects.Value, objects.Value) {
	args := make([]objects.Value, 0, len(nodes))
	for _, n := range nodes {
		v := e.Eval(n, env)
		if isSignalOrError(v) {
			return nil, v
		}
		args = append(args, v)
	}
	return args, nil
}

// Eval is the single dispatcher for every AST node kind, chosen by Go type
// switch rather than a visitor. The switch is not checked for
// exhaustiveness: a node variant with no case here reaches the final
// "Unknown AST node" runtime error.
func (e *Evaluator) Eval(node parser.Node, env *scope.Environment) objects.Value {
	switch n := node.(type) {

	// Literals
	case *parser.NumberLiteral:
		if n.IsFloat {
			return &objects.Float{Value: n.FloatVal}
		}
		return &objects.Integer{Value: n.IntVal}
	case *parser.StringLiteral:
		return &objects.String{Value: n.Value}
	case *parser.BooleanLiteral:
		return objects.BoolValue(n.Value)
	case *parser.NullLiteral:
		return objects.NullValue
	case *parser.ListLiteral:
		return e.evalListLiteral(n, env)
	case *parser.DictLiteral:
		return e.evalDictLiteral(n, env)
	case *parser.InterpolatedString:
		return e.evalInterpolatedString(n, env)

	// Access
	case *parser.Identifier:
		if v, ok := env.Get(n.Name); ok {
			return v
		}
		return objects.NewError("Undefined variable: '%s'", n.Name)
	case *parser.ThisExpr:
		if v, ok := env.Get("this"); ok {
			return v
		}
		return objects.NewError("'this' used outside of a method")
	case *parser.IndexAccess:
		return e.evalIndexAccess(n, env)
	case *parser.MemberAccess:
		return e.evalMemberAccess(n, env)
	case *parser.SuperMethodCall:
		return e.evalSuperMethodCall(n, env)

	// Expressions
	case *parser.BinaryOp:
		return e.evalBinaryOp(n, env)
	case *parser.UnaryOp:
		return e.evalUnaryOp(n, env)
	case *parser.CallExpr:
		return e.evalCallExpr(n, env)
	case *parser.NewExpr:
		return e.evalNewExpr(n, env)
	case *parser.LambdaExpr:
		return &function.Function{Params: convertParams(n.Params), ExprBody: n.Body, Closure: env}

	// Statements
	case *parser.Program:
		return e.evalBlock(n.Statements, env)
	case *parser.Assignment:
		return e.evalAssignment(n, env)
	case *parser.DestructureList:
		return e.evalDestructureList(n, env)
	case *parser.DestructureDict:
		return e.evalDestructureDict(n, env)
	case *parser.ShowStatement:
		return e.evalShowStatement(n, env)
	case *parser.AskStatement:
		return e.evalAskStatement(n, env)
	case *parser.IfStatement:
		return e.evalIfStatement(n, env)
	case *parser.WhileStatement:
		return e.evalWhileStatement(n, env)
	case *parser.LoopTimesStatement:
		return e.evalLoopTimesStatement(n, env)
	case *parser.LoopRangeStatement:
		return e.evalLoopRangeStatement(n, env)
	case *parser.ForInStatement:
		return e.evalForInStatement(n, env)
	case *parser.FuncDeclaration:
		fn := &function.Function{Name: n.Name, Params: convertParams(n.Params), Body: n.Body, Closure: env}
		env.Define(n.Name, fn)
		return fn
	case *parser.ReturnStatement:
		return e.evalReturnStatement(n, env)
	case *parser.BreakStatement:
		return &objects.BreakSignal{}
	case *parser.ContinueStatement:
		return &objects.ContinueSignal{}
	case *parser.PushStatement:
		return e.evalPushStatement(n, env)
	case *parser.PopStatement:
		return e.evalPopStatement(n, env)
	case *parser.ClassDeclaration:
		return e.evalClassDeclaration(n, env)
	case *parser.MatchStatement:
		return e.evalMatchStatement(n, env)
	case *parser.TryCatchStatement:
		return e.evalTryCatchStatement(n, env)
	case *parser.ThrowStatement:
		return e.evalThrowStatement(n, env)
	case *parser.UseStatement:
		return e.evalUseStatement(n, env)
	case *parser.ExprStatement:
		return e.Eval(n.Expr, env)
	}
	return objects.NewError("Unknown AST node: %T", node)
}

func convertParams(params []parser.Param) []function.Param {
	out := make([]function.Param, len(params))
	for i, p := range params {
		out[i] = function.Param{Name: p.Name, Default: p.Default}
	}
	return out
}

// TypeName names a runtime value per the language's type() convention:
// instances report their own class name rather than "instance".
func TypeName(v objects.Value) string {
	switch x := v.(type) {
	case *objects.Null:
		return "null"
	case *objects.Boolean:
		return "boolean"
	case *objects.Integer:
		return "int"
	case *objects.Float:
		return "float"
	case *objects.String:
		return "string"
	case *objects.List:
		return "list"
	case *objects.Dict:
		return "dict"
	case *function.Function:
		return "function"
	case *objects.NativeFunc:
		return "function"
	case *objects.Class:
		return "class"
	case *objects.Instance:
		return x.Class.Name
	case *objects.Module:
		return "module"
	}
	return "unknown"
}

func stringsToList(parts []string) *objects.List {
	out := make([]objects.Value, len(parts))
	for i, s := range parts {
		out[i] = &objects.String{Value: s}
	}
	return &objects.List{Elements: out}
}

func intArg(v objects.Value) int {
	f, _ := objects.AsFloat(v)
	return int(f)
}

// clampIndex clamps i into [0, n] the way Python slice bounds do: negative
// indices count from the end, and out-of-range bounds saturate rather than
// erroring.
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return i
}
