/*
Package parser - ast.go

The AST is a closed set of node variants: literals, access expressions,
operator/call expressions, and statements. Each concrete type carries its
own fields; the evaluator dispatches on the concrete Go type via a type
switch rather than a visitor. A node kind with no case in that switch is
reported at run time as an unknown AST node; the compiler does not flag it.
*/
package parser

import "github.com/voltlang/volt/lexer"

// Position locates a node in the original source, for diagnostics.
type Position struct {
	Line, Column int
}

// Node is the marker interface implemented by every AST node.
type Node interface {
	Pos() Position
}

type base struct{ Position }

func (b base) Pos() Position { return b.Position }

func at(line, col int) base { return base{Position{line, col}} }

// ── Literals ──────────────────────────────────────────────

type NumberLiteral struct {
	base
	IsFloat  bool
	IntVal   int64
	FloatVal float64
}

type StringLiteral struct {
	base
	Value string
}

type BooleanLiteral struct {
	base
	Value bool
}

type NullLiteral struct{ base }

type ListLiteral struct {
	base
	Elements []Node
}

type DictEntry struct {
	Key   Node
	Value Node
}

type DictLiteral struct {
	base
	Entries []DictEntry
}

// InterpolatedString is an f-string after parse-time expansion: literal
// text becomes a StringLiteral, expression fragments are re-lexed and
// re-parsed into their own sub-expression.
type InterpolatedString struct {
	base
	Parts []Node // each is a *StringLiteral or an expression Node
}

// ── Access ────────────────────────────────────────────────

type Identifier struct {
	base
	Name string
}

type IndexAccess struct {
	base
	Object Node
	Index  Node
}

type MemberAccess struct {
	base
	Object   Node
	Property string
}

type ThisExpr struct{ base }

type SuperMethodCall struct {
	base
	Method string
	Args   []Node
}

// ── Expressions ───────────────────────────────────────────

type BinaryOp struct {
	base
	Op    lexer.TokenType
	Left  Node
	Right Node
}

type UnaryOp struct {
	base
	Op      lexer.TokenType
	Operand Node
}

// CallExpr calls an arbitrary callee expression (identifier, member
// access, index access, or a parenthesised expression).
type CallExpr struct {
	base
	Callee Node
	Args   []Node
}

type NewExpr struct {
	base
	ClassName string
	Args      []Node
}

type Param struct {
	Name    string
	Default Node // nil if no default
}

type LambdaExpr struct {
	base
	Params []Param
	Body   Node // single expression
}

// ── Statements ────────────────────────────────────────────

type Program struct {
	base
	Statements []Node
}

// AssignTarget is the set of places a plain `set` may write: a bare name
// or a dotted/indexed chain rooted at an identifier or `this`. List and
// dict destructuring patterns are parsed into DestructureList and
// DestructureDict instead.
type AssignTarget interface{ Node }

type Assignment struct {
	base
	Target AssignTarget
	Value  Node
}

type DestructureList struct {
	base
	Names []string
	Value Node
}

type DestructureDict struct {
	base
	Names []string
	Value Node
}

type ShowStatement struct {
	base
	Expr Node
}

type AskStatement struct {
	base
	Prompt   Node
	Variable string
}

type ElifClause struct {
	Condition Node
	Body      []Node
}

type IfStatement struct {
	base
	Condition Node
	Body      []Node
	Elifs     []ElifClause
	Else      []Node // nil if absent
}

type WhileStatement struct {
	base
	Condition Node
	Body      []Node
}

// LoopTimesStatement is the `for expr { ... }` repeat-N-times form.
type LoopTimesStatement struct {
	base
	Count Node
	Body  []Node
}

// LoopRangeStatement is the `for ident in start to end { ... }` form,
// inclusive of both endpoints.
type LoopRangeStatement struct {
	base
	Variable string
	Start    Node
	End      Node
	Body     []Node
}

// ForInStatement is the `for ident[, ident2] in iterable { ... }` form.
type ForInStatement struct {
	base
	Variable  string
	Variable2 string // "" if absent
	Iterable  Node
	Body      []Node
}

type FuncDeclaration struct {
	base
	Name   string
	Params []Param
	Body   []Node
}

type ReturnStatement struct {
	base
	Value Node // nil for bare `return`
}

type BreakStatement struct{ base }
type ContinueStatement struct{ base }

type PushStatement struct {
	base
	ListExpr Node
	Value    Node
}

type PopStatement struct {
	base
	ListExpr Node
}

type MethodDecl struct {
	Name   string
	Params []Param
	Body   []Node
}

type ClassDeclaration struct {
	base
	Name    string
	Parent  string // "" if none
	Methods []MethodDecl
}

type MatchCase struct {
	Value Node
	Body  []Node
}

type MatchStatement struct {
	base
	Value   Node
	Cases   []MatchCase
	Default []Node // nil if absent
}

type TryCatchStatement struct {
	base
	TryBody     []Node
	CatchVar    string // "" if no catch clause
	HasCatch    bool
	CatchBody   []Node
	HasFinally  bool
	FinallyBody []Node
}

type ThrowStatement struct {
	base
	Value Node
}

type UseStatement struct {
	base
	ModuleName string
}

// ExprStatement wraps a bare expression evaluated for its side effect or
// its value (the parser falls back to this when no statement keyword
// matches the current token).
type ExprStatement struct {
	base
	Expr Node
}
