/*
Package objects defines the closed runtime value taxonomy of Volt: null,
boolean, integer, floating, string, list, dictionary, function, class,
instance, and module. It also defines the non-local control-transfer
signals (return, break, continue, throw) and the runtime-error value,
which all satisfy the same Value interface so they can be returned
directly from evaluation and recognised with a type switch at whichever
construct is meant to catch them -- the same "sentinel object" shape the
reference interpreter uses for ReturnValue/Break/Continue, generalized
here with a Throw variant to carry exceptions.
*/
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Type names every concrete Value, mirroring the closed type universe
// spec.md fixes for the language.
type Type string

const (
	NullType     Type = "null"
	BooleanType  Type = "boolean"
	IntegerType  Type = "integer"
	FloatType    Type = "floating"
	StringType   Type = "string"
	ListType     Type = "list"
	DictType     Type = "dictionary"
	FunctionType Type = "function"
	ClassType    Type = "class"
	InstanceType Type = "instance"
	ModuleType   Type = "module"
	ErrorType    Type = "error"

	returnSignalType   Type = "return-signal"
	breakSignalType    Type = "break-signal"
	continueSignalType Type = "continue-signal"
	throwSignalType    Type = "throw-signal"
)

// Value is implemented by every runtime value and every control-transfer
// signal, so the evaluator's dispatch functions can return one unified
// type and let each catching construct type-switch on what came back.
type Value interface {
	Type() Type
	String() string
}

// ── null ──────────────────────────────────────────────────

type Null struct{}

func (*Null) Type() Type     { return NullType }
func (*Null) String() string { return "null" }

var NullValue = &Null{}

// ── boolean ───────────────────────────────────────────────

type Boolean struct{ Value bool }

func (b *Boolean) Type() Type { return BooleanType }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

var (
	True  = &Boolean{true}
	False = &Boolean{false}
)

func BoolValue(v bool) *Boolean {
	if v {
		return True
	}
	return False
}

// ── integer / floating ───────────────────────────────────

type Integer struct{ Value int64 }

func (i *Integer) Type() Type     { return IntegerType }
func (i *Integer) String() string { return strconv.FormatInt(i.Value, 10) }

type Float struct{ Value float64 }

func (f *Float) Type() Type { return FloatType }

// String renders an integer-valued float without a decimal point, per
// the canonical stringifier rule.
func (f *Float) String() string {
	if f.Value == float64(int64(f.Value)) {
		return strconv.FormatInt(int64(f.Value), 10)
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// ── string ────────────────────────────────────────────────

type String struct{ Value string }

func (s *String) Type() Type     { return StringType }
func (s *String) String() string { return s.Value }

// ── list ──────────────────────────────────────────────────

// List is an ordered, mutable sequence shared by reference: every alias
// of the same *List observes mutation through it.
type List struct{ Elements []Value }

func (l *List) Type() Type { return ListType }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = displayString(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ── dictionary ────────────────────────────────────────────

// Dict preserves insertion order via Keys alongside the Pairs map, the
// same ordered-map shape the pack uses for map-like values.
type Dict struct {
	Pairs map[string]Value
	Keys  []string
}

func NewDict() *Dict { return &Dict{Pairs: make(map[string]Value)} }

func (d *Dict) Type() Type { return DictType }
func (d *Dict) String() string {
	parts := make([]string, 0, len(d.Keys))
	for _, k := range d.Keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, displayString(d.Pairs[k])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Set inserts or overwrites key, tracking insertion order.
func (d *Dict) Set(key string, val Value) {
	if _, exists := d.Pairs[key]; !exists {
		d.Keys = append(d.Keys, key)
	}
	d.Pairs[key] = val
}

// Delete removes key if present and returns whether it was.
func (d *Dict) Delete(key string) bool {
	if _, exists := d.Pairs[key]; !exists {
		return false
	}
	delete(d.Pairs, key)
	for i, k := range d.Keys {
		if k == key {
			d.Keys = append(d.Keys[:i], d.Keys[i+1:]...)
			break
		}
	}
	return true
}

func (d *Dict) Copy() *Dict {
	nd := NewDict()
	for _, k := range d.Keys {
		nd.Set(k, d.Pairs[k])
	}
	return nd
}

// ── error (runtime error value, catchable by try/catch) ──

type RuntimeError struct{ Message string }

func NewError(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Type() Type     { return ErrorType }
func (e *RuntimeError) String() string { return e.Message }

func IsError(v Value) bool {
	if v == nil {
		return false
	}
	return v.Type() == ErrorType
}

// ── control-transfer signals ─────────────────────────────

// ReturnSignal carries a function's return value up through nested Eval
// calls until the call boundary that invoked the function unwraps it.
type ReturnSignal struct{ Value Value }

func (*ReturnSignal) Type() Type     { return returnSignalType }
func (r *ReturnSignal) String() string { return r.Value.String() }

// BreakSignal and ContinueSignal are caught by the innermost loop.
type BreakSignal struct{}
type ContinueSignal struct{}

func (*BreakSignal) Type() Type        { return breakSignalType }
func (*BreakSignal) String() string    { return "break" }
func (*ContinueSignal) Type() Type     { return continueSignalType }
func (*ContinueSignal) String() string { return "continue" }

// ThrowSignal carries a user-thrown value (from `throw`) up to the
// innermost try/catch, which sees the exact value, not a coerced string.
type ThrowSignal struct{ Value Value }

func (*ThrowSignal) Type() Type       { return throwSignalType }
func (t *ThrowSignal) String() string { return t.Value.String() }

// IsControlSignal reports whether v is a non-local transfer (return,
// break, continue, or throw) rather than an ordinary value or a runtime
// error.
func IsControlSignal(v Value) bool {
	switch v.(type) {
	case *ReturnSignal, *BreakSignal, *ContinueSignal, *ThrowSignal:
		return true
	}
	return false
}

// Truthy implements the language's truthiness rule: null and false are
// false; integer/floating zero is false; empty string/list/dict is
// false; everything else is true.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case *Null:
		return false
	case *Boolean:
		return x.Value
	case *Integer:
		return x.Value != 0
	case *Float:
		return x.Value != 0
	case *String:
		return x.Value != ""
	case *List:
		return len(x.Elements) != 0
	case *Dict:
		return len(x.Keys) != 0
	default:
		return true
	}
}

// AsFloat widens an Integer or Float to a float64; ok is false for any
// other value type.
func AsFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case *Integer:
		return float64(x.Value), true
	case *Float:
		return x.Value, true
	}
	return 0, false
}

// NumericStringHasDot resolves the Open Question in spec.md §9 for
// number()/ask-coercion: a value is treated as floating when its string
// form contains a literal '.', else integer.
func NumericStringHasDot(s string) bool {
	for _, r := range s {
		if r == '.' {
			return true
		}
	}
	return false
}

// displayString is the canonical stringifier used when rendering nested
// values inside a list/dict. Nested strings render unquoted, the same as
// everywhere else the stringifier is applied -- a list of strings prints
// as [a, b], not ["a", "b"]. Instances get the chance to override it via
// their own toString method, handled in the eval package where the class
// chain is visible; this package-level helper covers everything that
// needs no method dispatch.
func displayString(v Value) string {
	return v.String()
}
