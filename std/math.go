package std

import (
	"math"

	"github.com/voltlang/volt/objects"
)

func numArg(v objects.Value) (float64, bool) {
	return objects.AsFloat(v)
}

// NewMathModule builds the `math` built-in: a handful of constants plus
// the usual set of single/double-argument real functions, each wrapped
// as a NativeFunc over the shared Context calling convention.
func NewMathModule(ctx *Context) *objects.Module {
	m := objects.NewModule("math")
	reg := func(name string, fn Func) {
		m.Methods[name] = &objects.NativeFunc{Name: name, Fn: func(args []objects.Value) objects.Value {
			return fn(ctx, args)
		}}
	}

	m.Properties["pi"] = &objects.Float{Value: math.Pi}
	m.Properties["e"] = &objects.Float{Value: math.E}
	m.Properties["tau"] = &objects.Float{Value: 2 * math.Pi}
	m.Properties["inf"] = &objects.Float{Value: math.Inf(1)}
	m.Properties["nan"] = &objects.Float{Value: math.NaN()}

	unary := func(name string, fn func(float64) float64) {
		reg(name, func(ctx *Context, args []objects.Value) objects.Value {
			if sig := checkArity(name, args, 1, 1); sig != nil {
				return sig
			}
			f, ok := numArg(args[0])
			if !ok {
				return objects.NewError("%s() requires a number", name)
			}
			return &objects.Float{Value: fn(f)}
		})
	}

	unary("sqrt", math.Sqrt)
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("asin", math.Asin)
	unary("acos", math.Acos)
	unary("atan", math.Atan)
	unary("log", math.Log)
	unary("log10", math.Log10)
	unary("log2", math.Log2)
	unary("exp", math.Exp)
	unary("radians", func(d float64) float64 { return d * math.Pi / 180 })
	unary("degrees", func(r float64) float64 { return r * 180 / math.Pi })

	reg("round", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("round", args, 1, 1); sig != nil {
			return sig
		}
		f, ok := numArg(args[0])
		if !ok {
			return objects.NewError("round() requires a number")
		}
		return &objects.Integer{Value: int64(math.Round(f))}
	})

	reg("abs", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("abs", args, 1, 1); sig != nil {
			return sig
		}
		if i, ok := args[0].(*objects.Integer); ok {
			n := i.Value
			if n < 0 {
				n = -n
			}
			return &objects.Integer{Value: n}
		}
		f, ok := numArg(args[0])
		if !ok {
			return objects.NewError("abs() requires a number")
		}
		return &objects.Float{Value: math.Abs(f)}
	})

	reg("pow", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("pow", args, 2, 2); sig != nil {
			return sig
		}
		base, ok1 := numArg(args[0])
		exp, ok2 := numArg(args[1])
		if !ok1 || !ok2 {
			return objects.NewError("pow() requires two numbers")
		}
		return &objects.Float{Value: math.Pow(base, exp)}
	})

	reg("hypot", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("hypot", args, 2, 2); sig != nil {
			return sig
		}
		a, ok1 := numArg(args[0])
		b, ok2 := numArg(args[1])
		if !ok1 || !ok2 {
			return objects.NewError("hypot() requires two numbers")
		}
		return &objects.Float{Value: math.Hypot(a, b)}
	})

	reg("min", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("min", args, 2, 2); sig != nil {
			return sig
		}
		a, ok1 := numArg(args[0])
		b, ok2 := numArg(args[1])
		if !ok1 || !ok2 {
			return objects.NewError("min() requires two numbers")
		}
		return &objects.Float{Value: math.Min(a, b)}
	})

	reg("max", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("max", args, 2, 2); sig != nil {
			return sig
		}
		a, ok1 := numArg(args[0])
		b, ok2 := numArg(args[1])
		if !ok1 || !ok2 {
			return objects.NewError("max() requires two numbers")
		}
		return &objects.Float{Value: math.Max(a, b)}
	})

	reg("gcd", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("gcd", args, 2, 2); sig != nil {
			return sig
		}
		a, ok1 := args[0].(*objects.Integer)
		b, ok2 := args[1].(*objects.Integer)
		if !ok1 || !ok2 {
			return objects.NewError("gcd() requires two integers")
		}
		x, y := a.Value, b.Value
		if x < 0 {
			x = -x
		}
		if y < 0 {
			y = -y
		}
		for y != 0 {
			x, y = y, x%y
		}
		return &objects.Integer{Value: x}
	})

	return m
}
