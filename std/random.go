package std

import (
	"math/rand"
	"time"

	"github.com/voltlang/volt/objects"
)

// NewRandomModule builds the `random` built-in. Each `use "random"` gets
// its own *rand.Rand seeded from the current time, so two modules loaded
// in the same program don't share or fight over global random state.
func NewRandomModule(ctx *Context) *objects.Module {
	m := objects.NewModule("random")
	src := rand.New(rand.NewSource(time.Now().UnixNano()))

	reg := func(name string, fn Func) {
		m.Methods[name] = &objects.NativeFunc{Name: name, Fn: func(args []objects.Value) objects.Value {
			return fn(ctx, args)
		}}
	}

	reg("int", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("int", args, 2, 2); sig != nil {
			return sig
		}
		lo, ok1 := args[0].(*objects.Integer)
		hi, ok2 := args[1].(*objects.Integer)
		if !ok1 || !ok2 {
			return objects.NewError("random.int() requires two integers")
		}
		if hi.Value < lo.Value {
			return objects.NewError("random.int() requires low <= high")
		}
		return &objects.Integer{Value: lo.Value + src.Int63n(hi.Value-lo.Value+1)}
	})

	reg("float", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("float", args, 0, 0); sig != nil {
			return sig
		}
		return &objects.Float{Value: src.Float64()}
	})

	reg("range", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("range", args, 2, 2); sig != nil {
			return sig
		}
		lo, ok1 := numArg(args[0])
		hi, ok2 := numArg(args[1])
		if !ok1 || !ok2 {
			return objects.NewError("random.range() requires two numbers")
		}
		return &objects.Float{Value: lo + src.Float64()*(hi-lo)}
	})

	reg("bool", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("bool", args, 0, 0); sig != nil {
			return sig
		}
		return objects.BoolValue(src.Intn(2) == 1)
	})

	reg("choice", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("choice", args, 1, 1); sig != nil {
			return sig
		}
		list, ok := args[0].(*objects.List)
		if !ok {
			return objects.NewError("random.choice() requires a list")
		}
		if len(list.Elements) == 0 {
			return objects.NewError("random.choice() of an empty list")
		}
		return list.Elements[src.Intn(len(list.Elements))]
	})

	reg("shuffle", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("shuffle", args, 1, 1); sig != nil {
			return sig
		}
		list, ok := args[0].(*objects.List)
		if !ok {
			return objects.NewError("random.shuffle() requires a list")
		}
		src.Shuffle(len(list.Elements), func(i, j int) {
			list.Elements[i], list.Elements[j] = list.Elements[j], list.Elements[i]
		})
		return list
	})

	reg("seed", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("seed", args, 1, 1); sig != nil {
			return sig
		}
		n, ok := args[0].(*objects.Integer)
		if !ok {
			return objects.NewError("random.seed() requires an integer")
		}
		src.Seed(n.Value)
		return objects.NullValue
	})

	return m
}
