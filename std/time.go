package std

import (
	"strings"
	"time"

	"github.com/voltlang/volt/objects"
)

// pyToGoLayout translates a handful of strftime-style directives into Go's
// reference-time layout, covering the directives `time.format` actually
// needs rather than the full strftime table.
func pyToGoLayout(format string) string {
	replacer := strings.NewReplacer(
		"%Y", "2006",
		"%m", "01",
		"%d", "02",
		"%H", "15",
		"%M", "04",
		"%S", "05",
		"%y", "06",
		"%p", "PM",
		"%A", "Monday",
		"%a", "Mon",
		"%B", "January",
		"%b", "Jan",
	)
	return replacer.Replace(format)
}

// NewTimeModule builds the `time` built-in over Go's time package, backed
// by wall-clock time (`now`); `elapsed` measures from the instant this
// module value was built.
func NewTimeModule(ctx *Context) *objects.Module {
	m := objects.NewModule("time")
	start := time.Now()

	reg := func(name string, fn Func) {
		m.Methods[name] = &objects.NativeFunc{Name: name, Fn: func(args []objects.Value) objects.Value {
			return fn(ctx, args)
		}}
	}

	reg("now", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.String{Value: time.Now().Format(time.RFC3339)}
	})

	reg("timestamp", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.Float{Value: float64(time.Now().UnixNano()) / 1e9}
	})

	reg("sleep", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("sleep", args, 1, 1); sig != nil {
			return sig
		}
		secs, ok := numArg(args[0])
		if !ok {
			return objects.NewError("time.sleep() requires a number of seconds")
		}
		time.Sleep(time.Duration(secs * float64(time.Second)))
		return objects.NullValue
	})

	reg("elapsed", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.Float{Value: time.Since(start).Seconds()}
	})

	reg("clock", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.String{Value: time.Now().Format("15:04:05")}
	})

	reg("date", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.String{Value: time.Now().Format("2006-01-02")}
	})

	reg("year", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.Integer{Value: int64(time.Now().Year())}
	})
	reg("month", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.Integer{Value: int64(time.Now().Month())}
	})
	reg("day", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.Integer{Value: int64(time.Now().Day())}
	})
	reg("hour", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.Integer{Value: int64(time.Now().Hour())}
	})
	reg("minute", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.Integer{Value: int64(time.Now().Minute())}
	})
	reg("second", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.Integer{Value: int64(time.Now().Second())}
	})

	reg("format", func(ctx *Context, args []objects.Value) objects.Value {
		if sig := checkArity("format", args, 1, 1); sig != nil {
			return sig
		}
		s, ok := args[0].(*objects.String)
		if !ok {
			return objects.NewError("time.format() requires a format string")
		}
		return &objects.String{Value: time.Now().Format(pyToGoLayout(s.Value))}
	})

	reg("datetime", func(ctx *Context, args []objects.Value) objects.Value {
		return &objects.String{Value: time.Now().Format("2006-01-02 15:04:05")}
	})

	return m
}
