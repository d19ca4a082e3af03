package eval

import (
	"math"

	"github.com/voltlang/volt/objects"
)

// callNumberMethod implements the integer/floating method table, which is
// identical regardless of which of the two the receiver is.
func (e *Evaluator) callNumberMethod(v objects.Value, method string, args []objects.Value) objects.Value {
	f, _ := objects.AsFloat(v)
	_, isInt := v.(*objects.Integer)

	switch method {
	case "toStr", "toString":
		return &objects.String{Value: e.Stringify(v)}
	case "toInt":
		return &objects.Integer{Value: int64(f)}
	case "toFloat":
		return &objects.Float{Value: f}
	case "abs":
		if isInt {
			n := v.(*objects.Integer).Value
			if n < 0 {
				n = -n
			}
			return &objects.Integer{Value: n}
		}
		return &objects.Float{Value: math.Abs(f)}
	case "isEven":
		return objects.BoolValue(int64(f)%2 == 0)
	case "isOdd":
		return objects.BoolValue(int64(f)%2 != 0)
	case "isPositive":
		return objects.BoolValue(f > 0)
	case "isNegative":
		return objects.BoolValue(f < 0)
	case "isZero":
		return objects.BoolValue(f == 0)
	case "clamp":
		if len(args) < 2 {
			return objects.NewError("clamp() needs 2 arguments")
		}
		lo, _ := objects.AsFloat(args[0])
		hi, _ := objects.AsFloat(args[1])
		clamped := f
		if clamped < lo {
			clamped = lo
		}
		if clamped > hi {
			clamped = hi
		}
		if isInt {
			return &objects.Integer{Value: int64(clamped)}
		}
		return &objects.Float{Value: clamped}
	}
	return objects.NewError("Number has no method '%s'", method)
}
