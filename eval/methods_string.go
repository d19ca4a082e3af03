package eval

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/voltlang/volt/objects"
)

func (e *Evaluator) callStringMethod(s *objects.String, method string, args []objects.Value) objects.Value {
	str := s.Value
	switch method {
	case "upper":
		return &objects.String{Value: strings.ToUpper(str)}
	case "lower":
		return &objects.String{Value: strings.ToLower(str)}
	case "trim":
		return &objects.String{Value: strings.TrimSpace(str)}
	case "trimStart":
		return &objects.String{Value: strings.TrimLeft(str, " \t\n\r")}
	case "trimEnd":
		return &objects.String{Value: strings.TrimRight(str, " \t\n\r")}
	case "replace":
		if len(args) < 2 {
			return objects.NewError("replace() needs 2 arguments")
		}
		return &objects.String{Value: strings.ReplaceAll(str, e.Stringify(args[0]), e.Stringify(args[1]))}
	case "split":
		if len(args) == 0 {
			return stringsToList(strings.Fields(str))
		}
		return stringsToList(strings.Split(str, e.Stringify(args[0])))
	case "startsWith":
		if len(args) == 0 {
			return objects.NewError("startsWith() needs 1 argument")
		}
		return objects.BoolValue(strings.HasPrefix(str, e.Stringify(args[0])))
	case "endsWith":
		if len(args) == 0 {
			return objects.NewError("endsWith() needs 1 argument")
		}
		return objects.BoolValue(strings.HasSuffix(str, e.Stringify(args[0])))
	case "indexOf":
		if len(args) == 0 {
			return objects.NewError("indexOf() needs 1 argument")
		}
		return &objects.Integer{Value: int64(strings.Index(str, e.Stringify(args[0])))}
	case "lastIndexOf":
		if len(args) == 0 {
			return objects.NewError("lastIndexOf() needs 1 argument")
		}
		return &objects.Integer{Value: int64(strings.LastIndex(str, e.Stringify(args[0])))}
	case "slice":
		runes := []rune(str)
		n := len(runes)
		switch len(args) {
		case 0:
			return &objects.String{Value: str}
		case 1:
			start := clampIndex(intArg(args[0]), n)
			return &objects.String{Value: string(runes[start:])}
		default:
			start := clampIndex(intArg(args[0]), n)
			end := clampIndex(intArg(args[1]), n)
			if end < start {
				end = start
			}
			return &objects.String{Value: string(runes[start:end])}
		}
	case "charAt":
		if len(args) == 0 {
			return objects.NewError("charAt() needs 1 argument")
		}
		runes := []rune(str)
		idx := intArg(args[0])
		if idx < 0 || idx >= len(runes) {
			return objects.NewError("Index %d out of range (length %d)", idx, len(runes))
		}
		return &objects.String{Value: string(runes[idx])}
	case "repeat":
		if len(args) == 0 {
			return objects.NewError("repeat() needs 1 argument")
		}
		return &objects.String{Value: strings.Repeat(str, intArg(args[0]))}
	case "reverse":
		runes := []rune(str)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return &objects.String{Value: string(runes)}
	case "contains", "includes":
		if len(args) == 0 {
			return objects.NewError("%s() needs 1 argument", method)
		}
		return objects.BoolValue(strings.Contains(str, e.Stringify(args[0])))
	case "length":
		return &objects.Integer{Value: int64(len([]rune(str)))}
	case "isEmpty":
		return objects.BoolValue(str == "")
	case "count":
		if len(args) == 0 {
			return objects.NewError("count() needs 1 argument")
		}
		return &objects.Integer{Value: int64(strings.Count(str, e.Stringify(args[0])))}
	case "toInt":
		v, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
		if err != nil {
			return objects.NewError("Cannot convert %q to int", str)
		}
		return &objects.Integer{Value: v}
	case "toFloat":
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return objects.NewError("Cannot convert %q to float", str)
		}
		return &objects.Float{Value: v}
	case "toNumber":
		trimmed := strings.TrimSpace(str)
		if objects.NumericStringHasDot(trimmed) {
			v, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return objects.NewError("Cannot convert %q to a number", str)
			}
			return &objects.Float{Value: v}
		}
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return objects.NewError("Cannot convert %q to a number", str)
		}
		return &objects.Integer{Value: v}
	case "toList":
		runes := []rune(str)
		out := make([]objects.Value, len(runes))
		for i, r := range runes {
			out[i] = &objects.String{Value: string(r)}
		}
		return &objects.List{Elements: out}
	case "isDigit":
		return objects.BoolValue(str != "" && everyRune(str, unicode.IsDigit))
	case "isAlpha":
		return objects.BoolValue(str != "" && everyRune(str, unicode.IsLetter))
	case "isSpace":
		return objects.BoolValue(str != "" && everyRune(str, unicode.IsSpace))
	case "padStart":
		if len(args) == 0 {
			return objects.NewError("padStart() needs 1 argument")
		}
		pad := " "
		if len(args) > 1 {
			pad = e.Stringify(args[1])
		}
		return &objects.String{Value: padTo(str, intArg(args[0]), pad, true)}
	case "padEnd":
		if len(args) == 0 {
			return objects.NewError("padEnd() needs 1 argument")
		}
		pad := " "
		if len(args) > 1 {
			pad = e.Stringify(args[1])
		}
		return &objects.String{Value: padTo(str, intArg(args[0]), pad, false)}
	case "format":
		return &objects.String{Value: formatString(str, args, e)}
	case "join":
		if len(args) == 0 {
			return objects.NewError("join() needs a list argument")
		}
		list, ok := args[0].(*objects.List)
		if !ok {
			return objects.NewError("join() needs a list argument")
		}
		parts := make([]string, len(list.Elements))
		for i, el := range list.Elements {
			parts[i] = e.Stringify(el)
		}
		return &objects.String{Value: strings.Join(parts, str)}
	}
	return objects.NewError("String has no method '%s'", method)
}

func everyRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func padTo(s string, width int, pad string, start bool) string {
	if pad == "" {
		return s
	}
	need := width - len([]rune(s))
	if need <= 0 {
		return s
	}
	var b strings.Builder
	for b.Len() < need {
		b.WriteString(pad)
	}
	padding := string([]rune(b.String())[:need])
	if start {
		return padding + s
	}
	return s + padding
}

// formatString implements str.format()-style positional and indexed
// substitution: "{}" consumes the next argument in order, "{N}" indexes
// directly.
func formatString(s string, args []objects.Value, e *Evaluator) string {
	var b strings.Builder
	argIdx := 0
	i := 0
	for i < len(s) {
		if s[i] == '{' {
			j := strings.IndexByte(s[i:], '}')
			if j == -1 {
				b.WriteByte(s[i])
				i++
				continue
			}
			inner := s[i+1 : i+j]
			i += j + 1
			idx := argIdx
			if inner != "" {
				if n, err := strconv.Atoi(inner); err == nil {
					idx = n
				}
			} else {
				argIdx++
			}
			if idx >= 0 && idx < len(args) {
				b.WriteString(e.Stringify(args[idx]))
			}
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
