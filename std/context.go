/*
Package std implements the concrete bodies of the built-in modules (math,
random, time, file); the global built-in functions live in package eval.
These are the "external
collaborator" bodies spec.md places out of the language core but whose
hook contract the core must still expose (see SPEC_FULL.md §4).
*/
package std

import (
	"bufio"
	"io"

	"github.com/voltlang/volt/objects"
)

// Context carries the host I/O handles (Writer, Reader) handed to each
// native module factory and passed on to its methods.
type Context struct {
	Writer io.Writer
	Reader *bufio.Reader
}

// Func is the calling convention every native module method shares.
type Func func(ctx *Context, args []objects.Value) objects.Value

// checkArity returns a runtime error value unless len(args) is within
// [min, max]; max == -1 means unbounded.
func checkArity(name string, args []objects.Value, min, max int) objects.Value {
	n := len(args)
	if n < min || (max >= 0 && n > max) {
		if min == max {
			return objects.NewError("%s() takes exactly %d argument(s), got %d", name, min, n)
		}
		if max < 0 {
			return objects.NewError("%s() takes at least %d argument(s), got %d", name, min, n)
		}
		return objects.NewError("%s() takes %d-%d arguments, got %d", name, min, max, n)
	}
	return nil
}
