package std

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlang/volt/objects"
)

func newCtx() *Context {
	return &Context{Writer: &bytes.Buffer{}, Reader: bufio.NewReader(strings.NewReader(""))}
}

func callMethod(t *testing.T, m *objects.Module, name string, args ...objects.Value) objects.Value {
	t.Helper()
	v, ok := m.Get(name)
	require.True(t, ok, "missing method/property %q", name)
	fn, ok := v.(*objects.NativeFunc)
	require.True(t, ok, "%q is not callable", name)
	return fn.Fn(args)
}

func TestMathConstants(t *testing.T) {
	m := NewMathModule(newCtx())
	pi, ok := m.Get("pi")
	require.True(t, ok)
	assert.InDelta(t, 3.14159, pi.(*objects.Float).Value, 0.001)
}

func TestMathSqrtAndRound(t *testing.T) {
	m := NewMathModule(newCtx())
	r := callMethod(t, m, "sqrt", &objects.Integer{Value: 9})
	assert.Equal(t, 3.0, r.(*objects.Float).Value)

	r = callMethod(t, m, "round", &objects.Float{Value: 2.6})
	assert.Equal(t, int64(3), r.(*objects.Integer).Value)
}

func TestMathAbs(t *testing.T) {
	m := NewMathModule(newCtx())
	r := callMethod(t, m, "abs", &objects.Integer{Value: -4})
	i, ok := r.(*objects.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(4), i.Value)
}

func TestMathGcd(t *testing.T) {
	m := NewMathModule(newCtx())
	r := callMethod(t, m, "gcd", &objects.Integer{Value: 12}, &objects.Integer{Value: 18})
	assert.Equal(t, int64(6), r.(*objects.Integer).Value)
}

func TestMathPowAndHypot(t *testing.T) {
	m := NewMathModule(newCtx())
	r := callMethod(t, m, "pow", &objects.Integer{Value: 2}, &objects.Integer{Value: 10})
	assert.Equal(t, 1024.0, r.(*objects.Float).Value)

	r = callMethod(t, m, "hypot", &objects.Integer{Value: 3}, &objects.Integer{Value: 4})
	assert.Equal(t, 5.0, r.(*objects.Float).Value)
}
