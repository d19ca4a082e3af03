package std

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlang/volt/objects"
)

func TestFileWriteReadRoundTrip(t *testing.T) {
	m := NewFileModule(newCtx())
	path := filepath.Join(t.TempDir(), "out.txt")

	r := callMethod(t, m, "write", &objects.String{Value: path}, &objects.String{Value: "hello"})
	require.False(t, objects.IsError(r))

	r = callMethod(t, m, "exists", &objects.String{Value: path})
	assert.True(t, r.(*objects.Boolean).Value)

	r = callMethod(t, m, "read", &objects.String{Value: path})
	assert.Equal(t, "hello", r.(*objects.String).Value)
}

func TestFileAppendAndReadlines(t *testing.T) {
	m := NewFileModule(newCtx())
	path := filepath.Join(t.TempDir(), "out.txt")

	callMethod(t, m, "write", &objects.String{Value: path}, &objects.String{Value: "a\n"})
	callMethod(t, m, "append", &objects.String{Value: path}, &objects.String{Value: "b\n"})

	r := callMethod(t, m, "readlines", &objects.String{Value: path})
	list := r.(*objects.List)
	require.Len(t, list.Elements, 2)
	assert.Equal(t, "a", list.Elements[0].(*objects.String).Value)
	assert.Equal(t, "b", list.Elements[1].(*objects.String).Value)
}

func TestFileReadMissingReturnsError(t *testing.T) {
	m := NewFileModule(newCtx())
	r := callMethod(t, m, "read", &objects.String{Value: "/nonexistent/path/does/not/exist.txt"})
	assert.True(t, objects.IsError(r))
}

func TestFileJSONRoundTrip(t *testing.T) {
	m := NewFileModule(newCtx())
	path := filepath.Join(t.TempDir(), "data.json")

	d := objects.NewDict()
	d.Set("name", &objects.String{Value: "volt"})
	d.Set("count", &objects.Integer{Value: 3})

	r := callMethod(t, m, "writeJSON", &objects.String{Value: path}, d)
	require.False(t, objects.IsError(r))

	r = callMethod(t, m, "readJSON", &objects.String{Value: path})
	back, ok := r.(*objects.Dict)
	require.True(t, ok)
	assert.Equal(t, "volt", back.Pairs["name"].(*objects.String).Value)
	assert.Equal(t, int64(3), back.Pairs["count"].(*objects.Integer).Value)
}

func TestFileYAMLRoundTrip(t *testing.T) {
	m := NewFileModule(newCtx())
	path := filepath.Join(t.TempDir(), "data.yaml")

	list := &objects.List{Elements: []objects.Value{
		&objects.Integer{Value: 1}, &objects.Integer{Value: 2}, &objects.String{Value: "x"},
	}}

	r := callMethod(t, m, "writeYAML", &objects.String{Value: path}, list)
	require.False(t, objects.IsError(r))

	r = callMethod(t, m, "readYAML", &objects.String{Value: path})
	back, ok := r.(*objects.List)
	require.True(t, ok)
	require.Len(t, back.Elements, 3)
	assert.Equal(t, "x", back.Elements[2].(*objects.String).Value)
}

func TestFileMkdirIsdirIsfile(t *testing.T) {
	m := NewFileModule(newCtx())
	dir := filepath.Join(t.TempDir(), "nested", "deeper")

	r := callMethod(t, m, "mkdir", &objects.String{Value: dir})
	require.False(t, objects.IsError(r))

	r = callMethod(t, m, "isdir", &objects.String{Value: dir})
	assert.True(t, r.(*objects.Boolean).Value)

	file := filepath.Join(dir, "f.txt")
	callMethod(t, m, "write", &objects.String{Value: file}, &objects.String{Value: "x"})

	r = callMethod(t, m, "isfile", &objects.String{Value: file})
	assert.True(t, r.(*objects.Boolean).Value)

	r = callMethod(t, m, "isdir", &objects.String{Value: file})
	assert.False(t, r.(*objects.Boolean).Value)
}
