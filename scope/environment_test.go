package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voltlang/volt/objects"
)

func TestGetWalksParentChain(t *testing.T) {
	parent := New()
	parent.Define("x", &objects.Integer{Value: 1})
	child := parent.NewChild()

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(*objects.Integer).Value)
}

func TestAssignUpdatesInnermostExistingBinding(t *testing.T) {
	parent := New()
	parent.Define("x", &objects.Integer{Value: 1})
	child := parent.NewChild()

	child.Assign("x", &objects.Integer{Value: 2})

	v, _ := parent.Get("x")
	assert.Equal(t, int64(2), v.(*objects.Integer).Value)
	_, existsLocally := child.vars["x"]
	assert.False(t, existsLocally)
}

func TestAssignIntroducesInCurrentFrameWhenUnbound(t *testing.T) {
	parent := New()
	child := parent.NewChild()

	child.Assign("y", &objects.Integer{Value: 5})

	_, foundInParent := parent.Get("y")
	_, foundInChild := child.vars["y"]
	assert.True(t, foundInChild)
	_ = foundInParent
}

func TestChildObservesLaterAssignmentToParentBinding(t *testing.T) {
	parent := New()
	parent.Define("x", &objects.Integer{Value: 1})
	child := parent.NewChild()

	parent.Assign("x", &objects.Integer{Value: 99})

	v, _ := child.Get("x")
	assert.Equal(t, int64(99), v.(*objects.Integer).Value)
}
