package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voltlang/volt/objects"
)

func TestRandomIntStaysWithinBounds(t *testing.T) {
	m := NewRandomModule(newCtx())
	for i := 0; i < 50; i++ {
		r := callMethod(t, m, "int", &objects.Integer{Value: 5}, &objects.Integer{Value: 5})
		assert.Equal(t, int64(5), r.(*objects.Integer).Value)
	}
}

func TestRandomFloatIsUnitInterval(t *testing.T) {
	m := NewRandomModule(newCtx())
	r := callMethod(t, m, "float")
	f := r.(*objects.Float).Value
	assert.GreaterOrEqual(t, f, 0.0)
	assert.Less(t, f, 1.0)
}

func TestRandomChoiceOnEmptyListErrors(t *testing.T) {
	m := NewRandomModule(newCtx())
	r := callMethod(t, m, "choice", &objects.List{})
	assert.True(t, objects.IsError(r))
}

func TestRandomShuffleIsInPlaceAndKeepsElements(t *testing.T) {
	m := NewRandomModule(newCtx())
	list := &objects.List{Elements: []objects.Value{
		&objects.Integer{Value: 1}, &objects.Integer{Value: 2}, &objects.Integer{Value: 3},
	}}
	r := callMethod(t, m, "shuffle", list)
	shuffled, ok := r.(*objects.List)
	require.True(t, ok)
	assert.Same(t, list, shuffled)
	assert.Len(t, shuffled.Elements, 3)
}

func TestRandomSeedIsDeterministic(t *testing.T) {
	m1 := NewRandomModule(newCtx())
	callMethod(t, m1, "seed", &objects.Integer{Value: 42})
	a := callMethod(t, m1, "int", &objects.Integer{Value: 0}, &objects.Integer{Value: 1000000})

	m2 := NewRandomModule(newCtx())
	callMethod(t, m2, "seed", &objects.Integer{Value: 42})
	b := callMethod(t, m2, "int", &objects.Integer{Value: 0}, &objects.Integer{Value: 1000000})

	assert.Equal(t, a.(*objects.Integer).Value, b.(*objects.Integer).Value)
}
