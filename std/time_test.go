package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voltlang/volt/objects"
)

func TestTimeNowLooksLikeRFC3339(t *testing.T) {
	m := NewTimeModule(newCtx())
	r := callMethod(t, m, "now")
	s := r.(*objects.String).Value
	assert.Contains(t, s, "T")
}

func TestTimeClockAndDateFormats(t *testing.T) {
	m := NewTimeModule(newCtx())
	clock := callMethod(t, m, "clock").(*objects.String).Value
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, clock)

	date := callMethod(t, m, "date").(*objects.String).Value
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, date)
}

func TestTimeFormatTranslatesStrftimeDirectives(t *testing.T) {
	m := NewTimeModule(newCtx())
	r := callMethod(t, m, "format", &objects.String{Value: "%Y-%m-%d"})
	s := r.(*objects.String).Value
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, s)
}

func TestTimeElapsedIsNonNegativeAndGrows(t *testing.T) {
	m := NewTimeModule(newCtx())
	first := callMethod(t, m, "elapsed").(*objects.Float).Value
	second := callMethod(t, m, "elapsed").(*objects.Float).Value
	assert.GreaterOrEqual(t, second, first)
	assert.GreaterOrEqual(t, first, 0.0)
}

func TestTimeSleepRequiresNumber(t *testing.T) {
	m := NewTimeModule(newCtx())
	r := callMethod(t, m, "sleep", &objects.String{Value: "nope"})
	assert.True(t, objects.IsError(r))
}
