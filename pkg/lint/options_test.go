package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsMap(t *testing.T) {
	obj := map[string]any{"a": 1}

	assert.Equal(t, obj, OptionsMap(obj))
	assert.Equal(t, obj, OptionsMap([]any{"always", obj}))
	assert.Nil(t, OptionsMap("always"))
	assert.Nil(t, OptionsMap(nil))
}

func TestOptionGetters(t *testing.T) {
	opts := map[string]any{
		"width": float64(100),
		"tabs":  4,
		"quote": "single",
		"semi":  false,
	}

	assert.Equal(t, 100, GetIntOption(opts, "width", 80))
	assert.Equal(t, 4, GetIntOption(opts, "tabs", 2))
	assert.Equal(t, 2, GetIntOption(opts, "missing", 2))
	assert.Equal(t, "single", GetStringOption(opts, "quote", "double"))
	assert.Equal(t, "double", GetStringOption(opts, "width", "double"))
	assert.False(t, GetBoolOption(opts, "semi", true))
	assert.True(t, GetBoolOption(opts, "missing", true))
}
