package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationErrorLocalize(t *testing.T) {
	bundle, err := NewI18nBundle()
	require.NoError(t, err)
	localizer := bundle.NewLocalizer("en")

	e := newEvalError("minLength", "minLength", "string is shorter than {min} characters",
		map[string]any{"min": int64(3)})
	assert.Contains(t, e.Localize(localizer), "3")
}

func TestEvaluationErrorLocalizeFallsBackWithoutLocalizer(t *testing.T) {
	e := newEvalError("required", "required", "missing required property {name}",
		map[string]any{"name": "a"})
	assert.Equal(t, "missing required property a", e.Localize(nil))
}
