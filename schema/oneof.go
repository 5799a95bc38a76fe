package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "oneOf",
		validate: validateSchemaArray("oneOf", "5.24"),
		apply:    applyOneOf,
		generate: generateOneOf,
	})
}

func applyOneOf(s *Schema, instance jsonval.Value) *EvaluationError {
	matches := 0
	for _, sub := range s.OneOf {
		if err := sub.Validate(instance); err == nil {
			matches++
		}
	}
	if matches != 1 {
		return newEvalError("oneOf", "oneOf", "must match exactly one of the allowed schemas, matched {count}",
			map[string]any{"count": matches})
	}
	return nil
}

func generateOneOf(s *Schema, out *InstanceSet, gen *generation) {
	for _, sub := range s.OneOf {
		generateNode(sub, out, gen)
	}
}
