package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "anyOf",
		validate: validateSchemaArray("anyOf", "5.23"),
		apply:    applyAnyOf,
		generate: generateAnyOf,
	})
}

func applyAnyOf(s *Schema, instance jsonval.Value) *EvaluationError {
	var first *EvaluationError
	for _, sub := range s.AnyOf {
		if err := sub.Validate(instance); err == nil {
			return nil
		} else if first == nil {
			first = err
		}
	}
	if first == nil {
		return nil
	}
	return newEvalError("anyOf", "anyOf", "does not match any of the allowed schemas")
}

func generateAnyOf(s *Schema, out *InstanceSet, gen *generation) {
	for _, sub := range s.AnyOf {
		generateNode(sub, out, gen)
	}
}
