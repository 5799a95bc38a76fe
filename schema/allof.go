package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "allOf",
		validate: validateSchemaArray("allOf", "5.22"),
		apply:    applyAllOf,
		generate: generateAllOf,
	})
}

func applyAllOf(s *Schema, instance jsonval.Value) *EvaluationError {
	for _, sub := range s.AllOf {
		if err := sub.Validate(instance); err != nil {
			return err
		}
	}
	return nil
}

func generateAllOf(s *Schema, out *InstanceSet, gen *generation) {
	for _, sub := range s.AllOf {
		generateNode(sub, out, gen)
	}
}
