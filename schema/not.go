package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "not",
		validate: validateNot,
		apply:    applyNot,
		generate: generateNot,
	})
}

func validateNot(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsObject() {
		return newMalformed("not", "5.25", "must be a schema object")
	}
	return nil
}

func applyNot(s *Schema, instance jsonval.Value) *EvaluationError {
	if err := s.Not.Validate(instance); err == nil {
		return newEvalError("not", "not", "must not match the forbidden schema")
	}
	return nil
}

func generateNot(s *Schema, out *InstanceSet, gen *generation) {
	generateNode(s.Not, out, gen)
}
