package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "enum",
		validate: validateEnum,
		apply:    applyEnum,
		generate: generateEnum,
	})
}

func validateEnum(s *Schema, v jsonval.Value) *MalformedError {
	arr, ok := v.AsArray()
	if !ok || len(arr) == 0 {
		return newMalformed("enum", "5.20", "must be a non-empty array")
	}
	for i := 1; i < len(arr); i++ {
		for j := 0; j < i; j++ {
			if jsonval.Equal(arr[i], arr[j]) {
				return newMalformed("enum", "5.20", "elements must be unique")
			}
		}
	}
	return nil
}

func applyEnum(s *Schema, instance jsonval.Value) *EvaluationError {
	if jsonval.Contains(s.Enum, instance) {
		return nil
	}
	return newEvalError("enum", "enum", "value is not one of the enumerated values")
}

func generateEnum(s *Schema, out *InstanceSet, gen *generation) {
	out.AddAll(s.Enum)
}
