package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:           "uniqueItems",
		defaultLiteral: defFalse,
		validate:       validateUniqueItems,
		apply:          applyUniqueItems,
	})
}

func validateUniqueItems(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsBool() {
		return newMalformed("uniqueItems", "5.13", "must be a boolean")
	}
	return nil
}

func applyUniqueItems(s *Schema, instance jsonval.Value) *EvaluationError {
	if !s.UniqueItems {
		return nil
	}
	arr, ok := instance.AsArray()
	if !ok {
		return nil
	}
	for i := 1; i < len(arr); i++ {
		for j := 0; j < i; j++ {
			if jsonval.Equal(arr[i], arr[j]) {
				return newEvalError("uniqueItems", "uniqueItems", "array items must be unique, but items {i} and {j} are equal",
					map[string]any{"i": j, "j": i})
			}
		}
	}
	return nil
}
