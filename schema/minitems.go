package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:           "minItems",
		defaultLiteral: defZero,
		validate:       validateMinItems,
		apply:          applyMinItems,
	})
}

func validateMinItems(s *Schema, v jsonval.Value) *MalformedError {
	n, ok := v.AsInt()
	if !ok || n < 0 {
		return newMalformed("minItems", "5.12", "must be a non-negative integer")
	}
	return nil
}

func applyMinItems(s *Schema, instance jsonval.Value) *EvaluationError {
	arr, ok := instance.AsArray()
	if !ok {
		return nil
	}
	if int64(len(arr)) < s.MinItems {
		return newEvalError("minItems", "minItems", "array has fewer than {min} items",
			map[string]any{"min": s.MinItems})
	}
	return nil
}
