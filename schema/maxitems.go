package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "maxItems",
		validate: validateMaxItems,
		apply:    applyMaxItems,
	})
}

func validateMaxItems(s *Schema, v jsonval.Value) *MalformedError {
	n, ok := v.AsInt()
	if !ok || n < 0 {
		return newMalformed("maxItems", "5.11", "must be a non-negative integer")
	}
	return nil
}

func applyMaxItems(s *Schema, instance jsonval.Value) *EvaluationError {
	arr, ok := instance.AsArray()
	if !ok {
		return nil
	}
	if int64(len(arr)) > s.MaxItems {
		return newEvalError("maxItems", "maxItems", "array has more than {max} items",
			map[string]any{"max": s.MaxItems})
	}
	return nil
}
