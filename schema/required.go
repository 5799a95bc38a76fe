package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "required",
		validate: validateRequired,
		apply:    applyRequired,
	})
}

func validateRequired(s *Schema, v jsonval.Value) *MalformedError {
	arr, ok := v.AsArray()
	if !ok || len(arr) == 0 {
		return newMalformed("required", "5.16", "must be a non-empty array of strings")
	}
	seen := map[string]bool{}
	for _, e := range arr {
		str, ok := e.AsString()
		if !ok {
			return newMalformed("required", "5.16", "must be a non-empty array of strings")
		}
		if seen[str] {
			return newMalformed("required", "5.16", "elements must be unique")
		}
		seen[str] = true
	}
	return nil
}

func applyRequired(s *Schema, instance jsonval.Value) *EvaluationError {
	obj, ok := instance.AsObject()
	if !ok {
		return nil
	}
	for _, name := range s.Required {
		if _, ok := obj.Get(name); !ok {
			return newEvalError("required", "required", "missing required property {name}",
				map[string]any{"name": name})
		}
	}
	return nil
}
