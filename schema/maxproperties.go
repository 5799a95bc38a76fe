package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "maxProperties",
		validate: validateMaxProperties,
		apply:    applyMaxProperties,
	})
}

func validateMaxProperties(s *Schema, v jsonval.Value) *MalformedError {
	n, ok := v.AsInt()
	if !ok || n < 0 {
		return newMalformed("maxProperties", "5.14", "must be a non-negative integer")
	}
	return nil
}

func applyMaxProperties(s *Schema, instance jsonval.Value) *EvaluationError {
	obj, ok := instance.AsObject()
	if !ok {
		return nil
	}
	if int64(obj.Len()) > s.MaxProperties {
		return newEvalError("maxProperties", "maxProperties", "object has more than {max} properties",
			map[string]any{"max": s.MaxProperties})
	}
	return nil
}
