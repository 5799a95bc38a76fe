package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:           "minProperties",
		defaultLiteral: defZero,
		validate:       validateMinProperties,
		apply:          applyMinProperties,
	})
}

func validateMinProperties(s *Schema, v jsonval.Value) *MalformedError {
	n, ok := v.AsInt()
	if !ok || n < 0 {
		return newMalformed("minProperties", "5.15", "must be a non-negative integer")
	}
	return nil
}

func applyMinProperties(s *Schema, instance jsonval.Value) *EvaluationError {
	obj, ok := instance.AsObject()
	if !ok {
		return nil
	}
	if int64(obj.Len()) < s.MinProperties {
		return newEvalError("minProperties", "minProperties", "object has fewer than {min} properties",
			map[string]any{"min": s.MinProperties})
	}
	return nil
}
