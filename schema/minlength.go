package schema

import (
	"unicode/utf8"

	"github.com/kjs-tools/draftfuzz/jsonval"
)

func init() {
	registerKeywords(keyword{
		name:     "minLength",
		defaultLiteral: defZero,
		validate:       validateMinLength,
		apply:          applyMinLength,
		generate:       generateMinLength,
	})
}

func validateMinLength(s *Schema, v jsonval.Value) *MalformedError {
	n, ok := v.AsInt()
	if !ok || n < 0 {
		return newMalformed("minLength", "5.8", "must be a non-negative integer")
	}
	return nil
}

func applyMinLength(s *Schema, instance jsonval.Value) *EvaluationError {
	str, ok := instance.AsString()
	if !ok {
		return nil
	}
	if int64(utf8.RuneCountInString(str)) < s.MinLength {
		return newEvalError("minLength", "minLength", "string is shorter than {min} characters",
			map[string]any{"min": s.MinLength})
	}
	return nil
}

func generateMinLength(s *Schema, out *InstanceSet, gen *generation) {
	n := int(s.MinLength)
	for _, r := range boundaryRunes {
		out.Add(jsonval.Str(repeatRune(r, n)))
		if n > 0 {
			out.Add(jsonval.Str(repeatRune(r, n-1)))
		}
		out.Add(jsonval.Str(repeatRune(r, n+1)))
	}
}
