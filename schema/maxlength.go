package schema

import (
	"unicode/utf8"

	"github.com/kjs-tools/draftfuzz/jsonval"
)

func init() {
	registerKeywords(keyword{
		name:     "maxLength",
		validate: validateMaxLength,
		apply:    applyMaxLength,
		generate: generateMaxLength,
	})
}

func validateMaxLength(s *Schema, v jsonval.Value) *MalformedError {
	n, ok := v.AsInt()
	if !ok || n < 0 {
		return newMalformed("maxLength", "5.7", "must be a non-negative integer")
	}
	return nil
}

func applyMaxLength(s *Schema, instance jsonval.Value) *EvaluationError {
	str, ok := instance.AsString()
	if !ok {
		return nil
	}
	if int64(utf8.RuneCountInString(str)) > s.MaxLength {
		return newEvalError("maxLength", "maxLength", "string is longer than {max} characters",
			map[string]any{"max": s.MaxLength})
	}
	return nil
}

func generateMaxLength(s *Schema, out *InstanceSet, gen *generation) {
	n := int(s.MaxLength)
	for _, r := range boundaryRunes {
		out.Add(jsonval.Str(repeatRune(r, n)))
		out.Add(jsonval.Str(repeatRune(r, n+1)))
		if n > 0 {
			out.Add(jsonval.Str(repeatRune(r, n-1)))
		}
	}
}

// boundaryRunes pairs an ASCII rune with a multi-byte one so maxLength/
// minLength boundary strings exercise both the single-byte and the
// multi-byte-per-character UTF-8 counting paths (spec.md §8 Scenario 2).
var boundaryRunes = []rune{'a', '字'}

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
