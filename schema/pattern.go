package schema

import (
	"regexp"

	"github.com/kjs-tools/draftfuzz/jsonval"
)

func init() {
	registerKeywords(keyword{
		name:     "pattern",
		validate: validatePattern,
		apply:    applyPattern,
		generate: generatePattern,
	})
}

func validatePattern(s *Schema, v jsonval.Value) *MalformedError {
	str, ok := v.AsString()
	if !ok {
		return newMalformed("pattern", "5.9", "must be a string")
	}
	if _, err := regexp.Compile(str); err != nil {
		return newMalformed("pattern", "5.9", "must be a valid regular expression: "+err.Error())
	}
	return nil
}

func applyPattern(s *Schema, instance jsonval.Value) *EvaluationError {
	str, ok := instance.AsString()
	if !ok || s.compiledPattern == nil {
		return nil
	}
	if !s.compiledPattern.MatchString(str) {
		return newEvalError("pattern", "pattern", "string does not match pattern {pattern}",
			map[string]any{"pattern": s.Pattern})
	}
	return nil
}

// generatePattern does not attempt to synthesise strings that actually
// satisfy an arbitrary regular expression — that would need a regex-to-
// string engine this package doesn't have. Instead it falls back to a
// small constant set of candidate strings (spec.md §9 open question 1),
// relying on the dedup/applier pass downstream to sort out which of
// them happen to match.
func generatePattern(s *Schema, out *InstanceSet, gen *generation) {
	for _, cand := range []string{"", "a", "0", "aaaa", "aaaa0000"} {
		out.Add(jsonval.Str(cand))
	}
}
