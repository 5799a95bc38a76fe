package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "minimum",
		validate: validateMinimum,
		apply:    applyMinimum,
		generate: generateMinimum,
	})
}

func validateMinimum(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsNumber() {
		return newMalformed("minimum", "5.3", "must be a number")
	}
	return nil
}

func applyMinimum(s *Schema, instance jsonval.Value) *EvaluationError {
	if !instance.IsNumber() {
		return nil
	}
	n, _ := instance.AsFloat64()
	if s.ExclusiveMinimum {
		if n <= s.Minimum {
			return newEvalError("minimum", "minimum", "{value} must be greater than {min}",
				map[string]any{"value": jsonval.NumberString(instance), "min": s.Minimum})
		}
		return nil
	}
	if n < s.Minimum {
		return newEvalError("minimum", "minimum", "{value} must be greater than or equal to {min}",
			map[string]any{"value": jsonval.NumberString(instance), "min": s.Minimum})
	}
	return nil
}

func generateMinimum(s *Schema, out *InstanceSet, gen *generation) {
	min := s.Minimum
	if s.MinimumIsInt {
		i := int64(min)
		out.Add(jsonval.Int(i))
		out.Add(jsonval.Int(i + 1))
		out.Add(jsonval.Int(i - 1))
	} else {
		out.Add(jsonval.Double(min))
		out.Add(jsonval.Double(min + 1))
		out.Add(jsonval.Double(min - 1))
	}
	out.Add(jsonval.Double(min - 0.5))
}
