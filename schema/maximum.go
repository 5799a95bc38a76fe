package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "maximum",
		validate: validateMaximum,
		apply:    applyMaximum,
		generate: generateMaximum,
	})
}

func validateMaximum(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsNumber() {
		return newMalformed("maximum", "5.2", "must be a number")
	}
	return nil
}

func applyMaximum(s *Schema, instance jsonval.Value) *EvaluationError {
	if !instance.IsNumber() {
		return nil
	}
	n, _ := instance.AsFloat64()
	if s.ExclusiveMaximum {
		if n >= s.Maximum {
			return newEvalError("maximum", "maximum", "{value} must be less than {max}",
				map[string]any{"value": jsonval.NumberString(instance), "max": s.Maximum})
		}
		return nil
	}
	if n > s.Maximum {
		return newEvalError("maximum", "maximum", "{value} must be less than or equal to {max}",
			map[string]any{"value": jsonval.NumberString(instance), "max": s.Maximum})
	}
	return nil
}

func generateMaximum(s *Schema, out *InstanceSet, gen *generation) {
	max := s.Maximum
	if s.MaximumIsInt {
		i := int64(max)
		out.Add(jsonval.Int(i))
		out.Add(jsonval.Int(i - 1))
		out.Add(jsonval.Int(i + 1))
	} else {
		out.Add(jsonval.Double(max))
		out.Add(jsonval.Double(max - 1))
		out.Add(jsonval.Double(max + 1))
	}
	out.Add(jsonval.Double(max + 0.5))
}
