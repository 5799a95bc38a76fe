package schema

import (
	"math"

	"github.com/kjs-tools/draftfuzz/jsonval"
)

func init() {
	registerKeywords(keyword{
		name:     "multipleOf",
		validate: validateMultipleOf,
		apply:    applyMultipleOf,
		generate: generateMultipleOf,
	})
}

func validateMultipleOf(s *Schema, v jsonval.Value) *MalformedError {
	f, ok := v.AsFloat64()
	if !ok || f <= 0 {
		return newMalformed("multipleOf", "5.1", "must be a number strictly greater than 0")
	}
	return nil
}

func applyMultipleOf(s *Schema, instance jsonval.Value) *EvaluationError {
	if !instance.IsNumber() {
		return nil
	}
	var multiple bool
	if i, ok := instance.AsInt(); ok && s.MultipleOf == math.Trunc(s.MultipleOf) {
		// Both operands are exact integers: use integer modulo instead of
		// float division, which loses precision once i exceeds 2^53.
		multiple = i%int64(s.MultipleOf) == 0
	} else {
		n, _ := instance.AsFloat64()
		q := n / s.MultipleOf
		multiple = q == math.Trunc(q)
	}
	if !multiple {
		return newEvalError("multipleOf", "multipleOf", "{value} is not a multiple of {divisor}",
			map[string]any{"value": jsonval.NumberString(instance), "divisor": s.MultipleOf})
	}
	return nil
}

func generateMultipleOf(s *Schema, out *InstanceSet, gen *generation) {
	m := s.MultipleOf
	out.Add(jsonval.Double(0))
	out.Add(jsonval.Double(m))
	out.Add(jsonval.Double(m * 2))
	out.Add(jsonval.Double(-m))
	if m == math.Trunc(m) {
		out.Add(jsonval.Int(int64(m)))
	}
	out.Add(jsonval.Double(m / 2))
	out.Add(jsonval.Double(m + 0.5))
}
