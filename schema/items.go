package schema

import (
	"strconv"

	"github.com/kjs-tools/draftfuzz/jsonval"
)

func init() {
	registerKeywords(keyword{
		name:           "items",
		defaultLiteral: defEmptyObject,
		validate:       validateItems,
		apply:          applyItems,
		generate:       generateItems,
	})
}

func validateItems(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsObject() && !v.IsArray() {
		return newMalformed("items", "5.5", "must be a schema or an array of schemas")
	}
	if arr, ok := v.AsArray(); ok {
		for _, e := range arr {
			if !e.IsObject() {
				return newMalformed("items", "5.5", "elements must be schema objects")
			}
		}
	}
	return nil
}

// applyItems implements the joint items/additionalItems check spec.md
// §4.4.b describes: which sub-schema governs element i depends on
// whether items is a single schema or a positional tuple, and on
// whether i falls past the end of that tuple.
func applyItems(s *Schema, instance jsonval.Value) *EvaluationError {
	arr, ok := instance.AsArray()
	if !ok {
		return nil
	}
	if !s.Items.isTuple() {
		for i, item := range arr {
			if err := s.Items.Single.Validate(item); err != nil {
				return annotateIndex(err, i)
			}
		}
		return nil
	}
	tuple := s.Items.Tuple
	for i, item := range arr {
		if i < len(tuple) {
			if err := tuple[i].Validate(item); err != nil {
				return annotateIndex(err, i)
			}
			continue
		}
		switch {
		case s.AdditionalItems.isFalse():
			return newEvalError("additionalItems", "additionalItems", "array has additional item at index {index} not allowed by items",
				map[string]any{"index": i})
		case s.AdditionalItems.isSchema():
			if err := s.AdditionalItems.Schema.Validate(item); err != nil {
				return annotateIndex(err, i)
			}
		}
	}
	return nil
}

func annotateIndex(err *EvaluationError, i int) *EvaluationError {
	if err.Params == nil {
		err.Params = map[string]any{}
	}
	err.Params["at"] = strconv.Itoa(i)
	return err
}

func generateItems(s *Schema, out *InstanceSet, gen *generation) {
	if !gen.arrayOnce(s) {
		return
	}
	generateAllItems(s, out, gen)
}
