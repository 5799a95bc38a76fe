package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:     "type",
		validate: validateType,
		apply:    applyType,
		generate: generateType,
	})
}

func validateType(s *Schema, v jsonval.Value) *MalformedError {
	check := func(e jsonval.Value) bool {
		str, ok := e.AsString()
		return ok && jsonval.IsPrimitiveType(str)
	}
	switch {
	case v.IsString():
		if !check(v) {
			return newMalformed("type", "5.21", "must be a recognised primitive type name")
		}
	case v.IsArray():
		arr, _ := v.AsArray()
		seen := map[string]bool{}
		for _, e := range arr {
			if !check(e) {
				return newMalformed("type", "5.21", "elements must be recognised primitive type names")
			}
			str, _ := e.AsString()
			if seen[str] {
				return newMalformed("type", "5.21", "elements must be unique")
			}
			seen[str] = true
		}
		// An empty array is syntactically valid but matches nothing.
	default:
		return newMalformed("type", "5.21", "must be a string or an array of strings")
	}
	return nil
}

func applyType(s *Schema, instance jsonval.Value) *EvaluationError {
	for _, t := range s.Type {
		if jsonval.MatchesType(instance, t) {
			return nil
		}
	}
	return newEvalError("type", "type", "value does not match any of the allowed types {types}",
		map[string]any{"types": s.Type})
}

func generateType(s *Schema, out *InstanceSet, gen *generation) {
	for _, t := range s.Type {
		out.AddAll(sampleInstancesOfType(t))
	}
}

func sampleInstancesOfType(t string) []jsonval.Value {
	switch t {
	case "null":
		return []jsonval.Value{jsonval.Null()}
	case "boolean":
		return []jsonval.Value{jsonval.Bool(true), jsonval.Bool(false)}
	case "integer":
		return []jsonval.Value{jsonval.Int(0), jsonval.Int(1), jsonval.Int(-1)}
	case "number":
		return []jsonval.Value{jsonval.Double(0), jsonval.Double(1.5), jsonval.Double(-1.5)}
	case "string":
		return []jsonval.Value{jsonval.Str(""), jsonval.Str("a")}
	case "array":
		return []jsonval.Value{jsonval.Arr(), jsonval.Arr(jsonval.Null())}
	case "object":
		return []jsonval.Value{jsonval.NewObject()}
	default:
		return nil
	}
}
