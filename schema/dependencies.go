package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:           "dependencies",
		defaultLiteral: defEmptyObject,
		validate:       validateDependencies,
		apply:          applyDependencies,
	})
}

func validateDependencies(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsObject() {
		return newMalformed("dependencies", "5.19", "must be an object")
	}
	for _, k := range v.Keys() {
		dv, _ := v.Get(k)
		switch {
		case dv.IsObject():
			// schema dependency: structural validity of the sub-schema
			// itself is checked by validateNode's recursion into children.
		case dv.IsArray():
			arr, _ := dv.AsArray()
			if len(arr) == 0 {
				return newMalformed("dependencies", "5.19", "property dependency for "+k+" must be a non-empty array of strings")
			}
			seen := map[string]bool{}
			for _, e := range arr {
				str, ok := e.AsString()
				if !ok {
					return newMalformed("dependencies", "5.19", "property dependency for "+k+" must contain only strings")
				}
				if seen[str] {
					return newMalformed("dependencies", "5.19", "property dependency for "+k+" must not repeat "+str)
				}
				seen[str] = true
			}
		default:
			return newMalformed("dependencies", "5.19", "value for "+k+" must be a schema or an array of strings")
		}
	}
	return nil
}

func applyDependencies(s *Schema, instance jsonval.Value) *EvaluationError {
	obj, ok := instance.AsObject()
	if !ok {
		return nil
	}
	for _, key := range s.dependencyOrder {
		if _, present := obj.Get(key); !present {
			continue
		}
		dep := s.Dependencies[key]
		if dep.isSchema() {
			if err := dep.Schema.Validate(instance); err != nil {
				return err
			}
			continue
		}
		for _, req := range dep.Props {
			if _, ok := obj.Get(req); !ok {
				return newEvalError("dependencies", "dependencies", "property {trigger} requires property {required}",
					map[string]any{"trigger": key, "required": req})
			}
		}
	}
	return nil
}
