package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:           "properties",
		defaultLiteral: defEmptyObject,
		validate:       validateProperties,
		apply:          applyProperties,
		generate:       generateProperties,
	})
}

func validateProperties(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsObject() {
		return newMalformed("properties", "5.4", "must be an object")
	}
	for _, k := range v.Keys() {
		if sub, _ := v.Get(k); !sub.IsObject() {
			return newMalformed("properties", "5.4", "value for "+k+" must be a schema object")
		}
	}
	return nil
}

// applyProperties is the joint properties/patternProperties/
// additionalProperties check spec.md §4.4.a describes: every member of
// an object instance is matched against properties by exact name and
// against patternProperties by regular expression, possibly against
// several sub-schemas at once; a member matched by neither falls to
// additionalProperties.
func applyProperties(s *Schema, instance jsonval.Value) *EvaluationError {
	obj, ok := instance.AsObject()
	if !ok {
		return nil
	}
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		name, value := pair.Key, pair.Value
		matched := false
		if sub, ok := s.Properties[name]; ok {
			matched = true
			if err := sub.Validate(value); err != nil {
				return annotateProperty(err, name)
			}
		}
		for _, pat := range s.patternPropertiesOrder {
			re := s.compiledPatternProps[pat]
			if re == nil || !re.MatchString(name) {
				continue
			}
			matched = true
			if err := s.PatternProperties[pat].Validate(value); err != nil {
				return annotateProperty(err, name)
			}
		}
		if matched {
			continue
		}
		switch {
		case s.AdditionalProperties.isFalse():
			return newEvalError("additionalProperties", "additionalProperties", "additional property {name} is not allowed",
				map[string]any{"name": name})
		case s.AdditionalProperties.isSchema():
			if err := s.AdditionalProperties.Schema.Validate(value); err != nil {
				return annotateProperty(err, name)
			}
		}
	}
	return nil
}

func annotateProperty(err *EvaluationError, name string) *EvaluationError {
	if err.Params == nil {
		err.Params = map[string]any{}
	}
	err.Params["at"] = name
	return err
}

func generateProperties(s *Schema, out *InstanceSet, gen *generation) {
	if !gen.objectOnce(s) {
		return
	}
	generateAllProperties(s, out, gen)
}
