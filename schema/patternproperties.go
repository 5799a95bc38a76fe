package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:           "patternProperties",
		defaultLiteral: defEmptyObject,
		validate:       validatePatternProperties,
		// apply is nil: subsumed by properties.go's joint check.
	})
}

func validatePatternProperties(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsObject() {
		return newMalformed("patternProperties", "5.18", "must be an object")
	}
	for _, k := range v.Keys() {
		if _, ok := s.compiledPatternProps[k]; !ok {
			return newMalformed("patternProperties", "5.18", "key "+k+" is not a valid regular expression")
		}
		if sub, _ := v.Get(k); !sub.IsObject() {
			return newMalformed("patternProperties", "5.18", "value for "+k+" must be a schema object")
		}
	}
	return nil
}
