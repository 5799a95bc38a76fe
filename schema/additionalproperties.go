package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func init() {
	registerKeywords(keyword{
		name:           "additionalProperties",
		defaultLiteral: defTrue,
		validate:       validateAdditionalProperties,
		// apply is nil: subsumed by properties.go's joint check.
	})
}

func validateAdditionalProperties(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsBool() && !v.IsObject() {
		return newMalformed("additionalProperties", "5.17", "must be a boolean or a schema")
	}
	return nil
}
