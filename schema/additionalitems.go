package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

func defTrue() jsonval.Value { return jsonval.Bool(true) }

func init() {
	registerKeywords(keyword{
		name:           "additionalItems",
		defaultLiteral: defTrue,
		validate:       validateAdditionalItems,
		// apply is nil: additionalItems only has meaning alongside items'
		// tuple form, so the joint check lives in items.go's apply,
		// which reads s.AdditionalItems directly.
	})
}

func validateAdditionalItems(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsBool() && !v.IsObject() {
		return newMalformed("additionalItems", "5.6", "must be a boolean or a schema")
	}
	return nil
}
