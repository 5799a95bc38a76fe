package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

// validateSchemaArray builds a validate callback shared by allOf, anyOf
// and oneOf: the keyword's value must be a non-empty array, and every
// element a schema object. It only checks shape here; each element's
// own keyword contents are checked by validateNode recursing into
// children().
func validateSchemaArray(name, section string) func(*Schema, jsonval.Value) *MalformedError {
	return func(s *Schema, v jsonval.Value) *MalformedError {
		arr, ok := v.AsArray()
		if !ok || len(arr) == 0 {
			return newMalformed(name, section, "must be a non-empty array of schemas")
		}
		for _, e := range arr {
			if !e.IsObject() {
				return newMalformed(name, section, "elements must be schema objects")
			}
		}
		return nil
	}
}
