package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

// Mirrors exclusivemaximum.go: minimum.go owns the actual application
// and generation of boundary instances once s.ExclusiveMinimum is set.
func init() {
	registerKeywords(keyword{
		name:           "exclusiveMinimum",
		defaultLiteral: defFalse,
		validate:       validateExclusiveMinimum,
	})
}

func validateExclusiveMinimum(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsBool() {
		return newMalformed("exclusiveMinimum", "5.3", "must be a boolean")
	}
	if s.raw.Has("exclusiveMinimum") && !s.raw.Has("minimum") {
		return newMalformed("exclusiveMinimum", "5.3", "must not be present without minimum")
	}
	return nil
}
