package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

// exclusiveMaximum carries no apply or generate callback of its own:
// maximum.go's applyMaximum/generateMaximum read s.ExclusiveMaximum
// directly once maximum's own presence has been confirmed. All this
// keyword contributes to the dispatcher is its own shape check and the
// co-required-sibling invariant spec.md §3 states: "exclusiveMaximum
// implies the presence of maximum".
func init() {
	registerKeywords(keyword{
		name:           "exclusiveMaximum",
		defaultLiteral: defFalse,
		validate:       validateExclusiveMaximum,
	})
}

func validateExclusiveMaximum(s *Schema, v jsonval.Value) *MalformedError {
	if !v.IsBool() {
		return newMalformed("exclusiveMaximum", "5.2", "must be a boolean")
	}
	// The co-required-sibling check only applies when the schema author
	// actually wrote exclusiveMaximum; the synthesised default (false)
	// must not make every maximum-less schema malformed.
	if s.raw.Has("exclusiveMaximum") && !s.raw.Has("maximum") {
		return newMalformed("exclusiveMaximum", "5.2", "must not be present without maximum")
	}
	return nil
}
