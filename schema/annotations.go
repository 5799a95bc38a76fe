package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

// title, description and default carry no constraint on instances;
// they only need shape-validation (spec.md §5.25-5.27) and contribute
// default's own value as a generation candidate, since a schema's
// default is frequently instructive about what a "typical" valid
// instance looks like even though draft-04 never requires it to be
// consistent with the rest of the schema.
func init() {
	registerKeywords(
		keyword{name: "title", validate: validateStringAnnotation("title")},
		keyword{name: "description", validate: validateStringAnnotation("description")},
		keyword{name: "default", generate: generateDefault},
	)
}

func validateStringAnnotation(name string) func(*Schema, jsonval.Value) *MalformedError {
	return func(s *Schema, v jsonval.Value) *MalformedError {
		if !v.IsString() {
			return newMalformed(name, "6", "must be a string")
		}
		return nil
	}
}

func generateDefault(s *Schema, out *InstanceSet, gen *generation) {
	out.Add(s.Default)
}
