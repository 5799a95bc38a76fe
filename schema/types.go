package schema

// itemsSpec models the "items" keyword's two shapes: a single schema
// applied to every element, or a positional tuple of per-index schemas
// (spec.md §4.4 "items" row). Exactly one of Single/Tuple is set.
type itemsSpec struct {
	Single *Schema
	Tuple  []*Schema
}

func (it itemsSpec) isTuple() bool { return it.Tuple != nil }

// boolOrSchema models the handful of draft-04 keywords whose value is
// either a boolean or a schema object: additionalItems and
// additionalProperties. Exactly one of Bool/Schema is set; a keyword
// that is absent (or not a boolean or object) is parsed as Bool=true,
// which accepts everything just as the draft-04 default {} does.
type boolOrSchema struct {
	Bool   *bool
	Schema *Schema
}

func (b boolOrSchema) isFalse() bool  { return b.Bool != nil && !*b.Bool }
func (b boolOrSchema) isTrue() bool   { return b.Bool != nil && *b.Bool }
func (b boolOrSchema) isSchema() bool { return b.Schema != nil }

// dependency models one value of the "dependencies" keyword: either a
// schema dependency (the whole instance must validate against Schema
// when the key is present) or a property dependency (the named
// properties must also be present).
type dependency struct {
	Schema *Schema
	Props  []string
}

func (d dependency) isSchema() bool { return d.Schema != nil }
