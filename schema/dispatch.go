package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

// validateNode walks keywordTable in its fixed order, invoking each
// keyword's validate callback against the keyword's present-or-default
// value (spec.md §4.3), stopping at the first *MalformedError. It then
// recurses into every direct child schema, pre-order, skipping children
// known to be the empty schema ({}) since an empty object can carry no
// malformed keyword.
func validateNode(s *Schema) *MalformedError {
	for _, kw := range keywordTable {
		if kw.validate == nil {
			continue
		}
		v, ok := kw.present(s)
		if !ok {
			continue
		}
		if err := kw.validate(s, v); err != nil {
			return err
		}
	}
	for _, child := range children(s) {
		if child.empty {
			continue
		}
		if err := validateNode(child); err != nil {
			return err
		}
	}
	return nil
}

// children returns every direct child *Schema reachable from s, in the
// fixed order spec.md §2 lists them (array, object, combinators).
func children(s *Schema) []*Schema {
	var out []*Schema
	if s.Items.isTuple() {
		out = append(out, s.Items.Tuple...)
	} else if s.Items.Single != nil {
		out = append(out, s.Items.Single)
	}
	if s.AdditionalItems.isSchema() {
		out = append(out, s.AdditionalItems.Schema)
	}
	for _, k := range s.propertyOrder {
		out = append(out, s.Properties[k])
	}
	for _, k := range s.patternPropertiesOrder {
		out = append(out, s.PatternProperties[k])
	}
	if s.AdditionalProperties.isSchema() {
		out = append(out, s.AdditionalProperties.Schema)
	}
	for _, k := range s.dependencyOrder {
		if s.Dependencies[k].isSchema() {
			out = append(out, s.Dependencies[k].Schema)
		}
	}
	out = append(out, s.AllOf...)
	out = append(out, s.AnyOf...)
	out = append(out, s.OneOf...)
	if s.Not != nil {
		out = append(out, s.Not)
	}
	return out
}

// Validate applies s against instance, returning the first
// *EvaluationError encountered in keywordTable order, or nil if
// instance satisfies every keyword. The empty schema ({}) always
// returns nil without inspecting instance, the termination guarantee
// spec.md §4.3 requires of every composite operation.
func (s *Schema) Validate(instance jsonval.Value) *EvaluationError {
	if s.empty {
		return nil
	}
	for _, kw := range keywordTable {
		if kw.apply == nil {
			continue
		}
		if _, ok := kw.present(s); !ok {
			continue
		}
		if err := kw.apply(s, instance); err != nil {
			debugf(s, "validate", "keyword failed", "keyword", kw.name, "code", err.Code)
			return err
		}
	}
	return nil
}

// GenerateInstances produces the deduplicated set of instances
// spec.md §5 describes: every keyword present on s (or defaulted)
// contributes its own candidates on top of the universal baseline
// (null, true, false, 0, "", [], {}), with the array/object composite
// generators folded in at most once per call (see generation.go).
func (s *Schema) GenerateInstances() []jsonval.Value {
	out := NewInstanceSet()
	gen := newGeneration()
	generateNode(s, out, gen)
	debugf(s, "generate", "generation complete", "count", out.Len())
	return out.Values()
}

// GeneratedInstance is the (json text, valid) pair spec.md §4.6
// describes GenerateLabeled returning: one candidate produced by
// GenerateInstances, paired with the verdict from re-applying s to it.
// Malformed is set only for the single trailing non-well-formed-JSON
// marker GenerateLabeled appends when its filter asks for one; Value is
// meaningless in that case and callers must use MalformedJSONSample
// instead.
type GeneratedInstance struct {
	Value     jsonval.Value
	Valid     bool
	Malformed bool
}

// GenerateFilter selects which of a GenerateLabeled call's candidates a
// caller wants back, matching the three independent flags spec.md §4.6
// and §6 (the generator CLI's -v/-n/-j) describe.
type GenerateFilter struct {
	IncludeValid      bool
	IncludeInvalid    bool
	IncludeMalformed  bool // append MalformedJSONSample as one extra "invalid" entry
}

// DefaultGenerateFilter includes both valid and invalid instances and
// omits the non-well-formed-JSON sample. The generator CLI starts from
// it and turns IncludeMalformed on unless -j or -v is given.
func DefaultGenerateFilter() GenerateFilter {
	return GenerateFilter{IncludeValid: true, IncludeInvalid: true}
}

// GenerateLabeled runs GenerateInstances, re-applies s to every
// candidate to determine its verdict (spec.md §4.6: "apply" returning
// success tags the instance "valid"; any error tags it "invalid" — not
// propagated as an error, folded into the instance's own metadata),
// then keeps only what filter.IncludeValid/IncludeInvalid select. When
// filter.IncludeMalformed is set, one final entry with Malformed set is
// appended; callers render MalformedJSONSample() for that entry instead
// of encoding its (unused) Value.
func (s *Schema) GenerateLabeled(filter GenerateFilter) []GeneratedInstance {
	var out []GeneratedInstance
	for _, v := range s.GenerateInstances() {
		valid := s.Validate(v) == nil
		if valid && !filter.IncludeValid {
			continue
		}
		if !valid && !filter.IncludeInvalid {
			continue
		}
		out = append(out, GeneratedInstance{Value: v, Valid: valid})
	}
	if filter.IncludeMalformed {
		out = append(out, GeneratedInstance{Valid: false, Malformed: true})
	}
	return out
}

func generateNode(s *Schema, out *InstanceSet, gen *generation) {
	if s.empty {
		// spec.md §8 invariant 9: generating from {} emits exactly one
		// candidate. This is also what keeps sub-schema recursion finite
		// when a keyword's default value is itself {} (§5 "Bounded
		// recursion").
		out.Add(jsonval.Null())
		return
	}
	out.AddAll(baselineInstances())
	for _, kw := range keywordTable {
		if kw.generate == nil {
			continue
		}
		if _, ok := kw.present(s); !ok {
			continue
		}
		kw.generate(s, out, gen)
	}
}

// MalformedJSONSample returns a single deliberately non-well-formed
// byte sequence: a candidate spec.md §4.6 says a generator may offer
// alongside its well-formed instances so CLI consumers can exercise
// their own JSON-parse-failure handling, not something GenerateInstances
// itself ever returns as a jsonval.Value (it cannot be parsed into one).
func MalformedJSONSample() []byte {
	return []byte(`{"unterminated": `)
}

func baselineInstances() []jsonval.Value {
	return []jsonval.Value{
		jsonval.Null(),
		jsonval.Bool(true),
		jsonval.Bool(false),
		jsonval.Int(0),
		jsonval.Str(""),
		jsonval.Arr(),
		jsonval.NewObject(),
	}
}
