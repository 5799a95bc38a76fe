package schema

import (
	"context"
	"fmt"
	"regexp"

	"github.com/kjs-tools/draftfuzz/jsonval"
)

// Schema is a parsed draft-04 schema node. Fields are populated
// leniently at parse time (parseSchema never fails); the authoritative
// malformed-schema detection happens in the separate validate pass
// (validateNode, driven by keywordTable's validate callbacks reading
// s.raw directly), matching the two-phase shape the source describes:
// parse builds the tree unconditionally, then a dispatcher walk reports
// the first structural violation, if any.
//
// A Schema is immutable and safe to reuse across repeated Validate,
// GenerateInstances and GenerateLabeled calls.
type Schema struct {
	raw   jsonval.Value
	empty bool // true iff raw is an Object with zero members

	// annotations (spec.md §4.4 "value & annotation keywords")
	Title, Description   string
	HasTitle, HasDescription bool
	Default               jsonval.Value
	HasDefault            bool

	// numeric
	MultipleOf                         float64
	HasMultipleOf                      bool
	Maximum, Minimum                   float64
	HasMaximum, HasMinimum             bool
	MaximumIsInt, MinimumIsInt         bool
	ExclusiveMaximum, ExclusiveMinimum bool

	// string
	MaxLength       int64
	HasMaxLength    bool
	MinLength       int64
	Pattern         string
	HasPattern      bool
	compiledPattern *regexp.Regexp

	// array
	Items           itemsSpec
	AdditionalItems boolOrSchema
	MaxItems        int64
	HasMaxItems     bool
	MinItems        int64
	UniqueItems     bool

	// object
	Properties             map[string]*Schema
	propertyOrder          []string
	PatternProperties      map[string]*Schema
	patternPropertiesOrder []string
	compiledPatternProps   map[string]*regexp.Regexp
	AdditionalProperties   boolOrSchema
	MaxProperties          int64
	HasMaxProperties       bool
	MinProperties          int64
	Required               []string
	Dependencies           map[string]dependency
	dependencyOrder        []string

	// combinators
	AllOf, AnyOf, OneOf []*Schema
	Not                 *Schema
	HasNot              bool

	Enum    []jsonval.Value
	HasEnum bool

	Type    []string
	HasType bool

	debug bool
}

// Load parses and validates raw JSON bytes as a draft-04 schema,
// returning the root Schema on success. The root value must be a JSON
// object (ErrRootNotObject); malformed JSON is reported as an error
// wrapping ErrMalformedJSON whose message includes the underlying
// decode error's text; a structurally
// invalid keyword anywhere in the tree is reported as *MalformedError.
func Load(data []byte) (*Schema, error) {
	return LoadContext(context.Background(), data)
}

// LoadContext is Load with cancellation support, checked once before
// parsing and once before the validate pass — the two points at which a
// large schema document could otherwise burn CPU unattended.
func LoadContext(ctx context.Context, data []byte) (*Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}
	v, err := jsonval.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if !v.IsObject() {
		return nil, ErrRootNotObject
	}
	root := parseSchema(v)
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}
	if merr := validateNode(root); merr != nil {
		return nil, merr
	}
	return root, nil
}

// SetDebug toggles the debug-domain logging used throughout this
// package (gated the way the ambient stack's debug logger checks its
// domain list; see log.go).
func (s *Schema) SetDebug(on bool) { s.debug = on }

// parseSchema builds a Schema tree from a raw jsonval.Value without
// ever failing: an ill-shaped keyword value is simply left at its zero
// value here, to be caught by the subsequent validate pass. A v that is
// not an Object yields a Schema whose typed fields are all left at
// their zero values; parseSubschema below relies on this for
// malformed sub-schema values.
func parseSchema(v jsonval.Value) *Schema {
	s := &Schema{raw: v, empty: v.IsObject() && v.Len() == 0}
	if !v.IsObject() {
		return s
	}

	if t, ok := v.Get("title"); ok {
		if str, ok := t.AsString(); ok {
			s.Title, s.HasTitle = str, true
		}
	}
	if d, ok := v.Get("description"); ok {
		if str, ok := d.AsString(); ok {
			s.Description, s.HasDescription = str, true
		}
	}
	if d, ok := v.Get("default"); ok {
		s.Default, s.HasDefault = d, true
	}

	if n, ok := v.Get("multipleOf"); ok {
		if f, ok := n.AsFloat64(); ok {
			s.MultipleOf, s.HasMultipleOf = f, true
		}
	}
	if n, ok := v.Get("maximum"); ok {
		if f, ok := n.AsFloat64(); ok {
			s.Maximum, s.HasMaximum = f, true
			s.MaximumIsInt = n.IsInt()
		}
	}
	if b, ok := v.Get("exclusiveMaximum"); ok {
		if bv, ok := b.AsBool(); ok {
			s.ExclusiveMaximum = bv
		}
	}
	if n, ok := v.Get("minimum"); ok {
		if f, ok := n.AsFloat64(); ok {
			s.Minimum, s.HasMinimum = f, true
			s.MinimumIsInt = n.IsInt()
		}
	}
	if b, ok := v.Get("exclusiveMinimum"); ok {
		if bv, ok := b.AsBool(); ok {
			s.ExclusiveMinimum = bv
		}
	}

	if n, ok := v.Get("maxLength"); ok {
		if i, ok := n.AsInt(); ok {
			s.MaxLength, s.HasMaxLength = i, true
		}
	}
	s.MinLength = 0
	if n, ok := v.Get("minLength"); ok {
		if i, ok := n.AsInt(); ok {
			s.MinLength = i
		}
	}
	if p, ok := v.Get("pattern"); ok {
		if str, ok := p.AsString(); ok {
			s.Pattern, s.HasPattern = str, true
			s.compiledPattern, _ = regexp.Compile(str)
		}
	}

	parseArrayKeywords(s, v)
	parseObjectKeywords(s, v)

	if a, ok := v.Get("allOf"); ok {
		if arr, ok := a.AsArray(); ok {
			for _, sub := range arr {
				s.AllOf = append(s.AllOf, parseSubschema(sub))
			}
		}
	}
	if a, ok := v.Get("anyOf"); ok {
		if arr, ok := a.AsArray(); ok {
			for _, sub := range arr {
				s.AnyOf = append(s.AnyOf, parseSubschema(sub))
			}
		}
	}
	if a, ok := v.Get("oneOf"); ok {
		if arr, ok := a.AsArray(); ok {
			for _, sub := range arr {
				s.OneOf = append(s.OneOf, parseSubschema(sub))
			}
		}
	}
	if n, ok := v.Get("not"); ok {
		s.Not, s.HasNot = parseSubschema(n), true
	}

	if e, ok := v.Get("enum"); ok {
		if arr, ok := e.AsArray(); ok {
			s.Enum, s.HasEnum = arr, true
		}
	}

	if t, ok := v.Get("type"); ok {
		switch {
		case t.IsString():
			if str, ok := t.AsString(); ok {
				s.Type, s.HasType = []string{str}, true
			}
		case t.IsArray():
			if arr, ok := t.AsArray(); ok {
				s.HasType = true
				for _, e := range arr {
					if str, ok := e.AsString(); ok {
						s.Type = append(s.Type, str)
					}
				}
			}
		}
	}

	return s
}

// parseSubschema parses v as a nested schema, tolerating the malformed
// case where v is not even an Object: parseSchema already degrades
// gracefully for that (every typed field stays zero), and the validate
// pass reports it through the owning keyword's validate callback.
func parseSubschema(v jsonval.Value) *Schema {
	return parseSchema(v)
}

func parseArrayKeywords(s *Schema, v jsonval.Value) {
	if it, ok := v.Get("items"); ok {
		switch {
		case it.IsArray():
			arr, _ := it.AsArray()
			tuple := make([]*Schema, len(arr))
			for i, sub := range arr {
				tuple[i] = parseSubschema(sub)
			}
			s.Items = itemsSpec{Tuple: tuple}
		case it.IsObject():
			s.Items = itemsSpec{Single: parseSubschema(it)}
		default:
			s.Items = itemsSpec{Single: parseSubschema(jsonval.NewObject())}
		}
	} else {
		s.Items = itemsSpec{Single: parseSubschema(jsonval.NewObject())}
	}

	if ai, ok := v.Get("additionalItems"); ok {
		s.AdditionalItems = parseBoolOrSchema(ai)
	} else {
		s.AdditionalItems = boolOrSchema{Bool: boolPtr(true)}
	}

	if n, ok := v.Get("maxItems"); ok {
		if i, ok := n.AsInt(); ok {
			s.MaxItems, s.HasMaxItems = i, true
		}
	}
	if n, ok := v.Get("minItems"); ok {
		if i, ok := n.AsInt(); ok {
			s.MinItems = i
		}
	}
	if b, ok := v.Get("uniqueItems"); ok {
		if bv, ok := b.AsBool(); ok {
			s.UniqueItems = bv
		}
	}
}

func parseObjectKeywords(s *Schema, v jsonval.Value) {
	s.Properties = map[string]*Schema{}
	if p, ok := v.Get("properties"); ok && p.IsObject() {
		for _, k := range p.Keys() {
			sub, _ := p.Get(k)
			s.Properties[k] = parseSubschema(sub)
			s.propertyOrder = append(s.propertyOrder, k)
		}
	}

	s.PatternProperties = map[string]*Schema{}
	s.compiledPatternProps = map[string]*regexp.Regexp{}
	if pp, ok := v.Get("patternProperties"); ok && pp.IsObject() {
		for _, k := range pp.Keys() {
			sub, _ := pp.Get(k)
			s.PatternProperties[k] = parseSubschema(sub)
			s.patternPropertiesOrder = append(s.patternPropertiesOrder, k)
			if re, err := regexp.Compile(k); err == nil {
				s.compiledPatternProps[k] = re
			}
		}
	}

	if ap, ok := v.Get("additionalProperties"); ok {
		s.AdditionalProperties = parseBoolOrSchema(ap)
	} else {
		s.AdditionalProperties = boolOrSchema{Bool: boolPtr(true)}
	}

	if n, ok := v.Get("maxProperties"); ok {
		if i, ok := n.AsInt(); ok {
			s.MaxProperties, s.HasMaxProperties = i, true
		}
	}
	if n, ok := v.Get("minProperties"); ok {
		if i, ok := n.AsInt(); ok {
			s.MinProperties = i
		}
	}

	if r, ok := v.Get("required"); ok && r.IsArray() {
		arr, _ := r.AsArray()
		for _, e := range arr {
			if str, ok := e.AsString(); ok {
				s.Required = append(s.Required, str)
			}
		}
	}

	s.Dependencies = map[string]dependency{}
	if d, ok := v.Get("dependencies"); ok && d.IsObject() {
		for _, k := range d.Keys() {
			dv, _ := d.Get(k)
			switch {
			case dv.IsObject():
				s.Dependencies[k] = dependency{Schema: parseSubschema(dv)}
				s.dependencyOrder = append(s.dependencyOrder, k)
			case dv.IsArray():
				arr, _ := dv.AsArray()
				var props []string
				for _, e := range arr {
					if str, ok := e.AsString(); ok {
						props = append(props, str)
					}
				}
				s.Dependencies[k] = dependency{Props: props}
				s.dependencyOrder = append(s.dependencyOrder, k)
			}
		}
	}
}

func parseBoolOrSchema(v jsonval.Value) boolOrSchema {
	switch {
	case v.IsBool():
		b, _ := v.AsBool()
		return boolOrSchema{Bool: &b}
	case v.IsObject():
		return boolOrSchema{Schema: parseSubschema(v)}
	default:
		return boolOrSchema{Bool: boolPtr(true)}
	}
}

func boolPtr(b bool) *bool { return &b }
