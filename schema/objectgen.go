package schema

import (
	"github.com/kjs-tools/draftfuzz/jsonval"
	"github.com/kjs-tools/draftfuzz/strset"
)

// generateAllProperties is the composite object generator, the analog
// of generateAllItems for the properties/patternProperties/
// additionalProperties/required/dependencies cluster. properties.go
// calls this once per schema (guarded by generation.objectOnce).
//
// Phases: enumerate candidate property-name shapes (subsets of the
// declared properties, with and without the required set, plus a name
// matching each patternProperties regex and one matching none), cache
// each governing sub-schema's own generated instances once, enumerate
// which member should hold a deliberately invalid value, emit the
// resulting objects, then apply boundary mutations to an object holding
// every declared and required property (drop each required property in
// turn; add one undeclared property when additionalProperties is false
// or maxProperties is set).
func generateAllProperties(s *Schema, out *InstanceSet, gen *generation) {
	names := objectCandidateShapes(s)
	subCache := map[string]*subInstanceCache{}
	for _, name := range names {
		subCache[name] = partitionSubInstances(governingPropertySchema(s, name))
	}

	for _, shape := range objectMemberShapes(s, names) {
		for pos := -1; pos < len(shape); pos++ {
			obj := jsonval.NewObject()
			ok := true
			for i, name := range shape {
				cache := subCache[name]
				var val jsonval.Value
				if i == pos {
					val, ok = cache.pickInvalid()
				} else {
					val, ok = cache.pickValid()
				}
				if !ok {
					break
				}
				obj = jsonval.WithSet(obj, name, val)
			}
			if ok {
				out.Add(obj)
			}
		}
	}

	emitObjectBoundaryMutations(s, out, subCache)
}

// objectCandidateShapes enumerates the property names worth exercising:
// every declared property, every required property, one name matching
// each patternProperties regex, and one name matching none of the
// above (to probe additionalProperties).
func objectCandidateShapes(s *Schema) []string {
	seen := map[string]bool{}
	var out []string
	add := func(n string) {
		if seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
	}
	for _, name := range s.propertyOrder {
		add(name)
	}
	for _, name := range s.Required {
		add(name)
	}
	for _, pat := range s.patternPropertiesOrder {
		if name, ok := sampleMatchingPattern(s, pat); ok {
			add(name)
		}
	}
	for _, trigger := range s.dependencyOrder {
		if d := s.Dependencies[trigger]; !d.isSchema() {
			add(trigger)
			for _, p := range d.Props {
				add(p)
			}
		}
	}
	add("zzz-additional")
	return out
}

func objectMemberShapes(s *Schema, names []string) [][]string {
	var shapes [][]string
	shapes = append(shapes, nil)
	if len(s.Required) > 0 {
		shapes = append(shapes, append([]string{}, s.Required...))
	}
	shapes = append(shapes, names)
	if len(s.propertyOrder) > 0 {
		shapes = append(shapes, append([]string{}, s.propertyOrder...))
	}
	shapes = append(shapes, dependencyClosureShapes(s)...)
	return shapes
}

// dependencyClosureShapes emits one member shape per property-dependency
// trigger: the trigger property plus every property pulled in by
// propertyDependencyClosure, so generated instances exercise the
// "presence of A requires presence of B" relationship directly rather
// than only through the unrelated required/all-properties shapes.
// Schema dependencies contribute no shape here; applyDependencies routes
// those through the full sub-schema validator instead (spec.md §9 open
// question 3).
func dependencyClosureShapes(s *Schema) [][]string {
	deps := propertyDependencyMap(s)
	if len(deps) == 0 {
		return nil
	}
	var shapes [][]string
	for _, trigger := range s.dependencyOrder {
		if !s.Dependencies[trigger].isSchema() {
			shapes = append(shapes, strset.Closure(strset.Singleton(trigger), deps).ToSlice())
		}
	}
	return shapes
}

func propertyDependencyMap(s *Schema) map[string][]string {
	deps := map[string][]string{}
	for _, k := range s.dependencyOrder {
		if d := s.Dependencies[k]; !d.isSchema() {
			deps[k] = d.Props
		}
	}
	return deps
}

func governingPropertySchema(s *Schema, name string) *Schema {
	if sub, ok := s.Properties[name]; ok {
		return sub
	}
	for _, pat := range s.patternPropertiesOrder {
		if re := s.compiledPatternProps[pat]; re != nil && re.MatchString(name) {
			return s.PatternProperties[pat]
		}
	}
	if s.AdditionalProperties.isSchema() {
		return s.AdditionalProperties.Schema
	}
	return nil
}

// patternPropertyProbes is the six-candidate closed list spec.md
// §4.5.b Phase 1 and Open Question 4 specify for picking a property
// name that exercises a patternProperties regex, tried in order.
var patternPropertyProbes = []string{"a", "A", "0", "aaa", "000", "!"}

// sampleMatchingPattern returns the first probe from patternProperty-
// Probes that s's compiled regex for pat actually matches. ok is false
// when none of the six match, per Open Question 4's resolution: return
// the empty set (omit the pattern from the candidate shapes) rather
// than aborting generation.
func sampleMatchingPattern(s *Schema, pat string) (string, bool) {
	re := s.compiledPatternProps[pat]
	if re == nil {
		return "", false
	}
	for _, probe := range patternPropertyProbes {
		if re.MatchString(probe) {
			return probe, true
		}
	}
	return "", false
}

func emitObjectBoundaryMutations(s *Schema, out *InstanceSet, subCache map[string]*subInstanceCache) {
	full := jsonval.NewObject()
	for _, name := range s.propertyOrder {
		if v, ok := subCache[name].pickValid(); ok {
			full = jsonval.WithSet(full, name, v)
		}
	}
	for _, name := range s.Required {
		if _, has := full.Get(name); !has {
			if v, ok := subCache[name].pickValid(); ok {
				full = jsonval.WithSet(full, name, v)
			}
		}
	}
	out.Add(full)

	for _, name := range s.Required {
		out.Add(jsonval.WithDeleted(full, name))
	}

	if s.AdditionalProperties.isFalse() || s.HasMaxProperties {
		extra := jsonval.WithSet(full, "zzz-additional", jsonval.Null())
		out.Add(extra)
	}
}
