package schema

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kjs-tools/draftfuzz/jsonval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodedSorted renders instances to their canonical JSON text and sorts
// the result, giving cmp.Diff a stable, order-independent view of a
// generated instance set.
func encodedSorted(instances []jsonval.Value) []string {
	out := make([]string, len(instances))
	for i, v := range instances {
		out[i] = jsonval.EncodeString(v)
	}
	sort.Strings(out)
	return out
}

func TestGenerateInstancesNeverPanicsAndDeduplicates(t *testing.T) {
	docs := []string{
		`{}`,
		`{"type": "integer", "minimum": 0, "maximum": 10}`,
		`{"type": "array", "items": {"type": "string"}, "minItems": 1, "uniqueItems": true}`,
		`{"properties": {"a": {"type": "integer"}}, "required": ["a"], "additionalProperties": false}`,
		`{"allOf": [{"type": "integer"}, {"minimum": 0}]}`,
		`{"enum": [1, "x", true, null]}`,
	}
	for _, doc := range docs {
		s := mustLoad(t, doc)
		instances := s.GenerateInstances()
		assert.NotEmpty(t, instances)
		for i := range instances {
			for j := i + 1; j < len(instances); j++ {
				assert.False(t, jsonval.Equal(instances[i], instances[j]),
					"duplicate instance emitted for %s: %s", doc, jsonval.EncodeString(instances[i]))
			}
		}
	}
}

func TestGenerateInstancesContainsAtLeastOneValidCandidate(t *testing.T) {
	s := mustLoad(t, `{"type": "integer", "minimum": 0, "maximum": 10}`)
	instances := s.GenerateInstances()
	foundValid := false
	for _, v := range instances {
		if s.Validate(v) == nil {
			foundValid = true
			break
		}
	}
	assert.True(t, foundValid, "expected at least one generated instance to satisfy the schema")
}

func TestGenerateInstancesEnumEmitsExactMembers(t *testing.T) {
	s := mustLoad(t, `{"enum": [1, "x", true, null]}`)
	instances := s.GenerateInstances()
	for _, want := range []jsonval.Value{jsonval.Int(1), jsonval.Str("x"), jsonval.Bool(true), jsonval.Null()} {
		assert.True(t, jsonval.Contains(instances, want), "missing enum member %s", jsonval.EncodeString(want))
	}
}

func TestCompositeArrayGeneratorRunsOncePerSchema(t *testing.T) {
	s := mustLoad(t, `{"items": {"type": "integer"}, "minItems": 1, "maxItems": 3}`)
	gen := newGeneration()
	out := NewInstanceSet()
	generateItems(s, out, gen)
	assert.NotZero(t, out.Len())
	second := NewInstanceSet()
	generateItems(s, second, gen) // second dispatch through the keyword entry: guarded by arrayOnce
	assert.Equal(t, 0, second.Len())
}

func TestEmptySchemaGeneratesOnlyNull(t *testing.T) {
	s := mustLoad(t, `{}`)
	instances := s.GenerateInstances()
	require.Len(t, instances, 1)
	assert.True(t, instances[0].IsNull())
}

// TestGenerateInstancesExercisesDependencyClosure confirms the object
// composite generator produces at least one instance where a
// property-dependency trigger pulls in its transitively required
// property, instead of only the unrelated required/all-properties
// shapes.
func TestGenerateInstancesExercisesDependencyClosure(t *testing.T) {
	s := mustLoad(t, `{
		"properties": {"a": {"type": "integer"}, "b": {"type": "string"}, "c": {"type": "boolean"}},
		"dependencies": {"a": ["b"]}
	}`)
	instances := s.GenerateInstances()
	found := false
	for _, v := range instances {
		obj, ok := v.AsObject()
		if !ok {
			continue
		}
		_, hasA := obj.Get("a")
		_, hasB := obj.Get("b")
		if hasA && hasB {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one generated instance with both the dependency trigger %q and its required property %q", "a", "b")
}

// TestGenerateInstancesIntegerMinimumMaximumBoundaries is spec.md §8
// Concrete Scenario 1: an integer-typed minimum/maximum pair must
// produce Integer-variant boundary texts, not Double ones, so the
// emitted JSON literals match "0", "1", "2", "-1", "3" exactly rather
// than their "0.0"-style Double renderings.
func TestGenerateInstancesIntegerMinimumMaximumBoundaries(t *testing.T) {
	s := mustLoad(t, `{"type": "integer", "minimum": 0, "maximum": 2}`)
	texts := map[string]bool{}
	for _, v := range s.GenerateInstances() {
		texts[jsonval.EncodeString(v)] = true
	}
	for _, want := range []string{"0", "1", "2", "-1", "3"} {
		assert.True(t, texts[want], "expected generated JSON text %q, got %v", want, texts)
	}

	for _, tc := range []struct {
		text  string
		valid bool
	}{
		{"0", true}, {"1", true}, {"2", true}, {"-1", false}, {"3", false},
	} {
		v, err := jsonval.Parse([]byte(tc.text))
		require.NoError(t, err)
		if tc.valid {
			assert.Nil(t, s.Validate(v), "expected %s to validate", tc.text)
		} else {
			assert.NotNil(t, s.Validate(v), "expected %s to be rejected", tc.text)
		}
	}
}

// TestGenerateInstancesMaxLengthOneMultiByteVariant is spec.md §8
// Concrete Scenario 2: {"type":"string","maxLength":1} must emit both
// the single-byte-per-rune and multi-byte-per-rune two-character
// strings, so the one-past-the-boundary probe actually exercises
// rune-counting rather than byte-counting.
func TestGenerateInstancesMaxLengthOneMultiByteVariant(t *testing.T) {
	s := mustLoad(t, `{"type": "string", "maxLength": 1}`)
	instances := s.GenerateInstances()

	var sawTwoByteASCII, sawTwoCharMultiByte bool
	for _, v := range instances {
		str, ok := v.AsString()
		if !ok {
			continue
		}
		switch str {
		case "aa":
			sawTwoByteASCII = true
		case "字字":
			sawTwoCharMultiByte = true
		}
	}
	assert.True(t, sawTwoByteASCII, "expected a two-ASCII-char invalid probe")
	assert.True(t, sawTwoCharMultiByte, "expected a two-multi-byte-char invalid probe")

	assert.Nil(t, s.Validate(jsonval.Str("")))
	assert.Nil(t, s.Validate(jsonval.Str("0")))
	assert.NotNil(t, s.Validate(jsonval.Str("00")))
	assert.NotNil(t, s.Validate(jsonval.Str("字字")))
}

// TestGenerateAllItemsDeliberateInvalidProbeIsActuallyInvalid guards
// against the composite array generator silently reusing a value that
// happens to satisfy the element schema wherever it claims to place a
// deliberately-invalid element (spec.md §4.5.a Phase 2).
func TestGenerateAllItemsDeliberateInvalidProbeIsActuallyInvalid(t *testing.T) {
	s := mustLoad(t, `{"items": {"type": "string"}, "minItems": 1, "maxItems": 2}`)
	instances := s.GenerateInstances()
	foundInvalid := false
	for _, v := range instances {
		arr, ok := v.AsArray()
		if !ok {
			continue
		}
		for _, elem := range arr {
			if !elem.IsString() {
				foundInvalid = true
			}
		}
	}
	assert.True(t, foundInvalid, "expected at least one generated array to contain a non-string element probing the items schema")
}

// TestGenerateAllPropertiesPatternPropertySampleMatchesItsRegex covers
// spec.md §4.5.b Phase 1 / Open Question 4: the property name chosen to
// exercise a patternProperties regex must actually match it, drawn from
// the six-candidate closed list.
func TestGenerateAllPropertiesPatternPropertySampleMatchesItsRegex(t *testing.T) {
	s := mustLoad(t, `{"patternProperties": {"^[A-Z]$": {"type": "integer"}}}`)
	instances := s.GenerateInstances()
	found := false
	for _, v := range instances {
		obj, ok := v.AsObject()
		if !ok {
			continue
		}
		if val, ok := obj.Get("A"); ok && val.IsInt() {
			found = true
		}
	}
	assert.True(t, found, "expected an instance with property \"A\" (matching ^[A-Z]$) set to an integer")
}

// TestGenerateAllPropertiesPatternPropertyWithNoMatchingProbeIsOmitted
// exercises the Open Question 4 resolution directly: when none of the
// six closed-list candidates match a pattern, that pattern contributes
// no property-name shape at all, rather than a fabricated label that
// would never match the regex it was meant to probe.
func TestGenerateAllPropertiesPatternPropertyWithNoMatchingProbeIsOmitted(t *testing.T) {
	s := mustLoad(t, `{"patternProperties": {"^zzzzzzzzzz$": {"type": "integer"}}}`)
	_, ok := sampleMatchingPattern(s, "^zzzzzzzzzz$")
	assert.False(t, ok)
	// Generation must still terminate normally and produce something.
	assert.NotEmpty(t, s.GenerateInstances())
}

// TestGenerateInstancesIsStableAcrossCalls diffs two independently
// generated instance sets for the same schema: GenerateInstances holds
// no state across calls, so repeated calls must produce the same set.
func TestGenerateInstancesIsStableAcrossCalls(t *testing.T) {
	s := mustLoad(t, `{"properties": {"a": {"type": "integer"}, "b": {"type": "string"}}, "required": ["a"], "dependencies": {"a": ["b"]}}`)
	first := encodedSorted(s.GenerateInstances())
	second := encodedSorted(s.GenerateInstances())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("generated instance set changed across calls (-first +second):\n%s", diff)
	}
}
