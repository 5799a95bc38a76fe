package schema

import (
	"testing"

	"github.com/kjs-tools/draftfuzz/jsonval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, doc string) *Schema {
	t.Helper()
	s, err := Load([]byte(doc))
	require.NoError(t, err)
	return s
}

func TestLoadRejectsNonObjectRoot(t *testing.T) {
	_, err := Load([]byte(`[1,2,3]`))
	assert.ErrorIs(t, err, ErrRootNotObject)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte(`{`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestEmptySchemaAlwaysValidatesEverything(t *testing.T) {
	s := mustLoad(t, `{}`)
	for _, v := range []jsonval.Value{
		jsonval.Null(), jsonval.Bool(true), jsonval.Int(5),
		jsonval.Str("x"), jsonval.Arr(jsonval.Int(1)), jsonval.NewObject(),
	} {
		assert.Nil(t, s.Validate(v))
	}
}

func TestMaximumExclusive(t *testing.T) {
	s := mustLoad(t, `{"maximum": 10, "exclusiveMaximum": true}`)
	assert.Nil(t, s.Validate(jsonval.Int(9)))
	assert.NotNil(t, s.Validate(jsonval.Int(10)))

	inclusive := mustLoad(t, `{"maximum": 10}`)
	assert.Nil(t, inclusive.Validate(jsonval.Int(10)))
	assert.NotNil(t, inclusive.Validate(jsonval.Int(11)))
}

func TestMultipleOf(t *testing.T) {
	s := mustLoad(t, `{"multipleOf": 2.5}`)
	assert.Nil(t, s.Validate(jsonval.Double(5)))
	assert.NotNil(t, s.Validate(jsonval.Double(6)))
}

// TestMultipleOfExactIntegerBeyondFloatPrecision confirms applyMultipleOf
// takes the integer modulo path (not float division) for an Integer
// instance against an integer multipleOf, since float64 division loses
// precision for integers beyond 2^53.
func TestMultipleOfExactIntegerBeyondFloatPrecision(t *testing.T) {
	s := mustLoad(t, `{"multipleOf": 10}`)
	big := int64(1) << 60 // neighbouring integers are not exactly representable as float64
	assert.Nil(t, s.Validate(jsonval.Int(big/10*10)))
	assert.NotNil(t, s.Validate(jsonval.Int(big/10*10+1)))
}

func TestRequiredReportsMissingProperty(t *testing.T) {
	s := mustLoad(t, `{"required": ["a", "b"]}`)
	obj := jsonval.ObjFromPairs(jsonval.Pair{Key: "a", Value: jsonval.Int(1)})
	err := s.Validate(obj)
	require.NotNil(t, err)
	assert.Equal(t, "required", err.Keyword)
	assert.Equal(t, "b", err.Params["name"])
}

func TestJointPropertiesPatternAdditional(t *testing.T) {
	s := mustLoad(t, `{
		"properties": {"id": {"type": "integer"}},
		"patternProperties": {"^x-": {"type": "string"}},
		"additionalProperties": false
	}`)

	ok := jsonval.ObjFromPairs(
		jsonval.Pair{Key: "id", Value: jsonval.Int(1)},
		jsonval.Pair{Key: "x-note", Value: jsonval.Str("hi")},
	)
	assert.Nil(t, s.Validate(ok))

	badType := jsonval.ObjFromPairs(jsonval.Pair{Key: "id", Value: jsonval.Str("not-an-int")})
	assert.NotNil(t, s.Validate(badType))

	unexpected := jsonval.ObjFromPairs(jsonval.Pair{Key: "extra", Value: jsonval.Bool(true)})
	err := s.Validate(unexpected)
	require.NotNil(t, err)
	assert.Equal(t, "additionalProperties", err.Keyword)
}

func TestItemsTupleWithAdditionalItemsFalse(t *testing.T) {
	s := mustLoad(t, `{
		"items": [{"type": "string"}, {"type": "integer"}],
		"additionalItems": false
	}`)
	assert.Nil(t, s.Validate(jsonval.Arr(jsonval.Str("a"), jsonval.Int(1))))
	assert.NotNil(t, s.Validate(jsonval.Arr(jsonval.Str("a"), jsonval.Int(1), jsonval.Bool(true))))
}

func TestUniqueItems(t *testing.T) {
	s := mustLoad(t, `{"uniqueItems": true}`)
	assert.Nil(t, s.Validate(jsonval.Arr(jsonval.Int(1), jsonval.Int(2))))
	assert.NotNil(t, s.Validate(jsonval.Arr(jsonval.Int(1), jsonval.Int(1))))
}

func TestDependenciesSchemaAndProperty(t *testing.T) {
	s := mustLoad(t, `{
		"dependencies": {
			"credit_card": ["billing_address"],
			"shipping": {"required": ["address"]}
		}
	}`)
	withCard := jsonval.ObjFromPairs(jsonval.Pair{Key: "credit_card", Value: jsonval.Int(1)})
	assert.NotNil(t, s.Validate(withCard))

	withCardAndAddr := jsonval.ObjFromPairs(
		jsonval.Pair{Key: "credit_card", Value: jsonval.Int(1)},
		jsonval.Pair{Key: "billing_address", Value: jsonval.Str("x")},
	)
	assert.Nil(t, s.Validate(withCardAndAddr))

	withShippingNoAddr := jsonval.ObjFromPairs(jsonval.Pair{Key: "shipping", Value: jsonval.Bool(true)})
	assert.NotNil(t, s.Validate(withShippingNoAddr))
}

func TestAllOfAnyOfOneOfNot(t *testing.T) {
	allOf := mustLoad(t, `{"allOf": [{"type": "integer"}, {"minimum": 0}]}`)
	assert.Nil(t, allOf.Validate(jsonval.Int(5)))
	assert.NotNil(t, allOf.Validate(jsonval.Int(-5)))

	anyOf := mustLoad(t, `{"anyOf": [{"type": "integer"}, {"type": "string"}]}`)
	assert.Nil(t, anyOf.Validate(jsonval.Str("x")))
	assert.NotNil(t, anyOf.Validate(jsonval.Bool(true)))

	oneOf := mustLoad(t, `{"oneOf": [{"minimum": 0}, {"maximum": 10}]}`)
	assert.NotNil(t, oneOf.Validate(jsonval.Int(5))) // matches both, not exactly one
	assert.Nil(t, oneOf.Validate(jsonval.Int(-5)))    // matches only maximum

	not := mustLoad(t, `{"not": {"type": "integer"}}`)
	assert.Nil(t, not.Validate(jsonval.Str("x")))
	assert.NotNil(t, not.Validate(jsonval.Int(1)))
}

func TestTypeEmptyArrayAlwaysFails(t *testing.T) {
	s := mustLoad(t, `{"type": []}`)
	for _, v := range []jsonval.Value{jsonval.Null(), jsonval.Int(1), jsonval.Str("x")} {
		assert.NotNil(t, s.Validate(v))
	}
}

func TestEnumRejectsValuesOutsideTheList(t *testing.T) {
	s := mustLoad(t, `{"enum": [1, "x", true]}`)
	assert.Nil(t, s.Validate(jsonval.Int(1)))
	assert.Nil(t, s.Validate(jsonval.Str("x")))
	// Integer and Double cross-compare equal (bit-exact coercion), so
	// Double(1) also satisfies an enum entry of Int(1).
	assert.Nil(t, s.Validate(jsonval.Double(1)))
	assert.NotNil(t, s.Validate(jsonval.Str("y")))
}

func TestExclusiveMaximumRequiresMaximum(t *testing.T) {
	_, err := Load([]byte(`{"exclusiveMaximum": true}`))
	require.Error(t, err)
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "exclusiveMaximum", merr.Keyword)
}

func TestExclusiveMinimumRequiresMinimum(t *testing.T) {
	_, err := Load([]byte(`{"exclusiveMinimum": false}`))
	require.Error(t, err)
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "exclusiveMinimum", merr.Keyword)
}

func TestExclusiveMaximumMustBeBoolean(t *testing.T) {
	_, err := Load([]byte(`{"maximum": 1, "exclusiveMaximum": "yes"}`))
	assert.Error(t, err)
}
