package jsonval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjs-tools/draftfuzz/jsonval"
)

func TestEqualReflexiveSymmetricTransitive(t *testing.T) {
	values := []jsonval.Value{
		jsonval.Null(),
		jsonval.Bool(true),
		jsonval.Int(1),
		jsonval.Double(1.0),
		jsonval.Str("x"),
		jsonval.Arr(jsonval.Int(1), jsonval.Str("a")),
		jsonval.ObjFromPairs(jsonval.Pair{Key: "a", Value: jsonval.Int(1)}),
	}
	for _, v := range values {
		assert.True(t, jsonval.Equal(v, v))
	}

	a := jsonval.Int(1)
	b := jsonval.Double(1.0)
	c := jsonval.Double(1.0)
	assert.True(t, jsonval.Equal(a, b))
	assert.True(t, jsonval.Equal(b, a))
	assert.True(t, jsonval.Equal(b, c))
	assert.True(t, jsonval.Equal(a, c))
}

func TestIntegerDoubleCrossEquality(t *testing.T) {
	assert.True(t, jsonval.Equal(jsonval.Int(1), jsonval.Double(1.0)))
	assert.False(t, jsonval.Equal(jsonval.Int(1), jsonval.Double(1.0000001)))
}

func TestDoubleEqualityIsBitExactNotEpsilon(t *testing.T) {
	a := jsonval.Double(0.1 + 0.2)
	b := jsonval.Double(0.3)
	// 0.1+0.2 != 0.3 at the bit level in IEEE-754 float64.
	assert.False(t, jsonval.Equal(a, b))

	c := jsonval.Double(1.0)
	d := jsonval.Double(1.0)
	assert.True(t, jsonval.Equal(c, d))
}

func TestArrayAndObjectEquality(t *testing.T) {
	a := jsonval.Arr(jsonval.Int(1), jsonval.Str("x"))
	b := jsonval.Arr(jsonval.Int(1), jsonval.Str("x"))
	c := jsonval.Arr(jsonval.Str("x"), jsonval.Int(1))
	assert.True(t, jsonval.Equal(a, b))
	assert.False(t, jsonval.Equal(a, c))

	o1 := jsonval.ObjFromPairs(
		jsonval.Pair{Key: "a", Value: jsonval.Int(1)},
		jsonval.Pair{Key: "b", Value: jsonval.Int(2)},
	)
	o2 := jsonval.ObjFromPairs(
		jsonval.Pair{Key: "b", Value: jsonval.Int(2)},
		jsonval.Pair{Key: "a", Value: jsonval.Int(1)},
	)
	assert.True(t, jsonval.Equal(o1, o2), "object equality must not depend on member order")
}

func TestHashEqualityConsistency(t *testing.T) {
	pairs := [][2]jsonval.Value{
		{jsonval.Int(1), jsonval.Double(1.0)},
		{jsonval.Null(), jsonval.Null()},
		{jsonval.Bool(true), jsonval.Bool(true)},
		{jsonval.Str("a"), jsonval.Str("a")},
		{jsonval.Arr(), jsonval.Arr()},
		{jsonval.NewObject(), jsonval.NewObject()},
	}
	for _, p := range pairs {
		if jsonval.Equal(p[0], p[1]) {
			assert.Equal(t, jsonval.Hash(p[0]), jsonval.Hash(p[1]))
		}
	}
}

func TestPrimitiveTypeLattice(t *testing.T) {
	for _, ty := range jsonval.PrimitiveTypes {
		assert.True(t, jsonval.IsA(ty, ty))
	}
	assert.True(t, jsonval.IsA("integer", "number"))
	assert.False(t, jsonval.IsA("number", "integer"))
	assert.False(t, jsonval.IsA("string", "number"))
}

func TestNumberCompareTotalOrder(t *testing.T) {
	cases := []struct {
		a, b jsonval.Value
	}{
		{jsonval.Int(1), jsonval.Int(2)},
		{jsonval.Int(2), jsonval.Double(1.5)},
		{jsonval.Double(1.5), jsonval.Double(1.5)},
	}
	for _, c := range cases {
		cmp1, ok1 := jsonval.Compare(c.a, c.b)
		cmp2, ok2 := jsonval.Compare(c.b, c.a)
		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.Equal(t, -cmp1, cmp2)
	}
}

func TestNumberStringRoundTripsVariant(t *testing.T) {
	assert.Equal(t, "1", jsonval.NumberString(jsonval.Int(1)))
	assert.Equal(t, "1.0", jsonval.NumberString(jsonval.Double(1.0)))
	assert.Equal(t, "1.5", jsonval.NumberString(jsonval.Double(1.5)))
}
