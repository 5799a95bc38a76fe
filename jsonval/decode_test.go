package jsonval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjs-tools/draftfuzz/jsonval"
)

func TestParseDistinguishesIntegerAndDouble(t *testing.T) {
	i, err := jsonval.Parse([]byte("1"))
	require.NoError(t, err)
	assert.True(t, i.IsInt())

	d, err := jsonval.Parse([]byte("1.0"))
	require.NoError(t, err)
	assert.True(t, d.IsDouble())

	assert.True(t, jsonval.Equal(i, d))
}

func TestParseObjectPreservesInsertionOrder(t *testing.T) {
	v, err := jsonval.Parse([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)
	require.True(t, v.IsObject())
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())
}

func TestEncodeRoundTripsCompactly(t *testing.T) {
	v, err := jsonval.Parse([]byte(`{"a": [1, 2.0, "x", null, true]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2.0,"x",null,true]}`, jsonval.EncodeString(v))
}

func TestEncodeEscapesStrings(t *testing.T) {
	v := jsonval.Str("a\"b\\c\nd")
	assert.Equal(t, `"a\"b\\c\nd"`, jsonval.EncodeString(v))
}
