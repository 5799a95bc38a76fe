package strset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjs-tools/draftfuzz/strset"
)

func TestUnionCommutativeAssociativeIdempotent(t *testing.T) {
	a := strset.FromSlice([]string{"a", "b"})
	b := strset.FromSlice([]string{"b", "c"})
	c := strset.FromSlice([]string{"c", "d"})

	assert.True(t, a.Union(b).Equal(b.Union(a)))
	assert.True(t, a.Union(b).Union(c).Equal(a.Union(b.Union(c))))
	assert.True(t, a.Union(a).Equal(a))
	assert.Equal(t, a.Union(b).Hash(), b.Union(a).Hash())
}

func TestContainsAndLen(t *testing.T) {
	s := strset.FromSlice([]string{"x", "y", "y"})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("x"))
	assert.False(t, s.Contains("z"))
}

func TestClosureIsLeastFixedPointAndExtensive(t *testing.T) {
	deps := map[string][]string{
		"a": {"b"},
		"b": {"c"},
	}
	seed := strset.Singleton("a")
	closed := strset.Closure(seed, deps)

	assert.True(t, closed.Contains("a"))
	assert.True(t, closed.Contains("b"))
	assert.True(t, closed.Contains("c"))

	// Extensive: closure(S) ⊇ S.
	assert.True(t, closed.Contains("a"))

	// Fixed point: closure(closure(S)) == closure(S).
	again := strset.Closure(closed, deps)
	assert.True(t, again.Equal(closed))
}

func TestClosureIgnoresUnknownKeys(t *testing.T) {
	closed := strset.Closure(strset.FromSlice([]string{"x"}), map[string][]string{})
	assert.True(t, closed.Equal(strset.Singleton("x")))
}

func TestEmptySet(t *testing.T) {
	e := strset.Empty()
	assert.Equal(t, 0, e.Len())
	assert.True(t, e.Equal(strset.FromSlice(nil)))
}
