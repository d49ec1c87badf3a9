package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterLookup(t *testing.T) {
	var r Registry

	a := r.Register("a")
	b := r.Register("b")
	require.NotZero(t, a)
	require.NotZero(t, b)
	require.NotEqual(t, a, b)

	v, ok := r.Lookup(a)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = r.Lookup(b)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestRegistryStaleLookup(t *testing.T) {
	var r Registry

	id := r.Register("a")
	r.Release(id)

	_, ok := r.Lookup(id)
	assert.False(t, ok, "released handle still resolves")
}

func TestRegistryZeroAndOutOfRange(t *testing.T) {
	var r Registry
	r.Register("a")

	_, ok := r.Lookup(0)
	assert.False(t, ok)

	_, ok = r.Lookup(42)
	assert.False(t, ok)
}

func TestRegistrySlotReuse(t *testing.T) {
	var r Registry

	a := r.Register("a")
	b := r.Register("b")
	r.Release(a)

	c := r.Register("c")
	assert.Equal(t, a, c, "freed slot was not reused")

	v, ok := r.Lookup(c)
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	v, ok = r.Lookup(b)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestRegistryDoubleRelease(t *testing.T) {
	var r Registry

	a := r.Register("a")
	r.Release(a)
	r.Release(a)

	b := r.Register("b")
	c := r.Register("c")
	assert.Equal(t, a, b, "freed slot was not reused")
	assert.NotEqual(t, b, c, "double release duplicated a free slot")
}
