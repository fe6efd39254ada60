package idempotency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateResourceNotIdempotent(t *testing.T) {
	first := CreateResource(10)
	second := CreateResource(10)

	// Same value, distinct resources.
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Value, second.Value)
}

func TestEnsureResourceExistsIdempotent(t *testing.T) {
	initial := EnsureResourceExists(5, nil)
	require.NotNil(t, initial)
	assert.Equal(t, 5, initial.Value)

	afterFirst := EnsureResourceExists(5, initial)
	afterSecond := EnsureResourceExists(5, afterFirst)

	assert.Same(t, initial, afterFirst)
	assert.Same(t, afterFirst, afterSecond)
	assert.Equal(t, 5, initial.Value)

	// A different value is a different request: a new resource is created.
	replaced := EnsureResourceExists(10, initial)
	assert.NotSame(t, initial, replaced)
	assert.Equal(t, 10, replaced.Value)
}

func TestIncrementResourceValueNotIdempotent(t *testing.T) {
	r := &Resource{Value: 0}

	IncrementResourceValue(r)
	assert.Equal(t, 1, r.Value)

	IncrementResourceValue(r)
	assert.Equal(t, 2, r.Value)
}

func TestSetResourceValueIdempotent(t *testing.T) {
	r := &Resource{Value: 0}

	for i := 0; i < 3; i++ {
		SetResourceValue(r, 10)
		assert.Equal(t, 10, r.Value)
	}
}
