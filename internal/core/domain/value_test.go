package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockscan/internal/core/domain"
)

func TestObject_SetKeepsFirstPosition(t *testing.T) {
	obj := domain.NewObject()
	obj.Set("a", domain.Number("1"))
	obj.Set("b", domain.Bool(true))
	obj.Set("a", domain.String("last"))

	assert.Equal(t, 2, obj.Len())
	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	v, ok := obj.Get("a")
	require.True(t, ok)
	s, ok := v.AsString()
	require.True(t, ok)
	assert.Equal(t, "last", s)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObject_RangeStops(t *testing.T) {
	obj := domain.NewObject()
	obj.Set("x", domain.Null())
	obj.Set("y", domain.Null())

	var seen []string
	obj.Range(func(key string, _ domain.Value) bool {
		seen = append(seen, key)
		return false
	})
	assert.Equal(t, []string{"x"}, seen)
}

func TestValue_Accessors(t *testing.T) {
	assert.Equal(t, domain.NullValue, domain.Value{}.Type())
	assert.Equal(t, "null", domain.Null().Type().String())

	_, ok := domain.Null().AsString()
	assert.False(t, ok)

	n, ok := domain.Number("1e3").AsNumber()
	require.True(t, ok)
	assert.Equal(t, "1e3", n)

	b, ok := domain.Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	arr, ok := domain.Array([]domain.Value{domain.String("a")}).AsArray()
	require.True(t, ok)
	assert.Len(t, arr, 1)

	obj, ok := domain.ObjectOf(nil).AsObject()
	require.True(t, ok)
	assert.Equal(t, 0, obj.Len())

	_, ok = domain.String("x").AsObject()
	assert.False(t, ok)
	assert.Equal(t, "object", domain.ObjectOf(nil).Type().String())
}
