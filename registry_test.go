package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry[int]()
	require.NoError(t, r.Register(MustParseIdentifier("b:x"), 1))
	require.NoError(t, r.Register(MustParseIdentifier("a:y"), 2))
	require.NoError(t, r.Register(MustParseIdentifier("a:x"), 3))

	v, ok := r.Get(MustParseIdentifier("a:y"))
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = r.Get(MustParseIdentifier("c:z"))
	assert.False(t, ok)

	assert.Equal(t, []Identifier{
		MustParseIdentifier("a:x"),
		MustParseIdentifier("a:y"),
		MustParseIdentifier("b:x"),
	}, r.IDs())
	assert.Equal(t, 3, r.Len())
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry[string]()
	id := MustParseIdentifier("mymod:thing")
	require.NoError(t, r.Register(id, "first"))

	err := r.Register(id, "second")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	v, _ := r.Get(id)
	assert.Equal(t, "first", v)
}

func TestRegistryZeroIdentifier(t *testing.T) {
	r := NewRegistry[int]()
	assert.Error(t, r.Register(Identifier{}, 1))
	assert.Equal(t, 0, r.Len())
}

func TestDefaultFactories(t *testing.T) {
	f := DefaultFactories()
	assert.Equal(t, []Identifier{FPSFactory, RectFactory, TextFactory}, f.IDs())
}
