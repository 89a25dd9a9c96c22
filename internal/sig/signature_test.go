package sig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIsIdempotent(t *testing.T) {
	s := New()
	a := s.Intern("f", 2, false)
	b := s.Intern("f", 2, false)
	assert.Same(t, a, b)
}

func TestInternStrictRejectsArityMismatch(t *testing.T) {
	s := New()
	_, err := s.InternStrict("f", 1, false)
	require.NoError(t, err)

	_, err = s.InternStrict("f", 2, false)
	require.Error(t, err)
}

func TestReservedBuiltinsPresent(t *testing.T) {
	s := New()
	eq, ok := s.ByName("=")
	require.True(t, ok)
	assert.Equal(t, Equality, eq.Code)
	assert.True(t, eq.IsPredicate())
}

func TestMintSkolemNeverCollides(t *testing.T) {
	s := New()
	s.Intern("sk", 0, false)
	e := s.MintSkolem("sk", 1)
	assert.Equal(t, "sk_1", e.Name)
}
