package lit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturn/internal/order"
	"saturn/internal/sig"
	"saturn/internal/term"
)

func setup(t *testing.T) (*term.Bank, *sig.Signature, *order.OCB) {
	t.Helper()
	s := sig.New()
	s.Intern("a", 0, false)
	s.Intern("b", 0, false)
	s.Intern("f", 1, false)
	b := term.NewBank(nil)
	prec := order.NewPrecedence(s)
	return b, s, order.NewOCB(b, prec)
}

func build(s *sig.Signature, b *term.Bank, name string, args ...term.ID) term.ID {
	e, _ := s.ByName(name)
	return b.Build(e.Code, args...)
}

func TestNewAtomEncodesAsEqualsTrue(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	e := NewAtom(b, s, a, true)
	assert.False(t, e.IsEquational(b))
}

func TestNewEquationalIsEquational(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	bb := build(s, b, "b")
	e := NewEquational(a, bb, true)
	assert.True(t, e.IsEquational(b))
}

func TestOrientSwapsSmallerSideLeft(t *testing.T) {
	b, s, o := setup(t)
	a := build(s, b, "a")
	fa := build(s, b, "f", a)

	e := NewEquational(a, fa, true)
	e.Orient(o)
	assert.True(t, e.Oriented())
	assert.Equal(t, fa, e.Left)
	assert.Equal(t, a, e.Right)
}

func TestEqualIsOrderInsensitiveForEquations(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	bb := build(s, b, "b")

	e1 := NewEquational(a, bb, true)
	e2 := NewEquational(bb, a, true)
	assert.True(t, e1.Equal(e2))
}

func TestResolvableRequiresOppositeSignsSameAtom(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	pos := NewAtom(b, s, a, true)
	neg := NewAtom(b, s, a, false)
	assert.True(t, pos.Resolvable(neg))

	other := NewAtom(b, s, a, true)
	assert.False(t, pos.Resolvable(other))
}

func TestIsTrivialDetectsReflexiveEquation(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	assert.True(t, NewEquational(a, a, true).IsTrivial())
	assert.False(t, NewEquational(a, a, false).IsTrivial())
}

func TestApplySubstitutesBothSides(t *testing.T) {
	b, s, _ := setup(t)
	x := b.Vars().Get(1, 0)
	a := build(s, b, "a")
	e := NewEquational(x, a, true)

	subst := term.Substitution{x: a}
	applied := e.Apply(b, subst)
	assert.Equal(t, a, applied.Left)
	assert.Equal(t, a, applied.Right)
}

func TestCopyResetsFlags(t *testing.T) {
	b, s, o := setup(t)
	a := build(s, b, "a")
	fa := build(s, b, "f", a)
	e := NewEquational(fa, a, true)
	e.Orient(o)
	assert.True(t, e.Oriented())

	cp := e.Copy()
	assert.False(t, cp.Oriented())
	assert.Equal(t, e.Left, cp.Left)
	assert.Equal(t, e.Right, cp.Right)
}
