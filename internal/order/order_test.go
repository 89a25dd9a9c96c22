package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturn/internal/sig"
	"saturn/internal/term"
)

func setup(t *testing.T) (*term.Bank, *sig.Signature, *OCB) {
	t.Helper()
	s := sig.New()
	s.Intern("a", 0, false)
	s.Intern("f", 1, false)
	s.Intern("g", 1, false)
	b := term.NewBank(nil)
	prec := NewPrecedence(s)
	return b, s, NewOCB(b, prec)
}

func build(s *sig.Signature, b *term.Bank, name string, args ...term.ID) term.ID {
	e, _ := s.ByName(name)
	return b.Build(e.Code, args...)
}

func TestLPOVariableNeverGreaterThanNonvariable(t *testing.T) {
	b, s, o := setup(t)
	x := b.Vars().Get(1, 0)
	a := build(s, b, "a")

	assert.Equal(t, Incomparable, o.Compare(x, a, DerefNever))
	fx := build(s, b, "f", x)
	assert.Equal(t, Greater, o.Compare(fx, x, DerefNever), "f(x) > x since x occurs in f(x)")
}

func TestLPOSubtermIsGreater(t *testing.T) {
	b, s, o := setup(t)
	a := build(s, b, "a")
	fa := build(s, b, "f", a)

	assert.Equal(t, Greater, o.Compare(fa, a, DerefNever), "f(a) > its proper subterm a")
	assert.Equal(t, Lesser, o.Compare(a, fa, DerefNever))
}

func TestLPOPrecedenceDrivesComparisonOnDistinctHeads(t *testing.T) {
	b, s, o := setup(t)
	a := build(s, b, "a")
	fa := build(s, b, "f", a)
	ga := build(s, b, "g", a)

	fEntry, _ := s.ByName("f")
	gEntry, _ := s.ByName("g")
	o.Precedence.SetExplicit(fEntry.Code, 10)
	o.Precedence.SetExplicit(gEntry.Code, 1)

	assert.Equal(t, Greater, o.Compare(fa, ga, DerefNever))
}

func TestLPOReflexiveIsEqual(t *testing.T) {
	b, s, o := setup(t)
	a := build(s, b, "a")
	assert.Equal(t, Equal, o.Compare(a, a, DerefNever))
}

func TestLPODepthBoundReportsIncomparable(t *testing.T) {
	b, s, o := setup(t)
	o.MaxDepth = 0 // unbounded baseline first
	a := build(s, b, "a")
	deep := a
	deepG := build(s, b, "g", a)
	for i := 0; i < 50; i++ {
		deep = build(s, b, "f", deep)
		deepG = build(s, b, "f", deepG)
	}
	o.MaxDepth = 3
	assert.Equal(t, Incomparable, o.Compare(deepG, deep, DerefNever))
}
