package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturn/internal/lit"
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
	s.Intern("p", 1, true)
	b := term.NewBank(nil)
	prec := order.NewPrecedence(s)
	return b, s, order.NewOCB(b, prec)
}

func build(s *sig.Signature, b *term.Bank, name string, args ...term.ID) term.ID {
	e, _ := s.ByName(name)
	return b.Build(e.Code, args...)
}

func TestNewSortsPositiveBeforeNegative(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	bb := build(s, b, "b")
	l1 := lit.NewEquational(a, bb, false)
	l2 := lit.NewEquational(a, bb, true)

	c := New(1, []*lit.Eqn{l1, l2}, 0)
	assert.True(t, c.Literals[0].Positive)
	assert.False(t, c.Literals[1].Positive)
	assert.Equal(t, 1, c.PosCount)
	assert.Equal(t, 1, c.NegCount)
}

func TestIsCheapTautologyDetectsTrivialEquation(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	c := New(1, []*lit.Eqn{lit.NewEquational(a, a, true)}, 0)
	assert.True(t, c.IsCheapTautology())
}

func TestIsCheapTautologyDetectsComplementaryPair(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	pa := build(s, b, "p", a)
	pos := lit.NewAtom(b, s, pa, true)
	neg := lit.NewAtom(b, s, pa, false)
	c := New(1, []*lit.Eqn{pos, neg}, 0)
	assert.True(t, c.IsCheapTautology())
}

func TestRemoveDuplicatesEnforcesI8(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	bb := build(s, b, "b")
	l1 := lit.NewEquational(a, bb, true)
	l2 := lit.NewEquational(a, bb, true)
	c := New(1, []*lit.Eqn{l1, l2}, 0)
	c.RemoveDuplicates()
	assert.Len(t, c.Literals, 1)
}

func TestCopyProducesVariableDisjointClause(t *testing.T) {
	b, s, _ := setup(t)
	x := b.Vars().Get(0, 0)
	fx := build(s, b, "f", x)
	c := New(1, []*lit.Eqn{lit.NewEquational(x, fx, true)}, 0)

	cp := c.Copy(b, 2, 1)
	origVars := b.VarsIn(c.Literals[0].Left)
	newVars := b.VarsIn(cp.Literals[0].Left)
	assert.NotEqual(t, origVars[0], newVars[0])
}

func TestMaximalLiteralsMarksLargerSideMaximal(t *testing.T) {
	b, s, o := setup(t)
	a := build(s, b, "a")
	fa := build(s, b, "f", a)

	l1 := lit.NewEquational(fa, a, true) // bigger term
	l2 := lit.NewEquational(a, a, false)
	c := New(1, []*lit.Eqn{l1, l2}, 0)
	c.MaximalLiterals(o)

	assert.True(t, l1.Maximal())
}

func TestSetInsertAndExtractMaintainSizeAndOwnership(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	c := New(1, []*lit.Eqn{lit.NewEquational(a, a, false)}, 0)

	set := NewSet()
	set.Insert(c)
	assert.Equal(t, 1, set.Size())
	assert.Len(t, set.All(), 1)

	set.Extract(c)
	assert.Equal(t, 0, set.Size())
}

func TestFeatureIndexCandidatesRequireDomination(t *testing.T) {
	b, s, _ := setup(t)
	a := build(s, b, "a")
	bb := build(s, b, "b")

	unit := New(1, []*lit.Eqn{lit.NewEquational(a, bb, true)}, 0)
	bigger := New(2, []*lit.Eqn{lit.NewEquational(a, bb, true), lit.NewEquational(bb, a, false)}, 0)

	set := NewSet()
	set.Insert(unit)
	set.Insert(bigger)

	idx := set.SubsumptionIndex(b)
	candidates := idx.Candidates(b, bigger)
	found := false
	for _, c := range candidates {
		if c == unit {
			found = true
		}
	}
	assert.True(t, found, "unit clause's smaller feature vector should not be ruled out as a subsumer of the larger clause")
}
