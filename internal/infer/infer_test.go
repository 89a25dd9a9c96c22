package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturn/internal/clause"
	"saturn/internal/lit"
	"saturn/internal/order"
	"saturn/internal/sig"
	"saturn/internal/term"
)

func setupCtx(t *testing.T) (*Context, *sig.Signature) {
	t.Helper()
	s := sig.New()
	s.Intern("a", 0, false)
	s.Intern("b", 0, false)
	s.Intern("c", 0, false)
	s.Intern("f", 1, false)
	s.Intern("g", 1, false)
	s.Intern("p", 1, true)
	b := term.NewBank(nil)
	prec := order.NewPrecedence(s)
	o := order.NewOCB(b, prec)

	id := clause.ID(100)
	created := 0
	ctx := &Context{
		Bank:  b,
		Sig:   s,
		Order: o,
		NextClauseID: func() clause.ID {
			id++
			return id
		},
		NextCreated: func() int {
			created++
			return created
		},
	}
	return ctx, s
}

func build(s *sig.Signature, b *term.Bank, name string, args ...term.ID) term.ID {
	e, _ := s.ByName(name)
	return b.Build(e.Code, args...)
}

func TestEqualityResolutionRemovesSolvedLiteral(t *testing.T) {
	ctx, s := setupCtx(t)
	x := ctx.Bank.Vars().Get(0, 0)
	a := build(s, ctx.Bank, "a")
	pa := build(s, ctx.Bank, "p", a)

	lits := []*lit.Eqn{
		lit.NewEquational(x, a, false),
		lit.NewAtom(ctx.Bank, s, pa, true),
	}
	c := clause.New(1, lits, 0)
	c.MaximalLiterals(ctx.Order)

	rule := EqualityResolution{}
	results := rule.Generate(ctx, c, nil)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Literals, 1)
}

func TestEqualityFactoringProducesExpectedShape(t *testing.T) {
	ctx, s := setupCtx(t)
	x := ctx.Bank.Vars().Get(0, 0)
	a := build(s, ctx.Bank, "a")
	b2 := build(s, ctx.Bank, "b")

	lits := []*lit.Eqn{
		lit.NewEquational(x, a, true),
		lit.NewEquational(x, b2, true),
	}
	c := clause.New(1, lits, 0)
	c.MaximalLiterals(ctx.Order)

	rule := EqualityFactoring{}
	results := rule.Generate(ctx, c, nil)
	for _, r := range results {
		assert.LessOrEqual(t, len(r.Literals), 2)
	}
}

func TestParamodulationRewritesIntoClause(t *testing.T) {
	ctx, s := setupCtx(t)
	a := build(s, ctx.Bank, "a")
	b2 := build(s, ctx.Bank, "b")
	fa := build(s, ctx.Bank, "f", a)
	pfa := build(s, ctx.Bank, "p", fa)

	from := clause.New(1, []*lit.Eqn{lit.NewEquational(fa, b2, true)}, 0)
	from.MaximalLiterals(ctx.Order)
	into := clause.New(2, []*lit.Eqn{lit.NewAtom(ctx.Bank, s, pfa, true)}, 0)
	into.MaximalLiterals(ctx.Order)

	rule := Paramodulation{Variant: Plain}
	results := rule.Generate(ctx, from, into)
	found := false
	for _, r := range results {
		for _, l := range r.Literals {
			if l.Left == build(s, ctx.Bank, "p", b2) {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a conclusion with p(b) after rewriting f(a) to b")
}

func TestSubsumesRecognizesInstanceSubmultiset(t *testing.T) {
	ctx, s := setupCtx(t)
	x := ctx.Bank.Vars().Get(0, 0)
	a := build(s, ctx.Bank, "a")
	pa := build(s, ctx.Bank, "p", a)
	px := build(s, ctx.Bank, "p", x)

	smaller := clause.New(1, []*lit.Eqn{lit.NewAtom(ctx.Bank, s, px, true)}, 0)
	larger := clause.New(2, []*lit.Eqn{
		lit.NewAtom(ctx.Bank, s, pa, true),
		lit.NewEquational(a, a, false),
	}, 0)

	assert.True(t, Subsumes(ctx, smaller, larger))
}

func TestSubsumesRejectsNonMatchingSign(t *testing.T) {
	ctx, s := setupCtx(t)
	a := build(s, ctx.Bank, "a")
	pa := build(s, ctx.Bank, "p", a)

	smaller := clause.New(1, []*lit.Eqn{lit.NewAtom(ctx.Bank, s, pa, true)}, 0)
	larger := clause.New(2, []*lit.Eqn{lit.NewAtom(ctx.Bank, s, pa, false)}, 0)

	assert.False(t, Subsumes(ctx, smaller, larger))
}

func TestGroundCompletionTautologyDetectsAcyclicChain(t *testing.T) {
	ctx, s := setupCtx(t)
	a := build(s, ctx.Bank, "a")
	b2 := build(s, ctx.Bank, "b")
	c2 := build(s, ctx.Bank, "c")

	// a = b or b = c or a != c
	cl := clause.New(1, []*lit.Eqn{
		lit.NewEquational(a, b2, true),
		lit.NewEquational(b2, c2, true),
		lit.NewEquational(a, c2, false),
	}, 0)

	assert.True(t, IsGroundCompletionTautology(ctx, cl, DefaultTautologyCheckLiteralCap))
}

func TestMinimumNegativeSelectsLighterLiteral(t *testing.T) {
	ctx, s := setupCtx(t)
	a := build(s, ctx.Bank, "a")
	fa := build(s, ctx.Bank, "f", a)
	pa := build(s, ctx.Bank, "p", a)
	pfa := build(s, ctx.Bank, "p", fa)

	l1 := lit.NewAtom(ctx.Bank, s, pa, false)
	l2 := lit.NewAtom(ctx.Bank, s, pfa, false)
	c := clause.New(1, []*lit.Eqn{l1, l2}, 0)

	MinimumNegative{}.Select(ctx.Bank, s, c)
	selectedCount := 0
	for _, l := range c.Literals {
		if l.Selected() {
			selectedCount++
		}
	}
	assert.Equal(t, 1, selectedCount)
}
