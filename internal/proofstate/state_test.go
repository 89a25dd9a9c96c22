package proofstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturn/internal/clause"
	"saturn/internal/control"
	"saturn/internal/lit"
	"saturn/internal/order"
	"saturn/internal/sig"
	"saturn/internal/term"
)

func newTestState(t *testing.T) (*State, *sig.Signature) {
	t.Helper()
	s := sig.New()
	s.Intern("a", 0, false)
	s.Intern("b", 0, false)
	s.Intern("f", 1, false)
	s.Intern("p", 1, true)
	b := term.NewBank(nil)
	prec := order.NewPrecedence(s)
	ocb := order.NewOCB(b, prec)
	st := New(b, s, ocb, control.Default())
	return st, s
}

func build(s *sig.Signature, b *term.Bank, name string, args ...term.ID) term.ID {
	e, _ := s.ByName(name)
	return b.Build(e.Code, args...)
}

// An empty clause set saturates immediately (spec.md §8 "Empty clause
// set: saturation returns SATURATED immediately").
func TestRunOnEmptyClauseSetSaturatesImmediately(t *testing.T) {
	st, _ := newTestState(t)
	result, refutation := st.Run(context.Background())
	assert.Equal(t, SaturatedComplete, result)
	assert.Nil(t, refutation)
}

// A bare empty clause fed in directly is picked and reported as SUCCESS
// on the very first step.
func TestRunOnInitialEmptyClauseSucceedsImmediately(t *testing.T) {
	st, _ := newTestState(t)
	empty := clause.New(1, nil, 0)
	st.AddInitial(empty)

	result, refutation := st.Run(context.Background())
	require.Equal(t, Success, result)
	require.NotNil(t, refutation)
	assert.Empty(t, refutation.Literals)
}

// A trivial X = X unit is a cheap tautology and must never reach a
// processed set; saturation then reports SATURATED-COMPLETE since
// nothing else remains.
func TestRunDiscardsTrivialTautologyAndSaturates(t *testing.T) {
	st, _ := newTestState(t)
	x := st.Bank.Vars().Get(0, 0)
	taut := clause.New(1, []*lit.Eqn{lit.NewEquational(x, x, true)}, 0)
	st.AddInitial(taut)

	result, refutation := st.Run(context.Background())
	assert.Equal(t, SaturatedComplete, result)
	assert.Nil(t, refutation)
	assert.Zero(t, st.PosRules.Size())
	assert.Zero(t, st.PosEqs.Size())
}

// p(a), ~p(a) yield the empty clause through the given-clause loop:
// once p(a) is processed as the oriented demodulator p(a) = $true,
// forward contraction rewrites the given ~p(a) to $true != $true, and
// equality resolution on that literal generates the empty clause.
func TestRunRefutesComplementaryUnitClauses(t *testing.T) {
	st, s := newTestState(t)
	a := build(s, st.Bank, "a")
	pa := build(s, st.Bank, "p", a)

	pos := clause.New(1, []*lit.Eqn{lit.NewAtom(st.Bank, s, pa, true)}, 0)
	neg := clause.New(2, []*lit.Eqn{lit.NewAtom(st.Bank, s, pa, false)}, 0)
	st.AddInitial(pos)
	st.AddInitial(neg)

	result, refutation := st.Run(context.Background())
	require.Equal(t, Success, result)
	require.NotNil(t, refutation)
	assert.Empty(t, refutation.Literals)
}

// Budget exhaustion is reported as RESOURCE-OUT without ever reaching a
// verdict (spec.md §8 scenario 6 "Resource-out").
func TestRunReportsResourceOutOnStepBudget(t *testing.T) {
	st, s := newTestState(t)
	a := build(s, st.Bank, "a")
	b2 := build(s, st.Bank, "b")
	fa := build(s, st.Bank, "f", a)
	eq := clause.New(1, []*lit.Eqn{lit.NewEquational(fa, b2, true)}, 0)
	st.AddInitial(eq)
	st.Budgets.MaxSteps = 1

	result, refutation := st.Run(context.Background())
	assert.Equal(t, ResourceOut, result)
	assert.Nil(t, refutation)
}

// Cancelling the context before Run ever picks a clause is reported as
// TIMEOUT (spec.md §4.6 "Cancellation... time-is-up").
func TestRunReportsTimeoutOnCancelledContext(t *testing.T) {
	st, s := newTestState(t)
	a := build(s, st.Bank, "a")
	pa := build(s, st.Bank, "p", a)
	st.AddInitial(clause.New(1, []*lit.Eqn{lit.NewAtom(st.Bank, s, pa, true)}, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, refutation := st.Run(ctx)
	assert.Equal(t, Timeout, result)
	assert.Nil(t, refutation)
}

func TestClassifyOrientedUnitGoesToPosRules(t *testing.T) {
	st, s := newTestState(t)
	a := build(s, st.Bank, "a")
	fa := build(s, st.Bank, "f", a)
	c := clause.New(1, []*lit.Eqn{lit.NewEquational(fa, a, true)}, 0)
	c.MaximalLiterals(st.Order)

	require.Equal(t, st.PosRules, st.classify(c))
}

func TestDerivationRoundTripsThroughLookup(t *testing.T) {
	st, _ := newTestState(t)
	root := clause.New(1, nil, 0)
	st.byID[root.Ident] = root

	d := st.Derivation(root)
	require.Len(t, d.Nodes, 1)
	assert.Same(t, root, d.Nodes[0].Clause)
}
