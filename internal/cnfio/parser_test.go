package cnfio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturn/internal/clause"
	"saturn/internal/deriv"
	"saturn/internal/sig"
	"saturn/internal/term"
)

func TestParseClausesBasicAxiom(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	src := []byte(`cnf(a1, axiom, p(X) | ~q(f(X,a))).`)
	results, errs := ParseClauses("a1.p", src, tb, s)
	require.Empty(t, errs)
	require.Len(t, results, 1)

	c := results[0].Clause
	assert.Equal(t, "a1", results[0].Name)
	assert.Equal(t, 1, c.PosCount)
	assert.Equal(t, 1, c.NegCount)
	assert.NotZero(t, c.Properties&clause.PropInitial)
}

func TestParseClausesEquationalLiteral(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	src := []byte(`cnf(e1, axiom, f(X) = g(X,X)).`)
	results, errs := ParseClauses("e1.p", src, tb, s)
	require.Empty(t, errs)
	require.Len(t, results, 1)
	lits := results[0].Clause.Literals
	require.Len(t, lits, 1)
	assert.True(t, lits[0].Positive)
}

func TestParseClausesNegatedConjectureMarksProperty(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	src := []byte(`cnf(goal, negated_conjecture, ~p(a)).`)
	results, errs := ParseClauses("g.p", src, tb, s)
	require.Empty(t, errs)
	c := results[0].Clause
	assert.NotZero(t, c.Properties&clause.PropConjecture)
}

func TestParseClausesVariablesAreClauseScoped(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	src := []byte(`cnf(c1, axiom, p(X)).
cnf(c2, axiom, q(X)).`)
	results, errs := ParseClauses("two.p", src, tb, s)
	require.Empty(t, errs)
	require.Len(t, results, 2)

	v1 := results[0].Clause.Literals[0].Left
	v2 := results[1].Clause.Literals[0].Left
	n1 := tb.Node(v1)
	n2 := tb.Node(v2)
	require.True(t, n1.IsVar)
	require.True(t, n2.IsVar)
	assert.Equal(t, 0, n1.VarIndex)
	assert.Equal(t, 0, n2.VarIndex, "each clause's first variable starts its own scope at index 0")
}

func TestParseClausesDuplicateNameIsReported(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	src := []byte(`cnf(dup, axiom, p(a)).
cnf(dup, axiom, q(a)).`)
	results, errs := ParseClauses("dup.p", src, tb, s)
	require.Len(t, results, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "E0003", errs[0].Code)
}

func TestParseClausesMalformedInputReportsPosition(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	src := []byte(`cnf(bad axiom, p(a)).`)
	results, errs := ParseClauses("bad.p", src, tb, s)
	assert.Nil(t, results)
	require.Len(t, errs, 1)
	assert.Equal(t, "bad.p", errs[0].Position.Filename)
}

func TestParseClausesArityMismatchIsReported(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	src := []byte(`cnf(c1, axiom, p(a)).
cnf(c2, axiom, p(a,b)).`)
	results, errs := ParseClauses("arity.p", src, tb, s)
	require.Len(t, results, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "E0100", errs[0].Code)
}

func TestPrintRoundTripsThroughParse(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	src := []byte(`cnf(a1, axiom, p(X) | ~q(f(X,a))).
cnf(a2, axiom, q(f(Y,a))).`)
	results, errs := ParseClauses("rt.p", src, tb, s)
	require.Empty(t, errs)
	require.Len(t, results, 2)

	lookup := map[clause.ID]*clause.Clause{}
	for _, r := range results {
		lookup[r.Clause.Ident] = r.Clause
		r.Clause.PushDerivation(deriv.NewQuote())
	}

	reparsed := 0
	for _, r := range results {
		d := deriv.Compute(r.Clause, func(id clause.ID) *clause.Clause { return lookup[id] })
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, tb, s, d))
		again, errs2 := ParseClauses("rt2.p", buf.Bytes(), tb, s)
		require.Empty(t, errs2)
		reparsed += len(again)
	}
	assert.Equal(t, 2, reparsed)
}
