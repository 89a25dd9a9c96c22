package satbridge

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturn/internal/clause"
	"saturn/internal/lit"
	"saturn/internal/sig"
	"saturn/internal/term"
)

// pigeonhole32 builds the classic unsatisfiable 3-pigeons-2-holes
// propositional problem (spec.md §8 scenario 2): every pigeon placed
// in at least one hole, no hole holding two pigeons.
func pigeonhole32(tb *term.Bank, s *sig.Signature) Problem {
	atom := func(pigeon, hole int) term.ID {
		entry := s.Intern(fmt.Sprintf("p_%d_%d", pigeon, hole), 0, false)
		return tb.Build(entry.Code)
	}

	var clauses []GroundClause
	id := clause.ID(1)
	for pigeon := 1; pigeon <= 3; pigeon++ {
		clauses = append(clauses, GroundClause{
			ID: id,
			Literals: []Literal{
				{Atom: atom(pigeon, 1), Positive: true},
				{Atom: atom(pigeon, 2), Positive: true},
			},
		})
		id++
	}
	for hole := 1; hole <= 2; hole++ {
		for i := 1; i <= 3; i++ {
			for j := i + 1; j <= 3; j++ {
				clauses = append(clauses, GroundClause{
					ID: id,
					Literals: []Literal{
						{Atom: atom(i, hole), Positive: false},
						{Atom: atom(j, hole), Positive: false},
					},
				})
				id++
			}
		}
	}
	return Problem{Clauses: clauses}
}

func TestGiniSolverFindsPigeonholeUnsatisfiable(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()
	problem := pigeonhole32(tb, s)

	solver := NewGiniSolver()
	verdict, core, err := solver.Solve(context.Background(), problem)

	require.NoError(t, err)
	assert.Equal(t, Unsatisfiable, verdict)
	assert.NotEmpty(t, core)
}

func TestGiniSolverFindsSatisfiableProblem(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()

	p := s.Intern("p", 0, false)
	q := s.Intern("q", 0, false)
	pa := tb.Build(p.Code)
	qa := tb.Build(q.Code)

	problem := Problem{Clauses: []GroundClause{
		{ID: 1, Literals: []Literal{{Atom: pa, Positive: true}}},
		{ID: 2, Literals: []Literal{{Atom: qa, Positive: true}}},
	}}

	solver := NewGiniSolver()
	verdict, core, err := solver.Solve(context.Background(), problem)

	require.NoError(t, err)
	assert.Equal(t, Satisfiable, verdict)
	assert.Empty(t, core)
}

func TestGroundReplacesVariablesWithPerTypeConstants(t *testing.T) {
	tb := term.NewBank(nil)
	s := sig.New()
	p := s.Intern("p", 1, true)

	x := tb.Vars().Get(0, 0)
	y := tb.Vars().Get(1, 0)
	c1 := clause.New(1, []*lit.Eqn{lit.NewAtom(tb, s, tb.Build(p.Code, x), true)}, 0)
	c2 := clause.New(2, []*lit.Eqn{lit.NewAtom(tb, s, tb.Build(p.Code, y), true)}, 0)

	problem := Ground(tb, s, []*clause.Clause{c1, c2})
	require.Len(t, problem.Clauses, 2)
	assert.Equal(t, problem.Clauses[0].Literals[0].Atom, problem.Clauses[1].Literals[0].Atom,
		"same-type variables ground to the same constant")
}
