// Package satbridge is the SAT-solver collaborator spec.md §6 names
// ("the core offers... a seam for an external ground/propositional
// consistency check"): it pseudo-grounds a batch of clauses to
// propositional literals, hands them to github.com/irifrance/gini, and
// translates a returned unsat core back into first-order clause ids.
// Grounded on the operator-lifecycle-manager dependency resolver's
// sat/dict.go (the translation dictionary between domain objects and
// z.Lit) and sat/solve.go (assumption-based incremental solving with a
// context.Context deadline), generalized from "installable packages"
// to "ground clause literals".
package satbridge

import (
	"context"
	"time"

	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"saturn/internal/clause"
	"saturn/internal/sig"
	"saturn/internal/term"
)

// Literal is one ground, ungrounded-variable-free disjunct: an atom
// term id plus sign.
type Literal struct {
	Atom     term.ID
	Positive bool
}

// GroundClause is a clause reduced to propositional shape, tagged with
// the clause.ID it was built from so an unsat core can be mapped back.
type GroundClause struct {
	ID       clause.ID
	Literals []Literal
}

// Problem is a batch of ground clauses submitted to a Solver in one
// call (spec.md §4.5 "pseudo-grounding... a ground/propositional
// consistency check over the current temporary store").
type Problem struct {
	Clauses []GroundClause
}

// Ground pseudo-grounds cs by substituting every variable with a fixed
// per-type constant (spec.md §4.5a): each distinct VarType gets exactly
// one Skolem-like constant, minted once via sig.MintSkolem and reused
// for every occurrence of that type, so two clauses sharing a variable
// type collapse onto the same ground atom wherever their shapes match.
// This is a cheap syntactic approximation of groundness, not a sound
// Herbrand grounding; it is only ever used for the heuristic
// consistency check spec.md §4.5 describes, never for generating
// clauses fed back into the saturation loop.
func Ground(tb *term.Bank, s *sig.Signature, cs []*clause.Clause) Problem {
	consts := map[term.FunCode]term.ID{}
	groundOf := func(typ term.FunCode) term.ID {
		if id, ok := consts[typ]; ok {
			return id
		}
		entry := s.MintSkolem("gnd", 0)
		id := tb.Build(entry.Code)
		consts[typ] = id
		return id
	}

	var groundTerm func(id term.ID) term.ID
	groundTerm = func(id term.ID) term.ID {
		n := tb.Node(tb.Deref(id))
		if n.IsVar {
			return groundOf(n.VarType)
		}
		if len(n.Args) == 0 {
			return id
		}
		args := make([]term.ID, len(n.Args))
		for i, a := range n.Args {
			args[i] = groundTerm(a)
		}
		return tb.Build(n.Functor, args...)
	}

	problem := Problem{Clauses: make([]GroundClause, 0, len(cs))}
	for _, c := range cs {
		gc := GroundClause{ID: c.Ident, Literals: make([]Literal, 0, len(c.Literals))}
		for _, l := range c.Literals {
			atom := groundTerm(l.Left)
			if l.IsEquational(tb) {
				atom = tb.Build(sig.Equality, atom, groundTerm(l.Right))
			}
			gc.Literals = append(gc.Literals, Literal{Atom: atom, Positive: l.Positive})
		}
		problem.Clauses = append(problem.Clauses, gc)
	}
	return problem
}

// Verdict is the propositional outcome of a Solve call.
type Verdict int

const (
	Unknown Verdict = iota
	Satisfiable
	Unsatisfiable
)

// UnsatCore names the subset of submitted clauses that were sufficient
// to derive unsatisfiability (spec.md §4.5a "g.Why... maps back to
// original first-order clauses").
type UnsatCore []clause.ID

// Solver is the interface the saturation loop's optional SAT-check
// step calls through (spec.md §6); never invoked from inside the core
// generating-rule logic itself.
type Solver interface {
	Solve(ctx context.Context, problem Problem) (Verdict, UnsatCore, error)
}

type giniSolver struct{}

// NewGiniSolver returns the gini-backed Solver (spec.md §6).
func NewGiniSolver() Solver { return &giniSolver{} }

// Solve encodes problem with one selector literal per clause (the
// assumption-based unsat-core technique OLM's sat/solve.go uses for
// its cardinality constraints and applied constraints alike): clause i
// becomes `(not sel_i) | l1 | l2 | ...`, sel_i is assumed true, and on
// UNSAT gini's Why(nil) names exactly the assumptions that had to hold,
// which maps straight back to the clauses that caused the conflict.
func (g *giniSolver) Solve(ctx context.Context, problem Problem) (Verdict, UnsatCore, error) {
	s := gini.New()

	atoms := map[term.ID]z.Lit{}
	atomLit := func(a term.ID) z.Lit {
		if l, ok := atoms[a]; ok {
			return l
		}
		l := s.Lit()
		atoms[a] = l
		return l
	}

	selectorOf := map[z.Lit]clause.ID{}
	selectors := make([]z.Lit, 0, len(problem.Clauses))
	for _, c := range problem.Clauses {
		sel := s.Lit()
		selectorOf[sel] = c.ID
		selectors = append(selectors, sel)

		s.Add(sel.Not())
		for _, l := range c.Literals {
			m := atomLit(l.Atom)
			if !l.Positive {
				m = m.Not()
			}
			s.Add(m)
		}
		s.Add(z.LitNull)
	}
	s.Assume(selectors...)

	result := waitForSolve(ctx, s)
	switch result {
	case 1:
		return Satisfiable, nil, nil
	case -1:
		failed := s.Why(nil)
		core := make(UnsatCore, 0, len(failed))
		for _, f := range failed {
			if id, ok := selectorOf[f]; ok {
				core = append(core, id)
			}
		}
		return Unsatisfiable, core, nil
	default:
		return Unknown, nil, ctx.Err()
	}
}

// waitForSolve polls a background solve for a result or cancellation,
// mirroring OLM's sat/dict.go waitForSolution.
func waitForSolve(ctx context.Context, s *gini.Gini) int {
	gs := s.GoSolve()
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if res, ok := gs.Test(); ok {
				return res
			}
		}
	}
}
