package proofstate

import (
	"context"

	"saturn/internal/clause"
	"saturn/internal/deriv"
	"saturn/internal/satbridge"
)

// Solver is the SAT-solver collaborator seam (spec.md §6 "Outbound to
// the SAT solver"); satbridge.Solver satisfies it directly, kept as a
// separate named type here so proofstate's public surface does not
// force every caller to import satbridge just to call SetSolver.
type Solver = satbridge.Solver

// satCheck implements spec.md §4.6 step 10 "Optional SAT check at
// configured intervals": pseudo-grounds every currently live clause and
// asks the solver collaborator for a propositional verdict. UNSAT
// yields a synthesized empty clause whose derivation cites the unsat
// core (spec.md §4.5 "the returned unsatisfiable core identifies first-
// order parents that together imply the empty clause"), reusing
// OpSplitEquiv as SPEC_FULL.md §4.5a documents (no new derivation code
// is introduced, keeping spec.md §3's closed alphabet closed).
// Satisfiable or Unknown verdicts mean "the run continues" (spec.md
// §4.5) — satCheck returns nil in both cases.
func (st *State) satCheck(ctx context.Context) *clause.Clause {
	if st.solver == nil {
		return nil
	}
	live := append(st.allProcessed(), st.Unprocessed.All()...)
	if len(live) == 0 {
		return nil
	}
	problem := satbridge.Ground(st.Bank, st.Sig, live)
	verdict, core, err := st.solver.Solve(ctx, problem)
	if err != nil || verdict != satbridge.Unsatisfiable || len(core) == 0 {
		return nil
	}

	empty := clause.New(st.allocID(), nil, st.tick())
	parents := make([]clause.ID, len(core))
	copy(parents, core)
	empty.PushDerivation(deriv.NewRecord(deriv.OpSplitEquiv, parents...))
	st.byID[empty.Ident] = empty
	return empty
}
