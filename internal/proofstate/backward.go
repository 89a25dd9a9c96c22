package proofstate

import "saturn/internal/clause"

// backwardContract implements spec.md §4.6 step 5 "Backward-contract:
// use the newly accepted clause to simplify or delete already-processed
// clauses." given has just been classified into its processed set
// (step 6 happens before generation in the loop below, but backward
// contraction itself only needs given to already be a live demodulator/
// unit/subsumer candidate, which classify satisfies immediately). Every
// other processed clause is re-run through the same contraction chain
// contract uses; a survivor that was rewritten is demoted back to
// Unprocessed since its classification and evaluation are now stale
// (spec.md I7 "maximality... must be recomputed whenever [the literal
// list] changes"), a survivor untouched by this pass stays exactly
// where it is, and a tautology/subsumed result is deleted outright.
func (st *State) backwardContract(given *clause.Clause) {
	for _, set := range st.processedSets() {
		for _, c := range set.All() {
			if c == given {
				continue
			}
			set.Extract(c)
			result := st.contract(c)
			switch {
			case result.Dead:
				c.MarkDead()
			case result.Clause == c:
				set.Insert(c)
			default:
				st.Unprocessed.Insert(result.Clause)
			}
		}
	}
}
