package proofstate

import (
	"sort"

	"saturn/internal/clause"
	"saturn/internal/term"
)

// periodicMaintenance implements spec.md §4.6 step 9: once cumulative
// storage crosses each configured threshold, run the corresponding
// pass. The three thresholds are independent and checked every loop
// iteration; each pass is idempotent so running it more often than
// strictly necessary costs time, not correctness.
func (st *State) periodicMaintenance() {
	total := st.totalClauses()

	if st.Ctrl.FilterThreshold > 0 && total >= st.Ctrl.FilterThreshold {
		st.filterSweep()
	}
	if st.Ctrl.ReweightThreshold > 0 && total >= st.Ctrl.ReweightThreshold {
		st.reweightUnprocessed()
		st.gc()
	}
	if st.Ctrl.DeleteBadThreshold > 0 && total >= st.Ctrl.DeleteBadThreshold {
		st.deleteBad()
	}
}

// filterSweep runs a full forward-contraction pass over Unprocessed
// (spec.md §4.6 step 9 "run a full forward-contraction sweep over
// unprocessed"), dropping tautologies/subsumed clauses and re-queuing
// rewritten survivors.
func (st *State) filterSweep() {
	for _, c := range st.Unprocessed.All() {
		st.Unprocessed.Extract(c)
		result := st.contract(c)
		if result.Dead {
			c.MarkDead()
			continue
		}
		st.Unprocessed.Insert(result.Clause)
	}
}

// reweightUnprocessed recomputes every unprocessed clause's evaluation
// vector (spec.md §4.6 step 9 "reweight under budget breaches"),
// letting Ctrl.Weights changes (or an AC-handling flip's indirect
// effect on symbol weight) take effect immediately rather than only on
// the next natural Pick.
func (st *State) reweightUnprocessed() {
	for _, c := range st.Unprocessed.All() {
		st.evaluate(c)
	}
}

// deleteBad deletes the worst-scored unprocessed clauses once storage
// exceeds Ctrl.DeleteBadThreshold (spec.md §4.6 step 9 "delete 'bad'
// clauses beyond a storage cap"), keeping at most half the threshold's
// worth of unprocessed clauses. This is the one heuristic spec.md §1
// explicitly calls out as incompleteness-introducing, so it marks
// st.incomplete (spec.md §7 "Propagation policy... Users observe only
// aggregate counters and the final proof/saturation verdict").
func (st *State) deleteBad() {
	keep := st.Ctrl.DeleteBadThreshold / 2
	all := st.Unprocessed.All()
	if len(all) <= keep {
		return
	}
	for _, c := range all {
		if c.Eval == nil {
			st.evaluate(c)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Eval[0] < all[j].Eval[0]
	})
	for _, c := range all[keep:] {
		st.Unprocessed.Extract(c)
		c.MarkDead()
	}
	st.incomplete = true
}

// gc runs a mark-and-sweep pass over the term bank (spec.md §4.6 step 9
// "GC the term bank"), rooted at every literal side currently reachable
// from any of the five clause sets, the temporary store, and every
// clause recorded in byID, so derivation premises keep their terms (spec.md §5
// "GC is invoked only when no cursor into the bank is live" — satisfied
// here since maintenance runs strictly between loop steps, never mid-
// inference).
func (st *State) gc() {
	var roots []term.ID
	sets := append(st.processedSets(), st.Unprocessed)
	for _, s := range sets {
		for _, c := range s.All() {
			roots = appendClauseRoots(roots, c)
		}
	}
	for _, c := range st.temp {
		roots = appendClauseRoots(roots, c)
	}
	for _, c := range st.byID {
		roots = appendClauseRoots(roots, c)
	}
	st.Bank.GC(roots)
}

func appendClauseRoots(roots []term.ID, c *clause.Clause) []term.ID {
	for _, l := range c.Literals {
		roots = append(roots, l.Left, l.Right)
	}
	return roots
}
