package proofstate

import (
	"saturn/internal/clause"
	"saturn/internal/term"
)

// evaluate computes c's heuristic evaluation vector (spec.md §4.5
// "evaluate the new clause"): one score per configured channel, lower
// is better for all four channels. Cached on clause.Clause.Eval until
// the next evaluate call (spec.md §4.6 step 6, reweight in step 9).
func (st *State) evaluate(c *clause.Clause) {
	w := st.Ctrl.Weights
	c.Eval = []float64{
		float64(symbolWeight(st.Bank, c)) * float64(max1(w.SymbolCountWeight)),
		float64(len(c.Literals)) * float64(max1(w.PositionWeight)),
		float64(conjectureDistance(c)) * float64(max1(w.ConjectureDistanceWeight)),
		float64(c.Created) * float64(max1(w.AgeWeight)),
	}
}

func max1(w int) int {
	if w <= 0 {
		return 0
	}
	return w
}

// symbolWeight sums every literal side's term.Node.Weight (spec.md I4:
// "weight equals the recursive sum of per-symbol weights"), the
// standard "symbol count" given-clause heuristic channel.
func symbolWeight(b *term.Bank, c *clause.Clause) int {
	total := 0
	for _, l := range c.Literals {
		total += b.Node(l.Left).Weight + b.Node(l.Right).Weight
	}
	return total
}

// conjectureDistance is 0 for a clause carrying PropConjecture (spec.md
// §6 "conjecture-distance weight"), 1 otherwise; only input clauses
// with a conjecture role carry the flag, and inference conclusions do
// not inherit it from their premises;
// a real distance metric would walk the derivation stack, but a
// binary proxy is enough to bias the heuristic toward goal-directed
// clauses without needing a distance table kept up to date across GC.
func conjectureDistance(c *clause.Clause) int {
	if c.Conjecture() {
		return 0
	}
	return 1
}

// pickSchedule is a deterministic weighted round-robin over the four
// evaluation channels (spec.md §4.6 step 1 "weighted round-robin across
// evaluation channels"): channel i appears weight_i times per full
// cycle, so the channel with the largest weight is consulted most
// often while every channel with positive weight still gets a turn
// (spec.md §5 "the order is deterministic given a fixed strategy").
func (st *State) pickSchedule() []int {
	w := st.Ctrl.Weights
	weights := []int{max1(w.SymbolCountWeight), max1(w.PositionWeight), max1(w.ConjectureDistanceWeight), max1(w.AgeWeight)}
	var sched []int
	for ch, wt := range weights {
		for i := 0; i < wt; i++ {
			sched = append(sched, ch)
		}
	}
	if len(sched) == 0 {
		sched = []int{3} // fall back to pure age/FIFO if every weight is 0
	}
	return sched
}

// pick selects and removes the best clause from Unprocessed according
// to the current round-robin channel (spec.md §4.6 step 1). Ties break
// on Created then Ident, giving a total, deterministic order (spec.md
// §5).
func (st *State) pick() *clause.Clause {
	if st.Unprocessed.Size() == 0 {
		return nil
	}
	sched := st.pickSchedule()
	channel := sched[st.steps%len(sched)]

	var best *clause.Clause
	var bestScore float64
	for _, c := range st.Unprocessed.All() {
		if c.Eval == nil {
			st.evaluate(c)
		}
		score := c.Eval[channel]
		switch {
		case best == nil:
			best, bestScore = c, score
		case score < bestScore,
			score == bestScore && c.Created < best.Created,
			score == bestScore && c.Created == best.Created && c.Ident < best.Ident:
			best, bestScore = c, score
		}
	}
	st.Unprocessed.Extract(best)
	return best
}
