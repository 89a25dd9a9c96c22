// Package infer implements the inference engine (spec.md §4.4): ordered
// paramodulation (plain/simultaneous/super-simultaneous), equality
// factoring, equality resolution, demodulation, unit and non-unit
// subsumption, and the ground-completion tautology test. Generating
// rules and simplifying rules are split into two small interfaces
// generalized directly from the teacher's OptimizationPass
// (internal/ir/optimizations.go: Name()/Description()/Apply(*Program)
// bool, run to a fixpoint by an OptimizationPipeline) — here a
// GeneratingRule produces new clauses from a pair, a SimplifyingRule
// rewrites or deletes one clause in place, and proofstate.State plays
// the pipeline's role of driving both to a fixpoint each loop step.
package infer

import (
	"saturn/internal/clause"
	"saturn/internal/lit"
	"saturn/internal/order"
	"saturn/internal/sig"
	"saturn/internal/term"
)

// Context bundles the shared collaborators every rule needs, plus the
// two counters a rule must draw from when allocating a new clause
// (identity and creation date), owned by proofstate.State.
type Context struct {
	Bank  *term.Bank
	Sig   *sig.Signature
	Order *order.OCB

	NextClauseID func() clause.ID
	NextCreated  func() int
}

func (c *Context) alloc(literals []*lit.Eqn) *clause.Clause {
	cl := clause.New(c.NextClauseID(), literals, c.NextCreated())
	cl.NormalizeVariables(c.Bank)
	cl.RemoveDuplicates()
	cl.MaximalLiterals(c.Order)
	return cl
}

// GeneratingRule produces zero or more conclusions from a pair of
// premises (spec.md §4.4 "each generates zero or more clauses into the
// temporary store").
type GeneratingRule interface {
	Name() string
	Generate(ctx *Context, given, other *clause.Clause) []*clause.Clause
}

// SimplifyingRule rewrites or deletes target using the processed sets
// available through ctx (demodulators, unit clauses). changed reports
// whether target was modified; result is nil when target was
// subsumed/deleted outright. used names the processed clause(s) that
// caused the change (the demodulator, the unit, or the subsumer),
// letting the caller (proofstate) push an accurate derivation record
// rather than crediting only target itself (spec.md §3 I14, §8
// scenario 4's "derivation [Rewrite, demodulator-id]").
type SimplifyingRule interface {
	Name() string
	Simplify(ctx *Context, target *clause.Clause) (result *clause.Clause, changed bool, used []clause.ID)
}
