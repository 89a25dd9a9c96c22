package proofstate

import (
	"saturn/internal/clause"
	"saturn/internal/control"
	"saturn/internal/deriv"
	"saturn/internal/infer"
	"saturn/internal/term"
)

// demodLevel maps control.Control's forward-demodulation setting onto
// term.Level (spec.md §6 "forward-demodulation level (none/rules-only/
// full)"); DemodNone disables the Rewrite rule entirely rather than
// mapping to a level, handled by the caller.
func demodLevel(ctrl *control.Control) term.Level {
	if ctrl.ForwardDemod == control.DemodFull {
		return term.LevelFull
	}
	return term.LevelRulesOnly
}

// contractionRules builds the simplifying-rule chain run to a fixpoint
// by forwardContract/backwardContract (spec.md §4.4, §4.6 steps 2 and
// 5): demodulation against the current rule set, unit subsumption/
// resolution against every live unit, and non-unit subsumption against
// every processed clause. Rebuilt on each call so the closures always
// read the state's *current* sets (proofstate mutates them between
// calls).
func (st *State) contractionRules() []infer.SimplifyingRule {
	var rules []infer.SimplifyingRule
	if st.Ctrl.ForwardDemod != control.DemodNone {
		rules = append(rules, &infer.Rewrite{
			Demodulators: func() *clause.Set { return st.PosRules },
			Level:        demodLevel(st.Ctrl),
		})
	}
	rules = append(rules,
		&infer.UnitResolution{Units: st.allUnits},
		&infer.NonUnitSubsumption{Against: st.processedSets},
	)
	return rules
}

// opFor maps a SimplifyingRule's Name() to the derivation op code
// spec.md §3 reserves for it (SR for unit resolution, ContextSR for
// non-unit subsumption; Condense is not separately modeled here — subsumption
// deletes outright rather than condensing duplicate literals, which
// clause.RemoveDuplicates already handles during allocation).
func opFor(name string) deriv.OpCode {
	switch name {
	case "rewrite":
		return deriv.OpRewrite
	case "unit-resolution":
		return deriv.OpSR
	case "non-unit-subsumption":
		return deriv.OpContextSR
	default:
		return deriv.OpNop
	}
}

// contractResult is the outcome of one forward/backward-contraction
// pass (spec.md §4.6 steps 2 and 5): Dead clauses are deleted outright
// (tautology or subsumption), Clause is the (possibly rewritten)
// survivor otherwise.
type contractResult struct {
	Clause *clause.Clause
	Dead   bool
}

// contract runs target through every contraction rule to a fixpoint,
// attaching a derivation record to each rewritten generation (spec.md
// §3 I14) and detecting tautology/triviality after every step (spec.md
// §4.6 step 2 "abort the step if the clause becomes tautological or
// subsumed").
func (st *State) contract(target *clause.Clause) contractResult {
	const maxRounds = 1000
	current := target
	for round := 0; round < maxRounds; round++ {
		if current.IsCheapTautology() {
			return contractResult{Dead: true}
		}
		if infer.IsGroundCompletionTautology(st.ctx, current, st.Ctrl.TautologyCheckLiteralCap) {
			return contractResult{Dead: true}
		}

		changedThisRound := false
		for _, rule := range st.contractionRules() {
			result, changed, used := rule.Simplify(st.ctx, current)
			if !changed {
				continue
			}
			if result == nil {
				return contractResult{Dead: true}
			}
			parents := append([]clause.ID{current.Ident}, used...)
			result.PushDerivation(deriv.NewRecord(opFor(rule.Name()), parents...))
			st.byID[result.Ident] = result
			current = result
			changedThisRound = true
			break // restart the rule chain from the top against the new clause
		}
		if !changedThisRound {
			return contractResult{Clause: current}
		}
	}
	return contractResult{Clause: current}
}
