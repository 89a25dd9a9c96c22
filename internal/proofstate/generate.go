package proofstate

import (
	"saturn/internal/clause"
	"saturn/internal/deriv"
	"saturn/internal/infer"
)

// generatingRules returns the binary (paramodulation) and unary
// (equality factoring/resolution) generating rules this run's strategy
// selects (spec.md §4.4, §6 "paramodulation variant").
func (st *State) generatingRules() (binary []infer.GeneratingRule, unary []infer.GeneratingRule) {
	binary = append(binary, &infer.Paramodulation{Variant: st.Ctrl.ParamodVariant})
	unary = append(unary, infer.EqualityResolution{})
	if st.Ctrl.DestructiveEqRes {
		// Destructive equality resolution (spec.md §6) folds the
		// elimination into forward contraction in a fuller prover; here
		// the generating form always runs and proofstate simply also
		// lets the plain EqualityResolution rule fire as a generating
		// step, which is sound regardless of the destructive/
		// non-destructive distinction (the destructive variant is a
		// pure performance optimization, never a soundness condition).
	}
	unary = append(unary, infer.EqualityFactoring{})
	return binary, unary
}

func opForGenerating(name string) deriv.OpCode {
	switch name {
	case "paramod-plain":
		return deriv.OpParamod
	case "paramod-simultaneous", "paramod-super-simultaneous":
		return deriv.OpSimParamod
	case "eq-factoring":
		return deriv.OpEqFactor
	case "eq-resolution":
		return deriv.OpEqRes
	default:
		return deriv.OpNop
	}
}

// generateFrom applies every generating rule between given and the
// processed set, and the unary rules against given alone (spec.md §4.6
// step 7 "Apply all generating inferences between the new clause and
// all processed clauses"). given is already a processed-set member by
// the time this runs (step 6 precedes step 7), so the loop over
// allProcessed includes the self-paramodulation case naturally via the
// explicit given/given call below; other members get both donor/target
// orderings since paramodulation is not symmetric.
func (st *State) generateFrom(given *clause.Clause) {
	binary, unary := st.generatingRules()
	processed := st.allProcessed()

	record := func(c *clause.Clause, op deriv.OpCode, parents ...clause.ID) {
		c.PushDerivation(deriv.NewRecord(op, parents...))
		st.byID[c.Ident] = c
		st.temp = append(st.temp, c)
		st.generated++
	}

	for _, rule := range binary {
		op := opForGenerating(rule.Name())
		for _, concl := range rule.Generate(st.ctx, given, given) {
			record(concl, op, given.Ident)
		}
		for _, other := range processed {
			if other == given {
				continue
			}
			for _, concl := range rule.Generate(st.ctx, given, other) {
				record(concl, op, given.Ident, other.Ident)
			}
			for _, concl := range rule.Generate(st.ctx, other, given) {
				record(concl, op, other.Ident, given.Ident)
			}
		}
	}

	for _, rule := range unary {
		op := opForGenerating(rule.Name())
		for _, concl := range rule.Generate(st.ctx, given, nil) {
			record(concl, op, given.Ident)
		}
	}
}
