// Tautology detection: the cheap check lives on clause.Clause itself
// (IsCheapTautology, spec.md §4.3); this file implements the expensive
// ground-completion criterion (spec.md §4.3 "Tautology test
// (equational)"), grounded on original_source/CLAUSES/ccl_tautologies.c:
// orient the negative literals into a ground rewrite system by a cheap
// size-lex ordering, reduce each positive literal through it, and check
// for a reflexive result.
package infer

import (
	"saturn/internal/clause"
	"saturn/internal/term"
)

// DefaultTautologyCheckLiteralCap is the negative-literal budget above
// which the ground-completion test is skipped in favor of the cheap
// check alone (spec.md §4.3 "capped at a configurable negative-literal
// budget"); control.Control.TautologyCheckLiteralCap overrides this.
const DefaultTautologyCheckLiteralCap = 8

// groundRule is one oriented negative-literal rewrite rule l -> r.
type groundRule struct {
	l, r term.ID
}

// IsGroundCompletionTautology implements Nieuwenhuis's ground-completion
// tautology criterion (spec.md §4.3): treat the clause's negative
// literals as a ground rewrite system (oriented by raw term weight,
// breaking ties by id, as a cheap size-lex substitute for the full
// ordering since these rules are used only internally for this check),
// then reduce the positive literals through it *incrementally* — each
// positive literal that reduces to a non-reflexive pair is itself
// oriented and added as a new rule before the next positive literal is
// reduced (spec.md §8 scenario 5: "one of which reduces to reflexivity
// after the other becomes a rule"). Declares a tautology the moment any
// positive literal reduces to a reflexive l = l.
func IsGroundCompletionTautology(ctx *Context, c *clause.Clause, literalCap int) bool {
	if literalCap <= 0 {
		literalCap = DefaultTautologyCheckLiteralCap
	}
	if c.NegCount > literalCap {
		return false // too expensive; cheap check already ran
	}

	var rules []groundRule
	for _, l := range c.Literals {
		if l.Positive {
			continue
		}
		lhs, rhs := orientBySize(ctx.Bank, l.Left, l.Right)
		rules = append(rules, groundRule{l: lhs, r: rhs})
	}

	for _, l := range c.Literals {
		if !l.Positive {
			continue
		}
		a := reduceGround(ctx.Bank, rules, l.Left)
		b := reduceGround(ctx.Bank, rules, l.Right)
		if a == b {
			return true
		}
		lhs, rhs := orientBySize(ctx.Bank, a, b)
		rules = append(rules, groundRule{l: lhs, r: rhs})
	}
	return false
}

// orientBySize puts the heavier term first, breaking ties by id; a
// lightweight total order sufficient for this internal ground-rewrite
// system (it need not agree with the prover's own reduction ordering).
func orientBySize(b *term.Bank, s, t term.ID) (term.ID, term.ID) {
	sw, tw := b.Node(s).Weight, b.Node(t).Weight
	if sw > tw || (sw == tw && s > t) {
		return s, t
	}
	return t, s
}

func reduceGround(b *term.Bank, rules []groundRule, id term.ID) term.ID {
	const maxSteps = 1000
	for step := 0; step < maxSteps; step++ {
		rewritten := false
		for _, r := range rules {
			if id == r.l {
				id = r.r
				rewritten = true
				break
			}
		}
		if !rewritten {
			n := b.Node(id)
			if n.IsVar || len(n.Args) == 0 {
				return id
			}
			newArgs := make([]term.ID, len(n.Args))
			changed := false
			for i, a := range n.Args {
				na := reduceGround(b, rules, a)
				newArgs[i] = na
				if na != a {
					changed = true
				}
			}
			if !changed {
				return id
			}
			id = b.Insert(n.Functor, newArgs)
		}
	}
	return id
}
