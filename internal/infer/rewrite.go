package infer

import (
	"saturn/internal/clause"
	"saturn/internal/lit"
	"saturn/internal/order"
	"saturn/internal/term"
)

// Rewrite implements demodulation (spec.md §4.4): both sides of every
// literal of target are normalized, rewriting any subterm by an
// applicable positive-unit-equation demodulator drawn from
// demodulators. Only one demodulator index lookup per subterm functor
// is needed since the index is already keyed by the rewritten
// subterm's head symbol.
// Level is accepted for interface symmetry with term.Bank's two normal-
// form dates (spec.md §4.1) but Rewrite always renormalizes fully
// rather than skipping positions whose date is already past the
// demodulator set's max date; no part of the saturation loop reads the
// normal-form dates.
type Rewrite struct {
	Demodulators func() *clause.Set
	Level        term.Level
}

func (r *Rewrite) Name() string { return "rewrite" }

func (r *Rewrite) Simplify(ctx *Context, target *clause.Clause) (*clause.Clause, bool, []clause.ID) {
	demods := r.Demodulators()
	if demods == nil || demods.Size() == 0 {
		return target, false, nil
	}

	changed := false
	var used []clause.ID
	lits := make([]*lit.Eqn, len(target.Literals))
	for i, l := range target.Literals {
		newLeft, usedLeft := r.normalize(ctx, demods, l.Left)
		newRight, usedRight := r.normalize(ctx, demods, l.Right)
		used = append(used, usedLeft...)
		used = append(used, usedRight...)
		if newLeft != l.Left || newRight != l.Right {
			changed = true
			lits[i] = lit.NewEquational(newLeft, newRight, l.Positive)
		} else {
			lits[i] = l
		}
	}
	if !changed {
		return target, false, nil
	}
	result := ctx.alloc(lits)
	return result, true, dedupeIDs(used)
}

// normalize repeatedly rewrites id at every subterm position using the
// first matching unit-equation demodulator found in the index, until no
// rule applies (at most maxSteps rewrites; each rewrite replaces an
// instance of a rule's left side by the instance of its right side,
// which the reduction ordering ranks lower).
func (r *Rewrite) normalize(ctx *Context, demods *clause.Set, id term.ID) (term.ID, []clause.ID) {
	const maxSteps = 10_000
	idx := demods.DemodulatorIndex(ctx.Bank)
	var used []clause.ID
	for step := 0; step < maxSteps; step++ {
		rewritten, rule, ok := r.rewriteOnce(ctx, idx, id)
		if !ok {
			return id, used
		}
		used = append(used, rule)
		id = rewritten
	}
	return id, used
}

func (r *Rewrite) rewriteOnce(ctx *Context, idx interface {
	Candidates(f term.FunCode) []*clause.Clause
}, id term.ID) (term.ID, clause.ID, bool) {
	for _, sub := range positions(ctx.Bank, id) {
		n := ctx.Bank.Node(sub.id)
		if n.IsVar {
			continue
		}
		for _, rule := range idx.Candidates(n.Functor) {
			l := rule.Literals[0]
			subst, ok := ctx.Bank.Unify(l.Left, sub.id)
			if !ok {
				continue
			}
			lSigma := ctx.Bank.Apply(subst, l.Left)
			rSigma := ctx.Bank.Apply(subst, l.Right)
			if lSigma != sub.id {
				continue // unification must be a syntactic match at this position (matching, not general unification)
			}
			if ctx.Order.Compare(lSigma, rSigma, order.DerefAlways) != order.Greater {
				continue
			}
			return ctx.Bank.ReplaceAt(id, sub.pos, rSigma), rule.Ident, true
		}
	}
	return id, 0, false
}

func dedupeIDs(ids []clause.ID) []clause.ID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[clause.ID]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
