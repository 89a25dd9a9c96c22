package infer

import (
	"saturn/internal/clause"
	"saturn/internal/lit"
	"saturn/internal/order"
	"saturn/internal/term"
)

// Variant selects one of the three paramodulation construction modes
// (spec.md §4.4); the side conditions are identical across all three,
// they differ only in which occurrences of the matched subterm get
// rewritten in the conclusion.
type Variant int

const (
	Plain Variant = iota
	Simultaneous
	SuperSimultaneous
)

// Paramodulation implements ordered paramodulation "from|pos -> into|pos"
// (spec.md §4.4).
type Paramodulation struct {
	Variant Variant
}

func (p *Paramodulation) Name() string {
	switch p.Variant {
	case Simultaneous:
		return "paramod-simultaneous"
	case SuperSimultaneous:
		return "paramod-super-simultaneous"
	default:
		return "paramod-plain"
	}
}

// Generate tries `from` as the equation donor and `into` as the site
// clause; both directions are handled by proofstate calling Generate
// twice with from/into swapped, since the rule is not symmetric.
func (p *Paramodulation) Generate(ctx *Context, from, into *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for _, donor := range from.Literals {
		if !donor.Positive || !donor.Oriented() || !donor.Maximal() {
			continue
		}
		l, r := donor.Left, donor.Right

		for intoIdx, target := range into.Literals {
			for _, side := range []term.ID{target.Left, target.Right} {
				for _, sub := range nonVariablePositions(ctx.Bank, side) {
					subst, ok := ctx.Bank.Unify(l, sub.id)
					if !ok {
						continue
					}
					concl := p.conclude(ctx, from, into, donor, l, r, intoIdx, side, sub, subst)
					if concl != nil {
						out = append(out, concl)
					}
				}
			}
		}
	}
	return out
}

func (p *Paramodulation) conclude(
	ctx *Context, from, into *clause.Clause, donor *lit.Eqn, l, r term.ID,
	intoIdx int, side term.ID, sub subtermAt, subst term.Substitution,
) *clause.Clause {
	lSigma := ctx.Bank.Apply(subst, l)
	rSigma := ctx.Bank.Apply(subst, r)
	switch ctx.Order.Compare(lSigma, rSigma, order.DerefAlways) {
	case order.Lesser, order.Equal:
		return nil // l must not be <= r under sigma: orientation reversed or degenerate
	}

	fromSigma := applySubstToLiterals(ctx.Bank, from.Literals, subst)
	donorSigma := fromSigma[indexOf(from.Literals, donor)]
	if !literalStrictlyMaximalIn(ctx, fromSigma, donorSigma) {
		return nil
	}

	intoSigma := applySubstToLiterals(ctx.Bank, into.Literals, subst)
	targetAfter := intoSigma[intoIdx]
	if !literalMaximalIn(ctx, intoSigma, targetAfter) {
		return nil
	}

	newSide := rewriteSide(ctx.Bank, p.Variant, subst, side, sub, lSigma, rSigma)

	var newLeft, newRight term.ID
	if side == into.Literals[intoIdx].Left {
		newLeft, newRight = newSide, ctx.Bank.Apply(subst, into.Literals[intoIdx].Right)
	} else {
		newLeft, newRight = ctx.Bank.Apply(subst, into.Literals[intoIdx].Left), newSide
	}
	conclLit := lit.NewEquational(newLeft, newRight, into.Literals[intoIdx].Positive)

	var lits []*lit.Eqn
	lits = append(lits, withoutIndex(fromSigma, indexOf(from.Literals, donor))...)
	for i, other := range intoSigma {
		if i == intoIdx {
			lits = append(lits, conclLit)
			continue
		}
		lits = append(lits, other)
	}
	return ctx.alloc(lits)
}

func rewriteSide(b *term.Bank, v Variant, subst term.Substitution, side term.ID, sub subtermAt, lSigma, rSigma term.ID) term.ID {
	sideSigma := b.Apply(subst, side)
	switch v {
	case Simultaneous, SuperSimultaneous:
		return rewriteAllOccurrences(b, sideSigma, lSigma, rSigma)
	default:
		return b.ReplaceAt(sideSigma, sub.pos, rSigma)
	}
}

// rewriteAllOccurrences replaces every occurrence of target anywhere in
// root with repl, bottom-up, reusing the bank's hash-consing so the
// result stays shared (spec.md §4.4 simultaneous/super-simultaneous).
func rewriteAllOccurrences(b *term.Bank, root, target, repl term.ID) term.ID {
	if root == target {
		return repl
	}
	n := b.Node(root)
	if n.IsVar || len(n.Args) == 0 {
		return root
	}
	newArgs := make([]term.ID, len(n.Args))
	changed := false
	for i, a := range n.Args {
		na := rewriteAllOccurrences(b, a, target, repl)
		newArgs[i] = na
		if na != a {
			changed = true
		}
	}
	if !changed {
		return root
	}
	return b.Insert(n.Functor, newArgs)
}

func applySubstToLiterals(b *term.Bank, lits []*lit.Eqn, subst term.Substitution) []*lit.Eqn {
	out := make([]*lit.Eqn, len(lits))
	for i, l := range lits {
		out[i] = l.Apply(b, subst)
	}
	return out
}

func indexOf(lits []*lit.Eqn, target *lit.Eqn) int {
	for i, l := range lits {
		if l == target {
			return i
		}
	}
	return -1
}

func withoutIndex(lits []*lit.Eqn, idx int) []*lit.Eqn {
	out := make([]*lit.Eqn, 0, len(lits)-1)
	for i, l := range lits {
		if i != idx {
			out = append(out, l)
		}
	}
	return out
}

// literalStrictlyMaximalIn rebuilds a throwaway clause from lits to
// test whether target (found by pointer identity, since New() may
// reorder the slice but never replaces its elements) is strictly
// maximal under the ordering (spec.md §4.4 "lσ is strictly maximal in
// fromσ").
func literalStrictlyMaximalIn(ctx *Context, lits []*lit.Eqn, target *lit.Eqn) bool {
	probe := clause.New(0, append([]*lit.Eqn(nil), lits...), 0)
	probe.MaximalLiterals(ctx.Order)
	for _, l := range probe.Literals {
		if l == target {
			return l.StrictlyMaximal()
		}
	}
	return false
}

// literalMaximalIn is literalStrictlyMaximalIn's non-strict counterpart
// (spec.md §4.4 "the into-literal retains maximality").
func literalMaximalIn(ctx *Context, lits []*lit.Eqn, target *lit.Eqn) bool {
	probe := clause.New(0, append([]*lit.Eqn(nil), lits...), 0)
	probe.MaximalLiterals(ctx.Order)
	for _, l := range probe.Literals {
		if l == target {
			return l.Maximal()
		}
	}
	return false
}
