package infer

import (
	"saturn/internal/clause"
	"saturn/internal/lit"
	"saturn/internal/order"
)

// EqualityFactoring implements equality factoring (spec.md §4.4): given
// a positive clause with two positive equational literals s=t and u=v
// where s and u unify via sigma, s*sigma is maximal, and t*sigma is not
// less than or equal to s*sigma, infer (s=t) or (t!=v) or rest under sigma.
type EqualityFactoring struct{}

func (EqualityFactoring) Name() string { return "eq-factoring" }

func (EqualityFactoring) Generate(ctx *Context, given, _ *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for i, li := range given.Literals {
		if !li.Positive {
			continue
		}
		for j, lj := range given.Literals {
			if i == j || !lj.Positive {
				continue
			}
			s, t := li.Left, li.Right
			u, v := lj.Left, lj.Right
			subst, ok := ctx.Bank.Unify(s, u)
			if !ok {
				continue
			}
			sSigma := ctx.Bank.Apply(subst, s)
			tSigma := ctx.Bank.Apply(subst, t)
			vSigma := ctx.Bank.Apply(subst, v)
			cmp := ctx.Order.Compare(tSigma, sSigma, order.DerefAlways)
			if cmp == order.Lesser || cmp == order.Equal {
				continue // t*sigma must not be <= s*sigma
			}

			sigma := applySubstToLiterals(ctx.Bank, given.Literals, subst)
			if !literalMaximalIn(ctx, sigma, sigma[i]) {
				continue
			}

			var lits []*lit.Eqn
			lits = append(lits, lit.NewEquational(sSigma, tSigma, true))
			lits = append(lits, lit.NewEquational(tSigma, vSigma, false))
			for k, l := range given.Literals {
				if k == i || k == j {
					continue
				}
				lits = append(lits, l.Apply(ctx.Bank, subst))
			}
			out = append(out, ctx.alloc(lits))
		}
	}
	return out
}
