package infer

import (
	"saturn/internal/clause"
	"saturn/internal/lit"
)

// EqualityResolution implements equality resolution (spec.md §4.4): from
// a clause containing s != t where sigma = mgu(s, t) exists, infer
// rest*sigma.
type EqualityResolution struct{}

func (EqualityResolution) Name() string { return "eq-resolution" }

func (EqualityResolution) Generate(ctx *Context, given, _ *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for i, li := range given.Literals {
		if li.Positive {
			continue
		}
		subst, ok := ctx.Bank.Unify(li.Left, li.Right)
		if !ok {
			continue
		}
		var lits []*lit.Eqn
		for k, l := range given.Literals {
			if k == i {
				continue
			}
			lits = append(lits, l.Apply(ctx.Bank, subst))
		}
		out = append(out, ctx.alloc(lits))
	}
	return out
}
