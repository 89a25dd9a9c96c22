package infer

import (
	"saturn/internal/clause"
	"saturn/internal/lit"
	"saturn/internal/term"
)

// UnitResolution implements unit subsumption / unit resolution (spec.md
// §4.4): against each unit clause in Units, literals of target that are
// resolvable with the unit are removed; if target contains a literal
// identical to the unit's literal, target is deleted (result = nil).
// Only identical literals count here: a unit that subsumes target
// through a proper instance is not detected by this rule. Units collects
// every live unit clause from whichever processed sets the caller
// considers (positive rules, positive equations, negative units all
// qualify — spec.md §4.4 "against each unit positive or negative
// clause"); proofstate merges the three sets since a bare *clause.Set
// cannot itself span more than one linked-list membership.
type UnitResolution struct {
	Units func() []*clause.Clause
}

func (UnitResolution) Name() string { return "unit-resolution" }

func (u *UnitResolution) Simplify(ctx *Context, target *clause.Clause) (*clause.Clause, bool, []clause.ID) {
	units := u.Units()
	for _, unit := range units {
		if len(unit.Literals) != 1 {
			continue
		}
		ul := unit.Literals[0]
		for _, l := range target.Literals {
			if l.Equal(ul) {
				return nil, true, []clause.ID{unit.Ident} // unit subsumes target outright
			}
		}
	}

	changed := false
	var used []clause.ID
	lits := make([]*lit.Eqn, 0, len(target.Literals))
	for _, l := range target.Literals {
		resolved := false
		for _, unit := range units {
			if len(unit.Literals) != 1 {
				continue
			}
			if l.Resolvable(unit.Literals[0]) {
				resolved = true
				changed = true
				used = append(used, unit.Ident)
				break
			}
		}
		if !resolved {
			lits = append(lits, l)
		}
	}
	if !changed {
		return target, false, nil
	}
	return ctx.alloc(lits), true, dedupeIDs(used)
}

// NonUnitSubsumption implements forward/backward non-unit subsumption
// (spec.md §4.4): a clause subsumes another if its literal multiset
// matches into a submultiset of the candidate's literals under one
// shared substitution, with every literal's sign preserved. Against
// enumerates every processed set to check (each carries its own
// feature-vector index), since subsumption is not restricted to one
// clause class.
type NonUnitSubsumption struct {
	Against func() []*clause.Set
}

func (NonUnitSubsumption) Name() string { return "non-unit-subsumption" }

// Simplify returns (nil, true, [subsumer]) when some clause in Against
// subsumes target, marking it for deletion; otherwise (target, false, nil).
func (s *NonUnitSubsumption) Simplify(ctx *Context, target *clause.Clause) (*clause.Clause, bool, []clause.ID) {
	for _, set := range s.Against() {
		if set == nil {
			continue
		}
		idx := set.SubsumptionIndex(ctx.Bank)
		for _, candidate := range idx.Candidates(ctx.Bank, target) {
			if candidate == target {
				continue
			}
			if len(candidate.Literals) > len(target.Literals) {
				continue
			}
			if Subsumes(ctx, candidate, target) {
				return nil, true, []clause.ID{candidate.Ident}
			}
		}
	}
	return target, false, nil
}

// Subsumes reports whether every literal of smaller matches, under one
// shared substitution, to a distinct literal of larger (the standard
// multiset-matching subsumption test, spec.md §4.4).
func Subsumes(ctx *Context, smaller, larger *clause.Clause) bool {
	used := make([]bool, len(larger.Literals))
	subst := term.Substitution{}
	return matchLiterals(ctx, smaller.Literals, larger.Literals, used, subst)
}

func matchLiterals(ctx *Context, remaining []*lit.Eqn, pool []*lit.Eqn, used []bool, subst term.Substitution) bool {
	if len(remaining) == 0 {
		return true
	}
	head := remaining[0]
	for i, candidate := range pool {
		if used[i] || candidate.Positive != head.Positive {
			continue
		}
		added, ok := literalMatches(ctx, head, candidate, subst)
		if !ok {
			continue
		}
		used[i] = true
		if matchLiterals(ctx, remaining[1:], pool, used, subst) {
			return true
		}
		used[i] = false
		for _, k := range added {
			delete(subst, k)
		}
	}
	return false
}

// literalMatches tries to extend subst so head (instantiated) equals
// candidate, trying both orientations of the equation's two sides. On
// success it returns the list of variable keys it newly added to subst
// (so the caller can undo them on backtrack; the list is empty when the
// match binds nothing new) and true; on failure it returns (nil, false)
// and leaves subst unmodified.
func literalMatches(ctx *Context, head, candidate *lit.Eqn, subst term.Substitution) ([]term.ID, bool) {
	if added, ok := matchPair(ctx, head.Left, candidate.Left, head.Right, candidate.Right, subst); ok {
		return added, true
	}
	if added, ok := matchPair(ctx, head.Left, candidate.Right, head.Right, candidate.Left, subst); ok {
		return added, true
	}
	return nil, false
}

func matchPair(ctx *Context, p1, i1, p2, i2 term.ID, subst term.Substitution) ([]term.ID, bool) {
	var added []term.ID
	if a, ok := match(ctx, p1, i1, subst); ok {
		added = append(added, a...)
	} else {
		undo(subst, added)
		return nil, false
	}
	if a, ok := match(ctx, p2, i2, subst); ok {
		added = append(added, a...)
	} else {
		undo(subst, added)
		return nil, false
	}
	return added, true
}

func undo(subst term.Substitution, keys []term.ID) {
	for _, k := range keys {
		delete(subst, k)
	}
}

// match one-directionally instantiates pattern's variables (never
// instance's) to make pattern equal instance, extending subst and
// returning the newly bound keys.
func match(ctx *Context, pattern, instance term.ID, subst term.Substitution) ([]term.ID, bool) {
	pn := ctx.Bank.Node(pattern)
	if pn.IsVar {
		if bound, ok := subst[pattern]; ok {
			if bound == instance {
				return nil, true
			}
			return nil, false
		}
		subst[pattern] = instance
		return []term.ID{pattern}, true
	}
	in := ctx.Bank.Node(instance)
	if in.IsVar || pn.Functor != in.Functor || len(pn.Args) != len(in.Args) {
		return nil, false
	}
	var added []term.ID
	for i := range pn.Args {
		a, ok := match(ctx, pn.Args[i], in.Args[i], subst)
		if !ok {
			undo(subst, added)
			return nil, false
		}
		added = append(added, a...)
	}
	return added, true
}
