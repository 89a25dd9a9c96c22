// Package clause implements Clause and ClauseSet (spec.md §3, §4.3):
// an ordered literal multiset with property bits, a creation date, a
// derivation-stack reference, and an evaluation vector, plus the
// doubly linked clause set with lazily built subsumption/demodulator/
// paramod-position indices. Grounded on the teacher's
// OptimizationPipeline bookkeeping (internal/ir/optimizations.go's
// "rebuild on demand, invalidate on mutation" discipline), generalized
// from a program's instruction list to a clause's literal list and a
// proof state's clause set.
package clause

import (
	"sort"

	"saturn/internal/lit"
	"saturn/internal/order"
	"saturn/internal/term"
)

type Property uint16

const (
	PropInitial Property = 1 << iota
	PropConjecture
	PropProcessed
	PropDead
	PropInSoS
)

// ID uniquely identifies a clause for the lifetime of a ProofState
// (spec.md §3 "a unique identity").
type ID uint64

// Clause is the prover's unit of work (spec.md §3, §4.3).
type Clause struct {
	Ident ID

	Literals []*lit.Eqn
	PosCount int
	NegCount int

	Properties Property
	Created    int // creation date, a monotonic counter (spec.md §3)

	// Derivation is an opaque back-pointer into the derivation package;
	// clause does not depend on deriv to avoid an import cycle (deriv
	// records reference clauses, not the reverse), so this is stored as
	// an interface any deriv.Record satisfies.
	Derivation interface{}

	// Eval is the heuristic evaluation vector (spec.md §4.5), one score
	// per configured weight function; control.Control decides its length
	// and meaning.
	Eval []float64

	set  *Set
	next *Clause
	prev *Clause
}

func (c *Clause) Dead() bool       { return c.Properties&PropDead != 0 }
func (c *Clause) Processed() bool  { return c.Properties&PropProcessed != 0 }
func (c *Clause) Conjecture() bool { return c.Properties&PropConjecture != 0 }

func (c *Clause) setProp(p Property, v bool) {
	if v {
		c.Properties |= p
	} else {
		c.Properties &^= p
	}
}

func (c *Clause) MarkDead()           { c.setProp(PropDead, true) }
func (c *Clause) MarkProcessed()      { c.setProp(PropProcessed, true) }
func (c *Clause) SetConjecture(v bool) { c.setProp(PropConjecture, v) }

// New allocates a clause from a literal list (spec.md §4.3 "Allocate
// from a literal list"). It normalizes the literal order (I11) and
// recomputes the positive/negative counts, but does NOT check for
// tautology or duplicate literals — callers run Normalize (which drops
// duplicates, I8) and the tautology checks explicitly, since those
// require an OCB/term bank the bare constructor does not need.
func New(id ID, literals []*lit.Eqn, created int) *Clause {
	c := &Clause{Ident: id, Literals: literals, Created: created}
	c.sortLiterals()
	c.RecountLiterals()
	return c
}

// sortLiterals enforces I11: positive literals first, then negative,
// with a deterministic tie-breaker (lexicographic on Left/Right term
// ids, which are stable once hash-consed) so two clauses with the same
// literal multiset compare equal after normalization.
func (c *Clause) sortLiterals() {
	sort.SliceStable(c.Literals, func(i, j int) bool {
		li, lj := c.Literals[i], c.Literals[j]
		if li.Positive != lj.Positive {
			return li.Positive // positive before negative
		}
		if li.Left != lj.Left {
			return li.Left < lj.Left
		}
		return li.Right < lj.Right
	})
}

// RecountLiterals recomputes PosCount/NegCount after any mutation of
// Literals (spec.md §4.3 "recompute literal counts").
func (c *Clause) RecountLiterals() {
	c.PosCount, c.NegCount = 0, 0
	for _, l := range c.Literals {
		if l.Positive {
			c.PosCount++
		} else {
			c.NegCount++
		}
	}
}

// RemoveDuplicates enforces I8 (no duplicate literals), run after any
// operation that may introduce one (subst application, factoring).
func (c *Clause) RemoveDuplicates() {
	out := c.Literals[:0]
	for _, l := range c.Literals {
		dup := false
		for _, kept := range out {
			if kept.Equal(l) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	c.Literals = out
	c.RecountLiterals()
}

// NormalizeVariables renames every variable occurring in the clause to
// a canonical index in traversal order (spec.md §4.3), rebuilding each
// literal's terms through the bank so sharing is preserved.
func (c *Clause) NormalizeVariables(b *term.Bank) {
	subst := term.Substitution{}
	next := 0
	var walk func(id term.ID) term.ID
	walk = func(id term.ID) term.ID {
		n := b.Node(id)
		if n.IsVar {
			if bound, ok := subst[id]; ok {
				return bound
			}
			fresh := b.Vars().Get(next, n.VarType)
			next++
			subst[id] = fresh
			return fresh
		}
		return id
	}
	// First pass assigns the canonical substitution in traversal order.
	for _, l := range c.Literals {
		walkTerm(b, l.Left, walk)
		walkTerm(b, l.Right, walk)
	}
	// Second pass renames simultaneously: a renamed variable is never renamed again.
	var rename func(id term.ID) term.ID
	rename = func(id term.ID) term.ID {
		n := b.Node(id)
		if n.IsVar {
			return subst[id]
		}
		args := make([]term.ID, len(n.Args))
		for i, a := range n.Args {
			args[i] = rename(a)
		}
		return b.Insert(n.Functor, args)
	}
	for _, l := range c.Literals {
		l.Left = rename(l.Left)
		l.Right = rename(l.Right)
	}
}

func walkTerm(b *term.Bank, id term.ID, visit func(term.ID) term.ID) {
	n := b.Node(id)
	if n.IsVar {
		visit(id)
		return
	}
	for _, a := range n.Args {
		walkTerm(b, a, visit)
	}
}

// IsCheapTautology detects a tautology without the ground-completion
// test (spec.md §4.3, I10, I9): a trivial positive X = X literal, or a
// complementary pair of literals (same atom, opposite sign).
func (c *Clause) IsCheapTautology() bool {
	for _, l := range c.Literals {
		if l.IsTrivial() {
			return true
		}
	}
	for i, li := range c.Literals {
		for j := i + 1; j < len(c.Literals); j++ {
			if li.Resolvable(c.Literals[j]) {
				return true
			}
		}
	}
	return false
}

// Copy returns a variable-disjoint copy of c (spec.md §4.3 "copy
// (variable-disjoint)"), renaming every variable to a fresh index from
// the bank's variable bank so the copy shares no variable with any
// other live clause.
func (c *Clause) Copy(b *term.Bank, newID ID, created int) *Clause {
	offset := b.Vars().ReserveOffset()
	subst := term.Substitution{}
	lits := make([]*lit.Eqn, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = l.Apply(b, renumberSubst(b, l, offset, subst))
	}
	cp := New(newID, lits, created)
	cp.Properties = c.Properties &^ PropProcessed &^ PropDead
	return cp
}

func renumberSubst(b *term.Bank, l *lit.Eqn, offset int, subst term.Substitution) term.Substitution {
	for _, id := range []term.ID{l.Left, l.Right} {
		for _, v := range b.VarsIn(id) {
			if _, ok := subst[v]; ok {
				continue
			}
			n := b.Node(v)
			subst[v] = b.Vars().Get(n.VarIndex+offset, n.VarType)
		}
	}
	return subst
}

// PushDerivation attaches a derivation record (spec.md §4.3 "push a
// derivation record"); deriv.Record values satisfy interface{} here to
// avoid a clause<->deriv import cycle.
func (c *Clause) PushDerivation(d interface{}) { c.Derivation = d }

// MaximalLiterals recomputes each literal's Maximal/StrictlyMaximal/
// Oriented flags against the clause's own literal list under o
// (spec.md §4.3, invariant I7: maximality is cached relative to the
// owning clause's current literal list and must be recomputed whenever
// that list changes).
func (c *Clause) MaximalLiterals(o *order.OCB) {
	for _, l := range c.Literals {
		l.Orient(o)
	}
	for i, li := range c.Literals {
		maximal, strict := true, true
		for j, lj := range c.Literals {
			if i == j {
				continue
			}
			cmp := compareLiterals(o, li, lj)
			switch cmp {
			case order.Lesser:
				maximal, strict = false, false
			case order.Equal:
				strict = false
			}
		}
		li.SetMaximal(maximal)
		li.SetStrictlyMaximal(strict)
	}
}

// compareLiterals orders two literals by comparing their multiset of
// terms {Left, Right} under the term ordering, the standard literal
// extension of a term ordering (spec.md §4.2 "lifted to literals and
// clauses").
func compareLiterals(o *order.OCB, a, b *lit.Eqn) order.Comparison {
	amax := o.Compare(a.Left, a.Right, order.DerefAlways)
	if amax == order.Lesser {
		a = &lit.Eqn{Left: a.Right, Right: a.Left, Positive: a.Positive}
	}
	bmax := o.Compare(b.Left, b.Right, order.DerefAlways)
	if bmax == order.Lesser {
		b = &lit.Eqn{Left: b.Right, Right: b.Left, Positive: b.Positive}
	}
	cmpLeft := o.Compare(a.Left, b.Left, order.DerefAlways)
	if cmpLeft != order.Equal {
		return cmpLeft
	}
	return o.Compare(a.Right, b.Right, order.DerefAlways)
}
