package infer

import (
	"saturn/internal/clause"
	"saturn/internal/sig"
	"saturn/internal/term"
)

// SelectionStrategy chooses which negative literals of a clause are
// selected, restricting which literals may participate in
// paramodulation/resolution (spec.md §4.5). Computed once per clause,
// on first processing, and cached via the Selected flag.
type SelectionStrategy interface {
	Name() string
	Select(b *term.Bank, s *sig.Signature, c *clause.Clause)
}

// NoSelection never selects anything: every negative literal remains
// eligible (spec.md §4.5 "no selection").
type NoSelection struct{}

func (NoSelection) Name() string { return "no-selection" }
func (NoSelection) Select(*term.Bank, *sig.Signature, *clause.Clause) {}

// MinimumNegative selects exactly one minimum-weight negative literal
// per clause, the cheapest nontrivial pruning strategy (spec.md §4.5
// "one minimum-weight negative").
type MinimumNegative struct{}

func (MinimumNegative) Name() string { return "select-min-negative" }

func (MinimumNegative) Select(b *term.Bank, s *sig.Signature, c *clause.Clause) {
	clearSelection(c)
	best := -1
	bestWeight := -1
	for i, l := range c.Literals {
		if l.Positive {
			continue
		}
		w := b.Node(l.Left).Weight + b.Node(l.Right).Weight
		if bestWeight < 0 || w < bestWeight {
			bestWeight, best = w, i
		}
	}
	if best >= 0 {
		c.Literals[best].SetSelected(true)
	}
}

// AllNegativeHorn selects every negative literal in Horn-like clauses
// (at most one positive literal), leaving non-Horn clauses unselected
// (spec.md §4.5 "all negatives in horn-like clauses").
type AllNegativeHorn struct{}

func (AllNegativeHorn) Name() string { return "select-all-negative-horn" }

func (AllNegativeHorn) Select(b *term.Bank, s *sig.Signature, c *clause.Clause) {
	clearSelection(c)
	if c.PosCount > 1 {
		return
	}
	for _, l := range c.Literals {
		if !l.Positive {
			l.SetSelected(true)
		}
	}
}

// ArityBiased selects the negative literal whose atom has the largest
// symbol arity, a cheap proxy for "most specific" used to bias search
// toward unifying deep subterms first (spec.md §4.5 "arity-biased").
type ArityBiased struct{}

func (ArityBiased) Name() string { return "select-arity-biased" }

func (ArityBiased) Select(b *term.Bank, s *sig.Signature, c *clause.Clause) {
	clearSelection(c)
	best := -1
	bestArity := -1
	for i, l := range c.Literals {
		if l.Positive {
			continue
		}
		n := b.Node(l.Left)
		arity := len(n.Args)
		if e := s.ByCode(n.Functor); e != nil {
			arity = e.Arity
		}
		if arity > bestArity {
			bestArity, best = arity, i
		}
	}
	if best >= 0 {
		c.Literals[best].SetSelected(true)
	}
}

func clearSelection(c *clause.Clause) {
	for _, l := range c.Literals {
		l.SetSelected(false)
	}
}
