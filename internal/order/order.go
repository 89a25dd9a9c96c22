// Package order implements the reduction ordering (spec.md §4.2): LPO
// parameterized by a symbol precedence (term weights are not used), with the
// LPO4 bounded-recursion optimization. There is no teacher analog for a
// term ordering (Kanso has none); the algorithm follows spec.md §4.2
// directly and original_source/ORDERINGS/cto_lpo.c for the recursive
// structure (precedence-major, then lexicographic, then
// subterm-dominance) and the depth-limited "give up, report
// incomparable" fallback.
package order

import (
	"saturn/internal/sig"
	"saturn/internal/term"
)

// Comparison is the four-valued result of a reduction-ordering
// comparison (spec.md §4.2 contract).
type Comparison int

const (
	Incomparable Comparison = iota
	Greater
	Lesser
	Equal
)

func (c Comparison) String() string {
	switch c {
	case Greater:
		return ">"
	case Lesser:
		return "<"
	case Equal:
		return "="
	default:
		return "?"
	}
}

// DerefMode controls whether comparison follows a node's rewrite
// Replace chain before comparing (spec.md §4.2 "explicit dereference
// mode (never, once, always)").
type DerefMode int

const (
	DerefNever DerefMode = iota
	DerefOnce
	DerefAlways
)

// Precedence is a total order over function codes, with alphabetic
// rank (sig.Entry.Rank) as the built-in tie-breaker (spec.md §3).
type Precedence struct {
	sig *sig.Signature
	// explicit ranks a user strategy may install, overriding the
	// default (arity, then alphabetic rank) ordering (SPEC_FULL.md
	// §4.2a).
	explicit map[term.FunCode]int
}

func NewPrecedence(s *sig.Signature) *Precedence {
	return &Precedence{sig: s, explicit: make(map[term.FunCode]int)}
}

// SetExplicit installs a strategy-chosen total order over function
// codes; rank is any totally ordered integer key the caller assigns.
func (p *Precedence) SetExplicit(f term.FunCode, rank int) {
	p.explicit[f] = rank
}

// Compare returns >0, <0, or 0 according to f's precedence relative to g.
func (p *Precedence) Compare(f, g term.FunCode) int {
	if f == g {
		return 0
	}
	rf, rg := p.rank(f), p.rank(g)
	if rf != rg {
		return rf - rg
	}
	return int(f) - int(g)
}

func (p *Precedence) rank(f term.FunCode) int {
	if r, ok := p.explicit[f]; ok {
		return r
	}
	e := p.sig.ByCode(f)
	if e == nil {
		return 0
	}
	// Fallback: arity first, then alphabetic rank (SPEC_FULL.md §4.2a).
	return e.Arity*1_000_000 + e.Rank
}

// OCB (Order Control Block, spec.md §4.2) bundles the term bank, the
// precedence, and the LPO4 recursion-depth bound (spec.md §4.2:
// "bounded recursion with a configurable depth limit; on overflow,
// report incomparable").
type OCB struct {
	Bank       *term.Bank
	Precedence *Precedence
	MaxDepth   int // 0 = unbounded
}

func NewOCB(bank *term.Bank, prec *Precedence) *OCB {
	return &OCB{Bank: bank, Precedence: prec, MaxDepth: 4096}
}

// Compare implements LPO (spec.md §4.2). derefMode controls whether s
// and t are dereferenced through their Replace chains first.
func (o *OCB) Compare(s, t term.ID, derefMode DerefMode) Comparison {
	s = o.deref(s, derefMode)
	t = o.deref(t, derefMode)
	return o.lpo(s, t, derefMode, 0)
}

func (o *OCB) deref(id term.ID, mode DerefMode) term.ID {
	switch mode {
	case DerefOnce:
		n := o.Bank.Node(id)
		if n.Replace != term.NoTerm {
			return n.Replace
		}
		return id
	case DerefAlways:
		return o.Bank.Deref(id)
	default:
		return id
	}
}

func (o *OCB) lpo(s, t term.ID, mode DerefMode, depth int) Comparison {
	if s == t {
		return Equal
	}
	if o.MaxDepth > 0 && depth > o.MaxDepth {
		return Incomparable // LPO4 bound exceeded: sound, may lose completeness for this call
	}

	sn, tn := o.Bank.Node(s), o.Bank.Node(t)

	if sn.IsVar {
		if tn.IsVar {
			return Incomparable
		}
		return Incomparable // a variable is never greater than a non-variable
	}
	if tn.IsVar {
		if o.Bank.Occurs(t, s) {
			return Greater
		}
		return Incomparable
	}

	cmp := o.Precedence.Compare(sn.Functor, tn.Functor)
	switch {
	case cmp > 0:
		if o.allArgsLess(s, t, mode, depth) {
			return Greater
		}
		return o.viaSubterm(s, t, mode, depth)
	case cmp < 0:
		if o.allArgsLess(t, s, mode, depth) {
			return Lesser
		}
		return o.viaSubtermSwapped(s, t, mode, depth)
	default:
		lex := o.lexCompare(sn.Args, tn.Args, mode, depth)
		switch lex {
		case Greater:
			if o.allArgsLess(s, t, mode, depth) {
				return Greater
			}
		case Lesser:
			if o.allArgsLess(t, s, mode, depth) {
				return Lesser
			}
		}
		return o.viaSubtermEither(s, t, mode, depth)
	}
}

// allArgsLess reports whether s > every argument of t (the recursive
// side-condition shared by all three LPO cases, spec.md §4.2).
func (o *OCB) allArgsLess(s, t term.ID, mode DerefMode, depth int) bool {
	tn := o.Bank.Node(t)
	for _, ti := range tn.Args {
		if o.lpo(s, ti, mode, depth+1) != Greater {
			return false
		}
	}
	return true
}

func (o *OCB) lexCompare(sargs, targs []term.ID, mode DerefMode, depth int) Comparison {
	n := len(sargs)
	if len(targs) < n {
		n = len(targs)
	}
	for i := 0; i < n; i++ {
		c := o.lpo(sargs[i], targs[i], mode, depth+1)
		if c != Equal {
			return c
		}
	}
	if len(sargs) == len(targs) {
		return Equal
	}
	if len(sargs) > len(targs) {
		return Greater
	}
	return Lesser
}

// viaSubterm covers the third LPO disjunct: some argument of s is >= t.
func (o *OCB) viaSubterm(s, t term.ID, mode DerefMode, depth int) Comparison {
	sn := o.Bank.Node(s)
	for _, si := range sn.Args {
		c := o.lpo(si, t, mode, depth+1)
		if c == Greater || c == Equal {
			return Greater
		}
	}
	return Incomparable
}

func (o *OCB) viaSubtermSwapped(s, t term.ID, mode DerefMode, depth int) Comparison {
	tn := o.Bank.Node(t)
	for _, ti := range tn.Args {
		c := o.lpo(s, ti, mode, depth+1)
		if c == Lesser || c == Equal {
			return Lesser
		}
	}
	return Incomparable
}

func (o *OCB) viaSubtermEither(s, t term.ID, mode DerefMode, depth int) Comparison {
	sn := o.Bank.Node(s)
	for _, si := range sn.Args {
		c := o.lpo(si, t, mode, depth+1)
		if c == Greater || c == Equal {
			return Greater
		}
	}
	tn := o.Bank.Node(t)
	for _, ti := range tn.Args {
		c := o.lpo(s, ti, mode, depth+1)
		if c == Lesser || c == Equal {
			return Lesser
		}
	}
	return Incomparable
}

// Geq reports s >= t, the comparison most call sites actually need
// (spec.md §4.3's "l >= r" orientation check).
func (o *OCB) Geq(s, t term.ID, mode DerefMode) bool {
	c := o.Compare(s, t, mode)
	return c == Greater || c == Equal
}
