// Package lit implements the oriented equational literal (spec.md §3,
// §4.3 Eqn): left/right terms, sign, and the oriented/maximal/
// strictly-maximal/selected flag bits, with maximality cached until
// the owning clause's literal list or the ordering changes. A
// non-equational atom P(...) is encoded as P(...) = $true, per
// spec.md §3. Grounded on the teacher's one-struct-per-node-kind-with-
// cached-derived-state discipline (internal/ast/node.go's per-node
// String()/metadata caching, generalized from AST nodes to literals).
package lit

import (
	"saturn/internal/order"
	"saturn/internal/sig"
	"saturn/internal/term"
)

type Flag uint8

const (
	FlagOriented Flag = 1 << iota
	FlagMaximal
	FlagStrictlyMaximal
	FlagSelected
)

// Eqn is one literal: Left <sign> Right. Equality is encoded with
// Signature's reserved Equality code conceptually, but Eqn stores the
// two sides directly (Left, Right) rather than as Equality(Left,Right),
// since every generating/simplifying rule needs direct side access
// (spec.md §4.4).
type Eqn struct {
	Left, Right term.ID
	Positive    bool
	flags       Flag
}

// NewEquational builds l <op> r, where op is = (positive) or != (negative).
func NewEquational(l, r term.ID, positive bool) *Eqn {
	return &Eqn{Left: l, Right: r, Positive: positive}
}

// NewAtom builds an encoded non-equational literal P(...) = $true
// (spec.md §3), or its negation.
func NewAtom(b *term.Bank, s *sig.Signature, atom term.ID, positive bool) *Eqn {
	trueTerm := b.Build(sig.True)
	return &Eqn{Left: atom, Right: trueTerm, Positive: positive}
}

func (e *Eqn) IsEquational(b *term.Bank) bool {
	n := b.Node(e.Right)
	return n.IsVar || n.Functor != sig.True
}

func (e *Eqn) Oriented() bool         { return e.flags&FlagOriented != 0 }
func (e *Eqn) Maximal() bool          { return e.flags&FlagMaximal != 0 }
func (e *Eqn) StrictlyMaximal() bool  { return e.flags&FlagStrictlyMaximal != 0 }
func (e *Eqn) Selected() bool         { return e.flags&FlagSelected != 0 }
func (e *Eqn) SetSelected(v bool)     { e.setFlag(FlagSelected, v) }
func (e *Eqn) SetMaximal(v bool)          { e.setFlag(FlagMaximal, v) }
func (e *Eqn) SetStrictlyMaximal(v bool)  { e.setFlag(FlagStrictlyMaximal, v) }

func (e *Eqn) setFlag(f Flag, v bool) {
	if v {
		e.flags |= f
	} else {
		e.flags &^= f
	}
}

// Orient caches l >= r or swaps sides so that it holds whenever the
// ordering decides one side strictly dominates (invariant I6). If the
// two sides are incomparable, Oriented is left unset.
func (e *Eqn) Orient(o *order.OCB) {
	switch o.Compare(e.Left, e.Right, order.DerefAlways) {
	case order.Greater, order.Equal:
		e.setFlag(FlagOriented, true)
	case order.Lesser:
		e.Left, e.Right = e.Right, e.Left
		e.setFlag(FlagOriented, true)
	default:
		e.setFlag(FlagOriented, false)
	}
}

// Copy returns a shallow copy with flags reset, used when building a
// new clause from existing literals (inference conclusions start with
// no cached maximality, since it depends on the new clause's full
// literal list — invariant I7).
func (e *Eqn) Copy() *Eqn {
	return &Eqn{Left: e.Left, Right: e.Right, Positive: e.Positive}
}

// Equal reports literal identity up to hash-consing: same sides
// (possibly swapped for an unordered equation), same sign.
func (e *Eqn) Equal(o *Eqn) bool {
	if e.Positive != o.Positive {
		return false
	}
	if e.Left == o.Left && e.Right == o.Right {
		return true
	}
	return e.Left == o.Right && e.Right == o.Left
}

// Resolvable reports whether e and o are the same atom with opposite
// signs (spec.md §4.3 "check for resolvability"), used by the cheap
// tautology check (I9) and by unit resolution (spec.md §4.4).
func (e *Eqn) Resolvable(o *Eqn) bool {
	if e.Positive == o.Positive {
		return false
	}
	return e.Left == o.Left && e.Right == o.Right
}

// IsTrivial reports a positive X = X literal (invariant I10).
func (e *Eqn) IsTrivial() bool {
	return e.Positive && e.Left == e.Right
}

// Apply rebuilds the literal under a substitution, reusing the bank's
// sharing (spec.md §4.3 "copy with/without term sharing").
func (e *Eqn) Apply(b *term.Bank, s term.Substitution) *Eqn {
	return &Eqn{Left: b.Apply(s, e.Left), Right: b.Apply(s, e.Right), Positive: e.Positive}
}
