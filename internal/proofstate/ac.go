package proofstate

import (
	"saturn/internal/clause"
	"saturn/internal/sig"
	"saturn/internal/term"
)

// acStatusCheck implements spec.md §4.6 step 4 "If the clause is an
// AC-axiom instance, flip AC handling live and re-mark existing
// clauses." Detection is syntactic: a positive unit literal
// f(X,Y) = f(Y,X) for some binary symbol f and distinct variables X, Y
// flags f as AC in the signature. spec.md §9's Open Question ("the
// interaction between AC-handling activation mid-run and previously
// computed maximality caches is implicit") is resolved conservatively,
// per DESIGN.md: every live clause's maximality cache is recomputed
// clause-wide rather than only the triggering clause's.
func (st *State) acStatusCheck(c *clause.Clause) {
	if len(c.Literals) != 1 || !c.Literals[0].Positive {
		return
	}
	f, ok := commutativityFunctor(st.Bank, c.Literals[0].Left, c.Literals[0].Right)
	if !ok || st.acDetected[f] {
		return
	}
	st.acDetected[f] = true
	if entry := st.Sig.ByCode(f); entry != nil {
		entry.Flags |= sig.FlagAC
	}
	if !st.Ctrl.ACHandling {
		st.Ctrl.ACHandling = true
	}
	st.revalidateMaximality()
}

// commutativityFunctor recognizes f(X,Y) = f(Y,X) for distinct
// variables X and Y, returning f's functor code.
func commutativityFunctor(b *term.Bank, l, r term.ID) (term.FunCode, bool) {
	ln, rn := b.Node(l), b.Node(r)
	if ln.IsVar || rn.IsVar || ln.Functor != rn.Functor || len(ln.Args) != 2 || len(rn.Args) != 2 {
		return 0, false
	}
	x, y := ln.Args[0], ln.Args[1]
	if x == y {
		return 0, false
	}
	if !b.Node(x).IsVar || !b.Node(y).IsVar {
		return 0, false
	}
	if rn.Args[0] != y || rn.Args[1] != x {
		return 0, false
	}
	return ln.Functor, true
}

// revalidateMaximality recomputes every live clause's cached
// maximality/orientation flags across all five sets (spec.md §4.6 step
// 4, I7 "maximality flags are valid only while the underlying ordering
// and substitution are unchanged" — an AC flip doesn't change the
// ordering's comparisons that already held, but the conservative
// choice documented in DESIGN.md revalidates everything rather than
// reasoning about which comparisons the flip could have touched).
func (st *State) revalidateMaximality() {
	sets := append(st.processedSets(), st.Unprocessed)
	for _, s := range sets {
		for _, c := range s.All() {
			c.MaximalLiterals(st.Order)
		}
	}
}
