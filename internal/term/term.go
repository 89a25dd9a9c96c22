// Package term implements the hash-consed, maximally shared term DAG
// (spec.md §3, §4.1): TermBank owns every node, identifies structurally
// equal terms, and tracks per-node rewrite state. Terms are referenced
// by ID everywhere else in the prover (clauses, literals, derivation
// records) rather than by pointer, per spec.md §9's "arena keyed by
// monotonic ids" redesign note — the id-based interning discipline is
// carried over from the teacher's internal/types/registry.go
// (TypeRegistry maps names to one canonical entry) and
// internal/semantic/symbols.go (SymbolTable, parent-chain scoping used
// here for the variable bank's scoped fresh-index counters).
package term

// FunCode identifies a function/predicate symbol in the owning
// Signature. Negative codes never occur here; a term is a variable iff
// its node's IsVar is true, and Functor is then unused (kept separate instead of
// overloading the sign, since Go has no natural "negative enum" idiom
// the way the original C source does).
type FunCode int32

// ID identifies a single shared term node within a Bank. The zero value
// NoTerm never denotes a real term.
type ID uint32

const NoTerm ID = 0

// Flag bits carried on every node (spec.md §3: "flag bits (shared,
// ground, rewritten, potential-paramod position, pseudo-variable, …)").
type Flag uint16

const (
	FlagGround Flag = 1 << iota
	FlagRewritten
	FlagPotentialParamodPosition
	FlagPseudoVariable
)

// Node is one entry in the term DAG. Subterm references (Args) are
// always IDs into the same Bank (invariant I1). IsVar is true iff this
// node is a variable; VarIndex/VarType are meaningful only then.
type Node struct {
	Functor  FunCode
	IsVar    bool
	VarIndex int
	VarType  FunCode
	Args     []ID

	Weight int
	Flags  Flag

	// NFDateRules/NFDateFull are the two normal-form dates of spec.md
	// §3/§4.1: a node known to be in normal form at level L need not be
	// re-examined until the demodulator set's max date at that level
	// exceeds the node's date. Level 0 = rules-only, level 1 = full.
	NFDateRules int
	NFDateFull  int

	// Replace is the rewrite back-pointer (spec.md §3): once non-zero,
	// this node has logically been replaced by the node at Replace, and
	// FlagRewritten is set. Callers follow the chain via Deref.
	Replace ID

	EntryNo int
}

func (n *Node) IsGround() bool { return n.Flags&FlagGround != 0 }

// Level selects which of the two normal-form dates an operation applies
// to (spec.md §4.1, §4.4 "forward-demodulation level").
type Level int

const (
	LevelRulesOnly Level = iota
	LevelFull
)

func (n *Node) NFDate(l Level) int {
	if l == LevelRulesOnly {
		return n.NFDateRules
	}
	return n.NFDateFull
}

func (n *Node) SetNFDate(l Level, date int) {
	if l == LevelRulesOnly {
		n.NFDateRules = date
	} else {
		n.NFDateFull = date
	}
}
