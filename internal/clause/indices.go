package clause

import "saturn/internal/term"

// featureIndex is a feature-vector index for subsumption (spec.md §3,
// §4.4). Each clause is summarized by a vector of cheap-to-compute
// features (literal count, positive/negative counts, total
// symbol-occurrence count); a clause can only subsume another if its feature
// vector is dominated (componentwise <=) by the candidate's, so the
// index prunes the expensive multiset-matching subsumption check down
// to a short candidate list. No single exact analog exists in the pack
// (original_source/CLAUSES/ has no fvindex file); the "necessary-
// condition pre-filter" shape follows spec.md §3's feature-vector-index
// description directly, expressed here as a flat scan rather than a
// sorted-tree structure, since a small-to-medium clause set does not
// need the tree's bucketing.
type featureIndex struct {
	entries []fvEntry
}

type fvEntry struct {
	clause *Clause
	vec    []int
}

func buildFeatureIndex(b *term.Bank, clauses []*Clause) *featureIndex {
	idx := &featureIndex{entries: make([]fvEntry, 0, len(clauses))}
	for _, c := range clauses {
		idx.entries = append(idx.entries, fvEntry{clause: c, vec: featureVector(b, c)})
	}
	return idx
}

// featureVector computes [literalCount, posCount, negCount, totalSymbolOccurrences].
func featureVector(b *term.Bank, c *Clause) []int {
	symOccurrences := 0
	for _, l := range c.Literals {
		symOccurrences += countSymbols(b, l.Left) + countSymbols(b, l.Right)
	}
	return []int{len(c.Literals), c.PosCount, c.NegCount, symOccurrences}
}

func countSymbols(b *term.Bank, id term.ID) int {
	n := b.Node(id)
	if n.IsVar {
		return 0
	}
	total := 1
	for _, a := range n.Args {
		total += countSymbols(b, a)
	}
	return total
}

// Candidates returns every clause whose feature vector does not rule
// out subsuming query — i.e. every component is <= query's. This is a
// necessary, not sufficient, condition (spec.md §4.4): callers still
// run full multiset-matching subsumption on the result.
func (idx *featureIndex) Candidates(b *term.Bank, query *Clause) []*Clause {
	qv := featureVector(b, query)
	var out []*Clause
	for _, e := range idx.entries {
		if e.clause == query {
			continue
		}
		if dominates(e.vec, qv) {
			out = append(out, e.clause)
		}
	}
	return out
}

func dominates(smaller, larger []int) bool {
	for i := range smaller {
		if smaller[i] > larger[i] {
			return false
		}
	}
	return true
}

// demodIndex indexes positive unit equations by the top symbol of
// their (oriented) maximal side, the standard discrimination-tree
// approach to finding rewrite-rule candidates for a given subterm
// (spec.md §3 "discrimination-tree demodulator index on maximal sides
// of positive unit equations").
type demodIndex struct {
	bySymbol map[term.FunCode][]*Clause
	varRules []*Clause // unit equations whose maximal side is a bare variable: match everything
}

func buildDemodIndex(b *term.Bank, clauses []*Clause) *demodIndex {
	idx := &demodIndex{bySymbol: make(map[term.FunCode][]*Clause)}
	for _, c := range clauses {
		if len(c.Literals) != 1 || !c.Literals[0].Positive {
			continue
		}
		l := c.Literals[0]
		if !l.Oriented() {
			continue
		}
		n := b.Node(l.Left)
		if n.IsVar {
			idx.varRules = append(idx.varRules, c)
			continue
		}
		idx.bySymbol[n.Functor] = append(idx.bySymbol[n.Functor], c)
	}
	return idx
}

// Candidates returns the unit-equation rules whose left-hand side might
// rewrite a term headed by functor f.
func (idx *demodIndex) Candidates(f term.FunCode) []*Clause {
	return append(append([]*Clause(nil), idx.bySymbol[f]...), idx.varRules...)
}

// fingerprintIndex indexes clauses by every function symbol occurring
// anywhere in the clause (node flags are not consulted), pruning paramod-into
// candidate search (spec.md §3 "fingerprint index on paramodulation
// positions").
type fingerprintIndex struct {
	bySymbol map[term.FunCode][]*Clause
}

func buildFingerprintIndex(b *term.Bank, clauses []*Clause) *fingerprintIndex {
	idx := &fingerprintIndex{bySymbol: make(map[term.FunCode][]*Clause)}
	seen := map[term.FunCode]bool{}
	for _, c := range clauses {
		for k := range seen {
			delete(seen, k)
		}
		for _, l := range c.Literals {
			collectSymbols(b, l.Left, seen)
			collectSymbols(b, l.Right, seen)
		}
		for f := range seen {
			idx.bySymbol[f] = append(idx.bySymbol[f], c)
		}
	}
	return idx
}

func collectSymbols(b *term.Bank, id term.ID, seen map[term.FunCode]bool) {
	n := b.Node(id)
	if n.IsVar {
		return
	}
	seen[n.Functor] = true
	for _, a := range n.Args {
		collectSymbols(b, a, seen)
	}
}

// Candidates returns every clause containing a subterm headed by f.
func (idx *fingerprintIndex) Candidates(f term.FunCode) []*Clause {
	return idx.bySymbol[f]
}
