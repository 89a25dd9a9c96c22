// Package deriv implements the per-clause derivation stack and proof
// extraction (spec.md §3 "Derivation stack", §4.7). A Record packs an
// operation code drawn from the closed tagged alphabet spec.md §3 names
// with pointers to the clause premises it used; Compute walks every
// reachable Record breadth-first from a root clause (normally the empty
// clause), then topologically sorts and renumbers the result for
// presentation (spec.md §4.7 "Cycles are impossible by (I15)").
//
// Grounded on the teacher's internal/errors/reporter.go structured-
// record-with-position-and-notes shape, generalized from "one error, one
// position, some notes" to "one inference, some premises, one rule
// name", and on original_source/CLAUSES/ccl_derivation.{c,h} for the
// concrete operation-code alphabet (DCRewrite, DCParamod, ...).
package deriv

import "saturn/internal/clause"

// OpCode is one member of the closed tagged alphabet spec.md §3 names.
// Grounded directly on original_source/CLAUSES/ccl_derivation.h's
// DerivationCodes enum (DCNop, DCRewrite, DCParamod, ...); names are
// kept recognizable but not identical, since the redesign drops the C
// enum's packed Arg1Cnf/Arg1Fof bit tricks in favor of typed fields
// (spec.md §9 "the bit-trick metadata... becomes per-variant
// structure").
type OpCode int

const (
	OpNop OpCode = iota
	OpCnfQuote
	OpFofQuote
	OpRewrite
	OpApplyDef
	OpContextSR
	OpDesEqRes
	OpSR
	OpACRes
	OpCondense
	OpParamod
	OpSimParamod
	OpOrderedFactor
	OpEqFactor
	OpEqRes
	OpSplitEquiv
	OpIntroDef
)

func (o OpCode) String() string {
	switch o {
	case OpNop:
		return "nop"
	case OpCnfQuote:
		return "cnf_quote"
	case OpFofQuote:
		return "fof_quote"
	case OpRewrite:
		return "rw"
	case OpApplyDef:
		return "apply_def"
	case OpContextSR:
		return "csr"
	case OpDesEqRes:
		return "desEqRes"
	case OpSR:
		return "sr"
	case OpACRes:
		return "acRes"
	case OpCondense:
		return "condense"
	case OpParamod:
		return "paramod"
	case OpSimParamod:
		return "simParamod"
	case OpOrderedFactor:
		return "factor"
	case OpEqFactor:
		return "eqFactor"
	case OpEqRes:
		return "eqRes"
	case OpSplitEquiv:
		return "splitEquiv"
	case OpIntroDef:
		return "introDef"
	default:
		return "?"
	}
}

// Record is the derivation entry pushed onto a clause via
// clause.Clause.PushDerivation (spec.md §3 "packed sequence of
// operation codes interleaved with pointers to premise clauses/
// formulas", I14: "every premise listed in a derivation stack is
// reachable (live) until the owning clause is freed"). Parents holds
// clause premises; FormulaParents holds the (rare) formula-valued slots
// the C source's Arg1Fof/Arg2Fof bits distinguished — named here as a
// separate typed field per spec.md §9's redesign note, carrying just a
// label since FOF formulas themselves are out of the core's scope
// (spec.md §1 "CNF transformation... treated as external collaborator").
type Record struct {
	Op             OpCode
	Parents        []clause.ID
	FormulaParents []string
}

// NewRecord builds a derivation record for a clause-only inference, the
// common case for every generating/simplifying rule in internal/infer.
func NewRecord(op OpCode, parents ...clause.ID) *Record {
	return &Record{Op: op, Parents: append([]clause.ID(nil), parents...)}
}

// NewQuote builds the derivation record for a clause accepted verbatim
// from the external CNF producer (spec.md §6 "inbound from the CNF
// producer"), with no clause premises.
func NewQuote() *Record {
	return &Record{Op: OpCnfQuote}
}

// Node is one entry of an extracted, renumbered Derivation (spec.md
// §4.7 "emit each node with its inference record").
type Node struct {
	Clause *clause.Clause
	Record *Record
	Number int
}

// Derivation is the topologically sorted, renumbered proof DAG produced
// by Compute (spec.md §4.7).
type Derivation struct {
	Nodes []*Node
}

// Compute extracts the derivation of root: breadth-first traversal
// marking every referenced clause (spec.md §4.7 "traverse derivation
// stacks breadth-first from roots, marking every referenced clause"),
// then a topological sort (Kahn's algorithm, since I15 guarantees a DAG
// with no cycles) so every premise is renumbered strictly before any
// clause that cites it. lookup resolves a clause.ID to its live
// *clause.Clause; proofstate.State owns that map since deriv does not
// itself store clauses (spec.md §9: clauses live in one arena, deriv
// only references them by id).
func Compute(root *clause.Clause, lookup func(clause.ID) *clause.Clause) *Derivation {
	reachable := map[clause.ID]*clause.Clause{root.Ident: root}
	queue := []*clause.Clause{root}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		rec, ok := c.Derivation.(*Record)
		if !ok || rec == nil {
			continue
		}
		for _, p := range rec.Parents {
			if _, seen := reachable[p]; seen {
				continue
			}
			pc := lookup(p)
			if pc == nil {
				continue // premise already freed; derivation still valid sans presentation of that node
			}
			reachable[p] = pc
			queue = append(queue, pc)
		}
	}

	// Kahn's algorithm: an edge runs parent -> child (a premise must be
	// numbered before anything that cites it).
	childrenOf := map[clause.ID][]clause.ID{}
	indegree := map[clause.ID]int{}
	for id := range reachable {
		indegree[id] = 0
	}
	for id, c := range reachable {
		rec, ok := c.Derivation.(*Record)
		if !ok || rec == nil {
			continue
		}
		for _, p := range rec.Parents {
			if _, ok := reachable[p]; !ok {
				continue
			}
			childrenOf[p] = append(childrenOf[p], id)
			indegree[id]++
		}
	}

	var ready []clause.ID
	for id, d := range indegree {
		if d == 0 {
			ready = append(ready, id)
		}
	}
	sortIDs(ready)

	d := &Derivation{}
	n := 1
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		c := reachable[id]
		rec, _ := c.Derivation.(*Record)
		d.Nodes = append(d.Nodes, &Node{Clause: c, Record: rec, Number: n})
		n++
		next := childrenOf[id]
		sortIDs(next)
		for _, ch := range next {
			indegree[ch]--
			if indegree[ch] == 0 {
				ready = append(ready, ch)
			}
		}
	}
	return d
}

// sortIDs gives Compute a deterministic visitation order (spec.md §5
// "the order is deterministic given a fixed strategy... and fixed
// tie-breaker"); a simple insertion sort since ready-lists are small.
func sortIDs(ids []clause.ID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
