package term

import (
	"fmt"

	"saturn/internal/errors"
)

// sigKey is the hash-consing key for a function-coded term: functor
// plus the identity of each (already-shared) argument. Two terms insert
// to the same node iff their keys are equal (invariant I2).
type sigKey struct {
	functor FunCode
	args    string // packed argument IDs, built by packArgs
}

func packArgs(args []ID) string {
	if len(args) == 0 {
		return ""
	}
	buf := make([]byte, len(args)*4)
	for i, a := range args {
		buf[i*4] = byte(a)
		buf[i*4+1] = byte(a >> 8)
		buf[i*4+2] = byte(a >> 16)
		buf[i*4+3] = byte(a >> 24)
	}
	return string(buf)
}

// Weigher computes the per-symbol weight contribution of a function
// code, used when a node's Weight is first computed (spec.md I4). The
// default is uniform weight 1; NewBank accepts any other Weigher, such
// as a per-symbol override map in the style of the E prover's
// che_levweight/che_varweights (see SPEC_FULL.md §4.2a). Nothing in
// this module installs one: control.Control has no weight setting.
type Weigher func(f FunCode, arity int) int

func UniformWeigher(FunCode, int) int { return 1 }

// Bank is the hash-consed term arena (spec.md §4.1 TermBank). Every
// function-coded node lives in nodes[], keyed for sharing by sig. The
// free list is populated by GC and reused by subsequent inserts.
type Bank struct {
	nodes   []Node // nodes[0] is the unused NoTerm sentinel
	bySig   map[sigKey]ID
	free    []ID
	entryNo int
	weigher Weigher

	vars *VarBank
}

func NewBank(w Weigher) *Bank {
	if w == nil {
		w = UniformWeigher
	}
	b := &Bank{
		nodes:   make([]Node, 1), // reserve index 0 = NoTerm
		bySig:   make(map[sigKey]ID),
		weigher: w,
	}
	b.vars = newVarBank(b)
	return b
}

// Vars returns the bank's variable bank (spec.md §3 "Variable bank").
func (b *Bank) Vars() *VarBank { return b.vars }

func (b *Bank) Node(id ID) *Node {
	if id == NoTerm || int(id) >= len(b.nodes) {
		errors.Raise(errors.FaultTermBankFull, fmt.Sprintf("dereferenced invalid term id %d", id))
	}
	return &b.nodes[id]
}

// Insert shares a function-coded term: it first inserts arguments
// bottom-up (the caller is expected to have already-shared argument IDs
// since Insert is typically called via Build below), then looks up the
// (functor,args) key. On miss it allocates a fresh node, computing
// weight and the ground flag as the recursive sum/AND over arguments
// (invariants I3, I4).
func (b *Bank) Insert(f FunCode, args []ID) ID {
	key := sigKey{functor: f, args: packArgs(args)}
	if id, ok := b.bySig[key]; ok {
		return id
	}

	weight := b.weigher(f, len(args))
	ground := true
	for _, a := range args {
		an := b.Node(a)
		weight += an.Weight
		if !an.IsGround() {
			ground = false
		}
	}

	id := b.alloc()
	n := b.Node(id)
	n.Functor = f
	n.IsVar = false
	n.Args = append([]ID(nil), args...)
	n.Weight = weight
	n.Flags = 0
	if ground {
		n.Flags |= FlagGround
	}
	n.EntryNo = b.entryNo
	b.entryNo++
	b.bySig[key] = id
	return id
}

// Build recursively shares a whole tree described by a functor and
// already-built child IDs; a thin convenience over repeated Insert
// calls bottom-up, since most callers (the cnf parser, inference rules)
// build bottom-up naturally.
func (b *Bank) Build(f FunCode, children ...ID) ID {
	return b.Insert(f, children)
}

func (b *Bank) alloc() ID {
	if n := len(b.free); n > 0 {
		id := b.free[n-1]
		b.free = b.free[:n-1]
		b.nodes[id] = Node{}
		return id
	}
	b.nodes = append(b.nodes, Node{})
	return ID(len(b.nodes) - 1)
}

// Deref follows a node's Replace chain to the current normal form
// (spec.md §4.1: "downstream code follows such chains transparently").
func (b *Bank) Deref(id ID) ID {
	for {
		n := b.Node(id)
		if n.Replace == NoTerm {
			return id
		}
		id = n.Replace
	}
}

// MarkRewritten points from onto its rewrite target to (spec.md §4.1
// "Rewriting a node replaces it logically by pointing its replace field
// at the result"). Invariant I5 (NF dates monotone) is the caller's
// responsibility; MarkRewritten itself only records the pointer.
func (b *Bank) MarkRewritten(from, to ID) {
	n := b.Node(from)
	n.Replace = to
	n.Flags |= FlagRewritten
}

// ReplaceAt rebuilds the minimal spine of term with the subterm at
// position pos replaced by repl (spec.md §4.1 "position-based
// replacement"). pos is a sequence of 1-based argument indices from the
// root; an empty pos replaces the whole term.
func (b *Bank) ReplaceAt(root ID, pos []int, repl ID) ID {
	if len(pos) == 0 {
		return repl
	}
	n := b.Node(root)
	idx := pos[0] - 1
	if idx < 0 || idx >= len(n.Args) {
		errors.Raise(errors.FaultTermBankFull, "ReplaceAt: position out of range")
	}
	newArgs := append([]ID(nil), n.Args...)
	newArgs[idx] = b.ReplaceAt(n.Args[idx], pos[1:], repl)
	return b.Insert(n.Functor, newArgs)
}

// GC performs mark-and-sweep reclamation. roots enumerates every node
// reachable from outside the bank (clause sets, the temporary store,
// derivation premises, ordering caches — spec.md §4.1). GC must only be
// invoked between saturation-loop steps, when no cursor into the bank
// is live (spec.md §5); the loop enforces that by calling GC only from
// its own periodic-maintenance step.
func (b *Bank) GC(roots []ID) {
	marked := make([]bool, len(b.nodes))
	var mark func(id ID)
	mark = func(id ID) {
		if id == NoTerm || marked[id] {
			return
		}
		marked[id] = true
		n := b.Node(id)
		for _, a := range n.Args {
			mark(a)
		}
		if n.Replace != NoTerm {
			mark(n.Replace)
		}
	}
	for _, r := range roots {
		mark(r)
	}
	for _, v := range b.vars.all() {
		mark(v)
	}

	b.free = b.free[:0]
	for id := 1; id < len(b.nodes); id++ {
		if !marked[id] {
			n := &b.nodes[id]
			if !n.IsVar {
				key := sigKey{functor: n.Functor, args: packArgs(n.Args)}
				if b.bySig[key] == ID(id) {
					delete(b.bySig, key)
				}
			}
			b.free = append(b.free, ID(id))
		}
	}
}

// Len reports how many live+free node slots the bank currently holds,
// used by tests to observe GC behavior (spec.md §8 "no clause is leaked").
func (b *Bank) Len() int { return len(b.nodes) - 1 }
