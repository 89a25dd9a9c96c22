// Package proofstate implements ProofState and the given-clause
// saturation loop (spec.md §3 "ProofState", §4.6 "Saturation loop").
// ProofState owns the term bank, signature, ordering control block,
// unprocessed clause set, the four processed clause sets (positive
// rules / positive equations / negative units / non-units), a
// temporary store for newly generated clauses, and the budgets and
// strategy (control.Control) that parameterize Run.
//
// Grounded on internal/ir/ir.go's BuildProgram/pipeline-Run driver
// shape (a thin constructor plus a Run entry point that repeatedly
// applies the engine until a fixpoint or a budget fires), generalized
// from "one pass over a program" to "repeatedly pick one clause at a
// time" (spec.md §9's redesign note: module-global state becomes
// explicit struct fields threaded through every entry point).
package proofstate

import (
	"saturn/internal/clause"
	"saturn/internal/control"
	"saturn/internal/deriv"
	"saturn/internal/infer"
	"saturn/internal/order"
	"saturn/internal/sig"
	"saturn/internal/term"
)

// Budgets bounds one saturation run (spec.md §4.6 "Budgets (step-count,
// processed-count, unprocessed-count, total-count, generated-count,
// term-storage, answer-count)"). Zero means unbounded for that field.
type Budgets struct {
	MaxSteps        int
	MaxProcessed    int
	MaxUnprocessed  int
	MaxTotalClauses int
	MaxGenerated    int
	MaxTermStorage  int
	MaxAnswers      int
}

// DefaultBudgets returns generous limits suitable for small-to-medium
// problems; a CLI or test that wants RESOURCE-OUT behavior on purpose
// overrides MaxSteps directly.
func DefaultBudgets() Budgets {
	return Budgets{
		MaxSteps:        1_000_000,
		MaxProcessed:    200_000,
		MaxUnprocessed:  500_000,
		MaxTotalClauses: 700_000,
		MaxGenerated:    2_000_000,
		MaxTermStorage:  0,
		MaxAnswers:      1,
	}
}

// State is ProofState (spec.md §3): the single mutable owner the
// saturation loop drives. All other components (term, sig, order, lit,
// clause, infer) expose pure-ish operations against handles State
// passes them explicitly (spec.md §5 "There is one logical owner of
// the ProofState at a time; all mutation happens in the saturation
// loop").
type State struct {
	Bank  *term.Bank
	Sig   *sig.Signature
	Order *order.OCB
	Ctrl  *control.Control

	Budgets Budgets

	Unprocessed *clause.Set
	PosRules    *clause.Set // oriented positive unit equations: demodulators
	PosEqs      *clause.Set // unoriented positive unit equations
	NegUnits    *clause.Set
	NonUnits    *clause.Set

	// temp is the temporary store for newly generated clauses pending
	// forward-contraction and insertion (spec.md §3 "a temporary store
	// for newly generated clauses pending insertion").
	temp []*clause.Clause

	nextClauseID clause.ID
	clock        int // monotonic creation-date counter

	steps      int
	generated  int
	answers    int
	incomplete bool // spec.md §4.6/§7: some heuristic deletion made saturation non-complete

	// byID tracks every clause ever allocated, live or dead, so
	// deriv.Compute can resolve a premise id even after its owning
	// clause has been extracted from its set (spec.md I14 "every
	// premise listed in a derivation stack is reachable (live) until
	// the owning clause is freed" — State never frees a clause's
	// record, only unlinks it from its Set).
	byID map[clause.ID]*clause.Clause

	ctx *infer.Context

	acDetected map[term.FunCode]bool

	solver       Solver
	satEveryStep int // 0 disables the optional SAT-collaborator check
}

// New builds an empty ProofState over bank/s/ocb, ready to receive
// initial clauses via AddInitial (spec.md §3 "created empty; fed by the
// CNF producer").
func New(bank *term.Bank, s *sig.Signature, ocb *order.OCB, ctrl *control.Control) *State {
	if ctrl == nil {
		ctrl = control.Default()
	}
	st := &State{
		Bank:         bank,
		Sig:          s,
		Order:        ocb,
		Ctrl:         ctrl,
		Budgets:      DefaultBudgets(),
		Unprocessed:  clause.NewSet(),
		PosRules:     clause.NewSet(),
		PosEqs:       clause.NewSet(),
		NegUnits:     clause.NewSet(),
		NonUnits:     clause.NewSet(),
		nextClauseID: 1,
		byID:         make(map[clause.ID]*clause.Clause),
		acDetected:   make(map[term.FunCode]bool),
	}
	st.ctx = &infer.Context{
		Bank:         bank,
		Sig:          s,
		Order:        ocb,
		NextClauseID: st.allocID,
		NextCreated:  st.tick,
	}
	return st
}

func (st *State) allocID() clause.ID {
	id := st.nextClauseID
	st.nextClauseID++
	return id
}

func (st *State) tick() int {
	st.clock++
	return st.clock
}

// AddInitial inserts an externally-produced clause (spec.md §6 "Inbound
// from the CNF producer") into Unprocessed, registering it in byID. It
// does not assign an id or creation date: AddInitial adopts whatever id
// and date the clause already carries (cnfio assigns ids itself),
// bumping the state's id counter past that id so later generated
// clauses never collide.
func (st *State) AddInitial(c *clause.Clause) {
	if c.Ident >= st.nextClauseID {
		st.nextClauseID = c.Ident + 1
	}
	st.byID[c.Ident] = c
	st.Unprocessed.Insert(c)
}

// SetSolver installs the optional SAT-solver collaborator (spec.md §4.5,
// §6) and the step interval at which the loop consults it; interval <=
// 0 disables the check (the default — spec.md §4.6 step 10 is
// "Optional").
func (st *State) SetSolver(solver Solver, interval int) {
	st.solver = solver
	st.satEveryStep = interval
}

// Incomplete reports whether any incompleteness-inducing heuristic has
// fired this run (spec.md §1 "the core records that its saturation no
// longer implies saturation in the complete sense").
func (st *State) Incomplete() bool { return st.incomplete }

func (st *State) Steps() int     { return st.steps }
func (st *State) Generated() int { return st.generated }

// Lookup resolves a clause.ID to its live record for deriv.Compute
// (spec.md §4.7); returns nil if the id was never allocated by this
// state.
func (st *State) Lookup(id clause.ID) *clause.Clause { return st.byID[id] }

// Derivation extracts the proof of root via the owning state's id table
// (spec.md §4.7).
func (st *State) Derivation(root *clause.Clause) *deriv.Derivation {
	return deriv.Compute(root, st.Lookup)
}

// processedSets returns the four processed sets in a fixed order, used
// by every "iterate all processed clauses" step (classification,
// generation, maintenance).
func (st *State) processedSets() []*clause.Set {
	return []*clause.Set{st.PosRules, st.PosEqs, st.NegUnits, st.NonUnits}
}

// allProcessed flattens every processed clause across the four sets.
func (st *State) allProcessed() []*clause.Clause {
	var out []*clause.Clause
	for _, s := range st.processedSets() {
		out = append(out, s.All()...)
	}
	return out
}

// allUnits flattens every live unit clause (oriented or not, positive
// or negative) across the three unit-bearing processed sets, the
// UnitResolution rule's view of "every unit positive or negative
// clause" (spec.md §4.4).
func (st *State) allUnits() []*clause.Clause {
	var out []*clause.Clause
	for _, s := range []*clause.Set{st.PosRules, st.PosEqs, st.NegUnits} {
		out = append(out, s.All()...)
	}
	return out
}

// totalClauses counts every live clause across all five sets (spec.md
// §4.6 "total-count" budget, periodic-maintenance storage thresholds).
func (st *State) totalClauses() int {
	total := st.Unprocessed.Size()
	for _, s := range st.processedSets() {
		total += s.Size()
	}
	return total
}
