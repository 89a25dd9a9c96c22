package proofstate

import (
	"context"

	"saturn/internal/clause"
)

// Result is the saturation loop's closed outcome enum (spec.md §4.6
// "Termination predicates", §6 "Exit codes"; SPEC_FULL.md §6 narrows
// the CLI's seven exit codes to the six that are proofstate's own
// concern — PARSE-ERROR belongs to cnfio, which runs before a State
// ever exists). The cmd/saturate collaborator maps Result to a process
// exit code; proofstate itself never calls os.Exit (SPEC_FULL.md §6).
type Result int

const (
	Unknown Result = iota
	// Success is SUCCESS (spec.md §4.6): the empty clause was derived.
	Success
	// SaturatedComplete is SATURATED with no incompleteness flag set
	// (spec.md §4.6 "unprocessed empty... UNSAT iff no incompleteness
	// flag is set" — read the other way round, unprocessed empty and no
	// flag means the input is satisfiable under a complete strategy).
	SaturatedComplete
	// SaturatedIncomplete is the same termination with st.Incomplete()
	// true: deleteBad, the one heuristic that sets the flag, has
	// discarded clauses the complete inference system would have kept,
	// so SAT cannot be
	// concluded (spec.md §7 "users observe only aggregate counters and
	// the final proof/saturation verdict").
	SaturatedIncomplete
	// ResourceOut is any budget exhausted (spec.md §4.6, §7).
	ResourceOut
	// Timeout is an external deadline exceeded (spec.md §4.6
	// "Cancellation... time-is-up").
	Timeout
	// InternalError is reserved for the cmd/saturate boundary's recovery
	// of a panicking errors.InternalFault (SPEC_FULL.md §7); Run itself
	// never returns it; a hard internal fault always propagates as a
	// panic instead (spec.md §7 "the core itself never recovers its own
	// panics").
	InternalError
)

func (r Result) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case SaturatedComplete:
		return "SATURATED-COMPLETE"
	case SaturatedIncomplete:
		return "SATURATED-INCOMPLETE"
	case ResourceOut:
		return "RESOURCE-OUT"
	case Timeout:
		return "TIMEOUT"
	case InternalError:
		return "INTERNAL-ERROR"
	default:
		return "UNKNOWN"
	}
}

// checkBudgets reports whether any of Budgets' limits has been reached
// (spec.md §4.6 "Budgets", §7 "Budget errors... loop exits with
// RESOURCE-OUT"). Zero in a Budgets field means that field is
// unbounded.
func (st *State) checkBudgets() bool {
	b := st.Budgets
	switch {
	case b.MaxSteps > 0 && st.steps >= b.MaxSteps:
		return true
	case b.MaxGenerated > 0 && st.generated >= b.MaxGenerated:
		return true
	case b.MaxAnswers > 0 && st.answers >= b.MaxAnswers:
		return true
	case b.MaxTermStorage > 0 && st.Bank.Len() >= b.MaxTermStorage:
		return true
	}

	processed := 0
	for _, s := range st.processedSets() {
		processed += s.Size()
	}
	if b.MaxProcessed > 0 && processed >= b.MaxProcessed {
		return true
	}
	if b.MaxUnprocessed > 0 && st.Unprocessed.Size() >= b.MaxUnprocessed {
		return true
	}
	if b.MaxTotalClauses > 0 && processed+st.Unprocessed.Size() >= b.MaxTotalClauses {
		return true
	}
	return false
}

// Run drives the given-clause saturation loop to completion (spec.md
// §4.6's ten numbered steps). It never calls os.Exit and never recovers
// its own panics (SPEC_FULL.md §7): a hard internal fault propagates to
// whatever boundary the caller establishes.
func (st *State) Run(ctx context.Context) (Result, *clause.Clause) {
	for {
		if err := ctx.Err(); err != nil {
			return Timeout, nil
		}
		if st.checkBudgets() {
			return ResourceOut, nil
		}

		// Step 1: pick.
		given := st.pick()
		if given == nil {
			if st.incomplete {
				return SaturatedIncomplete, nil
			}
			return SaturatedComplete, nil
		}
		st.steps++

		// Step 2: forward-contract; step 3: empty-clause check.
		contracted := st.contract(given)
		if contracted.Dead {
			continue
		}
		current := contracted.Clause
		if len(current.Literals) == 0 {
			st.answers++
			return Success, current
		}

		// Step 4: AC-status check.
		st.acStatusCheck(current)

		// Step 6: select, evaluate, classify into a processed set.
		st.Ctrl.Selection.Select(st.Bank, st.Sig, current)
		current.MaximalLiterals(st.Order)
		st.evaluate(current)
		st.insertProcessed(current)

		// Step 5: backward-contract the rest of the processed sets
		// against the clause just accepted.
		st.backwardContract(current)

		// Step 7: generate.
		st.generateFrom(current)

		// Step 8: absorb, checking each survivor for the empty clause.
		if refutation := st.absorb(); refutation != nil {
			st.answers++
			return Success, refutation
		}

		// Step 10: optional SAT check at configured intervals.
		if st.satEveryStep > 0 && st.steps%st.satEveryStep == 0 {
			if empty := st.satCheck(ctx); empty != nil {
				st.answers++
				return Success, empty
			}
		}

		// Step 9: periodic maintenance.
		st.periodicMaintenance()
	}
}
