// Command saturate is the CLI collaborator (spec.md §6 "Exit codes
// (from the CLI collaborator)", SPEC_FULL.md §6): it reads a TPTP-style
// CNF file, runs the saturation core to completion or exhaustion, and
// prints either the refutation's derivation or the saturation verdict.
// It is the one place that calls os.Exit and the one place that
// recovers an errors.InternalFault panic (SPEC_FULL.md §7) — the core
// itself never does either.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"saturn/internal/clause"
	"saturn/internal/cnfio"
	"saturn/internal/control"
	"saturn/internal/errors"
	"saturn/internal/order"
	"saturn/internal/proofstate"
	"saturn/internal/satbridge"
	"saturn/internal/sig"
	"saturn/internal/term"
)

func exitCode(r proofstate.Result) int {
	switch r {
	case proofstate.Success:
		return 0
	case proofstate.SaturatedComplete:
		return 1
	case proofstate.SaturatedIncomplete:
		return 2
	case proofstate.ResourceOut:
		return 3
	case proofstate.Timeout:
		return 4
	default:
		return 5 // InternalError, or a caught panic
	}
}

func main() {
	timeout := flag.Duration("timeout", 0, "wall-clock deadline for the saturation run (0 disables)")
	maxSteps := flag.Int("max-steps", 0, "step budget override (0 keeps the default)")
	satInterval := flag.Int("sat-check-every", 0, "consult the SAT collaborator every N steps (0 disables)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: saturate [flags] <file.cnf>")
		os.Exit(5)
	}
	path := flag.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "saturate: %v\n", err)
		os.Exit(5)
	}

	code, exitNow := run(path, src, *timeout, *maxSteps, *satInterval)
	if exitNow {
		os.Exit(code)
	}
}

// run is split out from main so a recovered panic can still set the
// exit code through a named return rather than calling os.Exit from
// inside the deferred recover (SPEC_FULL.md §7 "recovered only at the
// cmd/saturate boundary and reported as Result = InternalError").
func run(path string, src []byte, timeout time.Duration, maxSteps, satInterval int) (code int, exitNow bool) {
	exitNow = true
	defer func() {
		if r := recover(); r != nil {
			if fault, ok := r.(errors.InternalFault); ok {
				fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("internal error"), fault)
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("internal error"), r)
			}
			code = exitCode(proofstate.InternalError)
		}
	}()

	bank := term.NewBank(nil)
	s := sig.New()

	results, parseErrs := cnfio.ParseClauses(path, src, bank, s)
	if len(parseErrs) > 0 {
		reporter := errors.NewReporter(path, string(src))
		for _, pe := range parseErrs {
			fmt.Fprintln(os.Stderr, reporter.Format(pe))
		}
		return 6, true
	}

	prec := order.NewPrecedence(s)
	ocb := order.NewOCB(bank, prec)
	ctrl := control.Default()

	st := proofstate.New(bank, s, ocb, ctrl)
	if maxSteps > 0 {
		st.Budgets.MaxSteps = maxSteps
	}
	for _, r := range results {
		st.AddInitial(r.Clause)
	}
	if satInterval > 0 {
		st.SetSolver(satbridge.NewGiniSolver(), satInterval)
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, refutation := st.Run(ctx)
	reportResult(os.Stdout, st, result, refutation)
	return exitCode(result), true
}

func reportResult(w *os.File, st *proofstate.State, result proofstate.Result, refutation *clause.Clause) {
	switch result {
	case proofstate.Success:
		fmt.Fprintln(w, color.GreenString("SZS Status: Unsatisfiable"))
		d := st.Derivation(refutation)
		if err := cnfio.Print(w, st.Bank, st.Sig, d); err != nil {
			fmt.Fprintf(os.Stderr, "saturate: printing derivation: %v\n", err)
		}
	case proofstate.SaturatedComplete:
		fmt.Fprintln(w, color.GreenString("SZS Status: Satisfiable"))
	case proofstate.SaturatedIncomplete:
		fmt.Fprintln(w, color.YellowString("SZS Status: GaveUp"))
	case proofstate.ResourceOut:
		fmt.Fprintln(w, color.YellowString("SZS Status: ResourceOut"))
	case proofstate.Timeout:
		fmt.Fprintln(w, color.YellowString("SZS Status: Timeout"))
	default:
		fmt.Fprintln(w, color.RedString("SZS Status: Error"))
	}
	fmt.Fprintf(w, "%s steps, %d clauses generated\n", color.CyanString("%d", st.Steps()), st.Generated())
}
