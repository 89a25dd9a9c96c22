// Package control implements ProofControl (spec.md §4.6, §6): the
// strategy record fixing selection function, paramodulation variant,
// AC-handling, split policy, and the filter/reweight/delete-bad budget
// thresholds for one saturation run. Grounded on
// internal/semantic/analyzer.go's NewAnalyzer construction-time
// configuration pattern (a handful of named options fixed once at
// construction and consulted read-only afterward by every pass).
package control

import (
	"saturn/internal/infer"
)

// ForwardDemodLevel selects how aggressively the saturation loop
// forward-demodulates the picked clause (spec.md §6 "forward-
// demodulation level (none/rules-only/full)").
type ForwardDemodLevel int

const (
	DemodNone ForwardDemodLevel = iota
	DemodRulesOnly
	DemodFull
)

// SplitPolicy controls whether (and how) a clause with independent
// literal groups is split into separate clauses sharing no variables
// (spec.md §6 "split-clauses policy"). The saturation loop does not
// read Control.Split: no policy value causes any clause to be split.
type SplitPolicy int

const (
	SplitOff SplitPolicy = iota
	SplitConservative
	SplitAggressive
)

// Weights bundles the heuristic priority-queue weighting used by Pick
// (spec.md §4.6 "weighted round-robin across evaluation channels").
type Weights struct {
	// SymbolCountWeight, PositionWeight and ConjectureDistanceWeight are
	// multiplied into per-clause evaluation channels the way a weighted
	// round-robin across priority functions combines them (spec.md
	// §4.6; see SPEC_FULL.md §4.2a); there is no single che_proofcontrol
	// analog in the pack for the channel-weight struct itself, but
	// ConjectureDistanceWeight's purpose — favoring clauses closer to
	// the conjecture — follows
	// original_source/HEURISTICS/che_levweight.c's conjecture-distance
	// priority function. Age always gets one channel with weight
	// AgeWeight, guaranteeing fairness (no clause starves forever)
	// independent of the others.
	SymbolCountWeight       int
	PositionWeight          int
	ConjectureDistanceWeight int
	AgeWeight               int
}

// DefaultWeights favors symbol-count (roughly "simplest first") five to
// one over pure age-based FIFO, the common default balance in
// DISCOUNT-style loops.
func DefaultWeights() Weights {
	return Weights{SymbolCountWeight: 5, PositionWeight: 1, ConjectureDistanceWeight: 0, AgeWeight: 1}
}

// Control is the full strategy record (spec.md §6 "Configuration").
type Control struct {
	Selection  infer.SelectionStrategy
	ParamodVariant infer.Variant

	ACHandling bool
	// DestructiveEqRes is the strategy record's destructive equality
	// resolution switch (spec.md §6
	// "equational-literal-destructive-equality-resolution on/off"). The
	// saturation loop does not act on it: equality resolution always
	// runs as a generating rule, never as part of clause normalization.
	DestructiveEqRes bool

	Split SplitPolicy

	ForwardDemod ForwardDemodLevel

	// Storage thresholds (spec.md §4.6 step 9 "periodic maintenance"):
	// FilterThreshold triggers a full forward-contraction sweep over
	// unprocessed once cumulative clause storage exceeds it;
	// ReweightThreshold triggers reweighting under budget pressure;
	// DeleteBadThreshold is the storage cap beyond which "bad" clauses
	// (by current evaluation) are deleted, marking completeness lost.
	FilterThreshold    int
	ReweightThreshold  int
	DeleteBadThreshold int

	Weights Weights

	// TautologyCheckLiteralCap bounds the ground-completion tautology
	// test's negative-literal count (spec.md §4.3 "capped at a
	// configurable negative-literal budget"); 0 uses
	// infer.DefaultTautologyCheckLiteralCap.
	TautologyCheckLiteralCap int
}

// Default returns a reasonable strategy: no literal selection beyond
// the minimum-negative heuristic, plain paramodulation, AC handling
// off, destructive equality resolution on (the usual superposition
// default), no splitting, rules-only forward demodulation, and
// generous storage thresholds suitable for small-to-medium problems.
func Default() *Control {
	return &Control{
		Selection:        infer.MinimumNegative{},
		ParamodVariant:   infer.Plain,
		ACHandling:       false,
		DestructiveEqRes: true,
		Split:            SplitOff,
		ForwardDemod:     DemodRulesOnly,

		FilterThreshold:    5_000,
		ReweightThreshold:  20_000,
		DeleteBadThreshold: 200_000,

		Weights: DefaultWeights(),

		TautologyCheckLiteralCap: infer.DefaultTautologyCheckLiteralCap,
	}
}
