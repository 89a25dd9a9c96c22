// Package errors implements the core's error taxonomy (spec.md §7):
// input errors, budget errors, soft internal faults, and hard internal
// faults. Input errors are structured CompilerError values with source
// position and suggestions, reported the way the teacher's compiler
// reports semantic/parse errors. Hard internal faults panic with an
// InternalFault value and are recovered only at a process boundary
// (cmd/saturate), never inside the core.
package errors

// Position mirrors the teacher's ast.Position: a 1-based line/column
// pair plus byte offset, sufficient for caret-style diagnostics.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Error code ranges, mirrored from the teacher's internal/errors/codes.go
// layout but renumbered for the prover's own concerns:
//
// E0001-E0099: CNF clause-syntax parse errors
// E0100-E0199: Signature/arity errors
// E0200-E0299: Budget/resource errors (reported, never panicked)
// E0900-E0999: Internal faults (never reach the caller as CompilerError;
//
//	see InternalFault below)
const (
	ErrorUnexpectedToken    = "E0001"
	ErrorMalformedClause    = "E0002"
	ErrorDuplicateClauseTag = "E0003"
	ErrorUnknownRole        = "E0004"

	ErrorArityMismatch  = "E0100"
	ErrorUnknownSymbol  = "E0101"
	ErrorReservedSymbol = "E0102"

	ErrorStepBudget       = "E0200"
	ErrorProcessedBudget  = "E0201"
	ErrorUnprocessedBudget = "E0202"
	ErrorStorageBudget    = "E0203"
)

// GetErrorDescription returns a human-readable description of the error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "unexpected token while reading a cnf(...) clause"
	case ErrorMalformedClause:
		return "clause is missing a required component"
	case ErrorDuplicateClauseTag:
		return "two clauses were given the same name"
	case ErrorUnknownRole:
		return "clause role is not one of the recognized TPTP roles"
	case ErrorArityMismatch:
		return "function symbol used with two different arities"
	case ErrorUnknownSymbol:
		return "function symbol has no signature entry"
	case ErrorReservedSymbol:
		return "symbol name collides with a reserved built-in"
	case ErrorStepBudget, ErrorProcessedBudget, ErrorUnprocessedBudget, ErrorStorageBudget:
		return "a saturation-loop budget was exhausted"
	default:
		return "unknown error code"
	}
}

// Suggestion represents a suggested fix, shown beneath the error.
type Suggestion struct {
	Message     string
	Replacement string
	Position    Position
	Length      int
}

// ErrorLevel is the severity of a CompilerError.
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is an input error: malformed clause syntax, an unknown
// symbol, or an arity mismatch (spec.md §7). It never mutates ProofState.
type CompilerError struct {
	Level       ErrorLevel
	Code        string
	Message     string
	Position    Position
	Length      int
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

func (e CompilerError) Error() string {
	if e.Code != "" {
		return string(e.Level) + "[" + e.Code + "]: " + e.Message
	}
	return string(e.Level) + ": " + e.Message
}

// Fault names a hard internal fault (spec.md §7): term bank exhaustion
// after GC, signature overflow, or derivation-stack corruption. These
// are asserted invariant violations, not recoverable input problems.
type Fault string

const (
	FaultTermBankFull        Fault = "term bank exhausted after GC"
	FaultSignatureOverflow   Fault = "signature overflow: too many function symbols"
	FaultDerivationCorrupt   Fault = "derivation stack referenced a dead premise"
	FaultOrderingInconsistent Fault = "ordering comparison violated antisymmetry"
)

// InternalFault is panicked (never returned) for hard internal faults.
// The core itself never recovers it; cmd/saturate is the only recovery
// boundary, reporting Result = InternalError.
type InternalFault struct {
	Fault   Fault
	Context string
}

func (f InternalFault) Error() string {
	if f.Context == "" {
		return string(f.Fault)
	}
	return string(f.Fault) + ": " + f.Context
}

// Raise panics with an InternalFault. Called only from code paths
// spec.md §7 classifies as "shouldn't happen" invariant violations.
func Raise(fault Fault, context string) {
	panic(InternalFault{Fault: fault, Context: context})
}
