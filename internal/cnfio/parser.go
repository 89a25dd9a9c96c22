package cnfio

import (
	"github.com/alecthomas/participle/v2"

	"saturn/internal/clause"
	"saturn/internal/deriv"
	"saturn/internal/errors"
	"saturn/internal/lit"
	"saturn/internal/sig"
	"saturn/internal/term"
)

// fileParser is built once at package init, exactly as
// internal/parser/parser.go's package-level `var parser = buildParser()`
// does: a stateful lexer, elided whitespace/comments, and lookahead
// enough to resolve the Source alternation's shared Ident prefix
// (grammar.go's Module/Struct/Function alternation needs the same
// trick, there via UseLookahead(3); the Source/Inference/FileSource
// ambiguity here needs one token more since both start "Ident (").
var fileParser = buildParser()

func buildParser() *participle.Parser[File] {
	p, err := participle.Build[File](
		participle.Lexer(ClauseLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseResult is one named, parsed clause plus the record of where it
// came from, ready to be pushed into a ProofState (spec.md §6 "Inbound
// from the CNF producer").
type ParseResult struct {
	Clause *clause.Clause
	Name   string
}

// buildCtx scopes one clause's variable-name -> index assignment: each
// cnf(...) record numbers its variables from 0 in order of first
// occurrence, so `X` in one record and `X` in another both become the
// same shared variable term (index 0). Parsed clauses are therefore not
// variable-disjoint; clause.Copy produces a variable-disjoint copy.
type buildCtx struct {
	tb   *term.Bank
	sig  *sig.Signature
	vars map[string]int
}

// ParseClauses reads a batch of `cnf(...)` records from src, sharing
// every term through tb and every symbol through s (spec.md §6
// "FormulaAndClauseSetParse(scanner, clause_set, formula_set,
// terms)" — formulas are out of scope, spec.md §1, so only the clause
// stream is produced here). Malformed input is an Input error (spec.md
// §7): ParseClauses never panics and returns no clause for a record
// that fails to convert, but symbols and terms interned for that
// record before the failing point stay in s and tb.
func ParseClauses(filename string, src []byte, tb *term.Bank, s *sig.Signature) ([]ParseResult, []errors.CompilerError) {
	file, err := fileParser.ParseBytes(filename, src)
	if err != nil {
		return nil, []errors.CompilerError{fromParticipleError(filename, err)}
	}

	var results []ParseResult
	var errs []errors.CompilerError
	nextID := clause.ID(1)
	seen := map[string]bool{}
	for _, cc := range file.Clauses {
		if seen[cc.Name] {
			errs = append(errs, errors.CompilerError{
				Level:   errors.Error,
				Code:    errors.ErrorDuplicateClauseTag,
				Message: "clause name " + cc.Name + " used more than once",
			})
			continue
		}
		seen[cc.Name] = true

		ctx := &buildCtx{tb: tb, sig: s, vars: map[string]int{}}
		lits, convErr := ctx.buildLiterals(cc.Disjunction)
		if convErr != nil {
			errs = append(errs, *convErr)
			continue
		}

		c := clause.New(nextID, lits, 0)
		nextID++
		applyRole(c, cc.Role)
		c.PushDerivation(buildDerivation(cc))
		results = append(results, ParseResult{Clause: c, Name: cc.Name})
	}
	return results, errs
}

func applyRole(c *clause.Clause, role string) {
	switch role {
	case "axiom", "hypothesis", "definition", "assumption", "lemma", "theorem":
		c.Properties |= clause.PropInitial
	case "negated_conjecture", "conjecture":
		c.Properties |= clause.PropInitial | clause.PropConjecture
	}
}

// buildDerivation records the parsed inference's parent names against
// the quoted clause (spec.md §3 "Derivation stack... I14"). Input
// clauses are quoted verbatim (deriv.OpCnfQuote); if the source names
// inference parents, they are kept as FormulaParents (string labels
// rather than clause.ID, since the referenced premise may be a sibling
// clause.ID not yet known at parse time and resolving names to ids is
// proofstate's job once the whole batch is loaded).
func buildDerivation(cc *CnfClause) *deriv.Record {
	rec := deriv.NewQuote()
	if cc.Source != nil && cc.Source.Inference != nil {
		rec.FormulaParents = append([]string(nil), cc.Source.Inference.Parents...)
	}
	return rec
}

func (ctx *buildCtx) buildLiterals(d *Disjunction) ([]*lit.Eqn, *errors.CompilerError) {
	if d == nil {
		return nil, &errors.CompilerError{Level: errors.Error, Code: errors.ErrorMalformedClause, Message: "clause has no literals"}
	}
	lits := make([]*lit.Eqn, 0, len(d.Literals))
	for _, l := range d.Literals {
		eq, err := ctx.buildLiteral(l)
		if err != nil {
			return nil, err
		}
		lits = append(lits, eq)
	}
	return lits, nil
}

func (ctx *buildCtx) buildLiteral(l *Literal) (*lit.Eqn, *errors.CompilerError) {
	left, err := ctx.buildTerm(l.Left)
	if err != nil {
		return nil, err
	}
	if l.Eq == nil {
		return lit.NewAtom(ctx.tb, ctx.sig, left, !l.Negated), nil
	}
	right, err := ctx.buildTerm(l.Eq.Right)
	if err != nil {
		return nil, err
	}
	// ~ and != each flip polarity once; both together cancel out
	// (`~ a != b` reads as `a = b`).
	positive := l.Negated == l.Eq.Neg
	return lit.NewEquational(left, right, positive), nil
}

// buildTerm converts a parsed Term into a shared term.ID, interning
// function symbols as it goes.
func (ctx *buildCtx) buildTerm(t *Term) (term.ID, *errors.CompilerError) {
	if t.Var != "" {
		return ctx.tb.Vars().Get(ctx.varSlot(t.Var), 0), nil
	}
	f := t.Func
	if f == nil {
		return term.NoTerm, &errors.CompilerError{Level: errors.Error, Code: errors.ErrorMalformedClause, Message: "empty term"}
	}
	switch f.Name {
	case "$true":
		return ctx.tb.Build(sig.True), nil
	case "$false":
		return ctx.tb.Build(sig.False), nil
	}
	args := make([]term.ID, len(f.Args))
	for i, a := range f.Args {
		id, err := ctx.buildTerm(a)
		if err != nil {
			return term.NoTerm, err
		}
		args[i] = id
	}
	entry, err := ctx.sig.InternStrict(f.Name, len(args), false)
	if err != nil {
		ce := err.(errors.CompilerError)
		return term.NoTerm, &ce
	}
	return ctx.tb.Build(entry.Code, args...), nil
}

// varSlot maps a variable's source-level name to a stable index within
// this clause's parse (spec.md §3 "Variable bank... a mapping from
// (index, type)"); every variable parsed here shares type 0 (cnfio
// carries no type system, matching spec.md's untyped first-order core).
func (ctx *buildCtx) varSlot(name string) int {
	idx, ok := ctx.vars[name]
	if !ok {
		idx = len(ctx.vars)
		ctx.vars[name] = idx
	}
	return idx
}

func fromParticipleError(filename string, err error) errors.CompilerError {
	pe, ok := err.(participle.Error)
	if !ok {
		return errors.CompilerError{Level: errors.Error, Code: errors.ErrorUnexpectedToken, Message: err.Error()}
	}
	pos := pe.Position()
	return errors.CompilerError{
		Level:   errors.Error,
		Code:    errors.ErrorUnexpectedToken,
		Message: pe.Message(),
		Position: errors.Position{
			Filename: filename,
			Offset:   pos.Offset,
			Line:     pos.Line,
			Column:   pos.Column,
		},
		Length: 1,
	}
}
