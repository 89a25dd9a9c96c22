// Package sig implements the function-symbol table (spec.md §3, §4):
// names to function codes, arities, types, and flag bits (predicate,
// AC, interpreted, distinct-constant). Reserves the built-in codes for
// $true, $false, equality, and disjunction. Grounded on the teacher's
// internal/types/registry.go (TypeRegistry: name -> canonical entry,
// IsBuiltinType/IsUserDefinedType queries) generalized from type names
// to function symbols, and on original_source/TERMS/cte_signature.c for
// the concrete built-in reservations and alphabetic-rank tie-breaking.
package sig

import (
	"sort"
	"strconv"

	"saturn/internal/errors"
	"saturn/internal/term"
)

// SymbolFlag mirrors spec.md §3's "flag set" on a signature entry.
type SymbolFlag uint8

const (
	FlagPredicate SymbolFlag = 1 << iota
	FlagAC
	FlagInterpreted
	FlagDistinctConstant
)

type Entry struct {
	Name  string
	Code  term.FunCode
	Arity int
	Flags SymbolFlag
	// Rank is the alphabetic tie-breaker spec.md §3 reserves for
	// orderings that need a total order beyond arity/precedence.
	Rank int
}

func (e *Entry) IsPredicate() bool  { return e.Flags&FlagPredicate != 0 }
func (e *Entry) IsAC() bool         { return e.Flags&FlagAC != 0 }
func (e *Entry) IsInterpreted() bool { return e.Flags&FlagInterpreted != 0 }
func (e *Entry) IsDistinctConstant() bool { return e.Flags&FlagDistinctConstant != 0 }

// Reserved built-in codes (spec.md §3: "$true, $false, equality,
// disjunction, and the logical operators used to encode formulas as
// terms").
const (
	True     term.FunCode = 1
	False    term.FunCode = 2
	Equality term.FunCode = 3 // binary: Equality(l, r) encodes l = r
	Or       term.FunCode = 4
	firstUserCode term.FunCode = 16
)

// Signature owns the name<->code mapping. It is mutated only at setup
// and, rarely, when Skolem symbols or split-definition predicates are
// minted (spec.md §5); it never shrinks.
type Signature struct {
	byName map[string]*Entry
	byCode map[term.FunCode]*Entry
	next   term.FunCode
}

func New() *Signature {
	s := &Signature{
		byName: make(map[string]*Entry),
		byCode: make(map[term.FunCode]*Entry),
		next:   firstUserCode,
	}
	s.reserve("$true", True, 0, 0)
	s.reserve("$false", False, 0, 0)
	s.reserve("=", Equality, 2, FlagPredicate)
	s.reserve("$or", Or, 2, 0)
	return s
}

func (s *Signature) reserve(name string, code term.FunCode, arity int, flags SymbolFlag) {
	e := &Entry{Name: name, Code: code, Arity: arity, Flags: flags}
	s.byName[name] = e
	s.byCode[code] = e
}

// Intern returns the entry for name, creating it with the given arity
// on first use. A later call with a different arity is an input error
// (spec.md §7 "arity mismatch"), reported as an error only when the
// caller explicitly asked for strict checking via InternStrict;
// Intern itself is lenient (keeps the first-seen arity) so that a CNF
// reader can build a signature incrementally without pre-declaring it.
func (s *Signature) Intern(name string, arity int, predicate bool) *Entry {
	if e, ok := s.byName[name]; ok {
		return e
	}
	var flags SymbolFlag
	if predicate {
		flags |= FlagPredicate
	}
	e := &Entry{Name: name, Code: s.next, Arity: arity, Flags: flags}
	s.next++
	s.byName[name] = e
	s.byCode[e.Code] = e
	s.assignRanks()
	return e
}

// InternStrict behaves like Intern but reports an arity mismatch
// against a previously interned symbol instead of silently keeping the
// first-seen arity.
func (s *Signature) InternStrict(name string, arity int, predicate bool) (*Entry, error) {
	if e, ok := s.byName[name]; ok {
		if e.Arity != arity {
			return nil, errors.CompilerError{
				Level:   errors.Error,
				Code:    errors.ErrorArityMismatch,
				Message: name + " used with arity " + strconv.Itoa(arity) + " but previously seen with arity " + strconv.Itoa(e.Arity),
			}
		}
		return e, nil
	}
	return s.Intern(name, arity, predicate), nil
}

func (s *Signature) ByCode(c term.FunCode) *Entry { return s.byCode[c] }
func (s *Signature) ByName(n string) (*Entry, bool) {
	e, ok := s.byName[n]
	return e, ok
}

// assignRanks recomputes the alphabetic tie-breaker ranks (spec.md §3)
// over user-defined symbols whenever a new one is interned; cheap at
// the scale a CNF problem's signature reaches.
func (s *Signature) assignRanks() {
	names := make([]string, 0, len(s.byName))
	for n, e := range s.byName {
		if e.Code >= firstUserCode {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	for i, n := range names {
		s.byName[n].Rank = i
	}
}

// MintSkolem allocates a fresh function symbol of the given arity, used
// by external collaborators (the CNF producer or a future Skolemizer)
// that must synthesize new symbols without colliding with the user's
// signature (spec.md §5 "the signature is mutated only at setup and,
// very occasionally, when Skolem symbols or split-definition
// predicates are minted").
func (s *Signature) MintSkolem(prefix string, arity int) *Entry {
	name := prefix
	for i := 0; ; i++ {
		candidate := name
		if i > 0 {
			candidate = name + "_" + strconv.Itoa(i)
		}
		if _, exists := s.byName[candidate]; !exists {
			return s.Intern(candidate, arity, false)
		}
	}
}

