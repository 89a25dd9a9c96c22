// Package cnfio is the external CNF producer collaborator spec.md §6
// names ("A stream of clauses... the core offers
// FormulaAndClauseSetParse(scanner, ...)"): it reads already-clausal
// `cnf(name, role, literals, source).` records and prints derivations
// back out in the same notation. It is the one place in this module
// that depends on github.com/alecthomas/participle/v2, kept from the
// teacher exactly as grammar/lexer.go + internal/parser/parser.go use
// it: a stateful lexer plus a struct-tag grammar built once at package
// init.
package cnfio

import "github.com/alecthomas/participle/v2/lexer"

// ClauseLexer tokenizes TPTP cnf(...) records. Grounded on
// grammar/lexer.go's KansoLexer (same rule-table shape: comments first,
// then identifiers, numbers, operators, punctuation, whitespace last).
// Variables and plain identifiers get distinct token kinds (Var starts
// uppercase or underscore, Ident starts lowercase) so the grammar can
// dispatch on token type instead of backtracking, the same trick
// grammar/lexer.go uses to separate Ident from Integer.
var ClauseLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `%[^\n]*`, nil},
		{"Var", `[A-Z_][a-zA-Z0-9_]*`, nil},
		{"Ident", `\$?[a-z][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"NotEq", `!=`, nil},
		{"Punctuation", `[(),.\[\]|~=]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
