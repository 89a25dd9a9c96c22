package cnfio

// File is the root of a parsed batch of cnf(...) records (spec.md §6
// "a stream of clauses"). Grounded on grammar.go's Program/SourceElement
// top level (a flat `@@*` list of top-level records).
type File struct {
	Clauses []*CnfClause `@@*`
}

// CnfClause mirrors one TPTP `cnf(name, role, literals, source).`
// record (spec.md §6). Grounded on grammar.go's Module struct: a
// keyword-introduced record with a name, a body, and an optional
// trailing annotation, one struct per production.
type CnfClause struct {
	Name        string       `"cnf" "(" @(Ident|Integer)`
	Role        string       `"," @Ident`
	Disjunction *Disjunction `"," @@`
	Source      *Source      `("," @@)? ")" "."`
}

// Disjunction is the literal list, optionally parenthesized (TPTP emits
// parens around a single-literal clause).
type Disjunction struct {
	_        struct{}    `[ "(" ]`
	Literals []*Literal  `@@ ("|" @@)*`
	_        struct{}    `[ ")" ]`
}

// Literal is `[~] term [(= | !=) term]`: a bare term is a predicate
// atom (spec.md §3 "a non-equational atom is encoded as P(...) =
// $true"); with an Eq suffix it's an equation, negated either by a
// leading ~ or by !=.
type Literal struct {
	Negated bool  `[ @"~" ]`
	Left    *Term `@@`
	Eq      *EqOp `[ @@ ]`
}

type EqOp struct {
	Neg   bool  `( @"!=" | "=" )`
	Right *Term `@@`
}

// Term is a variable or a functor application. Variables and functors
// are disambiguated lexically (Var vs Ident, lexer.go), so unlike
// grammar.go's Type rule this needs no lookahead to pick the
// alternative.
type Term struct {
	Var  string    `  @Var`
	Func *FuncTerm `| @@`
}

type FuncTerm struct {
	Name string  `@Ident`
	Args []*Term `( "(" @@ ("," @@)* ")" )?`
}

// Source is the fourth, optional cnf(...) argument: either an
// inference record (the shape Print emits, spec.md §6
// "inference(rule, [status], [parents])") or a bare file/label
// annotation naming where an input clause came from. A full TPTP
// general_term grammar is not attempted (cnfio is a named external
// collaborator, spec.md §1, not the core); these two shapes are what
// Print produces and what typical TPTP problem files carry.
type Source struct {
	Inference *Inference  `  @@`
	File      *FileSource `| @@`
}

type Inference struct {
	Rule    string   `"inference" "(" @Ident`
	Status  string   `"," "[" @Ident "(" @Ident ")" "]"`
	Parents []string `"," "[" ( @(Ident|Integer) ("," @(Ident|Integer))* )? "]" ")"`
}

type FileSource struct {
	Kind  string `@Ident "("`
	Name  string `@Ident`
	Label string `[ "," @Ident ] ")"`
}
