package cnfio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"saturn/internal/clause"
	"saturn/internal/deriv"
	"saturn/internal/lit"
	"saturn/internal/sig"
	"saturn/internal/term"
)

// Print emits d as a batch of TPTP `cnf(...)` records, one per node in
// derivation order (spec.md §4.7a, §6 "DerivationPrint"), the mirror
// image of ParseClauses. Grounded on internal/ir/printer.go's
// indent/writeLine Printer, simplified here to a single pass since a
// derivation record is always a single line.
func Print(w io.Writer, tb *term.Bank, s *sig.Signature, d *deriv.Derivation) error {
	numberOf := make(map[clause.ID]int, len(d.Nodes))
	for _, n := range d.Nodes {
		numberOf[n.Clause.Ident] = n.Number
	}
	p := &printer{w: w, tb: tb, sig: s, numberOf: numberOf}
	for _, n := range d.Nodes {
		if err := p.node(n); err != nil {
			return err
		}
	}
	return p.err
}

type printer struct {
	w        io.Writer
	tb       *term.Bank
	sig      *sig.Signature
	numberOf map[clause.ID]int
	err      error
}

func (p *printer) node(n *deriv.Node) error {
	if p.err != nil {
		return p.err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "cnf(c%d, %s, ", n.Number, role(n.Clause))
	p.disjunction(&b, n.Clause.Literals)
	b.WriteString(", ")
	p.source(&b, n)
	b.WriteString(").\n")
	_, p.err = io.WriteString(p.w, b.String())
	return p.err
}

func role(c *clause.Clause) string {
	switch {
	case c.Conjecture():
		return "negated_conjecture"
	case c.Properties&clause.PropInitial != 0:
		return "axiom"
	default:
		return "plain"
	}
}

func (p *printer) disjunction(b *strings.Builder, lits []*lit.Eqn) {
	if len(lits) == 0 {
		b.WriteString("$false")
		return
	}
	b.WriteString("(")
	for i, l := range lits {
		if i > 0 {
			b.WriteString("|")
		}
		p.literal(b, l)
	}
	b.WriteString(")")
}

func (p *printer) literal(b *strings.Builder, l *lit.Eqn) {
	if !l.IsEquational(p.tb) {
		if !l.Positive {
			b.WriteString("~")
		}
		p.term(b, l.Left)
		return
	}
	p.term(b, l.Left)
	if l.Positive {
		b.WriteString("=")
	} else {
		b.WriteString("!=")
	}
	p.term(b, l.Right)
}

func (p *printer) term(b *strings.Builder, id term.ID) {
	n := p.tb.Node(p.tb.Deref(id))
	if n.IsVar {
		fmt.Fprintf(b, "X%d", n.VarIndex)
		return
	}
	switch n.Functor {
	case sig.True:
		b.WriteString("$true")
		return
	case sig.False:
		b.WriteString("$false")
		return
	}
	entry := p.sig.ByCode(n.Functor)
	name := "sym" + strconv.Itoa(int(n.Functor))
	if entry != nil {
		name = entry.Name
	}
	b.WriteString(name)
	if len(n.Args) == 0 {
		return
	}
	b.WriteString("(")
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(",")
		}
		p.term(b, a)
	}
	b.WriteString(")")
}

// source emits the inference(...) or file(...) annotation (spec.md
// §4.7a). A quoted input clause with no recorded parents prints a bare
// file(unknown, unknown) source, since the original TPTP provenance
// isn't retained past parse time.
func (p *printer) source(b *strings.Builder, n *deriv.Node) {
	rec := n.Record
	if rec == nil || rec.Op == deriv.OpNop {
		b.WriteString("file(unknown, unknown)")
		return
	}
	if rec.Op == deriv.OpCnfQuote || rec.Op == deriv.OpFofQuote {
		if len(rec.FormulaParents) == 0 && len(rec.Parents) == 0 {
			b.WriteString("file(unknown, unknown)")
			return
		}
	}
	fmt.Fprintf(b, "inference(%s, [status(thm)], [", rec.Op.String())
	first := true
	for _, pid := range rec.Parents {
		if !first {
			b.WriteString(",")
		}
		first = false
		num, ok := p.numberOf[pid]
		if !ok {
			fmt.Fprintf(b, "c%d", pid)
			continue
		}
		fmt.Fprintf(b, "c%d", num)
	}
	for _, fp := range rec.FormulaParents {
		if !first {
			b.WriteString(",")
		}
		first = false
		b.WriteString(fp)
	}
	b.WriteString("])")
}
