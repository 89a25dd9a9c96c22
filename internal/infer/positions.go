package infer

import "saturn/internal/term"

// subtermAt is one (path, subterm) pair produced by positions.
type subtermAt struct {
	pos []int
	id  term.ID
}

// positions enumerates every subterm of root, including root itself,
// as a (position, id) pair. pos is a sequence of 1-based argument
// indices from root, matching term.Bank.ReplaceAt's convention
// (spec.md §4.1 "position-based replacement").
func positions(b *term.Bank, root term.ID) []subtermAt {
	var out []subtermAt
	var walk func(id term.ID, pos []int)
	walk = func(id term.ID, pos []int) {
		out = append(out, subtermAt{pos: append([]int(nil), pos...), id: id})
		n := b.Node(id)
		for i, a := range n.Args {
			walk(a, append(pos, i+1))
		}
	}
	walk(root, nil)
	return out
}

// nonVariablePositions is positions filtered to non-variable subterms,
// the only valid paramodulation-into sites (spec.md §4.4: "into
// contains any literal with a non-variable subterm t at position p").
func nonVariablePositions(b *term.Bank, root term.ID) []subtermAt {
	all := positions(b, root)
	out := all[:0]
	for _, s := range all {
		if !b.Node(s.id).IsVar {
			out = append(out, s)
		}
	}
	return out
}

// replaceSide rebuilds one side of a literal with a subterm
// replaced, reusing term.Bank.ReplaceAt.
func replaceSide(b *term.Bank, side term.ID, pos []int, repl term.ID) term.ID {
	return b.ReplaceAt(side, pos, repl)
}
