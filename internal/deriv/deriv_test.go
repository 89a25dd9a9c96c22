package deriv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturn/internal/clause"
	"saturn/internal/lit"
	"saturn/internal/term"
)

func unitClause(id clause.ID, l term.ID) *clause.Clause {
	return clause.New(id, []*lit.Eqn{lit.NewEquational(l, l, true)}, 0)
}

func TestComputeOrdersParentsBeforeChildren(t *testing.T) {
	b := term.NewBank(nil)
	a := b.Vars().Get(0, 0)

	axiom1 := unitClause(1, a)
	axiom1.PushDerivation(NewQuote())
	axiom2 := unitClause(2, a)
	axiom2.PushDerivation(NewQuote())

	mid := unitClause(3, a)
	mid.PushDerivation(NewRecord(OpParamod, axiom1.Ident, axiom2.Ident))

	empty := clause.New(4, nil, 0)
	empty.PushDerivation(NewRecord(OpEqRes, mid.Ident))

	byID := map[clause.ID]*clause.Clause{1: axiom1, 2: axiom2, 3: mid, 4: empty}
	d := Compute(empty, func(id clause.ID) *clause.Clause { return byID[id] })

	require.Len(t, d.Nodes, 4)
	pos := map[clause.ID]int{}
	for _, n := range d.Nodes {
		pos[n.Clause.Ident] = n.Number
	}
	assert.Less(t, pos[1], pos[3])
	assert.Less(t, pos[2], pos[3])
	assert.Less(t, pos[3], pos[4])
	assert.Equal(t, 4, pos[4], "root is numbered last")
}

func TestComputeSkipsMissingPremiseWithoutPanicking(t *testing.T) {
	b := term.NewBank(nil)
	a := b.Vars().Get(0, 0)

	root := unitClause(1, a)
	root.PushDerivation(NewRecord(OpRewrite, 99)) // 99 was already freed

	d := Compute(root, func(clause.ID) *clause.Clause { return nil })
	require.Len(t, d.Nodes, 1)
	assert.Equal(t, root.Ident, d.Nodes[0].Clause.Ident)
}
