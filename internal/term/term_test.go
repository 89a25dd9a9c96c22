package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fA FunCode = 100
	fF FunCode = 101
	fG FunCode = 102
)

func TestInsertSharesStructurallyEqualTerms(t *testing.T) {
	b := NewBank(nil)
	a := b.Insert(fA, nil)
	x := b.Vars().Get(1, 0)

	t1 := b.Build(fF, b.Build(fG, a), x)
	t2 := b.Build(fF, b.Build(fG, a), x)

	assert.Equal(t, t1, t2, "structurally equal terms must share one node (I2)")
}

func TestGroundFlagPropagates(t *testing.T) {
	b := NewBank(nil)
	a := b.Insert(fA, nil)
	ground := b.Build(fF, a, a)
	assert.True(t, b.Node(ground).IsGround())

	x := b.Vars().Get(1, 0)
	withVar := b.Build(fF, a, x)
	assert.False(t, b.Node(withVar).IsGround())
}

func TestWeightIsRecursiveSum(t *testing.T) {
	b := NewBank(nil)
	a := b.Insert(fA, nil)
	g := b.Build(fG, a)
	f := b.Build(fF, g, a)

	assert.Equal(t, 1, b.Node(a).Weight)
	assert.Equal(t, 2, b.Node(g).Weight)
	assert.Equal(t, 4, b.Node(f).Weight)
}

func TestUnifyOccursCheckRejectsCycle(t *testing.T) {
	b := NewBank(nil)
	x := b.Vars().Get(1, 0)
	fx := b.Build(fF, x)

	_, ok := b.Unify(x, fx)
	assert.False(t, ok, "x = f(x) must fail the occurs check")
}

func TestUnifyProducesMGU(t *testing.T) {
	b := NewBank(nil)
	a := b.Insert(fA, nil)
	x := b.Vars().Get(1, 0)
	y := b.Vars().Get(2, 0)

	left := b.Build(fF, x, a)
	right := b.Build(fF, y, y)

	subst, ok := b.Unify(left, right)
	require.True(t, ok)

	assert.Equal(t, a, b.Apply(subst, x))
	assert.Equal(t, a, b.Apply(subst, y))
	assert.Equal(t, b.Apply(subst, left), b.Apply(subst, right))
}

func TestReplaceAtRebuildsMinimalSpine(t *testing.T) {
	b := NewBank(nil)
	a := b.Insert(fA, nil)
	c := b.Insert(fA, nil) // placeholder ground constant reused as replacement
	g := b.Build(fG, a)
	f := b.Build(fF, g, a)

	replaced := b.ReplaceAt(f, []int{1, 1}, c)
	want := b.Build(fF, b.Build(fG, c), a)
	assert.Equal(t, want, replaced)
}

func TestGCReclaimsUnreachableNodes(t *testing.T) {
	b := NewBank(nil)
	a := b.Insert(fA, nil)
	keep := b.Build(fF, a)
	_ = b.Build(fG, a) // unreachable after GC below

	before := b.Len()
	b.GC([]ID{keep})
	assert.Equal(t, before, b.Len(), "GC does not shrink node storage, only frees slots")

	reused := b.Build(fG, a)
	assert.NotEqual(t, ID(0), reused)
}
