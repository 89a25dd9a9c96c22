package control

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturn/internal/infer"
)

func TestDefaultProducesSaneStrategy(t *testing.T) {
	c := Default()
	assert.Equal(t, infer.Plain, c.ParamodVariant)
	assert.False(t, c.ACHandling)
	assert.True(t, c.DestructiveEqRes)
	assert.Equal(t, infer.DefaultTautologyCheckLiteralCap, c.TautologyCheckLiteralCap)
	assert.NotNil(t, c.Selection)
}

func TestDefaultWeightsFavorSimplicityOverAge(t *testing.T) {
	w := DefaultWeights()
	assert.Greater(t, w.SymbolCountWeight, w.AgeWeight)
}
