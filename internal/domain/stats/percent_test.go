package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, "25", Percent(decimal.NewFromInt(1), decimal.NewFromInt(4), 2).String())
	assert.Equal(t, "33.33", Percent(decimal.NewFromInt(1), decimal.NewFromInt(3), 2).String())
	assert.True(t, Percent(decimal.NewFromInt(5), decimal.Zero, 2).IsZero())
}

func TestPercentInt_Acotado(t *testing.T) {
	assert.Equal(t, 0, PercentInt(decimal.NewFromInt(-5), decimal.NewFromInt(10)))
	assert.Equal(t, 100, PercentInt(decimal.NewFromInt(50), decimal.NewFromInt(10)))
	assert.Equal(t, 67, PercentInt(decimal.NewFromInt(2), decimal.NewFromInt(3)))
}

func TestRatioYGrowth(t *testing.T) {
	assert.Equal(t, "50", Ratio(1, 2, 1).String())
	assert.True(t, Ratio(1, 0, 1).IsZero())
	assert.Equal(t, "-20", Growth(decimal.NewFromInt(80), decimal.NewFromInt(100), 2).String())
	assert.True(t, Growth(decimal.NewFromInt(80), decimal.Zero, 2).IsZero())
}
