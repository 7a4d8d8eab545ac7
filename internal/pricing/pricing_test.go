package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiersStrictlyIncreasing(t *testing.T) {
	for i := 1; i < len(Tiers); i++ {
		assert.Greater(t, Tiers[i].MaxCount, Tiers[i-1].MaxCount,
			"tier maxima must be strictly increasing")
	}
}

func TestCalculate_ZeroCount(t *testing.T) {
	assert.Nil(t, Calculate(0))
}

func TestCalculate_TierMatch(t *testing.T) {
	tests := []struct {
		count    int
		price    int
		packName string
	}{
		{1, 4000, "Pack hasta 3 procesos"},
		{3, 4000, "Pack hasta 3 procesos"},
		{4, 6000, "Pack hasta 5 procesos"},
		{5, 6000, "Pack hasta 5 procesos"},
		{6, 10000, "Pack hasta 10 procesos"},
		{10, 10000, "Pack hasta 10 procesos"},
		{15, 13000, "Pack hasta 15 procesos"},
	}

	for _, tt := range tests {
		result := Calculate(tt.count)
		require.NotNil(t, result, "count %d", tt.count)
		assert.Equal(t, tt.price, result.Price, "count %d", tt.count)
		assert.Equal(t, tt.packName, result.PackName, "count %d", tt.count)
		assert.False(t, result.IsCustom, "count %d", tt.count)
	}
}

func TestCalculate_CustomBeyondLastTier(t *testing.T) {
	result := Calculate(16)
	require.NotNil(t, result)
	assert.True(t, result.IsCustom)
	assert.Equal(t, 0, result.Price)
	assert.Equal(t, "Presupuesto personalizado", result.PackName)
}

func TestNextPackInfo_FirstTier(t *testing.T) {
	info := NextPackInfo(0)
	require.NotNil(t, info)
	assert.Equal(t, 3, info.Remaining)
	assert.Equal(t, 3, info.NextPackSize)
	assert.Equal(t, 0.0, info.Progress)

	info = NextPackInfo(2)
	require.NotNil(t, info)
	assert.Equal(t, 1, info.Remaining)
	assert.Equal(t, 3, info.NextPackSize)
	assert.InDelta(t, 66.7, info.Progress, 0.1)
}

func TestNextPackInfo_ProgressResetsAtBoundary(t *testing.T) {
	// Count 3 sits on the first boundary, so the next band starts at 0%.
	info := NextPackInfo(3)
	require.NotNil(t, info)
	assert.Equal(t, 5, info.NextPackSize)
	assert.Equal(t, 2, info.Remaining)
	assert.Equal(t, 0.0, info.Progress)
}

func TestNextPackInfo_MonotoneWithinBand(t *testing.T) {
	prev := -1.0
	for count := 6; count < 10; count++ {
		info := NextPackInfo(count)
		require.NotNil(t, info, "count %d", count)
		assert.Equal(t, 10, info.NextPackSize)
		assert.Greater(t, info.Progress, prev, "count %d", count)
		assert.GreaterOrEqual(t, info.Progress, 0.0)
		assert.Less(t, info.Progress, 100.0)
		prev = info.Progress
	}
}

func TestNextPackInfo_PastLastTier(t *testing.T) {
	assert.Nil(t, NextPackInfo(15))
	assert.Nil(t, NextPackInfo(40))
}
