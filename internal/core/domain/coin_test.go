package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/coinselect/internal/core/domain"
)

func TestEffectiveValue(t *testing.T) {
	c := domain.InputCoin{Value: 100, Fee: 10, LongTermFee: 4}
	require.Equal(t, int64(90), c.EffectiveValue())
}

func TestWaste(t *testing.T) {
	tests := []struct {
		name     string
		coin     domain.InputCoin
		expected int64
	}{
		{"fee above long-term fee", domain.InputCoin{Fee: 10, LongTermFee: 4}, 6},
		{"fee below long-term fee", domain.InputCoin{Fee: 4, LongTermFee: 10}, -6},
		{"fee equal to long-term fee", domain.InputCoin{Fee: 4, LongTermFee: 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.coin.Waste())
		})
	}
}

func TestSortDescendingByEffectiveValue(t *testing.T) {
	pool := []domain.InputCoin{
		{ID: "a", Value: 5, Fee: 1},
		{ID: "b", Value: 10, Fee: 1},
		{ID: "c", Value: 3, Fee: 0},
	}
	domain.SortDescendingByEffectiveValue(pool)

	require.Equal(t, "b", pool[0].ID)
	require.Equal(t, "a", pool[1].ID)
	require.Equal(t, "c", pool[2].ID)
}

func TestSortDescendingByEffectiveValueKeepsEqualValuesAdjacent(t *testing.T) {
	pool := []domain.InputCoin{
		{ID: "a", Value: 10, Fee: 1},
		{ID: "b", Value: 20, Fee: 1},
		{ID: "c", Value: 9, Fee: 0}, // same effective value as "a"
	}
	domain.SortDescendingByEffectiveValue(pool)

	require.Equal(t, "b", pool[0].ID)
	effA, effB := pool[1].EffectiveValue(), pool[2].EffectiveValue()
	require.Equal(t, effA, effB)
}

func TestSortDescendingByValue(t *testing.T) {
	pool := []domain.InputCoin{
		{ID: "a", Value: 5},
		{ID: "b", Value: 10},
		{ID: "c", Value: 3},
	}
	domain.SortDescendingByValue(pool)

	require.Equal(t, []int64{10, 5, 3}, []int64{pool[0].Value, pool[1].Value, pool[2].Value})
}
