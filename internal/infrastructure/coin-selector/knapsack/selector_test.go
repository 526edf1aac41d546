package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vulpemventures/coinselect/internal/core/domain"
	"github.com/vulpemventures/coinselect/internal/core/ports"
	"github.com/vulpemventures/coinselect/internal/infrastructure/coin-selector/knapsack"
	"github.com/vulpemventures/coinselect/internal/prng"
)

func newDeterministicSelector(minChange int64) ports.KnapsackSelector {
	return knapsack.NewSelectorWithOptions(knapsack.Options{
		MinChange:  minChange,
		Iterations: 1000,
		RandSource: prng.NewSeeded(1, 2),
	})
}

func TestSelectKnapsackExactSingle(t *testing.T) {
	selector := newDeterministicSelector(10000000)
	pool := []domain.InputCoin{
		{ID: "5", Value: 5},
		{ID: "3", Value: 3},
	}

	result, err := selector.SelectKnapsack(pool, 5)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, int64(5), result.ValueRet)
	require.Len(t, result.OutSet, 1)
	require.Equal(t, "5", result.OutSet[0].ID)
}

func TestSelectKnapsackFallbackToLowestLarger(t *testing.T) {
	selector := newDeterministicSelector(3)
	pool := []domain.InputCoin{
		{ID: "1a", Value: 1},
		{ID: "1b", Value: 1},
		{ID: "10", Value: 10},
	}

	result, err := selector.SelectKnapsack(pool, 5)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, int64(10), result.ValueRet)
	require.Len(t, result.OutSet, 1)
	require.Equal(t, "10", result.OutSet[0].ID)
}

func TestSelectKnapsackAllLowerSumsToTarget(t *testing.T) {
	selector := newDeterministicSelector(1)
	pool := []domain.InputCoin{
		{ID: "a", Value: 2},
		{ID: "b", Value: 3},
	}

	result, err := selector.SelectKnapsack(pool, 5)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, int64(5), result.ValueRet)
	require.Len(t, result.OutSet, 2)
}

func TestSelectKnapsackUnreachable(t *testing.T) {
	selector := newDeterministicSelector(10000000)
	pool := []domain.InputCoin{
		{ID: "a", Value: 1},
	}

	result, err := selector.SelectKnapsack(pool, 5)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, domain.FailureUnreachable, result.Stats.FailureReason)
}

func TestSelectKnapsackEmptyPool(t *testing.T) {
	selector := newDeterministicSelector(1)

	result, err := selector.SelectKnapsack(nil, 5)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, domain.FailureEmptyPool, result.Stats.FailureReason)
}

// Coverage invariant of spec.md §8.3: on success, the sum of gross
// values of the returned set is always at least the target.
func TestSelectKnapsackCoverageInvariant(t *testing.T) {
	selector := newDeterministicSelector(2)
	pool := []domain.InputCoin{
		{ID: "1", Value: 11},
		{ID: "2", Value: 7},
		{ID: "3", Value: 6},
		{ID: "4", Value: 4},
		{ID: "5", Value: 3},
		{ID: "6", Value: 1},
	}

	result, err := selector.SelectKnapsack(pool, 17)
	require.NoError(t, err)
	require.True(t, result.Success)

	var sum int64
	for _, c := range result.OutSet {
		sum += c.Value
	}
	require.Equal(t, sum, result.ValueRet)
	require.GreaterOrEqual(t, sum, int64(17))
}

func TestSelectKnapsackSubsetProperty(t *testing.T) {
	selector := newDeterministicSelector(2)
	pool := []domain.InputCoin{
		{ID: "1", Value: 11},
		{ID: "2", Value: 7},
		{ID: "3", Value: 6},
		{ID: "4", Value: 4},
	}

	result, err := selector.SelectKnapsack(pool, 17)
	require.NoError(t, err)
	require.True(t, result.Success)

	ids := make(map[string]bool, len(pool))
	for _, c := range pool {
		ids[c.ID] = true
	}
	for _, c := range result.OutSet {
		require.True(t, ids[c.ID], "returned coin %s was not in the original pool", c.ID)
	}
}
