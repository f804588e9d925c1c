package calculator

import (
	"testing"

	"portfoliotracker/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculateMetrics(t *testing.T) {
	t.Run("returns and drawdown", func(t *testing.T) {
		series := []domain.ValuationPoint{
			{Date: day1, TotalValue: dec("100")},
			{Date: day2, TotalValue: dec("110")},
			{Date: day3, TotalValue: dec("99")},
		}
		result, err := CalculateMetrics(series)
		require.NoError(t, err)

		require.Equal(t, 2, result.Periods)
		require.InDelta(t, -0.01, result.TotalReturn, 1e-9)
		require.InDelta(t, 0.0, result.MeanPeriodReturn, 1e-9)
		require.InDelta(t, 0.141421356, result.StdevPeriodReturn, 1e-6)
		require.InDelta(t, 0.1, result.MaxDrawdown, 1e-9)
	})

	t.Run("needs two points", func(t *testing.T) {
		_, err := CalculateMetrics([]domain.ValuationPoint{
			{Date: day1, TotalValue: dec("100")},
		})
		require.Error(t, err)
	})

	t.Run("zero starting value", func(t *testing.T) {
		_, err := CalculateMetrics([]domain.ValuationPoint{
			{Date: day1, TotalValue: dec("0")},
			{Date: day2, TotalValue: dec("10")},
		})
		require.Error(t, err)
	})
}
