package calculator

import (
	"fmt"

	"portfoliotracker/internal/domain"

	"github.com/montanaflynn/stats"
)

// CalculateMetrics summarizes a valuation series. Periods are the gaps
// between consecutive points, whatever their length.
func CalculateMetrics(series []domain.ValuationPoint) (*domain.Performance, error) {
	returns, err := calculateReturns(series)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate returns: %w", err)
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return nil, err
	}

	stdev := 0.0
	if len(returns) > 1 {
		stdev, err = stats.StandardDeviationSample(returns)
		if err != nil {
			return nil, err
		}
	}

	startValue := series[0].TotalValue
	endValue := series[len(series)-1].TotalValue
	totalReturn := endValue.Sub(startValue).Div(startValue).InexactFloat64()

	maxDrawdown, err := calculateMaxDrawdown(series)
	if err != nil {
		return nil, err
	}

	return &domain.Performance{
		Periods:           len(returns),
		TotalReturn:       totalReturn,
		MeanPeriodReturn:  mean,
		StdevPeriodReturn: stdev,
		MaxDrawdown:       maxDrawdown,
	}, nil
}

func calculateReturns(series []domain.ValuationPoint) ([]float64, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 valuation points")
	}
	if !series[0].TotalValue.IsPositive() {
		return nil, fmt.Errorf("cannot calculate returns from a non-positive starting value")
	}

	returns := []float64{}
	for i := 1; i < len(series); i++ {
		previous := series[i-1].TotalValue
		if !previous.IsPositive() {
			continue
		}
		change := series[i].TotalValue.Sub(previous).Div(previous)
		returns = append(returns, change.InexactFloat64())
	}
	return returns, nil
}

// calculateMaxDrawdown returns the largest peak-to-trough drop as a
// fraction of the peak.
func calculateMaxDrawdown(series []domain.ValuationPoint) (float64, error) {
	drawdowns := stats.Float64Data{}
	peak := series[0].TotalValue
	for _, point := range series {
		if point.TotalValue.GreaterThan(peak) {
			peak = point.TotalValue
		}
		if !peak.IsPositive() {
			drawdowns = append(drawdowns, 0)
			continue
		}
		drawdowns = append(drawdowns, peak.Sub(point.TotalValue).Div(peak).InexactFloat64())
	}
	return drawdowns.Max()
}
