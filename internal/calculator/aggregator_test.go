package calculator

import (
	"testing"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func aggregate(policy StrategyPolicy, legs ...domain.TransactionLeg) domain.AssetReport {
	ledger := reconstruct(policy, legs...)
	series := Valuate(policy, ledger.All())
	asOf := day1
	if len(series) > 0 {
		asOf = series[len(series)-1].Date
	}
	return Aggregate(policy, ledger, series, asOf)
}

func TestAggregate_roundTrip(t *testing.T) {
	policy := newPolicy(
		domain.StrategyIntraday,
		newBar("AAA", day1, "10.00", "10.50"),
		newBar("BBB", day1, "5", "4"),
		newBar("CCC", day1, "5", "4"),
		newBar("CCC", day2, "5", "5.5"),
	)
	report := aggregate(
		policy,
		newLeg("USDD", day1, "1000", "0"),
		newLeg("AAA", day1, "10", "10"),
		newLeg("BBB", day1, "2", "2"),
		newLeg("CCC", day1, "1", "1"),
		newLeg("CCC", day2, "2", "2"),
	)

	require.Equal(t, "", cmp.Diff(
		domain.AssetSummary{
			Symbol:            "AAA",
			TotalSharesBought: dec("10"),
			TotalSharesSold:   dec("10"),
			TotalBuyValue:     dec("100"),
			TotalSellValue:    dec("105"),
			BuyCount:          1,
			SellCount:         1,
			RealizedPnL:       dec("5"),
			NetPnL:            dec("5"),
			TradingDays:       1,
			FirstTradeDate:    day1,
			LastTradeDate:     day1,
		},
		report.Assets[0],
		decimalComparer,
	))

	symbols := []string{}
	for _, asset := range report.Assets {
		symbols = append(symbols, asset.Symbol)
	}
	// CCC nets 0, BBB loses 2
	require.Equal(t, []string{"AAA", "CCC", "BBB"}, symbols)
	require.Equal(t, 2, report.Assets[1].TradingDays)

	summary := report.Summary
	require.Equal(t, 3, summary.TotalAssets)
	require.Equal(t, 0, summary.CurrentlyHeld)
	require.True(t, summary.TotalNetPnL.Equal(dec("3")))
	require.True(t, summary.PnLDrift.IsZero())
	require.True(t, summary.CurrentPortfolioValue.Equal(dec("1000")))
}

func TestAggregate_roundTripConservation(t *testing.T) {
	day0 := util.NewDate(2024, 1, 1)
	policy := newPolicy(
		domain.StrategyIntraday,
		newBar("AAA", day1, "10", "10.5"),
		newBar("BBB", day2, "5", "4"),
	)
	settings := policy.Settings()
	legs := []domain.TransactionLeg{
		newLeg("USDD", day0, "1000", "0"),
		newLeg("AAA", day1, "10", "10", recordedAt(0)),
		newLeg("USDD", day1, "5", "0", recordedAt(1)),
		newLeg("BBB", day2, "2", "2", recordedAt(0)),
		newLeg("USDD", day2, "0", "2", recordedAt(1)),
	}
	report := aggregate(policy, legs...)
	series := Valuate(policy, reconstruct(policy, legs...).All())

	require.Len(t, series, 3)
	require.True(t, series[0].TotalValue.Equal(settings.InitialInvestment))
	last := series[len(series)-1].TotalValue
	require.True(t, last.Equal(dec("1003")))

	// realized P&L is the cash moved since the opening balance
	require.True(t, report.Summary.TotalNetPnL.Equal(dec("3")))
	require.True(t, report.Summary.TotalNetPnL.Equal(last.Sub(settings.InitialInvestment)))

	assetPnL := dec("0")
	for _, asset := range report.Assets {
		assetPnL = assetPnL.Add(asset.NetPnL)
	}
	require.True(t, assetPnL.Equal(report.Summary.TotalNetPnL))
	require.True(t, report.Summary.PnLDrift.IsZero())
}

func TestAggregate_holdReconciles(t *testing.T) {
	policy := newPolicy(
		domain.StrategyHold,
		newBar("BBB", day1, "2", "2"),
		newBar("BBB", day2, "3", "3"),
	)
	report := aggregate(
		policy,
		newLeg("USDH", day1, "1000", "0", recordedAt(0)),
		newLeg("BBB", day1, "10", "0", withPrices("2", ""), recordedAt(1)),
		newLeg("USDH", day1, "0", "20", recordedAt(2)),
		newLeg("BBB", day2, "0", "5", withPrices("", "3"), recordedAt(0)),
		newLeg("USDH", day2, "15", "0", recordedAt(1)),
	)

	require.Len(t, report.Assets, 1)
	asset := report.Assets[0]
	require.True(t, asset.RealizedPnL.Equal(dec("5")))
	require.True(t, asset.UnrealizedPnL.Equal(dec("5")))
	require.True(t, asset.NetPnL.Equal(dec("10")))
	require.True(t, asset.MarketValue.Equal(dec("15")))
	require.True(t, asset.IsCurrentlyHeld)
	require.False(t, asset.PriceIsFallback)

	summary := report.Summary
	require.True(t, summary.CurrentPortfolioValue.Equal(dec("1010")))
	require.True(t, summary.TotalNetPnL.Equal(dec("10")))
	require.True(t, summary.AssetPnLSum.Equal(dec("10")))
	require.True(t, summary.PnLDrift.IsZero())
	require.Equal(t, 1, summary.CurrentlyHeld)
	require.NotNil(t, summary.Performance)
	require.Equal(t, 1, summary.Performance.Periods)
}

func TestAggregate_empty(t *testing.T) {
	for _, strategy := range domain.AllStrategies() {
		report := aggregate(newPolicy(strategy))
		require.Empty(t, report.Assets)
		require.True(t, report.Summary.TotalNetPnL.IsZero())
		require.Nil(t, report.Summary.Performance)
		require.False(t, report.Summary.Degraded)
	}
}

func TestAggregate_degraded(t *testing.T) {
	policy := newPolicy(domain.StrategyHold)
	report := aggregate(
		policy,
		newLeg("AAA", day1, "5", "0", withPrices("10", "")),
		newLeg("AAA", day2, "0", "8", withPrices("", "10")),
	)

	require.True(t, report.Summary.Degraded)
	require.Len(t, report.Summary.Violations, 1)
	require.Equal(t, 1, report.Assets[0].SellCount+report.Assets[0].BuyCount)
	require.True(t, report.Assets[0].CurrentPosition.Equal(dec("5")))
}

func TestAssetPnLSeries(t *testing.T) {
	policy := newPolicy(domain.StrategyHold)
	ledger := reconstruct(
		policy,
		newLeg("AAA", day1, "10", "0", withPrices("10", "")),
		newLeg("AAA", day2, "0", "2", withPrices("", "12"), recordedAt(0)),
		newLeg("AAA", day2, "0", "2", withPrices("", "13"), recordedAt(1)),
		newLeg("AAA", day3, "0", "1", withPrices("", "8")),
	)

	require.Equal(t, "", cmp.Diff(
		map[string][]domain.AssetPnLPoint{
			"AAA": {
				{Date: day2, RealizedPnL: dec("10"), CumulativePnL: dec("10")},
				{Date: day3, RealizedPnL: dec("-2"), CumulativePnL: dec("8")},
			},
		},
		AssetPnLSeries(ledger),
		decimalComparer,
	))
}

func TestCurrentStatus(t *testing.T) {
	policy := newPolicy(
		domain.StrategyHold,
		newBar("BBB", day1, "2", "2"),
		newBar("BBB", day2, "3", "3"),
	)
	ledger := reconstruct(
		policy,
		newLeg("USDH", day1, "1000", "0", recordedAt(0)),
		newLeg("BBB", day1, "10", "0", withPrices("2", ""), recordedAt(1)),
		newLeg("USDH", day1, "0", "20", recordedAt(2)),
		newLeg("CCC", day1, "5", "0", withPrices("1", ""), recordedAt(3)),
		newLeg("USDH", day1, "0", "5", recordedAt(4)),
	)

	status := CurrentStatus(policy, ledger, day3)

	require.True(t, status.CashValue.Equal(dec("975")))
	require.True(t, status.EquityValue.Equal(dec("35")))
	require.True(t, status.TotalValue.Equal(dec("1010")))
	require.Equal(t, 1, status.ActivityDays)
	require.Equal(t, day1, *status.LastTradeDate)

	require.Len(t, status.Positions, 2)
	bbb := status.Positions[0]
	require.Equal(t, "BBB", bbb.Symbol)
	require.True(t, bbb.Price.Equal(dec("3")))
	require.Equal(t, day2, *bbb.PriceDate)
	require.True(t, bbb.PriceIsFallback)
	require.True(t, bbb.UnrealizedPnL.Equal(dec("10")))
	require.InDelta(t, 30.0/1010.0, bbb.Allocation, 1e-9)

	ccc := status.Positions[1]
	require.Equal(t, "CCC", ccc.Symbol)
	require.Nil(t, ccc.PriceDate)
	require.True(t, ccc.CurrentValue.Equal(dec("5")))
}

func TestExecutionHistory(t *testing.T) {
	monday := util.NewDate(2024, 1, 1)
	friday := util.NewDate(2024, 1, 5)
	nextMonday := util.NewDate(2024, 1, 8)
	policy := newPolicy(
		domain.StrategyWeekly,
		newBar("AAA", monday, "10", "11"),
		newBar("AAA", friday, "11", "12"),
		newBar("AAA", nextMonday, "12", "12"),
	)
	ledger := reconstruct(
		policy,
		newLeg("USDW", monday, "1000", "0"),
		newLeg("AAA", monday, "10", "0"),
		newLeg("AAA", friday, "0", "10"),
		newLeg("USDW", friday, "20", "0", recordedAt(1)),
		newLeg("AAA", nextMonday, "3", "0"),
	)

	history := ExecutionHistory(policy, ledger, util.NewDate(2024, 1, 3))

	require.Equal(t, monday, history.WindowStart)
	require.Equal(t, util.NewDate(2024, 1, 7), history.WindowEnd)
	require.Len(t, history.Entries, 4)
	require.True(t, history.TotalBuyValue.Equal(dec("100")))
	require.True(t, history.TotalSellValue.Equal(dec("120")))
	require.True(t, history.NetFlow.Equal(dec("20")))
	require.True(t, history.RealizedPnL.Equal(dec("20")))

	sell := history.Entries[2]
	require.Equal(t, "AAA", sell.Symbol)
	require.Nil(t, sell.BuyPrice)
	require.True(t, sell.SellPrice.Equal(dec("12")))

	t.Run("intraday window is one day", func(t *testing.T) {
		policy := newPolicy(domain.StrategyIntraday, newBar("AAA", day1, "10", "11"))
		ledger := reconstruct(
			policy,
			newLeg("AAA", day1, "1", "1"),
			newLeg("AAA", day2, "1", "1"),
		)
		history := ExecutionHistory(policy, ledger, day1)

		require.Len(t, history.Entries, 1)
		require.Equal(t, day1, history.WindowStart)
		require.Equal(t, day1, history.WindowEnd)
	})
}
