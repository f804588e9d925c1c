package calculator

import (
	"sort"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/shopspring/decimal"
)

// CurrentStatus marks the ledger's final positions at the latest prices
// on or before asOf.
func CurrentStatus(policy StrategyPolicy, ledger *Ledger, asOf time.Time) domain.CurrentStatus {
	settings := policy.Settings()
	cash := ledger.CashPosition()

	status := domain.CurrentStatus{
		Strategy:      settings.Strategy,
		AsOf:          asOf,
		CashPosition:  cash,
		CashValue:     cash.NetShares,
		EquityValue:   decimal.Zero,
		Positions:     []domain.HeldPosition{},
		LastTradeDate: ledger.LastTradeDate(),
		ActivityDays:  len(ledger.ActivityDates()),
		LedgerHealth:  ledger.LedgerHealth,
	}

	for _, position := range ledger.HeldPositions() {
		resolved := policy.Prices().Resolve(position.Symbol, asOf, settings.NeutralPrice)
		value := position.NetShares.Mul(resolved.Price)
		status.Positions = append(status.Positions, domain.HeldPosition{
			Symbol:          position.Symbol,
			NetShares:       position.NetShares,
			AvgCost:         position.WeightedAvgCost,
			Price:           resolved.Price,
			PriceDate:       resolved.Date,
			PriceIsFallback: resolved.IsFallback(),
			CurrentValue:    value,
			UnrealizedPnL:   position.NetShares.Mul(resolved.Price.Sub(position.WeightedAvgCost)),
		})
		status.EquityValue = status.EquityValue.Add(value)
	}
	status.TotalValue = status.CashValue.Add(status.EquityValue)

	if status.TotalValue.IsPositive() {
		for i := range status.Positions {
			status.Positions[i].Allocation = status.Positions[i].CurrentValue.Div(status.TotalValue).InexactFloat64()
		}
	}
	sort.SliceStable(status.Positions, func(i, j int) bool {
		a, b := status.Positions[i], status.Positions[j]
		if !a.CurrentValue.Equal(b.CurrentValue) {
			return a.CurrentValue.GreaterThan(b.CurrentValue)
		}
		return a.Symbol < b.Symbol
	})

	return status
}
