package calculator

import (
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
)

// ExecutionWindow is the date range an execution query covers: the
// calendar week for weekly, the single day otherwise.
func ExecutionWindow(strategy domain.Strategy, date time.Time) (time.Time, time.Time) {
	if strategy == domain.StrategyWeekly {
		return util.WeekRange(date)
	}
	day := util.DateOnly(date)
	return day, day
}

// ExecutionHistory lists the legs inside the window in replay order.
// Invalid legs are left out, rejected legs are listed and flagged.
func ExecutionHistory(policy StrategyPolicy, ledger *Ledger, date time.Time) domain.ExecutionHistory {
	settings := policy.Settings()
	start, end := ExecutionWindow(settings.Strategy, date)

	history := domain.ExecutionHistory{
		Strategy:    settings.Strategy,
		WindowStart: start,
		WindowEnd:   end,
		Entries:     []domain.ExecutionEntry{},
	}

	for entry := range ledger.All() {
		if entry.Invalid != nil || entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		buyPrice, sellPrice := policy.LegPrices(entry.Leg)
		history.Entries = append(history.Entries, domain.ExecutionEntry{
			LegID:        entry.Leg.ID,
			Date:         entry.Date,
			Symbol:       entry.Symbol,
			IsCashLeg:    entry.IsCashLeg,
			SharesBought: entry.Leg.SharesBought,
			SharesSold:   entry.Leg.SharesSold,
			BuyPrice:     buyPrice,
			SellPrice:    sellPrice,
			BuyValue:     entry.BuyValue,
			SellValue:    entry.SellValue,
			RealizedPnL:  entry.RealizedPnLDelta,
			NetShares:    entry.NetShares,
			Rejected:     entry.Violation != nil,
			RecordedAt:   entry.Leg.RecordedAt,
		})

		if entry.IsCashLeg || !entry.Applied {
			continue
		}
		history.TotalBuyValue = history.TotalBuyValue.Add(entry.BuyValue)
		history.TotalSellValue = history.TotalSellValue.Add(entry.SellValue)
		history.RealizedPnL = history.RealizedPnL.Add(entry.RealizedPnLDelta)
	}
	history.NetFlow = history.TotalSellValue.Sub(history.TotalBuyValue)

	return history
}
