package calculator

import (
	"sort"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/shopspring/decimal"
)

type assetAccumulator struct {
	summary domain.AssetSummary
	days    int
}

// Aggregate rolls the ledger up into per-asset summaries and a strategy
// summary. Held hold-strategy positions are marked at the latest price on
// or before asOf.
func Aggregate(policy StrategyPolicy, ledger *Ledger, series []domain.ValuationPoint, asOf time.Time) domain.AssetReport {
	settings := policy.Settings()
	byAsset := map[string]*assetAccumulator{}

	for entry := range ledger.All() {
		if entry.IsCashLeg || !entry.Applied {
			continue
		}
		acc, ok := byAsset[entry.Symbol]
		if !ok {
			acc = &assetAccumulator{
				summary: domain.AssetSummary{
					Symbol:         entry.Symbol,
					FirstTradeDate: entry.Date,
				},
			}
			byAsset[entry.Symbol] = acc
		}

		s := &acc.summary
		s.TotalSharesBought = s.TotalSharesBought.Add(entry.Leg.SharesBought)
		s.TotalSharesSold = s.TotalSharesSold.Add(entry.Leg.SharesSold)
		s.TotalBuyValue = s.TotalBuyValue.Add(entry.BuyValue)
		s.TotalSellValue = s.TotalSellValue.Add(entry.SellValue)
		s.RealizedPnL = s.RealizedPnL.Add(entry.RealizedPnLDelta)
		if entry.Leg.IsBuy() {
			s.BuyCount++
		}
		if entry.Leg.IsSell() {
			s.SellCount++
		}
		// entries arrive in date order
		if acc.days == 0 || !s.LastTradeDate.Equal(entry.Date) {
			acc.days++
		}
		s.LastTradeDate = entry.Date
	}

	assets := make([]domain.AssetSummary, 0, len(byAsset))
	for symbol, acc := range byAsset {
		s := acc.summary
		s.TradingDays = acc.days
		if position, ok := ledger.Positions[symbol]; ok {
			s.CurrentPosition = position.NetShares
			s.AvgCost = position.WeightedAvgCost
			s.IsCurrentlyHeld = position.IsHeld()
		}
		if s.IsCurrentlyHeld {
			resolved := policy.Prices().Resolve(symbol, asOf, settings.NeutralPrice)
			s.LastPrice = resolved.Price
			s.MarketValue = s.CurrentPosition.Mul(resolved.Price)
			s.PriceIsFallback = resolved.IsFallback()
			// round trips only book closed positions
			if !settings.Strategy.IsRoundTrip() {
				s.UnrealizedPnL = s.CurrentPosition.Mul(resolved.Price.Sub(s.AvgCost))
			}
		}
		s.NetPnL = s.RealizedPnL.Add(s.UnrealizedPnL)
		assets = append(assets, s)
	}

	sort.Slice(assets, func(i, j int) bool {
		if !assets[i].NetPnL.Equal(assets[j].NetPnL) {
			return assets[i].NetPnL.GreaterThan(assets[j].NetPnL)
		}
		return assets[i].Symbol < assets[j].Symbol
	})

	return domain.AssetReport{
		Assets:  assets,
		Summary: summarize(settings, ledger, assets, series),
	}
}

func summarize(settings domain.StrategySettings, ledger *Ledger, assets []domain.AssetSummary, series []domain.ValuationPoint) domain.Summary {
	summary := domain.Summary{
		Strategy:          settings.Strategy,
		TotalAssets:       len(assets),
		InitialInvestment: settings.InitialInvestment,
		LedgerHealth:      ledger.LedgerHealth,
	}
	for _, asset := range assets {
		summary.TotalBuyValue = summary.TotalBuyValue.Add(asset.TotalBuyValue)
		summary.TotalSellValue = summary.TotalSellValue.Add(asset.TotalSellValue)
		summary.RealizedPnL = summary.RealizedPnL.Add(asset.RealizedPnL)
		summary.UnrealizedPnL = summary.UnrealizedPnL.Add(asset.UnrealizedPnL)
		if asset.IsCurrentlyHeld {
			summary.CurrentlyHeld++
		}
	}
	summary.AssetPnLSum = summary.RealizedPnL.Add(summary.UnrealizedPnL)

	if len(series) > 0 {
		summary.CurrentPortfolioValue = series[len(series)-1].TotalValue
	}

	if settings.Strategy.IsRoundTrip() {
		summary.TotalNetPnL = summary.RealizedPnL
	} else {
		// value based; an empty series reports zero rather than -initial
		if len(series) > 0 {
			summary.TotalNetPnL = summary.CurrentPortfolioValue.Sub(settings.InitialInvestment)
		}
		summary.PnLDrift = summary.TotalNetPnL.Sub(summary.AssetPnLSum)
	}

	if performance, err := CalculateMetrics(series); err == nil {
		summary.Performance = performance
	}

	return summary
}

// AssetPnLSeries returns each symbol's realized P&L per date it closed
// something, with a running total.
func AssetPnLSeries(ledger *Ledger) map[string][]domain.AssetPnLPoint {
	out := map[string][]domain.AssetPnLPoint{}
	for entry := range ledger.All() {
		if entry.IsCashLeg || !entry.Closed {
			continue
		}
		points := out[entry.Symbol]
		cumulative := decimal.Zero
		if n := len(points); n > 0 {
			cumulative = points[n-1].CumulativePnL
			if points[n-1].Date.Equal(entry.Date) {
				points[n-1].RealizedPnL = points[n-1].RealizedPnL.Add(entry.RealizedPnLDelta)
				points[n-1].CumulativePnL = cumulative.Add(entry.RealizedPnLDelta)
				continue
			}
		}
		out[entry.Symbol] = append(points, domain.AssetPnLPoint{
			Date:          entry.Date,
			RealizedPnL:   entry.RealizedPnLDelta,
			CumulativePnL: cumulative.Add(entry.RealizedPnLDelta),
		})
	}
	return out
}
