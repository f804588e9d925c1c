package api

import (
	"portfoliotracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type assetSummaryResponse struct {
	Symbol            string  `json:"symbol"`
	TotalSharesBought float64 `json:"totalSharesBought"`
	TotalSharesSold   float64 `json:"totalSharesSold"`
	TotalBuyValue     float64 `json:"totalBuyValue"`
	TotalSellValue    float64 `json:"totalSellValue"`
	BuyCount          int     `json:"buyCount"`
	SellCount         int     `json:"sellCount"`
	RealizedPnL       float64 `json:"realizedPnL"`
	UnrealizedPnL     float64 `json:"unrealizedPnL"`
	NetPnL            float64 `json:"netPnL"`
	TradingDays       int     `json:"tradingDays"`
	FirstTradeDate    string  `json:"firstTradeDate"`
	LastTradeDate     string  `json:"lastTradeDate"`
	CurrentPosition   float64 `json:"currentPosition"`
	IsCurrentlyHeld   bool    `json:"isCurrentlyHeld"`
	AvgCost           float64 `json:"avgCost"`
	LastPrice         float64 `json:"lastPrice"`
	MarketValue       float64 `json:"marketValue"`
	PriceIsFallback   bool    `json:"priceIsFallback"`
}

type performanceMetricsResponse struct {
	Periods           int     `json:"periods"`
	TotalReturn       float64 `json:"totalReturn"`
	MeanPeriodReturn  float64 `json:"meanPeriodReturn"`
	StdevPeriodReturn float64 `json:"stdevPeriodReturn"`
	MaxDrawdown       float64 `json:"maxDrawdown"`
}

type summaryResponse struct {
	Strategy              string                      `json:"strategy"`
	TotalAssets           int                         `json:"totalAssets"`
	CurrentlyHeld         int                         `json:"currentlyHeld"`
	TotalBuyValue         float64                     `json:"totalBuyValue"`
	TotalSellValue        float64                     `json:"totalSellValue"`
	TotalNetPnL           float64                     `json:"totalNetPnL"`
	RealizedPnL           float64                     `json:"realizedPnL"`
	UnrealizedPnL         float64                     `json:"unrealizedPnL"`
	AssetPnLSum           float64                     `json:"assetPnLSum"`
	CurrentPortfolioValue float64                     `json:"currentPortfolioValue"`
	InitialInvestment     float64                     `json:"initialInvestment"`
	PnLDrift              float64                     `json:"pnlDrift"`
	Performance           *performanceMetricsResponse `json:"performance"`
	LedgerHealth          ledgerHealthResponse        `json:"ledgerHealth"`
}

type assetsResponse struct {
	Assets  []assetSummaryResponse `json:"assets"`
	Summary summaryResponse        `json:"summary"`
}

func newSummaryResponse(s domain.Summary) summaryResponse {
	out := summaryResponse{
		Strategy:              s.Strategy.String(),
		TotalAssets:           s.TotalAssets,
		CurrentlyHeld:         s.CurrentlyHeld,
		TotalBuyValue:         s.TotalBuyValue.InexactFloat64(),
		TotalSellValue:        s.TotalSellValue.InexactFloat64(),
		TotalNetPnL:           s.TotalNetPnL.InexactFloat64(),
		RealizedPnL:           s.RealizedPnL.InexactFloat64(),
		UnrealizedPnL:         s.UnrealizedPnL.InexactFloat64(),
		AssetPnLSum:           s.AssetPnLSum.InexactFloat64(),
		CurrentPortfolioValue: s.CurrentPortfolioValue.InexactFloat64(),
		InitialInvestment:     s.InitialInvestment.InexactFloat64(),
		PnLDrift:              s.PnLDrift.InexactFloat64(),
		LedgerHealth:          newLedgerHealthResponse(s.LedgerHealth),
	}
	if s.Performance != nil {
		out.Performance = &performanceMetricsResponse{
			Periods:           s.Performance.Periods,
			TotalReturn:       s.Performance.TotalReturn,
			MeanPeriodReturn:  s.Performance.MeanPeriodReturn,
			StdevPeriodReturn: s.Performance.StdevPeriodReturn,
			MaxDrawdown:       s.Performance.MaxDrawdown,
		}
	}
	return out
}

func (m ApiHandler) assets(c *gin.Context) {
	strategy, ok := strategyParam(c)
	if !ok {
		return
	}

	report, err := m.StrategyService.GetAssetSummaries(c.Request.Context(), strategy)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := assetsResponse{
		Assets:  make([]assetSummaryResponse, 0, len(report.Assets)),
		Summary: newSummaryResponse(report.Summary),
	}
	for _, a := range report.Assets {
		out.Assets = append(out.Assets, assetSummaryResponse{
			Symbol:            a.Symbol,
			TotalSharesBought: a.TotalSharesBought.InexactFloat64(),
			TotalSharesSold:   a.TotalSharesSold.InexactFloat64(),
			TotalBuyValue:     a.TotalBuyValue.InexactFloat64(),
			TotalSellValue:    a.TotalSellValue.InexactFloat64(),
			BuyCount:          a.BuyCount,
			SellCount:         a.SellCount,
			RealizedPnL:       a.RealizedPnL.InexactFloat64(),
			UnrealizedPnL:     a.UnrealizedPnL.InexactFloat64(),
			NetPnL:            a.NetPnL.InexactFloat64(),
			TradingDays:       a.TradingDays,
			FirstTradeDate:    formatDate(a.FirstTradeDate),
			LastTradeDate:     formatDate(a.LastTradeDate),
			CurrentPosition:   a.CurrentPosition.InexactFloat64(),
			IsCurrentlyHeld:   a.IsCurrentlyHeld,
			AvgCost:           a.AvgCost.InexactFloat64(),
			LastPrice:         a.LastPrice.InexactFloat64(),
			MarketValue:       a.MarketValue.InexactFloat64(),
			PriceIsFallback:   a.PriceIsFallback,
		})
	}

	c.JSON(200, out)
}
