package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssetSummary struct {
	Symbol            string
	TotalSharesBought decimal.Decimal
	TotalSharesSold   decimal.Decimal
	TotalBuyValue     decimal.Decimal
	TotalSellValue    decimal.Decimal
	BuyCount          int
	SellCount         int
	RealizedPnL       decimal.Decimal
	UnrealizedPnL     decimal.Decimal
	NetPnL            decimal.Decimal
	TradingDays       int
	FirstTradeDate    time.Time
	LastTradeDate     time.Time
	CurrentPosition   decimal.Decimal
	IsCurrentlyHeld   bool
	AvgCost           decimal.Decimal
	LastPrice         decimal.Decimal
	MarketValue       decimal.Decimal
	PriceIsFallback   bool
}

type Summary struct {
	Strategy       Strategy
	TotalAssets    int
	CurrentlyHeld  int
	TotalBuyValue  decimal.Decimal
	TotalSellValue decimal.Decimal
	TotalNetPnL    decimal.Decimal
	RealizedPnL    decimal.Decimal
	UnrealizedPnL  decimal.Decimal
	// AssetPnLSum is Σ(realized + unrealized) over assets. For the hold
	// strategy it reconciles against TotalNetPnL; PnLDrift is the gap.
	AssetPnLSum           decimal.Decimal
	CurrentPortfolioValue decimal.Decimal
	InitialInvestment     decimal.Decimal
	PnLDrift              decimal.Decimal
	Performance           *Performance
	LedgerHealth
}

// Performance is derived from the valuation series.
type Performance struct {
	Periods           int
	TotalReturn       float64
	MeanPeriodReturn  float64
	StdevPeriodReturn float64
	MaxDrawdown       float64
}

type AssetReport struct {
	Assets  []AssetSummary
	Summary Summary
}

type ExecutionEntry struct {
	LegID        uuid.UUID
	Date         time.Time
	Symbol       string
	IsCashLeg    bool
	SharesBought decimal.Decimal
	SharesSold   decimal.Decimal
	BuyPrice     *decimal.Decimal
	SellPrice    *decimal.Decimal
	BuyValue     decimal.Decimal
	SellValue    decimal.Decimal
	RealizedPnL  decimal.Decimal
	NetShares    decimal.Decimal
	Rejected     bool
	RecordedAt   time.Time
}

type ExecutionHistory struct {
	Strategy    Strategy
	WindowStart time.Time
	WindowEnd   time.Time
	Entries     []ExecutionEntry
	// cash legs are listed in Entries but left out of the totals below
	TotalBuyValue  decimal.Decimal
	TotalSellValue decimal.Decimal
	NetFlow        decimal.Decimal
	RealizedPnL    decimal.Decimal
}
