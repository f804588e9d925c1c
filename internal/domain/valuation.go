package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ValuationPoint struct {
	Date        time.Time
	TotalValue  decimal.Decimal
	CashValue   decimal.Decimal
	EquityValue decimal.Decimal
	// set when a held symbol was priced from a stale bar or the neutral
	// default instead of that day's close
	PriceIsFallback bool
}

type ValuationSeries struct {
	Strategy Strategy
	Points   []ValuationPoint
	LedgerHealth
}

func (s ValuationSeries) Latest() *ValuationPoint {
	if len(s.Points) == 0 {
		return nil
	}
	p := s.Points[len(s.Points)-1]
	return &p
}

// AssetPnLPoint is the realized P&L booked for one symbol on one date.
type AssetPnLPoint struct {
	Date          time.Time
	RealizedPnL   decimal.Decimal
	CumulativePnL decimal.Decimal
}
