package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionLeg is one recorded buy/sell row for a symbol on a date within
// a strategy's log. Legs are immutable once written.
type TransactionLeg struct {
	ID           uuid.UUID
	Strategy     Strategy
	Symbol       string
	IsCashLeg    bool
	Date         time.Time
	SharesBought decimal.Decimal
	SharesSold   decimal.Decimal
	// only recorded by the hold strategy, round trips price off the bar
	BuyPrice   *decimal.Decimal
	SellPrice  *decimal.Decimal
	RecordedAt time.Time
}

func (l TransactionLeg) IsBuy() bool {
	return l.SharesBought.IsPositive()
}

func (l TransactionLeg) IsSell() bool {
	return l.SharesSold.IsPositive()
}

type PriceBar struct {
	Symbol string
	Date   time.Time
	Open   decimal.Decimal
	Close  decimal.Decimal
}
