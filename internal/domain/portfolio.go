package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PositionState is the running state of one symbol inside a strategy.
type PositionState struct {
	Symbol    string
	IsCashLeg bool
	NetShares decimal.Decimal
	// cost basis per share; round trips use it for entries carried
	// across days
	WeightedAvgCost       decimal.Decimal
	CumulativeRealizedPnL decimal.Decimal
	// some carried shares were entered without a known price
	CostIncomplete bool
}

func NewPositionState(symbol string, isCashLeg bool) *PositionState {
	return &PositionState{
		Symbol:                symbol,
		IsCashLeg:             isCashLeg,
		NetShares:             decimal.Zero,
		WeightedAvgCost:       decimal.Zero,
		CumulativeRealizedPnL: decimal.Zero,
	}
}

func (p PositionState) DeepCopy() *PositionState {
	return &PositionState{
		Symbol:                p.Symbol,
		IsCashLeg:             p.IsCashLeg,
		NetShares:             p.NetShares,
		WeightedAvgCost:       p.WeightedAvgCost,
		CumulativeRealizedPnL: p.CumulativeRealizedPnL,
		CostIncomplete:        p.CostIncomplete,
	}
}

func (p PositionState) IsHeld() bool {
	return p.NetShares.IsPositive()
}

// HeldPosition is a currently held equity position marked to market.
type HeldPosition struct {
	Symbol          string
	NetShares       decimal.Decimal
	AvgCost         decimal.Decimal
	Price           decimal.Decimal
	PriceDate       *time.Time
	PriceIsFallback bool
	CurrentValue    decimal.Decimal
	UnrealizedPnL   decimal.Decimal
	// fraction of total portfolio value, 0-1
	Allocation float64
}

type CurrentStatus struct {
	Strategy      Strategy
	AsOf          time.Time
	CashPosition  *PositionState
	CashValue     decimal.Decimal
	EquityValue   decimal.Decimal
	TotalValue    decimal.Decimal
	Positions     []HeldPosition
	LastTradeDate *time.Time
	ActivityDays  int
	LedgerHealth
}
