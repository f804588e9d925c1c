package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Strategy string

const (
	StrategyIntraday Strategy = "intraday"
	StrategyWeekly   Strategy = "weekly"
	StrategyHold     Strategy = "hold"
)

func AllStrategies() []Strategy {
	return []Strategy{StrategyIntraday, StrategyWeekly, StrategyHold}
}

// ParseStrategy accepts the canonical names plus "daily", which older
// clients use for the intraday strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intraday", "daily":
		return StrategyIntraday, nil
	case "weekly":
		return StrategyWeekly, nil
	case "hold":
		return StrategyHold, nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

func (s Strategy) String() string {
	return string(s)
}

// IsRoundTrip is true for strategies that close every equity position
// inside its trading window, so the cash leg alone is the portfolio value.
func (s Strategy) IsRoundTrip() bool {
	return s == StrategyIntraday || s == StrategyWeekly
}

// StrategySettings carries the per-strategy constants the engine needs.
type StrategySettings struct {
	Strategy          Strategy
	CashSymbol        string
	InitialInvestment decimal.Decimal
	// MinValuation drops valuation points below it. Zero disables the floor.
	MinValuation decimal.Decimal
	// NeutralPrice is used for a held symbol that has never had a price bar.
	NeutralPrice decimal.Decimal
}

func DefaultStrategySettings(s Strategy) StrategySettings {
	settings := StrategySettings{
		Strategy:          s,
		InitialInvestment: decimal.NewFromInt(1000),
		MinValuation:      decimal.Zero,
		NeutralPrice:      decimal.NewFromInt(1),
	}
	switch s {
	case StrategyIntraday:
		settings.CashSymbol = "USDD"
	case StrategyWeekly:
		settings.CashSymbol = "USDW"
		settings.MinValuation = decimal.NewFromInt(100)
	case StrategyHold:
		settings.CashSymbol = "USDH"
	}
	return settings
}

func (s StrategySettings) IsCashSymbol(symbol string) bool {
	return strings.EqualFold(symbol, s.CashSymbol)
}

// TagCashLegs upper-cases leg symbols and marks the legs booked against the
// cash symbol. This is the only place symbols are compared against the cash
// symbol.
func (s StrategySettings) TagCashLegs(legs []TransactionLeg) []TransactionLeg {
	for i := range legs {
		legs[i].Symbol = strings.ToUpper(strings.TrimSpace(legs[i].Symbol))
		legs[i].IsCashLeg = s.IsCashSymbol(legs[i].Symbol)
	}
	return legs
}
