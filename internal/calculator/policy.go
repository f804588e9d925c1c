package calculator

import (
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"

	"github.com/shopspring/decimal"
)

// StrategyPolicy holds everything that differs between strategies: how a
// leg is validated and priced, how it moves a position, and how a day
// is valued.
type StrategyPolicy interface {
	Settings() domain.StrategySettings
	Prices() *PriceBook
	ValidateLeg(leg domain.TransactionLeg) *domain.InvalidLegError
	// ApplyLeg mutates state only when the leg is applied.
	ApplyLeg(state *domain.PositionState, leg domain.TransactionLeg) LegOutcome
	// LegPrices returns the prices a leg traded at, nil when unknown.
	LegPrices(leg domain.TransactionLeg) (buy *decimal.Decimal, sell *decimal.Decimal)
	NewValuer() Valuer
}

type LegOutcome struct {
	Applied     bool
	RealizedPnL decimal.Decimal
	// Closed is set when the leg recognized realized P&L
	Closed    bool
	BuyValue  decimal.Decimal
	SellValue decimal.Decimal
	Violation *domain.LedgerIntegrityError
}

func NewStrategyPolicy(settings domain.StrategySettings, prices *PriceBook) StrategyPolicy {
	if settings.Strategy.IsRoundTrip() {
		return RoundTripPolicy{settings: settings, prices: prices}
	}
	return HoldPolicy{settings: settings, prices: prices}
}

// RoundTripPolicy serves intraday and weekly. Legs carry no prices; a
// buy fills at the open and a sell at the close of the leg's date.
type RoundTripPolicy struct {
	settings domain.StrategySettings
	prices   *PriceBook
}

func (p RoundTripPolicy) Settings() domain.StrategySettings {
	return p.settings
}

func (p RoundTripPolicy) Prices() *PriceBook {
	return p.prices
}

func (p RoundTripPolicy) ValidateLeg(leg domain.TransactionLeg) *domain.InvalidLegError {
	return validateLeg(leg)
}

func (p RoundTripPolicy) LegPrices(leg domain.TransactionLeg) (*decimal.Decimal, *decimal.Decimal) {
	if leg.IsCashLeg {
		return nil, nil
	}
	bar, ok := p.prices.GetPriceBar(leg.Symbol, leg.Date)
	if !ok {
		return nil, nil
	}
	var buy, sell *decimal.Decimal
	if leg.IsBuy() && bar.Open.IsPositive() {
		buy = util.DecimalPointer(bar.Open)
	}
	if leg.IsSell() && bar.Close.IsPositive() {
		sell = util.DecimalPointer(bar.Close)
	}
	return buy, sell
}

// ApplyLeg realizes P&L on the leg that sells with a known close:
// sold*close - bought*open - carried shares at their entry cost. Anything
// else is in progress and only moves shares and cost basis.
func (p RoundTripPolicy) ApplyLeg(state *domain.PositionState, leg domain.TransactionLeg) LegOutcome {
	if leg.IsCashLeg {
		return applyCashLeg(p.settings, state, leg)
	}
	if violation := checkOversell(p.settings, state, leg); violation != nil {
		return LegOutcome{Violation: violation}
	}

	out := LegOutcome{Applied: true}
	buyPrice, sellPrice := p.LegPrices(leg)
	if buyPrice != nil {
		out.BuyValue = leg.SharesBought.Mul(*buyPrice)
	}
	if sellPrice != nil {
		out.SellValue = leg.SharesSold.Mul(*sellPrice)
	}

	carried := state.NetShares
	carriedCost := carried.Mul(state.WeightedAvgCost)
	state.NetShares = carried.Add(leg.SharesBought).Sub(leg.SharesSold)

	closing := leg.IsSell() &&
		sellPrice != nil &&
		(!leg.IsBuy() || buyPrice != nil) &&
		!(carried.IsPositive() && state.CostIncomplete)

	switch {
	case closing:
		out.Closed = true
		out.RealizedPnL = out.SellValue.Sub(out.BuyValue).Sub(carriedCost)
		state.CumulativeRealizedPnL = state.CumulativeRealizedPnL.Add(out.RealizedPnL)
		// leftovers from a closing leg are already paid for
		state.WeightedAvgCost = decimal.Zero
		state.CostIncomplete = false
	case leg.IsBuy() && buyPrice != nil:
		state.WeightedAvgCost = weightedAverage(carried, state.WeightedAvgCost, leg.SharesBought, *buyPrice)
	case leg.IsBuy():
		state.CostIncomplete = true
	}

	if !state.NetShares.IsPositive() {
		state.WeightedAvgCost = decimal.Zero
		state.CostIncomplete = false
	}
	return out
}

func (p RoundTripPolicy) NewValuer() Valuer {
	return &roundTripValuer{settings: p.settings}
}

// HoldPolicy serves the buy-and-hold strategy. Legs record their own
// prices and positions are carried at weighted-average cost.
type HoldPolicy struct {
	settings domain.StrategySettings
	prices   *PriceBook
}

func (p HoldPolicy) Settings() domain.StrategySettings {
	return p.settings
}

func (p HoldPolicy) Prices() *PriceBook {
	return p.prices
}

func (p HoldPolicy) ValidateLeg(leg domain.TransactionLeg) *domain.InvalidLegError {
	if invalid := validateLeg(leg); invalid != nil {
		return invalid
	}
	if leg.IsCashLeg {
		return nil
	}
	if leg.IsBuy() && (leg.BuyPrice == nil || !leg.BuyPrice.IsPositive()) {
		return &domain.InvalidLegError{Leg: leg, Reason: "buy requires a positive buy price"}
	}
	if leg.IsSell() && (leg.SellPrice == nil || !leg.SellPrice.IsPositive()) {
		return &domain.InvalidLegError{Leg: leg, Reason: "sell requires a positive sell price"}
	}
	return nil
}

func (p HoldPolicy) LegPrices(leg domain.TransactionLeg) (*decimal.Decimal, *decimal.Decimal) {
	if leg.IsCashLeg {
		return nil, nil
	}
	var buy, sell *decimal.Decimal
	if leg.IsBuy() {
		buy = leg.BuyPrice
	}
	if leg.IsSell() {
		sell = leg.SellPrice
	}
	return buy, sell
}

// ApplyLeg applies the buy side before the sell side so a leg that does
// both sells against the updated average cost.
func (p HoldPolicy) ApplyLeg(state *domain.PositionState, leg domain.TransactionLeg) LegOutcome {
	if leg.IsCashLeg {
		return applyCashLeg(p.settings, state, leg)
	}
	if violation := checkOversell(p.settings, state, leg); violation != nil {
		return LegOutcome{Violation: violation}
	}

	out := LegOutcome{Applied: true}
	if leg.IsBuy() {
		price := *leg.BuyPrice
		state.WeightedAvgCost = weightedAverage(state.NetShares, state.WeightedAvgCost, leg.SharesBought, price)
		state.NetShares = state.NetShares.Add(leg.SharesBought)
		out.BuyValue = leg.SharesBought.Mul(price)
	}
	if leg.IsSell() {
		price := *leg.SellPrice
		out.SellValue = leg.SharesSold.Mul(price)
		out.RealizedPnL = leg.SharesSold.Mul(price.Sub(state.WeightedAvgCost))
		out.Closed = true
		state.NetShares = state.NetShares.Sub(leg.SharesSold)
		state.CumulativeRealizedPnL = state.CumulativeRealizedPnL.Add(out.RealizedPnL)
	}
	if !state.NetShares.IsPositive() {
		state.WeightedAvgCost = decimal.Zero
	}
	return out
}

func (p HoldPolicy) NewValuer() Valuer {
	return newHoldValuer(p.settings, p.prices.Timeline())
}

func validateLeg(leg domain.TransactionLeg) *domain.InvalidLegError {
	reason := ""
	switch {
	case leg.Symbol == "":
		reason = "missing symbol"
	case leg.Date.IsZero():
		reason = "missing date"
	case leg.SharesBought.IsNegative() || leg.SharesSold.IsNegative():
		reason = "negative share quantity"
	case !leg.IsBuy() && !leg.IsSell():
		reason = "leg neither buys nor sells"
	}
	if reason == "" {
		return nil
	}
	return &domain.InvalidLegError{Leg: leg, Reason: reason}
}

// cash legs only move the balance; they never realize P&L
func applyCashLeg(settings domain.StrategySettings, state *domain.PositionState, leg domain.TransactionLeg) LegOutcome {
	if violation := checkOversell(settings, state, leg); violation != nil {
		return LegOutcome{Violation: violation}
	}
	state.NetShares = state.NetShares.Add(leg.SharesBought).Sub(leg.SharesSold)
	return LegOutcome{Applied: true}
}

func checkOversell(settings domain.StrategySettings, state *domain.PositionState, leg domain.TransactionLeg) *domain.LedgerIntegrityError {
	available := state.NetShares.Add(leg.SharesBought)
	if !leg.SharesSold.GreaterThan(available) {
		return nil
	}
	return &domain.LedgerIntegrityError{
		Strategy:  settings.Strategy,
		Symbol:    leg.Symbol,
		Date:      leg.Date,
		LegID:     leg.ID,
		Held:      available,
		Requested: leg.SharesSold,
	}
}

func weightedAverage(heldShares, heldCost, addedShares, addedPrice decimal.Decimal) decimal.Decimal {
	total := heldShares.Add(addedShares)
	if !total.IsPositive() {
		return decimal.Zero
	}
	if !heldShares.IsPositive() {
		return addedPrice
	}
	return heldShares.Mul(heldCost).Add(addedShares.Mul(addedPrice)).Div(total)
}
