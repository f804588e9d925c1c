package calculator

import (
	"iter"
	"sort"
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one leg after replay, with the position it left behind.
type LedgerEntry struct {
	Leg       domain.TransactionLeg
	Date      time.Time
	Symbol    string
	IsCashLeg bool
	// NetShares is the symbol's position after this leg
	NetShares        decimal.Decimal
	RealizedPnLDelta decimal.Decimal
	Position         domain.PositionState
	BuyValue         decimal.Decimal
	SellValue        decimal.Decimal
	Closed           bool
	Applied          bool
	Violation        *domain.LedgerIntegrityError
	Invalid          *domain.InvalidLegError
}

// SortLegs returns a copy of legs in replay order: date, then recorded
// time. Same-instant ties put legs that buy ahead of pure sells, then
// fall back to the leg id.
func SortLegs(legs []domain.TransactionLeg) []domain.TransactionLeg {
	out := make([]domain.TransactionLeg, len(legs))
	for i, leg := range legs {
		leg.Date = util.DateOnly(leg.Date)
		out[i] = leg
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.RecordedAt.Equal(b.RecordedAt) {
			return a.RecordedAt.Before(b.RecordedAt)
		}
		if a.IsBuy() != b.IsBuy() {
			return a.IsBuy()
		}
		return a.ID.String() < b.ID.String()
	})
	return out
}

// Replay walks legs in replay order and yields one entry per leg. The
// sequence holds no state between iterations, so ranging over it again
// replays from scratch.
func Replay(policy StrategyPolicy, legs []domain.TransactionLeg) iter.Seq[LedgerEntry] {
	sorted := SortLegs(legs)
	return func(yield func(LedgerEntry) bool) {
		positions := map[string]*domain.PositionState{}
		for _, leg := range sorted {
			entry := LedgerEntry{
				Leg:       leg,
				Date:      leg.Date,
				Symbol:    leg.Symbol,
				IsCashLeg: leg.IsCashLeg,
			}

			if invalid := policy.ValidateLeg(leg); invalid != nil {
				entry.Invalid = invalid
				if state, ok := positions[leg.Symbol]; ok {
					entry.Position = *state.DeepCopy()
					entry.NetShares = state.NetShares
				}
				if !yield(entry) {
					return
				}
				continue
			}

			state, ok := positions[leg.Symbol]
			if !ok {
				state = domain.NewPositionState(leg.Symbol, leg.IsCashLeg)
				positions[leg.Symbol] = state
			}

			outcome := policy.ApplyLeg(state, leg)
			entry.Applied = outcome.Applied
			entry.Violation = outcome.Violation
			entry.Closed = outcome.Closed
			entry.RealizedPnLDelta = outcome.RealizedPnL
			entry.BuyValue = outcome.BuyValue
			entry.SellValue = outcome.SellValue
			entry.Position = *state.DeepCopy()
			entry.NetShares = state.NetShares

			if !yield(entry) {
				return
			}
		}
	}
}

// Ledger is a fully materialized replay.
type Ledger struct {
	Strategy   domain.Strategy
	CashSymbol string
	Entries    []LedgerEntry
	// final state per symbol that had at least one valid leg
	Positions map[string]*domain.PositionState
	domain.LedgerHealth
}

func Reconstruct(policy StrategyPolicy, legs []domain.TransactionLeg) *Ledger {
	settings := policy.Settings()
	ledger := &Ledger{
		Strategy:   settings.Strategy,
		CashSymbol: settings.CashSymbol,
		Entries:    make([]LedgerEntry, 0, len(legs)),
		Positions:  map[string]*domain.PositionState{},
		LedgerHealth: domain.LedgerHealth{
			Violations:  []domain.LedgerIntegrityError{},
			InvalidLegs: []domain.InvalidLegError{},
		},
	}

	for entry := range Replay(policy, legs) {
		ledger.Entries = append(ledger.Entries, entry)
		if entry.Invalid != nil {
			ledger.InvalidLegs = append(ledger.InvalidLegs, *entry.Invalid)
			continue
		}
		if entry.Violation != nil {
			ledger.Violations = append(ledger.Violations, *entry.Violation)
		}
		ledger.Positions[entry.Symbol] = entry.Position.DeepCopy()
	}
	ledger.Degraded = len(ledger.Violations) > 0 || len(ledger.InvalidLegs) > 0

	return ledger
}

// All iterates the stored entries without replaying.
func (l *Ledger) All() iter.Seq[LedgerEntry] {
	return func(yield func(LedgerEntry) bool) {
		for _, entry := range l.Entries {
			if !yield(entry) {
				return
			}
		}
	}
}

func (l *Ledger) CashPosition() *domain.PositionState {
	for _, position := range l.Positions {
		if position.IsCashLeg {
			return position.DeepCopy()
		}
	}
	return domain.NewPositionState(l.CashSymbol, true)
}

// HeldPositions returns the equity positions with shares left, by symbol.
func (l *Ledger) HeldPositions() []domain.PositionState {
	out := []domain.PositionState{}
	for _, position := range l.Positions {
		if !position.IsCashLeg && position.IsHeld() {
			out = append(out, *position)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// ActivityDates lists the distinct dates with at least one applied leg.
func (l *Ledger) ActivityDates() []time.Time {
	out := []time.Time{}
	for _, entry := range l.Entries {
		if !entry.Applied {
			continue
		}
		if len(out) == 0 || !out[len(out)-1].Equal(entry.Date) {
			out = append(out, entry.Date)
		}
	}
	return out
}

func (l *Ledger) LastTradeDate() *time.Time {
	dates := l.ActivityDates()
	if len(dates) == 0 {
		return nil
	}
	return util.TimePointer(dates[len(dates)-1])
}
