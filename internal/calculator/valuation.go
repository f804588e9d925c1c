package calculator

import (
	"iter"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/shopspring/decimal"
)

// Valuer folds ledger entries into a running portfolio value. Entries
// arrive in replay order and ValueAt is called once per activity date,
// after that date's last entry.
type Valuer interface {
	Observe(entry LedgerEntry)
	ValueAt(date time.Time) (domain.ValuationPoint, bool)
}

// Valuate produces one point per activity date, ascending. Dates whose
// legs were all invalid produce no point.
func Valuate(policy StrategyPolicy, entries iter.Seq[LedgerEntry]) []domain.ValuationPoint {
	valuer := policy.NewValuer()
	points := []domain.ValuationPoint{}

	var current *time.Time
	flush := func() {
		if current == nil {
			return
		}
		if point, ok := valuer.ValueAt(*current); ok {
			points = append(points, point)
		}
	}

	for entry := range entries {
		if entry.Invalid != nil {
			continue
		}
		if current != nil && !entry.Date.Equal(*current) {
			flush()
		}
		date := entry.Date
		current = &date
		valuer.Observe(entry)
	}
	flush()

	return points
}

// roundTripValuer values a round trip strategy by its cash balance; every
// equity position is closed by the end of its window.
type roundTripValuer struct {
	settings domain.StrategySettings
	cash     decimal.Decimal
	seenCash bool
}

func (v *roundTripValuer) Observe(entry LedgerEntry) {
	if !entry.IsCashLeg {
		return
	}
	v.cash = entry.NetShares
	v.seenCash = true
}

func (v *roundTripValuer) ValueAt(date time.Time) (domain.ValuationPoint, bool) {
	if !v.seenCash || belowFloor(v.settings, v.cash) {
		return domain.ValuationPoint{}, false
	}
	return domain.ValuationPoint{
		Date:        date,
		TotalValue:  v.cash,
		CashValue:   v.cash,
		EquityValue: decimal.Zero,
	}, true
}

// holdValuer keeps cash and marked equity as running totals. Price bars
// are merged in as a second event stream, so the whole series is one
// forward pass over dates, legs and bars.
type holdValuer struct {
	settings domain.StrategySettings
	timeline []domain.PriceBar
	cursor   int
	current  time.Time

	cash   decimal.Decimal
	equity decimal.Decimal
	shares map[string]decimal.Decimal
	marks  map[string]decimal.Decimal
	held   int
	// held candidates with a close bar on the current date
	closedToday map[string]bool
}

func newHoldValuer(settings domain.StrategySettings, timeline []domain.PriceBar) *holdValuer {
	return &holdValuer{
		settings:    settings,
		timeline:    timeline,
		cash:        decimal.Zero,
		equity:      decimal.Zero,
		shares:      map[string]decimal.Decimal{},
		marks:       map[string]decimal.Decimal{},
		closedToday: map[string]bool{},
	}
}

func (v *holdValuer) mark(symbol string) decimal.Decimal {
	if price, ok := v.marks[symbol]; ok {
		return price
	}
	return v.settings.NeutralPrice
}

// advance consumes every bar dated on or before date and re-marks the
// symbols it touches.
func (v *holdValuer) advance(date time.Time) {
	if !date.Equal(v.current) {
		v.current = date
		v.closedToday = map[string]bool{}
	}
	for v.cursor < len(v.timeline) && !v.timeline[v.cursor].Date.After(date) {
		bar := v.timeline[v.cursor]
		v.cursor++

		price, ok := usablePrice(bar)
		if !ok {
			continue
		}
		previous := v.mark(bar.Symbol)
		v.marks[bar.Symbol] = price
		if shares := v.shares[bar.Symbol]; shares.IsPositive() {
			v.equity = v.equity.Add(shares.Mul(price.Sub(previous)))
		}
		if bar.Date.Equal(date) && bar.Close.IsPositive() {
			v.closedToday[bar.Symbol] = true
		}
	}
}

func (v *holdValuer) Observe(entry LedgerEntry) {
	v.advance(entry.Date)
	if entry.IsCashLeg {
		v.cash = entry.NetShares
		return
	}

	before := v.shares[entry.Symbol]
	after := entry.NetShares
	if before.Equal(after) {
		return
	}
	v.equity = v.equity.Add(after.Sub(before).Mul(v.mark(entry.Symbol)))
	if !before.IsPositive() && after.IsPositive() {
		v.held++
	} else if before.IsPositive() && !after.IsPositive() {
		v.held--
	}
	v.shares[entry.Symbol] = after
}

func (v *holdValuer) ValueAt(date time.Time) (domain.ValuationPoint, bool) {
	v.advance(date)

	exact := 0
	for symbol := range v.closedToday {
		if v.shares[symbol].IsPositive() {
			exact++
		}
	}

	total := v.cash.Add(v.equity)
	if belowFloor(v.settings, total) {
		return domain.ValuationPoint{}, false
	}
	return domain.ValuationPoint{
		Date:            date,
		TotalValue:      total,
		CashValue:       v.cash,
		EquityValue:     v.equity,
		PriceIsFallback: v.held > exact,
	}, true
}

func belowFloor(settings domain.StrategySettings, value decimal.Decimal) bool {
	return settings.MinValuation.IsPositive() && value.LessThan(settings.MinValuation)
}
