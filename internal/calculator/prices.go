package calculator

import (
	"sort"
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"

	"github.com/shopspring/decimal"
)

type PriceSource string

const (
	PriceSourceClose   PriceSource = "close"
	PriceSourceOpen    PriceSource = "open"
	PriceSourceStale   PriceSource = "stale"
	PriceSourceNeutral PriceSource = "neutral"
)

// ResolvedPrice is the mark used for a symbol on a date.
type ResolvedPrice struct {
	Price  decimal.Decimal
	Date   *time.Time
	Source PriceSource
}

func (r ResolvedPrice) IsFallback() bool {
	return r.Source != PriceSourceClose
}

// PriceBook is an in-memory index over the price bars loaded for one
// query. It is read-only once built.
type PriceBook struct {
	bySymbol map[string][]domain.PriceBar
	timeline []domain.PriceBar
}

func NewPriceBook(bars []domain.PriceBar) *PriceBook {
	bySymbol := map[string][]domain.PriceBar{}
	timeline := make([]domain.PriceBar, 0, len(bars))
	for _, bar := range bars {
		bar.Date = util.DateOnly(bar.Date)
		bySymbol[bar.Symbol] = append(bySymbol[bar.Symbol], bar)
		timeline = append(timeline, bar)
	}

	for symbol := range bySymbol {
		series := bySymbol[symbol]
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		if !timeline[i].Date.Equal(timeline[j].Date) {
			return timeline[i].Date.Before(timeline[j].Date)
		}
		return timeline[i].Symbol < timeline[j].Symbol
	})

	return &PriceBook{
		bySymbol: bySymbol,
		timeline: timeline,
	}
}

// Timeline returns every bar ordered by date, then symbol.
func (b *PriceBook) Timeline() []domain.PriceBar {
	if b == nil {
		return nil
	}
	return b.timeline
}

func (b *PriceBook) Len() int {
	if b == nil {
		return 0
	}
	return len(b.timeline)
}

// GetPriceBar returns the bar recorded for symbol on exactly date.
func (b *PriceBook) GetPriceBar(symbol string, date time.Time) (*domain.PriceBar, bool) {
	if b == nil {
		return nil, false
	}
	series := b.bySymbol[symbol]
	date = util.DateOnly(date)
	i := sort.Search(len(series), func(i int) bool {
		return !series[i].Date.Before(date)
	})
	if i < len(series) && series[i].Date.Equal(date) {
		bar := series[i]
		return &bar, true
	}
	return nil, false
}

// Resolve prices symbol on date. That day's close wins; failing that the
// day's open, then the latest earlier bar, then the neutral price.
func (b *PriceBook) Resolve(symbol string, date time.Time, neutral decimal.Decimal) ResolvedPrice {
	if b != nil {
		series := b.bySymbol[symbol]
		date = util.DateOnly(date)
		i := sort.Search(len(series), func(i int) bool {
			return series[i].Date.After(date)
		})
		for i--; i >= 0; i-- {
			bar := series[i]
			price, ok := usablePrice(bar)
			if !ok {
				continue
			}
			source := PriceSourceStale
			if bar.Date.Equal(date) {
				source = PriceSourceOpen
				if bar.Close.IsPositive() {
					source = PriceSourceClose
				}
			}
			return ResolvedPrice{
				Price:  price,
				Date:   util.TimePointer(bar.Date),
				Source: source,
			}
		}
	}
	return ResolvedPrice{
		Price:  neutral,
		Source: PriceSourceNeutral,
	}
}

// usablePrice picks the close, or the open when the day has not closed.
func usablePrice(bar domain.PriceBar) (decimal.Decimal, bool) {
	if bar.Close.IsPositive() {
		return bar.Close, true
	}
	if bar.Open.IsPositive() {
		return bar.Open, true
	}
	return decimal.Zero, false
}
