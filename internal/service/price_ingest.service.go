package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/util"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"golang.org/x/sync/errgroup"
)

// PriceFetcher returns the daily bars of one symbol between start and end.
type PriceFetcher func(symbol string, start, end time.Time) ([]domain.PriceBar, error)

// IngestService writes into the two stores the engine reads from.
type IngestService interface {
	IngestPrices(ctx context.Context, symbols []string, start time.Time) (*IngestResult, error)
	ImportPriceBars(ctx context.Context, bars []domain.PriceBar) error
	ImportLegs(ctx context.Context, strategy domain.Strategy, legs []domain.TransactionLeg) (int, error)
}

type IngestResult struct {
	Bars    int
	Symbols []string
	Failed  map[string]error
}

func NewIngestService(
	db *sql.DB,
	legRepository repository.TransactionLegRepository,
	priceBarRepository repository.PriceBarRepository,
	settings map[domain.Strategy]domain.StrategySettings,
) IngestService {
	return ingestServiceHandler{
		Db:                       db,
		TransactionLegRepository: legRepository,
		PriceBarRepository:       priceBarRepository,
		Settings:                 settings,
		Fetch:                    FetchChartBars,
		MaxConcurrency:           10,
	}
}

type ingestServiceHandler struct {
	Db                       *sql.DB
	TransactionLegRepository repository.TransactionLegRepository
	PriceBarRepository       repository.PriceBarRepository
	Settings                 map[domain.Strategy]domain.StrategySettings
	Fetch                    PriceFetcher
	MaxConcurrency           int
	Now                      func() time.Time
}

// FetchChartBars reads daily open/close bars from the Yahoo chart api.
func FetchChartBars(symbol string, start, end time.Time) ([]domain.PriceBar, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.PriceBar{}
	for iter.Next() {
		bar := iter.Bar()
		out = append(out, domain.PriceBar{
			Symbol: symbol,
			Date:   util.DateOnly(time.Unix(int64(bar.Timestamp), 0).UTC()),
			Open:   bar.Open,
			Close:  bar.Close,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return out, nil
}

func (h ingestServiceHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

// withTx runs fn in one write transaction. A handler without a db passes a
// nil tx through to the repositories.
func (h ingestServiceHandler) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if h.Db == nil {
		return fn(nil)
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IngestPrices fetches every symbol concurrently and stores whatever came
// back in one transaction. Symbols that fail to fetch are reported, not
// fatal, unless every symbol failed.
func (h ingestServiceHandler) IngestPrices(ctx context.Context, symbols []string, start time.Time) (*IngestResult, error) {
	log := logger.FromContext(ctx)

	symbols = normalizeSymbols(symbols)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols to ingest")
	}
	end := h.now()
	if !start.Before(end) {
		return nil, fmt.Errorf("start %s is not before %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	fetched := make([][]domain.PriceBar, len(symbols))
	fetchErrs := make([]error, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	if h.MaxConcurrency > 0 {
		g.SetLimit(h.MaxConcurrency)
	}
	for i, symbol := range symbols {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bars, err := h.Fetch(symbol, start, end)
			if err != nil {
				log.Warnf("failed to ingest prices for %s: %s", symbol, err.Error())
				fetchErrs[i] = err
				return nil
			}
			fetched[i] = bars
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &IngestResult{
		Symbols: []string{},
		Failed:  map[string]error{},
	}
	bars := []domain.PriceBar{}
	for i, symbol := range symbols {
		if fetchErrs[i] != nil {
			result.Failed[symbol] = fetchErrs[i]
			continue
		}
		result.Symbols = append(result.Symbols, symbol)
		bars = append(bars, fetched[i]...)
	}
	if len(result.Symbols) == 0 {
		return result, fmt.Errorf("failed to ingest all %d symbols. first err: %w", len(symbols), fetchErrs[0])
	}

	err := h.withTx(ctx, func(tx *sql.Tx) error {
		return h.PriceBarRepository.Add(tx, bars)
	})
	if err != nil {
		return result, fmt.Errorf("failed to store ingested prices: %w", err)
	}
	result.Bars = len(bars)

	log.Infow("ingested prices",
		"symbols", len(result.Symbols),
		"failed", len(result.Failed),
		"bars", result.Bars,
	)

	return result, nil
}

func (h ingestServiceHandler) ImportPriceBars(ctx context.Context, bars []domain.PriceBar) error {
	for i, bar := range bars {
		if bar.Symbol == "" || bar.Date.IsZero() {
			return fmt.Errorf("price bar %d is missing a symbol or date", i)
		}
		if bar.Open.IsNegative() || bar.Close.IsNegative() {
			return fmt.Errorf("price bar %d (%s on %s) has a negative price", i, bar.Symbol, bar.Date.Format(time.DateOnly))
		}
	}

	err := h.withTx(ctx, func(tx *sql.Tx) error {
		return h.PriceBarRepository.Add(tx, bars)
	})
	if err != nil {
		return fmt.Errorf("failed to import price bars: %w", err)
	}

	logger.FromContext(ctx).Infow("imported price bars", "bars", len(bars))
	return nil
}

// ImportLegs appends legs to a strategy's log. Legs are stored as given;
// the replay reports anything it cannot apply.
func (h ingestServiceHandler) ImportLegs(ctx context.Context, strategy domain.Strategy, legs []domain.TransactionLeg) (int, error) {
	if _, ok := h.Settings[strategy]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	for i := range legs {
		if legs[i].Strategy != "" && legs[i].Strategy != strategy {
			return 0, fmt.Errorf("leg %d belongs to %s, not %s", i, legs[i].Strategy, strategy)
		}
		legs[i].Strategy = strategy
	}

	var added []domain.TransactionLeg
	err := h.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		added, err = h.TransactionLegRepository.AddMany(tx, legs)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import %s legs: %w", strategy, err)
	}

	logger.FromContext(ctx).Infow("imported legs", "strategy", strategy, "legs", len(added))
	return len(added), nil
}

func normalizeSymbols(symbols []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
