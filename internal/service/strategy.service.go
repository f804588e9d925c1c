package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/metrics"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/util"

	"golang.org/x/sync/errgroup"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// StrategyService answers read-only questions about a strategy. Every call
// replays the strategy's full log against one consistent snapshot; nothing
// is cached between calls.
type StrategyService interface {
	GetValuationSeries(ctx context.Context, strategy domain.Strategy) (*domain.ValuationSeries, error)
	GetAssetSummaries(ctx context.Context, strategy domain.Strategy) (*domain.AssetReport, error)
	GetCurrentStatus(ctx context.Context, strategy domain.Strategy) (*domain.CurrentStatus, error)
	GetExecutionHistory(ctx context.Context, strategy domain.Strategy, date time.Time) (*domain.ExecutionHistory, error)
	GetAssetPnLSeries(ctx context.Context, strategy domain.Strategy) (map[string][]domain.AssetPnLPoint, error)
	GetOverview(ctx context.Context) ([]StrategyOverview, error)
}

type StrategyOverview struct {
	Strategy domain.Strategy
	Latest   *domain.ValuationPoint
	Summary  domain.Summary
}

func NewStrategyService(
	db *sql.DB,
	legRepository repository.TransactionLegRepository,
	priceBarRepository repository.PriceBarRepository,
	settings map[domain.Strategy]domain.StrategySettings,
) StrategyService {
	return strategyServiceHandler{
		Db:                       db,
		TransactionLegRepository: legRepository,
		PriceBarRepository:       priceBarRepository,
		Settings:                 settings,
	}
}

type strategyServiceHandler struct {
	Db                       *sql.DB
	TransactionLegRepository repository.TransactionLegRepository
	PriceBarRepository       repository.PriceBarRepository
	Settings                 map[domain.Strategy]domain.StrategySettings
	Now                      func() time.Time
}

type replayResult struct {
	policy calculator.StrategyPolicy
	ledger *calculator.Ledger
}

func (h strategyServiceHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

func observe(strategy domain.Strategy, operation string) func(*error) {
	start := time.Now()
	return func(err *error) {
		metrics.QueryDuration.WithLabelValues(strategy.String(), operation).Observe(time.Since(start).Seconds())
		if err != nil && *err != nil {
			metrics.QueryErrors.WithLabelValues(strategy.String(), operation).Inc()
		}
	}
}

// beginReadTx opens the snapshot both reads share. A handler without a db
// reads through the repositories directly.
func (h strategyServiceHandler) beginReadTx(ctx context.Context) (*sql.Tx, error) {
	if h.Db == nil {
		return nil, nil
	}
	tx, err := h.Db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin read transaction: %w", domain.ErrLogUnavailable, err)
	}
	return tx, nil
}

func (h strategyServiceHandler) replay(ctx context.Context, strategy domain.Strategy) (*replayResult, error) {
	log := logger.FromContext(ctx)

	settings, ok := h.Settings[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}

	tx, err := h.beginReadTx(ctx)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		defer tx.Rollback()
	}

	legs, err := h.TransactionLegRepository.List(tx, repository.TransactionLegListFilter{
		Strategy: &strategy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s legs: %w", strategy, err)
	}
	legs = settings.TagCashLegs(legs)

	bars, err := h.loadPriceBars(tx, legs)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s prices: %w", strategy, err)
	}

	policy := calculator.NewStrategyPolicy(settings, calculator.NewPriceBook(bars))
	ledger := calculator.Reconstruct(policy, legs)

	metrics.LegsReplayed.WithLabelValues(strategy.String()).Add(float64(len(legs)))
	if ledger.Degraded {
		metrics.DegradedLedgers.WithLabelValues(strategy.String()).Inc()
		log.Warnw("ledger degraded",
			"strategy", strategy,
			"violations", len(ledger.Violations),
			"invalidLegs", len(ledger.InvalidLegs),
		)
	}

	return &replayResult{
		policy: policy,
		ledger: ledger,
	}, nil
}

// loadPriceBars fetches every bar the legs' equity symbols can need, from
// the first leg date up to today, in one call.
func (h strategyServiceHandler) loadPriceBars(tx *sql.Tx, legs []domain.TransactionLeg) ([]domain.PriceBar, error) {
	symbolSet := map[string]bool{}
	var start, end time.Time
	for _, leg := range legs {
		if leg.IsCashLeg || leg.Symbol == "" || leg.Date.IsZero() {
			continue
		}
		symbolSet[leg.Symbol] = true
		date := util.DateOnly(leg.Date)
		if start.IsZero() || date.Before(start) {
			start = date
		}
		if date.After(end) {
			end = date
		}
	}
	if len(symbolSet) == 0 {
		return []domain.PriceBar{}, nil
	}
	if today := util.DateOnly(h.now()); today.After(end) {
		end = today
	}

	symbols := make([]string, 0, len(symbolSet))
	for symbol := range symbolSet {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	return h.PriceBarRepository.List(tx, symbols, start, end)
}

func (h strategyServiceHandler) GetValuationSeries(ctx context.Context, strategy domain.Strategy) (_ *domain.ValuationSeries, err error) {
	defer observe(strategy, "valuation")(&err)

	r, err := h.replay(ctx, strategy)
	if err != nil {
		return nil, err
	}

	return &domain.ValuationSeries{
		Strategy:     strategy,
		Points:       calculator.Valuate(r.policy, r.ledger.All()),
		LedgerHealth: r.ledger.LedgerHealth,
	}, nil
}

func (h strategyServiceHandler) report(ctx context.Context, strategy domain.Strategy) ([]domain.ValuationPoint, *domain.AssetReport, error) {
	r, err := h.replay(ctx, strategy)
	if err != nil {
		return nil, nil, err
	}

	series := calculator.Valuate(r.policy, r.ledger.All())
	asOf := h.now()
	if len(series) > 0 {
		asOf = series[len(series)-1].Date
	}
	report := calculator.Aggregate(r.policy, r.ledger, series, asOf)

	return series, &report, nil
}

func (h strategyServiceHandler) GetAssetSummaries(ctx context.Context, strategy domain.Strategy) (_ *domain.AssetReport, err error) {
	defer observe(strategy, "assets")(&err)

	_, report, err := h.report(ctx, strategy)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (h strategyServiceHandler) GetCurrentStatus(ctx context.Context, strategy domain.Strategy) (_ *domain.CurrentStatus, err error) {
	defer observe(strategy, "status")(&err)

	r, err := h.replay(ctx, strategy)
	if err != nil {
		return nil, err
	}

	status := calculator.CurrentStatus(r.policy, r.ledger, h.now())
	return &status, nil
}

func (h strategyServiceHandler) GetExecutionHistory(ctx context.Context, strategy domain.Strategy, date time.Time) (_ *domain.ExecutionHistory, err error) {
	defer observe(strategy, "execution")(&err)

	r, err := h.replay(ctx, strategy)
	if err != nil {
		return nil, err
	}

	history := calculator.ExecutionHistory(r.policy, r.ledger, date)
	return &history, nil
}

func (h strategyServiceHandler) GetAssetPnLSeries(ctx context.Context, strategy domain.Strategy) (_ map[string][]domain.AssetPnLPoint, err error) {
	defer observe(strategy, "pnl")(&err)

	r, err := h.replay(ctx, strategy)
	if err != nil {
		return nil, err
	}

	return calculator.AssetPnLSeries(r.ledger), nil
}

// GetOverview summarizes every configured strategy concurrently. Any
// failure fails the whole overview.
func (h strategyServiceHandler) GetOverview(ctx context.Context) ([]StrategyOverview, error) {
	strategies := []domain.Strategy{}
	for _, strategy := range domain.AllStrategies() {
		if _, ok := h.Settings[strategy]; ok {
			strategies = append(strategies, strategy)
		}
	}

	out := make([]StrategyOverview, len(strategies))
	g, gctx := errgroup.WithContext(ctx)
	for i, strategy := range strategies {
		g.Go(func() (err error) {
			defer observe(strategy, "overview")(&err)

			series, report, err := h.report(gctx, strategy)
			if err != nil {
				return err
			}
			overview := StrategyOverview{
				Strategy: strategy,
				Summary:  report.Summary,
			}
			if len(series) > 0 {
				latest := series[len(series)-1]
				overview.Latest = &latest
			}
			out[i] = overview
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build overview: %w", err)
	}

	return out, nil
}
