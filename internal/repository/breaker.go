package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfoliotracker/internal/config"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/metrics"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

func newCircuitBreaker(name string, conf config.BreakerConfig) *gobreaker.CircuitBreaker {
	if !conf.Enabled {
		return nil
	}

	failureRatio := conf.FailureRatio
	if failureRatio <= 0 {
		failureRatio = 0.5
	}
	minRequests := conf.MinRequests
	if minRequests == 0 {
		minRequests = 5
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: conf.MaxRequests,
		Interval:    conf.Interval,
		Timeout:     conf.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= minRequests && ratio >= failureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.S().Warnw("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
			metrics.BreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
}

// execute runs fn behind cb. An open breaker fails with sentinel so
// callers see the same error a dead store would give.
func execute[T any](cb *gobreaker.CircuitBreaker, sentinel error, fn func() (T, error)) (T, error) {
	if cb == nil {
		return fn()
	}
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %s: %w", sentinel, cb.Name(), err)
		}
		return zero, err
	}
	out, _ := res.(T)
	return out, nil
}

type breakerTransactionLegRepository struct {
	next TransactionLegRepository
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerTransactionLegRepository(next TransactionLegRepository, conf config.BreakerConfig) TransactionLegRepository {
	return breakerTransactionLegRepository{
		next: next,
		cb:   newCircuitBreaker("transaction_leg", conf),
	}
}

func (b breakerTransactionLegRepository) Add(tx *sql.Tx, leg domain.TransactionLeg) (*domain.TransactionLeg, error) {
	return execute(b.cb, domain.ErrLogUnavailable, func() (*domain.TransactionLeg, error) {
		return b.next.Add(tx, leg)
	})
}

func (b breakerTransactionLegRepository) AddMany(tx *sql.Tx, legs []domain.TransactionLeg) ([]domain.TransactionLeg, error) {
	return execute(b.cb, domain.ErrLogUnavailable, func() ([]domain.TransactionLeg, error) {
		return b.next.AddMany(tx, legs)
	})
}

func (b breakerTransactionLegRepository) List(tx *sql.Tx, filter TransactionLegListFilter) ([]domain.TransactionLeg, error) {
	return execute(b.cb, domain.ErrLogUnavailable, func() ([]domain.TransactionLeg, error) {
		return b.next.List(tx, filter)
	})
}

type breakerPriceBarRepository struct {
	next PriceBarRepository
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerPriceBarRepository(next PriceBarRepository, conf config.BreakerConfig) PriceBarRepository {
	return breakerPriceBarRepository{
		next: next,
		cb:   newCircuitBreaker("price_bar", conf),
	}
}

func (b breakerPriceBarRepository) Add(tx *sql.Tx, bars []domain.PriceBar) error {
	_, err := execute(b.cb, domain.ErrPriceReferenceUnavailable, func() (struct{}, error) {
		return struct{}{}, b.next.Add(tx, bars)
	})
	return err
}

func (b breakerPriceBarRepository) Get(tx *sql.Tx, symbol string, date time.Time) (*domain.PriceBar, error) {
	return execute(b.cb, domain.ErrPriceReferenceUnavailable, func() (*domain.PriceBar, error) {
		return b.next.Get(tx, symbol, date)
	})
}

func (b breakerPriceBarRepository) List(tx *sql.Tx, symbols []string, start, end time.Time) ([]domain.PriceBar, error) {
	return execute(b.cb, domain.ErrPriceReferenceUnavailable, func() ([]domain.PriceBar, error) {
		return b.next.List(tx, symbols, start, end)
	})
}
