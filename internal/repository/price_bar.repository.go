package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

// PriceBarRepository is the price reference. Absence is not an error;
// every failure wraps domain.ErrPriceReferenceUnavailable.
type PriceBarRepository interface {
	Add(tx *sql.Tx, bars []domain.PriceBar) error
	Get(tx *sql.Tx, symbol string, date time.Time) (*domain.PriceBar, error)
	// List loads every bar for symbols between start and end, inclusive.
	// An empty symbol list loads all symbols.
	List(tx *sql.Tx, symbols []string, start, end time.Time) ([]domain.PriceBar, error)
}

type priceBarRepositoryHandler struct {
	Db *sql.DB
}

func NewPriceBarRepository(db *sql.DB) PriceBarRepository {
	return priceBarRepositoryHandler{Db: db}
}

func (h priceBarRepositoryHandler) Add(tx *sql.Tx, bars []domain.PriceBar) error {
	if len(bars) == 0 {
		return nil
	}

	models := make([]model.PriceBar, 0, len(bars))
	for _, bar := range bars {
		models = append(models, priceBarToModel(bar))
	}

	query := PriceBar.
		INSERT(PriceBar.AllColumns).
		MODELS(models).
		ON_CONFLICT(
			PriceBar.Symbol, PriceBar.Date,
		).DO_UPDATE(
		SET(
			PriceBar.Open.SET(PriceBar.EXCLUDED.Open),
			PriceBar.Close.SET(PriceBar.EXCLUDED.Close),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("%w: failed to add price bars to db: %w", domain.ErrPriceReferenceUnavailable, err)
	}

	return nil
}

func (h priceBarRepositoryHandler) Get(tx *sql.Tx, symbol string, date time.Time) (*domain.PriceBar, error) {
	query := PriceBar.
		SELECT(PriceBar.AllColumns).
		WHERE(
			AND(
				PriceBar.Symbol.EQ(String(symbol)),
				PriceBar.Date.EQ(DateT(date)),
			),
		).
		LIMIT(1)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.PriceBar{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: failed to query price bar for %s on %v: %w", domain.ErrPriceReferenceUnavailable, symbol, date, err)
	}

	out := priceBarFromModel(result)
	return &out, nil
}

func (h priceBarRepositoryHandler) List(tx *sql.Tx, symbols []string, start, end time.Time) ([]domain.PriceBar, error) {
	whereClauses := []BoolExpression{
		PriceBar.Date.BETWEEN(DateT(start), DateT(end)),
	}
	if len(symbols) > 0 {
		symbolExpressions := []Expression{}
		for _, s := range symbols {
			symbolExpressions = append(symbolExpressions, String(s))
		}
		whereClauses = append(whereClauses, PriceBar.Symbol.IN(symbolExpressions...))
	}

	query := PriceBar.
		SELECT(PriceBar.AllColumns).
		WHERE(AND(whereClauses...)).
		ORDER_BY(
			PriceBar.Date.ASC(),
			PriceBar.Symbol.ASC(),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.PriceBar{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list price bars: %w", domain.ErrPriceReferenceUnavailable, err)
	}

	out := make([]domain.PriceBar, 0, len(result))
	for _, m := range result {
		out = append(out, priceBarFromModel(m))
	}
	return out, nil
}

func priceBarToModel(bar domain.PriceBar) model.PriceBar {
	m := model.PriceBar{
		Symbol:    bar.Symbol,
		Date:      bar.Date,
		CreatedAt: time.Now().UTC(),
	}
	if bar.Open.IsPositive() {
		m.Open = &bar.Open
	}
	if bar.Close.IsPositive() {
		m.Close = &bar.Close
	}
	return m
}

// a null open or close becomes zero, which the engine reads as unknown
func priceBarFromModel(m model.PriceBar) domain.PriceBar {
	bar := domain.PriceBar{
		Symbol: m.Symbol,
		Date:   m.Date,
		Open:   decimal.Zero,
		Close:  decimal.Zero,
	}
	if m.Open != nil {
		bar.Open = *m.Open
	}
	if m.Close != nil {
		bar.Close = *m.Close
	}
	return bar
}
