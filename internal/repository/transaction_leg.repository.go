package repository

import (
	"database/sql"
	"fmt"
	"time"

	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// TransactionLegRepository is the strategy transaction log. Reads never
// mutate it; every failure wraps domain.ErrLogUnavailable.
type TransactionLegRepository interface {
	Add(tx *sql.Tx, leg domain.TransactionLeg) (*domain.TransactionLeg, error)
	AddMany(tx *sql.Tx, legs []domain.TransactionLeg) ([]domain.TransactionLeg, error)
	List(tx *sql.Tx, filter TransactionLegListFilter) ([]domain.TransactionLeg, error)
}

type TransactionLegListFilter struct {
	Strategy *domain.Strategy
	// inclusive
	StartDate *time.Time
	EndDate   *time.Time
}

type transactionLegRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionLegRepository(db *sql.DB) TransactionLegRepository {
	return transactionLegRepositoryHandler{Db: db}
}

func (h transactionLegRepositoryHandler) Add(tx *sql.Tx, leg domain.TransactionLeg) (*domain.TransactionLeg, error) {
	out, err := h.AddMany(tx, []domain.TransactionLeg{leg})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (h transactionLegRepositoryHandler) AddMany(tx *sql.Tx, legs []domain.TransactionLeg) ([]domain.TransactionLeg, error) {
	if len(legs) == 0 {
		return []domain.TransactionLeg{}, nil
	}

	models := make([]model.TransactionLeg, 0, len(legs))
	for _, leg := range legs {
		m := transactionLegToModel(leg)
		if m.TransactionLegID == uuid.Nil {
			m.TransactionLegID = uuid.New()
		}
		if m.RecordedAt.IsZero() {
			m.RecordedAt = time.Now().UTC()
		}
		models = append(models, m)
	}

	query := table.TransactionLeg.
		INSERT(table.TransactionLeg.AllColumns).
		MODELS(models).
		RETURNING(table.TransactionLeg.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.TransactionLeg{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert transaction legs: %w", domain.ErrLogUnavailable, err)
	}

	out := make([]domain.TransactionLeg, 0, len(result))
	for _, m := range result {
		out = append(out, transactionLegFromModel(m))
	}
	return out, nil
}

// List returns legs ordered by date, then recording time.
func (h transactionLegRepositoryHandler) List(tx *sql.Tx, filter TransactionLegListFilter) ([]domain.TransactionLeg, error) {
	t := table.TransactionLeg
	query := t.SELECT(t.AllColumns)

	whereClauses := []postgres.BoolExpression{}
	if filter.Strategy != nil {
		whereClauses = append(whereClauses, t.Strategy.EQ(postgres.String(filter.Strategy.String())))
	}
	if filter.StartDate != nil {
		whereClauses = append(whereClauses, t.Date.GT_EQ(postgres.DateT(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		whereClauses = append(whereClauses, t.Date.LT_EQ(postgres.DateT(*filter.EndDate)))
	}
	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}
	query = query.ORDER_BY(
		t.Date.ASC(),
		t.RecordedAt.ASC(),
	)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.TransactionLeg{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list transaction legs: %w", domain.ErrLogUnavailable, err)
	}

	out := make([]domain.TransactionLeg, 0, len(result))
	for _, m := range result {
		out = append(out, transactionLegFromModel(m))
	}
	return out, nil
}

func transactionLegToModel(leg domain.TransactionLeg) model.TransactionLeg {
	return model.TransactionLeg{
		TransactionLegID: leg.ID,
		Strategy:         leg.Strategy.String(),
		Symbol:           leg.Symbol,
		Date:             leg.Date,
		SharesBought:     leg.SharesBought,
		SharesSold:       leg.SharesSold,
		BuyPrice:         leg.BuyPrice,
		SellPrice:        leg.SellPrice,
		RecordedAt:       leg.RecordedAt,
	}
}

// IsCashLeg is left for the strategy settings to decide.
func transactionLegFromModel(m model.TransactionLeg) domain.TransactionLeg {
	return domain.TransactionLeg{
		ID:           m.TransactionLegID,
		Strategy:     domain.Strategy(m.Strategy),
		Symbol:       m.Symbol,
		Date:         m.Date,
		SharesBought: m.SharesBought,
		SharesSold:   m.SharesSold,
		BuyPrice:     m.BuyPrice,
		SellPrice:    m.SellPrice,
		RecordedAt:   m.RecordedAt,
	}
}
