package data

import (
	"fmt"
	"io"
	"strings"
	"time"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type legRow struct {
	Date         string `csv:"date"`
	Symbol       string `csv:"symbol"`
	SharesBought string `csv:"shares_bought"`
	SharesSold   string `csv:"shares_sold"`
	BuyPrice     string `csv:"buy_price"`
	SellPrice    string `csv:"sell_price"`
	RecordedAt   string `csv:"recorded_at"`
}

type priceBarRow struct {
	Date   string `csv:"date"`
	Symbol string `csv:"symbol"`
	Open   string `csv:"open"`
	Close  string `csv:"close"`
}

// LoadLegsCSV parses a transaction log export. Rows without recorded_at
// keep their file order through a one-second offset from the date.
func LoadLegsCSV(r io.Reader, strategy domain.Strategy) ([]domain.TransactionLeg, error) {
	rows := []legRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse legs csv: %w", err)
	}

	out := make([]domain.TransactionLeg, 0, len(rows))
	for i, row := range rows {
		leg, err := row.toLeg(strategy, i)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, leg)
	}
	return out, nil
}

func (row legRow) toLeg(strategy domain.Strategy, index int) (domain.TransactionLeg, error) {
	date, err := util.ParseDate(strings.TrimSpace(row.Date))
	if err != nil {
		return domain.TransactionLeg{}, err
	}
	bought, err := parseDecimal(row.SharesBought)
	if err != nil {
		return domain.TransactionLeg{}, fmt.Errorf("shares_bought: %w", err)
	}
	sold, err := parseDecimal(row.SharesSold)
	if err != nil {
		return domain.TransactionLeg{}, fmt.Errorf("shares_sold: %w", err)
	}
	buyPrice, err := parseOptionalDecimal(row.BuyPrice)
	if err != nil {
		return domain.TransactionLeg{}, fmt.Errorf("buy_price: %w", err)
	}
	sellPrice, err := parseOptionalDecimal(row.SellPrice)
	if err != nil {
		return domain.TransactionLeg{}, fmt.Errorf("sell_price: %w", err)
	}

	recordedAt := date.Add(time.Duration(index) * time.Second)
	if s := strings.TrimSpace(row.RecordedAt); s != "" {
		recordedAt, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return domain.TransactionLeg{}, fmt.Errorf("recorded_at: %w", err)
		}
	}

	return domain.TransactionLeg{
		ID:           uuid.New(),
		Strategy:     strategy,
		Symbol:       strings.ToUpper(strings.TrimSpace(row.Symbol)),
		Date:         date,
		SharesBought: bought,
		SharesSold:   sold,
		BuyPrice:     buyPrice,
		SellPrice:    sellPrice,
		RecordedAt:   recordedAt,
	}, nil
}

func LoadPriceBarsCSV(r io.Reader) ([]domain.PriceBar, error) {
	rows := []priceBarRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse price csv: %w", err)
	}

	out := make([]domain.PriceBar, 0, len(rows))
	for i, row := range rows {
		date, err := util.ParseDate(strings.TrimSpace(row.Date))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		open, err := parseDecimal(row.Open)
		if err != nil {
			return nil, fmt.Errorf("row %d open: %w", i+2, err)
		}
		close, err := parseDecimal(row.Close)
		if err != nil {
			return nil, fmt.Errorf("row %d close: %w", i+2, err)
		}
		out = append(out, domain.PriceBar{
			Symbol: strings.ToUpper(strings.TrimSpace(row.Symbol)),
			Date:   date,
			Open:   open,
			Close:  close,
		})
	}
	return out, nil
}

// blank is zero
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseOptionalDecimal(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
