package api

import (
	"portfoliotracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type valuationPointResponse struct {
	Date            string  `json:"date"`
	TotalValue      float64 `json:"totalValue"`
	CashValue       float64 `json:"cashValue"`
	EquityValue     float64 `json:"equityValue"`
	PriceIsFallback bool    `json:"priceIsFallback"`
}

type performanceResponse struct {
	Strategy     string                   `json:"strategy"`
	Points       []valuationPointResponse `json:"points"`
	Latest       *valuationPointResponse  `json:"latest"`
	LedgerHealth ledgerHealthResponse     `json:"ledgerHealth"`
}

func newValuationPointResponse(p domain.ValuationPoint) valuationPointResponse {
	return valuationPointResponse{
		Date:            formatDate(p.Date),
		TotalValue:      p.TotalValue.InexactFloat64(),
		CashValue:       p.CashValue.InexactFloat64(),
		EquityValue:     p.EquityValue.InexactFloat64(),
		PriceIsFallback: p.PriceIsFallback,
	}
}

func (m ApiHandler) performance(c *gin.Context) {
	strategy, ok := strategyParam(c)
	if !ok {
		return
	}

	series, err := m.StrategyService.GetValuationSeries(c.Request.Context(), strategy)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := performanceResponse{
		Strategy:     series.Strategy.String(),
		Points:       make([]valuationPointResponse, 0, len(series.Points)),
		LedgerHealth: newLedgerHealthResponse(series.LedgerHealth),
	}
	for _, p := range series.Points {
		out.Points = append(out.Points, newValuationPointResponse(p))
	}
	if latest := series.Latest(); latest != nil {
		l := newValuationPointResponse(*latest)
		out.Latest = &l
	}

	c.JSON(200, out)
}
