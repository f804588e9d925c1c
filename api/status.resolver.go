package api

import (
	"github.com/gin-gonic/gin"
)

type cashPositionResponse struct {
	Symbol                string  `json:"symbol"`
	NetShares             float64 `json:"netShares"`
	CumulativeRealizedPnL float64 `json:"cumulativeRealizedPnL"`
}

type heldPositionResponse struct {
	Symbol          string  `json:"symbol"`
	NetShares       float64 `json:"netShares"`
	AvgCost         float64 `json:"avgCost"`
	Price           float64 `json:"price"`
	PriceDate       *string `json:"priceDate"`
	PriceIsFallback bool    `json:"priceIsFallback"`
	CurrentValue    float64 `json:"currentValue"`
	UnrealizedPnL   float64 `json:"unrealizedPnL"`
	Allocation      float64 `json:"allocation"`
}

type statusResponse struct {
	Strategy      string                 `json:"strategy"`
	AsOf          string                 `json:"asOf"`
	CashPosition  *cashPositionResponse  `json:"cashPosition"`
	CashValue     float64                `json:"cashValue"`
	EquityValue   float64                `json:"equityValue"`
	TotalValue    float64                `json:"totalValue"`
	Positions     []heldPositionResponse `json:"positions"`
	LastTradeDate *string                `json:"lastTradeDate"`
	ActivityDays  int                    `json:"activityDays"`
	LedgerHealth  ledgerHealthResponse   `json:"ledgerHealth"`
}

func (m ApiHandler) status(c *gin.Context) {
	strategy, ok := strategyParam(c)
	if !ok {
		return
	}

	status, err := m.StrategyService.GetCurrentStatus(c.Request.Context(), strategy)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := statusResponse{
		Strategy:      status.Strategy.String(),
		AsOf:          formatDate(status.AsOf),
		CashValue:     status.CashValue.InexactFloat64(),
		EquityValue:   status.EquityValue.InexactFloat64(),
		TotalValue:    status.TotalValue.InexactFloat64(),
		Positions:     make([]heldPositionResponse, 0, len(status.Positions)),
		LastTradeDate: formatDatePtr(status.LastTradeDate),
		ActivityDays:  status.ActivityDays,
		LedgerHealth:  newLedgerHealthResponse(status.LedgerHealth),
	}
	if status.CashPosition != nil {
		out.CashPosition = &cashPositionResponse{
			Symbol:                status.CashPosition.Symbol,
			NetShares:             status.CashPosition.NetShares.InexactFloat64(),
			CumulativeRealizedPnL: status.CashPosition.CumulativeRealizedPnL.InexactFloat64(),
		}
	}
	for _, p := range status.Positions {
		out.Positions = append(out.Positions, heldPositionResponse{
			Symbol:          p.Symbol,
			NetShares:       p.NetShares.InexactFloat64(),
			AvgCost:         p.AvgCost.InexactFloat64(),
			Price:           p.Price.InexactFloat64(),
			PriceDate:       formatDatePtr(p.PriceDate),
			PriceIsFallback: p.PriceIsFallback,
			CurrentValue:    p.CurrentValue.InexactFloat64(),
			UnrealizedPnL:   p.UnrealizedPnL.InexactFloat64(),
			Allocation:      p.Allocation,
		})
	}

	c.JSON(200, out)
}
