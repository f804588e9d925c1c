package api

import (
	"github.com/gin-gonic/gin"
)

type executionEntryResponse struct {
	LegID        string   `json:"legID"`
	Date         string   `json:"date"`
	Symbol       string   `json:"symbol"`
	IsCashLeg    bool     `json:"isCashLeg"`
	SharesBought float64  `json:"sharesBought"`
	SharesSold   float64  `json:"sharesSold"`
	BuyPrice     *float64 `json:"buyPrice"`
	SellPrice    *float64 `json:"sellPrice"`
	BuyValue     float64  `json:"buyValue"`
	SellValue    float64  `json:"sellValue"`
	RealizedPnL  float64  `json:"realizedPnL"`
	NetShares    float64  `json:"netShares"`
	Rejected     bool     `json:"rejected"`
}

type executionResponse struct {
	Strategy       string                   `json:"strategy"`
	WindowStart    string                   `json:"windowStart"`
	WindowEnd      string                   `json:"windowEnd"`
	Entries        []executionEntryResponse `json:"entries"`
	TotalBuyValue  float64                  `json:"totalBuyValue"`
	TotalSellValue float64                  `json:"totalSellValue"`
	NetFlow        float64                  `json:"netFlow"`
	RealizedPnL    float64                  `json:"realizedPnL"`
}

func (m ApiHandler) execution(c *gin.Context) {
	strategy, ok := strategyParam(c)
	if !ok {
		return
	}
	date, ok := dateParam(c, "date")
	if !ok {
		return
	}

	history, err := m.StrategyService.GetExecutionHistory(c.Request.Context(), strategy, date)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := executionResponse{
		Strategy:       history.Strategy.String(),
		WindowStart:    formatDate(history.WindowStart),
		WindowEnd:      formatDate(history.WindowEnd),
		Entries:        make([]executionEntryResponse, 0, len(history.Entries)),
		TotalBuyValue:  history.TotalBuyValue.InexactFloat64(),
		TotalSellValue: history.TotalSellValue.InexactFloat64(),
		NetFlow:        history.NetFlow.InexactFloat64(),
		RealizedPnL:    history.RealizedPnL.InexactFloat64(),
	}
	for _, e := range history.Entries {
		entry := executionEntryResponse{
			LegID:        e.LegID.String(),
			Date:         formatDate(e.Date),
			Symbol:       e.Symbol,
			IsCashLeg:    e.IsCashLeg,
			SharesBought: e.SharesBought.InexactFloat64(),
			SharesSold:   e.SharesSold.InexactFloat64(),
			BuyValue:     e.BuyValue.InexactFloat64(),
			SellValue:    e.SellValue.InexactFloat64(),
			RealizedPnL:  e.RealizedPnL.InexactFloat64(),
			NetShares:    e.NetShares.InexactFloat64(),
			Rejected:     e.Rejected,
		}
		if e.BuyPrice != nil {
			f := e.BuyPrice.InexactFloat64()
			entry.BuyPrice = &f
		}
		if e.SellPrice != nil {
			f := e.SellPrice.InexactFloat64()
			entry.SellPrice = &f
		}
		out.Entries = append(out.Entries, entry)
	}

	c.JSON(200, out)
}
