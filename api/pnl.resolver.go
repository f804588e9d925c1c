package api

import (
	"sort"

	"github.com/gin-gonic/gin"
)

type assetPnLPointResponse struct {
	Date          string  `json:"date"`
	RealizedPnL   float64 `json:"realizedPnL"`
	CumulativePnL float64 `json:"cumulativePnL"`
}

type assetPnLSeriesResponse struct {
	Symbol string                  `json:"symbol"`
	Points []assetPnLPointResponse `json:"points"`
}

func (m ApiHandler) assetPnL(c *gin.Context) {
	strategy, ok := strategyParam(c)
	if !ok {
		return
	}

	series, err := m.StrategyService.GetAssetPnLSeries(c.Request.Context(), strategy)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]assetPnLSeriesResponse, 0, len(series))
	for symbol, points := range series {
		s := assetPnLSeriesResponse{
			Symbol: symbol,
			Points: make([]assetPnLPointResponse, 0, len(points)),
		}
		for _, p := range points {
			s.Points = append(s.Points, assetPnLPointResponse{
				Date:          formatDate(p.Date),
				RealizedPnL:   p.RealizedPnL.InexactFloat64(),
				CumulativePnL: p.CumulativePnL.InexactFloat64(),
			})
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})

	c.JSON(200, out)
}
