package api

import (
	"github.com/gin-gonic/gin"
)

type overviewResponse struct {
	Strategy string                  `json:"strategy"`
	Latest   *valuationPointResponse `json:"latest"`
	Summary  summaryResponse         `json:"summary"`
}

func (m ApiHandler) overview(c *gin.Context) {
	overview, err := m.StrategyService.GetOverview(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]overviewResponse, 0, len(overview))
	for _, o := range overview {
		r := overviewResponse{
			Strategy: o.Strategy.String(),
			Summary:  newSummaryResponse(o.Summary),
		}
		if o.Latest != nil {
			latest := newValuationPointResponse(*o.Latest)
			r.Latest = &latest
		}
		out = append(out, r)
	}

	c.JSON(200, out)
}
