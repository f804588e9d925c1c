package api

import (
	"fmt"
	"net/http"
	"sort"

	"portfoliotracker/internal/util"

	"github.com/gin-gonic/gin"
)

type updatePricesRequest struct {
	Symbols []string `json:"symbols"`
	Start   string   `json:"start"`
}

type updatePricesResponse struct {
	Bars    int               `json:"bars"`
	Symbols []string          `json:"symbols"`
	Failed  map[string]string `json:"failed"`
}

func (m ApiHandler) updatePrices(c *gin.Context) {
	if m.IngestService == nil {
		returnErrorJsonCode(fmt.Errorf("price ingestion is not configured"), c, http.StatusNotImplemented)
		return
	}

	var requestBody updatePricesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	start, err := util.ParseDate(requestBody.Start)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid start: %w", err), c, http.StatusBadRequest)
		return
	}

	result, err := m.IngestService.IngestPrices(c.Request.Context(), requestBody.Symbols, start)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := updatePricesResponse{
		Bars:    result.Bars,
		Symbols: result.Symbols,
		Failed:  map[string]string{},
	}
	for symbol, err := range result.Failed {
		out.Failed[symbol] = err.Error()
	}
	sort.Strings(out.Symbols)

	c.JSON(200, out)
}
